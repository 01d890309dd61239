package dto

// LoginRequest is the credential payload for /api/auth/login
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// BootstrapAdminRequest creates the first admin account
type BootstrapAdminRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// AuthResult carries freshly issued tokens together with the authenticated
// identity. Tokens travel to the client as httpOnly cookies, not in the body.
type AuthResult struct {
	AccessToken  string `json:"-"`
	RefreshToken string `json:"-"`
	Email        string `json:"email"`
	Role         string `json:"role"`
}

// AuthUserResponse is the body returned by login/refresh/me
type AuthUserResponse struct {
	Email string `json:"email"`
	Role  string `json:"role"`
}
