/*
 *  Copyright (c) 2025, WSO2 LLC. (http://www.wso2.org) All Rights Reserved.
 *
 *  Licensed under the Apache License, Version 2.0 (the "License");
 *  you may not use this file except in compliance with the License.
 *  You may obtain a copy of the License at
 *
 *  http://www.apache.org/licenses/LICENSE-2.0
 *
 *  Unless required by applicable law or agreed to in writing, software
 *  distributed under the License is distributed on an "AS IS" BASIS,
 *  WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 *  See the License for the specific language governing permissions and
 *  limitations under the License.
 *
 */

package handler

import (
	"net/http"

	"devportal-api/src/internal/dto"
	"devportal-api/src/internal/middleware"
	"devportal-api/src/internal/model"
	"devportal-api/src/internal/security"
	"devportal-api/src/internal/service"
	"devportal-api/src/internal/utils"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService *service.AuthService
	cookies     *security.CookieManager
}

func NewAuthHandler(authService *service.AuthService, cookies *security.CookieManager) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		cookies:     cookies,
	}
}

// BootstrapAdmin handles POST /api/auth/bootstrap-admin. It only works while
// no admin account exists yet.
func (h *AuthHandler) BootstrapAdmin(c *gin.Context) {
	var req dto.BootstrapAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(utils.GetErrorResponse(err))
		return
	}

	user, err := h.authService.BootstrapAdmin(req.Name, req.Email, req.Password)
	if err != nil {
		c.JSON(utils.GetErrorResponse(err))
		return
	}

	c.JSON(http.StatusCreated, toUserDTO(user))
}

// Login handles POST /api/auth/login. Tokens travel back as httpOnly
// cookies; the body only confirms the authenticated identity.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(utils.GetErrorResponse(err))
		return
	}

	result, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		c.JSON(utils.GetErrorResponse(err))
		return
	}

	h.cookies.SetTokenCookies(c.Writer, result.AccessToken, result.RefreshToken)
	c.JSON(http.StatusOK, dto.AuthUserResponse{Email: result.Email, Role: result.Role})
}

// Refresh handles POST /api/auth/refresh. Both tokens rotate; the new access
// token carries the user's current role.
func (h *AuthHandler) Refresh(c *gin.Context) {
	refreshToken, err := c.Cookie(security.RefreshTokenCookie)
	if err != nil || refreshToken == "" {
		c.JSON(http.StatusUnauthorized, utils.NewErrorResponse(401, "Unauthorized",
			"Refresh token cookie is required"))
		return
	}

	result, err := h.authService.Refresh(refreshToken)
	if err != nil {
		c.JSON(utils.GetErrorResponse(err))
		return
	}

	h.cookies.SetTokenCookies(c.Writer, result.AccessToken, result.RefreshToken)
	c.JSON(http.StatusOK, dto.AuthUserResponse{Email: result.Email, Role: result.Role})
}

// Logout handles POST /api/auth/logout by expiring both token cookies
func (h *AuthHandler) Logout(c *gin.Context) {
	h.cookies.ClearTokenCookies(c.Writer)
	c.JSON(http.StatusNoContent, nil)
}

// Me handles GET /api/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	user, ok := currentUser(c, h.authService)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, dto.AuthUserResponse{Email: user.Email, Role: user.Role})
}

func (h *AuthHandler) RegisterRoutes(r *gin.Engine) {
	authGroup := r.Group("/api/auth")
	{
		authGroup.POST("/bootstrap-admin", h.BootstrapAdmin)
		authGroup.POST("/login", h.Login)
		authGroup.POST("/refresh", h.Refresh)
		authGroup.POST("/logout", h.Logout)
		authGroup.GET("/me", h.Me)
	}
}

// currentUser resolves the authenticated user for the request, writing the
// error response itself when resolution fails.
func currentUser(c *gin.Context, authService *service.AuthService) (*model.User, bool) {
	userID, exists := middleware.GetUserIDFromContext(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, utils.NewErrorResponse(401, "Unauthorized",
			"Authentication required"))
		return nil, false
	}
	user, err := authService.GetAuthenticatedUser(userID)
	if err != nil {
		c.JSON(utils.GetErrorResponse(err))
		return nil, false
	}
	return user, true
}

func toUserDTO(user *model.User) dto.User {
	return dto.User{
		UUID:      user.UUID,
		Name:      user.Name,
		Email:     user.Email,
		Role:      user.Role,
		Active:    user.Active,
		CreatedAt: user.CreatedAt,
	}
}
