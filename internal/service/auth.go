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

package service

import (
	"devportal-api/src/internal/constants"
	"devportal-api/src/internal/dto"
	"devportal-api/src/internal/model"
	"devportal-api/src/internal/repository"
	"devportal-api/src/internal/security"
	"devportal-api/src/internal/utils"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// AuthService authenticates users and issues the access/refresh token pair.
type AuthService struct {
	userRepo repository.UserRepository
	jwt      *security.JWTManager
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo repository.UserRepository, jwt *security.JWTManager) *AuthService {
	return &AuthService{userRepo: userRepo, jwt: jwt}
}

// Login verifies the email/password pair and issues fresh tokens. Unknown
// email and wrong password return the same error so the response does not
// leak which accounts exist.
func (s *AuthService) Login(email, password string) (*dto.AuthResult, error) {
	user, err := s.userRepo.GetUserByEmail(email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, constants.ErrBadCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, constants.ErrBadCredentials
	}
	if !user.Active {
		return nil, constants.ErrUserInactive
	}
	return s.issueTokens(user)
}

// Refresh exchanges a valid refresh token for a fresh token pair. The role
// embedded in the new access token is re-read from the user record, so a
// role change or deactivation takes effect on the next refresh at the
// latest.
func (s *AuthService) Refresh(refreshToken string) (*dto.AuthResult, error) {
	claims, err := s.jwt.ParseToken(refreshToken)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetUserByUUID(claims.Subject)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, constants.ErrInvalidToken
	}
	if !user.Active {
		return nil, constants.ErrUserInactive
	}
	return s.issueTokens(user)
}

// GetAuthenticatedUser resolves the subject of a parsed access token to the
// current user record.
func (s *AuthService) GetAuthenticatedUser(subject string) (*model.User, error) {
	user, err := s.userRepo.GetUserByUUID(subject)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, constants.ErrUnauthenticated
	}
	if !user.Active {
		return nil, constants.ErrUserInactive
	}
	return user, nil
}

// BootstrapAdmin creates the first admin account. It is a one-shot
// operation: once any admin exists the endpoint is closed for good.
func (s *AuthService) BootstrapAdmin(name, email, password string) (*model.User, error) {
	adminExists, err := s.userRepo.ExistsByRole(constants.RoleAdmin)
	if err != nil {
		return nil, err
	}
	if adminExists {
		return nil, constants.ErrAdminExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		UUID:         uuid.New().String(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         constants.RoleAdmin,
		Active:       true,
	}
	if err := s.userRepo.CreateUser(user); err != nil {
		if isUniqueViolation(err) {
			return nil, constants.ErrUserExists
		}
		return nil, err
	}

	utils.LogInfo("bootstrap admin account created: " + user.Email)
	return user, nil
}

// EnsureDefaultAdmin seeds the configured admin account at startup when no
// admin exists yet. It is a no-op when bootstrap seeding is disabled or an
// admin is already present.
func (s *AuthService) EnsureDefaultAdmin(name, email, password string) error {
	if email == "" || password == "" {
		return nil
	}
	adminExists, err := s.userRepo.ExistsByRole(constants.RoleAdmin)
	if err != nil {
		return err
	}
	if adminExists {
		return nil
	}
	_, err = s.BootstrapAdmin(name, email, password)
	return err
}

func (s *AuthService) issueTokens(user *model.User) (*dto.AuthResult, error) {
	accessToken, err := s.jwt.GenerateAccessToken(user.UUID, user.Role)
	if err != nil {
		return nil, err
	}
	refreshToken, err := s.jwt.GenerateRefreshToken(user.UUID)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResult{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		Email:        user.Email,
		Role:         user.Role,
	}, nil
}
