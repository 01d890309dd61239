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
	"crypto/rand"
	"encoding/base64"

	"devportal-api/src/internal/constants"
	"devportal-api/src/internal/dto"
	"devportal-api/src/internal/model"
	"devportal-api/src/internal/repository"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// AdminService covers the administrative user-management operations: listing
// accounts, inviting new ones and changing role or active state.
type AdminService struct {
	userRepo repository.UserRepository
}

// NewAdminService creates a new admin service
func NewAdminService(userRepo repository.UserRepository) *AdminService {
	return &AdminService{userRepo: userRepo}
}

// ListUsers returns all accounts
func (s *AdminService) ListUsers() ([]*model.User, error) {
	return s.userRepo.ListUsers()
}

// InviteUser creates a new active account with a generated temporary
// password. The plaintext password is returned exactly once for handover;
// only its bcrypt hash is stored.
func (s *AdminService) InviteUser(name, email, role string) (*dto.InviteUserResponse, error) {
	if !constants.ValidRoles[role] {
		return nil, constants.ErrInvalidRole
	}

	existing, err := s.userRepo.GetUserByEmail(email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, constants.ErrUserExists
	}

	tempPassword, err := generateTemporaryPassword()
	if err != nil {
		return nil, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(tempPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		UUID:         uuid.New().String(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		Active:       true,
	}
	if err := s.userRepo.CreateUser(user); err != nil {
		if isUniqueViolation(err) {
			return nil, constants.ErrUserExists
		}
		return nil, err
	}

	return &dto.InviteUserResponse{
		UserID:            user.UUID,
		TemporaryPassword: tempPassword,
	}, nil
}

// UpdateUser changes an account's role and active flag. Deactivation locks
// the account out at the next token refresh; outstanding access tokens run
// to their short expiry.
func (s *AdminService) UpdateUser(userID, role string, active bool) (*model.User, error) {
	if !constants.ValidRoles[role] {
		return nil, constants.ErrInvalidRole
	}

	user, err := s.userRepo.GetUserByUUID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, constants.ErrUserNotFound
	}

	user.Role = role
	user.Active = active
	if err := s.userRepo.UpdateUser(user); err != nil {
		return nil, err
	}
	return user, nil
}

// generateTemporaryPassword returns 12 random bytes URL-base64 encoded,
// giving 16 password characters.
func generateTemporaryPassword() (string, error) {
	buf := make([]byte, 12)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.URLEncoding.EncodeToString(buf), nil
}
