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
	"errors"
	"testing"

	"devportal-api/src/internal/constants"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInviteUserGeneratesTemporaryPassword(t *testing.T) {
	_, adminService, userRepo := setupAuthTest(t)

	first, err := adminService.InviteUser("Jamie", "jamie@example.com", constants.RoleDeveloper)
	require.NoError(t, err)
	assert.NotEmpty(t, first.TemporaryPassword)
	assert.Len(t, first.TemporaryPassword, 16)

	second, err := adminService.InviteUser("Morgan", "morgan@example.com", constants.RoleDeveloper)
	require.NoError(t, err)
	assert.NotEqual(t, first.TemporaryPassword, second.TemporaryPassword)

	// The stored hash never equals the plaintext.
	user, err := userRepo.GetUserByUUID(first.UserID)
	require.NoError(t, err)
	assert.NotEqual(t, first.TemporaryPassword, user.PasswordHash)
}

func TestInviteUserRejectsDuplicateEmail(t *testing.T) {
	_, adminService, _ := setupAuthTest(t)

	_, err := adminService.InviteUser("Jamie", "jamie@example.com", constants.RoleDeveloper)
	require.NoError(t, err)

	_, err = adminService.InviteUser("Other", "JAMIE@example.com", constants.RoleDeveloper)
	require.Error(t, err)
	assert.True(t, errors.Is(err, constants.ErrUserExists))
}

func TestInviteUserRejectsUnknownRole(t *testing.T) {
	_, adminService, _ := setupAuthTest(t)

	_, err := adminService.InviteUser("Jamie", "jamie@example.com", "SUPERUSER")
	require.Error(t, err)
	assert.True(t, errors.Is(err, constants.ErrInvalidRole))
}

func TestUpdateUserUnknownID(t *testing.T) {
	_, adminService, _ := setupAuthTest(t)

	_, err := adminService.UpdateUser("no-such-user", constants.RoleAdmin, true)
	require.Error(t, err)
	assert.True(t, errors.Is(err, constants.ErrUserNotFound))
}
