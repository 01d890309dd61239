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

package constants

import "errors"

var (
	ErrEnvironmentExists   = errors.New("environment name already exists")
	ErrEnvironmentNotFound = errors.New("environment not found")
	ErrInvalidEnvironment  = errors.New("invalid environment name")
)

var (
	ErrProjectExists         = errors.New("project name already exists in this environment")
	ErrProjectNotFound       = errors.New("project not found")
	ErrProjectNotInEnv       = errors.New("project does not belong to environment")
	ErrInvalidProjectName    = errors.New("invalid project name")
	ErrProjectHasCredentials = errors.New("project has associated credentials")
)

var (
	ErrCredentialExists       = errors.New("credential key already exists for this project in this environment")
	ErrCredentialNotFound     = errors.New("credential not found")
	ErrCredentialNotInProject = errors.New("credential does not belong to project")
	ErrInvalidCredentialKey   = errors.New("invalid credential key")
	ErrInvalidCredentialValue = errors.New("credential value must not be empty")
)

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrUserExists      = errors.New("user with this email already exists")
	ErrUserInactive    = errors.New("user account is deactivated")
	ErrInvalidRole     = errors.New("invalid user role")
	ErrAdminExists     = errors.New("an admin already exists, bootstrap is only allowed once")
	ErrBadCredentials  = errors.New("invalid username or password")
	ErrForbidden       = errors.New("admin role required")
	ErrUnauthenticated = errors.New("authentication required")
)

var (
	ErrInvalidToken = errors.New("invalid or expired token")
	ErrEncryption   = errors.New("failed to encrypt credential value")
	ErrDecryption   = errors.New("failed to decrypt credential value")
)
