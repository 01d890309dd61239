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

import "strings"

// User roles
const (
	RoleAdmin     = "ADMIN"
	RoleDeveloper = "DEVELOPER"
)

// ValidRoles Valid user roles
var ValidRoles = map[string]bool{
	RoleAdmin:     true,
	RoleDeveloper: true,
}

// Credential types
const (
	CredentialTypeSecret = "SECRET"
	CredentialTypeFile   = "FILE"
)

// Audit log actions
const (
	ActionViewCredential   = "VIEW_CREDENTIAL"
	ActionCreateCredential = "CREATE_CREDENTIAL"
	ActionUpdateCredential = "UPDATE_CREDENTIAL"
	ActionDeleteCredential = "DELETE_CREDENTIAL"
)

// MaskedValue is the placeholder returned in place of credential values on
// every surface except the audited reveal path.
const MaskedValue = "***"

// ResolveCredentialType maps a free-form type string to a known credential
// type. The comparison is case-insensitive; anything absent or unrecognized
// defaults to SECRET.
func ResolveCredentialType(typeStr string) string {
	if strings.EqualFold(typeStr, CredentialTypeFile) {
		return CredentialTypeFile
	}
	return CredentialTypeSecret
}
