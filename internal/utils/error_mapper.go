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

package utils

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"devportal-api/src/internal/constants"

	"github.com/go-playground/validator/v10"
)

// makeError creates a standardized error response tuple
func makeError(status int, message string) (int, interface{}) {
	return status, NewErrorResponse(status, http.StatusText(status), message)
}

// FormatValidationError converts validator errors to user-friendly messages (public API)
func FormatValidationError(err error) string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err.Error() // Not a validation error, return as-is
	}
	return formatValidationError(validationErrors)
}

// formatValidationError converts ValidationErrors to user-friendly messages (internal)
func formatValidationError(validationErrors validator.ValidationErrors) string {
	var messages []string
	for _, fieldError := range validationErrors {
		fieldName := getUserFriendlyFieldName(fieldError.Field())
		message := getValidationErrorMessage(fieldName, fieldError.Tag(), fieldError.Param())
		messages = append(messages, message)
	}
	return strings.Join(messages, "; ")
}

// getUserFriendlyFieldName maps struct field names to user-friendly field names
func getUserFriendlyFieldName(fieldName string) string {
	fieldMap := map[string]string{
		"Name":        "name",
		"Email":       "email",
		"Password":    "password",
		"Role":        "role",
		"Active":      "active",
		"Key":         "key",
		"Value":       "value",
		"Type":        "type",
		"Description": "description",
		"ColorCode":   "color code",
		"Team":        "team",
		"Status":      "status",
	}

	if friendly, exists := fieldMap[fieldName]; exists {
		return friendly
	}
	return strings.ToLower(fieldName)
}

// getValidationErrorMessage creates user-friendly validation error messages
func getValidationErrorMessage(fieldName, tag, param string) string {
	switch tag {
	case "required":
		return fmt.Sprintf("%s is required", fieldName)
	case "min":
		return fmt.Sprintf("%s must be at least %s characters long", fieldName, param)
	case "max":
		return fmt.Sprintf("%s must not exceed %s characters", fieldName, param)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", fieldName)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", fieldName, strings.ReplaceAll(param, " ", ", "))
	default:
		return fmt.Sprintf("%s is invalid", fieldName)
	}
}

// GetErrorResponse maps domain errors and validation errors to HTTP status and
// error response. Unknown errors map to an opaque 500 so storage or crypto
// details never leak to the client.
func GetErrorResponse(err error) (int, interface{}) {
	// First check if it's a validation error
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		userFriendlyMessage := formatValidationError(validationErrors)
		return makeError(http.StatusBadRequest, userFriendlyMessage)
	}

	// Handle domain/business logic errors
	switch {
	// Environment errors
	case errors.Is(err, constants.ErrEnvironmentNotFound):
		return makeError(http.StatusNotFound, "Environment not found")
	case errors.Is(err, constants.ErrEnvironmentExists):
		return makeError(http.StatusConflict, "Environment with this name already exists")
	case errors.Is(err, constants.ErrInvalidEnvironment):
		return makeError(http.StatusBadRequest, "Invalid environment name")

	// Project errors
	case errors.Is(err, constants.ErrProjectNotFound):
		return makeError(http.StatusNotFound, "Project not found")
	case errors.Is(err, constants.ErrProjectNotInEnv):
		return makeError(http.StatusNotFound, "Project not found in this environment")
	case errors.Is(err, constants.ErrProjectExists):
		return makeError(http.StatusConflict, "Project with this name already exists in the environment")
	case errors.Is(err, constants.ErrInvalidProjectName):
		return makeError(http.StatusBadRequest, "Invalid project name")
	case errors.Is(err, constants.ErrProjectHasCredentials):
		return makeError(http.StatusBadRequest, "Project still has credentials; delete them first")

	// Credential errors
	case errors.Is(err, constants.ErrCredentialNotFound):
		return makeError(http.StatusNotFound, "Credential not found")
	case errors.Is(err, constants.ErrCredentialNotInProject):
		return makeError(http.StatusNotFound, "Credential not found in this project")
	case errors.Is(err, constants.ErrCredentialExists):
		return makeError(http.StatusConflict, "Credential key already exists for this project")
	case errors.Is(err, constants.ErrInvalidCredentialKey):
		return makeError(http.StatusBadRequest, "Invalid credential key")
	case errors.Is(err, constants.ErrInvalidCredentialValue):
		return makeError(http.StatusBadRequest, "Credential value is required")

	// User and auth errors
	case errors.Is(err, constants.ErrUserNotFound):
		return makeError(http.StatusNotFound, "User not found")
	case errors.Is(err, constants.ErrUserExists):
		return makeError(http.StatusConflict, "User with this email already exists")
	case errors.Is(err, constants.ErrUserInactive):
		return makeError(http.StatusForbidden, "User account is deactivated")
	case errors.Is(err, constants.ErrInvalidRole):
		return makeError(http.StatusBadRequest, "Invalid user role")
	case errors.Is(err, constants.ErrAdminExists):
		return makeError(http.StatusConflict, "An admin account already exists")
	case errors.Is(err, constants.ErrBadCredentials):
		return makeError(http.StatusUnauthorized, "Invalid email or password")
	case errors.Is(err, constants.ErrForbidden):
		return makeError(http.StatusForbidden, "Admin role required")
	case errors.Is(err, constants.ErrUnauthenticated):
		return makeError(http.StatusUnauthorized, "Authentication required")
	case errors.Is(err, constants.ErrInvalidToken):
		return makeError(http.StatusUnauthorized, "Invalid or expired token")

	// Crypto errors keep a distinct message but no detail
	case errors.Is(err, constants.ErrEncryption):
		return makeError(http.StatusInternalServerError, "Failed to encrypt credential value")
	case errors.Is(err, constants.ErrDecryption):
		return makeError(http.StatusInternalServerError, "Failed to decrypt credential value")

	// Default case for unknown errors
	default:
		return makeError(http.StatusInternalServerError, "Internal Server Error")
	}
}
