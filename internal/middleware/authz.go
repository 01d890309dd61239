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

package middleware

import (
	"net/http"

	"devportal-api/src/internal/constants"

	"github.com/gin-gonic/gin"
)

// RequireAdmin creates a middleware that rejects non-admin callers before
// the handler runs, so no persistence or audit write happens for a
// forbidden request.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := GetRoleFromContext(c)
		if !exists || role != constants.RoleAdmin {
			c.JSON(http.StatusForbidden, gin.H{
				"error": constants.ErrForbidden.Error(),
			})
			c.Abort()
			return
		}
		c.Next()
	}
}
