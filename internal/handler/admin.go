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
	"devportal-api/src/internal/service"
	"devportal-api/src/internal/utils"

	"github.com/gin-gonic/gin"
)

// AdminHandler serves the admin-only user management and audit reporting
// endpoints. The whole group sits behind the admin role gate.
type AdminHandler struct {
	adminService *service.AdminService
	auditService *service.AuditService
}

func NewAdminHandler(adminService *service.AdminService, auditService *service.AuditService) *AdminHandler {
	return &AdminHandler{
		adminService: adminService,
		auditService: auditService,
	}
}

// ListUsers handles GET /api/admin/users
func (h *AdminHandler) ListUsers(c *gin.Context) {
	users, err := h.adminService.ListUsers()
	if err != nil {
		c.JSON(utils.GetErrorResponse(err))
		return
	}

	list := make([]dto.User, 0, len(users))
	for _, user := range users {
		list = append(list, toUserDTO(user))
	}
	c.JSON(http.StatusOK, list)
}

// InviteUser handles POST /api/admin/users. The generated temporary password
// appears in this response and nowhere else.
func (h *AdminHandler) InviteUser(c *gin.Context) {
	var req dto.InviteUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(utils.GetErrorResponse(err))
		return
	}

	result, err := h.adminService.InviteUser(req.Name, req.Email, req.Role)
	if err != nil {
		c.JSON(utils.GetErrorResponse(err))
		return
	}
	c.JSON(http.StatusCreated, result)
}

// UpdateUser handles PUT /api/admin/users/:userId
func (h *AdminHandler) UpdateUser(c *gin.Context) {
	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(utils.GetErrorResponse(err))
		return
	}

	user, err := h.adminService.UpdateUser(c.Param("userId"), req.Role, *req.Active)
	if err != nil {
		c.JSON(utils.GetErrorResponse(err))
		return
	}
	c.JSON(http.StatusOK, toUserDTO(user))
}

// ListAuditLogs handles GET /api/admin/audit
func (h *AdminHandler) ListAuditLogs(c *gin.Context) {
	entries, err := h.auditService.ListAll()
	if err != nil {
		c.JSON(utils.GetErrorResponse(err))
		return
	}
	c.JSON(http.StatusOK, entries)
}

func (h *AdminHandler) RegisterRoutes(r *gin.Engine) {
	adminGroup := r.Group("/api/admin")
	adminGroup.Use(middleware.RequireAdmin())
	{
		adminGroup.GET("/users", h.ListUsers)
		adminGroup.POST("/users/invite", h.InviteUser)
		adminGroup.PUT("/users/:userId", h.UpdateUser)
		adminGroup.GET("/audit", h.ListAuditLogs)
	}
}
