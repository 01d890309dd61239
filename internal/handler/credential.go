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

	"devportal-api/src/internal/constants"
	"devportal-api/src/internal/dto"
	"devportal-api/src/internal/middleware"
	"devportal-api/src/internal/model"
	"devportal-api/src/internal/service"
	"devportal-api/src/internal/utils"

	"github.com/gin-gonic/gin"
)

type CredentialHandler struct {
	credentialService *service.CredentialService
	authService       *service.AuthService
}

func NewCredentialHandler(credentialService *service.CredentialService,
	authService *service.AuthService) *CredentialHandler {
	return &CredentialHandler{
		credentialService: credentialService,
		authService:       authService,
	}
}

// ListCredentials handles GET /api/envs/:envId/projects/:projectId/credentials.
// Every value in the response carries the fixed mask.
func (h *CredentialHandler) ListCredentials(c *gin.Context) {
	credentials, err := h.credentialService.ListByProject(c.Param("envId"), c.Param("projectId"))
	if err != nil {
		c.JSON(utils.GetErrorResponse(err))
		return
	}

	list := make([]dto.Credential, 0, len(credentials))
	for _, credential := range credentials {
		list = append(list, toCredentialDTO(credential))
	}
	c.JSON(http.StatusOK, list)
}

// CreateCredential handles POST /api/envs/:envId/projects/:projectId/credentials
func (h *CredentialHandler) CreateCredential(c *gin.Context) {
	user, ok := currentUser(c, h.authService)
	if !ok {
		return
	}

	var req dto.CredentialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(utils.GetErrorResponse(err))
		return
	}

	credential, err := h.credentialService.Create(c.Param("envId"), c.Param("projectId"),
		req.Key, req.Value, req.Type, req.Description, user, c.ClientIP())
	if err != nil {
		c.JSON(utils.GetErrorResponse(err))
		return
	}
	c.JSON(http.StatusCreated, toCredentialDTO(credential))
}

// UpdateCredential handles PUT /api/envs/:envId/projects/:projectId/credentials/:credentialId.
// An empty value leaves the stored secret untouched.
func (h *CredentialHandler) UpdateCredential(c *gin.Context) {
	user, ok := currentUser(c, h.authService)
	if !ok {
		return
	}

	var req dto.CredentialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(utils.GetErrorResponse(err))
		return
	}

	credential, err := h.credentialService.Update(c.Param("envId"), c.Param("projectId"),
		c.Param("credentialId"), req.Key, req.Value, req.Type, req.Description, user, c.ClientIP())
	if err != nil {
		c.JSON(utils.GetErrorResponse(err))
		return
	}
	c.JSON(http.StatusOK, toCredentialDTO(credential))
}

// DeleteCredential handles DELETE /api/envs/:envId/projects/:projectId/credentials/:credentialId
func (h *CredentialHandler) DeleteCredential(c *gin.Context) {
	user, ok := currentUser(c, h.authService)
	if !ok {
		return
	}

	err := h.credentialService.Delete(c.Param("envId"), c.Param("projectId"),
		c.Param("credentialId"), user, c.ClientIP())
	if err != nil {
		c.JSON(utils.GetErrorResponse(err))
		return
	}
	c.JSON(http.StatusNoContent, nil)
}

// RevealCredential handles GET /api/envs/:envId/projects/:projectId/credentials/:credentialId/reveal.
// This is the only surface that returns the plaintext value.
func (h *CredentialHandler) RevealCredential(c *gin.Context) {
	user, ok := currentUser(c, h.authService)
	if !ok {
		return
	}

	value, err := h.credentialService.Reveal(c.Param("envId"), c.Param("projectId"),
		c.Param("credentialId"), user, c.ClientIP())
	if err != nil {
		c.JSON(utils.GetErrorResponse(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"value": value})
}

// ImportCredentials handles POST /api/envs/:envId/projects/:projectId/credentials/import.
// The request carries a "file" multipart part with key,value[,type[,description]]
// records, one per line.
func (h *CredentialHandler) ImportCredentials(c *gin.Context) {
	user, ok := currentUser(c, h.authService)
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(400, "Bad Request",
			"Multipart file part 'file' is required"))
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(400, "Bad Request",
			"Failed to read uploaded file"))
		return
	}
	defer file.Close()

	created, err := h.credentialService.Import(c.Param("envId"), c.Param("projectId"),
		file, user, c.ClientIP())
	if err != nil {
		c.JSON(utils.GetErrorResponse(err))
		return
	}
	c.JSON(http.StatusOK, dto.ImportResult{Created: created})
}

// RegisterRoutes wires the credential endpoints. Mutations sit behind the
// admin gate; list and reveal are open to any authenticated principal, with
// reveal always audited.
func (h *CredentialHandler) RegisterRoutes(r *gin.Engine) {
	credentialGroup := r.Group("/api/envs/:envId/projects/:projectId/credentials")
	{
		credentialGroup.GET("", h.ListCredentials)
		credentialGroup.GET("/:credentialId/reveal", h.RevealCredential)
		credentialGroup.POST("", middleware.RequireAdmin(), h.CreateCredential)
		credentialGroup.POST("/import", middleware.RequireAdmin(), h.ImportCredentials)
		credentialGroup.PUT("/:credentialId", middleware.RequireAdmin(), h.UpdateCredential)
		credentialGroup.DELETE("/:credentialId", middleware.RequireAdmin(), h.DeleteCredential)
	}
}

// toCredentialDTO converts a credential to its transport form. The value is
// always the mask; plaintext only ever leaves through the reveal endpoint.
func toCredentialDTO(credential *model.Credential) dto.Credential {
	return dto.Credential{
		UUID:        credential.UUID,
		ProjectID:   credential.ProjectID,
		Key:         credential.Key,
		Value:       constants.MaskedValue,
		Type:        credential.Type,
		Description: credential.Description,
		UpdatedBy:   credential.UpdatedBy,
		UpdatedAt:   credential.UpdatedAt,
	}
}
