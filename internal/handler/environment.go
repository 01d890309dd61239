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
	"devportal-api/src/internal/service"
	"devportal-api/src/internal/utils"

	"github.com/gin-gonic/gin"
)

type EnvironmentHandler struct {
	envService *service.EnvironmentService
}

func NewEnvironmentHandler(envService *service.EnvironmentService) *EnvironmentHandler {
	return &EnvironmentHandler{envService: envService}
}

// ListEnvironments handles GET /api/envs
func (h *EnvironmentHandler) ListEnvironments(c *gin.Context) {
	envs, err := h.envService.List()
	if err != nil {
		c.JSON(utils.GetErrorResponse(err))
		return
	}

	list := make([]dto.Environment, 0, len(envs))
	for _, env := range envs {
		list = append(list, toEnvironmentDTO(env))
	}
	c.JSON(http.StatusOK, list)
}

// GetEnvironment handles GET /api/envs/:envId
func (h *EnvironmentHandler) GetEnvironment(c *gin.Context) {
	env, err := h.envService.Get(c.Param("envId"))
	if err != nil {
		c.JSON(utils.GetErrorResponse(err))
		return
	}
	c.JSON(http.StatusOK, toEnvironmentDTO(env))
}

// CreateEnvironment handles POST /api/envs
func (h *EnvironmentHandler) CreateEnvironment(c *gin.Context) {
	var req dto.EnvironmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(utils.GetErrorResponse(err))
		return
	}

	env, err := h.envService.Create(req.Name, req.ColorCode)
	if err != nil {
		c.JSON(utils.GetErrorResponse(err))
		return
	}
	c.JSON(http.StatusCreated, toEnvironmentDTO(env))
}

// UpdateEnvironment handles PUT /api/envs/:envId
func (h *EnvironmentHandler) UpdateEnvironment(c *gin.Context) {
	var req dto.EnvironmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(utils.GetErrorResponse(err))
		return
	}

	env, err := h.envService.Update(c.Param("envId"), req.Name, req.ColorCode)
	if err != nil {
		c.JSON(utils.GetErrorResponse(err))
		return
	}
	c.JSON(http.StatusOK, toEnvironmentDTO(env))
}

// DeleteEnvironment handles DELETE /api/envs/:envId
func (h *EnvironmentHandler) DeleteEnvironment(c *gin.Context) {
	if err := h.envService.Delete(c.Param("envId")); err != nil {
		c.JSON(utils.GetErrorResponse(err))
		return
	}
	c.JSON(http.StatusNoContent, nil)
}

// RegisterRoutes wires the environment endpoints; mutations are admin-only.
func (h *EnvironmentHandler) RegisterRoutes(r *gin.Engine) {
	envGroup := r.Group("/api/envs")
	{
		envGroup.GET("", h.ListEnvironments)
		envGroup.GET("/:envId", h.GetEnvironment)
		envGroup.POST("", middleware.RequireAdmin(), h.CreateEnvironment)
		envGroup.PUT("/:envId", middleware.RequireAdmin(), h.UpdateEnvironment)
		envGroup.DELETE("/:envId", middleware.RequireAdmin(), h.DeleteEnvironment)
	}
}

func toEnvironmentDTO(env *model.Environment) dto.Environment {
	return dto.Environment{
		UUID:      env.UUID,
		Name:      env.Name,
		ColorCode: env.ColorCode,
		CreatedAt: env.CreatedAt,
		UpdatedAt: env.UpdatedAt,
	}
}
