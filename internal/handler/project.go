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

type ProjectHandler struct {
	projectService *service.ProjectService
}

func NewProjectHandler(projectService *service.ProjectService) *ProjectHandler {
	return &ProjectHandler{
		projectService: projectService,
	}
}

// ListProjects handles GET /api/envs/:envId/projects
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	projects, err := h.projectService.ListByEnvironment(c.Param("envId"))
	if err != nil {
		c.JSON(utils.GetErrorResponse(err))
		return
	}

	list := make([]dto.Project, 0, len(projects))
	for _, project := range projects {
		list = append(list, toProjectDTO(project))
	}
	c.JSON(http.StatusOK, list)
}

// GetProject handles GET /api/envs/:envId/projects/:projectId
func (h *ProjectHandler) GetProject(c *gin.Context) {
	project, err := h.projectService.Get(c.Param("envId"), c.Param("projectId"))
	if err != nil {
		c.JSON(utils.GetErrorResponse(err))
		return
	}
	c.JSON(http.StatusOK, toProjectDTO(project))
}

// CreateProject handles POST /api/envs/:envId/projects
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var req dto.ProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(utils.GetErrorResponse(err))
		return
	}

	project, err := h.projectService.Create(c.Param("envId"), req.Name, req.Description, req.Team, req.Status)
	if err != nil {
		c.JSON(utils.GetErrorResponse(err))
		return
	}
	c.JSON(http.StatusCreated, toProjectDTO(project))
}

// UpdateProject handles PUT /api/envs/:envId/projects/:projectId
func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	var req dto.ProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(utils.GetErrorResponse(err))
		return
	}

	project, err := h.projectService.Update(c.Param("envId"), c.Param("projectId"),
		req.Name, req.Description, req.Team, req.Status)
	if err != nil {
		c.JSON(utils.GetErrorResponse(err))
		return
	}
	c.JSON(http.StatusOK, toProjectDTO(project))
}

// DeleteProject handles DELETE /api/envs/:envId/projects/:projectId
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	err := h.projectService.Delete(c.Param("envId"), c.Param("projectId"))
	if err != nil {
		c.JSON(utils.GetErrorResponse(err))
		return
	}
	c.JSON(http.StatusNoContent, nil)
}

// RegisterRoutes wires the project endpoints; mutations are admin-only.
func (h *ProjectHandler) RegisterRoutes(r *gin.Engine) {
	projectGroup := r.Group("/api/envs/:envId/projects")
	{
		projectGroup.GET("", h.ListProjects)
		projectGroup.GET("/:projectId", h.GetProject)
		projectGroup.POST("", middleware.RequireAdmin(), h.CreateProject)
		projectGroup.PUT("/:projectId", middleware.RequireAdmin(), h.UpdateProject)
		projectGroup.DELETE("/:projectId", middleware.RequireAdmin(), h.DeleteProject)
	}
}

func toProjectDTO(project *model.Project) dto.Project {
	return dto.Project{
		UUID:          project.UUID,
		EnvironmentID: project.EnvironmentID,
		Name:          project.Name,
		Description:   project.Description,
		Team:          project.Team,
		Status:        project.Status,
		CreatedAt:     project.CreatedAt,
		UpdatedAt:     project.UpdatedAt,
	}
}
