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
	"strings"

	"devportal-api/src/internal/constants"
	"devportal-api/src/internal/model"
	"devportal-api/src/internal/repository"

	"github.com/google/uuid"
)

// ProjectService manages projects inside an environment. A project's owning
// environment is fixed at creation time.
type ProjectService struct {
	projectRepo    repository.ProjectRepository
	envRepo        repository.EnvironmentRepository
	credentialRepo repository.CredentialRepository
}

// NewProjectService creates a new project service
func NewProjectService(projectRepo repository.ProjectRepository,
	envRepo repository.EnvironmentRepository,
	credentialRepo repository.CredentialRepository) *ProjectService {
	return &ProjectService{
		projectRepo:    projectRepo,
		envRepo:        envRepo,
		credentialRepo: credentialRepo,
	}
}

// ListByEnvironment returns all projects of an environment
func (s *ProjectService) ListByEnvironment(envID string) ([]*model.Project, error) {
	if err := s.checkEnvironment(envID); err != nil {
		return nil, err
	}
	return s.projectRepo.GetProjectsByEnvironmentID(envID)
}

// Get returns one project, scoped to its environment
func (s *ProjectService) Get(envID, projectID string) (*model.Project, error) {
	if err := s.checkEnvironment(envID); err != nil {
		return nil, err
	}
	project, err := s.projectRepo.GetProjectByUUID(projectID)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, constants.ErrProjectNotFound
	}
	if project.EnvironmentID != envID {
		return nil, constants.ErrProjectNotInEnv
	}
	return project, nil
}

// Create adds a project to an environment. Names are unique per environment,
// compared case-insensitively.
func (s *ProjectService) Create(envID, name, description, team, status string) (*model.Project, error) {
	if err := s.checkEnvironment(envID); err != nil {
		return nil, err
	}
	if strings.TrimSpace(name) == "" {
		return nil, constants.ErrInvalidProjectName
	}

	exists, err := s.projectRepo.ExistsByEnvironmentAndName(envID, name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, constants.ErrProjectExists
	}

	project := &model.Project{
		UUID:          uuid.New().String(),
		EnvironmentID: envID,
		Name:          name,
		Description:   description,
		Team:          team,
		Status:        status,
	}
	if err := s.projectRepo.CreateProject(project); err != nil {
		if isUniqueViolation(err) {
			return nil, constants.ErrProjectExists
		}
		return nil, err
	}
	return project, nil
}

// Update modifies a project's metadata. The environment linkage cannot be
// changed here; the repository never writes that column on update.
func (s *ProjectService) Update(envID, projectID, name, description, team, status string) (*model.Project, error) {
	project, err := s.Get(envID, projectID)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(name) == "" {
		return nil, constants.ErrInvalidProjectName
	}

	if !strings.EqualFold(project.Name, name) {
		exists, err := s.projectRepo.ExistsByEnvironmentAndName(envID, name)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, constants.ErrProjectExists
		}
	}

	project.Name = name
	project.Description = description
	project.Team = team
	project.Status = status
	if err := s.projectRepo.UpdateProject(project); err != nil {
		if isUniqueViolation(err) {
			return nil, constants.ErrProjectExists
		}
		return nil, err
	}
	return project, nil
}

// Delete removes an empty project. Deletion is refused while credentials
// still exist so secrets are never dropped implicitly.
func (s *ProjectService) Delete(envID, projectID string) error {
	project, err := s.Get(envID, projectID)
	if err != nil {
		return err
	}

	credentials, err := s.credentialRepo.GetCredentialsByProjectID(project.UUID)
	if err != nil {
		return err
	}
	if len(credentials) > 0 {
		return constants.ErrProjectHasCredentials
	}

	return s.projectRepo.DeleteProject(project.UUID)
}

func (s *ProjectService) checkEnvironment(envID string) error {
	env, err := s.envRepo.GetEnvironmentByUUID(envID)
	if err != nil {
		return err
	}
	if env == nil {
		return constants.ErrEnvironmentNotFound
	}
	return nil
}
