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

// EnvironmentService manages the top-level environments that own projects.
type EnvironmentService struct {
	envRepo repository.EnvironmentRepository
}

// NewEnvironmentService creates a new environment service
func NewEnvironmentService(envRepo repository.EnvironmentRepository) *EnvironmentService {
	return &EnvironmentService{envRepo: envRepo}
}

// List returns all environments
func (s *EnvironmentService) List() ([]*model.Environment, error) {
	return s.envRepo.ListEnvironments()
}

// Get returns one environment by ID
func (s *EnvironmentService) Get(envID string) (*model.Environment, error) {
	env, err := s.envRepo.GetEnvironmentByUUID(envID)
	if err != nil {
		return nil, err
	}
	if env == nil {
		return nil, constants.ErrEnvironmentNotFound
	}
	return env, nil
}

// Create adds a new environment. Names are unique case-insensitively.
func (s *EnvironmentService) Create(name, colorCode string) (*model.Environment, error) {
	if strings.TrimSpace(name) == "" {
		return nil, constants.ErrInvalidEnvironment
	}

	exists, err := s.envRepo.ExistsByName(name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, constants.ErrEnvironmentExists
	}

	env := &model.Environment{
		UUID:      uuid.New().String(),
		Name:      name,
		ColorCode: colorCode,
	}
	if err := s.envRepo.CreateEnvironment(env); err != nil {
		if isUniqueViolation(err) {
			return nil, constants.ErrEnvironmentExists
		}
		return nil, err
	}
	return env, nil
}

// Update renames or recolors an environment
func (s *EnvironmentService) Update(envID, name, colorCode string) (*model.Environment, error) {
	env, err := s.Get(envID)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(name) == "" {
		return nil, constants.ErrInvalidEnvironment
	}

	if !strings.EqualFold(env.Name, name) {
		exists, err := s.envRepo.ExistsByName(name)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, constants.ErrEnvironmentExists
		}
	}

	env.Name = name
	env.ColorCode = colorCode
	if err := s.envRepo.UpdateEnvironment(env); err != nil {
		if isUniqueViolation(err) {
			return nil, constants.ErrEnvironmentExists
		}
		return nil, err
	}
	return env, nil
}

// Delete removes an environment. Contained projects and their credentials go
// with it through the schema's cascading foreign keys.
func (s *EnvironmentService) Delete(envID string) error {
	if _, err := s.Get(envID); err != nil {
		return err
	}
	return s.envRepo.DeleteEnvironment(envID)
}
