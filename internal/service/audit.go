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
	"time"

	"devportal-api/src/internal/dto"
	"devportal-api/src/internal/model"
	"devportal-api/src/internal/repository"

	"github.com/google/uuid"
)

// AuditService appends immutable audit entries for credential operations and
// exposes the denormalized reporting view. Entries are written synchronously
// in the operation that performs the underlying action.
type AuditService struct {
	auditRepo repository.AuditLogRepository
}

// NewAuditService creates a new audit service
func NewAuditService(auditRepo repository.AuditLogRepository) *AuditService {
	return &AuditService{auditRepo: auditRepo}
}

// LogCredentialAction appends one audit entry for a credential-affecting
// operation. The environment linkage is derived from the credential's
// project, and the key is captured as text so the entry survives deletion of
// the credential row.
func (s *AuditService) LogCredentialAction(user *model.User, project *model.Project, credentialKey, action, ip string) error {
	entry := &model.AuditLog{
		UUID:          uuid.New().String(),
		Action:        action,
		CredentialKey: credentialKey,
		IPAddress:     ip,
		CreatedAt:     time.Now(),
	}
	if user != nil {
		entry.UserID = user.UUID
	}
	if project != nil {
		entry.ProjectID = project.UUID
		entry.EnvironmentID = project.EnvironmentID
	}
	return s.auditRepo.CreateAuditLog(entry)
}

// ListAll returns every audit entry newest-first with user, project and
// environment details for reporting.
func (s *AuditService) ListAll() ([]*dto.AuditLogEntry, error) {
	details, err := s.auditRepo.ListAuditLogs()
	if err != nil {
		return nil, err
	}

	entries := make([]*dto.AuditLogEntry, 0, len(details))
	for _, d := range details {
		entries = append(entries, &dto.AuditLogEntry{
			UUID:            d.UUID,
			UserID:          d.UserID,
			UserEmail:       d.UserEmail,
			UserName:        d.UserName,
			EnvironmentID:   d.EnvironmentID,
			EnvironmentName: d.EnvironmentName,
			ProjectID:       d.ProjectID,
			ProjectName:     d.ProjectName,
			Action:          d.Action,
			CredentialKey:   d.CredentialKey,
			IPAddress:       d.IPAddress,
			CreatedAt:       d.CreatedAt,
		})
	}
	return entries, nil
}
