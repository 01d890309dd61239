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
	"bufio"
	"errors"
	"io"
	"strings"
	"time"

	"devportal-api/src/internal/constants"
	"devportal-api/src/internal/model"
	"devportal-api/src/internal/repository"
	"devportal-api/src/internal/utils"

	"github.com/google/uuid"
)

// CredentialService orchestrates every credential operation: it resolves the
// environment/project scope, enforces per-project key uniqueness, routes
// values through the encryption service and records an audit entry for each
// view and mutation.
type CredentialService struct {
	credentialRepo repository.CredentialRepository
	projectRepo    repository.ProjectRepository
	encryption     *EncryptionService
	audit          *AuditService
}

// NewCredentialService creates a new credential service
func NewCredentialService(credentialRepo repository.CredentialRepository,
	projectRepo repository.ProjectRepository,
	encryption *EncryptionService,
	audit *AuditService) *CredentialService {
	return &CredentialService{
		credentialRepo: credentialRepo,
		projectRepo:    projectRepo,
		encryption:     encryption,
		audit:          audit,
	}
}

// ListByProject returns all credentials of the resolved project. Values stay
// encrypted; masking for transport is the handler's concern.
func (s *CredentialService) ListByProject(envID, projectID string) ([]*model.Credential, error) {
	if _, err := s.getProjectInEnv(envID, projectID); err != nil {
		return nil, err
	}
	return s.credentialRepo.GetCredentialsByProjectID(projectID)
}

// Create encrypts and persists a new credential, then records a
// CREATE_CREDENTIAL audit entry.
func (s *CredentialService) Create(envID, projectID, key, valuePlain, typeStr, description string,
	user *model.User, ip string) (*model.Credential, error) {
	project, err := s.getProjectInEnv(envID, projectID)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(key) == "" {
		return nil, constants.ErrInvalidCredentialKey
	}
	if valuePlain == "" {
		return nil, constants.ErrInvalidCredentialValue
	}

	exists, err := s.credentialRepo.ExistsByProjectAndKey(projectID, key)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, constants.ErrCredentialExists
	}

	encrypted, err := s.encryption.Encrypt(valuePlain)
	if err != nil {
		return nil, err
	}

	credential := &model.Credential{
		UUID:           uuid.New().String(),
		ProjectID:      project.UUID,
		Key:            key,
		ValueEncrypted: encrypted,
		Type:           constants.ResolveCredentialType(typeStr),
		Description:    description,
		UpdatedAt:      time.Now(),
	}
	if user != nil {
		credential.UpdatedBy = user.UUID
	}

	// The unique index is the source of truth for key uniqueness; the
	// existence check above can race with a concurrent create.
	if err := s.credentialRepo.CreateCredential(credential); err != nil {
		if isUniqueViolation(err) {
			return nil, constants.ErrCredentialExists
		}
		return nil, err
	}

	s.recordAudit(user, project, credential.Key, constants.ActionCreateCredential, ip)
	return credential, nil
}

// Update modifies an existing credential in place. The stored secret is
// re-encrypted only when a new plaintext value is supplied; key, type and
// description are always replaced, and updater/timestamp always refresh.
func (s *CredentialService) Update(envID, projectID, credentialID, key, valuePlain, typeStr, description string,
	user *model.User, ip string) (*model.Credential, error) {
	project, err := s.getProjectInEnv(envID, projectID)
	if err != nil {
		return nil, err
	}
	existing, err := s.getCredentialInProject(projectID, credentialID)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(key) == "" {
		return nil, constants.ErrInvalidCredentialKey
	}

	if !strings.EqualFold(existing.Key, key) {
		exists, err := s.credentialRepo.ExistsByProjectAndKey(projectID, key)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, constants.ErrCredentialExists
		}
	}

	existing.Key = key
	if valuePlain != "" {
		encrypted, err := s.encryption.Encrypt(valuePlain)
		if err != nil {
			return nil, err
		}
		existing.ValueEncrypted = encrypted
	}
	existing.Type = constants.ResolveCredentialType(typeStr)
	existing.Description = description
	if user != nil {
		existing.UpdatedBy = user.UUID
	}
	existing.UpdatedAt = time.Now()

	if err := s.credentialRepo.UpdateCredential(existing); err != nil {
		if isUniqueViolation(err) {
			return nil, constants.ErrCredentialExists
		}
		return nil, err
	}

	s.recordAudit(user, project, existing.Key, constants.ActionUpdateCredential, ip)
	return existing, nil
}

// Delete removes a credential and records a DELETE_CREDENTIAL audit entry
// carrying the pre-deletion key, so the trail survives the row.
func (s *CredentialService) Delete(envID, projectID, credentialID string, user *model.User, ip string) error {
	project, err := s.getProjectInEnv(envID, projectID)
	if err != nil {
		return err
	}
	existing, err := s.getCredentialInProject(projectID, credentialID)
	if err != nil {
		return err
	}

	if err := s.credentialRepo.DeleteCredential(existing.UUID); err != nil {
		return err
	}

	s.recordAudit(user, project, existing.Key, constants.ActionDeleteCredential, ip)
	return nil
}

// Reveal decrypts and returns the plaintext value. This is the only
// operation that returns unmasked secret material, and every successful
// invocation records exactly one VIEW_CREDENTIAL audit entry.
func (s *CredentialService) Reveal(envID, projectID, credentialID string, user *model.User, ip string) (string, error) {
	project, err := s.getProjectInEnv(envID, projectID)
	if err != nil {
		return "", err
	}
	existing, err := s.getCredentialInProject(projectID, credentialID)
	if err != nil {
		return "", err
	}

	plaintext, err := s.encryption.Decrypt(existing.ValueEncrypted)
	if err != nil {
		return "", err
	}

	s.recordAudit(user, project, existing.Key, constants.ActionViewCredential, ip)
	return plaintext, nil
}

// Import reads delimiter-separated records (key,value[,type[,description]])
// and routes each well-formed one through the create path. Blank lines and
// lines starting with '#' are comments; lines with fewer than two fields and
// records that fail validation (e.g. a duplicate key) are skipped without
// aborting the batch. The result is the count of credentials created.
func (s *CredentialService) Import(envID, projectID string, r io.Reader, user *model.User, ip string) (int, error) {
	if _, err := s.getProjectInEnv(envID, projectID); err != nil {
		return 0, err
	}

	count := 0
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		parts := strings.Split(line, ",")
		if len(parts) < 2 {
			continue
		}
		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])
		typeStr := ""
		description := ""
		if len(parts) > 2 {
			typeStr = strings.TrimSpace(parts[2])
		}
		if len(parts) > 3 {
			description = strings.TrimSpace(strings.Join(parts[3:], ","))
		}

		if _, err := s.Create(envID, projectID, key, value, typeStr, description, user, ip); err != nil {
			if isValidationError(err) {
				continue
			}
			return count, err
		}
		count++
	}
	if err := scanner.Err(); err != nil {
		return count, err
	}
	return count, nil
}

// getProjectInEnv resolves the (environment, project) scope pair shared by
// every operation: the project must exist and belong to the supplied
// environment, otherwise the operation fails before any mutation or audit
// write.
func (s *CredentialService) getProjectInEnv(envID, projectID string) (*model.Project, error) {
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

// getCredentialInProject confines a credential id to its claimed project,
// independent of the environment/project pair resolution.
func (s *CredentialService) getCredentialInProject(projectID, credentialID string) (*model.Credential, error) {
	credential, err := s.credentialRepo.GetCredentialByUUID(credentialID)
	if err != nil {
		return nil, err
	}
	if credential == nil {
		return nil, constants.ErrCredentialNotFound
	}
	if credential.ProjectID != projectID {
		return nil, constants.ErrCredentialNotInProject
	}
	return credential, nil
}

// recordAudit appends the audit entry for an operation that already
// succeeded. A failed audit write must not discard the operation's result,
// but it is surfaced to the operator's error log rather than swallowed.
func (s *CredentialService) recordAudit(user *model.User, project *model.Project, key, action, ip string) {
	if err := s.audit.LogCredentialAction(user, project, key, action, ip); err != nil {
		utils.LogErrorWithContext("failed to record audit entry", err, map[string]interface{}{
			"action": action,
			"key":    key,
		})
	}
}

// isValidationError reports whether the error is a caller mistake rather
// than an infrastructure failure.
func isValidationError(err error) bool {
	return errors.Is(err, constants.ErrCredentialExists) ||
		errors.Is(err, constants.ErrInvalidCredentialKey) ||
		errors.Is(err, constants.ErrInvalidCredentialValue)
}

// isUniqueViolation reports whether a storage error came from a unique
// constraint, covering both the sqlite3 and postgres drivers.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key value violates unique constraint")
}
