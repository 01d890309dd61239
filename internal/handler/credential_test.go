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
	"bytes"
	"database/sql"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"devportal-api/src/internal/constants"
	"devportal-api/src/internal/database"
	"devportal-api/src/internal/dto"
	"devportal-api/src/internal/middleware"
	"devportal-api/src/internal/repository"
	"devportal-api/src/internal/security"
	"devportal-api/src/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "github.com/mattn/go-sqlite3"
)

// handlerTestStack wires the full HTTP surface against a temporary SQLite
// database, mirroring the production server assembly.
type handlerTestStack struct {
	router       *gin.Engine
	adminToken   string
	devToken     string
	auditService *service.AuditService
	envID        string
	projectID    string
}

func setupHandlerStack(t *testing.T) *handlerTestStack {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dbPath := filepath.Join(t.TempDir(), "test.db")
	sqlDB, err := sql.Open("sqlite3", dbPath)
	require.NoError(t, err)
	_, err = sqlDB.Exec("PRAGMA foreign_keys = ON")
	require.NoError(t, err)
	db := &database.DB{DB: sqlDB}
	t.Cleanup(func() { db.Close() })

	schema := `
		CREATE TABLE users (
			uuid TEXT PRIMARY KEY, name TEXT NOT NULL,
			email TEXT NOT NULL COLLATE NOCASE UNIQUE,
			password_hash TEXT NOT NULL, role TEXT NOT NULL,
			active BOOLEAN NOT NULL DEFAULT 1, created_at TIMESTAMP NOT NULL
		);
		CREATE TABLE environments (
			uuid TEXT PRIMARY KEY, name TEXT NOT NULL COLLATE NOCASE UNIQUE,
			color_code TEXT, created_at TIMESTAMP NOT NULL, updated_at TIMESTAMP NOT NULL
		);
		CREATE TABLE projects (
			uuid TEXT PRIMARY KEY,
			environment_id TEXT NOT NULL REFERENCES environments(uuid) ON DELETE CASCADE,
			name TEXT NOT NULL COLLATE NOCASE, description TEXT, team TEXT, status TEXT,
			created_at TIMESTAMP NOT NULL, updated_at TIMESTAMP NOT NULL,
			UNIQUE (environment_id, name)
		);
		CREATE TABLE credentials (
			uuid TEXT PRIMARY KEY,
			project_id TEXT NOT NULL REFERENCES projects(uuid) ON DELETE CASCADE,
			key TEXT NOT NULL COLLATE NOCASE, value_encrypted TEXT NOT NULL,
			type TEXT NOT NULL DEFAULT 'SECRET', description TEXT,
			updated_by TEXT REFERENCES users(uuid), updated_at TIMESTAMP NOT NULL,
			UNIQUE (project_id, key)
		);
		CREATE TABLE audit_logs (
			uuid TEXT PRIMARY KEY, user_id TEXT, environment_id TEXT, project_id TEXT,
			action TEXT NOT NULL, credential_key TEXT NOT NULL,
			ip_address TEXT, created_at TIMESTAMP NOT NULL
		);
	`
	_, err = db.Exec(schema)
	require.NoError(t, err)

	envRepo := repository.NewEnvironmentRepo(db)
	projectRepo := repository.NewProjectRepo(db)
	credentialRepo := repository.NewCredentialRepo(db)
	userRepo := repository.NewUserRepo(db)
	auditRepo := repository.NewAuditLogRepo(db)

	jwtManager, err := security.NewJWTManager("handler-test-secret", 15, 7)
	require.NoError(t, err)
	cookieManager := security.NewCookieManager(false, 15, 7)

	auditService := service.NewAuditService(auditRepo)
	envService := service.NewEnvironmentService(envRepo)
	projectService := service.NewProjectService(projectRepo, envRepo, credentialRepo)
	credentialService := service.NewCredentialService(credentialRepo, projectRepo,
		service.NewEncryptionService("handler-test-master-key"), auditService)
	authService := service.NewAuthService(userRepo, jwtManager)
	adminService := service.NewAdminService(userRepo)

	admin, err := authService.BootstrapAdmin("Root", "root@example.com", "bootstrap-pass")
	require.NoError(t, err)
	invited, err := adminService.InviteUser("Jamie", "jamie@example.com", constants.RoleDeveloper)
	require.NoError(t, err)

	adminToken, err := jwtManager.GenerateAccessToken(admin.UUID, admin.Role)
	require.NoError(t, err)
	devToken, err := jwtManager.GenerateAccessToken(invited.UserID, constants.RoleDeveloper)
	require.NoError(t, err)

	env, err := envService.Create("qa", "green")
	require.NoError(t, err)
	project, err := projectService.Create(env.UUID, "billing", "", "", "")
	require.NoError(t, err)

	router := gin.New()
	router.Use(middleware.AuthMiddleware(middleware.AuthConfig{
		JWT:       jwtManager,
		SkipPaths: []string{"/api/auth/login"},
	}))
	NewAuthHandler(authService, cookieManager).RegisterRoutes(router)
	NewEnvironmentHandler(envService).RegisterRoutes(router)
	NewProjectHandler(projectService).RegisterRoutes(router)
	NewCredentialHandler(credentialService, authService).RegisterRoutes(router)
	NewAdminHandler(adminService, auditService).RegisterRoutes(router)

	return &handlerTestStack{
		router:       router,
		adminToken:   adminToken,
		devToken:     devToken,
		auditService: auditService,
		envID:        env.UUID,
		projectID:    project.UUID,
	}
}

func (s *handlerTestStack) do(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *handlerTestStack) credentialsPath() string {
	return "/api/envs/" + s.envID + "/projects/" + s.projectID + "/credentials"
}

func TestCredentialListIsMasked(t *testing.T) {
	stack := setupHandlerStack(t)

	w := stack.do(t, http.MethodPost, stack.credentialsPath(), stack.adminToken,
		dto.CredentialRequest{Key: "DB_PASSWORD", Value: "hunter2"})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.NotContains(t, w.Body.String(), "hunter2")

	w = stack.do(t, http.MethodGet, stack.credentialsPath(), stack.devToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var list []dto.Credential
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 1)
	assert.Equal(t, constants.MaskedValue, list[0].Value)
	assert.NotContains(t, w.Body.String(), "hunter2")
}

func TestCredentialRevealOpenToDevelopersAndAudited(t *testing.T) {
	stack := setupHandlerStack(t)

	w := stack.do(t, http.MethodPost, stack.credentialsPath(), stack.adminToken,
		dto.CredentialRequest{Key: "DB_PASSWORD", Value: "hunter2"})
	require.Equal(t, http.StatusCreated, w.Code)

	var created dto.Credential
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	// Reveal is identity-gated, not role-gated: the developer may read it.
	w = stack.do(t, http.MethodGet, stack.credentialsPath()+"/"+created.UUID+"/reveal",
		stack.devToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "hunter2")

	entries, err := stack.auditService.ListAll()
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, constants.ActionViewCredential, entries[0].Action)
}

func TestCredentialMutationsRejectDeveloperBeforeAnyWrite(t *testing.T) {
	stack := setupHandlerStack(t)

	w := stack.do(t, http.MethodPost, stack.credentialsPath(), stack.devToken,
		dto.CredentialRequest{Key: "DB_PASSWORD", Value: "hunter2"})
	assert.Equal(t, http.StatusForbidden, w.Code)

	// Nothing was persisted and nothing was audited.
	w = stack.do(t, http.MethodGet, stack.credentialsPath(), stack.devToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list []dto.Credential
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Empty(t, list)

	entries, err := stack.auditService.ListAll()
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestAdminEndpointsRejectDeveloper(t *testing.T) {
	stack := setupHandlerStack(t)

	w := stack.do(t, http.MethodGet, "/api/admin/audit", stack.devToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
	w = stack.do(t, http.MethodGet, "/api/admin/users", stack.devToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
	w = stack.do(t, http.MethodPost, "/api/admin/users/invite", stack.devToken,
		dto.InviteUserRequest{Name: "X", Email: "x@example.com", Role: constants.RoleDeveloper})
	assert.Equal(t, http.StatusForbidden, w.Code)

	// The same calls succeed for the admin.
	w = stack.do(t, http.MethodGet, "/api/admin/audit", stack.adminToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	w = stack.do(t, http.MethodGet, "/api/admin/users", stack.adminToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCredentialDuplicateKeyReturnsConflict(t *testing.T) {
	stack := setupHandlerStack(t)

	w := stack.do(t, http.MethodPost, stack.credentialsPath(), stack.adminToken,
		dto.CredentialRequest{Key: "API_KEY", Value: "v1"})
	require.Equal(t, http.StatusCreated, w.Code)

	w = stack.do(t, http.MethodPost, stack.credentialsPath(), stack.adminToken,
		dto.CredentialRequest{Key: "api_key", Value: "v2"})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestCredentialImportMultipart(t *testing.T) {
	stack := setupHandlerStack(t)

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", "credentials.csv")
	require.NoError(t, err)
	_, err = part.Write([]byte(strings.Join([]string{
		"# seed data",
		"DB_HOST,localhost",
		"DB_PORT,5432,SECRET,database port",
		"MALFORMED",
	}, "\n")))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, stack.credentialsPath()+"/import", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+stack.adminToken)
	w := httptest.NewRecorder()
	stack.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var result dto.ImportResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, 2, result.Created)
}

func TestLoginSetsTokenCookies(t *testing.T) {
	stack := setupHandlerStack(t)

	w := stack.do(t, http.MethodPost, "/api/auth/login", "",
		dto.LoginRequest{Email: "root@example.com", Password: "bootstrap-pass"})
	require.Equal(t, http.StatusOK, w.Code)

	cookies := w.Result().Cookies()
	names := make(map[string]bool, len(cookies))
	for _, cookie := range cookies {
		names[cookie.Name] = true
		assert.True(t, cookie.HttpOnly)
	}
	assert.True(t, names[security.AccessTokenCookie])
	assert.True(t, names[security.RefreshTokenCookie])
	assert.NotContains(t, w.Body.String(), "accessToken\":")
}
