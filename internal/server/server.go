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

package server

import (
	"fmt"
	"log"
	"net/http"

	"devportal-api/src/config"
	"devportal-api/src/internal/database"
	"devportal-api/src/internal/handler"
	"devportal-api/src/internal/middleware"
	"devportal-api/src/internal/repository"
	"devportal-api/src/internal/security"
	"devportal-api/src/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type Server struct {
	router *gin.Engine
	db     *database.DB
}

// StartPortalAPIServer creates a new server instance with all dependencies initialized
func StartPortalAPIServer(cfg *config.Server) (*Server, error) {
	// Initialize database using configuration
	db, err := database.NewConnection(&cfg.Database)
	if err != nil {
		return nil, err
	}

	// Initialize schema (skip when ExecuteSchemaDDL is false, e.g. deployed Postgres without DDL access)
	if cfg.Database.ExecuteSchemaDDL {
		if err := db.InitSchema(cfg.DBSchemaPath); err != nil {
			return nil, err
		}
	} else {
		log.Printf("Skipping schema DDL execution (DATABASE_EXECUTE_SCHEMA_DDL=false)\n")
	}

	// Initialize token and cookie plumbing
	jwtManager, err := security.NewJWTManager(cfg.JWT.Secret,
		cfg.JWT.AccessTokenExpirationMinutes, cfg.JWT.RefreshTokenExpirationDays)
	if err != nil {
		return nil, err
	}
	cookieManager := security.NewCookieManager(cfg.Cookie.Secure,
		cfg.JWT.AccessTokenExpirationMinutes, cfg.JWT.RefreshTokenExpirationDays)

	encryptionService := service.NewEncryptionService(cfg.Encryption.Key)

	// Initialize repositories
	envRepo := repository.NewEnvironmentRepo(db)
	projectRepo := repository.NewProjectRepo(db)
	credentialRepo := repository.NewCredentialRepo(db)
	userRepo := repository.NewUserRepo(db)
	auditRepo := repository.NewAuditLogRepo(db)

	// Initialize services
	auditService := service.NewAuditService(auditRepo)
	envService := service.NewEnvironmentService(envRepo)
	projectService := service.NewProjectService(projectRepo, envRepo, credentialRepo)
	credentialService := service.NewCredentialService(credentialRepo, projectRepo, encryptionService, auditService)
	authService := service.NewAuthService(userRepo, jwtManager)
	adminService := service.NewAdminService(userRepo)

	// Seed the configured default admin when no admin exists yet
	if cfg.BootstrapAdmin.Enabled {
		if err := authService.EnsureDefaultAdmin(cfg.BootstrapAdmin.Name,
			cfg.BootstrapAdmin.Email, cfg.BootstrapAdmin.Password); err != nil {
			return nil, err
		}
	}

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService, cookieManager)
	envHandler := handler.NewEnvironmentHandler(envService)
	projectHandler := handler.NewProjectHandler(projectService)
	credentialHandler := handler.NewCredentialHandler(credentialService, authService)
	adminHandler := handler.NewAdminHandler(adminService, auditService)

	// Setup router
	router := gin.Default()

	// Configure and apply CORS middleware first (before auth middleware)
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	corsConfig.AllowCredentials = true
	router.Use(cors.New(corsConfig))

	// Configure and apply JWT authentication middleware
	authConfig := middleware.AuthConfig{
		JWT:       jwtManager,
		SkipPaths: cfg.JWT.SkipPaths,
	}
	router.Use(middleware.AuthMiddleware(authConfig))

	// Register routes
	authHandler.RegisterRoutes(router)
	envHandler.RegisterRoutes(router)
	projectHandler.RegisterRoutes(router)
	credentialHandler.RegisterRoutes(router)
	adminHandler.RegisterRoutes(router)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	return &Server{
		router: router,
		db:     db,
	}, nil
}

// Start starts the HTTP server
func (s *Server) Start(port string) error {
	if port == "" {
		return fmt.Errorf("port cannot be empty")
	}

	address := fmt.Sprintf(":%s", port)
	server := &http.Server{
		Addr:    address,
		Handler: s.router,
	}

	log.Printf("Starting HTTP server on http://localhost:%s", port)
	return server.ListenAndServe()
}

// GetRouter returns the gin router for testing purposes
func (s *Server) GetRouter() *gin.Engine {
	return s.router
}
