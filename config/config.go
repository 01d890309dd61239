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

package config

import (
	"fmt"
	"sync"

	"github.com/kelseyhightower/envconfig"
)

// Server holds the configuration parameters for the application.
type Server struct {
	LogLevel string `envconfig:"LOG_LEVEL" default:"DEBUG"`

	// Server configurations
	Port string `envconfig:"PORT" default:"9443"`

	// Database configurations
	Database     Database `envconfig:"DATABASE"`
	DBSchemaPath string   `envconfig:"DB_SCHEMA_PATH" default:"./internal/database/schema.sql"`

	// JWT authentication configurations
	JWT JWT `envconfig:"JWT"`

	// Credential encryption configurations
	Encryption Encryption `envconfig:"ENCRYPTION"`

	// Cookie configurations
	Cookie Cookie `envconfig:"COOKIE"`

	// Default admin bootstrap configurations
	BootstrapAdmin BootstrapAdmin `envconfig:"BOOTSTRAP_ADMIN"`
}

// JWT holds JWT-specific configuration
type JWT struct {
	// Secret is either a base64-encoded key or a raw passphrase; it is
	// normalized to the HS256 minimum key size at startup.
	Secret                        string   `envconfig:"SECRET" default:"change-me-in-production"`
	AccessTokenExpirationMinutes  int      `envconfig:"ACCESS_TOKEN_EXPIRATION_MINUTES" default:"15"`
	RefreshTokenExpirationDays    int      `envconfig:"REFRESH_TOKEN_EXPIRATION_DAYS" default:"7"`
	SkipPaths                     []string `envconfig:"SKIP_PATHS" default:"/health,/api/auth/login,/api/auth/refresh,/api/auth/logout,/api/auth/bootstrap-admin"`
}

// Encryption holds the credential encryption master key configuration
type Encryption struct {
	// Key is the master key used for credential encryption at rest. The raw
	// bytes are truncated or right-padded to exactly 32 bytes (AES-256).
	Key string `envconfig:"KEY" default:"dev-only-insecure-master-key"`
}

// Cookie holds token cookie configuration
type Cookie struct {
	Secure bool `envconfig:"SECURE" default:"false"`
}

// BootstrapAdmin holds the optional default admin seeded on startup
type BootstrapAdmin struct {
	Enabled  bool   `envconfig:"ENABLED" default:"false"`
	Name     string `envconfig:"NAME" default:"Administrator"`
	Email    string `envconfig:"EMAIL" default:"admin@devportal.local"`
	Password string `envconfig:"PASSWORD" default:""`
}

// Database holds database-specific configuration
type Database struct {
	Driver string `envconfig:"DRIVER" default:"sqlite3"`
	// Path is the file path for SQLite databases.
	// Use DATABASE_DB_PATH to override; keeping it distinct from the OS PATH variable.
	Path            string `envconfig:"DB_PATH" default:"./data/devportal.db"`
	Host            string `envconfig:"HOST" default:"localhost"`
	Port            int    `envconfig:"PORT" default:"5432"`
	Name            string `envconfig:"NAME" default:"devportal"`
	User            string `envconfig:"USER" default:""`
	Password        string `envconfig:"PASSWORD" default:""`
	SSLMode         string `envconfig:"SSL_MODE" default:"disable"`
	MaxOpenConns    int    `envconfig:"MAX_OPEN_CONNS" default:"25"`
	MaxIdleConns    int    `envconfig:"MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime int    `envconfig:"CONN_MAX_LIFETIME" default:"300"` // seconds

	// ExecuteSchemaDDL controls whether to run the schema DDL (CREATE TABLE, etc.) on startup.
	// Set to false when the DB user lacks DDL privileges (e.g. deployed Postgres with restricted role).
	ExecuteSchemaDDL bool `envconfig:"EXECUTE_SCHEMA_DDL" default:"true"`
}

// package-level variable and mutex for thread safety
var (
	processOnce     sync.Once
	settingInstance *Server
)

// GetConfig initializes and returns a singleton instance of the Server config.
// It uses sync.Once to ensure that the initialization logic is executed only
// once, making it safe for concurrent use. If there is an error during the
// initialization, the function will panic.
func GetConfig() *Server {
	var err error
	processOnce.Do(func() {
		settingInstance = &Server{}
		err = envconfig.Process("", settingInstance)
		if err == nil {
			err = validateConfig(settingInstance)
		}
	})
	if err != nil {
		panic(err)
	}
	return settingInstance
}

// validateConfig checks the parts of the configuration that cannot fall back
// to a usable default.
func validateConfig(cfg *Server) error {
	if cfg.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET must not be blank")
	}
	if cfg.Encryption.Key == "" {
		return fmt.Errorf("ENCRYPTION_KEY must not be blank")
	}
	if cfg.JWT.AccessTokenExpirationMinutes <= 0 {
		return fmt.Errorf("JWT_ACCESS_TOKEN_EXPIRATION_MINUTES must be positive")
	}
	if cfg.JWT.RefreshTokenExpirationDays <= 0 {
		return fmt.Errorf("JWT_REFRESH_TOKEN_EXPIRATION_DAYS must be positive")
	}
	if cfg.BootstrapAdmin.Enabled && cfg.BootstrapAdmin.Password == "" {
		return fmt.Errorf("bootstrap admin is enabled but BOOTSTRAP_ADMIN_PASSWORD is not configured")
	}
	return nil
}
