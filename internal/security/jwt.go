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

package security

import (
	"encoding/base64"
	"fmt"
	"time"

	"devportal-api/src/internal/constants"

	"github.com/golang-jwt/jwt/v5"
)

// minKeyBytes is the minimum HMAC key size for HS256.
const minKeyBytes = 32

// Claims is the JWT claims structure for both token kinds. Role is only set
// on access tokens; refresh tokens carry the subject alone.
type Claims struct {
	Role string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// JWTManager issues and validates signed access and refresh tokens under one
// symmetric signing key. The key is read-only after construction and safe for
// concurrent use.
type JWTManager struct {
	key           []byte
	accessExpiry  time.Duration
	refreshExpiry time.Duration
}

// NewJWTManager creates a token manager from the configured secret and expiry
// settings. Access expiry is minutes-scale, refresh expiry days-scale.
func NewJWTManager(secret string, accessMinutes, refreshDays int) (*JWTManager, error) {
	key, err := secretToKeyBytes(secret)
	if err != nil {
		return nil, err
	}
	return &JWTManager{
		key:           key,
		accessExpiry:  time.Duration(accessMinutes) * time.Minute,
		refreshExpiry: time.Duration(refreshDays) * 24 * time.Hour,
	}, nil
}

// GenerateAccessToken issues a short-lived access token carrying the subject
// and role claims.
func (m *JWTManager) GenerateAccessToken(subject, role string) (string, error) {
	now := time.Now()
	claims := Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.accessExpiry)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.key)
}

// GenerateRefreshToken issues a long-lived refresh token carrying only the
// subject. The caller re-derives the current role from persisted state when
// the token is redeemed.
func (m *JWTManager) GenerateRefreshToken(subject string) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.refreshExpiry)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.key)
}

// ParseToken validates the signature and expiry of a token and returns its
// claims. Any failure surfaces as constants.ErrInvalidToken.
func (m *JWTManager) ParseToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.key, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", constants.ErrInvalidToken, err)
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, constants.ErrInvalidToken
	}
	return claims, nil
}

// secretToKeyBytes normalizes the configured secret to the HS256 key size.
// A secret that decodes as base64 to at least 32 bytes is used in decoded
// form, truncated to 32 bytes; anything else is used as raw text bytes,
// right-padded or truncated to 32 bytes.
func secretToKeyBytes(secret string) ([]byte, error) {
	if secret == "" {
		return nil, fmt.Errorf("JWT secret must not be blank")
	}
	if decoded, err := base64.StdEncoding.DecodeString(secret); err == nil && len(decoded) >= minKeyBytes {
		return decoded[:minKeyBytes], nil
	}
	key := make([]byte, minKeyBytes)
	copy(key, secret)
	return key, nil
}
