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
	"errors"
	"strings"
	"testing"
	"time"

	"devportal-api/src/internal/constants"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	manager, err := NewJWTManager("unit-test-secret", 15, 7)
	require.NoError(t, err)

	token, err := manager.GenerateAccessToken("user-123", "ADMIN")
	require.NoError(t, err)

	claims, err := manager.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.Subject)
	assert.Equal(t, "ADMIN", claims.Role)
}

func TestRefreshTokenCarriesNoRole(t *testing.T) {
	manager, err := NewJWTManager("unit-test-secret", 15, 7)
	require.NoError(t, err)

	token, err := manager.GenerateRefreshToken("user-123")
	require.NoError(t, err)

	claims, err := manager.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.Subject)
	assert.Empty(t, claims.Role)
}

func TestParseTokenRejectsExpired(t *testing.T) {
	manager, err := NewJWTManager("unit-test-secret", 0, 7)
	require.NoError(t, err)
	// Zero-minute access expiry puts the expiry at issuance time.
	token, err := manager.GenerateAccessToken("user-123", "DEVELOPER")
	require.NoError(t, err)

	time.Sleep(1100 * time.Millisecond)

	_, err = manager.ParseToken(token)
	require.Error(t, err)
	assert.True(t, errors.Is(err, constants.ErrInvalidToken))
}

func TestParseTokenRejectsTampered(t *testing.T) {
	manager, err := NewJWTManager("unit-test-secret", 15, 7)
	require.NoError(t, err)

	token, err := manager.GenerateAccessToken("user-123", "DEVELOPER")
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	tampered := parts[0] + "." + parts[1] + "." + "AAAA" + parts[2][4:]

	_, err = manager.ParseToken(tampered)
	require.Error(t, err)
	assert.True(t, errors.Is(err, constants.ErrInvalidToken))
}

func TestParseTokenRejectsForeignKey(t *testing.T) {
	issuer, err := NewJWTManager("secret-one", 15, 7)
	require.NoError(t, err)
	verifier, err := NewJWTManager("secret-two", 15, 7)
	require.NoError(t, err)

	token, err := issuer.GenerateAccessToken("user-123", "DEVELOPER")
	require.NoError(t, err)

	_, err = verifier.ParseToken(token)
	require.Error(t, err)
	assert.True(t, errors.Is(err, constants.ErrInvalidToken))
}

func TestSecretNormalization(t *testing.T) {
	// A base64 secret decoding to >= 32 bytes is used in decoded form,
	// truncated to 32 bytes. The same leading 32 bytes must interoperate.
	raw := []byte(strings.Repeat("s", 40))
	full := base64.StdEncoding.EncodeToString(raw)
	prefix := base64.StdEncoding.EncodeToString(raw[:32])

	issuer, err := NewJWTManager(full, 15, 7)
	require.NoError(t, err)
	verifier, err := NewJWTManager(prefix, 15, 7)
	require.NoError(t, err)

	token, err := issuer.GenerateAccessToken("user-123", "ADMIN")
	require.NoError(t, err)
	_, err = verifier.ParseToken(token)
	assert.NoError(t, err)

	// A short plain-text secret falls through to raw bytes.
	plain, err := NewJWTManager("short-passphrase", 15, 7)
	require.NoError(t, err)
	token, err = plain.GenerateAccessToken("user-123", "ADMIN")
	require.NoError(t, err)
	_, err = plain.ParseToken(token)
	assert.NoError(t, err)
}

func TestNewJWTManagerRejectsBlankSecret(t *testing.T) {
	_, err := NewJWTManager("", 15, 7)
	require.Error(t, err)
}
