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
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"

	"devportal-api/src/internal/constants"
)

const (
	// aesKeySize is the AES-256 key length the master key is normalized to.
	aesKeySize = 32
	// nonceSize is the GCM nonce length prefixed to every ciphertext.
	nonceSize = 12
)

// EncryptionService encrypts and decrypts credential values with AES-256-GCM
// under a process-wide master key. The key is read-only after construction
// and safe for concurrent use. Both operations are pure: no state is touched
// beyond the ciphertext in, plaintext out contract.
type EncryptionService struct {
	key []byte
}

// NewEncryptionService normalizes the configured master key to exactly 32
// bytes by truncating or right-padding the raw bytes. This is a deliberate
// lossy normalization, not a hash derivation: it matches how the key has
// historically been provisioned and keeps existing ciphertexts decryptable.
func NewEncryptionService(masterKey string) *EncryptionService {
	key := make([]byte, aesKeySize)
	copy(key, masterKey)
	return &EncryptionService{key: key}
}

// Encrypt seals the plaintext with a fresh random 96-bit nonce and returns
// base64(nonce || ciphertext || tag) for storage as text.
func (s *EncryptionService) Encrypt(plaintext string) (string, error) {
	block, err := aes.NewCipher(s.key)
	if err != nil {
		return "", fmt.Errorf("%w: %v", constants.ErrEncryption, err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return "", fmt.Errorf("%w: %v", constants.ErrEncryption, err)
	}

	nonce := make([]byte, nonceSize)
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("%w: generating nonce: %v", constants.ErrEncryption, err)
	}

	sealed := gcm.Seal(nonce, nonce, []byte(plaintext), nil)
	return base64.StdEncoding.EncodeToString(sealed), nil
}

// Decrypt reverses Encrypt: decode, split the nonce from the remainder,
// verify the tag and decrypt. Any failure (malformed blob, tag mismatch,
// wrong key) surfaces as a crypto error; corrupted plaintext is never
// returned.
func (s *EncryptionService) Decrypt(blob string) (string, error) {
	sealed, err := base64.StdEncoding.DecodeString(blob)
	if err != nil {
		return "", fmt.Errorf("%w: %v", constants.ErrDecryption, err)
	}
	if len(sealed) < nonceSize {
		return "", fmt.Errorf("%w: ciphertext shorter than nonce", constants.ErrDecryption)
	}

	block, err := aes.NewCipher(s.key)
	if err != nil {
		return "", fmt.Errorf("%w: %v", constants.ErrDecryption, err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return "", fmt.Errorf("%w: %v", constants.ErrDecryption, err)
	}

	nonce, ciphertext := sealed[:nonceSize], sealed[nonceSize:]
	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", constants.ErrDecryption, err)
	}
	return string(plaintext), nil
}
