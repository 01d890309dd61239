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

package constants

import "testing"

func TestResolveCredentialType(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"FILE", CredentialTypeFile},
		{"file", CredentialTypeFile},
		{"File", CredentialTypeFile},
		{"SECRET", CredentialTypeSecret},
		{"secret", CredentialTypeSecret},
		{"", CredentialTypeSecret},
		{"certificate", CredentialTypeSecret},
	}

	for _, tt := range tests {
		if got := ResolveCredentialType(tt.input); got != tt.want {
			t.Errorf("ResolveCredentialType(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
