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
	"net/http"
)

// Cookie names for the two token kinds.
const (
	AccessTokenCookie  = "accessToken"
	RefreshTokenCookie = "refreshToken"
)

// CookieManager writes and clears the httpOnly token cookies. Cookie max-ages
// track the token expiry settings so the browser drops them together.
type CookieManager struct {
	secure        bool
	accessMaxAge  int // seconds
	refreshMaxAge int // seconds
}

// NewCookieManager creates a cookie manager from the cookie and token expiry
// configuration.
func NewCookieManager(secure bool, accessMinutes, refreshDays int) *CookieManager {
	return &CookieManager{
		secure:        secure,
		accessMaxAge:  accessMinutes * 60,
		refreshMaxAge: refreshDays * 24 * 60 * 60,
	}
}

// SetTokenCookies attaches both token cookies to the response
func (c *CookieManager) SetTokenCookies(w http.ResponseWriter, accessToken, refreshToken string) {
	http.SetCookie(w, c.buildCookie(AccessTokenCookie, accessToken, c.accessMaxAge))
	http.SetCookie(w, c.buildCookie(RefreshTokenCookie, refreshToken, c.refreshMaxAge))
}

// ClearTokenCookies expires both token cookies
func (c *CookieManager) ClearTokenCookies(w http.ResponseWriter) {
	http.SetCookie(w, c.buildCookie(AccessTokenCookie, "", -1))
	http.SetCookie(w, c.buildCookie(RefreshTokenCookie, "", -1))
}

func (c *CookieManager) buildCookie(name, value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   c.secure,
		SameSite: http.SameSiteStrictMode,
	}
}
