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

package database

import "testing"

func TestRebindRewritesPlaceholdersForPostgres(t *testing.T) {
	db := &DB{driver: "postgres"}

	got := db.Rebind("UPDATE credentials SET key = ?, value_encrypted = ? WHERE uuid = ?")
	want := "UPDATE credentials SET key = $1, value_encrypted = $2 WHERE uuid = $3"
	if got != want {
		t.Errorf("Rebind() = %q, want %q", got, want)
	}
}

func TestRebindLeavesOtherDriversUntouched(t *testing.T) {
	query := "SELECT COUNT(1) FROM credentials WHERE project_id = ? AND LOWER(key) = LOWER(?)"

	for _, driver := range []string{"sqlite3", ""} {
		db := &DB{driver: driver}
		if got := db.Rebind(query); got != query {
			t.Errorf("Rebind() with driver %q = %q, want the query unchanged", driver, got)
		}
	}
}

func TestRebindPassesPlaceholderFreeStatements(t *testing.T) {
	db := &DB{driver: "postgres"}

	query := "PRAGMA foreign_keys = ON"
	if got := db.Rebind(query); got != query {
		t.Errorf("Rebind() = %q, want %q", got, query)
	}
}
