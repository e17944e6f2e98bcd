// SPDX-FileCopyrightText : © 2024 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

package config

import (
	"encoding/json"
	"path/filepath"
	"testing"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	return &Store{path: filepath.Join(t.TempDir(), "settings.json")}
}

func TestLoadMissingFileIsEmpty(t *testing.T) {
	s := testStore(t)
	got := s.Load()
	if got.ServerURL != "" {
		t.Fatalf("ServerURL = %q, want empty", got.ServerURL)
	}
}

func TestSaveServerURLRoundTrip(t *testing.T) {
	s := testStore(t)
	const url = "https://jf.example:8096"
	if err := s.SaveServerURL(url); err != nil {
		t.Fatalf("SaveServerURL: %v", err)
	}
	got := s.Load()
	if got.ServerURL != url {
		t.Fatalf("ServerURL = %q, want %q", got.ServerURL, url)
	}
}

func TestSavePreservesUnknownKeys(t *testing.T) {
	s := testStore(t)
	cur := Settings{
		ServerURL: "https://a",
		Extra:     map[string]json.RawMessage{"futureKey": json.RawMessage(`"kept"`)},
	}
	if err := s.Save(cur); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got := s.Load()
	if got.ServerURL != "https://a" {
		t.Fatalf("ServerURL = %q", got.ServerURL)
	}
	if v, ok := got.Extra["futureKey"]; !ok || string(v) != `"kept"` {
		t.Fatalf("Extra[futureKey] = %s, ok=%v", v, ok)
	}
}
