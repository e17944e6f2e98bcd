// SPDX-FileCopyrightText : © 2024 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

//go:build darwin

package config

import (
	"os"
	"path/filepath"
)

// configDir resolves ~/Library/Application Support/jellyfin-desktop-cef.
func configDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, "Library", "Application Support", "jellyfin-desktop-cef"), nil
}
