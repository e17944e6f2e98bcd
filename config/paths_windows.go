// SPDX-FileCopyrightText : © 2024 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

//go:build windows

package config

import (
	"os"
	"path/filepath"
)

// configDir resolves %LOCALAPPDATA%\jellyfin-desktop-cef.
func configDir() (string, error) {
	if local := os.Getenv("LOCALAPPDATA"); local != "" {
		return filepath.Join(local, "jellyfin-desktop-cef"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, "AppData", "Local", "jellyfin-desktop-cef"), nil
}
