// SPDX-FileCopyrightText : © 2024 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

//go:build linux

package config

import (
	"os"
	"path/filepath"
)

// configDir resolves $XDG_CONFIG_HOME/jellyfin-desktop-cef, falling back
// to ~/.config per the XDG base directory specification.
func configDir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "jellyfin-desktop-cef"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "jellyfin-desktop-cef"), nil
}
