// SPDX-FileCopyrightText : © 2024 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

//go:build !linux

package main

import (
	"testing"

	"github.com/jellyfin/jellyfin-desktop-go/player"
)

func TestNewMPRISBackendIsUnavailableOffLinux(t *testing.T) {
	backend, err := newMPRISBackend(&player.CommandQueue{})
	if err == nil {
		t.Fatalf("got nil error, want an unavailable-off-linux error")
	}
	if backend != nil {
		t.Fatalf("got non-nil backend %+v on error", backend)
	}
}
