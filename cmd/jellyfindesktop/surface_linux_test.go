// SPDX-FileCopyrightText : © 2024 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

//go:build linux

package main

import (
	"os"
	"testing"

	"github.com/jellyfin/jellyfin-desktop-go/platform"
)

// TestOpenNativeSurfaceFailsDeterministicallyWithoutACompositor runs in
// CI/headless environments with no Wayland socket and no X11 display: it
// exercises openNativeSurface's real failure path (device.New connects
// nowhere, gpucontext.Select's Wayland and GLX11 paths both fail) rather
// than asserting against a hand-written "not wired" placeholder error.
func TestOpenNativeSurfaceFailsDeterministicallyWithoutACompositor(t *testing.T) {
	if os.Getenv("WAYLAND_DISPLAY") != "" || os.Getenv("DISPLAY") != "" {
		t.Skip("a compositor or X server is present; the failure path under test doesn't apply")
	}

	surface, err := openNativeSurface(platform.Config{OS: "linux"}, "Jellyfin", 1280, 720)
	if err == nil {
		surface.Close()
		t.Fatalf("got nil error opening a native surface with no compositor reachable")
	}
	if surface != nil {
		t.Fatalf("got non-nil surface %+v on error", surface)
	}
}
