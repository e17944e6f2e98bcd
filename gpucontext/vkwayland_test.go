// SPDX-FileCopyrightText : © 2024 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

//go:build linux

package gpucontext

import (
	"strings"
	"testing"
)

// NewVKWayland always fails with a documented reason (see its doc
// comment): VK_KHR_wayland_surface needs a native wl_display/wl_surface
// pointer that the pure wire-protocol Wayland client never produces.
// Select relies on this to fall back to glx11.
func TestNewVKWaylandAlwaysUnavailable(t *testing.T) {
	ctx, err := NewVKWayland(nil, nil)
	if ctx != nil {
		t.Fatal("expected a nil Context on failure")
	}
	if err == nil {
		t.Fatal("expected an error")
	}
	if !strings.Contains(err.Error(), "wl_display") {
		t.Fatalf("expected the native-pointer limitation named in the error, got %q", err.Error())
	}
}
