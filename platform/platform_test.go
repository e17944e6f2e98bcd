// SPDX-FileCopyrightText : © 2024 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

package platform

import (
	"runtime"
	"testing"
)

func TestDetectSetsClearTransparentFlagOnlyWithIndependentSurface(t *testing.T) {
	cfg := Detect()
	if cfg.OS != runtime.GOOS {
		t.Fatalf("OS = %q, want %q", cfg.OS, runtime.GOOS)
	}
	if cfg.HasIndependentVideoSurface != (cfg.VideoSurface != VideoSurfaceNone) {
		t.Fatalf("HasIndependentVideoSurface = %v inconsistent with VideoSurface = %v", cfg.HasIndependentVideoSurface, cfg.VideoSurface)
	}
	if cfg.ClearIsTransparentWhenVideoPresent != cfg.HasIndependentVideoSurface {
		t.Fatalf("ClearIsTransparentWhenVideoPresent = %v, want %v", cfg.ClearIsTransparentWhenVideoPresent, cfg.HasIndependentVideoSurface)
	}
	if cfg.Threading != ThreadingMainLoop {
		t.Fatalf("Threading = %v, want ThreadingMainLoop", cfg.Threading)
	}
}

func TestNewConfigDerivesFlagsFromSurfaceKind(t *testing.T) {
	withSurface := newConfig(VideoSurfaceWayland, "")
	if !withSurface.HasIndependentVideoSurface || !withSurface.ClearIsTransparentWhenVideoPresent {
		t.Fatalf("got %+v, want both flags true for a real surface kind", withSurface)
	}

	without := newConfig(VideoSurfaceNone, "")
	if without.HasIndependentVideoSurface || without.ClearIsTransparentWhenVideoPresent {
		t.Fatalf("got %+v, want both flags false for VideoSurfaceNone", without)
	}
}
