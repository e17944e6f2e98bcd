// SPDX-FileCopyrightText : © 2024 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

// Package platform resolves the three per-OS axes the rest of the
// program is built around (video surface backend, GPU/compositor
// backend, video renderer threading model) into a single tagged
// configuration record at startup, per spec section 9's design note:
// model each axis as an orthogonal trait with two or three
// implementations, select once in platform_detect(), and keep the frame
// loop itself free of conditional compilation by expressing any
// remaining per-platform behaviour as a capability flag on the chosen
// record instead.
package platform

import (
	"runtime"

	"github.com/jellyfin/jellyfin-desktop-go/gpucontext"
)

// VideoSurfaceKind names which of package videosurface's concrete forms
// this platform uses.
type VideoSurfaceKind string

const (
	VideoSurfaceWayland VideoSurfaceKind = "wayland"
	VideoSurfaceMetal   VideoSurfaceKind = "metal"
	VideoSurfaceNone    VideoSurfaceKind = "none"
)

// ThreadingModel names how the video engine's render callback is
// scheduled relative to the frame loop.
type ThreadingModel string

const (
	// ThreadingMainLoop pumps the video engine from the same goroutine
	// as everything else, once per Tick. This is the only model this
	// repository implements: package player/mpv already serialises
	// libmpv's wakeup/redraw callbacks onto NeedsProcessing()/
	// ProcessEvents() for exactly this purpose on every host OS, so
	// there is no per-platform divergence to express here today — the
	// trait exists so a future dedicated render-thread model (the
	// upstream project's actual Windows/DirectX path) has somewhere to
	// plug in without touching the frame loop.
	ThreadingMainLoop ThreadingModel = "main-loop"
)

// Config is the tagged record platform_detect() returns: one concrete
// choice per axis plus the capability flags the frame loop reads instead
// of branching on GOOS directly.
type Config struct {
	OS string

	VideoSurface VideoSurfaceKind
	GPUBackend   gpucontext.Backend
	Threading    ThreadingModel

	// HasIndependentVideoSurface is true when VideoSurface != VideoSurfaceNone:
	// the video engine renders into its own surface below the UI rather
	// than into the main framebuffer.
	HasIndependentVideoSurface bool

	// ClearIsTransparentWhenVideoPresent is the example capability flag
	// spec section 9 names directly: on platforms with an independent
	// video surface, the main window's clear colour can be fully
	// transparent once video is playing, letting the surface underneath
	// show through; without one, video composites into the same
	// framebuffer the UI clears, so the clear colour must stay opaque.
	ClearIsTransparentWhenVideoPresent bool
}

func newConfig(videoSurface VideoSurfaceKind, gpuBackend gpucontext.Backend) Config {
	hasSurface := videoSurface != VideoSurfaceNone
	return Config{
		OS:                                 runtime.GOOS,
		VideoSurface:                       videoSurface,
		GPUBackend:                         gpuBackend,
		Threading:                          ThreadingMainLoop,
		HasIndependentVideoSurface:         hasSurface,
		ClearIsTransparentWhenVideoPresent: hasSurface,
	}
}
