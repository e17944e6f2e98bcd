// SPDX-FileCopyrightText : © 2024 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

//go:build darwin

package main

import (
	"fmt"

	"github.com/jellyfin/jellyfin-desktop-go/compositor"
	"github.com/jellyfin/jellyfin-desktop-go/cursor"
	"github.com/jellyfin/jellyfin-desktop-go/device"
	"github.com/jellyfin/jellyfin-desktop-go/gpucontext"
	"github.com/jellyfin/jellyfin-desktop-go/inputstack"
	"github.com/jellyfin/jellyfin-desktop-go/platform"
	"github.com/jellyfin/jellyfin-desktop-go/videosurface"
)

// nativeCursorSetter adapts device.Device's coarse show/hide cursor to
// cursor.Setter; macOS has no per-shape NSCursor wired through device,
// so anything but the default arrow just hides the system cursor.
type nativeCursorSetter struct{ dev device.Device }

func (c nativeCursorSetter) SetCursor(oc cursor.OSCursor) {
	c.dev.ShowCursor(oc == cursor.OSDefault)
}

// openNativeSurface builds the macOS window and GPU/video-surface stack:
// a Cocoa window (device.New), a CAMetalLayer hosted in its content view
// (videosurface.NewMetalSurface), and the Vulkan-Metal context bound to
// that layer (gpucontext.Select) — see SPEC_FULL.md section 4.
func openNativeSurface(cfg platform.Config, title string, width, height int) (*nativeSurface, error) {
	dev := device.New(title, 0, 0, width, height)
	dev.Open()

	handleProvider, ok := dev.(device.NativeHandleProvider)
	if !ok {
		dev.Dispose()
		return nil, fmt.Errorf("cmd/jellyfindesktop: device.New returned a Device without NativeHandleProvider on darwin")
	}
	nsview := handleProvider.NativeHandle()

	videoSurface, err := videosurface.NewMetalSurface(nsview)
	if err != nil {
		dev.Dispose()
		return nil, fmt.Errorf("cmd/jellyfindesktop: metal surface creation failed: %w", err)
	}

	ctx, backend, err := gpucontext.Select(videoSurface.Layer(), width, height)
	if err != nil {
		videoSurface.Close()
		dev.Dispose()
		return nil, fmt.Errorf("cmd/jellyfindesktop: gpu context selection failed: %w", err)
	}

	gpuHost, ok := ctx.(compositor.GPUImageHost)
	if !ok {
		videoSurface.Close()
		dev.Dispose()
		return nil, fmt.Errorf("cmd/jellyfindesktop: %s backend does not implement compositor.GPUImageHost", backend)
	}

	return &nativeSurface{
		Device:         dev,
		GPU:            ctx,
		GPUHost:        gpuHost,
		VideoSurface:   videoSurface,
		CursorSetter:   nativeCursorSetter{dev: dev},
		ActionModifier: inputstack.ModCommand,
		Translate:      platform.TranslatePressed,
	}, nil
}
