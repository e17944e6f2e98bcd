// SPDX-FileCopyrightText : © 2024 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

//go:build linux

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

// wmCursorSetter adapts device.Device's coarse show/hide cursor to
// cursor.Setter: this wire-protocol Wayland client never loads a
// cursor-theme, so every Type short of Pointer just hides the system
// cursor rather than drawing a themed replacement.
type wmCursorSetter struct{ dev device.Device }

func (c wmCursorSetter) SetCursor(oc cursor.OSCursor) {
	c.dev.ShowCursor(oc == cursor.OSDefault)
}

// openNativeSurface builds the Linux window and GPU/video-surface stack:
// a Wayland toplevel (device.New), a Vulkan-Wayland context falling back
// to GLX11 (gpucontext.Select), and the desynced video subsurface
// (videosurface.NewWaylandSurface) — see SPEC_FULL.md section 4.
func openNativeSurface(cfg platform.Config, title string, width, height int) (*nativeSurface, error) {
	dev := device.New(title, 0, 0, width, height)
	dev.Open()

	wayObjs, ok := dev.(device.WaylandObjectsProvider)
	if !ok {
		dev.Dispose()
		return nil, fmt.Errorf("cmd/jellyfindesktop: device.New returned a Device without WaylandObjectsProvider on linux")
	}
	display, surf, comp, subcomp := wayObjs.WaylandObjects()

	ctx, backend, err := gpucontext.Select(gpucontext.LinuxParams{
		WaylandDisplay: display,
		WaylandSurface: surf,
		Width:          width,
		Height:         height,
	})
	if err != nil {
		dev.Dispose()
		return nil, fmt.Errorf("cmd/jellyfindesktop: gpu context selection failed: %w", err)
	}

	gpuHost, ok := ctx.(compositor.GPUImageHost)
	if !ok {
		dev.Dispose()
		return nil, fmt.Errorf("cmd/jellyfindesktop: %s backend does not implement compositor.GPUImageHost", backend)
	}

	videoSurface, err := videosurface.NewWaylandSurface(display, comp, subcomp, surf, wayObjs.ColorManager())
	if err != nil {
		dev.Dispose()
		return nil, fmt.Errorf("cmd/jellyfindesktop: video subsurface creation failed: %w", err)
	}

	return &nativeSurface{
		Device:         dev,
		GPU:            ctx,
		GPUHost:        gpuHost,
		VideoSurface:   videoSurface,
		CursorSetter:   wmCursorSetter{dev: dev},
		ActionModifier: inputstack.ModControl,
		Translate:      platform.TranslatePressed,
	}, nil
}
