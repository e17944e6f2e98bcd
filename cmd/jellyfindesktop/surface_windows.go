// SPDX-FileCopyrightText : © 2024 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

//go:build windows

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
// cursor.Setter; this program carries no per-shape Win32 HCURSOR table,
// so anything but the default arrow just hides the system cursor.
type nativeCursorSetter struct{ dev device.Device }

func (c nativeCursorSetter) SetCursor(oc cursor.OSCursor) {
	c.dev.ShowCursor(oc == cursor.OSDefault)
}

// openNativeSurface builds the Windows window and GPU stack: a Win32
// window (device.New), its HWND handed directly to gpucontext.Select for
// the OpenGL-WGL backend, and no independent video surface — video
// composites into the main window via the UI compositor (spec 4.B/4.C).
func openNativeSurface(cfg platform.Config, title string, width, height int) (*nativeSurface, error) {
	dev := device.New(title, 0, 0, width, height)
	dev.Open()

	handleProvider, ok := dev.(device.NativeHandleProvider)
	if !ok {
		dev.Dispose()
		return nil, fmt.Errorf("cmd/jellyfindesktop: device.New returned a Device without NativeHandleProvider on windows")
	}
	hwnd := handleProvider.NativeHandle()

	ctx, backend, err := gpucontext.Select(hwnd, width, height)
	if err != nil {
		dev.Dispose()
		return nil, fmt.Errorf("cmd/jellyfindesktop: gpu context selection failed: %w", err)
	}

	gpuHost, ok := ctx.(compositor.GPUImageHost)
	if !ok {
		dev.Dispose()
		return nil, fmt.Errorf("cmd/jellyfindesktop: %s backend does not implement compositor.GPUImageHost", backend)
	}

	videoSurface := videosurface.NewNoSurface()

	return &nativeSurface{
		Device:         dev,
		GPU:            ctx,
		GPUHost:        gpuHost,
		VideoSurface:   videoSurface,
		CursorSetter:   nativeCursorSetter{dev: dev},
		ActionModifier: inputstack.ModControl,
		Translate:      platform.TranslatePressed,
	}, nil
}
