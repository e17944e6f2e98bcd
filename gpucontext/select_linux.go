// SPDX-FileCopyrightText : © 2024 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

//go:build linux

package gpucontext

import (
	"log/slog"
	"unsafe"

	"github.com/jellyfin/jellyfin-desktop-go/internal/wire/wayland"
)

// LinuxParams carries whichever native handles a Linux backend needs.
// Wayland fields are used first; the X11 fields are the fallback path.
type LinuxParams struct {
	WaylandDisplay *wayland.Display
	WaylandSurface *wayland.Surface

	XDisplay unsafe.Pointer
	XWindow  uint64

	Width, Height int
}

// Select picks the one concrete backend spec section 4.A names for
// Linux: Vulkan-Wayland first, falling back to OpenGL-EGL/X11 when the
// Wayland path can't be satisfied (see vkwayland.go's doc comment for
// why that's always the case with this module's pure wire-protocol
// Wayland client).
func Select(p LinuxParams) (Context, Backend, error) {
	if p.WaylandDisplay != nil && p.WaylandSurface != nil {
		ctx, err := NewVKWayland(p.WaylandDisplay, p.WaylandSurface)
		if err == nil {
			return ctx, VKWayland, nil
		}
		slog.Warn("vkwayland unavailable, falling back to glx11", "reason", err)
	}
	ctx, err := NewGLX11(p.XDisplay, p.XWindow, p.Width, p.Height)
	if err != nil {
		return nil, "", err
	}
	return ctx, GLX11, nil
}
