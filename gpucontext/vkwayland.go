// SPDX-FileCopyrightText : © 2024 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

//go:build linux

package gpucontext

import (
	"github.com/jellyfin/jellyfin-desktop-go/internal/wire/wayland"
)

// NewVKWayland would bind a Vulkan instance to the video subsurface's
// wl_surface via VK_KHR_wayland_surface, following the same
// instanceExtensions/createSurface shape as the teacher's
// render/vulkan_apple.go (VK_EXT_metal_surface) and
// render/vulkan_windows.go (VK_KHR_win32_surface).
//
// VK_KHR_wayland_surface takes a native struct wl_display* and
// wl_surface*. internal/wire/wayland deliberately speaks the wire
// protocol directly over the Unix socket instead of linking
// libwayland-client, so it never produces those native pointers — only
// client-side object ids. There is no way to satisfy this extension
// without linking libwayland-client, which would defeat the point of
// the pure-Go client. NewVKWayland therefore always fails at the
// surface-creation step; Select falls back to GLX11 (OpenGL-EGL),
// exactly the fallback spec section 7's error table documents for
// video-surface init failure: "Wayland may fall back to OpenGL
// composition by reconfiguration at startup."
func NewVKWayland(display *wayland.Display, surface *wayland.Surface) (Context, error) {
	return nil, errBackendUnavailable(VKWayland,
		"VK_KHR_wayland_surface requires a native wl_display/wl_surface pointer; "+
			"internal/wire/wayland is a pure wire-protocol client and never has one")
}
