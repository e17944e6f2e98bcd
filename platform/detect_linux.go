// SPDX-FileCopyrightText : © 2024 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

//go:build linux

package platform

import "github.com/jellyfin/jellyfin-desktop-go/gpucontext"

// Detect reports Linux's default axis choices: a Wayland video
// subsurface and the Vulkan-Wayland GPU backend, with
// gpucontext.Select's own glx11 fallback handled after construction
// fails rather than reflected here (the fallback doesn't change any of
// the capability flags derived from it).
func Detect() Config {
	return newConfig(VideoSurfaceWayland, gpucontext.VKWayland)
}
