// SPDX-FileCopyrightText : © 2024 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

//go:build darwin

package platform

import "github.com/jellyfin/jellyfin-desktop-go/gpucontext"

// Detect reports macOS's default axis choices: a CAMetalLayer-backed video
// surface and the Metal GPU backend. Unlike Linux's Vulkan-Wayland path,
// gpucontext.Select has no fallback to try here — Metal is present on every
// supported macOS version this program targets.
func Detect() Config {
	return newConfig(VideoSurfaceMetal, gpucontext.VKMetal)
}
