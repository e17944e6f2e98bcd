// SPDX-FileCopyrightText : © 2024 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

//go:build windows

package platform

import "github.com/jellyfin/jellyfin-desktop-go/gpucontext"

// Detect reports Windows's default axis choices. Package videosurface has
// no independent Windows implementation (see its noop.go): the video
// engine composites directly into the main framebuffer alongside the UI
// rather than into a surface of its own, so ClearIsTransparentWhenVideoPresent
// must stay false even while video is playing.
func Detect() Config {
	return newConfig(VideoSurfaceNone, gpucontext.GLWindows)
}
