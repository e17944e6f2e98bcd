// SPDX-FileCopyrightText : © 2024 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

package main

import (
	"github.com/jellyfin/jellyfin-desktop-go/compositor"
	"github.com/jellyfin/jellyfin-desktop-go/cursor"
	"github.com/jellyfin/jellyfin-desktop-go/device"
	"github.com/jellyfin/jellyfin-desktop-go/gpucontext"
	"github.com/jellyfin/jellyfin-desktop-go/inputstack"
	"github.com/jellyfin/jellyfin-desktop-go/player"
	"github.com/jellyfin/jellyfin-desktop-go/player/mpv"
	"github.com/jellyfin/jellyfin-desktop-go/videosurface"
)

// nativeSurface bundles everything openNativeSurface acquires: the OS
// window, the GPU context every compositor and the video engine share,
// the independent video surface (nil where the platform has none), and
// the small platform-specific odds and ends (cursor setter, action
// modifier, input translator) frameloop.Deps needs.
type nativeSurface struct {
	Device  device.Device
	GPU     gpucontext.Context
	GPUHost compositor.GPUImageHost

	VideoSurface   videosurface.Surface
	CursorSetter   cursor.Setter
	ActionModifier inputstack.Modifiers
	Translate      frameloopTranslator
}

// frameloopTranslator matches frameloop.PressedTranslator's signature
// without importing frameloop here, so this file compiles independently
// of the frame loop's own package boundary.
type frameloopTranslator = func(prev, cur *device.Pressed, windowW, windowH int) []inputstack.Event

func (s *nativeSurface) Close() error {
	var err error
	if s.VideoSurface != nil {
		err = s.VideoSurface.Close()
	}
	if s.Device != nil {
		s.Device.Dispose()
	}
	return err
}

func (s *nativeSurface) NewVideoEngine(events *player.EventQueue) (player.Engine, error) {
	return mpv.New(s.GPU, events)
}

// openNativeSurface opens the OS window, selects the matching
// gpucontext.Backend and (where the platform has one) the independent
// video subsurface, and assembles everything frameloop.Deps needs. One
// implementation per OS: surface_linux.go, surface_darwin.go,
// surface_windows.go — each following this package's usual per-GOOS-file
// convention (see platform/translate_*.go, device/os_*.go).
