// SPDX-FileCopyrightText : © 2024 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

package main

import (
	"log/slog"
	"time"

	"github.com/jellyfin/jellyfin-desktop-go/compositor"
	"github.com/jellyfin/jellyfin-desktop-go/config"
	"github.com/jellyfin/jellyfin-desktop-go/cursor"
	"github.com/jellyfin/jellyfin-desktop-go/frameloop"
	"github.com/jellyfin/jellyfin-desktop-go/fullscreen"
	"github.com/jellyfin/jellyfin-desktop-go/hidpi"
	"github.com/jellyfin/jellyfin-desktop-go/inputstack"
	"github.com/jellyfin/jellyfin-desktop-go/mediasession"
	"github.com/jellyfin/jellyfin-desktop-go/mediasession/noop"
	"github.com/jellyfin/jellyfin-desktop-go/overlay"
	"github.com/jellyfin/jellyfin-desktop-go/platform"
	"github.com/jellyfin/jellyfin-desktop-go/player"
	"github.com/jellyfin/jellyfin-desktop-go/webengine"
)

const (
	defaultWidth  = 1280
	defaultHeight = 720
)

// jellyfinRuntime owns every long-lived object newRuntime constructs, so
// main can run the loop and then tear everything down in reverse
// dependency order.
type jellyfinRuntime struct {
	Loop *frameloop.Loop

	bridge  *player.Bridge
	session mediasession.Backend
	gpu     gpuSurface
}

// gpuSurface is the handful of things the per-OS native-surface seam
// (surface_*.go) returns: the GPU context mpv and the compositors render
// through, plus whatever must be released on shutdown.
type gpuSurface interface {
	Close() error
}

func (r *jellyfinRuntime) Close() {
	if r.session != nil {
		_ = r.session.Close()
	}
	if r.gpu != nil {
		_ = r.gpu.Close()
	}
}

// PlayLocalFile enqueues a CmdLoad for path, bypassing the overlay's
// server picker (spec section 6's --video flag).
func (r *jellyfinRuntime) PlayLocalFile(path string) {
	r.bridge.Commands.Enqueue(player.Command{
		Kind:          player.CmdLoad,
		URL:           path,
		AudioIndex:    -1,
		SubtitleIndex: -1,
	})
}

// settingsWriter adapts a *config.Store to webengine.SettingsWriter.
type settingsWriter struct{ store *config.Store }

func (s settingsWriter) SetServerURL(url string) error {
	return s.store.SaveServerURL(url)
}

// newRuntime builds the full object graph: settings, both web engines,
// the player bridge, the media session, the two compositors, the input
// stack and the frame loop, on top of the GPU/video-surface that
// openNativeSurface (one implementation per OS, surface_*.go) constructs
// first — see that file's doc comment and DESIGN.md for why that handoff,
// rather than everything here, is platform-specific.
func newRuntime(cfg platform.Config, store *config.Store, settings config.Settings, opts *runOptions) (*jellyfinRuntime, error) {
	log := slog.With("component", "cmd.jellyfindesktop")

	surface, err := openNativeSurface(cfg, "Jellyfin", defaultWidth, defaultHeight)
	if err != nil {
		return nil, err
	}

	bridge := player.NewBridge(nil, nil, nil)
	commands := &bridge.Commands
	ipc := webengine.NewIPCRouter(commands, settingsWriter{store: store})
	scheme := webengine.NewSchemeTable()
	// The overlay's and main client's HTML/JS/CSS bundles are supplied at
	// deployment time via scheme.Add; none are embedded here.
	host := webengine.NewHost(scheme, ipc)

	overlayComp := compositor.New(surface.GPUHost, 2, "overlay")
	mainComp := compositor.New(surface.GPUHost, 2, "main")

	overlayPaint := webengine.NewPaintTarget(webengine.RoleOverlay, overlayComp)
	mainPaint := webengine.NewPaintTarget(webengine.RoleMain, mainComp)

	overlayEngine, err := webengine.NewEngine(webengine.RoleOverlay, host, overlayPaint, ipc, "jmp://overlay/index.html", defaultWidth, defaultHeight)
	if err != nil {
		surface.Close()
		return nil, err
	}
	mainEngine, err := webengine.NewEngine(webengine.RoleMain, host, mainPaint, ipc, "jmp://app/index.html", defaultWidth, defaultHeight)
	if err != nil {
		surface.Close()
		return nil, err
	}

	events := &bridge.Events
	videoEngine, err := surface.NewVideoEngine(events)
	if err != nil {
		surface.Close()
		return nil, err
	}

	session := newMediaSessionBackend(cfg, commands)

	bridge.Engine = videoEngine
	bridge.Session = session
	bridge.UI = webengine.NewPlayerUI(mainEngine)
	bridge.RequestFullscreen = func(bool) {} // wired to Loop.EnterWebFullscreen/ExitWebFullscreen below

	loop := frameloop.NewLoop(frameloop.Deps{
		Log:               log,
		Device:            surface.Device,
		GPU:               surface.GPU,
		MainCompositor:    mainComp,
		OverlayCompositor: overlayComp,
		VideoSurface:      surface.VideoSurface,
		Host:              host,
		PumpMessages:      webengine.DoMessageLoopWork,
		OverlayEngine:     overlayEngine,
		MainEngine:        mainEngine,
		Bridge:            bridge,
		Video:             videoEngine,
		MediaSession:      session,
		Stack:             &inputstack.Stack{},
		Overlay:           overlay.New(settings.ServerURL != ""),
		Cursor:            cursor.NewCache(surface.CursorSetter),
		Fullscreen:        &fullscreen.Tracker{},
		HiDPI:             hidpi.NewMonitor(1),
		ActionModifier:    surface.ActionModifier,
		Translate:         surface.Translate,
		HasSavedServerURL: settings.ServerURL != "",
		MainURL:           "jmp://app/index.html",
	})
	bridge.RequestFullscreen = func(fullscreen bool) {
		if fullscreen {
			loop.EnterWebFullscreen()
		} else {
			loop.ExitWebFullscreen()
		}
	}
	bridge.SaveServerURL = func(url string) error {
		if err := store.SaveServerURL(url); err != nil {
			return err
		}
		loop.OnServerURLSaved(time.Now())
		return nil
	}

	if opts.gpuOverlay {
		log.Info("GPU shared-texture compositing requested (see DESIGN.md OQ1)")
	}

	return &jellyfinRuntime{Loop: loop, bridge: bridge, session: session, gpu: surface}, nil
}

func newMediaSessionBackend(cfg platform.Config, commands *player.CommandQueue) mediasession.Backend {
	if cfg.OS == "linux" {
		backend, err := newMPRISBackend(commands)
		if err == nil {
			return backend
		}
		slog.Warn("mpris media session unavailable, falling back to no-op", "err", err)
	}
	return noop.New()
}
