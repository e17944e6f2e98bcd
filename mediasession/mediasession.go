// SPDX-FileCopyrightText : © 2024 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

// Package mediasession defines the OS media-session surface the player
// bridge drives (spec section 4.F), with platform backends in
// mediasession/mpris (Linux, MPRIS over D-Bus) and mediasession/noop
// (macOS, Windows — out of scope per spec section 1).
package mediasession

import "github.com/jellyfin/jellyfin-desktop-go/player"

// Callbacks are invoked when an OS media-control surface (a lock-screen
// widget, a desktop-environment applet, a hardware media key) requests a
// transport action. The frame loop wires these onto the player command
// queue; a nil field means the action is silently ignored.
type Callbacks struct {
	OnRaise       func()
	OnPlay        func()
	OnPause       func()
	OnPlayPause   func()
	OnStop        func()
	OnNext        func()
	OnPrevious    func()
	OnSeek        func(relativeUs int64)
	OnSetPosition func(absoluteUs int64)
	OnSetRate     func(rate float64)
}

// Backend is the full OS media-session surface: it satisfies
// player.Session (so a *Bridge can drive it directly) plus the
// next/previous capability toggles and a Close for clean shutdown.
//
// player.Session.Notify carries the one signal MPRIS needs that has no
// dedicated method: the player.Bridge has no explicit "stopped" state of
// its own (SetPlaying only distinguishes playing/paused), so the web UI
// sends CmdNotify with kind "playback_state" and payload "stopped" when
// navigating away from a truly-stopped player, which Backend implementations
// use to clear metadata and reset position the way MPRIS expects.
type Backend interface {
	player.Session

	SetCanGoNext(bool)
	SetCanGoPrevious(bool)
	Close() error
}
