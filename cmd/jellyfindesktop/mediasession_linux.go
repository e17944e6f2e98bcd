// SPDX-FileCopyrightText : © 2024 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

package main

import (
	"github.com/jellyfin/jellyfin-desktop-go/mediasession"
	"github.com/jellyfin/jellyfin-desktop-go/mediasession/mpris"
	"github.com/jellyfin/jellyfin-desktop-go/player"
)

const mprisAppID = "io.jellyfin.desktop"

// newMPRISBackend wires MPRIS transport requests (lock-screen widgets,
// desktop-environment applets, hardware media keys) straight onto the
// player command queue, the same path the web UI's own transport buttons
// use (spec section 4.F).
func newMPRISBackend(commands *player.CommandQueue) (mediasession.Backend, error) {
	return mpris.New(mprisAppID, mediasession.Callbacks{
		OnPlay:      func() { commands.Enqueue(player.Command{Kind: player.CmdPlay}) },
		OnPause:     func() { commands.Enqueue(player.Command{Kind: player.CmdPause}) },
		OnPlayPause: func() { commands.Enqueue(player.Command{Kind: player.CmdPlayPause}) },
		OnStop:      func() { commands.Enqueue(player.Command{Kind: player.CmdStop}) },
		// OnSeek (a relative scrub) is left nil: CmdSeek/Engine.Seek takes
		// an absolute target position, which this backend has no way to
		// compute without the frame loop's own position cache.
		OnSetPosition: func(absoluteUs int64) {
			commands.Enqueue(player.Command{Kind: player.CmdSeek, IntArg: absoluteUs / 1000})
		},
		OnSetRate: func(rate float64) {
			commands.Enqueue(player.Command{Kind: player.CmdSpeed, DoubleArg: rate})
		},
	})
}
