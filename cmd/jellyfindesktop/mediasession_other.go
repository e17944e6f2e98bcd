// SPDX-FileCopyrightText : © 2024 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

//go:build !linux

package main

import (
	"errors"

	"github.com/jellyfin/jellyfin-desktop-go/mediasession"
	"github.com/jellyfin/jellyfin-desktop-go/player"
)

// newMPRISBackend has no counterpart outside Linux: MPRIS is a D-Bus
// convention and macOS/Windows have their own native media-session APIs,
// which mediasession/noop stands in for until one is wired (spec's
// Non-goals scope those platforms' media-session integration out).
func newMPRISBackend(commands *player.CommandQueue) (mediasession.Backend, error) {
	return nil, errors.New("mpris media session is linux-only")
}
