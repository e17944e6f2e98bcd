// SPDX-FileCopyrightText : © 2024 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

// Package noop implements mediasession.Backend with no observable effect,
// for platforms whose native now-playing surface (macOS MediaRemote,
// Windows SMTC) is out of scope (spec section 1, Non-goals).
package noop

import "github.com/jellyfin/jellyfin-desktop-go/player"

// Backend discards every call. It exists so the frame loop can always
// hold a mediasession.Backend regardless of platform.
type Backend struct{}

// New returns a Backend that does nothing.
func New() *Backend { return &Backend{} }

func (*Backend) SetMetadata(player.MediaMetadata) {}
func (*Backend) SetDuration(int64)                {}
func (*Backend) SetPlaying(bool)                  {}
func (*Backend) SetRate(float64)                  {}
func (*Backend) Seeked(int64)                      {}
func (*Backend) Notify(string, string)            {}
func (*Backend) SetCanGoNext(bool)                {}
func (*Backend) SetCanGoPrevious(bool)             {}
func (*Backend) Close() error                      { return nil }
