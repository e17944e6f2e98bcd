// SPDX-FileCopyrightText : © 2024 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

// Package mpris implements mediasession.Backend over the MPRIS D-Bus
// media-player convention (org.mpris.MediaPlayer2 / .Player), grounded on
// original_source/src/media_session_mpris.cpp's sd-bus vtables.
package mpris

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/godbus/dbus/v5"
	"github.com/godbus/dbus/v5/introspect"

	"github.com/jellyfin/jellyfin-desktop-go/mediasession"
	"github.com/jellyfin/jellyfin-desktop-go/player"
)

const (
	objectPath = dbus.ObjectPath("/org/mpris/MediaPlayer2")
	rootIface  = "org.mpris.MediaPlayer2"
	playerIface = "org.mpris.MediaPlayer2.Player"

	minRate = 0.25
	maxRate = 2.0
)

// playbackState mirrors the C++ PlaybackState enum: MPRIS distinguishes
// Stopped from Paused (CanPlay/CanSeek/Metadata all depend on it) even
// though player.Session.SetPlaying only reports a playing/paused bool.
type playbackState int

const (
	stopped playbackState = iota
	playing
	paused
)

func (s playbackState) String() string {
	switch s {
	case playing:
		return "Playing"
	case paused:
		return "Paused"
	default:
		return "Stopped"
	}
}

// Backend is the MPRIS implementation of mediasession.Backend. One Backend
// owns one session-bus connection and name claim.
type Backend struct {
	mu sync.Mutex

	conn *dbus.Conn
	log  *slog.Logger

	cb mediasession.Callbacks

	state    playbackState
	meta     player.MediaMetadata
	volume   float64
	rate     float64
	pendingRate float64
	rateLocked  bool
	positionUs  int64
	canGoNext     bool
	canGoPrevious bool
}

// New connects to the session bus, claims org.mpris.MediaPlayer2.<appID>,
// and exports the root and player interfaces at
// /org/mpris/MediaPlayer2. appID should be a reverse-DNS-free identifier
// such as "jellyfin_desktop" (MPRIS forbids dots other than the
// "org.mpris.MediaPlayer2." prefix's own dots).
func New(appID string, cb mediasession.Callbacks) (*Backend, error) {
	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		return nil, fmt.Errorf("mpris: connect session bus: %w", err)
	}

	b := &Backend{
		conn:        conn,
		log:         slog.With("component", "mediasession.mpris"),
		cb:          cb,
		rate:        1.0,
		pendingRate: 1.0,
		volume:      1.0,
	}

	serviceName := "org.mpris.MediaPlayer2." + appID
	reply, err := conn.RequestName(serviceName, dbus.NameFlagDoNotQueue)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("mpris: request name: %w", err)
	}
	if reply != dbus.RequestNameReplyPrimaryOwner {
		conn.Close()
		return nil, fmt.Errorf("mpris: service name %s already owned", serviceName)
	}

	if err := conn.Export((*rootHandler)(b), objectPath, rootIface); err != nil {
		conn.Close()
		return nil, fmt.Errorf("mpris: export root: %w", err)
	}
	if err := conn.Export((*playerHandler)(b), objectPath, playerIface); err != nil {
		conn.Close()
		return nil, fmt.Errorf("mpris: export player: %w", err)
	}
	if err := conn.Export((*propHandler)(b), objectPath, "org.freedesktop.DBus.Properties"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("mpris: export properties: %w", err)
	}
	if err := conn.Export(introspect.NewIntrospectable(introspectNode()), objectPath, "org.freedesktop.DBus.Introspectable"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("mpris: export introspectable: %w", err)
	}

	b.log.Info("registered", "service", serviceName)
	return b, nil
}

// Close releases the service name and closes the bus connection.
func (b *Backend) Close() error {
	return b.conn.Close()
}

// SetMetadata implements player.Session.
func (b *Backend) SetMetadata(m player.MediaMetadata) {
	b.mu.Lock()
	b.meta = m
	b.mu.Unlock()
	b.emitChanged(playerIface, "Metadata")
}

// SetDuration implements player.Session. MPRIS reports duration as part
// of Metadata (mpris:length), so this folds into the cached metadata and
// re-emits it.
func (b *Backend) SetDuration(ms int64) {
	b.mu.Lock()
	b.meta.DurationUs = ms * 1000
	b.mu.Unlock()
	b.emitChanged(playerIface, "Metadata", "CanSeek")
}

// SetPlaying implements player.Session.
func (b *Backend) SetPlaying(isPlaying bool) {
	b.mu.Lock()
	if isPlaying {
		b.state = playing
		if b.rateLocked {
			b.rateLocked = false
			if b.rate != b.pendingRate {
				b.rate = b.pendingRate
			}
		}
	} else if b.state != stopped {
		b.state = paused
	}
	b.mu.Unlock()
	b.emitChanged(playerIface, "PlaybackStatus", "CanPlay", "CanPause", "CanSeek", "CanControl", "Rate")
}

// SetRate implements player.Session. rate == 0 locks playback at 0x the
// way the player bridge reports buffering; any later non-zero SetRate
// call is cached as pendingRate until playback resumes.
func (b *Backend) SetRate(rate float64) {
	b.mu.Lock()
	switch {
	case rate == 0:
		b.rateLocked = true
		b.rate = 0
	case b.rateLocked:
		b.pendingRate = rate
		b.mu.Unlock()
		return
	default:
		b.pendingRate = rate
		b.rate = rate
	}
	b.mu.Unlock()
	b.emitChanged(playerIface, "Rate")
}

// Seeked implements player.Session, emitting the MPRIS Seeked signal.
func (b *Backend) Seeked(positionUs int64) {
	b.mu.Lock()
	b.positionUs = positionUs
	b.mu.Unlock()
	if err := b.conn.Emit(objectPath, playerIface+".Seeked", positionUs); err != nil {
		b.log.Warn("emit Seeked failed", "err", err)
	}
}

// Notify implements player.Session. The only kind this backend
// recognises is "playback_state"/"stopped", which clears cached metadata
// and position the way the MPRIS spec expects for a fully stopped player
// (see mediasession.Backend's doc comment).
func (b *Backend) Notify(kind, payload string) {
	if kind != "playback_state" || payload != "stopped" {
		return
	}
	b.mu.Lock()
	b.state = stopped
	b.meta = player.MediaMetadata{}
	b.positionUs = 0
	b.mu.Unlock()
	b.emitChanged(playerIface, "PlaybackStatus", "CanPlay", "CanPause", "CanSeek", "CanControl", "Metadata")
}

// SetCanGoNext implements mediasession.Backend.
func (b *Backend) SetCanGoNext(can bool) {
	b.mu.Lock()
	changed := b.canGoNext != can
	b.canGoNext = can
	b.mu.Unlock()
	if changed {
		b.emitChanged(playerIface, "CanGoNext")
	}
}

// SetCanGoPrevious implements mediasession.Backend.
func (b *Backend) SetCanGoPrevious(can bool) {
	b.mu.Lock()
	changed := b.canGoPrevious != can
	b.canGoPrevious = can
	b.mu.Unlock()
	if changed {
		b.emitChanged(playerIface, "CanGoPrevious")
	}
}

func (b *Backend) emitChanged(iface string, props ...string) {
	if b.conn == nil {
		return
	}
	changed := make(map[string]dbus.Variant, len(props))
	b.mu.Lock()
	for _, p := range props {
		v, ok := b.propertyLocked(iface, p)
		if ok {
			changed[p] = v
		}
	}
	b.mu.Unlock()
	if len(changed) == 0 {
		return
	}
	err := b.conn.Emit(objectPath, "org.freedesktop.DBus.Properties.PropertiesChanged",
		iface, changed, []string{})
	if err != nil {
		b.log.Warn("emit PropertiesChanged failed", "err", err)
	}
}
