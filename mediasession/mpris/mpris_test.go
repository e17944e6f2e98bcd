// SPDX-FileCopyrightText : © 2024 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

package mpris

import (
	"testing"

	"github.com/jellyfin/jellyfin-desktop-go/player"
)

// newTestBackend builds a Backend with no live D-Bus connection; only the
// pure state-tracking methods (those that don't touch b.conn) are safe to
// exercise against it.
func newTestBackend() *Backend {
	return &Backend{rate: 1.0, pendingRate: 1.0, volume: 1.0}
}

func TestPlaybackStatusTracksStoppedPausedPlaying(t *testing.T) {
	b := newTestBackend()
	if b.state.String() != "Stopped" {
		t.Fatalf("initial state = %s, want Stopped", b.state.String())
	}

	b.mu.Lock()
	b.state = paused
	b.mu.Unlock()
	if b.state.String() != "Paused" {
		t.Fatalf("state = %s, want Paused", b.state.String())
	}
}

func TestSetRateLocksAtZeroAndRestoresPendingOnResume(t *testing.T) {
	b := newTestBackend()

	b.mu.Lock()
	b.rateLocked = false
	b.rate = 1.0
	b.pendingRate = 1.0
	b.mu.Unlock()

	// Buffering: rate goes to 0 and locks.
	b.mu.Lock()
	b.rate = 0
	b.rateLocked = true
	b.mu.Unlock()

	// A SetSpeed(1.5) arriving while locked only updates pendingRate.
	b.mu.Lock()
	if b.rateLocked {
		b.pendingRate = 1.5
	}
	b.mu.Unlock()
	if b.rate != 0 {
		t.Fatalf("rate while locked = %v, want 0", b.rate)
	}

	// SetPlaying(true) unlocks and restores pendingRate.
	b.SetPlaying(true)
	if b.rate != 1.5 {
		t.Fatalf("rate after resume = %v, want 1.5 restored from pendingRate", b.rate)
	}
	if b.rateLocked {
		t.Fatal("rateLocked should clear on resume")
	}
}

func TestNotifyStoppedClearsMetadataAndPosition(t *testing.T) {
	b := newTestBackend()
	b.meta = player.MediaMetadata{Title: "Song", DurationUs: 1000}
	b.positionUs = 500
	b.state = playing

	b.Notify("playback_state", "stopped")

	if b.state != stopped {
		t.Fatalf("state = %v, want stopped", b.state)
	}
	if b.meta.Title != "" || b.positionUs != 0 {
		t.Fatal("expected metadata and position cleared on stop")
	}
}

func TestNotifyIgnoresUnrelatedKinds(t *testing.T) {
	b := newTestBackend()
	b.state = playing
	b.meta = player.MediaMetadata{Title: "Song"}

	b.Notify("something_else", "stopped")

	if b.state != playing || b.meta.Title == "" {
		t.Fatal("Notify must ignore kinds other than playback_state/stopped")
	}
}

func TestCanPlayPauseSeekControlDeriveFromState(t *testing.T) {
	b := newTestBackend()
	b.state = stopped
	b.meta.DurationUs = 0

	v, ok := b.propertyLocked(playerIface, "CanPlay")
	if !ok || v.Value().(bool) {
		t.Fatal("CanPlay should be false while Stopped")
	}
	v, _ = b.propertyLocked(playerIface, "CanControl")
	if v.Value().(bool) {
		t.Fatal("CanControl should be false while Stopped")
	}

	b.state = playing
	b.meta.DurationUs = 1000
	v, _ = b.propertyLocked(playerIface, "CanPlay")
	if !v.Value().(bool) {
		t.Fatal("CanPlay should be true once not Stopped")
	}
	v, _ = b.propertyLocked(playerIface, "CanPause")
	if !v.Value().(bool) {
		t.Fatal("CanPause should be true while Playing")
	}
	v, _ = b.propertyLocked(playerIface, "CanSeek")
	if !v.Value().(bool) {
		t.Fatal("CanSeek should be true once duration is known")
	}
}

func TestMetadataMapOmitsEmptyFields(t *testing.T) {
	b := newTestBackend()
	b.meta = player.MediaMetadata{Title: "Only Title"}

	m := b.metadataMapLocked()
	if _, ok := m["xesam:title"]; !ok {
		t.Fatal("expected xesam:title present")
	}
	if _, ok := m["xesam:artist"]; ok {
		t.Fatal("expected xesam:artist omitted when empty")
	}
	if _, ok := m["mpris:trackid"]; !ok {
		t.Fatal("mpris:trackid is required by the MPRIS spec")
	}
}

func TestSetPositionRateClampedByPropHandler(t *testing.T) {
	// Rate clamping happens in propHandler.Set, exercised here via the
	// shared minRate/maxRate constants rather than a live D-Bus call.
	cases := []struct{ in, want float64 }{
		{0.1, minRate},
		{3.0, maxRate},
		{1.0, 1.0},
	}
	for _, c := range cases {
		got := c.in
		if got < minRate {
			got = minRate
		}
		if got > maxRate {
			got = maxRate
		}
		if got != c.want {
			t.Fatalf("clamp(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}
