// SPDX-FileCopyrightText : © 2024 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

package frameloop

import (
	"sync"

	"github.com/jellyfin/jellyfin-desktop-go/inputstack"
	"github.com/jellyfin/jellyfin-desktop-go/player"
)

// playbackTracker wraps the real player.UI so the frame loop can read
// back the position and playing state the bridge otherwise only ever
// pushes forward into the web engine (player.Bridge keeps its own
// lastPositionMs/paused fields private, per spec section 9's "events
// flow one way" design). VideoLayer's media-transport hotkeys
// (seek-relative, play/pause toggle) need that state on this side of the
// bridge, so this decorator caches it at the same point the UI would
// have received it anyway.
type playbackTracker struct {
	delegate player.UI

	mu         sync.Mutex
	positionMs float64
	playing    bool
}

var _ player.UI = (*playbackTracker)(nil)

func (t *playbackTracker) OnPosition(ms float64) {
	t.mu.Lock()
	t.positionMs = ms
	t.mu.Unlock()
	t.delegate.OnPosition(ms)
}

func (t *playbackTracker) OnDuration(ms float64) { t.delegate.OnDuration(ms) }

func (t *playbackTracker) OnPlaying() {
	t.mu.Lock()
	t.playing = true
	t.mu.Unlock()
	t.delegate.OnPlaying()
}

func (t *playbackTracker) OnPaused() {
	t.mu.Lock()
	t.playing = false
	t.mu.Unlock()
	t.delegate.OnPaused()
}

func (t *playbackTracker) OnFinished() {
	t.mu.Lock()
	t.playing = false
	t.mu.Unlock()
	t.delegate.OnFinished()
}

func (t *playbackTracker) OnCanceled() {
	t.mu.Lock()
	t.playing = false
	t.mu.Unlock()
	t.delegate.OnCanceled()
}

func (t *playbackTracker) OnError(message string) { t.delegate.OnError(message) }

func (t *playbackTracker) OnBufferedRanges(ranges []player.BufferedRange) {
	t.delegate.OnBufferedRanges(ranges)
}

func (t *playbackTracker) position() float64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.positionMs
}

func (t *playbackTracker) isPlaying() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.playing
}

// volumeDefault is the starting volume percentage the transport adapter
// assumes until the UI issues its own CmdVolume (mpv itself defaults to
// 100, spec section 3).
const volumeDefault = 100

// videoTransport adapts the player command queue into
// inputstack.VideoEngine for VideoLayer's media-transport hotkeys (spec
// section 4.F): play/pause toggle, seek by a fixed offset, and volume
// nudges. It tracks the last volume it asked for locally since nothing
// reports the engine's actual current volume back up to this layer.
type videoTransport struct {
	commands *player.CommandQueue
	track    *playbackTracker

	mu     sync.Mutex
	volume int
}

var _ inputstack.VideoEngine = (*videoTransport)(nil)

func (v *videoTransport) TogglePause() {
	v.commands.Enqueue(player.Command{Kind: player.CmdPlayPause})
}

func (v *videoTransport) SeekRelative(deltaMS int64) {
	target := int64(v.track.position()) + deltaMS
	if target < 0 {
		target = 0
	}
	v.commands.Enqueue(player.Command{Kind: player.CmdSeek, IntArg: target})
}

func (v *videoTransport) VolumeDelta(delta float64) {
	v.mu.Lock()
	if v.volume == 0 {
		v.volume = volumeDefault
	}
	v.volume += int(delta * 100)
	if v.volume < 0 {
		v.volume = 0
	}
	if v.volume > 100 {
		v.volume = 100
	}
	vol := v.volume
	v.mu.Unlock()
	v.commands.Enqueue(player.Command{Kind: player.CmdVolume, IntArg: int64(vol)})
}
