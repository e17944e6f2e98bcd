// SPDX-FileCopyrightText : © 2024 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

package player

import "log/slog"

// positionEpsilonMs is the minimum position delta forwarded to the UI
// (spec section 4.E: "drop changes < 15 ms from previous reported
// position").
const positionEpsilonMs = 15.0

// held buffers state changes observed while the engine is mid-seek, so
// they can be applied once as a batch when seeking clears instead of
// flickering the UI mid-seek.
type held struct {
	hasPosition bool
	positionMs  float64
	hasDuration bool
	durationMs  float64
	hasPause    bool
	paused      bool
}

// Bridge is the player bridge from spec section 4.E: it owns the command
// and event queues and the media-session rate/seek bookkeeping that sits
// between the UI, the video Engine, and the OS media Session.
type Bridge struct {
	Engine  Engine
	Session Session
	UI      UI

	// SaveServerURL persists a CmdSaveServerURL command; no engine effect.
	SaveServerURL func(url string) error
	// RequestFullscreen delegates a CmdSetFullscreen command to the frame
	// loop (spec section 4.G owns the actual window transition).
	RequestFullscreen func(bool)

	Commands CommandQueue
	Events   EventQueue

	log *slog.Logger

	lastPositionMs      float64
	paused              bool
	seeking             bool
	currentPlaybackRate float64
	buffering           bool

	heldDuring held
}

// NewBridge returns a Bridge with its playback rate initialised to 1x.
func NewBridge(engine Engine, session Session, ui UI) *Bridge {
	return &Bridge{
		Engine:              engine,
		Session:             session,
		UI:                  ui,
		log:                 slog.With("component", "player.bridge"),
		currentPlaybackRate: 1.0,
	}
}

// Pump drains both queues; call once per frame from the frame loop (spec
// section 4.G step 4, section 5).
func (b *Bridge) Pump() {
	for _, cmd := range b.Commands.Drain() {
		b.dispatch(cmd)
	}
	for _, ev := range b.Events.Drain() {
		b.handle(ev)
	}
}

func (b *Bridge) dispatch(cmd Command) {
	switch cmd.Kind {
	case CmdLoad:
		b.load(cmd)
	case CmdStop:
		b.Engine.Stop()
	case CmdPause:
		b.Engine.SetPause(true)
	case CmdPlay:
		b.Engine.SetPause(false)
	case CmdPlayPause:
		b.Engine.SetPause(!b.paused)
	case CmdSeek:
		b.Engine.Seek(cmd.IntArg)
	case CmdVolume:
		b.Engine.SetVolume(int(cmd.IntArg))
	case CmdMute:
		b.Engine.SetMute(cmd.BoolArg)
	case CmdSpeed:
		b.Engine.SetSpeed(cmd.DoubleArg)
		b.currentPlaybackRate = cmd.DoubleArg
		if !b.buffering {
			b.Session.SetRate(b.currentPlaybackRate)
		}
	case CmdSubtitle:
		b.Engine.SetSubtitleTrack(int(cmd.IntArg))
	case CmdAudio:
		b.Engine.SetAudioTrack(int(cmd.IntArg))
	case CmdAudioDelay:
		b.Engine.SetAudioDelay(cmd.DoubleArg)
	case CmdSaveServerURL:
		if b.SaveServerURL != nil {
			if err := b.SaveServerURL(cmd.URL); err != nil {
				b.log.Warn("save server url failed", "err", err)
			}
		}
	case CmdSetFullscreen:
		if b.RequestFullscreen != nil {
			b.RequestFullscreen(cmd.BoolArg)
		}
	case CmdNotify:
		b.Session.Notify(cmd.URL, cmd.MetadataJSON)
	}
}

func (b *Bridge) load(cmd Command) {
	meta := ParseMediaMetadata(cmd.MetadataJSON)
	b.Session.SetMetadata(meta)
	if meta.ReplayGainDB != 0 {
		b.Engine.SetNormalizationGain(meta.ReplayGainDB)
	}

	b.lastPositionMs = 0
	b.seeking = false
	b.buffering = false
	b.paused = false
	b.currentPlaybackRate = 1.0
	b.heldDuring = held{}

	if err := b.Engine.Load(cmd.URL, cmd.IntArg); err != nil {
		b.log.Warn("engine load failed", "url", cmd.URL, "err", err)
		b.UI.OnError(err.Error())
		return
	}
	if cmd.AudioIndex >= 0 {
		b.Engine.SetAudioTrack(cmd.AudioIndex)
	}
	if cmd.SubtitleIndex >= 0 {
		b.Engine.SetSubtitleTrack(cmd.SubtitleIndex)
	}
}

func (b *Bridge) handle(ev Event) {
	switch ev.Kind {
	case EvPosition:
		b.onPosition(ev.PositionMs)
	case EvDuration:
		b.onDuration(ev.DurationMs)
	case EvPauseChanged:
		b.onPauseChanged(ev.Paused)
	case EvSeekingChanged:
		b.onSeekingChanged(ev.Seeking)
	case EvBuffering:
		b.onBuffering(ev.Buffering)
	case EvFileLoaded:
		b.UI.OnPlaying()
	case EvFinished:
		b.UI.OnFinished()
	case EvCanceled:
		b.UI.OnCanceled()
	case EvError:
		b.UI.OnError(ev.Err)
	case EvBufferedRanges:
		b.UI.OnBufferedRanges(ev.Ranges)
	}
}

func (b *Bridge) onPosition(ms float64) {
	if b.seeking {
		b.heldDuring.hasPosition = true
		b.heldDuring.positionMs = ms
		return
	}
	if abs(ms-b.lastPositionMs) < positionEpsilonMs {
		return
	}
	b.lastPositionMs = ms
	b.UI.OnPosition(ms)
}

func (b *Bridge) onDuration(ms float64) {
	if b.seeking {
		b.heldDuring.hasDuration = true
		b.heldDuring.durationMs = ms
		return
	}
	b.UI.OnDuration(ms)
	b.Session.SetDuration(int64(ms * 1000))
}

func (b *Bridge) onPauseChanged(paused bool) {
	if b.seeking {
		b.heldDuring.hasPause = true
		b.heldDuring.paused = paused
		return
	}
	b.applyPauseChanged(paused)
}

func (b *Bridge) applyPauseChanged(paused bool) {
	b.paused = paused
	if paused {
		b.UI.OnPaused()
	} else {
		b.UI.OnPlaying()
	}
	b.Session.SetPlaying(!paused)
}

// onSeekingChanged implements the seeking latch (spec section 4.E):
// entering seeking holds subsequent non-seek state changes; clearing
// emits exactly one Seeked(position) to the media session and flushes
// whatever was held.
func (b *Bridge) onSeekingChanged(seeking bool) {
	wasSeeking := b.seeking
	b.seeking = seeking
	if seeking || !wasSeeking {
		return
	}

	b.lastPositionMs = b.currentPositionForSeeked()
	b.Session.Seeked(int64(b.lastPositionMs * 1000))

	flushed := b.heldDuring
	b.heldDuring = held{}
	if flushed.hasDuration {
		b.UI.OnDuration(flushed.durationMs)
		b.Session.SetDuration(int64(flushed.durationMs * 1000))
	}
	if flushed.hasPause {
		b.applyPauseChanged(flushed.paused)
	}
	if flushed.hasPosition {
		b.UI.OnPosition(flushed.positionMs)
		b.lastPositionMs = flushed.positionMs
	}
}

func (b *Bridge) currentPositionForSeeked() float64 {
	if b.heldDuring.hasPosition {
		return b.heldDuring.positionMs
	}
	return b.lastPositionMs
}

// onBuffering implements the media-session rate policy from spec section
// 4.E and testable property 8: report rate 0 while buffering, restore
// current_playback_rate unconditionally on clear (resolved Open Question
// 3 in DESIGN.md).
func (b *Bridge) onBuffering(buffering bool) {
	b.buffering = buffering
	if buffering {
		b.Session.SetRate(0)
		return
	}
	b.Session.SetRate(b.currentPlaybackRate)
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
