// SPDX-FileCopyrightText : © 2024 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

package player

// Engine is the subset of the out-of-process video engine's control
// surface the bridge drives, grounded on
// original_source/src/player/mpv/mpv_player_gl.h's public methods.
// Implemented by package player/mpv over libmpv via cgo.
type Engine interface {
	Load(url string, startMs int64) error
	Stop()
	SetPause(paused bool)
	Seek(targetMs int64)
	SetVolume(volume int)
	SetMute(muted bool)
	SetSpeed(speed float64)
	SetSubtitleTrack(id int)
	SetAudioTrack(id int)
	SetAudioDelay(seconds float64)
	SetNormalizationGain(gainDB float64)
	Close()
}

// UI is the set of callbacks the bridge invokes on the embedded web
// engine's JavaScript API in response to filtered engine events (spec
// section 4.E's "UI callback" column).
type UI interface {
	OnPosition(ms float64)
	OnDuration(ms float64)
	OnPlaying()
	OnPaused()
	OnFinished()
	OnCanceled()
	OnError(message string)
	OnBufferedRanges(ranges []BufferedRange)
}

// Session is the subset of the OS media-session surface the bridge
// drives; implemented by package mediasession's Backend.
type Session interface {
	SetMetadata(MediaMetadata)
	SetDuration(ms int64)
	SetPlaying(playing bool)
	SetRate(rate float64)
	Seeked(positionUs int64)

	// Notify forwards a CmdNotify pass-through (spec section 4.E:
	// "various - Pass-through from UI to media-session only").
	Notify(kind string, payload string)
}
