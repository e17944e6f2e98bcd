// SPDX-FileCopyrightText : © 2024 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

package player

import "testing"

type fakeEngine struct {
	loadedURL   string
	loadedStart int64
	speed       float64
	volume      int
	muted       bool
	paused      bool
	stopped     bool
	audioTrack  int
	subTrack    int
	gainDB      float64
}

func (f *fakeEngine) Load(url string, startMs int64) error {
	f.loadedURL, f.loadedStart = url, startMs
	return nil
}
func (f *fakeEngine) Stop()                     { f.stopped = true }
func (f *fakeEngine) SetPause(p bool)           { f.paused = p }
func (f *fakeEngine) Seek(int64)                {}
func (f *fakeEngine) SetVolume(v int)           { f.volume = v }
func (f *fakeEngine) SetMute(m bool)            { f.muted = m }
func (f *fakeEngine) SetSpeed(s float64)        { f.speed = s }
func (f *fakeEngine) SetSubtitleTrack(id int)   { f.subTrack = id }
func (f *fakeEngine) SetAudioTrack(id int)      { f.audioTrack = id }
func (f *fakeEngine) SetAudioDelay(float64)     {}
func (f *fakeEngine) SetNormalizationGain(g float64) { f.gainDB = g }
func (f *fakeEngine) Close()                    {}

type fakeSession struct {
	duration    int64
	playing     bool
	rate        float64
	seekedCount int
	lastSeekUs  int64
	metadata    MediaMetadata
}

func (f *fakeSession) SetMetadata(m MediaMetadata) { f.metadata = m }
func (f *fakeSession) SetDuration(ms int64)        { f.duration = ms }
func (f *fakeSession) SetPlaying(p bool)           { f.playing = p }
func (f *fakeSession) SetRate(r float64)           { f.rate = r }
func (f *fakeSession) Seeked(us int64) {
	f.seekedCount++
	f.lastSeekUs = us
}
func (f *fakeSession) Notify(string, string) {}

type fakeUI struct {
	positions []float64
	pauseSig  int
	playSig   int
	finished  bool
	canceled  bool
	errMsg    string
	ranges    []BufferedRange
}

func (f *fakeUI) OnPosition(ms float64)                   { f.positions = append(f.positions, ms) }
func (f *fakeUI) OnDuration(float64)                      {}
func (f *fakeUI) OnPlaying()                              { f.playSig++ }
func (f *fakeUI) OnPaused()                                { f.pauseSig++ }
func (f *fakeUI) OnFinished()                              { f.finished = true }
func (f *fakeUI) OnCanceled()                              { f.canceled = true }
func (f *fakeUI) OnError(msg string)                       { f.errMsg = msg }
func (f *fakeUI) OnBufferedRanges(r []BufferedRange)       { f.ranges = r }

func newTestBridge() (*Bridge, *fakeEngine, *fakeSession, *fakeUI) {
	eng := &fakeEngine{}
	sess := &fakeSession{}
	ui := &fakeUI{}
	return NewBridge(eng, sess, ui), eng, sess, ui
}

// TestLoadForwardsURLStartAndMetadata covers the load step of scenario 3:
// URL and start position reach the engine, and the metadata's run time
// reaches the session as its duration.
func TestLoadForwardsURLStartAndMetadata(t *testing.T) {
	b, eng, sess, _ := newTestBridge()
	b.Commands.Enqueue(Command{
		Kind:          CmdLoad,
		URL:           "http://jf.example/stream",
		IntArg:        30000,
		AudioIndex:    -1,
		SubtitleIndex: -1,
		MetadataJSON:  `{"Name":"Foo","RunTimeTicks":36000000000}`,
	})
	b.Pump()

	if eng.loadedURL != "http://jf.example/stream" || eng.loadedStart != 30000 {
		t.Fatalf("engine load args = %q, %d", eng.loadedURL, eng.loadedStart)
	}
	if sess.metadata.DurationUs != 3_600_000_000 {
		t.Fatalf("duration_us = %d, want 3600000000", sess.metadata.DurationUs)
	}
}

// TestSeekedEmittedOnceOnUserSeek covers testable property 7.
func TestSeekedEmittedOnceOnUserSeek(t *testing.T) {
	b, _, sess, _ := newTestBridge()

	b.Events.Push(Event{Kind: EvSeekingChanged, Seeking: true})
	b.Events.Push(Event{Kind: EvPosition, PositionMs: 100})
	b.Events.Push(Event{Kind: EvPosition, PositionMs: 60000})
	b.Events.Push(Event{Kind: EvSeekingChanged, Seeking: false})
	b.Pump()

	if sess.seekedCount != 1 {
		t.Fatalf("seekedCount = %d, want 1", sess.seekedCount)
	}
	if sess.lastSeekUs != 60_000_000 {
		t.Fatalf("lastSeekUs = %d, want 60000000", sess.lastSeekUs)
	}
}

// TestImplicitPositionUpdatesEmitNoSeeked covers the second half of
// testable property 7.
func TestImplicitPositionUpdatesEmitNoSeeked(t *testing.T) {
	b, _, sess, ui := newTestBridge()
	b.Events.Push(Event{Kind: EvPosition, PositionMs: 100})
	b.Events.Push(Event{Kind: EvPosition, PositionMs: 200})
	b.Pump()

	if sess.seekedCount != 0 {
		t.Fatalf("seekedCount = %d, want 0 for non-seek position updates", sess.seekedCount)
	}
	if len(ui.positions) != 2 {
		t.Fatalf("positions forwarded = %d, want 2", len(ui.positions))
	}
}

// TestPositionFilteredBelowEpsilon covers the "drop changes < 15 ms" rule.
func TestPositionFilteredBelowEpsilon(t *testing.T) {
	b, _, _, ui := newTestBridge()
	b.Events.Push(Event{Kind: EvPosition, PositionMs: 1000})
	b.Events.Push(Event{Kind: EvPosition, PositionMs: 1010})
	b.Events.Push(Event{Kind: EvPosition, PositionMs: 1020})
	b.Pump()

	if len(ui.positions) != 2 {
		t.Fatalf("positions = %v, want 2 entries (second update within epsilon dropped)", ui.positions)
	}
}

// TestBufferingReportsZeroRateAndRestores covers scenario 4 / testable
// property 8.
func TestBufferingReportsZeroRateAndRestores(t *testing.T) {
	b, _, sess, ui := newTestBridge()
	b.Commands.Enqueue(Command{Kind: CmdSpeed, DoubleArg: 1.5})
	b.Events.Push(Event{Kind: EvBuffering, Buffering: true})
	b.Pump()

	if sess.rate != 0 {
		t.Fatalf("rate during buffering = %v, want 0", sess.rate)
	}
	if ui.pauseSig != 0 {
		t.Fatal("buffering must not emit a UI pause signal")
	}

	b.Events.Push(Event{Kind: EvBuffering, Buffering: false})
	b.Pump()
	if sess.rate != 1.5 {
		t.Fatalf("rate after buffering clear = %v, want 1.5 restored", sess.rate)
	}
}

// TestFinishedDistinctFromCanceled covers "EOF distinct from user stop".
func TestFinishedDistinctFromCanceled(t *testing.T) {
	b, eng, _, ui := newTestBridge()
	b.Commands.Enqueue(Command{Kind: CmdStop})
	b.Pump()
	if !eng.stopped {
		t.Fatal("expected engine.Stop()")
	}

	b.Events.Push(Event{Kind: EvCanceled})
	b.Pump()
	if !ui.canceled || ui.finished {
		t.Fatal("stop should emit canceled, not finished")
	}
}
