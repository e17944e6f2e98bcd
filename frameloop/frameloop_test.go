// SPDX-FileCopyrightText : © 2024 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

package frameloop

import (
	"testing"
	"time"

	"github.com/jellyfin/jellyfin-desktop-go/device"
	"github.com/jellyfin/jellyfin-desktop-go/fullscreen"
	"github.com/jellyfin/jellyfin-desktop-go/hidpi"
	"github.com/jellyfin/jellyfin-desktop-go/inputstack"
	"github.com/jellyfin/jellyfin-desktop-go/overlay"
	"github.com/jellyfin/jellyfin-desktop-go/player"
)

// fakeDevice implements device.Device for the parts the loop touches.
type fakeDevice struct {
	alive       bool
	pressed     device.Pressed
	w, h        int
	fullscreen  bool
	cursorShown bool
}

func newFakeDevice() *fakeDevice {
	return &fakeDevice{alive: true, w: 800, h: 450, pressed: device.Pressed{Focus: true, Down: map[int]int{}}}
}

func (d *fakeDevice) Open()                           {}
func (d *fakeDevice) ShowCursor(show bool)            { d.cursorShown = show }
func (d *fakeDevice) SetCursorAt(x, y int)            {}
func (d *fakeDevice) Dispose()                        {}
func (d *fakeDevice) IsAlive() bool                   { return d.alive }
func (d *fakeDevice) Size() (x, y, width, height int) { return 0, 0, d.w, d.h }
func (d *fakeDevice) IsFullScreen() bool              { return d.fullscreen }
func (d *fakeDevice) ToggleFullScreen()               { d.fullscreen = !d.fullscreen }
func (d *fakeDevice) SwapBuffers()                    {}
func (d *fakeDevice) Update() *device.Pressed         { p := d.pressed; return &p }

type fakeGPU struct {
	w, h        int
	presented   int
	resizeCalls int
}

func (g *fakeGPU) Present() error               { g.presented++; return nil }
func (g *fakeGPU) Resize(w, h int) error        { g.w, g.h = w, h; g.resizeCalls++; return nil }
func (g *fakeGPU) PhysicalSize() (w, h int)     { return g.w, g.h }

type fakeCompositor struct {
	imported, flushed, composited, resized int
	lastAlpha                              float32
}

func (c *fakeCompositor) ImportQueued()                       { c.imported++ }
func (c *fakeCompositor) FlushOverlay()                        { c.flushed++ }
func (c *fakeCompositor) Composite(w, h int, alpha float32)    { c.composited++; c.lastAlpha = alpha }
func (c *fakeCompositor) Resize(w, h int)                      { c.resized++ }

type fakeVideo struct {
	processed   int
	hasFrame    bool
	renderCalls int
}

func (v *fakeVideo) ProcessEvents()           { v.processed++ }
func (v *fakeVideo) HasFrame() bool           { return v.hasFrame }
func (v *fakeVideo) Render(w, h, fbo int)     { v.renderCalls++ }

type fakeHost struct {
	needed bool
}

func (h *fakeHost) NeedsWork() (bool, int64) { return h.needed, 0 }

type fakeBrowserEngine struct {
	loadedURL    string
	resized      bool
	focusCalls   []bool
	pointerCalls int
	keyCalls     int
	textCalls    int
	touchCalls   int
	editCalls    []string
}

func (e *fakeBrowserEngine) SendPointer(ev inputstack.Event) { e.pointerCalls++ }
func (e *fakeBrowserEngine) SendKey(ev inputstack.Event)     { e.keyCalls++ }
func (e *fakeBrowserEngine) SendText(text string)            { e.textCalls++ }
func (e *fakeBrowserEngine) SendTouch(ev inputstack.Event)   { e.touchCalls++ }
func (e *fakeBrowserEngine) Paste(mime string)               { e.editCalls = append(e.editCalls, "paste") }
func (e *fakeBrowserEngine) Copy()                           { e.editCalls = append(e.editCalls, "copy") }
func (e *fakeBrowserEngine) Cut()                            { e.editCalls = append(e.editCalls, "cut") }
func (e *fakeBrowserEngine) SelectAll()                      { e.editCalls = append(e.editCalls, "selectAll") }
func (e *fakeBrowserEngine) Undo()                           { e.editCalls = append(e.editCalls, "undo") }
func (e *fakeBrowserEngine) Redo()                           { e.editCalls = append(e.editCalls, "redo") }
func (e *fakeBrowserEngine) LoadURL(url string)              { e.loadedURL = url }
func (e *fakeBrowserEngine) Resize(w, h int)                 { e.resized = true }
func (e *fakeBrowserEngine) SetFocus(focus bool)              { e.focusCalls = append(e.focusCalls, focus) }

type fakeUI struct {
	positions []float64
	playing   int
	paused    int
}

func (u *fakeUI) OnPosition(ms float64)                       { u.positions = append(u.positions, ms) }
func (u *fakeUI) OnDuration(ms float64)                        {}
func (u *fakeUI) OnPlaying()                                   { u.playing++ }
func (u *fakeUI) OnPaused()                                    { u.paused++ }
func (u *fakeUI) OnFinished()                                  {}
func (u *fakeUI) OnCanceled()                                  {}
func (u *fakeUI) OnError(message string)                       {}
func (u *fakeUI) OnBufferedRanges(ranges []player.BufferedRange) {}

type fakeEngine struct{}

func (fakeEngine) Load(url string, startMs int64) error { return nil }
func (fakeEngine) Stop()                                 {}
func (fakeEngine) SetPause(paused bool)                  {}
func (fakeEngine) Seek(targetMs int64)                   {}
func (fakeEngine) SetVolume(volume int)                  {}
func (fakeEngine) SetMute(muted bool)                    {}
func (fakeEngine) SetSpeed(speed float64)                {}
func (fakeEngine) SetSubtitleTrack(id int)               {}
func (fakeEngine) SetAudioTrack(id int)                  {}
func (fakeEngine) SetAudioDelay(seconds float64)         {}
func (fakeEngine) SetNormalizationGain(gainDB float64)   {}
func (fakeEngine) Close()                                {}

type fakeSession struct{}

func (fakeSession) SetMetadata(player.MediaMetadata)  {}
func (fakeSession) SetDuration(ms int64)              {}
func (fakeSession) SetPlaying(playing bool)           {}
func (fakeSession) SetRate(rate float64)              {}
func (fakeSession) Seeked(positionUs int64)           {}
func (fakeSession) Notify(kind string, payload string) {}

func newTestLoop(t *testing.T) (*Loop, *fakeDevice, *fakeGPU, *fakeCompositor, *fakeCompositor, *fakeVideo, *fakeHost, *fakeBrowserEngine, *fakeBrowserEngine, *player.Bridge) {
	t.Helper()
	dev := newFakeDevice()
	gpu := &fakeGPU{w: 800, h: 450}
	mainComp := &fakeCompositor{}
	overlayComp := &fakeCompositor{}
	video := &fakeVideo{}
	host := &fakeHost{}
	overlayEngine := &fakeBrowserEngine{}
	mainEngine := &fakeBrowserEngine{}
	ui := &fakeUI{}
	bridge := player.NewBridge(fakeEngine{}, fakeSession{}, ui)

	loop := NewLoop(Deps{
		Device:            dev,
		GPU:               gpu,
		MainCompositor:    mainComp,
		OverlayCompositor: overlayComp,
		Host:              host,
		PumpMessages:      func() {},
		OverlayEngine:     overlayEngine,
		MainEngine:        mainEngine,
		Bridge:            bridge,
		Video:             video,
		Stack:             &inputstack.Stack{},
		Overlay:           overlay.New(false),
		Fullscreen:        &fullscreen.Tracker{},
		HiDPI:             hidpi.NewMonitor(1),
		ActionModifier:    inputstack.ModControl,
		MainURL:           "jmp://app/index.html",
		HasSavedServerURL: false,
	})
	return loop, dev, gpu, mainComp, overlayComp, video, host, overlayEngine, mainEngine, bridge
}

func TestNewLoopPushesOverlayLayerWhenOverlayFocused(t *testing.T) {
	loop, _, _, _, _, _, _, _, _, _ := newTestLoop(t)
	if loop.activeBrowserLayer != loop.overlayLayer {
		t.Fatal("expected overlay layer active on cold start with no saved server")
	}
}

func TestTickPumpsVideoAndRenders(t *testing.T) {
	loop, _, gpu, mainComp, _, video, _, _, _, _ := newTestLoop(t)
	loop.Tick(time.Unix(0, 0))

	if video.processed != 1 {
		t.Fatalf("video.processed = %d, want 1", video.processed)
	}
	if mainComp.imported != 1 || mainComp.flushed != 1 || mainComp.composited != 1 {
		t.Fatalf("main compositor not driven: %+v", mainComp)
	}
	if gpu.presented != 1 {
		t.Fatalf("gpu.presented = %d, want 1", gpu.presented)
	}
}

func TestTickPumpsMessageLoopOnlyWhenNeeded(t *testing.T) {
	loop, _, _, _, _, _, host, _, _, _ := newTestLoop(t)
	pumped := 0
	loop.pump = func() { pumped++ }

	host.needed = false
	loop.Tick(time.Unix(0, 0))
	if pumped != 0 {
		t.Fatalf("pumped = %d, want 0 when host reports no work", pumped)
	}

	host.needed = true
	loop.Tick(time.Unix(0, 1))
	if pumped != 1 {
		t.Fatalf("pumped = %d, want 1 when host reports work", pumped)
	}
}

func TestOverlayFadeTransfersInputFocus(t *testing.T) {
	loop, _, _, _, _, _, _, _, _, _ := newTestLoop(t)
	t0 := time.Unix(0, 0)

	loop.overlay.ReportServerURL(t0)
	loop.Tick(t0.Add(overlay.FadeDelay))

	if loop.activeBrowserLayer != loop.mainLayer {
		t.Fatal("expected focus to transfer to the main layer on entering Fading")
	}
}

func TestOnServerURLSavedLoadsMainEngine(t *testing.T) {
	loop, _, _, _, _, _, _, _, mainEngine, _ := newTestLoop(t)
	loop.OnServerURLSaved(time.Unix(0, 0))

	if mainEngine.loadedURL != "jmp://app/index.html" {
		t.Fatalf("mainEngine.loadedURL = %q", mainEngine.loadedURL)
	}
	if loop.overlay.State() != overlay.Waiting {
		t.Fatalf("overlay.State() = %v, want Waiting", loop.overlay.State())
	}
}

func TestResizePropagatesPhysicalSizeThroughScale(t *testing.T) {
	loop, dev, gpu, mainComp, overlayComp, _, _, overlayEngine, mainEngine, _ := newTestLoop(t)
	loop.OnScaleChanged(2)
	dev.w, dev.h = 1000, 600
	dev.pressed.Resized = true

	loop.Tick(time.Unix(0, 0))

	if gpu.w != 2000 || gpu.h != 1200 {
		t.Fatalf("gpu resized to (%d,%d), want (2000,1200)", gpu.w, gpu.h)
	}
	if mainComp.resized == 0 || overlayComp.resized == 0 {
		t.Fatal("expected both compositors resized")
	}
	if !overlayEngine.resized || !mainEngine.resized {
		t.Fatal("expected both web engines resized")
	}
}

func TestFocusChangeNotifiesStackAndEngines(t *testing.T) {
	loop, dev, _, _, _, _, _, overlayEngine, mainEngine, _ := newTestLoop(t)
	dev.pressed.Focus = false

	loop.Tick(time.Unix(0, 0))

	if len(overlayEngine.focusCalls) == 0 || overlayEngine.focusCalls[len(overlayEngine.focusCalls)-1] {
		t.Fatalf("expected overlay engine told focus lost: %v", overlayEngine.focusCalls)
	}
	if len(mainEngine.focusCalls) == 0 || mainEngine.focusCalls[len(mainEngine.focusCalls)-1] {
		t.Fatalf("expected main engine told focus lost: %v", mainEngine.focusCalls)
	}
}

func TestVideoTransportSeekRelativeClampsToZero(t *testing.T) {
	var q player.CommandQueue
	track := &playbackTracker{delegate: &fakeUI{}}
	vt := &videoTransport{commands: &q, track: track}

	vt.SeekRelative(-5000)

	cmds := q.Drain()
	if len(cmds) != 1 || cmds[0].Kind != player.CmdSeek || cmds[0].IntArg != 0 {
		t.Fatalf("unexpected commands: %+v", cmds)
	}
}

func TestVideoTransportVolumeDeltaClampsAndAccumulates(t *testing.T) {
	var q player.CommandQueue
	track := &playbackTracker{delegate: &fakeUI{}}
	vt := &videoTransport{commands: &q, track: track}

	vt.VolumeDelta(0.5) // 100 -> 100 (clamped)
	vt.VolumeDelta(-2)  // -> 0 (clamped)

	cmds := q.Drain()
	if len(cmds) != 2 {
		t.Fatalf("len(cmds) = %d, want 2", len(cmds))
	}
	if cmds[0].IntArg != 100 {
		t.Fatalf("cmds[0].IntArg = %d, want 100", cmds[0].IntArg)
	}
	if cmds[1].IntArg != 0 {
		t.Fatalf("cmds[1].IntArg = %d, want 0", cmds[1].IntArg)
	}
}

func TestPlaybackTrackerCachesPositionAndPlayingState(t *testing.T) {
	delegate := &fakeUI{}
	track := &playbackTracker{delegate: delegate}

	track.OnPosition(4200)
	track.OnPlaying()
	if track.position() != 4200 {
		t.Fatalf("position() = %v, want 4200", track.position())
	}
	if !track.isPlaying() {
		t.Fatal("expected isPlaying() true after OnPlaying")
	}
	if len(delegate.positions) != 1 || delegate.positions[0] != 4200 {
		t.Fatal("expected delegate to receive the forwarded position")
	}

	track.OnPaused()
	if track.isPlaying() {
		t.Fatal("expected isPlaying() false after OnPaused")
	}
}

func TestIdleSkipsSleepWhenInputRouted(t *testing.T) {
	loop, _, _, _, _, _, _, _, _, _ := newTestLoop(t)
	if loop.idle(true) {
		t.Fatal("idle(true) should be false: input was routed")
	}
	if !loop.idle(false) {
		t.Fatal("idle(false) should be true with no playback, no fade, no pending work")
	}
}
