// SPDX-FileCopyrightText : © 2024 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

// Package frameloop drives the single-threaded cooperative main loop
// (spec section 4.G): pumping the embedded web engine, the video engine,
// OS events and the input stack, advancing the onboarding-overlay fade
// state machine, and rendering every layer in the fixed per-platform
// order. It generalizes device.Device's own "for dev.IsAlive() { pressed
// := dev.Update(); ...; dev.SwapBuffers() }" loop shape into an
// event-driven one with an external message pump and a fade tick added
// on top, the same way package overlay generalizes a one-shot animation
// into a reusable state machine.
package frameloop

import (
	"log/slog"
	"time"

	"github.com/jellyfin/jellyfin-desktop-go/cursor"
	"github.com/jellyfin/jellyfin-desktop-go/device"
	"github.com/jellyfin/jellyfin-desktop-go/fullscreen"
	"github.com/jellyfin/jellyfin-desktop-go/hidpi"
	"github.com/jellyfin/jellyfin-desktop-go/inputstack"
	"github.com/jellyfin/jellyfin-desktop-go/menu"
	"github.com/jellyfin/jellyfin-desktop-go/overlay"
	"github.com/jellyfin/jellyfin-desktop-go/player"
)

// gpuContext is the slice of gpucontext.Context the loop needs, narrowed
// so tests can fake it without building a real GPU backend.
type gpuContext interface {
	Present() error
	Resize(w, h int) error
	PhysicalSize() (w, h int)
}

// compositorTarget is the slice of compositor.Compositor the loop drives
// once per frame.
type compositorTarget interface {
	ImportQueued()
	FlushOverlay()
	Composite(w, h int, alpha float32)
	Resize(w, h int)
}

// videoSurface is the slice of videosurface.Surface the loop resizes on
// window/scale changes; nil on platforms where video composites into the
// main framebuffer instead (spec section 4.B).
type videoSurface interface {
	Resize(w, h int) error
	SetLogicalRect(x, y, w, h int) error
	Close() error
}

// videoEngine is the per-frame pump surface of player/mpv.Engine.
type videoEngine interface {
	ProcessEvents()
	HasFrame() bool
	Render(w, h, fbo int)
}

// browserEngine is the slice of webengine.Engine a browser input layer
// and the render/resize steps need.
type browserEngine interface {
	inputstack.WebEngine
	LoadURL(url string)
	Resize(w, h int)
	SetFocus(focus bool)
}

// messageHost is the slice of webengine.Host the loop polls each
// iteration to decide whether to pump CEF's message loop.
type messageHost interface {
	NeedsWork() (needed bool, delayMs int64)
}

// pumpMessageLoop is webengine.DoMessageLoopWork, passed in rather than
// imported directly so this package never needs cgo (and so tests can
// substitute a no-op).
type pumpMessageLoop func()

// PressedTranslator turns two consecutive device.Pressed polls into the
// input-stack events that changed between them. The real implementation
// lives in package platform, which alone knows how to map a given OS's
// native key/mouse codes in Pressed.Down onto inputstack's neutral event
// shapes (spec section 4.F); frameloop only needs the result.
type PressedTranslator func(prev, cur *device.Pressed, windowW, windowH int) []inputstack.Event

// Deps are the already-constructed pieces NewLoop wires together. None
// are optional except VideoSurface, Menu and MediaSession, which are nil
// on platforms/configurations that don't have one (spec section 4.B: no
// independent surface on Windows; section 7: menu disabled with no font
// found; section 1: media-session is Linux/MPRIS only).
type Deps struct {
	Log *slog.Logger

	Device device.Device
	GPU    gpuContext

	MainCompositor    compositorTarget
	OverlayCompositor compositorTarget
	VideoSurface      videoSurface // nil: video composites via MainCompositor's host instead

	Host          messageHost
	PumpMessages  pumpMessageLoop
	OverlayEngine browserEngine
	MainEngine    browserEngine

	Bridge *player.Bridge
	Video  videoEngine

	MediaSession mediaSessionCloser // nil if unavailable on this platform

	Stack          *inputstack.Stack
	Overlay        *overlay.Machine
	Menu           *menu.Menu // nil if disabled (no font found)
	Cursor         *cursor.Cache
	Fullscreen     *fullscreen.Tracker
	HiDPI          *hidpi.Monitor
	ClipboardProbe inputstack.ClipboardProbe
	ActionModifier inputstack.Modifiers

	Translate PressedTranslator

	// HasSavedServerURL reports whether a server URL is already persisted
	// (spec section 3). Overlay is expected to already be in the matching
	// state (Waiting if so, Showing otherwise); when set, NewLoop starts
	// the overlay's fade timer, since the main engine loads immediately.
	HasSavedServerURL bool
	// MainURL is the scheme URL the main web engine is pointed at once
	// the overlay reports a server, e.g. "jmp://app/index.html".
	MainURL string
}

// mediaSessionCloser is the slice of mediasession.Backend the loop owns
// the lifetime of.
type mediaSessionCloser interface {
	Close() error
}

// Loop owns the main-thread state the frame loop mutates every
// iteration: window/scale bookkeeping, the active input layer, and the
// playback/position cache VideoLayer's media-key handlers read from.
type Loop struct {
	log *slog.Logger

	dev  device.Device
	gpu  gpuContext
	host messageHost
	pump pumpMessageLoop

	mainComp    compositorTarget
	overlayComp compositorTarget
	videoSurf   videoSurface

	overlayEngine browserEngine
	mainEngine    browserEngine

	bridge *player.Bridge
	video  videoEngine

	mediaSession mediaSessionCloser

	stack      *inputstack.Stack
	overlay    *overlay.Machine
	menu       *menu.Menu
	cursor     *cursor.Cache
	fullscreen *fullscreen.Tracker
	hidpi      *hidpi.Monitor

	translate PressedTranslator

	activeBrowserLayer inputstack.Layer
	overlayLayer       *inputstack.BrowserLayer
	mainLayer          *inputstack.BrowserLayer
	videoLayer         *inputstack.VideoLayer
	menuLayer          *inputstack.MenuLayer

	track *playbackTracker

	prevPressed *device.Pressed
	focused     bool

	logicalW, logicalH int
	mainURL            string
}

// NewLoop wires d's components into their fixed input-stack order (spec
// section 4.F: {menu} -> {active web UI} -> {video}) and pushes the
// overlay's browser layer on top if the overlay starts out focused,
// otherwise the main layer, matching overlay.New's own cold-start split.
func NewLoop(d Deps) *Loop {
	log := d.Log
	if log == nil {
		log = slog.Default()
	}

	track := &playbackTracker{delegate: d.Bridge.UI}
	d.Bridge.UI = track

	l := &Loop{
		log:          log,
		dev:          d.Device,
		gpu:          d.GPU,
		host:         d.Host,
		pump:         d.PumpMessages,
		mainComp:     d.MainCompositor,
		overlayComp:  d.OverlayCompositor,
		videoSurf:    d.VideoSurface,
		overlayEngine: d.OverlayEngine,
		mainEngine:   d.MainEngine,
		bridge:       d.Bridge,
		video:        d.Video,
		mediaSession: d.MediaSession,
		stack:        d.Stack,
		overlay:      d.Overlay,
		menu:         d.Menu,
		cursor:       d.Cursor,
		fullscreen:   d.Fullscreen,
		hidpi:        d.HiDPI,
		translate:    d.Translate,
		track:        track,
		focused:      true, // device.Pressed starts out focused
		mainURL:      d.MainURL,
	}

	l.overlayLayer = &inputstack.BrowserLayer{Engine: d.OverlayEngine, Clipboard: d.ClipboardProbe, ActionModifier: d.ActionModifier}
	l.mainLayer = &inputstack.BrowserLayer{Engine: d.MainEngine, Clipboard: d.ClipboardProbe, ActionModifier: d.ActionModifier}
	l.videoLayer = &inputstack.VideoLayer{Engine: &videoTransport{commands: &d.Bridge.Commands, track: track}}

	if d.Menu != nil {
		l.menuLayer = &inputstack.MenuLayer{
			Sink:          d.Menu,
			IsOpen:        d.Menu.IsOpen,
			HitTest:       d.Menu.HitTest,
			SetHover:      d.Menu.SetHover,
			SelectHovered: d.Menu.SelectHovered,
		}
	}

	l.stack.Push(l.videoLayer)
	if l.overlay.IsOverlayFocused() {
		l.activeBrowserLayer = l.overlayLayer
	} else {
		l.activeBrowserLayer = l.mainLayer
	}
	l.stack.Push(l.activeBrowserLayer)
	if l.menuLayer != nil {
		l.stack.Push(l.menuLayer)
	}

	if d.HasSavedServerURL {
		l.overlay.StartMainLoad(time.Now())
	}

	return l
}

// OnServerURLSaved is called from player.Bridge.SaveServerURL: it advances
// the overlay state machine and starts the main engine's load, the two
// side effects spec section 3 attaches to the overlay reporting a server
// URL, distinct from the disk persistence webengine.IPCRouter already
// performed directly.
func (l *Loop) OnServerURLSaved(now time.Time) {
	l.overlay.ReportServerURL(now)
	l.mainEngine.LoadURL(l.mainURL)
	l.overlay.StartMainLoad(now)
}

// Run executes the loop until the device reports it is no longer alive,
// then releases the media session.
func (l *Loop) Run() {
	for l.dev.IsAlive() {
		l.Tick(time.Now())
	}
	if l.mediaSession != nil {
		if err := l.mediaSession.Close(); err != nil {
			l.log.Warn("media session close failed", "err", err)
		}
	}
}

// Tick runs one iteration of the loop (spec section 4.G, steps 1-6).
func (l *Loop) Tick(now time.Time) {
	l.video.ProcessEvents() // step 1

	if needed, _ := l.host.NeedsWork(); needed { // step 2
		l.pump()
	}

	routed := l.pollInput() // step 3
	if l.idle(routed) {
		// No OS activity, no video playing, no active fade: wait briefly
		// rather than busy-spin (spec section 4.G step 3), while still
		// giving the embedded engine a chance to respond quickly.
		time.Sleep(time.Millisecond)
	}

	l.bridge.Pump() // step 4

	tr := l.overlay.Tick(now) // step 5
	if tr.EnteredFading {
		l.stack.Replace(l.overlayLayer, l.mainLayer)
		l.activeBrowserLayer = l.mainLayer
	}

	l.render(now) // step 6
}

// pollInput implements step 3: polls the device, reacts to window-state
// changes, translates the poll delta into input-stack events, and routes
// each one. It reports whether anything happened, for the idle-wait
// decision in Tick.
func (l *Loop) pollInput() (active bool) {
	pressed := l.dev.Update()

	if pressed.Focus != l.focused {
		active = true
		l.focused = pressed.Focus
		if l.focused {
			l.stack.NotifyFocusGained()
			want := l.fullscreen.FocusGainRequest()
			l.overlayEngine.SetFocus(true)
			l.mainEngine.SetFocus(true)
			if want != l.dev.IsFullScreen() {
				l.dev.ToggleFullScreen()
			}
		} else {
			l.stack.NotifyFocusLost()
			l.overlayEngine.SetFocus(false)
			l.mainEngine.SetFocus(false)
		}
	}

	if pressed.Resized {
		active = true
		l.applyResize()
	}

	if l.translate != nil && l.prevPressed != nil {
		events := l.translate(l.prevPressed, pressed, l.logicalW, l.logicalH)
		for _, ev := range events {
			l.stack.Route(ev)
		}
		if len(events) > 0 {
			active = true
		}
	}
	l.prevPressed = pressed
	return active
}

// idle reports whether the loop has nothing to do this iteration besides
// wait: no routed input, no video playback, no overlay fade animating,
// and no pending web-engine work (spec section 4.G step 3).
func (l *Loop) idle(routedInput bool) bool {
	if routedInput {
		return false
	}
	if l.track.isPlaying() {
		return false
	}
	if l.overlay.State() == overlay.Fading {
		return false
	}
	if needed, _ := l.host.NeedsWork(); needed {
		return false
	}
	return true
}

// applyResize re-reads the window's logical size and propagates the
// corresponding physical size (spec section 4.I) to every layer that is
// sized in physical pixels.
func (l *Loop) applyResize() {
	_, _, w, h := l.dev.Size()
	l.resizeTo(w, h)
}

func (l *Loop) resizeTo(logicalW, logicalH int) {
	l.logicalW, l.logicalH = logicalW, logicalH
	scale := l.hidpi.Scale()
	physW, physH := scale.ToPhysical(logicalW), scale.ToPhysical(logicalH)

	if err := l.gpu.Resize(physW, physH); err != nil {
		l.log.Error("gpu resize failed", "err", err)
	}
	l.mainComp.Resize(physW, physH)
	l.overlayComp.Resize(physW, physH)
	if l.videoSurf != nil {
		if err := l.videoSurf.Resize(physW, physH); err != nil {
			l.log.Warn("video surface resize failed", "err", err)
		}
		if err := l.videoSurf.SetLogicalRect(0, 0, logicalW, logicalH); err != nil {
			l.log.Warn("video surface rect failed", "err", err)
		}
	}
	l.overlayEngine.Resize(logicalW, logicalH)
	l.mainEngine.Resize(logicalW, logicalH)
}

// OnScaleChanged applies a HiDPI scale-factor change (spec section 4.I):
// compositors, the video surface and both web engines are resized for
// the new physical size at the window's current logical size.
func (l *Loop) OnScaleChanged(scale hidpi.Scale) {
	if !l.hidpi.Update(scale) {
		return
	}
	l.resizeTo(l.logicalW, l.logicalH)
}

// render implements the fixed per-frame render order (spec section 4.G):
// clear, video, main UI, overlay UI, present.
func (l *Loop) render(now time.Time) {
	_ = l.overlay.ClearColor() // consumed by the platform clear call, not owned here

	w, h := l.gpu.PhysicalSize()

	if l.videoSurf == nil && l.video.HasFrame() {
		// No independent video surface (Windows/X11): video renders
		// straight into the main framebuffer (spec section 4.B).
		l.video.Render(w, h, 0)
	}

	l.mainComp.ImportQueued()
	l.mainComp.FlushOverlay()
	l.mainComp.Composite(w, h, 1)

	if l.overlay.State() != overlay.Hidden {
		l.overlayComp.ImportQueued()
		l.overlayComp.FlushOverlay()
		l.overlayComp.Composite(w, h, float32(l.overlay.Alpha()))
	}

	if err := l.gpu.Present(); err != nil {
		l.log.Error("present failed", "err", err)
	}
}

// PumpAndRender re-runs the message-pump, video-render and composite
// steps without touching input or the overlay clock, for the live-resize
// event watcher macOS's modal resize loop installs (spec section 4.G:
// "pumps the web engine's message loop, re-renders video if a frame is
// available, flushes paint buffers, and composites").
func (l *Loop) PumpAndRender(now time.Time) {
	if needed, _ := l.host.NeedsWork(); needed {
		l.pump()
	}
	l.render(now)
}

// ApplyCursor updates the OS cursor if the web engine reported a new
// cursor type since the last apply (spec section 4.I).
func (l *Loop) ApplyCursor(t cursor.Type) {
	l.cursor.Apply(t)
}

// EnterWebFullscreen and ExitWebFullscreen wire the web engine's
// fullscreen DOM requests into the tri-state tracker and the real window
// (spec section 4.I).
func (l *Loop) EnterWebFullscreen() {
	l.fullscreen.EnterWeb()
	if !l.dev.IsFullScreen() {
		l.dev.ToggleFullScreen()
	}
}

func (l *Loop) ExitWebFullscreen() {
	if l.fullscreen.RequestWebExit() && l.dev.IsFullScreen() {
		l.dev.ToggleFullScreen()
	}
}

// ToggleWindowManagerFullscreen handles the OS/WM fullscreen hotkey
// (F11, titlebar button): entering is always honoured; exiting only
// takes effect if the window manager was the one that entered it.
func (l *Loop) ToggleWindowManagerFullscreen() {
	if l.dev.IsFullScreen() {
		if l.fullscreen.RequestWindowManagerExit() {
			l.dev.ToggleFullScreen()
		}
		return
	}
	l.fullscreen.EnterWindowManager()
	l.dev.ToggleFullScreen()
}
