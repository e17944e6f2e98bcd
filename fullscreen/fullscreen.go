// SPDX-FileCopyrightText : © 2024 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

// Package fullscreen tracks the tri-state FullscreenSource from spec
// section 3, disambiguating who last asked for fullscreen so exit
// requests from the "wrong" side are ignored (spec section 4.I).
package fullscreen

// Source records which side last entered fullscreen.
type Source int

const (
	None Source = iota
	WindowManager
	Web
)

// Tracker enforces the exit contract: an exit event is only honoured if
// it matches the entry source, and is cleared only on a matching exit.
type Tracker struct {
	source     Source
	fullscreen bool
}

// EnterWeb records that web content requested fullscreen. Per spec
// section 4.I this always takes effect immediately.
func (t *Tracker) EnterWeb() {
	t.source = Web
	t.fullscreen = true
}

// EnterWindowManager records that the user toggled fullscreen via the
// window manager (F11, titlebar button, …).
func (t *Tracker) EnterWindowManager() {
	t.source = WindowManager
	t.fullscreen = true
}

// RequestWebExit asks to leave fullscreen on behalf of web content
// (document.exitFullscreen()). Returns true if the request was honoured.
// Testable property 6: after an engine-reported fullscreen exit, the
// window is fullscreen iff source == WindowManager at the moment of the
// exit event — i.e. a Web-sourced exit always succeeds, and is ignored
// only when the WM is currently in charge.
func (t *Tracker) RequestWebExit() (exited bool) {
	if t.source != Web {
		return false
	}
	t.fullscreen = false
	t.source = None
	return true
}

// RequestWindowManagerExit asks to leave fullscreen on behalf of the
// window manager. Only honoured if the WM was the one that entered it.
func (t *Tracker) RequestWindowManagerExit() (exited bool) {
	if t.source != WindowManager {
		return false
	}
	t.fullscreen = false
	t.source = None
	return true
}

// IsFullscreen reports the current window fullscreen state.
func (t *Tracker) IsFullscreen() bool { return t.fullscreen }

// CurrentSource returns the tri-state source, mostly for tests and logging.
func (t *Tracker) CurrentSource() Source { return t.source }

// FocusGainRequest reports what the web engine should be told to do on
// window focus gain so the two sides never fight (spec design note in
// section 9): always emit a synthetic fullscreen request/exit matching
// the current window state, regardless of source.
func (t *Tracker) FocusGainRequest() (wantFullscreen bool) {
	return t.fullscreen
}
