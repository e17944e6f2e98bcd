// SPDX-FileCopyrightText : © 2024 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

// input.go forwards routed input events (package inputstack) into the
// browser, the reverse direction of ipc.go: here the frame loop is
// telling the page about a keystroke or click, rather than the page
// asking the native host to do something. Grounded on
// original_source/src/main.cpp's SDL-event-to-CEF-event translation,
// generalized onto inputstack.Event's closed union.
package webengine

/*
#include "cef_bridge.h"
*/
import "C"

import "github.com/jellyfin/jellyfin-desktop-go/inputstack"

// cefMouseButton mirrors cef_mouse_button_type_t's ordering.
func cefMouseButton(b inputstack.Button) C.int {
	switch b {
	case inputstack.ButtonMiddle:
		return 1
	case inputstack.ButtonRight:
		return 2
	default:
		return 0
	}
}

func cefModifiers(m inputstack.Modifiers) C.uint32_t {
	var flags C.uint32_t
	if m&inputstack.ModShift != 0 {
		flags |= 1 << 1
	}
	if m&inputstack.ModControl != 0 {
		flags |= 1 << 2
	}
	if m&inputstack.ModAlt != 0 {
		flags |= 1 << 3
	}
	if m&inputstack.ModCommand != 0 {
		flags |= 1 << 7
	}
	return flags
}

// SendPointer implements inputstack.WebEngine.
func (e *Engine) SendPointer(ev inputstack.Event) {
	if e.browser == nil {
		return
	}
	switch ev.Kind {
	case inputstack.PointerDown:
		C.jmp_send_mouse_click(e.browser, C.int(ev.X), C.int(ev.Y), cefMouseButton(ev.Button), 0, C.int(ev.Clicks), 0)
	case inputstack.PointerUp:
		C.jmp_send_mouse_click(e.browser, C.int(ev.X), C.int(ev.Y), cefMouseButton(ev.Button), 1, C.int(ev.Clicks), 0)
	case inputstack.PointerMove:
		C.jmp_send_mouse_move(e.browser, C.int(ev.X), C.int(ev.Y), 0, 0)
	case inputstack.PointerScroll:
		C.jmp_send_mouse_wheel(e.browser, C.int(ev.X), C.int(ev.Y), 0, C.int(ev.Scroll))
	}
}

// SendKey implements inputstack.WebEngine. Each routed key press reaches
// the browser as a RAWKEYDOWN/KEYDOWN pair followed by KEYUP on release,
// matching cef_key_event_type_t's expectations for VK-code based input.
func (e *Engine) SendKey(ev inputstack.Event) {
	if e.browser == nil {
		return
	}
	mods := cefModifiers(ev.Key.Modifiers)
	switch ev.Kind {
	case inputstack.KeyDown:
		C.jmp_send_key_event(e.browser, 0, C.int(ev.Key.WindowsVK), C.int(ev.Key.NativeKey), mods)
		C.jmp_send_key_event(e.browser, 1, C.int(ev.Key.WindowsVK), C.int(ev.Key.NativeKey), mods)
	case inputstack.KeyUp:
		C.jmp_send_key_event(e.browser, 2, C.int(ev.Key.WindowsVK), C.int(ev.Key.NativeKey), mods)
	}
}

// SendText implements inputstack.WebEngine, delivering one CEF char event
// per rune in text (IME commit / paste-as-text path).
func (e *Engine) SendText(text string) {
	if e.browser == nil {
		return
	}
	for _, r := range text {
		C.jmp_send_char_event(e.browser, C.uint16_t(r))
	}
}

// SendTouch implements inputstack.WebEngine.
func (e *Engine) SendTouch(ev inputstack.Event) {
	if e.browser == nil {
		return
	}
	var phase C.int
	switch ev.Kind {
	case inputstack.TouchDown:
		phase = 0
	case inputstack.TouchMove:
		phase = 1
	case inputstack.TouchUp:
		phase = 2
	}
	C.jmp_send_touch_event(e.browser, C.int(ev.TouchID), C.double(ev.X), C.double(ev.Y), phase)
}

// Paste implements inputstack.WebEngine. mime is only used by the
// BrowserLayer's own clipboard probe to decide whether to call Paste at
// all; CEF's paste command always pulls whatever is on the system
// clipboard in its preferred format.
func (e *Engine) Paste(mime string) {
	if e.browser != nil {
		C.jmp_paste(e.browser)
	}
}

// Copy implements inputstack.WebEngine.
func (e *Engine) Copy() {
	if e.browser != nil {
		C.jmp_copy(e.browser)
	}
}

// Cut implements inputstack.WebEngine.
func (e *Engine) Cut() {
	if e.browser != nil {
		C.jmp_cut(e.browser)
	}
}

// SelectAll implements inputstack.WebEngine.
func (e *Engine) SelectAll() {
	if e.browser != nil {
		C.jmp_select_all(e.browser)
	}
}

// Undo implements inputstack.WebEngine.
func (e *Engine) Undo() {
	if e.browser != nil {
		C.jmp_undo(e.browser)
	}
}

// Redo implements inputstack.WebEngine.
func (e *Engine) Redo() {
	if e.browser != nil {
		C.jmp_redo(e.browser)
	}
}

// SetFocus notifies the browser of window focus changes (spec section
// 4.I: forwarded alongside the input-stack's own focus listeners).
func (e *Engine) SetFocus(focus bool) {
	if e.browser == nil {
		return
	}
	f := C.int(0)
	if focus {
		f = 1
	}
	C.jmp_send_focus_event(e.browser, f)
}

var _ inputstack.WebEngine = (*Engine)(nil)
