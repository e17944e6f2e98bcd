// SPDX-FileCopyrightText : © 2024 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

package inputstack

// WebEngine is the subset of the web-engine host (package webengine) a
// BrowserLayer needs: forwarding raw events, and the direct edit
// commands spec section 4.F calls out for the action-modifier shortcuts.
type WebEngine interface {
	SendPointer(ev Event)
	SendKey(ev Event)
	SendText(text string)
	SendTouch(ev Event)
	Paste(mime string)
	Copy()
	Cut()
	SelectAll()
	Undo()
	Redo()
}

// ClipboardMIMEOrder is the order Paste attempts MIME types, stopping at
// the first available (spec section 4.F).
var ClipboardMIMEOrder = []string{
	"image/png",
	"image/jpeg",
	"image/gif",
	"text/html",
	"text/plain",
}

// ClipboardProbe reports whether data of the given MIME type is on the
// system clipboard; implemented per platform.
type ClipboardProbe interface {
	HasMIME(mime string) bool
}

// BrowserLayer forwards input to one of the two web engine instances
// (overlay or main), intercepting the action-modifier clipboard/edit
// shortcuts so they go straight to the engine's edit commands rather
// than as a raw keystroke (spec section 4.F).
type BrowserLayer struct {
	Engine    WebEngine
	Clipboard ClipboardProbe
	// ActionModifier is ModCommand on macOS, ModControl elsewhere.
	ActionModifier Modifiers
}

// HandleInput implements Layer.
func (b *BrowserLayer) HandleInput(ev Event) bool {
	switch ev.Kind {
	case KeyDown:
		if ev.Key.Modifiers&b.ActionModifier != 0 {
			if consumed := b.handleShortcut(ev.Key); consumed {
				return true
			}
		}
		b.Engine.SendKey(ev)
		return true
	case KeyUp:
		b.Engine.SendKey(ev)
		return true
	case TextInput:
		b.Engine.SendText(ev.Text)
		return true
	case PointerDown, PointerUp, PointerMove, PointerScroll:
		b.Engine.SendPointer(ev)
		return true
	case TouchDown, TouchMove, TouchUp:
		b.Engine.SendTouch(ev)
		return true
	}
	return false
}

// handleShortcut dispatches the action-modifier + V/C/X/A/Z/Shift-Z/Y
// shortcuts directly to the engine's edit commands.
func (b *BrowserLayer) handleShortcut(key KeyEvent) bool {
	shift := key.Modifiers&ModShift != 0
	switch key.WindowsVK {
	case 'V':
		for _, mime := range ClipboardMIMEOrder {
			if b.Clipboard == nil || b.Clipboard.HasMIME(mime) {
				b.Engine.Paste(mime)
				return true
			}
		}
		return true
	case 'C':
		b.Engine.Copy()
		return true
	case 'X':
		b.Engine.Cut()
		return true
	case 'A':
		b.Engine.SelectAll()
		return true
	case 'Z':
		if shift {
			b.Engine.Redo()
		} else {
			b.Engine.Undo()
		}
		return true
	case 'Y':
		b.Engine.Redo()
		return true
	}
	return false
}

// MenuCommandSink receives the selection result from a context menu.
type MenuCommandSink interface {
	SelectMenuItem(commandID int)
	CancelMenu()
}

// MenuLayer is the topmost layer while a context menu is open (spec
// section 3/4.D): it consumes all input, tracking hover and handling
// dismissal, without letting anything leak through to the layers below.
type MenuLayer struct {
	Sink          MenuCommandSink
	IsOpen        func() bool
	HitTest       func(x, y int) (itemIndex int, inside bool)
	SetHover      func(itemIndex int)
	SelectHovered func() (commandID int, ok bool)
	// IgnoreNextUp is true immediately after opening so the release of
	// the opening right-click does not instantly select an item.
	IgnoreNextUp bool
}

// HandleInput implements Layer.
func (m *MenuLayer) HandleInput(ev Event) bool {
	if !m.IsOpen() {
		return false
	}
	switch ev.Kind {
	case KeyDown:
		if ev.Key.WindowsVK == vkEscape {
			m.Sink.CancelMenu()
			return true
		}
		return true // menu consumes all keys while open
	case PointerMove:
		idx, inside := m.HitTest(ev.X, ev.Y)
		if inside {
			m.SetHover(idx)
		}
		return true
	case PointerDown:
		_, inside := m.HitTest(ev.X, ev.Y)
		if !inside {
			m.Sink.CancelMenu()
		}
		return true
	case PointerUp:
		if m.IgnoreNextUp {
			m.IgnoreNextUp = false
			return true
		}
		if id, ok := m.SelectHovered(); ok {
			m.Sink.SelectMenuItem(id)
		} else {
			m.Sink.CancelMenu()
		}
		return true
	}
	return true
}

// VideoEngine is the subset of the player bridge a VideoLayer forwards
// media-transport hotkeys to.
type VideoEngine interface {
	TogglePause()
	SeekRelative(deltaMS int64)
	VolumeDelta(delta float64)
}

// VideoLayer sits at the bottom of the stack and only consumes
// media-transport hotkeys (spec section 4.F); everything else falls
// through unconsumed (there is nothing below it, so the stack reports
// the event as unrouted).
type VideoLayer struct {
	Engine VideoEngine
}

// HandleInput implements Layer.
func (v *VideoLayer) HandleInput(ev Event) bool {
	if ev.Kind != KeyDown {
		return false
	}
	switch ev.Key.WindowsVK {
	case vkSpace, vkMediaPlay:
		v.Engine.TogglePause()
		return true
	case vkLeft:
		v.Engine.SeekRelative(-5000)
		return true
	case vkRight:
		v.Engine.SeekRelative(5000)
		return true
	case vkVolumeUp:
		v.Engine.VolumeDelta(0.05)
		return true
	case vkVolumeDown:
		v.Engine.VolumeDelta(-0.05)
		return true
	case vkMediaNext, vkMediaPrev, vkMediaStop, vkVolumeMute:
		return true // consumed, no-op placeholder for host media keys
	}
	return false
}
