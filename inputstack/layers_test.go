// SPDX-FileCopyrightText : © 2024 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

package inputstack

import "testing"

type fakeEngine struct {
	pasted    []string
	copied    bool
	cut       bool
	selectAll bool
	undone    bool
	redone    bool
	keysSent  int
}

func (f *fakeEngine) SendPointer(Event)    {}
func (f *fakeEngine) SendKey(Event)        { f.keysSent++ }
func (f *fakeEngine) SendText(string)      {}
func (f *fakeEngine) SendTouch(Event)      {}
func (f *fakeEngine) Paste(mime string)    { f.pasted = append(f.pasted, mime) }
func (f *fakeEngine) Copy()                { f.copied = true }
func (f *fakeEngine) Cut()                 { f.cut = true }
func (f *fakeEngine) SelectAll()           { f.selectAll = true }
func (f *fakeEngine) Undo()                { f.undone = true }
func (f *fakeEngine) Redo()                { f.redone = true }

type fakeClipboard struct{ has map[string]bool }

func (f *fakeClipboard) HasMIME(mime string) bool { return f.has[mime] }

func TestBrowserLayerPasteTriesMIMEOrder(t *testing.T) {
	eng := &fakeEngine{}
	clip := &fakeClipboard{has: map[string]bool{"text/html": true, "text/plain": true}}
	layer := &BrowserLayer{Engine: eng, Clipboard: clip, ActionModifier: ModControl}

	layer.HandleInput(Event{Kind: KeyDown, Key: KeyEvent{WindowsVK: 'V', Modifiers: ModControl}})
	if len(eng.pasted) != 1 || eng.pasted[0] != "text/html" {
		t.Fatalf("pasted = %v, want [text/html] (first available in order)", eng.pasted)
	}
}

func TestBrowserLayerUndoRedo(t *testing.T) {
	eng := &fakeEngine{}
	layer := &BrowserLayer{Engine: eng, ActionModifier: ModControl}

	layer.HandleInput(Event{Kind: KeyDown, Key: KeyEvent{WindowsVK: 'Z', Modifiers: ModControl}})
	if !eng.undone {
		t.Fatal("expected Undo")
	}
	layer.HandleInput(Event{Kind: KeyDown, Key: KeyEvent{WindowsVK: 'Z', Modifiers: ModControl | ModShift}})
	if !eng.redone {
		t.Fatal("expected Redo on Ctrl+Shift+Z")
	}
}

func TestBrowserLayerNonShortcutKeyForwarded(t *testing.T) {
	eng := &fakeEngine{}
	layer := &BrowserLayer{Engine: eng, ActionModifier: ModControl}
	layer.HandleInput(Event{Kind: KeyDown, Key: KeyEvent{WindowsVK: 'Q'}})
	if eng.keysSent != 1 {
		t.Fatalf("keysSent = %d, want 1", eng.keysSent)
	}
}

type fakeMenuSink struct {
	selected int
	canceled bool
}

func (f *fakeMenuSink) SelectMenuItem(id int) { f.selected = id }
func (f *fakeMenuSink) CancelMenu()           { f.canceled = true }

// TestMenuIgnoreNextUp checks that the release of the opening right-click
// does not instantly select the item under the cursor (spec section 4.D).
func TestMenuIgnoreNextUp(t *testing.T) {
	sink := &fakeMenuSink{}
	open := true
	menu := &MenuLayer{
		Sink:          sink,
		IsOpen:        func() bool { return open },
		HitTest:       func(x, y int) (int, bool) { return 0, true },
		SetHover:      func(int) {},
		SelectHovered: func() (int, bool) { return 1, true },
		IgnoreNextUp:  true,
	}

	menu.HandleInput(Event{Kind: PointerUp})
	if sink.selected != 0 || sink.canceled {
		t.Fatal("first pointer-up after open should be ignored")
	}
	if menu.IgnoreNextUp {
		t.Fatal("IgnoreNextUp should clear after the first pointer-up")
	}

	menu.HandleInput(Event{Kind: PointerUp})
	if sink.selected != 1 {
		t.Fatalf("second pointer-up should select item, selected=%d", sink.selected)
	}
}

func TestMenuEscClosesWithoutExit(t *testing.T) {
	sink := &fakeMenuSink{}
	open := true
	menu := &MenuLayer{
		Sink:   sink,
		IsOpen: func() bool { return open },
	}
	consumed := menu.HandleInput(Event{Kind: KeyDown, Key: KeyEvent{WindowsVK: vkEscape}})
	if !consumed {
		t.Fatal("ESC should be consumed by the menu layer")
	}
	if !sink.canceled {
		t.Fatal("ESC should cancel the menu")
	}
}

func TestMenuClosedLayerDoesNotConsume(t *testing.T) {
	sink := &fakeMenuSink{}
	open := false
	menu := &MenuLayer{Sink: sink, IsOpen: func() bool { return open }}
	if menu.HandleInput(Event{Kind: KeyDown}) {
		t.Fatal("closed menu layer should not consume input")
	}
}
