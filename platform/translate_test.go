// SPDX-FileCopyrightText : © 2024 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

//go:build darwin || windows || linux

package platform

import (
	"testing"

	"github.com/jellyfin/jellyfin-desktop-go/device"
	"github.com/jellyfin/jellyfin-desktop-go/inputstack"
)

var testKeys = keyRune{device.KeyA: 'a'}

func pressed(mx, my, scroll int, down map[int]int) *device.Pressed {
	return &device.Pressed{Mx: mx, My: my, Scroll: scroll, Down: down, Focus: true}
}

func TestTranslatePressedEmitsPointerMoveInTopLeftOrigin(t *testing.T) {
	prev := pressed(10, 10, 0, map[int]int{})
	cur := pressed(20, 30, 0, map[int]int{})

	events := translatePressed(testKeys, prev, cur, 800, 600)
	if len(events) != 1 {
		t.Fatalf("got %d events, want 1", len(events))
	}
	ev := events[0]
	if ev.Kind != inputstack.PointerMove {
		t.Fatalf("kind = %v, want PointerMove", ev.Kind)
	}
	if ev.X != 20 || ev.Y != 600-30 {
		t.Fatalf("got (%d,%d), want (20,%d)", ev.X, ev.Y, 600-30)
	}
}

func TestTranslatePressedEmitsScrollDelta(t *testing.T) {
	prev := pressed(0, 0, 5, map[int]int{})
	cur := pressed(0, 0, 8, map[int]int{})

	events := translatePressed(testKeys, prev, cur, 800, 600)
	if len(events) != 1 || events[0].Kind != inputstack.PointerScroll || events[0].Scroll != 3 {
		t.Fatalf("got %+v, want a single PointerScroll event with Scroll=3", events)
	}
}

func TestTranslatePressedKeyDownOnFreshCode(t *testing.T) {
	prev := pressed(0, 0, 0, map[int]int{})
	cur := pressed(0, 0, 0, map[int]int{device.KeyA: 0})

	events := translatePressed(testKeys, prev, cur, 800, 600)
	if len(events) != 1 {
		t.Fatalf("got %d events, want 1", len(events))
	}
	if events[0].Kind != inputstack.KeyDown {
		t.Fatalf("kind = %v, want KeyDown", events[0].Kind)
	}
	if events[0].Key.NativeKey != device.KeyA {
		t.Fatalf("NativeKey = %d, want %d", events[0].Key.NativeKey, device.KeyA)
	}
}

func TestTranslatePressedSkipsHeldKey(t *testing.T) {
	prev := pressed(0, 0, 0, map[int]int{device.KeyA: 3})
	cur := pressed(0, 0, 0, map[int]int{device.KeyA: 4})

	events := translatePressed(testKeys, prev, cur, 800, 600)
	if len(events) != 0 {
		t.Fatalf("got %d events for a held key, want 0", len(events))
	}
}

func TestTranslatePressedKeyUpOnRelease(t *testing.T) {
	prev := pressed(0, 0, 0, map[int]int{device.KeyA: 3})
	cur := pressed(0, 0, 0, map[int]int{device.KeyA: device.KEY_RELEASED + 4})

	events := translatePressed(testKeys, prev, cur, 800, 600)
	if len(events) != 1 || events[0].Kind != inputstack.KeyUp {
		t.Fatalf("got %+v, want a single KeyUp event", events)
	}
}

func TestTranslatePressedMouseButtonEvents(t *testing.T) {
	prev := pressed(0, 0, 0, map[int]int{})
	cur := pressed(0, 0, 0, map[int]int{device.MouseLeft: 0})

	events := translatePressed(testKeys, prev, cur, 800, 600)
	if len(events) != 1 || events[0].Kind != inputstack.PointerDown || events[0].Button != inputstack.ButtonLeft {
		t.Fatalf("got %+v, want a single PointerDown/ButtonLeft event", events)
	}
}

func TestTranslatePressedModifierCodeProducesNoKeyEventButSetsMask(t *testing.T) {
	prev := pressed(0, 0, 0, map[int]int{})
	cur := pressed(0, 0, 0, map[int]int{device.ShiftKey: 0, device.KeyA: 0})

	events := translatePressed(testKeys, prev, cur, 800, 600)
	if len(events) != 1 {
		t.Fatalf("got %d events, want exactly 1 (modifier code alone shouldn't produce a key event)", len(events))
	}
	if events[0].Key.Modifiers&inputstack.ModShift == 0 {
		t.Fatalf("KeyA event should carry ModShift, got %v", events[0].Key.Modifiers)
	}
}

func TestTranslatePressedUnmappedCodeIsIgnored(t *testing.T) {
	prev := pressed(0, 0, 0, map[int]int{})
	cur := pressed(0, 0, 0, map[int]int{9999: 0})

	events := translatePressed(testKeys, prev, cur, 800, 600)
	if len(events) != 0 {
		t.Fatalf("got %d events for an unmapped code, want 0", len(events))
	}
}
