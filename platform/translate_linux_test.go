// SPDX-FileCopyrightText : © 2024 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

//go:build linux

package platform

import (
	"testing"

	"github.com/jellyfin/jellyfin-desktop-go/device"
	"github.com/jellyfin/jellyfin-desktop-go/inputstack"
)

func TestTranslatePressedLinuxKeyDown(t *testing.T) {
	prev := pressed(0, 0, 0, map[int]int{})
	cur := pressed(0, 0, 0, map[int]int{device.KeyA: 0})

	events := TranslatePressed(prev, cur, 800, 600)
	if len(events) != 1 || events[0].Kind != inputstack.KeyDown {
		t.Fatalf("got %+v, want a single KeyDown event", events)
	}
	if events[0].Key.NativeKey != device.KeyA {
		t.Fatalf("NativeKey = %d, want %d", events[0].Key.NativeKey, device.KeyA)
	}
}

func TestTranslatePressedLinuxMouseButton(t *testing.T) {
	prev := pressed(0, 0, 0, map[int]int{})
	cur := pressed(0, 0, 0, map[int]int{device.MouseLeft: 0})

	events := TranslatePressed(prev, cur, 800, 600)
	if len(events) != 1 || events[0].Kind != inputstack.PointerDown || events[0].Button != inputstack.ButtonLeft {
		t.Fatalf("got %+v, want a single PointerDown/ButtonLeft event", events)
	}
}
