// SPDX-FileCopyrightText : © 2024 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

//go:build darwin || windows || linux

// This file (and translate_darwin.go/translate_windows.go/
// translate_linux.go) hold the shared device.Pressed-diffing logic each
// platform's TranslatePressed calls into with its own key table.

package platform

import (
	"github.com/jellyfin/jellyfin-desktop-go/device"
	"github.com/jellyfin/jellyfin-desktop-go/inputstack"
)

// keyRune maps a device-native key code to the rune inputstack.TranslateKey
// expects: either a plain printable ASCII rune or one of its pseudo-keysym
// constants. Built once per OS from the native codes device's os_*.go files
// export.
type keyRune map[int]rune

// modifierCodes are the device.Pressed.Down entries that carry modifier
// state rather than naming a key or mouse button in their own right; they
// fold into Modifiers instead of producing a KeyDown/KeyUp event, matching
// how original_source/src/main.cpp reads its own modifier mask.
func modifiers(down map[int]int) inputstack.Modifiers {
	var m inputstack.Modifiers
	if _, ok := down[device.ShiftKey]; ok {
		m |= inputstack.ModShift
	}
	if _, ok := down[device.ControlKey]; ok {
		m |= inputstack.ModControl
	}
	if _, ok := down[device.AltKey]; ok {
		m |= inputstack.ModAlt
	}
	if _, ok := down[device.CommandKey]; ok {
		m |= inputstack.ModCommand
	}
	return m
}

func isModifierCode(code int) bool {
	switch code {
	case device.ShiftKey, device.ControlKey, device.FunctionKey, device.CommandKey, device.AltKey:
		return true
	}
	return false
}

func mouseButton(code int) (inputstack.Button, bool) {
	switch code {
	case device.MouseLeft:
		return inputstack.ButtonLeft, true
	case device.MouseRight:
		return inputstack.ButtonRight, true
	case device.MouseMiddle:
		return inputstack.ButtonMiddle, true
	}
	return 0, false
}

// translatePressed diffs two consecutive device.Pressed polls into the
// ordered input events inputstack.Stack.Route consumes, per
// frameloop.PressedTranslator's contract. windowH flips the device
// package's bottom-left mouse origin to the top-left origin the web engine
// and overlay hit-testing expect.
func translatePressed(keys keyRune, prev, cur *device.Pressed, windowW, windowH int) []inputstack.Event {
	var events []inputstack.Event
	mods := modifiers(cur.Down)
	y := windowH - cur.My

	if cur.Mx != prev.Mx || cur.My != prev.My {
		events = append(events, inputstack.Event{Kind: inputstack.PointerMove, X: cur.Mx, Y: y})
	}
	if cur.Scroll != prev.Scroll {
		events = append(events, inputstack.Event{Kind: inputstack.PointerScroll, X: cur.Mx, Y: y, Scroll: cur.Scroll - prev.Scroll})
	}

	for code, dur := range cur.Down {
		if dur < 0 {
			events = append(events, keyOrButtonEvent(keys, code, mods, false, cur.Mx, y)...)
			continue
		}
		if _, wasDown := prev.Down[code]; !wasDown {
			events = append(events, keyOrButtonEvent(keys, code, mods, true, cur.Mx, y)...)
		}
	}
	return events
}

func keyOrButtonEvent(keys keyRune, code int, mods inputstack.Modifiers, down bool, x, y int) []inputstack.Event {
	if isModifierCode(code) {
		return nil
	}
	if button, ok := mouseButton(code); ok {
		kind := inputstack.PointerUp
		if down {
			kind = inputstack.PointerDown
		}
		return []inputstack.Event{{Kind: kind, X: x, Y: y, Button: button}}
	}

	r, ok := keys[code]
	if !ok {
		return nil
	}
	windowsVK, ok := inputstack.TranslateKey(r)
	if !ok {
		return nil
	}
	kind := inputstack.KeyUp
	if down {
		kind = inputstack.KeyDown
	}
	return []inputstack.Event{{
		Kind: kind,
		Key: inputstack.KeyEvent{
			WindowsVK: windowsVK,
			NativeKey: code,
			Modifiers: mods,
		},
	}}
}
