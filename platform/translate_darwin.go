// SPDX-FileCopyrightText : © 2024 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

//go:build darwin

package platform

import (
	"github.com/jellyfin/jellyfin-desktop-go/device"
	"github.com/jellyfin/jellyfin-desktop-go/inputstack"
)

// darwinKeys maps device's macOS virtual-key codes onto the runes
// inputstack.TranslateKey expects: letters and digits pass through as
// their own ASCII rune, navigation/editing/function keys go through the
// pseudo-keysym constants package inputstack exports for exactly this.
var darwinKeys = keyRune{
	device.KeyA: 'a', device.KeyB: 'b', device.KeyC: 'c', device.KeyD: 'd',
	device.KeyE: 'e', device.KeyF: 'f', device.KeyG: 'g', device.KeyH: 'h',
	device.KeyI: 'i', device.KeyJ: 'j', device.KeyK: 'k', device.KeyL: 'l',
	device.KeyM: 'm', device.KeyN: 'n', device.KeyO: 'o', device.KeyP: 'p',
	device.KeyQ: 'q', device.KeyR: 'r', device.KeyS: 's', device.KeyT: 't',
	device.KeyU: 'u', device.KeyV: 'v', device.KeyW: 'w', device.KeyX: 'x',
	device.KeyY: 'y', device.KeyZ: 'z',

	device.Key0: '0', device.Key1: '1', device.Key2: '2', device.Key3: '3',
	device.Key4: '4', device.Key5: '5', device.Key6: '6', device.Key7: '7',
	device.Key8: '8', device.Key9: '9',

	device.KeyComma: ',', device.KeyMinus: '-', device.KeyPeriod: '.',
	device.KeySlash: '/', device.KeySemicolon: ';', device.KeyEqual: '=',
	device.KeyLeftBracket: '[', device.KeyBackslash: '\\', device.KeyRightBracket: ']',
	device.KeyGrave: '`', device.KeyQuote: '\'',

	device.KeyLeftArrow: inputstack.KeyLeft, device.KeyRightArrow: inputstack.KeyRight,
	device.KeyUpArrow: inputstack.KeyUpArrow, device.KeyDownArrow: inputstack.KeyDownArrow,
	device.KeyHome: inputstack.KeyHome, device.KeyEnd: inputstack.KeyEnd,
	device.KeyPageUp: inputstack.KeyPageUp, device.KeyPageDown: inputstack.KeyPageDown,
	device.KeyDelete: inputstack.KeyBackspace, device.KeyForwardDelete: inputstack.KeyDelete,
	device.KeyTab: inputstack.KeyTab, device.KeyReturn: inputstack.KeyReturn,
	device.KeyEscape: inputstack.KeyEscape, device.KeySpace: inputstack.KeySpace,

	device.KeyF1: inputstack.KeyF1, device.KeyF2: inputstack.KeyF2, device.KeyF3: inputstack.KeyF3,
	device.KeyF4: inputstack.KeyF4, device.KeyF5: inputstack.KeyF5, device.KeyF6: inputstack.KeyF6,
	device.KeyF7: inputstack.KeyF7, device.KeyF8: inputstack.KeyF8, device.KeyF9: inputstack.KeyF9,
	device.KeyF10: inputstack.KeyF10, device.KeyF11: inputstack.KeyF11, device.KeyF12: inputstack.KeyF12,
}

// TranslatePressed implements frameloop.PressedTranslator for macOS.
func TranslatePressed(prev, cur *device.Pressed, windowW, windowH int) []inputstack.Event {
	return translatePressed(darwinKeys, prev, cur, windowW, windowH)
}
