// SPDX-FileCopyrightText : © 2024 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

package device

// Linux evdev keycodes (linux/input-event-codes.h), delivered verbatim
// as wl_keyboard.key's "key" argument: os_linux.go needs no per-key
// translation table of its own, unlike darwin/windows' synthetic
// virtual-keycode schemes in os_darwin.go/os_windows.go.
const (
	KeyEscape = 1
	Key1      = 2
	Key2      = 3
	Key3      = 4
	Key4      = 5
	Key5      = 6
	Key6      = 7
	Key7      = 8
	Key8      = 9
	Key9      = 10
	Key0      = 11
	KeyMinus  = 12
	KeyEqual  = 13
	KeyDelete = 14 // KEY_BACKSPACE; matches darwin/windows' KeyDelete == backspace.
	KeyTab    = 15

	KeyQ = 16
	KeyW = 17
	KeyE = 18
	KeyR = 19
	KeyT = 20
	KeyY = 21
	KeyU = 22
	KeyI = 23
	KeyO = 24
	KeyP = 25

	KeyLeftBracket  = 26
	KeyRightBracket = 27
	KeyReturn       = 28

	KeyA = 30
	KeyS = 31
	KeyD = 32
	KeyF = 33
	KeyG = 34
	KeyH = 35
	KeyJ = 36
	KeyK = 37
	KeyL = 38

	KeySemicolon = 39
	KeyQuote     = 40
	KeyGrave     = 41
	KeyBackslash = 43

	KeyZ = 44
	KeyX = 45
	KeyC = 46
	KeyV = 47
	KeyB = 48
	KeyN = 49
	KeyM = 50

	KeyComma = 51
	KeyPeriod = 52
	KeySlash  = 53
	KeySpace  = 57

	KeyF1  = 59
	KeyF2  = 60
	KeyF3  = 61
	KeyF4  = 62
	KeyF5  = 63
	KeyF6  = 64
	KeyF7  = 65
	KeyF8  = 66
	KeyF9  = 67
	KeyF10 = 68
	KeyF11 = 87
	KeyF12 = 88

	KeyHome       = 102
	KeyUpArrow    = 103
	KeyPageUp     = 104
	KeyLeftArrow  = 105
	KeyRightArrow = 106
	KeyEnd        = 107
	KeyDownArrow  = 108
	KeyPageDown   = 109
)

// Mouse buttons: the real BTN_* evdev codes wl_pointer.button reports
// directly, unlike darwin/windows' synthetic MouseLeft/Right/Middle
// tack-on values.
const (
	MouseLeft   = 0x110 // BTN_LEFT
	MouseRight  = 0x111 // BTN_RIGHT
	MouseMiddle = 0x112 // BTN_MIDDLE
)

// Modifier pseudo-key-codes, following the same scheme darwin/windows
// use: fold modifier state into Pressed.Down under codes no real key or
// mouse button can collide with (evdev keycodes stay well under 0x1000).
const (
	ShiftKey    = 0x1000
	ControlKey  = 0x1001
	AltKey      = 0x1002
	FunctionKey = 0x1003 // no Linux keyboard reports an Fn modifier bit; never set.
	CommandKey  = 0x1004 // no Super/Mod4 equivalent is wired; never set.
)

// wl_keyboard.modifiers reports the active XKB keymap's own modifier
// mask, not a fixed OS constant. These bit positions match the "evdev"
// XKB rules set's default keymap (Shift, Lock, Control, Mod1=Alt), which
// is what every mainstream Wayland compositor configures absent a custom
// XKB_DEFAULT_* override.
const (
	xkbModShift   uint32 = 1 << 0
	xkbModControl uint32 = 1 << 2
	xkbModAlt     uint32 = 1 << 3
)
