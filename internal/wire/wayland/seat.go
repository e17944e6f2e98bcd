// SPDX-FileCopyrightText : © 2024 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

//go:build linux

package wayland

// wl_seat, wl_pointer and wl_keyboard: the input half of a Wayland
// client, following the same bind-then-dispatch shape surface.go and
// subsurface.go already establish for the display half. Callback fields
// are set by the caller (device's Linux backend) rather than this
// package owning any input-state bookkeeping of its own, matching how
// XdgToplevel reports configure/close above.

// wl_seat request opcodes.
const (
	seatGetPointer  Opcode = 0
	seatGetKeyboard Opcode = 1
)

// wl_seat event opcodes.
const seatEventCapabilities Opcode = 0

// Seat capability bits, from the wl_seat.capability enum.
const (
	SeatCapabilityPointer  uint32 = 1
	SeatCapabilityKeyboard uint32 = 2
)

// Seat is the bound wl_seat global.
type Seat struct {
	display *Display
	id      ObjectID

	// OnCapabilities reports the seat's capability bitmask whenever it
	// changes (including once, right after binding).
	OnCapabilities func(capabilities uint32)
}

func (s *Seat) dispatch(msg *Message) error {
	if msg.Opcode != seatEventCapabilities {
		return nil
	}
	dec := NewDecoder(msg.Args)
	caps, err := dec.Uint32()
	if err != nil {
		return err
	}
	if s.OnCapabilities != nil {
		s.OnCapabilities(caps)
	}
	return nil
}

// GetPointer requests the seat's pointer device.
func (s *Seat) GetPointer() (*Pointer, error) {
	id := s.display.AllocID()
	b := NewMessageBuilder()
	b.PutNewID(id)
	if err := s.display.SendMessage(b.BuildMessage(s.id, seatGetPointer)); err != nil {
		return nil, err
	}
	p := &Pointer{display: s.display, id: id}
	s.display.register(id, p)
	return p, nil
}

// GetKeyboard requests the seat's keyboard device.
func (s *Seat) GetKeyboard() (*Keyboard, error) {
	id := s.display.AllocID()
	b := NewMessageBuilder()
	b.PutNewID(id)
	if err := s.display.SendMessage(b.BuildMessage(s.id, seatGetKeyboard)); err != nil {
		return nil, err
	}
	k := &Keyboard{display: s.display, id: id}
	s.display.register(id, k)
	return k, nil
}

// BindSeat binds wl_seat.
func (r *Registry) BindSeat(version uint32) (*Seat, error) {
	id, err := r.bind("wl_seat", version)
	if err != nil {
		return nil, err
	}
	seat := &Seat{display: r.display, id: id}
	r.display.register(id, seat)
	return seat, nil
}

// wl_pointer request opcodes.
const pointerSetCursor Opcode = 0

// wl_pointer event opcodes.
const (
	pointerEventEnter  Opcode = 0
	pointerEventLeave  Opcode = 1
	pointerEventMotion Opcode = 2
	pointerEventButton Opcode = 3
	pointerEventAxis   Opcode = 4
)

// wl_pointer.button_state values.
const (
	PointerButtonReleased uint32 = 0
	PointerButtonPressed  uint32 = 1
)

// wl_pointer.axis values (only the vertical-scroll axis is used here).
const AxisVerticalScroll uint32 = 0

// Pointer is the bound wl_pointer device.
type Pointer struct {
	display *Display
	id      ObjectID

	// OnMotion reports the surface-local pointer position in
	// surface-local fixed-point coordinates, already converted to int.
	OnMotion func(x, y int)
	// OnButton reports a BTN_* evdev button code and whether it is now
	// pressed or released.
	OnButton func(button uint32, pressed bool)
	// OnAxis reports scroll amount on the given axis, as a fixed-point
	// value converted to int (positive: down/right).
	OnAxis func(axis uint32, value int)
}

func (p *Pointer) dispatch(msg *Message) error {
	dec := NewDecoder(msg.Args)
	switch msg.Opcode {
	case pointerEventMotion:
		if _, err := dec.Uint32(); err != nil { // time
			return err
		}
		x, err := dec.Int32()
		if err != nil {
			return err
		}
		y, err := dec.Int32()
		if err != nil {
			return err
		}
		if p.OnMotion != nil {
			p.OnMotion(int(x/256), int(y/256))
		}
	case pointerEventButton:
		if _, err := dec.Uint32(); err != nil { // serial
			return err
		}
		if _, err := dec.Uint32(); err != nil { // time
			return err
		}
		button, err := dec.Uint32()
		if err != nil {
			return err
		}
		state, err := dec.Uint32()
		if err != nil {
			return err
		}
		if p.OnButton != nil {
			p.OnButton(button, state == PointerButtonPressed)
		}
	case pointerEventAxis:
		if _, err := dec.Uint32(); err != nil { // time
			return err
		}
		axis, err := dec.Uint32()
		if err != nil {
			return err
		}
		value, err := dec.Int32()
		if err != nil {
			return err
		}
		if p.OnAxis != nil {
			p.OnAxis(axis, int(value/256))
		}
	}
	return nil
}

// SetCursor sets (or, with a nil surface, hides) the cursor shown while
// the pointer is over this client's surface.
func (p *Pointer) SetCursor(serial uint32, surface *Surface, hotspotX, hotspotY int32) error {
	var surfaceID ObjectID
	if surface != nil {
		surfaceID = surface.id
	}
	b := NewMessageBuilder()
	b.PutUint32(serial)
	b.PutObject(surfaceID)
	b.PutInt32(hotspotX)
	b.PutInt32(hotspotY)
	return p.display.SendMessage(b.BuildMessage(p.id, pointerSetCursor))
}

// wl_keyboard event opcodes.
const (
	keyboardEventKeymap    Opcode = 0
	keyboardEventKey       Opcode = 3
	keyboardEventModifiers Opcode = 4
)

// wl_keyboard.key_state values.
const (
	KeyReleased uint32 = 0
	KeyPressed  uint32 = 1
)

// Keyboard is the bound wl_keyboard device.
type Keyboard struct {
	display *Display
	id      ObjectID

	// OnKey reports a raw Linux evdev keycode (device.Key* constants are
	// these same codes) and whether it is now pressed or released.
	OnKey func(key uint32, pressed bool)
	// OnModifiers reports the depressed/latched/locked modifier masks
	// straight off the wire; device's Linux backend folds mods_depressed
	// into its own modifier pseudo-codes.
	OnModifiers func(depressed, latched, locked, group uint32)
}

func (k *Keyboard) dispatch(msg *Message) error {
	dec := NewDecoder(msg.Args)
	switch msg.Opcode {
	case keyboardEventKeymap:
		// Carries format/size inline plus a keymap fd as SCM_RIGHTS
		// ancillary data, which this package's plain net.Conn transport
		// doesn't receive; harmless since this client only tracks raw
		// evdev keycodes and never needs the XKB keymap itself.
	case keyboardEventKey:
		if _, err := dec.Uint32(); err != nil { // serial
			return err
		}
		if _, err := dec.Uint32(); err != nil { // time
			return err
		}
		key, err := dec.Uint32()
		if err != nil {
			return err
		}
		state, err := dec.Uint32()
		if err != nil {
			return err
		}
		if k.OnKey != nil {
			k.OnKey(key, state == KeyPressed)
		}
	case keyboardEventModifiers:
		if _, err := dec.Uint32(); err != nil { // serial
			return err
		}
		depressed, err := dec.Uint32()
		if err != nil {
			return err
		}
		latched, err := dec.Uint32()
		if err != nil {
			return err
		}
		locked, err := dec.Uint32()
		if err != nil {
			return err
		}
		group, err := dec.Uint32()
		if err != nil {
			return err
		}
		if k.OnModifiers != nil {
			k.OnModifiers(depressed, latched, locked, group)
		}
	}
	return nil
}
