// SPDX-FileCopyrightText : © 2024 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

//go:build linux

package wayland

// xdg_wm_base, xdg_surface and xdg_toplevel: the stable xdg-shell
// protocol's toplevel-window path, the missing piece that turns a bare
// wl_surface (surface.go) into an actual application window with a
// title, a close button and resize/configure negotiation. Opcodes below
// are the stable xdg-shell.xml values, not per-pack inventions.

// xdg_wm_base request/event opcodes.
const (
	wmBaseDestroy           Opcode = 0
	wmBaseGetXdgSurface     Opcode = 2
	wmBasePong              Opcode = 3
	wmBaseEventPing         Opcode = 0
)

// WmBase is the bound xdg_wm_base global: the factory for xdg_surface
// objects and the target of the compositor's liveness ping.
type WmBase struct {
	display *Display
	id      ObjectID
}

func (w *WmBase) dispatch(msg *Message) error {
	if msg.Opcode != wmBaseEventPing {
		return nil
	}
	dec := NewDecoder(msg.Args)
	serial, err := dec.Uint32()
	if err != nil {
		return err
	}
	b := NewMessageBuilder()
	b.PutUint32(serial)
	return w.display.SendMessage(b.BuildMessage(w.id, wmBasePong))
}

// GetXdgSurface wraps surface as an xdg_surface, the common base both
// toplevel windows and popups build on.
func (w *WmBase) GetXdgSurface(surface *Surface) (*XdgSurface, error) {
	id := w.display.AllocID()
	b := NewMessageBuilder()
	b.PutNewID(id)
	b.PutObject(surface.id)
	if err := w.display.SendMessage(b.BuildMessage(w.id, wmBaseGetXdgSurface)); err != nil {
		return nil, err
	}
	xs := &XdgSurface{display: w.display, id: id}
	w.display.register(id, xs)
	return xs, nil
}

// xdg_surface request/event opcodes.
const (
	xdgSurfaceGetToplevel   Opcode = 1
	xdgSurfaceAckConfigure  Opcode = 4
	xdgSurfaceEventConfigure Opcode = 0
)

// XdgSurface is the window-geometry/configure-acknowledgement half of an
// xdg-shell window; XdgToplevel is layered on top of it.
type XdgSurface struct {
	display *Display
	id      ObjectID

	// OnConfigure, when set, is called for every configure event with
	// the serial the caller must acknowledge via AckConfigure.
	OnConfigure func(serial uint32)
}

func (s *XdgSurface) dispatch(msg *Message) error {
	if msg.Opcode != xdgSurfaceEventConfigure {
		return nil
	}
	dec := NewDecoder(msg.Args)
	serial, err := dec.Uint32()
	if err != nil {
		return err
	}
	if s.OnConfigure != nil {
		s.OnConfigure(serial)
	}
	return nil
}

// AckConfigure acknowledges a configure event, required before the next
// commit is allowed to take effect.
func (s *XdgSurface) AckConfigure(serial uint32) error {
	b := NewMessageBuilder()
	b.PutUint32(serial)
	return s.display.SendMessage(b.BuildMessage(s.id, xdgSurfaceAckConfigure))
}

// GetToplevel turns this xdg_surface into a regular, top-level window.
func (s *XdgSurface) GetToplevel() (*XdgToplevel, error) {
	id := s.display.AllocID()
	b := NewMessageBuilder()
	b.PutNewID(id)
	if err := s.display.SendMessage(b.BuildMessage(s.id, xdgSurfaceGetToplevel)); err != nil {
		return nil, err
	}
	t := &XdgToplevel{display: s.display, id: id}
	s.display.register(id, t)
	return t, nil
}

// xdg_toplevel request opcodes.
const (
	xdgToplevelSetTitle       Opcode = 2
	xdgToplevelSetFullscreen  Opcode = 11
	xdgToplevelUnsetFullscreen Opcode = 12
)

// xdg_toplevel event opcodes.
const (
	xdgToplevelEventConfigure Opcode = 0
	xdgToplevelEventClose     Opcode = 1
)

// XdgToplevel is the actual top-level window: title, fullscreen state,
// and the configure/close event pair that drives resize negotiation and
// window-manager-initiated close (the window's "X" button, or the
// compositor asking the client to quit).
type XdgToplevel struct {
	display *Display
	id      ObjectID

	// OnConfigure reports the compositor-suggested size; width/height
	// of 0 means "you choose". OnClose fires once, when the compositor
	// wants this window closed.
	OnConfigure func(width, height int32)
	OnClose     func()
}

func (t *XdgToplevel) dispatch(msg *Message) error {
	switch msg.Opcode {
	case xdgToplevelEventConfigure:
		dec := NewDecoder(msg.Args)
		w, err := dec.Int32()
		if err != nil {
			return err
		}
		h, err := dec.Int32()
		if err != nil {
			return err
		}
		if t.OnConfigure != nil {
			t.OnConfigure(w, h)
		}
	case xdgToplevelEventClose:
		if t.OnClose != nil {
			t.OnClose()
		}
	}
	return nil
}

// SetTitle sets the window's title, shown in title bars/task switchers.
func (t *XdgToplevel) SetTitle(title string) error {
	b := NewMessageBuilder()
	b.PutString(title)
	return t.display.SendMessage(b.BuildMessage(t.id, xdgToplevelSetTitle))
}

// SetFullscreen requests fullscreen on the output the compositor picks.
func (t *XdgToplevel) SetFullscreen() error {
	b := NewMessageBuilder()
	b.PutObject(0)
	return t.display.SendMessage(b.BuildMessage(t.id, xdgToplevelSetFullscreen))
}

// UnsetFullscreen leaves fullscreen mode.
func (t *XdgToplevel) UnsetFullscreen() error {
	b := NewMessageBuilder()
	return t.display.SendMessage(b.BuildMessage(t.id, xdgToplevelUnsetFullscreen))
}

// Destroy releases the toplevel object. Callers are expected to also
// destroy the underlying xdg_surface and wl_surface.
func (t *XdgToplevel) Destroy() error {
	b := NewMessageBuilder()
	err := t.display.SendMessage(b.BuildMessage(t.id, 0))
	t.display.unregister(t.id)
	return err
}

// BindWmBase binds xdg_wm_base.
func (r *Registry) BindWmBase(version uint32) (*WmBase, error) {
	id, err := r.bind("xdg_wm_base", version)
	if err != nil {
		return nil, err
	}
	w := &WmBase{display: r.display, id: id}
	r.display.register(id, w)
	return w, nil
}
