// SPDX-FileCopyrightText : © 2024 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

//go:build linux

package wayland

// wl_compositor request opcodes.
const compositorCreateSurface Opcode = 0

// Compositor is the bound wl_compositor global.
type Compositor struct {
	display *Display
	id      ObjectID
}

// CreateSurface creates a new wl_surface, the basis for a window or, in
// this package's use, a video subsurface.
func (c *Compositor) CreateSurface() (*Surface, error) {
	id := c.display.AllocID()
	b := NewMessageBuilder()
	b.PutNewID(id)
	if err := c.display.SendMessage(b.BuildMessage(c.id, compositorCreateSurface)); err != nil {
		return nil, err
	}
	s := &Surface{display: c.display, id: id}
	c.display.register(id, s)
	return s, nil
}

// wl_surface request opcodes.
const (
	surfaceDestroy        Opcode = 0
	surfaceAttach         Opcode = 1
	surfaceDamage         Opcode = 2
	surfaceSetBufferScale Opcode = 8
	surfaceCommit         Opcode = 6
)

// Surface is a wl_surface: a rectangular area the compositor displays.
type Surface struct {
	display *Display
	id      ObjectID
}

// ID returns the wire object id. gpucontext's vkwayland backend does not
// use it: a wire object id cannot back a VK_KHR_wayland_surface.
func (s *Surface) ID() ObjectID { return s.id }

// Attach attaches a buffer (0 to unmap) at the given offset.
func (s *Surface) Attach(buffer ObjectID, x, y int32) error {
	b := NewMessageBuilder()
	b.PutObject(buffer)
	b.PutInt32(x)
	b.PutInt32(y)
	return s.display.SendMessage(b.BuildMessage(s.id, surfaceAttach))
}

// Damage marks a surface-coordinate rectangle as changed.
func (s *Surface) Damage(x, y, w, h int32) error {
	b := NewMessageBuilder()
	b.PutInt32(x)
	b.PutInt32(y)
	b.PutInt32(w)
	b.PutInt32(h)
	return s.display.SendMessage(b.BuildMessage(s.id, surfaceDamage))
}

// SetBufferScale sets the HiDPI buffer scale (spec 4.B viewport
// discipline: the surface is sized in physical pixels but positioned via
// a logical destination rectangle).
func (s *Surface) SetBufferScale(scale int32) error {
	b := NewMessageBuilder()
	b.PutInt32(scale)
	return s.display.SendMessage(b.BuildMessage(s.id, surfaceSetBufferScale))
}

// Commit atomically applies pending surface state.
func (s *Surface) Commit() error {
	b := NewMessageBuilder()
	return s.display.SendMessage(b.BuildMessage(s.id, surfaceCommit))
}

// Destroy releases the surface.
func (s *Surface) Destroy() error {
	b := NewMessageBuilder()
	err := s.display.SendMessage(b.BuildMessage(s.id, surfaceDestroy))
	s.display.unregister(s.id)
	return err
}

// dispatch discards wl_surface events (enter/leave); this package's
// surfaces don't need per-output tracking.
func (s *Surface) dispatch(*Message) error { return nil }
