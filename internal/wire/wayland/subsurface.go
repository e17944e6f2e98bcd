// SPDX-FileCopyrightText : © 2024 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

//go:build linux

package wayland

// wl_subcompositor request opcodes.
const subcompositorGetSubsurface Opcode = 1

// Subcompositor is the bound wl_subcompositor global, used to turn a
// plain wl_surface into a subsurface of a parent window.
type Subcompositor struct {
	display *Display
	id      ObjectID
}

// GetSubsurface makes surface a subsurface of parent.
func (sc *Subcompositor) GetSubsurface(surface, parent *Surface) (*Subsurface, error) {
	id := sc.display.AllocID()
	b := NewMessageBuilder()
	b.PutNewID(id)
	b.PutObject(surface.id)
	b.PutObject(parent.id)
	if err := sc.display.SendMessage(b.BuildMessage(sc.id, subcompositorGetSubsurface)); err != nil {
		return nil, err
	}
	return &Subsurface{display: sc.display, id: id}, nil
}

// wl_subsurface request opcodes.
const (
	subsurfaceSetPosition Opcode = 1
	subsurfacePlaceAbove  Opcode = 2
	subsurfacePlaceBelow  Opcode = 3
	subsurfaceSetSync     Opcode = 4
	subsurfaceSetDesync   Opcode = 5
)

// Subsurface is a wl_subsurface: spec 4.B's Wayland video surface is one
// of these, positioned at (0,0), placed below the parent, desynced.
type Subsurface struct {
	display *Display
	id      ObjectID
}

// SetPosition positions the subsurface relative to its parent's origin.
func (s *Subsurface) SetPosition(x, y int32) error {
	b := NewMessageBuilder()
	b.PutInt32(x)
	b.PutInt32(y)
	return s.display.SendMessage(b.BuildMessage(s.id, subsurfaceSetPosition))
}

// PlaceBelow stacks this subsurface below sibling in paint order.
func (s *Subsurface) PlaceBelow(sibling *Surface) error {
	b := NewMessageBuilder()
	b.PutObject(sibling.id)
	return s.display.SendMessage(b.BuildMessage(s.id, subsurfacePlaceBelow))
}

// SetDesync decouples the subsurface's commit timing from its parent's,
// so the video engine can present at its own cadence (spec 4.B).
func (s *Subsurface) SetDesync() error {
	b := NewMessageBuilder()
	return s.display.SendMessage(b.BuildMessage(s.id, subsurfaceSetDesync))
}
