// SPDX-FileCopyrightText : © 2024 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

//go:build linux

package wayland

// Named primaries and transfer functions, as understood by the
// color-management manager's request arguments. Only the values spec
// 4.B's HDR path needs are defined.
const (
	PrimariesBT2020      uint32 = 1
	TransferFunctionST2084 uint32 = 1
)

// Luminance describes a display's min/max/reference luminance in cd/m^2,
// encoded as fixed-point (24.8) wire arguments.
type Luminance struct {
	MinCdm2  float64
	MaxCdm2  float64
	RefCdm2  float64
}

// Mastering describes the content's mastering display luminance range,
// used to populate the mastering_display_primaries metadata.
type Mastering struct {
	MinCdm2 float64
	MaxCdm2 float64
}

// ColorManager is the bound color-management global (wp_color_manager_v1
// or an equivalent). It creates color-management surface extensions that
// describe a surface's output color space to the compositor.
type ColorManager struct {
	display *Display
	id      ObjectID
}

// color-management manager request opcodes.
const colorManagerGetSurface Opcode = 0

// GetColorSurface creates the color-management extension object for a
// wl_surface.
func (cm *ColorManager) GetColorSurface(surface *Surface) (*ColorSurface, error) {
	id := cm.display.AllocID()
	b := NewMessageBuilder()
	b.PutNewID(id)
	b.PutObject(surface.id)
	if err := cm.display.SendMessage(b.BuildMessage(cm.id, colorManagerGetSurface)); err != nil {
		return nil, err
	}
	return &ColorSurface{display: cm.display, id: id}, nil
}

// color-management surface request opcodes.
const (
	colorSurfaceSetPrimaries        Opcode = 0
	colorSurfaceSetTransferFunction Opcode = 1
	colorSurfaceSetLuminances       Opcode = 2
	colorSurfaceSetMastering        Opcode = 3
)

// ColorSurface carries the HDR description spec 4.B requires for the
// video subsurface: BT.2020 primaries, ST2084 (PQ) transfer function,
// display luminance {0.0001, 1000, 203} cd/m^2, and mastering
// {1, 1000} cd/m^2.
type ColorSurface struct {
	display *Display
	id      ObjectID
}

// SetPrimaries sets the color primaries (PrimariesBT2020 for HDR10/PQ
// content).
func (s *ColorSurface) SetPrimaries(primaries uint32) error {
	b := NewMessageBuilder()
	b.PutUint32(primaries)
	return s.display.SendMessage(b.BuildMessage(s.id, colorSurfaceSetPrimaries))
}

// SetTransferFunction sets the electro-optical transfer function
// (TransferFunctionST2084 for PQ content).
func (s *ColorSurface) SetTransferFunction(tf uint32) error {
	b := NewMessageBuilder()
	b.PutUint32(tf)
	return s.display.SendMessage(b.BuildMessage(s.id, colorSurfaceSetTransferFunction))
}

// SetLuminances declares the display's luminance range and reference
// white level.
func (s *ColorSurface) SetLuminances(l Luminance) error {
	b := NewMessageBuilder()
	b.PutFixed(l.MinCdm2)
	b.PutFixed(l.MaxCdm2)
	b.PutFixed(l.RefCdm2)
	return s.display.SendMessage(b.BuildMessage(s.id, colorSurfaceSetLuminances))
}

// SetMastering declares the content's mastering display luminance range.
func (s *ColorSurface) SetMastering(m Mastering) error {
	b := NewMessageBuilder()
	b.PutFixed(m.MinCdm2)
	b.PutFixed(m.MaxCdm2)
	return s.display.SendMessage(b.BuildMessage(s.id, colorSurfaceSetMastering))
}
