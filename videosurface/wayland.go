// SPDX-FileCopyrightText : © 2024 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

//go:build linux

package videosurface

import (
	"github.com/jellyfin/jellyfin-desktop-go/internal/wire/wayland"
)

var _ Surface = (*WaylandSurface)(nil)

// WaylandSurface is a subsurface of the main window, positioned at
// (0,0), placed below the parent and desynced, per spec section 4.B.
// gpucontext's vkwayland backend does not use its wl_surface id (see ID).
type WaylandSurface struct {
	display      *wayland.Display
	surface      *wayland.Surface
	sub          *wayland.Subsurface
	colorManager *wayland.ColorManager
	colorSurface *wayland.ColorSurface
}

// NewWaylandSurface creates the video subsurface under parent. colorManager
// may be nil when the compositor doesn't advertise color management; in
// that case EnableHDR returns an error and the caller stays on SDR.
func NewWaylandSurface(display *wayland.Display, compositor *wayland.Compositor, subcompositor *wayland.Subcompositor, parent *wayland.Surface, colorManager *wayland.ColorManager) (*WaylandSurface, error) {
	surface, err := compositor.CreateSurface()
	if err != nil {
		return nil, err
	}
	sub, err := subcompositor.GetSubsurface(surface, parent)
	if err != nil {
		return nil, err
	}
	if err := sub.SetPosition(0, 0); err != nil {
		return nil, err
	}
	if err := sub.PlaceBelow(parent); err != nil {
		return nil, err
	}
	if err := sub.SetDesync(); err != nil {
		return nil, err
	}
	if err := surface.Commit(); err != nil {
		return nil, err
	}
	return &WaylandSurface{
		display:      display,
		surface:      surface,
		sub:          sub,
		colorManager: colorManager,
	}, nil
}

// ID returns the wl_surface object id. gpucontext's vkwayland backend
// does not use it: a wire object id cannot back a VK_KHR_wayland_surface.
func (s *WaylandSurface) ID() wayland.ObjectID { return s.surface.ID() }

// Resize marks the (0,0,w,h) surface area as damaged; it does not change
// the buffer scale. The swapchain itself is resized by gpucontext.
func (s *WaylandSurface) Resize(w, h int) error {
	return s.surface.Damage(0, 0, int32(w), int32(h))
}

// SetLogicalRect moves the subsurface to (x, y) within the parent window.
// It does not scale: when w and h are positive it resets the buffer scale
// to 1, and the subsurface keeps the size of its attached buffer.
func (s *WaylandSurface) SetLogicalRect(x, y, w, h int) error {
	if err := s.sub.SetPosition(int32(x), int32(y)); err != nil {
		return err
	}
	if w <= 0 || h <= 0 {
		return nil
	}
	scale := int32(1)
	return s.surface.SetBufferScale(scale)
}

// EnableHDR attaches a color-management object to the subsurface (spec
// section 4.B), lazily creating it on first use.
func (s *WaylandSurface) EnableHDR(params HDRParams) error {
	if s.colorManager == nil {
		return errNoHDR("compositor does not advertise color management")
	}
	if s.colorSurface == nil {
		cs, err := s.colorManager.GetColorSurface(s.surface)
		if err != nil {
			return err
		}
		s.colorSurface = cs
	}
	if err := s.colorSurface.SetPrimaries(uint32(params.Primaries)); err != nil {
		return err
	}
	if err := s.colorSurface.SetTransferFunction(uint32(params.TransferFunction)); err != nil {
		return err
	}
	if err := s.colorSurface.SetLuminances(wayland.Luminance{
		MinCdm2: params.MinLuminanceCdm2,
		MaxCdm2: params.MaxLuminanceCdm2,
		RefCdm2: params.RefLuminanceCdm2,
	}); err != nil {
		return err
	}
	if err := s.colorSurface.SetMastering(wayland.Mastering{
		MinCdm2: params.MasteringMinCdm2,
		MaxCdm2: params.MasteringMaxCdm2,
	}); err != nil {
		return err
	}
	return s.surface.Commit()
}

// Close destroys the subsurface's wl_surface.
func (s *WaylandSurface) Close() error {
	return s.surface.Destroy()
}
