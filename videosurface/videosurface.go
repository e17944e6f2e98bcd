// SPDX-FileCopyrightText : © 2024 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

// Package videosurface owns the platform-specific presentation surface
// the video engine renders into, independently of the UI compositors in
// package compositor (spec section 4.B). Three concrete forms exist,
// selected at compile time like the teacher's device/os_*.go native
// layers:
//
//	linux:   a desynced Wayland subsurface below the main window,
//	         optionally carrying HDR color-management metadata.
//	darwin:  a CAMetalLayer hosted inside the window below the UI layer.
//	windows, and anything else: no independent surface — video composites
//	         into the main window via the UI compositor instead (4.C).
package videosurface

import "fmt"

// Primaries names the color primaries a Surface can be told to use.
type Primaries int

// TransferFunction names an electro-optical transfer function.
type TransferFunction int

const (
	// PrimariesBT2020 is the only primaries set this package knows about.
	PrimariesBT2020 Primaries = 1

	// TransferFunctionST2084 is the PQ transfer function used by HDR10
	// content.
	TransferFunctionST2084 TransferFunction = 1
)

// HDRParams is the color-management description attached to the surface
// once gpucontext has selected an HDR swapchain format (spec section
// 4.B). The default values are the ones spec section 4.B names: display
// luminance {0.0001, 1000, 203} cd/m^2, mastering {1, 1000} cd/m^2.
type HDRParams struct {
	Primaries        Primaries
	TransferFunction TransferFunction

	MinLuminanceCdm2 float64
	MaxLuminanceCdm2 float64
	RefLuminanceCdm2 float64

	MasteringMinCdm2 float64
	MasteringMaxCdm2 float64
}

// DefaultHDRParams returns the BT.2020/ST2084 parameters spec section
// 4.B names for HDR10 passthrough.
func DefaultHDRParams() HDRParams {
	return HDRParams{
		Primaries:        PrimariesBT2020,
		TransferFunction: TransferFunctionST2084,
		MinLuminanceCdm2: 0.0001,
		MaxLuminanceCdm2: 1000,
		RefLuminanceCdm2: 203,
		MasteringMinCdm2: 1,
		MasteringMaxCdm2: 1000,
	}
}

// Surface is the presentation target the video engine's GPU context
// renders into. Resize and SetLogicalRect are both called on HiDPI scale
// changes: the surface itself is sized in physical pixels (the
// resolution the video engine should render at) while the logical rect
// is the destination the platform's compositor should scale that into,
// per the viewport discipline in spec section 4.B.
type Surface interface {
	// Resize sets the surface's physical pixel size.
	Resize(w, h int) error

	// SetLogicalRect sets the logical-pixel destination rectangle the
	// platform compositor should map the physical-pixel surface onto.
	SetLogicalRect(x, y, w, h int) error

	// EnableHDR attaches or updates the surface's color-management
	// description. Returns an error on platforms or configurations where
	// HDR passthrough isn't available; callers fall back to SDR rendering.
	EnableHDR(params HDRParams) error

	// Close releases the surface and any color-management object
	// attached to it.
	Close() error
}

// errNoHDR is returned by EnableHDR on surfaces without a color-
// management path (no global advertised, or a platform with no EDR
// story wired up yet).
func errNoHDR(reason string) error {
	return fmt.Errorf("videosurface: HDR unavailable: %s", reason)
}
