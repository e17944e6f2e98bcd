// SPDX-FileCopyrightText : © 2024 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

//go:build darwin

package videosurface

// The macOS native layer: a CAMetalLayer hosted below the UI layer, per
// spec section 4.B. Follows the same cgo-wraps-a-.h/.m-pair shape as the
// teacher's device/os_darwin.go, which wraps os_darwin.h/os_darwin.m.

// #cgo darwin CFLAGS: -x objective-c -fno-common
// #cgo darwin LDFLAGS: -framework Cocoa -framework QuartzCore
// #include <stdlib.h>
// #include "metal_surface_darwin.h"
import "C"

import (
	"fmt"
	"unsafe"
)

var _ Surface = (*MetalSurface)(nil)

// MetalSurface is a CAMetalLayer sublayer hosted inside the application
// window, below the web engine's view.
type MetalSurface struct {
	layer unsafe.Pointer
	edr   bool
}

// NewMetalSurface installs a CAMetalLayer as a sublayer of nsview's
// layer. nsview is the application window's content view, an
// *NSView passed through as an opaque pointer the way device/os_darwin.go
// threads native references.
func NewMetalSurface(nsview unsafe.Pointer) (*MetalSurface, error) {
	layer := C.vs_metal_layer_create(nsview)
	if layer == nil {
		return nil, fmt.Errorf("videosurface: failed to create CAMetalLayer")
	}
	return &MetalSurface{layer: unsafe.Pointer(layer)}, nil
}

// Layer returns the CAMetalLayer pointer, consumed by gpucontext's
// vkmetal/Metal backend to create its swapchain.
func (s *MetalSurface) Layer() unsafe.Pointer { return s.layer }

// HDREnabled reports whether EnableHDR has switched the layer into EDR
// mode.
func (s *MetalSurface) HDREnabled() bool { return s.edr }

// Resize sets the layer's physical-pixel drawable size.
func (s *MetalSurface) Resize(w, h int) error {
	C.vs_metal_layer_set_size(s.layer, C.int(w), C.int(h))
	return nil
}

// SetLogicalRect positions the layer within the window in logical
// points; macOS scales the physical drawable onto this rect natively,
// the platform's equivalent of the Wayland viewporter path.
func (s *MetalSurface) SetLogicalRect(x, y, w, h int) error {
	C.vs_metal_layer_set_rect(s.layer, C.int(x), C.int(y), C.int(w), C.int(h))
	return nil
}

// EnableHDR switches the layer to the extended dynamic range colorspace
// advertised via the platform's EDR path (spec section 4.B). macOS has
// no per-content luminance/mastering metadata API at this layer, so
// params' luminance fields are accepted but not separately applied.
func (s *MetalSurface) EnableHDR(params HDRParams) error {
	if params.TransferFunction != TransferFunctionST2084 {
		return errNoHDR("only the ST2084 transfer function is supported on macOS")
	}
	C.vs_metal_layer_enable_edr(s.layer, 1)
	s.edr = true
	return nil
}

// Close removes the layer from its superlayer.
func (s *MetalSurface) Close() error {
	C.vs_metal_layer_destroy(s.layer)
	return nil
}
