// SPDX-FileCopyrightText : © 2024 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

//go:build darwin

package gpucontext

import "unsafe"

// Select creates the macOS Vulkan-Metal backend bound to metalLayer, the
// CAMetalLayer pointer from videosurface.MetalSurface.Layer(). macOS has
// only the one backend spec section 4.A names for this platform, so
// there is no fallback path to try.
func Select(metalLayer unsafe.Pointer, w, h int) (Context, Backend, error) {
	ctx, err := NewVKMetal(metalLayer, w, h)
	if err != nil {
		return nil, "", err
	}
	return ctx, VKMetal, nil
}
