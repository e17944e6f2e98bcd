// SPDX-FileCopyrightText : © 2024 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

//go:build windows

package gpucontext

import "unsafe"

// Select creates the Windows OpenGL-WGL backend bound to hwnd. Windows
// has only the one backend spec section 4.A names for this platform, so
// there is no fallback path to try.
func Select(hwnd unsafe.Pointer, w, h int) (Context, Backend, error) {
	ctx, err := NewGLWindows(hwnd, w, h)
	if err != nil {
		return nil, "", err
	}
	return ctx, GLWindows, nil
}
