// SPDX-FileCopyrightText : © 2024 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

//go:build windows

// glwindows.go is the OpenGL-WGL backend for Windows, grounded on
// original_source/src/context/wgl_context.h/.cpp (init/cleanup/
// makeCurrent/swapBuffers/resize/createSharedContext/destroyContext/
// getProcAddress) and following the teacher's render/directx.go pattern
// of a thin, self-contained per-platform backend file rather than a
// .h/.m pair, since Win32/WGL is a plain C API needing no Objective-C
// style bridge.
package gpucontext

/*
#cgo windows LDFLAGS: -lopengl32 -lgdi32
#include <windows.h>
#include <GL/gl.h>
#include <stdlib.h>

static PIXELFORMATDESCRIPTOR wgl_pixel_format_descriptor() {
	PIXELFORMATDESCRIPTOR pfd = {0};
	pfd.nSize = sizeof(pfd);
	pfd.nVersion = 1;
	pfd.dwFlags = PFD_DRAW_TO_WINDOW | PFD_SUPPORT_OPENGL | PFD_DOUBLEBUFFER;
	pfd.iPixelType = PFD_TYPE_RGBA;
	pfd.cColorBits = 32;
	pfd.cAlphaBits = 8;
	pfd.iLayerType = PFD_MAIN_PLANE;
	return pfd;
}
*/
import "C"

import (
	"fmt"
	"unsafe"
)

// GLWindows is the OpenGL-WGL context bound to a Win32 window.
type GLWindows struct {
	hwnd  C.HWND
	hdc   C.HDC
	hglrc C.HGLRC

	width, height int

	textures     map[uintptr]C.GLuint
	dmabufImages map[uintptr]struct{} // always empty: no dmabuf on Windows
	nextID       uintptr
}

// NewGLWindows creates a WGL context for an existing Win32 window handle,
// matching wgl_context.cpp's init(SDL_Window*) shape with the SDL window
// replaced by the raw HWND the platform package already resolved.
func NewGLWindows(hwnd unsafe.Pointer, w, h int) (*GLWindows, error) {
	g := &GLWindows{
		hwnd:         C.HWND(hwnd),
		width:        w,
		height:       h,
		textures:     make(map[uintptr]C.GLuint),
		dmabufImages: make(map[uintptr]struct{}),
	}

	g.hdc = C.GetDC(g.hwnd)
	if g.hdc == nil {
		return nil, errBackendUnavailable(GLWindows, "GetDC failed")
	}

	pfd := C.wgl_pixel_format_descriptor()
	pixelFormat := C.ChoosePixelFormat(g.hdc, &pfd)
	if pixelFormat == 0 || C.SetPixelFormat(g.hdc, pixelFormat, &pfd) == 0 {
		return nil, errBackendUnavailable(GLWindows, "ChoosePixelFormat/SetPixelFormat failed")
	}

	g.hglrc = C.wglCreateContext(g.hdc)
	if g.hglrc == nil {
		return nil, errBackendUnavailable(GLWindows, "wglCreateContext failed")
	}

	if err := g.MakeCurrent(); err != nil {
		return nil, err
	}
	return g, nil
}

// MakeCurrent implements Context.
func (g *GLWindows) MakeCurrent() error {
	if C.wglMakeCurrent(g.hdc, g.hglrc) == 0 {
		return fmt.Errorf("gpucontext: wglMakeCurrent failed")
	}
	return nil
}

// Present implements Context, swapping the device context's buffers.
func (g *GLWindows) Present() error {
	if C.SwapBuffers(g.hdc) == 0 {
		return fmt.Errorf("gpucontext: SwapBuffers failed")
	}
	return nil
}

// Resize updates the bookkeeping size; as wgl_context.cpp notes, WGL
// needs no explicit resize call since the device context is already tied
// to the HWND and tracks its client area automatically.
func (g *GLWindows) Resize(w, h int) error {
	g.width, g.height = w, h
	return nil
}

// PhysicalSize implements Context.
func (g *GLWindows) PhysicalSize() (w, h int) { return g.width, g.height }

// SharedContext creates a second WGL context sharing this one's display
// lists (textures, VBOs) via wglShareLists, matching
// wgl_context.cpp's createSharedContext.
func (g *GLWindows) SharedContext() (Context, error) {
	shared := C.wglCreateContext(g.hdc)
	if shared == nil {
		return nil, ErrSharedContextUnsupported
	}
	if C.wglShareLists(g.hglrc, shared) == 0 {
		C.wglDeleteContext(shared)
		return nil, ErrSharedContextUnsupported
	}
	return &GLWindows{
		hwnd: g.hwnd, hdc: g.hdc, hglrc: shared,
		width: g.width, height: g.height,
		textures:     make(map[uintptr]C.GLuint),
		dmabufImages: make(map[uintptr]struct{}),
	}, nil
}

// GetProcAddress resolves a GL function pointer, trying wglGetProcAddress
// first for extensions and falling back to opengl32.dll's exports for
// core entry points, exactly as wgl_context.cpp's getProcAddress does.
func (g *GLWindows) GetProcAddress(name string) uintptr {
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))
	if proc := C.wglGetProcAddress((*C.char)(cname)); proc != nil {
		return uintptr(unsafe.Pointer(proc))
	}
	lib := C.CString("opengl32.dll")
	defer C.free(unsafe.Pointer(lib))
	mod := C.LoadLibraryA((*C.char)(lib))
	if mod == nil {
		return 0
	}
	return uintptr(unsafe.Pointer(C.GetProcAddress(mod, (*C.char)(cname))))
}

// Close releases the WGL context and device context, matching
// wgl_context.cpp's cleanup.
func (g *GLWindows) Close() error {
	C.wglMakeCurrent(nil, nil)
	C.wglDeleteContext(g.hglrc)
	C.ReleaseDC(g.hwnd, g.hdc)
	return nil
}
