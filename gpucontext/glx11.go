// SPDX-FileCopyrightText : © 2024 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

//go:build linux

// glx11.go is the OpenGL-EGL backend for X11, grounded on
// original_source/src/context/egl_context.h/.cpp (init/cleanup/
// swapBuffers/resize/createSharedContext/makeCurrent/getProcAddress),
// wrapped in cgo the way the teacher wraps libmpv in player/mpv/mpv.go
// rather than through a platform-specific .h/.m pair, since EGL/GL are
// plain C APIs needing no Objective-C bridge.

package gpucontext

/*
#cgo linux pkg-config: egl gl x11
#include <EGL/egl.h>
#include <EGL/eglext.h>
#include <GL/gl.h>
#include <X11/Xlib.h>
#include <stdlib.h>

static EGLint *egl_config_attribs() {
	static EGLint attribs[] = {
		EGL_SURFACE_TYPE, EGL_WINDOW_BIT,
		EGL_RENDERABLE_TYPE, EGL_OPENGL_BIT,
		EGL_RED_SIZE, 8, EGL_GREEN_SIZE, 8, EGL_BLUE_SIZE, 8, EGL_ALPHA_SIZE, 8,
		EGL_NONE,
	};
	return attribs;
}

static EGLint *egl_context_attribs() {
	static EGLint attribs[] = {EGL_CONTEXT_MAJOR_VERSION, 3, EGL_CONTEXT_MINOR_VERSION, 3, EGL_NONE};
	return attribs;
}
*/
import "C"

import (
	"fmt"
	"unsafe"
)

// GLX11 is the OpenGL-EGL context bound to an X11 window.
type GLX11 struct {
	xDisplay *C.Display
	window   C.Window

	display C.EGLDisplay
	surface C.EGLSurface
	context C.EGLContext
	config  C.EGLConfig

	width, height int

	textures     map[uintptr]uint32
	dmabufImages map[uintptr]C.EGLImageKHR
	nextID       uintptr
}

// NewGLX11 creates an EGL context and window surface for an existing X11
// window, matching egl_context.cpp's init(SDL_Window*) shape with the
// SDL window replaced by the raw Xlib display/window pair the platform
// package already resolved.
func NewGLX11(xDisplay unsafe.Pointer, window uint64, w, h int) (*GLX11, error) {
	g := &GLX11{
		xDisplay:     (*C.Display)(xDisplay),
		window:       C.Window(window),
		width:        w,
		height:       h,
		textures:     make(map[uintptr]uint32),
		dmabufImages: make(map[uintptr]C.EGLImageKHR),
	}

	g.display = C.eglGetDisplay(C.EGLNativeDisplayType(unsafe.Pointer(g.xDisplay)))
	if g.display == C.EGL_NO_DISPLAY {
		return nil, errBackendUnavailable(GLX11, "eglGetDisplay failed")
	}
	if C.eglInitialize(g.display, nil, nil) == 0 {
		return nil, errBackendUnavailable(GLX11, "eglInitialize failed")
	}
	if C.eglBindAPI(C.EGL_OPENGL_API) == 0 {
		return nil, errBackendUnavailable(GLX11, "eglBindAPI(EGL_OPENGL_API) failed")
	}

	var numConfigs C.EGLint
	if C.eglChooseConfig(g.display, C.egl_config_attribs(), &g.config, 1, &numConfigs) == 0 || numConfigs == 0 {
		return nil, errBackendUnavailable(GLX11, "eglChooseConfig found no matching config")
	}

	g.surface = C.eglCreateWindowSurface(g.display, g.config, C.EGLNativeWindowType(g.window), nil)
	if g.surface == C.EGL_NO_SURFACE {
		return nil, errBackendUnavailable(GLX11, "eglCreateWindowSurface failed")
	}

	g.context = C.eglCreateContext(g.display, g.config, C.EGL_NO_CONTEXT, C.egl_context_attribs())
	if g.context == C.EGL_NO_CONTEXT {
		return nil, errBackendUnavailable(GLX11, "eglCreateContext failed")
	}

	if err := g.MakeCurrent(); err != nil {
		return nil, err
	}
	return g, nil
}

// MakeCurrent implements Context.
func (g *GLX11) MakeCurrent() error {
	if C.eglMakeCurrent(g.display, g.surface, g.surface, g.context) == 0 {
		return fmt.Errorf("gpucontext: eglMakeCurrent failed")
	}
	return nil
}

// Present implements Context, swapping the EGL surface.
func (g *GLX11) Present() error {
	if C.eglSwapBuffers(g.display, g.surface) == 0 {
		return fmt.Errorf("gpucontext: eglSwapBuffers failed")
	}
	return nil
}

// Resize recreates the window surface's reported size; EGL tracks the
// backing X11 window's actual pixel size automatically on resize, so
// this only updates the bookkeeping used by PhysicalSize.
func (g *GLX11) Resize(w, h int) error {
	g.width, g.height = w, h
	return nil
}

// PhysicalSize implements Context.
func (g *GLX11) PhysicalSize() (w, h int) { return g.width, g.height }

// SharedContext creates a second EGL context sharing this one's texture
// namespace, for use on a dedicated video-render thread (egl_context.h's
// createSharedContext).
func (g *GLX11) SharedContext() (Context, error) {
	shared := C.eglCreateContext(g.display, g.config, g.context, C.egl_context_attribs())
	if shared == C.EGL_NO_CONTEXT {
		return nil, ErrSharedContextUnsupported
	}
	return &GLX11{
		xDisplay:     g.xDisplay,
		window:       g.window,
		display:      g.display,
		surface:      g.surface,
		context:      shared,
		config:       g.config,
		width:        g.width,
		height:       g.height,
		textures:     make(map[uintptr]uint32),
		dmabufImages: make(map[uintptr]C.EGLImageKHR),
	}, nil
}

// GetProcAddress resolves a GL function pointer via eglGetProcAddress,
// used by player/mpv's render context the same way
// original_source/src/context/egl_context.h exposes it.
func (g *GLX11) GetProcAddress(name string) uintptr {
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))
	return uintptr(unsafe.Pointer(C.eglGetProcAddress(cname)))
}

// Close releases the EGL context and surface.
func (g *GLX11) Close() error {
	C.eglMakeCurrent(g.display, C.EGL_NO_SURFACE, C.EGL_NO_SURFACE, C.EGL_NO_CONTEXT)
	C.eglDestroySurface(g.display, g.surface)
	C.eglDestroyContext(g.display, g.context)
	return nil
}
