// SPDX-FileCopyrightText : © 2024 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

// Package gpucontext selects and drives one GPU backend per spec section
// 4.A: Vulkan-Wayland, a Metal bridge on macOS, OpenGL-EGL on X11, or
// OpenGL-WGL on Windows. It generalizes the teacher's single-purpose 3D
// renderer (package render: vulkan.go, opengl.go, directx.go) into a
// narrow Context interface covering exactly the services the video
// player UI needs: make current, present, resize, query physical size,
// and a shared context for a dedicated render thread. Each backend also
// implements compositor.GPUImageHost, so the same backend both drives
// the window's own swapchain and services the UI compositors' texture
// uploads and shared-texture imports.
package gpucontext

import "fmt"

// Backend names the concrete implementation selected at startup.
type Backend string

const (
	VKWayland Backend = "vkwayland"
	VKMetal   Backend = "vkmetal"
	GLX11     Backend = "glx11"
	GLWindows Backend = "glwindows"
)

// Context is a GPU device and presentation swapchain bound to the
// application window (spec section 4.A).
type Context interface {
	// MakeCurrent binds the context to the calling OS thread. No-op for
	// the Vulkan backends, whose queues aren't thread-affine the way a
	// GL context is.
	MakeCurrent() error

	// Present submits the frame, recreating the swapchain transparently
	// on an out-of-date/suboptimal result (spec section 4.A failure
	// semantics) rather than returning an error for that case.
	Present() error

	// Resize serializes with a device-wait-idle before destroying and
	// recreating the swapchain at the new size.
	Resize(w, h int) error

	// PhysicalSize returns the current swapchain size in physical pixels.
	PhysicalSize() (w, h int)

	// SharedContext returns a context usable on a second thread sharing
	// GPU resources with this one, for backends where a dedicated
	// video-render thread is viable (spec section 4.A: Vulkan and GL
	// with shareable contexts). Returns an error on backends where it
	// isn't (GL without shareable contexts), telling the frame loop to
	// schedule video rendering synchronously on the main thread instead.
	SharedContext() (Context, error)

	// GetProcAddress resolves a GL function pointer, used by the mpv
	// render context on GL backends exactly as original_source's
	// wgl_context.h/egl_context.h expose it for the same purpose.
	GetProcAddress(name string) uintptr

	// Close releases the context and its swapchain.
	Close() error
}

// errBackendUnavailable reports why a backend could not be initialized,
// distinct from a transient present-time failure.
func errBackendUnavailable(backend Backend, reason string) error {
	return fmt.Errorf("gpucontext: %s unavailable: %s", backend, reason)
}

// ErrSharedContextUnsupported is returned by SharedContext on backends
// without a shareable-context story (spec section 4.A: "OpenGL without:
// no, and the core must schedule video rendering synchronously on the
// main thread").
var ErrSharedContextUnsupported = fmt.Errorf("gpucontext: backend has no shareable context; schedule video rendering on the main thread")
