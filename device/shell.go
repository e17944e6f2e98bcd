// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

//go:build darwin || windows

package device

import "unsafe"

// device provides a simplification layer over the more raw context layer.
// Linux has no nativeOs/native cgo layer (see os_linux.go), so this
// constructor and the device type it builds are darwin/windows only.
type device struct {
	os    *nativeOs // Native layer wrapper.
	input *input    // User input handler.
}

// newDevice initializes a OS specific window with a valid render context.
func newDevice(title string, x, y, width, height int) *device {
	d := &device{}
	d.os = newNativeOs()
	d.os.createDisplay(title, x, y, width, height)
	d.os.createShell()
	depthBufferBits, alphaBits := 24, 8 // resonable defaults
	d.os.createContext(depthBufferBits, alphaBits)
	d.input = newInput(d.os)
	return d
}

// NativeHandleProvider is implemented by the darwin/windows Device so
// callers holding only the Device interface (cmd/jellyfindesktop's
// per-OS openNativeSurface) can still reach the raw native handle
// gpucontext.Select and videosurface need, without device exporting its
// concrete *device type.
type NativeHandleProvider interface {
	NativeHandle() unsafe.Pointer
}

var _ NativeHandleProvider = (*device)(nil)

// NativeHandle returns the raw native view/window reference gpucontext.Select
// and videosurface's darwin/windows constructors need: the content view on
// macOS (for videosurface.NewMetalSurface), the HWND on Windows (for
// gpucontext.Select directly). Both are nrefs.shell, the native layer's own
// "window" handle per native.go's doc comment on the shell() method.
func (d *device) NativeHandle() unsafe.Pointer { return unsafe.Pointer(uintptr(d.os.nr.shell)) }

// Access the device specific information in a consistent and general manner.
func (d *device) Open()                           { d.os.openShell() }
func (d *device) Dispose()                        { d.os.dispose() }
func (d *device) IsAlive() bool                   { return d.os.isAlive() }
func (d *device) Size() (x, y, width, height int) { return d.os.size() }
func (d *device) ShowCursor(show bool)            { d.os.showCursor(show) }
func (d *device) SwapBuffers()                    { d.os.swapBuffers() }
func (d *device) IsFullScreen() bool              { return d.os.isFullscreen() }
func (d *device) ToggleFullScreen()               { d.os.toggleFullscreen() }
func (d *device) SetCursorAt(x, y int)            { d.os.setCursorAt(x, y) }
// Update drains the native event queue (readDispatch returns nil once
// the queue is empty for this pass) into the input goroutine, then
// polls it for the consolidated Pressed snapshot.
func (d *device) Update() *Pressed {
	in := &userInput{}
	for {
		in = d.os.readDispatch(in)
		if in == nil {
			break
		}
		d.input.events <- in
	}
	return d.input.latest()
}
