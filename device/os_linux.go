// SPDX-FileCopyrightText : © 2024 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

package device

// The Linux native layer. Unlike os_darwin.go/os_windows.go this wraps no
// cgo native toolkit: internal/wire/wayland is a pure-Go Wayland client,
// so Linux gets its own Device implementation directly on top of it
// rather than routing through native.go's cgo-oriented nativeOs/native
// interface (display/shell/context as opaque int64 handles, a
// synchronous readDispatch poll loop) that os_darwin.go/os_windows.go
// still use. The public contract — Device, Pressed, the modifier
// pseudo-codes and KEY_RELEASED sentinel in device.go — is the same one
// those platforms honor.

import (
	"log"
	"sync"

	"github.com/jellyfin/jellyfin-desktop-go/internal/wire/wayland"
)

var _ Device = (*linuxDevice)(nil)

// WaylandObjectsProvider is implemented by the Linux Device so callers
// holding only the Device interface (cmd/jellyfindesktop's
// openNativeSurface) can reach the live Wayland protocol objects
// gpucontext.Select's LinuxParams and videosurface.NewWaylandSurface
// need, without device exporting its concrete *linuxDevice type.
type WaylandObjectsProvider interface {
	// WaylandObjects returns the display, the toplevel window's own
	// surface, and the compositor/subcompositor globals needed to
	// create the independent video subsurface alongside it.
	WaylandObjects() (*wayland.Display, *wayland.Surface, *wayland.Compositor, *wayland.Subcompositor)
	// ColorManager returns the optional HDR color-management global,
	// nil if the compositor doesn't advertise it.
	ColorManager() *wayland.ColorManager
}

var _ WaylandObjectsProvider = (*linuxDevice)(nil)

// linuxDevice is a toplevel Wayland window plus whichever seat input
// devices the compositor advertises.
type linuxDevice struct {
	display       *wayland.Display
	registry      *wayland.Registry
	compositor    *wayland.Compositor
	subcompositor *wayland.Subcompositor
	wmBase        *wayland.WmBase
	colorManager  *wayland.ColorManager
	surface       *wayland.Surface
	xdgSurface    *wayland.XdgSurface
	toplevel      *wayland.XdgToplevel
	seat          *wayland.Seat
	pointer       *wayland.Pointer
	keyboard      *wayland.Keyboard

	mu         sync.Mutex
	curr       *Pressed
	down       *Pressed
	alive      bool
	fullscreen bool
	width      int
	height     int
}

// newDevice connects to the compositor named by $WAYLAND_DISPLAY and
// builds a toplevel window. Connection or protocol-bind failure leaves
// IsAlive false rather than panicking, matching nativeOs.createDisplay's
// own log-and-continue failure style in native.go.
func newDevice(title string, x, y, width, height int) *linuxDevice {
	d := &linuxDevice{
		curr:   &Pressed{Focus: true, Down: map[int]int{}},
		down:   &Pressed{Focus: true, Down: map[int]int{}},
		width:  width,
		height: height,
	}

	disp, err := wayland.Connect()
	if err != nil {
		log.Printf("device/linux: wayland connect failed: %v", err)
		return d
	}
	d.display = disp

	registry, err := disp.GetRegistry()
	if err != nil {
		log.Printf("device/linux: get_registry failed: %v", err)
		return d
	}
	d.registry = registry
	<-disp.Sync() // round trip so registry.globals is populated below.

	compositor, err := registry.BindCompositor(4)
	if err != nil {
		log.Printf("device/linux: bind wl_compositor failed: %v", err)
		return d
	}
	d.compositor = compositor

	subcompositor, err := registry.BindSubcompositor(1)
	if err != nil {
		log.Printf("device/linux: bind wl_subcompositor failed: %v", err)
		return d
	}
	d.subcompositor = subcompositor

	wmBase, err := registry.BindWmBase(1)
	if err != nil {
		log.Printf("device/linux: bind xdg_wm_base failed: %v", err)
		return d
	}
	d.wmBase = wmBase

	if seat, err := registry.BindSeat(5); err != nil {
		log.Printf("device/linux: bind wl_seat failed: %v", err)
	} else {
		d.seat = seat
		seat.OnCapabilities = d.onSeatCapabilities
	}

	// wp_color_manager_v1 (spec section 4.B HDR path) is optional; its
	// absence only disables EnableHDR on videosurface.WaylandSurface.
	if cm, err := registry.BindColorManager("wp_color_manager_v1", 1); err == nil {
		d.colorManager = cm
	}

	surface, err := compositor.CreateSurface()
	if err != nil {
		log.Printf("device/linux: create_surface failed: %v", err)
		return d
	}
	d.surface = surface

	xdgSurface, err := wmBase.GetXdgSurface(surface)
	if err != nil {
		log.Printf("device/linux: get_xdg_surface failed: %v", err)
		return d
	}
	d.xdgSurface = xdgSurface
	xdgSurface.OnConfigure = func(serial uint32) {
		xdgSurface.AckConfigure(serial)
		surface.Commit()
	}

	toplevel, err := xdgSurface.GetToplevel()
	if err != nil {
		log.Printf("device/linux: get_toplevel failed: %v", err)
		return d
	}
	d.toplevel = toplevel
	toplevel.SetTitle(title)
	toplevel.OnConfigure = d.onToplevelConfigure
	toplevel.OnClose = d.onToplevelClose

	surface.Commit()
	d.alive = true
	return d
}

// ColorManager exposes the optional HDR color-management global so
// cmd/jellyfindesktop's surface wiring can hand it to
// videosurface.NewWaylandSurface; nil when the compositor doesn't
// advertise it.
func (d *linuxDevice) ColorManager() *wayland.ColorManager { return d.colorManager }

// WaylandObjects exposes the live *wayland.Display/*wayland.Surface pair
// gpucontext.Select's LinuxParams and videosurface's Wayland
// constructors need — the native view/window handle accessor Linux's
// pure-Go backend can hand out directly, with no cgo/unsafe.Pointer
// marshalling required.
func (d *linuxDevice) WaylandObjects() (*wayland.Display, *wayland.Surface, *wayland.Compositor, *wayland.Subcompositor) {
	return d.display, d.surface, d.compositor, d.subcompositor
}

func (d *linuxDevice) onSeatCapabilities(caps uint32) {
	if caps&wayland.SeatCapabilityPointer != 0 && d.pointer == nil {
		if p, err := d.seat.GetPointer(); err == nil {
			d.pointer = p
			p.OnMotion = d.onPointerMotion
			p.OnButton = d.onPointerButton
			p.OnAxis = d.onPointerAxis
		}
	}
	if caps&wayland.SeatCapabilityKeyboard != 0 && d.keyboard == nil {
		if k, err := d.seat.GetKeyboard(); err == nil {
			d.keyboard = k
			k.OnKey = d.onKey
			k.OnModifiers = d.onModifiers
		}
	}
}

func (d *linuxDevice) onPointerMotion(x, y int) {
	d.mu.Lock()
	d.curr.Mx, d.curr.My = x, y
	d.mu.Unlock()
}

func (d *linuxDevice) onPointerButton(button uint32, pressed bool) {
	d.mu.Lock()
	if pressed {
		d.recordPress(int(button))
	} else {
		d.recordRelease(int(button))
	}
	d.mu.Unlock()
}

func (d *linuxDevice) onPointerAxis(axis uint32, value int) {
	if axis != wayland.AxisVerticalScroll {
		return
	}
	d.mu.Lock()
	d.curr.Scroll += value
	d.mu.Unlock()
}

func (d *linuxDevice) onKey(key uint32, pressed bool) {
	d.mu.Lock()
	if pressed {
		d.recordPress(int(key))
	} else {
		d.recordRelease(int(key))
	}
	d.mu.Unlock()
}

func (d *linuxDevice) onModifiers(depressed, latched, locked, group uint32) {
	d.mu.Lock()
	d.applyModifier(ShiftKey, depressed&xkbModShift != 0)
	d.applyModifier(ControlKey, depressed&xkbModControl != 0)
	d.applyModifier(AltKey, depressed&xkbModAlt != 0)
	d.mu.Unlock()
}

// applyModifier folds a modifier bit into Down the same way
// input.go's processEvent does for darwin/windows: present means held.
// Caller holds d.mu.
func (d *linuxDevice) applyModifier(code int, held bool) {
	if held {
		d.recordPress(code)
	} else {
		d.recordRelease(code)
	}
}

// recordPress/recordRelease mirror input.go's press/duration bookkeeping
// (see KEY_RELEASED's doc comment in device.go). Caller holds d.mu.
func (d *linuxDevice) recordPress(code int) {
	if _, ok := d.curr.Down[code]; !ok {
		d.curr.Down[code] = 0
	}
}

func (d *linuxDevice) recordRelease(code int) {
	if _, ok := d.curr.Down[code]; ok {
		d.curr.Down[code] += KEY_RELEASED
	}
}

func (d *linuxDevice) onToplevelConfigure(w, h int32) {
	d.mu.Lock()
	if w > 0 && h > 0 {
		d.width, d.height = int(w), int(h)
	}
	d.curr.Resized = true
	d.mu.Unlock()
}

func (d *linuxDevice) onToplevelClose() {
	d.mu.Lock()
	d.alive = false
	d.mu.Unlock()
}

func (d *linuxDevice) Open() {
	if d.surface != nil {
		d.surface.Commit()
	}
}

func (d *linuxDevice) Dispose() {
	if d.toplevel != nil {
		d.toplevel.Destroy()
	}
	if d.surface != nil {
		d.surface.Destroy()
	}
	if d.display != nil {
		d.display.Close()
	}
}

func (d *linuxDevice) IsAlive() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.alive && (d.display == nil || d.display.Err() == nil)
}

// Size returns (0, 0, width, height): Wayland gives clients no say over
// (and no way to query) their absolute screen position, unlike
// os_darwin.go/os_windows.go's real window coordinates.
func (d *linuxDevice) Size() (x, y, width, height int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return 0, 0, d.width, d.height
}

// ShowCursor hides the pointer (passing a nil cursor surface) or leaves
// it as last set. Restoring the system arrow would need a cursor-theme
// surface this client doesn't load, so "show" is a deliberate no-op
// rather than a fabricated cursor image.
func (d *linuxDevice) ShowCursor(show bool) {
	if d.pointer == nil || show {
		return
	}
	d.pointer.SetCursor(0, nil, 0, 0)
}

// SetCursorAt is a no-op: Wayland has no protocol for a client to warp
// the pointer, only the compositor can move it.
func (d *linuxDevice) SetCursorAt(x, y int) {}

// SwapBuffers is a no-op: presentation goes through gpucontext's Vulkan
// (or GLX11 fallback) swapchain directly; this layer never owns a GL
// context on Linux, unlike os_darwin.go/os_windows.go.
func (d *linuxDevice) SwapBuffers() {}

func (d *linuxDevice) IsFullScreen() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.fullscreen
}

func (d *linuxDevice) ToggleFullScreen() {
	d.mu.Lock()
	d.fullscreen = !d.fullscreen
	fullscreen := d.fullscreen
	d.mu.Unlock()
	if d.toplevel == nil {
		return
	}
	if fullscreen {
		d.toplevel.SetFullscreen()
	} else {
		d.toplevel.UnsetFullscreen()
	}
}

// Update consolidates the event callbacks' accumulated state into the
// snapshot the caller polls, following the same current/duration/
// release-then-drop bookkeeping as input.go's clone/updateDurations for
// darwin/windows.
func (d *linuxDevice) Update() *Pressed {
	d.mu.Lock()
	defer d.mu.Unlock()

	for code, dur := range d.curr.Down {
		if dur >= 0 {
			d.curr.Down[code] = dur + 1
		}
	}

	for code := range d.down.Down {
		delete(d.down.Down, code)
	}
	for code, dur := range d.curr.Down {
		d.down.Down[code] = dur
		if dur < 0 {
			delete(d.curr.Down, code)
		}
	}
	d.down.Mx, d.down.My = d.curr.Mx, d.curr.My
	d.down.Focus = d.curr.Focus
	d.down.Resized = d.curr.Resized
	d.down.Scroll = d.curr.Scroll
	d.curr.Resized = false
	return d.down
}
