// SPDX-FileCopyrightText : © 2024 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

// cef.go implements the browser-process side of one CEF browser instance
// over libcef's C client API (include/capi/cef_*_capi.h), grounded on
// original_source/src/cef_app.cpp and src/cef/cef_client.cpp the same
// way player/mpv/mpv.go wraps libmpv's client API: a single Go type owns
// the native handles, cgo exports bridge C callbacks back into Go, and
// every exported method is a thin, synchronous translation onto the
// corresponding cef_* call. Windowless (off-screen) rendering is used
// throughout — CEF never owns a native window of its own, only the
// shared-memory or GPU-shared frames package videosurface/compositor
// composite (spec section 4.H).
package webengine

/*
#cgo pkg-config: cef
#include <stdlib.h>
#include <string.h>
#include "include/capi/cef_app_capi.h"
#include "include/capi/cef_client_capi.h"
#include "include/capi/cef_render_handler_capi.h"
#include "include/capi/cef_life_span_handler_capi.h"
#include "include/capi/cef_browser_capi.h"
#include "include/capi/cef_process_message_capi.h"
#include "include/internal/cef_string.h"

extern void goCefOnPaint(uint64_t key, int popup, const void *buf, int w, int h);
extern void goCefOnAcceleratedPaint(uint64_t key, int popup, int fd, uint64_t device, uint64_t inode, int w, int h, uint32_t layout);
extern void goCefOnPopupShow(uint64_t key, int show);
extern void goCefOnPopupSize(uint64_t key, int x, int y, int w, int h);
extern void goCefOnProcessMessage(uint64_t key, const char *name, const char *str0, int64_t int0, double dbl0, int bool0, int bool1);
extern void goCefScheduleWork(uint64_t key, int64_t delay_ms);

// bridge_render_handler and bridge_client wrap the extern callbacks above
// into the vtable shape cef_client_capi.h expects; their bodies live in
// cef_bridge.c, compiled alongside this file by the cgo toolchain.
cef_client_t *jmp_make_client(uint64_t key);
void jmp_release_client(cef_client_t *client);
cef_app_t *jmp_make_app(uint64_t key);
void jmp_send_text_message(cef_browser_t *browser, const char *name, const char *str0, int64_t int0, double dbl0, int bool0, int bool1);

static inline void jmp_set_cache_path(cef_settings_t *settings, const char *path) {
	cef_string_utf8_to_utf16(path, strlen(path), &settings->cache_path);
}
*/
import "C"

import (
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"unsafe"

	"github.com/jellyfin/jellyfin-desktop-go/present"
)

// registry maps the opaque key threaded through every cgo callback back
// to the owning Engine, the same uint64-key-in-a-sync.Map pattern
// player/mpv/mpv.go uses for its own wakeup/redraw callbacks.
var (
	registry sync.Map // uint64 key -> *Engine
	nextKey  uint64
)

// Engine owns one CEF browser instance rendered off-screen.
type Engine struct {
	key     uint64
	role    Role
	client  *C.cef_client_t
	browser *C.cef_browser_t

	log   *slog.Logger
	paint *PaintTarget
	ipc   *IPCRouter
	host  *Host

	closed atomic.Bool
}

// NewEngine creates a windowless browser for role, loading the embedded
// scheme URL startURL (e.g. "jmp://app/index.html"), delivering paint
// callbacks to paint and IPC messages to ipc.
func NewEngine(role Role, host *Host, paint *PaintTarget, ipc *IPCRouter, startURL string, width, height int) (*Engine, error) {
	key := atomic.AddUint64(&nextKey, 1)
	e := &Engine{
		key:   key,
		role:  role,
		log:   slog.With("component", "webengine.cef", "role", role),
		paint: paint,
		ipc:   ipc,
		host:  host,
	}
	registry.Store(key, e)

	client := C.jmp_make_client(C.uint64_t(key))
	if client == nil {
		registry.Delete(key)
		return nil, fmt.Errorf("webengine: cef client creation failed for %s", role)
	}
	e.client = client

	cURL := C.CString(startURL)
	defer C.free(unsafe.Pointer(cURL))

	// Window info, browser settings, and the actual
	// cef_browser_host_create_browser call are assembled in the
	// platform-specific window_*.go files, which know how to fill in
	// cef_window_info_t's windowless parent handle for their OS.
	browser, err := createWindowlessBrowser(client, cURL, width, height)
	if err != nil {
		C.jmp_release_client(client)
		registry.Delete(key)
		return nil, err
	}
	e.browser = browser

	handle := host.RegisterBrowser(role)
	e.log.Info("browser created", "handle_id", handle)
	return e, nil
}

// LoadURL navigates the browser to url, used for the overlay's
// server-picker flow and the main client's reload-on-server-change path.
func (e *Engine) LoadURL(url string) {
	if e.browser == nil {
		return
	}
	cURL := C.CString(url)
	defer C.free(unsafe.Pointer(cURL))
	loadBrowserURL(e.browser, cURL)
}

// Resize notifies the browser that its off-screen view rectangle
// changed, forcing a fresh OnPaint at the new dimensions.
func (e *Engine) Resize(w, h int) {
	if e.browser == nil {
		return
	}
	wasResized(e.browser)
}

// SendNotify forwards a CmdNotify-shaped event into the page via a
// CefProcessMessage, the reverse direction of IPCRouter.Route: the
// browser process telling the renderer's window.api.player to fire a
// signal (spec section 4.H, player/bridge.go's Session.Notify contract).
func (e *Engine) SendNotify(kind string, payload string, intArg int64) {
	if e.browser == nil {
		return
	}
	cName := C.CString(kind)
	cPayload := C.CString(payload)
	defer C.free(unsafe.Pointer(cName))
	defer C.free(unsafe.Pointer(cPayload))
	C.jmp_send_text_message(e.browser, cName, cPayload, C.int64_t(intArg), 0, 0, 0)
}

// ExecuteJavaScript runs code in the browser's main frame, fire-and-forget,
// the same mechanism cef_client.cpp's frame->load_url neighbours use for
// one-off script injection; playerui.go builds code from a fixed set of
// signal templates rather than ever interpolating untrusted strings.
func (e *Engine) ExecuteJavaScript(code string) {
	if e.browser == nil {
		return
	}
	cCode := C.CString(code)
	defer C.free(unsafe.Pointer(cCode))
	C.jmp_execute_javascript(e.browser, cCode)
}

// Close tears down the browser instance. Safe to call more than once.
func (e *Engine) Close() {
	if !e.closed.CompareAndSwap(false, true) {
		return
	}
	if e.browser != nil {
		closeBrowser(e.browser)
	}
	if e.client != nil {
		C.jmp_release_client(e.client)
	}
	registry.Delete(e.key)
}

//export goCefOnPaint
func goCefOnPaint(key C.uint64_t, popup C.int, buf unsafe.Pointer, w, h C.int) {
	e := lookupEngine(uint64(key))
	if e == nil || e.paint == nil {
		return
	}
	n := int(w) * int(h) * 4
	pixels := C.GoBytes(buf, C.int(n))
	if popup != 0 {
		e.paint.OnPaintPopup(pixels, int(w), int(h))
	} else {
		e.paint.OnPaint(pixels, int(w), int(h))
	}
}

//export goCefOnAcceleratedPaint
func goCefOnAcceleratedPaint(key C.uint64_t, popup C.int, fd C.int, device, inode C.uint64_t, w, h C.int, layout C.uint32_t) {
	e := lookupEngine(uint64(key))
	if e == nil || e.paint == nil || popup != 0 {
		// accelerated popups are not supported upstream; the software
		// path above is always used for popups.
		return
	}
	e.paint.OnAcceleratedPaint(int(fd), present.BufferIdentity{Device: uint64(device), Inode: uint64(inode)}, int(w), int(h), uint32(layout))
}

//export goCefOnPopupShow
func goCefOnPopupShow(key C.uint64_t, show C.int) {
	if e := lookupEngine(uint64(key)); e != nil && e.paint != nil {
		e.paint.OnPopupShow(show != 0)
	}
}

//export goCefOnPopupSize
func goCefOnPopupSize(key C.uint64_t, x, y, w, h C.int) {
	if e := lookupEngine(uint64(key)); e != nil && e.paint != nil {
		e.paint.OnPopupSize(int(x), int(y), int(w), int(h))
	}
}

//export goCefOnProcessMessage
func goCefOnProcessMessage(key C.uint64_t, name, str0 *C.char, int0 C.int64_t, dbl0 C.double, bool0, bool1 C.int) {
	e := lookupEngine(uint64(key))
	if e == nil || e.ipc == nil {
		return
	}
	msg := IPCMessage{
		Function: NativeFunction(C.GoString(name)),
		String0:  C.GoString(str0),
		Int0:     int64(int0),
		Double0:  float64(dbl0),
		Bool0:    bool0 != 0,
		Bool1:    bool1 != 0,
	}
	if err := e.ipc.Route(msg); err != nil {
		e.log.Warn("ipc route failed", "fn", msg.Function, "err", err)
	}
}

//export goCefScheduleWork
func goCefScheduleWork(key C.uint64_t, delayMs C.int64_t) {
	if e := lookupEngine(uint64(key)); e != nil && e.host != nil {
		e.host.ScheduleMessagePumpWork(int64(delayMs))
	}
}

func lookupEngine(key uint64) *Engine {
	v, ok := registry.Load(key)
	if !ok {
		return nil
	}
	return v.(*Engine)
}

// DoMessageLoopWork pumps one iteration of CEF's message loop. Called
// from the frame loop whenever Host.NeedsWork reports pending work (spec
// section 4.H: "calls its message-loop entry").
func DoMessageLoopWork() {
	C.cef_do_message_loop_work()
}

// processAppKey is a fixed key (0) for the single cef_app_t the process
// creates at startup; it never needs to look anything up through
// registry since goCefScheduleWork's only job is to reach one Host, set
// once by Initialize.
const processAppKey = 0

var processHost *Host

// Initialize starts the CEF subprocess and browser-process runtime. Must
// be called once per process, from the same thread as every later
// browser and message-loop call (spec section 4.H; CEF, like libmpv's GL
// render API, is not free-threaded). host receives schedule-work
// notifications for the frame loop to poll via Host.NeedsWork.
func Initialize(host *Host, cachePath string) error {
	processHost = host

	var args C.cef_main_args_t
	var settings C.cef_settings_t
	settings.size = C.size_t(unsafe.Sizeof(settings))
	settings.windowless_rendering_enabled = 1
	settings.no_sandbox = 1

	cCache := C.CString(cachePath)
	defer C.free(unsafe.Pointer(cCache))
	C.jmp_set_cache_path(&settings, cCache)

	app := C.jmp_make_app(C.uint64_t(processAppKey))
	registry.Store(uint64(processAppKey), &Engine{key: processAppKey, host: host, log: slog.With("component", "webengine.cef")})

	if C.cef_initialize(&args, &settings, app, nil) == 0 {
		return fmt.Errorf("webengine: cef_initialize failed")
	}
	return nil
}

// Shutdown stops the CEF runtime. Must be the last CEF call the process
// makes.
func Shutdown() {
	C.cef_shutdown()
}
