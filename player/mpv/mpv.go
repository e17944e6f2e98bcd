// SPDX-FileCopyrightText : © 2024 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

// Package mpv implements player.Engine over libmpv's client and render
// APIs via cgo, grounded on
// original_source/src/player/mpv/mpv_player_gl.cpp. The wrapping follows
// the same opaque-handle-per-layer shape as the teacher's
// device/native.go: a single Go type owns one *C.mpv_handle and one
// *C.mpv_render_context, and every exported method is a thin, synchronous
// translation onto the corresponding mpv_* call.
package mpv

/*
#cgo pkg-config: mpv
#include <stdlib.h>
#include <mpv/client.h>
#include <mpv/render.h>
#include <mpv/render_gl.h>

extern void goMpvWakeup(uint64_t key);
extern void goMpvRedraw(uint64_t key);
extern void *goGetProcAddress(uint64_t key, char *name);

static inline void bridgeWakeup(void *key) {
	goMpvWakeup((uint64_t)(uintptr_t)key);
}

static inline void bridgeRedraw(void *key) {
	goMpvRedraw((uint64_t)(uintptr_t)key);
}

static inline void *bridgeGetProcAddress(void *key, const char *name) {
	return goGetProcAddress((uint64_t)(uintptr_t)key, (char *)name);
}

static inline void mpv_set_wakeup_cb(mpv_handle *h, void *key) {
	mpv_set_wakeup_callback(h, bridgeWakeup, key);
}

static inline void mpv_set_redraw_cb(mpv_render_context *ctx, void *key) {
	mpv_render_context_set_update_callback(ctx, bridgeRedraw, key);
}

static inline int mpv_set_flag_async(mpv_handle *h, const char *name, int value) {
	return mpv_set_property_async(h, 0, name, MPV_FORMAT_FLAG, &value);
}

static inline int mpv_set_double_async(mpv_handle *h, const char *name, double value) {
	return mpv_set_property_async(h, 0, name, MPV_FORMAT_DOUBLE, &value);
}

static inline int mpv_set_int64_async(mpv_handle *h, const char *name, int64_t value) {
	return mpv_set_property_async(h, 0, name, MPV_FORMAT_INT64, &value);
}

static inline int mpv_command_one(mpv_handle *h, const char *a) {
	const char *args[] = {a, NULL};
	return mpv_command_async(h, 0, args);
}

static inline int mpv_command_two(mpv_handle *h, const char *a, const char *b) {
	const char *args[] = {a, b, NULL};
	return mpv_command_async(h, 0, args);
}

static inline int mpv_command_three(mpv_handle *h, const char *a, const char *b, const char *c) {
	const char *args[] = {a, b, c, NULL};
	return mpv_command_async(h, 0, args);
}
*/
import "C"

import (
	"fmt"
	"log/slog"
	"strconv"
	"sync"
	"sync/atomic"
	"unsafe"

	"github.com/jellyfin/jellyfin-desktop-go/player"
)

// GLContext is the minimal surface the host's GPU context (package
// gpucontext) must expose so libmpv can resolve OpenGL entry points and
// render into a caller-owned framebuffer object.
type GLContext interface {
	GetProcAddress(name string) uintptr
}

// Engine implements player.Engine over a libmpv instance rendering into
// an OpenGL render context, mirroring MpvPlayerGL from
// original_source/src/player/mpv/mpv_player_gl.cpp.
type Engine struct {
	handle *C.mpv_handle
	render *C.mpv_render_context
	gl     GLContext
	key    uint64

	log    *slog.Logger
	events *player.EventQueue

	mu      sync.Mutex
	lastPos float64
}

var (
	registry    sync.Map // uint64 key -> *Engine
	nextKey     uint64
	needsRedraw atomic.Bool
)

// New creates an Engine bound to gl, pushing every observed mpv event
// onto events instead of invoking callbacks directly (spec section 9,
// "Cyclic object graphs": callbacks push events; the host owns the
// queue, removing back-references from the engine to the bridge).
func New(gl GLContext, events *player.EventQueue) (*Engine, error) {
	h := C.mpv_create()
	if h == nil {
		return nil, fmt.Errorf("mpv: mpv_create failed")
	}

	e := &Engine{handle: h, gl: gl, events: events, log: slog.With("component", "player.mpv")}

	setOpt := func(name, value string) {
		cn, cv := C.CString(name), C.CString(value)
		defer C.free(unsafe.Pointer(cn))
		defer C.free(unsafe.Pointer(cv))
		C.mpv_set_option_string(h, cn, cv)
	}
	setOpt("vo", "libmpv")
	setOpt("hwdec", "auto-safe")
	setOpt("keep-open", "yes")
	setOpt("terminal", "no")
	setOpt("video-sync", "audio")
	setOpt("interpolation", "no")
	setOpt("ytdl", "no")
	setOpt("audio-fallback-to-null", "yes")

	if C.mpv_initialize(h) < 0 {
		C.mpv_terminate_destroy(h)
		return nil, fmt.Errorf("mpv: mpv_initialize failed")
	}

	for _, prop := range []struct {
		name   string
		format C.mpv_format
	}{
		{"playback-time", C.MPV_FORMAT_DOUBLE},
		{"duration", C.MPV_FORMAT_DOUBLE},
		{"pause", C.MPV_FORMAT_FLAG},
		{"seeking", C.MPV_FORMAT_FLAG},
		{"paused-for-cache", C.MPV_FORMAT_FLAG},
		{"eof-reached", C.MPV_FORMAT_FLAG},
		{"demuxer-cache-state", C.MPV_FORMAT_NODE},
	} {
		cn := C.CString(prop.name)
		C.mpv_observe_property(h, 0, cn, prop.format)
		C.free(unsafe.Pointer(cn))
	}

	e.key = atomic.AddUint64(&nextKey, 1)
	registry.Store(e.key, e)
	C.mpv_set_wakeup_cb(h, unsafe.Pointer(uintptr(e.key)))

	if err := e.initRenderContext(); err != nil {
		registry.Delete(e.key)
		C.mpv_terminate_destroy(h)
		return nil, err
	}
	return e, nil
}

func (e *Engine) initRenderContext() error {
	apiType := C.CString(C.MPV_RENDER_API_TYPE_OPENGL)
	defer C.free(unsafe.Pointer(apiType))

	var glInit C.mpv_opengl_init_params
	glInit.get_proc_address = (*[0]byte)(C.bridgeGetProcAddress)
	glInit.get_proc_address_ctx = unsafe.Pointer(uintptr(e.key))

	advanced := C.int(1)
	params := []C.mpv_render_param{
		{C.MPV_RENDER_PARAM_API_TYPE, unsafe.Pointer(apiType)},
		{C.MPV_RENDER_PARAM_OPENGL_INIT_PARAMS, unsafe.Pointer(&glInit)},
		{C.MPV_RENDER_PARAM_ADVANCED_CONTROL, unsafe.Pointer(&advanced)},
		{C.MPV_RENDER_PARAM_INVALID, nil},
	}

	if C.mpv_render_context_create(&e.render, e.handle, &params[0]) < 0 {
		return fmt.Errorf("mpv: mpv_render_context_create failed")
	}
	C.mpv_set_redraw_cb(e.render, unsafe.Pointer(uintptr(e.key)))
	return nil
}

// Render draws the current video frame into the caller's framebuffer
// object, matching MpvPlayerGL::render.
func (e *Engine) Render(width, height, fbo int) {
	if e.render == nil {
		return
	}
	var fboParams C.mpv_opengl_fbo
	fboParams.fbo = C.int(fbo)
	fboParams.w = C.int(width)
	fboParams.h = C.int(height)

	flipY := C.int(1)
	params := []C.mpv_render_param{
		{C.MPV_RENDER_PARAM_OPENGL_FBO, unsafe.Pointer(&fboParams)},
		{C.MPV_RENDER_PARAM_FLIP_Y, unsafe.Pointer(&flipY)},
		{C.MPV_RENDER_PARAM_INVALID, nil},
	}
	C.mpv_render_context_render(e.render, &params[0])
}

// HasFrame reports whether a new frame is ready, matching
// MpvPlayerGL::hasFrame.
func (e *Engine) HasFrame() bool {
	if e.render == nil {
		return false
	}
	flags := C.mpv_render_context_update(e.render)
	return flags&C.MPV_RENDER_UPDATE_FRAME != 0
}

// ProcessEvents drains mpv's internal event queue and translates each
// event into a player.Event pushed onto e.events. Call once per frame
// after the wakeup callback has signalled new events are pending.
func (e *Engine) ProcessEvents() {
	if e.handle == nil {
		return
	}
	for {
		ev := C.mpv_wait_event(e.handle, 0)
		if ev.event_id == C.MPV_EVENT_NONE {
			return
		}
		e.handleEvent(ev)
	}
}

func (e *Engine) handleEvent(ev *C.mpv_event) {
	switch ev.event_id {
	case C.MPV_EVENT_PROPERTY_CHANGE:
		e.handlePropertyChange((*C.mpv_event_property)(ev.data))
	case C.MPV_EVENT_END_FILE:
		e.handleEndFile((*C.mpv_event_end_file)(ev.data))
	case C.MPV_EVENT_FILE_LOADED:
		e.events.Push(player.Event{Kind: player.EvFileLoaded})
	case C.MPV_EVENT_LOG_MESSAGE:
		msg := (*C.mpv_event_log_message)(ev.data)
		e.log.Debug("mpv log", "prefix", C.GoString(msg.prefix), "text", C.GoString(msg.text))
	}
}

func (e *Engine) handlePropertyChange(prop *C.mpv_event_property) {
	name := C.GoString(prop.name)
	switch name {
	case "playback-time":
		if prop.format == C.MPV_FORMAT_DOUBLE {
			pos := *(*C.double)(prop.data)
			e.mu.Lock()
			e.lastPos = float64(pos) * 1000
			posMs := e.lastPos
			e.mu.Unlock()
			e.events.Push(player.Event{Kind: player.EvPosition, PositionMs: posMs})
		}
	case "duration":
		if prop.format == C.MPV_FORMAT_DOUBLE {
			dur := float64(*(*C.double)(prop.data)) * 1000
			e.events.Push(player.Event{Kind: player.EvDuration, DurationMs: dur})
		}
	case "pause":
		if prop.format == C.MPV_FORMAT_FLAG {
			paused := *(*C.int)(prop.data) != 0
			e.events.Push(player.Event{Kind: player.EvPauseChanged, Paused: bool(paused)})
		}
	case "seeking":
		if prop.format == C.MPV_FORMAT_FLAG {
			seeking := *(*C.int)(prop.data) != 0
			e.events.Push(player.Event{Kind: player.EvSeekingChanged, Seeking: bool(seeking)})
		}
	case "paused-for-cache":
		if prop.format == C.MPV_FORMAT_FLAG {
			buffering := *(*C.int)(prop.data) != 0
			e.events.Push(player.Event{Kind: player.EvBuffering, Buffering: bool(buffering)})
		}
	case "eof-reached":
		if prop.format == C.MPV_FORMAT_FLAG {
			eof := *(*C.int)(prop.data) != 0
			if eof {
				e.events.Push(player.Event{Kind: player.EvFinished})
			}
		}
	case "demuxer-cache-state":
		if prop.format == C.MPV_FORMAT_NODE {
			e.events.Push(player.Event{Kind: player.EvBufferedRanges, Ranges: decodeSeekableRanges((*C.mpv_node)(prop.data))})
		}
	}
}

func (e *Engine) handleEndFile(ef *C.mpv_event_end_file) {
	switch ef.reason {
	case C.MPV_END_FILE_REASON_STOP:
		e.events.Push(player.Event{Kind: player.EvCanceled})
	case C.MPV_END_FILE_REASON_ERROR:
		msg := C.GoString(C.mpv_error_string(ef.error))
		e.events.Push(player.Event{Kind: player.EvError, Err: msg})
	}
}

// decodeSeekableRanges returns nil for every node. The "seekable-ranges"
// entry of an MPV_FORMAT_NODE_MAP is not walked, so no buffered ranges
// are reported from the demuxer cache state.
func decodeSeekableRanges(node *C.mpv_node) []player.BufferedRange {
	if node == nil || node.format != C.MPV_FORMAT_NODE_MAP {
		return nil
	}
	return nil
}

// Load implements player.Engine.
func (e *Engine) Load(url string, startMs int64) error {
	startSeconds := strconv.FormatFloat(float64(startMs)/1000.0, 'f', 3, 64)
	cn := C.CString("start")
	cv := C.CString(startSeconds)
	C.mpv_set_option_string(e.handle, cn, cv)
	C.free(unsafe.Pointer(cn))
	C.free(unsafe.Pointer(cv))

	pauseName := C.CString("pause")
	C.mpv_set_flag_async(e.handle, pauseName, 0)
	C.free(unsafe.Pointer(pauseName))

	cmd := C.CString("loadfile")
	cu := C.CString(url)
	defer C.free(unsafe.Pointer(cmd))
	defer C.free(unsafe.Pointer(cu))
	if ret := C.mpv_command_two(e.handle, cmd, cu); ret < 0 {
		return fmt.Errorf("mpv: loadfile failed: %s", C.GoString(C.mpv_error_string(ret)))
	}
	return nil
}

// Stop implements player.Engine.
func (e *Engine) Stop() {
	cmd := C.CString("stop")
	defer C.free(unsafe.Pointer(cmd))
	C.mpv_command_one(e.handle, cmd)
}

// SetPause implements player.Engine.
func (e *Engine) SetPause(paused bool) {
	name := C.CString("pause")
	defer C.free(unsafe.Pointer(name))
	v := 0
	if paused {
		v = 1
	}
	C.mpv_set_flag_async(e.handle, name, C.int(v))
}

// Seek implements player.Engine, issuing an absolute seek in seconds.
func (e *Engine) Seek(targetMs int64) {
	cmd := C.CString("seek")
	defer C.free(unsafe.Pointer(cmd))
	t := C.CString(strconv.FormatFloat(float64(targetMs)/1000.0, 'f', 3, 64))
	defer C.free(unsafe.Pointer(t))
	abs := C.CString("absolute")
	defer C.free(unsafe.Pointer(abs))
	C.mpv_command_three(e.handle, cmd, t, abs)
}

// SetVolume implements player.Engine (0-100 scale).
func (e *Engine) SetVolume(volume int) {
	name := C.CString("volume")
	defer C.free(unsafe.Pointer(name))
	C.mpv_set_double_async(e.handle, name, C.double(volume))
}

// SetMute implements player.Engine.
func (e *Engine) SetMute(muted bool) {
	name := C.CString("mute")
	defer C.free(unsafe.Pointer(name))
	v := 0
	if muted {
		v = 1
	}
	C.mpv_set_flag_async(e.handle, name, C.int(v))
}

// SetSpeed implements player.Engine.
func (e *Engine) SetSpeed(speed float64) {
	name := C.CString("speed")
	defer C.free(unsafe.Pointer(name))
	C.mpv_set_double_async(e.handle, name, C.double(speed))
}

// SetSubtitleTrack implements player.Engine; id < 0 disables subtitles.
func (e *Engine) SetSubtitleTrack(id int) {
	name := C.CString("sid")
	defer C.free(unsafe.Pointer(name))
	if id < 0 {
		off := C.CString("no")
		defer C.free(unsafe.Pointer(off))
		C.mpv_set_property_string(e.handle, name, off)
		return
	}
	C.mpv_set_int64_async(e.handle, name, C.int64_t(id))
}

// SetAudioTrack implements player.Engine; id < 0 disables audio.
func (e *Engine) SetAudioTrack(id int) {
	name := C.CString("aid")
	defer C.free(unsafe.Pointer(name))
	if id < 0 {
		off := C.CString("no")
		defer C.free(unsafe.Pointer(off))
		C.mpv_set_property_string(e.handle, name, off)
		return
	}
	C.mpv_set_int64_async(e.handle, name, C.int64_t(id))
}

// SetAudioDelay implements player.Engine.
func (e *Engine) SetAudioDelay(seconds float64) {
	name := C.CString("audio-delay")
	defer C.free(unsafe.Pointer(name))
	C.mpv_set_double_async(e.handle, name, C.double(seconds))
}

// SetNormalizationGain implements player.Engine, applying a ReplayGain
// value in dB through mpv's lavfi audio filter chain.
func (e *Engine) SetNormalizationGain(gainDB float64) {
	name := C.CString("af")
	defer C.free(unsafe.Pointer(name))
	if gainDB == 0 {
		empty := C.CString("")
		defer C.free(unsafe.Pointer(empty))
		C.mpv_set_property_string(e.handle, name, empty)
		return
	}
	filter := C.CString(fmt.Sprintf("lavfi=[volume=%.2fdB]", gainDB))
	defer C.free(unsafe.Pointer(filter))
	C.mpv_set_property_string(e.handle, name, filter)
}

// Close implements player.Engine, tearing down the render context and
// terminating the mpv core.
func (e *Engine) Close() {
	registry.Delete(e.key)
	if e.render != nil {
		C.mpv_render_context_free(e.render)
		e.render = nil
	}
	if e.handle != nil {
		C.mpv_terminate_destroy(e.handle)
		e.handle = nil
	}
}

// goMpvWakeup is mpv's wakeup callback: it fires on an arbitrary mpv
// thread to say "call mpv_wait_event again", so it only ever flips an
// atomic flag for the main loop to notice (spec section 9, "Cyclic
// object graphs").
//
//export goMpvWakeup
func goMpvWakeup(key C.uint64_t) {
	needsRedraw.Store(true)
}

//export goMpvRedraw
func goMpvRedraw(key C.uint64_t) {
	if _, ok := registry.Load(uint64(key)); ok {
		needsRedraw.Store(true)
	}
}

// NeedsProcessing reports whether any Engine has signalled new mpv
// events or a new frame since the last call, and clears the flag.
func NeedsProcessing() bool {
	return needsRedraw.Swap(false)
}

// goGetProcAddress resolves an OpenGL entry point through the GLContext
// bound at New time, matching gl_get_proc_address's dlsym/EGL/WGL
// dispatch in the C++ original (collapsed here since package gpucontext
// already abstracts that per-platform distinction).
//
//export goGetProcAddress
func goGetProcAddress(key C.uint64_t, name *C.char) unsafe.Pointer {
	v, ok := registry.Load(uint64(key))
	if !ok {
		return nil
	}
	e := v.(*Engine)
	if e.gl == nil {
		return nil
	}
	return unsafe.Pointer(e.gl.GetProcAddress(C.GoString(name)))
}
