// SPDX-FileCopyrightText : © 2024 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

// Package webengine hosts the two embedded web-engine instances (the
// overlay's settings/server-picker UI and the main Jellyfin web client),
// modeled on CEF's process model (original_source's cef_app.cpp/
// cef_client.cpp) the same way package player/mpv models libmpv: a cgo
// host around a genuine out-of-process-style engine, never a
// reimplementation of it (spec section 1, section 4.H).
//
// Following the teacher's device/native.go shape — one interface
// (Engine) implemented once per process role, with the platform-specific
// native-window handle threaded through opaquely — this package never
// assumes a particular windowing toolkit beyond the raw handle its
// platform glue file expects.
package webengine

import (
	"log/slog"
	"sync"
	"sync/atomic"
)

// Role distinguishes the two browser instances the frame loop drives
// every frame (spec section 2: "Lifecycle of the two web engine
// instances").
type Role int

const (
	RoleOverlay Role = iota
	RoleMain
)

func (r Role) String() string {
	if r == RoleOverlay {
		return "overlay"
	}
	return "main"
}

// Generation is a monotonically increasing tag attached to every
// BrowserHandle, the same generation-checked opaque-handle discipline
// spec section 9's "cyclic object graph" note asks for and that the
// teacher's nrefs already follows for its own native references
// (device/native.go): a handle outliving its browser is detected instead
// of dereferencing a dangling CEF pointer.
type Generation uint32

// BrowserHandle is an opaque reference to one CEF browser instance.
// Never dereferenced directly outside the cgo glue files; comparisons and
// map keys use it as a plain value.
type BrowserHandle struct {
	id  uint32
	gen Generation
}

// Host owns both browser instances' lifecycle and its message-pump
// scheduling state (spec section 4.H: "receives scheduled-work
// notifications from the web engine and calls its message-loop entry").
type Host struct {
	log *slog.Logger

	mu       sync.Mutex
	browsers map[Role]BrowserHandle
	nextID   uint32
	gen      Generation

	workPending atomic.Bool
	workDelayMs atomic.Int64

	scheme *SchemeTable
	ipc    *IPCRouter
}

// NewHost creates a Host with scheme serving resources and ipc routing
// browser-process messages to the player bridge and settings layer (spec
// section 4.H).
func NewHost(scheme *SchemeTable, ipc *IPCRouter) *Host {
	return &Host{
		log:      slog.With("component", "webengine"),
		browsers: make(map[Role]BrowserHandle),
		scheme:   scheme,
		ipc:      ipc,
	}
}

// RegisterBrowser records a newly created browser instance for role,
// invalidating whatever handle previously occupied that role (a browser
// recreated after a crash gets a new generation, so stale callers holding
// the old handle fail closed instead of touching the new browser).
func (h *Host) RegisterBrowser(role Role) BrowserHandle {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.nextID++
	h.gen++
	handle := BrowserHandle{id: h.nextID, gen: h.gen}
	h.browsers[role] = handle
	h.log.Info("browser registered", "role", role, "id", handle.id, "generation", handle.gen)
	return handle
}

// Browser returns role's current handle and whether one is registered.
func (h *Host) Browser(role Role) (BrowserHandle, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	handle, ok := h.browsers[role]
	return handle, ok
}

// Valid reports whether handle is still the live handle for its role,
// i.e. the browser it names hasn't been torn down and replaced.
func (h *Host) Valid(role Role, handle BrowserHandle) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	current, ok := h.browsers[role]
	return ok && current == handle
}

// ScheduleMessagePumpWork is the OnScheduleMessagePumpWork callback
// (cef_app.cpp): the engine calls this from an arbitrary thread whenever
// CefDoMessageLoopWork needs to run, either immediately (delayMs == 0) or
// after delayMs. The frame loop polls NeedsWork once per iteration
// instead of running its own timer.
func (h *Host) ScheduleMessagePumpWork(delayMs int64) {
	h.workDelayMs.Store(delayMs)
	h.workPending.Store(true)
}

// NeedsWork reports and clears whether the engine requested message-loop
// work, mirroring cef_app.h's NeedsWork()/GetWorkDelay() pair.
func (h *Host) NeedsWork() (needed bool, delayMs int64) {
	return h.workPending.Swap(false), h.workDelayMs.Load()
}

// Shutdown tears down both browser instances. Safe to call more than
// once.
func (h *Host) Shutdown() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for role := range h.browsers {
		delete(h.browsers, role)
	}
	h.log.Info("webengine host shut down")
}
