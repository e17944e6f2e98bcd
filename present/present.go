// SPDX-FileCopyrightText : © 2024 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

// Package present holds the small, dependency-free data types shared by
// the compositor, the video surface and the frame loop: the paint double
// buffer, texture geometry, and buffer identity for shared-texture
// imports. Kept separate from package compositor so gpucontext backends
// can depend on the shapes without importing the compositor's GPU code.
package present

import (
	"sync"
	"sync/atomic"
)

// Size is a pixel dimension pair, used for both logical and physical
// sizes depending on context (see package hidpi for the distinction).
type Size struct {
	W, H int
}

// DoubleBuffer is the CPU-side BGRA8 paint double buffer described in
// spec section 3. The web engine's paint callback is the only writer; a
// render step calling Read observes the buffer the writer last
// committed before flipping writeIndex.
//
// Invariant: the writer never blocks the reader beyond the brief
// mu critical section used to mark a buffer dirty and flip the
// index (spec section 5).
type DoubleBuffer struct {
	mu         sync.Mutex // guards dirty[] and the flip itself
	buffers    [2][]byte
	size       [2]Size
	dirty      [2]bool
	writeIndex atomic.Uint32
}

// WriteBuffer returns the buffer the paint callback should write into,
// resizing it if necessary. Call Commit after writing to mark it dirty
// and flip the index.
func (d *DoubleBuffer) WriteBuffer(w, h int) []byte {
	i := d.writeIndex.Load() % 2
	need := w * h * 4
	if len(d.buffers[i]) != need {
		d.buffers[i] = make([]byte, need)
	}
	d.size[i] = Size{w, h}
	return d.buffers[i]
}

// Commit marks the just-written buffer dirty and flips writeIndex so the
// reader picks it up on its next read. The critical section is limited
// to the atomic flip plus the dirty flag; no copying happens here.
func (d *DoubleBuffer) Commit() {
	i := d.writeIndex.Load() % 2
	d.mu.Lock()
	d.dirty[i] = true
	d.mu.Unlock()
	d.writeIndex.Add(1)
}

// Read returns the buffer not currently being written, its size, and
// whether it has unread content. Clears the dirty flag on return.
func (d *DoubleBuffer) Read() (buf []byte, size Size, ok bool) {
	i := (d.writeIndex.Load() + 1) % 2
	d.mu.Lock()
	ok = d.dirty[i]
	d.dirty[i] = false
	d.mu.Unlock()
	return d.buffers[i], d.size[i], ok
}

// BufferIdentity is the stable key by which the compositor recognises a
// repeated incoming shared-texture handle (spec section 3): inode+device
// on Linux DMA-BUF, surface id on macOS IOSurface.
type BufferIdentity struct {
	Device uint64
	Inode  uint64
}

// TextureRequest is a queued shared-texture import (spec 4.C
// queue_shared_texture): a handle plus geometry and the buffer identity
// used to detect repeat imports.
type TextureRequest struct {
	FD       int // duplicated file descriptor (Linux); unused on macOS
	Identity BufferIdentity
	Width    int
	Height   int
	Layout   uint32 // platform-specific modifier/layout token
}
