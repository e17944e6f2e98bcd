// SPDX-FileCopyrightText : © 2024 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

// Package compositor implements the UI compositor from spec section 4.C:
// one instance per pixel producer (main web UI, overlay web UI), each
// owning a texture, a software staging path or a ring of imported
// shared-texture slots, and the composite draw call. Grounded on
// render/vulkan.go's vulkanImage/vulkanTexture allocate-dispose pattern,
// generalized from a 3D-scene texture cache into this package's
// single-texture-plus-import-ring shape.
package compositor

import (
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sys/unix"

	"github.com/jellyfin/jellyfin-desktop-go/present"
)

// minRingSlots matches original_source/src/vulkan_compositor.h's
// DMABUF_BUFFER_COUNT: the ring must exceed the web engine's own
// in-flight buffer pool so an import is never forced to evict a slot
// still owned by the engine.
const minRingSlots = 6

// resizeCooldown is the window after a resize during which queued
// shared-texture imports are discarded as stale (spec 4.C import_queued,
// boundary behaviour: frames from before a resize are dropped).
const resizeCooldown = 150 * time.Millisecond

// GPUImageHost performs the GPU-side work the ring/staging bookkeeping in
// this package schedules. Package gpucontext implements one per backend
// (Vulkan image import via vkImportMemoryFdKHR-equivalent calls, GL
// texture upload via glTexImage2D, ...); this package never touches a
// graphics API directly.
type GPUImageHost interface {
	// CreateTexture (re)allocates the compositor's own texture at (w,h).
	CreateTexture(w, h int) (handle any, err error)
	DestroyTexture(handle any)
	// UploadTexture copies pixels (BGRA8, w*h*4 bytes) into handle.
	UploadTexture(handle any, pixels []byte, w, h int)

	// ImportDMABUF imports req's file descriptor into a new GPU image.
	// On success the host has taken its own reference; the caller closes
	// req.FD regardless of outcome.
	ImportDMABUF(req present.TextureRequest) (handle any, err error)
	ReleaseImage(handle any)

	// Draw issues the full-screen-triangle draw call compositing handle
	// at alpha into a (targetW, targetH) render target.
	Draw(handle any, targetW, targetH int, alpha float32)
}

type ringSlot struct {
	occupied bool
	identity present.BufferIdentity
	width    int
	height   int
	handle   any
}

// Compositor is one of the two identical compositors from spec 4.C (main
// UI, overlay UI).
type Compositor struct {
	host GPUImageHost
	log  *slog.Logger

	mu sync.Mutex

	width, height int
	textureHandle any
	hasContent    bool

	staging        present.DoubleBuffer
	stagingPending bool

	ring           []ringSlot
	pendingImports []present.TextureRequest

	resizedAt time.Time
}

// New returns a Compositor with a shared-texture ring of at least
// minRingSlots slots regardless of the requested size.
func New(host GPUImageHost, ringSlots int, name string) *Compositor {
	if ringSlots < minRingSlots {
		ringSlots = minRingSlots
	}
	return &Compositor{
		host: host,
		ring: make([]ringSlot, ringSlots),
		log:  slog.With("component", "compositor", "name", name),
	}
}

func (c *Compositor) sizeMatches(w, h int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return w == c.width && h == c.height
}

// UpdateOverlay implements update_overlay: copies buf into the staging
// buffer if (w,h) matches the compositor's current size, otherwise drops
// the frame (testable properties 1 and 2).
func (c *Compositor) UpdateOverlay(buf []byte, w, h int) bool {
	if !c.sizeMatches(w, h) {
		return false
	}
	dst := c.staging.WriteBuffer(w, h)
	copy(dst, buf)
	c.mu.Lock()
	c.stagingPending = true
	c.mu.Unlock()
	return true
}

// GetStagingBuffer implements get_staging_buffer: a writable pointer for
// a paint callback to memcpy into directly, or nil if (w,h) doesn't
// match the compositor's current size.
func (c *Compositor) GetStagingBuffer(w, h int) []byte {
	if !c.sizeMatches(w, h) {
		return nil
	}
	buf := c.staging.WriteBuffer(w, h)
	c.mu.Lock()
	c.stagingPending = true
	c.mu.Unlock()
	return buf
}

// QueueSharedTexture implements queue_shared_texture: enqueues an import
// request consumed by ImportQueued on the render thread.
func (c *Compositor) QueueSharedTexture(req present.TextureRequest) {
	c.mu.Lock()
	c.pendingImports = append(c.pendingImports, req)
	c.mu.Unlock()
}

// ImportQueued implements import_queued. Must be called from the render
// thread. Requests arriving within resizeCooldown of the last resize, or
// whose dimensions no longer match the compositor's current size, are
// discarded and their file descriptor closed (testable property 5,
// boundary behaviour on stale shared-texture frames).
func (c *Compositor) ImportQueued() {
	c.mu.Lock()
	reqs := c.pendingImports
	c.pendingImports = nil
	deadline := c.resizedAt.Add(resizeCooldown)
	w, h := c.width, c.height
	c.mu.Unlock()

	inCooldown := time.Now().Before(deadline)
	for _, req := range reqs {
		if inCooldown || req.Width != w || req.Height != h {
			closeFD(req.FD)
			continue
		}
		c.importOne(req)
	}
}

func (c *Compositor) importOne(req present.TextureRequest) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.ring {
		s := &c.ring[i]
		if s.occupied && s.identity == req.Identity {
			// Same buffer identity already imported: the descriptor
			// just points the sampler at the existing slot, no new
			// allocation (testable property 5).
			closeFD(req.FD)
			c.textureHandle = s.handle
			c.hasContent = true
			return
		}
	}

	for i := range c.ring {
		s := &c.ring[i]
		if s.occupied {
			continue
		}
		handle, err := c.host.ImportDMABUF(req)
		closeFD(req.FD)
		if err != nil {
			c.log.Warn("import shared texture failed", "err", err)
			return
		}
		*s = ringSlot{occupied: true, identity: req.Identity, width: req.Width, height: req.Height, handle: handle}
		c.textureHandle = handle
		c.hasContent = true
		return
	}

	c.log.Warn("shared-texture ring exhausted, dropping frame")
	closeFD(req.FD)
}

// FlushOverlay implements flush_overlay: commits the staging double
// buffer, which marks the frame last written dirty and flips the write
// index so the paint callback's next WriteBuffer call gets the other
// slot, then uploads that frame to the GPU texture.
func (c *Compositor) FlushOverlay() {
	c.mu.Lock()
	pending := c.stagingPending
	c.stagingPending = false
	texture := c.textureHandle
	c.mu.Unlock()
	if !pending || texture == nil {
		return
	}

	c.staging.Commit()
	buf, size, ok := c.staging.Read()
	if !ok {
		return
	}
	c.host.UploadTexture(texture, buf, size.W, size.H)
	c.mu.Lock()
	c.hasContent = true
	c.mu.Unlock()
}

// Composite implements composite(w, h, alpha): skips entirely if alpha is
// negligible or there is no content to draw, otherwise issues the draw
// call into a (w,h) render target (testable property 4).
func (c *Compositor) Composite(w, h int, alpha float32) {
	if alpha < 0.01 {
		return
	}
	c.mu.Lock()
	hasContent := c.hasContent
	handle := c.textureHandle
	c.mu.Unlock()
	if !hasContent || handle == nil {
		return
	}
	c.host.Draw(handle, w, h, alpha)
}

// Resize implements resize(w, h): releases every import and the backing
// texture, reallocates at the new size, and records the resize timestamp
// the import cooldown measures against. The caller is responsible for
// any GPU device-wait-idle required before calling this (spec 4.A).
func (c *Compositor) Resize(w, h int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.ring {
		s := &c.ring[i]
		if s.occupied {
			c.host.ReleaseImage(s.handle)
			*s = ringSlot{}
		}
	}
	if c.textureHandle != nil {
		c.host.DestroyTexture(c.textureHandle)
	}

	handle, err := c.host.CreateTexture(w, h)
	if err != nil {
		c.log.Error("recreate compositor texture failed", "err", err)
		c.textureHandle = nil
	} else {
		c.textureHandle = handle
	}
	c.width, c.height = w, h
	c.hasContent = false
	c.stagingPending = false
	c.resizedAt = time.Now()
}

func closeFD(fd int) {
	if fd < 0 {
		return
	}
	_ = unix.Close(fd)
}
