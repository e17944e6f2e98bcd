// SPDX-FileCopyrightText : © 2024 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

// paint.go wires the web engine's OnPaint/OnAcceleratedPaint callbacks
// (original_source's cef/cef_client.cpp, around GetViewRect) into a
// compositor.Compositor: the software path copies the engine's shared
// memory bitmap into the compositor's staging buffer, the accelerated
// path hands a dmabuf fd to QueueSharedTexture, and on the software path
// popups are alpha-blended onto the main view (spec section 4.H).
package webengine

import (
	"log/slog"
	"sync"

	"github.com/jellyfin/jellyfin-desktop-go/compositor"
	"github.com/jellyfin/jellyfin-desktop-go/present"
)

// PaintSink is the destination a PaintTarget delivers frames to. Package
// compositor.Compositor satisfies it directly.
type PaintSink interface {
	UpdateOverlay(buf []byte, w, h int) bool
	GetStagingBuffer(w, h int) []byte
	QueueSharedTexture(req present.TextureRequest)
}

// popupFrame holds the most recently painted popup bitmap and the
// screen-space rectangle it occupies within the view, BGRA8 like the
// engine's own OnPaint buffers.
type popupFrame struct {
	visible    bool
	x, y, w, h int
	pixels     []byte
}

// PaintTarget receives one browser instance's paint callbacks and
// forwards composited frames to sink. One PaintTarget exists per Role.
type PaintTarget struct {
	role Role
	sink PaintSink
	log  *slog.Logger

	mu        sync.Mutex
	viewW     int
	viewH     int
	popup     popupFrame
	scratch   []byte // unused: OnPaint blends in the sink's staging buffer
}

// NewPaintTarget creates a PaintTarget delivering role's frames to sink.
func NewPaintTarget(role Role, sink PaintSink) *PaintTarget {
	return &PaintTarget{role: role, sink: sink, log: slog.With("component", "webengine.paint", "role", role)}
}

// OnPopupShow records whether the popup layer (an autocomplete list, a
// context menu, ...) is currently visible. CEF fires this independently
// of OnPaint; an invisible popup's last bitmap is simply not blended.
func (t *PaintTarget) OnPopupShow(visible bool) {
	t.mu.Lock()
	t.popup.visible = visible
	t.mu.Unlock()
}

// OnPopupSize records the popup's screen-space rectangle, delivered
// before its first OnPaint call for the popup view.
func (t *PaintTarget) OnPopupSize(x, y, w, h int) {
	t.mu.Lock()
	t.popup.x, t.popup.y, t.popup.w, t.popup.h = x, y, w, h
	t.mu.Unlock()
}

// OnPaintPopup stores pixels (BGRA8, w*h*4 bytes) as the popup layer's
// latest bitmap, to be blended onto the next main-view OnPaint.
func (t *PaintTarget) OnPaintPopup(pixels []byte, w, h int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if len(pixels) != w*h*4 {
		t.log.Warn("popup paint buffer size mismatch", "want", w*h*4, "got", len(pixels))
		return
	}
	buf := make([]byte, len(pixels))
	copy(buf, pixels)
	t.popup.pixels = buf
	t.popup.w, t.popup.h = w, h
}

// OnPaint delivers the engine's software-rendered main view bitmap
// (BGRA8, w*h*4 bytes) by copying it into the sink's staging buffer.
// When a popup is visible, the popup is then alpha-blended onto that
// staging copy.
func (t *PaintTarget) OnPaint(pixels []byte, w, h int) {
	if len(pixels) != w*h*4 {
		t.log.Warn("main paint buffer size mismatch", "want", w*h*4, "got", len(pixels))
		return
	}

	t.mu.Lock()
	t.viewW, t.viewH = w, h
	popup := t.popup
	t.mu.Unlock()

	dst := t.sink.GetStagingBuffer(w, h)
	if dst == nil {
		return
	}

	if !popup.visible || popup.pixels == nil {
		copy(dst, pixels)
		return
	}

	copy(dst, pixels)
	blendPopup(dst, w, h, popup)
}

// blendPopup composites popup onto dst (w*h*4 BGRA8, premultiplied by
// the engine already) with the popup's own per-pixel alpha, clipped to
// dst's bounds.
func blendPopup(dst []byte, w, h int, popup popupFrame) {
	if popup.w == 0 || popup.h == 0 {
		return
	}
	for row := 0; row < popup.h; row++ {
		dy := popup.y + row
		if dy < 0 || dy >= h {
			continue
		}
		for col := 0; col < popup.w; col++ {
			dx := popup.x + col
			if dx < 0 || dx >= w {
				continue
			}
			si := (row*popup.w + col) * 4
			di := (dy*w + dx) * 4
			srcA := float32(popup.pixels[si+3]) / 255
			if srcA <= 0 {
				continue
			}
			inv := 1 - srcA
			for c := 0; c < 4; c++ {
				dst[di+c] = byte(float32(popup.pixels[si+c]) + float32(dst[di+c])*inv)
			}
		}
	}
}

// OnAcceleratedPaint delivers a GPU-shared frame as a dmabuf file
// descriptor. The fd is duplicated before queuing so the engine's own
// close of its copy can never race the compositor's import (spec
// section 4.H, "thread-safe FD lifetime": every path either imports the
// descriptor or closes it exactly once).
func (t *PaintTarget) OnAcceleratedPaint(fd int, identity present.BufferIdentity, w, h int, layout uint32) {
	dup, err := dupFD(fd)
	if err != nil {
		t.log.Warn("dup shared texture fd failed", "err", err)
		return
	}
	t.sink.QueueSharedTexture(present.TextureRequest{
		FD:       dup,
		Identity: identity,
		Width:    w,
		Height:   h,
		Layout:   layout,
	})
}

var _ PaintSink = (*compositor.Compositor)(nil)
