// SPDX-FileCopyrightText : © 2024 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

package webengine

import (
	"testing"

	"github.com/jellyfin/jellyfin-desktop-go/present"
)

type fakeSink struct {
	w, h      int
	staging   []byte
	queued    []present.TextureRequest
	dropNext  bool
}

func (f *fakeSink) UpdateOverlay(buf []byte, w, h int) bool {
	return false
}

func (f *fakeSink) GetStagingBuffer(w, h int) []byte {
	if f.dropNext || (f.w != 0 && (w != f.w || h != f.h)) {
		return nil
	}
	f.staging = make([]byte, w*h*4)
	return f.staging
}

func (f *fakeSink) QueueSharedTexture(req present.TextureRequest) {
	f.queued = append(f.queued, req)
}

func solidBuffer(w, h int, r, g, b, a byte) []byte {
	buf := make([]byte, w*h*4)
	for i := 0; i < w*h; i++ {
		buf[i*4+0] = b
		buf[i*4+1] = g
		buf[i*4+2] = r
		buf[i*4+3] = a
	}
	return buf
}

func TestPaintTargetPassesThroughWithoutPopup(t *testing.T) {
	sink := &fakeSink{w: 4, h: 4}
	pt := NewPaintTarget(RoleMain, sink)

	src := solidBuffer(4, 4, 10, 20, 30, 255)
	pt.OnPaint(src, 4, 4)

	if len(sink.staging) != len(src) {
		t.Fatalf("staging length = %d, want %d", len(sink.staging), len(src))
	}
	for i := range src {
		if sink.staging[i] != src[i] {
			t.Fatalf("byte %d: got %d want %d", i, sink.staging[i], src[i])
		}
	}
}

func TestPaintTargetBlendsVisiblePopup(t *testing.T) {
	sink := &fakeSink{w: 4, h: 4}
	pt := NewPaintTarget(RoleMain, sink)

	pt.OnPopupShow(true)
	pt.OnPopupSize(1, 1, 2, 2)
	popup := solidBuffer(2, 2, 255, 0, 0, 255)
	pt.OnPaintPopup(popup, 2, 2)

	main := solidBuffer(4, 4, 0, 0, 0, 255)
	pt.OnPaint(main, 4, 4)

	// pixel (1,1) is inside the popup rect and should now read the
	// popup's fully opaque red instead of the main view's black.
	idx := (1*4 + 1) * 4
	if sink.staging[idx+2] != 255 || sink.staging[idx+0] != 0 {
		t.Fatalf("popup pixel not blended: %v", sink.staging[idx:idx+4])
	}
	// pixel (0,0) is outside the popup rect and must be untouched.
	if sink.staging[0] != 0 {
		t.Fatalf("pixel outside popup rect was modified: %v", sink.staging[0:4])
	}
}

func TestPaintTargetIgnoresHiddenPopup(t *testing.T) {
	sink := &fakeSink{w: 2, h: 2}
	pt := NewPaintTarget(RoleMain, sink)

	pt.OnPopupShow(false)
	pt.OnPopupSize(0, 0, 2, 2)
	pt.OnPaintPopup(solidBuffer(2, 2, 255, 255, 255, 255), 2, 2)

	main := solidBuffer(2, 2, 0, 0, 0, 255)
	pt.OnPaint(main, 2, 2)

	for i := range sink.staging {
		if sink.staging[i] != main[i] {
			t.Fatalf("hidden popup altered output at byte %d", i)
		}
	}
}

func TestPaintTargetDropsMismatchedSize(t *testing.T) {
	sink := &fakeSink{w: 4, h: 4}
	pt := NewPaintTarget(RoleMain, sink)

	// buffer size doesn't match w*h*4: must not panic, must be a no-op.
	pt.OnPaint(make([]byte, 3), 4, 4)
	if sink.staging != nil {
		t.Fatal("mismatched buffer should never reach the sink")
	}
}

func TestPaintTargetDropsAcceleratedFrameWhenDupFails(t *testing.T) {
	sink := &fakeSink{}
	pt := NewPaintTarget(RoleMain, sink)

	pt.OnAcceleratedPaint(-1, present.BufferIdentity{Device: 1, Inode: 2}, 100, 200, 0x1)

	if len(sink.queued) != 0 {
		// fd -1 can't be duplicated; nothing should be queued.
		t.Fatalf("expected dup failure on fd -1 to drop the frame, got %d queued", len(sink.queued))
	}
}
