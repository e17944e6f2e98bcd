// SPDX-FileCopyrightText : © 2024 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

package compositor

import (
	"testing"

	"github.com/jellyfin/jellyfin-desktop-go/present"
)

type fakeHost struct {
	textures  int
	uploads   int
	imports   int
	released  int
	destroyed int
	draws     int
	nextImportErr error
}

func (f *fakeHost) CreateTexture(w, h int) (any, error) {
	f.textures++
	return f.textures, nil
}
func (f *fakeHost) DestroyTexture(any) { f.destroyed++ }
func (f *fakeHost) UploadTexture(any, []byte, int, int) { f.uploads++ }
func (f *fakeHost) ImportDMABUF(req present.TextureRequest) (any, error) {
	if f.nextImportErr != nil {
		err := f.nextImportErr
		f.nextImportErr = nil
		return nil, err
	}
	f.imports++
	return f.imports, nil
}
func (f *fakeHost) ReleaseImage(any)                     { f.released++ }
func (f *fakeHost) Draw(any, int, int, float32)          { f.draws++ }

// TestUpdateOverlayDropsOnSizeMismatch covers testable properties 1/2.
func TestUpdateOverlayDropsOnSizeMismatch(t *testing.T) {
	host := &fakeHost{}
	c := New(host, 0, "test")
	c.Resize(100, 50)

	if ok := c.UpdateOverlay(make([]byte, 100*50*4), 100, 50); !ok {
		t.Fatal("expected matching-size update to be accepted")
	}
	if ok := c.UpdateOverlay(make([]byte, 10*10*4), 10, 10); ok {
		t.Fatal("expected mismatched-size update to be dropped")
	}
}

func TestFlushOverlayUploadsOnlyWhenPending(t *testing.T) {
	host := &fakeHost{}
	c := New(host, 0, "test")
	c.Resize(4, 4)

	c.FlushOverlay()
	if host.uploads != 0 {
		t.Fatal("expected no upload without a pending frame")
	}

	c.UpdateOverlay(make([]byte, 4*4*4), 4, 4)
	c.FlushOverlay()
	if host.uploads != 1 {
		t.Fatalf("uploads = %d, want 1", host.uploads)
	}

	c.FlushOverlay()
	if host.uploads != 1 {
		t.Fatal("expected no re-upload once staging has been drained")
	}
}

// TestResizeReleasesRingAndResetsContent covers testable property 4.
func TestResizeReleasesRingAndResetsContent(t *testing.T) {
	host := &fakeHost{}
	c := New(host, 0, "test")
	c.Resize(100, 100)
	c.UpdateOverlay(make([]byte, 100*100*4), 100, 100)
	c.FlushOverlay()

	c.Composite(100, 100, 1.0)
	if host.draws != 1 {
		t.Fatalf("draws = %d, want 1 before resize", host.draws)
	}

	c.Resize(200, 150)
	c.Composite(200, 150, 1.0)
	if host.draws != 1 {
		t.Fatal("expected composite to skip: has_content is false right after resize")
	}
}

// TestImportIdempotentOnBufferIdentity covers testable property 5.
func TestImportIdempotentOnBufferIdentity(t *testing.T) {
	host := &fakeHost{}
	c := New(host, 0, "test")
	c.Resize(640, 480)

	id := present.BufferIdentity{Device: 1, Inode: 42}
	req := present.TextureRequest{FD: -1, Identity: id, Width: 640, Height: 480}
	c.pendingImports = append(c.pendingImports, req, req)
	c.resizedAt = c.resizedAt.Add(-1000 * resizeCooldown) // force past cooldown

	c.ImportQueued()
	if host.imports != 1 {
		t.Fatalf("imports = %d, want 1 for two identical-identity requests in one batch", host.imports)
	}
}

func TestCompositeSkipsBelowAlphaThreshold(t *testing.T) {
	host := &fakeHost{}
	c := New(host, 0, "test")
	c.Resize(10, 10)
	c.UpdateOverlay(make([]byte, 10*10*4), 10, 10)
	c.FlushOverlay()

	c.Composite(10, 10, 0.005)
	if host.draws != 0 {
		t.Fatal("expected composite to skip when alpha < 0.01")
	}
}

func TestRingHasMinimumSixSlots(t *testing.T) {
	host := &fakeHost{}
	c := New(host, 1, "test")
	if len(c.ring) < minRingSlots {
		t.Fatalf("ring length = %d, want at least %d", len(c.ring), minRingSlots)
	}
}
