// SPDX-FileCopyrightText : © 2024 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

package overlay

import (
	"testing"
	"time"
)

func TestColdStartNoServerStartsShowing(t *testing.T) {
	m := New(false)
	if m.State() != Showing {
		t.Fatalf("State() = %v, want Showing", m.State())
	}
	if m.ClearColor() != ClearShowing {
		t.Fatalf("ClearColor() = %v, want %v", m.ClearColor(), ClearShowing)
	}
	if !m.IsOverlayFocused() {
		t.Fatal("overlay should hold focus while Showing")
	}
}

func TestColdStartSavedServerStartsWaiting(t *testing.T) {
	m := New(true)
	if m.State() != Waiting {
		t.Fatalf("State() = %v, want Waiting", m.State())
	}
}

func TestFadeSchedule(t *testing.T) {
	m := New(false)
	t0 := time.Unix(0, 0)
	m.ReportServerURL(t0)
	if m.State() != Waiting {
		t.Fatalf("State() = %v, want Waiting", m.State())
	}

	// Before fade_start: still Waiting, focus still on overlay.
	tr := m.Tick(t0.Add(FadeDelay - time.Millisecond))
	if tr.EnteredFading {
		t.Fatal("entered fading too early")
	}
	if !m.IsOverlayFocused() {
		t.Fatal("overlay should still hold focus")
	}

	// At fade_start: Waiting -> Fading, focus transfers.
	tr = m.Tick(t0.Add(FadeDelay))
	if !tr.EnteredFading {
		t.Fatal("expected EnteredFading transition")
	}
	if m.IsOverlayFocused() {
		t.Fatal("focus should have transferred to main UI")
	}
	if m.ClearColor() != ClearFaded {
		t.Fatalf("ClearColor() = %v, want %v", m.ClearColor(), ClearFaded)
	}

	// Halfway through the fade, alpha should be roughly 0.5.
	half := t0.Add(FadeDelay).Add(FadeDuration / 2)
	m.Tick(half)
	if a := m.Alpha(); a < 0.4 || a > 0.6 {
		t.Fatalf("Alpha() at midpoint = %v, want ~0.5", a)
	}

	// At fade_start+FADE_DURATION: Fading -> Hidden, alpha 0.
	tr = m.Tick(t0.Add(FadeDelay).Add(FadeDuration))
	if !tr.EnteredHidden {
		t.Fatal("expected EnteredHidden transition")
	}
	if m.Alpha() != 0 {
		t.Fatalf("Alpha() = %v, want 0", m.Alpha())
	}
}

// TestAlphaNonIncreasing checks testable property 3: overlay_alpha is a
// non-increasing function of time while state in {Fading, Hidden}.
func TestAlphaNonIncreasing(t *testing.T) {
	m := New(false)
	t0 := time.Unix(0, 0)
	m.ReportServerURL(t0)
	m.Tick(t0.Add(FadeDelay)) // enter Fading

	prev := m.Alpha()
	for i := 1; i <= 10; i++ {
		m.Tick(t0.Add(FadeDelay).Add(time.Duration(i) * FadeDuration / 10))
		cur := m.Alpha()
		if cur > prev {
			t.Fatalf("alpha increased: %v -> %v", prev, cur)
		}
		prev = cur
	}
}
