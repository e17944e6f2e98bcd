// SPDX-FileCopyrightText : © 2024 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

package inputstack

import (
	"testing"
	"time"
)

// TestMultiClickRollover checks testable property 9.
func TestMultiClickRollover(t *testing.T) {
	var c ClickTracker
	t0 := time.Unix(0, 0)

	if got := c.Click(t0, 10, 10, ButtonLeft); got != 1 {
		t.Fatalf("first click = %d, want 1", got)
	}
	if got := c.Click(t0.Add(100*time.Millisecond), 12, 11, ButtonLeft); got != 2 {
		t.Fatalf("second click = %d, want 2", got)
	}
	if got := c.Click(t0.Add(200*time.Millisecond), 11, 12, ButtonLeft); got != 3 {
		t.Fatalf("third click = %d, want 3", got)
	}
	if got := c.Click(t0.Add(300*time.Millisecond), 10, 10, ButtonLeft); got != 1 {
		t.Fatalf("fourth click = %d, want 1 (rolled over)", got)
	}
}

func TestMultiClickResetsOnTimeout(t *testing.T) {
	var c ClickTracker
	t0 := time.Unix(0, 0)
	c.Click(t0, 10, 10, ButtonLeft)
	got := c.Click(t0.Add(MultiClickTime+time.Millisecond), 10, 10, ButtonLeft)
	if got != 1 {
		t.Fatalf("click after timeout = %d, want 1", got)
	}
}

func TestMultiClickResetsOnDistance(t *testing.T) {
	var c ClickTracker
	t0 := time.Unix(0, 0)
	c.Click(t0, 0, 0, ButtonLeft)
	got := c.Click(t0.Add(10*time.Millisecond), 100, 100, ButtonLeft)
	if got != 1 {
		t.Fatalf("click far away = %d, want 1", got)
	}
}

func TestMultiClickResetsOnDifferentButton(t *testing.T) {
	var c ClickTracker
	t0 := time.Unix(0, 0)
	c.Click(t0, 10, 10, ButtonLeft)
	got := c.Click(t0.Add(10*time.Millisecond), 10, 10, ButtonRight)
	if got != 1 {
		t.Fatalf("click different button = %d, want 1", got)
	}
}
