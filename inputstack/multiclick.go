// SPDX-FileCopyrightText : © 2024 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

package inputstack

import "time"

// Multi-click thresholds from spec section 4.F / original_source/src/main.cpp.
const (
	MultiClickTime     = 500 * time.Millisecond
	MultiClickDistance = 4 // pixels
)

// Button identifies a pointer button.
type Button int

const (
	ButtonLeft Button = iota
	ButtonRight
	ButtonMiddle
)

// ClickTracker derives the multi-click count from (last_time, last_pos,
// last_button), rolling 1->2->3->1 (spec section 4.F, testable property 9).
type ClickTracker struct {
	lastTime   time.Time
	lastX      int
	lastY      int
	lastButton Button
	count      int
	has        bool
}

// Click registers a button-down event at (x,y) and returns the click
// count to report (1, 2, or 3, then rolling back to 1).
func (c *ClickTracker) Click(now time.Time, x, y int, button Button) int {
	if c.has &&
		button == c.lastButton &&
		now.Sub(c.lastTime) <= MultiClickTime &&
		sqDist(x, y, c.lastX, c.lastY) <= MultiClickDistance*MultiClickDistance {
		c.count++
		if c.count > 3 {
			c.count = 1
		}
	} else {
		c.count = 1
	}
	c.lastTime, c.lastX, c.lastY, c.lastButton, c.has = now, x, y, button, true
	return c.count
}

func sqDist(x1, y1, x2, y2 int) int {
	dx, dy := x1-x2, y1-y2
	return dx*dx + dy*dy
}
