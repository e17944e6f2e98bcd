// SPDX-FileCopyrightText : © 2024 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

package inputstack

// TouchToWindow translates normalised touch coordinates in [0,1] to
// window pixel coordinates using the current window size (spec 4.F).
func TouchToWindow(normX, normY float64, windowW, windowH int) (x, y int) {
	x = int(normX * float64(windowW))
	y = int(normY * float64(windowH))
	return x, y
}
