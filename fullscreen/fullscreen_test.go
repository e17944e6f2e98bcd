// SPDX-FileCopyrightText : © 2024 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

package fullscreen

import "testing"

func TestWMExitOnlyHonouredForWMSource(t *testing.T) {
	var tr Tracker
	tr.EnterWindowManager()
	if !tr.IsFullscreen() {
		t.Fatal("expected fullscreen after EnterWindowManager")
	}
	if exited := tr.RequestWebExit(); exited {
		t.Fatal("web exit should be ignored when WM owns fullscreen")
	}
	if !tr.IsFullscreen() {
		t.Fatal("window should remain fullscreen")
	}
	if exited := tr.RequestWindowManagerExit(); !exited {
		t.Fatal("WM exit should succeed when WM owns fullscreen")
	}
	if tr.IsFullscreen() {
		t.Fatal("window should have exited fullscreen")
	}
}

func TestWebExitOnlyHonouredForWebSource(t *testing.T) {
	var tr Tracker
	tr.EnterWeb()
	if exited := tr.RequestWindowManagerExit(); exited {
		t.Fatal("WM exit should be ignored when web owns fullscreen")
	}
	if exited := tr.RequestWebExit(); !exited {
		t.Fatal("web exit should succeed when web owns fullscreen")
	}
	if tr.IsFullscreen() {
		t.Fatal("window should have exited fullscreen")
	}
}

// TestScenario5 exercises the spec section 8 end-to-end scenario: F11
// then document.exitFullscreen() leaves the window fullscreen.
func TestScenario5(t *testing.T) {
	var tr Tracker
	tr.EnterWindowManager()
	if tr.CurrentSource() != WindowManager {
		t.Fatalf("CurrentSource() = %v, want WindowManager", tr.CurrentSource())
	}
	tr.RequestWebExit()
	if !tr.IsFullscreen() {
		t.Fatal("fullscreen exit from web should be ignored; source is WM")
	}
}
