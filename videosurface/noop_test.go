// SPDX-FileCopyrightText : © 2024 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

//go:build !linux && !darwin

package videosurface

import "testing"

func TestNoSurfaceAcceptsAllCallsAndRejectsHDR(t *testing.T) {
	s := NewNoSurface()
	if err := s.Resize(1920, 1080); err != nil {
		t.Errorf("Resize: %v", err)
	}
	if err := s.SetLogicalRect(0, 0, 1920, 1080); err != nil {
		t.Errorf("SetLogicalRect: %v", err)
	}
	if err := s.EnableHDR(DefaultHDRParams()); err == nil {
		t.Error("EnableHDR: expected an error on a no-op surface")
	}
	if err := s.Close(); err != nil {
		t.Errorf("Close: %v", err)
	}
}
