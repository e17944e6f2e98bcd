// SPDX-FileCopyrightText : © 2024 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

package main

import (
	"testing"
)

func TestNativeSurfaceCloseIsNilSafeOnEmptyValue(t *testing.T) {
	s := &nativeSurface{}
	if err := s.Close(); err != nil {
		t.Fatalf("Close() on an empty surface = %v, want nil", err)
	}
}
