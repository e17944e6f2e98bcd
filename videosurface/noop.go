// SPDX-FileCopyrightText : © 2024 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

//go:build !linux && !darwin

package videosurface

var _ Surface = (*NoSurface)(nil)

// NoSurface is the placeholder built on every platform other than Linux
// and macOS, Windows among them: per spec section 4.B, those
// platforms have no independent video surface — the video engine
// composites into the main window via OpenGL instead, through the same
// compositor.Compositor used for the UI (spec section 4.C).
type NoSurface struct{}

// NewNoSurface returns the no-op Surface used on platforms without an
// independent video presentation path.
func NewNoSurface() *NoSurface { return &NoSurface{} }

func (*NoSurface) Resize(w, h int) error                    { return nil }
func (*NoSurface) SetLogicalRect(x, y, w, h int) error       { return nil }
func (*NoSurface) EnableHDR(params HDRParams) error          { return errNoHDR("no independent video surface on this platform") }
func (*NoSurface) Close() error                              { return nil }
