// SPDX-FileCopyrightText : © 2024 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

//go:build windows

package webengine

import "fmt"

// dupFD never succeeds on Windows: there is no dmabuf file descriptor to
// duplicate, the engine's D3D11/ANGLE interop path hands back an
// already-mapped shared texture handle instead (see gpucontext's
// glwindows_host.go ImportDMABUF). OnAcceleratedPaint is unreachable on
// this platform as a result.
func dupFD(fd int) (int, error) {
	return -1, fmt.Errorf("webengine: no dmabuf fd to duplicate on windows")
}
