// SPDX-FileCopyrightText : © 2024 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

//go:build linux || darwin

package webengine

import "golang.org/x/sys/unix"

// dupFD duplicates fd so the caller owns an independent descriptor the
// engine's own close can never invalidate out from under a queued
// import.
func dupFD(fd int) (int, error) {
	return unix.Dup(fd)
}
