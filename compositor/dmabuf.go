// SPDX-FileCopyrightText : © 2024 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

//go:build linux

package compositor

import (
	"golang.org/x/sys/unix"

	"github.com/jellyfin/jellyfin-desktop-go/present"
)

// IdentifyFD derives a present.BufferIdentity from an open file
// descriptor's inode and device number, the stable identity by which
// ImportQueued recognises a repeated shared-texture handle. The caller
// must have already duplicated fd at the paint-callback site (spec
// section 9, "thread-safe FD lifetime") before this is called on a
// different thread.
func IdentifyFD(fd int) (present.BufferIdentity, error) {
	var stat unix.Stat_t
	if err := unix.Fstat(fd, &stat); err != nil {
		return present.BufferIdentity{}, err
	}
	return present.BufferIdentity{Device: uint64(stat.Dev), Inode: uint64(stat.Ino)}, nil
}
