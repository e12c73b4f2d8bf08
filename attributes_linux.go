// (c) Siemens AG 2024
//
// SPDX-License-Identifier: MIT

package fileattrs

import (
	"io/fs"
	"os"
	"time"

	"golang.org/x/sys/unix"
)

// stat fills in the attributes of the file at a.Path, without following a
// final symbolic link. We directly go for lstat(2), as os.Lstat hides away the
// nanosecond access and status change times, as well as the device number,
// behind an opaque Sys() value.
func (a *Attributes) stat() error {
	var st unix.Stat_t
	if err := unix.Lstat(a.Path, &st); err != nil {
		return &fs.PathError{Op: "lstat", Path: a.Path, Err: err}
	}
	mode := uint32(st.Mode)
	switch mode & sIFMT {
	case sIFDIR:
		a.IsDir = true
	case sIFLNK:
		a.IsSymlink = true
		target, err := os.Readlink(a.Path)
		if err != nil {
			return err
		}
		a.LinkTarget = target
	}
	a.Links = uint64(st.Nlink)
	a.Owner.Num = st.Uid
	a.Group.Num = st.Gid
	a.AccessTime = time.Unix(st.Atim.Unix())
	a.ModificationTime = time.Unix(st.Mtim.Unix())
	a.StatusChangeTime = time.Unix(st.Ctim.Unix())
	a.Size = st.Size
	a.Modes = modeString(mode)
	a.Inode = st.Ino
	a.Device = uint64(st.Dev) //nolint:unconvert // not uint64 on all architectures
	return nil
}
