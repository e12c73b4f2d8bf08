// (c) Siemens AG 2024
//
// SPDX-License-Identifier: MIT

//go:build !linux

package fileattrs

import (
	"io/fs"
	"os"
)

// stat fills in the attributes of the file at a.Path, without following a
// final symbolic link, using only what the portable os.Lstat reports. Owner
// and group, inode and device numbers are all zero, and the access and status
// change times are the same as the modification time.
func (a *Attributes) stat() error {
	fi, err := os.Lstat(a.Path)
	if err != nil {
		return err
	}
	fm := fi.Mode()
	switch {
	case fm.IsDir():
		a.IsDir = true
	case fm&fs.ModeSymlink != 0:
		a.IsSymlink = true
		target, err := os.Readlink(a.Path)
		if err != nil {
			return err
		}
		a.LinkTarget = target
	}
	a.Links = 1
	a.ModificationTime = fi.ModTime()
	a.AccessTime = a.ModificationTime
	a.StatusChangeTime = a.ModificationTime
	a.Size = fi.Size()
	a.Modes = modeString(statMode(fm))
	return nil
}

// statMode returns the st_mode equivalent of the specified Go file mode.
func statMode(fm fs.FileMode) uint32 {
	mode := uint32(fm.Perm())
	switch {
	case fm.IsDir():
		mode |= sIFDIR
	case fm&fs.ModeSymlink != 0:
		mode |= sIFLNK
	case fm&fs.ModeNamedPipe != 0:
		mode |= sIFIFO
	case fm&fs.ModeSocket != 0:
		mode |= sIFSOCK
	case fm&fs.ModeCharDevice != 0:
		mode |= sIFCHR
	case fm&fs.ModeDevice != 0:
		mode |= sIFBLK
	case fm.IsRegular():
		mode |= sIFREG
	}
	if fm&fs.ModeSetuid != 0 {
		mode |= sISUID
	}
	if fm&fs.ModeSetgid != 0 {
		mode |= sISGID
	}
	if fm&fs.ModeSticky != 0 {
		mode |= sISVTX
	}
	return mode
}
