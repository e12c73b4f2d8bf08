// (c) Siemens AG 2024
//
// SPDX-License-Identifier: MIT

package fileattrs

// File type and mode bits as found in the st_mode field; see also inode(7).
// We define them here ourselves, as not all platforms have them.
const (
	sIFMT   = 0o170000
	sIFSOCK = 0o140000
	sIFLNK  = 0o120000
	sIFREG  = 0o100000
	sIFBLK  = 0o060000
	sIFDIR  = 0o040000
	sIFCHR  = 0o020000
	sIFIFO  = 0o010000
	sISUID  = 0o4000
	sISGID  = 0o2000
	sISVTX  = 0o1000
)

// modeString returns the ten letters “ls -l” representation of the specified
// st_mode value, such as “drwxr-xr-x”. Set-user-ID and set-group-ID show as
// “s” in place of the “x” of the owner and group, or as “S” when the
// corresponding execute bit is unset. Likewise, the sticky bit shows as “t” or
// “T” in place of the others' “x”.
func modeString(mode uint32) string {
	var b [10]byte
	switch mode & sIFMT {
	case sIFREG:
		b[0] = '-'
	case sIFDIR:
		b[0] = 'd'
	case sIFLNK:
		b[0] = 'l'
	case sIFCHR:
		b[0] = 'c'
	case sIFBLK:
		b[0] = 'b'
	case sIFIFO:
		b[0] = 'p'
	case sIFSOCK:
		b[0] = 's'
	default:
		b[0] = '?'
	}
	rwx(b[1:4], mode>>6, mode&sISUID != 0, 's')
	rwx(b[4:7], mode>>3, mode&sISGID != 0, 's')
	rwx(b[7:10], mode, mode&sISVTX != 0, 't')
	return string(b[:])
}

// rwx fills in the three permission letters for the lowest three bits of perm.
func rwx(b []byte, perm uint32, special bool, specialch byte) {
	b[0], b[1], b[2] = '-', '-', '-'
	if perm&4 != 0 {
		b[0] = 'r'
	}
	if perm&2 != 0 {
		b[1] = 'w'
	}
	exec := perm&1 != 0
	switch {
	case special && exec:
		b[2] = specialch
	case special:
		b[2] = specialch - 'a' + 'A'
	case exec:
		b[2] = 'x'
	}
}
