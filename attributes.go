// (c) Siemens AG 2024
//
// SPDX-License-Identifier: MIT

package fileattrs

import (
	"fmt"
	"strconv"
	"time"

	"github.com/siemens/fileattrs/accounts"
)

// IDFormat specifies how the owner and group of a file are to be reported.
type IDFormat int

const (
	// IDInteger reports the numeric user and group IDs.
	IDInteger IDFormat = iota
	// IDString reports the user and group names, falling back to the numeric
	// IDs for IDs that cannot be looked up in the account databases.
	IDString
)

// ParseIDFormat returns the IDFormat for the textual representations
// “integer” and “string”, as well as the empty string for [IDInteger].
func ParseIDFormat(s string) (IDFormat, error) {
	switch s {
	case "", "integer":
		return IDInteger, nil
	case "string":
		return IDString, nil
	}
	return IDInteger, fmt.Errorf("%w: invalid ID format %q", ErrWrongType, s)
}

// String returns the textual representation of this ID format.
func (f IDFormat) String() string {
	if f == IDString {
		return "string"
	}
	return "integer"
}

// ID is a user or group ID, optionally with its name.
type ID struct {
	Num  uint32 // numeric user/group ID.
	Name string // name, if requested and found; otherwise empty.
}

// Field returns the ID as an attribute record field, that is, as the name
// string if known, otherwise as the numeric ID.
func (id ID) Field() any {
	if id.Name != "" {
		return id.Name
	}
	return id.Num
}

// String returns the name of the ID if known, otherwise the numeric ID in
// decimal.
func (id ID) String() string {
	if id.Name != "" {
		return id.Name
	}
	return strconv.FormatUint(uint64(id.Num), 10)
}

// Attributes describes a single file (of whatever type) without following a
// final symbolic link.
type Attributes struct {
	Path             string    // path as specified when reading the attributes.
	IsDir            bool      // directory?
	IsSymlink        bool      // symbolic link?
	LinkTarget       string    // target of a symbolic link, as is.
	Links            uint64    // number of hard links.
	Owner            ID        // owning user.
	Group            ID        // owning group.
	AccessTime       time.Time // last access.
	ModificationTime time.Time // last change of the file contents.
	StatusChangeTime time.Time // last change of the file attributes.
	Size             int64     // size in bytes.
	Modes            string    // file modes in “ls -l” format, such as “drwxr-xr-x”.
	Inode            uint64    // inode number.
	Device           uint64    // filesystem device number.
}

// Of returns the attributes of the file at the specified path. If the path
// refers to a symbolic link, Of returns the attributes of the link itself
// instead of the file the link points to.
func Of(path string, idformat IDFormat) (*Attributes, error) {
	var names *accounts.IDNames
	if idformat == IDString {
		names = accounts.NewIDNames()
	}
	return of(path, names)
}

// of returns the attributes of the file at the specified path, looking up the
// owner and group names in the specified names mapping, unless nil.
func of(path string, names *accounts.IDNames) (*Attributes, error) {
	a := &Attributes{Path: path}
	if err := a.stat(); err != nil {
		return nil, fmt.Errorf("cannot read attributes of %q, reason: %w", path, err)
	}
	if names != nil {
		// Don't fail when a name cannot be looked up; many files in container
		// images are owned by IDs without any account.
		a.Owner.Name, _ = names.UserName(a.Owner.Num)
		a.Group.Name, _ = names.GroupName(a.Group.Num)
	}
	return a, nil
}

// Type returns the file type as an attribute record field: true for a
// directory, the link target string for a symbolic link, and nil otherwise.
func (a *Attributes) Type() any {
	switch {
	case a.IsSymlink:
		return a.LinkTarget
	case a.IsDir:
		return true
	}
	return nil
}

// Record returns the attributes as a [Record] suitable for ordering by owner
// using [Less]. The record fields are:
//
//   - 0: owner, as name string or numeric uid (see [ID.Field]).
//   - 1: type, as returned by [Attributes.Type].
//   - 2: number of hard links.
//   - 3: group, as name string or numeric gid.
//   - 4: last access time.
//   - 5: last modification time.
//   - 6: last status change time.
//   - 7: size in bytes.
//   - 8: modes string.
//   - 9: inode number.
//   - 10: filesystem device number.
//
// Please note that only records with owner names can be ordered; thus, the
// attributes need to have been read using [IDString].
func (a *Attributes) Record() Record {
	return Record{
		a.Owner.Field(),
		a.Type(),
		a.Links,
		a.Group.Field(),
		a.AccessTime,
		a.ModificationTime,
		a.StatusChangeTime,
		a.Size,
		a.Modes,
		a.Inode,
		a.Device,
	}
}
