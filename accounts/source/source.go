// (c) Siemens AG 2024
//
// SPDX-License-Identifier: MIT

package source

import (
	"fmt"
	"strings"

	"github.com/moby/sys/user"
	"github.com/thediveo/procfsroot"
)

// Source allows specialized account database plugins to interface with the
// generic account listing mechanism, by reading the user and group accounts
// from a particular database.
type Source interface {
	// Users returns the user accounts from this database, in database order.
	// All database paths are to be taken relative to the specified root
	// directory, where "/" is the root of the current mount namespace. If the
	// database doesn't exist in this root, the error returned must wrap
	// [fs.ErrNotExist].
	Users(root string) ([]user.User, error)

	// Groups returns the group accounts from this database, in database order,
	// with the same root and error semantics as for Users.
	Groups(root string) ([]user.Group, error)
}

// Resolve returns the path of a database file inside the specified root
// directory, with all symbolic links evaluated inside root, so that absolute
// symbolic links don't escape into the filesystem view of the caller. This is
// especially important when root is a “wormhole” of the form
// “/proc/[PID]/root” into the mount namespace of another process. For the
// root of the current mount namespace the path is returned as is.
func Resolve(root string, path string) (string, error) {
	root = strings.TrimRight(root, "/")
	if root == "" {
		return path, nil
	}
	resolved, err := procfsroot.EvalSymlinks(path, root, procfsroot.EvalFullPath)
	if err != nil {
		return "", fmt.Errorf("cannot resolve %s in context of %s, reason: %w",
			path, root, err)
	}
	return root + resolved, nil
}

// PasswdUsers returns the user accounts from the passwd(5)-formatted file at
// path, relative to root.
func PasswdUsers(root string, path string) ([]user.User, error) {
	resolved, err := Resolve(root, path)
	if err != nil {
		return nil, err
	}
	users, err := user.ParsePasswdFile(resolved)
	if err != nil {
		return nil, fmt.Errorf("cannot read user accounts from %s, reason: %w",
			resolved, err)
	}
	return users, nil
}

// GroupFileGroups returns the group accounts from the group(5)-formatted file
// at path, relative to root.
func GroupFileGroups(root string, path string) ([]user.Group, error) {
	resolved, err := Resolve(root, path)
	if err != nil {
		return nil, err
	}
	groups, err := user.ParseGroupFile(resolved)
	if err != nil {
		return nil, fmt.Errorf("cannot read group accounts from %s, reason: %w",
			resolved, err)
	}
	return groups, nil
}
