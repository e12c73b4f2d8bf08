// (c) Siemens AG 2024
//
// SPDX-License-Identifier: MIT

package files

import (
	"github.com/moby/sys/user"
	"github.com/siemens/fileattrs/accounts/source"
	"github.com/thediveo/go-plugger/v3"
)

// Well-known locations of the local account databases; see also passwd(5) and
// group(5).
const (
	PasswdPath = "/etc/passwd"
	GroupPath  = "/etc/group"
)

// Register this local account files plugin. This statically ensures that the
// Source interface is fully implemented. As with NSS' usual “passwd: files
// extrausers” configuration, the local files always come first.
func init() {
	plugger.Group[source.Source]().Register(
		&Files{}, plugger.WithPlugin("files"), plugger.WithPlacement("<"))
}

// Files reads the local account databases in /etc, as consulted by the “files”
// NSS service.
type Files struct{}

// Users returns the user accounts from /etc/passwd.
func (f *Files) Users(root string) ([]user.User, error) {
	return source.PasswdUsers(root, PasswdPath)
}

// Groups returns the group accounts from /etc/group.
func (f *Files) Groups(root string) ([]user.Group, error) {
	return source.GroupFileGroups(root, GroupPath)
}
