// (c) Siemens AG 2024
//
// SPDX-License-Identifier: MIT

package extrausers

import (
	"github.com/moby/sys/user"
	"github.com/siemens/fileattrs/accounts/source"
	"github.com/thediveo/go-plugger/v3"
)

// Locations of the additional account databases maintained by
// [libnss-extrausers], such as on Ubuntu Core systems where /etc is read-only.
//
// [libnss-extrausers]: https://github.com/snapcore/libnss-extrausers
const (
	PasswdPath = "/var/lib/extrausers/passwd"
	GroupPath  = "/var/lib/extrausers/group"
)

// Register this extrausers account plugin.
func init() {
	plugger.Group[source.Source]().Register(
		&ExtraUsers{}, plugger.WithPlugin("extrausers"))
}

// ExtraUsers reads the account databases of the “extrausers” NSS service. On
// most systems these databases don't exist, which is fine.
type ExtraUsers struct{}

func (e *ExtraUsers) Users(root string) ([]user.User, error) {
	return source.PasswdUsers(root, PasswdPath)
}

func (e *ExtraUsers) Groups(root string) ([]user.Group, error) {
	return source.GroupFileGroups(root, GroupPath)
}
