// (c) Siemens AG 2024
//
// SPDX-License-Identifier: MIT

package accounts

import (
	"github.com/siemens/fileattrs/accounts/source"
	"github.com/thediveo/go-plugger/v3"
)

// IDNames maps numeric user and group IDs to their account names, as read
// once from the account databases. When the same ID is registered by multiple
// account sources, the first source wins, as with [UserName] and [GroupName].
//
// IDNames objects are immutable after creation and thus can be used from
// multiple goroutines.
type IDNames struct {
	users  map[uint32]string
	groups map[uint32]string
}

// NewIDNames reads the user and group account databases of the current root
// filesystem once and returns the resulting ID to name mappings.
func NewIDNames() *IDNames {
	return IDNamesIn("/")
}

// IDNamesIn reads the user and group account databases in the specified root
// filesystem once and returns the resulting ID to name mappings. Account
// sources that cannot be read are simply skipped.
func IDNamesIn(root string) *IDNames {
	n := &IDNames{
		users:  map[uint32]string{},
		groups: map[uint32]string{},
	}
	for _, src := range plugger.Group[source.Source]().PluginsSymbols() {
		users, err := src.S.Users(root)
		if err != nil {
			logSourceError(src.Plugin, "user", root, err)
		}
		for _, u := range users {
			if _, ok := n.users[uint32(u.Uid)]; !ok {
				n.users[uint32(u.Uid)] = u.Name
			}
		}
		groups, err := src.S.Groups(root)
		if err != nil {
			logSourceError(src.Plugin, "group", root, err)
		}
		for _, g := range groups {
			if _, ok := n.groups[uint32(g.Gid)]; !ok {
				n.groups[uint32(g.Gid)] = g.Name
			}
		}
	}
	return n
}

// UserName returns the name of the user account with the specified uid, and
// true if found.
func (n *IDNames) UserName(uid uint32) (string, bool) {
	name, ok := n.users[uid]
	return name, ok
}

// GroupName returns the name of the group account with the specified gid, and
// true if found.
func (n *IDNames) GroupName(gid uint32) (string, bool) {
	name, ok := n.groups[gid]
	return name, ok
}
