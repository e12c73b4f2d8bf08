// (c) Siemens AG 2024
//
// SPDX-License-Identifier: MIT

package accounts

import (
	"errors"
	"fmt"
	"io/fs"
	"strconv"
	"strings"

	"github.com/siemens/fileattrs/accounts/source"
	"github.com/thediveo/go-plugger/v3"
	"github.com/thediveo/lxkns/log"
	"github.com/thediveo/lxkns/model"

	_ "github.com/siemens/fileattrs/accounts/source/all" // pull in account source plugins
)

// ErrNoAccountDatabase is returned (wrapped) by [UsersIn] and [GroupsIn] when
// none of the account databases could be read in a particular root.
var ErrNoAccountDatabase = errors.New("no account database found")

// Users returns the names of the user accounts currently registered with the
// system. The returned list is never empty: when no user account can be found,
// the list consists of only the real login name of this process, as returned
// by [LoginName]. On single-user platforms, the list is always just the login
// name.
func Users() []string {
	names := systemUsers()
	if len(names) == 0 {
		log.Debugf("no user accounts found, falling back to login name")
		return []string{LoginName()}
	}
	return names
}

// Groups returns the names of the group accounts currently registered with the
// system. Other than [Users], the list might be empty, such as on single-user
// platforms.
func Groups() []string {
	return systemGroups()
}

// UsersIn returns the names of the user accounts registered in the specified
// root filesystem. Other than [Users], there is no fallback to the login name
// of the current process, as the current process most probably doesn't belong
// to the accounts of a different root.
func UsersIn(root string) ([]string, error) {
	var names []string
	found := false
	for _, src := range plugger.Group[source.Source]().PluginsSymbols() {
		users, err := src.S.Users(root)
		if err != nil {
			logSourceError(src.Plugin, "user", root, err)
			continue
		}
		found = true
		for _, u := range users {
			names = append(names, u.Name)
		}
	}
	if !found {
		return nil, fmt.Errorf("cannot list users in %s, reason: %w",
			rootName(root), ErrNoAccountDatabase)
	}
	return names, nil
}

// GroupsIn returns the names of the group accounts registered in the specified
// root filesystem.
func GroupsIn(root string) ([]string, error) {
	var names []string
	found := false
	for _, src := range plugger.Group[source.Source]().PluginsSymbols() {
		groups, err := src.S.Groups(root)
		if err != nil {
			logSourceError(src.Plugin, "group", root, err)
			continue
		}
		found = true
		for _, g := range groups {
			names = append(names, g.Name)
		}
	}
	if !found {
		return nil, fmt.Errorf("cannot list groups in %s, reason: %w",
			rootName(root), ErrNoAccountDatabase)
	}
	return names, nil
}

// UsersOfProcess returns the names of the user accounts as seen from inside the
// mount namespace of the process with the specified PID. The PID must be valid
// in the PID namespace of the proc filesystem mounted in the current mount
// namespace.
func UsersOfProcess(pid model.PIDType) ([]string, error) {
	return UsersIn(wormhole(pid))
}

// GroupsOfProcess returns the names of the group accounts as seen from inside
// the mount namespace of the process with the specified PID.
func GroupsOfProcess(pid model.PIDType) ([]string, error) {
	return GroupsIn(wormhole(pid))
}

// UserName returns the name of the user account with the specified uid, and
// true if it could be found; otherwise, it returns an empty name and false.
func UserName(uid uint32) (string, bool) {
	return userNameIn("/", uid)
}

// userNameIn returns the name of the user account with the specified uid in
// the specified root filesystem. The first account source registering the uid
// wins.
func userNameIn(root string, uid uint32) (string, bool) {
	for _, src := range plugger.Group[source.Source]().Symbols() {
		users, err := src.Users(root)
		if err != nil {
			continue
		}
		for _, u := range users {
			if u.Uid == int(uid) {
				return u.Name, true
			}
		}
	}
	return "", false
}

// GroupName returns the name of the group account with the specified gid, and
// true if it could be found; otherwise, it returns an empty name and false.
func GroupName(gid uint32) (string, bool) {
	return groupNameIn("/", gid)
}

func groupNameIn(root string, gid uint32) (string, bool) {
	for _, src := range plugger.Group[source.Source]().Symbols() {
		groups, err := src.Groups(root)
		if err != nil {
			continue
		}
		for _, g := range groups {
			if g.Gid == int(gid) {
				return g.Name, true
			}
		}
	}
	return "", false
}

// wormhole returns the path into the mount namespace of the process with the
// specified PID.
func wormhole(pid model.PIDType) string {
	return "/proc/" + strconv.FormatUint(uint64(pid), 10) + "/root"
}

func rootName(root string) string {
	if strings.TrimRight(root, "/") == "" {
		return "/"
	}
	return root
}

// logSourceError logs failing account sources; missing databases are
// perfectly normal, so we don't make a fuss about them.
func logSourceError(plugin string, kind string, root string, err error) {
	if errors.Is(err, fs.ErrNotExist) {
		log.Debugf("%s account source '%s' not present in %s",
			kind, plugin, rootName(root))
		return
	}
	log.Warnf("%s account source '%s' failed in %s, reason: %s",
		kind, plugin, rootName(root), err.Error())
}
