// (c) Siemens AG 2024
//
// SPDX-License-Identifier: MIT

//go:build !windows

package accounts

// systemUsers returns the user names from all account sources in the current
// mount namespace.
func systemUsers() []string {
	names, _ := UsersIn("/")
	return names
}

// systemGroups returns the group names from all account sources in the current
// mount namespace.
func systemGroups() []string {
	names, _ := GroupsIn("/")
	return names
}
