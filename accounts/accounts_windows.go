// (c) Siemens AG 2024
//
// SPDX-License-Identifier: MIT

//go:build windows

package accounts

// systemUsers doesn't know how to enumerate accounts on this platform, so
// [Users] falls back to the login name.
func systemUsers() []string { return nil }

func systemGroups() []string { return nil }
