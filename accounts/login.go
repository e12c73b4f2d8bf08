// (c) Siemens AG 2024
//
// SPDX-License-Identifier: MIT

package accounts

import (
	"os"
	"os/user"
	"strconv"
	"strings"
)

// loginNameEnvVars are consulted in this order when the current user cannot be
// looked up in the account databases.
var loginNameEnvVars = []string{"LOGNAME", "USER", "USERNAME"}

// LoginName returns the real login name of the current process. If the real
// user ID of this process cannot be looked up, LoginName falls back to the
// well-known environment variables LOGNAME, USER, and USERNAME, in this order.
// As a last resort, it returns the numeric real user ID as text.
//
// On Windows, any “DOMAIN\” prefix is stripped from the account name.
func LoginName() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return stripDomain(u.Username)
	}
	for _, envvar := range loginNameEnvVars {
		if name := os.Getenv(envvar); name != "" {
			return name
		}
	}
	return strconv.Itoa(os.Getuid())
}

func stripDomain(name string) string {
	if idx := strings.LastIndexByte(name, '\\'); idx >= 0 {
		return name[idx+1:]
	}
	return name
}
