// (c) Siemens AG 2024
//
// SPDX-License-Identifier: MIT

package all

import (
	_ "github.com/siemens/fileattrs/accounts/source/extrausers" // read libnss-extrausers databases
	_ "github.com/siemens/fileattrs/accounts/source/files"      // read /etc/passwd and /etc/group
)
