/*
Package accounts lists the user and group accounts known to the operating
system, as needed for directory listings showing owner and group names.

# Quick Start

	names := accounts.Users()

[Users] never returns an empty list: if no account database can be read, or
on single-user platforms such as Windows, it returns the real login name of
the current process as the only element.

# Account Sources

On multi-user platforms the accounts are read from account database plugins
(see package [github.com/siemens/fileattrs/accounts/source]). The plugins
supported out-of-the-box are:

  - “files”: /etc/passwd and /etc/group,
  - “extrausers”: the [libnss-extrausers] databases in /var/lib/extrausers.

The names from all plugins get concatenated in plugin order; they are
neither deduplicated nor sorted.

# Other Roots

[UsersIn] and [GroupsIn] read the account databases of a different root
filesystem, such as an unpacked container image. [UsersOfProcess] and
[GroupsOfProcess] take the “wormhole” /proc/[PID]/root into the mount
namespace of a process, such as a container's initial process. Symbolic links
inside such roots are evaluated relative to the root.

[libnss-extrausers]: https://github.com/snapcore/libnss-extrausers
*/
package accounts
