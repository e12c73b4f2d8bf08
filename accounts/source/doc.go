/*
Package source defines the plugin interface between the account listing
functions of package [github.com/siemens/fileattrs/accounts] and the account
database plugins.

The sub-package “all” pulls in all account source plugins supported
out-of-the-box of this module. The “all” package in turn is imported by the
“accounts” package to ensure that the full support is always included.

The individual database-specific plugins are then implemented in the other
sub-packages: for instance, the “files” and “extrausers” sub-packages.
*/
package source
