/*
Package fileattrs provides file attribute records as used in directory
listings, together with ordering such records by their owners.

# Quick Start

Reading the attributes of a single file, with owner and group names instead of
numeric IDs:

	attrs, err := fileattrs.Of("/etc/hostname", fileattrs.IDString)

Listing a directory with the attributes of all its entries:

	lister := fileattrs.New(fileattrs.WithIDFormat(fileattrs.IDString))
	entries, err := lister.Directory(ctx, "/etc")

The Lister is safe to be used in concurrent listings; the maximum number of
parallel attribute reads applies to all listings of the same Lister.

# Attribute Records

An attribute [Record] is an ordered list of attribute fields, with the first
field being the owner of a file. [Less] orders records by their owners, and
[SortRecords] and [SortByOwner] sort whole lists of records and directory
entries, respectively.

Owners are compared as Go compares strings: byte-wise, thus case-sensitive and
without any locale-dependent collation.

# Errors

Ordering records that are not suitable for ordering fails with an error
wrapping [ErrWrongType]. Calling the operations of the “dired” command that
don't take arguments with arguments fails with an error wrapping
[ErrWrongArity].

# System Accounts

The names of the user and group accounts of a system are listed by package
[github.com/siemens/fileattrs/accounts].
*/
package fileattrs
