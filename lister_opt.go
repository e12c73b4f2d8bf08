// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package fileattrs

import "regexp"

// NewOption represents options to New when creating a new Lister.
type NewOption func(*Lister)

// WithWorkers sets the maximum number of parallel attribute reads on the same
// Lister. A maximum number of zero or less is taken as GOMAXPROCS instead.
// Please note that this maximum applies to all concurrent [Lister.Directory]
// calls, and not to individual [Lister.Directory] calls separately.
func WithWorkers(num int) NewOption {
	return func(l *Lister) {
		l.numworkers = num
	}
}

// WithIDFormat sets the format of owner and group IDs in the attributes
// returned by a Lister; it defaults to [IDInteger].
func WithIDFormat(f IDFormat) NewOption {
	return func(l *Lister) {
		l.idformat = f
	}
}

// ListOption represents options to an individual [Lister.Directory] call.
type ListOption func(*listing)

// listing collects the options of an individual directory listing.
type listing struct {
	match  *regexp.Regexp
	full   bool
	nosort bool
}

// WithMatch only lists directory entries with names matching the specified
// regular expression.
func WithMatch(re *regexp.Regexp) ListOption {
	return func(l *listing) {
		l.match = re
	}
}

// WithFullNames returns absolute entry names, instead of names relative to the
// listed directory.
func WithFullNames() ListOption {
	return func(l *listing) {
		l.full = true
	}
}

// WithoutSorting returns the directory entries in the order the filesystem
// hands them out, instead of sorted by name.
func WithoutSorting() ListOption {
	return func(l *listing) {
		l.nosort = true
	}
}
