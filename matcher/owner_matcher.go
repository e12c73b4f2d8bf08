// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package matcher

import (
	"fmt"

	"github.com/siemens/fileattrs"

	g "github.com/onsi/gomega"
	"github.com/onsi/gomega/types"
)

// HaveOwner succeeds if ACTUAL is a fileattrs.Record, *fileattrs.Attributes,
// or *fileattrs.DirEntry with the specified owner. The owner can be specified
// either as a name string, a numeric uint32 user ID, or alternatively as a
// GomegaMatcher, such as HavePrefix and MatchRegexp.
func HaveOwner(owner any) types.GomegaMatcher {
	var ownerMatcher types.GomegaMatcher
	switch owner := owner.(type) {
	case string, uint32:
		ownerMatcher = g.Equal(owner)
	case types.GomegaMatcher:
		ownerMatcher = owner
	default:
		panic("owner argument must be string, uint32, or GomegaMatcher")
	}
	return g.WithTransform(func(actual any) (any, error) {
		switch actual := actual.(type) {
		case fileattrs.Record:
			if len(actual) == 0 {
				return nil, fmt.Errorf("HaveOwner expects a non-empty fileattrs.Record")
			}
			return actual[0], nil
		case *fileattrs.Attributes:
			return actual.Owner.Field(), nil
		case *fileattrs.DirEntry:
			return actual.Attributes.Owner.Field(), nil
		}
		return nil, fmt.Errorf("HaveOwner expects a fileattrs.Record, *fileattrs.Attributes, or *fileattrs.DirEntry, but got %T", actual)
	}, ownerMatcher)
}

// HaveEntryName succeeds if ACTUAL is a *fileattrs.DirEntry with the specified
// name, or a name matching the specified GomegaMatcher.
func HaveEntryName(name any) types.GomegaMatcher {
	var nameMatcher types.GomegaMatcher
	switch name := name.(type) {
	case string:
		nameMatcher = g.Equal(name)
	case types.GomegaMatcher:
		nameMatcher = name
	default:
		panic("name argument must be string or GomegaMatcher")
	}
	return g.WithTransform(func(actual any) (string, error) {
		if entry, ok := actual.(*fileattrs.DirEntry); ok {
			return entry.Name, nil
		}
		return "", fmt.Errorf("HaveEntryName expects a *fileattrs.DirEntry, but got %T", actual)
	}, nameMatcher)
}
