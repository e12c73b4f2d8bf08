// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package fileattrs

import "golang.org/x/exp/slices"

// compactNil removes all nil pointers from the specified slice, keeping the
// order of the remaining elements, and sets the then unused trailing elements
// to nil so that the garbage collector can reclaim what they referenced.
func compactNil[S ~[]*E, E any](s S) S {
	i := slices.Index(s, nil)
	if i == -1 {
		return s
	}
	for j := i + 1; j < len(s); j++ {
		if v := s[j]; v != nil {
			s[i] = v
			i++
		}
	}
	clear(s[i:])
	return s[:i]
}
