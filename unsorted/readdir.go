// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package unsorted

import "os"

// ReadDirNames reads the specified directory, returning only the names of its
// entries, but not taking the time to sort them. As usual, the names don't
// include “.” and “..”. It complements the stdlib's [os.ReadDir] (see also
// the [go-nuts] discussion), while additionally avoiding the per-entry
// overhead of [os.DirEntry] when only the names are of interest.
//
// [go-nuts]:
// https://groups.google.com/g/golang-nuts/c/Q7hYQ9GdX9Q/m/fwYRMIbNDgsJ
func ReadDirNames(name string) ([]string, error) {
	d, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer d.Close()
	return d.Readdirnames(-1)
}
