// (c) Siemens AG 2024
//
// SPDX-License-Identifier: MIT

package fileattrs

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// Record is a file attribute record: an ordered sequence of attribute fields,
// of which the first field is the name of the owning user. Records built from
// [Attributes] use the field layout documented for [Attributes.Record], but
// any record with a string as its first field can be ordered using [Less].
type Record []any

// Less reports whether the first field of record a sorts strictly before the
// first field of record b. Both records must have at least one field and
// their first fields must be strings, otherwise Less returns an error wrapping
// [ErrWrongType].
//
// Strings are compared byte-wise as Go does, so the ordering is
// case-sensitive and independent of any locale; for instance, “rms” sorts
// before “wilfred”, and “Zappa” sorts before “rms”.
func Less(a, b Record) (bool, error) {
	akey, err := a.key()
	if err != nil {
		return false, err
	}
	bkey, err := b.key()
	if err != nil {
		return false, err
	}
	return akey < bkey, nil
}

// key returns the first field of this record as a string, or an error wrapping
// ErrWrongType if there is no such field or it isn't a string.
func (r Record) key() (string, error) {
	if len(r) == 0 {
		return "", fmt.Errorf("%w: empty attribute record", ErrWrongType)
	}
	key, ok := r[0].(string)
	if !ok {
		return "", fmt.Errorf("%w: attribute record key must be a string, got %T",
			ErrWrongType, r[0])
	}
	return key, nil
}

// SortRecords sorts the passed records in place, ordered by [Less] and keeping
// the original order of records with the same key. If any of the records is
// unsuitable for ordering, SortRecords returns an error wrapping
// [ErrWrongType] and leaves the records untouched.
func SortRecords(records []Record) error {
	for idx, record := range records {
		if _, err := record.key(); err != nil {
			return fmt.Errorf("record #%d: %w", idx, err)
		}
	}
	slices.SortStableFunc(records, func(a, b Record) int {
		// all keys have been checked above, so we can skip error handling.
		akey, _ := a.key()
		bkey, _ := b.key()
		switch {
		case akey < bkey:
			return -1
		case akey > bkey:
			return 1
		}
		return 0
	})
	return nil
}
