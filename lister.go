// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package fileattrs

import (
	"context"
	"fmt"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/siemens/fileattrs/accounts"
	"github.com/siemens/fileattrs/unsorted"
	"github.com/thediveo/lxkns/log"
	"golang.org/x/exp/slices"
	"golang.org/x/sync/semaphore"
)

// Lister reads the attributes of all entries in directories, reading the
// attributes of individual entries in parallel. It can be safely used from
// multiple goroutines.
type Lister struct {
	numworkers int                 // max number of parallel attribute reads.
	workersem  *semaphore.Weighted // bounded pool.
	idformat   IDFormat            // how to report owner and group.
}

// DirEntry is a single directory entry with its attributes.
type DirEntry struct {
	Name       string      // entry name, either relative or absolute.
	Attributes *Attributes // attributes of entry.
}

// Record returns the attributes record of this entry; see also
// [Attributes.Record].
func (e *DirEntry) Record() Record { return e.Attributes.Record() }

// New returns a Lister object for further use. Options ([NewOption], such as
// [WithWorkers] and [WithIDFormat]) allow to customize the Lister returned.
func New(opts ...NewOption) *Lister {
	l := &Lister{}
	for _, opt := range opts {
		opt(l)
	}
	if l.numworkers <= 0 {
		l.numworkers = runtime.GOMAXPROCS(0)
	}
	l.workersem = semaphore.NewWeighted(int64(l.numworkers))
	return l
}

// Directory returns the entries of the specified directory together with
// their attributes, including the “.” and “..” entries. It does not descend
// into subdirectories. Entries get sorted by name, unless [WithoutSorting] has
// been specified.
//
// Entries that vanish while the directory is being listed are silently
// skipped. If the context gets cancelled, Directory stops reading further
// attributes and returns the context's error.
func (l *Lister) Directory(ctx context.Context, dir string, opts ...ListOption) ([]*DirEntry, error) {
	var o listing
	for _, opt := range opts {
		opt(&o)
	}
	names, err := unsorted.ReadDirNames(dir)
	if err != nil {
		return nil, fmt.Errorf("cannot list directory %s, reason: %w", dir, err)
	}
	names = append(names, ".", "..")
	if o.match != nil {
		names = slices.DeleteFunc(names, func(name string) bool {
			return !o.match.MatchString(name)
		})
	}
	prefix := ""
	if o.full {
		absdir, err := filepath.Abs(dir)
		if err != nil {
			return nil, fmt.Errorf("cannot list directory %s, reason: %w", dir, err)
		}
		prefix = strings.TrimSuffix(absdir, string(filepath.Separator)) +
			string(filepath.Separator)
	}
	// Read the account databases only once per listing, not for each entry.
	var idnames *accounts.IDNames
	if l.idformat == IDString {
		idnames = accounts.NewIDNames()
	}
	// Feel the heat and read the attributes in parallel; please note that the
	// number of parallel reads is bounded over *all parallel calls* to this
	// method, and not just within a single call. Each reader writes only its
	// own result slot, so no locking needed.
	entries := make([]*DirEntry, len(names))
	var wg sync.WaitGroup
	for idx, name := range names {
		if err := l.workersem.Acquire(ctx, 1); err != nil {
			wg.Wait()
			return nil, err
		}
		wg.Add(1)
		go func(idx int, name string) {
			defer wg.Done()
			defer l.workersem.Release(1)
			attrs, err := of(filepath.Join(dir, name), idnames)
			if err != nil {
				log.Debugf("skipping directory entry %s, reason: %s", name, err.Error())
				return
			}
			entries[idx] = &DirEntry{
				Name:       prefix + name,
				Attributes: attrs,
			}
		}(idx, name)
	}
	wg.Wait()
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	entries = compactNil(entries)
	if !o.nosort {
		slices.SortFunc(entries, func(a, b *DirEntry) int {
			return strings.Compare(a.Name, b.Name)
		})
	}
	return entries, nil
}

// SortByOwner sorts the specified entries in place by the names of their
// owners, using [Less] and keeping entries with the same owner in their
// original order. The entries must have been read using [IDString] and their
// owners must have names, otherwise SortByOwner returns an error wrapping
// [ErrWrongType] and leaves the entries untouched.
func SortByOwner(entries []*DirEntry) error {
	type ownedEntry struct {
		record Record
		entry  *DirEntry
	}
	owned := make([]ownedEntry, 0, len(entries))
	for idx, entry := range entries {
		record := entry.Record()
		if _, err := record.key(); err != nil {
			return fmt.Errorf("entry #%d %s: %w", idx, entry.Name, err)
		}
		owned = append(owned, ownedEntry{record: record, entry: entry})
	}
	slices.SortStableFunc(owned, func(a, b ownedEntry) int {
		if less, _ := Less(a.record, b.record); less {
			return -1
		}
		if less, _ := Less(b.record, a.record); less {
			return 1
		}
		return 0
	})
	for idx := range owned {
		entries[idx] = owned[idx].entry
	}
	return nil
}
