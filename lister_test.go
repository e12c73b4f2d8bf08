// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package fileattrs

import (
	"context"
	"os"
	"path/filepath"
	"regexp"
	"sync"
	"sync/atomic"

	"github.com/moby/sys/user"
	"github.com/siemens/fileattrs/accounts/source"
	"github.com/thediveo/go-plugger/v3"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	. "github.com/onsi/gomega/gleak"
	. "github.com/thediveo/fdooze"
	. "github.com/thediveo/success"
)

func entryNames(entries []*DirEntry) []string {
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name)
	}
	return names
}

// countingSource is an account source without any accounts that counts how
// often its account databases get read.
type countingSource struct {
	users  atomic.Int64
	groups atomic.Int64
}

func (c *countingSource) Users(root string) ([]user.User, error) {
	c.users.Add(1)
	return nil, nil
}

func (c *countingSource) Groups(root string) ([]user.Group, error) {
	c.groups.Add(1)
	return nil, nil
}

// lateCancelledContext never signals its cancellation to waiters, yet reports
// being cancelled when asked, as if cancelled while the last entries were
// still being read.
type lateCancelledContext struct{ context.Context }

func (lateCancelledContext) Done() <-chan struct{} { return nil }
func (lateCancelledContext) Err() error            { return context.Canceled }

var _ = Describe("directory lister", func() {

	var tmpdir string

	BeforeEach(func() {
		goodfds := Filedescriptors()
		goodgos := Goroutines() // avoid other failed goroutine tests to spill over
		DeferCleanup(func() {
			Eventually(Goroutines).WithTimeout(goroutinesUnwindTimeout).WithPolling(goroutinesUnwindPolling).
				ShouldNot(HaveLeaked(goodgos))
			Expect(Filedescriptors()).NotTo(HaveLeakedFds(goodfds))
		})

		tmpdir = Successful(os.MkdirTemp("", "fileattrs-lister-*"))
		DeferCleanup(func() {
			Expect(os.RemoveAll(tmpdir)).To(Succeed())
		})
		Expect(os.WriteFile(filepath.Join(tmpdir, "b"), []byte("bbb"), 0644)).To(Succeed())
		Expect(os.WriteFile(filepath.Join(tmpdir, "a"), []byte("a"), 0644)).To(Succeed())
		Expect(os.Mkdir(filepath.Join(tmpdir, "c"), 0755)).To(Succeed())
		Expect(os.Symlink("a", filepath.Join(tmpdir, "d"))).To(Succeed())
	})

	It("defaults to GOMAXPROCS workers", func() {
		Expect(New().numworkers).To(BeNumerically(">", 0))
		Expect(New(WithWorkers(-1)).numworkers).To(BeNumerically(">", 0))
		Expect(New(WithWorkers(3)).numworkers).To(Equal(3))
	})

	It("reports an error for a non-existing directory", func(ctx context.Context) {
		Expect(New().Directory(ctx, filepath.Join(tmpdir, "non-existing"))).Error().To(
			MatchError(ContainSubstring("cannot list directory")))
	})

	It("lists sorted directory entries with attributes", func(ctx context.Context) {
		entries := Successful(New(WithWorkers(2)).Directory(ctx, tmpdir))
		Expect(entryNames(entries)).To(HaveExactElements(".", "..", "a", "b", "c", "d"))
		Expect(entries[0].Attributes.IsDir).To(BeTrue())
		Expect(entries[2].Attributes.Size).To(Equal(int64(1)))
		Expect(entries[3].Attributes.Size).To(Equal(int64(3)))
		Expect(entries[4].Attributes.Type()).To(Equal(true))
		Expect(entries[5].Attributes.Type()).To(Equal("a"))
	})

	It("lists only matching entries", func(ctx context.Context) {
		entries := Successful(New().Directory(ctx, tmpdir,
			WithMatch(regexp.MustCompile(`^[bd]$`))))
		Expect(entryNames(entries)).To(HaveExactElements("b", "d"))
	})

	It("lists absolute names", func(ctx context.Context) {
		absdir := Successful(filepath.Abs(tmpdir))
		entries := Successful(New().Directory(ctx, tmpdir,
			WithFullNames(), WithMatch(regexp.MustCompile(`^a$`))))
		Expect(entryNames(entries)).To(HaveExactElements(filepath.Join(absdir, "a")))
	})

	It("lists unsorted", func(ctx context.Context) {
		entries := Successful(New().Directory(ctx, tmpdir, WithoutSorting()))
		Expect(entryNames(entries)).To(ConsistOf(".", "..", "a", "b", "c", "d"))
	})

	It("stops when the context is cancelled", func(ctx context.Context) {
		ctx, cancel := context.WithCancel(ctx)
		cancel()
		Expect(New().Directory(ctx, tmpdir)).Error().To(MatchError(context.Canceled))
	})

	It("reports a cancellation while reading the last entries", func(ctx context.Context) {
		Expect(New(WithWorkers(16)).Directory(lateCancelledContext{ctx}, tmpdir)).Error().
			To(MatchError(context.Canceled))
	})

	It("reads the account databases only once per listing", func(ctx context.Context) {
		sources := plugger.Group[source.Source]()
		backup := sources.Backup()
		DeferCleanup(func() { sources.Restore(backup) })
		counter := &countingSource{}
		sources.Register(counter, plugger.WithPlugin("zz-counter"))

		entries := Successful(New(WithIDFormat(IDString)).Directory(ctx, tmpdir))
		Expect(entries).To(HaveLen(6))
		Expect(counter.users.Load()).To(Equal(int64(1)))
		Expect(counter.groups.Load()).To(Equal(int64(1)))

		attrs := Successful(Of(filepath.Join(tmpdir, "a"), IDString))
		Expect(entries[2].Attributes.Owner).To(Equal(attrs.Owner))
		Expect(entries[2].Attributes.Group).To(Equal(attrs.Group))
	})

	It("bounds workers across concurrent listings", func(ctx context.Context) {
		lister := New(WithWorkers(1))
		var wg sync.WaitGroup
		for range 4 {
			wg.Add(1)
			go func() {
				defer GinkgoRecover()
				defer wg.Done()
				entries, err := lister.Directory(ctx, tmpdir)
				Expect(err).NotTo(HaveOccurred())
				Expect(entries).To(HaveLen(6))
			}()
		}
		wg.Wait()
	})

	When("sorting by owner", func() {

		owned := func(name, owner string) *DirEntry {
			return &DirEntry{
				Name:       name,
				Attributes: &Attributes{Owner: ID{Num: 1000, Name: owner}},
			}
		}

		It("sorts stably by owner names", func() {
			entries := []*DirEntry{
				owned("x", "wilfred"),
				owned("y", "rms"),
				owned("z", "wilfred"),
				owned("w", "alice"),
			}
			Expect(SortByOwner(entries)).To(Succeed())
			Expect(entryNames(entries)).To(HaveExactElements("w", "y", "x", "z"))
		})

		It("rejects entries without owner names", func() {
			entries := []*DirEntry{
				owned("x", "wilfred"),
				{Name: "y", Attributes: &Attributes{Owner: ID{Num: 42}}},
			}
			Expect(SortByOwner(entries)).To(And(
				MatchError(ErrWrongType),
				MatchError(ContainSubstring("entry #1 y"))))
			Expect(entryNames(entries)).To(HaveExactElements("x", "y"))
		})

	})

})
