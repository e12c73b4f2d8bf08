// (c) Siemens AG 2024
//
// SPDX-License-Identifier: MIT

package fileattrs_test

import (
	"context"
	"os"
	"path/filepath"
	"regexp"

	"github.com/siemens/fileattrs"
	"github.com/siemens/fileattrs/accounts"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	. "github.com/siemens/fileattrs/matcher"
	. "github.com/thediveo/success"
)

var _ = Describe("listing directories by owner", func() {

	It("lists and sorts owned entries", func(ctx context.Context) {
		owner, ok := accounts.UserName(uint32(os.Getuid()))
		if !ok {
			Skip("current user has no account entry")
		}
		tmpdir := Successful(os.MkdirTemp("", "fileattrs-owned-*"))
		DeferCleanup(func() {
			Expect(os.RemoveAll(tmpdir)).To(Succeed())
		})
		Expect(os.WriteFile(filepath.Join(tmpdir, "init.el"), nil, 0644)).To(Succeed())
		Expect(os.WriteFile(filepath.Join(tmpdir, "dired.el"), nil, 0644)).To(Succeed())

		lister := fileattrs.New(fileattrs.WithIDFormat(fileattrs.IDString))
		entries := Successful(lister.Directory(ctx, tmpdir,
			fileattrs.WithMatch(regexp.MustCompile(`\.el$`))))
		Expect(entries).To(HaveExactElements(
			HaveEntryName("dired.el"),
			HaveEntryName("init.el")))

		Expect(fileattrs.SortByOwner(entries)).To(Succeed())
		Expect(entries).To(HaveEach(HaveOwner(owner)))
		Expect(entries[0].Record()).To(HaveOwner(HaveLen(len(owner))))
	})

	It("orders records of different owners", func() {
		records := []fileattrs.Record{{"wilfred"}, {"rms"}}
		Expect(fileattrs.SortRecords(records)).To(Succeed())
		Expect(records).To(HaveExactElements(HaveOwner("rms"), HaveOwner("wilfred")))
	})

})
