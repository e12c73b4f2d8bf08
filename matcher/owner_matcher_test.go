// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package matcher

import (
	"github.com/siemens/fileattrs"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("owner matchers", func() {

	attrs := &fileattrs.Attributes{Owner: fileattrs.ID{Num: 1000, Name: "rms"}}
	entry := &fileattrs.DirEntry{Name: "foo.el", Attributes: attrs}

	It("matches owners of records, attributes, and entries", func() {
		Expect(fileattrs.Record{"rms", 42}).To(HaveOwner("rms"))
		Expect(fileattrs.Record{uint32(1000)}).To(HaveOwner(uint32(1000)))
		Expect(attrs).To(HaveOwner("rms"))
		Expect(entry).To(HaveOwner(HavePrefix("r")))
		Expect(entry).NotTo(HaveOwner("wilfred"))
		Expect(&fileattrs.Attributes{Owner: fileattrs.ID{Num: 42}}).To(HaveOwner(uint32(42)))
	})

	It("rejects what isn't owned", func() {
		Expect(HaveOwner("rms").Match(fileattrs.Record{})).Error().To(HaveOccurred())
		Expect(HaveOwner("rms").Match("rms")).Error().To(HaveOccurred())
		Expect(func() { _ = HaveOwner(42) }).To(Panic())
	})

	It("matches entry names", func() {
		Expect(entry).To(HaveEntryName("foo.el"))
		Expect(entry).To(HaveEntryName(HaveSuffix(".el")))
		Expect(HaveEntryName("foo.el").Match(attrs)).Error().To(HaveOccurred())
		Expect(func() { _ = HaveEntryName(42) }).To(Panic())
	})

})
