// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package unsorted

import (
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	. "github.com/thediveo/fdooze"
	. "github.com/thediveo/success"
)

var _ = Describe("unsorted directory names", func() {

	var tmpdir string

	BeforeEach(func() {
		goodfds := Filedescriptors()
		DeferCleanup(func() {
			Expect(Filedescriptors()).NotTo(HaveLeakedFds(goodfds))
		})
		tmpdir = Successful(os.MkdirTemp("", "unsorted-*"))
		DeferCleanup(func() {
			Expect(os.RemoveAll(tmpdir)).To(Succeed())
		})
		Expect(os.Mkdir(filepath.Join(tmpdir, "123"), 0755)).To(Succeed())
		Expect(os.WriteFile(filepath.Join(tmpdir, "ABC"), nil, 0644)).To(Succeed())
	})

	It("reports an error when not being able to read a directory", func() {
		Expect(ReadDirNames(filepath.Join(tmpdir, "readdir-non-existing"))).Error().To(HaveOccurred())
	})

	It("returns directory entry names", func() {
		Expect(ReadDirNames(tmpdir)).To(ConsistOf("123", "ABC"))
	})

})
