// (c) Siemens AG 2024
//
// SPDX-License-Identifier: MIT

package test

import (
	"bytes"
	"sync"

	"github.com/sirupsen/logrus"

	. "github.com/onsi/ginkgo/v2"
)

// LogToGinkgo sends any log output at debug level and above to Ginkgo, so that
// the latter can show it to us when a test fails. If a test succeeds we won't
// get bothered by any log output. The log output accumulated during an
// individual test is available from [Log].
//
// Usage:
//
//	BeforeEach(test.LogToGinkgo)
//
//	Expect(test.Log()).To(ContainSubstring(...))
func LogToGinkgo() {
	std := logrus.StandardLogger()
	stdout := std.Out
	stdformatter := std.Formatter
	stdlevel := std.GetLevel()
	capture.reset()
	std.Out = &capture
	std.Formatter = &logrus.TextFormatter{
		TimestampFormat: "2006-01-02T15:04:05.000Z07:00",
		FullTimestamp:   true,
	}
	std.SetLevel(logrus.DebugLevel)
	DeferCleanup(func() {
		std.Out = stdout
		std.Formatter = stdformatter
		std.SetLevel(stdlevel)
	})
}

// Log returns the log output accumulated since the last LogToGinkgo.
func Log() string {
	return capture.String()
}

var capture buffer

// buffer is “-race”-safe, can be queried for its contents, and passes all
// writes on to the GinkgoWriter.
type buffer struct {
	mu sync.Mutex
	b  bytes.Buffer
}

func (b *buffer) Write(p []byte) (n int, err error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	_, _ = GinkgoWriter.Write(p)
	return b.b.Write(p)
}

func (b *buffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

func (b *buffer) reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.b.Reset()
}
