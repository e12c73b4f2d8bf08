// (c) Siemens AG 2024
//
// SPDX-License-Identifier: MIT

package accounts

import "github.com/cespare/xxhash/v2"

// Digest returns a fingerprint of the specified list of account names. Callers
// that periodically list accounts can compare digests in order to find out
// whether the account registry has changed, without keeping the full list of
// names around. The digest depends on the order of names.
func Digest(names []string) uint64 {
	d := xxhash.New()
	for _, name := range names {
		_, _ = d.WriteString(name)
		// account names never contain NUL, so this unambiguously separates the
		// individual names.
		_, _ = d.Write([]byte{0})
	}
	return d.Sum64()
}
