package container

import (
	"github.com/arloliu/tsframe/internal/hash"
)

// ValuesForFactorize returns the per-row factorization keys (ts-format
// strings) and the marker a host framework should treat as missing (nil).
func (a *TimeArray) ValuesForFactorize() ([]string, any) {
	return a.ToTS(), nil
}

// FromFactorized reconstructs a container from factorization keys, the
// inverse of ValuesForFactorize.
func FromFactorized(values []string) (*TimeArray, error) {
	return FromTS(values)
}

// Factorize assigns each row a stable integer code by serialized
// identity: rows with equal ts-format text share a code, and codes are
// numbered in first-occurrence order. Rows are grouped by the xxHash64
// of their key and confirmed on the key text, so hash collisions cannot
// merge distinct rows.
//
// Returns the per-row codes and the sub-container of first occurrences,
// ordered by ascending first-occurrence position.
func (a *TimeArray) Factorize() ([]int, *TimeArray) {
	keys := a.ToTS()
	codes := make([]int, len(keys))
	firsts := make([]int, 0)
	buckets := make(map[uint64][]int, len(keys))

	for i, key := range keys {
		h := hash.RowKey(key)
		code := -1
		for _, c := range buckets[h] {
			if keys[firsts[c]] == key {
				code = c
				break
			}
		}
		if code < 0 {
			code = len(firsts)
			firsts = append(firsts, i)
			buckets[h] = append(buckets[h], code)
		}
		codes[i] = code
	}

	return codes, a.gather(firsts)
}

// Unique deduplicates rows by their serialized identity, keeping the
// first occurrence of each distinct row in ascending position order.
func (a *TimeArray) Unique() *TimeArray {
	_, uniques := a.Factorize()

	return uniques
}
