package hashset

import (
	"hash/maphash"

	"github.com/cespare/xxhash/v2"
)

// seed is shared by every set in the process so a value always hashes the
// same way for as long as the process runs.
var seed = maphash.MakeSeed()

// hashOf returns the hash of value. Integers hash to themselves, strings use
// xxhash and everything else falls back to maphash.
func hashOf[T comparable](value T) int64 {
	switch v := any(value).(type) {
	case int:
		return int64(v)
	case int8:
		return int64(v)
	case int16:
		return int64(v)
	case int32:
		return int64(v)
	case int64:
		return v
	case uint:
		return int64(v)
	case uint8:
		return int64(v)
	case uint16:
		return int64(v)
	case uint32:
		return int64(v)
	case uint64:
		return int64(v)
	case uintptr:
		return int64(v)
	case string:
		return int64(xxhash.Sum64String(v))
	}
	return int64(maphash.Comparable(seed, value))
}

// slot maps hash onto [0, n). hash may be negative.
func slot(hash int64, n int) int {
	m := int64(n)
	return int(((hash % m) + m) % m)
}
