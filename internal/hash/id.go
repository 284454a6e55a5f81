package hash

import "github.com/cespare/xxhash/v2"

// ID computes a 32-bit attribute identifier from the given name.
//
// The full xxHash64 digest is folded to 32 bits because attribute unique IDs
// are stored as uint32 in the container attribute table and in mesh config
// descriptors.
func ID(name string) uint32 {
	sum := xxhash.Sum64String(name)
	return uint32(sum ^ (sum >> 32)) //nolint: gosec
}

// Sum64 computes the xxHash64 digest of the given payload bytes.
func Sum64(data []byte) uint64 {
	return xxhash.Sum64(data)
}
