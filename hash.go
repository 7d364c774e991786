package chash

import "github.com/cespare/xxhash/v2"

// HashFunc maps a key to a 32-bit hash. The table reduces it modulo its
// capacity to pick a bucket, so a HashFunc must be deterministic.
type HashFunc func(key string) uint32

// Polynomial31 is the default HashFunc. It scans the key bytes left to right
// computing acc = acc*31 + b with uint32 wraparound, starting from zero.
func Polynomial31(key string) uint32 {
	var acc uint32
	for i := 0; i < len(key); i++ {
		acc = acc*31 + uint32(key[i])
	}
	return acc
}

// XXHash hashes the key with xxHash64 and folds the result into 32 bits.
func XXHash(key string) uint32 {
	h := xxhash.Sum64String(key)
	return uint32(h>>32) ^ uint32(h)
}

// bucketIndex reduces a hash to a bucket index for the given capacity.
func bucketIndex(h uint32, capacity uint32) int {
	return int(h % capacity)
}
