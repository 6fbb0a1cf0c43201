package hashring

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
	"github.com/spaolacci/murmur3"
)

// Hasher maps a key and a seed to a 64-bit hash value.
// Implementations must be deterministic for a given (key, seed) pair, and
// different seeds must produce different values for the same key: the ring
// relies on the seed to break slot collisions during partition placement.
type Hasher interface {
	Hash(key string, seed int) int64
}

// Murmur3Hasher is the default Hasher, backed by 64-bit MurmurHash3.
type Murmur3Hasher struct{}

func (Murmur3Hasher) Hash(key string, seed int) int64 {
	return int64(murmur3.Sum64WithSeed([]byte(key), uint32(seed)))
}

// XXHasher is an alternative Hasher backed by xxHash64. The seed is folded
// into the digest ahead of the key, since xxhash exposes no seeded entry
// point.
type XXHasher struct{}

func (XXHasher) Hash(key string, seed int) int64 {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], uint64(seed))

	d := xxhash.New()
	d.Write(b[:])
	d.WriteString(key)
	return int64(d.Sum64())
}
