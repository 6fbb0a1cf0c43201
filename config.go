package hashring

import (
	"fmt"
	"math/rand"
)

// DefaultPartitionRate is the number of virtual partitions created per node
// when Config.PartitionRate is left zero.
const DefaultPartitionRate = 1000

// Config holds the ring construction options. The zero value of every field
// selects a default.
type Config struct {
	// Name is a cosmetic identifier. Auto-generated when empty.
	Name string

	// Hasher is the hash function used for placement and lookup.
	// Defaults to Murmur3Hasher.
	Hasher Hasher

	// PartitionRate is the number of virtual partitions per node, fixed for
	// the lifetime of the ring. Zero selects DefaultPartitionRate.
	PartitionRate int

	// Nodes is the initial membership, added via the same path as AddAll.
	Nodes []Node
}

// New validates the configuration and returns a ring ready for concurrent
// use.
func New(cfg Config) (*HashRing, error) {
	if cfg.PartitionRate < 0 {
		return nil, fmt.Errorf("partition rate cannot be less than 1: %d", cfg.PartitionRate)
	}

	rate := cfg.PartitionRate
	if rate == 0 {
		rate = DefaultPartitionRate
	}

	name := cfg.Name
	if name == "" {
		name = generateName()
	}

	hasher := cfg.Hasher
	if hasher == nil {
		hasher = Murmur3Hasher{}
	}

	h := &HashRing{
		name:          name,
		hasher:        hasher,
		partitionRate: rate,
		ring:          make(map[int64]*partition),
		members:       make(map[string]*member),
	}
	h.AddAll(cfg.Nodes)
	return h, nil
}

func generateName() string {
	return fmt.Sprintf("hash_ring_%d", rand.Intn(10000))
}
