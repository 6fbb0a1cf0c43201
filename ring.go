package hashring

import (
	"fmt"
	"sort"
	"sync"
)

// member is the membership entry for one live node.
type member struct {
	node       Node
	partitions []*partition
}

// HashRing distributes keys across member nodes using consistent hashing
// with virtual partitions. All operations are safe for concurrent use:
// lookups and membership reads take shared access, membership changes take
// exclusive access, and every change is observed all-or-nothing.
type HashRing struct {
	mu sync.RWMutex

	name          string
	hasher        Hasher
	partitionRate int

	slots   []int64              // ring positions, ascending
	ring    map[int64]*partition // slot -> partition
	members map[string]*member   // node label -> membership entry
}

// Add registers a node and places its partitions on the ring.
// It returns false if the node is nil or already a member, making Add
// idempotent per node.
func (h *HashRing) Add(node Node) bool {
	if node == nil {
		return false
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	return h.add(node)
}

// AddAll registers every node in the list that is non-nil and not yet a
// member. It returns true if at least one node was newly added.
func (h *HashRing) AddAll(nodes []Node) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	added := false
	for _, node := range nodes {
		if node == nil {
			continue
		}
		if h.add(node) {
			added = true
		}
	}
	return added
}

// add places a single node under an already-held write lock.
func (h *HashRing) add(node Node) bool {
	if _, exists := h.members[node.Key()]; exists {
		return false
	}

	partitions := h.createPartitions(node)
	h.distributePartitions(partitions)
	h.members[node.Key()] = &member{node: node, partitions: partitions}
	return true
}

// Remove takes a node and all of its partitions off the ring.
// It returns false if the node is nil or not a member.
func (h *HashRing) Remove(node Node) bool {
	if node == nil {
		return false
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	m, exists := h.members[node.Key()]
	if !exists {
		return false
	}

	drop := make(map[int64]struct{}, len(m.partitions))
	for _, p := range m.partitions {
		drop[p.slot] = struct{}{}
		delete(h.ring, p.slot)
	}

	kept := make([]int64, 0, len(h.slots)-len(m.partitions))
	for _, slot := range h.slots {
		if _, gone := drop[slot]; !gone {
			kept = append(kept, slot)
		}
	}
	h.slots = kept

	delete(h.members, node.Key())
	return true
}

// Contains reports whether the node is currently a member.
func (h *HashRing) Contains(node Node) bool {
	if node == nil {
		return false
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	_, exists := h.members[node.Key()]
	return exists
}

// GetNodes returns all current members.
func (h *HashRing) GetNodes() []Node {
	h.mu.RLock()
	defer h.mu.RUnlock()

	nodes := make([]Node, 0, len(h.members))
	for _, m := range h.members {
		nodes = append(nodes, m.node)
	}
	return nodes
}

// Size returns the number of member nodes.
func (h *HashRing) Size() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.members)
}

// Locate returns the node responsible for the given key.
// Returns (nil, false) if the ring has no members.
func (h *HashRing) Locate(key string) (Node, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if len(h.slots) == 0 {
		return nil, false
	}

	slot := h.hash(key, 0)

	// Ceiling lookup: smallest assigned slot >= the key's slot, wrapping
	// past the maximum slot back to the minimum.
	idx := sort.Search(len(h.slots), func(i int) bool {
		return h.slots[i] >= slot
	})
	if idx == len(h.slots) {
		idx = 0
	}

	return h.ring[h.slots[idx]].node, true
}

// LocateN returns up to count distinct nodes responsible for the key: the
// key's owner plus the next distinct owners clockwise on the ring. It
// returns an empty result if count <= 0, and the full member set if
// count >= Size(). The result never contains duplicates.
func (h *HashRing) LocateN(key string, count int) []Node {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if count <= 0 {
		return []Node{}
	}

	// Every member trivially qualifies.
	if count >= len(h.members) {
		nodes := make([]Node, 0, len(h.members))
		for _, m := range h.members {
			nodes = append(nodes, m.node)
		}
		return nodes
	}

	slot := h.hash(key, 0)
	start := sort.Search(len(h.slots), func(i int) bool {
		return h.slots[i] >= slot
	})

	// Walk clockwise from the ceiling, wrapping once, collecting distinct
	// owners until count are found.
	seen := make(map[string]struct{}, count)
	nodes := make([]Node, 0, count)
	for i := 0; i < len(h.slots) && len(nodes) < count; i++ {
		pos := (start + i) % len(h.slots)
		node := h.ring[h.slots[pos]].node
		if _, dup := seen[node.Key()]; dup {
			continue
		}
		seen[node.Key()] = struct{}{}
		nodes = append(nodes, node)
	}
	return nodes
}

// Name returns the ring's display name.
func (h *HashRing) Name() string {
	return h.name
}

// Hasher returns the configured hash function.
func (h *HashRing) Hasher() Hasher {
	return h.hasher
}

// PartitionRate returns the number of virtual partitions created per node.
func (h *HashRing) PartitionRate() int {
	return h.partitionRate
}

func (h *HashRing) String() string {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return fmt.Sprintf("HashRing[name=%s, nodes=%d, hasher=%T, partitionRate=%d]",
		h.name, len(h.members), h.hasher, h.partitionRate)
}

// createPartitions builds the node's partitionRate partitions, unplaced.
func (h *HashRing) createPartitions(node Node) []*partition {
	partitions := make([]*partition, h.partitionRate)
	for i := range partitions {
		partitions[i] = &partition{index: i, node: node}
	}
	return partitions
}

// distributePartitions binds each partition to a free slot and inserts it
// into the ring. Insertion order does not affect the final ring contents.
func (h *HashRing) distributePartitions(partitions []*partition) {
	for _, p := range partitions {
		slot := h.findSlot(p.partitionKey())
		p.slot = slot
		h.ring[slot] = p
		h.insertSlot(slot)
	}
}

// findSlot hashes the partition key into an unoccupied ring position.
// Collisions are broken by bumping the seed and rehashing; termination
// relies on the Hasher varying with seed.
func (h *HashRing) findSlot(partitionKey string) int64 {
	seed := 0
	slot := h.hash(partitionKey, seed)
	for {
		if _, taken := h.ring[slot]; !taken {
			return slot
		}
		seed++
		slot = h.hash(partitionKey, seed)
	}
}

// insertSlot keeps h.slots sorted ascending.
func (h *HashRing) insertSlot(slot int64) {
	idx := sort.Search(len(h.slots), func(i int) bool {
		return h.slots[i] >= slot
	})
	h.slots = append(h.slots, 0)
	copy(h.slots[idx+1:], h.slots[idx:])
	h.slots[idx] = slot
}

// hash maps input to a non-negative slot value.
func (h *HashRing) hash(key string, seed int) int64 {
	slot := h.hasher.Hash(key, seed)
	if slot < 0 {
		slot = -slot
	}
	return slot
}
