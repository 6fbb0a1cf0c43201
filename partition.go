package hashring

import "fmt"

// partition is one virtual placement of a node on the ring. A node with
// partition rate P owns P partitions at P distinct slots.
type partition struct {
	index int
	node  Node
	slot  int64 // assigned once, at placement
}

// partitionKey derives the stable hashing input for this partition.
// It is unique per (node, index) pair.
func (p *partition) partitionKey() string {
	return fmt.Sprintf("%s:%d", p.node.Key(), p.index)
}
