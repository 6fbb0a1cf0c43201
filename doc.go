// Package hashring implements a consistent hashing ring with virtual
// partitions. It maps keys to member nodes while minimizing key movement
// when membership changes and can resolve a key to its top-N distinct
// owner nodes for replication.
package hashring
