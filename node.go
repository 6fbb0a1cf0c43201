package hashring

import (
	"fmt"
	"net"
	"strconv"
	"strings"
)

// Node represents a member of the ring. The key must be a stable label:
// the ring uses it for equality, membership bookkeeping and as seed
// material for partition placement.
type Node interface {
	Key() string
}

// SimpleNode is a Node identified by nothing but its label.
type SimpleNode string

func (n SimpleNode) Key() string {
	return string(n)
}

// ServerNode is a Node identified by a network address.
type ServerNode struct {
	Host string
	Port uint16
}

func (n ServerNode) Key() string {
	return net.JoinHostPort(n.Host, strconv.Itoa(int(n.Port)))
}

// ParseServerNodes parses a comma-separated list of addresses in the format:
// "host1:port1,host2:port2,host3:port3"
func ParseServerNodes(nodesStr string) ([]Node, error) {
	if nodesStr == "" {
		return []Node{}, nil
	}

	parts := strings.Split(nodesStr, ",")
	nodes := make([]Node, 0, len(parts))

	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		host, portStr, err := net.SplitHostPort(part)
		if err != nil {
			return nil, fmt.Errorf("invalid node address: %s (expected host:port)", part)
		}

		port, err := strconv.ParseUint(portStr, 10, 16)
		if err != nil {
			return nil, fmt.Errorf("invalid port in node address: %s", part)
		}

		nodes = append(nodes, ServerNode{Host: host, Port: uint16(port)})
	}

	return nodes, nil
}
