package keyvalues

import "strings"

// Node is a key paired with a value or with a block of child nodes.
type Node struct {
	Key      string
	Value    string
	Block    bool
	Children []*Node
	Line     int
}

// Child returns the last direct child whose key matches name
// case-insensitively, mirroring how later keys override earlier ones.
func (n *Node) Child(name string) *Node {
	if n == nil {
		return nil
	}
	for i := len(n.Children) - 1; i >= 0; i-- {
		if strings.EqualFold(n.Children[i].Key, name) {
			return n.Children[i]
		}
	}
	return nil
}

// Blocks returns the direct children that are blocks.
func (n *Node) Blocks() []*Node {
	if n == nil {
		return nil
	}
	var out []*Node
	for _, c := range n.Children {
		if c.Block {
			out = append(out, c)
		}
	}
	return out
}
