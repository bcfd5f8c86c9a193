package huffman

import "github.com/abhinav/huffcode/internal/stringobj"

// Node is a node in a coding tree.
type Node struct {
	// Symbol held by a leaf. Empty for branches.
	symbol string

	// Frequency of a leaf, or the combined frequency of a branch's
	// children.
	weight int

	// Both nil for leaves, both non-nil for branches.
	left, right *Node

	// Order in which the node was added to the queue.
	// Breaks ties between nodes of equal weight.
	seq int
}

// Symbol returns the symbol held by a leaf node.
// It returns an empty string for branches.
func (n *Node) Symbol() string { return n.symbol }

// Weight returns the frequency of the node.
func (n *Node) Weight() int { return n.weight }

// Left returns the left child of a branch, or nil for leaves.
func (n *Node) Left() *Node { return n.left }

// Right returns the right child of a branch, or nil for leaves.
func (n *Node) Right() *Node { return n.right }

// IsLeaf reports whether this node holds a symbol.
func (n *Node) IsLeaf() bool { return n.left == nil }

func (n *Node) String() string {
	var b stringobj.Builder
	b.Put("symbol", n.symbol)
	b.Put("weight", n.weight)
	if !n.IsLeaf() {
		b.Put("left", n.left)
		b.Put("right", n.right)
	}
	return b.String()
}

type nodeHeap []*Node

func (ns nodeHeap) Len() int { return len(ns) }

func (ns nodeHeap) Less(i, j int) bool {
	if ns[i].weight != ns[j].weight {
		return ns[i].weight < ns[j].weight
	}
	return ns[i].seq < ns[j].seq
}

func (ns nodeHeap) Swap(i, j int) {
	ns[i], ns[j] = ns[j], ns[i]
}

func (ns *nodeHeap) Push(e interface{}) {
	*ns = append(*ns, e.(*Node))
}

func (ns *nodeHeap) Pop() interface{} {
	n := len(*ns) - 1
	v := (*ns)[n]
	*ns = (*ns)[:n]
	return v
}
