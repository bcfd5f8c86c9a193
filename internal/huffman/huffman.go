// Package huffman builds binary Huffman codes for string symbols.
//
// Given how often each symbol occurs,
// it assigns every symbol a codeword over the alphabet {0, 1}
// such that frequent symbols get shorter codewords
// and no codeword is a prefix of another.
// The latter property allows a stream of codewords
// to be decoded without delimiters.
package huffman

import (
	"cmp"
	"container/heap"
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/abhinav/huffcode/internal/symtab"
)

var (
	// ErrEmptyInput indicates that there were no symbols to build a code
	// for.
	ErrEmptyInput = errors.New("no symbols in input")

	// ErrInvalidWeight indicates that a symbol had a frequency below one.
	ErrInvalidWeight = errors.New("frequency must be positive")

	// ErrWeightOverflow indicates that the combined frequency of all
	// symbols does not fit in an int.
	ErrWeightOverflow = errors.New("total frequency overflows")
)

// Tree is a Huffman coding tree.
//
// Leaves hold the original symbols.
// Every other node has exactly two children.
type Tree struct {
	root     *Node
	leaves   int
	capacity int
}

// Build builds a coding tree from the given symbol frequencies.
//
// It fails with ErrEmptyInput if freqs is empty,
// and with ErrInvalidWeight if any frequency is not positive.
//
// Ties between nodes of equal weight are broken deterministically:
// leaves are ordered by symbol,
// and a merged node is ordered after all existing nodes of its weight.
// So the same frequencies always produce the same tree,
// regardless of how freqs hashes its keys.
func Build(freqs *symtab.Table[int]) (*Tree, error) {
	return build(freqs, nil)
}

// mergeFunc observes each merge step.
// left and right were just removed from queue.
type mergeFunc func(left, right *Node, queue nodeHeap)

func build(freqs *symtab.Table[int], onMerge mergeFunc) (*Tree, error) {
	if freqs.Len() == 0 {
		return nil, ErrEmptyInput
	}

	leaves := make([]*Node, 0, freqs.Len())
	for sym, freq := range freqs.All() {
		if freq <= 0 {
			return nil, fmt.Errorf("symbol %q: %w, got %d", sym, ErrInvalidWeight, freq)
		}
		leaves = append(leaves, &Node{symbol: sym, weight: freq})
	}
	slices.SortFunc(leaves, func(a, b *Node) int {
		if c := cmp.Compare(a.weight, b.weight); c != 0 {
			return c
		}
		return cmp.Compare(a.symbol, b.symbol)
	})

	// The queue holds the leaves to begin with.
	// Repeatedly remove the two lightest nodes from it
	// and add a branch with those two nodes as children
	// until a single node remains: the root.
	queue := make(nodeHeap, len(leaves))
	for i, n := range leaves {
		n.seq = i
		queue[i] = n
	}
	heap.Init(&queue)

	seq := len(leaves)
	for len(queue) > 1 {
		left := heap.Pop(&queue).(*Node)
		right := heap.Pop(&queue).(*Node)
		if onMerge != nil {
			onMerge(left, right, queue)
		}

		if left.weight > math.MaxInt-right.weight {
			return nil, ErrWeightOverflow
		}

		heap.Push(&queue, &Node{
			weight: left.weight + right.weight,
			left:   left,
			right:  right,
			seq:    seq,
		})
		seq++
	}

	return &Tree{
		root:     queue[0],
		leaves:   len(leaves),
		capacity: freqs.Capacity(),
	}, nil
}

// Root returns the root of the tree.
// For a single symbol, the root is that symbol's leaf.
func (t *Tree) Root() *Node { return t.root }

// Len reports the number of symbols in the tree.
func (t *Tree) Len() int { return t.leaves }

// Depth reports the length of the longest codeword.
func (t *Tree) Depth() int {
	var depth int
	t.walk(func(_ *Node, path []byte) {
		depth = max(depth, len(path))
	})
	return depth
}

// Codes builds a table mapping each symbol to its codeword.
// The table has the same capacity as the frequency table the tree was built
// from.
//
// Codewords are strings of '0' and '1':
// the path from the root to the symbol's leaf,
// where '0' means left and '1' means right.
// If the tree has a single symbol, its codeword is "0".
func (t *Tree) Codes() *symtab.Table[string] {
	codes := symtab.New[string](t.capacity)
	t.walk(func(n *Node, path []byte) {
		codes.Put(n.symbol, string(path))
	})
	return codes
}

// walk visits every leaf in depth-first order,
// along with the path from the root to it.
func (t *Tree) walk(visit func(*Node, []byte)) {
	if t.root.IsLeaf() {
		visit(t.root, []byte{'0'})
		return
	}

	// Skewed frequencies produce trees as deep as the number of symbols,
	// so walk with an explicit stack rather than recursion.
	type frame struct {
		node  *Node
		depth int  // length of the path to node
		bit   byte // last step in the path to node
	}

	var path []byte
	stack := []frame{{node: t.root}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		path = path[:max(f.depth-1, 0)]
		if f.depth > 0 {
			path = append(path, f.bit)
		}

		if f.node.IsLeaf() {
			visit(f.node, path)
			continue
		}

		// Right first so that the left subtree is visited first.
		stack = append(stack,
			frame{node: f.node.right, depth: f.depth + 1, bit: '1'},
			frame{node: f.node.left, depth: f.depth + 1, bit: '0'},
		)
	}
}

// Codes builds a coding tree for freqs and returns its codewords.
func Codes(freqs *symtab.Table[int]) (*symtab.Table[string], error) {
	t, err := Build(freqs)
	if err != nil {
		return nil, err
	}
	return t.Codes(), nil
}

// WeightedLength reports the number of bits needed to encode every
// occurrence of every symbol in freqs with the given codewords.
// Symbols missing from codes are ignored.
// The result saturates at math.MaxInt.
func WeightedLength(freqs *symtab.Table[int], codes *symtab.Table[string]) int {
	var total int
	for sym, freq := range freqs.All() {
		code, ok := codes.Get(sym)
		if !ok || len(code) == 0 {
			continue
		}
		if freq > (math.MaxInt-total)/len(code) {
			return math.MaxInt
		}
		total += freq * len(code)
	}
	return total
}
