package pqtree

import (
	"math/rand"
	"slices"
	"strings"
)

type Tree struct {
	root *Node
}

func New() *Tree {
	return &Tree{}
}

func NewWithRoot(root *Node) *Tree {
	return &Tree{root: root}
}

func (t *Tree) Root() *Node {
	return t.root
}

func (t *Tree) SetRoot(root *Node) {
	t.root = root
}

// Frontier returns the leaf labels in their current arrangement.
func (t *Tree) Frontier() []string {
	if t.root == nil {
		return nil
	}
	return t.root.frontier()
}

// Frontiers enumerates every distinct leaf ordering the tree admits. A
// P-node contributes all permutations of its subtree's labels; a Q-node
// contributes its forward concatenation and the exact reverse. Factorial
// growth on P-nodes is the caller's responsibility to bound.
func (t *Tree) Frontiers() [][]string {
	if t.root == nil {
		return nil
	}
	return dedupe(enumerate(t.root))
}

func enumerate(n *Node) [][]string {
	switch n.Kind {
	case Leaf:
		return [][]string{{n.Label}}

	case PNode:
		// Children may be freely interleaved, so every arrangement of the
		// subtree's labels is admissible: enumerate via canonical
		// next-permutation over the sorted label sequence.
		flat := n.frontier()
		slices.Sort(flat)

		var orderings [][]string
		for {
			orderings = append(orderings, slices.Clone(flat))
			if !nextPermutation(flat) {
				break
			}
		}
		return orderings

	default: // QNode
		forward := n.frontier()
		reversed := slices.Clone(forward)
		slices.Reverse(reversed)

		orderings := [][]string{forward}
		if !slices.Equal(forward, reversed) {
			orderings = append(orderings, reversed)
		}
		return orderings
	}
}

// nextPermutation advances labels to the next lexicographic permutation in
// place, reporting false once the sequence is fully descending.
func nextPermutation(labels []string) bool {
	pivot := len(labels) - 2
	for pivot >= 0 && labels[pivot] >= labels[pivot+1] {
		pivot--
	}
	if pivot < 0 {
		return false
	}

	successor := len(labels) - 1
	for labels[successor] <= labels[pivot] {
		successor--
	}
	labels[pivot], labels[successor] = labels[successor], labels[pivot]
	slices.Reverse(labels[pivot+1:])
	return true
}

func dedupe(orderings [][]string) [][]string {
	seen := make(map[string]bool, len(orderings))
	unique := make([][]string, 0, len(orderings))
	for _, ordering := range orderings {
		key := strings.Join(ordering, "\x00")
		if seen[key] {
			continue
		}
		seen[key] = true
		unique = append(unique, ordering)
	}
	return unique
}

// Reduce reports whether the subset's leaves exist and currently appear
// consecutively in the frontier. It does not restructure the tree: the full
// template-matching reduction of Booth and Lueker is not implemented, so
// orderings stay constrained only by Q-node structure.
func (t *Tree) Reduce(subset []string) bool {
	if t.root == nil {
		return false
	}

	want := make(map[string]bool, len(subset))
	for _, label := range subset {
		want[label] = true
	}

	frontier := t.Frontier()
	found := 0
	first, last := -1, -1
	for i, label := range frontier {
		if !want[label] {
			continue
		}
		if first == -1 {
			first = i
		}
		last = i
		found++
	}
	if found != len(want) {
		return false
	}

	for i := first; i <= last; i++ {
		if !want[frontier[i]] {
			return false
		}
	}
	return true
}

// Reorder shuffles P-node children and randomly reverses Q-node children in
// place. It only ever produces arrangements the node semantics admit; the
// injected source keeps runs reproducible.
func (t *Tree) Reorder(rng *rand.Rand) {
	reorder(t.root, rng)
}

func reorder(n *Node, rng *rand.Rand) {
	if n == nil {
		return
	}

	switch n.Kind {
	case PNode:
		rng.Shuffle(len(n.Children), func(i, j int) {
			n.Children[i], n.Children[j] = n.Children[j], n.Children[i]
		})
	case QNode:
		if rng.Intn(2) == 0 {
			slices.Reverse(n.Children)
		}
	}

	for _, child := range n.Children {
		reorder(child, rng)
	}
}
