// Package pqtree implements the precedence tree the scheduler linearizes
// section orderings from. P-node children may appear in any order; Q-node
// children keep their block order but the whole block may be reversed;
// leaves carry canonical section labels.
package pqtree

type NodeKind int

const (
	PNode NodeKind = iota
	QNode
	Leaf
)

// Node is owned top-down: children are reachable only through their parent,
// and a tree is rebuilt fresh for every scheduling run.
type Node struct {
	Kind     NodeKind
	Label    string
	Children []*Node
}

func NewLeaf(label string) *Node {
	return &Node{Kind: Leaf, Label: label}
}

func NewP(children ...*Node) *Node {
	return &Node{Kind: PNode, Children: children}
}

func NewQ(children ...*Node) *Node {
	return &Node{Kind: QNode, Children: children}
}

func (n *Node) AddChild(child *Node) {
	n.Children = append(n.Children, child)
}

func (n *Node) IsLeaf() bool {
	return n.Kind == Leaf
}

// frontier returns the subtree's leaf labels in their current arrangement.
func (n *Node) frontier() []string {
	if n.IsLeaf() {
		return []string{n.Label}
	}
	var labels []string
	for _, child := range n.Children {
		labels = append(labels, child.frontier()...)
	}
	return labels
}
