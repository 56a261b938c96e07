package ir

import "hif/internal/source"

// NodeID identifies a node inside a Tree. IDs are 1-based so the zero value
// means "no node".
type NodeID uint32

// NoNode is the absent-node sentinel.
const NoNode NodeID = 0

// IsValid reports whether id refers to an actual node.
func (id NodeID) IsValid() bool { return id != NoNode }

// TypeRef is a weak (non-owning) reference to a Type node used as a cached
// semantic type. semantic-type caches are owned by the
// semantics module, not by the tree; a TypeRef never participates in
// ownership traversal (Fields/Lists), only in explicit cache lookups.
type TypeRef NodeID

// CodeInfo is the (file, line, column) provenance triple every node carries.
// It is resolved lazily against a shared source.FileSet rather than storing a
// human string.
type CodeInfo struct {
	Span   source.Span
	Line   uint32
	Column uint32
}

// Object is the envelope every concrete node kind embeds: parent link,
// provenance, comments, additional keywords and the property bag. It is the
// root of the node hierarchy.
type Object struct {
	Kind     ClassID
	Parent   NodeID
	Code     CodeInfo
	Comments []string
	Keywords []string
	Props    Properties

	// SemanticType is the semantics-owned cache slot: present only on
	// TypedObject descendants, invalidated whenever
	// the node moves or the active semantics changes. It is NOT a
	// structural child: no payload's Fields() or Lists() exposes it.
	SemanticType TypeRef

	Data Payload
}

// Node is a stored element of the arena: the common Object envelope plus the
// kind-specific payload, reached through Data.
type Node = Object

// Tree owns every node of one System. A node is owned by exactly one
// parent; System is the only root.
type Tree struct {
	arena *Arena[Node]
	// root is the NodeID of the System node, 0 until set.
	root NodeID
}

// NewTree creates an empty Tree.
func NewTree(capHint uint) *Tree {
	return &Tree{arena: NewArena[Node](capHint)}
}

// Alloc stores a freshly built node (with Data already populated and Parent
// left at NoNode) and returns its ID.
func (t *Tree) Alloc(n Node) NodeID {
	return NodeID(t.arena.Allocate(n))
}

// Node returns a pointer to the stored node, or nil for NoNode.
func (t *Tree) Node(id NodeID) *Node {
	if !id.IsValid() {
		return nil
	}
	return t.arena.Get(uint32(id))
}

// Root returns the System node ID.
func (t *Tree) Root() NodeID { return t.root }

// SetRoot installs id as the tree's System root and clears any previous
// parent link it had (a System is never owned by anything else).
func (t *Tree) SetRoot(id NodeID) {
	if n := t.Node(id); n != nil {
		n.Parent = NoNode
	}
	t.root = id
}

// Len reports how many nodes the tree currently holds (including detached
// ones awaiting garbage collection via a trash bag).
func (t *Tree) Len() uint32 { return t.arena.Len() }

// Parent returns id's parent, or NoNode if id is the root or invalid.
func (t *Tree) Parent(id NodeID) NodeID {
	n := t.Node(id)
	if n == nil {
		return NoNode
	}
	return n.Parent
}
