package ir

// GuideVisitor is the second fixed visitor shape: unlike
// FlatVisitor it never switches on kind. It walks children generically
// through Fields()/Lists() introspection, wrapping the walk with a
// before/after hook pair, and folds each child's result into the parent's
// with bitwise OR. This is the shape used by passes that want "did anything
// change anywhere under here" signals (e.g. the Standardization Engine's
// dirty-subtree propagation) without hand-writing recursion for every kind.
type GuideVisitor interface {
	// BeforeNode runs before a node's children are visited. Returning
	// skipChildren true suppresses the recursive walk entirely (AfterNode
	// still runs, with childAcc 0).
	BeforeNode(tree *Tree, id NodeID) (skipChildren bool)
	// AfterNode runs after all of id's children have been visited and
	// folded together with bitwise OR into childAcc. Its return value is
	// what the parent call folds in turn.
	AfterNode(tree *Tree, id NodeID, childAcc uint32) uint32
}

// NoOpGuideVisitor answers BeforeNode with "don't skip" and AfterNode with
// the accumulator unchanged, so embedders only override what they need.
type NoOpGuideVisitor struct{}

func (NoOpGuideVisitor) BeforeNode(*Tree, NodeID) bool { return false }
func (NoOpGuideVisitor) AfterNode(_ *Tree, _ NodeID, childAcc uint32) uint32 {
	return childAcc
}

// Guide runs the Guide visitor shape over id and its descendants.
func Guide(tree *Tree, id NodeID, v GuideVisitor) uint32 {
	if !id.IsValid() {
		return 0
	}
	skip := v.BeforeNode(tree, id)
	if skip {
		return v.AfterNode(tree, id, 0)
	}
	var acc uint32
	n := tree.Node(id)
	if n != nil && n.Data != nil {
		for _, f := range n.Data.Fields() {
			child := f.Get()
			if child.IsValid() {
				acc |= Guide(tree, child, v)
			}
		}
		for _, l := range n.Data.Lists() {
			for i := 0; i < l.List.Len(); i++ {
				child := l.List.At(i)
				if child.IsValid() {
					acc |= Guide(tree, child, v)
				}
			}
		}
	}
	return v.AfterNode(tree, id, acc)
}
