package ir

// AncestorVisitor is the third fixed visitor shape: dispatch
// by abstraction level rather than by concrete kind. A node is offered to
// its Features first (Symbol for a symbol payload, otherwise Named for a
// named one; Symbol embeds Named, so a symbol is not also offered as Named;
// then TypeSpanned), then to the whole chain of its abstract ancestors
// most-specific first (ConstValue before Value, Value before TypedObject,
// SimpleType before Type), and finally to the Object catch-all. Apart from
// the Symbol/Named choice every applicable method runs; this is not a
// first-match switch, it is a fixed probing order.
type AncestorVisitor interface {
	VisitNamed(tree *Tree, id NodeID, f Named)
	VisitSymbol(tree *Tree, id NodeID, f Symbol)
	VisitTypeSpanned(tree *Tree, id NodeID, f TypeSpanned)
	VisitConstValue(tree *Tree, id NodeID)
	VisitValue(tree *Tree, id NodeID)
	VisitTypedObject(tree *Tree, id NodeID)
	VisitSimpleType(tree *Tree, id NodeID)
	VisitType(tree *Tree, id NodeID)
	VisitAction(tree *Tree, id NodeID)
	VisitAlt(tree *Tree, id NodeID)
	VisitReferencedAssign(tree *Tree, id NodeID)
	VisitDataDeclaration(tree *Tree, id NodeID)
	VisitObject(tree *Tree, id NodeID)
}

// NoOpAncestorVisitor implements every AncestorVisitor method as a no-op.
type NoOpAncestorVisitor struct{}

func (NoOpAncestorVisitor) VisitNamed(*Tree, NodeID, Named)             {}
func (NoOpAncestorVisitor) VisitSymbol(*Tree, NodeID, Symbol)           {}
func (NoOpAncestorVisitor) VisitTypeSpanned(*Tree, NodeID, TypeSpanned) {}
func (NoOpAncestorVisitor) VisitConstValue(*Tree, NodeID)               {}
func (NoOpAncestorVisitor) VisitValue(*Tree, NodeID)                    {}
func (NoOpAncestorVisitor) VisitTypedObject(*Tree, NodeID)              {}
func (NoOpAncestorVisitor) VisitSimpleType(*Tree, NodeID)               {}
func (NoOpAncestorVisitor) VisitType(*Tree, NodeID)                     {}
func (NoOpAncestorVisitor) VisitAction(*Tree, NodeID)                   {}
func (NoOpAncestorVisitor) VisitAlt(*Tree, NodeID)                      {}
func (NoOpAncestorVisitor) VisitReferencedAssign(*Tree, NodeID)         {}
func (NoOpAncestorVisitor) VisitDataDeclaration(*Tree, NodeID)          {}
func (NoOpAncestorVisitor) VisitObject(*Tree, NodeID)                   {}

// AcceptAncestor runs the Ancestor visitor shape over a single node (no
// recursion into children: callers combine it with Guide or their own walk
// when they need both "visit everything" and "dispatch by abstraction").
func AcceptAncestor(tree *Tree, id NodeID, v AncestorVisitor) {
	n := tree.Node(id)
	if n == nil {
		return
	}

	if sym, ok := AsSymbol(n); ok {
		v.VisitSymbol(tree, id, sym)
	} else if named, ok := AsNamed(n); ok {
		v.VisitNamed(tree, id, named)
	}
	if spanned, ok := AsTypeSpanned(n); ok {
		v.VisitTypeSpanned(tree, id, spanned)
	}

	switch {
	case n.Kind.IsConstValue():
		v.VisitConstValue(tree, id)
	case n.Kind.IsSimpleType():
		v.VisitSimpleType(tree, id)
		v.VisitType(tree, id)
	case n.Kind.IsType():
		v.VisitType(tree, id)
	case n.Kind.IsAction():
		v.VisitAction(tree, id)
	case n.Kind.IsAlt():
		v.VisitAlt(tree, id)
	case n.Kind.IsReferencedAssign():
		v.VisitReferencedAssign(tree, id)
	case n.Kind.IsDataDeclaration():
		v.VisitDataDeclaration(tree, id)
	}
	if n.Kind.IsValue() {
		v.VisitValue(tree, id)
	}
	if n.Kind.IsTypedObject() {
		v.VisitTypedObject(tree, id)
	}

	v.VisitObject(tree, id)
}

// WalkAncestor runs AcceptAncestor over id and every descendant, depth
// first, using the same generic Fields()/Lists() traversal as Guide.
func WalkAncestor(tree *Tree, id NodeID, v AncestorVisitor) {
	if !id.IsValid() {
		return
	}
	AcceptAncestor(tree, id, v)
	n := tree.Node(id)
	if n == nil || n.Data == nil {
		return
	}
	for _, f := range n.Data.Fields() {
		child := f.Get()
		if child.IsValid() {
			WalkAncestor(tree, child, v)
		}
	}
	for _, l := range n.Data.Lists() {
		for i := 0; i < l.List.Len(); i++ {
			child := l.List.At(i)
			if child.IsValid() {
				WalkAncestor(tree, child, v)
			}
		}
	}
}
