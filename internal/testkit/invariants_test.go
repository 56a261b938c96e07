package testkit

import (
	"testing"

	"hif/internal/ir"
	"hif/internal/semantics"
)

func bitvector(t *testing.T, tree *ir.Tree, width int, signed bool) ir.NodeID {
	t.Helper()
	f := ir.NewFactory(tree)
	intType := f.SimpleType(ir.ClassTypeInt, ir.NoNode, false, true)
	left := f.IntConst(int64(width-1), intType)
	right := f.IntConst(0, intType)
	span := f.Span(left, right, ir.DirDownto)
	kind := ir.ClassTypeUnsigned
	if signed {
		kind = ir.ClassTypeSigned
	}
	return f.SimpleType(kind, span, signed, false)
}

func TestCheckPrecisionTotality(t *testing.T) {
	tree := ir.NewTree(32)
	sem := semantics.NewRTL()
	a := bitvector(t, tree, 8, false)
	b := bitvector(t, tree, 16, false)

	if err := CheckPrecisionTotality(tree, sem, a, b); err != nil {
		t.Fatalf("CheckPrecisionTotality: %v", err)
	}
}

// TestCheckTreeOwnershipAssign builds a minimal Assign (target := source)
// and verifies both operands are reachable with exactly one parent, the
// Assign itself.
func TestCheckTreeOwnershipAssign(t *testing.T) {
	tree := ir.NewTree(16)
	f := ir.NewFactory(tree)
	target := f.BoolConst(false, f.SimpleType(ir.ClassTypeBool, ir.NoNode, false, false))
	source := f.BoolConst(true, f.SimpleType(ir.ClassTypeBool, ir.NoNode, false, false))
	assignID := f.Assign(target, source, false)

	tree.SetRoot(assignID)
	if err := CheckTreeOwnership(tree, assignID); err != nil {
		t.Fatalf("CheckTreeOwnership: %v", err)
	}
}

// TestCheckTreeOwnershipDetectsStaleParentLink verifies the checker catches
// a child whose stored Parent link no longer matches the parent it is
// reached through: what the "attaching a node to a field clears
// any prior parent link it had" is meant to prevent.
func TestCheckTreeOwnershipDetectsStaleParentLink(t *testing.T) {
	tree := ir.NewTree(16)
	f := ir.NewFactory(tree)
	boolType := f.SimpleType(ir.ClassTypeBool, ir.NoNode, false, false)
	shared := f.BoolConst(false, boolType)
	source := f.BoolConst(true, boolType)
	firstAssign := f.Assign(shared, source, false)

	// A second Assign re-adopts shared without the first Assign releasing
	// its own Target field, leaving firstAssign.Target pointing at a node
	// whose Parent now names the second Assign.
	_ = f.Assign(shared, source, false)

	tree.SetRoot(firstAssign)
	if err := CheckTreeOwnership(tree, firstAssign); err == nil {
		t.Fatal("expected CheckTreeOwnership to reject the stale parent link, got nil")
	}
}
