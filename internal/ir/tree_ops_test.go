package ir

import "testing"

func newAssign(t *testing.T, tree *Tree) (assign, target, src NodeID) {
	t.Helper()
	f := NewFactory(tree)
	target = f.Identifier("q", NoNode)
	src = f.Identifier("d", NoNode)
	assign = f.Assign(target, src, false)
	return assign, target, src
}

func TestSetChildTransfersOwnership(t *testing.T) {
	tree := NewTree(8)
	assign, _, oldSrc := newAssign(t, tree)
	f := NewFactory(tree)

	replacement := f.IntConst(1, NoNode)
	prev, err := tree.SetChild(assign, "Source", replacement)
	if err != nil {
		t.Fatalf("SetChild: %v", err)
	}
	if prev != oldSrc {
		t.Fatalf("SetChild returned %d, want previous child %d", prev, oldSrc)
	}
	if got := tree.Parent(oldSrc); got != NoNode {
		t.Fatalf("previous child still has parent %d after release", got)
	}
	if got := tree.Parent(replacement); got != assign {
		t.Fatalf("new child's parent is %d, want %d", got, assign)
	}
	data := tree.Node(assign).Data.(*AssignData)
	if data.Source != replacement {
		t.Fatalf("Source slot holds %d, want %d", data.Source, replacement)
	}
}

func TestSetChildUnknownFieldFails(t *testing.T) {
	tree := NewTree(8)
	assign, _, _ := newAssign(t, tree)
	if _, err := tree.SetChild(assign, "Bogus", NoNode); err == nil {
		t.Fatal("SetChild accepted a field name the payload does not own")
	}
}

func TestListOperationsMaintainParents(t *testing.T) {
	tree := NewTree(8)
	ifData := &IfData{}
	ifID := tree.Alloc(Node{Kind: ClassIf, Data: ifData})
	ifData.Alts.Owner = ifID
	ifData.ElseBody.Owner = ifID

	f := NewFactory(tree)
	a := f.Assign(f.Identifier("x", NoNode), f.IntConst(0, NoNode), false)
	b := f.Assign(f.Identifier("y", NoNode), f.IntConst(1, NoNode), false)

	tree.ListPushBack(&ifData.ElseBody, a)
	tree.ListInsert(&ifData.ElseBody, 0, b)
	if got := ifData.ElseBody.At(0); got != b {
		t.Fatalf("insert at 0 put %d first, want %d", got, b)
	}
	if tree.Parent(a) != ifID || tree.Parent(b) != ifID {
		t.Fatal("list members do not point back at the owning If")
	}

	removed := tree.ListRemove(&ifData.ElseBody, 0)
	if removed != b {
		t.Fatalf("ListRemove returned %d, want %d", removed, b)
	}
	if tree.Parent(b) != NoNode {
		t.Fatal("removed member still has a parent link")
	}

	rest := tree.ListClear(&ifData.ElseBody)
	if len(rest) != 1 || rest[0] != a {
		t.Fatalf("ListClear returned %v, want [%d]", rest, a)
	}
	if ifData.ElseBody.Len() != 0 {
		t.Fatal("list not empty after clear")
	}
}

func TestMatchedInsertMirrorsFieldSlot(t *testing.T) {
	tree := NewTree(16)
	oldAssign, _, oldSrc := newAssign(t, tree)
	dstAssign, _, _ := newAssign(t, tree)
	f := NewFactory(tree)

	mirrored := f.IntConst(7, NoNode)
	if err := tree.MatchedInsert(mirrored, dstAssign, oldSrc, oldAssign); err != nil {
		t.Fatalf("MatchedInsert: %v", err)
	}
	if got := tree.Node(dstAssign).Data.(*AssignData).Source; got != mirrored {
		t.Fatalf("mirrored child landed in %d, want the Source slot (%d)", got, mirrored)
	}
	if tree.Parent(mirrored) != dstAssign {
		t.Fatal("mirrored child not adopted by the new parent")
	}
}

func TestMatchedInsertMirrorsListPosition(t *testing.T) {
	tree := NewTree(16)
	f := NewFactory(tree)

	mk := func() (NodeID, *IfData, NodeID, NodeID) {
		d := &IfData{}
		id := tree.Alloc(Node{Kind: ClassIf, Data: d})
		d.Alts.Owner = id
		d.ElseBody.Owner = id
		first := f.Assign(f.Identifier("a", NoNode), f.IntConst(0, NoNode), false)
		second := f.Assign(f.Identifier("b", NoNode), f.IntConst(1, NoNode), false)
		tree.ListPushBack(&d.ElseBody, first)
		tree.ListPushBack(&d.ElseBody, second)
		return id, d, first, second
	}

	oldIf, _, _, oldSecond := mk()
	newIf, newData, _, _ := mk()

	mirrored := f.Assign(f.Identifier("c", NoNode), f.IntConst(2, NoNode), false)
	if err := tree.MatchedInsert(mirrored, newIf, oldSecond, oldIf); err != nil {
		t.Fatalf("MatchedInsert: %v", err)
	}
	if got := newData.ElseBody.At(1); got != mirrored {
		t.Fatalf("mirrored child landed at %d, want list position 1", newData.ElseBody.IndexOf(mirrored))
	}
}

func TestCloneSubtreeIsIndependent(t *testing.T) {
	tree := NewTree(16)
	assign, _, src := newAssign(t, tree)

	clone := tree.CloneSubtree(assign)
	if clone == assign || !clone.IsValid() {
		t.Fatalf("CloneSubtree returned %d", clone)
	}
	if tree.Parent(clone) != NoNode {
		t.Fatal("clone root must start detached")
	}

	cloneData := tree.Node(clone).Data.(*AssignData)
	if cloneData.Source == src {
		t.Fatal("clone shares a child with the original")
	}
	// Mutating the clone's child must leave the original untouched.
	cloneSrc, _ := AsNamed(tree.Node(cloneData.Source))
	cloneSrc.SetName("renamed")
	origSrc, _ := AsNamed(tree.Node(src))
	if origSrc.GetName() != "d" {
		t.Fatalf("original child renamed to %q through the clone", origSrc.GetName())
	}
}

func TestDeleteSubtreeReturnsEverythingOwned(t *testing.T) {
	tree := NewTree(16)
	assign, target, src := newAssign(t, tree)

	trash := tree.DeleteSubtree(assign)
	want := map[NodeID]bool{assign: true, target: true, src: true}
	if len(trash) != len(want) {
		t.Fatalf("DeleteSubtree freed %d nodes, want %d", len(trash), len(want))
	}
	for _, id := range trash {
		if !want[id] {
			t.Fatalf("DeleteSubtree freed unexpected node %d", id)
		}
	}
}
