package ir

import (
	"reflect"
	"testing"
)

type countingGuide struct {
	NoOpGuideVisitor
	order []NodeID
	skip  NodeID
	flags map[NodeID]uint32
}

func (g *countingGuide) BeforeNode(_ *Tree, id NodeID) bool {
	g.order = append(g.order, id)
	return id == g.skip
}

func (g *countingGuide) AfterNode(_ *Tree, id NodeID, childAcc uint32) uint32 {
	return childAcc | g.flags[id]
}

func TestGuideVisitsFieldsThenLists(t *testing.T) {
	tree := NewTree(16)
	f := NewFactory(tree)

	ifData := &IfData{}
	ifID := tree.Alloc(Node{Kind: ClassIf, Data: ifData})
	ifData.Alts.Owner = ifID
	ifData.ElseBody.Owner = ifID

	target := f.Identifier("q", NoNode)
	src := f.IntConst(1, NoNode)
	assign := f.Assign(target, src, false)
	tree.ListPushBack(&ifData.ElseBody, assign)

	g := &countingGuide{flags: map[NodeID]uint32{}}
	Guide(tree, ifID, g)

	want := []NodeID{ifID, assign, target, src}
	if !reflect.DeepEqual(g.order, want) {
		t.Fatalf("guide order %v, want %v (declaration order, fields before lists)", g.order, want)
	}
}

func TestGuideSkipSuppressesSubtree(t *testing.T) {
	tree := NewTree(16)
	f := NewFactory(tree)

	ifData := &IfData{}
	ifID := tree.Alloc(Node{Kind: ClassIf, Data: ifData})
	ifData.Alts.Owner = ifID
	ifData.ElseBody.Owner = ifID
	assign := f.Assign(f.Identifier("q", NoNode), f.IntConst(1, NoNode), false)
	tree.ListPushBack(&ifData.ElseBody, assign)

	g := &countingGuide{skip: assign, flags: map[NodeID]uint32{}}
	Guide(tree, ifID, g)

	for _, id := range g.order {
		if tree.Parent(id) == assign {
			t.Fatalf("node %d under the skipped subtree was still visited", id)
		}
	}
}

func TestGuideAccumulatesWithBitwiseOr(t *testing.T) {
	tree := NewTree(16)
	f := NewFactory(tree)

	target := f.Identifier("q", NoNode)
	src := f.IntConst(1, NoNode)
	assign := f.Assign(target, src, false)

	g := &countingGuide{flags: map[NodeID]uint32{target: 0b01, src: 0b10}}
	if got := Guide(tree, assign, g); got != 0b11 {
		t.Fatalf("guide accumulated %#b, want 0b11", got)
	}
}

type traceAncestor struct {
	NoOpAncestorVisitor
	calls []string
}

func (v *traceAncestor) VisitNamed(*Tree, NodeID, Named)   { v.calls = append(v.calls, "named") }
func (v *traceAncestor) VisitSymbol(*Tree, NodeID, Symbol) { v.calls = append(v.calls, "symbol") }
func (v *traceAncestor) VisitConstValue(*Tree, NodeID)     { v.calls = append(v.calls, "constvalue") }
func (v *traceAncestor) VisitValue(*Tree, NodeID)          { v.calls = append(v.calls, "value") }
func (v *traceAncestor) VisitTypedObject(*Tree, NodeID)    { v.calls = append(v.calls, "typedobject") }
func (v *traceAncestor) VisitSimpleType(*Tree, NodeID)     { v.calls = append(v.calls, "simpletype") }
func (v *traceAncestor) VisitType(*Tree, NodeID)           { v.calls = append(v.calls, "type") }
func (v *traceAncestor) VisitAction(*Tree, NodeID)         { v.calls = append(v.calls, "action") }
func (v *traceAncestor) VisitObject(*Tree, NodeID)         { v.calls = append(v.calls, "object") }

func TestAncestorFeatureBeforeAbstract(t *testing.T) {
	tree := NewTree(8)
	f := NewFactory(tree)

	ident := f.Identifier("clk", NoNode)
	v := &traceAncestor{}
	AcceptAncestor(tree, ident, v)

	want := []string{"symbol", "value", "typedobject", "object"}
	if !reflect.DeepEqual(v.calls, want) {
		t.Fatalf("identifier dispatch %v, want %v (feature first, then the ancestor chain, Object last)", v.calls, want)
	}
}

func TestAncestorSimpleTypeSeesBothLevels(t *testing.T) {
	tree := NewTree(8)
	f := NewFactory(tree)

	bit := f.SimpleType(ClassTypeBit, NoNode, false, false)
	v := &traceAncestor{}
	AcceptAncestor(tree, bit, v)

	want := []string{"simpletype", "type", "object"}
	if !reflect.DeepEqual(v.calls, want) {
		t.Fatalf("simple-type dispatch %v, want %v (most specific ancestor first)", v.calls, want)
	}
}

func TestAncestorActionDispatch(t *testing.T) {
	tree := NewTree(8)
	f := NewFactory(tree)

	assign := f.Assign(f.Identifier("q", NoNode), f.IntConst(1, NoNode), false)
	v := &traceAncestor{}
	AcceptAncestor(tree, assign, v)

	want := []string{"action", "object"}
	if !reflect.DeepEqual(v.calls, want) {
		t.Fatalf("assign dispatch %v, want %v", v.calls, want)
	}
}

func TestAncestorConstValueChain(t *testing.T) {
	tree := NewTree(8)
	f := NewFactory(tree)

	lit := f.IntConst(5, NoNode)
	v := &traceAncestor{}
	AcceptAncestor(tree, lit, v)

	want := []string{"constvalue", "value", "typedobject", "object"}
	if !reflect.DeepEqual(v.calls, want) {
		t.Fatalf("literal dispatch %v, want %v (ConstValue, then Value, then TypedObject)", v.calls, want)
	}
}
