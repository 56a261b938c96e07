package xmlcodec

import (
	"bytes"
	"strings"
	"testing"

	"hif/internal/ir"
)

// buildSmallSystem wires a System owning one signal declaration and one
// concurrent assignment deep enough to exercise scalar attributes, field
// wrappers and list wrappers on the wire.
func buildSmallSystem(t *testing.T) *ir.System {
	t.Helper()
	tree := ir.NewTree(32)
	f := ir.NewFactory(tree)

	sysData := &ir.SystemData{FormatVersion: "4.0"}
	sysID := tree.Alloc(ir.Node{Kind: ir.ClassSystem, Data: sysData})
	tree.SetRoot(sysID)
	sysData.Libraries.Owner = sysID
	sysData.DesignUnits.Owner = sysID
	sysData.Declarations.Owner = sysID

	sig := tree.Alloc(ir.Node{Kind: ir.ClassSignal, Data: &ir.SignalData{}})
	if named, ok := ir.AsNamed(tree.Node(sig)); ok {
		named.SetName("q")
	}
	tree.ListPushBack(&sysData.Declarations, sig)

	cnst := tree.Alloc(ir.Node{Kind: ir.ClassConst, Data: &ir.ConstData{}})
	if named, ok := ir.AsNamed(tree.Node(cnst)); ok {
		named.SetName("width")
	}
	if _, err := tree.SetChild(cnst, "Value", f.IntConst(8, NoTypeInt(f))); err != nil {
		t.Fatalf("SetChild Value: %v", err)
	}
	tree.ListPushBack(&sysData.Declarations, cnst)

	return ir.NewSystem(tree)
}

// NoTypeInt gives the literal a syntactic Int type so the round trip has a
// nested type child to carry.
func NoTypeInt(f *ir.Factory) ir.NodeID {
	return f.SimpleType(ir.ClassTypeInt, ir.NoNode, true, true)
}

func TestRoundTripPreservesShape(t *testing.T) {
	sys := buildSmallSystem(t)

	var buf bytes.Buffer
	if err := WriteXML(&buf, sys, Options{Indent: "  "}); err != nil {
		t.Fatalf("WriteXML: %v", err)
	}

	reparsed, err := ParseXML(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("ParseXML: %v\ndocument:\n%s", err, buf.String())
	}

	var second bytes.Buffer
	if err := WriteXML(&second, reparsed, Options{Indent: "  "}); err != nil {
		t.Fatalf("second WriteXML: %v", err)
	}
	if got, want := second.String(), buf.String(); got != want {
		t.Fatalf("round trip is not a fixed point:\nfirst:\n%s\nsecond:\n%s", want, got)
	}
}

func TestRoundTripPreservesScalars(t *testing.T) {
	sys := buildSmallSystem(t)

	var buf bytes.Buffer
	if err := WriteXML(&buf, sys, Options{}); err != nil {
		t.Fatalf("WriteXML: %v", err)
	}
	reparsed, err := ParseXML(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("ParseXML: %v", err)
	}

	tree := reparsed.Tree
	root := tree.Node(tree.Root())
	sysData, ok := root.Data.(*ir.SystemData)
	if !ok {
		t.Fatalf("root payload is %T", root.Data)
	}
	if sysData.FormatVersion != "4.0" {
		t.Fatalf("formatVersion %q did not survive", sysData.FormatVersion)
	}
	if sysData.Declarations.Len() != 2 {
		t.Fatalf("declarations count %d, want 2", sysData.Declarations.Len())
	}

	sig := tree.Node(sysData.Declarations.At(0))
	named, _ := ir.AsNamed(sig)
	if sig.Kind != ir.ClassSignal || named.GetName() != "q" {
		t.Fatalf("first declaration %s %q, want SIGNAL q", sig.Kind, named.GetName())
	}

	cnst := tree.Node(sysData.Declarations.At(1)).Data.(*ir.ConstData)
	val := tree.Node(cnst.Value)
	iv, ok := val.Data.(*ir.IntValueData)
	if !ok || iv.Value != 8 {
		t.Fatalf("const value did not survive: %T", val.Data)
	}
	typ := tree.Node(iv.Type)
	if typ == nil || typ.Kind != ir.ClassTypeInt {
		t.Fatalf("literal's syntactic type did not survive")
	}
}

func TestRoundTripPreservesOwnership(t *testing.T) {
	sys := buildSmallSystem(t)

	var buf bytes.Buffer
	if err := WriteXML(&buf, sys, Options{}); err != nil {
		t.Fatalf("WriteXML: %v", err)
	}
	reparsed, err := ParseXML(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("ParseXML: %v", err)
	}

	tree := reparsed.Tree
	var walk func(id ir.NodeID)
	walk = func(id ir.NodeID) {
		n := tree.Node(id)
		for _, fs := range n.Data.Fields() {
			child := fs.Get()
			if !child.IsValid() {
				continue
			}
			if tree.Parent(child) != id {
				t.Fatalf("field child %d of %d has parent %d", child, id, tree.Parent(child))
			}
			walk(child)
		}
		for _, ls := range n.Data.Lists() {
			for i := 0; i < ls.List.Len(); i++ {
				child := ls.List.At(i)
				if tree.Parent(child) != id {
					t.Fatalf("list child %d of %d has parent %d", child, id, tree.Parent(child))
				}
				walk(child)
			}
		}
	}
	walk(tree.Root())
}

func TestParseRejectsNonSystemRoot(t *testing.T) {
	_, err := ParseXML(strings.NewReader(`<SIGNAL name="q" line="0" column="0"></SIGNAL>`))
	if err == nil {
		t.Fatal("ParseXML accepted a non-System root")
	}
}

func TestParseRejectsUnknownElement(t *testing.T) {
	_, err := ParseXML(strings.NewReader(`<BANANA/>`))
	if err == nil {
		t.Fatal("ParseXML accepted an unknown element tag")
	}
}
