package precision

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
	kind := ir.ClassTypeBitvector
	if signed {
		kind = ir.ClassTypeSigned
	} else {
		kind = ir.ClassTypeUnsigned
	}
	return f.SimpleType(kind, span, signed, false)
}

// TestComparePrecisionEqualSpansDifferentSignedness: an 8-bit signed type
// and an 8-bit unsigned type compare Equal: the widths match, so the size
// difference is 0, which passes both the ≤ and the ≥ test whatever the
// signedness.
func TestComparePrecisionEqualSpansDifferentSignedness(t *testing.T) {
	tree := ir.NewTree(32)
	sem := semantics.NewRTL()
	a := bitvector(t, tree, 8, true)
	b := bitvector(t, tree, 8, false)

	if got := CompareSameSemantics(tree, a, b, sem); got != Equal {
		t.Fatalf("compare_precision(int<8> signed, int<8> unsigned) = %s, want EQUAL", got)
	}
}

func TestComparePrecisionTotality(t *testing.T) {
	tree := ir.NewTree(32)
	sem := semantics.NewRTL()
	a := bitvector(t, tree, 8, false)
	b := bitvector(t, tree, 16, false)

	if got := CompareSameSemantics(tree, a, a, sem); got != Equal {
		t.Fatalf("compare_precision(t,t) = %s, want EQUAL", got)
	}

	ab := CompareSameSemantics(tree, a, b, sem)
	ba := CompareSameSemantics(tree, b, a, sem)
	switch ab {
	case Greater:
		if ba != Less {
			t.Fatalf("compare_precision(a,b)=GREATER but compare_precision(b,a)=%s, want LESS", ba)
		}
	case Less:
		if ba != Greater {
			t.Fatalf("compare_precision(a,b)=LESS but compare_precision(b,a)=%s, want GREATER", ba)
		}
	default:
		t.Fatalf("expected an 8-bit and a 16-bit unsigned vector to be comparable, got %s", ab)
	}
}

func TestComparePrecisionUncomparableWithoutSpan(t *testing.T) {
	tree := ir.NewTree(8)
	sem := semantics.NewRTL()
	f := ir.NewFactory(tree)
	realType := f.SimpleType(ir.ClassTypeReal, ir.NoNode, true, true)
	vec := bitvector(t, tree, 4, false)

	if got := CompareSameSemantics(tree, realType, vec, sem); got != Uncomparable {
		t.Fatalf("expected a spanless Real compared against a spanned vector to be UNCOMPARABLE, got %s", got)
	}
}
