// Package precision implements the cross-semantics precision comparator:
// given two span-bearing types, possibly canonicalized under
// different Language implementations, decide whether one is strictly wider,
// strictly narrower, exactly equal, or incomparable.
//
// The comparison uses the signed size-diff interpretation over the
// semantics.Language.TypeSize/TypeSigned hooks rather than a fixed numeric
// kind table, since HIF widths are dynamic (vector spans) rather than a
// closed kind set.
package precision

import (
	"hif/internal/ir"
	"hif/internal/semantics"
)

// Ordering is the four-way result of Compare.
type Ordering uint8

const (
	Uncomparable Ordering = iota
	Less
	Greater
	Equal
)

func (o Ordering) String() string {
	switch o {
	case Less:
		return "LESS"
	case Greater:
		return "GREATER"
	case Equal:
		return "EQUAL"
	default:
		return "UNCOMPARABLE"
	}
}

// Compare decides how a's precision relates to b's, under semA/semB
// respectively. Both types must carry a resolvable size (a span, for
// vector-like kinds, or a fixed scalar width); if either does not, the
// result is Uncomparable ("both types must have a span").
//
// The comparison is a raw width difference, with each side of it loosened by
// one when that side is signed: a signed N-bit type represents the same
// nonnegative range as an unsigned (N-1)-bit type, so a one-bit gap in
// either direction collapses to Equal whenever the wider side is the signed
// one (the "under a signed interpretation, simplify (diff ≤ 0)
// and (diff >= 0)": each inequality is tested against its own signed-relaxed
// bound, and Equal is exactly both holding at once).
func Compare(treeA *ir.Tree, a ir.NodeID, semA semantics.Language, treeB *ir.Tree, b ir.NodeID, semB semantics.Language) Ordering {
	wa, oka := semA.TypeSize(treeA, a)
	wb, okb := semB.TypeSize(treeB, b)
	if !oka || !okb {
		return Uncomparable
	}
	diff := wa - wb
	signedA := semA.TypeSigned(treeA, a)
	signedB := semB.TypeSigned(treeB, b)

	leBound := 0
	if signedA {
		leBound = 1
	}
	geBound := 0
	if signedB {
		geBound = -1
	}
	le := diff <= leBound
	ge := diff >= geBound

	switch {
	case le && ge:
		return Equal
	case le:
		return Less
	case ge:
		return Greater
	default:
		return Uncomparable
	}
}

// CompareSameSemantics is the common single-semantics case (both types live
// under the same Language), avoiding the two-tree ceremony of Compare.
func CompareSameSemantics(tree *ir.Tree, a, b ir.NodeID, sem semantics.Language) Ordering {
	return Compare(tree, a, sem, tree, b, sem)
}
