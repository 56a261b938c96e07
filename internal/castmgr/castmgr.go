// Package castmgr implements the Cast Manager: the pass that
// runs last in the translation pipeline, after the Standardization Engine
// and Symbol Mapper, converting every engine-inserted Cast into the
// destination semantics' idiomatic form and repairing non-idiomatic boolean
// conditions.
//
// A post-standardize walk that replaces every synthetic cast with a
// constructor call or comparison appropriate to the target language,
// sharing its single Guide-visitor walk-and-rewrite shape with the
// Standardization Engine's
// repair.go: one pass over the already-standardized tree, no recursion
// state beyond what the CastMap already carries.
package castmgr

import (
	"fmt"

	"hif/internal/castmap"
	"hif/internal/diag"
	"hif/internal/hifctx"
	"hif/internal/ir"
	"hif/internal/semantics"
	"hif/internal/source"
)

// ManageCasts rewrites every Cast node recorded in casts into dst's
// idiomatic form, then repairs non-idiomatic boolean conditions on every
// condition-bearing construct under root. src is the semantics the CastMap's
// pre-map types were recorded against (the boolean-conversion step
// consults the value's original semantics, not the destination's).
func ManageCasts(ctx *hifctx.Context, root ir.NodeRef, src, dst semantics.Language, casts *castmap.CastMap) error {
	defer ctx.FlushTypeCache()
	defer ctx.FlushInstanceCache()
	if !root.IsValid() {
		return fmt.Errorf("castmgr: invalid root")
	}
	tree := root.Tree

	if err := resolveCasts(ctx, tree, src, dst, casts, root.Node); err != nil {
		return err
	}
	return repairConditions(ctx, tree, src, root.Node)
}

// resolveCasts walks every Cast under root and replaces it with dst's
// idiomatic rendering. Casts are collected up front, mirroring the Symbol
// Mapper's collect-then-rewrite shape, since replaceInParent mutates the
// very list the walk descends.
func resolveCasts(ctx *hifctx.Context, tree *ir.Tree, src, dst semantics.Language, casts *castmap.CastMap, root ir.NodeID) error {
	var found []ir.NodeID
	ir.WalkAncestor(tree, root, &castCollector{out: &found})

	for _, id := range found {
		n := tree.Node(id)
		if n == nil {
			continue
		}
		cd, ok := n.Data.(*ir.CastData)
		if !ok {
			continue
		}
		entry, _ := casts.Lookup(id)
		repl := dst.ExplicitCast(tree, cd.Value, cd.Type, entry.OriginalType)
		if !repl.IsValid() {
			return ctx.Errorf(diag.CastNoSuitableCast, spanOf(tree, id),
				"no %s cast exists from %s", dst.Name(), src.Name())
		}
		replaceInParent(tree, id, repl)
		casts.Forget(id)
	}
	return nil
}

type castCollector struct {
	ir.NoOpAncestorVisitor
	out *[]ir.NodeID
}

// VisitValue narrows the walk to the Value family before the kind test:
// every Cast is a Value, so no other dispatch slot needs checking.
func (c *castCollector) VisitValue(tree *ir.Tree, id ir.NodeID) {
	if n := tree.Node(id); n != nil && n.Kind == ir.ClassCast {
		*c.out = append(*c.out, id)
	}
}

// conditionHolders names the field each condition-bearing construct stores
// its test in (the "If, IfGenerate, For, ForGenerate, WhenAlt").
var conditionHolders = map[ir.ClassID]string{
	ir.ClassIfAlt:       "Condition",
	ir.ClassIfGenerate:  "Condition",
	ir.ClassFor:         "Condition",
	ir.ClassForGenerate: "Condition",
	ir.ClassWhenAlt:     "Condition",
}

// repairConditions replaces every direct cast<Bool>(x) condition that is not
// already dst's idiomatic boolean test with the source semantics' explicit
// boolean conversion, leaving logic-ternary contexts untouched.
func repairConditions(ctx *hifctx.Context, tree *ir.Tree, src semantics.Language, root ir.NodeID) error {
	var holders []ir.NodeID
	ir.WalkAncestor(tree, root, &conditionCollector{out: &holders})

	for _, id := range holders {
		n := tree.Node(id)
		if n == nil {
			continue
		}
		field, ok := conditionHolders[n.Kind]
		if !ok {
			continue
		}
		if n.Kind == ir.ClassWhenAlt {
			if pn := tree.Node(tree.Parent(id)); pn != nil {
				if wd, ok := pn.Data.(*ir.WhenData); ok && wd.Logic {
					continue
				}
			}
		}
		condID, ok := fieldValue(n.Data, field)
		if !ok || !condID.IsValid() {
			continue
		}
		cn := tree.Node(condID)
		if cn == nil {
			continue
		}
		cd, ok := cn.Data.(*ir.CastData)
		if !ok {
			continue
		}
		tn := tree.Node(cd.Type)
		if tn != nil && tn.Data.ClassID() == ir.ClassTypeBool {
			// Already the idiomatic destination boolean cast; leave it.
			continue
		}
		repl := src.ExplicitBoolConversion(tree, cd.Value)
		if !repl.IsValid() {
			return ctx.Errorf(diag.CastBoolConversionFail, spanOf(tree, condID),
				"condition of %s could not be converted to a boolean test", n.Kind)
		}
		_, _ = tree.SetChild(id, field, repl)
	}
	return nil
}

type conditionCollector struct {
	ir.NoOpAncestorVisitor
	out *[]ir.NodeID
}

func (c *conditionCollector) VisitAction(_ *ir.Tree, id ir.NodeID) { *c.out = append(*c.out, id) }
func (c *conditionCollector) VisitAlt(_ *ir.Tree, id ir.NodeID)    { *c.out = append(*c.out, id) }

// VisitObject picks up IfGenerate/ForGenerate, which carry a Condition field
// but belong to neither the Action nor Alt abstract family.
func (c *conditionCollector) VisitObject(tree *ir.Tree, id ir.NodeID) {
	if n := tree.Node(id); n != nil {
		switch n.Kind {
		case ir.ClassIfGenerate, ir.ClassForGenerate:
			*c.out = append(*c.out, id)
		}
	}
}

func fieldValue(p ir.Payload, name string) (ir.NodeID, bool) {
	for _, f := range p.Fields() {
		if f.Name == name {
			return f.Get(), true
		}
	}
	return ir.NoNode, false
}

func spanOf(tree *ir.Tree, id ir.NodeID) source.Span {
	if n := tree.Node(id); n != nil {
		return n.Code.Span
	}
	return source.Span{}
}

// replaceInParent swaps old for replacement at whatever field or list slot
// of old's parent currently holds it.
func replaceInParent(tree *ir.Tree, old, replacement ir.NodeID) bool {
	parent := tree.Parent(old)
	pn := tree.Node(parent)
	if pn == nil {
		return false
	}
	for _, f := range pn.Data.Fields() {
		if f.Get() == old {
			_, _ = tree.SetChild(parent, f.Name, replacement)
			return true
		}
	}
	for _, l := range pn.Data.Lists() {
		idx := l.List.IndexOf(old)
		if idx < 0 {
			continue
		}
		tree.ListRemove(l.List, idx)
		tree.ListInsert(l.List, idx, replacement)
		return true
	}
	return false
}
