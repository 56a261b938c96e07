// Package testkit holds small, hand-rolled invariant checkers used by the
// rest of the module's test suites to assert whole-tree properties
// (ownership, typing, sensitivity), rather than a third-party assertion
// library: the checks walk a standardized or split HIF tree and verify
// the properties that matter for this domain.
package testkit

import (
	"fmt"

	"hif/internal/ir"
	"hif/internal/precision"
	"hif/internal/procanalysis"
	"hif/internal/semantics"
)

// CheckTreeOwnership walks every node reachable from root and verifies
// the ownership invariant: each non-root node has exactly one
// parent, and the parent a node was reached through matches its stored
// Parent link, and no node is reachable through two different parents.
func CheckTreeOwnership(tree *ir.Tree, root ir.NodeID) error {
	seen := make(map[ir.NodeID]ir.NodeID) // child -> parent it was reached from
	var walk func(id, parent ir.NodeID) error
	walk = func(id, parent ir.NodeID) error {
		if !id.IsValid() {
			return nil
		}
		if prior, ok := seen[id]; ok {
			return fmt.Errorf("node %d is reachable through both %d and %d (not exactly one parent)", id, prior, parent)
		}
		seen[id] = parent
		n := tree.Node(id)
		if n == nil {
			return fmt.Errorf("node %d has no backing storage", id)
		}
		if n.Parent != parent {
			return fmt.Errorf("node %d.Parent=%d, but reached via %d", id, n.Parent, parent)
		}
		if n.Data == nil {
			return nil
		}
		for _, f := range n.Data.Fields() {
			if err := walk(f.Get(), id); err != nil {
				return err
			}
		}
		for _, l := range n.Data.Lists() {
			for i := 0; i < l.List.Len(); i++ {
				if err := walk(l.List.At(i), id); err != nil {
					return err
				}
			}
		}
		return nil
	}
	return walk(root, ir.NoNode)
}

// CheckAssignAssignable asserts that an assignment's target/source type
// pair admits the := operator under sem, given the
// already-resolved operand types. Callers resolve lhsType/rhsType themselves
// (e.g. from a pass's own type cache); this package has no access to a
// pass's internal Engine state.
func CheckAssignAssignable(tree *ir.Tree, sem semantics.Language, lhsType, rhsType ir.NodeID) error {
	res := sem.ExprType(tree, lhsType, ir.OpAssign, rhsType, semantics.ContextNone)
	if !res.OK {
		return fmt.Errorf("assign target/source pair is not assignable under %s", sem.Name())
	}
	return nil
}

// CheckExpressionWellTyped asserts that an expression's operand types admit
// its operator under sem, and that the operator agrees with sem's remap of
// srcOp.
func CheckExpressionWellTyped(tree *ir.Tree, sem semantics.Language, exprID ir.NodeID, srcOp ir.Operator) error {
	n := tree.Node(exprID)
	if n == nil {
		return fmt.Errorf("expression %d not found", exprID)
	}
	e, ok := n.Data.(*ir.ExpressionData)
	if !ok {
		return fmt.Errorf("node %d is not an Expression", exprID)
	}
	res := sem.ExprType(tree, e.Op1, e.Op, e.Op2, semantics.ContextNone)
	if !res.OK {
		return fmt.Errorf("expression %d is not well-typed under %s", exprID, sem.Name())
	}
	mapped := sem.MapOperator(srcOp, e.Op1, e.Op2, e.Op1, e.Op2)
	if mapped != e.Op {
		return fmt.Errorf("expression %d op=%s does not match %s.MapOperator(%s)=%s", exprID, e.Op, sem.Name(), srcOp, mapped)
	}
	return nil
}

// CheckInstanceArity asserts the structural half of the "for every
// Instance in the output, port_assigns.len() == declaration.ports.len()":
// bindability of each pair needs a resolved semantic type and is left to the
// standardizer's own tests, which have the Engine in scope.
func CheckInstanceArity(tree *ir.Tree, instanceID ir.NodeID) error {
	n := tree.Node(instanceID)
	if n == nil {
		return fmt.Errorf("instance %d not found", instanceID)
	}
	inst, ok := n.Data.(*ir.InstanceData)
	if !ok {
		return fmt.Errorf("node %d is not an Instance", instanceID)
	}
	refNode := tree.Node(inst.ReferencedType)
	if refNode == nil {
		return fmt.Errorf("instance %d's ReferencedType does not resolve", instanceID)
	}
	sym, ok := ir.AsSymbol(refNode)
	if !ok {
		return fmt.Errorf("instance %d's ReferencedType is not a Symbol feature", instanceID)
	}
	viewNode := tree.Node(sym.ResolvesTo())
	if viewNode == nil {
		return fmt.Errorf("instance %d's referenced declaration is unresolved", instanceID)
	}
	view, ok := viewNode.Data.(*ir.ViewData)
	if !ok {
		return fmt.Errorf("instance %d does not resolve to a View", instanceID)
	}
	entityNode := tree.Node(view.Entity)
	if entityNode == nil {
		return fmt.Errorf("view %d has no Entity", view.Entity)
	}
	entity, ok := entityNode.Data.(*ir.EntityData)
	if !ok {
		return fmt.Errorf("view's Entity field is not an Entity node")
	}
	if inst.PortAssigns.Len() != entity.Ports.Len() {
		return fmt.Errorf("instance %d has %d port assigns, declaration has %d ports", instanceID, inst.PortAssigns.Len(), entity.Ports.Len())
	}
	return nil
}

// CheckSynchronousSensitivity asserts that a process classified
// synchronous after splitting is sensitive only to its
// clock (and reset if any). Only classified synchronous kinds are
// validated; asynchronous/mixed processes are untouched by this property.
func CheckSynchronousSensitivity(tree *ir.Tree, pm *procanalysis.ProcessMap, process ir.NodeID, std *ir.StateTableData) error {
	info, ok := pm.Get(process)
	if !ok {
		return fmt.Errorf("process %d has no ProcessInfos", process)
	}
	if info.Kind != procanalysis.KindSynchronous && info.Kind != procanalysis.KindDerivedSynchronous {
		return nil
	}
	allowed := make(map[ir.NodeID]bool)
	if info.Clock.IsValid() {
		allowed[info.Clock] = true
	}
	if info.Reset.IsValid() {
		allowed[info.Reset] = true
	}
	check := func(list ir.BList) error {
		for i := 0; i < list.Len(); i++ {
			v := list.At(i)
			target := v
			if sym, ok := ir.AsSymbol(tree.Node(v)); ok {
				target = sym.ResolvesTo()
			}
			if !allowed[target] {
				return fmt.Errorf("synchronous process %d is sensitive to %d, which is neither its clock nor reset", process, v)
			}
		}
		return nil
	}
	if err := check(std.Sensitivity); err != nil {
		return err
	}
	if err := check(std.SensitivityPos); err != nil {
		return err
	}
	return check(std.SensitivityNeg)
}

// CheckPrecisionTotality asserts the two precision-comparator
// laws: compare_precision(t,t) == EQUAL, and compare_precision(a,b) ==
// GREATER iff compare_precision(b,a) == LESS.
func CheckPrecisionTotality(tree *ir.Tree, sem semantics.Language, a, b ir.NodeID) error {
	if got := precision.CompareSameSemantics(tree, a, a, sem); got != precision.Equal {
		return fmt.Errorf("compare_precision(a,a) = %s, want Equal", got)
	}
	if got := precision.CompareSameSemantics(tree, b, b, sem); got != precision.Equal {
		return fmt.Errorf("compare_precision(b,b) = %s, want Equal", got)
	}
	ab := precision.CompareSameSemantics(tree, a, b, sem)
	ba := precision.CompareSameSemantics(tree, b, a, sem)
	if ab == precision.Greater && ba != precision.Less {
		return fmt.Errorf("compare_precision(a,b)=Greater but compare_precision(b,a)=%s, want Less", ba)
	}
	if ab == precision.Less && ba != precision.Greater {
		return fmt.Errorf("compare_precision(a,b)=Less but compare_precision(b,a)=%s, want Greater", ba)
	}
	return nil
}
