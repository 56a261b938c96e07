package standardize

import (
	"hif/internal/diag"
	"hif/internal/ir"
	"hif/internal/precision"
	"hif/internal/semantics"
)

// repair is the kind-specific half of the skeleton-clone-then-repair visit:
// by the time it runs on a node, every field and list child has already been
// cloned (and recursively repaired) into dst, so repair only ever adjusts
// dst's own shape (installing a mapped type, inserting a cast, reordering a
// referenced-assign list) using already-standardized children.
//
// Repairs are one Go switch over ir.ClassID rather than per-kind double
// dispatch: every case works on already-standardized children and only
// decides what cast, remap or reorder the destination semantics needs.
func (e *Engine) repair(src ir.NodeID, srcNode *ir.Node, dst ir.NodeID) ir.NodeID {
	if e.abort != nil {
		return dst
	}
	switch srcNode.Kind {
	case ir.ClassTypeBit, ir.ClassTypeBool, ir.ClassTypeChar, ir.ClassTypeInt, ir.ClassTypeReal,
		ir.ClassTypeTime, ir.ClassTypeEvent, ir.ClassTypeString, ir.ClassTypeSigned, ir.ClassTypeUnsigned,
		ir.ClassTypeBitvector, ir.ClassTypeArray, ir.ClassTypeFile, ir.ClassTypePointer, ir.ClassTypeReference,
		ir.ClassTypeEnum, ir.ClassTypeRecord, ir.ClassTypeLibrary:
		return e.repairType(dst)
	case ir.ClassTypeReferenceDecl, ir.ClassTypeViewReference:
		return e.repairTypeReference(src, dst)
	case ir.ClassBitValue, ir.ClassBitvectorValue, ir.ClassBoolValue, ir.ClassCharValue, ir.ClassIntValue,
		ir.ClassRealValue, ir.ClassStringValue, ir.ClassTimeValue:
		return e.repairConstant(dst)
	case ir.ClassExpression:
		return e.repairExpression(src, dst)
	case ir.ClassAssign:
		return e.repairAssign(dst)
	case ir.ClassIf:
		return e.repairIf(dst)
	case ir.ClassWhile:
		return e.repairWhile(dst)
	case ir.ClassFor:
		return e.repairFor(dst)
	case ir.ClassIfGenerate:
		return e.repairIfGenerate(dst)
	case ir.ClassSwitch:
		return e.repairSwitch(dst)
	case ir.ClassWhen:
		return e.repairWhen(dst)
	case ir.ClassWith:
		return e.repairWith(dst)
	case ir.ClassMember:
		return e.repairMember(dst)
	case ir.ClassSlice:
		return e.repairSlice(dst)
	case ir.ClassRange:
		return e.repairRange(dst)
	case ir.ClassAggregate:
		return e.repairAggregate(dst)
	case ir.ClassAggregateAlt:
		return e.repairAggregateAlt(dst)
	case ir.ClassReturn:
		return e.repairReturn(dst)
	case ir.ClassPort:
		return e.repairPort(dst)
	case ir.ClassFunctionCall, ir.ClassProcedureCall:
		return e.repairCall(src, dst)
	case ir.ClassInstance:
		return e.repairInstance(src, dst)
	default:
		return dst
	}
}

// repairType installs dstSem's canonical rendering of a cloned type node
// (span rebase included, for a rebasing semantics; see semantics.TLM.MapType).
// While the engine runs a bound-detection probe the rebase mode bit is off
// and the type passes through untouched, so the probe itself never rebases.
func (e *Engine) repairType(dst ir.NodeID) ir.NodeID {
	if !e.canRebaseTypes {
		return dst
	}
	mapped := e.dstSem.MapType(e.dstTree, dst)
	if !mapped.IsValid() {
		n := e.dstTree.Node(dst)
		kind := ir.ClassInvalid
		if n != nil {
			kind = n.Kind
		}
		e.fail(diag.StdMissingMapEntry, spanOfNode(e.dstTree, dst), "no destination mapping for type kind %s", kind)
		return dst
	}
	return mapped
}

// repairConstant ensures a literal's syntactic Type field is populated under
// dstSem when the source tree left it implicit.
func (e *Engine) repairConstant(dst ir.NodeID) ir.NodeID {
	n := e.dstTree.Node(dst)
	if n == nil {
		return dst
	}
	f, ok := findField(n.Data, "Type")
	if !ok || f.Get().IsValid() {
		return dst
	}
	t := e.dstSem.TypeForConstant(e.dstTree, dst)
	f.Set(t)
	e.setParent(t, dst)
	return dst
}

// repairExpression re-types a binary/unary Expression under dstSem, trying
// the repair ladder in order: identity, then a uniform cast
// of both operands to the source operation's own (mapped) result type, then
// logical/shift-specific substitutes, then the semantics' own suggested
// per-operand fallback type. The standardization fails only when dstSem
// cannot type the repaired operation; a result type that still differs from
// the mapped source result type is fixed by casting the whole expression.
func (e *Engine) repairExpression(src, dst ir.NodeID) ir.NodeID {
	sd, ok := e.srcTree.Node(src).Data.(*ir.ExpressionData)
	if !ok {
		return dst
	}
	dd, ok := e.dstTree.Node(dst).Data.(*ir.ExpressionData)
	if !ok {
		return dst
	}

	ctx := semantics.ContextNone
	if sd.Op == ir.OpConcat {
		ctx = semantics.ContextConcat
	}

	srcRes := e.srcSem.ExprType(e.srcTree, sd.Op1, sd.Op, sd.Op2, ctx)
	if !srcRes.OK {
		e.fail(diag.StdUnsupportedConstruct, spanOfNode(e.srcTree, src), "operator %s has no source typing", sd.Op)
		return dst
	}

	eval := func() (ir.NodeID, ir.NodeID, semantics.ExprTypeResult) {
		t1 := e.typeOf(dd.Op1)
		t2 := ir.NoNode
		if dd.Op2.IsValid() {
			t2 = e.typeOf(dd.Op2)
		}
		return t1, t2, e.dstSem.ExprType(e.dstTree, t1, sd.Op, t2, ctx)
	}

	op1Type, op2Type, dstRes := eval()
	if !(dstRes.OK && dstRes.Precision == srcRes.Precision) {
		mappedSrcType := e.clone(srcRes.Type)
		if e.abort != nil {
			return dst
		}

		tryCast := func(t1, t2 ir.NodeID) {
			if t1.IsValid() && dd.Op1.IsValid() {
				dd.Op1 = e.castOperand(dd.Op1, t1)
				e.setParent(dd.Op1, dst)
			}
			if t2.IsValid() && dd.Op2.IsValid() {
				dd.Op2 = e.castOperand(dd.Op2, t2)
				e.setParent(dd.Op2, dst)
			}
			op1Type, op2Type, dstRes = eval()
		}

		switch {
		case sd.Op.IsLogical():
			boolT := e.dstSem.MapType(e.dstTree, ir.NewFactory(e.dstTree).SimpleType(ir.ClassTypeBool, ir.NoNode, false, false))
			tryCast(boolT, boolT)
		case sd.Op.IsShiftOrRotate():
			shiftT := e.dstSem.SuggestedTypeForOp(e.dstTree, srcRes.Precision, sd.Op, op1Type, ctx, false)
			tryCast(ir.NoNode, shiftT)
		default:
			tryCast(mappedSrcType, mappedSrcType)
			if !(dstRes.OK && dstRes.Precision == srcRes.Precision) {
				t1 := e.dstSem.SuggestedTypeForOp(e.dstTree, srcRes.Precision, sd.Op, op2Type, ctx, true)
				t2 := e.dstSem.SuggestedTypeForOp(e.dstTree, srcRes.Precision, sd.Op, op1Type, ctx, false)
				tryCast(t1, t2)
			}
		}

		if !dstRes.OK {
			e.fail(diag.CastNoSuitableCast, spanOfNode(e.dstTree, dst), "no cast repairs operator %s for the destination semantics", sd.Op)
			return dst
		}
		if !e.sameType(dstRes.Type, mappedSrcType) {
			dd.Op = e.dstSem.MapOperator(sd.Op, op1Type, op2Type, op1Type, op2Type)
			return e.insertCast(dst, mappedSrcType, srcRes.Type)
		}
	}
	dd.Op = e.dstSem.MapOperator(sd.Op, op1Type, op2Type, op1Type, op2Type)
	return dst
}

// castOperand wraps operand in a Cast to target unless it is already of that
// type, recording the operand's pre-cast type in the engine's CastMap.
func (e *Engine) castOperand(operand, target ir.NodeID) ir.NodeID {
	cur := e.typeOf(operand)
	if e.sameType(cur, target) {
		return operand
	}
	return e.insertCast(operand, target, cur)
}

// sameType is a practical equality check for two destination-tree types: the
// same concrete kind and, when dstSem can size both, the same precision.
// Kinds dstSem cannot size (records, enums, references) fall back to a bare
// ClassID match, since the engine has no canonical deep-equality rule for
// them.
func (e *Engine) sameType(a, b ir.NodeID) bool {
	if a == b {
		return true
	}
	na, nb := e.dstTree.Node(a), e.dstTree.Node(b)
	if na == nil || nb == nil {
		return false
	}
	if na.Data.ClassID() != nb.Data.ClassID() {
		return false
	}
	_, aKnown := e.dstSem.TypeSize(e.dstTree, a)
	_, bKnown := e.dstSem.TypeSize(e.dstTree, b)
	if !aKnown || !bKnown {
		return true
	}
	return precision.CompareSameSemantics(e.dstTree, a, b, e.dstSem) == precision.Equal
}

// assignable reports whether source may be assigned into target under
// dstSem: the target/source type pair must admit the := operator.
func (e *Engine) assignable(target, source ir.NodeID) bool {
	return e.dstSem.ExprType(e.dstTree, target, ir.OpAssign, source, semantics.ContextNone).OK
}

// repairAssign strips any cast the clone mirrored onto the assignment
// target (a destination semantics never accepts one there) and casts the
// source operand into the target's type when the pair is not directly
// assignable.
func (e *Engine) repairAssign(dst ir.NodeID) ir.NodeID {
	dd, ok := e.dstTree.Node(dst).Data.(*ir.AssignData)
	if !ok {
		return dst
	}
	if tn := e.dstTree.Node(dd.Target); tn != nil {
		if cd, ok := tn.Data.(*ir.CastData); ok {
			dd.Target = cd.Value
			e.setParent(dd.Target, dst)
		}
	}
	targetType := e.typeOf(dd.Target)
	if e.assignable(targetType, e.typeOf(dd.Source)) {
		return dst
	}
	dd.Source = e.insertCast(dd.Source, targetType, e.typeOf(dd.Source))
	e.setParent(dd.Source, dst)
	if !e.assignable(targetType, e.typeOf(dd.Source)) {
		e.fail(diag.CastNoSuitableCast, spanOfNode(e.dstTree, dst), "assignment has no well-typed form under the destination semantics")
	}
	return dst
}

// repairConditionValue converts *ref into dstSem's boolean idiom unless it
// already satisfies CheckCondition (e.g. RTL's Bit-logic ternary exception).
func (e *Engine) repairConditionValue(ref *ir.NodeID, owner ir.NodeID) {
	if !ref.IsValid() {
		return
	}
	t := e.typeOf(*ref)
	if e.dstSem.CheckCondition(e.dstTree, t, semantics.ContextCondition) {
		return
	}
	converted := e.dstSem.ExplicitBoolConversion(e.dstTree, *ref)
	if !converted.IsValid() {
		e.fail(diag.CastBoolConversionFail, spanOfNode(e.dstTree, *ref), "condition value has no boolean form under the destination semantics")
		return
	}
	*ref = converted
	e.setParent(*ref, owner)
}

func (e *Engine) repairIf(dst ir.NodeID) ir.NodeID {
	dd, ok := e.dstTree.Node(dst).Data.(*ir.IfData)
	if !ok {
		return dst
	}
	for i := 0; i < dd.Alts.Len(); i++ {
		alt := dd.Alts.At(i)
		if an, ok := e.dstTree.Node(alt).Data.(*ir.IfAltData); ok {
			e.repairConditionValue(&an.Condition, alt)
		}
	}
	return dst
}

func (e *Engine) repairWhile(dst ir.NodeID) ir.NodeID {
	if dd, ok := e.dstTree.Node(dst).Data.(*ir.WhileData); ok {
		e.repairConditionValue(&dd.Condition, dst)
	}
	return dst
}

func (e *Engine) repairFor(dst ir.NodeID) ir.NodeID {
	if dd, ok := e.dstTree.Node(dst).Data.(*ir.ForData); ok {
		e.repairConditionValue(&dd.Condition, dst)
	}
	return dst
}

func (e *Engine) repairIfGenerate(dst ir.NodeID) ir.NodeID {
	if dd, ok := e.dstTree.Node(dst).Data.(*ir.IfGenerateData); ok {
		e.repairConditionValue(&dd.Condition, dst)
	}
	return dst
}

// repairSwitch precision-aligns every SwitchAlt value against the switched
// Condition's own (already-standardized) type.
func (e *Engine) repairSwitch(dst ir.NodeID) ir.NodeID {
	dd, ok := e.dstTree.Node(dst).Data.(*ir.SwitchData)
	if !ok || !dd.Condition.IsValid() {
		return dst
	}
	condType := e.typeOf(dd.Condition)
	for i := 0; i < dd.Alts.Len(); i++ {
		an, ok := e.dstTree.Node(dd.Alts.At(i)).Data.(*ir.SwitchAltData)
		if !ok {
			continue
		}
		for j := 0; j < an.Conditions.Len(); j++ {
			v := an.Conditions.At(j)
			if e.sameType(e.typeOf(v), condType) {
				continue
			}
			casted := e.insertCast(v, condType, e.typeOf(v))
			an.Conditions.Items[j] = casted
			e.setParent(casted, dd.Alts.At(i))
		}
	}
	return dst
}

// repairWhen precision-aligns every WhenAlt's value (and the Default) to
// the first resolvable result type, and bool-converts each alt's condition
// unless the When is a Bit-logic ternary (dd.Logic).
func (e *Engine) repairWhen(dst ir.NodeID) ir.NodeID {
	dd, ok := e.dstTree.Node(dst).Data.(*ir.WhenData)
	if !ok {
		return dst
	}
	if !dd.Logic {
		for i := 0; i < dd.Alts.Len(); i++ {
			alt := dd.Alts.At(i)
			if an, ok := e.dstTree.Node(alt).Data.(*ir.WhenAltData); ok {
				e.repairConditionValue(&an.Condition, alt)
			}
		}
	}

	resultType := ir.NoNode
	if dd.Default.IsValid() {
		resultType = e.typeOf(dd.Default)
	} else if dd.Alts.Len() > 0 {
		if an, ok := e.dstTree.Node(dd.Alts.At(0)).Data.(*ir.WhenAltData); ok {
			resultType = e.typeOf(an.Value)
		}
	}
	if !resultType.IsValid() {
		return dst
	}
	if dd.Default.IsValid() && !e.sameType(e.typeOf(dd.Default), resultType) {
		dd.Default = e.insertCast(dd.Default, resultType, e.typeOf(dd.Default))
		e.setParent(dd.Default, dst)
	}
	for i := 0; i < dd.Alts.Len(); i++ {
		alt := dd.Alts.At(i)
		an, ok := e.dstTree.Node(alt).Data.(*ir.WhenAltData)
		if !ok || e.sameType(e.typeOf(an.Value), resultType) {
			continue
		}
		an.Value = e.insertCast(an.Value, resultType, e.typeOf(an.Value))
		e.setParent(an.Value, alt)
	}
	return dst
}

// repairWith is repairSwitch's value-expression counterpart: every alt's
// matched values align against the Condition's type, and every alt's result
// Value (plus Default) aligns against a common result type.
func (e *Engine) repairWith(dst ir.NodeID) ir.NodeID {
	dd, ok := e.dstTree.Node(dst).Data.(*ir.WithData)
	if !ok || !dd.Condition.IsValid() {
		return dst
	}
	condType := e.typeOf(dd.Condition)
	resultType := ir.NoNode
	if dd.Default.IsValid() {
		resultType = e.typeOf(dd.Default)
	}
	for i := 0; i < dd.Alts.Len(); i++ {
		alt := dd.Alts.At(i)
		an, ok := e.dstTree.Node(alt).Data.(*ir.WithAltData)
		if !ok {
			continue
		}
		for j := 0; j < an.Conditions.Len(); j++ {
			v := an.Conditions.At(j)
			if e.sameType(e.typeOf(v), condType) {
				continue
			}
			casted := e.insertCast(v, condType, e.typeOf(v))
			an.Conditions.Items[j] = casted
			e.setParent(casted, alt)
		}
		if !resultType.IsValid() {
			resultType = e.typeOf(an.Value)
		}
	}
	if !resultType.IsValid() {
		return dst
	}
	if dd.Default.IsValid() && !e.sameType(e.typeOf(dd.Default), resultType) {
		dd.Default = e.insertCast(dd.Default, resultType, e.typeOf(dd.Default))
		e.setParent(dd.Default, dst)
	}
	for i := 0; i < dd.Alts.Len(); i++ {
		alt := dd.Alts.At(i)
		an, ok := e.dstTree.Node(alt).Data.(*ir.WithAltData)
		if !ok || e.sameType(e.typeOf(an.Value), resultType) {
			continue
		}
		an.Value = e.insertCast(an.Value, resultType, e.typeOf(an.Value))
		e.setParent(an.Value, alt)
	}
	return dst
}

// repairMember casts an index expression to whatever type dstSem allows in
// bound position, preserving its precision.
func (e *Engine) repairMember(dst ir.NodeID) ir.NodeID {
	dd, ok := e.dstTree.Node(dst).Data.(*ir.MemberData)
	if !ok || !dd.Index.IsValid() {
		return dst
	}
	cur := e.probeType(dd.Index)
	boundType, ok := e.dstSem.IsTypeAllowedAsBound(e.dstTree, cur)
	if ok && boundType.IsValid() && !e.sameType(cur, boundType) {
		dd.Index = e.insertCast(dd.Index, boundType, cur)
		e.setParent(dd.Index, dst)
	}
	return dst
}

// probeType is typeOf with the rebase mode bit off: bound-detection probes
// must see a type's span as stored, not as the destination would renumber it.
func (e *Engine) probeType(id ir.NodeID) ir.NodeID {
	prev := e.canRebaseTypes
	e.canRebaseTypes = false
	t := e.typeOf(id)
	e.canRebaseTypes = prev
	return t
}

// repairRange casts both bounds of a Range to whatever type dstSem allows in
// bound position (Member/Slice index bounds, and Type spans alike share this
// node kind).
func (e *Engine) repairRange(dst ir.NodeID) ir.NodeID {
	dd, ok := e.dstTree.Node(dst).Data.(*ir.RangeData)
	if !ok {
		return dst
	}
	for _, ref := range []*ir.NodeID{&dd.LeftBound, &dd.RightBound} {
		if !ref.IsValid() {
			continue
		}
		cur := e.typeOf(*ref)
		boundType, ok := e.dstSem.IsTypeAllowedAsBound(e.dstTree, cur)
		if ok && boundType.IsValid() && !e.sameType(cur, boundType) {
			*ref = e.insertCast(*ref, boundType, cur)
			e.setParent(*ref, dst)
		}
	}
	return dst
}

// repairSlice rebases a slice's own bounds to the destination numbering
// convention when dstSem rebases slices: new_left = old_left - prefix_min,
// same for the right bound (the "Slice" span-rebase formula).
func (e *Engine) repairSlice(dst ir.NodeID) ir.NodeID {
	dd, ok := e.dstTree.Node(dst).Data.(*ir.SliceData)
	if !ok || !e.dstSem.RebasesSlices() || !dd.Span.IsValid() {
		return dst
	}
	_, prefixMin, ok := e.spanBoundsOf(e.probeType(dd.Prefix))
	if !ok || prefixMin == 0 {
		return dst
	}
	rd, ok := e.dstTree.Node(dd.Span).Data.(*ir.RangeData)
	if !ok {
		return dst
	}
	left, lok := e.constInt(rd.LeftBound)
	right, rok := e.constInt(rd.RightBound)
	if !lok || !rok {
		return dst
	}
	f := ir.NewFactory(e.dstTree)
	boundType, ok := e.dstSem.IsTypeAllowedAsBound(e.dstTree, e.typeOf(rd.LeftBound))
	if !ok || !boundType.IsValid() {
		boundType = f.SimpleType(ir.ClassTypeInt, ir.NoNode, true, true)
	}
	rd.LeftBound = f.IntConst(left-prefixMin, boundType)
	rd.RightBound = f.IntConst(right-prefixMin, boundType)
	e.setParent(rd.LeftBound, dd.Span)
	e.setParent(rd.RightBound, dd.Span)
	return dst
}

// repairAggregate casts every alt's element value and the "others" default
// to the mapped vector element type, so an array aggregate and a bitvector
// aggregate stay distinguishable after the element kind itself was remapped.
func (e *Engine) repairAggregate(dst ir.NodeID) ir.NodeID {
	dd, ok := e.dstTree.Node(dst).Data.(*ir.AggregateData)
	if !ok {
		return dst
	}
	elemType := e.aggregateElementType(dd)
	if !elemType.IsValid() {
		return dst
	}
	castTo := func(ref *ir.NodeID, owner ir.NodeID) {
		if !ref.IsValid() {
			return
		}
		cur := e.typeOf(*ref)
		if e.sameType(cur, elemType) {
			return
		}
		*ref = e.insertCast(*ref, elemType, cur)
		e.setParent(*ref, owner)
	}
	for i := 0; i < dd.Alts.Len(); i++ {
		alt := dd.Alts.At(i)
		if an, ok := e.dstTree.Node(alt).Data.(*ir.AggregateAltData); ok {
			castTo(&an.Value, alt)
		}
	}
	// Others is either an AggregateAlt wrapper or a bare default Value.
	if on := e.dstTree.Node(dd.Others); on != nil {
		if oa, ok := on.Data.(*ir.AggregateAltData); ok {
			castTo(&oa.Value, dd.Others)
		} else {
			castTo(&dd.Others, dst)
		}
	}
	return dst
}

// aggregateElementType derives the mapped element type from the first alt
// whose value already has a resolvable type, falling back to the "others"
// default. An aggregate with no typed element at all is left as cloned.
func (e *Engine) aggregateElementType(dd *ir.AggregateData) ir.NodeID {
	probe := ir.NoNode
	for i := 0; i < dd.Alts.Len() && !probe.IsValid(); i++ {
		probe = e.typeOf(e.altValue(dd.Alts.At(i)))
	}
	if !probe.IsValid() && dd.Others.IsValid() {
		probe = e.typeOf(e.altValue(dd.Others))
	}
	if !probe.IsValid() {
		return ir.NoNode
	}
	return e.dstSem.MapType(e.dstTree, probe)
}

// repairAggregateAlt casts each listed index to dstSem's allowed bound type,
// the same rule a Member's own index follows.
func (e *Engine) repairAggregateAlt(dst ir.NodeID) ir.NodeID {
	dd, ok := e.dstTree.Node(dst).Data.(*ir.AggregateAltData)
	if !ok {
		return dst
	}
	for i := 0; i < dd.Indices.Len(); i++ {
		idx := dd.Indices.At(i)
		cur := e.typeOf(idx)
		boundType, ok := e.dstSem.IsTypeAllowedAsBound(e.dstTree, cur)
		if ok && boundType.IsValid() && !e.sameType(cur, boundType) {
			casted := e.insertCast(idx, boundType, cur)
			dd.Indices.Items[i] = casted
			e.setParent(casted, dst)
		}
	}
	return dst
}

// repairReturn casts a Return's value against the enclosing Function's
// return type, resolved straight from the source tree (via e.clone, which
// is memoized) rather than the dst Function node: by the time a deeply
// nested Return is repaired, the enclosing FunctionData's own ReturnType
// field (cloned after its StateTable field, per Fields() order) may not yet
// be populated.
func (e *Engine) repairReturn(dst ir.NodeID) ir.NodeID {
	dd, ok := e.dstTree.Node(dst).Data.(*ir.ReturnData)
	if !ok || !dd.Value.IsValid() || len(e.funcStack) == 0 {
		return dst
	}
	fn := e.funcStack[len(e.funcStack)-1]
	fd, ok := e.srcTree.Node(fn).Data.(*ir.FunctionData)
	if !ok || !fd.ReturnType.IsValid() {
		return dst
	}
	retType := e.clone(fd.ReturnType)
	if e.abort != nil {
		return dst
	}
	if !e.sameType(e.typeOf(dd.Value), retType) {
		dd.Value = e.insertCast(dd.Value, retType, e.typeOf(dd.Value))
		e.setParent(dd.Value, dst)
	}
	return dst
}

// repairPort discards the default value a clone mirrored onto an `in` port
// (an `in` port owns no default) and synthesizes one for
// `out`/`inout` ports that had none, after remapping the port's own type
// through whatever substitution dstSem requires in port position.
func (e *Engine) repairPort(dst ir.NodeID) ir.NodeID {
	dd, ok := e.dstTree.Node(dst).Data.(*ir.PortData)
	if !ok {
		return dst
	}
	if mapped, ok := e.dstSem.IsTypeAllowedAsPort(e.dstTree, dd.Type); ok && mapped.IsValid() && mapped != dd.Type {
		dd.Type = mapped
		e.setParent(dd.Type, dst)
	}
	switch dd.Direction {
	case ir.PortDirIn:
		if dd.Value.IsValid() {
			dd.Value = ir.NoNode
		}
	default:
		if !dd.Value.IsValid() {
			dd.Value = e.dstSem.TypeDefaultValue(e.dstTree, dd.Type, semantics.ContextNone)
			e.setParent(dd.Value, dst)
		}
	}
	return dst
}

func (e *Engine) constInt(id ir.NodeID) (int64, bool) {
	n := e.dstTree.Node(id)
	if n == nil {
		return 0, false
	}
	switch d := n.Data.(type) {
	case *ir.IntValueData:
		return d.Value, true
	case *ir.CastData:
		return e.constInt(d.Value)
	}
	return 0, false
}

func (e *Engine) spanBoundsOf(t ir.NodeID) (width int, min int64, ok bool) {
	n := e.dstTree.Node(t)
	if n == nil {
		return 0, 0, false
	}
	spanned, ok := ir.AsTypeSpanned(n)
	if !ok {
		return 0, 0, false
	}
	rn := e.dstTree.Node(spanned.SpanRange())
	if rn == nil {
		return 0, 0, false
	}
	rd, ok := rn.Data.(*ir.RangeData)
	if !ok {
		return 0, 0, false
	}
	left, lok := e.constInt(rd.LeftBound)
	right, rok := e.constInt(rd.RightBound)
	if !lok || !rok {
		return 0, 0, false
	}
	if right < left {
		left, right = right, left
	}
	return int(right-left) + 1, left, true
}
