package standardize

import (
	"hif/internal/ir"
)

func findList(p ir.Payload, name string) (*ir.BList, bool) {
	for _, l := range p.Lists() {
		if l.Name == name {
			return l.List, true
		}
	}
	return nil, false
}

// formal is one slot of a declaration's parameter/port order, read from the
// source tree (the declaration there is complete even when its destination
// twin is still mid-clone).
type formal struct {
	src  ir.NodeID // the Parameter/Port/ValueTP node in the source tree
	name string
	typ  ir.NodeID // declared type, source tree
}

func (e *Engine) formalsOf(list *ir.BList) []formal {
	out := make([]formal, 0, list.Len())
	for i := 0; i < list.Len(); i++ {
		id := list.At(i)
		n := e.srcTree.Node(id)
		if n == nil {
			continue
		}
		f := formal{src: id}
		if named, ok := ir.AsNamed(n); ok {
			f.name = named.GetName()
		}
		if slot, ok := findField(n.Data, "Type"); ok {
			f.typ = slot.Get()
		}
		out = append(out, f)
	}
	return out
}

// sortAssigns reorders a destination referenced-assign list into the formal
// order: named actuals take their formal's slot, positional actuals fill the
// remaining slots in source order, and actuals naming no formal keep their
// relative order at the tail (the deterministic missing-formal policy).
// Each placed actual is then bound to its formal (declaration pointer
// remapped into the destination tree) and its value cast when the pair is
// not directly assignable.
func (e *Engine) sortAssigns(list *ir.BList, formals []formal) {
	if list.Len() == 0 || e.abort != nil {
		return
	}
	byName := make(map[string]int, len(formals))
	for i, f := range formals {
		if f.name != "" {
			byName[f.name] = i
		}
	}

	slots := make([]ir.NodeID, len(formals))
	var tail []ir.NodeID
	var positional []ir.NodeID
	for i := 0; i < list.Len(); i++ {
		id := list.At(i)
		n := e.dstTree.Node(id)
		if n == nil {
			continue
		}
		named, _ := ir.AsNamed(n)
		if named != nil && named.GetName() != "" {
			if idx, ok := byName[named.GetName()]; ok && !slots[idx].IsValid() {
				slots[idx] = id
				continue
			}
			tail = append(tail, id)
			continue
		}
		positional = append(positional, id)
	}
	pi := 0
	for i := range slots {
		if !slots[i].IsValid() && pi < len(positional) {
			slots[i] = positional[pi]
			pi++
		}
	}
	tail = append(tail, positional[pi:]...)

	items := list.Items[:0]
	for i, id := range slots {
		if !id.IsValid() {
			continue
		}
		e.bindActual(id, formals[i])
		items = append(items, id)
	}
	items = append(items, tail...)
	list.Items = items
}

// bindActual points the assign at its formal's destination twin and casts the
// actual value to the formal's (mapped) type when the pair is not assignable.
func (e *Engine) bindActual(assign ir.NodeID, f formal) {
	n := e.dstTree.Node(assign)
	if n == nil {
		return
	}
	if sym, ok := ir.AsSymbol(n); ok && f.src.IsValid() {
		sym.SetResolvesTo(e.clone(f.src))
		if e.abort != nil {
			return
		}
	}
	slot, ok := findField(n.Data, "Value")
	if !ok {
		return // TypeTPAssign carries a Type actual, nothing to cast
	}
	value := slot.Get()
	if !value.IsValid() || !f.typ.IsValid() {
		return
	}
	formalType := e.clone(f.typ)
	if e.abort != nil || !formalType.IsValid() {
		return
	}
	if e.assignable(formalType, e.typeOf(value)) {
		return
	}
	casted := e.insertCast(value, formalType, e.typeOf(value))
	slot.Set(casted)
	e.setParent(casted, assign)
}

// repairCall sorts a Function/ProcedureCall's actuals against the resolved
// SubProgram's formal order and rebinds each pair.
func (e *Engine) repairCall(src, dst ir.NodeID) ir.NodeID {
	srcSym, ok := ir.AsSymbol(e.srcTree.Node(src))
	if !ok {
		return dst
	}
	declSrc := srcSym.ResolvesTo()
	if !declSrc.IsValid() {
		return dst
	}
	dn := e.srcTree.Node(declSrc)
	if dn == nil {
		return dst
	}

	var params, tparams *ir.BList
	switch d := dn.Data.(type) {
	case *ir.FunctionData:
		params, tparams = &d.Parameters, &d.TemplateParams
	case *ir.ProcedureData:
		params, tparams = &d.Parameters, &d.TemplateParams
	default:
		return dst
	}

	n := e.dstTree.Node(dst)
	if plist, ok := findList(n.Data, "ParameterAssigns"); ok {
		e.sortAssigns(plist, e.formalsOf(params))
	}
	if tlist, ok := findList(n.Data, "TemplateAssigns"); ok {
		e.sortAssigns(tlist, e.formalsOf(tparams))
	}
	return dst
}

// repairTypeReference sorts a TypeReference/ViewReference's template assigns
// against the formal order of the declaration it names (a TypeDef's template
// parameters, or the generics on a View's Entity), then hands the node to
// the ordinary type repair.
func (e *Engine) repairTypeReference(src, dst ir.NodeID) ir.NodeID {
	if srcSym, ok := ir.AsSymbol(e.srcTree.Node(src)); ok {
		if dn := e.srcTree.Node(srcSym.ResolvesTo()); dn != nil {
			var formals []formal
			switch d := dn.Data.(type) {
			case *ir.TypeDefData:
				formals = e.formalsOf(&d.TemplateParams)
			case *ir.ViewData:
				if en := e.srcTree.Node(d.Entity); en != nil {
					if ed, ok := en.Data.(*ir.EntityData); ok {
						formals = e.formalsOf(&ed.Parameters)
					}
				}
			}
			if len(formals) > 0 {
				if tlist, ok := findList(e.dstTree.Node(dst).Data, "TemplateAssigns"); ok {
					e.sortAssigns(tlist, formals)
				}
			}
		}
	}
	return e.repairType(dst)
}

// repairInstance sorts an Instance's port and template assigns against the
// Entity of the View its ReferencedType resolves to.
func (e *Engine) repairInstance(src, dst ir.NodeID) ir.NodeID {
	sd, ok := e.srcTree.Node(src).Data.(*ir.InstanceData)
	if !ok || !sd.ReferencedType.IsValid() {
		return dst
	}
	refSym, ok := ir.AsSymbol(e.srcTree.Node(sd.ReferencedType))
	if !ok {
		return dst
	}
	viewNode := e.srcTree.Node(refSym.ResolvesTo())
	if viewNode == nil {
		return dst
	}
	view, ok := viewNode.Data.(*ir.ViewData)
	if !ok {
		return dst
	}
	entityNode := e.srcTree.Node(view.Entity)
	if entityNode == nil {
		return dst
	}
	entity, ok := entityNode.Data.(*ir.EntityData)
	if !ok {
		return dst
	}

	dd, ok := e.dstTree.Node(dst).Data.(*ir.InstanceData)
	if !ok {
		return dst
	}
	e.sortAssigns(&dd.PortAssigns, e.formalsOf(&entity.Ports))
	e.sortAssigns(&dd.ParameterAssigns, e.formalsOf(&entity.Parameters))
	return dst
}
