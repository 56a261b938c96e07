// Package standardize implements the cross-semantics standardization
// engine: given a tree built under a source language semantics, it
// produces a structurally equivalent tree that is well-typed under a
// destination semantics, inserting casts, span rebases, operator remaps and
// argument reorderings wherever the two semantics disagree.
//
// The pass is one explicit Engine value rather than a singleton pass
// object: the tree map, the cast map and the probe-mode bit all live on the
// Engine and die with it, so two runs never share cache state.
package standardize

import (
	"fmt"
	"reflect"

	"hif/internal/castmap"
	"hif/internal/diag"
	"hif/internal/hifctx"
	"hif/internal/ir"
	"hif/internal/semantics"
	"hif/internal/source"
)

// Result is what Standardize returns: the freshly built destination system
// plus the CastMap recording every inserted Cast's pre-map source type
// (the (new_system, cast_map) pair).
type Result struct {
	System  *ir.System
	CastMap *castmap.CastMap
}

// Engine holds the per-run state of one standardization: the injective
// src-NodeID -> dst-NodeID tree map, the cast bookkeeping, and the
// rebase-probe mode bit.
type Engine struct {
	ctx     *hifctx.Context
	srcTree *ir.Tree
	dstTree *ir.Tree
	srcSem  semantics.Language
	dstSem  semantics.Language
	casts   *castmap.CastMap
	treeMap map[ir.NodeID]ir.NodeID

	canRebaseTypes bool
	funcStack      []ir.NodeID // src ClassFunction node ids, innermost last
	abort          error
}

// Standardize runs the engine over src under srcSem, producing a new system
// well-typed under dstSem. On any fatal typing or mapping failure it
// returns a non-nil error and the destination tree is dropped whole; the
// source tree is left untouched.
func Standardize(ctx *hifctx.Context, src *ir.System, srcSem, dstSem semantics.Language) (Result, error) {
	if src == nil || src.Tree == nil {
		return Result{}, fmt.Errorf("standardize: nil source system")
	}
	defer ctx.FlushTypeCache()
	defer ctx.FlushInstanceCache()
	e := &Engine{
		ctx:            ctx,
		srcTree:        src.Tree,
		dstTree:        ir.NewTree(uint(src.Tree.Len())),
		srcSem:         srcSem,
		dstSem:         dstSem,
		casts:          castmap.New(),
		treeMap:        make(map[ir.NodeID]ir.NodeID, src.Tree.Len()),
		canRebaseTypes: true,
	}
	root := e.clone(src.Tree.Root())
	if e.abort != nil {
		return Result{}, e.abort
	}
	e.dstTree.SetRoot(root)
	return Result{System: ir.NewSystem(e.dstTree), CastMap: e.casts}, nil
}

func (e *Engine) fail(code diag.Code, span source.Span, format string, args ...any) {
	if e.abort != nil {
		return
	}
	e.abort = e.ctx.Errorf(code, span, "%s", fmt.Sprintf(format, args...))
}

func spanOfNode(tree *ir.Tree, id ir.NodeID) source.Span {
	if n := tree.Node(id); n != nil {
		return n.Code.Span
	}
	return source.Span{}
}

// clone is the skeleton-clone-then-repair visit. It is memoized through
// e.treeMap so a node referenced before its declaration is visited (a
// forward symbol reference) is only cloned once.
func (e *Engine) clone(src ir.NodeID) ir.NodeID {
	if !src.IsValid() || e.abort != nil {
		return ir.NoNode
	}
	if dst, ok := e.treeMap[src]; ok {
		return dst
	}
	srcNode := e.srcTree.Node(src)
	if srcNode == nil {
		return ir.NoNode
	}

	clonedPayload := shallowClone(srcNode.Data)
	dstID := e.dstTree.Alloc(ir.Node{
		Kind:     srcNode.Kind,
		Code:     srcNode.Code,
		Comments: append([]string(nil), srcNode.Comments...),
		Keywords: append([]string(nil), srcNode.Keywords...),
		Props:    srcNode.Props.Clone(),
		Data:     clonedPayload,
	})
	e.treeMap[src] = dstID

	isFunc := srcNode.Kind == ir.ClassFunction
	if isFunc {
		e.funcStack = append(e.funcStack, src)
	}

	srcFields := srcNode.Data.Fields()
	dstFields := clonedPayload.Fields()
	for i := range srcFields {
		childDst := e.clone(srcFields[i].Get())
		dstFields[i].Set(childDst)
		e.setParent(childDst, dstID)
	}
	srcLists := srcNode.Data.Lists()
	dstLists := clonedPayload.Lists()
	for i := range srcLists {
		dstList := dstLists[i].List
		for _, item := range srcLists[i].List.Items {
			childDst := e.clone(item)
			dstList.Items = append(dstList.Items, childDst)
			e.setParent(childDst, dstID)
		}
		dstList.Owner = dstID
	}

	if isFunc {
		e.funcStack = e.funcStack[:len(e.funcStack)-1]
	}

	// Weak references never survive a shallow copy as-is: whatever the
	// source symbol resolved to must resolve to its destination twin,
	// cloning the declaration ahead of its owner when necessary.
	if srcSym, ok := ir.AsSymbol(srcNode); ok {
		if res := srcSym.ResolvesTo(); res.IsValid() {
			if dstSym, ok := ir.AsSymbol(e.dstTree.Node(dstID)); ok {
				dstSym.SetResolvesTo(e.clone(res))
			}
		}
	}

	if e.abort != nil {
		return dstID
	}

	result := e.repair(src, srcNode, dstID)
	e.treeMap[src] = result
	return result
}

func (e *Engine) setParent(child, parent ir.NodeID) {
	if !child.IsValid() {
		return
	}
	if n := e.dstTree.Node(child); n != nil {
		n.Parent = parent
	}
}

// insertCast wraps dst in a Cast to target, recording srcType (the operand's
// pre-map type) in the CastMap keyed by the new Cast node, so the cast
// manager later knows what was cast from.
func (e *Engine) insertCast(dst, target ir.NodeID, srcType ir.NodeID) ir.NodeID {
	f := ir.NewFactory(e.dstTree)
	cast := f.Cast(dst, target)
	e.casts.Record(cast, srcType, e.srcSem.Name())
	return cast
}

// shallowClone allocates a zero-valued payload of the same concrete type as
// p, copying every scalar field verbatim and clearing every owned NodeID
// field/list so the caller can refill them from a fresh recursive clone.
// Grounded on the generic field/list slot contract every Payload already
// implements: reflection stands in for ~85 hand-written
// Class-specific constructors, since the kernel's own Fields()/Lists()
// machinery already names every owned slot by position.
func shallowClone(p ir.Payload) ir.Payload {
	v := reflect.ValueOf(p)
	nv := reflect.New(v.Elem().Type())
	nv.Elem().Set(v.Elem())
	clone, _ := nv.Interface().(ir.Payload)
	for _, fs := range clone.Fields() {
		fs.Set(ir.NoNode)
	}
	for _, ls := range clone.Lists() {
		ls.List.Items = nil
	}
	return clone
}
