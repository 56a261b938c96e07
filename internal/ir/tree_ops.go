package ir

import (
	"fmt"
	"reflect"
)

// SetChild attaches newChild at the named field of parent, clearing
// newChild's previous parent link (if any) and returning the child that
// previously occupied the slot. The previous child's parent
// link is cleared too, releasing it to the caller.
func (t *Tree) SetChild(parent NodeID, field string, newChild NodeID) (NodeID, error) {
	pn := t.Node(parent)
	if pn == nil {
		return NoNode, fmt.Errorf("ir: SetChild on invalid parent %d", parent)
	}
	slot, ok := findField(pn.Data, field)
	if !ok {
		return NoNode, fmt.Errorf("ir: %s has no field %q", pn.Data.ClassID(), field)
	}
	prev := slot.Get()
	if prev.IsValid() {
		if pc := t.Node(prev); pc != nil {
			pc.Parent = NoNode
		}
	}
	if newChild.IsValid() {
		if nc := t.Node(newChild); nc != nil {
			nc.Parent = NoNode // clear any prior parent first
		}
	}
	slot.Set(newChild)
	if newChild.IsValid() {
		if nc := t.Node(newChild); nc != nil {
			nc.Parent = parent
		}
	}
	return prev, nil
}

func findField(p Payload, name string) (FieldSlot, bool) {
	for _, f := range p.Fields() {
		if f.Name == name {
			return f, true
		}
	}
	return FieldSlot{}, false
}

func findList(p Payload, name string) (*BList, bool) {
	for _, l := range p.Lists() {
		if l.Name == name {
			return l.List, true
		}
	}
	return nil, false
}

// adopt reparents child to owner, detaching it from wherever it was.
func (t *Tree) adopt(owner, child NodeID) {
	if !child.IsValid() {
		return
	}
	if cn := t.Node(child); cn != nil {
		cn.Parent = owner
	}
}

// release clears child's parent link without touching list membership.
func (t *Tree) release(child NodeID) {
	if !child.IsValid() {
		return
	}
	if cn := t.Node(child); cn != nil {
		cn.Parent = NoNode
	}
}

// ListPushBack appends child to list, adopting it.
func (t *Tree) ListPushBack(list *BList, child NodeID) {
	list.Items = append(list.Items, child)
	t.adopt(list.Owner, child)
}

// ListInsert inserts child at position pos (0 <= pos <= Len), adopting it.
func (t *Tree) ListInsert(list *BList, pos int, child NodeID) {
	if pos < 0 {
		pos = 0
	}
	if pos > len(list.Items) {
		pos = len(list.Items)
	}
	list.Items = append(list.Items, NoNode)
	copy(list.Items[pos+1:], list.Items[pos:])
	list.Items[pos] = child
	t.adopt(list.Owner, child)
}

// ListRemove removes and returns the item at pos, releasing its parent link.
func (t *Tree) ListRemove(list *BList, pos int) NodeID {
	if pos < 0 || pos >= len(list.Items) {
		return NoNode
	}
	removed := list.Items[pos]
	list.Items = append(list.Items[:pos], list.Items[pos+1:]...)
	t.release(removed)
	return removed
}

// ListClear empties list, releasing every item's parent link, and returns
// the removed items so the caller can decide their fate (garbage or reuse).
func (t *Tree) ListClear(list *BList) []NodeID {
	removed := list.Items
	for _, id := range removed {
		t.release(id)
	}
	list.Items = nil
	return removed
}

// MatchedInsert locates the field slot or list position that oldChild
// occupies in oldParent, and attaches newChild at the equivalent slot of
// newParent. This is the primitive the standardizer uses to mirror the
// source tree into the destination tree.
func (t *Tree) MatchedInsert(newChild, newParent, oldChild, oldParent NodeID) error {
	opn := t.Node(oldParent)
	npn := t.Node(newParent)
	if opn == nil || npn == nil {
		return fmt.Errorf("ir: MatchedInsert with invalid parent(s)")
	}

	for _, f := range opn.Data.Fields() {
		if f.Get() == oldChild {
			_, err := t.SetChild(newParent, f.Name, newChild)
			return err
		}
	}
	for _, l := range opn.Data.Lists() {
		idx := l.List.IndexOf(oldChild)
		if idx < 0 {
			continue
		}
		nl, ok := findList(npn.Data, l.Name)
		if !ok {
			return fmt.Errorf("ir: %s has no list %q matching %s", npn.Data.ClassID(), l.Name, opn.Data.ClassID())
		}
		if idx < nl.Len() {
			// Same-shape mirror already has a placeholder; overwrite in place.
			prev := nl.At(idx)
			t.release(prev)
			nl.Items[idx] = newChild
			t.adopt(newParent, newChild)
		} else {
			t.ListPushBack(nl, newChild)
		}
		return nil
	}
	return fmt.Errorf("ir: %d is not a child of %d", oldChild, oldParent)
}

// CloneSubtree deep-copies id and every node it owns into the same tree,
// returning the new root's NodeID with no parent set (the caller attaches
// it wherever the clone belongs). Grounded on the same shallow-copy-then-
// refill-children technique the Standardization Engine's skeleton clone
// uses across trees (internal/standardize's shallowClone); here it runs
// within one Tree, which the Process Splitter uses to duplicate a condition
// or a whole logic cone verbatim ("the splitter clones
// condition nodes verbatim").
func (t *Tree) CloneSubtree(id NodeID) NodeID {
	if !id.IsValid() {
		return NoNode
	}
	src := t.Node(id)
	if src == nil {
		return NoNode
	}
	clonedPayload := shallowClonePayload(src.Data)
	dstID := t.Alloc(Node{
		Kind:     src.Kind,
		Code:     src.Code,
		Comments: append([]string(nil), src.Comments...),
		Keywords: append([]string(nil), src.Keywords...),
		Props:    src.Props.Clone(),
		Data:     clonedPayload,
	})

	srcFields := src.Data.Fields()
	dstFields := clonedPayload.Fields()
	for i := range srcFields {
		childDst := t.CloneSubtree(srcFields[i].Get())
		dstFields[i].Set(childDst)
		t.adopt(dstID, childDst)
	}
	srcLists := src.Data.Lists()
	dstLists := clonedPayload.Lists()
	for i := range srcLists {
		dstList := dstLists[i].List
		for _, item := range srcLists[i].List.Items {
			childDst := t.CloneSubtree(item)
			dstList.Items = append(dstList.Items, childDst)
			t.adopt(dstID, childDst)
		}
		dstList.Owner = dstID
	}
	return dstID
}

// shallowClonePayload allocates a zero-valued payload of the same concrete
// type as p, copying scalar fields and clearing owned NodeID slots so the
// caller refills them with fresh clones. Shared with CloneSubtree's
// cross-tree sibling in internal/standardize, which keeps its own copy
// local to avoid an import of this unexported helper.
func shallowClonePayload(p Payload) Payload {
	v := reflect.ValueOf(p)
	nv := reflect.New(v.Elem().Type())
	nv.Elem().Set(v.Elem())
	clone, _ := nv.Interface().(Payload)
	for _, fs := range clone.Fields() {
		fs.Set(NoNode)
	}
	for _, ls := range clone.Lists() {
		ls.List.Items = nil
	}
	return clone
}

// DeleteSubtree recursively detaches id and everything it owns, returning the
// set of freed NodeIDs to a trash bag; the arena slot itself is not reused
// (the arena is append-only; detached nodes are reaped by trash bags).
func (t *Tree) DeleteSubtree(id NodeID) []NodeID {
	if !id.IsValid() {
		return nil
	}
	n := t.Node(id)
	if n == nil {
		return nil
	}
	var trash []NodeID
	for _, f := range n.Data.Fields() {
		trash = append(trash, t.DeleteSubtree(f.Get())...)
	}
	for _, l := range n.Data.Lists() {
		for _, item := range l.List.Items {
			trash = append(trash, t.DeleteSubtree(item)...)
		}
	}
	n.Parent = NoNode
	trash = append(trash, id)
	return trash
}
