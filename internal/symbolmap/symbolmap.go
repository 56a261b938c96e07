// Package symbolmap implements the Symbol Mapper: the pass
// that runs after the Standardization Engine and retargets every reference
// to a source semantics' bundled standard library onto the destination
// semantics' equivalent, using the four-way SymbolAction the destination
// Language resolves (UNKNOWN/UNSUPPORTED/SIMPLIFIED/MAP_KEEP/MAP_DELETE).
//
// A post-standardize fixup over standard-library references (think
// ieee.std_logic_1164 and sc_core), sharing its walk-then-mutate shape
// with the Standardization Engine (internal/standardize):
// collect every candidate first via ir.WalkAncestor, then rewrite, so a
// mutation never invalidates a walk still in progress.
package symbolmap

import (
	"fmt"

	"hif/internal/diag"
	"hif/internal/hifctx"
	"hif/internal/ir"
	"hif/internal/semantics"
	"hif/internal/source"
)

// MapStandardSymbols rewrites every standard-library symbol reference under
// root that originates from src's bundled libraries, resolving each against
// dst. Non-fatal resolutions (MAP_KEEP/MAP_DELETE/SIMPLIFIED) are applied in
// place; an UNSUPPORTED resolution means no destination symbol exists for
// a required standard construct, reported as a fatal diagnostic and
// returned as an error.
func MapStandardSymbols(ctx *hifctx.Context, root ir.NodeRef, src, dst semantics.Language) error {
	defer ctx.FlushTypeCache()
	defer ctx.FlushInstanceCache()
	if !root.IsValid() {
		return fmt.Errorf("symbolmap: invalid root")
	}
	tree := root.Tree

	candidates := collectSymbols(tree, root.Node)
	system := tree.Node(tree.Root())

	for _, c := range candidates {
		lib, name, ok := standardKey(tree, c.feature, c.id)
		if !ok {
			continue
		}
		key := semantics.SymbolKey{Library: lib, Name: name}
		mapping, action := dst.MapStandardSymbol(tree, c.feature.ResolvesTo(), key, src)

		switch action {
		case semantics.ActionUnknown:
			// Not one of dst's bundled libraries under this key; leave the
			// reference exactly as the standardization engine cloned it.
			continue

		case semantics.ActionUnsupported:
			return ctx.Errorf(diag.SymUnsupportedSymbol, spanOf(tree, c.id),
				"%s.%s has no %s equivalent", key.Library, key.Name, dst.Name())

		case semantics.ActionSimplified:
			repl := dst.SimplifiedSymbol(tree, key, c.id)
			if !repl.IsValid() {
				return ctx.Errorf(diag.SymAmbiguousMapEntry, spanOf(tree, c.id),
					"%s.%s could not be simplified for %s", key.Library, key.Name, dst.Name())
			}
			replaceInParent(tree, c.id, repl)

		case semantics.ActionMapKeep:
			c.feature.SetName(mapping.MappedName)
			for _, lib := range mapping.LibrariesToInclude {
				ensureLibraryIncluded(tree, system, lib, dst)
			}

		case semantics.ActionMapDelete:
			if !removeFromParent(tree, c.id) {
				// Not removable in place (an expression operand, not a
				// statement/list member): fall back to erasing the name so
				// no stale source-semantics symbol survives, matching
				// the "at minimum erase the reference".
				c.feature.SetName("")
			}
		}
	}
	return nil
}

type candidate struct {
	id      ir.NodeID
	feature ir.Symbol
}

// collectSymbols gathers every Symbol-feature node under root in a single
// pass, before any mutation, so the rewrite loop never walks a tree it is
// simultaneously editing.
func collectSymbols(tree *ir.Tree, root ir.NodeID) []candidate {
	var out []candidate
	ir.WalkAncestor(tree, root, &symbolCollector{tree: tree, out: &out})
	return out
}

type symbolCollector struct {
	ir.NoOpAncestorVisitor
	tree *ir.Tree
	out  *[]candidate
}

func (c *symbolCollector) VisitSymbol(_ *ir.Tree, id ir.NodeID, f ir.Symbol) {
	if f.ResolvesTo().IsValid() {
		*c.out = append(*c.out, candidate{id: id, feature: f})
	}
}

// standardKey derives the SymbolKey a Symbol-feature node's reference is
// made under: a TypeReferenceDecl/TypeViewReference carries its own prefix
// chain directly (the AA::BB::* rewriting case); every other Symbol
// kind (Identifier, FunctionCall, ProcedureCall) is keyed by the nearest
// enclosing LibraryDef its declaration sits in.
func standardKey(tree *ir.Tree, f ir.Symbol, id ir.NodeID) (library, name string, ok bool) {
	n := tree.Node(id)
	if n == nil {
		return "", "", false
	}
	switch d := n.Data.(type) {
	case *ir.TypeReferenceDeclData:
		return d.Library, d.Name, d.Library != ""
	case *ir.TypeViewReferenceData:
		return d.DesignUnit, d.Name, d.DesignUnit != ""
	}
	lib, ok := enclosingStandardLibrary(tree, f.ResolvesTo())
	if !ok {
		return "", "", false
	}
	return lib, f.GetName(), true
}

// enclosingStandardLibrary walks decl's Parent chain looking for a
// LibraryDefData with Standard set, returning its (qualified) name.
func enclosingStandardLibrary(tree *ir.Tree, decl ir.NodeID) (string, bool) {
	for p := decl; p.IsValid(); p = tree.Parent(p) {
		n := tree.Node(p)
		if n == nil {
			break
		}
		if lib, ok := n.Data.(*ir.LibraryDefData); ok && lib.Standard {
			return lib.Name, true
		}
	}
	return "", false
}

func spanOf(tree *ir.Tree, id ir.NodeID) source.Span {
	if n := tree.Node(id); n != nil {
		return n.Code.Span
	}
	return source.Span{}
}

// replaceInParent swaps old for replacement at whatever field or list slot
// of old's parent currently holds it, releasing old's parent link.
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

// removeFromParent drops old from whichever BList owns it. Returns false
// when old occupies a scalar field instead (MAP_DELETE only ever removes a
// list member in practice: a statement, an Alt, an Instance; deleting a
// required scalar field would leave a dangling hole the caller must handle
// itself).
func removeFromParent(tree *ir.Tree, old ir.NodeID) bool {
	parent := tree.Parent(old)
	pn := tree.Node(parent)
	if pn == nil {
		return false
	}
	for _, l := range pn.Data.Lists() {
		if idx := l.List.IndexOf(old); idx >= 0 {
			tree.ListRemove(l.List, idx)
			return true
		}
	}
	return false
}

// ensureLibraryIncluded adds dst's bundled library named lib to system's top
// level Libraries list if it is not already present, deduplicating by the
// canonical filename dst assigns it.
func ensureLibraryIncluded(tree *ir.Tree, system *ir.Node, lib string, dst semantics.Language) {
	if system == nil || lib == "" {
		return
	}
	sys, ok := system.Data.(*ir.SystemData)
	if !ok {
		return
	}
	filename := dst.MapStandardFilename(lib)
	if filename == "" {
		// A synthetic library with no on-disk form (e.g. TLM's edge-compat
		// shim) is never recorded as an include.
		return
	}
	for i := 0; i < sys.Libraries.Len(); i++ {
		existing := tree.Node(sys.Libraries.At(i))
		if existing == nil {
			continue
		}
		if ld, ok := existing.Data.(*ir.LibraryDefData); ok && ld.Name == lib {
			return
		}
	}
	id := dst.StandardLibrary(tree, lib)
	if !id.IsValid() {
		return
	}
	if ld, ok := tree.Node(id).Data.(*ir.LibraryDefData); ok && ld.GetName() == "" {
		ld.SetName(lib)
	}
	tree.ListPushBack(&sys.Libraries, id)
}
