// Package hifctx provides the explicit context object every HIF pass
// threads through its calls: one struct bundling a reporter and the caches
// a pass needs, passed by pointer instead of reached for through a
// package-level variable. The tree being worked on is passed separately.
package hifctx

import (
	"fmt"

	"hif/internal/diag"
	"hif/internal/ir"
	"hif/internal/source"
)

// Context is threaded through every Standardization Engine, Symbol Mapper,
// Cast Manager, Process Analyzer and Process Splitter call. It owns no
// tree itself (callers pass the *ir.Tree being mutated explicitly) but does
// own the caches and bookkeeping a pass needs across many node visits.
type Context struct {
	Files    *source.FileSet
	Bag      *diag.Bag
	Reporter diag.Reporter

	// semTypeCache mirrors the semantics-owned type cache
	// (Object.SemanticType): keyed by node and the active semantics'
	// identity, since the same tree can be re-standardized under a
	// different destination without rebuilding it from scratch.
	semTypeCache map[semTypeKey]ir.NodeID

	// refCache is the Reference Map: a name/scope resolution cache so
	// Symbol-feature lookups (Identifier, FunctionCall, TypeReferenceDecl,
	// ...) do not re-walk enclosing scopes on every access.
	refCache map[refKey]ir.NodeID

	// trash accumulates NodeIDs released by Tree mutations (SetChild,
	// BList removal, MatchedInsert's displaced subtrees) that passes may
	// want to inspect before they are dropped, e.g. to detect accidental
	// loss of side-effecting Actions.
	trash []ir.NodeID
}

type semTypeKey struct {
	Node     ir.NodeID
	Semantic string
}

type refKey struct {
	Scope ir.NodeID
	Name  string
}

// New creates a Context bound to files and bag. bag may be shared across
// passes to accumulate diagnostics from a whole pipeline run.
func New(files *source.FileSet, bag *diag.Bag) *Context {
	return &Context{
		Files:        files,
		Bag:          bag,
		Reporter:     diag.NewBagReporter(bag),
		semTypeCache: make(map[semTypeKey]ir.NodeID),
		refCache:     make(map[refKey]ir.NodeID),
	}
}

// CachedSemanticType returns the cached semantic type of node under the
// named semantics, if present.
func (c *Context) CachedSemanticType(node ir.NodeID, semantics string) (ir.NodeID, bool) {
	t, ok := c.semTypeCache[semTypeKey{Node: node, Semantic: semantics}]
	return t, ok
}

// SetCachedSemanticType installs or replaces node's cached semantic type.
func (c *Context) SetCachedSemanticType(node ir.NodeID, semantics string, typ ir.NodeID) {
	c.semTypeCache[semTypeKey{Node: node, Semantic: semantics}] = typ
}

// InvalidateSemanticType drops node's cached semantic type under every
// semantics. Called whenever a node is re-parented or mutated in a way that
// can change what it resolves to.
func (c *Context) InvalidateSemanticType(node ir.NodeID) {
	for k := range c.semTypeCache {
		if k.Node == node {
			delete(c.semTypeCache, k)
		}
	}
}

// ResolveInScope looks up name starting at scope in the Reference Map cache.
func (c *Context) ResolveInScope(scope ir.NodeID, name string) (ir.NodeID, bool) {
	id, ok := c.refCache[refKey{Scope: scope, Name: name}]
	return id, ok
}

// BindInScope records that name resolves to decl when looked up from scope.
func (c *Context) BindInScope(scope ir.NodeID, name string, decl ir.NodeID) {
	c.refCache[refKey{Scope: scope, Name: name}] = decl
}

// Discard appends ids to the trash bag for later inspection/collection.
func (c *Context) Discard(ids ...ir.NodeID) {
	for _, id := range ids {
		if id.IsValid() {
			c.trash = append(c.trash, id)
		}
	}
}

// Trash returns the accumulated discarded node IDs.
func (c *Context) Trash() []ir.NodeID { return c.trash }

// ClearTrash empties the trash bag, returning what it held.
func (c *Context) ClearTrash() []ir.NodeID {
	t := c.trash
	c.trash = nil
	return t
}

// FlushTypeCache drops every cached semantic type. Mutation passes call it
// before returning: after a standardize/map/split the cached types describe
// a tree shape that no longer exists.
func (c *Context) FlushTypeCache() {
	clear(c.semTypeCache)
}

// FlushInstanceCache drops the Reference Map's resolution cache, for the
// same reason as FlushTypeCache.
func (c *Context) FlushInstanceCache() {
	clear(c.refCache)
}

// Errorf reports a fatal diagnostic and returns it as an error, the
// pattern every pass uses at its boundary.
func (c *Context) Errorf(code diag.Code, span source.Span, format string, args ...any) error {
	d := diag.NewError(code, span, sprintf(format, args...))
	c.Bag.Add(&d)
	return &d
}

func sprintf(format string, args ...any) string {
	if len(args) == 0 {
		return format
	}
	return fmt.Sprintf(format, args...)
}
