// Package procanalysis implements the Process Analyzer: it
// classifies every StateTable in a tree into a ProcessInfos record combining
// a sensitivity-list reading of the process header with a body-shape match
// against six canonical synchronous-process idioms.
//
// The analysis is a sensitivity/style dual-phase merge. Like the
// Standardization Engine (internal/standardize), it runs off explicit
// arguments and the pass context rather than a singleton analyzer object.
package procanalysis

import (
	"fmt"

	"hif/internal/diag"
	"hif/internal/hifctx"
	"hif/internal/ir"
	"hif/internal/semantics"
	"hif/internal/source"

	"golang.org/x/sync/errgroup"
)

// ProcessKind is the top-level classification of a StateTable.
type ProcessKind uint8

const (
	KindUnknown ProcessKind = iota
	KindAsynchronous
	KindSynchronous
	KindDerivedSynchronous
	KindMixed
	KindDerivedMixed
)

func (k ProcessKind) String() string {
	switch k {
	case KindAsynchronous:
		return "ASYNCHRONOUS"
	case KindSynchronous:
		return "SYNCHRONOUS"
	case KindDerivedSynchronous:
		return "DERIVED_SYNCHRONOUS"
	case KindMixed:
		return "MIXED"
	case KindDerivedMixed:
		return "DERIVED_MIXED"
	default:
		return "UNKNOWN"
	}
}

// ResetKind names how a process's reset (if any) is applied.
type ResetKind uint8

const (
	ResetNone ResetKind = iota
	ResetSynchronous
	ResetAsynchronous
	ResetDerivedSynchronous
)

func (k ResetKind) String() string {
	switch k {
	case ResetSynchronous:
		return "SYNCHRONOUS_RESET"
	case ResetAsynchronous:
		return "ASYNCHRONOUS_RESET"
	case ResetDerivedSynchronous:
		return "DERIVED_SYNCHRONOUS_RESET"
	default:
		return "NO_RESET"
	}
}

// WorkingEdge names the clock edge (if any) a process is triggered on.
type WorkingEdge uint8

const (
	EdgeNone WorkingEdge = iota
	EdgeRising
	EdgeFalling
	EdgeBoth
)

func (e WorkingEdge) String() string {
	switch e {
	case EdgeRising:
		return "RISING_EDGE"
	case EdgeFalling:
		return "FALLING_EDGE"
	case EdgeBoth:
		return "BOTH_EDGES"
	default:
		return "NO_EDGE"
	}
}

// ResetPhase names the active level of a process's reset.
type ResetPhase uint8

const (
	PhaseNone ResetPhase = iota
	PhaseHigh
	PhaseLow
)

func (p ResetPhase) String() string {
	switch p {
	case PhaseHigh:
		return "HIGH_PHASE"
	case PhaseLow:
		return "LOW_PHASE"
	default:
		return "NO_PHASE"
	}
}

// ProcessStyle names the canonical body shape a process was recognized as
// (the six styles).
type ProcessStyle uint8

const (
	StyleNone ProcessStyle = iota
	Style1
	Style2
	Style3
	Style4
	Style5
	Style6
)

func (s ProcessStyle) String() string {
	if s == StyleNone {
		return "NO_STYLE"
	}
	return fmt.Sprintf("STYLE_%d", int(s))
}

// NodeSet is an order-preserving, duplicate-free collection of NodeIDs.
type NodeSet struct {
	order []ir.NodeID
	has   map[ir.NodeID]bool
}

// Add inserts id if not already present.
func (s *NodeSet) Add(id ir.NodeID) {
	if !id.IsValid() {
		return
	}
	if s.has == nil {
		s.has = make(map[ir.NodeID]bool)
	}
	if s.has[id] {
		return
	}
	s.has[id] = true
	s.order = append(s.order, id)
}

// Has reports whether id is a member.
func (s *NodeSet) Has(id ir.NodeID) bool { return s != nil && s.has[id] }

// Items returns the set's members in insertion order.
func (s *NodeSet) Items() []ir.NodeID {
	if s == nil {
		return nil
	}
	return s.order
}

// Len reports the set's size.
func (s *NodeSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.order)
}

// ProcessInfos is the classification record the analyzer assigns to every
// StateTable.
type ProcessInfos struct {
	Kind       ProcessKind
	ResetKind  ResetKind
	Edge       WorkingEdge
	Phase      ResetPhase
	Style      ProcessStyle
	Clock      ir.NodeID
	Reset      ir.NodeID

	ReadSignals    NodeSet
	WrittenSignals NodeSet
	ReadVariables  NodeSet
	WrittenVariables NodeSet

	SensitivityLevel  NodeSet
	SensitivityRising NodeSet
	SensitivityFalling NodeSet
}

// ProcessMap is the output of AnalyzeProcesses and the input/output of
// procsplit.Split: every StateTable this run has classified, plus the
// order they were discovered in so downstream passes iterate deterministically.
type ProcessMap struct {
	order []ir.NodeID
	infos map[ir.NodeID]*ProcessInfos
}

// NewProcessMap returns an empty ProcessMap.
func NewProcessMap() *ProcessMap {
	return &ProcessMap{infos: make(map[ir.NodeID]*ProcessInfos)}
}

// Set installs or replaces the ProcessInfos for a StateTable, tracking
// discovery order on first insertion.
func (pm *ProcessMap) Set(process ir.NodeID, info *ProcessInfos) {
	if _, ok := pm.infos[process]; !ok {
		pm.order = append(pm.order, process)
	}
	pm.infos[process] = info
}

// Get returns the ProcessInfos for process, if classified.
func (pm *ProcessMap) Get(process ir.NodeID) (*ProcessInfos, bool) {
	i, ok := pm.infos[process]
	return i, ok
}

// Delete removes process from the map (e.g. after the splitter consumes a
// MIXED process into its replacements).
func (pm *ProcessMap) Delete(process ir.NodeID) {
	delete(pm.infos, process)
	for i, id := range pm.order {
		if id == process {
			pm.order = append(pm.order[:i], pm.order[i+1:]...)
			break
		}
	}
}

// Processes returns every classified StateTable in discovery order.
func (pm *ProcessMap) Processes() []ir.NodeID {
	return append([]ir.NodeID(nil), pm.order...)
}

// AnalyzeOptions configures classification. Clocks/Resets name the
// declarations (Ports/Signals) the caller already knows act as a clock or
// reset in this design; phase 1 intersects those names with the
// sensitivity buckets, treating recognition as
// an externally supplied fact rather than something the analyzer infers from
// naming convention.
type AnalyzeOptions struct {
	Clocks []ir.NodeID
	Resets []ir.NodeID

	// Concurrent enables classifying independent StateTables (those with no
	// shared read/write target, conservatively approximated here as "any
	// two distinct processes") across goroutines via golang.org/x/sync's
	// errgroup. Safe because each StateTable's classification only reads the
	// shared tree and writes into its own ProcessInfos.
	Concurrent bool
}

// AnalyzeProcesses classifies every StateTable reachable from root into pm,
// returning true if at least one process was classified MIXED or
// DERIVED_MIXED (a hint to the caller that procsplit.Split has work to do).
func AnalyzeProcesses(ctx *hifctx.Context, root ir.NodeRef, sem semantics.Language, opts AnalyzeOptions) (*ProcessMap, bool, error) {
	if !root.IsValid() {
		return nil, false, fmt.Errorf("procanalysis: invalid root")
	}
	tree := root.Tree

	var tables []ir.NodeID
	ir.WalkAncestor(tree, root.Node, &tableCollector{out: &tables})

	pm := NewProcessMap()
	anyMixed := false

	classify := func(id ir.NodeID) error {
		n := tree.Node(id)
		if n == nil {
			return nil
		}
		std, ok := n.Data.(*ir.StateTableData)
		if !ok {
			return nil
		}
		if containsWait(tree, std) {
			return ctx.Errorf(diag.ProcWaitUnsupported, spanOf(tree, id),
				"process %q contains a Wait statement, which the process analyzer does not support", std.Name)
		}
		info := classifyOne(tree, std, opts)
		pm.Set(id, info)
		return nil
	}

	if opts.Concurrent && len(tables) > 1 {
		g := new(errgroup.Group)
		results := make([]*ProcessInfos, len(tables))
		errs := make([]error, len(tables))
		for i, id := range tables {
			i, id := i, id
			g.Go(func() error {
				n := tree.Node(id)
				if n == nil {
					return nil
				}
				std, ok := n.Data.(*ir.StateTableData)
				if !ok {
					return nil
				}
				if containsWait(tree, std) {
					errs[i] = fmt.Errorf("process %q contains a Wait statement", std.Name)
					return nil
				}
				results[i] = classifyOne(tree, std, opts)
				return nil
			})
		}
		_ = g.Wait()
		for i, id := range tables {
			if errs[i] != nil {
				return nil, false, ctx.Errorf(diag.ProcWaitUnsupported, spanOf(tree, id), "%s", errs[i].Error())
			}
			if results[i] != nil {
				pm.Set(id, results[i])
			}
		}
	} else {
		for _, id := range tables {
			if err := classify(id); err != nil {
				return nil, false, err
			}
		}
	}

	for _, id := range pm.Processes() {
		info, _ := pm.Get(id)
		if info.Kind == KindMixed || info.Kind == KindDerivedMixed {
			anyMixed = true
		}
	}
	return pm, anyMixed, nil
}

type tableCollector struct {
	ir.NoOpAncestorVisitor
	out *[]ir.NodeID
}

func (c *tableCollector) VisitObject(tree *ir.Tree, id ir.NodeID) {
	if n := tree.Node(id); n != nil && n.Kind == ir.ClassStateTable {
		*c.out = append(*c.out, id)
	}
}

// containsWait reports whether any State of std contains a Wait action,
// directly or nested in a control-flow construct.
func containsWait(tree *ir.Tree, std *ir.StateTableData) bool {
	found := false
	for i := 0; i < std.States.Len(); i++ {
		ir.WalkAncestor(tree, std.States.At(i), &waitFinder{found: &found})
		if found {
			return true
		}
	}
	return false
}

type waitFinder struct {
	ir.NoOpAncestorVisitor
	found *bool
}

func (w *waitFinder) VisitAction(tree *ir.Tree, id ir.NodeID) {
	if n := tree.Node(id); n != nil && n.Kind == ir.ClassWait {
		*w.found = true
	}
}

func spanOf(tree *ir.Tree, id ir.NodeID) source.Span {
	if n := tree.Node(id); n != nil {
		return n.Code.Span
	}
	return source.Span{}
}

// ClassifyForSplit exposes classifyOne to internal/procsplit, which needs to
// re-run classification over each process it synthesizes while rewriting a
// MIXED process without re-walking the whole tree
// through AnalyzeProcesses.
func ClassifyForSplit(tree *ir.Tree, std *ir.StateTableData, opts AnalyzeOptions) *ProcessInfos {
	return classifyOne(tree, std, opts)
}

// classifyOne runs both phases of the classification over a
// single StateTable and returns the merged ProcessInfos.
func classifyOne(tree *ir.Tree, std *ir.StateTableData, opts AnalyzeOptions) *ProcessInfos {
	sens := sensitivityPhase(tree, std, opts)
	rw := readWriteSets(tree, std)
	sens.ReadSignals, sens.WrittenSignals = rw.readSignals, rw.writtenSignals
	sens.ReadVariables, sens.WrittenVariables = rw.readVariables, rw.writtenVariables

	shape, style, ok := bodyShapePhase(tree, std, sens)
	if !ok {
		return sens
	}
	merged, ok := mergeProcessInfos(sens, shape)
	if !ok {
		return sens
	}
	merged.Style = style
	return merged
}

type declSet = NodeSet

func declOf(tree *ir.Tree, value ir.NodeID) ir.NodeID {
	n := tree.Node(value)
	if n == nil {
		return ir.NoNode
	}
	if sym, ok := ir.AsSymbol(n); ok {
		return sym.ResolvesTo()
	}
	return ir.NoNode
}

func containsDecl(ids []ir.NodeID, target ir.NodeID) bool {
	for _, id := range ids {
		if id == target {
			return true
		}
	}
	return false
}

// sensitivityPhase is classification phase 1: intersecting the
// caller-supplied clock/reset candidates against the three sensitivity
// buckets, and flagging MIXED when more than one unrecognized edge signal
// shares the header with a confirmed clock.
func sensitivityPhase(tree *ir.Tree, std *ir.StateTableData, opts AnalyzeOptions) *ProcessInfos {
	info := &ProcessInfos{}
	for i := 0; i < std.Sensitivity.Len(); i++ {
		info.SensitivityLevel.Add(declOf(tree, std.Sensitivity.At(i)))
	}
	for i := 0; i < std.SensitivityPos.Len(); i++ {
		info.SensitivityRising.Add(declOf(tree, std.SensitivityPos.At(i)))
	}
	for i := 0; i < std.SensitivityNeg.Len(); i++ {
		info.SensitivityFalling.Add(declOf(tree, std.SensitivityNeg.At(i)))
	}

	if info.SensitivityRising.Len() == 0 && info.SensitivityFalling.Len() == 0 {
		info.Kind = KindAsynchronous
		return info
	}

	var clock ir.NodeID
	for _, c := range opts.Clocks {
		rising, falling := info.SensitivityRising.Has(c), info.SensitivityFalling.Has(c)
		if rising || falling {
			clock = c
			switch {
			case rising && falling:
				info.Edge = EdgeBoth
			case rising:
				info.Edge = EdgeRising
			default:
				info.Edge = EdgeFalling
			}
			break
		}
	}

	var unknownEdge []ir.NodeID
	collectUnknown := func(set *NodeSet, phase ResetPhase) {
		for _, id := range set.Items() {
			if id == clock || containsDecl(opts.Clocks, id) || containsDecl(opts.Resets, id) {
				continue
			}
			unknownEdge = append(unknownEdge, id)
			_ = phase
		}
	}
	collectUnknown(&info.SensitivityRising, PhaseHigh)
	collectUnknown(&info.SensitivityFalling, PhaseLow)

	for _, r := range opts.Resets {
		switch {
		case info.SensitivityRising.Has(r):
			info.ResetKind, info.Phase, info.Reset = ResetAsynchronous, PhaseHigh, r
		case info.SensitivityFalling.Has(r):
			info.ResetKind, info.Phase, info.Reset = ResetAsynchronous, PhaseLow, r
		}
	}

	if !clock.IsValid() {
		if len(unknownEdge) == 1 {
			clock = unknownEdge[0]
			if info.SensitivityRising.Has(clock) {
				info.Edge = EdgeRising
			} else {
				info.Edge = EdgeFalling
			}
			info.Kind = KindDerivedSynchronous
			info.Clock = clock
			return info
		}
		info.Kind = KindMixed
		return info
	}
	info.Clock = clock

	switch len(unknownEdge) {
	case 0:
		info.Kind = KindSynchronous
	case 1:
		if info.ResetKind == ResetNone {
			info.ResetKind = ResetDerivedSynchronous
			info.Reset = unknownEdge[0]
			if info.SensitivityRising.Has(unknownEdge[0]) {
				info.Phase = PhaseHigh
			} else {
				info.Phase = PhaseLow
			}
		}
		info.Kind = KindSynchronous
	default:
		info.Kind = KindMixed
	}
	return info
}

type rwSets struct {
	readSignals, writtenSignals   NodeSet
	readVariables, writtenVariables NodeSet
}

// readWriteSets walks every State's Actions recording which Signal/Port and
// Variable declarations are read versus written, the bookkeeping later
// consumed by the process splitter's variable lifting/promotion step.
func readWriteSets(tree *ir.Tree, std *ir.StateTableData) rwSets {
	var out rwSets
	v := &rwVisitor{tree: tree, out: &out}
	for i := 0; i < std.States.Len(); i++ {
		ir.WalkAncestor(tree, std.States.At(i), v)
	}
	return out
}

type rwVisitor struct {
	ir.NoOpAncestorVisitor
	tree *ir.Tree
	out  *rwSets
}

func (v *rwVisitor) VisitAction(tree *ir.Tree, id ir.NodeID) {
	n := tree.Node(id)
	if n == nil {
		return
	}
	ad, ok := n.Data.(*ir.AssignData)
	if !ok {
		return
	}
	v.markWrite(tree, ad.Target)
	v.markReads(tree, ad.Source)
}

func (v *rwVisitor) markWrite(tree *ir.Tree, target ir.NodeID) {
	decl := baseDeclOf(tree, target)
	if !decl.IsValid() {
		return
	}
	if isSignalOrPort(tree, decl) {
		v.out.writtenSignals.Add(decl)
	} else {
		v.out.writtenVariables.Add(decl)
	}
}

// markReads walks a value subtree collecting every Symbol reference as a
// read. VisitAction passes it only an Assign's Source, so a declaration
// referenced solely in an If/Switch/While condition is not recorded as read.
func (v *rwVisitor) markReads(tree *ir.Tree, value ir.NodeID) {
	ir.WalkAncestor(tree, value, &readCollector{tree: tree, out: v.out})
}

type readCollector struct {
	ir.NoOpAncestorVisitor
	tree *ir.Tree
	out  *rwSets
}

func (r *readCollector) VisitSymbol(tree *ir.Tree, id ir.NodeID, f ir.Symbol) {
	decl := f.ResolvesTo()
	if !decl.IsValid() {
		return
	}
	if isSignalOrPort(tree, decl) {
		r.out.readSignals.Add(decl)
	} else {
		r.out.readVariables.Add(decl)
	}
}

// baseDeclOf resolves an assignment target's underlying declaration,
// unwrapping Slice/Member/FieldReference prefixes (a partial write to a bit
// of a signal still counts as writing that signal as a whole).
func baseDeclOf(tree *ir.Tree, target ir.NodeID) ir.NodeID {
	n := tree.Node(target)
	if n == nil {
		return ir.NoNode
	}
	switch d := n.Data.(type) {
	case *ir.SliceData:
		return baseDeclOf(tree, d.Prefix)
	case *ir.MemberData:
		return baseDeclOf(tree, d.Prefix)
	case *ir.FieldReferenceData:
		return baseDeclOf(tree, d.Prefix)
	}
	if sym, ok := ir.AsSymbol(n); ok {
		return sym.ResolvesTo()
	}
	return ir.NoNode
}

func isSignalOrPort(tree *ir.Tree, decl ir.NodeID) bool {
	n := tree.Node(decl)
	if n == nil {
		return false
	}
	switch n.Kind {
	case ir.ClassSignal, ir.ClassPort:
		return true
	}
	return false
}

// bodyShapePhase is classification phase 2: matching a process's
// single State body against the six canonical process styles. Each style
// tried below produces its own, independently derived ProcessInfos; the
// first one that matches is returned for the caller to merge with the
// sensitivity-phase result via mergeProcessInfos. Styles 1, 3 and 4 are
// matched in a reduced form here (single reset/clock nesting, a bare state
// switch, and a flat sequence of style-1/2 blocks respectively; bodies
// with interleaved declarations are not reordered around yet.
func bodyShapePhase(tree *ir.Tree, std *ir.StateTableData, sens *ProcessInfos) (*ProcessInfos, ProcessStyle, bool) {
	if std.States.Len() != 1 {
		return nil, StyleNone, false
	}
	state := tree.Node(std.States.At(0))
	if state == nil {
		return nil, StyleNone, false
	}
	sd, ok := state.Data.(*ir.StateData)
	if !ok {
		return nil, StyleNone, false
	}
	body := actionsOf(sd.Actions)

	if info, ok := matchStyle6(tree, body); ok {
		return info, Style6, true
	}
	if info, ok := matchStyle2(tree, body, sens); ok {
		return info, Style2, true
	}
	if info, ok := matchStyle1(tree, body, sens); ok {
		return info, Style1, true
	}
	if info, ok := matchStyle3(tree, body); ok {
		return info, Style3, true
	}
	if info, ok := matchStyle5(tree, body); ok {
		return info, Style5, true
	}
	if info, ok := matchStyle4(tree, body, sens); ok {
		return info, Style4, true
	}
	return nil, StyleNone, false
}

func actionsOf(list ir.BList) []ir.NodeID {
	out := make([]ir.NodeID, list.Len())
	for i := range out {
		out[i] = list.At(i)
	}
	return out
}

// resetPhaseOf inspects a reset condition of the shape `reset == '1'`,
// `reset == '0'`, `!reset` or a bare identifier, returning the phase the
// condition tests for being true (the HIGH_PHASE/LOW_PHASE).
func resetPhaseOf(tree *ir.Tree, cond ir.NodeID) (ir.NodeID, ResetPhase, bool) {
	n := tree.Node(cond)
	if n == nil {
		return ir.NoNode, PhaseNone, false
	}
	switch d := n.Data.(type) {
	case *ir.ExpressionData:
		switch d.Op {
		case ir.OpNot:
			if decl := declOf(tree, d.Op1); decl.IsValid() {
				return decl, PhaseLow, true
			}
		case ir.OpEq, ir.OpCaseEq:
			decl := declOf(tree, d.Op1)
			if !decl.IsValid() {
				decl = declOf(tree, d.Op2)
			}
			if !decl.IsValid() {
				return ir.NoNode, PhaseNone, false
			}
			if litIsHigh(tree, d.Op1) || litIsHigh(tree, d.Op2) {
				return decl, PhaseHigh, true
			}
			return decl, PhaseLow, true
		}
	default:
		if decl := declOf(tree, cond); decl.IsValid() {
			return decl, PhaseHigh, true
		}
	}
	return ir.NoNode, PhaseNone, false
}

func litIsHigh(tree *ir.Tree, id ir.NodeID) bool {
	n := tree.Node(id)
	if n == nil {
		return false
	}
	switch d := n.Data.(type) {
	case *ir.BitValueData:
		return d.Value == ir.Bit1
	case *ir.BoolValueData:
		return d.Value
	}
	return false
}

// clockOperandOf reports whether cond uses the process's clock (sens.Clock)
// as an operand: as either operand of an Expression (such as the comparison
// TLM.SimplifiedSymbol builds from rising_edge/falling_edge), or as an
// argument of a FunctionCall (such as an unsimplified rising_edge/falling_edge
// call). A condition that is only a bare reference to the clock is not matched.
func clockOperandOf(tree *ir.Tree, cond ir.NodeID, sens *ProcessInfos) (ir.NodeID, bool) {
	n := tree.Node(cond)
	if n == nil {
		return ir.NoNode, false
	}
	switch d := n.Data.(type) {
	case *ir.ExpressionData:
		if decl := declOf(tree, d.Op1); decl.IsValid() && decl == sens.Clock {
			return decl, true
		}
		if d.Op2.IsValid() {
			if decl := declOf(tree, d.Op2); decl.IsValid() && decl == sens.Clock {
				return decl, true
			}
		}
	case *ir.FunctionCallData:
		for _, arg := range callArgValues(tree, d) {
			if decl := declOf(tree, arg); decl.IsValid() && decl == sens.Clock {
				return decl, true
			}
		}
	}
	return ir.NoNode, false
}

func callArgValues(tree *ir.Tree, d *ir.FunctionCallData) []ir.NodeID {
	out := make([]ir.NodeID, 0, d.ParameterAssigns.Len())
	for i := 0; i < d.ParameterAssigns.Len(); i++ {
		n := tree.Node(d.ParameterAssigns.At(i))
		if n == nil {
			continue
		}
		if pa, ok := n.Data.(*ir.ParameterAssignData); ok {
			out = append(out, pa.Value)
		}
	}
	return out
}

// matchStyle6 recognizes `if (reset-test) { reset-assigns } else { clocked
// work }`: a lone top-level If with a single Alt whose condition has one of
// the reset-test shapes resetPhaseOf accepts, the synchronous-reset idiom
// (Style 6). The declaration that condition tests is taken as the reset; it
// is not checked against the process's clock or the caller's known resets.
func matchStyle6(tree *ir.Tree, body []ir.NodeID) (*ProcessInfos, bool) {
	ifd, ok := soleIf(tree, body)
	if !ok {
		return nil, false
	}
	if ifd.Alts.Len() != 1 {
		return nil, false
	}
	alt := tree.Node(ifd.Alts.At(0)).Data.(*ir.IfAltData)
	decl, phase, ok := resetPhaseOf(tree, alt.Condition)
	if !ok {
		return nil, false
	}
	return &ProcessInfos{Kind: KindSynchronous, ResetKind: ResetSynchronous, Reset: decl, Phase: phase}, true
}

// matchStyle2 recognizes `if (clock-edge-test) { ... }`: a lone top-level If
// whose sole Alt's condition names the process's recognized clock (Style 2,
// the plain clocked-block idiom with no reset at all, or a
// reset tested inside the clocked body via a nested Style 6 shape).
func matchStyle2(tree *ir.Tree, body []ir.NodeID, sens *ProcessInfos) (*ProcessInfos, bool) {
	if !sens.Clock.IsValid() {
		return nil, false
	}
	ifd, ok := soleIf(tree, body)
	if !ok {
		return nil, false
	}
	if ifd.Alts.Len() != 1 {
		return nil, false
	}
	alt := tree.Node(ifd.Alts.At(0)).Data.(*ir.IfAltData)
	if _, ok := clockOperandOf(tree, alt.Condition, sens); !ok {
		return nil, false
	}
	info := &ProcessInfos{Kind: KindSynchronous}
	if nested, ok := matchStyle6(tree, actionsOf(alt.Body)); ok {
		info.ResetKind, info.Reset, info.Phase = nested.ResetKind, nested.Reset, nested.Phase
	}
	return info, true
}

// matchStyle1 recognizes the VHDL idiom of an asynchronous reset tested
// ahead of the clock inside the sensitivity-gated body: `if (reset-test) {
// reset-assigns } elsif (clock-edge-test) { clocked work }` (Style 1).
func matchStyle1(tree *ir.Tree, body []ir.NodeID, sens *ProcessInfos) (*ProcessInfos, bool) {
	if !sens.Clock.IsValid() {
		return nil, false
	}
	ifd, ok := soleIf(tree, body)
	if !ok {
		return nil, false
	}
	if ifd.Alts.Len() != 2 {
		return nil, false
	}
	first := tree.Node(ifd.Alts.At(0)).Data.(*ir.IfAltData)
	second := tree.Node(ifd.Alts.At(1)).Data.(*ir.IfAltData)
	decl, phase, ok := resetPhaseOf(tree, first.Condition)
	if !ok {
		return nil, false
	}
	if _, ok := clockOperandOf(tree, second.Condition, sens); !ok {
		return nil, false
	}
	return &ProcessInfos{Kind: KindSynchronous, ResetKind: ResetAsynchronous, Reset: decl, Phase: phase}, true
}

// matchStyle3 recognizes a bare state-machine Switch at the top of the body,
// dispatching on a state variable distinct from clock and reset (Style 3).
func matchStyle3(tree *ir.Tree, body []ir.NodeID) (*ProcessInfos, bool) {
	if len(body) != 1 {
		return nil, false
	}
	n := tree.Node(body[0])
	if n == nil || n.Kind != ir.ClassSwitch {
		return nil, false
	}
	return &ProcessInfos{Kind: KindSynchronous}, true
}

// matchStyle5 recognizes a flat sequence of plain (non-conditional)
// assignments with no control flow at all: the single clocked register with
// no reset idiom (Style 5).
func matchStyle5(tree *ir.Tree, body []ir.NodeID) (*ProcessInfos, bool) {
	if len(body) == 0 {
		return nil, false
	}
	for _, id := range body {
		n := tree.Node(id)
		if n == nil || n.Kind != ir.ClassAssign {
			return nil, false
		}
	}
	return &ProcessInfos{Kind: KindSynchronous}, true
}

// matchStyle4 recognizes a flat top-level sequence made up entirely of
// blocks that independently match Style 1 or Style 2, each testing the same
// clock/reset pair (Style 4, several clocked blocks folded into one
// process).
func matchStyle4(tree *ir.Tree, body []ir.NodeID, sens *ProcessInfos) (*ProcessInfos, bool) {
	if len(body) < 2 {
		return nil, false
	}
	merged := &ProcessInfos{Kind: KindSynchronous}
	for _, id := range body {
		n := tree.Node(id)
		if n == nil || n.Kind != ir.ClassIf {
			return nil, false
		}
		sub := []ir.NodeID{id}
		info, ok := matchStyle1(tree, sub, sens)
		if !ok {
			info, ok = matchStyle2(tree, sub, sens)
		}
		if !ok {
			return nil, false
		}
		next, ok := mergeResetInfos(merged, info)
		if !ok {
			return nil, false
		}
		merged = next
	}
	return merged, true
}

// soleIf returns the body's single If action, if that is the whole body.
func soleIf(tree *ir.Tree, body []ir.NodeID) (*ir.IfData, bool) {
	if len(body) != 1 {
		return nil, false
	}
	n := tree.Node(body[0])
	if n == nil {
		return nil, false
	}
	ifd, ok := n.Data.(*ir.IfData)
	return ifd, ok
}

// mergeProcessInfos folds a body-shape match into the sensitivity-derived
// ProcessInfos, per the six merge predicates. A merge fails (and
// the body-shape match is discarded) when the two disagree on a field
// neither side left unset.
func mergeProcessInfos(sens, shape *ProcessInfos) (*ProcessInfos, bool) {
	out := *sens
	if shape.Kind != KindUnknown {
		k, ok := mergeProcessKind(out.Kind, shape.Kind)
		if !ok {
			return nil, false
		}
		out.Kind = k
	}
	if ri, ok := mergeResetInfos(&out, shape); ok {
		out = *ri
	} else {
		return nil, false
	}
	if ei, ok := mergeEdgeInfos(&out, shape); ok {
		out = *ei
	} else {
		return nil, false
	}
	if pi, ok := mergePhaseInfos(&out, shape); ok {
		out = *pi
	} else {
		return nil, false
	}
	if si, ok := mergeSignals(&out, shape); ok {
		out = *si
	} else {
		return nil, false
	}
	return &out, true
}

func mergeProcessKind(a, b ProcessKind) (ProcessKind, bool) {
	if a == b {
		return a, true
	}
	if a == KindUnknown {
		return b, true
	}
	if b == KindUnknown {
		return a, true
	}
	if a == KindDerivedSynchronous && b == KindSynchronous {
		return b, true
	}
	if b == KindDerivedSynchronous && a == KindSynchronous {
		return a, true
	}
	return KindMixed, false
}

// mergeResetInfos reconciles two ProcessInfos' reset classification, the
// first of the six merge predicates.
func mergeResetInfos(a, b *ProcessInfos) (*ProcessInfos, bool) {
	out := *a
	if b.ResetKind == ResetNone {
		return &out, true
	}
	if out.ResetKind == ResetNone {
		out.ResetKind, out.Reset, out.Phase = b.ResetKind, b.Reset, b.Phase
		return &out, true
	}
	if out.Reset.IsValid() && b.Reset.IsValid() && out.Reset != b.Reset {
		return a, false
	}
	if out.ResetKind != b.ResetKind {
		// A sensitivity-confirmed asynchronous reset always outranks a
		// body-shape-derived synchronous one: the sensitivity list is ground
		// truth for what actually re-triggers the process.
		if out.ResetKind == ResetAsynchronous || b.ResetKind == ResetAsynchronous {
			if out.ResetKind != ResetAsynchronous {
				out.ResetKind = b.ResetKind
			}
		} else {
			out.ResetKind = ResetDerivedSynchronous
		}
	}
	return &out, true
}

// mergeEdgeInfos reconciles the clock edge the two classifications imply.
func mergeEdgeInfos(a, b *ProcessInfos) (*ProcessInfos, bool) {
	out := *a
	if b.Edge == EdgeNone {
		return &out, true
	}
	if out.Edge == EdgeNone {
		out.Edge = b.Edge
		return &out, true
	}
	if out.Edge != b.Edge {
		return a, false
	}
	return &out, true
}

// mergePhaseInfos reconciles the reset's active phase.
func mergePhaseInfos(a, b *ProcessInfos) (*ProcessInfos, bool) {
	out := *a
	if b.Phase == PhaseNone {
		return &out, true
	}
	if out.Phase == PhaseNone {
		out.Phase = b.Phase
		return &out, true
	}
	if out.Phase != b.Phase {
		return a, false
	}
	return &out, true
}

// mergeProcessStyle reconciles the ProcessStyle two independent body-shape
// matches assigned the same State: an unset side takes the other, and two
// different set styles do not merge. Nothing in this package calls it;
// matchStyle4 folds its blocks with mergeResetInfos only.
func mergeProcessStyle(a, b ProcessStyle) (ProcessStyle, bool) {
	if a == StyleNone {
		return b, true
	}
	if b == StyleNone || a == b {
		return a, true
	}
	return StyleNone, false
}

// mergeSignals unions the read/write/sensitivity sets of two ProcessInfos
// describing the same process.
func mergeSignals(a, b *ProcessInfos) (*ProcessInfos, bool) {
	out := *a
	for _, s := range b.ReadSignals.Items() {
		out.ReadSignals.Add(s)
	}
	for _, s := range b.WrittenSignals.Items() {
		out.WrittenSignals.Add(s)
	}
	for _, s := range b.ReadVariables.Items() {
		out.ReadVariables.Add(s)
	}
	for _, s := range b.WrittenVariables.Items() {
		out.WrittenVariables.Add(s)
	}
	return &out, true
}
