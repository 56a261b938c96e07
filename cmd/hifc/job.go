package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"hif/internal/config"
	"hif/internal/diag"
	"hif/internal/hifctx"
	"hif/internal/ir"
	"hif/internal/procanalysis"
	"hif/internal/semantics"
	"hif/internal/source"
	"hif/internal/xmlcodec"
)

// jobInputs bundles everything a job subcommand needs after loading the
// manifest and the input XML: the parsed system, the resolved source/
// destination semantics, a fresh Context, and the diagnostic Bag every pass
// reports into.
type jobInputs struct {
	job    *config.Job
	system *ir.System
	src    semantics.Language
	dst    semantics.Language
	ctx    *hifctx.Context
	bag    *diag.Bag
	fs     *source.FileSet
}

func loadJob(cmd *cobra.Command, manifestPath string) (*jobInputs, error) {
	job, err := config.Load(manifestPath)
	if err != nil {
		return nil, fail(cmd, "hifc: %w", err)
	}
	src, err := job.Source()
	if err != nil {
		return nil, fail(cmd, "hifc: %w", err)
	}
	dst, err := job.Destination()
	if err != nil {
		return nil, fail(cmd, "hifc: %w", err)
	}

	in, err := openInput(job.Translate.In)
	if err != nil {
		return nil, fail(cmd, "hifc: %w", err)
	}
	defer in.Close()

	sys, err := xmlcodec.ParseXML(in)
	if err != nil {
		return nil, fail(cmd, "hifc: parse %s: %w", job.Translate.In, err)
	}

	fs := source.NewFileSet()
	bag := diag.NewBag(maxDiagnostics(cmd))
	ctx := hifctx.New(fs, bag)

	return &jobInputs{job: job, system: sys, src: src, dst: dst, ctx: ctx, bag: bag, fs: fs}, nil
}

// analyzeOptionsFromJob resolves the manifest's named clock/reset
// identifiers into NodeIDs by scanning every named node of the system's
// tree for a matching name (when several nodes share a name, the last one
// visited wins). Unmatched names are reported as warnings
// (the non-fatal "analyzer mismatch" outcome) rather than aborting
// the run, since a manifest may list a clock that only one of several
// translated views declares.
func analyzeOptionsFromJob(ji *jobInputs) procanalysis.AnalyzeOptions {
	opts := procanalysis.AnalyzeOptions{Concurrent: ji.job.Process.Concurrent}
	byName := map[string]ir.NodeID{}
	tree := ji.system.Tree
	ir.WalkAncestor(tree, tree.Root(), &namedNodeCollector{tree: tree, out: byName})

	for _, name := range ji.job.Process.Clocks {
		if id, ok := byName[name]; ok {
			opts.Clocks = append(opts.Clocks, id)
		} else {
			d := diag.New(diag.SevWarning, diag.ProcAmbiguousSensitivity, source.Span{},
				fmt.Sprintf("clock %q not found in input tree", name))
			ji.bag.Add(&d)
		}
	}
	for _, name := range ji.job.Process.Resets {
		if id, ok := byName[name]; ok {
			opts.Resets = append(opts.Resets, id)
		} else {
			d := diag.New(diag.SevWarning, diag.ProcAmbiguousSensitivity, source.Span{},
				fmt.Sprintf("reset %q not found in input tree", name))
			ji.bag.Add(&d)
		}
	}
	return opts
}

// namedNodeCollector walks the whole tree gathering every INamedObject node
// by name, grounded on the same ir.WalkAncestor + feature-dispatch shape the
// Process Analyzer itself uses (internal/procanalysis's tableCollector).
type namedNodeCollector struct {
	ir.NoOpAncestorVisitor
	tree *ir.Tree
	out  map[string]ir.NodeID
}

func (c *namedNodeCollector) VisitNamed(_ *ir.Tree, id ir.NodeID, named ir.Named) {
	c.out[named.GetName()] = id
}

func writeJobOutput(cmd *cobra.Command, ji *jobInputs, sys *ir.System) error {
	out, err := createOutput(ji.job.Translate.Out)
	if err != nil {
		return fail(cmd, "hifc: %w", err)
	}
	defer out.Close()
	if err := xmlcodec.WriteXML(out, sys, xmlcodec.Options{Indent: "  "}); err != nil {
		return fail(cmd, "hifc: write %s: %w", ji.job.Translate.Out, err)
	}
	cmd.Printf("wrote %s\n", ji.job.Translate.Out)
	return nil
}
