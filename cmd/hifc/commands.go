package main

import (
	"github.com/spf13/cobra"

	"hif/internal/castmgr"
	"hif/internal/ir"
	"hif/internal/precision"
	"hif/internal/procanalysis"
	"hif/internal/procsplit"
	"hif/internal/standardize"
	"hif/internal/symbolmap"
)

// Each subcommand reads a hif.toml job manifest (internal/config) naming
// the source/destination semantics and the input/output XML paths, rather
// than repeating the same flags on every command.

var standardizeCmd = &cobra.Command{
	Use:   "standardize <job.toml>",
	Short: "Standardize a tree from one language semantics into another",
	Args:  cobra.ExactArgs(1),
	RunE:  runStandardize,
}

var mapSymbolsCmd = &cobra.Command{
	Use:   "map-symbols <job.toml>",
	Short: "Retarget standard-library symbol references onto the destination semantics",
	Args:  cobra.ExactArgs(1),
	RunE:  runMapSymbols,
}

var manageCastsCmd = &cobra.Command{
	Use:   "manage-casts <job.toml>",
	Short: "Standardize, then re-express every inserted cast in the destination's idiomatic form",
	Args:  cobra.ExactArgs(1),
	RunE:  runManageCasts,
}

var analyzeProcessesCmd = &cobra.Command{
	Use:   "analyze-processes <job.toml>",
	Short: "Classify every process (StateTable) by kind, reset, edge, phase and style",
	Args:  cobra.ExactArgs(1),
	RunE:  runAnalyzeProcesses,
}

var splitProcessesCmd = &cobra.Command{
	Use:   "split-processes <job.toml>",
	Short: "Analyze, then split every mixed process into single-kind processes",
	Args:  cobra.ExactArgs(1),
	RunE:  runSplitProcesses,
}

var comparePrecisionCmd = &cobra.Command{
	Use:   "compare-precision <job.toml>",
	Short: "Compare the precision of two nodes named by --node-a/--node-b under the job's source semantics",
	Args:  cobra.ExactArgs(1),
	RunE:  runComparePrecision,
}

var (
	nodeAFlag uint32
	nodeBFlag uint32
)

func init() {
	comparePrecisionCmd.Flags().Uint32Var(&nodeAFlag, "node-a", 0, "NodeID of the first type (see xml-parse output for node IDs)")
	comparePrecisionCmd.Flags().Uint32Var(&nodeBFlag, "node-b", 0, "NodeID of the second type")
	_ = comparePrecisionCmd.MarkFlagRequired("node-a")
	_ = comparePrecisionCmd.MarkFlagRequired("node-b")
}

func runStandardize(cmd *cobra.Command, args []string) error {
	ji, err := loadJob(cmd, args[0])
	if err != nil {
		return err
	}
	result, err := standardize.Standardize(ji.ctx, ji.system, ji.src, ji.dst)
	if printBag(cmd, ji.bag, ji.fs) {
		return fail(cmd, "hifc: standardization reported fatal diagnostics")
	}
	if err != nil {
		return fail(cmd, "hifc: standardize: %w", err)
	}
	return writeJobOutput(cmd, ji, result.System)
}

func runMapSymbols(cmd *cobra.Command, args []string) error {
	ji, err := loadJob(cmd, args[0])
	if err != nil {
		return err
	}
	root := ir.NodeRef{Tree: ji.system.Tree, Node: ji.system.Tree.Root()}
	if err := symbolmap.MapStandardSymbols(ji.ctx, root, ji.src, ji.dst); err != nil {
		printBag(cmd, ji.bag, ji.fs)
		return fail(cmd, "hifc: map-symbols: %w", err)
	}
	if printBag(cmd, ji.bag, ji.fs) {
		return fail(cmd, "hifc: map-symbols reported fatal diagnostics")
	}
	return writeJobOutput(cmd, ji, ji.system)
}

func runManageCasts(cmd *cobra.Command, args []string) error {
	ji, err := loadJob(cmd, args[0])
	if err != nil {
		return err
	}
	result, err := standardize.Standardize(ji.ctx, ji.system, ji.src, ji.dst)
	if printBag(cmd, ji.bag, ji.fs) {
		return fail(cmd, "hifc: standardization reported fatal diagnostics")
	}
	if err != nil {
		return fail(cmd, "hifc: standardize: %w", err)
	}
	root := ir.NodeRef{Tree: result.System.Tree, Node: result.System.Tree.Root()}
	if err := castmgr.ManageCasts(ji.ctx, root, ji.src, ji.dst, result.CastMap); err != nil {
		printBag(cmd, ji.bag, ji.fs)
		return fail(cmd, "hifc: manage-casts: %w", err)
	}
	if printBag(cmd, ji.bag, ji.fs) {
		return fail(cmd, "hifc: manage-casts reported fatal diagnostics")
	}
	return writeJobOutput(cmd, ji, result.System)
}

func runAnalyzeProcesses(cmd *cobra.Command, args []string) error {
	ji, err := loadJob(cmd, args[0])
	if err != nil {
		return err
	}
	opts := analyzeOptionsFromJob(ji)
	root := ir.NodeRef{Tree: ji.system.Tree, Node: ji.system.Tree.Root()}
	pm, anyMixed, err := procanalysis.AnalyzeProcesses(ji.ctx, root, ji.src, opts)
	if printBag(cmd, ji.bag, ji.fs) {
		return fail(cmd, "hifc: analyze-processes reported fatal diagnostics")
	}
	if err != nil {
		return fail(cmd, "hifc: analyze-processes: %w", err)
	}
	cmd.Printf("classified %d process(es), mixed=%v\n", len(pm.Processes()), anyMixed)
	for _, id := range pm.Processes() {
		info, _ := pm.Get(id)
		cmd.Printf("  process %d: kind=%s reset=%s edge=%s style=%s\n", id, info.Kind, info.ResetKind, info.Edge, info.Style)
	}
	return nil
}

func runSplitProcesses(cmd *cobra.Command, args []string) error {
	ji, err := loadJob(cmd, args[0])
	if err != nil {
		return err
	}
	opts := analyzeOptionsFromJob(ji)
	root := ir.NodeRef{Tree: ji.system.Tree, Node: ji.system.Tree.Root()}
	pm, _, err := procanalysis.AnalyzeProcesses(ji.ctx, root, ji.src, opts)
	if printBag(cmd, ji.bag, ji.fs) {
		return fail(cmd, "hifc: analyze-processes reported fatal diagnostics")
	}
	if err != nil {
		return fail(cmd, "hifc: analyze-processes: %w", err)
	}
	split, err := procsplit.Split(ji.ctx, root, pm, ji.src, opts)
	if printBag(cmd, ji.bag, ji.fs) {
		return fail(cmd, "hifc: split-processes reported fatal diagnostics")
	}
	if err != nil {
		return fail(cmd, "hifc: split-processes: %w", err)
	}
	cmd.Printf("split=%v\n", split)
	return writeJobOutput(cmd, ji, ji.system)
}

func runComparePrecision(cmd *cobra.Command, args []string) error {
	ji, err := loadJob(cmd, args[0])
	if err != nil {
		return err
	}
	ordering := precision.CompareSameSemantics(ji.system.Tree, ir.NodeID(nodeAFlag), ir.NodeID(nodeBFlag), ji.src)
	cmd.Println(ordering.String())
	return nil
}
