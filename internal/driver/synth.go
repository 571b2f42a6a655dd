// Package driver orchestrates the synthesis pipeline: it loads sources,
// runs the lexer and parser, hands the syntax tree through elaboration
// and bit-blasting, and writes the BLIF artifact plus optional debug
// snapshots. The pipeline itself is strictly sequential; only the
// directory-wide CLI helpers fan out over files.
package driver

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"volt/internal/bitblast"
	"volt/internal/blif"
	"volt/internal/diag"
	"volt/internal/elab"
	"volt/internal/lexer"
	"volt/internal/netlist"
	"volt/internal/parser"
	"volt/internal/source"
)

// SynthOptions configures one synthesis run.
type SynthOptions struct {
	// Path is the top-level .v file.
	Path string
	// Output is the BLIF path; empty derives it from Path.
	Output string
	// DumpDir, if set, receives msgpack snapshots after elaboration and
	// bit-blasting.
	DumpDir string
	// MaxDiagnostics bounds the diagnostic bag.
	MaxDiagnostics int
	// Progress receives stage events; nil disables them.
	Progress ProgressSink
}

// SynthResult carries the artifacts of a run, including partial ones on
// failure (the bag always holds whatever diagnostics were produced).
type SynthResult struct {
	FileSet *source.FileSet
	Bag     *diag.Bag
	Module  *netlist.Module
	Output  string
}

// Synth runs the full pipeline for one file.
func Synth(opts SynthOptions) (SynthResult, error) {
	maxDiag := opts.MaxDiagnostics
	if maxDiag <= 0 {
		maxDiag = 100
	}

	res := SynthResult{
		FileSet: source.NewFileSet(),
		Bag:     diag.NewBag(maxDiag),
	}
	reporter := diag.BagReporter{Bag: res.Bag}

	fail := func(stage Stage, err error) (SynthResult, error) {
		emitStage(opts.Progress, opts.Path, stage, StatusError, err, 0)
		return res, err
	}

	// --- parse ---
	started := time.Now()
	emitStage(opts.Progress, opts.Path, StageParse, StatusWorking, nil, 0)
	fileID, err := res.FileSet.Load(opts.Path)
	if err != nil {
		return fail(StageParse, fmt.Errorf("load %s: %w", opts.Path, err))
	}
	lx := lexer.New(res.FileSet.Get(fileID), lexer.Options{Reporter: reporter})
	parsed := parser.ParseFile(res.FileSet, lx, parser.Options{Reporter: reporter})
	if res.Bag.HasErrors() || parsed.Module == nil {
		return fail(StageParse, fmt.Errorf("parse %s: %d diagnostic(s)", opts.Path, res.Bag.Len()))
	}
	emitStage(opts.Progress, opts.Path, StageParse, StatusDone, nil, time.Since(started))

	// --- elaborate ---
	started = time.Now()
	emitStage(opts.Progress, opts.Path, StageElaborate, StatusWorking, nil, 0)
	mod, err := elab.Run(parsed.Module, reporter)
	res.Module = mod
	if err != nil {
		return fail(StageElaborate, err)
	}
	if opts.DumpDir != "" {
		if err := WriteSnapshot(opts.DumpDir, "02_elab", mod); err != nil {
			return fail(StageElaborate, err)
		}
	}
	emitStage(opts.Progress, opts.Path, StageElaborate, StatusDone, nil, time.Since(started))

	// --- bitblast ---
	started = time.Now()
	emitStage(opts.Progress, opts.Path, StageBitblast, StatusWorking, nil, 0)
	if err := bitblast.Run(mod, reporter); err != nil {
		return fail(StageBitblast, err)
	}
	if err := mod.ValidatePrimitive(); err != nil {
		return fail(StageBitblast, fmt.Errorf("bitblast invariants: %w", err))
	}
	if opts.DumpDir != "" {
		if err := WriteSnapshot(opts.DumpDir, "03_bitblast", mod); err != nil {
			return fail(StageBitblast, err)
		}
	}
	emitStage(opts.Progress, opts.Path, StageBitblast, StatusDone, nil, time.Since(started))

	// --- export ---
	started = time.Now()
	emitStage(opts.Progress, opts.Path, StageExport, StatusWorking, nil, 0)
	res.Output = opts.Output
	if res.Output == "" {
		res.Output = OutputNameFromPath(opts.Path)
	}
	if err := blif.ExportFile(res.Output, mod, reporter); err != nil {
		return fail(StageExport, err)
	}
	emitStage(opts.Progress, opts.Path, StageExport, StatusDone, nil, time.Since(started))

	return res, nil
}

// OutputNameFromPath derives the BLIF output path from the source path.
func OutputNameFromPath(path string) string {
	base := strings.TrimSuffix(path, filepath.Ext(path))
	return base + ".blif"
}
