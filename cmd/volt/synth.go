package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"volt/internal/diagfmt"
	"volt/internal/driver"
)

var synthCmd = &cobra.Command{
	Use:   "synth [flags] [file.v]",
	Short: "Synthesize a Verilog source file to a BLIF netlist",
	Long: `Synth runs the full pipeline: parse, elaborate, bit-blast, export.
Without an argument it looks for a volt.toml manifest in the current
directory or any parent.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSynth,
}

func init() {
	synthCmd.Flags().StringP("output", "o", "", "output BLIF path (default: input with .blif extension)")
	synthCmd.Flags().String("dump-dir", "", "directory for per-stage debug snapshots")
	synthCmd.Flags().String("ui", "auto", "progress UI (auto|on|off)")
}

func runSynth(cmd *cobra.Command, args []string) error {
	output, err := cmd.Flags().GetString("output")
	if err != nil {
		return fmt.Errorf("failed to get output flag: %w", err)
	}
	dumpDir, err := cmd.Flags().GetString("dump-dir")
	if err != nil {
		return fmt.Errorf("failed to get dump-dir flag: %w", err)
	}
	uiFlag, err := cmd.Flags().GetString("ui")
	if err != nil {
		return fmt.Errorf("failed to get ui flag: %w", err)
	}
	mode, err := readUIMode(uiFlag)
	if err != nil {
		return err
	}
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")

	opts := driver.SynthOptions{
		Output:         output,
		DumpDir:        dumpDir,
		MaxDiagnostics: maxDiagnostics,
	}

	if len(args) == 1 {
		opts.Path = args[0]
	} else {
		// режим проекта: ищем volt.toml вверх по дереву
		manifest, ok, err := loadProjectManifest(".")
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("%s", noVoltTomlMessage)
		}
		top, manifestOutput, manifestDump, err := resolveProjectSynthTarget(manifest)
		if err != nil {
			return err
		}
		opts.Path = top
		if opts.Output == "" {
			opts.Output = manifestOutput
		}
		if opts.DumpDir == "" {
			opts.DumpDir = manifestDump
		}
	}

	var result driver.SynthResult
	if shouldUseTUI(mode) {
		result, err = runSynthWithUI("synth "+opts.Path, opts)
	} else {
		if !quiet {
			opts.Progress = plainSink{out: os.Stderr}
		}
		result, err = driver.Synth(opts)
	}

	if result.Bag != nil && result.Bag.Len() > 0 {
		result.Bag.Sort()
		diagfmt.Pretty(os.Stderr, result.Bag, result.FileSet, diagfmt.PrettyOpts{
			Color:     useColor(cmd, os.Stderr),
			ShowNotes: true,
			Max:       maxDiagnostics,
		})
	}
	if err != nil {
		return err
	}

	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", result.Output)
	}
	return nil
}

// plainSink печатает по строке на завершённую стадию (без TUI).
type plainSink struct {
	out *os.File
}

func (s plainSink) OnEvent(evt driver.Event) {
	switch evt.Status {
	case driver.StatusDone:
		fmt.Fprintf(s.out, "%-10s done in %s\n", evt.Stage, evt.Elapsed.Round(time.Microsecond))
	case driver.StatusError:
		fmt.Fprintf(s.out, "%-10s failed: %v\n", evt.Stage, evt.Err)
	}
}
