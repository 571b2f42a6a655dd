package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"volt/internal/diag"
	"volt/internal/diagfmt"
	"volt/internal/driver"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] <file.v|dir>",
	Short: "Parse Verilog source files and dump their syntax trees",
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	parseCmd.Flags().String("diag-format", "pretty", "diagnostics format (pretty|json)")
}

func runParse(cmd *cobra.Command, args []string) error {
	target := args[0]

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}

	diagFormat, err := cmd.Flags().GetString("diag-format")
	if err != nil {
		return fmt.Errorf("failed to get diag-format flag: %w", err)
	}

	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}

	info, err := os.Stat(target)
	if err != nil {
		return err
	}
	if info.IsDir() {
		results, fileSet, err := driver.ParseDir(target)
		if err != nil {
			return fmt.Errorf("parsing failed: %w", err)
		}
		merged := diag.NewBag(maxDiagnostics)
		for i := range results {
			merged.Merge(results[i].Bag)
		}
		if err := renderDiagnostics(os.Stderr, merged, fileSet, diagFormat, useColor(cmd, os.Stderr)); err != nil {
			return err
		}
		if err := renderParseDirResults(os.Stdout, results, format); err != nil {
			return err
		}
		if merged.HasErrors() {
			return fmt.Errorf("parsing finished with %d diagnostic(s)", merged.Len())
		}
		return nil
	}

	result, err := driver.Parse(target, maxDiagnostics)
	if err != nil {
		return fmt.Errorf("parsing failed: %w", err)
	}

	if err := renderDiagnostics(os.Stderr, result.Bag, result.FileSet, diagFormat, useColor(cmd, os.Stderr)); err != nil {
		return err
	}

	switch format {
	case "pretty":
		if err := diagfmt.FormatModulePretty(os.Stdout, result.Module); err != nil {
			return err
		}
	case "json":
		if err := diagfmt.FormatModuleJSON(os.Stdout, result.Module); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown format: %s", format)
	}

	if result.Bag.HasErrors() {
		return fmt.Errorf("parsing finished with %d diagnostic(s)", result.Bag.Len())
	}
	return nil
}

// renderParseDirResults печатает дерево каждого файла под заголовком с его
// путём. Файлы без модуля (провал парсинга) помечаются явно.
func renderParseDirResults(w io.Writer, results []driver.ParseDirResult, format string) error {
	for i := range results {
		res := &results[i]
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "=== %s ===\n", res.Path)
		if res.Module == nil {
			fmt.Fprintln(w, "(no module)")
			continue
		}

		var err error
		switch format {
		case "pretty":
			err = diagfmt.FormatModulePretty(w, res.Module)
		case "json":
			err = diagfmt.FormatModuleJSON(w, res.Module)
		default:
			err = fmt.Errorf("unknown format: %s", format)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
