package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"volt/internal/diag"
	"volt/internal/diagfmt"
	"volt/internal/driver"
	"volt/internal/source"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] <file.v|dir>",
	Short: "Tokenize Verilog source files",
	Long:  `Tokenize breaks down a Verilog source file (or every *.v file under a directory) into its constituent tokens`,
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	tokenizeCmd.Flags().String("diag-format", "pretty", "diagnostics format (pretty|json)")
}

func runTokenize(cmd *cobra.Command, args []string) error {
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
		results, fileSet, err := driver.TokenizeDir(target)
		if err != nil {
			return fmt.Errorf("tokenization failed: %w", err)
		}
		merged := diag.NewBag(maxDiagnostics)
		for i := range results {
			merged.Merge(results[i].Bag)
		}
		if err := renderDiagnostics(os.Stderr, merged, fileSet, diagFormat, useColor(cmd, os.Stderr)); err != nil {
			return err
		}
		return renderTokenizeDirResults(os.Stdout, results, fileSet, format)
	}

	result, err := driver.Tokenize(target, maxDiagnostics)
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}

	if err := renderDiagnostics(os.Stderr, result.Bag, result.FileSet, diagFormat, useColor(cmd, os.Stderr)); err != nil {
		return err
	}

	switch format {
	case "pretty":
		return diagfmt.FormatTokensPretty(os.Stdout, result.Tokens, result.FileSet)
	case "json":
		return diagfmt.FormatTokensJSON(os.Stdout, result.Tokens)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// renderTokenizeDirResults печатает токены каждого файла под заголовком
// с его путём; порядок файлов совпадает с обходом директории.
func renderTokenizeDirResults(w io.Writer, results []driver.TokenizeDirResult, fs *source.FileSet, format string) error {
	for i := range results {
		res := &results[i]
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "=== %s ===\n", res.Path)

		var err error
		switch format {
		case "pretty":
			err = diagfmt.FormatTokensPretty(w, res.Tokens, fs)
		case "json":
			err = diagfmt.FormatTokensJSON(w, res.Tokens)
		default:
			err = fmt.Errorf("unknown format: %s", format)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
