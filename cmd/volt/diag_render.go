package main

import (
	"fmt"
	"io"

	"volt/internal/diag"
	"volt/internal/diagfmt"
	"volt/internal/source"
)

// renderDiagnostics выводит накопленные диагностики в выбранном формате.
// Пустой Bag не печатает ничего.
func renderDiagnostics(w io.Writer, bag *diag.Bag, fs *source.FileSet, format string, color bool) error {
	if bag.Len() == 0 {
		return nil
	}
	bag.Sort()
	switch format {
	case "pretty":
		diagfmt.Pretty(w, bag, fs, diagfmt.PrettyOpts{
			Color:     color,
			ShowNotes: true,
		})
		return nil
	case "json":
		return diagfmt.JSON(w, bag, fs, diagfmt.JSONOpts{
			IncludePositions: true,
			IncludeNotes:     true,
		})
	default:
		return fmt.Errorf("unknown diagnostics format: %s", format)
	}
}
