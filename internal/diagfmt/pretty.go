package diagfmt

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"volt/internal/diag"
	"volt/internal/source"
)

var (
	errorColor   = color.New(color.FgRed, color.Bold)
	warningColor = color.New(color.FgYellow, color.Bold)
	infoColor    = color.New(color.FgCyan, color.Bold)
	pathColor    = color.New(color.Bold)
	caretColor   = color.New(color.FgGreen, color.Bold)
)

// Pretty форматирует диагностики в человекочитаемый вид.
// Идёт по bag.Items() (ожидается bag.Sort() заранее).
// Для каждого diag печатает:
// <path>:<line>:<col>: <SEV> <CODE>: <Message>
// затем контекст строки с подчёркиванием ^~~~ по Span, затем Notes с аналогичным форматом.
// Цвет включается опцией.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	count := 0
	for _, d := range bag.Items() {
		if opts.Max > 0 && count >= opts.Max {
			fmt.Fprintf(w, "... and %d more\n", bag.Len()-count)
			return
		}
		count++
		prettyOne(w, d, fs, opts)
	}
}

func prettyOne(w io.Writer, d diag.Diagnostic, fs *source.FileSet, opts PrettyOpts) {
	writeHeader(w, d.Severity, d.Code, d.Primary, d.Message, fs, opts)
	writeSourceLine(w, d.Primary, fs, opts)

	if opts.ShowNotes {
		for _, note := range d.Notes {
			loc := formatLocation(note.Span, fs, opts)
			fmt.Fprintf(w, "  %s: note: %s\n", loc, note.Msg)
		}
	}
}

func writeHeader(w io.Writer, sev diag.Severity, code diag.Code, span source.Span, msg string, fs *source.FileSet, opts PrettyOpts) {
	loc := formatLocation(span, fs, opts)
	sevText := sev.String()
	codeText := code.ID()

	if opts.Color {
		loc = pathColor.Sprint(loc)
		sevText = severityColor(sev).Sprint(sevText)
		codeText = severityColor(sev).Sprint(codeText)
	}
	fmt.Fprintf(w, "%s: %s %s: %s\n", loc, sevText, codeText, msg)
}

// writeSourceLine печатает строку исходника и подчёркивание ^~~~ под span.
// Ширина подчёркивания считается по runewidth, чтобы не плыть на не-ASCII.
func writeSourceLine(w io.Writer, span source.Span, fs *source.FileSet, opts PrettyOpts) {
	if span.Empty() {
		return
	}
	file := fs.Get(span.File)
	if file == nil {
		return
	}
	start, end := fs.Resolve(span)
	line := file.GetLine(start.Line)
	if line == "" {
		return
	}

	fmt.Fprintf(w, "  %s\n", line)

	// подчёркиваем только первую строку span'а
	startCol := int(start.Col)
	endCol := int(end.Col)
	if end.Line != start.Line || endCol <= startCol {
		endCol = startCol + 1
	}
	if startCol < 1 {
		startCol = 1
	}
	runes := []rune(line)
	pad := displayWidth(runes, 0, startCol-1)
	width := displayWidth(runes, startCol-1, endCol-1)
	if width < 1 {
		width = 1
	}

	underline := "^" + strings.Repeat("~", width-1)
	if opts.Color {
		underline = caretColor.Sprint(underline)
	}
	fmt.Fprintf(w, "  %s%s\n", strings.Repeat(" ", pad), underline)
}

// displayWidth возвращает экранную ширину рун line[from:to].
func displayWidth(line []rune, from, to int) int {
	if from < 0 {
		from = 0
	}
	if to > len(line) {
		to = len(line)
	}
	w := 0
	for i := from; i < to; i++ {
		w += runewidth.RuneWidth(line[i])
	}
	return w
}

func severityColor(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevError:
		return errorColor
	case diag.SevWarning:
		return warningColor
	default:
		return infoColor
	}
}

func formatLocation(span source.Span, fs *source.FileSet, opts PrettyOpts) string {
	file := fs.Get(span.File)
	if file == nil {
		return "<unknown>"
	}
	start, _ := fs.Resolve(span)
	return fmt.Sprintf("%s:%d:%d", formatPath(file.Path, opts.PathMode), start.Line, start.Col)
}

func formatPath(path string, mode PathMode) string {
	switch mode {
	case PathModeBasename:
		return filepath.Base(path)
	case PathModeAbsolute:
		abs, err := filepath.Abs(path)
		if err != nil {
			return path
		}
		return abs
	case PathModeRelative, PathModeAuto:
		wd, err := filepath.Abs(".")
		if err != nil {
			return path
		}
		abs, err := filepath.Abs(path)
		if err != nil {
			return path
		}
		rel, err := filepath.Rel(wd, abs)
		if err != nil || strings.HasPrefix(rel, "..") {
			return path
		}
		return rel
	default:
		return path
	}
}
