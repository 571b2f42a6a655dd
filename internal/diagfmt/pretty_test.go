package diagfmt_test

import (
	"strings"
	"testing"

	"volt/internal/diag"
	"volt/internal/diagfmt"
	"volt/internal/source"
)

func makeBag(input string, code diag.Code, start, end uint32, msg string) (*diag.Bag, *source.FileSet, source.FileID) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.v", []byte(input))
	bag := diag.NewBag(16)
	bag.Add(diag.Diagnostic{
		Severity: diag.SevError,
		Code:     code,
		Message:  msg,
		Primary:  source.Span{File: id, Start: start, End: end},
	})
	return bag, fs, id
}

func TestPretty_HeaderAndUnderline(t *testing.T) {
	//              0123456789
	input := "module ###x();"
	bag, fs, _ := makeBag(input, diag.LexUnknownChar, 7, 10, "unknown character")

	var sb strings.Builder
	diagfmt.Pretty(&sb, bag, fs, diagfmt.PrettyOpts{PathMode: diagfmt.PathModeBasename})
	out := sb.String()

	if !strings.Contains(out, "test.v:1:8: ERROR LEX1001: unknown character") {
		t.Errorf("header missing or malformed:\n%s", out)
	}
	if !strings.Contains(out, input) {
		t.Error("source line not echoed")
	}
	if !strings.Contains(out, "^~~") {
		t.Errorf("underline missing:\n%s", out)
	}
}

func TestPretty_MaxTruncates(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("t.v", []byte("x"))
	bag := diag.NewBag(16)
	for i := 0; i < 5; i++ {
		bag.Add(diag.Diagnostic{
			Severity: diag.SevError,
			Code:     diag.LexUnknownChar,
			Message:  "boom",
			Primary:  source.Span{File: id, Start: 0, End: 1},
		})
	}

	var sb strings.Builder
	diagfmt.Pretty(&sb, bag, fs, diagfmt.PrettyOpts{Max: 2, PathMode: diagfmt.PathModeBasename})
	out := sb.String()

	if got := strings.Count(out, "boom"); got != 2 {
		t.Errorf("printed %d diagnostics, want 2", got)
	}
	if !strings.Contains(out, "and 3 more") {
		t.Errorf("truncation note missing:\n%s", out)
	}
}

func TestPretty_Notes(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("t.v", []byte("wire a;"))
	bag := diag.NewBag(4)
	bag.Add(diag.Diagnostic{
		Severity: diag.SevError,
		Code:     diag.SynNoModule,
		Message:  "no module definition found",
		Primary:  source.Span{File: id, Start: 0, End: 4},
		Notes: []diag.Note{
			{Span: source.Span{File: id, Start: 0, End: 4}, Msg: "expected 'module' here"},
		},
	})

	var sb strings.Builder
	diagfmt.Pretty(&sb, bag, fs, diagfmt.PrettyOpts{ShowNotes: true, PathMode: diagfmt.PathModeBasename})
	if !strings.Contains(sb.String(), "note: expected 'module' here") {
		t.Errorf("note missing:\n%s", sb.String())
	}
}

func TestJSON_Shape(t *testing.T) {
	bag, fs, _ := makeBag("bad", diag.LexUnknownChar, 0, 3, "unknown character")

	var sb strings.Builder
	if err := diagfmt.JSON(&sb, bag, fs, diagfmt.JSONOpts{IncludePositions: true}); err != nil {
		t.Fatal(err)
	}
	out := sb.String()
	for _, want := range []string{`"severity": "ERROR"`, `"code": "LEX1001"`, `"line": 1`, `"col": 1`} {
		if !strings.Contains(out, want) {
			t.Errorf("JSON output missing %s:\n%s", want, out)
		}
	}
}
