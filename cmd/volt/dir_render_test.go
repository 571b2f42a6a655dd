package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"volt/internal/diag"
	"volt/internal/driver"
)

func writeVerilog(t *testing.T, dir, name, src string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRenderTokenizeDirResults_PerFileHeaders(t *testing.T) {
	dir := t.TempDir()
	writeVerilog(t, dir, "a.v", "module a();\nendmodule\n")
	writeVerilog(t, dir, "b.v", "module b();\nendmodule\n")

	results, fileSet, err := driver.TokenizeDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 2 {
		t.Fatalf("want 2 files, got %d", len(results))
	}

	var buf bytes.Buffer
	if err := renderTokenizeDirResults(&buf, results, fileSet, "pretty"); err != nil {
		t.Fatal(err)
	}
	out := buf.String()

	headerA := "=== " + results[0].Path + " ==="
	headerB := "=== " + results[1].Path + " ==="
	posA := strings.Index(out, headerA)
	posB := strings.Index(out, headerB)
	if posA < 0 || posB < 0 {
		t.Fatalf("missing per-file headers in output:\n%s", out)
	}
	// Файлы идут в отсортированном порядке обхода.
	if posA > posB {
		t.Errorf("a.v rendered after b.v")
	}
	if !strings.Contains(out, `"a"`) || !strings.Contains(out, `"b"`) {
		t.Errorf("module identifiers missing from token dump:\n%s", out)
	}
}

func TestRenderParseDirResults_MarksFailedFiles(t *testing.T) {
	dir := t.TempDir()
	writeVerilog(t, dir, "bad.v", "module broken oops")
	writeVerilog(t, dir, "good.v", "module g(input a, output y);\nalways @(*) y = a;\nendmodule\n")

	results, fileSet, err := driver.ParseDir(dir)
	if err != nil {
		t.Fatal(err)
	}

	merged := diag.NewBag(10)
	for i := range results {
		merged.Merge(results[i].Bag)
	}
	if !merged.HasErrors() {
		t.Fatal("expected parse errors from bad.v in the merged bag")
	}

	var buf bytes.Buffer
	if err := renderParseDirResults(&buf, results, "pretty"); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, "=== "+results[1].Path+" ===") {
		t.Errorf("good.v header missing:\n%s", out)
	}
	if !strings.Contains(out, "module g") {
		t.Errorf("good.v tree missing:\n%s", out)
	}

	var diagBuf bytes.Buffer
	if err := renderDiagnostics(&diagBuf, merged, fileSet, "pretty", false); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(diagBuf.String(), "bad.v") {
		t.Errorf("diagnostics do not point into bad.v:\n%s", diagBuf.String())
	}
}

func TestRenderDiagnostics_JSON(t *testing.T) {
	dir := t.TempDir()
	path := writeVerilog(t, dir, "junk.v", "module m(); # endmodule\n")

	result, err := driver.Tokenize(path, 10)
	if err != nil {
		t.Fatal(err)
	}
	if result.Bag.Len() == 0 {
		t.Fatal("expected a lexer diagnostic for '#'")
	}

	var buf bytes.Buffer
	if err := renderDiagnostics(&buf, result.Bag, result.FileSet, "json", false); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, `"code": "LEX1001"`) {
		t.Errorf("JSON output missing the diagnostic code:\n%s", out)
	}
	if !strings.Contains(out, `"line": 1`) {
		t.Errorf("JSON output missing the resolved position:\n%s", out)
	}
}

func TestRenderDiagnostics_UnknownFormat(t *testing.T) {
	dir := t.TempDir()
	path := writeVerilog(t, dir, "junk.v", "module m(); # endmodule\n")

	result, err := driver.Tokenize(path, 10)
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := renderDiagnostics(&buf, result.Bag, result.FileSet, "yaml", false); err == nil {
		t.Fatal("expected an error for an unknown diagnostics format")
	}
}
