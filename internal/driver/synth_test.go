package driver_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vmihailenco/msgpack/v5"

	"volt/internal/driver"
	"volt/internal/netlist"
)

const counterSource = `
module counter(input clk, input rst, input en, output reg [3:0] q);
	always @(posedge clk) begin
		if (rst)
			q <= 4'd0;
		else if (en)
			q <= q + 4'd1;
	end
endmodule
`

func writeTestFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestSynth_EndToEnd(t *testing.T) {
	dir := t.TempDir()
	src := writeTestFile(t, dir, "counter.v", counterSource)
	out := filepath.Join(dir, "counter.blif")

	result, err := driver.Synth(driver.SynthOptions{
		Path:   src,
		Output: out,
	})
	if err != nil {
		t.Fatalf("Synth: %v", err)
	}
	if result.Output != out {
		t.Errorf("Output = %q, want %q", result.Output, out)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("BLIF file not written: %v", err)
	}
	text := string(data)
	for _, want := range []string{".model counter", ".inputs", ".outputs", ".latch", ".end"} {
		if !strings.Contains(text, want) {
			t.Errorf("BLIF output missing %q", want)
		}
	}

	if err := result.Module.ValidatePrimitive(); err != nil {
		t.Errorf("final module breaks primitive invariants: %v", err)
	}
}

func TestSynth_DefaultOutputPath(t *testing.T) {
	dir := t.TempDir()
	src := writeTestFile(t, dir, "counter.v", counterSource)

	result, err := driver.Synth(driver.SynthOptions{Path: src})
	if err != nil {
		t.Fatal(err)
	}
	want := filepath.Join(dir, "counter.blif")
	if result.Output != want {
		t.Errorf("Output = %q, want %q", result.Output, want)
	}
	if _, err := os.Stat(want); err != nil {
		t.Errorf("derived output not written: %v", err)
	}
}

func TestSynth_WritesSnapshots(t *testing.T) {
	dir := t.TempDir()
	src := writeTestFile(t, dir, "counter.v", counterSource)
	dumpDir := filepath.Join(dir, "dump")

	_, err := driver.Synth(driver.SynthOptions{
		Path:    src,
		Output:  filepath.Join(dir, "out.blif"),
		DumpDir: dumpDir,
	})
	if err != nil {
		t.Fatal(err)
	}

	for _, name := range []string{"02_elab.msgpack", "03_bitblast.msgpack"} {
		path := filepath.Join(dumpDir, name)
		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("snapshot %s not written: %v", name, err)
		}
		var snap netlist.Snapshot
		if err := msgpack.Unmarshal(data, &snap); err != nil {
			t.Fatalf("snapshot %s does not decode: %v", name, err)
		}
		if snap.Schema != netlist.SnapshotSchemaVersion {
			t.Errorf("%s: Schema = %d, want %d", name, snap.Schema, netlist.SnapshotSchemaVersion)
		}
		if snap.Module != "counter" {
			t.Errorf("%s: Module = %q", name, snap.Module)
		}
		if len(snap.Gates) == 0 {
			t.Errorf("%s: empty gate list", name)
		}
	}
}

func TestSynth_ParseFailureKeepsDiagnostics(t *testing.T) {
	dir := t.TempDir()
	src := writeTestFile(t, dir, "bad.v", "module broken oops")

	result, err := driver.Synth(driver.SynthOptions{Path: src})
	if err == nil {
		t.Fatal("expected parse failure")
	}
	if result.Bag == nil || !result.Bag.HasErrors() {
		t.Error("diagnostics lost on failure")
	}
}

func TestSynth_MissingFile(t *testing.T) {
	_, err := driver.Synth(driver.SynthOptions{Path: "/nonexistent/void.v"})
	if err == nil {
		t.Fatal("expected load error")
	}
}

func TestSynth_EmitsStageEvents(t *testing.T) {
	dir := t.TempDir()
	src := writeTestFile(t, dir, "counter.v", counterSource)

	events := make(chan driver.Event, 64)
	_, err := driver.Synth(driver.SynthOptions{
		Path:     src,
		Output:   filepath.Join(dir, "out.blif"),
		Progress: driver.ChannelSink{Ch: events},
	})
	if err != nil {
		t.Fatal(err)
	}
	close(events)

	done := make(map[driver.Stage]bool)
	for evt := range events {
		if evt.Status == driver.StatusDone {
			done[evt.Stage] = true
		}
	}
	for _, stage := range []driver.Stage{
		driver.StageParse, driver.StageElaborate, driver.StageBitblast, driver.StageExport,
	} {
		if !done[stage] {
			t.Errorf("stage %s never reported done", stage)
		}
	}
}

func TestOutputNameFromPath(t *testing.T) {
	tests := []struct{ in, want string }{
		{"top.v", "top.blif"},
		{"dir/design.v", "dir/design.blif"},
		{"noext", "noext.blif"},
	}
	for _, tt := range tests {
		if got := driver.OutputNameFromPath(tt.in); got != tt.want {
			t.Errorf("OutputNameFromPath(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseDir_WalksFiles(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, dir, "a.v", "module a(); endmodule")
	writeTestFile(t, dir, "b.v", "module b(); endmodule")
	writeTestFile(t, dir, "ignored.txt", "not verilog")

	results, _, err := driver.ParseDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}
	// результаты отсортированы по пути
	if !strings.HasSuffix(results[0].Path, "a.v") || !strings.HasSuffix(results[1].Path, "b.v") {
		t.Errorf("unexpected order: %s, %s", results[0].Path, results[1].Path)
	}
	for _, res := range results {
		if res.Module == nil {
			t.Errorf("%s: nil module", res.Path)
		}
		if res.Bag.HasErrors() {
			t.Errorf("%s: unexpected errors", res.Path)
		}
	}
}

func TestTokenize_NegativeDiagnosticLimit(t *testing.T) {
	dir := t.TempDir()
	path := writeTestFile(t, dir, "junk.v", "module m(); # endmodule")

	// Лимит из пользовательского флага может быть любым числом.
	result, err := driver.Tokenize(path, -1)
	if err != nil {
		t.Fatal(err)
	}
	if result.Bag.Len() != 0 {
		t.Errorf("zero limit kept %d diagnostic(s)", result.Bag.Len())
	}
	if len(result.Tokens) == 0 {
		t.Error("no tokens collected")
	}
}

func TestTokenizeDir_CollectsTokens(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, dir, "a.v", "module a(); endmodule")

	results, _, err := driver.TokenizeDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 1 {
		t.Fatalf("got %d results, want 1", len(results))
	}
	if len(results[0].Tokens) == 0 {
		t.Error("no tokens collected")
	}
}
