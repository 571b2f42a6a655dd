package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeManifest(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "volt.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestFindVoltToml_WalksUp(t *testing.T) {
	tmp := t.TempDir()
	writeManifest(t, tmp, "[package]\nname = \"demo\"\n[synth]\ntop = \"top.v\"\n")

	nested := filepath.Join(tmp, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}

	path, ok, err := findVoltToml(nested)
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("manifest not found from nested directory")
	}
	if filepath.Dir(path) != tmp {
		t.Errorf("found %q, want manifest in %q", path, tmp)
	}
}

func TestLoadProjectConfig_Valid(t *testing.T) {
	tmp := t.TempDir()
	path := writeManifest(t, tmp, `
[package]
name = "demo"

[synth]
top = "rtl/top.v"
output = "out/top.blif"
dump_dir = "out/dump"
`)
	cfg, err := loadProjectConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Package.Name != "demo" {
		t.Errorf("name = %q", cfg.Package.Name)
	}
	if cfg.Synth.Top != "rtl/top.v" {
		t.Errorf("top = %q", cfg.Synth.Top)
	}
	if cfg.Synth.Output != "out/top.blif" || cfg.Synth.DumpDir != "out/dump" {
		t.Errorf("output/dump = %q/%q", cfg.Synth.Output, cfg.Synth.DumpDir)
	}
}

func TestLoadProjectConfig_MissingSections(t *testing.T) {
	tests := []struct {
		name    string
		content string
		detail  string
	}{
		{"no package", "[synth]\ntop = \"top.v\"\n", "[package]"},
		{"no package name", "[package]\n[synth]\ntop = \"top.v\"\n", "[package].name"},
		{"no synth", "[package]\nname = \"x\"\n", "[synth]"},
		{"no synth top", "[package]\nname = \"x\"\n[synth]\n", "[synth].top"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmp := t.TempDir()
			path := writeManifest(t, tmp, tt.content)
			_, err := loadProjectConfig(path)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.detail) {
				t.Errorf("err = %q, want mention of %q", err, tt.detail)
			}
		})
	}
}

func TestResolveProjectSynthTarget(t *testing.T) {
	tmp := t.TempDir()
	rtl := filepath.Join(tmp, "rtl")
	if err := os.MkdirAll(rtl, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(rtl, "top.v"), []byte("module top(); endmodule"), 0o644); err != nil {
		t.Fatal(err)
	}
	writeManifest(t, tmp, `
[package]
name = "demo"

[synth]
top = "rtl/top.v"
output = "build/top.blif"
`)

	manifest, ok, err := loadProjectManifest(tmp)
	if err != nil || !ok {
		t.Fatalf("loadProjectManifest: ok=%v err=%v", ok, err)
	}

	top, output, dumpDir, err := resolveProjectSynthTarget(manifest)
	if err != nil {
		t.Fatal(err)
	}
	if top != filepath.Join(tmp, "rtl", "top.v") {
		t.Errorf("top = %q", top)
	}
	if output != filepath.Join(tmp, "build", "top.blif") {
		t.Errorf("output = %q", output)
	}
	if dumpDir != "" {
		t.Errorf("dumpDir = %q, want empty", dumpDir)
	}
}

func TestResolveProjectSynthTarget_MissingTop(t *testing.T) {
	tmp := t.TempDir()
	writeManifest(t, tmp, "[package]\nname = \"demo\"\n[synth]\ntop = \"ghost.v\"\n")

	manifest, _, err := loadProjectManifest(tmp)
	if err != nil {
		t.Fatal(err)
	}
	if _, _, _, err := resolveProjectSynthTarget(manifest); err == nil {
		t.Fatal("expected error for missing top file")
	}
}
