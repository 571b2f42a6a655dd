package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

const noVoltTomlMessage = "no volt.toml found\nplease specify the source explicitly, e.g.:\n  volt synth path/to/top.v"

type projectManifest struct {
	Path   string
	Root   string
	Config projectConfig
}

type projectConfig struct {
	Package packageConfig `toml:"package"`
	Synth   synthConfig   `toml:"synth"`
}

type packageConfig struct {
	Name string `toml:"name"`
}

type synthConfig struct {
	Top     string `toml:"top"`
	Output  string `toml:"output"`
	DumpDir string `toml:"dump_dir"`
}

func findVoltToml(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, "volt.toml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

func loadProjectManifest(startDir string) (*projectManifest, bool, error) {
	manifestPath, ok, err := findVoltToml(startDir)
	if err != nil || !ok {
		return nil, ok, err
	}
	cfg, err := loadProjectConfig(manifestPath)
	if err != nil {
		return nil, true, err
	}
	return &projectManifest{
		Path:   manifestPath,
		Root:   filepath.Dir(manifestPath),
		Config: cfg,
	}, true, nil
}

func loadProjectConfig(path string) (projectConfig, error) {
	var cfg projectConfig
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return projectConfig{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if !meta.IsDefined("package") {
		return projectConfig{}, fmt.Errorf("%s: missing [package]", path)
	}
	if !meta.IsDefined("package", "name") || strings.TrimSpace(cfg.Package.Name) == "" {
		return projectConfig{}, fmt.Errorf("%s: missing [package].name", path)
	}
	if !meta.IsDefined("synth") {
		return projectConfig{}, fmt.Errorf("%s: missing [synth]", path)
	}
	if !meta.IsDefined("synth", "top") || strings.TrimSpace(cfg.Synth.Top) == "" {
		return projectConfig{}, fmt.Errorf("%s: missing [synth].top", path)
	}
	return cfg, nil
}

// resolveProjectSynthTarget возвращает абсолютные пути top/output/dump
// относительно каталога манифеста.
func resolveProjectSynthTarget(manifest *projectManifest) (top, output, dumpDir string, err error) {
	if manifest == nil {
		return "", "", "", fmt.Errorf("missing project manifest")
	}
	topRel := strings.TrimSpace(manifest.Config.Synth.Top)
	top = filepath.Join(manifest.Root, filepath.FromSlash(topRel))
	info, err := os.Stat(top)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", "", "", fmt.Errorf("%s: [synth].top path does not exist: %s", manifest.Path, top)
		}
		return "", "", "", fmt.Errorf("%s: failed to stat [synth].top: %w", manifest.Path, err)
	}
	if info.IsDir() || filepath.Ext(top) != ".v" {
		return "", "", "", fmt.Errorf("%s: [synth].top must be a .v file", manifest.Path)
	}
	if out := strings.TrimSpace(manifest.Config.Synth.Output); out != "" {
		output = filepath.Join(manifest.Root, filepath.FromSlash(out))
	}
	if dump := strings.TrimSpace(manifest.Config.Synth.DumpDir); dump != "" {
		dumpDir = filepath.Join(manifest.Root, filepath.FromSlash(dump))
	}
	return top, output, dumpDir, nil
}
