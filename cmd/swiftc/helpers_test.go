package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/BluPerf/swift/internal/driver"
	"github.com/BluPerf/swift/internal/project"
)

func TestReadUIMode(t *testing.T) {
	cases := []struct {
		in   string
		want uiMode
		ok   bool
	}{
		{"", uiModeAuto, true},
		{"auto", uiModeAuto, true},
		{"ON", uiModeOn, true},
		{" off ", uiModeOff, true},
		{"fancy", "", false},
	}
	for _, tc := range cases {
		got, err := readUIMode(tc.in)
		if tc.ok != (err == nil) {
			t.Errorf("readUIMode(%q) error = %v", tc.in, err)
			continue
		}
		if err == nil && got != tc.want {
			t.Errorf("readUIMode(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestDefaultManifestLoads(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, project.ManifestName)
	if err := os.WriteFile(path, []byte(buildDefaultManifest("demo")), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := project.Load(path)
	if err != nil {
		t.Fatalf("scaffolded manifest does not load: %v", err)
	}
	if cfg.Package.Name != "demo" {
		t.Errorf("name = %q", cfg.Package.Name)
	}
	if cfg.Diagnostics.Max != 100 || !cfg.Diagnostics.ShowSource {
		t.Errorf("diagnostics config = %+v", cfg.Diagnostics)
	}
	if cfg.Sema.RequireTopLevelTypes {
		t.Error("scaffold should not require top-level types")
	}
}

func TestDefaultMainSwiftBindsClean(t *testing.T) {
	_, res := driver.BindSource("main.swift", []byte(defaultMainSwift()), driver.Options{})
	if res.Bag.Len() != 0 {
		t.Fatalf("scaffolded main.swift has diagnostics: %+v", res.Bag.Items())
	}
	if res.Stats.Pending != 0 {
		t.Errorf("scaffolded main.swift left %d unresolved types", res.Stats.Pending)
	}
}

func TestLoadBindConfigWalksUp(t *testing.T) {
	dir := t.TempDir()
	manifest := "[package]\nname = \"app\"\n\n[sema]\nrequire_top_level_types = true\n"
	if err := os.WriteFile(filepath.Join(dir, project.ManifestName), []byte(manifest), 0o600); err != nil {
		t.Fatal(err)
	}
	sub := filepath.Join(dir, "src")
	if err := os.MkdirAll(sub, 0o755); err != nil {
		t.Fatal(err)
	}
	file := filepath.Join(sub, "main.swift")
	if err := os.WriteFile(file, []byte("var x : Int = 1\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadBindConfig(file)
	if err != nil {
		t.Fatalf("loadBindConfig: %v", err)
	}
	if !cfg.Sema.RequireTopLevelTypes {
		t.Error("manifest above the file should apply")
	}
}

func TestLoadBindConfigDefaultsWhenAbsent(t *testing.T) {
	cfg, err := loadBindConfig(t.TempDir())
	if err != nil {
		t.Fatalf("loadBindConfig: %v", err)
	}
	if cfg != project.DefaultConfig() {
		t.Errorf("config without manifest = %+v", cfg)
	}
}
