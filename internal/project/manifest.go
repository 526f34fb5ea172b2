// Package project loads the swift.toml manifest: package identity plus
// the per-project defaults for binding and diagnostics. A missing
// manifest is not an error; flags then run on built-in defaults.
package project

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/BluPerf/swift/internal/diag"
)

// Manifest is a loaded swift.toml plus where it was found.
type Manifest struct {
	Path   string
	Root   string
	Config Config
}

// Config mirrors the manifest sections.
type Config struct {
	Package     PackageConfig     `toml:"package"`
	Sema        SemaConfig        `toml:"sema"`
	Diagnostics DiagnosticsConfig `toml:"diagnostics"`
}

type PackageConfig struct {
	Name    string `toml:"name"`
	Version string `toml:"version"`
}

type SemaConfig struct {
	// RequireTopLevelTypes makes finalization demand explicit type
	// annotations on top-level value declarations.
	RequireTopLevelTypes bool `toml:"require_top_level_types"`
}

type DiagnosticsConfig struct {
	// Max caps diagnostics per file; 0 means unlimited.
	Max int `toml:"max"`
	// ShowSource toggles source lines and carets in pretty output.
	ShowSource bool `toml:"show_source"`
}

// DefaultConfig returns the configuration an absent manifest implies.
func DefaultConfig() Config {
	return Config{
		Diagnostics: DiagnosticsConfig{ShowSource: true},
	}
}

// Error is a manifest problem tagged with its diagnostic code, so the
// CLI renders it the way it renders source diagnostics.
type Error struct {
	Code diag.Code
	Msg  string
}

func (e *Error) Error() string { return e.Msg }

func badManifest(format string, args ...any) *Error {
	return &Error{Code: diag.ProjBadManifest, Msg: fmt.Sprintf(format, args...)}
}

// Load reads and validates the manifest at path. Defaults are seeded
// first, so absent keys keep their built-in values.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return DefaultConfig(), badManifest("%s: failed to parse TOML: %v", path, err)
	}
	if keys := meta.Undecoded(); len(keys) > 0 {
		names := make([]string, len(keys))
		for i, k := range keys {
			names[i] = k.String()
		}
		return DefaultConfig(), &Error{
			Code: diag.ProjUnknownKey,
			Msg:  fmt.Sprintf("%s: unknown manifest key %q", path, strings.Join(names, ", ")),
		}
	}
	if !meta.IsDefined("package") {
		return DefaultConfig(), badManifest("%s: missing [package]", path)
	}
	if !meta.IsDefined("package", "name") || strings.TrimSpace(cfg.Package.Name) == "" {
		return DefaultConfig(), badManifest("%s: missing [package].name", path)
	}
	if cfg.Diagnostics.Max < 0 {
		return DefaultConfig(), badManifest("%s: [diagnostics].max must not be negative", path)
	}
	return cfg, nil
}

// LoadManifest discovers swift.toml upward from startDir and loads it.
// ok is false when no manifest exists anywhere up the tree.
func LoadManifest(startDir string) (*Manifest, bool, error) {
	path, ok, err := FindSwiftToml(startDir)
	if err != nil || !ok {
		return nil, ok, err
	}
	cfg, err := Load(path)
	if err != nil {
		return nil, true, err
	}
	return &Manifest{
		Path:   path,
		Root:   rootOf(path),
		Config: cfg,
	}, true, nil
}
