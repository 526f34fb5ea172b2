package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/BluPerf/swift/internal/diag"
	"github.com/BluPerf/swift/internal/diagfmt"
	"github.com/BluPerf/swift/internal/driver"
	"github.com/BluPerf/swift/internal/observ"
	"github.com/BluPerf/swift/internal/project"
	"github.com/BluPerf/swift/internal/sema"
	"github.com/BluPerf/swift/internal/source"
)

var bindCmd = &cobra.Command{
	Use:   "bind [flags] <file.swift|directory>",
	Short: "Bind names in Swift sources and report diagnostics",
	Long:  `Bind runs the front end (lex, parse, name binding) over a source file or over every *.swift file under a directory`,
	Args:  cobra.ExactArgs(1),
	RunE:  runBind,
}

func init() {
	bindCmd.Flags().String("format", "pretty", "output format (pretty|json|short)")
	bindCmd.Flags().String("ui", "auto", "progress view for directories (auto|on|off)")
	bindCmd.Flags().Bool("require-top-level-types", false, "demand type annotations on top-level declarations")
	bindCmd.Flags().Bool("with-notes", true, "include diagnostic notes in output")
	bindCmd.Flags().Bool("no-source", false, "omit source lines and carets from pretty output")
	bindCmd.Flags().Int("jobs", 0, "max parallel workers for directory binding (0=auto)")
	bindCmd.Flags().Bool("no-cache", false, "bypass the on-disk bind cache")
	bindCmd.Flags().Bool("stats", false, "print per-file declaration counts")
}

func runBind(cmd *cobra.Command, args []string) error {
	path := args[0]

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	uiValue, err := cmd.Flags().GetString("ui")
	if err != nil {
		return fmt.Errorf("failed to get ui flag: %w", err)
	}
	requireTypesFlag, err := cmd.Flags().GetBool("require-top-level-types")
	if err != nil {
		return fmt.Errorf("failed to get require-top-level-types flag: %w", err)
	}
	withNotes, err := cmd.Flags().GetBool("with-notes")
	if err != nil {
		return fmt.Errorf("failed to get with-notes flag: %w", err)
	}
	noSource, err := cmd.Flags().GetBool("no-source")
	if err != nil {
		return fmt.Errorf("failed to get no-source flag: %w", err)
	}
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}
	noCache, err := cmd.Flags().GetBool("no-cache")
	if err != nil {
		return fmt.Errorf("failed to get no-cache flag: %w", err)
	}
	showStats, err := cmd.Flags().GetBool("stats")
	if err != nil {
		return fmt.Errorf("failed to get stats flag: %w", err)
	}
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	showTimings, err := cmd.Root().PersistentFlags().GetBool("timings")
	if err != nil {
		return fmt.Errorf("failed to get timings flag: %w", err)
	}
	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return fmt.Errorf("failed to get quiet flag: %w", err)
	}
	colorFlag, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return fmt.Errorf("failed to get color flag: %w", err)
	}

	uiModeValue, err := readUIMode(uiValue)
	if err != nil {
		return err
	}
	colorMode, err := diagfmt.ParseColorMode(colorFlag)
	if err != nil {
		return err
	}

	cleanup, err := setupTracing(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	cfg, err := loadBindConfig(path)
	if err != nil {
		var perr *project.Error
		if errors.As(err, &perr) {
			reportManifestError(perr, colorMode)
			return silentExit(cmd)
		}
		return err
	}

	// Flags set explicitly win over the manifest.
	maxDiag := cfg.Diagnostics.Max
	if cmd.Root().PersistentFlags().Changed("max-diagnostics") {
		maxDiag = maxDiagnostics
	}
	requireTypes := cfg.Sema.RequireTopLevelTypes
	if cmd.Flags().Changed("require-top-level-types") {
		requireTypes = requireTypesFlag
	}
	showSource := cfg.Diagnostics.ShowSource && !noSource

	opts := driver.Options{
		MaxDiagnostics: maxDiag,
		Jobs:           jobs,
		Sema:           sema.Options{RequireTopLevelTypes: requireTypes},
	}
	if !noCache {
		cache, cacheErr := driver.OpenDiskCache("swiftc")
		if cacheErr != nil {
			fmt.Fprintf(os.Stderr, "warning: disk cache disabled: %v\n", cacheErr)
		} else {
			opts.Cache = cache
		}
	}
	var timer *observ.Timer
	if showTimings {
		timer = observ.NewTimer()
		opts.Timer = timer
	}

	st, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to stat path: %w", err)
	}

	var (
		fileSet *source.FileSet
		results []driver.UnitResult
	)
	if st.IsDir() {
		files, listErr := driver.ListSwiftFiles(path)
		if listErr != nil {
			return listErr
		}
		if len(files) == 0 {
			return fmt.Errorf("no .swift files under %s", path)
		}
		useTUI := shouldUseTUI(uiModeValue) && format == "pretty" && !quiet
		if useTUI {
			fileSet, results, err = runBindWithUI(cmd.Context(), "swiftc bind", files, opts)
		} else {
			fileSet, results, err = driver.BindFiles(cmd.Context(), files, opts)
		}
		if err != nil {
			return fmt.Errorf("bind failed: %w", err)
		}
	} else {
		fileSet = source.NewFileSet()
		res := driver.BindFile(fileSet, path, opts)
		results = []driver.UnitResult{*res}
	}

	exit := 0
	for i := range results {
		if results[i].Bag.HasErrors() {
			exit = 1
			break
		}
	}

	prettyOpts := diagfmt.PrettyOpts{
		Color:      colorMode.Enabled(os.Stdout),
		ShowSource: showSource,
		ShowNotes:  withNotes,
	}
	jsonOpts := diagfmt.JSONOpts{IncludePositions: true, IncludeNotes: withNotes}

	switch format {
	case "pretty":
		for i := range results {
			r := &results[i]
			if r.Bag.Len() == 0 {
				continue
			}
			if st.IsDir() {
				fmt.Fprintf(os.Stdout, "== %s ==\n", r.Path)
			}
			r.Bag.Sort()
			diagfmt.Pretty(os.Stdout, r.Bag, fileSet, prettyOpts)
		}
	case "short":
		all := make([]diag.Diagnostic, 0, len(results))
		for i := range results {
			all = append(all, results[i].Bag.Items()...)
		}
		if output := diag.FormatGolden(all, fileSet, withNotes); output != "" {
			fmt.Fprint(os.Stdout, output)
		}
	case "json":
		if st.IsDir() {
			output := make(map[string]diagfmt.DiagnosticsOutput, len(results))
			for i := range results {
				r := &results[i]
				r.Bag.Sort()
				output[r.Path] = diagfmt.BuildDiagnosticsOutput(r.Bag, fileSet, jsonOpts)
			}
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			if err := enc.Encode(output); err != nil {
				return fmt.Errorf("failed to encode diagnostics output: %w", err)
			}
		} else {
			results[0].Bag.Sort()
			if err := diagfmt.JSON(os.Stdout, results[0].Bag, fileSet, jsonOpts); err != nil {
				return fmt.Errorf("failed to format diagnostics: %w", err)
			}
		}
	default:
		return fmt.Errorf("unknown format: %s", format)
	}

	if showStats && !quiet {
		printStats(os.Stdout, results)
	}
	if timer != nil && !quiet {
		fmt.Fprint(os.Stderr, timer.Summary())
	}

	if exit != 0 {
		return silentExit(cmd)
	}
	return nil
}

// loadBindConfig finds the nearest swift.toml above path and returns its
// config, or the defaults when there is no manifest.
func loadBindConfig(path string) (project.Config, error) {
	startDir := path
	if st, err := os.Stat(path); err == nil && !st.IsDir() {
		startDir = filepath.Dir(path)
	}
	manifest, found, err := project.LoadManifest(startDir)
	if err != nil {
		return project.Config{}, err
	}
	if !found {
		return project.DefaultConfig(), nil
	}
	return manifest.Config, nil
}

// reportManifestError renders a manifest problem the way source diagnostics
// render, so tooling sees the PRJ code.
func reportManifestError(perr *project.Error, colorMode diagfmt.ColorMode) {
	bag := diag.NewBag(1)
	bag.Add(diag.NewError(perr.Code, source.Span{}, perr.Msg))
	diagfmt.Pretty(os.Stderr, bag, source.NewFileSet(), diagfmt.PrettyOpts{
		Color: colorMode.Enabled(os.Stderr),
	})
}

func printStats(out io.Writer, results []driver.UnitResult) {
	for i := range results {
		r := &results[i]
		suffix := ""
		if r.FromCache {
			suffix = " (cached)"
		}
		fmt.Fprintf(out, "%s: %d items, %d values, %d aliases, %d exprs%s\n",
			r.Path, r.Stats.Items, r.Stats.Values, r.Stats.Aliases, r.Stats.Exprs, suffix)
	}
}

// silentExit flips the exit code without double-printing: diagnostics are
// already on the stream.
func silentExit(cmd *cobra.Command) error {
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	return fmt.Errorf("")
}
