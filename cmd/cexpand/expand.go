package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"cexpand/internal/diag"
	"cexpand/internal/driver"
	"cexpand/internal/project"
)

var expandCmd = &cobra.Command{
	Use:   "expand [flags] file.c...",
	Short: "Rewrite macro invocations into their expansions",
	Long: `Expand rewrites every macro invocation in the given C files into its
expansion, keeping comments, whitespace, and directives in place. Pass "-" to
read from stdin and write to stdout.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runExpand,
}

func init() {
	expandCmd.Flags().StringP("output", "o", "", "output path (single input only)")
	expandCmd.Flags().Bool("stdout", false, "write the result to stdout instead of a file")
	expandCmd.Flags().StringArrayP("define", "D", nil, "predefine a macro (NAME or NAME=VALUE)")
	expandCmd.Flags().StringArrayP("include-dir", "I", nil, "add a directory to the include search path")
	expandCmd.Flags().String("suffix", "", "output suffix replacing the source extension (default \".expanded.c\")")
	expandCmd.Flags().Bool("cache", false, "cache raw token lists on disk between runs")
	expandCmd.Flags().IntP("jobs", "j", 0, "number of files to expand in parallel (0 = GOMAXPROCS)")
	expandCmd.Flags().Bool("no-config", false, "ignore any cexpand.toml manifest")
}

type expandSettings struct {
	opts    driver.Options
	output  string
	suffix  string
	toOut   bool
	jobs    int
	quiet   bool
}

func runExpand(cmd *cobra.Command, args []string) error {
	settings, err := gatherExpandSettings(cmd, args)
	if err != nil {
		return err
	}

	if len(args) == 1 && args[0] == "-" {
		return expandStdin(cmd, settings)
	}
	if settings.output != "" && len(args) != 1 {
		return errors.New("--output requires exactly one input file")
	}

	results, err := driver.ExpandPaths(cmd.Context(), args, settings.opts, settings.jobs)
	if err != nil {
		return err
	}

	failed := false
	for _, pr := range results {
		if err := writeResult(cmd, pr, settings); err != nil {
			return err
		}
		if pr.Err != nil || pr.Result.Bag.HasErrors() {
			failed = true
		}
	}
	if failed {
		return errors.New("expansion finished with errors")
	}
	return nil
}

func gatherExpandSettings(cmd *cobra.Command, args []string) (expandSettings, error) {
	var s expandSettings

	defines, _ := cmd.Flags().GetStringArray("define")
	includeDirs, _ := cmd.Flags().GetStringArray("include-dir")
	s.output, _ = cmd.Flags().GetString("output")
	s.suffix, _ = cmd.Flags().GetString("suffix")
	s.toOut, _ = cmd.Flags().GetBool("stdout")
	s.jobs, _ = cmd.Flags().GetInt("jobs")
	s.quiet = quietMode(cmd)
	useCache, _ := cmd.Flags().GetBool("cache")
	noConfig, _ := cmd.Flags().GetBool("no-config")

	// Manifest values fill the gaps; explicit flags always win.
	if !noConfig {
		start := "."
		if len(args) > 0 && args[0] != "-" {
			start = filepath.Dir(args[0])
		}
		cfg, err := project.Discover(start)
		if err != nil {
			return s, err
		}
		if cfg != nil {
			defines = append(cfg.Expand.Defines, defines...)
			includeDirs = append(cfg.Expand.IncludeDirs, includeDirs...)
			if s.suffix == "" {
				s.suffix = cfg.Expand.OutputSuffix
			}
		}
	}
	if s.suffix == "" {
		s.suffix = ".expanded.c"
	}

	s.opts = driver.Options{
		Defines:        defines,
		IncludeDirs:    includeDirs,
		MaxDiagnostics: maxDiagnostics(cmd),
	}
	if useCache {
		cache, err := driver.OpenTokenCache("cexpand")
		if err != nil {
			return s, fmt.Errorf("failed to open token cache: %w", err)
		}
		s.opts.Cache = cache
	}
	return s, nil
}

func expandStdin(cmd *cobra.Command, s expandSettings) error {
	content, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return fmt.Errorf("failed to read stdin: %w", err)
	}

	res := driver.ExpandSource("<stdin>", content, s.opts)
	printDiagnostics(cmd, res.Bag, res.FileSet)
	if _, err := cmd.OutOrStdout().Write(res.Output); err != nil {
		return err
	}
	if res.Bag.HasErrors() {
		return errors.New("expansion finished with errors")
	}
	return nil
}

func writeResult(cmd *cobra.Command, pr driver.PathResult, s expandSettings) error {
	res := pr.Result
	printDiagnostics(cmd, res.Bag, res.FileSet)
	if pr.Err != nil {
		return nil
	}

	if s.toOut {
		_, err := cmd.OutOrStdout().Write(res.Output)
		return err
	}

	if !res.Changed {
		if !s.quiet {
			fmt.Fprintf(cmd.ErrOrStderr(), "%s: no changes\n", pr.Path)
		}
		return nil
	}

	dest := s.output
	if dest == "" {
		dest = outputNameFromPath(pr.Path, s.suffix)
	}
	if err := os.WriteFile(dest, res.Output, 0o644); err != nil {
		// Same fold as load failures: the error shows up as a diagnostic
		// before the command aborts.
		wbag := diag.NewBag(1)
		wbag.Add(diag.Diagnostic{
			Severity: diag.SevError,
			Code:     diag.IOWriteFileError,
			Message:  fmt.Sprintf("failed to write %q: %v", dest, err),
		})
		printDiagnostics(cmd, wbag, res.FileSet)
		res.Bag.Merge(wbag)
		return fmt.Errorf("failed to write %q: %w", dest, err)
	}
	if !s.quiet {
		fmt.Fprintf(cmd.ErrOrStderr(), "%s -> %s\n", pr.Path, dest)
	}
	return nil
}
