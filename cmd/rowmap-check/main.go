// rowmap-check runs auto-mapping over the statements of a mapping file
// against result types loaded from Go packages and reports unknown columns.
//
// Usage:
//
//	rowmap-check -config rowmap.yaml [-behavior WARNING] [-log-level debug] [-write out.yaml] PACKAGES...
//
// Exit codes:
//   - 0: no error diagnostics
//   - 1: configuration, loading or check errors
//   - 2: usage error
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"rowmap/internal/analyze"
	"rowmap/internal/behavior"
	"rowmap/internal/check"
	"rowmap/internal/diagnostic"
	"rowmap/internal/log"
	"rowmap/internal/mapping"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("rowmap-check", flag.ContinueOnError)
	fs.SetOutput(stderr)

	configPath := fs.String("config", "rowmap.yaml", "path to the YAML mapping file")
	behaviorName := fs.String("behavior", "", "override autoMappingUnknownColumnBehavior (NONE, WARNING, FAILING)")
	logLevel := fs.String("log-level", "", "log level (debug, info, warn, error)")
	dir := fs.String("dir", "", "directory to load packages from")
	verbose := fs.Bool("v", false, "also print info diagnostics")
	writePath := fs.String("write", "", "write the mapping file with defaults and overrides applied to this path")

	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage:")
		fmt.Fprintln(stderr, "  rowmap-check -config rowmap.yaml [flags] PACKAGES...")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return 2
	}

	patterns := fs.Args()
	if len(patterns) == 0 {
		fmt.Fprintln(stderr, "Error: at least one package pattern is required")
		fs.Usage()

		return 2
	}

	var override *behavior.UnknownColumnBehavior
	if *behaviorName != "" {
		b, err := behavior.ParseUnknownColumnBehavior(*behaviorName)
		if err != nil {
			fmt.Fprintf(stderr, "Error: -behavior: %v\n", err)
			return 2
		}
		override = &b
	}

	log.Configure(log.Config{Level: *logLevel, Output: stderr, Service: "rowmap-check"})
	logger := log.WithComponent("check")

	mf, err := mapping.LoadFile(*configPath)
	if err != nil {
		fmt.Fprintf(stderr, "Configuration error: %v\n", err)
		return 1
	}

	if err := mf.Settings.ApplyEnv(logger); err != nil {
		fmt.Fprintf(stderr, "Configuration error: %v\n", err)
		return 1
	}

	if override != nil {
		mf.Settings.AutoMappingUnknownColumnBehavior = *override
	}

	if *writePath != "" {
		if err := mapping.WriteFile(mf, *writePath); err != nil {
			fmt.Fprintf(stderr, "Write error: %v\n", err)
			return 1
		}

		logger.Info().Str("path", *writePath).Msg("normalized mapping file written")
	}

	logger.Debug().
		Str("config", *configPath).
		Stringer("auto_mapping", mf.Settings.AutoMappingBehavior).
		Stringer("unknown_column", mf.Settings.AutoMappingUnknownColumnBehavior).
		Strs("packages", patterns).
		Msg("checking mapping file")

	analyzer := analyze.NewAnalyzer()
	analyzer.Dir = *dir

	graph, err := analyzer.LoadPackages(patterns...)
	if err != nil {
		fmt.Fprintf(stderr, "Load error: %v\n", err)
		return 1
	}

	res := check.New(check.Config{
		Graph:    graph,
		Settings: mf.Settings,
		Logger:   logger,
	}).Run(mf)

	for _, d := range res.All() {
		if d.Severity == diagnostic.DiagnosticInfo && !*verbose {
			continue
		}

		fmt.Fprintf(stdout, "%s: %s\n", d.Severity, d)
	}

	if res.HasErrors() {
		fmt.Fprintf(stdout, "%d error(s), %d warning(s)\n", len(res.Errors), len(res.Warnings))
		return 1
	}

	fmt.Fprintf(stdout, "ok: %d statement(s), %d warning(s)\n", len(mf.Statements), len(res.Warnings))

	return 0
}
