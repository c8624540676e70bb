package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/fatih/color"

	"github.com/apidrift/apidrift"
	"github.com/apidrift/apidrift/internal/mcpserver"
	"github.com/apidrift/apidrift/matcher"
	"github.com/apidrift/apidrift/render"
	"github.com/apidrift/apidrift/rules"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "version", "--version":
		fmt.Printf("apidrift v%s\n", apidrift.Version())
	case "help", "-h", "--help":
		printUsage()
	case "mcp":
		if err := handleMCP(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	default:
		code, err := handleCompare(os.Args[1:])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		os.Exit(code)
	}
}

// compareFlags contains flags for the default compare invocation
type compareFlags struct {
	output       string
	format       string
	breakingOnly bool
	verbose      bool
}

func setupCompareFlags() (*flag.FlagSet, *compareFlags) {
	fs := flag.NewFlagSet("apidrift", flag.ContinueOnError)
	flags := &compareFlags{}

	fs.StringVar(&flags.output, "o", "", "write the report to a file instead of stdout")
	fs.StringVar(&flags.format, "format", "html", "report format: html or json")
	fs.BoolVar(&flags.breakingOnly, "breaking-only", false, "print only breaking violations in the terminal summary")
	fs.BoolVar(&flags.verbose, "v", false, "verbose output")

	fs.Usage = func() {
		output := fs.Output()
		_, _ = fmt.Fprintf(output, "Usage: apidrift [flags] <base-spec> <current-spec>\n\n")
		_, _ = fmt.Fprintf(output, "Compares two OpenAPI documents and reports drift.\n\nFlags:\n")
		fs.PrintDefaults()
	}
	return fs, flags
}

// handleCompare runs the comparison and returns the process exit code: 0 for
// no breaking changes, 1 when breaking changes were detected.
func handleCompare(args []string) (int, error) {
	fs, flags := setupCompareFlags()
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0, nil
		}
		return 0, err
	}
	if fs.NArg() != 2 {
		fs.Usage()
		return 0, fmt.Errorf("apidrift requires exactly two specification file paths")
	}
	basePath := fs.Arg(0)
	currentPath := fs.Arg(1)

	renderer, ok := render.ForFormat(flags.format)
	if !ok {
		return 0, fmt.Errorf("unsupported format %q (supported: html, json)", flags.format)
	}

	if flags.verbose {
		fmt.Fprintf(os.Stderr, "Comparing %s against %s\n", currentPath, basePath)
	}

	result, err := matcher.CompareWithOptions(
		matcher.WithBaseFilePath(basePath),
		matcher.WithCurrentFilePath(currentPath),
	)
	if err != nil {
		return 0, err
	}

	report, err := renderer.Render(result)
	if err != nil {
		return 0, err
	}

	if flags.output != "" {
		if err := os.WriteFile(flags.output, report, 0o644); err != nil {
			return 0, fmt.Errorf("writing report: %w", err)
		}
		if flags.verbose {
			fmt.Fprintf(os.Stderr, "Report written to %s\n", flags.output)
		}
		printSummary(os.Stdout, result, flags.breakingOnly)
	} else {
		if _, err := os.Stdout.Write(report); err != nil {
			return 0, err
		}
	}

	if result.HasBreakingChanges {
		return 1, nil
	}
	return 0, nil
}

// printSummary writes the per-violation terminal summary, colored by
// severity.
func printSummary(w *os.File, result *matcher.CompareResult, breakingOnly bool) {
	breaking := color.New(color.FgRed, color.Bold)
	warning := color.New(color.FgYellow)
	change := color.New(color.FgGreen)

	for _, match := range result.Results() {
		for _, v := range match.Violations {
			if breakingOnly && v.Level() != rules.LevelBreaking {
				continue
			}
			var c *color.Color
			switch v.Level() {
			case rules.LevelBreaking:
				c = breaking
			case rules.LevelWarning:
				c = warning
			default:
				c = change
			}
			_, _ = c.Fprintf(w, "[%s]", v.Level())
			_, _ = fmt.Fprintf(w, " %s: %s (%s)\n", v.Name(), v.Description(), v.Context())
		}
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Summary:\n")
	fmt.Fprintf(w, "  Total changes: %d\n", result.BreakingCount+result.WarningCount+result.ChangeCount)
	if result.HasBreakingChanges {
		_, _ = breaking.Fprintf(w, "  Breaking changes: %d\n", result.BreakingCount)
	} else {
		fmt.Fprintf(w, "  Breaking changes: 0\n")
	}
	fmt.Fprintf(w, "  Warnings: %d\n", result.WarningCount)
	fmt.Fprintf(w, "  Non-breaking changes: %d\n", result.ChangeCount)
}

func handleMCP() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return mcpserver.Run(ctx)
}

func printUsage() {
	fmt.Println(`apidrift - OpenAPI drift detection

Usage:
  apidrift [flags] <base-spec> <current-spec>
  apidrift <command>

Commands:
  version     Print version information
  mcp         Run as an MCP server over stdio
  help        Show this help

Flags:
  -o FILE          write the report to FILE instead of stdout
  -format FORMAT   report format: html (default) or json
  -breaking-only   print only breaking violations in the terminal summary
  -v               verbose output

Exit codes:
  0  no breaking changes detected
  1  breaking changes detected, or an error occurred

Examples:
  apidrift api-v1.yaml api-v2.yaml -o report.html
  apidrift -format json api-v1.yaml api-v2.yaml
  apidrift -breaking-only -o report.html api-v1.yaml api-v2.yaml`)
}
