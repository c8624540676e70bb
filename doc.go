// Package apidrift compares two versions of an OpenAPI specification and
// classifies every detected difference by severity, so API integrators can see
// precisely which changes threaten existing consumers.
//
// # Overview
//
// The library consists of four primary packages:
//
//   - parser: Deserialize OpenAPI documents (YAML or JSON) into schema tables
//   - matcher: Compare schemas and routes between two document versions
//   - rules: The difference vocabulary — typed, severity-tagged rule violations
//   - render: Produce HTML and JSON reports from comparison results
//
// # Quick Start
//
// Compare two specification files:
//
//	import "github.com/apidrift/apidrift/matcher"
//
//	results, err := matcher.CompareWithOptions(
//		matcher.WithBaseFilePath("api-v1.yaml"),
//		matcher.WithCurrentFilePath("api-v2.yaml"),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, r := range results.Schemas {
//		fmt.Printf("%s: %s (%d violations)\n", r.Name, r.Level, len(r.Violations))
//	}
//
// Or compare already-parsed documents:
//
//	base, _ := parser.Parse("api-v1.yaml")
//	current, _ := parser.Parse("api-v2.yaml")
//
//	result := matcher.Compare(base, current)
//
// # Severity Levels
//
// Every violation carries one of three severity levels, ordered
// Breaking > Warning > Change:
//
//   - Breaking: may break existing consumers (removed schema, type change,
//     new required property, removed enum value)
//   - Warning: may cause issues (format change, newly nullable field)
//   - Change: safe or informational (added schema, new optional property,
//     description edits)
//
// A schema's overall level is the maximum over its violations; a schema with
// no violations reports Change, which renderers display as "unchanged".
//
// # Determinism
//
// For a fixed pair of input documents, repeated comparisons produce identical
// result sequences, including violation order. Schema names are processed in
// lexicographic order and per-schema violations follow a fixed discovery
// order, so reports and tests are reproducible.
//
// # Command-Line Interface
//
// In addition to the library packages, apidrift provides a command-line tool:
//
//	# Generate an HTML report
//	apidrift api-v1.yaml api-v2.yaml -o report.html
//
//	# Structured JSON output, breaking changes only
//	apidrift api-v1.yaml api-v2.yaml -format json -breaking-only
//
//	# Run as an MCP server over stdio
//	apidrift mcp
//
// Install the CLI:
//
//	go install github.com/apidrift/apidrift/cmd/apidrift@latest
package apidrift
