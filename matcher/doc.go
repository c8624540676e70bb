// Package matcher implements the comparison engine at the heart of apidrift:
// it walks two versions of a parsed OpenAPI document in parallel, resolves
// internal schema references as it encounters them, and classifies every
// detected difference through the rules package vocabulary.
//
// # Basic Usage
//
// The functional options API parses and compares in one call:
//
//	result, err := matcher.CompareWithOptions(
//	    matcher.WithBaseFilePath("api-v1.yaml"),
//	    matcher.WithCurrentFilePath("api-v2.yaml"),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, schema := range result.Schemas {
//	    fmt.Printf("%s: %s (%d violations)\n", schema.Name, schema.Level, len(schema.Violations))
//	}
//
// Already-parsed documents can be compared directly with Compare, or via
// WithBaseParsed and WithCurrentParsed.
//
// # Determinism
//
// For fixed inputs, repeated runs produce identical results: schema and
// route results are ordered lexicographically by name, property comparisons
// iterate sorted property names, and every violation list preserves
// discovery order. Tables are never mutated and the matchers hold no state
// across runs.
//
// # Reference Resolution
//
// Internal "#/components/schemas/Name" pointers resolve against the owning
// document's own schema table. A pointer with no target degrades to a single
// informational violation for the affected schema rather than an error.
// Circular references are detected per comparison path and truncate the
// affected branch silently; recursion is additionally capped at a fixed
// depth against pathological nesting. No input aborts a run.
package matcher
