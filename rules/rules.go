// Package rules defines the vocabulary of differences apidrift can detect
// between two versions of an OpenAPI specification.
//
// Each difference kind implements the Rule interface, carrying the data needed
// to describe itself along with an intrinsic severity level and category. The
// matcher only decides when to construct a given kind; how a kind names,
// describes, and classifies itself is entirely its own concern, so new kinds
// can be added without touching the comparison engine.
package rules

import (
	"fmt"

	"github.com/apidrift/apidrift/internal/severity"
)

// Level is the severity of a detected difference.
// Levels are totally ordered: Breaking > Warning > Change.
type Level = severity.Level

const (
	// LevelBreaking marks differences that may break existing consumers.
	LevelBreaking = severity.LevelBreaking
	// LevelWarning marks differences that may cause issues.
	LevelWarning = severity.LevelWarning
	// LevelChange marks safe or informational differences.
	LevelChange = severity.LevelChange
)

// Category identifies which aspect of the API a rule belongs to.
type Category string

const (
	// CategorySchema covers component schema differences.
	CategorySchema Category = "schema"
	// CategoryEndpoint covers route/path differences.
	CategoryEndpoint Category = "endpoint"
	// CategoryParameter covers operation parameter differences.
	CategoryParameter Category = "parameter"
	// CategoryResponse covers response differences.
	CategoryResponse Category = "response"
	// CategoryRequestBody covers request body differences.
	CategoryRequestBody Category = "request_body"
)

// Rule is the capability set every difference kind exposes. Implementations
// are immutable values; all methods are pure.
type Rule interface {
	// Name is the stable, unique identifier of the kind (e.g. "PropertyRemoved").
	Name() string
	// Description renders a human-readable account of the difference.
	Description() string
	// Level is the intrinsic severity of the difference.
	Level() Level
	// Category identifies the API aspect the difference belongs to.
	Category() Category
	// Context identifies where in the document the difference occurred,
	// e.g. "schema: User, property: address.street".
	Context() string
}

// Violation is an immutable record of one detected difference. It wraps
// exactly one Rule value. Violations are never merged or deduplicated; every
// distinct difference yields its own Violation.
type Violation struct {
	rule Rule
}

// NewViolation wraps a rule value as a Violation.
func NewViolation(rule Rule) Violation {
	return Violation{rule: rule}
}

// Rule returns the wrapped rule value.
func (v Violation) Rule() Rule { return v.rule }

// Name returns the wrapped rule's stable identifier.
func (v Violation) Name() string { return v.rule.Name() }

// Description returns the wrapped rule's rendered description.
func (v Violation) Description() string { return v.rule.Description() }

// Level returns the wrapped rule's severity.
func (v Violation) Level() Level { return v.rule.Level() }

// Category returns the wrapped rule's category.
func (v Violation) Category() Category { return v.rule.Category() }

// Context returns the wrapped rule's location context.
func (v Violation) Context() string { return v.rule.Context() }

// String renders the violation for logs and terminal output.
func (v Violation) String() string {
	return fmt.Sprintf("[%s] %s: %s (%s)", v.Level(), v.Name(), v.Description(), v.Context())
}

// MatchResult holds the full comparison outcome for one named item (a schema
// or a route): its ordered violations and the aggregated overall level.
type MatchResult struct {
	// Name is the schema name or "METHOD /path" route identifier.
	Name string
	// Violations are the detected differences, in discovery order.
	Violations []Violation
	// Level is the aggregated severity over Violations.
	Level Level
}

// NewMatchResult packages a violation list with its aggregated level.
func NewMatchResult(name string, violations []Violation) MatchResult {
	return MatchResult{
		Name:       name,
		Violations: violations,
		Level:      Aggregate(violations),
	}
}

// Aggregate reduces a violation list to one overall level: Breaking if any
// violation is breaking, else Warning if any is a warning, else Change.
// An empty list aggregates to Change, meaning "unchanged / informational".
func Aggregate(violations []Violation) Level {
	level := LevelChange
	for _, v := range violations {
		level = severity.Max(level, v.Level())
	}
	return level
}

// schemaContext renders the standard context string for schema-level rules.
func schemaContext(schemaName, propertyPath string) string {
	if propertyPath == "" {
		return fmt.Sprintf("schema: %s", schemaName)
	}
	return fmt.Sprintf("schema: %s, property: %s", schemaName, propertyPath)
}

// routeContext renders the standard context string for route-level rules.
func routeContext(method, path string) string {
	return fmt.Sprintf("route: %s %s", method, path)
}
