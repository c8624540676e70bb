package matcher

import (
	"fmt"

	"github.com/apidrift/apidrift/parser"
	"github.com/apidrift/apidrift/rules"
)

// CompareResult contains the full outcome of comparing two document
// versions: per-schema and per-route match results plus aggregate counts.
// All fields are read-only once returned.
type CompareResult struct {
	// BaseTitle is the base document's title, when declared.
	BaseTitle string
	// BaseVersion is the base document's info version string.
	BaseVersion string
	// CurrentTitle is the current document's title, when declared.
	CurrentTitle string
	// CurrentVersion is the current document's info version string.
	CurrentVersion string
	// Schemas holds one result per component schema name in either version,
	// ordered by name.
	Schemas []rules.MatchResult
	// Routes holds one result per "METHOD /path" route in either version,
	// ordered by that identifier.
	Routes []rules.MatchResult
	// SchemaReports holds the current-side per-schema property views, one
	// per entry in Schemas and in the same order.
	SchemaReports []SchemaReport
	// RouteIndex enumerates the current version's routes with their schema
	// references.
	RouteIndex []RouteInfo
	// Level is the overall severity across all results.
	Level rules.Level
	// BreakingCount is the number of breaking violations detected.
	BreakingCount int
	// WarningCount is the number of warning violations detected.
	WarningCount int
	// ChangeCount is the number of informational violations detected.
	ChangeCount int
	// HasBreakingChanges is true if any breaking violation was detected.
	HasBreakingChanges bool
}

// Results returns the schema results followed by the route results.
func (r *CompareResult) Results() []rules.MatchResult {
	combined := make([]rules.MatchResult, 0, len(r.Schemas)+len(r.Routes))
	combined = append(combined, r.Schemas...)
	combined = append(combined, r.Routes...)
	return combined
}

// Compare runs the schema and route matchers over two parsed documents and
// assembles the consolidated result.
func Compare(base, current *parser.Document) *CompareResult {
	schemas := NewSchemaMatcher(base.Schemas(), current.Schemas()).Match()
	routeMatcher := NewRouteMatcher(base, current, schemas)

	result := &CompareResult{
		Schemas:       schemas,
		Routes:        routeMatcher.Match(),
		SchemaReports: BuildSchemaReports(current.Schemas(), schemas),
		RouteIndex:    routeMatcher.Routes(),
		Level:         rules.LevelChange,
	}
	if base != nil && base.Info != nil {
		result.BaseTitle = base.Info.Title
		result.BaseVersion = base.Info.Version
	}
	if current != nil && current.Info != nil {
		result.CurrentTitle = current.Info.Title
		result.CurrentVersion = current.Info.Version
	}
	for _, match := range result.Results() {
		if match.Level > result.Level {
			result.Level = match.Level
		}
		for _, v := range match.Violations {
			switch v.Level() {
			case rules.LevelBreaking:
				result.BreakingCount++
			case rules.LevelWarning:
				result.WarningCount++
			default:
				result.ChangeCount++
			}
		}
	}
	result.HasBreakingChanges = result.BreakingCount > 0
	return result
}

// Option is a function that configures a comparison run.
type Option func(*compareConfig) error

// compareConfig holds configuration for one comparison run.
type compareConfig struct {
	// Exactly one base and one current input must be set.
	baseFilePath    *string
	baseParsed      *parser.Document
	currentFilePath *string
	currentParsed   *parser.Document
}

// CompareWithOptions compares two OpenAPI documents using functional
// options, combining input selection and parsing in a single call.
//
// Example:
//
//	result, err := matcher.CompareWithOptions(
//	    matcher.WithBaseFilePath("api-v1.yaml"),
//	    matcher.WithCurrentFilePath("api-v2.yaml"),
//	)
func CompareWithOptions(opts ...Option) (*CompareResult, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("matcher: invalid options: %w", err)
	}

	base := cfg.baseParsed
	if cfg.baseFilePath != nil {
		base, err = parser.Parse(*cfg.baseFilePath)
		if err != nil {
			return nil, fmt.Errorf("failed to parse base: %w", err)
		}
	}

	current := cfg.currentParsed
	if cfg.currentFilePath != nil {
		current, err = parser.Parse(*cfg.currentFilePath)
		if err != nil {
			return nil, fmt.Errorf("failed to parse current: %w", err)
		}
	}

	return Compare(base, current), nil
}

func applyOptions(opts ...Option) (*compareConfig, error) {
	cfg := &compareConfig{}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	baseCount := 0
	if cfg.baseFilePath != nil {
		baseCount++
	}
	if cfg.baseParsed != nil {
		baseCount++
	}
	if baseCount == 0 {
		return nil, fmt.Errorf("must specify a base (use WithBaseFilePath or WithBaseParsed)")
	}
	if baseCount > 1 {
		return nil, fmt.Errorf("must specify exactly one base")
	}

	currentCount := 0
	if cfg.currentFilePath != nil {
		currentCount++
	}
	if cfg.currentParsed != nil {
		currentCount++
	}
	if currentCount == 0 {
		return nil, fmt.Errorf("must specify a current (use WithCurrentFilePath or WithCurrentParsed)")
	}
	if currentCount > 1 {
		return nil, fmt.Errorf("must specify exactly one current")
	}

	return cfg, nil
}

// WithBaseFilePath specifies a file path as the base document.
func WithBaseFilePath(path string) Option {
	return func(cfg *compareConfig) error {
		cfg.baseFilePath = &path
		return nil
	}
}

// WithBaseParsed specifies an already-parsed base document.
func WithBaseParsed(doc *parser.Document) Option {
	return func(cfg *compareConfig) error {
		cfg.baseParsed = doc
		return nil
	}
}

// WithCurrentFilePath specifies a file path as the current document.
func WithCurrentFilePath(path string) Option {
	return func(cfg *compareConfig) error {
		cfg.currentFilePath = &path
		return nil
	}
}

// WithCurrentParsed specifies an already-parsed current document.
func WithCurrentParsed(doc *parser.Document) Option {
	return func(cfg *compareConfig) error {
		cfg.currentParsed = doc
		return nil
	}
}
