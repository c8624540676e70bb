package render

import (
	"fmt"

	json "github.com/goccy/go-json"

	"github.com/apidrift/apidrift/matcher"
	"github.com/apidrift/apidrift/rules"
)

// JSONRenderer renders comparison results as an indented JSON report with
// stable field order, suitable for diffing report-to-report.
type JSONRenderer struct{}

// NewJSONRenderer creates a JSON renderer.
func NewJSONRenderer() *JSONRenderer {
	return &JSONRenderer{}
}

// FileExtension returns "json".
func (r *JSONRenderer) FileExtension() string { return "json" }

type jsonReport struct {
	Base    jsonDocument `json:"base"`
	Current jsonDocument `json:"current"`
	Level   string       `json:"level"`
	Stats   jsonStats    `json:"stats"`
	Schemas []jsonMatch  `json:"schemas"`
	Routes  []jsonMatch  `json:"routes"`
}

type jsonDocument struct {
	Title   string `json:"title,omitempty"`
	Version string `json:"version,omitempty"`
}

type jsonStats struct {
	TotalChanges       int `json:"total_changes"`
	BreakingChanges    int `json:"breaking_changes"`
	Warnings           int `json:"warnings"`
	NonBreakingChanges int `json:"non_breaking_changes"`
}

type jsonMatch struct {
	Name       string          `json:"name"`
	Level      string          `json:"level"`
	Violations []jsonViolation `json:"violations"`
}

type jsonViolation struct {
	Rule        string `json:"rule"`
	Level       string `json:"level"`
	Category    string `json:"category"`
	Context     string `json:"context"`
	Description string `json:"description"`
}

// Render marshals the result as indented JSON.
func (r *JSONRenderer) Render(result *matcher.CompareResult) ([]byte, error) {
	report := jsonReport{
		Base:    jsonDocument{Title: result.BaseTitle, Version: result.BaseVersion},
		Current: jsonDocument{Title: result.CurrentTitle, Version: result.CurrentVersion},
		Level:   levelClass(result.Level),
		Stats: jsonStats{
			TotalChanges:       result.BreakingCount + result.WarningCount + result.ChangeCount,
			BreakingChanges:    result.BreakingCount,
			Warnings:           result.WarningCount,
			NonBreakingChanges: result.ChangeCount,
		},
		Schemas: jsonMatches(result.Schemas),
		Routes:  jsonMatches(result.Routes),
	}

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("render: failed to marshal JSON report: %w", err)
	}
	return data, nil
}

func jsonMatches(results []rules.MatchResult) []jsonMatch {
	matches := make([]jsonMatch, 0, len(results))
	for _, result := range results {
		violations := make([]jsonViolation, 0, len(result.Violations))
		for _, v := range result.Violations {
			violations = append(violations, jsonViolation{
				Rule:        v.Name(),
				Level:       levelClass(v.Level()),
				Category:    string(v.Category()),
				Context:     v.Context(),
				Description: v.Description(),
			})
		}
		matches = append(matches, jsonMatch{
			Name:       result.Name,
			Level:      levelClass(result.Level),
			Violations: violations,
		})
	}
	return matches
}
