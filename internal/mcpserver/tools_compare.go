package mcpserver

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/apidrift/apidrift/matcher"
	"github.com/apidrift/apidrift/rules"
)

type compareInput struct {
	Base         string `json:"base"                    jsonschema:"File path of the base/original OpenAPI document"`
	Current      string `json:"current"                 jsonschema:"File path of the current OpenAPI document to compare against the base"`
	BreakingOnly bool   `json:"breaking_only,omitempty" jsonschema:"Only show breaking violations"`
}

type compareViolation struct {
	Rule        string `json:"rule"`
	Level       string `json:"level"`
	Category    string `json:"category"`
	Context     string `json:"context"`
	Description string `json:"description"`
}

type compareMatch struct {
	Name       string             `json:"name"`
	Level      string             `json:"level"`
	Violations []compareViolation `json:"violations,omitempty"`
}

type compareOutput struct {
	Level         string         `json:"level"`
	TotalChanges  int            `json:"total_changes"`
	BreakingCount int            `json:"breaking_count"`
	WarningCount  int            `json:"warning_count"`
	ChangeCount   int            `json:"change_count"`
	Schemas       []compareMatch `json:"schemas,omitempty"`
	Routes        []compareMatch `json:"routes,omitempty"`
	Summary       string         `json:"summary"`
}

func handleCompare(_ context.Context, _ *mcp.CallToolRequest, input compareInput) (*mcp.CallToolResult, compareOutput, error) {
	result, err := matcher.CompareWithOptions(
		matcher.WithBaseFilePath(input.Base),
		matcher.WithCurrentFilePath(input.Current),
	)
	if err != nil {
		return errResult(err), compareOutput{}, nil
	}

	output := compareOutput{
		Level:         result.Level.String(),
		BreakingCount: result.BreakingCount,
		WarningCount:  result.WarningCount,
		ChangeCount:   result.ChangeCount,
		TotalChanges:  result.BreakingCount + result.WarningCount + result.ChangeCount,
		Schemas:       compareMatches(result.Schemas, input.BreakingOnly),
		Routes:        compareMatches(result.Routes, input.BreakingOnly),
	}
	output.Summary = buildCompareSummary(output)
	return nil, output, nil
}

// compareMatches converts changed match results for output, dropping
// unchanged names. With breakingOnly, only breaking violations survive and
// matches left empty are dropped too.
func compareMatches(results []rules.MatchResult, breakingOnly bool) []compareMatch {
	var matches []compareMatch
	for _, result := range results {
		var violations []compareViolation
		for _, v := range result.Violations {
			if breakingOnly && v.Level() != rules.LevelBreaking {
				continue
			}
			violations = append(violations, compareViolation{
				Rule:        v.Name(),
				Level:       v.Level().String(),
				Category:    string(v.Category()),
				Context:     v.Context(),
				Description: v.Description(),
			})
		}
		if len(violations) == 0 {
			continue
		}
		matches = append(matches, compareMatch{
			Name:       result.Name,
			Level:      result.Level.String(),
			Violations: violations,
		})
	}
	return matches
}

func buildCompareSummary(output compareOutput) string {
	if output.TotalChanges == 0 {
		return "No changes detected."
	}
	if output.BreakingCount > 0 {
		return fmt.Sprintf("%d change(s) detected, %d breaking.", output.TotalChanges, output.BreakingCount)
	}
	return fmt.Sprintf("%d change(s) detected, none breaking.", output.TotalChanges)
}
