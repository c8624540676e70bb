package render

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/apidrift/apidrift/matcher"
	"github.com/apidrift/apidrift/rules"
)

// HTMLRenderer renders comparison results as a self-contained HTML report.
// Results are grouped by severity with breaking changes first; schemas render
// as property cards that route violations link back to, and description edits
// carry an inline word diff.
type HTMLRenderer struct {
	tmpl *template.Template
}

// NewHTMLRenderer creates an HTML renderer.
func NewHTMLRenderer() *HTMLRenderer {
	return &HTMLRenderer{
		tmpl: template.Must(template.New("report").Parse(reportTemplate)),
	}
}

// FileExtension returns "html".
func (r *HTMLRenderer) FileExtension() string { return "html" }

type htmlReport struct {
	BaseTitle      string
	BaseVersion    string
	CurrentVersion string
	Level          string
	LevelClass     string
	Stats          jsonStats
	SchemaGroups   []htmlGroup
	RouteGroups    []htmlGroup
	RouteIndex     []htmlRoute
}

// htmlGroup collects the matches of one severity band.
type htmlGroup struct {
	Level      string
	LevelClass string
	Matches    []htmlMatch
}

type htmlMatch struct {
	Name       string
	Anchor     string
	Level      string
	LevelClass string
	Properties []htmlProperty
	Violations []htmlViolation
}

// htmlProperty is one row of a schema's property card.
type htmlProperty struct {
	Name       string
	Type       string
	Format     string
	Required   bool
	Nullable   bool
	Violations []htmlViolation
}

type htmlViolation struct {
	Rule        string
	Level       string
	LevelClass  string
	Context     string
	Description string
	// SchemaName and SchemaAnchor link a route violation back to the schema
	// card it concerns, set only for schema-reference violations.
	SchemaName   string
	SchemaAnchor string
	// Diff is the inline rendering of a text edit, set only for
	// description changes.
	Diff template.HTML
}

// htmlRoute is one row of the current-version route index.
type htmlRoute struct {
	Method  string
	Path    string
	Summary string
	Schemas []htmlSchemaLink
}

type htmlSchemaLink struct {
	Name   string
	Anchor string
}

// Render produces the HTML report for the result.
func (r *HTMLRenderer) Render(result *matcher.CompareResult) ([]byte, error) {
	report := htmlReport{
		BaseTitle:      result.BaseTitle,
		BaseVersion:    result.BaseVersion,
		CurrentVersion: result.CurrentVersion,
		Level:          levelTitle(result.Level),
		LevelClass:     levelClass(result.Level),
		Stats: jsonStats{
			TotalChanges:       result.BreakingCount + result.WarningCount + result.ChangeCount,
			BreakingChanges:    result.BreakingCount,
			Warnings:           result.WarningCount,
			NonBreakingChanges: result.ChangeCount,
		},
		SchemaGroups: groupSchemas(result.SchemaReports),
		RouteGroups:  groupBySeverity(result.Routes),
		RouteIndex:   htmlRoutes(result.RouteIndex),
	}

	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, report); err != nil {
		return nil, fmt.Errorf("render: failed to execute HTML template: %w", err)
	}
	return buf.Bytes(), nil
}

// groupSchemas buckets changed schema reports by overall level, breaking
// first. Unchanged schemas are omitted from the report.
func groupSchemas(reports []matcher.SchemaReport) []htmlGroup {
	var groups []htmlGroup
	for _, level := range []rules.Level{rules.LevelBreaking, rules.LevelWarning, rules.LevelChange} {
		var matches []htmlMatch
		for _, report := range reports {
			if report.Level != level || !schemaChanged(report) {
				continue
			}
			match := htmlMatch{
				Name:       report.Name,
				Anchor:     schemaAnchor(report.Name),
				Level:      levelTitle(report.Level),
				LevelClass: levelClass(report.Level),
				Violations: htmlViolations(report.Violations),
			}
			for _, prop := range report.Properties {
				match.Properties = append(match.Properties, htmlProperty{
					Name:       prop.Name,
					Type:       prop.Type,
					Format:     prop.Format,
					Required:   prop.Required,
					Nullable:   prop.Nullable,
					Violations: htmlViolations(prop.Violations),
				})
			}
			matches = append(matches, match)
		}
		if len(matches) > 0 {
			groups = append(groups, htmlGroup{
				Level:      levelTitle(level),
				LevelClass: levelClass(level),
				Matches:    matches,
			})
		}
	}
	return groups
}

func schemaChanged(report matcher.SchemaReport) bool {
	if len(report.Violations) > 0 {
		return true
	}
	for _, prop := range report.Properties {
		if len(prop.Violations) > 0 {
			return true
		}
	}
	return false
}

// groupBySeverity buckets changed matches by overall level, breaking first.
// Unchanged matches are omitted from the report.
func groupBySeverity(results []rules.MatchResult) []htmlGroup {
	var groups []htmlGroup
	for _, level := range []rules.Level{rules.LevelBreaking, rules.LevelWarning, rules.LevelChange} {
		var matches []htmlMatch
		for _, result := range results {
			if result.Level != level || len(result.Violations) == 0 {
				continue
			}
			matches = append(matches, htmlMatch{
				Name:       result.Name,
				Level:      levelTitle(result.Level),
				LevelClass: levelClass(result.Level),
				Violations: htmlViolations(result.Violations),
			})
		}
		if len(matches) > 0 {
			groups = append(groups, htmlGroup{
				Level:      levelTitle(level),
				LevelClass: levelClass(level),
				Matches:    matches,
			})
		}
	}
	return groups
}

func htmlViolations(violations []rules.Violation) []htmlViolation {
	out := make([]htmlViolation, 0, len(violations))
	for _, v := range violations {
		hv := htmlViolation{
			Rule:        displayName(v.Name()),
			Level:       levelTitle(v.Level()),
			LevelClass:  levelClass(v.Level()),
			Context:     v.Context(),
			Description: v.Description(),
			Diff:        descriptionDiff(v.Rule()),
		}
		if name := violationSchemaName(v.Rule()); name != "" {
			hv.SchemaName = name
			hv.SchemaAnchor = schemaAnchor(name)
		}
		out = append(out, hv)
	}
	return out
}

func htmlRoutes(routes []matcher.RouteInfo) []htmlRoute {
	out := make([]htmlRoute, 0, len(routes))
	for _, route := range routes {
		row := htmlRoute{Method: route.Method, Path: route.Path, Summary: route.Summary}
		for _, name := range route.SchemaNames {
			row.Schemas = append(row.Schemas, htmlSchemaLink{Name: name, Anchor: schemaAnchor(name)})
		}
		out = append(out, row)
	}
	return out
}

func schemaAnchor(name string) string {
	return "schema-" + name
}

// violationSchemaName reports the schema a route violation references, or ""
// for violations that do not concern a named schema.
func violationSchemaName(rule rules.Rule) string {
	switch r := rule.(type) {
	case rules.RequestSchemaChanged:
		return r.SchemaName
	case rules.ResponseSchemaChanged:
		return r.SchemaName
	case rules.RequestSchemaViolation:
		return r.SchemaName
	case rules.ResponseSchemaViolation:
		return r.SchemaName
	default:
		return ""
	}
}

// descriptionDiff renders an inline diff for description edits; other rule
// kinds render no diff.
func descriptionDiff(rule rules.Rule) template.HTML {
	var oldText, newText string
	switch r := rule.(type) {
	case rules.DescriptionChanged:
		oldText, newText = r.OldDescription, r.NewDescription
	case rules.RouteDescriptionChanged:
		oldText, newText = r.OldDescription, r.NewDescription
	default:
		return ""
	}
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(oldText, newText, false)
	dmp.DiffCleanupSemantic(diffs)
	return template.HTML(dmp.DiffPrettyHtml(diffs))
}

const reportTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>API Drift Report{{if .BaseTitle}} - {{.BaseTitle}}{{end}}</title>
<style>
body { font-family: -apple-system, "Segoe UI", Helvetica, Arial, sans-serif; margin: 2rem auto; max-width: 60rem; color: #1f2328; }
h1, h2, h3 { line-height: 1.25; }
a { color: #0969da; }
.summary { display: flex; gap: 1rem; margin: 1rem 0; }
.stat { border: 1px solid #d1d9e0; border-radius: 6px; padding: .75rem 1rem; flex: 1; text-align: center; }
.stat .count { font-size: 1.5rem; font-weight: 600; display: block; }
.badge { display: inline-block; border-radius: 2rem; padding: .15rem .6rem; font-size: .8rem; font-weight: 600; color: #fff; }
.badge.breaking { background: #cf222e; }
.badge.warning { background: #bf8700; }
.badge.change { background: #1a7f37; }
.match { border: 1px solid #d1d9e0; border-radius: 6px; margin: .75rem 0; }
.match > header { display: flex; justify-content: space-between; padding: .5rem .75rem; background: #f6f8fa; border-bottom: 1px solid #d1d9e0; }
.match .name { font-family: ui-monospace, monospace; font-weight: 600; }
.property { padding: .5rem .75rem; border-bottom: 1px solid #eaeef2; }
.property .meta { font-family: ui-monospace, monospace; font-size: .85rem; color: #59636e; }
.violation { padding: .5rem .75rem; border-bottom: 1px solid #eaeef2; }
.property .violation { padding: .35rem 0 0 1rem; border-bottom: none; }
.violation:last-child, .property:last-child { border-bottom: none; }
.violation .context { color: #59636e; font-family: ui-monospace, monospace; font-size: .85rem; }
.violation .diff { margin-top: .25rem; font-size: .9rem; }
table.routes { border-collapse: collapse; width: 100%; }
table.routes th, table.routes td { border: 1px solid #d1d9e0; padding: .4rem .6rem; text-align: left; }
table.routes th { background: #f6f8fa; }
table.routes .method { font-family: ui-monospace, monospace; font-weight: 600; }
</style>
</head>
<body>
<h1>API Drift Report</h1>
{{if .BaseTitle}}<p><strong>{{.BaseTitle}}</strong>{{if .BaseVersion}}: {{.BaseVersion}} &rarr; {{.CurrentVersion}}{{end}}</p>{{end}}
<p>Overall: <span class="badge {{.LevelClass}}">{{.Level}}</span></p>
<div class="summary">
<div class="stat"><span class="count">{{.Stats.TotalChanges}}</span> total changes</div>
<div class="stat"><span class="count">{{.Stats.BreakingChanges}}</span> breaking</div>
<div class="stat"><span class="count">{{.Stats.Warnings}}</span> warnings</div>
<div class="stat"><span class="count">{{.Stats.NonBreakingChanges}}</span> non-breaking</div>
</div>
{{if .SchemaGroups}}
<h2>Schemas</h2>
{{range .SchemaGroups}}
<h3>{{.Level}}</h3>
{{range .Matches}}
<div class="match" id="{{.Anchor}}">
<header><span class="name">{{.Name}}</span> <span class="badge {{.LevelClass}}">{{.Level}}</span></header>
{{range .Violations}}
<div class="violation">
<div><span class="badge {{.LevelClass}}">{{.Level}}</span> <strong>{{.Rule}}</strong>: {{.Description}}</div>
<div class="context">{{.Context}}</div>
{{if .Diff}}<div class="diff">{{.Diff}}</div>{{end}}
</div>
{{end}}
{{range .Properties}}
<div class="property">
<div><span class="name">{{.Name}}</span> <span class="meta">{{.Type}}{{if .Format}} ({{.Format}}){{end}}{{if .Required}} &middot; required{{end}}{{if .Nullable}} &middot; nullable{{end}}</span></div>
{{range .Violations}}
<div class="violation">
<div><span class="badge {{.LevelClass}}">{{.Level}}</span> <strong>{{.Rule}}</strong>: {{.Description}}</div>
<div class="context">{{.Context}}</div>
{{if .Diff}}<div class="diff">{{.Diff}}</div>{{end}}
</div>
{{end}}
</div>
{{end}}
</div>
{{end}}
{{end}}
{{end}}
{{if .RouteGroups}}
<h2>Routes</h2>
{{range .RouteGroups}}
<h3>{{.Level}}</h3>
{{range .Matches}}
<div class="match">
<header><span class="name">{{.Name}}</span> <span class="badge {{.LevelClass}}">{{.Level}}</span></header>
{{range .Violations}}
<div class="violation">
<div><span class="badge {{.LevelClass}}">{{.Level}}</span> <strong>{{.Rule}}</strong>: {{.Description}}</div>
<div class="context">{{.Context}}{{if .SchemaAnchor}} &middot; <a href="#{{.SchemaAnchor}}">{{.SchemaName}}</a>{{end}}</div>
{{if .Diff}}<div class="diff">{{.Diff}}</div>{{end}}
</div>
{{end}}
</div>
{{end}}
{{end}}
{{end}}
{{if and (not .SchemaGroups) (not .RouteGroups)}}
<p>No differences detected.</p>
{{end}}
{{if .RouteIndex}}
<h2>Current Routes</h2>
<table class="routes">
<tr><th>Route</th><th>Summary</th><th>Schemas</th></tr>
{{range .RouteIndex}}
<tr>
<td><span class="method">{{.Method}}</span> {{.Path}}</td>
<td>{{.Summary}}</td>
<td>{{range $i, $s := .Schemas}}{{if $i}}, {{end}}<a href="#{{$s.Anchor}}">{{$s.Name}}</a>{{end}}</td>
</tr>
{{end}}
</table>
{{end}}
</body>
</html>
`
