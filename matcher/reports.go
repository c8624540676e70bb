package matcher

import (
	"strings"

	"github.com/apidrift/apidrift/internal/maputil"
	"github.com/apidrift/apidrift/parser"
	"github.com/apidrift/apidrift/rules"
)

// SchemaReport is a current-side view of one schema: its top-level
// properties with the run's violations anchored to the property each one
// touches. Renderers use it to produce per-schema detail tables.
type SchemaReport struct {
	Name  string
	Level rules.Level

	// Removed is true when the schema no longer exists in the current
	// version. Removed schemas carry no property rows.
	Removed bool

	// Properties lists the schema's current top-level properties by name.
	Properties []PropertyReport

	// Violations holds the violations not anchored to a listed property,
	// such as schema-level type changes or removals of properties that no
	// longer exist.
	Violations []rules.Violation
}

// PropertyReport describes one current-side property and the violations
// that touch it or anything nested beneath it.
type PropertyReport struct {
	Name       string
	Type       string
	Format     string
	Required   bool
	Nullable   bool
	Violations []rules.Violation
}

// BuildSchemaReports builds one report per schema match result, in the same
// order, against the current version's schema table.
func BuildSchemaReports(current map[string]*parser.Schema, results []rules.MatchResult) []SchemaReport {
	reports := make([]SchemaReport, 0, len(results))
	for _, result := range results {
		reports = append(reports, buildSchemaReport(current, result))
	}
	return reports
}

func buildSchemaReport(table map[string]*parser.Schema, result rules.MatchResult) SchemaReport {
	report := SchemaReport{Name: result.Name, Level: result.Level}
	schema, ok := table[result.Name]
	if !ok || schema == nil {
		report.Removed = !ok
		report.Violations = result.Violations
		return report
	}

	byProperty := map[string][]rules.Violation{}
	for _, v := range result.Violations {
		anchor := anchorProperty(v.Rule())
		if _, exists := schema.Properties[anchor]; anchor == "" || !exists {
			report.Violations = append(report.Violations, v)
			continue
		}
		byProperty[anchor] = append(byProperty[anchor], v)
	}

	for _, name := range maputil.SortedKeys(schema.Properties) {
		prop := schema.Properties[name]
		// A property declared as YAML null parses to a nil entry.
		if prop == nil {
			prop = &parser.Schema{}
		}
		report.Properties = append(report.Properties, PropertyReport{
			Name:       name,
			Type:       typeLabel(prop.TypeSet()),
			Format:     prop.Format,
			Required:   schema.IsRequired(name),
			Nullable:   prop.IsNullable(),
			Violations: byProperty[name],
		})
	}
	return report
}

// anchorProperty returns the top-level property a schema violation applies
// to, or "" for violations at the schema level.
func anchorProperty(r rules.Rule) string {
	var path string
	switch v := r.(type) {
	case rules.TypeChanged:
		path = v.PropertyPath
	case rules.PropertyAdded:
		path = propertyPath(v.PropertyPath, v.PropertyName)
	case rules.PropertyRemoved:
		path = propertyPath(v.PropertyPath, v.PropertyName)
	case rules.RequiredPropertyAdded:
		path = propertyPath(v.PropertyPath, v.PropertyName)
	case rules.RequiredPropertyRemoved:
		path = propertyPath(v.PropertyPath, v.PropertyName)
	case rules.EnumValuesAdded:
		path = v.PropertyPath
	case rules.EnumValuesRemoved:
		path = v.PropertyPath
	case rules.FormatChanged:
		path = v.PropertyPath
	case rules.NullableChanged:
		path = v.PropertyPath
	case rules.DescriptionChanged:
		path = v.PropertyPath
	default:
		return ""
	}
	anchor, _, _ := strings.Cut(path, ".")
	anchor, _, _ = strings.Cut(anchor, "[")
	return anchor
}

// RouteInfo identifies one current-version route and the named schemas its
// request body and responses reference.
type RouteInfo struct {
	Method  string
	Path    string
	Summary string

	// SchemaNames lists the referenced schema names, sorted and deduplicated.
	SchemaNames []string
}

// Routes enumerates the current version's routes with their schema
// references, ordered by "METHOD /path".
func (m *RouteMatcher) Routes() []RouteInfo {
	routes := collectRoutes(m.current)
	infos := make([]RouteInfo, 0, len(routes))
	for _, name := range maputil.SortedKeys(routes) {
		route := routes[name]
		infos = append(infos, RouteInfo{
			Method:      route.Method,
			Path:        route.Path,
			Summary:     route.Operation.Summary,
			SchemaNames: referencedSchemas(route.Operation),
		})
	}
	return infos
}

func referencedSchemas(op *parser.Operation) []string {
	seen := map[string]struct{}{}
	for _, media := range requestContent(op) {
		if name, ok := mediaSchemaName(media); ok {
			seen[name] = struct{}{}
		}
	}
	if op != nil {
		for _, resp := range op.Responses {
			for _, media := range responseContent(resp) {
				if name, ok := mediaSchemaName(media); ok {
					seen[name] = struct{}{}
				}
			}
		}
	}
	return maputil.SortedKeys(seen)
}
