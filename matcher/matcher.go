package matcher

import (
	"fmt"
	"maps"
	"strings"

	"github.com/apidrift/apidrift/internal/maputil"
	"github.com/apidrift/apidrift/parser"
	"github.com/apidrift/apidrift/rules"
)

// SchemaMatcher compares the named component schema tables of two document
// versions and classifies every detected difference. Neither table is
// mutated; a matcher holds no state across Match calls.
type SchemaMatcher struct {
	base    map[string]*parser.Schema
	current map[string]*parser.Schema
}

// NewSchemaMatcher creates a matcher over two named schema tables. Either
// table may be nil or empty.
func NewSchemaMatcher(base, current map[string]*parser.Schema) *SchemaMatcher {
	return &SchemaMatcher{base: base, current: current}
}

// Match produces one MatchResult per schema name appearing in either table,
// ordered lexicographically by name. Repeated calls on the same tables yield
// identical results, including violation order.
func (m *SchemaMatcher) Match() []rules.MatchResult {
	names := maputil.SortedUnionKeys(m.base, m.current)
	results := make([]rules.MatchResult, 0, len(names))
	for _, name := range names {
		results = append(results, m.matchSchema(name))
	}
	return results
}

func (m *SchemaMatcher) matchSchema(name string) rules.MatchResult {
	baseSchema, inBase := m.base[name]
	currentSchema, inCurrent := m.current[name]

	switch {
	case !inCurrent:
		return rules.NewMatchResult(name, []rules.Violation{
			rules.NewViolation(rules.SchemaRemoved{SchemaName: name}),
		})
	case !inBase:
		return rules.NewMatchResult(name, []rules.Violation{
			rules.NewViolation(rules.SchemaAdded{SchemaName: name}),
		})
	}

	c := &comparison{matcher: m, schemaName: name}
	seed := map[string]struct{}{name: {}}
	c.compare(baseSchema, currentSchema, "", 0, seed, maps.Clone(seed))
	return rules.NewMatchResult(name, c.violations)
}

// comparison accumulates the violations for one schema name while walking
// its base and current nodes in parallel.
type comparison struct {
	matcher    *SchemaMatcher
	schemaName string
	violations []rules.Violation
}

func (c *comparison) report(r rules.Rule) {
	c.violations = append(c.violations, rules.NewViolation(r))
}

// compare walks a matched pair of nodes at the given property path. Each
// side resolves references against its own document's table with its own
// visited set; the sets are cloned per branch so sibling properties may
// legitimately reference the same schema.
func (c *comparison) compare(base, current *parser.Schema, path string, depth int, baseVisited, currentVisited map[string]struct{}) {
	if depth > maxCompareDepth {
		return
	}
	baseVisited = maps.Clone(baseVisited)
	currentVisited = maps.Clone(currentVisited)

	base, cycle, badRef := deref(base, c.matcher.base, baseVisited)
	if badRef != "" {
		c.report(rules.SchemaUnresolved{SchemaName: c.schemaName, Ref: badRef})
		return
	}
	if cycle {
		return
	}
	current, cycle, badRef = deref(current, c.matcher.current, currentVisited)
	if badRef != "" {
		c.report(rules.SchemaUnresolved{SchemaName: c.schemaName, Ref: badRef})
		return
	}
	if cycle {
		return
	}
	if base == nil {
		base = &parser.Schema{}
	}
	if current == nil {
		current = &parser.Schema{}
	}

	c.compareType(base, current, path)
	c.compareProperties(base, current, path, depth, baseVisited, currentVisited)
	c.compareEnum(base, current, path)
	c.compareFormat(base, current, path)
	c.compareNullable(base, current, path)
	c.compareDescription(base, current, path)
	c.compareItems(base, current, path, depth, baseVisited, currentVisited)
}

func (c *comparison) compareType(base, current *parser.Schema, path string) {
	oldType := typeLabel(base.TypeSet())
	newType := typeLabel(current.TypeSet())
	if oldType != newType {
		c.report(rules.TypeChanged{
			SchemaName:   c.schemaName,
			PropertyPath: path,
			OldType:      oldType,
			NewType:      newType,
		})
	}
}

func (c *comparison) compareProperties(base, current *parser.Schema, path string, depth int, baseVisited, currentVisited map[string]struct{}) {
	for _, name := range maputil.SortedUnionKeys(base.Properties, current.Properties) {
		baseProp, inBase := base.Properties[name]
		currentProp, inCurrent := current.Properties[name]

		switch {
		case !inCurrent:
			// Removal is one event regardless of required-ness; de-requiring
			// is only reported for properties that still exist.
			c.report(rules.PropertyRemoved{
				SchemaName:   c.schemaName,
				PropertyPath: path,
				PropertyName: name,
				WasRequired:  base.IsRequired(name),
			})
		case !inBase:
			if current.IsRequired(name) {
				c.report(rules.RequiredPropertyAdded{
					SchemaName:   c.schemaName,
					PropertyPath: path,
					PropertyName: name,
				})
			} else {
				c.report(rules.PropertyAdded{
					SchemaName:   c.schemaName,
					PropertyPath: path,
					PropertyName: name,
				})
			}
		default:
			baseRequired := base.IsRequired(name)
			currentRequired := current.IsRequired(name)
			switch {
			case baseRequired && !currentRequired:
				c.report(rules.RequiredPropertyRemoved{
					SchemaName:   c.schemaName,
					PropertyPath: path,
					PropertyName: name,
				})
			case !baseRequired && currentRequired:
				c.report(rules.RequiredPropertyAdded{
					SchemaName:   c.schemaName,
					PropertyPath: path,
					PropertyName: name,
				})
			}
			c.compare(baseProp, currentProp, propertyPath(path, name), depth+1, baseVisited, currentVisited)
		}
	}
}

func (c *comparison) compareEnum(base, current *parser.Schema, path string) {
	if removed := enumDifference(base.Enum, current.Enum); len(removed) > 0 {
		c.report(rules.EnumValuesRemoved{
			SchemaName:   c.schemaName,
			PropertyPath: path,
			Values:       removed,
		})
	}
	if added := enumDifference(current.Enum, base.Enum); len(added) > 0 {
		c.report(rules.EnumValuesAdded{
			SchemaName:   c.schemaName,
			PropertyPath: path,
			Values:       added,
		})
	}
}

func (c *comparison) compareFormat(base, current *parser.Schema, path string) {
	if base.Format != current.Format {
		c.report(rules.FormatChanged{
			SchemaName:   c.schemaName,
			PropertyPath: path,
			OldFormat:    base.Format,
			NewFormat:    current.Format,
		})
	}
}

func (c *comparison) compareNullable(base, current *parser.Schema, path string) {
	oldNullable := base.IsNullable()
	newNullable := current.IsNullable()
	if oldNullable != newNullable {
		c.report(rules.NullableChanged{
			SchemaName:   c.schemaName,
			PropertyPath: path,
			OldNullable:  oldNullable,
			NewNullable:  newNullable,
		})
	}
}

func (c *comparison) compareDescription(base, current *parser.Schema, path string) {
	if base.Description != current.Description {
		c.report(rules.DescriptionChanged{
			SchemaName:     c.schemaName,
			PropertyPath:   path,
			OldDescription: base.Description,
			NewDescription: current.Description,
		})
	}
}

func (c *comparison) compareItems(base, current *parser.Schema, path string, depth int, baseVisited, currentVisited map[string]struct{}) {
	if base.Items == nil && current.Items == nil {
		return
	}
	c.compare(base.Items, current.Items, path+"[]", depth+1, baseVisited, currentVisited)
}

// propertyPath joins a parent path with a property name.
func propertyPath(parent, name string) string {
	if parent == "" {
		return name
	}
	return parent + "." + name
}

// typeLabel renders a type set for reporting. The empty set means the node
// declared no type.
func typeLabel(types []string) string {
	if len(types) == 0 {
		return "(none)"
	}
	return strings.Join(types, ", ")
}

// enumDifference returns the values of a absent from b, preserving a's
// order. Values compare by their rendered form, matching how they are
// reported.
func enumDifference(a, b []any) []any {
	if len(a) == 0 {
		return nil
	}
	present := make(map[string]struct{}, len(b))
	for _, v := range b {
		present[fmt.Sprintf("%v", v)] = struct{}{}
	}
	var diff []any
	for _, v := range a {
		if _, ok := present[fmt.Sprintf("%v", v)]; !ok {
			diff = append(diff, v)
		}
	}
	return diff
}
