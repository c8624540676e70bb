package matcher

import (
	"github.com/apidrift/apidrift/internal/maputil"
	"github.com/apidrift/apidrift/parser"
	"github.com/apidrift/apidrift/rules"
)

// RouteMatcher compares the operations of two document versions. It follows
// the same contract as SchemaMatcher: one MatchResult per route present in
// either version, in a stable order, with violations classified by the rules
// package.
//
// When constructed with the schema results of the same comparison run, it
// additionally surfaces each referenced schema's violations on the routes
// that consume that schema through request bodies and responses.
type RouteMatcher struct {
	base    *parser.Document
	current *parser.Document

	// schemaViolations indexes the run's schema violations by schema name.
	schemaViolations map[string][]rules.Violation
}

// NewRouteMatcher creates a matcher over two parsed documents. schemaResults
// may be nil, in which case routes report only their own differences.
func NewRouteMatcher(base, current *parser.Document, schemaResults []rules.MatchResult) *RouteMatcher {
	violations := make(map[string][]rules.Violation, len(schemaResults))
	for _, result := range schemaResults {
		if len(result.Violations) > 0 {
			violations[result.Name] = result.Violations
		}
	}
	return &RouteMatcher{base: base, current: current, schemaViolations: violations}
}

// routeOperation pairs an operation with its identity.
type routeOperation struct {
	Method    string
	Path      string
	Operation *parser.Operation
}

// Match produces one MatchResult per "METHOD /path" route appearing in
// either version, ordered lexicographically by that identifier.
func (m *RouteMatcher) Match() []rules.MatchResult {
	baseRoutes := collectRoutes(m.base)
	currentRoutes := collectRoutes(m.current)

	names := maputil.SortedUnionKeys(baseRoutes, currentRoutes)
	results := make([]rules.MatchResult, 0, len(names))
	for _, name := range names {
		results = append(results, m.matchRoute(name, baseRoutes, currentRoutes))
	}
	return results
}

func collectRoutes(d *parser.Document) map[string]routeOperation {
	routes := map[string]routeOperation{}
	if d == nil {
		return routes
	}
	for path, item := range d.Paths {
		for method, op := range item.Operations() {
			routes[method+" "+path] = routeOperation{Method: method, Path: path, Operation: op}
		}
	}
	return routes
}

func (m *RouteMatcher) matchRoute(name string, baseRoutes, currentRoutes map[string]routeOperation) rules.MatchResult {
	base, inBase := baseRoutes[name]
	current, inCurrent := currentRoutes[name]

	switch {
	case !inCurrent:
		return rules.NewMatchResult(name, []rules.Violation{
			rules.NewViolation(rules.RouteRemoved{Path: base.Path, Method: base.Method}),
		})
	case !inBase:
		return rules.NewMatchResult(name, []rules.Violation{
			rules.NewViolation(rules.RouteAdded{Path: current.Path, Method: current.Method}),
		})
	}

	var violations []rules.Violation
	report := func(r rules.Rule) {
		violations = append(violations, rules.NewViolation(r))
	}

	baseOp, currentOp := base.Operation, current.Operation

	// Summary edits only count when both versions carry one; adding or
	// dropping a summary is not drift worth reporting.
	if baseOp.Summary != "" && currentOp.Summary != "" && baseOp.Summary != currentOp.Summary {
		report(rules.RouteSummaryChanged{
			Path:       base.Path,
			Method:     base.Method,
			OldSummary: baseOp.Summary,
			NewSummary: currentOp.Summary,
		})
	}
	if baseOp.Description != currentOp.Description {
		report(rules.RouteDescriptionChanged{
			Path:           base.Path,
			Method:         base.Method,
			OldDescription: baseOp.Description,
			NewDescription: currentOp.Description,
		})
	}

	m.compareParameters(base, current, report)
	m.compareRequestBody(base, current, report)
	m.compareResponses(base, current, report)

	return rules.NewMatchResult(name, violations)
}

func (m *RouteMatcher) compareParameters(base, current routeOperation, report func(rules.Rule)) {
	baseParams := parametersByKey(base.Operation.Parameters)
	currentParams := parametersByKey(current.Operation.Parameters)

	for _, key := range maputil.SortedUnionKeys(baseParams, currentParams) {
		baseParam, inBase := baseParams[key]
		currentParam, inCurrent := currentParams[key]
		switch {
		case !inCurrent:
			report(rules.ParameterRemoved{
				Path:          base.Path,
				Method:        base.Method,
				ParameterName: baseParam.Name,
				ParameterIn:   baseParam.In,
			})
		case !inBase:
			if currentParam.Required {
				report(rules.RequiredParameterAdded{
					Path:          current.Path,
					Method:        current.Method,
					ParameterName: currentParam.Name,
					ParameterIn:   currentParam.In,
				})
			}
		default:
			if !baseParam.Required && currentParam.Required {
				report(rules.RequiredParameterAdded{
					Path:          current.Path,
					Method:        current.Method,
					ParameterName: currentParam.Name,
					ParameterIn:   currentParam.In,
				})
			}
		}
	}
}

func parametersByKey(params []*parser.Parameter) map[string]*parser.Parameter {
	byKey := map[string]*parser.Parameter{}
	for _, p := range params {
		if p != nil {
			byKey[p.In+":"+p.Name] = p
		}
	}
	return byKey
}

func (m *RouteMatcher) compareRequestBody(base, current routeOperation, report func(rules.Rule)) {
	baseContent := requestContent(base.Operation)
	currentContent := requestContent(current.Operation)

	for _, contentType := range maputil.SortedUnionKeys(baseContent, currentContent) {
		baseMedia, inBase := baseContent[contentType]
		currentMedia, inCurrent := currentContent[contentType]
		if !inBase || !inCurrent {
			continue
		}
		baseName, baseOK := mediaSchemaName(baseMedia)
		currentName, currentOK := mediaSchemaName(currentMedia)
		if !baseOK || !currentOK {
			continue
		}
		if baseName != currentName {
			report(rules.RequestSchemaChanged{
				Path:        base.Path,
				Method:      base.Method,
				SchemaName:  currentName,
				ContentType: contentType,
			})
			continue
		}
		for _, v := range m.schemaViolations[baseName] {
			report(rules.RequestSchemaViolation{
				SchemaName:  baseName,
				ContentType: contentType,
				Violation:   v,
			})
		}
	}
}

func (m *RouteMatcher) compareResponses(base, current routeOperation, report func(rules.Rule)) {
	baseResponses := base.Operation.Responses
	currentResponses := current.Operation.Responses

	for _, status := range maputil.SortedUnionKeys(baseResponses, currentResponses) {
		baseResp, inBase := baseResponses[status]
		currentResp, inCurrent := currentResponses[status]
		switch {
		case !inCurrent:
			report(rules.ResponseStatusRemoved{
				Path:       base.Path,
				Method:     base.Method,
				StatusCode: status,
			})
		case !inBase:
			report(rules.ResponseStatusAdded{
				Path:       current.Path,
				Method:     current.Method,
				StatusCode: status,
			})
		default:
			m.compareResponseContent(base, status, baseResp, currentResp, report)
		}
	}
}

func (m *RouteMatcher) compareResponseContent(base routeOperation, status string, baseResp, currentResp *parser.Response, report func(rules.Rule)) {
	baseContent := responseContent(baseResp)
	currentContent := responseContent(currentResp)

	for _, contentType := range maputil.SortedUnionKeys(baseContent, currentContent) {
		baseMedia, inBase := baseContent[contentType]
		currentMedia, inCurrent := currentContent[contentType]
		if !inBase || !inCurrent {
			continue
		}
		baseName, baseOK := mediaSchemaName(baseMedia)
		currentName, currentOK := mediaSchemaName(currentMedia)
		if !baseOK || !currentOK {
			continue
		}
		if baseName != currentName {
			report(rules.ResponseSchemaChanged{
				Path:        base.Path,
				Method:      base.Method,
				SchemaName:  currentName,
				ContentType: contentType,
				StatusCode:  status,
			})
			continue
		}
		for _, v := range m.schemaViolations[baseName] {
			report(rules.ResponseSchemaViolation{
				SchemaName:  baseName,
				ContentType: contentType,
				StatusCode:  status,
				Violation:   v,
			})
		}
	}
}

func requestContent(op *parser.Operation) map[string]*parser.MediaType {
	if op == nil || op.RequestBody == nil {
		return nil
	}
	return op.RequestBody.Content
}

func responseContent(resp *parser.Response) map[string]*parser.MediaType {
	if resp == nil {
		return nil
	}
	return resp.Content
}

// mediaSchemaName reports the named schema a media type references, when it
// references one by internal pointer.
func mediaSchemaName(media *parser.MediaType) (string, bool) {
	if media == nil || media.Schema == nil || !media.Schema.IsRef() {
		return "", false
	}
	return schemaRefName(media.Schema.Ref)
}
