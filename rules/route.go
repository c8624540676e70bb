package rules

import "fmt"

// RouteAdded reports an operation present only in the current version.
type RouteAdded struct {
	Path   string
	Method string
}

func (r RouteAdded) Name() string       { return "RouteAdded" }
func (r RouteAdded) Level() Level       { return LevelChange }
func (r RouteAdded) Category() Category { return CategoryEndpoint }
func (r RouteAdded) Context() string    { return routeContext(r.Method, r.Path) }
func (r RouteAdded) Description() string {
	return fmt.Sprintf("Route '%s %s' was added", r.Method, r.Path)
}

// RouteRemoved reports an operation present only in the base version.
type RouteRemoved struct {
	Path   string
	Method string
}

func (r RouteRemoved) Name() string       { return "RouteRemoved" }
func (r RouteRemoved) Level() Level       { return LevelBreaking }
func (r RouteRemoved) Category() Category { return CategoryEndpoint }
func (r RouteRemoved) Context() string    { return routeContext(r.Method, r.Path) }
func (r RouteRemoved) Description() string {
	return fmt.Sprintf("Route '%s %s' was removed", r.Method, r.Path)
}

// RouteSummaryChanged reports an edited operation summary.
type RouteSummaryChanged struct {
	Path       string
	Method     string
	OldSummary string
	NewSummary string
}

func (r RouteSummaryChanged) Name() string       { return "RouteSummaryChanged" }
func (r RouteSummaryChanged) Level() Level       { return LevelChange }
func (r RouteSummaryChanged) Category() Category { return CategoryEndpoint }
func (r RouteSummaryChanged) Context() string    { return routeContext(r.Method, r.Path) }
func (r RouteSummaryChanged) Description() string {
	return fmt.Sprintf("Summary changed from '%s' to '%s'", orNone(r.OldSummary), orNone(r.NewSummary))
}

// RouteDescriptionChanged reports an edited operation description.
type RouteDescriptionChanged struct {
	Path           string
	Method         string
	OldDescription string
	NewDescription string
}

func (r RouteDescriptionChanged) Name() string       { return "RouteDescriptionChanged" }
func (r RouteDescriptionChanged) Level() Level       { return LevelChange }
func (r RouteDescriptionChanged) Category() Category { return CategoryEndpoint }
func (r RouteDescriptionChanged) Context() string    { return routeContext(r.Method, r.Path) }
func (r RouteDescriptionChanged) Description() string {
	return fmt.Sprintf("Description changed from '%s' to '%s'",
		orNone(r.OldDescription), orNone(r.NewDescription))
}

// RequiredParameterAdded reports a new required parameter on an operation.
// Existing callers that do not supply it will be rejected.
type RequiredParameterAdded struct {
	Path          string
	Method        string
	ParameterName string
	ParameterIn   string
}

func (r RequiredParameterAdded) Name() string       { return "RequiredParameterAdded" }
func (r RequiredParameterAdded) Level() Level       { return LevelBreaking }
func (r RequiredParameterAdded) Category() Category { return CategoryParameter }
func (r RequiredParameterAdded) Context() string {
	return fmt.Sprintf("%s, parameter: %s", routeContext(r.Method, r.Path), r.ParameterName)
}
func (r RequiredParameterAdded) Description() string {
	return fmt.Sprintf("Required parameter '%s' (in: %s) was added", r.ParameterName, r.ParameterIn)
}

// ParameterRemoved reports a parameter present in base but absent in current.
type ParameterRemoved struct {
	Path          string
	Method        string
	ParameterName string
	ParameterIn   string
}

func (r ParameterRemoved) Name() string       { return "ParameterRemoved" }
func (r ParameterRemoved) Level() Level       { return LevelBreaking }
func (r ParameterRemoved) Category() Category { return CategoryParameter }
func (r ParameterRemoved) Context() string {
	return fmt.Sprintf("%s, parameter: %s", routeContext(r.Method, r.Path), r.ParameterName)
}
func (r ParameterRemoved) Description() string {
	return fmt.Sprintf("Parameter '%s' (in: %s) was removed", r.ParameterName, r.ParameterIn)
}

// ResponseStatusAdded reports a response status code new in current.
type ResponseStatusAdded struct {
	Path       string
	Method     string
	StatusCode string
}

func (r ResponseStatusAdded) Name() string       { return "ResponseStatusAdded" }
func (r ResponseStatusAdded) Level() Level       { return LevelChange }
func (r ResponseStatusAdded) Category() Category { return CategoryResponse }
func (r ResponseStatusAdded) Context() string {
	return fmt.Sprintf("%s, status: %s", routeContext(r.Method, r.Path), r.StatusCode)
}
func (r ResponseStatusAdded) Description() string {
	return fmt.Sprintf("Response status '%s' was added", r.StatusCode)
}

// ResponseStatusRemoved reports a response status code removed in current.
type ResponseStatusRemoved struct {
	Path       string
	Method     string
	StatusCode string
}

func (r ResponseStatusRemoved) Name() string       { return "ResponseStatusRemoved" }
func (r ResponseStatusRemoved) Level() Level       { return LevelBreaking }
func (r ResponseStatusRemoved) Category() Category { return CategoryResponse }
func (r ResponseStatusRemoved) Context() string {
	return fmt.Sprintf("%s, status: %s", routeContext(r.Method, r.Path), r.StatusCode)
}
func (r ResponseStatusRemoved) Description() string {
	return fmt.Sprintf("Response status '%s' was removed", r.StatusCode)
}

// RequestSchemaChanged reports a request body now referencing a different
// named schema for the same content type.
type RequestSchemaChanged struct {
	Path        string
	Method      string
	SchemaName  string
	ContentType string
}

func (r RequestSchemaChanged) Name() string       { return "RequestSchemaChanged" }
func (r RequestSchemaChanged) Level() Level       { return LevelBreaking }
func (r RequestSchemaChanged) Category() Category { return CategoryRequestBody }
func (r RequestSchemaChanged) Context() string    { return routeContext(r.Method, r.Path) }
func (r RequestSchemaChanged) Description() string {
	return fmt.Sprintf("Request schema '%s' changed (%s)", r.SchemaName, r.ContentType)
}

// ResponseSchemaChanged reports a response now referencing a different named
// schema for the same status code and content type.
type ResponseSchemaChanged struct {
	Path        string
	Method      string
	SchemaName  string
	ContentType string
	StatusCode  string
}

func (r ResponseSchemaChanged) Name() string       { return "ResponseSchemaChanged" }
func (r ResponseSchemaChanged) Level() Level       { return LevelBreaking }
func (r ResponseSchemaChanged) Category() Category { return CategoryResponse }
func (r ResponseSchemaChanged) Context() string {
	return fmt.Sprintf("%s, status: %s", routeContext(r.Method, r.Path), r.StatusCode)
}
func (r ResponseSchemaChanged) Description() string {
	return fmt.Sprintf("Response schema '%s' changed for status %s", r.SchemaName, r.StatusCode)
}

// RequestSchemaViolation surfaces a schema-category violation on the routes
// that consume the schema through their request bodies. The wrapped
// violation's severity carries through unchanged.
type RequestSchemaViolation struct {
	SchemaName  string
	ContentType string
	Violation   Violation
}

func (r RequestSchemaViolation) Name() string       { return "RequestSchemaViolation" }
func (r RequestSchemaViolation) Level() Level       { return r.Violation.Level() }
func (r RequestSchemaViolation) Category() Category { return CategoryRequestBody }
func (r RequestSchemaViolation) Context() string    { return r.Violation.Context() }
func (r RequestSchemaViolation) Description() string {
	return fmt.Sprintf("Request schema '%s' (%s) - %s",
		r.SchemaName, r.ContentType, r.Violation.Description())
}

// ResponseSchemaViolation surfaces a schema-category violation on the routes
// that produce the schema in a response.
type ResponseSchemaViolation struct {
	SchemaName  string
	ContentType string
	StatusCode  string
	Violation   Violation
}

func (r ResponseSchemaViolation) Name() string       { return "ResponseSchemaViolation" }
func (r ResponseSchemaViolation) Level() Level       { return r.Violation.Level() }
func (r ResponseSchemaViolation) Category() Category { return CategoryResponse }
func (r ResponseSchemaViolation) Context() string    { return r.Violation.Context() }
func (r ResponseSchemaViolation) Description() string {
	return fmt.Sprintf("Response schema '%s' (%s) for status %s - %s",
		r.SchemaName, r.ContentType, r.StatusCode, r.Violation.Description())
}
