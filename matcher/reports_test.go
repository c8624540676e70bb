package matcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apidrift/apidrift/parser"
)

func TestBuildSchemaReports(t *testing.T) {
	base := map[string]*parser.Schema{
		"User": {
			Type: "object",
			Properties: map[string]*parser.Schema{
				"id":  stringSchema(),
				"age": {Type: "integer"},
			},
			Required: []string{"id"},
		},
		"Legacy": {Type: "object"},
	}
	current := map[string]*parser.Schema{
		"User": {
			Type: "object",
			Properties: map[string]*parser.Schema{
				"id":    {Type: "string", Format: "uuid"},
				"email": {Type: "string", Nullable: true},
			},
			Required: []string{"id", "email"},
		},
	}

	results := NewSchemaMatcher(base, current).Match()
	reports := BuildSchemaReports(current, results)
	require.Len(t, reports, 2)

	legacy := reports[0]
	assert.Equal(t, "Legacy", legacy.Name)
	assert.True(t, legacy.Removed)
	assert.Empty(t, legacy.Properties)
	require.Len(t, legacy.Violations, 1)
	assert.Equal(t, "SchemaRemoved", legacy.Violations[0].Name())

	user := reports[1]
	assert.Equal(t, "User", user.Name)
	assert.False(t, user.Removed)
	require.Len(t, user.Properties, 2)

	email := user.Properties[0]
	assert.Equal(t, "email", email.Name)
	assert.Equal(t, "string", email.Type)
	assert.True(t, email.Required)
	assert.True(t, email.Nullable)
	require.Len(t, email.Violations, 1)
	assert.Equal(t, "RequiredPropertyAdded", email.Violations[0].Name())

	id := user.Properties[1]
	assert.Equal(t, "id", id.Name)
	assert.Equal(t, "uuid", id.Format)
	assert.True(t, id.Required)
	assert.False(t, id.Nullable)
	require.Len(t, id.Violations, 1)
	assert.Equal(t, "FormatChanged", id.Violations[0].Name())

	// The removed "age" property has no current-side row; its violation
	// stays at the schema level.
	require.Len(t, user.Violations, 1)
	assert.Equal(t, "PropertyRemoved", user.Violations[0].Name())
}

func TestBuildSchemaReportsNestedAnchor(t *testing.T) {
	base := map[string]*parser.Schema{
		"Order": {
			Type: "object",
			Properties: map[string]*parser.Schema{
				"address": objectSchema(map[string]*parser.Schema{
					"zip": stringSchema(),
				}),
				"tags": {Type: "array", Items: stringSchema()},
			},
		},
	}
	current := map[string]*parser.Schema{
		"Order": {
			Type: "object",
			Properties: map[string]*parser.Schema{
				"address": objectSchema(map[string]*parser.Schema{
					"zip": {Type: "integer"},
				}),
				"tags": {Type: "array", Items: &parser.Schema{Type: "integer"}},
			},
		},
	}

	results := NewSchemaMatcher(base, current).Match()
	reports := BuildSchemaReports(current, results)
	require.Len(t, reports, 1)

	order := reports[0]
	assert.Empty(t, order.Violations)
	require.Len(t, order.Properties, 2)

	// Nested and items violations anchor to the top-level property.
	address := order.Properties[0]
	assert.Equal(t, "address", address.Name)
	require.Len(t, address.Violations, 1)
	assert.Equal(t, "TypeChanged", address.Violations[0].Name())

	tags := order.Properties[1]
	assert.Equal(t, "tags", tags.Name)
	require.Len(t, tags.Violations, 1)
	assert.Equal(t, "TypeChanged", tags.Violations[0].Name())
}

func TestBuildSchemaReportsNullProperty(t *testing.T) {
	base := map[string]*parser.Schema{
		"User": objectSchema(map[string]*parser.Schema{
			"name": stringSchema(),
		}),
	}
	// A property declared as YAML null ("name:") parses to a nil entry.
	current := map[string]*parser.Schema{
		"User": objectSchema(map[string]*parser.Schema{
			"name": nil,
		}),
	}

	results := NewSchemaMatcher(base, current).Match()
	reports := BuildSchemaReports(current, results)
	require.Len(t, reports, 1)

	user := reports[0]
	require.Len(t, user.Properties, 1)

	name := user.Properties[0]
	assert.Equal(t, "name", name.Name)
	assert.Equal(t, "(none)", name.Type)
	assert.False(t, name.Required)
	assert.False(t, name.Nullable)
	require.Len(t, name.Violations, 1)
	assert.Equal(t, "TypeChanged", name.Violations[0].Name())
}

func TestRouteMatcherRoutes(t *testing.T) {
	doc := &parser.Document{
		OpenAPI: "3.0.3",
		Paths: map[string]*parser.PathItem{
			"/users": {
				Get: &parser.Operation{
					Summary: "List users",
					Responses: map[string]*parser.Response{
						"200": {Content: map[string]*parser.MediaType{
							"application/json": {Schema: refSchema("UserList")},
						}},
					},
				},
				Post: &parser.Operation{
					RequestBody: &parser.RequestBody{Content: map[string]*parser.MediaType{
						"application/json": {Schema: refSchema("User")},
					}},
					Responses: map[string]*parser.Response{
						"201": {Content: map[string]*parser.MediaType{
							"application/json": {Schema: refSchema("User")},
						}},
					},
				},
			},
		},
	}

	routes := NewRouteMatcher(doc, doc, nil).Routes()
	require.Len(t, routes, 2)

	assert.Equal(t, "GET", routes[0].Method)
	assert.Equal(t, "/users", routes[0].Path)
	assert.Equal(t, "List users", routes[0].Summary)
	assert.Equal(t, []string{"UserList"}, routes[0].SchemaNames)

	assert.Equal(t, "POST", routes[1].Method)
	assert.Equal(t, []string{"User"}, routes[1].SchemaNames)
}

func TestRoutesNilDocument(t *testing.T) {
	assert.Empty(t, NewRouteMatcher(nil, nil, nil).Routes())
}
