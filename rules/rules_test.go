package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestViolationDelegation(t *testing.T) {
	v := NewViolation(TypeChanged{
		SchemaName:   "User",
		PropertyPath: "age",
		OldType:      "integer",
		NewType:      "string",
	})

	assert.Equal(t, "TypeChanged", v.Name())
	assert.Equal(t, LevelBreaking, v.Level())
	assert.Equal(t, CategorySchema, v.Category())
	assert.Equal(t, "schema: User, property: age", v.Context())
	assert.Equal(t, "Type changed from 'integer' to 'string'", v.Description())

	require.NotNil(t, v.Rule())
	assert.IsType(t, TypeChanged{}, v.Rule())
}

func TestViolationString(t *testing.T) {
	v := NewViolation(SchemaRemoved{SchemaName: "Legacy"})
	assert.Equal(t, "[breaking] SchemaRemoved: Schema 'Legacy' was removed (schema: Legacy)", v.String())
}

func TestAggregate(t *testing.T) {
	tests := []struct {
		name       string
		violations []Violation
		want       Level
	}{
		{
			name:       "empty list means unchanged",
			violations: nil,
			want:       LevelChange,
		},
		{
			name: "all informational",
			violations: []Violation{
				NewViolation(SchemaAdded{SchemaName: "New"}),
				NewViolation(DescriptionChanged{SchemaName: "User"}),
			},
			want: LevelChange,
		},
		{
			name: "warning dominates change",
			violations: []Violation{
				NewViolation(DescriptionChanged{SchemaName: "User"}),
				NewViolation(FormatChanged{SchemaName: "User", PropertyPath: "id"}),
			},
			want: LevelWarning,
		},
		{
			name: "breaking dominates everything",
			violations: []Violation{
				NewViolation(DescriptionChanged{SchemaName: "User"}),
				NewViolation(FormatChanged{SchemaName: "User", PropertyPath: "id"}),
				NewViolation(PropertyRemoved{SchemaName: "User", PropertyName: "id"}),
			},
			want: LevelBreaking,
		},
		{
			name: "single breaking violation",
			violations: []Violation{
				NewViolation(SchemaRemoved{SchemaName: "Legacy"}),
			},
			want: LevelBreaking,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Aggregate(tt.violations))
		})
	}
}

func TestNewMatchResult(t *testing.T) {
	violations := []Violation{
		NewViolation(PropertyAdded{SchemaName: "User", PropertyName: "nickname"}),
		NewViolation(RequiredPropertyAdded{SchemaName: "User", PropertyName: "email"}),
	}
	result := NewMatchResult("User", violations)

	assert.Equal(t, "User", result.Name)
	assert.Len(t, result.Violations, 2)
	assert.Equal(t, LevelBreaking, result.Level)
}

func TestNewMatchResultUnchanged(t *testing.T) {
	result := NewMatchResult("Pet", nil)
	assert.Equal(t, "Pet", result.Name)
	assert.Empty(t, result.Violations)
	assert.Equal(t, LevelChange, result.Level)
}

func TestSchemaContext(t *testing.T) {
	assert.Equal(t, "schema: User", schemaContext("User", ""))
	assert.Equal(t, "schema: User, property: email", schemaContext("User", "email"))
	assert.Equal(t, "schema: User, property: address.street", schemaContext("User", "address.street"))
}

func TestRouteContext(t *testing.T) {
	assert.Equal(t, "route: GET /users/{id}", routeContext("GET", "/users/{id}"))
}
