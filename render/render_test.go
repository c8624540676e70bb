package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForFormat(t *testing.T) {
	r, ok := ForFormat("json")
	require.True(t, ok)
	assert.Equal(t, "json", r.FileExtension())

	r, ok = ForFormat("HTML")
	require.True(t, ok)
	assert.Equal(t, "html", r.FileExtension())

	_, ok = ForFormat("pdf")
	assert.False(t, ok)
}

func TestDisplayName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"RequiredPropertyAdded", "Required Property Added"},
		{"SchemaRemoved", "Schema Removed"},
		{"TypeChanged", "Type Changed"},
		{"RouteAdded", "Route Added"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, displayName(tt.in))
	}
}
