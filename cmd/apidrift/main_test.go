package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const baseSpec = `openapi: "3.0.0"
info:
  title: Test API
  version: "1.0.0"
paths: {}
components:
  schemas:
    User:
      type: object
      required: [id]
      properties:
        id:
          type: string
`

const breakingSpec = `openapi: "3.0.0"
info:
  title: Test API
  version: "2.0.0"
paths: {}
components:
  schemas:
    User:
      type: object
      required: [id, email]
      properties:
        id:
          type: string
        email:
          type: string
`

func writeSpec(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestHandleCompareNoBreakingChanges(t *testing.T) {
	path := writeSpec(t, "spec.yaml", baseSpec)
	out := filepath.Join(t.TempDir(), "report.html")

	code, err := handleCompare([]string{"-o", out, path, path})
	require.NoError(t, err)
	assert.Equal(t, 0, code)

	report, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(report), "No differences detected.")
}

func TestHandleCompareBreakingChangesExitCode(t *testing.T) {
	out := filepath.Join(t.TempDir(), "report.html")

	code, err := handleCompare([]string{
		"-o", out,
		writeSpec(t, "base.yaml", baseSpec),
		writeSpec(t, "current.yaml", breakingSpec),
	})
	require.NoError(t, err)
	assert.Equal(t, 1, code)

	report, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(report), "Required Property Added")
}

func TestHandleCompareJSONFormat(t *testing.T) {
	out := filepath.Join(t.TempDir(), "report.json")

	code, err := handleCompare([]string{
		"-format", "json",
		"-o", out,
		writeSpec(t, "base.yaml", baseSpec),
		writeSpec(t, "current.yaml", breakingSpec),
	})
	require.NoError(t, err)
	assert.Equal(t, 1, code)

	report, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(report), `"rule": "RequiredPropertyAdded"`)
}

func TestHandleComparePetstoreFixtures(t *testing.T) {
	out := filepath.Join(t.TempDir(), "report.html")

	code, err := handleCompare([]string{
		"-o", out,
		filepath.Join("testdata", "petstore-v1.yaml"),
		filepath.Join("testdata", "petstore-v2.yaml"),
	})
	require.NoError(t, err)
	assert.Equal(t, 1, code)

	report, err := os.ReadFile(out)
	require.NoError(t, err)
	html := string(report)
	assert.Contains(t, html, "Route Removed")
	assert.Contains(t, html, "Required Parameter Added")
	assert.Contains(t, html, "Enum Values Removed")
	assert.Contains(t, html, "Required Property Added")
	assert.Contains(t, html, "<h2>Current Routes</h2>")
	assert.Contains(t, html, `id="schema-Pet"`)
}

func TestHandleCompareUnsupportedFormat(t *testing.T) {
	path := writeSpec(t, "spec.yaml", baseSpec)
	_, err := handleCompare([]string{"-format", "pdf", path, path})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported format")
}

func TestHandleCompareMissingArgs(t *testing.T) {
	_, err := handleCompare([]string{"only-one.yaml"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exactly two")
}

func TestHandleCompareMissingFile(t *testing.T) {
	_, err := handleCompare([]string{
		filepath.Join(t.TempDir(), "missing.yaml"),
		filepath.Join(t.TempDir(), "missing.yaml"),
	})
	require.Error(t, err)
}
