// Package parser deserializes OpenAPI 3.x documents (YAML or JSON) into the
// in-memory form the matcher package compares.
//
// The parser is deliberately narrow: it reads only the parts of a document
// that participate in drift detection (info, paths, component schemas) and
// performs no validation beyond syntactic well-formedness. Reference
// resolution is the matcher's job, since references must be resolved against
// the owning document during comparison, not at load time.
package parser

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"
	"go.yaml.in/yaml/v4"
)

// SourceFormat represents the format of a source specification file.
type SourceFormat string

const (
	// SourceFormatYAML indicates a YAML source document.
	SourceFormatYAML SourceFormat = "yaml"
	// SourceFormatJSON indicates a JSON source document.
	SourceFormatJSON SourceFormat = "json"
)

// maxFileSize bounds how large a specification file may be. 10MB covers every
// real-world spec we have seen while keeping pathological inputs out.
const maxFileSize = 10 * 1024 * 1024

// Parser handles OpenAPI specification parsing.
type Parser struct {
	// MaxFileSize is the maximum file size in bytes. Zero means the
	// 10MB default.
	MaxFileSize int64
}

// New creates a new Parser instance with default settings.
func New() *Parser {
	return &Parser{}
}

// Parse reads and deserializes the specification at path. The format is
// detected from the file extension: .json is decoded as JSON, .yaml and .yml
// as YAML. Any other extension is an error.
func (p *Parser) Parse(path string) (*Document, error) {
	format, err := DetectFormat(path)
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat %q: %w", path, err)
	}
	limit := p.MaxFileSize
	if limit == 0 {
		limit = maxFileSize
	}
	if info.Size() > limit {
		return nil, fmt.Errorf("file %q exceeds maximum size of %d bytes", path, limit)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %q: %w", path, err)
	}

	doc, err := p.ParseBytes(data, format)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %q: %w", path, err)
	}
	return doc, nil
}

// ParseBytes deserializes an in-memory specification in the given format.
func (p *Parser) ParseBytes(data []byte, format SourceFormat) (*Document, error) {
	var doc Document
	switch format {
	case SourceFormatJSON:
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("invalid JSON document: %w", err)
		}
	case SourceFormatYAML:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("invalid YAML document: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported source format %q", format)
	}

	if !strings.HasPrefix(doc.OpenAPI, "3.") {
		return nil, fmt.Errorf("unsupported OpenAPI version %q (only 3.x is supported)", doc.OpenAPI)
	}
	return &doc, nil
}

// Parse is a convenience wrapper around New().Parse.
func Parse(path string) (*Document, error) {
	return New().Parse(path)
}

// ParseBytes is a convenience wrapper around New().ParseBytes.
func ParseBytes(data []byte, format SourceFormat) (*Document, error) {
	return New().ParseBytes(data, format)
}

// DetectFormat determines the source format from a file extension.
func DetectFormat(path string) (SourceFormat, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return SourceFormatJSON, nil
	case ".yaml", ".yml":
		return SourceFormatYAML, nil
	default:
		return "", fmt.Errorf("unable to determine file format for %q (supported: json, yaml, yml)", path)
	}
}
