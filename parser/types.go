package parser

import "sort"

// Document is a parsed OpenAPI 3.x specification, reduced to the parts the
// matcher compares: metadata, paths, and component schemas.
type Document struct {
	OpenAPI    string               `yaml:"openapi" json:"openapi"`
	Info       *Info                `yaml:"info,omitempty" json:"info,omitempty"`
	Paths      map[string]*PathItem `yaml:"paths,omitempty" json:"paths,omitempty"`
	Components *Components          `yaml:"components,omitempty" json:"components,omitempty"`
}

// Schemas returns the document's named component schemas, or an empty map
// when the document declares none. The returned map is the document's own
// schema table; callers must treat it as read-only.
func (d *Document) Schemas() map[string]*Schema {
	if d == nil || d.Components == nil || d.Components.Schemas == nil {
		return map[string]*Schema{}
	}
	return d.Components.Schemas
}

// Info holds document metadata.
type Info struct {
	Title       string `yaml:"title,omitempty" json:"title,omitempty"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	Version     string `yaml:"version,omitempty" json:"version,omitempty"`
}

// Components holds the reusable objects of the document. Only schemas
// participate in comparison.
type Components struct {
	Schemas map[string]*Schema `yaml:"schemas,omitempty" json:"schemas,omitempty"`
}

// PathItem describes the operations available on a single path.
type PathItem struct {
	Get     *Operation `yaml:"get,omitempty" json:"get,omitempty"`
	Put     *Operation `yaml:"put,omitempty" json:"put,omitempty"`
	Post    *Operation `yaml:"post,omitempty" json:"post,omitempty"`
	Delete  *Operation `yaml:"delete,omitempty" json:"delete,omitempty"`
	Options *Operation `yaml:"options,omitempty" json:"options,omitempty"`
	Head    *Operation `yaml:"head,omitempty" json:"head,omitempty"`
	Patch   *Operation `yaml:"patch,omitempty" json:"patch,omitempty"`
}

// Operations returns the item's defined operations keyed by upper-case HTTP
// method. Absent operations are omitted.
func (p *PathItem) Operations() map[string]*Operation {
	if p == nil {
		return map[string]*Operation{}
	}
	ops := map[string]*Operation{}
	for method, op := range map[string]*Operation{
		"GET":     p.Get,
		"PUT":     p.Put,
		"POST":    p.Post,
		"DELETE":  p.Delete,
		"OPTIONS": p.Options,
		"HEAD":    p.Head,
		"PATCH":   p.Patch,
	} {
		if op != nil {
			ops[method] = op
		}
	}
	return ops
}

// Operation describes a single API operation on a path.
type Operation struct {
	Summary     string               `yaml:"summary,omitempty" json:"summary,omitempty"`
	Description string               `yaml:"description,omitempty" json:"description,omitempty"`
	OperationID string               `yaml:"operationId,omitempty" json:"operationId,omitempty"`
	Parameters  []*Parameter         `yaml:"parameters,omitempty" json:"parameters,omitempty"`
	RequestBody *RequestBody         `yaml:"requestBody,omitempty" json:"requestBody,omitempty"`
	Responses   map[string]*Response `yaml:"responses,omitempty" json:"responses,omitempty"`
	Deprecated  bool                 `yaml:"deprecated,omitempty" json:"deprecated,omitempty"`
}

// Parameter describes a single operation parameter.
type Parameter struct {
	Name        string  `yaml:"name,omitempty" json:"name,omitempty"`
	In          string  `yaml:"in,omitempty" json:"in,omitempty"`
	Description string  `yaml:"description,omitempty" json:"description,omitempty"`
	Required    bool    `yaml:"required,omitempty" json:"required,omitempty"`
	Schema      *Schema `yaml:"schema,omitempty" json:"schema,omitempty"`
}

// RequestBody describes a request body.
type RequestBody struct {
	Description string                `yaml:"description,omitempty" json:"description,omitempty"`
	Required    bool                  `yaml:"required,omitempty" json:"required,omitempty"`
	Content     map[string]*MediaType `yaml:"content,omitempty" json:"content,omitempty"`
}

// Response describes a single response from an operation.
type Response struct {
	Description string                `yaml:"description,omitempty" json:"description,omitempty"`
	Content     map[string]*MediaType `yaml:"content,omitempty" json:"content,omitempty"`
}

// MediaType describes a media type's schema.
type MediaType struct {
	Schema *Schema `yaml:"schema,omitempty" json:"schema,omitempty"`
}

// Schema is a named or anonymous type description, or a reference to one.
// A node with a non-empty Ref is a pointer to another named schema in the
// same document; it never owns the target and is resolved on demand.
type Schema struct {
	Ref string `yaml:"$ref,omitempty" json:"$ref,omitempty"`

	// Type is the declared type: a string, or a []string union (OAS 3.1+).
	Type        any                `yaml:"type,omitempty" json:"type,omitempty"`
	Properties  map[string]*Schema `yaml:"properties,omitempty" json:"properties,omitempty"`
	Required    []string           `yaml:"required,omitempty" json:"required,omitempty"`
	Enum        []any              `yaml:"enum,omitempty" json:"enum,omitempty"`
	Format      string             `yaml:"format,omitempty" json:"format,omitempty"`
	Description string             `yaml:"description,omitempty" json:"description,omitempty"`
	Items       *Schema            `yaml:"items,omitempty" json:"items,omitempty"`

	// Nullable is the OAS 3.0 flag; in 3.1+ the same intent is expressed as
	// a "null" entry in the type union. Use IsNullable for either form.
	Nullable bool `yaml:"nullable,omitempty" json:"nullable,omitempty"`
}

// IsRef reports whether this node is a reference rather than a concrete schema.
func (s *Schema) IsRef() bool {
	return s != nil && s.Ref != ""
}

// TypeSet returns the declared types as a sorted slice, normalizing the
// string and []string forms. A node with no declared type returns nil.
// The "null" pseudo-type is excluded; it is reported via IsNullable instead.
func (s *Schema) TypeSet() []string {
	if s == nil || s.Type == nil {
		return nil
	}
	var types []string
	switch t := s.Type.(type) {
	case string:
		if t != "null" {
			types = []string{t}
		}
	case []any:
		for _, v := range t {
			if str, ok := v.(string); ok && str != "null" {
				types = append(types, str)
			}
		}
	case []string:
		for _, str := range t {
			if str != "null" {
				types = append(types, str)
			}
		}
	}
	sort.Strings(types)
	return types
}

// IsNullable reports whether the node admits null, either via the OAS 3.0
// nullable flag or a "null" entry in the 3.1+ type union.
func (s *Schema) IsNullable() bool {
	if s == nil {
		return false
	}
	if s.Nullable {
		return true
	}
	switch t := s.Type.(type) {
	case string:
		return t == "null"
	case []any:
		for _, v := range t {
			if str, ok := v.(string); ok && str == "null" {
				return true
			}
		}
	case []string:
		for _, str := range t {
			if str == "null" {
				return true
			}
		}
	}
	return false
}

// IsRequired reports whether name is listed in the node's required set.
func (s *Schema) IsRequired(name string) bool {
	if s == nil {
		return false
	}
	for _, req := range s.Required {
		if req == name {
			return true
		}
	}
	return false
}
