package rules

import (
	"fmt"
	"strings"
)

// SchemaAdded reports a schema present only in the current version.
type SchemaAdded struct {
	SchemaName string
}

func (r SchemaAdded) Name() string       { return "SchemaAdded" }
func (r SchemaAdded) Level() Level       { return LevelChange }
func (r SchemaAdded) Category() Category { return CategorySchema }
func (r SchemaAdded) Context() string    { return schemaContext(r.SchemaName, "") }
func (r SchemaAdded) Description() string {
	return fmt.Sprintf("Schema '%s' was added", r.SchemaName)
}

// SchemaRemoved reports a schema present only in the base version.
type SchemaRemoved struct {
	SchemaName string
}

func (r SchemaRemoved) Name() string       { return "SchemaRemoved" }
func (r SchemaRemoved) Level() Level       { return LevelBreaking }
func (r SchemaRemoved) Category() Category { return CategorySchema }
func (r SchemaRemoved) Context() string    { return schemaContext(r.SchemaName, "") }
func (r SchemaRemoved) Description() string {
	return fmt.Sprintf("Schema '%s' was removed", r.SchemaName)
}

// SchemaUnresolved reports a reference that does not resolve within its own
// document. It is a diagnostic note, not a detected difference: comparison
// stops for the affected schema but the run continues.
type SchemaUnresolved struct {
	SchemaName string
	Ref        string
}

func (r SchemaUnresolved) Name() string       { return "SchemaUnresolved" }
func (r SchemaUnresolved) Level() Level       { return LevelChange }
func (r SchemaUnresolved) Category() Category { return CategorySchema }
func (r SchemaUnresolved) Context() string    { return schemaContext(r.SchemaName, "") }
func (r SchemaUnresolved) Description() string {
	return fmt.Sprintf("Schema '%s' has an unresolvable reference '%s'", r.SchemaName, r.Ref)
}

// TypeChanged reports a difference in the declared type set.
type TypeChanged struct {
	SchemaName   string
	PropertyPath string
	OldType      string
	NewType      string
}

func (r TypeChanged) Name() string       { return "TypeChanged" }
func (r TypeChanged) Level() Level       { return LevelBreaking }
func (r TypeChanged) Category() Category { return CategorySchema }
func (r TypeChanged) Context() string    { return schemaContext(r.SchemaName, r.PropertyPath) }
func (r TypeChanged) Description() string {
	return fmt.Sprintf("Type changed from '%s' to '%s'", r.OldType, r.NewType)
}

// PropertyAdded reports a new optional property in the current version.
// A new property that is also required is reported as RequiredPropertyAdded
// instead, never as both.
type PropertyAdded struct {
	SchemaName   string
	PropertyPath string
	PropertyName string
}

func (r PropertyAdded) Name() string       { return "PropertyAdded" }
func (r PropertyAdded) Level() Level       { return LevelChange }
func (r PropertyAdded) Category() Category { return CategorySchema }
func (r PropertyAdded) Context() string {
	return schemaContext(r.SchemaName, joinPropertyPath(r.PropertyPath, r.PropertyName))
}
func (r PropertyAdded) Description() string {
	return fmt.Sprintf("Property '%s' was added", r.PropertyName)
}

// PropertyRemoved reports a property present in base but absent from current.
// Removal is breaking regardless of whether the property was required;
// WasRequired only enriches the description. De-requiring a property that
// still exists is a distinct event (RequiredPropertyRemoved) and the two are
// never reported together for the same property.
type PropertyRemoved struct {
	SchemaName   string
	PropertyPath string
	PropertyName string
	WasRequired  bool
}

func (r PropertyRemoved) Name() string       { return "PropertyRemoved" }
func (r PropertyRemoved) Level() Level       { return LevelBreaking }
func (r PropertyRemoved) Category() Category { return CategorySchema }
func (r PropertyRemoved) Context() string {
	return schemaContext(r.SchemaName, joinPropertyPath(r.PropertyPath, r.PropertyName))
}
func (r PropertyRemoved) Description() string {
	if r.WasRequired {
		return fmt.Sprintf("Required property '%s' was removed", r.PropertyName)
	}
	return fmt.Sprintf("Property '%s' was removed", r.PropertyName)
}

// RequiredPropertyAdded reports a property that is required in current but
// was not required in base, including brand-new required properties. A new
// mandatory field breaks existing producers that do not supply it.
type RequiredPropertyAdded struct {
	SchemaName   string
	PropertyPath string
	PropertyName string
}

func (r RequiredPropertyAdded) Name() string       { return "RequiredPropertyAdded" }
func (r RequiredPropertyAdded) Level() Level       { return LevelBreaking }
func (r RequiredPropertyAdded) Category() Category { return CategorySchema }
func (r RequiredPropertyAdded) Context() string {
	return schemaContext(r.SchemaName, joinPropertyPath(r.PropertyPath, r.PropertyName))
}
func (r RequiredPropertyAdded) Description() string {
	return fmt.Sprintf("Required property '%s' was added", r.PropertyName)
}

// RequiredPropertyRemoved reports a property that persists but is no longer
// required. Relaxing a constraint is safe for existing producers.
type RequiredPropertyRemoved struct {
	SchemaName   string
	PropertyPath string
	PropertyName string
}

func (r RequiredPropertyRemoved) Name() string       { return "RequiredPropertyRemoved" }
func (r RequiredPropertyRemoved) Level() Level       { return LevelChange }
func (r RequiredPropertyRemoved) Category() Category { return CategorySchema }
func (r RequiredPropertyRemoved) Context() string {
	return schemaContext(r.SchemaName, joinPropertyPath(r.PropertyPath, r.PropertyName))
}
func (r RequiredPropertyRemoved) Description() string {
	return fmt.Sprintf("Property '%s' is no longer required", r.PropertyName)
}

// EnumValuesAdded reports literal values newly permitted in current.
type EnumValuesAdded struct {
	SchemaName   string
	PropertyPath string
	Values       []any
}

func (r EnumValuesAdded) Name() string       { return "EnumValuesAdded" }
func (r EnumValuesAdded) Level() Level       { return LevelChange }
func (r EnumValuesAdded) Category() Category { return CategorySchema }
func (r EnumValuesAdded) Context() string    { return schemaContext(r.SchemaName, r.PropertyPath) }
func (r EnumValuesAdded) Description() string {
	return fmt.Sprintf("Enum values added: [%s]", formatEnumValues(r.Values))
}

// EnumValuesRemoved reports literal values permitted in base but rejected by
// current. Existing valid values may now be rejected.
type EnumValuesRemoved struct {
	SchemaName   string
	PropertyPath string
	Values       []any
}

func (r EnumValuesRemoved) Name() string       { return "EnumValuesRemoved" }
func (r EnumValuesRemoved) Level() Level       { return LevelBreaking }
func (r EnumValuesRemoved) Category() Category { return CategorySchema }
func (r EnumValuesRemoved) Context() string    { return schemaContext(r.SchemaName, r.PropertyPath) }
func (r EnumValuesRemoved) Description() string {
	return fmt.Sprintf("Enum values removed: [%s]", formatEnumValues(r.Values))
}

// FormatChanged reports a change of the format constraint, including from or
// to absent.
type FormatChanged struct {
	SchemaName   string
	PropertyPath string
	OldFormat    string
	NewFormat    string
}

func (r FormatChanged) Name() string       { return "FormatChanged" }
func (r FormatChanged) Level() Level       { return LevelWarning }
func (r FormatChanged) Category() Category { return CategorySchema }
func (r FormatChanged) Context() string    { return schemaContext(r.SchemaName, r.PropertyPath) }
func (r FormatChanged) Description() string {
	return fmt.Sprintf("Format changed from '%s' to '%s'",
		orNone(r.OldFormat), orNone(r.NewFormat))
}

// NullableChanged reports a change of the nullability flag. The direction
// determines severity: a field that stops admitting null (true to false)
// breaks producers that send null today, while newly admitting null (false
// to true) is a warning for consumers that never expected it.
type NullableChanged struct {
	SchemaName   string
	PropertyPath string
	OldNullable  bool
	NewNullable  bool
}

func (r NullableChanged) Name() string       { return "NullableChanged" }
func (r NullableChanged) Category() Category { return CategorySchema }
func (r NullableChanged) Context() string    { return schemaContext(r.SchemaName, r.PropertyPath) }
func (r NullableChanged) Level() Level {
	switch {
	case r.OldNullable && !r.NewNullable:
		return LevelBreaking
	case !r.OldNullable && r.NewNullable:
		return LevelWarning
	default:
		return LevelChange
	}
}
func (r NullableChanged) Description() string {
	return fmt.Sprintf("Nullable changed from %t to %t", r.OldNullable, r.NewNullable)
}

// DescriptionChanged reports edited description text. Purely informational;
// it never escalates a schema's overall level.
type DescriptionChanged struct {
	SchemaName     string
	PropertyPath   string
	OldDescription string
	NewDescription string
}

func (r DescriptionChanged) Name() string       { return "DescriptionChanged" }
func (r DescriptionChanged) Level() Level       { return LevelChange }
func (r DescriptionChanged) Category() Category { return CategorySchema }
func (r DescriptionChanged) Context() string    { return schemaContext(r.SchemaName, r.PropertyPath) }
func (r DescriptionChanged) Description() string {
	return fmt.Sprintf("Description changed from '%s' to '%s'",
		orNone(r.OldDescription), orNone(r.NewDescription))
}

func joinPropertyPath(parent, name string) string {
	if parent == "" {
		return name
	}
	return parent + "." + name
}

func formatEnumValues(values []any) string {
	parts := make([]string, 0, len(values))
	for _, v := range values {
		parts = append(parts, fmt.Sprintf("%v", v))
	}
	return strings.Join(parts, ", ")
}

func orNone(s string) string {
	if s == "" {
		return "(none)"
	}
	return s
}
