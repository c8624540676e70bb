// Package severity provides the change-level constants shared by the rules,
// matcher, and render packages.
//
// The levels form a total order, from least to most severe:
// Change < Warning < Breaking.
package severity

// Level indicates how severely a detected difference affects existing
// consumers of an API.
type Level int

const (
	// LevelChange indicates a safe or informational difference. It is also
	// the level reported for schemas with no differences at all, so renderers
	// can display unchanged schemas uniformly.
	LevelChange Level = iota

	// LevelWarning indicates a difference that may cause issues for some
	// consumers, such as a format change.
	LevelWarning

	// LevelBreaking indicates a difference that may break existing consumers,
	// such as a removed schema or a new required property.
	LevelBreaking
)

// String returns the string representation of the level.
func (l Level) String() string {
	switch l {
	case LevelBreaking:
		return "breaking"
	case LevelWarning:
		return "warning"
	case LevelChange:
		return "change"
	default:
		return "unknown"
	}
}

// Max returns the more severe of the two levels.
func Max(a, b Level) Level {
	if a > b {
		return a
	}
	return b
}
