package matcher

import (
	"strings"

	"github.com/apidrift/apidrift/parser"
)

// schemaRefPrefix is the only reference form the resolver follows: an
// internal pointer into the document's own component schema table.
const schemaRefPrefix = "#/components/schemas/"

// maxCompareDepth caps comparison recursion as a guard against pathological
// nesting. Exceeding it silently stops descending; nothing is reported for
// the unexplored subtree.
const maxCompareDepth = 10

// schemaRefName extracts the target schema name from an internal reference
// pointer. It reports false for external or non-schema pointers, which the
// resolver treats the same as a missing target.
func schemaRefName(ref string) (string, bool) {
	name, found := strings.CutPrefix(ref, schemaRefPrefix)
	if !found || name == "" || strings.Contains(name, "/") {
		return "", false
	}
	return name, true
}

// deref follows a reference chain within table until it reaches a concrete
// node. The visited set carries the names already resolved on the current
// comparison path; re-encountering one means a reference cycle, and the
// branch is abandoned rather than resolved (cycle true). An unresolvable
// pointer is returned in badRef so the caller can report it once.
//
// deref records every name it resolves into visited, so nested references
// back to an enclosing schema terminate on the next visit.
func deref(s *parser.Schema, table map[string]*parser.Schema, visited map[string]struct{}) (resolved *parser.Schema, cycle bool, badRef string) {
	for s.IsRef() {
		name, ok := schemaRefName(s.Ref)
		if !ok {
			return nil, false, s.Ref
		}
		if _, seen := visited[name]; seen {
			return nil, true, ""
		}
		target, ok := table[name]
		if !ok {
			return nil, false, s.Ref
		}
		visited[name] = struct{}{}
		s = target
	}
	return s, false, ""
}
