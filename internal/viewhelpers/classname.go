package viewhelpers

import "strings"

// AppendClassName joins a base class token with optional extra tokens.
// Empty extras are skipped; the base always comes first.
func AppendClassName(base string, extra ...string) string {
	parts := make([]string, 0, len(extra)+1)
	if base != "" {
		parts = append(parts, base)
	}
	for _, e := range extra {
		if e = strings.TrimSpace(e); e != "" {
			parts = append(parts, e)
		}
	}
	return strings.Join(parts, " ")
}
