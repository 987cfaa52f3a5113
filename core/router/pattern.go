package router

import (
	"fmt"
	"go/token"
	"strings"
)

// parsePattern validates a route pattern and returns the ServeMux pattern that
// implements it together with the parameter names in order of appearance.
func parsePattern(pattern string) (muxPattern string, names []string) {
	if pattern == "" || pattern[0] != '/' {
		panic(fmt.Errorf("%w: '%s'", ErrInvalidPattern, pattern))
	}

	segments := strings.Split(pattern[1:], "/")
	seen := make(map[string]bool, len(segments))
	for i, seg := range segments {
		if !strings.ContainsAny(seg, "{}") {
			continue
		}
		if seg[0] != '{' || seg[len(seg)-1] != '}' || strings.Count(seg, "{") != 1 {
			panic(fmt.Errorf("%w: '%s': a wildcard must be a whole segment", ErrInvalidPattern, pattern))
		}

		name := seg[1 : len(seg)-1]
		last := i == len(segments)-1
		if name == "$" {
			if !last {
				panic(fmt.Errorf("%w: '%s'", ErrWildcardPosition, pattern))
			}
			continue
		}

		if rest, ok := strings.CutSuffix(name, "..."); ok {
			if !last {
				panic(fmt.Errorf("%w: '%s'", ErrWildcardPosition, pattern))
			}
			name = rest
		}
		if !token.IsIdentifier(name) {
			panic(fmt.Errorf("%w: '%s': bad parameter name %q", ErrInvalidPattern, pattern, name))
		}
		if seen[name] {
			panic(fmt.Errorf("%w: '%s' in '%s'", ErrDuplicateParam, name, pattern))
		}
		seen[name] = true
		names = append(names, name)
	}

	// ServeMux treats a trailing slash as a subtree match; routes are exact.
	if strings.HasSuffix(pattern, "/") {
		return pattern + "{$}", names
	}
	return pattern, names
}

// joinPattern prefixes pattern with a group prefix.
// The group root "/" maps to the prefix itself.
func joinPattern(prefix, pattern string) string {
	prefix = strings.TrimSuffix(prefix, "/")
	if prefix == "" {
		return pattern
	}
	if pattern == "/" {
		return prefix
	}
	return prefix + pattern
}
