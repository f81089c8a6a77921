// Copyright 2026 The eyesight-xml2py Authors
// SPDX-License-Identifier: MIT

package python

import (
	"fmt"
	"strings"
	"unicode"
)

// namer generates unique Python identifiers.
type namer struct {
	usedNames map[string]struct{}
	counter   uint32
}

func newNamer(reserved ...string) *namer {
	n := &namer{usedNames: make(map[string]struct{})}
	for _, name := range reserved {
		n.reserve(name)
	}
	return n
}

// call returns a unique identifier derived from base. Characters Python
// does not allow in identifiers become underscores, reserved words are
// escaped and numeric suffixes resolve collisions.
func (n *namer) call(base string) string {
	escaped := escapeKeyword(sanitize(base))

	if _, used := n.usedNames[escaped]; !used {
		n.usedNames[escaped] = struct{}{}
		return escaped
	}

	for {
		n.counter++
		candidate := fmt.Sprintf("%s_%d", escaped, n.counter)
		if _, used := n.usedNames[candidate]; !used {
			n.usedNames[candidate] = struct{}{}
			return candidate
		}
	}
}

// reserve marks a name as used without returning it.
func (n *namer) reserve(name string) {
	n.usedNames[name] = struct{}{}
}

// sanitize maps s onto the ASCII identifier alphabet.
func sanitize(s string) string {
	var b strings.Builder
	for i, r := range s {
		switch {
		case r == '_' || r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)):
			if i == 0 && unicode.IsDigit(r) {
				b.WriteByte('_')
			}
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}

// snakeCase converts a group name to snake_case: "PEARL-FLAT-GROUP" becomes
// pearl_flat_group and "UVDegradation" becomes uv_degradation.
func snakeCase(s string) string {
	runes := []rune(s)
	var words []string
	var cur []rune
	flush := func() {
		if len(cur) > 0 {
			words = append(words, strings.ToLower(string(cur)))
			cur = cur[:0]
		}
	}
	for i, r := range runes {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			flush()
			continue
		}
		if unicode.IsUpper(r) && len(cur) > 0 {
			prev := runes[i-1]
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextLower) {
				flush()
			}
		}
		cur = append(cur, r)
	}
	flush()
	return strings.Join(words, "_")
}
