// Copyright 2026 The eyesight-xml2py Authors
// SPDX-License-Identifier: MIT

package python

import (
	"strings"
	"unicode/utf8"
)

const indentUnit = "    "

// Reflow collapses bracketed multi-line constructs of generated source onto
// a single line wherever the result fits within width columns. Inner
// constructs are collapsed first, so a call may collapse only partially.
// A width of zero or less returns src unchanged.
func Reflow(src string, width int) string {
	if width <= 0 {
		return src
	}
	lines := strings.Split(src, "\n")
	return strings.Join(reflowLines(lines, width), "\n")
}

func reflowLines(lines []string, width int) []string {
	out := make([]string, 0, len(lines))
	for i := 0; i < len(lines); i++ {
		line := lines[i]
		if !opensBlock(line) {
			out = append(out, line)
			continue
		}
		indent := leadingSpaces(line)
		end := closingLine(lines, i, indent)
		if end < 0 {
			out = append(out, line)
			continue
		}
		body := reflowLines(lines[i+1:end], width)
		out = append(out, collapse(line, body, lines[end], indent, width)...)
		i = end
	}
	return out
}

// collapse joins header, body items and closer onto one line when every
// item is a single line one level deeper and the result fits.
func collapse(header string, body []string, closer string, indent, width int) []string {
	items := make([]string, 0, len(body))
	for _, b := range body {
		if leadingSpaces(b) != indent+len(indentUnit) || !strings.HasSuffix(b, ",") {
			return expanded(header, body, closer)
		}
		items = append(items, strings.TrimSuffix(strings.TrimSpace(b), ","))
	}
	joined := header + strings.Join(items, ", ") + strings.TrimSpace(closer)
	if utf8.RuneCountInString(joined) > width {
		return expanded(header, body, closer)
	}
	return []string{joined}
}

func expanded(header string, body []string, closer string) []string {
	out := make([]string, 0, len(body)+2)
	out = append(out, header)
	out = append(out, body...)
	return append(out, closer)
}

func opensBlock(line string) bool {
	return strings.HasSuffix(line, "(") || strings.HasSuffix(line, "{") || strings.HasSuffix(line, "[")
}

// closingLine returns the index of the first line after start at the given
// indentation that begins with a closing bracket, or -1.
func closingLine(lines []string, start, indent int) int {
	for j := start + 1; j < len(lines); j++ {
		l := lines[j]
		if l == "" {
			return -1
		}
		n := leadingSpaces(l)
		if n == len(l) || n < indent {
			return -1
		}
		if n == indent {
			if strings.ContainsAny(l[n:n+1], ")}]") {
				return j
			}
			return -1
		}
	}
	return -1
}

func leadingSpaces(s string) int {
	return len(s) - len(strings.TrimLeft(s, " "))
}
