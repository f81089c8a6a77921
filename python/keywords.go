// Copyright 2026 The eyesight-xml2py Authors
// SPDX-License-Identifier: MIT

package python

// pythonKeywords contains the Python 3 reserved words, soft keywords and the
// builtins a generated identifier must not shadow.
var pythonKeywords = map[string]struct{}{
	// Keywords
	"False": {}, "None": {}, "True": {}, "and": {}, "as": {}, "assert": {},
	"async": {}, "await": {}, "break": {}, "class": {}, "continue": {},
	"def": {}, "del": {}, "elif": {}, "else": {}, "except": {}, "finally": {},
	"for": {}, "from": {}, "global": {}, "if": {}, "import": {}, "in": {},
	"is": {}, "lambda": {}, "nonlocal": {}, "not": {}, "or": {}, "pass": {},
	"raise": {}, "return": {}, "try": {}, "while": {}, "with": {}, "yield": {},

	// Soft keywords
	"match": {}, "case": {}, "type": {}, "_": {},

	// Builtins
	"abs": {}, "all": {}, "any": {}, "bool": {}, "dict": {}, "float": {},
	"format": {}, "hash": {}, "id": {}, "input": {}, "int": {}, "iter": {},
	"len": {}, "list": {}, "map": {}, "max": {}, "min": {}, "next": {},
	"object": {}, "open": {}, "print": {}, "range": {}, "round": {}, "set": {},
	"slice": {}, "str": {}, "sum": {}, "super": {}, "tuple": {}, "vars": {},
	"zip": {},
}

// Names bound by the preamble and by every generated function body.
var preambleNames = []string{
	"bpy", "os", "ShaderGraph", "EYESIGHT_PATH",
	"load_image", "set_color_ramp", "set_rgb_curves",
	"uv_degradation_node_group", "project_to_axis_plane_node_group", "is_slope_node_group",
	"tree", "graph",
}

func isKeyword(name string) bool {
	_, ok := pythonKeywords[name]
	return ok
}

// escapeKeyword prefixes reserved words with an underscore.
func escapeKeyword(name string) string {
	if name == "" {
		return "_unnamed"
	}
	if isKeyword(name) {
		return "_" + name
	}
	return name
}
