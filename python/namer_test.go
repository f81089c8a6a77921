// Copyright 2026 The eyesight-xml2py Authors
// SPDX-License-Identifier: MIT

package python

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNamer_Call(t *testing.T) {
	n := newNamer()

	assert.Equal(t, "mix", n.call("mix"))
	assert.Equal(t, "mix_1", n.call("mix"))
	assert.Equal(t, "mix_2", n.call("mix"))
	assert.Equal(t, "color", n.call("color"))
}

func TestNamer_Reserved(t *testing.T) {
	n := newNamer(preambleNames...)

	assert.Equal(t, "graph_1", n.call("graph"))
	assert.Equal(t, "tree_2", n.call("tree"))

	n.reserve("node_group_solid")
	assert.Equal(t, "node_group_solid_3", n.call("node_group_solid"))
}

func TestNamer_Escaping(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"class", "_class"},
		{"None", "_None"},
		{"match", "_match"},
		{"print", "_print"},
		{"", "_unnamed"},
		{"Glass Value", "Glass_Value"},
		{"2nd", "_2nd"},
		{"Mix.001", "Mix_001"},
		{"Färbung", "F_rbung"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, newNamer().call(tt.input))
		})
	}
}

func TestSnakeCase(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Solid", "solid"},
		{"PEARL-FLAT-GROUP", "pearl_flat_group"},
		{"UVDegradation", "uv_degradation"},
		{"ProjectToAxisPlane", "project_to_axis_plane"},
		{"Rubber 2", "rubber_2"},
		{"Glitter_Group", "glitter_group"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, snakeCase(tt.input))
		})
	}
}
