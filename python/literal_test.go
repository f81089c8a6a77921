// Copyright 2026 The eyesight-xml2py Authors
// SPDX-License-Identifier: MIT

package python

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/The0x539/eyesight-xml2py/ir"
)

func TestFormatFloat(t *testing.T) {
	tests := []struct {
		input float32
		want  string
	}{
		{0, "0.0"},
		{1, "1.0"},
		{-2, "-2.0"},
		{0.5, "0.5"},
		{0.1, "0.1"},
		{0.8, "0.8"},
		{1e-7, "0.0000001"},
		{float32(math.Inf(1)), `float("inf")`},
		{float32(math.Inf(-1)), `float("-inf")`},
		{float32(math.NaN()), `float("nan")`},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, formatFloat(tt.input))
		})
	}
}

func TestFormatLiteral(t *testing.T) {
	tests := []struct {
		name  string
		input ir.Literal
		want  string
	}{
		{"float", ir.FloatLiteral(0.25), "0.25"},
		{"vector", ir.VectorLiteral{1, 2, 3}, "(1.0, 2.0, 3.0)"},
		{"color", ir.ColorLiteral{1, 0.5, 0}, "(1.0, 0.5, 0.0, 1.0)"},
		{"int", ir.IntLiteral(7), "7"},
		{"bool", ir.BoolLiteral(true), "True"},
		{"nil", nil, "None"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatLiteral(tt.input))
		})
	}
}

func TestFormatEnum(t *testing.T) {
	assert.Equal(t, "'LESS_THAN'", formatEnum(ir.MathLessThan))
	assert.Equal(t, "'GGX'", formatEnum(ir.BSDFGGX))
	assert.Equal(t, "'Linear'", formatTitle(ir.InterpolationLinear))
	assert.Equal(t, "''", formatTitle(ir.Interpolation("")))
}

func TestSocketClass(t *testing.T) {
	assert.Equal(t, "NodeSocketShader", socketClass(ir.SocketClosure))
	assert.Equal(t, "NodeSocketBool", socketClass(ir.SocketBoolean))
	assert.Equal(t, "NodeSocketColor", socketClass(ir.SocketColor))
}
