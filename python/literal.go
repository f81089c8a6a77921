// Copyright 2026 The eyesight-xml2py Authors
// SPDX-License-Identifier: MIT

package python

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/The0x539/eyesight-xml2py/ir"
)

// formatFloat renders f as a Python float literal. The shortest decimal
// that round-trips through float32 is used, always with a decimal point.
func formatFloat(f float32) string {
	v := float64(f)
	switch {
	case math.IsInf(v, 1):
		return `float("inf")`
	case math.IsInf(v, -1):
		return `float("-inf")`
	case math.IsNaN(v):
		return `float("nan")`
	}
	s := strconv.FormatFloat(v, 'f', -1, 32)
	if !strings.ContainsAny(s, ".") {
		s += ".0"
	}
	return s
}

func formatVec3(v ir.Vec3) string {
	return fmt.Sprintf("(%s, %s, %s)", formatFloat(v[0]), formatFloat(v[1]), formatFloat(v[2]))
}

// formatRGBA renders an RGB color as an opaque RGBA tuple.
func formatRGBA(v ir.Vec3) string {
	return fmt.Sprintf("(%s, %s, %s, 1.0)", formatFloat(v[0]), formatFloat(v[1]), formatFloat(v[2]))
}

func formatBool(b bool) string {
	if b {
		return "True"
	}
	return "False"
}

// formatLiteral renders a socket default value.
func formatLiteral(lit ir.Literal) string {
	switch lit := lit.(type) {
	case ir.FloatLiteral:
		return formatFloat(float32(lit))
	case ir.VectorLiteral:
		return formatVec3(ir.Vec3(lit))
	case ir.ColorLiteral:
		return formatRGBA(ir.Vec3(lit))
	case ir.IntLiteral:
		return strconv.FormatUint(uint64(lit), 10)
	case ir.BoolLiteral:
		return formatBool(bool(lit))
	default:
		return "None"
	}
}

// formatEnum renders an Eyesight enum value as a Blender enum identifier.
func formatEnum[E ~string](e E) string {
	return "'" + strings.ToUpper(string(e)) + "'"
}

// socketClass returns the Blender interface socket type for a socket type.
func socketClass(t ir.SocketType) string {
	switch t {
	case ir.SocketFloat:
		return "NodeSocketFloat"
	case ir.SocketVector:
		return "NodeSocketVector"
	case ir.SocketInt:
		return "NodeSocketInt"
	case ir.SocketColor:
		return "NodeSocketColor"
	case ir.SocketBoolean:
		return "NodeSocketBool"
	case ir.SocketClosure:
		return "NodeSocketShader"
	default:
		return "NodeSocketFloat"
	}
}
