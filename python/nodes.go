// Copyright 2026 The eyesight-xml2py Authors
// SPDX-License-Identifier: MIT

package python

import (
	"fmt"
	"strings"

	"github.com/The0x539/eyesight-xml2py/alias"
	"github.com/The0x539/eyesight-xml2py/ir"
)

// attr is one keyword argument of a graph.node call.
type attr struct {
	name string
	expr string
}

// nodeSpec is everything the writer needs to emit one node.
type nodeSpec struct {
	// pythonType is the bpy.types class of the node.
	pythonType string
	attrs      []attr
	// inputs are the literal defaults, after per-kind conversions.
	inputs []ir.NodeInput
	// after are statements emitted after the construction, for properties
	// graph.node cannot set.
	after []string
}

// describe maps a node onto its Blender counterpart. v is the Python
// variable holding the node.
//
//nolint:gocyclo,cyclop // one case per node kind
func (w *Writer) describe(n ir.Node, v string) (nodeSpec, error) {
	switch n := n.(type) {
	case *ir.GroupReference:
		fn, ok := w.funcNames[n.GroupName]
		if !ok {
			return nodeSpec{}, ir.NewError(ir.ErrUndefinedGroup, n.GroupName, "referenced by node %s is not emitted", n.Name)
		}
		var inputs []ir.NodeInput
		for _, in := range n.Inputs {
			if in.Value != nil {
				inputs = append(inputs, ir.NodeInput{Name: in.Name, Value: in.Value})
			}
		}
		return nodeSpec{
			pythonType: "ShaderNodeGroup",
			attrs:      []attr{{"node_tree", fn + "()"}},
			inputs:     inputs,
		}, nil

	case *ir.GroupInput:
		return nodeSpec{pythonType: "NodeGroupInput"}, nil

	case *ir.GroupOutput:
		return nodeSpec{pythonType: "NodeGroupOutput"}, nil

	case *ir.Bump:
		return nodeSpec{
			pythonType: "ShaderNodeBump",
			attrs:      []attr{{"mute", formatBool(!n.Enable)}, {"invert", formatBool(n.Invert)}},
			inputs:     n.Inputs,
		}, nil

	case *ir.NoiseTexture:
		return nodeSpec{
			pythonType: "ShaderNodeTexNoise",
			inputs:     n.Inputs,
			after:      texMappingLines(v, n.TexMapping),
		}, nil

	case *ir.RoundingEdgeNormal:
		spec := nodeSpec{
			pythonType: "ShaderNodeBevel",
			attrs:      []attr{{"mute", formatBool(!n.Enable)}},
		}
		for _, in := range n.Inputs {
			if in.Name != "Samples" {
				spec.inputs = append(spec.inputs, in)
				continue
			}
			spec.attrs = append(spec.attrs, attr{"samples", formatCount(in.Value)})
		}
		return spec, nil

	case *ir.SwitchClosure:
		return nodeSpec{
			pythonType: "ShaderNodeMixShader",
			attrs:      []attr{{"mute", formatBool(!n.Enable)}},
		}, nil

	case *ir.MixClosure:
		return nodeSpec{pythonType: "ShaderNodeMixShader", inputs: n.Inputs}, nil

	case *ir.Math:
		return nodeSpec{
			pythonType: "ShaderNodeMath",
			attrs:      []attr{{"operation", formatEnum(n.Operation)}, {"use_clamp", formatBool(n.UseClamp)}},
			inputs:     n.Inputs,
		}, nil

	case *ir.Mapping:
		spec := nodeSpec{pythonType: "ShaderNodeMapping"}
		if n.TexMapping.Type != "" {
			spec.attrs = append(spec.attrs, attr{"vector_type", formatEnum(n.TexMapping.Type)})
		}
		spec.inputs = append(spec.inputs, n.Inputs...)
		spec.inputs = append(spec.inputs,
			ir.NodeInput{Name: "Location", Value: ir.VectorLiteral(n.TexMapping.Translation)},
			ir.NodeInput{Name: "Rotation", Value: ir.VectorLiteral(n.TexMapping.Rotation)},
			ir.NodeInput{Name: "Scale", Value: ir.VectorLiteral(n.TexMapping.Scale)},
		)
		return spec, nil

	case *ir.RGBRamp:
		interpolation := "'CONSTANT'"
		if n.Interpolate {
			interpolation = "'LINEAR'"
		}
		spec := nodeSpec{
			pythonType: "ShaderNodeValToRGB",
			after:      []string{fmt.Sprintf("%s.node.color_ramp.interpolation = %s", v, interpolation)},
		}
		if len(n.Ramp) > 0 {
			colors, err := rampColors(n.Ramp, n.RampAlpha)
			if err != nil {
				return nodeSpec{}, ir.NewError(ir.ErrInvalidGraph, n.Name, "%v", err)
			}
			spec.after = append(spec.after, fmt.Sprintf("set_color_ramp(%s.node.color_ramp, %s)", v, colors))
		}
		return spec, nil

	case *ir.DiffuseBSDF:
		return nodeSpec{pythonType: "ShaderNodeBsdfDiffuse", inputs: n.Inputs}, nil

	case *ir.ProjectToAxisPlane:
		return nodeSpec{
			pythonType: "ShaderNodeGroup",
			attrs:      []attr{{"node_tree", "project_to_axis_plane_node_group()"}},
		}, nil

	case *ir.Value:
		return nodeSpec{
			pythonType: "ShaderNodeValue",
			after:      []string{fmt.Sprintf("%s.node.outputs[0].default_value = %s", v, formatFloat(n.Value))},
		}, nil

	case *ir.ObjectInfo:
		return nodeSpec{pythonType: "ShaderNodeObjectInfo"}, nil

	case *ir.ImageTexture:
		image := "None"
		if n.Filename != "" {
			image = alias.Quote(n.Filename)
		}
		spec := nodeSpec{
			pythonType: "ShaderNodeTexImage",
			attrs:      []attr{{"image", "load_image(" + image + ")"}},
			after:      texMappingLines(v, n.TexMapping),
		}
		if n.Extension != "" {
			spec.attrs = append(spec.attrs, attr{"extension", formatEnum(n.Extension)})
		}
		if n.Interpolation != "" {
			spec.attrs = append(spec.attrs, attr{"interpolation", formatTitle(n.Interpolation)})
		}
		if n.Projection != "" {
			spec.attrs = append(spec.attrs, attr{"projection", formatEnum(n.Projection)})
		}
		return spec, nil

	case *ir.MixValue:
		return nodeSpec{
			pythonType: "ShaderNodeMix",
			attrs: []attr{
				{"data_type", "'FLOAT'"},
				{"blend_type", formatEnum(n.MixType)},
				{"clamp_factor", formatBool(n.UseClamp)},
				{"clamp_result", formatBool(n.UseClamp)},
			},
			inputs: n.Inputs,
		}, nil

	case *ir.SwitchFloat:
		return nodeSpec{
			pythonType: "ShaderNodeMix",
			attrs:      []attr{{"data_type", "'FLOAT'"}, {"mute", formatBool(!n.Enable)}},
			inputs:     n.Inputs,
		}, nil

	case *ir.UVDegradation:
		return nodeSpec{
			pythonType: "ShaderNodeGroup",
			attrs:      []attr{{"node_tree", "uv_degradation_node_group()"}},
			inputs:     n.Inputs,
		}, nil

	case *ir.Mix:
		return nodeSpec{
			pythonType: "ShaderNodeMix",
			attrs: []attr{
				{"data_type", "'RGBA'"},
				{"blend_type", formatEnum(n.Operation)},
				{"clamp_result", formatBool(n.UseClamp)},
			},
			inputs: n.Inputs,
		}, nil

	case *ir.VectorTransform:
		return nodeSpec{
			pythonType: "ShaderNodeVectorTransform",
			attrs: []attr{
				{"convert_from", formatEnum(n.ConvertFrom)},
				{"convert_to", formatEnum(n.ConvertTo)},
				{"vector_type", formatEnum(n.VectorType)},
			},
		}, nil

	case *ir.TextureCoordinate:
		return nodeSpec{pythonType: "ShaderNodeTexCoord"}, nil

	case *ir.VectorMath:
		return nodeSpec{
			pythonType: "ShaderNodeVectorMath",
			attrs:      []attr{{"operation", formatEnum(n.Operation)}},
			inputs:     n.Inputs,
		}, nil

	case *ir.PrincipledBSDF:
		spec := nodeSpec{
			pythonType: "ShaderNodeBsdfPrincipled",
			attrs:      []attr{{"distribution", formatEnum(n.Distribution)}},
			inputs:     principledInputs(n.Inputs),
		}
		if n.SubsurfaceMethod != "" {
			spec.attrs = append(spec.attrs, attr{"subsurface_method", formatEnum(n.SubsurfaceMethod)})
		}
		return spec, nil

	case *ir.BrightnessContrast:
		return nodeSpec{pythonType: "ShaderNodeBrightContrast", inputs: n.Inputs}, nil

	case *ir.NormalMap:
		return nodeSpec{
			pythonType: "ShaderNodeNormalMap",
			attrs:      []attr{{"uv_map", alias.Quote(n.Attribute)}, {"space", formatEnum(n.Space)}},
			inputs:     n.Inputs,
		}, nil

	case *ir.UVMap:
		return nodeSpec{
			pythonType: "ShaderNodeUVMap",
			attrs:      []attr{{"uv_map", alias.Quote(n.Attribute)}, {"from_instancer", formatBool(n.FromDupli)}},
		}, nil

	case *ir.GlossyBSDF:
		return nodeSpec{
			pythonType: "ShaderNodeBsdfAnisotropic",
			attrs:      []attr{{"distribution", formatEnum(n.Distribution)}},
			inputs:     n.Inputs,
		}, nil

	case *ir.Vector:
		return nodeSpec{
			pythonType: "ShaderNodeCombineXYZ",
			after: []string{
				fmt.Sprintf("%s.node.inputs[0].default_value = %s", v, formatFloat(n.Value[0])),
				fmt.Sprintf("%s.node.inputs[1].default_value = %s", v, formatFloat(n.Value[1])),
				fmt.Sprintf("%s.node.inputs[2].default_value = %s", v, formatFloat(n.Value[2])),
			},
		}, nil

	case *ir.RGBCurves:
		spec := nodeSpec{pythonType: "ShaderNodeRGBCurve", inputs: n.Inputs}
		if len(n.Curves) > 0 {
			samples, err := curveSamples(n.Curves)
			if err != nil {
				return nodeSpec{}, ir.NewError(ir.ErrInvalidGraph, n.Name, "%v", err)
			}
			spec.after = append(spec.after, fmt.Sprintf("set_rgb_curves(%s.node.mapping, %s, %s, %s)",
				v, samples, formatFloat(n.MinX), formatFloat(n.MaxX)))
		}
		return spec, nil

	case *ir.VoronoiTexture:
		return nodeSpec{pythonType: "ShaderNodeTexVoronoi", inputs: n.Inputs}, nil

	case *ir.Geometry:
		return nodeSpec{pythonType: "ShaderNodeNewGeometry"}, nil

	case *ir.AbsorptionVolume:
		return nodeSpec{pythonType: "ShaderNodeVolumeAbsorption", inputs: n.Inputs}, nil

	case *ir.AddClosure:
		return nodeSpec{pythonType: "ShaderNodeAddShader"}, nil

	case *ir.LayerWeight:
		return nodeSpec{pythonType: "ShaderNodeLayerWeight", inputs: n.Inputs}, nil

	case *ir.TranslucentBSDF:
		return nodeSpec{pythonType: "ShaderNodeBsdfTranslucent", inputs: n.Inputs}, nil

	case *ir.TransparentBSDF:
		return nodeSpec{pythonType: "ShaderNodeBsdfTransparent", inputs: n.Inputs}, nil

	case *ir.Color:
		return nodeSpec{
			pythonType: "ShaderNodeRGB",
			after:      []string{fmt.Sprintf("%s.node.outputs[0].default_value = %s", v, formatRGBA(n.Value))},
		}, nil

	case *ir.Emission:
		return nodeSpec{pythonType: "ShaderNodeEmission", inputs: n.Inputs}, nil

	case *ir.IsSlope:
		return nodeSpec{
			pythonType: "ShaderNodeGroup",
			attrs:      []attr{{"node_tree", "is_slope_node_group()"}},
			inputs:     n.Inputs,
		}, nil

	default:
		return nodeSpec{}, ir.NewError(ir.ErrInvalidGraph, n.NodeName(), "unsupported node type %T", n)
	}
}

// principledInputs converts Eyesight's scalar tints to gray colors and its
// subsurface color to the radius vector Blender expects.
func principledInputs(inputs []ir.NodeInput) []ir.NodeInput {
	out := make([]ir.NodeInput, len(inputs))
	for i, in := range inputs {
		switch value := in.Value.(type) {
		case ir.FloatLiteral:
			if strings.HasSuffix(in.Name, "Tint") {
				f := float32(value)
				in.Value = ir.ColorLiteral{f, f, f}
			}
		case ir.ColorLiteral:
			if in.Name == "SubsurfaceColor" {
				in.Value = ir.VectorLiteral(value)
			}
		}
		out[i] = in
	}
	return out
}

func texMappingLines(v string, tm ir.TexMapping) []string {
	if tm.Type == "" {
		return nil
	}
	prefix := v + ".node.texture_mapping"
	lines := []string{
		fmt.Sprintf("%s.rotation = %s", prefix, formatVec3(tm.Rotation)),
		fmt.Sprintf("%s.scale = %s", prefix, formatVec3(tm.Scale)),
		fmt.Sprintf("%s.translation = %s", prefix, formatVec3(tm.Translation)),
		fmt.Sprintf("%s.vector_type = %s", prefix, formatEnum(tm.Type)),
	}
	if tm.XMapping != "" {
		lines = append(lines, fmt.Sprintf("%s.mapping_x = %s", prefix, formatEnum(tm.XMapping)))
	}
	if tm.YMapping != "" {
		lines = append(lines, fmt.Sprintf("%s.mapping_y = %s", prefix, formatEnum(tm.YMapping)))
	}
	if tm.ZMapping != "" {
		lines = append(lines, fmt.Sprintf("%s.mapping_z = %s", prefix, formatEnum(tm.ZMapping)))
	}
	if tm.UseMinMax != nil {
		lines = append(lines, fmt.Sprintf("%s.use_minmax = %s", prefix, formatBool(*tm.UseMinMax)))
	}
	return lines
}

// rampColors pairs RGB ramp samples with their alpha samples. A missing
// alpha sample is opaque.
func rampColors(rgb, alpha []float32) (string, error) {
	if len(rgb)%3 != 0 {
		return "", fmt.Errorf("color ramp has %d values, not a multiple of 3", len(rgb))
	}
	colors := make([]string, 0, len(rgb)/3)
	for i := 0; i < len(rgb)/3; i++ {
		a := float32(1)
		if i < len(alpha) {
			a = alpha[i]
		}
		colors = append(colors, fmt.Sprintf("(%s, %s, %s, %s)",
			formatFloat(rgb[3*i]), formatFloat(rgb[3*i+1]), formatFloat(rgb[3*i+2]), formatFloat(a)))
	}
	return "[" + strings.Join(colors, ", ") + "]", nil
}

func curveSamples(curves []float32) (string, error) {
	if len(curves)%3 != 0 {
		return "", fmt.Errorf("rgb curves have %d values, not a multiple of 3", len(curves))
	}
	samples := make([]string, 0, len(curves)/3)
	for i := 0; i < len(curves); i += 3 {
		samples = append(samples, formatVec3(ir.Vec3{curves[i], curves[i+1], curves[i+2]}))
	}
	return "[" + strings.Join(samples, ", ") + "]", nil
}

// formatCount renders a literal used as an integer property.
func formatCount(lit ir.Literal) string {
	if f, ok := lit.(ir.FloatLiteral); ok {
		return fmt.Sprintf("%d", int(f))
	}
	return formatLiteral(lit)
}

// formatTitle renders an enum in Blender's capitalized spelling, used by
// image interpolation: 'Linear'.
func formatTitle[E ~string](e E) string {
	s := string(e)
	if s == "" {
		return "''"
	}
	return "'" + strings.ToUpper(s[:1]) + s[1:] + "'"
}
