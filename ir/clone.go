package ir

import (
	"reflect"
	"slices"
)

// CloneNode returns a copy of n that shares no mutable state with it.
func CloneNode(n Node) Node {
	if n == nil {
		return nil
	}
	v := reflect.ValueOf(n).Elem()
	c := reflect.New(v.Type())
	c.Elem().Set(v)
	out := c.Interface().(Node)

	if p := inputsPtr(out); p != nil {
		*p = slices.Clone(*p)
	}
	switch node := out.(type) {
	case *GroupReference:
		node.Inputs = slices.Clone(node.Inputs)
		node.Outputs = slices.Clone(node.Outputs)
	case *RGBRamp:
		node.Ramp = slices.Clone(node.Ramp)
		node.RampAlpha = slices.Clone(node.RampAlpha)
	case *RGBCurves:
		node.Curves = slices.Clone(node.Curves)
	case *NoiseTexture:
		node.TexMapping.UseMinMax = clonePtr(node.TexMapping.UseMinMax)
	case *Mapping:
		node.TexMapping.UseMinMax = clonePtr(node.TexMapping.UseMinMax)
	case *ImageTexture:
		node.TexMapping.UseMinMax = clonePtr(node.TexMapping.UseMinMax)
	}
	return out
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// Clone returns a deep copy of the shader.
func (s *Shader) Clone() Shader {
	var nodes []Node
	if s.Nodes != nil {
		nodes = make([]Node, len(s.Nodes))
		for i, n := range s.Nodes {
			nodes[i] = CloneNode(n)
		}
	}
	return Shader{Nodes: nodes, Links: slices.Clone(s.Links)}
}

// Clone returns a deep copy of the document.
func (d *Document) Clone() *Document {
	out := &Document{
		Materials: slices.Clone(d.Materials),
		Groups:    slices.Clone(d.Groups),
	}
	for i := range out.Materials {
		m := &out.Materials[i]
		m.DiffuseAOFactor = clonePtr(m.DiffuseAOFactor)
		m.GlossyAOFactor = clonePtr(m.GlossyAOFactor)
		m.SubsurfaceAOFactor = clonePtr(m.SubsurfaceAOFactor)
		m.SubsurfaceFactor = clonePtr(m.SubsurfaceFactor)
		m.TransmissionAOFactor = clonePtr(m.TransmissionAOFactor)
		m.Shader = m.Shader.Clone()
	}
	for i := range out.Groups {
		out.Groups[i].Shader = out.Groups[i].Shader.Clone()
	}
	return out
}
