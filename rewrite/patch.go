package rewrite

import (
	"github.com/The0x539/eyesight-xml2py/ir"
)

// Patch splices a fixed extension into one named group, anchored on one
// named node of that group's shader.
type Patch struct {
	Name   string
	Group  string
	Anchor string
	Splice func(s *ir.Shader, anchor ir.Node) error
}

// Pass wraps the patch as a rewrite pass. The pass fails with
// ErrMissingRewriteAnchor if the group or the anchor node is missing.
func (p Patch) Pass() Pass {
	return Pass{
		Name: p.Name,
		Run: func(doc *ir.Document) error {
			g := doc.Group(p.Group)
			if g == nil {
				return ir.NewError(ir.ErrMissingRewriteAnchor, p.Group, "patch %s: no such group", p.Name)
			}
			anchor := g.Shader.Node(p.Anchor)
			if anchor == nil {
				return ir.NewError(ir.ErrMissingRewriteAnchor, p.Group+"."+p.Anchor,
					"patch %s: no such node in group %s", p.Name, p.Group)
			}
			return p.Splice(&g.Shader, anchor)
		},
	}
}

// SolidSlopePatch scales the roughness of the Solid group's principled BSDF
// by the surface slope factor.
var SolidSlopePatch = Patch{
	Name:   "patch-solid-slope",
	Group:  "Solid",
	Anchor: "Principled",
	Splice: spliceSlopeRoughness,
}

// Roughness used when the anchor has neither a link nor a default for it.
const defaultRoughness = 0.5

func spliceSlopeRoughness(s *ir.Shader, anchor ir.Node) error {
	if _, ok := anchor.(*ir.PrincipledBSDF); !ok {
		return ir.NewError(ir.ErrMissingRewriteAnchor, anchor.NodeName(),
			"expected a %s node, found %s", ir.KindPrincipledBSDF, ir.KindOf(anchor))
	}

	slope := &ir.IsSlope{Name: uniqueName(s, "IsSlope")}
	s.Nodes = append(s.Nodes, slope)
	mul := &ir.Math{Name: uniqueName(s, "SlopeRoughness"), Operation: ir.MathMultiply}
	s.Nodes = append(s.Nodes, mul)

	linked := false
	for i := range s.Links {
		l := &s.Links[i]
		if l.ToNode == anchor.NodeName() && l.ToSocket == "Roughness" {
			l.ToNode = mul.Name
			l.ToSocket = "Value1"
			linked = true
		}
	}
	if lit, ok := ir.RemoveInput(anchor, "Roughness"); ok && !linked {
		ir.SetInput(mul, "Value1", lit)
	} else if !linked {
		ir.SetInput(mul, "Value1", ir.FloatLiteral(defaultRoughness))
	}

	s.Links = append(s.Links,
		ir.Link{FromNode: slope.Name, FromSocket: "Factor", ToNode: mul.Name, ToSocket: "Value2"},
		ir.Link{FromNode: mul.Name, FromSocket: "Value", ToNode: anchor.NodeName(), ToSocket: "Roughness"},
	)
	return nil
}
