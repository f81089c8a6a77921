// Package distill finds materials that differ only in their colors.
//
// Each material is normalized by a table of rules that reset color-bearing
// node fields, its name is cleared and its nodes and links are sorted. Two
// materials are color variants of each other when their normalized forms are
// structurally equal.
//
// The distiller is a diagnostic. Code generation never normalizes, and
// ir.Merge still rejects same-named materials that only differ in colors.
package distill

import (
	"cmp"
	"slices"

	gocmp "github.com/google/go-cmp/cmp"

	"github.com/The0x539/eyesight-xml2py/ir"
)

// Rule resets the color-bearing fields of matching nodes.
type Rule struct {
	// Kind is the node kind the rule applies to (see ir.KindOf).
	Kind string

	// Nodes restricts the rule to nodes with one of these names.
	// Empty matches every node of Kind.
	Nodes []string

	// Groups restricts a rule on group references to calls of one of these
	// groups. Empty matches every call.
	Groups []string

	// Clear resets the matched node in place.
	Clear func(ir.Node)
}

// Matches reports whether the rule applies to n.
func (r Rule) Matches(n ir.Node) bool {
	if ir.KindOf(n) != r.Kind {
		return false
	}
	if len(r.Nodes) > 0 && !slices.Contains(r.Nodes, n.NodeName()) {
		return false
	}
	if len(r.Groups) > 0 {
		ref, ok := n.(*ir.GroupReference)
		if !ok || !slices.Contains(r.Groups, ref.GroupName) {
			return false
		}
	}
	return true
}

// DefaultRules are the color-bearing identifiers of the stock Eyesight
// material library.
var DefaultRules = []Rule{
	{
		Kind:  ir.KindColor,
		Nodes: []string{"RGB", "RGB_GlowDark", "RGB_Chip", "RGB_White", "RGB_Second"},
		Clear: func(n ir.Node) { n.(*ir.Color).Value = ir.Vec3{} },
	},
	{
		Kind:   ir.KindGroup,
		Groups: []string{"PEARL-GROUP", "PEARL-FLAT-GROUP", "SATIN-GROUP"},
		Clear: func(n ir.Node) {
			ref := n.(*ir.GroupReference)
			for i := range ref.Inputs {
				ref.Inputs[i].Value = ir.FloatLiteral(0)
			}
		},
	},
	{
		Kind:  ir.KindValue,
		Nodes: []string{"XOffset"},
		Clear: func(n ir.Node) { n.(*ir.Value).Value = 0 },
	},
	{
		Kind: ir.KindEmission,
		Clear: func(n ir.Node) {
			inputs := ir.InputsOf(n)
			for i := range inputs {
				if inputs[i].Name == "Color" {
					inputs[i].Value = ir.ColorLiteral{}
				}
			}
		},
	},
}

// Normalize returns a copy of m with every rule applied, the name cleared,
// nodes sorted by name and links sorted. m itself is not modified.
func Normalize(m ir.Material, rules []Rule) ir.Material {
	m.Name = ""
	m.Shader = m.Shader.Clone()
	for _, n := range m.Shader.Nodes {
		for _, r := range rules {
			if r.Matches(n) {
				r.Clear(n)
			}
		}
	}
	slices.SortFunc(m.Shader.Nodes, func(a, b ir.Node) int {
		return cmp.Compare(a.NodeName(), b.NodeName())
	})
	ir.SortLinks(m.Shader.Links)
	return m
}

// Class is a set of materials that are color variants of each other.
type Class struct {
	// Materials in name order. The first is the representative.
	Materials []string
}

// Representative returns the first material of the class.
func (c Class) Representative() string {
	return c.Materials[0]
}

// ColorVariants partitions materials into classes of color variants.
// Classes are ordered by representative name. Every material belongs to
// exactly one class; a material with no variants forms a class of one.
func ColorVariants(materials []ir.Material, rules []Rule) []Class {
	sorted := slices.Clone(materials)
	slices.SortFunc(sorted, func(a, b ir.Material) int { return cmp.Compare(a.Name, b.Name) })

	var classes []Class
	var shapes []ir.Material
	for _, m := range sorted {
		shape := Normalize(m, rules)
		i := slices.IndexFunc(shapes, func(s ir.Material) bool {
			return gocmp.Equal(s, shape, ir.StructuralOptions)
		})
		if i < 0 {
			classes = append(classes, Class{Materials: []string{m.Name}})
			shapes = append(shapes, shape)
			continue
		}
		classes[i].Materials = append(classes[i].Materials, m.Name)
	}
	return classes
}

// Equivalent reports whether a and b are color variants of each other.
func Equivalent(a, b ir.Material, rules []Rule) bool {
	return gocmp.Equal(Normalize(a, rules), Normalize(b, rules), ir.StructuralOptions)
}
