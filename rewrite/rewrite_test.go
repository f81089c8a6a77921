package rewrite

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/The0x539/eyesight-xml2py/ir"
)

func solidGroup(principled *ir.PrincipledBSDF, links ...ir.Link) ir.Group {
	return ir.Group{
		Name: "Solid",
		Shader: ir.Shader{
			Nodes: []ir.Node{
				&ir.GroupInput{Name: "in"},
				principled,
				&ir.GroupOutput{Name: "out"},
			},
			Links: append([]ir.Link{
				{FromNode: "Principled", FromSocket: "BSDF", ToNode: "out", ToSocket: "BSDF"},
			}, links...),
		},
	}
}

func TestLowerVectorAverage(t *testing.T) {
	doc := &ir.Document{Materials: []ir.Material{{
		Name: "M",
		Shader: ir.Shader{
			Nodes: []ir.Node{
				&ir.Vector{Name: "a"},
				&ir.Vector{Name: "b"},
				&ir.VectorMath{Name: "avg", Operation: ir.VectorAverage},
				&ir.Bump{Name: "bump"},
			},
			Links: []ir.Link{
				{FromNode: "a", FromSocket: "Vector", ToNode: "avg", ToSocket: "Vector1"},
				{FromNode: "b", FromSocket: "Vector", ToNode: "avg", ToSocket: "Vector2"},
				{FromNode: "avg", FromSocket: "Vector", ToNode: "bump", ToSocket: "Normal"},
			},
		},
	}}}

	require.NoError(t, LowerVectorAverage(doc))
	s := doc.Materials[0].Shader

	assert.Equal(t, ir.VectorAdd, s.Node("avg").(*ir.VectorMath).Operation)

	scale, ok := s.Node("avg_average").(*ir.VectorMath)
	require.True(t, ok)
	assert.Equal(t, ir.VectorScale, scale.Operation)
	assert.Equal(t, []ir.NodeInput{{Name: "Scale", Value: ir.FloatLiteral(0.5)}}, scale.Inputs)

	assert.Equal(t, []ir.Link{
		{FromNode: "a", FromSocket: "Vector", ToNode: "avg", ToSocket: "Vector1"},
		{FromNode: "b", FromSocket: "Vector", ToNode: "avg", ToSocket: "Vector2"},
		{FromNode: "avg_average", FromSocket: "Vector", ToNode: "bump", ToSocket: "Normal"},
		{FromNode: "avg", FromSocket: "Vector", ToNode: "avg_average", ToSocket: "Vector1"},
	}, s.Links)
	assert.Empty(t, ir.ValidateShader("M", &s))
}

func TestLowerVectorAverage_NameTaken(t *testing.T) {
	s := ir.Shader{Nodes: []ir.Node{
		&ir.VectorMath{Name: "avg", Operation: ir.VectorAverage},
		&ir.Value{Name: "avg_average"},
	}}
	doc := &ir.Document{Groups: []ir.Group{{Name: "G", Shader: s}}}

	require.NoError(t, LowerVectorAverage(doc))
	assert.NotNil(t, doc.Groups[0].Shader.Node("avg_average_1"))
}

func TestSolidSlopePatch_LinkedRoughness(t *testing.T) {
	g := solidGroup(&ir.PrincipledBSDF{Name: "Principled"},
		ir.Link{FromNode: "in", FromSocket: "Roughness", ToNode: "Principled", ToSocket: "Roughness"})
	doc := &ir.Document{Groups: []ir.Group{g}}

	require.NoError(t, SolidSlopePatch.Pass().Run(doc))
	s := doc.Groups[0].Shader

	_, ok := s.Node("IsSlope").(*ir.IsSlope)
	require.True(t, ok)
	mul, ok := s.Node("SlopeRoughness").(*ir.Math)
	require.True(t, ok)
	assert.Equal(t, ir.MathMultiply, mul.Operation)
	assert.Empty(t, mul.Inputs)

	assert.Contains(t, s.Links, ir.Link{FromNode: "in", FromSocket: "Roughness", ToNode: "SlopeRoughness", ToSocket: "Value1"})
	assert.Contains(t, s.Links, ir.Link{FromNode: "IsSlope", FromSocket: "Factor", ToNode: "SlopeRoughness", ToSocket: "Value2"})
	assert.Contains(t, s.Links, ir.Link{FromNode: "SlopeRoughness", FromSocket: "Value", ToNode: "Principled", ToSocket: "Roughness"})
	assert.Empty(t, ir.ValidateShader("Solid", &s))
}

func TestSolidSlopePatch_LiteralRoughness(t *testing.T) {
	p := &ir.PrincipledBSDF{
		Name:   "Principled",
		Inputs: []ir.NodeInput{{Name: "Roughness", Value: ir.FloatLiteral(0.2)}, {Name: "Metallic", Value: ir.FloatLiteral(0)}},
	}
	doc := &ir.Document{Groups: []ir.Group{solidGroup(p)}}

	require.NoError(t, SolidSlopePatch.Pass().Run(doc))

	mul := doc.Groups[0].Shader.Node("SlopeRoughness").(*ir.Math)
	assert.Equal(t, []ir.NodeInput{{Name: "Value1", Value: ir.FloatLiteral(0.2)}}, mul.Inputs)
	assert.Equal(t, []ir.NodeInput{{Name: "Metallic", Value: ir.FloatLiteral(0)}}, p.Inputs)
}

func TestSolidSlopePatch_MissingAnchor(t *testing.T) {
	tests := []struct {
		name string
		doc  *ir.Document
	}{
		{"no group", &ir.Document{}},
		{"no node", &ir.Document{Groups: []ir.Group{{Name: "Solid"}}}},
		{"wrong kind", &ir.Document{Groups: []ir.Group{{
			Name:   "Solid",
			Shader: ir.Shader{Nodes: []ir.Node{&ir.DiffuseBSDF{Name: "Principled"}}},
		}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Run(tt.doc, DefaultPasses(), Options{})
			require.Error(t, err)
			assert.True(t, ir.IsKind(err, ir.ErrMissingRewriteAnchor))
			assert.Contains(t, err.Error(), "patch-solid-slope")
		})
	}
}

func TestRun_Disabled(t *testing.T) {
	doc := &ir.Document{Groups: []ir.Group{{
		Name:   "G",
		Shader: ir.Shader{Nodes: []ir.Node{&ir.VectorMath{Name: "avg", Operation: ir.VectorAverage}}},
	}}}

	err := Run(doc, DefaultPasses(), Options{Disabled: []string{"patch-solid-slope", "lower-vector-average"}})
	require.NoError(t, err)
	assert.Equal(t, ir.VectorAverage, doc.Groups[0].Shader.Nodes[0].(*ir.VectorMath).Operation)
}

func TestRun_DefaultPasses(t *testing.T) {
	doc := &ir.Document{Groups: []ir.Group{solidGroup(&ir.PrincipledBSDF{Name: "Principled"})}}
	require.NoError(t, Run(doc, DefaultPasses(), Options{}))
	assert.NotNil(t, doc.Groups[0].Shader.Node("IsSlope"))
}

func TestRun_NewViolationIsFatal(t *testing.T) {
	broken := Pass{
		Name: "dangle",
		Run: func(doc *ir.Document) error {
			s := &doc.Groups[0].Shader
			s.Links = append(s.Links, ir.Link{FromNode: "nowhere", FromSocket: "X", ToNode: "v", ToSocket: "Y"})
			return nil
		},
	}
	doc := &ir.Document{Groups: []ir.Group{{Name: "G", Shader: ir.Shader{Nodes: []ir.Node{&ir.Value{Name: "v"}}}}}}

	err := Run(doc, []Pass{broken}, Options{})
	require.Error(t, err)
	assert.True(t, ir.IsKind(err, ir.ErrInvalidGraph))
	assert.Contains(t, err.Error(), "dangle")
}

func TestRun_PreexistingViolationTolerated(t *testing.T) {
	doc := &ir.Document{Groups: []ir.Group{{
		Name: "G",
		Shader: ir.Shader{
			Nodes: []ir.Node{&ir.Value{Name: "v"}},
			Links: []ir.Link{{FromNode: "ghost", FromSocket: "X", ToNode: "v", ToSocket: "Y"}},
		},
	}}}
	noop := Pass{Name: "noop", Run: func(*ir.Document) error { return nil }}

	assert.NoError(t, Run(doc, []Pass{noop}, Options{}))
}

func TestRun_PassErrorWrapped(t *testing.T) {
	boom := errors.New("boom")
	failing := Pass{Name: "fails", Run: func(*ir.Document) error { return boom }}

	err := Run(&ir.Document{}, []Pass{failing}, Options{})
	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "rewrite pass fails")
}

func TestPassNames(t *testing.T) {
	assert.Equal(t, []string{"lower-vector-average", "patch-solid-slope"}, PassNames())
}
