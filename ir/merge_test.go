package ir

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func solidMaterial(name string, rgb Vec3) Material {
	return Material{
		Name:               name,
		DisplacementMethod: DisplacementBump,
		UseMIS:             true,
		Shader: Shader{
			Nodes: []Node{
				&Color{Name: "RGB", Value: rgb},
				&GroupReference{
					Name:      "Solid",
					GroupName: "Solid",
					Inputs:    []GroupSocket{{Name: "Color", Type: SocketColor}},
					Outputs:   []GroupSocket{{Name: "BSDF", Type: SocketClosure}},
				},
			},
			Links: []Link{{FromNode: "RGB", FromSocket: "Color", ToNode: "Solid", ToSocket: "Color"}},
		},
	}
}

func simpleGroup(name string) Group {
	return Group{
		Name: name,
		Shader: Shader{
			Nodes: []Node{
				&GroupInput{Name: "in"},
				&Math{Name: "m", Operation: MathMultiply, Inputs: []NodeInput{{Name: "Value2", Value: FloatLiteral(2)}}},
				&GroupOutput{Name: "out"},
			},
			Links: []Link{
				{FromNode: "in", FromSocket: "X", ToNode: "m", ToSocket: "Value1"},
				{FromNode: "m", FromSocket: "Value", ToNode: "out", ToSocket: "Y"},
			},
		},
	}
}

func TestMerge_Union(t *testing.T) {
	a := &Document{
		Materials: []Material{solidMaterial("SOLID-RED", Vec3{1, 0, 0})},
		Groups:    []Group{simpleGroup("Solid")},
	}
	b := &Document{
		Materials: []Material{solidMaterial("SOLID-BLUE", Vec3{0, 0, 1})},
		Groups:    []Group{simpleGroup("Solid"), simpleGroup("Extra")},
	}

	merged, err := Merge(a, b)
	require.NoError(t, err)

	require.Len(t, merged.Materials, 2)
	assert.Equal(t, "SOLID-BLUE", merged.Materials[0].Name)
	assert.Equal(t, "SOLID-RED", merged.Materials[1].Name)

	require.Len(t, merged.Groups, 2)
	assert.Equal(t, "Extra", merged.Groups[0].Name)
	assert.Equal(t, "Solid", merged.Groups[1].Name)
}

func TestMerge_Commutative(t *testing.T) {
	a := &Document{
		Materials: []Material{solidMaterial("B", Vec3{1, 0, 0}), solidMaterial("A", Vec3{0, 1, 0})},
		Groups:    []Group{simpleGroup("Solid")},
	}
	b := &Document{
		Materials: []Material{solidMaterial("C", Vec3{0, 0, 1}), solidMaterial("A", Vec3{0, 1, 0})},
		Groups:    []Group{simpleGroup("Other"), simpleGroup("Solid")},
	}

	ab, err := Merge(a, b)
	require.NoError(t, err)
	ba, err := Merge(b, a)
	require.NoError(t, err)

	assert.Equal(t, ab, ba)
}

func TestMerge_Idempotent(t *testing.T) {
	a := &Document{
		Materials: []Material{solidMaterial("A", Vec3{0, 1, 0})},
		Groups:    []Group{simpleGroup("Solid")},
	}

	once, err := Merge(a)
	require.NoError(t, err)
	twice, err := Merge(a, a)
	require.NoError(t, err)

	assert.Equal(t, once, twice)
}

func TestMerge_Conflict(t *testing.T) {
	a := &Document{Groups: []Group{simpleGroup("Solid")}}
	changed := simpleGroup("Solid")
	changed.Shader.Nodes[1].(*Math).Operation = MathAdd
	b := &Document{Groups: []Group{changed}}

	_, err := Merge(a, b)
	require.Error(t, err)
	assert.True(t, IsKind(err, ErrMergeConflict))
	assert.Contains(t, err.Error(), "group Solid")
}

// Materials that only differ in colors a distiller would clear are still
// different materials as far as merging goes.
func TestMerge_DoesNotNormalizeColors(t *testing.T) {
	a := &Document{Materials: []Material{solidMaterial("SOLID", Vec3{1, 0, 0})}}
	b := &Document{Materials: []Material{solidMaterial("SOLID", Vec3{0, 0, 1})}}

	_, err := Merge(a, b)
	require.Error(t, err)
	assert.True(t, IsKind(err, ErrMergeConflict))
	assert.Contains(t, err.Error(), "material SOLID")
}

func TestMerge_DoesNotAliasInputs(t *testing.T) {
	a := &Document{Groups: []Group{simpleGroup("Solid")}}

	merged, err := Merge(a)
	require.NoError(t, err)

	merged.Groups[0].Shader.Nodes[1].(*Math).Operation = MathAdd
	SetInput(merged.Groups[0].Shader.Nodes[1], "Value2", FloatLiteral(3))

	m := a.Groups[0].Shader.Nodes[1].(*Math)
	assert.Equal(t, MathMultiply, m.Operation)
	assert.Equal(t, []NodeInput{{Name: "Value2", Value: FloatLiteral(2)}}, m.Inputs)
}

func TestMerge_Empty(t *testing.T) {
	merged, err := Merge()
	require.NoError(t, err)
	assert.Empty(t, merged.Materials)
	assert.Empty(t, merged.Groups)
}

func TestMerge_DoesNotAliasSamples(t *testing.T) {
	minmax := true
	ao := float32(0.5)
	m := solidMaterial("SOLID", Vec3{1, 0, 0})
	m.GlossyAOFactor = &ao
	g := Group{
		Name: "Ramps",
		Shader: Shader{Nodes: []Node{
			&RGBRamp{Name: "ramp", Ramp: []float32{1, 2, 3}, RampAlpha: []float32{1}},
			&RGBCurves{Name: "curves", Curves: []float32{0, 1}},
			&Mapping{Name: "map", TexMapping: TexMapping{UseMinMax: &minmax}},
		}},
	}
	in := &Document{Materials: []Material{m}, Groups: []Group{g}}

	merged, err := Merge(in)
	require.NoError(t, err)

	nodes := merged.Groups[0].Shader.Nodes
	nodes[0].(*RGBRamp).Ramp[0] = 99
	nodes[0].(*RGBRamp).RampAlpha[0] = 99
	nodes[1].(*RGBCurves).Curves[0] = 99
	*nodes[2].(*Mapping).TexMapping.UseMinMax = false
	*merged.Materials[0].GlossyAOFactor = 99

	orig := in.Groups[0].Shader.Nodes
	assert.Equal(t, []float32{1, 2, 3}, orig[0].(*RGBRamp).Ramp)
	assert.Equal(t, []float32{1}, orig[0].(*RGBRamp).RampAlpha)
	assert.Equal(t, []float32{0, 1}, orig[1].(*RGBCurves).Curves)
	assert.True(t, minmax)
	assert.Equal(t, float32(0.5), ao)
}
