package infer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/The0x539/eyesight-xml2py/ir"
)

// tintGroup has inputs Color and Strength and a single Result output.
func tintGroup(name string) ir.Group {
	return ir.Group{
		Name: name,
		Shader: ir.Shader{
			Nodes: []ir.Node{
				&ir.GroupInput{Name: "in"},
				&ir.Mix{Name: "mix", Operation: ir.MixMix},
				&ir.GroupOutput{Name: "out"},
			},
			Links: []ir.Link{
				{FromNode: "in", FromSocket: "Color", ToNode: "mix", ToSocket: "Color1"},
				{FromNode: "in", FromSocket: "Strength", ToNode: "mix", ToSocket: "Fac"},
				{FromNode: "in", FromSocket: "Color", ToNode: "mix", ToSocket: "Color2"},
				{FromNode: "mix", FromSocket: "Color", ToNode: "out", ToSocket: "Result"},
			},
		},
	}
}

func call(name, group string, inputs, outputs []ir.GroupSocket) *ir.GroupReference {
	return &ir.GroupReference{Name: name, GroupName: group, Inputs: inputs, Outputs: outputs}
}

func material(name string, nodes ...ir.Node) ir.Material {
	return ir.Material{Name: name, Shader: ir.Shader{Nodes: nodes}}
}

func TestInterfaces_Resolved(t *testing.T) {
	doc := &ir.Document{
		Groups: []ir.Group{tintGroup("Tint")},
		Materials: []ir.Material{
			material("A", call("t", "Tint",
				[]ir.GroupSocket{{Name: "Color", Type: ir.SocketColor}},
				[]ir.GroupSocket{{Name: "Result", Type: ir.SocketColor}})),
			material("B", call("t", "Tint",
				[]ir.GroupSocket{{Name: "Strength", Type: ir.SocketFloat, Value: ir.FloatLiteral(0.5)}},
				nil)),
		},
	}

	res, err := Interfaces(doc, Options{})
	require.NoError(t, err)
	assert.Empty(t, res.Warnings)

	iface, ok := res.Interface("Tint")
	require.True(t, ok)
	assert.Equal(t, []ir.Socket{
		{Name: "Color", Type: ir.SocketColor},
		{Name: "Strength", Type: ir.SocketFloat},
	}, iface.Inputs)
	assert.Equal(t, []ir.Socket{{Name: "Result", Type: ir.SocketColor}}, iface.Outputs)
}

func TestInterfaces_TypeMismatch(t *testing.T) {
	doc := &ir.Document{
		Groups: []ir.Group{tintGroup("Tint")},
		Materials: []ir.Material{
			material("A", call("t", "Tint", []ir.GroupSocket{{Name: "Strength", Type: ir.SocketFloat}}, nil)),
			material("B", call("u", "Tint", []ir.GroupSocket{{Name: "Strength", Type: ir.SocketColor}}, nil)),
		},
	}

	_, err := Interfaces(doc, Options{})
	require.Error(t, err)
	assert.True(t, ir.IsKind(err, ir.ErrInterfaceTypeMismatch))
	assert.Contains(t, err.Error(), "Tint.Strength")
	assert.Contains(t, err.Error(), "A.t")
	assert.Contains(t, err.Error(), "B.u")
}

func TestInterfaces_UnusedGroupDropped(t *testing.T) {
	doc := &ir.Document{
		Groups: []ir.Group{tintGroup("Tint"), tintGroup("Unused")},
		Materials: []ir.Material{
			material("A", call("t", "Tint",
				[]ir.GroupSocket{{Name: "Color", Type: ir.SocketColor}, {Name: "Strength", Type: ir.SocketFloat}},
				[]ir.GroupSocket{{Name: "Result", Type: ir.SocketColor}})),
		},
	}

	res, err := Interfaces(doc, Options{})
	require.NoError(t, err)
	assert.Equal(t, []string{"Tint"}, res.Groups())
	assert.Empty(t, res.Warnings, "unused groups never need a complete interface")
}

func TestInterfaces_UnknownSocketWarning(t *testing.T) {
	doc := &ir.Document{
		Groups: []ir.Group{tintGroup("Tint")},
		Materials: []ir.Material{
			material("A", call("t", "Tint", []ir.GroupSocket{{Name: "Color", Type: ir.SocketColor}}, nil)),
		},
	}

	res, err := Interfaces(doc, Options{})
	require.NoError(t, err)

	require.Len(t, res.Warnings, 2)
	assert.Equal(t, ir.WarnUnknownSocket, res.Warnings[0].Kind)
	assert.Equal(t, "Tint", res.Warnings[0].Group)
	assert.Equal(t, "Strength", res.Warnings[0].Socket)
	assert.Equal(t, "Result", res.Warnings[1].Socket)

	// Only resolved sockets are returned.
	iface, _ := res.Interface("Tint")
	assert.Equal(t, []ir.Socket{{Name: "Color", Type: ir.SocketColor}}, iface.Inputs)
	assert.Empty(t, iface.Outputs)
}

func TestInterfaces_UndeclaredSocket(t *testing.T) {
	doc := &ir.Document{
		Groups: []ir.Group{tintGroup("Tint")},
		Materials: []ir.Material{
			material("A", call("t", "Tint",
				[]ir.GroupSocket{
					{Name: "Color", Type: ir.SocketColor},
					{Name: "Strength", Type: ir.SocketFloat},
					{Name: "Ghost", Type: ir.SocketBoolean},
				},
				[]ir.GroupSocket{{Name: "Result", Type: ir.SocketColor}})),
		},
	}

	res, err := Interfaces(doc, Options{})
	require.NoError(t, err)
	require.Len(t, res.Warnings, 1)
	assert.Equal(t, ir.WarnUndeclaredSocket, res.Warnings[0].Kind)
	assert.Equal(t, "Ghost", res.Warnings[0].Socket)

	iface, _ := res.Interface("Tint")
	require.Len(t, iface.Inputs, 3)
	assert.Equal(t, ir.Socket{Name: "Ghost", Type: ir.SocketBoolean}, iface.Inputs[2])
}

func TestInterfaces_NoOutputBoundary(t *testing.T) {
	doc := &ir.Document{
		Groups: []ir.Group{{
			Name: "Sink",
			Shader: ir.Shader{
				Nodes: []ir.Node{&ir.GroupInput{Name: "in"}, &ir.Math{Name: "m", Operation: ir.MathAdd}},
				Links: []ir.Link{{FromNode: "in", FromSocket: "X", ToNode: "m", ToSocket: "Value1"}},
			},
		}},
		Materials: []ir.Material{
			material("A", call("s", "Sink", []ir.GroupSocket{{Name: "X", Type: ir.SocketFloat}}, nil)),
		},
	}

	res, err := Interfaces(doc, Options{})
	require.NoError(t, err)
	assert.Empty(t, res.Warnings)

	iface, ok := res.Interface("Sink")
	require.True(t, ok)
	assert.Empty(t, iface.Outputs)
	assert.Equal(t, []ir.Socket{{Name: "X", Type: ir.SocketFloat}}, iface.Inputs)
}

func TestInterfaces_CallSitesInsideGroups(t *testing.T) {
	outer := ir.Group{
		Name: "Outer",
		Shader: ir.Shader{Nodes: []ir.Node{
			call("inner", "Tint",
				[]ir.GroupSocket{{Name: "Color", Type: ir.SocketColor}, {Name: "Strength", Type: ir.SocketFloat}},
				[]ir.GroupSocket{{Name: "Result", Type: ir.SocketColor}}),
		}},
	}
	doc := &ir.Document{
		Groups:    []ir.Group{tintGroup("Tint"), outer},
		Materials: []ir.Material{material("A", call("o", "Outer", nil, nil))},
	}

	res, err := Interfaces(doc, Options{})
	require.NoError(t, err)
	assert.Equal(t, []string{"Outer", "Tint"}, res.Groups())

	iface, _ := res.Interface("Tint")
	assert.Len(t, iface.Inputs, 2)
}

func TestInterfaces_UndefinedGroup(t *testing.T) {
	doc := &ir.Document{
		Materials: []ir.Material{material("A", call("x", "Missing", nil, nil))},
	}

	_, err := Interfaces(doc, Options{})
	require.Error(t, err)
	assert.True(t, ir.IsKind(err, ir.ErrUndefinedGroup))
	assert.Contains(t, err.Error(), "Missing")
}

func TestInterfaces_TwoInputBoundaries(t *testing.T) {
	g := tintGroup("Tint")
	g.Shader.Nodes = append(g.Shader.Nodes, &ir.GroupInput{Name: "in2"})
	doc := &ir.Document{Groups: []ir.Group{g}}

	_, err := Interfaces(doc, Options{})
	require.Error(t, err)
	assert.True(t, ir.IsKind(err, ir.ErrParse))
	assert.Contains(t, err.Error(), "group Tint")
}

func TestInterfaces_PassThroughLink(t *testing.T) {
	doc := &ir.Document{
		Groups: []ir.Group{{
			Name: "Wire",
			Shader: ir.Shader{
				Nodes: []ir.Node{&ir.GroupInput{Name: "in"}, &ir.GroupOutput{Name: "out"}},
				Links: []ir.Link{{FromNode: "in", FromSocket: "A", ToNode: "out", ToSocket: "B"}},
			},
		}},
		Materials: []ir.Material{
			material("M", call("w", "Wire",
				[]ir.GroupSocket{{Name: "A", Type: ir.SocketVector}},
				[]ir.GroupSocket{{Name: "B", Type: ir.SocketVector}})),
		},
	}

	res, err := Interfaces(doc, Options{})
	require.NoError(t, err)
	iface, _ := res.Interface("Wire")
	assert.Equal(t, []ir.Socket{{Name: "A", Type: ir.SocketVector}}, iface.Inputs)
	assert.Equal(t, []ir.Socket{{Name: "B", Type: ir.SocketVector}}, iface.Outputs)
}
