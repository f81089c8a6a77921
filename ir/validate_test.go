package ir

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateShader_Valid(t *testing.T) {
	g := simpleGroup("Solid")
	assert.Empty(t, ValidateShader("Solid", &g.Shader))
	assert.NoError(t, CheckShader("Solid", &g.Shader))
}

func TestValidateShader_DuplicateName(t *testing.T) {
	s := &Shader{Nodes: []Node{&Value{Name: "v"}, &Color{Name: "v"}}}

	errs := ValidateShader("mat", s)
	require.Len(t, errs, 1)
	assert.Equal(t, "v", errs[0].Node)
	assert.Equal(t, "mat", errs[0].Shader)
	assert.Contains(t, errs[0].Error(), "duplicate node name")
}

func TestValidateShader_DanglingLink(t *testing.T) {
	s := &Shader{
		Nodes: []Node{&Value{Name: "v"}},
		Links: []Link{{FromNode: "v", FromSocket: "Value", ToNode: "ghost", ToSocket: "Fac"}},
	}

	errs := ValidateShader("mat", s)
	require.Len(t, errs, 1)
	assert.Equal(t, "ghost", errs[0].Node)

	err := CheckShader("mat", s)
	require.Error(t, err)
	assert.True(t, IsKind(err, ErrInvalidGraph))
	assert.Contains(t, err.Error(), "ends at an unknown node")
}

func TestValidateShader_UnnamedNode(t *testing.T) {
	s := &Shader{Nodes: []Node{&Geometry{}}}

	errs := ValidateShader("mat", s)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Message, "geometry")
}

func TestBoundaries(t *testing.T) {
	tests := []struct {
		name    string
		nodes   []Node
		wantIn  string
		wantOut string
		wantErr bool
	}{
		{
			name:    "both",
			nodes:   []Node{&GroupOutput{Name: "o"}, &GroupInput{Name: "i"}},
			wantIn:  "i",
			wantOut: "o",
		},
		{
			name:   "no output",
			nodes:  []Node{&GroupInput{Name: "i"}, &Value{Name: "v"}},
			wantIn: "i",
		},
		{
			name:  "none",
			nodes: []Node{&Value{Name: "v"}},
		},
		{
			name:    "two inputs",
			nodes:   []Node{&GroupInput{Name: "a"}, &GroupInput{Name: "b"}},
			wantErr: true,
		},
		{
			name:    "two outputs",
			nodes:   []Node{&GroupOutput{Name: "a"}, &GroupOutput{Name: "b"}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in, out, err := Boundaries(&Shader{Nodes: tt.nodes})
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, IsKind(err, ErrParse))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantIn, in)
			assert.Equal(t, tt.wantOut, out)
		})
	}
}

func TestValidateShader_TwoBoundaries(t *testing.T) {
	s := &Shader{Nodes: []Node{&GroupOutput{Name: "a"}, &GroupOutput{Name: "b"}}}
	errs := ValidateShader("g", s)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Message, "second group_output")
}

func TestSortLinks(t *testing.T) {
	links := []Link{
		{FromNode: "b", FromSocket: "x", ToNode: "c", ToSocket: "y"},
		{FromNode: "a", FromSocket: "z", ToNode: "c", ToSocket: "y"},
		{FromNode: "a", FromSocket: "x", ToNode: "d", ToSocket: "y"},
		{FromNode: "a", FromSocket: "x", ToNode: "c", ToSocket: "z"},
		{FromNode: "a", FromSocket: "x", ToNode: "c", ToSocket: "y"},
	}
	SortLinks(links)

	want := []Link{
		{FromNode: "a", FromSocket: "x", ToNode: "c", ToSocket: "y"},
		{FromNode: "a", FromSocket: "x", ToNode: "c", ToSocket: "z"},
		{FromNode: "a", FromSocket: "x", ToNode: "d", ToSocket: "y"},
		{FromNode: "a", FromSocket: "z", ToNode: "c", ToSocket: "y"},
		{FromNode: "b", FromSocket: "x", ToNode: "c", ToSocket: "y"},
	}
	assert.Equal(t, want, links)
	assert.Zero(t, CompareLinks(want[0], want[0]))
}
