package alias

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/The0x539/eyesight-xml2py/ir"
)

func TestInput(t *testing.T) {
	tests := []struct {
		kind, socket string
		want         Key
	}{
		{ir.KindMix, "Color1", "6"},
		{ir.KindMix, "Color2", "7"},
		{ir.KindMixValue, "Value1", "2"},
		{ir.KindSwitchFloat, "Value2", "3"},
		{ir.KindPrincipledBSDF, "BaseColor", "Base Color"},
		{ir.KindPrincipledBSDF, "Clearcoat Roughness", "Coat Roughness"},
		{ir.KindPrincipledBSDF, "Roughness", "Roughness"},
		{ir.KindBump, "Height", "Height"},
		{"no_such_kind", "Whatever", "Whatever"},
	}
	for _, tt := range tests {
		t.Run(tt.kind+"/"+tt.socket, func(t *testing.T) {
			assert.Equal(t, tt.want, Input(tt.kind, tt.socket))
		})
	}
}

// Color is an input alias on a Principled BSDF but an output alias on a
// Color node, and the two sides must not leak into each other.
func TestInputOutputSeparate(t *testing.T) {
	assert.Equal(t, Key("0"), Output(ir.KindColor, "Color"))
	assert.Equal(t, Key("Color"), Input(ir.KindColor, "Color"))
	assert.Equal(t, Key("Base Color"), Input(ir.KindPrincipledBSDF, "Color"))
	assert.Equal(t, Key("Color"), Output(ir.KindPrincipledBSDF, "Color"))
	assert.Equal(t, Key("2"), Output(ir.KindMix, "Color"))
	assert.Equal(t, Key("0"), Output(ir.KindValue, "Value"))
}

func TestKey_Python(t *testing.T) {
	tests := []struct {
		key  Key
		want string
	}{
		{"0", "0"},
		{"7", "7"},
		{"12", "12"},
		{"-1", `"-1"`},
		{"1.5", `"1.5"`},
		{"", `""`},
		{"Base Color", `"Base Color"`},
		{`Say "hi"`, `"Say \"hi\""`},
		{`back\slash`, `"back\\slash"`},
		{"tab\there", `"tab\there"`},
		{"bell\x07", `"bell\x07"`},
		{"99999999999999999999999", `"99999999999999999999999"`},
	}
	for _, tt := range tests {
		t.Run(string(tt.key), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.key.Python())
		})
	}
}

func TestKey_Index(t *testing.T) {
	n, ok := Key("6").Index()
	assert.True(t, ok)
	assert.Equal(t, 6, n)

	_, ok = Key("Color").Index()
	assert.False(t, ok)

	_, ok = Key("+6").Index()
	assert.False(t, ok)
}
