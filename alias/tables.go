package alias

import "github.com/The0x539/eyesight-xml2py/ir"

// ShaderNodeMix exposes one socket per data type under shared names, so the
// mix variants address theirs by index.
//
//	inputs:  0 Factor(float) 1 Factor(vector) 2 A(float) 3 B(float)
//	         4 A(vector) 5 B(vector) 6 A(color) 7 B(color)
//	outputs: 0 Result(float) 1 Result(vector) 2 Result(color)
var inputAliases = map[string]map[string]string{
	ir.KindMix: {
		"Fac":    "0",
		"Color1": "6",
		"Color2": "7",
	},
	ir.KindMixValue: {
		"Fac":    "0",
		"Value1": "2",
		"Value2": "3",
	},
	ir.KindSwitchFloat: {
		"Fac":    "0",
		"Value1": "2",
		"Value2": "3",
	},
	ir.KindMath: {
		"Value1": "0",
		"Value2": "1",
		"Value3": "2",
	},
	ir.KindVectorMath: {
		"Vector1": "0",
		"Vector2": "1",
		"Vector3": "2",
	},
	ir.KindMixClosure: {
		"Fac":      "0",
		"Closure1": "1",
		"Closure2": "2",
	},
	ir.KindSwitchClosure: {
		"Closure1": "1",
		"Closure2": "2",
	},
	ir.KindAddClosure: {
		"Closure1": "0",
		"Closure2": "1",
	},
	ir.KindPrincipledBSDF: {
		"Subsurface":             "Subsurface Weight",
		"Clearcoat":              "Coat Weight",
		"ClearcoatRoughness":     "Coat Roughness",
		"Clearcoat Roughness":    "Coat Roughness",
		"ClearcoatNormal":        "Coat Normal",
		"Clearcoat Normal":       "Coat Normal",
		"Transmission":           "Transmission Weight",
		"Sheen":                  "Sheen Weight",
		"SheenTint":              "Sheen Tint",
		"Specular":               "Specular IOR Level",
		"SpecularTint":           "Specular Tint",
		"AnisotropicRotation":    "Anisotropic Rotation",
		"SubsurfaceRadius":       "Subsurface Radius",
		"TransmissionRoughness":  "Roughness",
		"Transmission Roughness": "Roughness",
		"SubsurfaceColor":        "Subsurface Radius",
		"BaseColor":              "Base Color",
		"Color":                  "Base Color",
	},
}

var outputAliases = map[string]map[string]string{
	ir.KindMix: {
		"Color": "2",
	},
	ir.KindMixValue: {
		"Value": "0",
	},
	ir.KindSwitchFloat: {
		"Value": "0",
	},
	ir.KindColor: {
		"Color": "0",
	},
	ir.KindValue: {
		"Value": "0",
	},
	ir.KindMixClosure: {
		"Closure": "0",
	},
	ir.KindSwitchClosure: {
		"Closure": "0",
	},
	ir.KindAddClosure: {
		"Closure": "0",
	},
	ir.KindAbsorptionVolume: {
		"Volume": "0",
	},
	ir.KindVector: {
		"Vector": "0",
	},
}
