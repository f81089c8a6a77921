package ir

import (
	"reflect"
	"slices"
)

// Node kinds are the Eyesight element names of the node variants.
const (
	KindGroup              = "group"
	KindGroupInput         = "group_input"
	KindGroupOutput        = "group_output"
	KindBump               = "bump"
	KindNoiseTexture       = "noise_texture"
	KindRoundingEdgeNormal = "rounding_edge_normal"
	KindSwitchClosure      = "switch_closure"
	KindMixClosure         = "mix_closure"
	KindMath               = "math"
	KindMapping            = "mapping"
	KindRGBRamp            = "rgb_ramp"
	KindDiffuseBSDF        = "diffuse_bsdf"
	KindProjectToAxisPlane = "project_to_axis_plane"
	KindValue              = "value"
	KindObjectInfo         = "object_info"
	KindImageTexture       = "image_texture"
	KindMixValue           = "mix_value"
	KindSwitchFloat        = "switch_float"
	KindUVDegradation      = "uv_degradation"
	KindMix                = "mix"
	KindVectorTransform    = "vector_transform"
	KindTextureCoordinate  = "texture_coordinate"
	KindVectorMath         = "vector_math"
	KindPrincipledBSDF     = "principled_bsdf"
	KindBrightnessContrast = "brightness_contrast"
	KindNormalMap          = "normal_map"
	KindUVMap              = "uvmap"
	KindGlossyBSDF         = "glossy_bsdf"
	KindVector             = "vector"
	KindRGBCurves          = "rgb_curves"
	KindVoronoiTexture     = "voronoi_texture"
	KindGeometry           = "geometry"
	KindAbsorptionVolume   = "absorption_volume"
	KindAddClosure         = "add_closure"
	KindLayerWeight        = "layer_weight"
	KindTranslucentBSDF    = "translucent_bsdf"
	KindTransparentBSDF    = "transparent_bsdf"
	KindColor              = "color"
	KindEmission           = "emission"
	KindIsSlope            = "is_slope"
)

var constructors = map[string]func() Node{
	KindGroup:              func() Node { return new(GroupReference) },
	KindGroupInput:         func() Node { return new(GroupInput) },
	KindGroupOutput:        func() Node { return new(GroupOutput) },
	KindBump:               func() Node { return new(Bump) },
	KindNoiseTexture:       func() Node { return new(NoiseTexture) },
	KindRoundingEdgeNormal: func() Node { return new(RoundingEdgeNormal) },
	KindSwitchClosure:      func() Node { return new(SwitchClosure) },
	KindMixClosure:         func() Node { return new(MixClosure) },
	KindMath:               func() Node { return new(Math) },
	KindMapping:            func() Node { return new(Mapping) },
	KindRGBRamp:            func() Node { return new(RGBRamp) },
	KindDiffuseBSDF:        func() Node { return new(DiffuseBSDF) },
	KindProjectToAxisPlane: func() Node { return new(ProjectToAxisPlane) },
	KindValue:              func() Node { return new(Value) },
	KindObjectInfo:         func() Node { return new(ObjectInfo) },
	KindImageTexture:       func() Node { return new(ImageTexture) },
	KindMixValue:           func() Node { return new(MixValue) },
	KindSwitchFloat:        func() Node { return new(SwitchFloat) },
	KindUVDegradation:      func() Node { return new(UVDegradation) },
	KindMix:                func() Node { return new(Mix) },
	KindVectorTransform:    func() Node { return new(VectorTransform) },
	KindTextureCoordinate:  func() Node { return new(TextureCoordinate) },
	KindVectorMath:         func() Node { return new(VectorMath) },
	KindPrincipledBSDF:     func() Node { return new(PrincipledBSDF) },
	KindBrightnessContrast: func() Node { return new(BrightnessContrast) },
	KindNormalMap:          func() Node { return new(NormalMap) },
	KindUVMap:              func() Node { return new(UVMap) },
	KindGlossyBSDF:         func() Node { return new(GlossyBSDF) },
	KindVector:             func() Node { return new(Vector) },
	KindRGBCurves:          func() Node { return new(RGBCurves) },
	KindVoronoiTexture:     func() Node { return new(VoronoiTexture) },
	KindGeometry:           func() Node { return new(Geometry) },
	KindAbsorptionVolume:   func() Node { return new(AbsorptionVolume) },
	KindAddClosure:         func() Node { return new(AddClosure) },
	KindLayerWeight:        func() Node { return new(LayerWeight) },
	KindTranslucentBSDF:    func() Node { return new(TranslucentBSDF) },
	KindTransparentBSDF:    func() Node { return new(TransparentBSDF) },
	KindColor:              func() Node { return new(Color) },
	KindEmission:           func() Node { return new(Emission) },
	KindIsSlope:            func() Node { return new(IsSlope) },
}

var kindsByType = func() map[reflect.Type]string {
	m := make(map[reflect.Type]string, len(constructors))
	for kind, newNode := range constructors {
		m[reflect.TypeOf(newNode())] = kind
	}
	return m
}()

// NewNode returns a zero node of the given kind.
// IsSlope is not an Eyesight element and is not returned here.
func NewNode(kind string) (Node, bool) {
	if kind == KindIsSlope {
		return nil, false
	}
	newNode, ok := constructors[kind]
	if !ok {
		return nil, false
	}
	return newNode(), true
}

// KindOf returns the kind of a node, or "" for a nil node.
func KindOf(n Node) string {
	if n == nil {
		return ""
	}
	return kindsByType[reflect.TypeOf(n)]
}

// Kinds returns every node kind, sorted.
func Kinds() []string {
	kinds := make([]string, 0, len(constructors))
	for kind := range constructors {
		kinds = append(kinds, kind)
	}
	slices.Sort(kinds)
	return kinds
}

// InputsOf returns the literal defaults declared on a node.
// Nodes without default inputs return nil.
func InputsOf(n Node) []NodeInput {
	if p := inputsPtr(n); p != nil {
		return *p
	}
	return nil
}

// SetInput sets the literal default for a named input, appending it if the
// node declares no default for that socket yet. It reports false for nodes
// that cannot carry literal defaults.
func SetInput(n Node, name string, value Literal) bool {
	p := inputsPtr(n)
	if p == nil {
		return false
	}
	for i := range *p {
		if (*p)[i].Name == name {
			(*p)[i].Value = value
			return true
		}
	}
	*p = append(*p, NodeInput{Name: name, Value: value})
	return true
}

// RemoveInput drops the literal default for a named input, returning it.
func RemoveInput(n Node, name string) (Literal, bool) {
	p := inputsPtr(n)
	if p == nil {
		return nil, false
	}
	for i, in := range *p {
		if in.Name == name {
			*p = slices.Delete(*p, i, i+1)
			return in.Value, true
		}
	}
	return nil, false
}

func inputsPtr(n Node) *[]NodeInput {
	switch n := n.(type) {
	case *Bump:
		return &n.Inputs
	case *NoiseTexture:
		return &n.Inputs
	case *RoundingEdgeNormal:
		return &n.Inputs
	case *MixClosure:
		return &n.Inputs
	case *Math:
		return &n.Inputs
	case *Mapping:
		return &n.Inputs
	case *DiffuseBSDF:
		return &n.Inputs
	case *MixValue:
		return &n.Inputs
	case *SwitchFloat:
		return &n.Inputs
	case *UVDegradation:
		return &n.Inputs
	case *Mix:
		return &n.Inputs
	case *VectorMath:
		return &n.Inputs
	case *PrincipledBSDF:
		return &n.Inputs
	case *BrightnessContrast:
		return &n.Inputs
	case *NormalMap:
		return &n.Inputs
	case *GlossyBSDF:
		return &n.Inputs
	case *RGBCurves:
		return &n.Inputs
	case *VoronoiTexture:
		return &n.Inputs
	case *AbsorptionVolume:
		return &n.Inputs
	case *LayerWeight:
		return &n.Inputs
	case *TranslucentBSDF:
		return &n.Inputs
	case *TransparentBSDF:
		return &n.Inputs
	case *Emission:
		return &n.Inputs
	case *IsSlope:
		return &n.Inputs
	}
	return nil
}
