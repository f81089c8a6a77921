package ir

import "slices"

// Enum is implemented by every enumerated node attribute.
// The value of an enum is its Eyesight spelling.
type Enum interface {
	Valid() bool
}

// MathOperation selects the operation of a Math node.
type MathOperation string

const (
	MathAdd      MathOperation = "add"
	MathMultiply MathOperation = "multiply"
	MathSubtract MathOperation = "subtract"
	MathDivide   MathOperation = "divide"
	MathFloor    MathOperation = "floor"
	MathMinimum  MathOperation = "minimum"
	MathMaximum  MathOperation = "maximum"
	MathLessThan MathOperation = "less_than"
	MathPower    MathOperation = "power"
)

func (o MathOperation) Valid() bool {
	return slices.Contains([]MathOperation{
		MathAdd, MathMultiply, MathSubtract, MathDivide, MathFloor,
		MathMinimum, MathMaximum, MathLessThan, MathPower,
	}, o)
}

// VectorOperation selects the operation of a VectorMath node.
type VectorOperation string

const (
	VectorAverage  VectorOperation = "average"
	VectorMultiply VectorOperation = "multiply"
	VectorAdd      VectorOperation = "add"
	VectorScale    VectorOperation = "scale"
)

func (o VectorOperation) Valid() bool {
	return slices.Contains([]VectorOperation{VectorAverage, VectorMultiply, VectorAdd, VectorScale}, o)
}

// MixOperation selects the blend mode of a color Mix node.
type MixOperation string

const (
	MixDarken MixOperation = "darken"
	MixMix    MixOperation = "mix"
)

func (o MixOperation) Valid() bool { return o == MixDarken || o == MixMix }

// MixType selects the blend mode of a MixValue node.
type MixType string

const MixTypeMix MixType = "mix"

func (t MixType) Valid() bool { return t == MixTypeMix }

// Axis names a coordinate axis.
type Axis string

const (
	AxisX Axis = "x"
	AxisY Axis = "y"
	AxisZ Axis = "z"
)

func (a Axis) Valid() bool { return a == AxisX || a == AxisY || a == AxisZ }

// BSDFDistribution selects the microfacet distribution of a BSDF.
type BSDFDistribution string

const BSDFGGX BSDFDistribution = "ggx"

func (d BSDFDistribution) Valid() bool { return d == BSDFGGX }

// Projection selects the image texture projection.
type Projection string

const ProjectionFlat Projection = "flat"

func (p Projection) Valid() bool { return p == ProjectionFlat }

// VectorType selects how a VectorTransform interprets its input.
type VectorType string

const VectorTypePoint VectorType = "point"

func (t VectorType) Valid() bool { return t == VectorTypePoint }

// VectorSpace names a coordinate space.
type VectorSpace string

const (
	SpaceObject VectorSpace = "object"
	SpaceWorld  VectorSpace = "world"
)

func (s VectorSpace) Valid() bool { return s == SpaceObject || s == SpaceWorld }

// Interpolation selects image texture filtering.
type Interpolation string

const InterpolationLinear Interpolation = "linear"

func (i Interpolation) Valid() bool { return i == InterpolationLinear }

// TexMappingType selects how texture mapping transforms are applied.
type TexMappingType string

const (
	TexMappingPoint   TexMappingType = "point"
	TexMappingTexture TexMappingType = "texture"
)

func (t TexMappingType) Valid() bool { return t == TexMappingPoint || t == TexMappingTexture }

// Extension selects image texture wrapping.
type Extension string

const ExtensionRepeat Extension = "repeat"

func (e Extension) Valid() bool { return e == ExtensionRepeat }

// ColorSpace selects how image texture data is interpreted.
type ColorSpace string

const ColorSpaceColor ColorSpace = "color"

func (c ColorSpace) Valid() bool { return c == ColorSpaceColor }

// SubsurfaceMethod selects the subsurface scattering model.
type SubsurfaceMethod string

const SubsurfaceBurley SubsurfaceMethod = "burley"

func (m SubsurfaceMethod) Valid() bool { return m == SubsurfaceBurley }

// VoronoiColoring selects the Voronoi texture output mode.
type VoronoiColoring string

const VoronoiCells VoronoiColoring = "cells"

func (c VoronoiColoring) Valid() bool { return c == VoronoiCells }

// NormalSpace selects the space of a normal map.
type NormalSpace string

const NormalTangent NormalSpace = "tangent"

func (s NormalSpace) Valid() bool { return s == NormalTangent }

// DisplacementMethod selects how a material displaces its surface.
type DisplacementMethod string

const DisplacementBump DisplacementMethod = "bump"

func (m DisplacementMethod) Valid() bool { return m == DisplacementBump }

// VolumeInterpolation selects volume interpolation.
type VolumeInterpolation string

const VolumeLinear VolumeInterpolation = "linear"

func (i VolumeInterpolation) Valid() bool { return i == VolumeLinear }

// VolumeSampling selects volume sampling.
type VolumeSampling string

const VolumeMultipleImportance VolumeSampling = "multiple_importance"

func (s VolumeSampling) Valid() bool { return s == VolumeMultipleImportance }
