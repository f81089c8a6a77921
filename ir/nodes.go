package ir

// Node is a single node of a shader graph.
//
// The set of implementations is closed: every Eyesight node kind is one of the
// pointer types declared in this file.
type Node interface {
	// NodeName returns the node's name, unique within its shader.
	NodeName() string
	node()
}

// NodeInput is a literal default value for one of a node's input sockets.
type NodeInput struct {
	Name  string
	Value Literal
}

// GroupSocket is a typed socket usage recorded at a group call site.
// Value is nil when the call site gives the socket no literal default.
type GroupSocket struct {
	Name  string
	Type  SocketType
	Value Literal
}

// TexMapping holds the texture-space transform shared by texture nodes.
type TexMapping struct {
	Rotation    Vec3           `mapstructure:"tex_mapping.rotation"`
	Scale       Vec3           `mapstructure:"tex_mapping.scale"`
	Translation Vec3           `mapstructure:"tex_mapping.translation"`
	Type        TexMappingType `mapstructure:"tex_mapping.type" validate:"required"`
	XMapping    Axis           `mapstructure:"tex_mapping.x_mapping"`
	YMapping    Axis           `mapstructure:"tex_mapping.y_mapping"`
	ZMapping    Axis           `mapstructure:"tex_mapping.z_mapping"`
	UseMinMax   *bool          `mapstructure:"tex_mapping.use_minmax"`
}

// GroupReference is a call site of a Group.
type GroupReference struct {
	Name      string        `mapstructure:"name"`
	GroupName string        `mapstructure:"group_name"`
	Inputs    []GroupSocket `mapstructure:"-"`
	Outputs   []GroupSocket `mapstructure:"-"`
}

// GroupInput is the boundary node exposing a group's inputs to its shader.
type GroupInput struct {
	Name string `mapstructure:"name"`
}

// GroupOutput is the boundary node collecting a group's outputs.
type GroupOutput struct {
	Name string `mapstructure:"name"`
}

type Bump struct {
	Name   string      `mapstructure:"name"`
	Enable bool        `mapstructure:"enable"`
	Invert bool        `mapstructure:"invert"`
	Inputs []NodeInput `mapstructure:"-"`
}

type NoiseTexture struct {
	Name       string      `mapstructure:"name"`
	TexMapping TexMapping  `mapstructure:",squash"`
	Inputs     []NodeInput `mapstructure:"-"`
}

// RoundingEdgeNormal is Eyesight's bevel node.
type RoundingEdgeNormal struct {
	Name   string      `mapstructure:"name"`
	Enable bool        `mapstructure:"enable"`
	Inputs []NodeInput `mapstructure:"-"`
}

type SwitchClosure struct {
	Name   string `mapstructure:"name"`
	Enable bool   `mapstructure:"enable"`
}

type MixClosure struct {
	Name   string      `mapstructure:"name"`
	Inputs []NodeInput `mapstructure:"-"`
}

type Math struct {
	Name      string        `mapstructure:"name"`
	Operation MathOperation `mapstructure:"type" validate:"required"`
	UseClamp  bool          `mapstructure:"use_clamp"`
	Inputs    []NodeInput   `mapstructure:"-"`
}

type Mapping struct {
	Name       string      `mapstructure:"name"`
	TexMapping TexMapping  `mapstructure:",squash"`
	Inputs     []NodeInput `mapstructure:"-"`
}

// RGBRamp is a color ramp. Ramp holds uniformly spaced RGB samples and
// RampAlpha the matching alpha samples.
type RGBRamp struct {
	Name        string    `mapstructure:"name"`
	Interpolate bool      `mapstructure:"interpolate"`
	Ramp        []float32 `mapstructure:"ramp"`
	RampAlpha   []float32 `mapstructure:"ramp_alpha"`
}

type DiffuseBSDF struct {
	Name   string      `mapstructure:"name"`
	Inputs []NodeInput `mapstructure:"-"`
}

type ProjectToAxisPlane struct {
	Name string `mapstructure:"name"`
}

type Value struct {
	Name  string  `mapstructure:"name"`
	Value float32 `mapstructure:"value"`
}

type ObjectInfo struct {
	Name string `mapstructure:"name"`
}

// ImageTexture samples an image file. An empty Filename means no image.
type ImageTexture struct {
	Name          string        `mapstructure:"name"`
	ColorSpace    ColorSpace    `mapstructure:"color_space" validate:"required"`
	Extension     Extension     `mapstructure:"extension"`
	Filename      string        `mapstructure:"filename"`
	Interpolation Interpolation `mapstructure:"interpolation"`
	MaxMipLevel   uint8         `mapstructure:"max_mip_lvl"`
	Projection    Projection    `mapstructure:"projection"`
	TexMapping    TexMapping    `mapstructure:",squash"`
	TexelPerPixel float32       `mapstructure:"texel_per_pixel"`
}

type MixValue struct {
	Name     string      `mapstructure:"name"`
	MixType  MixType     `mapstructure:"type" validate:"required"`
	UseClamp bool        `mapstructure:"use_clamp"`
	Inputs   []NodeInput `mapstructure:"-"`
}

type SwitchFloat struct {
	Name   string      `mapstructure:"name"`
	Enable bool        `mapstructure:"enable"`
	Inputs []NodeInput `mapstructure:"-"`
}

type UVDegradation struct {
	Name   string      `mapstructure:"name"`
	Inputs []NodeInput `mapstructure:"-"`
}

type Mix struct {
	Name      string       `mapstructure:"name"`
	Operation MixOperation `mapstructure:"type" validate:"required"`
	UseClamp  bool         `mapstructure:"use_clamp"`
	Inputs    []NodeInput  `mapstructure:"-"`
}

type VectorTransform struct {
	Name        string      `mapstructure:"name"`
	ConvertFrom VectorSpace `mapstructure:"convert_from" validate:"required"`
	ConvertTo   VectorSpace `mapstructure:"convert_to" validate:"required"`
	VectorType  VectorType  `mapstructure:"type" validate:"required"`
}

type TextureCoordinate struct {
	Name string `mapstructure:"name"`
}

type VectorMath struct {
	Name      string          `mapstructure:"name"`
	Operation VectorOperation `mapstructure:"type" validate:"required"`
	Inputs    []NodeInput     `mapstructure:"-"`
}

// PrincipledBSDF is the principled surface shader. SubsurfaceMethod is empty
// when the document leaves it unset.
type PrincipledBSDF struct {
	Name             string           `mapstructure:"name"`
	Distribution     BSDFDistribution `mapstructure:"distribution" validate:"required"`
	SubsurfaceMethod SubsurfaceMethod `mapstructure:"subsurface_method"`
	Inputs           []NodeInput      `mapstructure:"-"`
}

type BrightnessContrast struct {
	Name   string      `mapstructure:"name"`
	Inputs []NodeInput `mapstructure:"-"`
}

type NormalMap struct {
	Name      string      `mapstructure:"name"`
	Attribute string      `mapstructure:"attribute"`
	Space     NormalSpace `mapstructure:"space" validate:"required"`
	Inputs    []NodeInput `mapstructure:"-"`
}

type UVMap struct {
	Name      string `mapstructure:"name"`
	Attribute string `mapstructure:"attribute"`
	FromDupli bool   `mapstructure:"from_dupli"`
}

type GlossyBSDF struct {
	Name         string           `mapstructure:"name"`
	Distribution BSDFDistribution `mapstructure:"distribution" validate:"required"`
	Inputs       []NodeInput      `mapstructure:"-"`
}

type Vector struct {
	Name  string `mapstructure:"name"`
	Value Vec3   `mapstructure:"value"`
}

// RGBCurves holds uniformly spaced RGB curve samples over [MinX, MaxX].
type RGBCurves struct {
	Name   string      `mapstructure:"name"`
	Curves []float32   `mapstructure:"curves"`
	MinX   float32     `mapstructure:"min_x"`
	MaxX   float32     `mapstructure:"max_x"`
	Inputs []NodeInput `mapstructure:"-"`
}

type VoronoiTexture struct {
	Name     string          `mapstructure:"name"`
	Coloring VoronoiColoring `mapstructure:"coloring" validate:"required"`
	Inputs   []NodeInput     `mapstructure:"-"`
}

type Geometry struct {
	Name string `mapstructure:"name"`
}

type AbsorptionVolume struct {
	Name   string      `mapstructure:"name"`
	Inputs []NodeInput `mapstructure:"-"`
}

type AddClosure struct {
	Name string `mapstructure:"name"`
}

type LayerWeight struct {
	Name   string      `mapstructure:"name"`
	Inputs []NodeInput `mapstructure:"-"`
}

type TranslucentBSDF struct {
	Name   string      `mapstructure:"name"`
	Inputs []NodeInput `mapstructure:"-"`
}

type TransparentBSDF struct {
	Name   string      `mapstructure:"name"`
	Inputs []NodeInput `mapstructure:"-"`
}

type Color struct {
	Name  string `mapstructure:"name"`
	Value Vec3   `mapstructure:"value"`
}

type Emission struct {
	Name   string      `mapstructure:"name"`
	Inputs []NodeInput `mapstructure:"-"`
}

// IsSlope is a target-side construct with no Eyesight counterpart. Rewrite
// patches insert it; documents never contain it.
type IsSlope struct {
	Name   string      `mapstructure:"name"`
	Inputs []NodeInput `mapstructure:"-"`
}

func (n *GroupReference) NodeName() string     { return n.Name }
func (n *GroupInput) NodeName() string         { return n.Name }
func (n *GroupOutput) NodeName() string        { return n.Name }
func (n *Bump) NodeName() string               { return n.Name }
func (n *NoiseTexture) NodeName() string       { return n.Name }
func (n *RoundingEdgeNormal) NodeName() string { return n.Name }
func (n *SwitchClosure) NodeName() string      { return n.Name }
func (n *MixClosure) NodeName() string         { return n.Name }
func (n *Math) NodeName() string               { return n.Name }
func (n *Mapping) NodeName() string            { return n.Name }
func (n *RGBRamp) NodeName() string            { return n.Name }
func (n *DiffuseBSDF) NodeName() string        { return n.Name }
func (n *ProjectToAxisPlane) NodeName() string { return n.Name }
func (n *Value) NodeName() string              { return n.Name }
func (n *ObjectInfo) NodeName() string         { return n.Name }
func (n *ImageTexture) NodeName() string       { return n.Name }
func (n *MixValue) NodeName() string           { return n.Name }
func (n *SwitchFloat) NodeName() string        { return n.Name }
func (n *UVDegradation) NodeName() string      { return n.Name }
func (n *Mix) NodeName() string                { return n.Name }
func (n *VectorTransform) NodeName() string    { return n.Name }
func (n *TextureCoordinate) NodeName() string  { return n.Name }
func (n *VectorMath) NodeName() string         { return n.Name }
func (n *PrincipledBSDF) NodeName() string     { return n.Name }
func (n *BrightnessContrast) NodeName() string { return n.Name }
func (n *NormalMap) NodeName() string          { return n.Name }
func (n *UVMap) NodeName() string              { return n.Name }
func (n *GlossyBSDF) NodeName() string         { return n.Name }
func (n *Vector) NodeName() string             { return n.Name }
func (n *RGBCurves) NodeName() string          { return n.Name }
func (n *VoronoiTexture) NodeName() string     { return n.Name }
func (n *Geometry) NodeName() string           { return n.Name }
func (n *AbsorptionVolume) NodeName() string   { return n.Name }
func (n *AddClosure) NodeName() string         { return n.Name }
func (n *LayerWeight) NodeName() string        { return n.Name }
func (n *TranslucentBSDF) NodeName() string    { return n.Name }
func (n *TransparentBSDF) NodeName() string    { return n.Name }
func (n *Color) NodeName() string              { return n.Name }
func (n *Emission) NodeName() string           { return n.Name }
func (n *IsSlope) NodeName() string            { return n.Name }

func (*GroupReference) node()     {}
func (*GroupInput) node()         {}
func (*GroupOutput) node()        {}
func (*Bump) node()               {}
func (*NoiseTexture) node()       {}
func (*RoundingEdgeNormal) node() {}
func (*SwitchClosure) node()      {}
func (*MixClosure) node()         {}
func (*Math) node()               {}
func (*Mapping) node()            {}
func (*RGBRamp) node()            {}
func (*DiffuseBSDF) node()        {}
func (*ProjectToAxisPlane) node() {}
func (*Value) node()              {}
func (*ObjectInfo) node()         {}
func (*ImageTexture) node()       {}
func (*MixValue) node()           {}
func (*SwitchFloat) node()        {}
func (*UVDegradation) node()      {}
func (*Mix) node()                {}
func (*VectorTransform) node()    {}
func (*TextureCoordinate) node()  {}
func (*VectorMath) node()         {}
func (*PrincipledBSDF) node()     {}
func (*BrightnessContrast) node() {}
func (*NormalMap) node()          {}
func (*UVMap) node()              {}
func (*GlossyBSDF) node()         {}
func (*Vector) node()             {}
func (*RGBCurves) node()          {}
func (*VoronoiTexture) node()     {}
func (*Geometry) node()           {}
func (*AbsorptionVolume) node()   {}
func (*AddClosure) node()         {}
func (*LayerWeight) node()        {}
func (*TranslucentBSDF) node()    {}
func (*TransparentBSDF) node()    {}
func (*Color) node()              {}
func (*Emission) node()           {}
func (*IsSlope) node()            {}
