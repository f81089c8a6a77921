package ir

import (
	"cmp"
	"slices"
)

// Document is a parsed Eyesight settings document.
type Document struct {
	Materials []Material
	Groups    []Group
}

// Material is a top-level shading setup.
type Material struct {
	Name                      string              `mapstructure:"name"`
	DisplacementMethod        DisplacementMethod  `mapstructure:"displacement_method" validate:"required"`
	HeterogeneousVolume       bool                `mapstructure:"heterogeneous_volume"`
	UseLocalTuning            bool                `mapstructure:"use_local_tuning"`
	UseMIS                    bool                `mapstructure:"use_mis"`
	UseTransparentShadow      bool                `mapstructure:"use_transparent_shadow"`
	VolumeInterpolationMethod VolumeInterpolation `mapstructure:"volume_interpolation_method" validate:"required"`
	VolumeSamplingMethod      VolumeSampling      `mapstructure:"volume_sampling_method" validate:"required"`

	// Optional tuning factors; nil when the document leaves them unset.
	DiffuseAOFactor      *float32 `mapstructure:"diffuse_ao_factor"`
	GlossyAOFactor       *float32 `mapstructure:"glossy_ao_factor"`
	SubsurfaceAOFactor   *float32 `mapstructure:"subsurface_ao_factor"`
	SubsurfaceFactor     *float32 `mapstructure:"subsurface_factor"`
	TransmissionAOFactor *float32 `mapstructure:"transmission_ao_factor"`

	Shader Shader `mapstructure:"-"`
}

// Group is a named, reusable shader. Its interface is inferred from its
// boundary nodes and call sites, never declared.
type Group struct {
	Name   string `mapstructure:"name"`
	Shader Shader `mapstructure:"-"`
}

// Shader is a node graph.
type Shader struct {
	// Nodes in document order. Names are unique within the shader.
	Nodes []Node

	// Links between sockets of Nodes.
	Links []Link
}

// Node returns the node with the given name, or nil.
func (s *Shader) Node(name string) Node {
	for _, n := range s.Nodes {
		if n.NodeName() == name {
			return n
		}
	}
	return nil
}

// Link connects an output socket of one node to an input socket of another.
type Link struct {
	FromNode   string
	FromSocket string
	ToNode     string
	ToSocket   string
}

// CompareLinks orders links lexicographically by
// (FromNode, FromSocket, ToNode, ToSocket).
func CompareLinks(a, b Link) int {
	return cmp.Or(
		cmp.Compare(a.FromNode, b.FromNode),
		cmp.Compare(a.FromSocket, b.FromSocket),
		cmp.Compare(a.ToNode, b.ToNode),
		cmp.Compare(a.ToSocket, b.ToSocket),
	)
}

// SortLinks sorts links into their total order.
func SortLinks(links []Link) {
	slices.SortFunc(links, CompareLinks)
}

// Socket is one typed entry of an Interface.
type Socket struct {
	Name string
	Type SocketType
}

// Interface is the external socket signature of a group.
// Inputs and Outputs are in declaration order.
type Interface struct {
	Inputs  []Socket
	Outputs []Socket
}

// Input returns the type of the named input socket.
func (i *Interface) Input(name string) (SocketType, bool) {
	return lookupSocket(i.Inputs, name)
}

// Output returns the type of the named output socket.
func (i *Interface) Output(name string) (SocketType, bool) {
	return lookupSocket(i.Outputs, name)
}

func lookupSocket(sockets []Socket, name string) (SocketType, bool) {
	for _, s := range sockets {
		if s.Name == name {
			return s.Type, true
		}
	}
	return 0, false
}

// Group returns the group with the given name, or nil.
func (d *Document) Group(name string) *Group {
	for i := range d.Groups {
		if d.Groups[i].Name == name {
			return &d.Groups[i]
		}
	}
	return nil
}

// Material returns the material with the given name, or nil.
func (d *Document) Material(name string) *Material {
	for i := range d.Materials {
		if d.Materials[i].Name == name {
			return &d.Materials[i]
		}
	}
	return nil
}

// OwnedShader is a shader together with the name of the material or group
// owning it.
type OwnedShader struct {
	Owner  string
	Group  bool
	Shader *Shader
}

// Shaders returns every shader of the document: materials first, then
// groups, each in document order.
func (d *Document) Shaders() []OwnedShader {
	shaders := make([]OwnedShader, 0, len(d.Materials)+len(d.Groups))
	for i := range d.Materials {
		shaders = append(shaders, OwnedShader{Owner: d.Materials[i].Name, Shader: &d.Materials[i].Shader})
	}
	for i := range d.Groups {
		shaders = append(shaders, OwnedShader{Owner: d.Groups[i].Name, Group: true, Shader: &d.Groups[i].Shader})
	}
	return shaders
}
