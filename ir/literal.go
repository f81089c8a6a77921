package ir

import "fmt"

// Literal is a type-tagged constant socket value.
// Closure sockets have no literal form.
type Literal interface {
	// Type returns the socket type the literal belongs to.
	Type() SocketType
	literal()
}

// FloatLiteral is a float socket value.
type FloatLiteral float32

func (FloatLiteral) literal()         {}
func (FloatLiteral) Type() SocketType { return SocketFloat }

// VectorLiteral is a vector socket value.
type VectorLiteral Vec3

func (VectorLiteral) literal()         {}
func (VectorLiteral) Type() SocketType { return SocketVector }

// IntLiteral is an integer socket value.
type IntLiteral uint32

func (IntLiteral) literal()         {}
func (IntLiteral) Type() SocketType { return SocketInt }

// ColorLiteral is an RGB color socket value.
type ColorLiteral Vec3

func (ColorLiteral) literal()         {}
func (ColorLiteral) Type() SocketType { return SocketColor }

// BoolLiteral is a boolean socket value.
type BoolLiteral bool

func (BoolLiteral) literal()         {}
func (BoolLiteral) Type() SocketType { return SocketBoolean }

// ZeroLiteral returns the zero value of the given socket type.
func ZeroLiteral(t SocketType) (Literal, error) {
	switch t {
	case SocketFloat:
		return FloatLiteral(0), nil
	case SocketVector:
		return VectorLiteral{}, nil
	case SocketInt:
		return IntLiteral(0), nil
	case SocketColor:
		return ColorLiteral{}, nil
	case SocketBoolean:
		return BoolLiteral(false), nil
	default:
		return nil, fmt.Errorf("socket type %s has no literal value", t)
	}
}
