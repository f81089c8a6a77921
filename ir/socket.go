package ir

import "fmt"

// SocketType is the kind of value carried by a socket.
type SocketType uint8

const (
	SocketFloat SocketType = iota
	SocketVector
	SocketInt
	SocketColor
	SocketBoolean
	SocketClosure
)

var socketTypeNames = [...]string{
	SocketFloat:   "float",
	SocketVector:  "vector",
	SocketInt:     "int",
	SocketColor:   "color",
	SocketBoolean: "boolean",
	SocketClosure: "closure",
}

// String returns the Eyesight spelling of the socket type.
func (t SocketType) String() string {
	if int(t) < len(socketTypeNames) {
		return socketTypeNames[t]
	}
	return fmt.Sprintf("SocketType(%d)", uint8(t))
}

// ParseSocketType parses the Eyesight spelling of a socket type.
func ParseSocketType(s string) (SocketType, error) {
	for i, name := range socketTypeNames {
		if name == s {
			return SocketType(i), nil
		}
	}
	return 0, fmt.Errorf("unknown socket type %q", s)
}

// Vec3 is a three-component float vector, used for vectors and RGB colors.
type Vec3 [3]float32
