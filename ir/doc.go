// Package ir defines the intermediate representation of Eyesight shading
// node graphs.
//
// The IR is designed to be:
//   - Closed: every node kind is a concrete Go type implementing the sealed
//     Node interface, so backends can switch over the full set exhaustively
//   - Typed: group sockets and literal defaults carry a SocketType
//   - Mutable in place: rewrite passes edit shaders directly; every later
//     stage treats them as read-only
//
// # Structure
//
// The IR is organized around a Document that contains:
//   - Materials: top-level shading setups, each owning one Shader
//   - Groups: named reusable Shaders, referenced from other shaders through
//     GroupReference call sites
//
// A Shader is an ordered list of Nodes plus a list of Links. Links name their
// endpoints by node name and socket name; node names are unique per shader.
//
// # Translation Pipeline
//
// The typical pipeline is:
//
//	Eyesight XML → Document → Merge → Rewrite → Infer → Schedule → Python
//
// CheckShader verifies the structural invariants every stage relies on, and
// Error / Warning carry the diagnostics produced along the way.
package ir
