// Copyright 2026 The eyesight-xml2py Authors
// SPDX-License-Identifier: MIT

// Package python generates Blender Python source that rebuilds Eyesight
// node groups.
//
// Every group reachable from the configured roots becomes one function
// named node_group_<snake_case name>. The function returns the cached tree
// when Blender already has it, otherwise it creates the tree, declares the
// group interface, adds one node per IR node in scheduler order and wires
// inbound links into each node's inputs mapping.
//
// # Basic Usage
//
//	source, info, err := python.Compile(doc, interfaces, python.Options{
//	    Roots: []string{"Solid"},
//	})
//
// # Socket Keys
//
// Socket names go through the alias tables on both ends of a link, so a
// link from a Color node into a Mix node is written as
//
//	"6": c1[0]
//
// Keys that are plain non-negative integers address sockets by index.
//
// # Generated Code
//
// The output starts with a fixed preamble importing bpy and the node DSL
// helpers the generated functions rely on. Reflow optionally collapses
// calls that fit within a line width.
package python
