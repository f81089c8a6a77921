// Copyright 2026 The eyesight-xml2py Authors
// SPDX-License-Identifier: MIT

package python

import (
	_ "embed"
	"fmt"
	"log/slog"
	"strings"

	"github.com/The0x539/eyesight-xml2py/alias"
	"github.com/The0x539/eyesight-xml2py/ir"
	"github.com/The0x539/eyesight-xml2py/schedule"
)

//go:embed preamble.py
var preamble string

// Writer generates Python source code from IR.
type Writer struct {
	doc        *ir.Document
	interfaces map[string]*ir.Interface
	options    *Options
	log        *slog.Logger

	// Output buffer
	out strings.Builder

	// Current indentation level
	indent int

	// Module-level names
	namer     *namer
	funcNames map[string]string
	order     []string
	skipped   []string
	diag      ir.Diagnostics

	// Function context (set during function writing)
	vars  map[string]string
	kinds map[string]string
}

func newWriter(doc *ir.Document, interfaces map[string]*ir.Interface, options *Options) *Writer {
	return &Writer{
		doc:        doc,
		interfaces: interfaces,
		options:    options,
		log:        options.Logger,
		namer:      newNamer(preambleNames...),
		funcNames:  make(map[string]string),
	}
}

// String returns the generated Python source code.
func (w *Writer) String() string {
	return w.out.String()
}

// writeModule generates the preamble and one function per reachable group.
func (w *Writer) writeModule() error {
	// 1. Find the groups to emit
	if err := w.collectGroups(); err != nil {
		return err
	}

	// 2. Name every function up front; bodies reference each other
	for _, name := range w.order {
		w.funcNames[name] = w.namer.call("node_group_" + snakeCase(name))
	}

	// 3. Preamble
	w.out.WriteString(preamble)
	w.writeLine("")
	w.writeLine("")
	w.writeLine("EYESIGHT_PATH = %s", alias.Quote(w.options.ImageRoot))

	// 4. Functions
	for _, name := range w.order {
		w.writeLine("")
		w.writeLine("")
		if err := w.writeFunction(w.doc.Group(name)); err != nil {
			return fmt.Errorf("group %s: %w", name, err)
		}
	}
	return nil
}

// collectGroups walks group references depth-first from each root, in
// document order, recording every group reached.
func (w *Writer) collectGroups() error {
	seen := make(map[string]struct{})

	var visit func(name string) error
	visit = func(name string) error {
		if _, ok := seen[name]; ok {
			return nil
		}
		seen[name] = struct{}{}

		g := w.doc.Group(name)
		if g == nil {
			return ir.NewError(ir.ErrUndefinedGroup, name, "referenced group does not exist")
		}
		if _, ok := w.interfaces[name]; !ok {
			return ir.NewError(ir.ErrInvalidGraph, name, "referenced group has no inferred interface")
		}
		w.order = append(w.order, name)

		for _, n := range g.Shader.Nodes {
			if ref, ok := n.(*ir.GroupReference); ok {
				if err := visit(ref.GroupName); err != nil {
					return err
				}
			}
		}
		return nil
	}

	for _, root := range w.options.Roots {
		if w.doc.Group(root) == nil {
			return ir.NewError(ir.ErrUndefinedGroup, root, "root group does not exist")
		}
		if _, ok := w.interfaces[root]; !ok {
			w.skipped = append(w.skipped, root)
			w.diag.Warn(ir.WarnSkippedRoot, root, "", "root group is never used, so its interface is unknown")
			w.log.Debug("skipping root without interface", "group", root)
			continue
		}
		if err := visit(root); err != nil {
			return err
		}
	}
	return nil
}

// writeFunction emits the function building one group.
func (w *Writer) writeFunction(g *ir.Group) error {
	tiers, err := schedule.Tiers(&g.Shader)
	if err != nil {
		return err
	}
	layout := schedule.Layout(tiers)

	// Name the node variables in scheduler order.
	locals := newNamer(preambleNames...)
	for _, fn := range w.funcNames {
		locals.reserve(fn)
	}
	w.vars = make(map[string]string, len(g.Shader.Nodes))
	w.kinds = make(map[string]string, len(g.Shader.Nodes))
	for _, tier := range tiers {
		for _, n := range tier {
			w.vars[n.NodeName()] = locals.call(n.NodeName())
			w.kinds[n.NodeName()] = ir.KindOf(n)
		}
	}

	inbound := make(map[string][]ir.Link)
	for _, l := range g.Shader.Links {
		inbound[l.ToNode] = append(inbound[l.ToNode], l)
	}

	name := alias.Quote(g.Name)
	w.writeLine("def %s():", w.funcNames[g.Name])
	w.pushIndent()
	w.writeLine("if tree := bpy.data.node_groups.get(%s):", name)
	w.pushIndent()
	w.writeLine("return tree")
	w.popIndent()
	w.writeLine("")
	w.writeLine("tree = bpy.data.node_groups.new(%s, \"ShaderNodeTree\")", name)
	w.writeLine("graph = ShaderGraph(tree)")
	w.writeLine("")

	w.writeInterface(w.interfaces[g.Name])

	for _, tier := range tiers {
		for _, n := range tier {
			if err := w.writeNode(n, layout[n.NodeName()], inbound[n.NodeName()]); err != nil {
				return err
			}
		}
	}

	w.writeLine("return tree")
	w.popIndent()

	w.log.Debug("generated group function",
		"group", g.Name,
		"function", w.funcNames[g.Name],
		"nodes", len(g.Shader.Nodes),
		"tiers", len(tiers))
	return nil
}

// writeInterface declares the group sockets: every input, then every
// output, each in inference order.
func (w *Writer) writeInterface(iface *ir.Interface) {
	if len(iface.Inputs) == 0 && len(iface.Outputs) == 0 {
		return
	}
	for _, s := range iface.Inputs {
		w.writeLine("tree.interface.new_socket(%s, in_out=\"INPUT\", socket_type=%q)", alias.Quote(s.Name), socketClass(s.Type))
	}
	for _, s := range iface.Outputs {
		w.writeLine("tree.interface.new_socket(%s, in_out=\"OUTPUT\", socket_type=%q)", alias.Quote(s.Name), socketClass(s.Type))
	}
	w.writeLine("")
}

// inputEntry is one key of a node's combined inputs mapping.
type inputEntry struct {
	key   string
	value string
}

// writeNode emits the construction of one node. Literal defaults come first
// in the inputs mapping; an inbound link to the same resolved socket
// replaces the default in place.
func (w *Writer) writeNode(n ir.Node, pos schedule.Position, links []ir.Link) error {
	v := w.vars[n.NodeName()]
	kind := ir.KindOf(n)

	spec, err := w.describe(n, v)
	if err != nil {
		return err
	}

	var entries []inputEntry
	index := make(map[string]int)
	set := func(key, value string) {
		if i, ok := index[key]; ok {
			entries[i].value = value
			return
		}
		index[key] = len(entries)
		entries = append(entries, inputEntry{key: key, value: value})
	}
	for _, in := range spec.inputs {
		set(alias.Input(kind, in.Name).Python(), formatLiteral(in.Value))
	}
	for _, l := range links {
		src := w.vars[l.FromNode]
		srcKey := alias.Output(w.kinds[l.FromNode], l.FromSocket).Python()
		set(alias.Input(kind, l.ToSocket).Python(), src+"["+srcKey+"]")
	}

	x, y := pos.Location()
	w.writeLine("%s = graph.node(", v)
	w.pushIndent()
	w.writeLine("bpy.types.%s,", spec.pythonType)
	w.writeLine("location=(%d, %d),", x, y)
	for _, a := range spec.attrs {
		w.writeLine("%s=%s,", a.name, a.expr)
	}
	if len(entries) > 0 {
		w.writeLine("inputs={")
		w.pushIndent()
		for _, e := range entries {
			w.writeLine("%s: %s,", e.key, e.value)
		}
		w.popIndent()
		w.writeLine("},")
	}
	w.popIndent()
	w.writeLine(")")
	for _, line := range spec.after {
		w.writeLine("%s", line)
	}
	w.writeLine("")
	return nil
}

// writeLine writes an indented line.
func (w *Writer) writeLine(format string, args ...any) {
	if format == "" && len(args) == 0 {
		w.out.WriteByte('\n')
		return
	}
	w.writeIndent()
	if len(args) == 0 {
		w.out.WriteString(format)
	} else {
		fmt.Fprintf(&w.out, format, args...)
	}
	w.out.WriteByte('\n')
}

// writeIndent writes the current indentation.
func (w *Writer) writeIndent() {
	for i := 0; i < w.indent; i++ {
		w.out.WriteString("    ")
	}
}

// pushIndent increases indentation.
func (w *Writer) pushIndent() {
	w.indent++
}

// popIndent decreases indentation.
func (w *Writer) popIndent() {
	if w.indent > 0 {
		w.indent--
	}
}
