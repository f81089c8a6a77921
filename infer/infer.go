// Package infer derives the external interface of every used group from the
// group's boundary nodes and from all of its call sites.
//
// A group declares candidate sockets through the links leaving its
// GroupInput node and entering its GroupOutput node. Candidates carry no
// type; every GroupReference naming the group records the socket types it
// uses, and the first observation of a socket fixes its type. A later
// disagreeing observation is fatal.
package infer

import (
	"fmt"
	"io"
	"log/slog"
	"maps"
	"slices"

	"github.com/The0x539/eyesight-xml2py/ir"
)

// Options configures interface inference.
type Options struct {
	// Logger receives progress at debug level. Nil discards.
	Logger *slog.Logger
}

// Result holds the inferred interfaces of every group referenced at least
// once. Groups without call sites are absent.
type Result struct {
	Interfaces map[string]*ir.Interface

	// Warnings lists unknown and undeclared sockets in discovery order.
	Warnings []ir.Warning
}

// Interface returns the interface of a used group.
func (r *Result) Interface(group string) (*ir.Interface, bool) {
	iface, ok := r.Interfaces[group]
	return iface, ok
}

// Groups returns the names of all used groups, sorted.
func (r *Result) Groups() []string {
	return slices.Sorted(maps.Keys(r.Interfaces))
}

// candidate is a boundary socket whose type may not be known yet.
type candidate struct {
	name     string
	typ      ir.SocketType
	resolved bool
	// site is the call site that fixed typ, for mismatch reports.
	site string
}

type sockets struct {
	list []*candidate
}

func (s *sockets) find(name string) *candidate {
	for _, c := range s.list {
		if c.name == name {
			return c
		}
	}
	return nil
}

func (s *sockets) declare(name string) {
	if s.find(name) == nil {
		s.list = append(s.list, &candidate{name: name})
	}
}

type groupState struct {
	inputs  sockets
	outputs sockets
	used    bool
}

type inferrer struct {
	log    *slog.Logger
	groups map[string]*groupState
	order  []string
	diag   ir.Diagnostics
}

// Interfaces infers the interface of every group of doc that is referenced
// from at least one shader. Call sites are visited in material shaders and in
// group shaders alike.
func Interfaces(doc *ir.Document, opts Options) (*Result, error) {
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	inf := &inferrer{
		log:    log,
		groups: make(map[string]*groupState, len(doc.Groups)),
	}

	for i := range doc.Groups {
		if err := inf.discover(&doc.Groups[i]); err != nil {
			return nil, err
		}
	}

	for _, owned := range doc.Shaders() {
		for _, n := range owned.Shader.Nodes {
			ref, ok := n.(*ir.GroupReference)
			if !ok {
				continue
			}
			if err := inf.observe(owned.Owner, ref); err != nil {
				return nil, err
			}
		}
	}

	return inf.finish(), nil
}

// discover collects the candidate sockets of one group from its boundary
// links, in order of first appearance.
func (inf *inferrer) discover(g *ir.Group) error {
	if _, dup := inf.groups[g.Name]; dup {
		return ir.NewError(ir.ErrParse, g.Name, "group defined twice")
	}

	input, output, err := ir.Boundaries(&g.Shader)
	if err != nil {
		return fmt.Errorf("group %s: %w", g.Name, err)
	}

	st := &groupState{}
	for _, l := range g.Shader.Links {
		if input != "" && l.FromNode == input {
			st.inputs.declare(l.FromSocket)
		}
		if output != "" && l.ToNode == output {
			st.outputs.declare(l.ToSocket)
		}
	}

	inf.groups[g.Name] = st
	inf.order = append(inf.order, g.Name)
	inf.log.Debug("discovered group sockets",
		"group", g.Name,
		"inputs", len(st.inputs.list),
		"outputs", len(st.outputs.list))
	return nil
}

// observe applies the socket usages recorded at one call site.
func (inf *inferrer) observe(owner string, ref *ir.GroupReference) error {
	st, ok := inf.groups[ref.GroupName]
	if !ok {
		return ir.NewError(ir.ErrUndefinedGroup, ref.GroupName,
			"referenced by node %s in %s", ref.Name, owner)
	}
	st.used = true

	site := owner + "." + ref.Name
	for _, in := range ref.Inputs {
		if err := inf.resolve(ref.GroupName, "input", &st.inputs, in, site); err != nil {
			return err
		}
	}
	for _, out := range ref.Outputs {
		if err := inf.resolve(ref.GroupName, "output", &st.outputs, out, site); err != nil {
			return err
		}
	}
	return nil
}

func (inf *inferrer) resolve(group, side string, s *sockets, use ir.GroupSocket, site string) error {
	c := s.find(use.Name)
	if c == nil {
		inf.diag.Warn(ir.WarnUndeclaredSocket, group, use.Name,
			"%s %s used at %s is not connected to the group boundary", side, use.Type, site)
		c = &candidate{name: use.Name}
		s.list = append(s.list, c)
	}

	if !c.resolved {
		c.typ = use.Type
		c.resolved = true
		c.site = site
		return nil
	}

	if c.typ != use.Type {
		return ir.NewError(ir.ErrInterfaceTypeMismatch, group+"."+use.Name,
			"%s used as %s at %s but as %s at %s", side, c.typ, c.site, use.Type, site)
	}
	return nil
}

func (inf *inferrer) finish() *Result {
	res := &Result{Interfaces: make(map[string]*ir.Interface)}

	for _, name := range inf.order {
		st := inf.groups[name]
		if !st.used {
			inf.log.Debug("dropping unused group", "group", name)
			continue
		}

		iface := &ir.Interface{
			Inputs:  inf.collect(name, "input", st.inputs),
			Outputs: inf.collect(name, "output", st.outputs),
		}
		res.Interfaces[name] = iface
	}

	res.Warnings = inf.diag.Warnings()
	return res
}

// collect returns the resolved sockets, warning about the unresolved ones.
func (inf *inferrer) collect(group, side string, s sockets) []ir.Socket {
	var out []ir.Socket
	for _, c := range s.list {
		if !c.resolved {
			inf.diag.Warn(ir.WarnUnknownSocket, group, c.name,
				"%s is connected to the group boundary but never used by a call site", side)
			continue
		}
		out = append(out, ir.Socket{Name: c.name, Type: c.typ})
	}
	return out
}
