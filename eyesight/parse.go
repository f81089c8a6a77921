// Package eyesight reads Eyesight XML settings documents into the IR.
//
// A document's root element holds <material> and <group> elements, each
// owning exactly one <shader>. Shader children are node elements, whose tag
// is the node kind, and <connect> elements describing links:
//
//	<group name="Tint">
//	  <shader>
//	    <group_input name="in"/>
//	    <mix name="m" type="mix" use_clamp="False">
//	      <input name="Fac" type="float" value="0.5"/>
//	    </mix>
//	    <connect from_node="in" from_socket="Color" to_node="m" to_socket="Color1"/>
//	  </shader>
//	</group>
//
// Node attributes decode into the fields of the node's IR struct. Unknown
// attributes, unknown node kinds and malformed values are ErrParse errors
// naming the element path.
package eyesight

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/The0x539/eyesight-xml2py/ir"
)

// element is a parsed XML element. Attribute values are kept as strings.
type element struct {
	name     string
	attrs    map[string]any
	children []*element
	line     int
}

// label identifies the element within its parent for error paths.
func (e *element) label() string {
	if name, ok := e.attrs["name"].(string); ok && name != "" {
		return fmt.Sprintf("%s[%s]", e.name, name)
	}
	return e.name
}

// ParseFile reads and parses the document at path.
func ParseFile(path string) (*ir.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// Parse parses an Eyesight XML document.
func Parse(data []byte) (*ir.Document, error) {
	root, err := readTree(data)
	if err != nil {
		return nil, err
	}

	doc := &ir.Document{}
	for _, child := range root.children {
		path := child.label()
		switch child.name {
		case "material":
			m, err := parseMaterial(child, path)
			if err != nil {
				return nil, err
			}
			doc.Materials = append(doc.Materials, m)
		case "group":
			g, err := parseGroup(child, path)
			if err != nil {
				return nil, err
			}
			doc.Groups = append(doc.Groups, g)
		default:
			return nil, parseError(child, path, "unexpected element <%s>", child.name)
		}
	}
	return doc, nil
}

func parseError(e *element, path, format string, args ...any) error {
	msg := fmt.Sprintf(format, args...)
	if e != nil && e.line > 0 {
		msg = fmt.Sprintf("line %d: %s", e.line, msg)
	}
	return ir.NewError(ir.ErrParse, path, "%s", msg)
}

// readTree tokenizes data into an element tree and returns the root.
func readTree(data []byte) (*element, error) {
	d := xml.NewDecoder(bytes.NewReader(data))

	var root *element
	var stack []*element
	for {
		tok, err := d.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, ir.NewError(ir.ErrParse, "", "%v", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			line, _ := d.InputPos()
			e := &element{name: t.Name.Local, attrs: make(map[string]any, len(t.Attr)), line: line}
			for _, a := range t.Attr {
				if a.Name.Space == "xmlns" || a.Name.Local == "xmlns" {
					continue
				}
				if _, dup := e.attrs[a.Name.Local]; dup {
					return nil, parseError(e, e.name, "duplicate attribute %q", a.Name.Local)
				}
				e.attrs[a.Name.Local] = a.Value
			}
			switch {
			case len(stack) > 0:
				parent := stack[len(stack)-1]
				parent.children = append(parent.children, e)
			case root != nil:
				return nil, parseError(e, e.name, "more than one root element")
			default:
				root = e
			}
			stack = append(stack, e)

		case xml.EndElement:
			stack = stack[:len(stack)-1]

		case xml.CharData:
			if len(stack) > 0 && len(bytes.TrimSpace(t)) > 0 {
				top := stack[len(stack)-1]
				return nil, parseError(top, top.label(), "unexpected text %q", strings.TrimSpace(string(t)))
			}
		}
	}

	if root == nil {
		return nil, ir.NewError(ir.ErrParse, "", "document has no root element")
	}
	return root, nil
}

func parseMaterial(e *element, path string) (ir.Material, error) {
	var m ir.Material
	if err := decodeAttrs(e, path, &m); err != nil {
		return ir.Material{}, err
	}
	if m.Name == "" {
		return ir.Material{}, parseError(e, path, "material has no name")
	}
	shader, err := parseOwnedShader(e, path)
	if err != nil {
		return ir.Material{}, err
	}
	m.Shader = shader
	return m, nil
}

func parseGroup(e *element, path string) (ir.Group, error) {
	var g ir.Group
	if err := decodeAttrs(e, path, &g); err != nil {
		return ir.Group{}, err
	}
	if g.Name == "" {
		return ir.Group{}, parseError(e, path, "group has no name")
	}
	shader, err := parseOwnedShader(e, path)
	if err != nil {
		return ir.Group{}, err
	}
	g.Shader = shader
	return g, nil
}

// parseOwnedShader parses the single <shader> child of a material or group.
func parseOwnedShader(e *element, path string) (ir.Shader, error) {
	var shader *element
	for _, child := range e.children {
		if child.name != "shader" {
			return ir.Shader{}, parseError(child, path+"/"+child.label(), "unexpected element <%s>", child.name)
		}
		if shader != nil {
			return ir.Shader{}, parseError(child, path+"/shader", "more than one shader")
		}
		shader = child
	}
	if shader == nil {
		return ir.Shader{}, parseError(e, path, "missing shader")
	}
	if len(shader.attrs) > 0 {
		return ir.Shader{}, parseError(shader, path+"/shader", "shader takes no attributes")
	}
	return parseShader(shader, path+"/shader")
}

func parseShader(e *element, path string) (ir.Shader, error) {
	var s ir.Shader
	names := make(map[string]struct{})

	for _, child := range e.children {
		childPath := path + "/" + child.label()

		if child.name == "connect" {
			l, err := parseLink(child, childPath)
			if err != nil {
				return ir.Shader{}, err
			}
			s.Links = append(s.Links, l)
			continue
		}

		n, err := parseNode(child, childPath)
		if err != nil {
			return ir.Shader{}, err
		}
		if _, dup := names[n.NodeName()]; dup {
			return ir.Shader{}, parseError(child, childPath, "duplicate node name %q", n.NodeName())
		}
		names[n.NodeName()] = struct{}{}
		s.Nodes = append(s.Nodes, n)
	}

	if _, _, err := ir.Boundaries(&s); err != nil {
		return ir.Shader{}, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

type linkAttrs struct {
	FromNode   string `mapstructure:"from_node"`
	FromSocket string `mapstructure:"from_socket"`
	ToNode     string `mapstructure:"to_node"`
	ToSocket   string `mapstructure:"to_socket"`
}

func parseLink(e *element, path string) (ir.Link, error) {
	if len(e.children) > 0 {
		return ir.Link{}, parseError(e, path, "connect takes no children")
	}
	var a linkAttrs
	if err := decodeAttrs(e, path, &a); err != nil {
		return ir.Link{}, err
	}
	for _, f := range [...]struct{ attr, value string }{
		{"from_node", a.FromNode}, {"from_socket", a.FromSocket},
		{"to_node", a.ToNode}, {"to_socket", a.ToSocket},
	} {
		if f.value == "" {
			return ir.Link{}, parseError(e, path, "missing %s", f.attr)
		}
	}
	return ir.Link(a), nil
}

func parseNode(e *element, path string) (ir.Node, error) {
	n, ok := ir.NewNode(e.name)
	if !ok {
		return nil, parseError(e, path, "unknown node kind %q", e.name)
	}
	if err := decodeAttrs(e, path, n); err != nil {
		return nil, err
	}
	if n.NodeName() == "" {
		return nil, parseError(e, path, "node has no name")
	}

	if ref, ok := n.(*ir.GroupReference); ok {
		if ref.GroupName == "" {
			return nil, parseError(e, path, "group reference has no group_name")
		}
		if err := parseGroupSockets(ref, e, path); err != nil {
			return nil, err
		}
		return ref, nil
	}

	for _, child := range e.children {
		childPath := path + "/" + child.label()
		if child.name != "input" {
			return nil, parseError(child, childPath, "unexpected element <%s>", child.name)
		}
		in, err := parseInput(child, childPath)
		if err != nil {
			return nil, err
		}
		for _, prev := range ir.InputsOf(n) {
			if prev.Name == in.Name {
				return nil, parseError(child, childPath, "duplicate input %q", in.Name)
			}
		}
		if !ir.SetInput(n, in.Name, in.Value) {
			return nil, parseError(child, childPath, "%s nodes take no inputs", e.name)
		}
	}
	return n, nil
}

type inputAttrs struct {
	Name  string  `mapstructure:"name"`
	Type  string  `mapstructure:"type"`
	Value *string `mapstructure:"value"`
}

type outputAttrs struct {
	Name string `mapstructure:"name"`
	Type string `mapstructure:"type"`
}

// parseSocket decodes the name, type and optional value of an <input>.
func parseSocket(e *element, path string) (ir.GroupSocket, error) {
	if len(e.children) > 0 {
		return ir.GroupSocket{}, parseError(e, path, "input takes no children")
	}
	var a inputAttrs
	if err := decodeAttrs(e, path, &a); err != nil {
		return ir.GroupSocket{}, err
	}
	if a.Name == "" {
		return ir.GroupSocket{}, parseError(e, path, "input has no name")
	}
	t, err := ir.ParseSocketType(a.Type)
	if err != nil {
		return ir.GroupSocket{}, parseError(e, path, "%v", err)
	}
	s := ir.GroupSocket{Name: a.Name, Type: t}
	if a.Value != nil {
		s.Value, err = parseLiteral(t, *a.Value)
		if err != nil {
			return ir.GroupSocket{}, parseError(e, path, "value: %v", err)
		}
	}
	return s, nil
}

// parseInput decodes a literal default; the value is mandatory.
func parseInput(e *element, path string) (ir.NodeInput, error) {
	s, err := parseSocket(e, path)
	if err != nil {
		return ir.NodeInput{}, err
	}
	if s.Value == nil {
		return ir.NodeInput{}, parseError(e, path, "input %q has no value", s.Name)
	}
	return ir.NodeInput{Name: s.Name, Value: s.Value}, nil
}

// parseGroupSockets records the socket usages of a call site.
func parseGroupSockets(ref *ir.GroupReference, e *element, path string) error {
	for _, child := range e.children {
		childPath := path + "/" + child.label()
		switch child.name {
		case "input":
			s, err := parseSocket(child, childPath)
			if err != nil {
				return err
			}
			ref.Inputs = append(ref.Inputs, s)
		case "output":
			if len(child.children) > 0 {
				return parseError(child, childPath, "output takes no children")
			}
			var a outputAttrs
			if err := decodeAttrs(child, childPath, &a); err != nil {
				return err
			}
			if a.Name == "" {
				return parseError(child, childPath, "output has no name")
			}
			t, err := ir.ParseSocketType(a.Type)
			if err != nil {
				return parseError(child, childPath, "%v", err)
			}
			ref.Outputs = append(ref.Outputs, ir.GroupSocket{Name: a.Name, Type: t})
		default:
			return parseError(child, childPath, "unexpected element <%s>", child.name)
		}
	}
	return nil
}
