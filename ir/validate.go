package ir

import (
	"fmt"
	"strings"
)

// ValidationError describes one invariant violation in a shader.
type ValidationError struct {
	// Shader names the material or group owning the shader.
	Shader string
	// Node names the offending node, if any.
	Node    string
	Message string
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	if e.Node != "" {
		return fmt.Sprintf("in shader %s, node %s: %s", e.Shader, e.Node, e.Message)
	}
	return fmt.Sprintf("in shader %s: %s", e.Shader, e.Message)
}

// Validator checks the structural invariants of one shader.
type Validator struct {
	owner  string
	shader *Shader
	names  map[string]struct{}
	errors []ValidationError
}

// ValidateShader checks that node names are unique, that every link endpoint
// names a node of the shader, and that there is at most one GroupInput and
// one GroupOutput node. It returns nil for a valid shader.
func ValidateShader(owner string, s *Shader) []ValidationError {
	v := &Validator{
		owner:  owner,
		shader: s,
		names:  make(map[string]struct{}, len(s.Nodes)),
	}
	v.validateNodes()
	v.validateBoundaries()
	v.validateLinks()
	return v.errors
}

// CheckShader is ValidateShader reported as a single ErrInvalidGraph error.
func CheckShader(owner string, s *Shader) error {
	errs := ValidateShader(owner, s)
	if len(errs) == 0 {
		return nil
	}
	msgs := make([]string, len(errs))
	for i, e := range errs {
		msgs[i] = e.Error()
	}
	return NewError(ErrInvalidGraph, owner, "%s", strings.Join(msgs, "; "))
}

func (v *Validator) validateNodes() {
	for i, n := range v.shader.Nodes {
		if n == nil {
			v.addError("", fmt.Sprintf("node %d is nil", i))
			continue
		}
		name := n.NodeName()
		if name == "" {
			v.addError("", fmt.Sprintf("node %d (%s) has no name", i, KindOf(n)))
			continue
		}
		if _, dup := v.names[name]; dup {
			v.addError(name, "duplicate node name")
			continue
		}
		v.names[name] = struct{}{}
	}
}

func (v *Validator) validateBoundaries() {
	if _, _, err := Boundaries(v.shader); err != nil {
		v.addError("", err.Error())
	}
}

func (v *Validator) validateLinks() {
	for _, l := range v.shader.Links {
		if _, ok := v.names[l.FromNode]; !ok {
			v.addError(l.FromNode, fmt.Sprintf("link %s.%s -> %s.%s starts at an unknown node",
				l.FromNode, l.FromSocket, l.ToNode, l.ToSocket))
		}
		if _, ok := v.names[l.ToNode]; !ok {
			v.addError(l.ToNode, fmt.Sprintf("link %s.%s -> %s.%s ends at an unknown node",
				l.FromNode, l.FromSocket, l.ToNode, l.ToSocket))
		}
	}
}

func (v *Validator) addError(node, msg string) {
	v.errors = append(v.errors, ValidationError{
		Shader:  v.owner,
		Node:    node,
		Message: msg,
	})
}

// Boundaries returns the names of the shader's GroupInput and GroupOutput
// nodes, or "" for a boundary the shader does not have. More than one
// boundary node of the same kind is an ErrParse error.
func Boundaries(s *Shader) (input, output string, err error) {
	for _, n := range s.Nodes {
		switch n := n.(type) {
		case *GroupInput:
			if input != "" {
				return "", "", NewError(ErrParse, n.Name, "second group_input node (first is %q)", input)
			}
			input = n.Name
		case *GroupOutput:
			if output != "" {
				return "", "", NewError(ErrParse, n.Name, "second group_output node (first is %q)", output)
			}
			output = n.Name
		}
	}
	return input, output, nil
}
