// Package rewrite lowers Eyesight constructs Blender cannot express and
// applies content-specific patches, before any shader is scheduled.
//
// Rewrites are an explicit ordered list of named passes. Each pass mutates
// the document in place; Run checks the graph invariants around every pass
// and fails if a pass introduced a violation.
package rewrite

import (
	"fmt"
	"io"
	"log/slog"
	"slices"

	"github.com/The0x539/eyesight-xml2py/ir"
)

// Pass is one named rewrite over a whole document.
type Pass struct {
	Name string
	Run  func(doc *ir.Document) error
}

// Options configures Run.
type Options struct {
	// Disabled lists pass names to skip.
	Disabled []string

	// Logger receives progress at debug level. Nil discards.
	Logger *slog.Logger
}

// DefaultPasses returns the passes applied to every document, in order.
func DefaultPasses() []Pass {
	return []Pass{
		{Name: "lower-vector-average", Run: LowerVectorAverage},
		SolidSlopePatch.Pass(),
	}
}

// PassNames returns the names of the default passes.
func PassNames() []string {
	passes := DefaultPasses()
	names := make([]string, len(passes))
	for i, p := range passes {
		names[i] = p.Name
	}
	return names
}

// Run applies passes to doc in order. A pass failure aborts the run, as does
// an invariant violation that was not present before the pass.
func Run(doc *ir.Document, passes []Pass, opts Options) error {
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	for _, name := range opts.Disabled {
		if !slices.ContainsFunc(passes, func(p Pass) bool { return p.Name == name }) {
			log.Warn("disabled pass does not exist", "pass", name)
		}
	}

	for _, p := range passes {
		if slices.Contains(opts.Disabled, p.Name) {
			log.Debug("skipping disabled pass", "pass", p.Name)
			continue
		}

		before := violations(doc)
		if err := p.Run(doc); err != nil {
			return fmt.Errorf("rewrite pass %s: %w", p.Name, err)
		}
		for _, v := range violationList(doc) {
			if _, known := before[v]; !known {
				return ir.NewError(ir.ErrInvalidGraph, v.Shader, "rewrite pass %s: %s", p.Name, v.Error())
			}
		}
		log.Debug("applied rewrite pass", "pass", p.Name)
	}
	return nil
}

func violationList(doc *ir.Document) []ir.ValidationError {
	var out []ir.ValidationError
	for _, owned := range doc.Shaders() {
		out = append(out, ir.ValidateShader(owned.Owner, owned.Shader)...)
	}
	return out
}

func violations(doc *ir.Document) map[ir.ValidationError]struct{} {
	set := make(map[ir.ValidationError]struct{})
	for _, v := range violationList(doc) {
		set[v] = struct{}{}
	}
	return set
}

// uniqueName returns base, or base with a numeric suffix, such that no node
// of s already uses it.
func uniqueName(s *ir.Shader, base string) string {
	name := base
	for i := 1; s.Node(name) != nil; i++ {
		name = fmt.Sprintf("%s_%d", base, i)
	}
	return name
}
