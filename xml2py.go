// Package xml2py translates Eyesight material settings into Python that
// rebuilds them as Blender shader node groups.
//
// The package provides a simple, high-level API for the whole translation as
// well as access to the individual stages.
//
// Example usage:
//
//	sources, err := xml2py.ReadSources([]string{"materials.xml"})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	result, err := xml2py.Compile(sources, xml2py.DefaultOptions())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Print(result.Source)
//
// The pipeline is strictly ordered and all-or-nothing:
//  1. Parse every document (eyesight package)
//  2. Merge the documents by entity name (ir.Merge)
//  3. Apply the rewrite passes (rewrite package)
//  4. Infer group interfaces from call sites (infer package)
//  5. Schedule and generate every reachable group (python package)
//
// Any error aborts the run without output. Warnings are collected and
// returned together with the result.
package xml2py

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/The0x539/eyesight-xml2py/distill"
	"github.com/The0x539/eyesight-xml2py/eyesight"
	"github.com/The0x539/eyesight-xml2py/infer"
	"github.com/The0x539/eyesight-xml2py/ir"
	"github.com/The0x539/eyesight-xml2py/python"
	"github.com/The0x539/eyesight-xml2py/rewrite"
	"github.com/The0x539/eyesight-xml2py/schedule"
)

// Source is one Eyesight XML document.
type Source struct {
	// Name identifies the document in errors, usually its path.
	Name string
	Data []byte
}

// ReadSources reads the documents at paths.
func ReadSources(paths []string) ([]Source, error) {
	sources := make([]Source, 0, len(paths))
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			return nil, err
		}
		sources = append(sources, Source{Name: p, Data: data})
	}
	return sources, nil
}

// Options configures the translation.
type Options struct {
	// Roots are the groups to generate. Defaults to python.DefaultRoots.
	Roots []string

	// DisabledPasses names rewrite passes to skip.
	DisabledPasses []string

	// Reflow collapses generated calls that fit within LineWidth.
	Reflow    bool
	LineWidth int

	// ImageRoot is the directory generated code loads image textures from.
	// Defaults to python.DefaultImageRoot.
	ImageRoot string

	// Logger receives pipeline progress. Nil discards.
	Logger *slog.Logger
}

// DefaultOptions returns sensible default options.
func DefaultOptions() Options {
	return Options{
		Roots:     python.DefaultRoots,
		Reflow:    true,
		LineWidth: 100,
		ImageRoot: python.DefaultImageRoot,
	}
}

func (o *Options) logger() *slog.Logger {
	if o.Logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return o.Logger
}

// Result is the output of a successful translation.
type Result struct {
	// Source is the generated Python module.
	Source string

	// Interfaces holds the inferred interface of every used group.
	Interfaces map[string]*ir.Interface

	// Info describes the emitted functions.
	Info python.TranslationInfo

	// Warnings from every stage, in pipeline order.
	Warnings []ir.Warning
}

// Compile runs the whole pipeline over sources.
func Compile(sources []Source, opts Options) (*Result, error) {
	log := opts.logger()

	doc, err := Prepare(sources, opts)
	if err != nil {
		return nil, err
	}

	inferred, err := infer.Interfaces(doc, infer.Options{Logger: log})
	if err != nil {
		return nil, fmt.Errorf("inference error: %w", err)
	}

	src, info, err := python.Compile(doc, inferred.Interfaces, python.Options{
		Roots:     opts.Roots,
		ImageRoot: opts.ImageRoot,
		Logger:    log,
	})
	if err != nil {
		return nil, fmt.Errorf("generation error: %w", err)
	}

	if opts.Reflow {
		src = python.Reflow(src, opts.LineWidth)
	}

	var diag ir.Diagnostics
	diag.Append(inferred.Warnings...)
	diag.Append(info.Warnings...)

	log.Info("generated python",
		"groups", len(info.Order),
		"skipped", len(info.Skipped),
		"warnings", diag.Len())

	return &Result{
		Source:     src,
		Interfaces: inferred.Interfaces,
		Info:       info,
		Warnings:   diag.Warnings(),
	}, nil
}

// Parse parses every source and merges them into one document.
func Parse(sources []Source) (*ir.Document, error) {
	docs := make([]*ir.Document, 0, len(sources))
	for _, src := range sources {
		doc, err := eyesight.Parse(src.Data)
		if err != nil {
			return nil, fmt.Errorf("parse error: %s: %w", src.Name, err)
		}
		docs = append(docs, doc)
	}

	doc, err := ir.Merge(docs...)
	if err != nil {
		return nil, fmt.Errorf("merge error: %w", err)
	}
	return doc, nil
}

// Prepare parses, merges and rewrites sources, leaving a document ready for
// inference and scheduling.
func Prepare(sources []Source, opts Options) (*ir.Document, error) {
	log := opts.logger()

	doc, err := Parse(sources)
	if err != nil {
		return nil, err
	}
	log.Debug("merged documents",
		"sources", len(sources),
		"materials", len(doc.Materials),
		"groups", len(doc.Groups))

	err = rewrite.Run(doc, rewrite.DefaultPasses(), rewrite.Options{
		Disabled: opts.DisabledPasses,
		Logger:   log,
	})
	if err != nil {
		return nil, fmt.Errorf("rewrite error: %w", err)
	}
	return doc, nil
}

// Check runs the pipeline up to interface inference.
func Check(sources []Source, opts Options) (*infer.Result, error) {
	doc, err := Prepare(sources, opts)
	if err != nil {
		return nil, err
	}
	inferred, err := infer.Interfaces(doc, infer.Options{Logger: opts.logger()})
	if err != nil {
		return nil, fmt.Errorf("inference error: %w", err)
	}
	return inferred, nil
}

// Distill groups the materials of sources into color variants. Materials are
// read as written, before any rewrite.
func Distill(sources []Source) ([]distill.Class, error) {
	doc, err := Parse(sources)
	if err != nil {
		return nil, err
	}
	return distill.ColorVariants(doc.Materials, distill.DefaultRules), nil
}

// Tiers schedules the shader of the named group, or of the named material if
// no group has that name, after rewriting.
func Tiers(sources []Source, name string, opts Options) ([]schedule.Tier, error) {
	doc, err := Prepare(sources, opts)
	if err != nil {
		return nil, err
	}

	var shader *ir.Shader
	if g := doc.Group(name); g != nil {
		shader = &g.Shader
	} else if m := doc.Material(name); m != nil {
		shader = &m.Shader
	} else {
		return nil, ir.NewError(ir.ErrUndefinedGroup, name, "no group or material has this name")
	}
	return schedule.Tiers(shader)
}
