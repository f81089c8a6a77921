// Copyright 2026 The eyesight-xml2py Authors
// SPDX-License-Identifier: MIT

package python

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/The0x539/eyesight-xml2py/ir"
)

// DefaultImageRoot is the Eyesight installation directory image textures
// are loaded from.
const DefaultImageRoot = "C:/Program Files/Studio 2.0/PhotoRealisticRenderer/win/64"

// DefaultRoots are the groups emitted when Options.Roots is empty.
var DefaultRoots = []string{"Solid"}

// Options configures Python code generation.
type Options struct {
	// Roots are the groups to emit, together with every group they
	// reference. Defaults to DefaultRoots if empty.
	Roots []string

	// ImageRoot is the directory load_image resolves filenames against.
	// Defaults to DefaultImageRoot if empty.
	ImageRoot string

	// Logger receives progress at debug level. Nil discards.
	Logger *slog.Logger
}

// DefaultOptions returns the default code generation options.
func DefaultOptions() Options {
	return Options{
		Roots:     DefaultRoots,
		ImageRoot: DefaultImageRoot,
	}
}

// TranslationInfo contains metadata about the translation.
type TranslationInfo struct {
	// FunctionNames maps each emitted group to its Python function name.
	FunctionNames map[string]string

	// Order lists the emitted groups in emission order: depth-first
	// discovery from the roots.
	Order []string

	// Skipped lists roots that were not emitted because they have no
	// inferred interface.
	Skipped []string

	// Warnings holds a WarnSkippedRoot warning per skipped root.
	Warnings []ir.Warning
}

// Compile generates Python source for the groups reachable from the
// configured roots. interfaces must hold the inferred interface of every
// used group, and every shader must already be rewritten.
//
// A root naming no group fails with ErrUndefinedGroup. Nothing is returned
// on error.
func Compile(doc *ir.Document, interfaces map[string]*ir.Interface, options Options) (string, TranslationInfo, error) {
	if len(options.Roots) == 0 {
		options.Roots = DefaultRoots
	}
	if options.ImageRoot == "" {
		options.ImageRoot = DefaultImageRoot
	}
	if options.Logger == nil {
		options.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	w := newWriter(doc, interfaces, &options)

	if err := w.writeModule(); err != nil {
		return "", TranslationInfo{}, fmt.Errorf("python: %w", err)
	}

	info := TranslationInfo{
		FunctionNames: w.funcNames,
		Order:         w.order,
		Skipped:       w.skipped,
		Warnings:      w.diag.Warnings(),
	}
	return w.String(), info, nil
}
