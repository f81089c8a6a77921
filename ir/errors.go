package ir

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorKind categorizes fatal translation errors.
type ErrorKind uint8

const (
	// ErrParse indicates a malformed input document.
	ErrParse ErrorKind = iota

	// ErrMergeConflict indicates a same-named entity differs between documents.
	ErrMergeConflict

	// ErrInterfaceTypeMismatch indicates a group socket used with
	// inconsistent socket types across call sites.
	ErrInterfaceTypeMismatch

	// ErrCycleOrUnreachableNode indicates the scheduler stalled with nodes left.
	ErrCycleOrUnreachableNode

	// ErrMissingRewriteAnchor indicates a rewrite pass could not find the
	// group or node it is anchored on.
	ErrMissingRewriteAnchor

	// ErrUndefinedGroup indicates a reference to a group that does not exist.
	ErrUndefinedGroup

	// ErrInvalidGraph indicates a shader violating the graph invariants.
	ErrInvalidGraph
)

// String returns a human-readable error kind name.
func (k ErrorKind) String() string {
	switch k {
	case ErrParse:
		return "ParseError"
	case ErrMergeConflict:
		return "MergeConflictError"
	case ErrInterfaceTypeMismatch:
		return "InterfaceTypeMismatchError"
	case ErrCycleOrUnreachableNode:
		return "CycleOrUnreachableNodeError"
	case ErrMissingRewriteAnchor:
		return "MissingRewriteAnchorError"
	case ErrUndefinedGroup:
		return "UndefinedGroupError"
	case ErrInvalidGraph:
		return "InvalidGraphError"
	default:
		return "Unknown"
	}
}

// Error is a fatal translation error. Any Error aborts the whole run.
type Error struct {
	// Kind categorizes the error.
	Kind ErrorKind

	// Subject names the entity the error is about, such as a group, a
	// "group.socket" pair or a document path. May be empty.
	Subject string

	// Message provides details about the error.
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Subject != "" {
		return fmt.Sprintf("%s: %s: %s", e.Kind, e.Subject, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// NewError creates an error of the given kind.
func NewError(kind ErrorKind, subject, format string, args ...any) *Error {
	return &Error{
		Kind:    kind,
		Subject: subject,
		Message: fmt.Sprintf(format, args...),
	}
}

// IsKind reports whether err, or any error it wraps, is an *Error of kind.
func IsKind(err error, kind ErrorKind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}

// WarningKind categorizes non-fatal diagnostics.
type WarningKind uint8

const (
	// WarnUnknownSocket indicates a boundary-declared group socket that no
	// call site ever uses, so its type cannot be inferred.
	WarnUnknownSocket WarningKind = iota

	// WarnUndeclaredSocket indicates a call site using a group socket that
	// the group's boundary nodes never declare.
	WarnUndeclaredSocket

	// WarnSkippedRoot indicates a configured root group that was not emitted
	// because it has no resolved interface.
	WarnSkippedRoot
)

// String returns a human-readable warning kind name.
func (k WarningKind) String() string {
	switch k {
	case WarnUnknownSocket:
		return "UnknownSocketWarning"
	case WarnUndeclaredSocket:
		return "UndeclaredSocketWarning"
	case WarnSkippedRoot:
		return "SkippedRootWarning"
	default:
		return "Unknown"
	}
}

// Warning is a non-fatal diagnostic.
type Warning struct {
	Kind    WarningKind
	Group   string
	Socket  string
	Message string
}

func (w Warning) String() string {
	var b strings.Builder
	b.WriteString(w.Kind.String())
	if w.Group != "" {
		b.WriteString(": ")
		b.WriteString(w.Group)
		if w.Socket != "" {
			b.WriteByte('.')
			b.WriteString(w.Socket)
		}
	}
	if w.Message != "" {
		b.WriteString(": ")
		b.WriteString(w.Message)
	}
	return b.String()
}

// Diagnostics buffers warnings so they can be reported together at the end
// of a run. The zero value is ready to use.
type Diagnostics struct {
	warnings []Warning
}

// Warn records a warning.
func (d *Diagnostics) Warn(kind WarningKind, group, socket, format string, args ...any) {
	d.warnings = append(d.warnings, Warning{
		Kind:    kind,
		Group:   group,
		Socket:  socket,
		Message: fmt.Sprintf(format, args...),
	})
}

// Append records already constructed warnings.
func (d *Diagnostics) Append(ws ...Warning) {
	d.warnings = append(d.warnings, ws...)
}

// Warnings returns the recorded warnings in the order they were reported.
func (d *Diagnostics) Warnings() []Warning {
	return d.warnings
}

// Len returns the number of recorded warnings.
func (d *Diagnostics) Len() int {
	return len(d.warnings)
}
