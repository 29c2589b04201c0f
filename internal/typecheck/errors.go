package typecheck

import (
	"errors"
	"fmt"
	"go/token"
	"go/types"
	"strings"
)

// Code categorizes a diagnostic.
type Code string

const (
	// CodeTypeMismatch indicates a value of one type used where another is
	// required, or a type argument that does not satisfy its constraint.
	CodeTypeMismatch Code = "TYPE_MISMATCH"

	// CodeTypeError indicates any other type-checking error.
	CodeTypeError Code = "TYPE_ERROR"
)

// mismatchMarkers are the go/types message fragments that mean a type was
// rejected in a position requiring a different type.
var mismatchMarkers = []string{
	"cannot use ",
	"does not satisfy ",
	"does not implement ",
	"cannot convert ",
	"mismatched types ",
}

// Diagnostic is one error reported by the type checker.
type Diagnostic struct {
	Code    Code   `json:"code"`
	File    string `json:"file"`
	Line    int    `json:"line"`
	Column  int    `json:"column"`
	Message string `json:"message"`
}

// String renders the diagnostic the way the compiler does.
func (d Diagnostic) String() string {
	return fmt.Sprintf("%s:%d:%d: %s", d.File, d.Line, d.Column, d.Message)
}

// IsMismatch reports whether the diagnostic is a type mismatch.
func (d Diagnostic) IsMismatch() bool {
	return d.Code == CodeTypeMismatch
}

// newDiagnostic converts a go/types error into a Diagnostic.
func newDiagnostic(err error) Diagnostic {
	var terr types.Error
	if !errors.As(err, &terr) {
		return Diagnostic{Code: CodeTypeError, Message: err.Error()}
	}

	pos := token.Position{}
	if terr.Fset != nil {
		pos = terr.Fset.Position(terr.Pos)
	}
	return Diagnostic{
		Code:    classify(terr.Msg),
		File:    pos.Filename,
		Line:    pos.Line,
		Column:  pos.Column,
		Message: terr.Msg,
	}
}

func classify(msg string) Code {
	for _, marker := range mismatchMarkers {
		if strings.Contains(msg, marker) {
			return CodeTypeMismatch
		}
	}
	return CodeTypeError
}

// Result is the outcome of checking one source file.
type Result struct {
	File        string       `json:"file"`
	Diagnostics []Diagnostic `json:"diagnostics"`
}

// Accepted reports whether the source type-checks cleanly.
func (r *Result) Accepted() bool {
	return len(r.Diagnostics) == 0
}

// Mismatches returns the type-mismatch diagnostics only.
func (r *Result) Mismatches() []Diagnostic {
	var out []Diagnostic
	for _, d := range r.Diagnostics {
		if d.IsMismatch() {
			out = append(out, d)
		}
	}
	return out
}

// Err returns nil if the source was accepted, or a *RejectedError.
func (r *Result) Err() error {
	if r.Accepted() {
		return nil
	}
	return &RejectedError{File: r.File, Diagnostics: r.Diagnostics}
}

func (r *Result) add(d Diagnostic) {
	r.Diagnostics = append(r.Diagnostics, d)
}

// RejectedError reports a source file that failed to type-check.
type RejectedError struct {
	File        string
	Diagnostics []Diagnostic
}

// Error implements the error interface.
func (e *RejectedError) Error() string {
	if len(e.Diagnostics) == 1 {
		return fmt.Sprintf("%s rejected: %s", e.File, e.Diagnostics[0].Message)
	}
	return fmt.Sprintf("%s rejected: %d errors, first: %s", e.File, len(e.Diagnostics), e.Diagnostics[0].Message)
}

// IsMismatch returns true if err is a rejection with at least one type
// mismatch. Uses errors.As to handle wrapped errors.
func IsMismatch(err error) bool {
	var re *RejectedError
	if !errors.As(err, &re) {
		return false
	}
	for _, d := range re.Diagnostics {
		if d.IsMismatch() {
			return true
		}
	}
	return false
}
