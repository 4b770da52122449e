// Package diag is the compiler's canonical diagnostic sink. Every phase of
// the front-end (Scanner, Parser, Checker) reports through the same
// Reporter interface so that the driver has one place to look for whether
// the run succeeded.
package diag

import (
	"fmt"

	"github.com/willvillegas/triangle-go/token"
)

// Severity classifies how serious a Diagnostic is.
type Severity int

const (
	Warning Severity = iota
	Error
	Fatal
)

// Kind is the taxonomy from spec §7.
type Kind string

const (
	LexicalError        Kind = "LexicalError"
	SyntaxError         Kind = "SyntaxError"
	IdentificationError Kind = "IdentificationError"
	TypeError           Kind = "TypeError"
	InternalError       Kind = "InternalError"
)

// Diagnostic is a single reported problem, always anchored to a Span.
type Diagnostic struct {
	Kind     Kind
	Severity Severity
	Message  string
	Span     token.Span
}

func (d Diagnostic) Error() string {
	if d.Kind == InternalError {
		return fmt.Sprintf("🤖 InternalError: %s", d.Message)
	}
	return fmt.Sprintf("💥 %s:\nline:%d, column:%d - %s", d.Kind, d.Span.Start.Line, d.Span.Start.Column, d.Message)
}

// Reporter is the interface every phase reports diagnostics through.
type Reporter interface {
	Report(d Diagnostic)
	HasErrors() bool
	Diagnostics() []Diagnostic
}

// Bag is the concrete, process-local Reporter used by one compilation run.
// It is not a global: the driver creates one per source file / REPL chunk
// and threads it through Scanner, Parser, and Checker.
type Bag struct {
	diagnostics []Diagnostic
}

// NewBag creates an empty diagnostic collector.
func NewBag() *Bag {
	return &Bag{}
}

func (b *Bag) Report(d Diagnostic) {
	b.diagnostics = append(b.diagnostics, d)
}

// HasErrors reports whether any Error- or Fatal-severity diagnostic was
// recorded. This is the signal the CLI driver's exit status is derived from.
func (b *Bag) HasErrors() bool {
	for _, d := range b.diagnostics {
		if d.Severity >= Error {
			return true
		}
	}
	return false
}

func (b *Bag) Diagnostics() []Diagnostic {
	return b.diagnostics
}

// Lexical reports a LexicalError at span.
func Lexical(r Reporter, span token.Span, format string, args ...any) {
	r.Report(Diagnostic{Kind: LexicalError, Severity: Error, Message: fmt.Sprintf(format, args...), Span: span})
}

// Syntax reports a SyntaxError at span.
func Syntax(r Reporter, span token.Span, format string, args ...any) {
	r.Report(Diagnostic{Kind: SyntaxError, Severity: Error, Message: fmt.Sprintf(format, args...), Span: span})
}

// Identification reports an IdentificationError at span.
func Identification(r Reporter, span token.Span, format string, args ...any) {
	r.Report(Diagnostic{Kind: IdentificationError, Severity: Error, Message: fmt.Sprintf(format, args...), Span: span})
}

// Type reports a TypeError at span.
func Type(r Reporter, span token.Span, format string, args ...any) {
	r.Report(Diagnostic{Kind: TypeError, Severity: Error, Message: fmt.Sprintf(format, args...), Span: span})
}

// Internal reports an InternalError — the only fatal kind. Callers are
// expected to unwind immediately; the driver exits non-zero on sight of one.
func Internal(r Reporter, span token.Span, format string, args ...any) {
	r.Report(Diagnostic{Kind: InternalError, Severity: Fatal, Message: fmt.Sprintf(format, args...), Span: span})
}
