package domain

import (
	"strings"
)

// DelimiterKind describes where a DelimiterSpec came from.
type DelimiterKind int

const (
	// DelimiterDefault splits on comma or newline.
	DelimiterDefault DelimiterKind = iota
	// DelimiterSingle splits on one declared literal ("//;\n").
	DelimiterSingle
	// DelimiterMultiple splits on any of the bracketed literals ("//[*][%]\n").
	DelimiterMultiple
)

// String returns a short name for the kind, used in logs and API responses.
func (k DelimiterKind) String() string {
	switch k {
	case DelimiterDefault:
		return "default"
	case DelimiterSingle:
		return "single"
	case DelimiterMultiple:
		return "multiple"
	default:
		return "unknown"
	}
}

// DelimiterSpec is an immutable description of how a numeric body is split.
// Every delimiter is an exact literal, never a pattern.
type DelimiterSpec struct {
	kind       DelimiterKind
	delimiters []string
}

// DefaultDelimiterSpec returns the comma-or-newline spec.
func DefaultDelimiterSpec() DelimiterSpec {
	return DelimiterSpec{
		kind:       DelimiterDefault,
		delimiters: []string{DefaultDelimiterComma, DefaultDelimiterNewline},
	}
}

// SingleDelimiterSpec returns a spec splitting on one literal.
func SingleDelimiterSpec(delimiter string) DelimiterSpec {
	return DelimiterSpec{
		kind:       DelimiterSingle,
		delimiters: []string{delimiter},
	}
}

// MultipleDelimiterSpec returns a spec splitting on any of the given literals.
// Duplicates are preserved in declaration order.
func MultipleDelimiterSpec(delimiters []string) DelimiterSpec {
	return DelimiterSpec{
		kind:       DelimiterMultiple,
		delimiters: append([]string(nil), delimiters...),
	}
}

// Kind returns the spec kind.
func (s DelimiterSpec) Kind() DelimiterKind {
	return s.kind
}

// Delimiters returns a copy of the literal delimiters in declaration order.
func (s DelimiterSpec) Delimiters() []string {
	return append([]string(nil), s.delimiters...)
}

// String renders the delimiters with newlines escaped, e.g. `[",", "\n"]`.
func (s DelimiterSpec) String() string {
	quoted := make([]string, len(s.delimiters))
	for i, d := range s.delimiters {
		quoted[i] = `"` + strings.ReplaceAll(d, "\n", `\n`) + `"`
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}

// ParsedInput pairs the resolved delimiter spec with the numeric body that follows the
// declaration. It lives for a single evaluation.
type ParsedInput struct {
	Spec DelimiterSpec
	Body string
}
