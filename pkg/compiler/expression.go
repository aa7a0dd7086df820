package compiler

import "strings"

// CompiledExpression is a unit of template-language source text referencing
// live answer store keys. It is evaluated later by the external template
// engine, never by this package. Keeping it distinct from string stops
// callers from escaping or evaluating the source as if it were literal text,
// and makes the multi-line check a property of the expression's shape rather
// than an incidental string scan.
type CompiledExpression struct {
	source string
}

// NewExpression wraps raw template source.
func NewExpression(source string) CompiledExpression {
	return CompiledExpression{source: source}
}

// Source returns the template-language source text.
func (e CompiledExpression) Source() string {
	return e.source
}

// Multiline reports whether the generated source embeds a newline token
// between live-data references. Rows rendered from such expressions need
// multi-line presentation classes regardless of the eventual runtime values,
// which the compiler cannot know.
func (e CompiledExpression) Multiline() bool {
	return strings.Contains(e.source, "\n")
}

// IsZero reports whether the expression carries no source at all.
func (e CompiledExpression) IsZero() bool {
	return e.source == ""
}

// pongoString quotes a literal for embedding inside emitted template source,
// using single quotes so the result can sit inside double-quoted HTML
// attributes.
func pongoString(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('\'')
	for _, r := range s {
		switch r {
		case '\'', '\\':
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	b.WriteByte('\'')
	return b.String()
}

// dataRef emits a live answer store lookup, e.g. data['question-3'].
func dataRef(key string) string {
	return "data[" + pongoString(key) + "]"
}

// valueRef emits an output expression for a live answer, e.g.
// {{ data['question-3'] }}.
func valueRef(key string) string {
	return "{{ " + dataRef(key) + " }}"
}
