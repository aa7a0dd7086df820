// Package form holds the declarative question model: a FormDefinition of
// ordered questions, each either a branching choice or one of the
// non-branching answer types. The definition is immutable input to the
// compiler stages; Normalize produces the private working copy they consume.
//
// Unrecognized answer types pass decoding deliberately: definitions may be
// produced by a less-trusted generator, and a single unknown type degrades to
// a blank page fragment instead of rejecting the whole form. Structural
// breakage (backward or out-of-range navigation targets) is still rejected by
// ValidateTargets because it corrupts navigation rather than one page.
package form
