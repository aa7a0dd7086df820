// Package protoform compiles declarative form definitions into GOV.UK-style
// multi-page prototype sources: one template-source page per question plus
// start, check-answers, and confirmation pages, a navigation resolver, and a
// structure view of the whole form. Compiled pages reference a per-session
// live answer store by key; an external template engine evaluates them, so
// the compiler itself never sees user answers.
package protoform

import (
	"github.com/goliatone/go-protoform/pkg/compiler"
	"github.com/goliatone/go-protoform/pkg/flow"
	"github.com/goliatone/go-protoform/pkg/form"
	"github.com/goliatone/go-protoform/pkg/nav"
	"github.com/goliatone/go-protoform/pkg/pages"
	"github.com/goliatone/go-protoform/pkg/summary"
)

// Core model types, re-exported for callers that only need the facade.
type (
	FormDefinition     = form.FormDefinition
	Question           = form.Question
	BranchingOption    = form.BranchingOption
	AnswerType         = form.AnswerType
	CompiledExpression = compiler.CompiledExpression
	File               = pages.File
)

// Finish is the terminal navigation target.
const Finish = form.Finish

// Load reads and validates a JSON or YAML definition file.
func Load(path string) (FormDefinition, error) {
	return form.Load(path)
}

// Decode parses and validates a definition document.
func Decode(data []byte) (FormDefinition, error) {
	return form.Decode(data)
}

// Generate assembles the full downloadable page set for a definition. The
// pages carry no answers, so the check-answers page treats every answer as
// absent; the live preview passes real presence information instead.
func Generate(def FormDefinition, options ...pages.Option) ([]File, error) {
	assembler, err := pages.New(def, options...)
	if err != nil {
		return nil, err
	}
	return assembler.Files(nil)
}

// Resolve computes the next-page target for a submission of the question at
// the 1-based number.
func Resolve(def FormDefinition, number int, answer string, viaCheckAnswers bool) (nav.Outcome, error) {
	return nav.Resolve(def, number, answer, viaCheckAnswers)
}

// Flow renders the Mermaid structure diagram for a definition.
func Flow(def FormDefinition) string {
	return flow.Mermaid(def)
}

// FlowItems builds the per-question structure list view-model.
func FlowItems(def FormDefinition) []flow.Item {
	return flow.Items(def)
}

// CheckAnswersRows builds the check-answers rows with the given answer-key
// presence lookup; pass nil for the no-answers downloadable copy.
func CheckAnswersRows(def FormDefinition, present summary.AnswerPresence) []summary.Row {
	return summary.Rows(def, present)
}
