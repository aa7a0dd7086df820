// Package flow builds the structure views of a form: a per-question list
// view-model and Mermaid diagram source. Both are purely structural reads of
// the definition; nothing here touches live answers.
package flow

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/goliatone/go-protoform/pkg/form"
)

// FinishLabel is the list view-model's rendering of the terminal target.
const FinishLabel = "finish"

// Branch is one branching option in the list view: the answer label and the
// page it routes to, either FinishLabel or a question number in decimal.
type Branch struct {
	Label string
	Next  string
}

// Item is the list view-model for one question.
type Item struct {
	Number       int
	QuestionText string
	AnswerType   form.AnswerType
	Branching    []Branch

	// ShowNextJump marks a non-obvious transition: the question finishes the
	// form, or it jumps over the immediately-following question. Plain
	// next-in-sequence flow stays unannotated.
	ShowNextJump   bool
	NextJumpTarget string
}

// Items builds the list view-model for every question in order.
func Items(def form.FormDefinition) []Item {
	items := make([]Item, 0, len(def.Questions))
	for i, q := range def.Questions {
		number := i + 1
		item := Item{
			Number:       number,
			QuestionText: q.QuestionText,
			AnswerType:   q.AnswerType,
		}
		if q.IsBranching() {
			item.Branching = make([]Branch, 0, len(q.OptionsBranching))
			for _, opt := range q.OptionsBranching {
				item.Branching = append(item.Branching, Branch{
					Label: opt.TextValue,
					Next:  targetLabel(opt.NextQuestionValue),
				})
			}
		} else {
			target := resolvedTarget(q, number, len(def.Questions))
			if target == form.Finish || target != number+1 {
				item.ShowNextJump = true
				item.NextJumpTarget = targetLabel(target)
			}
		}
		items = append(items, item)
	}
	return items
}

// resolvedTarget mirrors the non-branching navigation rules without the
// check-answers shortcut: explicit target first, then sequence, then finish.
func resolvedTarget(q form.Question, number, total int) int {
	if q.HasExplicitNext() {
		return q.NextQuestionValue
	}
	if number < total {
		return number + 1
	}
	return form.Finish
}

func targetLabel(target int) string {
	if target == form.Finish {
		return FinishLabel
	}
	return strconv.Itoa(target)
}

// Mermaid renders the question sequence as flowchart source: one node per
// question, one labeled edge per branching option, one plain edge per
// non-branching question, and a single Finish sink. An empty sequence still
// yields a valid diagram.
func Mermaid(def form.FormDefinition) string {
	var b strings.Builder
	b.WriteString("flowchart TD\n")

	for i, q := range def.Questions {
		fmt.Fprintf(&b, "    Q%d[\"%s\"]\n", i+1, escapeNodeText(q.QuestionText))
	}
	b.WriteString("    Finish([\"End\"])\n")

	for i, q := range def.Questions {
		number := i + 1
		if q.IsBranching() {
			for _, opt := range q.OptionsBranching {
				fmt.Fprintf(&b, "    Q%d -->|%s| %s\n",
					number, escapeNodeText(opt.TextValue), nodeRef(opt.NextQuestionValue))
			}
			continue
		}
		fmt.Fprintf(&b, "    Q%d --> %s\n", number, nodeRef(resolvedTarget(q, number, len(def.Questions))))
	}
	return b.String()
}

func nodeRef(target int) string {
	if target == form.Finish {
		return "Finish"
	}
	return fmt.Sprintf("Q%d", target)
}

// escapeNodeText keeps question text from breaking out of the quoted node
// label.
func escapeNodeText(s string) string {
	return strings.ReplaceAll(s, `"`, "#quot;")
}
