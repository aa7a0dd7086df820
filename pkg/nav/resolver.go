package nav

import (
	"fmt"
	"strconv"

	"github.com/goliatone/go-protoform/pkg/form"
)

// Target is where a submission routes next: a 1-based question number,
// Finish, or the check-answers page.
type Target int

const (
	// TargetFinish is the terminal target. The live preview and the
	// downloadable copy both route it to the check-answers page.
	TargetFinish Target = -1

	// TargetCheckAnswers routes straight back to the check-answers page. It
	// is only produced by the check-answers shortcut.
	TargetCheckAnswers Target = 0
)

// IsFinish reports whether the target is the terminal Finish value.
func (t Target) IsFinish() bool { return t == TargetFinish }

// IsCheckAnswers reports whether the target is the check-answers shortcut.
func (t Target) IsCheckAnswers() bool { return t == TargetCheckAnswers }

// QuestionNumber returns the 1-based question number and true when the
// target routes to a question page.
func (t Target) QuestionNumber() (int, bool) {
	if t > 0 {
		return int(t), true
	}
	return 0, false
}

func (t Target) String() string {
	switch {
	case t.IsFinish():
		return "finish"
	case t.IsCheckAnswers():
		return "check-answers"
	default:
		return "question-" + strconv.Itoa(int(t))
	}
}

// Outcome is the resolved routing decision for one submission.
type Outcome struct {
	Target Target

	// RedirectToCurrent re-shows the same question. It is set when a
	// branching question was submitted with no matching selection; an
	// unanswered branch is never silently defaulted.
	RedirectToCurrent bool
}

// Resolve computes the next-page target for the question at the 1-based
// number. The answer argument is only consulted for branching questions;
// viaCheckAnswers is the referrer marker decoded by the caller.
//
// Rules, in priority order: a branching question follows its matched option
// (or redirects when nothing matched), even when reached from check-answers;
// then the check-answers shortcut; then the author's explicit target; then
// sequential order, with the last question finishing.
func Resolve(def form.FormDefinition, number int, answer string, viaCheckAnswers bool) (Outcome, error) {
	q, err := def.Question(number)
	if err != nil {
		return Outcome{}, fmt.Errorf("nav: %w", err)
	}

	if q.IsBranching() {
		for _, opt := range q.OptionsBranching {
			if opt.TextValue == answer {
				return Outcome{Target: Target(opt.NextQuestionValue)}, nil
			}
		}
		return Outcome{Target: Target(number), RedirectToCurrent: true}, nil
	}

	if viaCheckAnswers {
		return Outcome{Target: TargetCheckAnswers}, nil
	}

	if q.HasExplicitNext() {
		return Outcome{Target: Target(q.NextQuestionValue)}, nil
	}

	if number < len(def.Questions) {
		return Outcome{Target: Target(number + 1)}, nil
	}
	return Outcome{Target: TargetFinish}, nil
}
