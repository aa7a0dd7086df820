package form

import (
	"errors"
	"fmt"
)

var (
	errNoQuestions  = errors.New("form: definition has no questions")
	errTitleMissing = errors.New("form: title is required")
)

// ValidateTargets checks every navigation target in the definition against
// the forward-only invariant: for a question at 1-based number k, a branching
// option may point at Finish or any number in k+1..N exclusive of k itself
// (strictly forward), and an explicit non-branching target may point at
// Finish or any number in 2..N strictly after k. Backward targets and
// self-jumps would create loops, so they are rejected here rather than
// degraded at compile time.
//
// Branching options and explicit targets keep their historically different
// directionality guarantees; both are enforced as "strictly after the current
// question".
func (d FormDefinition) ValidateTargets() error {
	if d.Title == "" {
		return errTitleMissing
	}
	if len(d.Questions) == 0 {
		return errNoQuestions
	}

	total := len(d.Questions)
	for i, q := range d.Questions {
		number := i + 1
		if q.IsBranching() {
			if len(q.OptionsBranching) == 0 {
				return fmt.Errorf("form: question %d: branching choice has no options", number)
			}
			for _, opt := range q.OptionsBranching {
				if err := checkTarget(opt.NextQuestionValue, number, total); err != nil {
					return fmt.Errorf("form: question %d option %q: %w", number, opt.TextValue, err)
				}
			}
			continue
		}
		if q.HasExplicitNext() {
			if err := checkTarget(q.NextQuestionValue, number, total); err != nil {
				return fmt.Errorf("form: question %d: %w", number, err)
			}
		}
	}
	return nil
}

func checkTarget(target, number, total int) error {
	if target == Finish {
		return nil
	}
	if target <= number {
		return fmt.Errorf("target %d does not move forward from question %d", target, number)
	}
	if target > total {
		return fmt.Errorf("target %d exceeds question count %d", target, total)
	}
	return nil
}
