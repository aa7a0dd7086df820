package form

import "strings"

// Normalize returns a working copy of the definition with cosmetic cleanup
// applied: a trailing full stop is stripped from hint text before display,
// and date-of-birth age bounds are cleared on any question that is not a
// date_of_birth. The receiver is never mutated; callers hand the copy to the
// compiler stages.
func (d FormDefinition) Normalize() FormDefinition {
	out := d
	out.Questions = make([]Question, len(d.Questions))
	for i, q := range d.Questions {
		q.QuestionText = strings.TrimSpace(q.QuestionText)
		q.HintText = strings.TrimSuffix(strings.TrimSpace(q.HintText), ".")
		if q.AnswerType != AnswerTypeDateOfBirth {
			q.DateOfBirthMinimumAge = 0
			q.DateOfBirthMaximumAge = 0
		}
		out.Questions[i] = q
	}
	return out
}
