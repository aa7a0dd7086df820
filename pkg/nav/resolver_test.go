package nav

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-protoform/pkg/form"
)

func threeQuestionForm() form.FormDefinition {
	return form.FormDefinition{
		Title: "Test",
		Questions: []form.Question{
			{QuestionText: "First?", AnswerType: form.AnswerTypeText},
			{QuestionText: "Second?", AnswerType: form.AnswerTypeText},
			{QuestionText: "Third?", AnswerType: form.AnswerTypeText},
		},
	}
}

func branchingForm() form.FormDefinition {
	return form.FormDefinition{
		Title: "Test",
		Questions: []form.Question{
			{QuestionText: "First?", AnswerType: form.AnswerTypeText},
			{
				QuestionText: "Do you live in the UK?",
				AnswerType:   form.AnswerTypeBranchingChoice,
				OptionsBranching: []form.BranchingOption{
					{TextValue: "Yes", NextQuestionValue: form.Finish},
					{TextValue: "No", NextQuestionValue: 3},
				},
			},
			{QuestionText: "Third?", AnswerType: form.AnswerTypeText},
		},
	}
}

func mustResolve(t *testing.T, def form.FormDefinition, number int, answer string, via bool) Outcome {
	t.Helper()
	out, err := Resolve(def, number, answer, via)
	if err != nil {
		t.Fatalf("Resolve(%d): %v", number, err)
	}
	return out
}

func TestResolveSequentialDefault(t *testing.T) {
	def := threeQuestionForm()

	got := mustResolve(t, def, 1, "anything", false)
	if diff := cmp.Diff(Outcome{Target: Target(2)}, got); diff != "" {
		t.Fatalf("outcome mismatch (-want +got):\n%s", diff)
	}
}

func TestResolveLastQuestionFinishes(t *testing.T) {
	def := threeQuestionForm()

	got := mustResolve(t, def, 3, "", false)
	if !got.Target.IsFinish() {
		t.Fatalf("expected finish, got %v", got.Target)
	}
}

func TestResolveExplicitForwardJump(t *testing.T) {
	def := threeQuestionForm()
	def.Questions[0].NextQuestionValue = 3

	got := mustResolve(t, def, 1, "", false)
	if got.Target != Target(3) {
		t.Fatalf("expected jump to question 3, got %v", got.Target)
	}
}

func TestResolveBranchingMatchedOption(t *testing.T) {
	def := branchingForm()

	if got := mustResolve(t, def, 2, "Yes", false); !got.Target.IsFinish() {
		t.Fatalf("expected Yes to finish, got %v", got.Target)
	}
	if got := mustResolve(t, def, 2, "No", false); got.Target != Target(3) {
		t.Fatalf("expected No to route to question 3, got %v", got.Target)
	}
}

func TestResolveBranchingUnmatchedRedirects(t *testing.T) {
	def := branchingForm()

	for _, answer := range []string{"", "Maybe"} {
		got := mustResolve(t, def, 2, answer, false)
		if !got.RedirectToCurrent {
			t.Fatalf("answer %q: expected redirect to current question", answer)
		}
		if got.Target != Target(2) {
			t.Fatalf("answer %q: redirect target should be the same question, got %v", answer, got.Target)
		}

		again := mustResolve(t, def, 2, answer, false)
		if diff := cmp.Diff(got, again); diff != "" {
			t.Fatalf("resolution should be repeatable (-first +second):\n%s", diff)
		}
	}
}

func TestResolveCheckAnswersShortcut(t *testing.T) {
	def := threeQuestionForm()

	got := mustResolve(t, def, 1, "changed", true)
	if !got.Target.IsCheckAnswers() {
		t.Fatalf("expected check-answers shortcut, got %v", got.Target)
	}
}

func TestResolveBranchingOverridesCheckAnswersShortcut(t *testing.T) {
	def := branchingForm()

	got := mustResolve(t, def, 2, "No", true)
	if got.Target != Target(3) {
		t.Fatalf("branching must follow its option even from check-answers, got %v", got.Target)
	}
}

func TestResolveOutOfRangeFails(t *testing.T) {
	def := threeQuestionForm()

	if _, err := Resolve(def, 0, "", false); err == nil {
		t.Fatal("expected error for question number 0")
	}
	if _, err := Resolve(def, 4, "", false); err == nil {
		t.Fatal("expected error for question number past the end")
	}
}

func TestTargetString(t *testing.T) {
	cases := map[Target]string{
		TargetFinish:       "finish",
		TargetCheckAnswers: "check-answers",
		Target(4):          "question-4",
	}
	for target, want := range cases {
		if got := target.String(); got != want {
			t.Fatalf("Target(%d).String() = %q, want %q", int(target), got, want)
		}
	}
}

func TestHistoryBackLinks(t *testing.T) {
	var h History

	if h.BackLink() != "" {
		t.Fatal("fresh history should have no back link")
	}

	h.Visit("/")
	h.Visit("/question-1")
	h.Visit("/question-1")
	h.Visit("/question-2")

	if got := h.Current(); got != "/question-2" {
		t.Fatalf("Current() = %q", got)
	}
	if got := h.BackLink(); got != "/question-1" {
		t.Fatalf("BackLink() = %q", got)
	}

	prev, ok := h.Back()
	if !ok || prev != "/question-1" {
		t.Fatalf("Back() = %q, %v", prev, ok)
	}
	if got := h.BackLink(); got != "/" {
		t.Fatalf("BackLink() after Back() = %q", got)
	}

	h.Reset()
	if h.Current() != "" {
		t.Fatal("Reset() should clear the stack")
	}
}
