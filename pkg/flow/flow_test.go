package flow

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-protoform/pkg/form"
)

func TestItemsSequentialQuestions(t *testing.T) {
	def := form.FormDefinition{
		Title: "Test",
		Questions: []form.Question{
			{QuestionText: "First?", AnswerType: form.AnswerTypeText},
			{QuestionText: "Second?", AnswerType: form.AnswerTypeText},
			{QuestionText: "Third?", AnswerType: form.AnswerTypeText},
		},
	}

	items := Items(def)
	want := []Item{
		{Number: 1, QuestionText: "First?", AnswerType: form.AnswerTypeText},
		{Number: 2, QuestionText: "Second?", AnswerType: form.AnswerTypeText},
		{Number: 3, QuestionText: "Third?", AnswerType: form.AnswerTypeText, ShowNextJump: true, NextJumpTarget: "finish"},
	}
	if diff := cmp.Diff(want, items); diff != "" {
		t.Fatalf("items mismatch (-want +got):\n%s", diff)
	}
}

func TestItemsMarksForwardJump(t *testing.T) {
	def := form.FormDefinition{
		Title: "Test",
		Questions: []form.Question{
			{QuestionText: "First?", AnswerType: form.AnswerTypeText, NextQuestionValue: 3},
			{QuestionText: "Second?", AnswerType: form.AnswerTypeText},
			{QuestionText: "Third?", AnswerType: form.AnswerTypeText},
		},
	}

	items := Items(def)
	if !items[0].ShowNextJump || items[0].NextJumpTarget != "3" {
		t.Fatalf("expected question 1 to advertise its jump, got %+v", items[0])
	}
	if items[1].ShowNextJump {
		t.Fatalf("plain sequential flow should stay unannotated, got %+v", items[1])
	}
}

func TestItemsBranchingOptions(t *testing.T) {
	def := form.FormDefinition{
		Title: "Test",
		Questions: []form.Question{
			{
				QuestionText: "Do you live in the UK?",
				AnswerType:   form.AnswerTypeBranchingChoice,
				OptionsBranching: []form.BranchingOption{
					{TextValue: "Yes", NextQuestionValue: form.Finish},
					{TextValue: "No", NextQuestionValue: 2},
				},
			},
			{QuestionText: "Where?", AnswerType: form.AnswerTypeText},
		},
	}

	items := Items(def)
	want := []Branch{
		{Label: "Yes", Next: "finish"},
		{Label: "No", Next: "2"},
	}
	if diff := cmp.Diff(want, items[0].Branching); diff != "" {
		t.Fatalf("branching mismatch (-want +got):\n%s", diff)
	}
	if items[0].ShowNextJump {
		t.Fatal("branching questions use their options, not the next-jump annotation")
	}
}

func TestMermaidSequentialForm(t *testing.T) {
	def := form.FormDefinition{
		Title: "Test",
		Questions: []form.Question{
			{QuestionText: "First?", AnswerType: form.AnswerTypeText},
			{QuestionText: "Second?", AnswerType: form.AnswerTypeText},
			{QuestionText: "Third?", AnswerType: form.AnswerTypeText},
		},
	}

	got := Mermaid(def)
	want := "flowchart TD\n" +
		"    Q1[\"First?\"]\n" +
		"    Q2[\"Second?\"]\n" +
		"    Q3[\"Third?\"]\n" +
		"    Finish([\"End\"])\n" +
		"    Q1 --> Q2\n" +
		"    Q2 --> Q3\n" +
		"    Q3 --> Finish\n"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("diagram mismatch (-want +got):\n%s", diff)
	}
}

func TestMermaidBranchingEdgesAreLabeled(t *testing.T) {
	def := form.FormDefinition{
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

	got := Mermaid(def)
	for _, want := range []string{
		"    Q2 -->|Yes| Finish\n",
		"    Q2 -->|No| Q3\n",
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("expected edge %q in diagram:\n%s", want, got)
		}
	}
	if strings.Count(got, "Finish([\"End\"])") != 1 {
		t.Fatalf("expected exactly one Finish node:\n%s", got)
	}
	if strings.Count(got, "[\"") != 3+1 {
		t.Fatalf("expected one node per question plus Finish:\n%s", got)
	}
}

func TestMermaidEscapesQuotes(t *testing.T) {
	def := form.FormDefinition{
		Title: "Test",
		Questions: []form.Question{
			{QuestionText: `Have you read the "guidance"?`, AnswerType: form.AnswerTypeText},
		},
	}

	got := Mermaid(def)
	if !strings.Contains(got, `Q1["Have you read the #quot;guidance#quot;?"]`) {
		t.Fatalf("expected quotes to be escaped:\n%s", got)
	}
}

func TestMermaidEmptyFormStillValid(t *testing.T) {
	got := Mermaid(form.FormDefinition{Title: "Test"})
	want := "flowchart TD\n    Finish([\"End\"])\n"
	if got != want {
		t.Fatalf("empty diagram mismatch:\n got %q\nwant %q", got, want)
	}
}
