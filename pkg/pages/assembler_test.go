package pages

import (
	"fmt"
	"strings"
	"testing"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-protoform/pkg/form"
	"github.com/goliatone/go-protoform/pkg/summary"
)

func testDefinition() form.FormDefinition {
	return form.FormDefinition{
		Title:          "Apply for a juggling licence",
		Description:    "Licences for street performance.",
		Duration:       5,
		BeforeYouStart: "You will need your <strong>performer ID</strong>.",
		Questions: []form.Question{
			{QuestionText: "What is your name?", AnswerType: form.AnswerTypeName, Required: true},
			{QuestionText: "What is your address?", AnswerType: form.AnswerTypeAddress},
		},
	}
}

func newAssembler(t *testing.T, options ...Option) *Assembler {
	t.Helper()
	a, err := New(testDefinition(), options...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return a
}

func TestStartPageContent(t *testing.T) {
	a := newAssembler(t)

	page, err := a.StartPage()
	if err != nil {
		t.Fatalf("StartPage: %v", err)
	}
	for _, want := range []string{
		`<h1 class="govuk-heading-xl">Apply for a juggling licence</h1>`,
		"Takes around 5 minutes to complete.",
		"You will need your <strong>performer ID</strong>.",
		`<a href="/question-1" role="button"`,
		`<title>Apply for a juggling licence - Apply for a juggling licence</title>`,
	} {
		if !strings.Contains(page, want) {
			t.Fatalf("expected start page to contain %q, got:\n%s", want, page)
		}
	}
}

func TestStartPageSanitizesRichText(t *testing.T) {
	def := testDefinition()
	def.BeforeYouStart = `Read this first.<script>alert(1)</script>`
	a, err := New(def)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	page, err := a.StartPage()
	if err != nil {
		t.Fatalf("StartPage: %v", err)
	}
	if strings.Contains(page, "<script>alert(1)</script>") {
		t.Fatalf("expected script tags stripped:\n%s", page)
	}
	if !strings.Contains(page, "Read this first.") {
		t.Fatalf("expected surviving text:\n%s", page)
	}
}

func TestQuestionPageKeepsRenderTimeSeams(t *testing.T) {
	a := newAssembler(t)

	page, err := a.QuestionPage(1)
	if err != nil {
		t.Fatalf("QuestionPage: %v", err)
	}
	for _, want := range []string{
		`{% if back_link %}<a href="{{ back_link }}" class="govuk-back-link">Back</a>{% endif %}`,
		`<form method="post" action="/question-1" data-validate-form novalidate>`,
		`{% if via_check_answers %}<input type="hidden" name="referrer" value="check-answers">{% endif %}`,
		`value="{{ data['question-1'] }}"`,
		`<button type="submit" class="govuk-button"`,
	} {
		if !strings.Contains(page, want) {
			t.Fatalf("expected question page to contain %q, got:\n%s", want, page)
		}
	}
}

func TestQuestionPageInvalidIndexFails(t *testing.T) {
	a := newAssembler(t)

	for _, number := range []int{0, -1, 3} {
		if _, err := a.QuestionPage(number); err == nil {
			t.Fatalf("expected error for question number %d", number)
		}
	}
}

func TestCheckAnswersPageRows(t *testing.T) {
	a := newAssembler(t)
	present := summary.PresenceMap{
		"question-2-addressLine1":    true,
		"question-2-addressPostcode": true,
	}

	page, err := a.CheckAnswersPage(present)
	if err != nil {
		t.Fatalf("CheckAnswersPage: %v", err)
	}
	for _, want := range []string{
		`<dt class="govuk-summary-list__key">What is your name?</dt>`,
		`href="/question-1?referrer=check-answers"`,
		"app-summary-value--multiline",
		"{{ data['question-2-addressLine1'] }}\n{{ data['question-2-addressPostcode'] }}",
	} {
		if !strings.Contains(page, want) {
			t.Fatalf("expected check-answers page to contain %q, got:\n%s", want, page)
		}
	}
}

func TestConfirmationPagePanel(t *testing.T) {
	def := testDefinition()
	def.WhatHappensNext = "We will email you within 5 working days."
	a, err := New(def)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	page, err := a.ConfirmationPage()
	if err != nil {
		t.Fatalf("ConfirmationPage: %v", err)
	}
	if !strings.Contains(page, `<h1 class="govuk-panel__title">Form submitted</h1>`) {
		t.Fatalf("expected confirmation panel, got:\n%s", page)
	}
	if !strings.Contains(page, "We will email you within 5 working days.") {
		t.Fatalf("expected what-happens-next block, got:\n%s", page)
	}
}

func TestFilesNamesOnePagePerQuestion(t *testing.T) {
	a := newAssembler(t)

	files, err := a.Files(nil)
	if err != nil {
		t.Fatalf("Files: %v", err)
	}

	var names []string
	for _, f := range files {
		names = append(names, f.Name)
		if f.Source == "" {
			t.Fatalf("file %q has empty source", f.Name)
		}
	}
	want := []string{"start.html", "question-1.html", "question-2.html", "check-answers.html", "confirmation.html"}
	if fmt.Sprint(names) != fmt.Sprint(want) {
		t.Fatalf("file names mismatch:\n got %v\nwant %v", names, want)
	}
}

func TestDefaultThemeEmitsCSSVarsAndAssets(t *testing.T) {
	a := newAssembler(t)

	page, err := a.StartPage()
	if err != nil {
		t.Fatalf("StartPage: %v", err)
	}
	for _, want := range []string{
		"--brand: #1d70b8;",
		`<link rel="stylesheet" href="/assets/prototype.css?v=` + FrontendVersion(),
		`<script src="/assets/field-validation.js?v=` + FrontendVersion(),
	} {
		if !strings.Contains(page, want) {
			t.Fatalf("expected themed chrome %q, got:\n%s", want, page)
		}
	}
}

func TestCustomThemeSelector(t *testing.T) {
	manifest := &theme.Manifest{
		Name:    "acme",
		Version: "2.0.0",
		Tokens:  map[string]string{"brand": "#ff0000"},
		Assets: theme.Assets{
			Prefix: "/static",
			Files:  map[string]string{"stylesheet": "acme.css"},
		},
		Variants: map[string]theme.Variant{
			"dark": {Tokens: map[string]string{"brand": "#990000"}},
		},
	}
	a := newAssembler(t,
		WithThemeSelector(manifestSelector{manifest: manifest}),
		WithTheme("acme", "dark"),
	)

	page, err := a.StartPage()
	if err != nil {
		t.Fatalf("StartPage: %v", err)
	}
	if !strings.Contains(page, "--brand: #990000;") {
		t.Fatalf("expected variant token override, got:\n%s", page)
	}
	if !strings.Contains(page, `href="/static/acme.css?v=2.0.0"`) {
		t.Fatalf("expected themed stylesheet URL, got:\n%s", page)
	}
}

func TestUnknownThemeNameFails(t *testing.T) {
	if _, err := New(testDefinition(), WithTheme("missing", "")); err == nil {
		t.Fatal("expected error for unknown theme name")
	}
}
