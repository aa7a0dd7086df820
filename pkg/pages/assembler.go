package pages

import (
	"fmt"
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-protoform/pkg/compiler"
	"github.com/goliatone/go-protoform/pkg/form"
	"github.com/goliatone/go-protoform/pkg/render/template"
	"github.com/goliatone/go-protoform/pkg/render/template/gotemplate"
	"github.com/goliatone/go-protoform/pkg/summary"
)

// Option configures the assembler.
type Option func(*config)

type config struct {
	renderer        template.TemplateRenderer
	selector        ThemeSelector
	themeName       string
	themeVariant    string
	sanitizer       *bluemonday.Policy
	compilerOptions []compiler.Option
}

// WithRenderer overrides the engine used to evaluate the chrome templates at
// assembly time.
func WithRenderer(r template.TemplateRenderer) Option {
	return func(cfg *config) {
		if r != nil {
			cfg.renderer = r
		}
	}
}

// WithThemeSelector plugs in a go-theme registry or any other selection
// source in place of the embedded GOV.UK manifest.
func WithThemeSelector(selector ThemeSelector) Option {
	return func(cfg *config) {
		if selector != nil {
			cfg.selector = selector
		}
	}
}

// WithTheme picks the theme name and variant requested from the selector.
func WithTheme(name, variant string) Option {
	return func(cfg *config) {
		cfg.themeName = strings.TrimSpace(name)
		cfg.themeVariant = strings.TrimSpace(variant)
	}
}

// WithSanitizer overrides the policy applied to author-supplied rich text.
func WithSanitizer(policy *bluemonday.Policy) Option {
	return func(cfg *config) {
		if policy != nil {
			cfg.sanitizer = policy
		}
	}
}

// WithCompilerOptions passes options through to the field compiler.
func WithCompilerOptions(options ...compiler.Option) Option {
	return func(cfg *config) {
		cfg.compilerOptions = append(cfg.compilerOptions, options...)
	}
}

// File is one page of the downloadable prototype: the file name and its
// template source. Writing to disk belongs to callers.
type File struct {
	Name   string
	Source string
}

// Assembler combines compiled fields with themed chrome into complete page
// template-source units: start, one per question, check-answers, and
// confirmation. Assembled sources still contain live-data expressions; they
// are evaluated later, per session, by the template engine.
type Assembler struct {
	def       form.FormDefinition
	comp      *compiler.Compiler
	renderer  template.TemplateRenderer
	chrome    chromeTheme
	sanitizer *bluemonday.Policy
}

// New builds an assembler for the definition.
func New(def form.FormDefinition, options ...Option) (*Assembler, error) {
	cfg := config{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	comp, err := compiler.New(def, cfg.compilerOptions...)
	if err != nil {
		return nil, fmt.Errorf("pages: %w", err)
	}

	if cfg.renderer == nil {
		engine, err := gotemplate.New(
			gotemplate.WithFS(TemplatesFS()),
			gotemplate.WithExtension(".html"),
		)
		if err != nil {
			return nil, fmt.Errorf("pages: chrome engine: %w", err)
		}
		cfg.renderer = engine
	}
	if cfg.selector == nil {
		cfg.selector = manifestSelector{manifest: defaultManifest()}
	}
	if cfg.sanitizer == nil {
		cfg.sanitizer = bluemonday.UGCPolicy()
	}

	selection, err := cfg.selector.Select(cfg.themeName, cfg.themeVariant)
	if err != nil {
		return nil, fmt.Errorf("pages: select theme: %w", err)
	}

	return &Assembler{
		def:       comp.Definition(),
		comp:      comp,
		renderer:  cfg.renderer,
		chrome:    resolveTheme(selection),
		sanitizer: cfg.sanitizer,
	}, nil
}

// Definition returns the normalized definition the assembler works from.
func (a *Assembler) Definition() form.FormDefinition {
	return a.def
}

// StartPage assembles the landing page: title, duration, the
// before-you-start block, and the start button.
func (a *Assembler) StartPage() (string, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "<h1 class=\"govuk-heading-xl\">%s</h1>\n", html.EscapeString(a.def.Title))
	if a.def.Description != "" {
		fmt.Fprintf(&b, "<p class=\"govuk-body-l\">%s</p>\n", html.EscapeString(a.def.Description))
	}
	if a.def.Duration > 0 {
		fmt.Fprintf(&b, "<p class=\"govuk-body\">Takes around %d %s to complete.</p>\n",
			a.def.Duration, minuteWord(a.def.Duration))
	}
	a.richText(&b, "Before you start", a.def.BeforeYouStart)
	b.WriteString("<a href=\"/question-1\" role=\"button\" draggable=\"false\" class=\"govuk-button govuk-button--start\">Start now</a>\n")

	return a.assemble(a.def.Title, b.String())
}

// QuestionPage assembles the page for the question at the 1-based number.
// The page keeps two render-time seams open: the back link and the
// check-answers referrer marker, both supplied by the preview session.
func (a *Assembler) QuestionPage(number int) (string, error) {
	q, err := a.def.Question(number)
	if err != nil {
		return "", fmt.Errorf("pages: %w", err)
	}

	field, err := a.comp.Field(number)
	if err != nil {
		return "", fmt.Errorf("pages: %w", err)
	}

	var b strings.Builder
	b.WriteString("{% if back_link %}<a href=\"{{ back_link }}\" class=\"govuk-back-link\">Back</a>{% endif %}\n")
	fmt.Fprintf(&b, "<form method=\"post\" action=\"/question-%d\" data-validate-form novalidate>\n", number)
	b.WriteString("{% if via_check_answers %}<input type=\"hidden\" name=\"referrer\" value=\"check-answers\">{% endif %}\n")
	b.WriteString(field)
	b.WriteString("<button type=\"submit\" class=\"govuk-button\" data-module=\"govuk-button\">Continue</button>\n")
	b.WriteString("</form>\n")

	return a.assemble(q.QuestionText, b.String())
}

// CheckAnswersPage assembles the summary page. The presence lookup decides
// which optional subfields appear; see summary.Rows.
func (a *Assembler) CheckAnswersPage(present summary.AnswerPresence) (string, error) {
	var b strings.Builder
	b.WriteString("<h1 class=\"govuk-heading-xl\">Check your answers before sending your form</h1>\n")
	b.WriteString("<dl class=\"govuk-summary-list\">\n")
	for _, row := range summary.Rows(a.def, present) {
		valueClass := "govuk-summary-list__value"
		if row.Multiline {
			valueClass += " app-summary-value--multiline"
		}
		b.WriteString("  <div class=\"govuk-summary-list__row\">\n")
		fmt.Fprintf(&b, "    <dt class=\"govuk-summary-list__key\">%s</dt>\n", html.EscapeString(row.QuestionText))
		fmt.Fprintf(&b, "    <dd class=\"%s\">%s</dd>\n", valueClass, row.Value.Source())
		fmt.Fprintf(&b, "    <dd class=\"govuk-summary-list__actions\"><a class=\"govuk-link\" href=\"%s\">Change<span class=\"govuk-visually-hidden\"> %s</span></a></dd>\n",
			row.ChangeHref, html.EscapeString(lowerFirst(row.QuestionText)))
		b.WriteString("  </div>\n")
	}
	b.WriteString("</dl>\n")
	b.WriteString("<form method=\"post\" action=\"/confirmation\">\n")
	b.WriteString("<button type=\"submit\" class=\"govuk-button\" data-module=\"govuk-button\">Accept and send</button>\n")
	b.WriteString("</form>\n")

	return a.assemble("Check your answers", b.String())
}

// ConfirmationPage assembles the final panel page.
func (a *Assembler) ConfirmationPage() (string, error) {
	var b strings.Builder
	b.WriteString("<div class=\"govuk-panel govuk-panel--confirmation\">\n")
	b.WriteString("  <h1 class=\"govuk-panel__title\">Form submitted</h1>\n")
	fmt.Fprintf(&b, "  <div class=\"govuk-panel__body\">%s</div>\n", html.EscapeString(a.def.Title))
	b.WriteString("</div>\n")
	a.richText(&b, "What happens next", a.def.WhatHappensNext)

	return a.assemble("Form submitted", b.String())
}

// Files assembles the full downloadable set: the start page, one file per
// question named by its 1-based number, the check-answers page, and the
// confirmation page.
func (a *Assembler) Files(present summary.AnswerPresence) ([]File, error) {
	files := make([]File, 0, len(a.def.Questions)+3)

	start, err := a.StartPage()
	if err != nil {
		return nil, err
	}
	files = append(files, File{Name: "start.html", Source: start})

	for number := 1; number <= len(a.def.Questions); number++ {
		page, err := a.QuestionPage(number)
		if err != nil {
			return nil, err
		}
		files = append(files, File{Name: fmt.Sprintf("question-%d.html", number), Source: page})
	}

	checkAnswers, err := a.CheckAnswersPage(present)
	if err != nil {
		return nil, err
	}
	files = append(files, File{Name: "check-answers.html", Source: checkAnswers})

	confirmation, err := a.ConfirmationPage()
	if err != nil {
		return nil, err
	}
	files = append(files, File{Name: "confirmation.html", Source: confirmation})

	return files, nil
}

// assemble wraps a page body in the themed chrome. The chrome templates are
// evaluated now, with literal page metadata; the body keeps its live-data
// expressions untouched for the per-session render.
func (a *Assembler) assemble(pageTitle, body string) (string, error) {
	context := map[string]any{
		"page_title":     pageTitle,
		"form_title":     a.def.Title,
		"css_vars":       a.chrome.cssVars,
		"stylesheet_url": a.chrome.stylesheetURL,
		"script_url":     a.chrome.scriptURL,
	}

	header, err := a.renderer.RenderTemplate("header", context)
	if err != nil {
		return "", fmt.Errorf("pages: render header: %w", err)
	}
	footer, err := a.renderer.RenderTemplate("footer", context)
	if err != nil {
		return "", fmt.Errorf("pages: render footer: %w", err)
	}
	return header + body + footer, nil
}

// richText embeds an author-supplied block after sanitizing it. Definitions
// may come from an LLM, so the raw markup is never trusted.
func (a *Assembler) richText(b *strings.Builder, heading, text string) {
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}
	fmt.Fprintf(b, "<h2 class=\"govuk-heading-m\">%s</h2>\n", html.EscapeString(heading))
	fmt.Fprintf(b, "<div class=\"govuk-body\">%s</div>\n", a.sanitizer.Sanitize(text))
}

func minuteWord(minutes int) string {
	if minutes == 1 {
		return "minute"
	}
	return "minutes"
}

func lowerFirst(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
