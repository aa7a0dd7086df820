package compiler

import (
	"fmt"
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-protoform/components/countries"
	"github.com/goliatone/go-protoform/pkg/form"
)

// Option customises the compiler configuration.
type Option func(*config)

type config struct {
	countryOptions     []string
	nationalityOptions []string
	sanitizer          *bluemonday.Policy
}

// WithCountryOptions overrides the embedded country list used by country and
// passport select controls.
func WithCountryOptions(options []string) Option {
	return func(cfg *config) {
		if len(options) > 0 {
			cfg.countryOptions = options
		}
	}
}

// WithNationalityOptions overrides the embedded nationality list.
func WithNationalityOptions(options []string) Option {
	return func(cfg *config) {
		if len(options) > 0 {
			cfg.nationalityOptions = options
		}
	}
}

// WithSanitizer injects a custom bluemonday policy for author-supplied rich
// text blocks.
func WithSanitizer(policy *bluemonday.Policy) Option {
	return func(cfg *config) {
		if policy != nil {
			cfg.sanitizer = policy
		}
	}
}

// Compiler emits page fragments for one form definition. It works on a
// normalized private copy and holds no mutable state after construction, so
// one instance is safe to share across goroutines.
type Compiler struct {
	def                form.FormDefinition
	progress           bool
	countryOptions     []string
	nationalityOptions []string
	sanitizer          *bluemonday.Policy
}

// New builds a compiler for the definition. The definition is normalized
// here; callers pass the document as decoded.
func New(def form.FormDefinition, options ...Option) (*Compiler, error) {
	cfg := config{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	if cfg.countryOptions == nil {
		names, err := countries.Names()
		if err != nil {
			return nil, fmt.Errorf("compiler: load country options: %w", err)
		}
		cfg.countryOptions = names
	}
	if cfg.nationalityOptions == nil {
		names, err := countries.Nationalities()
		if err != nil {
			return nil, fmt.Errorf("compiler: load nationality options: %w", err)
		}
		cfg.nationalityOptions = names
	}
	if cfg.sanitizer == nil {
		cfg.sanitizer = bluemonday.UGCPolicy()
	}

	return &Compiler{
		def:                def.Normalize(),
		progress:           def.ProgressIndicators(),
		countryOptions:     cfg.countryOptions,
		nationalityOptions: cfg.nationalityOptions,
		sanitizer:          cfg.sanitizer,
	}, nil
}

// Definition returns the normalized working copy the compiler operates on.
func (c *Compiler) Definition() form.FormDefinition {
	return c.def
}

// Field emits the page fragment for the question at the 1-based number:
// heading, hint, optional explanation, the input control(s) with live-data
// value expressions, and the validation attributes the browser runtime reads.
// An out-of-range number is a caller bug and fails fast. An unrecognized
// answer type compiles to an empty fragment: the definition may come from a
// less-trusted generator, and one unknown page should not sink the form.
func (c *Compiler) Field(number int) (string, error) {
	q, err := c.def.Question(number)
	if err != nil {
		return "", fmt.Errorf("compiler: %w", err)
	}
	if !knownAnswerType(q.AnswerType) {
		return "", nil
	}

	var b strings.Builder
	b.Grow(1024)

	if c.progress {
		fmt.Fprintf(&b, "<span class=\"govuk-caption-l\">Question %d of %d</span>\n", number, len(c.def.Questions))
	}

	switch q.AnswerType {
	case form.AnswerTypeBranchingChoice:
		c.writeChoiceGroup(&b, q, number, branchingLabels(q), false)
	case form.AnswerTypeSingleChoice:
		c.writeChoiceGroup(&b, q, number, q.Options, false)
	case form.AnswerTypeMultipleChoice:
		c.writeChoiceGroup(&b, q, number, q.Options, true)
	case form.AnswerTypeCountry:
		c.writeSelectQuestion(&b, q, number, c.countryOptions)
	case form.AnswerTypeNationality:
		c.writeSelectQuestion(&b, q, number, c.nationalityOptions)
	case form.AnswerTypeTextArea:
		c.writeTextareaQuestion(&b, q, number)
	case form.AnswerTypeFileUpload:
		c.writeFileQuestion(&b, q, number)
	case form.AnswerTypeDate, form.AnswerTypeDateOfBirth:
		c.writeDateQuestion(&b, q, number)
	case form.AnswerTypeAddress, form.AnswerTypeBankDetails,
		form.AnswerTypeEmergencyContact, form.AnswerTypePassport:
		c.writeMultiFieldQuestion(&b, q, number)
	default:
		c.writeTextQuestion(&b, q, number)
	}

	return b.String(), nil
}

func knownAnswerType(t form.AnswerType) bool {
	switch t {
	case form.AnswerTypeBranchingChoice, form.AnswerTypeText, form.AnswerTypeTextArea,
		form.AnswerTypeName, form.AnswerTypeEmail, form.AnswerTypePhoneNumber,
		form.AnswerTypeNationalInsurance, form.AnswerTypeTaxCode, form.AnswerTypeVATRegistration,
		form.AnswerTypeGBPCurrencyAmount, form.AnswerTypeDate, form.AnswerTypeDateOfBirth,
		form.AnswerTypeAddress, form.AnswerTypeBankDetails, form.AnswerTypePassport,
		form.AnswerTypeEmergencyContact, form.AnswerTypeSingleChoice, form.AnswerTypeMultipleChoice,
		form.AnswerTypeCountry, form.AnswerTypeNationality, form.AnswerTypeFileUpload:
		return true
	default:
		return false
	}
}

func branchingLabels(q form.Question) []string {
	labels := make([]string, len(q.OptionsBranching))
	for i, opt := range q.OptionsBranching {
		labels[i] = opt.TextValue
	}
	return labels
}

// explanation emits the optional collapsible secondary text block. The body
// is sanitized: definitions may originate from an LLM.
func (c *Compiler) explanation(b *strings.Builder, q form.Question) {
	text := strings.TrimSpace(q.DetailedExplanation)
	if text == "" {
		return
	}
	b.WriteString("<details class=\"govuk-details\">\n")
	b.WriteString("  <summary class=\"govuk-details__summary\"><span class=\"govuk-details__summary-text\">More about this question</span></summary>\n")
	b.WriteString("  <div class=\"govuk-details__text\">")
	b.WriteString(c.sanitizer.Sanitize(text))
	b.WriteString("</div>\n")
	b.WriteString("</details>\n")
}

func writeAttrs(b *strings.Builder, attrs []Attribute) {
	for _, attr := range attrs {
		b.WriteByte(' ')
		b.WriteString(attr.Name)
		b.WriteString("=\"")
		b.WriteString(html.EscapeString(attr.Value))
		b.WriteString("\"")
	}
}

func writeErrorSlot(b *strings.Builder, key string) {
	b.WriteString("  <p class=\"govuk-error-message\" data-error-for=\"")
	b.WriteString(html.EscapeString(key))
	b.WriteString("\" hidden><span class=\"govuk-visually-hidden\">Error:</span> <span data-error-text></span></p>\n")
}

func hintID(key string) string {
	return key + "-hint"
}

func (c *Compiler) writeHint(b *strings.Builder, q form.Question, key string) bool {
	if q.HintText == "" {
		return false
	}
	b.WriteString("  <div id=\"")
	b.WriteString(html.EscapeString(hintID(key)))
	b.WriteString("\" class=\"govuk-hint\">")
	b.WriteString(html.EscapeString(q.HintText))
	b.WriteString("</div>\n")
	return true
}
