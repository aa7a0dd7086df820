package summary

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-protoform/pkg/compiler"
	"github.com/goliatone/go-protoform/pkg/form"
)

// NotProvided is the fallback shown for any answer the user skipped.
const NotProvided = "Not provided"

// AnswerPresence reports whether a live-data key holds an answer. The
// check-answers page needs to know which optional subfields to omit, but it
// must never see the values themselves; those stay in the answer store until
// render time.
type AnswerPresence interface {
	Has(key string) bool
}

// PresenceMap is the map-backed AnswerPresence used by the page assembler
// and tests.
type PresenceMap map[string]bool

func (m PresenceMap) Has(key string) bool { return m[key] }

// Row is one entry on the check-answers page: the question, the deferred
// value expression, and the change link back to the question page.
type Row struct {
	QuestionText string
	Key          string
	Value        compiler.CompiledExpression
	Multiline    bool
	ChangeHref   string
}

// Rows builds the check-answers rows for every question in order. Questions
// with an unrecognized answer type compile to no page, so they get no row
// either. The presence lookup may be nil, which reads as "nothing answered":
// multi-field rows then collapse to the fallback text.
func Rows(def form.FormDefinition, present AnswerPresence) []Row {
	def = def.Normalize()
	rows := make([]Row, 0, len(def.Questions))
	for i, q := range def.Questions {
		number := i + 1
		expr, ok := Expression(q, number, present)
		if !ok {
			continue
		}
		rows = append(rows, Row{
			QuestionText: q.QuestionText,
			Key:          form.Key(number),
			Value:        expr,
			Multiline:    expr.Multiline(),
			ChangeHref:   fmt.Sprintf("/question-%d?referrer=check-answers", number),
		})
	}
	return rows
}

// Expression compiles the deferred value expression for one question. The
// second return is false when the answer type is unrecognized.
func Expression(q form.Question, number int, present AnswerPresence) (compiler.CompiledExpression, bool) {
	key := form.Key(number)
	switch q.AnswerType {
	case form.AnswerTypeMultipleChoice:
		return compiler.NewExpression(conditional(key, fmt.Sprintf("{{ %s|joinand }}", dataRef(key)))), true
	case form.AnswerTypeGBPCurrencyAmount:
		return compiler.NewExpression(conditional(key, "£{{ "+dataRef(key)+" }}")), true
	case form.AnswerTypeDate, form.AnswerTypeDateOfBirth:
		return compiler.NewExpression(dateExpression(key)), true
	case form.AnswerTypeAddress, form.AnswerTypeBankDetails,
		form.AnswerTypeEmergencyContact, form.AnswerTypePassport:
		return compiler.NewExpression(multiFieldExpression(q, number, present)), true
	case form.AnswerTypeBranchingChoice, form.AnswerTypeText, form.AnswerTypeTextArea,
		form.AnswerTypeName, form.AnswerTypeEmail, form.AnswerTypePhoneNumber,
		form.AnswerTypeNationalInsurance, form.AnswerTypeTaxCode,
		form.AnswerTypeVATRegistration, form.AnswerTypeSingleChoice,
		form.AnswerTypeCountry, form.AnswerTypeNationality, form.AnswerTypeFileUpload:
		return compiler.NewExpression(conditional(key, "{{ "+dataRef(key)+" }}")), true
	default:
		return compiler.CompiledExpression{}, false
	}
}

func dataRef(key string) string {
	return fmt.Sprintf("data['%s']", strings.ReplaceAll(key, "'", "\\'"))
}

// conditional wraps a present-branch body in the standard answered/unanswered
// test for one key.
func conditional(key, body string) string {
	ref := dataRef(key)
	return fmt.Sprintf("{%% if %s %%}%s{%% else %%}%s{%% endif %%}", ref, body, NotProvided)
}

// dateExpression joins the three date parts into one formatted value, falling
// back when any part is missing.
func dateExpression(keyPrefix string) string {
	parts := make([]string, 0, 3)
	for _, part := range form.DateParts() {
		parts = append(parts, dataRef(keyPrefix+"-"+part))
	}
	return fmt.Sprintf("{%% if %s %%}{{ data|datejoin:'%s'|longdate }}{%% else %%}%s{%% endif %%}",
		strings.Join(parts, " and "), keyPrefix, NotProvided)
}

// multiFieldExpression builds the line-per-subfield value for address-like
// questions. Only subfields the user actually filled in contribute a line;
// that decision needs key presence and nothing more.
func multiFieldExpression(q form.Question, number int, present AnswerPresence) string {
	lines := make([]string, 0, 6)
	for _, sub := range q.AnswerType.Subfields() {
		subKey := form.Subkey(number, sub.Name)
		if sub.Kind == form.SubfieldDateGroup {
			if present == nil || !present.Has(subKey+"-day") {
				continue
			}
			lines = append(lines, fmt.Sprintf("{{ data|datejoin:'%s'|longdate }}", subKey))
			continue
		}
		if present == nil || !present.Has(subKey) {
			continue
		}
		lines = append(lines, "{{ "+dataRef(subKey)+" }}")
	}
	if len(lines) == 0 {
		return NotProvided
	}
	return strings.Join(lines, "\n")
}
