package compiler

import (
	"fmt"
	"html"
	"strings"

	"github.com/goliatone/go-protoform/pkg/form"
)

// inputSpec drives the single text-input answer types: which HTML input to
// emit and which browser hints apply.
type inputSpec struct {
	inputType    string
	autocomplete string
	inputmode    string
	width        string
	noSpellcheck bool
	prefix       string
}

func inputSpecFor(t form.AnswerType) inputSpec {
	switch t {
	case form.AnswerTypeName:
		return inputSpec{inputType: "text", autocomplete: "name", width: "govuk-input--width-20"}
	case form.AnswerTypeEmail:
		return inputSpec{inputType: "email", autocomplete: "email", width: "govuk-input--width-20", noSpellcheck: true}
	case form.AnswerTypePhoneNumber:
		return inputSpec{inputType: "tel", autocomplete: "tel", inputmode: "tel", width: "govuk-input--width-20"}
	case form.AnswerTypeNationalInsurance:
		return inputSpec{inputType: "text", width: "govuk-input--width-10", noSpellcheck: true}
	case form.AnswerTypeTaxCode:
		return inputSpec{inputType: "text", width: "govuk-input--width-5", noSpellcheck: true}
	case form.AnswerTypeVATRegistration:
		return inputSpec{inputType: "text", width: "govuk-input--width-10", noSpellcheck: true}
	case form.AnswerTypeGBPCurrencyAmount:
		return inputSpec{inputType: "text", inputmode: "decimal", width: "govuk-input--width-5", prefix: "£"}
	default:
		return inputSpec{inputType: "text"}
	}
}

// writeTextQuestion emits a labelled single text input with the question text
// as the page heading.
func (c *Compiler) writeTextQuestion(b *strings.Builder, q form.Question, number int) {
	key := form.Key(number)
	spec := inputSpecFor(q.AnswerType)

	b.WriteString("<div class=\"govuk-form-group\"")
	writeAttrs(b, GroupAttributes(q, number))
	b.WriteString(">\n")

	fmt.Fprintf(b, "  <h1 class=\"govuk-label-wrapper\"><label class=\"govuk-label govuk-label--l\" for=\"%s\">%s</label></h1>\n",
		html.EscapeString(key), html.EscapeString(q.QuestionText))
	hasHint := c.writeHint(b, q, key)
	c.explanation(b, q)
	writeErrorSlot(b, key)

	if spec.prefix != "" {
		b.WriteString("  <div class=\"govuk-input__wrapper\"><div class=\"govuk-input__prefix\" aria-hidden=\"true\">")
		b.WriteString(html.EscapeString(spec.prefix))
		b.WriteString("</div>\n")
	}

	b.WriteString("  <input class=\"govuk-input")
	if spec.width != "" {
		b.WriteByte(' ')
		b.WriteString(spec.width)
	}
	fmt.Fprintf(b, "\" id=\"%s\" name=\"%s\" type=\"%s\" value=\"%s\"",
		html.EscapeString(key), html.EscapeString(key), spec.inputType, valueRef(key))
	if spec.autocomplete != "" {
		fmt.Fprintf(b, " autocomplete=\"%s\"", spec.autocomplete)
	}
	if spec.inputmode != "" {
		fmt.Fprintf(b, " inputmode=\"%s\"", spec.inputmode)
	}
	if spec.noSpellcheck {
		b.WriteString(" spellcheck=\"false\"")
	}
	if hasHint {
		fmt.Fprintf(b, " aria-describedby=\"%s\"", html.EscapeString(hintID(key)))
	}
	b.WriteString(">\n")

	if spec.prefix != "" {
		b.WriteString("  </div>\n")
	}
	b.WriteString("</div>\n")
}

func (c *Compiler) writeTextareaQuestion(b *strings.Builder, q form.Question, number int) {
	key := form.Key(number)

	b.WriteString("<div class=\"govuk-form-group\"")
	writeAttrs(b, GroupAttributes(q, number))
	b.WriteString(">\n")

	fmt.Fprintf(b, "  <h1 class=\"govuk-label-wrapper\"><label class=\"govuk-label govuk-label--l\" for=\"%s\">%s</label></h1>\n",
		html.EscapeString(key), html.EscapeString(q.QuestionText))
	hasHint := c.writeHint(b, q, key)
	c.explanation(b, q)
	writeErrorSlot(b, key)

	fmt.Fprintf(b, "  <textarea class=\"govuk-textarea\" id=\"%s\" name=\"%s\" rows=\"5\"",
		html.EscapeString(key), html.EscapeString(key))
	if hasHint {
		fmt.Fprintf(b, " aria-describedby=\"%s\"", html.EscapeString(hintID(key)))
	}
	b.WriteString(">")
	b.WriteString(valueRef(key))
	b.WriteString("</textarea>\n")
	b.WriteString("</div>\n")
}

func (c *Compiler) writeFileQuestion(b *strings.Builder, q form.Question, number int) {
	key := form.Key(number)

	b.WriteString("<div class=\"govuk-form-group\"")
	writeAttrs(b, GroupAttributes(q, number))
	b.WriteString(">\n")

	fmt.Fprintf(b, "  <h1 class=\"govuk-label-wrapper\"><label class=\"govuk-label govuk-label--l\" for=\"%s\">%s</label></h1>\n",
		html.EscapeString(key), html.EscapeString(q.QuestionText))
	c.writeHint(b, q, key)
	c.explanation(b, q)
	writeErrorSlot(b, key)

	fmt.Fprintf(b, "  <input class=\"govuk-file-upload\" id=\"%s\" name=\"%s\" type=\"file\">\n",
		html.EscapeString(key), html.EscapeString(key))
	b.WriteString("</div>\n")
}

// writeSelectQuestion emits a labelled select. The selected option is decided
// at render time against the live answer.
func (c *Compiler) writeSelectQuestion(b *strings.Builder, q form.Question, number int, options []string) {
	key := form.Key(number)

	b.WriteString("<div class=\"govuk-form-group\"")
	writeAttrs(b, GroupAttributes(q, number))
	b.WriteString(">\n")

	fmt.Fprintf(b, "  <h1 class=\"govuk-label-wrapper\"><label class=\"govuk-label govuk-label--l\" for=\"%s\">%s</label></h1>\n",
		html.EscapeString(key), html.EscapeString(q.QuestionText))
	c.writeHint(b, q, key)
	c.explanation(b, q)
	writeErrorSlot(b, key)

	writeSelect(b, key, options)
	b.WriteString("</div>\n")
}

func writeSelect(b *strings.Builder, key string, options []string) {
	fmt.Fprintf(b, "  <select class=\"govuk-select\" id=\"%s\" name=\"%s\">\n",
		html.EscapeString(key), html.EscapeString(key))
	b.WriteString("    <option value=\"\">Select an option</option>\n")
	for _, option := range options {
		fmt.Fprintf(b, "    <option value=\"%s\"{%% if %s == %s %%} selected{%% endif %%}>%s</option>\n",
			html.EscapeString(option), dataRef(key), pongoString(option), html.EscapeString(option))
	}
	b.WriteString("  </select>\n")
}

// writeChoiceGroup emits radios (single answer) or checkboxes (multiple).
// Branching choices and single choices share the radio layout; only the
// navigation treatment differs, and that lives in pkg/nav.
func (c *Compiler) writeChoiceGroup(b *strings.Builder, q form.Question, number int, labels []string, multiple bool) {
	key := form.Key(number)

	b.WriteString("<div class=\"govuk-form-group\"")
	writeAttrs(b, GroupAttributes(q, number))
	b.WriteString(">\n")

	b.WriteString("  <fieldset class=\"govuk-fieldset\"")
	if q.HintText != "" {
		fmt.Fprintf(b, " aria-describedby=\"%s\"", html.EscapeString(hintID(key)))
	}
	b.WriteString(">\n")
	fmt.Fprintf(b, "    <legend class=\"govuk-fieldset__legend govuk-fieldset__legend--l\"><h1 class=\"govuk-fieldset__heading\">%s</h1></legend>\n",
		html.EscapeString(q.QuestionText))
	c.writeHint(b, q, key)
	c.explanation(b, q)
	writeErrorSlot(b, key)

	itemClass, inputClass, inputType := "govuk-radios", "govuk-radios__input", "radio"
	if multiple {
		itemClass, inputClass, inputType = "govuk-checkboxes", "govuk-checkboxes__input", "checkbox"
	}

	fmt.Fprintf(b, "    <div class=\"%s\" data-module=\"%s\">\n", itemClass, itemClass)
	for i, label := range labels {
		itemID := key
		if i > 0 {
			itemID = fmt.Sprintf("%s-%d", key, i+1)
		}
		checked := fmt.Sprintf("{%% if %s == %s %%} checked{%% endif %%}", dataRef(key), pongoString(label))
		if multiple {
			checked = fmt.Sprintf("{%% if %s in %s %%} checked{%% endif %%}", pongoString(label), dataRef(key))
		}
		fmt.Fprintf(b, "      <div class=\"%s__item\">\n", itemClass)
		fmt.Fprintf(b, "        <input class=\"%s\" id=\"%s\" name=\"%s\" type=\"%s\" value=\"%s\"%s>\n",
			inputClass, html.EscapeString(itemID), html.EscapeString(key), inputType, html.EscapeString(label), checked)
		fmt.Fprintf(b, "        <label class=\"govuk-label %s__label\" for=\"%s\">%s</label>\n",
			itemClass, html.EscapeString(itemID), html.EscapeString(label))
		b.WriteString("      </div>\n")
	}
	b.WriteString("    </div>\n")
	b.WriteString("  </fieldset>\n")
	b.WriteString("</div>\n")
}

// writeDateQuestion emits the three-part day/month/year group shared by date
// and date_of_birth. Date-of-birth constraints ride along as group
// attributes; see GroupAttributes.
func (c *Compiler) writeDateQuestion(b *strings.Builder, q form.Question, number int) {
	key := form.Key(number)

	b.WriteString("<div class=\"govuk-form-group\"")
	writeAttrs(b, GroupAttributes(q, number))
	b.WriteString(">\n")

	b.WriteString("  <fieldset class=\"govuk-fieldset\" role=\"group\"")
	if q.HintText != "" {
		fmt.Fprintf(b, " aria-describedby=\"%s\"", html.EscapeString(hintID(key)))
	}
	b.WriteString(">\n")
	fmt.Fprintf(b, "    <legend class=\"govuk-fieldset__legend govuk-fieldset__legend--l\"><h1 class=\"govuk-fieldset__heading\">%s</h1></legend>\n",
		html.EscapeString(q.QuestionText))
	c.writeHint(b, q, key)
	c.explanation(b, q)
	writeErrorSlot(b, key)

	writeDateInputs(b, key)
	b.WriteString("  </fieldset>\n")
	b.WriteString("</div>\n")
}

func writeDateInputs(b *strings.Builder, keyPrefix string) {
	b.WriteString("    <div class=\"govuk-date-input\">\n")
	for _, part := range form.DateParts() {
		partKey := keyPrefix + "-" + part
		width := "govuk-input--width-2"
		if part == "year" {
			width = "govuk-input--width-4"
		}
		b.WriteString("      <div class=\"govuk-date-input__item\">\n")
		fmt.Fprintf(b, "        <label class=\"govuk-label govuk-date-input__label\" for=\"%s\">%s</label>\n",
			html.EscapeString(partKey), strings.ToUpper(part[:1])+part[1:])
		fmt.Fprintf(b, "        <input class=\"govuk-input govuk-date-input__input %s\" id=\"%s\" name=\"%s\" type=\"text\" inputmode=\"numeric\" value=\"%s\">\n",
			width, html.EscapeString(partKey), html.EscapeString(partKey), valueRef(partKey))
		b.WriteString("      </div>\n")
	}
	b.WriteString("    </div>\n")
}

// writeMultiFieldQuestion emits one control per subfield under a shared
// fieldset, each subfield carrying its own composed key and validation
// attributes.
func (c *Compiler) writeMultiFieldQuestion(b *strings.Builder, q form.Question, number int) {
	key := form.Key(number)

	b.WriteString("<fieldset class=\"govuk-fieldset\">\n")
	fmt.Fprintf(b, "  <legend class=\"govuk-fieldset__legend govuk-fieldset__legend--l\"><h1 class=\"govuk-fieldset__heading\">%s</h1></legend>\n",
		html.EscapeString(q.QuestionText))
	c.writeHint(b, q, key)
	c.explanation(b, q)

	for _, sub := range q.AnswerType.Subfields() {
		subKey := form.Subkey(number, sub.Name)

		b.WriteString("  <div class=\"govuk-form-group\"")
		writeAttrs(b, SubfieldAttributes(q, number, sub))
		b.WriteString(">\n")

		switch sub.Kind {
		case form.SubfieldCountry:
			fmt.Fprintf(b, "    <label class=\"govuk-label\" for=\"%s\">%s</label>\n",
				html.EscapeString(subKey), html.EscapeString(sub.Label))
			writeErrorSlot(b, subKey)
			writeSelect(b, subKey, c.countryOptions)
		case form.SubfieldNationality:
			fmt.Fprintf(b, "    <label class=\"govuk-label\" for=\"%s\">%s</label>\n",
				html.EscapeString(subKey), html.EscapeString(sub.Label))
			writeErrorSlot(b, subKey)
			writeSelect(b, subKey, c.nationalityOptions)
		case form.SubfieldDateGroup:
			b.WriteString("    <fieldset class=\"govuk-fieldset\" role=\"group\">\n")
			fmt.Fprintf(b, "      <legend class=\"govuk-fieldset__legend\">%s</legend>\n", html.EscapeString(sub.Label))
			writeErrorSlot(b, subKey)
			writeDateInputs(b, subKey)
			b.WriteString("    </fieldset>\n")
		default:
			fmt.Fprintf(b, "    <label class=\"govuk-label\" for=\"%s\">%s</label>\n",
				html.EscapeString(subKey), html.EscapeString(sub.Label))
			writeErrorSlot(b, subKey)
			fmt.Fprintf(b, "    <input class=\"govuk-input\" id=\"%s\" name=\"%s\" type=\"text\" value=\"%s\"%s>\n",
				html.EscapeString(subKey), html.EscapeString(subKey), valueRef(subKey), subfieldInputHints(sub.Name))
		}
		b.WriteString("  </div>\n")
	}
	b.WriteString("</fieldset>\n")
}

// subfieldInputHints returns autocomplete/inputmode attribute text for
// subfields that benefit from browser assistance.
func subfieldInputHints(name string) string {
	switch name {
	case "addressLine1":
		return " autocomplete=\"address-line1\""
	case "addressLine2":
		return " autocomplete=\"address-line2\""
	case "addressTown":
		return " autocomplete=\"address-level2\""
	case "addressPostcode":
		return " autocomplete=\"postal-code\""
	case "sortCode", "accountNumber":
		return " inputmode=\"numeric\""
	case "contactPhone":
		return " autocomplete=\"tel\" inputmode=\"tel\""
	case "contactEmail":
		return " autocomplete=\"email\" spellcheck=\"false\""
	case "passportNumber":
		return " spellcheck=\"false\""
	default:
		return ""
	}
}
