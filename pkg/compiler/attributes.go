package compiler

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-protoform/pkg/form"
)

// Validation attribute names form the contract between emitted fragments,
// the browser validation runtime, and the server-side mirror in pkg/validate.
const (
	AttrKey           = "data-validate-key"
	AttrControl       = "data-validate-control"
	AttrRequired      = "data-validate-required"
	AttrFormat        = "data-validate-format"
	AttrDate          = "data-validate-date"
	AttrPast          = "data-validate-past"
	AttrMinAge        = "data-validate-min-age"
	AttrMinAgeMessage = "data-validate-min-age-message"
	AttrMaxAge        = "data-validate-max-age"
	AttrMaxAgeMessage = "data-validate-max-age-message"
)

// Control kinds carried by AttrControl. The browser runtime picks its
// presence check from this value.
const (
	ControlInput      = "input"
	ControlTextarea   = "textarea"
	ControlSelect     = "select"
	ControlRadios     = "radios"
	ControlCheckboxes = "checkboxes"
	ControlFile       = "file"
	ControlDate       = "date"
)

// Format rule names carried by AttrFormat. pkg/validate and the browser
// runtime implement one matcher per name.
const (
	FormatEmail             = "email"
	FormatPhone             = "phone"
	FormatNationalInsurance = "nino"
	FormatPostcode          = "postcode"
	FormatSortCode          = "sort-code"
	FormatAccountNumber     = "account-number"
	FormatRollNumber        = "roll-number"
	FormatPassportNumber    = "passport-number"
	FormatTaxCode           = "tax-code"
	FormatVATNumber         = "vat-number"
)

// Attribute is one name/value pair attached to a form group.
type Attribute struct {
	Name  string
	Value string
}

// RequiredMessage returns the error text shown when a required answer is
// missing: the author's custom text when present, otherwise a default suited
// to the control kind.
func RequiredMessage(q form.Question) string {
	if custom := strings.TrimSpace(q.RequiredErrorText); custom != "" {
		return custom
	}
	switch q.AnswerType {
	case form.AnswerTypeBranchingChoice, form.AnswerTypeSingleChoice,
		form.AnswerTypeMultipleChoice, form.AnswerTypeCountry, form.AnswerTypeNationality:
		return "Select an option"
	case form.AnswerTypeFileUpload:
		return "Select a file to upload"
	case form.AnswerTypeDate, form.AnswerTypeDateOfBirth:
		return "Enter a date"
	default:
		return "Enter an answer"
	}
}

// MinimumAgeMessage builds the human-readable minimum-age error, pluralizing
// "year" correctly for 1.
func MinimumAgeMessage(years int) string {
	return fmt.Sprintf("You must be at least %d %s old", years, yearWord(years))
}

// MaximumAgeMessage builds the maximum-age error. The check itself is
// inclusive of the boundary year.
func MaximumAgeMessage(years int) string {
	return fmt.Sprintf("You must be no more than %d %s old", years, yearWord(years))
}

func yearWord(years int) string {
	if years == 1 {
		return "year"
	}
	return "years"
}

// formatFor maps scalar answer types to their format rule, or "" when the
// type carries no format constraint.
func formatFor(t form.AnswerType) string {
	switch t {
	case form.AnswerTypeEmail:
		return FormatEmail
	case form.AnswerTypePhoneNumber:
		return FormatPhone
	case form.AnswerTypeNationalInsurance:
		return FormatNationalInsurance
	case form.AnswerTypeTaxCode:
		return FormatTaxCode
	case form.AnswerTypeVATRegistration:
		return FormatVATNumber
	default:
		return ""
	}
}

// subfieldFormat maps multi-field subfield names to their format rule.
func subfieldFormat(sub string) string {
	switch sub {
	case "addressPostcode":
		return FormatPostcode
	case "sortCode":
		return FormatSortCode
	case "accountNumber":
		return FormatAccountNumber
	case "rollNumber":
		return FormatRollNumber
	case "passportNumber":
		return FormatPassportNumber
	case "contactPhone":
		return FormatPhone
	case "contactEmail":
		return FormatEmail
	default:
		return ""
	}
}

// GroupAttributes returns the validation attributes attached to the form
// group for a single-control question. Multi-field questions attach
// per-subfield attributes instead; see SubfieldAttributes.
func GroupAttributes(q form.Question, number int) []Attribute {
	attrs := []Attribute{
		{Name: AttrKey, Value: form.Key(number)},
		{Name: AttrControl, Value: controlFor(q.AnswerType)},
	}
	if q.Required {
		attrs = append(attrs, Attribute{Name: AttrRequired, Value: RequiredMessage(q)})
	}
	if f := formatFor(q.AnswerType); f != "" {
		attrs = append(attrs, Attribute{Name: AttrFormat, Value: f})
	}
	if q.AnswerType.IsDateGroup() {
		attrs = append(attrs, Attribute{Name: AttrDate, Value: "true"})
	}
	if q.AnswerType == form.AnswerTypeDateOfBirth {
		attrs = append(attrs, Attribute{Name: AttrPast, Value: "Date of birth must be in the past"})
		if q.DateOfBirthMinimumAge > 0 {
			attrs = append(attrs,
				Attribute{Name: AttrMinAge, Value: fmt.Sprintf("%d", q.DateOfBirthMinimumAge)},
				Attribute{Name: AttrMinAgeMessage, Value: MinimumAgeMessage(q.DateOfBirthMinimumAge)},
			)
		}
		if q.DateOfBirthMaximumAge > 0 {
			attrs = append(attrs,
				Attribute{Name: AttrMaxAge, Value: fmt.Sprintf("%d", q.DateOfBirthMaximumAge)},
				Attribute{Name: AttrMaxAgeMessage, Value: MaximumAgeMessage(q.DateOfBirthMaximumAge)},
			)
		}
	}
	return attrs
}

// SubfieldAttributes returns the validation attributes for one subfield of a
// multi-field question. Optional subfields never carry a required message.
func SubfieldAttributes(q form.Question, number int, sub form.Subfield) []Attribute {
	attrs := []Attribute{
		{Name: AttrKey, Value: form.Subkey(number, sub.Name)},
	}
	switch sub.Kind {
	case form.SubfieldCountry, form.SubfieldNationality:
		attrs = append(attrs, Attribute{Name: AttrControl, Value: ControlSelect})
	case form.SubfieldDateGroup:
		attrs = append(attrs,
			Attribute{Name: AttrControl, Value: ControlDate},
			Attribute{Name: AttrDate, Value: "true"},
		)
	default:
		attrs = append(attrs, Attribute{Name: AttrControl, Value: ControlInput})
	}
	if q.Required && !sub.Optional {
		attrs = append(attrs, Attribute{Name: AttrRequired, Value: subfieldRequiredMessage(sub)})
	}
	if f := subfieldFormat(sub.Name); f != "" {
		attrs = append(attrs, Attribute{Name: AttrFormat, Value: f})
	}
	return attrs
}

func subfieldRequiredMessage(sub form.Subfield) string {
	switch sub.Kind {
	case form.SubfieldCountry, form.SubfieldNationality:
		return "Select " + lowerFirst(sub.Label)
	case form.SubfieldDateGroup:
		return "Enter " + lowerFirst(sub.Label)
	default:
		return "Enter " + lowerFirst(sub.Label)
	}
}

func controlFor(t form.AnswerType) string {
	switch t {
	case form.AnswerTypeTextArea:
		return ControlTextarea
	case form.AnswerTypeSingleChoice, form.AnswerTypeBranchingChoice:
		return ControlRadios
	case form.AnswerTypeMultipleChoice:
		return ControlCheckboxes
	case form.AnswerTypeCountry, form.AnswerTypeNationality:
		return ControlSelect
	case form.AnswerTypeFileUpload:
		return ControlFile
	case form.AnswerTypeDate, form.AnswerTypeDateOfBirth:
		return ControlDate
	default:
		return ControlInput
	}
}

func lowerFirst(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
