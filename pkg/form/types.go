package form

import "fmt"

// AnswerType discriminates the Question union. A question is either a
// branching choice (its selected option decides the next page) or one of the
// non-branching answer kinds below.
type AnswerType string

const (
	AnswerTypeBranchingChoice AnswerType = "branching_choice"

	AnswerTypeText              AnswerType = "text"
	AnswerTypeTextArea          AnswerType = "text_area"
	AnswerTypeName              AnswerType = "name"
	AnswerTypeEmail             AnswerType = "email"
	AnswerTypePhoneNumber       AnswerType = "phone_number"
	AnswerTypeNationalInsurance AnswerType = "national_insurance_number"
	AnswerTypeTaxCode           AnswerType = "tax_code"
	AnswerTypeVATRegistration   AnswerType = "vat_registration_number"
	AnswerTypeGBPCurrencyAmount AnswerType = "gbp_currency_amount"
	AnswerTypeDate              AnswerType = "date"
	AnswerTypeDateOfBirth       AnswerType = "date_of_birth"
	AnswerTypeAddress           AnswerType = "address"
	AnswerTypeBankDetails       AnswerType = "bank_details"
	AnswerTypePassport          AnswerType = "passport_information"
	AnswerTypeEmergencyContact  AnswerType = "emergency_contact_details"
	AnswerTypeSingleChoice      AnswerType = "single_choice"
	AnswerTypeMultipleChoice    AnswerType = "multiple_choice"
	AnswerTypeCountry           AnswerType = "country"
	AnswerTypeNationality       AnswerType = "nationality"
	AnswerTypeFileUpload        AnswerType = "file_upload"
)

// Finish is the terminal next_question_value. It routes to the check-answers
// page.
const Finish = -1

// NextUnset marks a question that falls through to default sequential
// navigation. Valid explicit targets are Finish or a question number >= 2, so
// the zero value is free to carry "unset".
const NextUnset = 0

// BranchingOption is one selectable answer on a branching-choice question,
// paired with the 1-based question number (or Finish) it routes to.
type BranchingOption struct {
	TextValue         string `json:"text_value" yaml:"text_value"`
	NextQuestionValue int    `json:"next_question_value" yaml:"next_question_value"`
}

// Question is one page's worth of input. The AnswerType field selects the
// variant: branching_choice questions use OptionsBranching and have no
// NextQuestionValue of their own; every other type may set NextQuestionValue
// and, for the choice kinds, Options.
type Question struct {
	QuestionText        string     `json:"question_text" yaml:"question_text"`
	AnswerType          AnswerType `json:"answer_type" yaml:"answer_type"`
	Required            bool       `json:"required" yaml:"required"`
	RequiredErrorText   string     `json:"required_error_text,omitempty" yaml:"required_error_text,omitempty"`
	HintText            string     `json:"hint_text,omitempty" yaml:"hint_text,omitempty"`
	DetailedExplanation string     `json:"detailed_explanation,omitempty" yaml:"detailed_explanation,omitempty"`

	// Options lists the selectable values for single_choice and
	// multiple_choice questions.
	Options []string `json:"options,omitempty" yaml:"options,omitempty"`

	// OptionsBranching is only meaningful when AnswerType is branching_choice.
	OptionsBranching []BranchingOption `json:"options_branching,omitempty" yaml:"options_branching,omitempty"`

	// NextQuestionValue is Finish, a later question number, or NextUnset for
	// default sequential navigation. Ignored for branching_choice questions.
	NextQuestionValue int `json:"next_question_value,omitempty" yaml:"next_question_value,omitempty"`

	// Age bounds are only meaningful when AnswerType is date_of_birth; zero
	// means no bound. Normalize clears them on every other type.
	DateOfBirthMinimumAge int `json:"date_of_birth_minimum_age,omitempty" yaml:"date_of_birth_minimum_age,omitempty"`
	DateOfBirthMaximumAge int `json:"date_of_birth_maximum_age,omitempty" yaml:"date_of_birth_maximum_age,omitempty"`
}

// IsBranching reports whether the question routes through OptionsBranching.
func (q Question) IsBranching() bool {
	return q.AnswerType == AnswerTypeBranchingChoice
}

// HasExplicitNext reports whether NextQuestionValue was set by the author.
func (q Question) HasExplicitNext() bool {
	return !q.IsBranching() && q.NextQuestionValue != NextUnset
}

// FormDefinition is the declarative description of an entire form. Question
// order is semantically meaningful: it defines default sequential navigation
// and the 1-based question numbering used in live-data keys.
type FormDefinition struct {
	Title                  string     `json:"title" yaml:"title"`
	Description            string     `json:"description,omitempty" yaml:"description,omitempty"`
	Duration               int        `json:"duration,omitempty" yaml:"duration,omitempty"`
	BeforeYouStart         string     `json:"before_you_start,omitempty" yaml:"before_you_start,omitempty"`
	WhatHappensNext        string     `json:"what_happens_next,omitempty" yaml:"what_happens_next,omitempty"`
	FormType               string     `json:"form_type,omitempty" yaml:"form_type,omitempty"`
	ShowProgressIndicators bool       `json:"show_progress_indicators,omitempty" yaml:"show_progress_indicators,omitempty"`
	Questions              []Question `json:"questions" yaml:"questions"`
}

// HasBranching reports whether any question is a branching choice.
func (d FormDefinition) HasBranching() bool {
	for _, q := range d.Questions {
		if q.IsBranching() {
			return true
		}
	}
	return false
}

// ProgressIndicators reports the effective "Question X of N" setting: the
// author requested it and no branching question exists. With branching the
// path length varies per user, so a fixed total would mislead.
func (d FormDefinition) ProgressIndicators() bool {
	return d.ShowProgressIndicators && !d.HasBranching()
}

// Question returns the question at the 1-based number. An out-of-range number
// is a programming-contract violation by the caller, not user input, so it
// fails with a descriptive error instead of being recovered.
func (d FormDefinition) Question(number int) (Question, error) {
	if number < 1 || number > len(d.Questions) {
		return Question{}, fmt.Errorf("form: question number %d out of range 1..%d", number, len(d.Questions))
	}
	return d.Questions[number-1], nil
}

// Key composes the live answer store key for a question number, e.g.
// "question-3". Subkey composes the multi-field variant, e.g.
// "question-3-addressPostcode".
func Key(number int) string {
	return fmt.Sprintf("question-%d", number)
}

// Subkey composes the live answer store key for one subfield of a multi-field
// question.
func Subkey(number int, subfield string) string {
	return fmt.Sprintf("question-%d-%s", number, subfield)
}
