package form

// SubfieldKind selects the control a subfield compiles to.
type SubfieldKind string

const (
	SubfieldText        SubfieldKind = "text"
	SubfieldCountry     SubfieldKind = "country"
	SubfieldNationality SubfieldKind = "nationality"
	SubfieldDateGroup   SubfieldKind = "date"
)

// Subfield describes one input inside a multi-field answer type. Name is the
// key suffix composed by Subkey; Label is the visible GOV.UK-style label.
type Subfield struct {
	Name     string
	Label    string
	Kind     SubfieldKind
	Optional bool
}

// Multi-field layouts. Order matters: it drives both the rendered control
// order and the newline joining on the check-answers page.
var (
	addressSubfields = []Subfield{
		{Name: "addressLine1", Label: "Address line 1", Kind: SubfieldText},
		{Name: "addressLine2", Label: "Address line 2 (optional)", Kind: SubfieldText, Optional: true},
		{Name: "addressTown", Label: "Town or city", Kind: SubfieldText},
		{Name: "addressCounty", Label: "County (optional)", Kind: SubfieldText, Optional: true},
		{Name: "addressPostcode", Label: "Postcode", Kind: SubfieldText},
	}

	bankDetailsSubfields = []Subfield{
		{Name: "nameOnAccount", Label: "Name on the account", Kind: SubfieldText},
		{Name: "sortCode", Label: "Sort code", Kind: SubfieldText},
		{Name: "accountNumber", Label: "Account number", Kind: SubfieldText},
		{Name: "rollNumber", Label: "Building society roll number (if you have one)", Kind: SubfieldText, Optional: true},
	}

	emergencyContactSubfields = []Subfield{
		{Name: "contactName", Label: "Full name", Kind: SubfieldText},
		{Name: "contactRelationship", Label: "Relationship to you", Kind: SubfieldText},
		{Name: "contactPhone", Label: "Phone number", Kind: SubfieldText},
		{Name: "contactEmail", Label: "Email address", Kind: SubfieldText},
	}

	passportSubfields = []Subfield{
		{Name: "passportNumber", Label: "Passport number", Kind: SubfieldText},
		{Name: "issuingCountry", Label: "Country of issue", Kind: SubfieldCountry},
		{Name: "nationality", Label: "Nationality", Kind: SubfieldNationality},
		{Name: "dateOfIssue", Label: "Date of issue", Kind: SubfieldDateGroup},
		{Name: "dateOfExpiry", Label: "Date of expiry", Kind: SubfieldDateGroup},
		{Name: "placeOfBirth", Label: "Country of birth", Kind: SubfieldCountry},
	}
)

// Subfields returns the multi-field layout for the answer type, or nil for
// single-control types. Date and date-of-birth questions are not multi-field
// in this sense: their day/month/year parts share one group under the base
// key and are handled by the date-group emitters directly.
func (t AnswerType) Subfields() []Subfield {
	switch t {
	case AnswerTypeAddress:
		return addressSubfields
	case AnswerTypeBankDetails:
		return bankDetailsSubfields
	case AnswerTypeEmergencyContact:
		return emergencyContactSubfields
	case AnswerTypePassport:
		return passportSubfields
	default:
		return nil
	}
}

// IsMultiField reports whether the answer type stores its value across
// several composed keys.
func (t AnswerType) IsMultiField() bool {
	return len(t.Subfields()) > 0
}

// IsDateGroup reports whether the answer type stores day/month/year parts
// under the base key.
func (t AnswerType) IsDateGroup() bool {
	return t == AnswerTypeDate || t == AnswerTypeDateOfBirth
}

// DateParts lists the key suffixes of a date group, in display order.
func DateParts() []string {
	return []string{"day", "month", "year"}
}
