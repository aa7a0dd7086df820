// Package validate mirrors the browser validation runtime on the server. The
// preview uses it so that a submission with scripting disabled still gets
// the same first-failing-rule error per field as the embedded script
// produces.
package validate

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/goliatone/go-protoform/pkg/compiler"
	"github.com/goliatone/go-protoform/pkg/form"
)

// Issue is one failed rule, addressed by the live-data key it applies to.
type Issue struct {
	Key     string
	Message string
}

var formatRules = map[string]struct {
	ok      func(string) bool
	message string
}{
	compiler.FormatEmail: {
		ok:      isEmail,
		message: "Enter an email address in the correct format, like name@example.com",
	},
	compiler.FormatPhone: {
		ok:      isUKPhone,
		message: "Enter a UK phone number",
	},
	compiler.FormatNationalInsurance: {
		ok:      isNationalInsurance,
		message: "Enter a National Insurance number in the correct format",
	},
	compiler.FormatPostcode: {
		ok:      isPostcode,
		message: "Enter a full UK postcode",
	},
	compiler.FormatSortCode: {
		ok:      isSortCode,
		message: "Enter a valid sort code like 309430",
	},
	compiler.FormatAccountNumber: {
		ok:      isAccountNumber,
		message: "Enter a valid account number like 00733445",
	},
	compiler.FormatRollNumber: {
		ok:      isRollNumber,
		message: "Enter a valid building society roll number",
	},
	compiler.FormatPassportNumber: {
		ok:      isPassportNumber,
		message: "Enter a passport number in the correct format",
	},
	compiler.FormatTaxCode: {
		ok:      isTaxCode,
		message: "Enter a valid tax code",
	},
	compiler.FormatVATNumber: {
		ok:      isVATNumber,
		message: "Enter a valid VAT registration number",
	},
}

// Question runs the rule table against the submitted values for the question
// at the 1-based number. Values are keyed exactly like the live answer
// store. At most one issue per field is reported, matching the browser
// runtime's first-failure behavior.
func Question(q form.Question, number int, values map[string]string) []Issue {
	if q.AnswerType.IsMultiField() {
		return multiFieldIssues(q, number, values)
	}
	if q.AnswerType.IsDateGroup() {
		key := form.Key(number)
		if issue := dateIssue(q, key, values, q.AnswerType == form.AnswerTypeDateOfBirth); issue != nil {
			return []Issue{*issue}
		}
		return nil
	}

	key := form.Key(number)
	value := strings.TrimSpace(values[key])
	if value == "" {
		if q.Required {
			return []Issue{{Key: key, Message: compiler.RequiredMessage(q)}}
		}
		return nil
	}
	if issue := formatIssue(key, q.AnswerType, value); issue != nil {
		return []Issue{*issue}
	}
	return nil
}

func formatIssue(key string, t form.AnswerType, value string) *Issue {
	name := formatNameFor(t)
	if name == "" {
		return nil
	}
	rule, ok := formatRules[name]
	if !ok || rule.ok(value) {
		return nil
	}
	return &Issue{Key: key, Message: rule.message}
}

func formatNameFor(t form.AnswerType) string {
	switch t {
	case form.AnswerTypeEmail:
		return compiler.FormatEmail
	case form.AnswerTypePhoneNumber:
		return compiler.FormatPhone
	case form.AnswerTypeNationalInsurance:
		return compiler.FormatNationalInsurance
	case form.AnswerTypeTaxCode:
		return compiler.FormatTaxCode
	case form.AnswerTypeVATRegistration:
		return compiler.FormatVATNumber
	default:
		return ""
	}
}

func multiFieldIssues(q form.Question, number int, values map[string]string) []Issue {
	var issues []Issue
	for _, sub := range q.AnswerType.Subfields() {
		key := form.Subkey(number, sub.Name)
		if sub.Kind == form.SubfieldDateGroup {
			required := q.Required && !sub.Optional
			if issue := dateIssueFor(key, "Enter "+lowerFirst(sub.Label), required, values, false, 0, 0); issue != nil {
				issues = append(issues, *issue)
			}
			continue
		}

		value := strings.TrimSpace(values[key])
		if value == "" {
			if q.Required && !sub.Optional {
				issues = append(issues, Issue{Key: key, Message: "Enter " + lowerFirst(sub.Label)})
			}
			continue
		}
		if name := subfieldFormatName(sub.Name); name != "" {
			if rule, ok := formatRules[name]; ok && !rule.ok(value) {
				issues = append(issues, Issue{Key: key, Message: rule.message})
			}
		}
	}
	return issues
}

func subfieldFormatName(sub string) string {
	switch sub {
	case "addressPostcode":
		return compiler.FormatPostcode
	case "sortCode":
		return compiler.FormatSortCode
	case "accountNumber":
		return compiler.FormatAccountNumber
	case "rollNumber":
		return compiler.FormatRollNumber
	case "passportNumber":
		return compiler.FormatPassportNumber
	case "contactPhone":
		return compiler.FormatPhone
	case "contactEmail":
		return compiler.FormatEmail
	default:
		return ""
	}
}

func dateIssue(q form.Question, key string, values map[string]string, dob bool) *Issue {
	return dateIssueFor(key, compiler.RequiredMessage(q), q.Required, values, dob,
		q.DateOfBirthMinimumAge, q.DateOfBirthMaximumAge)
}

func dateIssueFor(key, requiredMessage string, required bool, values map[string]string, dob bool, minAge, maxAge int) *Issue {
	day := strings.TrimSpace(values[key+"-day"])
	month := strings.TrimSpace(values[key+"-month"])
	year := strings.TrimSpace(values[key+"-year"])

	if day == "" && month == "" && year == "" {
		if required {
			return &Issue{Key: key, Message: requiredMessage}
		}
		return nil
	}

	d, errD := strconv.Atoi(day)
	m, errM := strconv.Atoi(month)
	y, errY := strconv.Atoi(year)
	if errD != nil || errM != nil || errY != nil ||
		d < 1 || d > 31 || m < 1 || m > 12 || y < 1 || y > 9999 {
		return &Issue{Key: key, Message: "Enter a real date"}
	}

	if !dob {
		return nil
	}

	now := time.Now()
	entered := time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.Local)
	if !entered.Before(now) {
		return &Issue{Key: key, Message: "Date of birth must be in the past"}
	}

	age := ageInYears(entered, now)
	if minAge > 0 && age < minAge {
		return &Issue{Key: key, Message: compiler.MinimumAgeMessage(minAge)}
	}
	if maxAge > 0 && age > maxAge {
		return &Issue{Key: key, Message: compiler.MaximumAgeMessage(maxAge)}
	}
	return nil
}

// ageInYears computes whole years between the birth date and now. Someone
// exactly on the boundary year counts as that age, which makes the
// maximum-age check inclusive.
func ageInYears(birth, now time.Time) int {
	age := now.Year() - birth.Year()
	anniversary := time.Date(now.Year(), birth.Month(), birth.Day(), 0, 0, 0, 0, time.Local)
	if now.Before(anniversary) {
		age--
	}
	return age
}

func lowerFirst(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}

var (
	emailRe    = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	ninoRe     = regexp.MustCompile(`(?i)^[A-CEGHJ-TW-Z]{2}\d{6}[A-D]$`)
	postcodeRe = regexp.MustCompile(`(?i)^[A-Z]{1,2}\d[A-Z\d]?\s*\d[A-Z]{2}$`)
	phoneRe    = regexp.MustCompile(`^(0\d{9,10}|44\d{9,10}|\+44\d{9,10}|\+44\(0\)\d{9,10})$`)
	accountRe  = regexp.MustCompile(`^\d{6,8}$`)
	rollRe     = regexp.MustCompile(`^[A-Za-z0-9\-/. ]+$`)
	passportRe = regexp.MustCompile(`^[A-Z0-9]{6,9}$`)
	taxCodeRe  = regexp.MustCompile(`(?i)^([KS]?\d{1,4}[LMNT]?|BR|D0|D1|NT|0T)(W1|M1|X)?$`)
	vatRe      = regexp.MustCompile(`(?i)^(GB)?\d{9}$`)
	sortCodeRe = regexp.MustCompile(`^\d{6}$`)
	// Separators stripped before phone and sort-code matching. Parentheses
	// stay: the +44(0) phone prefix is matched literally.
	sepRe = regexp.MustCompile(`[\s\-]`)
)

func isEmail(v string) bool { return emailRe.MatchString(v) }

func isUKPhone(v string) bool {
	return phoneRe.MatchString(sepRe.ReplaceAllString(v, ""))
}

func isNationalInsurance(v string) bool {
	return ninoRe.MatchString(strings.ReplaceAll(v, " ", ""))
}

func isPostcode(v string) bool { return postcodeRe.MatchString(strings.TrimSpace(v)) }

func isSortCode(v string) bool {
	digits := sepRe.ReplaceAllString(v, "")
	return sortCodeRe.MatchString(digits) && digits != "000000"
}

func isAccountNumber(v string) bool {
	return accountRe.MatchString(strings.ReplaceAll(v, " ", ""))
}

func isRollNumber(v string) bool {
	return len(v) <= 18 && rollRe.MatchString(v)
}

func isPassportNumber(v string) bool {
	return passportRe.MatchString(strings.ReplaceAll(v, " ", ""))
}

func isTaxCode(v string) bool {
	return taxCodeRe.MatchString(strings.ReplaceAll(v, " ", ""))
}

func isVATNumber(v string) bool {
	return vatRe.MatchString(strings.ReplaceAll(v, " ", ""))
}

// Describe returns a short human label for an issue, used by the preview
// log.
func (i Issue) Describe() string {
	return fmt.Sprintf("%s: %s", i.Key, i.Message)
}
