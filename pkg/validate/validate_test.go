package validate

import (
	"fmt"
	"testing"
	"time"

	"github.com/goliatone/go-protoform/pkg/form"
)

func TestQuestionRequiredPresence(t *testing.T) {
	q := form.Question{QuestionText: "Name?", AnswerType: form.AnswerTypeName, Required: true}

	issues := Question(q, 1, map[string]string{})
	if len(issues) != 1 || issues[0].Key != "question-1" {
		t.Fatalf("expected one issue on question-1, got %+v", issues)
	}
	if issues[0].Message != "Enter an answer" {
		t.Fatalf("unexpected message %q", issues[0].Message)
	}

	if issues := Question(q, 1, map[string]string{"question-1": "Ada"}); len(issues) != 0 {
		t.Fatalf("answered required field should pass, got %+v", issues)
	}
}

func TestQuestionOptionalEmptyPasses(t *testing.T) {
	q := form.Question{QuestionText: "Email?", AnswerType: form.AnswerTypeEmail}

	if issues := Question(q, 1, map[string]string{}); len(issues) != 0 {
		t.Fatalf("optional empty field should pass, got %+v", issues)
	}
}

func TestFormatMatchers(t *testing.T) {
	cases := []struct {
		name  string
		ok    func(string) bool
		valid []string
		bad   []string
	}{
		{
			name:  "email",
			ok:    isEmail,
			valid: []string{"name@example.com", "a.b@c.co.uk"},
			bad:   []string{"name", "name@", "@example.com", "a b@example.com"},
		},
		{
			name:  "phone",
			ok:    isUKPhone,
			valid: []string{"01632960000", "07700 900123", "+44 7700 900123", "447700900123", "+44(0)7700900123", "+44 (0) 7700 900123"},
			bad:   []string{"12345", "999", "+1 555 0100", "(0)7700900123"},
		},
		{
			name:  "national insurance",
			ok:    isNationalInsurance,
			valid: []string{"QQ123456C", "ab 12 34 56 c", "QT123456A"},
			bad:   []string{"DQ123456C", "QV123456C", "QQ12345C", "QQ123456E"},
		},
		{
			name:  "postcode",
			ok:    isPostcode,
			valid: []string{"SW1A 2AA", "m1 1ae", "B338TH"},
			bad:   []string{"12345", "SW1A 2AAA", "ABC 123"},
		},
		{
			name:  "sort code",
			ok:    isSortCode,
			valid: []string{"309430", "30-94-30", "30 94 30"},
			bad:   []string{"000000", "12345", "1234567", "(30)9430"},
		},
		{
			name:  "account number",
			ok:    isAccountNumber,
			valid: []string{"123456", "00733445"},
			bad:   []string{"12345", "123456789", "12a456"},
		},
		{
			name:  "roll number",
			ok:    isRollNumber,
			valid: []string{"123ABC-9", "A/B.C 123"},
			bad:   []string{"0123456789012345678", "roll#1"},
		},
		{
			name:  "passport number",
			ok:    isPassportNumber,
			valid: []string{"123456789", "AB1234567", "925076473"},
			bad:   []string{"12345", "1234567890", "ab123456"},
		},
		{
			name:  "tax code",
			ok:    isTaxCode,
			valid: []string{"1257L", "K475", "BR", "S1257L", "1257L X"},
			bad:   []string{"ABCDE", "12345L6"},
		},
		{
			name:  "vat number",
			ok:    isVATNumber,
			valid: []string{"123456789", "GB123456789"},
			bad:   []string{"12345678", "GB12345678A"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			for _, v := range tc.valid {
				if !tc.ok(v) {
					t.Errorf("expected %q to be valid", v)
				}
			}
			for _, v := range tc.bad {
				if tc.ok(v) {
					t.Errorf("expected %q to be rejected", v)
				}
			}
		})
	}
}

func TestQuestionFormatFailureMessage(t *testing.T) {
	q := form.Question{QuestionText: "Email?", AnswerType: form.AnswerTypeEmail}

	issues := Question(q, 1, map[string]string{"question-1": "not-an-email"})
	if len(issues) != 1 {
		t.Fatalf("expected one issue, got %+v", issues)
	}
	if issues[0].Message != "Enter an email address in the correct format, like name@example.com" {
		t.Fatalf("unexpected message %q", issues[0].Message)
	}
}

func TestDateGroupValidity(t *testing.T) {
	q := form.Question{QuestionText: "When?", AnswerType: form.AnswerTypeDate, Required: true}

	cases := []struct {
		name    string
		values  map[string]string
		message string
	}{
		{"empty required", map[string]string{}, "Enter a date"},
		{"day out of range", map[string]string{"question-1-day": "32", "question-1-month": "1", "question-1-year": "2020"}, "Enter a real date"},
		{"month out of range", map[string]string{"question-1-day": "1", "question-1-month": "13", "question-1-year": "2020"}, "Enter a real date"},
		{"non numeric", map[string]string{"question-1-day": "x", "question-1-month": "1", "question-1-year": "2020"}, "Enter a real date"},
		{"valid", map[string]string{"question-1-day": "29", "question-1-month": "2", "question-1-year": "2020"}, ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			issues := Question(q, 1, tc.values)
			if tc.message == "" {
				if len(issues) != 0 {
					t.Fatalf("expected pass, got %+v", issues)
				}
				return
			}
			if len(issues) != 1 || issues[0].Message != tc.message {
				t.Fatalf("expected %q, got %+v", tc.message, issues)
			}
		})
	}
}

func TestDateOfBirthConstraints(t *testing.T) {
	now := time.Now()
	dateValues := func(t time.Time) map[string]string {
		return map[string]string{
			"question-1-day":   fmt.Sprint(t.Day()),
			"question-1-month": fmt.Sprint(int(t.Month())),
			"question-1-year":  fmt.Sprint(t.Year()),
		}
	}

	q := form.Question{
		QuestionText:          "Date of birth?",
		AnswerType:            form.AnswerTypeDateOfBirth,
		DateOfBirthMinimumAge: 18,
		DateOfBirthMaximumAge: 65,
	}

	future := Question(q, 1, dateValues(now.AddDate(1, 0, 0)))
	if len(future) != 1 || future[0].Message != "Date of birth must be in the past" {
		t.Fatalf("expected past-date failure, got %+v", future)
	}

	tooYoung := Question(q, 1, dateValues(now.AddDate(-17, 0, 0)))
	if len(tooYoung) != 1 || tooYoung[0].Message != "You must be at least 18 years old" {
		t.Fatalf("expected minimum-age failure, got %+v", tooYoung)
	}

	tooOld := Question(q, 1, dateValues(now.AddDate(-66, 0, -1)))
	if len(tooOld) != 1 || tooOld[0].Message != "You must be no more than 65 years old" {
		t.Fatalf("expected maximum-age failure, got %+v", tooOld)
	}

	boundary := Question(q, 1, dateValues(now.AddDate(-65, 0, 0)))
	if len(boundary) != 0 {
		t.Fatalf("maximum age is inclusive of the boundary year, got %+v", boundary)
	}

	inWindow := Question(q, 1, dateValues(now.AddDate(-30, 0, 0)))
	if len(inWindow) != 0 {
		t.Fatalf("expected in-window date of birth to pass, got %+v", inWindow)
	}
}

func TestSingleYearMessageIsSingular(t *testing.T) {
	q := form.Question{
		QuestionText:          "Date of birth?",
		AnswerType:            form.AnswerTypeDateOfBirth,
		DateOfBirthMinimumAge: 1,
	}
	// Yesterday's date, so the age is zero years.
	yesterday := time.Now().AddDate(0, 0, -1)
	values := map[string]string{
		"question-1-day":   fmt.Sprint(yesterday.Day()),
		"question-1-month": fmt.Sprint(int(yesterday.Month())),
		"question-1-year":  fmt.Sprint(yesterday.Year()),
	}

	issues := Question(q, 1, values)
	if len(issues) != 1 || issues[0].Message != "You must be at least 1 year old" {
		t.Fatalf("expected singular year message, got %+v", issues)
	}
}

func TestMultiFieldRequiredAndOptionalSubfields(t *testing.T) {
	q := form.Question{QuestionText: "Address?", AnswerType: form.AnswerTypeAddress, Required: true}

	issues := Question(q, 2, map[string]string{
		"question-2-addressLine1": "10 Downing Street",
	})

	byKey := map[string]string{}
	for _, issue := range issues {
		byKey[issue.Key] = issue.Message
	}
	if _, ok := byKey["question-2-addressTown"]; !ok {
		t.Fatalf("expected missing town issue, got %+v", issues)
	}
	if _, ok := byKey["question-2-addressPostcode"]; !ok {
		t.Fatalf("expected missing postcode issue, got %+v", issues)
	}
	if _, ok := byKey["question-2-addressLine2"]; ok {
		t.Fatalf("optional line 2 should not be required, got %+v", issues)
	}
	if _, ok := byKey["question-2-addressCounty"]; ok {
		t.Fatalf("optional county should not be required, got %+v", issues)
	}
}

func TestMultiFieldFormatChecks(t *testing.T) {
	q := form.Question{QuestionText: "Bank details?", AnswerType: form.AnswerTypeBankDetails}

	issues := Question(q, 1, map[string]string{
		"question-1-sortCode":      "000000",
		"question-1-accountNumber": "12345",
	})
	if len(issues) != 2 {
		t.Fatalf("expected sort code and account number issues, got %+v", issues)
	}
}
