package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"

	"github.com/goliatone/go-protoform/pkg/form"
)

var scaffoldOut string

var answerTypeChoices = []string{
	string(form.AnswerTypeText),
	string(form.AnswerTypeTextArea),
	string(form.AnswerTypeName),
	string(form.AnswerTypeEmail),
	string(form.AnswerTypePhoneNumber),
	string(form.AnswerTypeNationalInsurance),
	string(form.AnswerTypeTaxCode),
	string(form.AnswerTypeVATRegistration),
	string(form.AnswerTypeGBPCurrencyAmount),
	string(form.AnswerTypeDate),
	string(form.AnswerTypeDateOfBirth),
	string(form.AnswerTypeAddress),
	string(form.AnswerTypeBankDetails),
	string(form.AnswerTypePassport),
	string(form.AnswerTypeEmergencyContact),
	string(form.AnswerTypeSingleChoice),
	string(form.AnswerTypeMultipleChoice),
	string(form.AnswerTypeCountry),
	string(form.AnswerTypeNationality),
	string(form.AnswerTypeFileUpload),
	string(form.AnswerTypeBranchingChoice),
}

var scaffoldCmd = &cobra.Command{
	Use:   "scaffold",
	Short: "Interactively build a definition file",
	RunE: func(cmd *cobra.Command, args []string) error {
		def := form.FormDefinition{}

		if err := survey.AskOne(&survey.Input{Message: "Form title:"}, &def.Title, survey.WithValidator(survey.Required)); err != nil {
			return err
		}
		if err := survey.AskOne(&survey.Input{Message: "Short description:"}, &def.Description); err != nil {
			return err
		}

		for {
			q, err := scaffoldQuestion(len(def.Questions) + 1)
			if err != nil {
				return err
			}
			def.Questions = append(def.Questions, q)

			more := false
			if err := survey.AskOne(&survey.Confirm{Message: "Add another question?", Default: true}, &more); err != nil {
				return err
			}
			if !more {
				break
			}
		}

		if err := def.ValidateTargets(); err != nil {
			return err
		}

		payload, err := json.MarshalIndent(def, "", "  ")
		if err != nil {
			return err
		}
		if err := os.WriteFile(scaffoldOut, append(payload, '\n'), 0o644); err != nil {
			return err
		}

		fmt.Println(headingStyle.Render("Definition written"))
		fmt.Printf("  %s\n", pathStyle.Render(scaffoldOut))
		return nil
	},
}

func scaffoldQuestion(number int) (form.Question, error) {
	q := form.Question{}

	if err := survey.AskOne(&survey.Input{Message: fmt.Sprintf("Question %d text:", number)}, &q.QuestionText, survey.WithValidator(survey.Required)); err != nil {
		return q, err
	}

	var answerType string
	if err := survey.AskOne(&survey.Select{
		Message:  "Answer type:",
		Options:  answerTypeChoices,
		PageSize: 12,
	}, &answerType); err != nil {
		return q, err
	}
	q.AnswerType = form.AnswerType(answerType)

	if err := survey.AskOne(&survey.Confirm{Message: "Required?", Default: true}, &q.Required); err != nil {
		return q, err
	}
	if err := survey.AskOne(&survey.Input{Message: "Hint text (optional):"}, &q.HintText); err != nil {
		return q, err
	}

	switch q.AnswerType {
	case form.AnswerTypeSingleChoice, form.AnswerTypeMultipleChoice:
		options, err := scaffoldOptions()
		if err != nil {
			return q, err
		}
		q.Options = options
	case form.AnswerTypeBranchingChoice:
		branching, err := scaffoldBranching()
		if err != nil {
			return q, err
		}
		q.OptionsBranching = branching
	}

	return q, nil
}

func scaffoldOptions() ([]string, error) {
	var options []string
	for {
		var option string
		if err := survey.AskOne(&survey.Input{Message: "Option (empty to stop):"}, &option); err != nil {
			return nil, err
		}
		if option == "" {
			return options, nil
		}
		options = append(options, option)
	}
}

func scaffoldBranching() ([]form.BranchingOption, error) {
	var options []form.BranchingOption
	for {
		var label string
		if err := survey.AskOne(&survey.Input{Message: "Branch label (empty to stop):"}, &label); err != nil {
			return nil, err
		}
		if label == "" {
			return options, nil
		}

		var target string
		if err := survey.AskOne(&survey.Input{
			Message: "Target question number (-1 to finish):",
		}, &target, survey.WithValidator(func(ans any) error {
			_, err := strconv.Atoi(fmt.Sprint(ans))
			return err
		})); err != nil {
			return nil, err
		}
		next, _ := strconv.Atoi(target)
		options = append(options, form.BranchingOption{TextValue: label, NextQuestionValue: next})
	}
}

func init() {
	scaffoldCmd.Flags().StringVarP(&scaffoldOut, "out", "o", "form.json", "Where to write the definition")
	rootCmd.AddCommand(scaffoldCmd)
}
