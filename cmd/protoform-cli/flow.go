package main

import (
	"fmt"

	"github.com/spf13/cobra"

	protoform "github.com/goliatone/go-protoform"
)

var flowList bool

var flowCmd = &cobra.Command{
	Use:   "flow <definition>",
	Short: "Print the form's structure as a Mermaid diagram",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		def, err := protoform.Load(args[0])
		if err != nil {
			return err
		}

		if flowList {
			for _, item := range protoform.FlowItems(def) {
				fmt.Printf("%2d. [%s] %s\n", item.Number, item.AnswerType, item.QuestionText)
				for _, branch := range item.Branching {
					fmt.Printf("      %s -> %s\n", branch.Label, branch.Next)
				}
				if item.ShowNextJump {
					fmt.Printf("      next -> %s\n", item.NextJumpTarget)
				}
			}
			return nil
		}

		fmt.Print(protoform.Flow(def))
		return nil
	},
}

func init() {
	flowCmd.Flags().BoolVarP(&flowList, "list", "l", false, "Print the question list instead of diagram source")
	rootCmd.AddCommand(flowCmd)
}
