package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	protoform "github.com/goliatone/go-protoform"
)

var rootCmd = &cobra.Command{
	Use:   "protoform-cli",
	Short: "Compile form definitions into working GOV.UK-style prototypes",
	Long: `protoform-cli turns a declarative form definition (JSON or YAML) into a
multi-page prototype: one page per question plus start, check-answers and
confirmation pages, with client-side validation wired in.`,
}

var (
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	pathStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	errorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
)

func init() {
	rootCmd.Version = protoform.FrontendVersion()
	rootCmd.SetVersionTemplate(fmt.Sprintf("protoform-cli (frontend %s)\n", protoform.FrontendVersion()))
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render(err.Error()))
		os.Exit(1)
	}
}
