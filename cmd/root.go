package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "srsbot",
	Short: "SRS clarity assistant for ambiguity detection and clarification",
	Long: `srsbot reads Software Requirements Specification text, flags vague
wording, classifies each requirement as functional or non-functional,
and walks you through clarifying every ambiguous term one question at
a time. The result is an improved requirements document available as
markdown, HTML, or PDF.`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", ".srsbot.yml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

func exitOnError(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
