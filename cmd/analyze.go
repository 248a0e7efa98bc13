package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/reqlens/srsbot/internal/analysis"
	"github.com/reqlens/srsbot/internal/config"
	"github.com/reqlens/srsbot/internal/report"
	"github.com/reqlens/srsbot/internal/vocabulary"
)

var (
	analyzeOutput string
	analyzePDF    bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [file]",
	Short: "Analyze an SRS document interactively in the terminal",
	Long: `Reads an SRS document from a file (or stdin when no file is given),
flags ambiguous wording, asks a clarifying question for each vague term,
and writes an improved requirements document.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		vocab := vocabulary.Default()
		if cfg.VocabularyFile != "" {
			vocab, err = vocabulary.Load(cfg.VocabularyFile)
			if err != nil {
				return fmt.Errorf("loading vocabulary: %w", err)
			}
		}

		text, err := readDocument(args)
		if err != nil {
			return err
		}
		if len(strings.TrimSpace(text)) < 20 {
			return fmt.Errorf("document too short to analyze (need at least 20 characters)")
		}

		analyzer := analysis.New(vocab)
		result := analyzer.AnalyzeDocument(text)
		if len(result.Requirements) == 0 {
			return fmt.Errorf("no requirement statements found in the document")
		}

		fmt.Printf("Found %d requirements (%d functional, %d non-functional) with %d ambiguities across %d distinct terms.\n\n",
			len(result.Requirements), result.FunctionalCount, result.NonFunctionalCount,
			result.TotalAmbiguities, len(result.DistinctTerms))

		terms := result.DistinctTerms
		if len(terms) > cfg.MaxClarifications {
			terms = terms[:cfg.MaxClarifications]
		}

		clarifications := map[string]string{}
		var clarified []string
		for _, term := range terms {
			fmt.Printf("Ambiguous term: %q\n%s\n", term, vocab.Question(term))
			prompt := promptui.Prompt{
				Label: "Replacement (leave empty to skip)",
			}
			answer, err := prompt.Run()
			if err != nil {
				return fmt.Errorf("clarification input: %w", err)
			}
			answer = strings.TrimSpace(answer)
			if answer == "" {
				continue
			}
			clarifications[term] = answer
			clarified = append(clarified, term)
			fmt.Println()
		}

		doc := report.Synthesize(result.Requirements, clarifications, clarified)

		out := analyzeOutput
		if out == "" {
			out = "improved_srs.md"
		}
		if err := os.WriteFile(out, []byte(report.RenderMarkdown(doc)), 0o644); err != nil {
			return fmt.Errorf("writing report: %w", err)
		}
		fmt.Printf("Improved document written to %s\n", out)

		if analyzePDF {
			pdfBytes, err := report.GeneratePDF(doc)
			if err != nil {
				return fmt.Errorf("generating PDF: %w", err)
			}
			pdfPath := strings.TrimSuffix(out, ".md") + ".pdf"
			if err := os.WriteFile(pdfPath, pdfBytes, 0o644); err != nil {
				return fmt.Errorf("writing PDF: %w", err)
			}
			fmt.Printf("PDF written to %s\n", pdfPath)
		}

		return nil
	},
}

// readDocument reads the SRS text from the file argument, or stdin when
// no argument is given.
func readDocument(args []string) (string, error) {
	if len(args) == 1 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", fmt.Errorf("reading %s: %w", args[0], err)
		}
		return string(data), nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return string(data), nil
}

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeOutput, "output", "o", "", "Output file for the improved document (default improved_srs.md)")
	analyzeCmd.Flags().BoolVar(&analyzePDF, "pdf", false, "Also write a PDF version of the report")
	rootCmd.AddCommand(analyzeCmd)
}
