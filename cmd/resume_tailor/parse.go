package main

import (
	"fmt"
	"os"

	"github.com/jonathan/resume-tailor/internal/artifacts"
	"github.com/jonathan/resume-tailor/internal/observability"
	"github.com/jonathan/resume-tailor/internal/parsing"
	"github.com/spf13/cobra"
)

var parseCmd = &cobra.Command{
	Use:   "parse",
	Short: "Parse a resume document into a normalized JSON record",
	Long:  "Parse a resume document (PDF, DOCX, TXT, or HTML) into a normalized JSON record that validates against the resume schema.",
	RunE:  runParse,
}

var (
	parseInputFile  string
	parseOutputFile string
	parseVerbose    bool
)

func init() {
	parseCmd.Flags().StringVarP(&parseInputFile, "in", "i", "", "Path to the resume document (required)")
	parseCmd.Flags().StringVarP(&parseOutputFile, "out", "o", "", "Path to the output JSON record (required)")
	parseCmd.Flags().BoolVarP(&parseVerbose, "verbose", "v", false, "Print a summary of the parsed record")
	_ = parseCmd.MarkFlagRequired("in")
	_ = parseCmd.MarkFlagRequired("out")

	rootCmd.AddCommand(parseCmd)
}

func runParse(_ *cobra.Command, _ []string) error {
	return parseToFile(parseInputFile, parseOutputFile, parseVerbose)
}

func parseToFile(inputPath, outputPath string, verbose bool) error {
	resume, err := parsing.ParseFile(inputPath)
	if err != nil {
		return err
	}

	if err := artifacts.SaveResume(outputPath, resume); err != nil {
		return fmt.Errorf("failed to write parsed record: %w", err)
	}

	if verbose {
		observability.NewPrinter(os.Stdout).PrintResume("Parsed resume", resume)
	}
	_, _ = fmt.Fprintf(os.Stdout, "Parsed %s -> %s\n", inputPath, outputPath)

	return nil
}
