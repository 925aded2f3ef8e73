package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/jonathan/resume-tailor/internal/artifacts"
	"github.com/jonathan/resume-tailor/internal/config"
	"github.com/jonathan/resume-tailor/internal/llm"
	"github.com/jonathan/resume-tailor/internal/observability"
	"github.com/jonathan/resume-tailor/internal/tailoring"
	"github.com/spf13/cobra"
)

var tailorCmd = &cobra.Command{
	Use:   "tailor",
	Short: "Rewrite a parsed resume record against a job description",
	Long:  "Rewrite a parsed resume record to emphasize relevance to a job description via the text-generation service. The service response is validated against the resume schema before it is accepted.",
	RunE:  runTailor,
}

var (
	tailorInputFile  string
	tailorJDFile     string
	tailorOutputFile string
	tailorAPIKey     string
	tailorModel      string
	tailorTimeout    int
	tailorVerbose    bool
)

// newTailorClient builds the LLM client; tests swap it for a fake.
var newTailorClient = func(ctx context.Context, cfg *llm.Config, apiKey string) (llm.Client, error) {
	return llm.NewGeminiClient(ctx, cfg, apiKey)
}

func init() {
	tailorCmd.Flags().StringVarP(&tailorInputFile, "in", "i", "", "Path to the parsed JSON record (required)")
	tailorCmd.Flags().StringVarP(&tailorJDFile, "jd", "j", "", "Path to the job description text file (required)")
	tailorCmd.Flags().StringVarP(&tailorOutputFile, "out", "o", "", "Path to the tailored JSON record (required)")
	tailorCmd.Flags().StringVar(&tailorAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
	tailorCmd.Flags().StringVar(&tailorModel, "model", "", "Override the tailoring model name")
	tailorCmd.Flags().IntVar(&tailorTimeout, "timeout", 120, "Timeout in seconds for the text-generation call")
	tailorCmd.Flags().BoolVarP(&tailorVerbose, "verbose", "v", false, "Print a summary of the tailoring changes")
	_ = tailorCmd.MarkFlagRequired("in")
	_ = tailorCmd.MarkFlagRequired("jd")
	_ = tailorCmd.MarkFlagRequired("out")

	rootCmd.AddCommand(tailorCmd)
}

func runTailor(_ *cobra.Command, _ []string) error {
	// Credential is resolved before anything touches the network
	apiKey, err := (&config.Config{}).ResolveAPIKey(tailorAPIKey)
	if err != nil {
		return err
	}

	ctx := context.Background()

	modelCfg := llm.DefaultConfig()
	if tailorModel != "" {
		modelCfg = modelCfg.WithModel(llm.TierStandard, tailorModel)
	}

	client, err := newTailorClient(ctx, modelCfg, apiKey)
	if err != nil {
		return fmt.Errorf("failed to create LLM client: %w", err)
	}
	defer func() { _ = client.Close() }()

	return tailorToFile(ctx, client, tailorInputFile, tailorJDFile, tailorOutputFile, time.Duration(tailorTimeout)*time.Second, tailorVerbose)
}

func tailorToFile(ctx context.Context, client llm.Client, inputPath, jdPath, outputPath string, timeout time.Duration, verbose bool) error {
	resume, err := artifacts.LoadResume(inputPath)
	if err != nil {
		return &tailoring.TailorError{Message: "failed to load parsed record", Cause: err}
	}

	jdBytes, err := os.ReadFile(jdPath)
	if err != nil {
		return &tailoring.TailorError{Message: "failed to read job description", Cause: err}
	}

	callCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	tailored, err := tailoring.TailorResume(callCtx, client, resume, string(jdBytes))
	if err != nil {
		return err
	}

	if err := artifacts.SaveResume(outputPath, tailored); err != nil {
		return fmt.Errorf("failed to write tailored record: %w", err)
	}

	if verbose {
		observability.NewPrinter(os.Stdout).PrintTailorDiff(resume, tailored)
	}
	_, _ = fmt.Fprintf(os.Stdout, "Tailored %s -> %s\n", inputPath, outputPath)

	return nil
}
