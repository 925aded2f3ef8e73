package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/resume-tailor/internal/config"
	"github.com/jonathan/resume-tailor/internal/llm"
	"github.com/spf13/cobra"
)

var runCommand = &cobra.Command{
	Use:   "run",
	Short: "Run the full pipeline end-to-end: parse -> tailor -> export",
	Long: `Runs all three stages in sequence, writing parsed.json, tailored.json, and the rendered document into a per-run artifact directory.

Configuration can be loaded from a JSON file using --config. Command-line arguments override config file values.`,
	RunE: runPipelineCmd,
}

var (
	runConfigPath string
	runResume     string
	runJD         string
	runTemplate   string
	runOutDir     string
	runAPIKey     string
	runModel      string
	runTimeout    int
	runForce      bool
	runVerbose    bool
)

func init() {
	runCommand.Flags().StringVar(&runConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	runCommand.Flags().StringVarP(&runResume, "resume", "r", "", "Path to the resume document")
	runCommand.Flags().StringVarP(&runJD, "jd", "j", "", "Path to the job description text file")
	runCommand.Flags().StringVarP(&runTemplate, "template", "t", "", "Path to the document template")
	runCommand.Flags().StringVar(&runOutDir, "out-dir", "out", "Directory for run artifacts")
	runCommand.Flags().StringVar(&runAPIKey, "api-key", "", "Gemini API key (optional, defaults to GEMINI_API_KEY env var)")
	runCommand.Flags().StringVar(&runModel, "model", "", "Override the tailoring model name")
	runCommand.Flags().IntVar(&runTimeout, "timeout", 120, "Timeout in seconds for the text-generation call")
	runCommand.Flags().BoolVarP(&runForce, "force", "f", false, "Overwrite existing output files")
	runCommand.Flags().BoolVarP(&runVerbose, "verbose", "v", false, "Print detailed progress information")

	rootCmd.AddCommand(runCommand)
}

func runPipelineCmd(cmd *cobra.Command, _ []string) error {
	// Load config file if provided
	var cfg config.Config
	if runConfigPath != "" {
		loadedCfg, err := config.LoadConfig(runConfigPath)
		if err != nil {
			return err
		}
		if err := loadedCfg.Validate(); err != nil {
			return err
		}
		cfg = *loadedCfg
		if runVerbose {
			_, _ = fmt.Fprintf(os.Stdout, "Loaded config from: %s\n", runConfigPath)
		}
	}

	// Apply CLI overrides; only explicitly set flags win over the config file
	if cmd.Flags().Changed("resume") {
		cfg.Resume = runResume
	}
	if cmd.Flags().Changed("jd") {
		cfg.JD = runJD
	}
	if cmd.Flags().Changed("template") {
		cfg.Template = runTemplate
	}
	if cmd.Flags().Changed("out-dir") || cfg.OutDir == "" {
		cfg.OutDir = runOutDir
	}
	if cmd.Flags().Changed("api-key") {
		cfg.APIKey = runAPIKey
	}
	if cmd.Flags().Changed("model") {
		cfg.Model = runModel
	}
	if cmd.Flags().Changed("timeout") || cfg.TimeoutSeconds == 0 {
		cfg.TimeoutSeconds = runTimeout
	}
	if cmd.Flags().Changed("force") {
		cfg.Force = runForce
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = runVerbose
	}

	if cfg.Resume == "" || cfg.JD == "" || cfg.Template == "" {
		return fmt.Errorf("--resume, --jd, and --template are required (via flags or --config)")
	}

	apiKey, err := cfg.ResolveAPIKey("")
	if err != nil {
		return err
	}

	ctx := context.Background()

	modelCfg := llm.DefaultConfig()
	if cfg.Model != "" {
		modelCfg = modelCfg.WithModel(llm.TierStandard, cfg.Model)
	}

	client, err := newTailorClient(ctx, modelCfg, apiKey)
	if err != nil {
		return fmt.Errorf("failed to create LLM client: %w", err)
	}
	defer func() { _ = client.Close() }()

	return runPipeline(ctx, client, &cfg)
}

// runPipeline chains parse -> tailor -> export inside a per-run artifact
// directory. The first failing stage aborts the run.
func runPipeline(ctx context.Context, client llm.Client, cfg *config.Config) error {
	runID := uuid.New()
	runDir := filepath.Join(cfg.OutDir, runID.String())
	if err := os.MkdirAll(runDir, 0755); err != nil {
		return fmt.Errorf("failed to create run directory %s: %w", runDir, err)
	}

	parsedPath := filepath.Join(runDir, "parsed.json")
	tailoredPath := filepath.Join(runDir, "tailored.json")
	renderedPath := filepath.Join(runDir, "resume"+outputExtension(cfg.Template))

	_, _ = fmt.Fprintf(os.Stdout, "Run %s\n", runID)

	if err := parseToFile(cfg.Resume, parsedPath, cfg.Verbose); err != nil {
		return err
	}

	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if err := tailorToFile(ctx, client, parsedPath, cfg.JD, tailoredPath, timeout, cfg.Verbose); err != nil {
		return err
	}

	if err := exportToFile(tailoredPath, cfg.Template, renderedPath, cfg.Force, cfg.Verbose); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(os.Stdout, "Done: %s\n", renderedPath)
	return nil
}

// outputExtension picks the rendered document's extension from the template's.
func outputExtension(templatePath string) string {
	switch ext := strings.ToLower(filepath.Ext(templatePath)); ext {
	case ".docx", ".tex", ".md", ".html":
		return ext
	default:
		return ".txt"
	}
}
