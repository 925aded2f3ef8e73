package main

import (
	"fmt"
	"os"

	"github.com/jonathan/resume-tailor/internal/artifacts"
	"github.com/jonathan/resume-tailor/internal/observability"
	"github.com/jonathan/resume-tailor/internal/rendering"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Render a tailored record through a document template",
	Long:  "Render a tailored JSON record into a final document. DOCX templates use {{Field}} placeholder substitution; any other template is treated as a Go text template.",
	RunE:  runExport,
}

var (
	exportInputFile    string
	exportTemplateFile string
	exportOutputFile   string
	exportForce        bool
	exportVerbose      bool
)

func init() {
	exportCmd.Flags().StringVarP(&exportInputFile, "in", "i", "", "Path to the tailored JSON record (required)")
	exportCmd.Flags().StringVarP(&exportTemplateFile, "template", "t", "", "Path to the document template (required)")
	exportCmd.Flags().StringVarP(&exportOutputFile, "out", "o", "", "Path to the rendered output document (required)")
	exportCmd.Flags().BoolVarP(&exportForce, "force", "f", false, "Overwrite the output file if it exists")
	exportCmd.Flags().BoolVarP(&exportVerbose, "verbose", "v", false, "Print a summary of the exported record")
	_ = exportCmd.MarkFlagRequired("in")
	_ = exportCmd.MarkFlagRequired("template")
	_ = exportCmd.MarkFlagRequired("out")

	rootCmd.AddCommand(exportCmd)
}

func runExport(_ *cobra.Command, _ []string) error {
	return exportToFile(exportInputFile, exportTemplateFile, exportOutputFile, exportForce, exportVerbose)
}

func exportToFile(inputPath, templatePath, outputPath string, force, verbose bool) error {
	resume, err := artifacts.LoadResume(inputPath)
	if err != nil {
		return &rendering.ExportError{Message: "failed to load tailored record", Cause: err}
	}

	if err := rendering.Export(resume, templatePath, outputPath, force); err != nil {
		return err
	}

	if verbose {
		observability.NewPrinter(os.Stdout).PrintResume("Exported resume", resume)
	}
	_, _ = fmt.Fprintf(os.Stdout, "Exported %s -> %s\n", inputPath, outputPath)

	return nil
}
