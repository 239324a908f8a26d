package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/akashsiripuram/document-intelligence-challenge/internal/config"
	"github.com/akashsiripuram/document-intelligence-challenge/internal/pipeline"
	"github.com/akashsiripuram/document-intelligence-challenge/internal/report"
)

var runCorpusDir string

var runCmd = &cobra.Command{
	Use:   "run <input.json> <output.json>",
	Short: "Process a batch request and write the report",
	Args:  cobra.ExactArgs(2),
	RunE:  runRun,
}

func init() {
	runCmd.Flags().StringVarP(&runCorpusDir, "corpus", "c", ".", "Directory document filenames are resolved against")
	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	inputPath, outputPath := args[0], args[1]
	log := newLogger()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	in, err := report.Load(inputPath)
	if err != nil {
		return err
	}

	runner, err := pipeline.NewRunner(cfg, log)
	if err != nil {
		return err
	}

	out, err := runner.Run(cmd.Context(), in, runCorpusDir)
	if err != nil {
		return err
	}

	if err := report.Write(outputPath, out); err != nil {
		return err
	}

	log.Info("report written",
		"output", outputPath,
		"documents", len(out.Metadata.InputDocuments),
		"extracted_sections", len(out.ExtractedSections),
		"subsections", len(out.SubsectionAnalysis))
	return nil
}
