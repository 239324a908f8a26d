package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/akashsiripuram/document-intelligence-challenge/internal/extractor"
	"github.com/akashsiripuram/document-intelligence-challenge/internal/report"
)

var validateCorpusDir string

var validateCmd = &cobra.Command{
	Use:   "validate <input.json>",
	Short: "Pre-flight check a batch request without processing it",
	Long: "Validates the input artifact against its schema and checks that every " +
		"referenced document exists in the corpus directory and has a supported format.",
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().StringVarP(&validateCorpusDir, "corpus", "c", ".", "Directory document filenames are resolved against")
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	in, err := report.Load(args[0])
	if err != nil {
		return err
	}

	var problems []string
	for _, doc := range in.Documents {
		path := filepath.Join(validateCorpusDir, doc.Filename)
		if !extractor.IsSupportedExtension(doc.Filename) {
			problems = append(problems, fmt.Sprintf("%s: unsupported format", doc.Filename))
			continue
		}
		if _, err := os.Stat(path); err != nil {
			problems = append(problems, fmt.Sprintf("%s: not found in %s", doc.Filename, validateCorpusDir))
		}
	}

	if len(problems) > 0 {
		for _, p := range problems {
			fmt.Fprintln(os.Stderr, p)
		}
		return fmt.Errorf("%d of %d documents failed validation", len(problems), len(in.Documents))
	}

	fmt.Printf("input valid: %d documents, persona %q\n", len(in.Documents), in.Persona.Role)
	return nil
}
