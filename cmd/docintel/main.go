// Command docintel ranks sections of a document collection by relevance to a
// persona and its job-to-be-done, and distills an excerpt for each selected
// section. One invocation serves one batch request.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "docintel",
	Short: "Persona-driven document relevance extraction",
	Long: "docintel reads a batch request (documents + persona + job-to-be-done), " +
		"ranks document sections by relevance to the persona, and writes a JSON " +
		"report with the top sections and a refined excerpt for each.",
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stderr, nil))
}
