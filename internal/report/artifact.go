// Package report defines the input and output artifacts and assembles the
// final report from ranked sections and their refined excerpts.
package report

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/akashsiripuram/document-intelligence-challenge/internal/document"
)

// InputDocument names one document of the corpus.
type InputDocument struct {
	Filename string `json:"filename"`
	Title    string `json:"title,omitempty"`
}

// Input is the request artifact. challenge_info is opaque and passed through
// to the output metadata unchanged.
type Input struct {
	ChallengeInfo json.RawMessage `json:"challenge_info,omitempty"`
	Documents     []InputDocument `json:"documents"`
	Persona       struct {
		Role string `json:"role"`
	} `json:"persona"`
	JobToBeDone struct {
		Task string `json:"task"`
	} `json:"job_to_be_done"`
}

// Metadata echoes the request plus the processing timestamp.
type Metadata struct {
	InputDocuments      []string        `json:"input_documents"`
	Persona             string          `json:"persona"`
	JobToBeDone         string          `json:"job_to_be_done"`
	ProcessingTimestamp string          `json:"processing_timestamp"`
	ChallengeInfo       json.RawMessage `json:"challenge_info,omitempty"`
}

// ExtractedSection is one ranked section in the output, ordered by
// importance rank ascending.
type ExtractedSection struct {
	Document       string `json:"document"`
	SectionTitle   string `json:"section_title"`
	ImportanceRank int    `json:"importance_rank"`
	PageNumber     int    `json:"page_number"`
}

// Subsection is the refined excerpt aligned 1:1 with ExtractedSection.
type Subsection struct {
	Document    string `json:"document"`
	PageNumber  int    `json:"page_number"`
	RefinedText string `json:"refined_text"`
}

// Output is the response artifact.
type Output struct {
	Metadata           Metadata           `json:"metadata"`
	ExtractedSections  []ExtractedSection `json:"extracted_sections"`
	SubsectionAnalysis []Subsection       `json:"subsection_analysis"`
}

// Load reads, schema-validates and decodes an input artifact. Every failure
// here is fatal to the run.
func Load(path string) (Input, error) {
	var in Input

	data, err := os.ReadFile(path)
	if err != nil {
		return in, fmt.Errorf("read input artifact: %w", err)
	}

	if err := ValidateInput(data); err != nil {
		return in, fmt.Errorf("invalid input artifact %s: %w", path, err)
	}

	if err := json.Unmarshal(data, &in); err != nil {
		return in, fmt.Errorf("decode input artifact: %w", err)
	}
	return in, nil
}

// Assemble merges the request, ranked sections and refined excerpts into the
// output artifact. Both output sequences stay empty (not null) when nothing
// was selected.
func Assemble(in Input, ranked []document.RankedSection, refined []document.SubsectionAnalysis, now time.Time) Output {
	filenames := make([]string, 0, len(in.Documents))
	for _, d := range in.Documents {
		filenames = append(filenames, d.Filename)
	}

	sections := make([]ExtractedSection, 0, len(ranked))
	for _, rs := range ranked {
		sections = append(sections, ExtractedSection{
			Document:       rs.DocumentID,
			SectionTitle:   rs.Title,
			ImportanceRank: rs.ImportanceRank,
			PageNumber:     rs.Page,
		})
	}

	subsections := make([]Subsection, 0, len(refined))
	for _, sa := range refined {
		subsections = append(subsections, Subsection{
			Document:    sa.DocumentID,
			PageNumber:  sa.Page,
			RefinedText: sa.RefinedText,
		})
	}

	return Output{
		Metadata: Metadata{
			InputDocuments:      filenames,
			Persona:             in.Persona.Role,
			JobToBeDone:         in.JobToBeDone.Task,
			ProcessingTimestamp: now.Format(time.RFC3339),
			ChallengeInfo:       in.ChallengeInfo,
		},
		ExtractedSections:  sections,
		SubsectionAnalysis: subsections,
	}
}

// Write marshals the output artifact with indentation and writes it to path.
func Write(path string, out Output) error {
	data, err := json.MarshalIndent(out, "", "    ")
	if err != nil {
		return fmt.Errorf("encode output artifact: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write output artifact: %w", err)
	}
	return nil
}
