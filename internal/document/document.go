// Package document holds the immutable domain types shared across the
// extraction and relevance pipeline. Documents, pages and sections are built
// once per run and never mutated; scored and ranked views are derived copies.
package document

// Document is one input file, identified by its filename, with its pages in
// reading order.
type Document struct {
	Filename string
	Title    string
	Pages    []Page
}

// Page is one extracted page of a document. Numbers are 1-based.
type Page struct {
	Number int
	Text   string
}

// Section is a contiguous titled block of text within a single page. Sections
// never span pages — a page boundary always ends a section.
type Section struct {
	DocumentID string
	Page       int
	Title      string
	Body       string
}

// PersonaProfile is the weighted keyword view of a persona role and its
// job-to-be-done task. Built once per run, immutable thereafter.
type PersonaProfile struct {
	Role string
	Task string

	// RoleKeywords come from the role table (or the role string itself for
	// unknown roles). Primary carries task-intent cluster terms, Secondary
	// situational cluster terms. Combined is the case-normalized,
	// deduplicated union of all three.
	RoleKeywords []string
	Primary      []string
	Secondary    []string
	Combined     []string
}

// ScoredSection is a Section plus its relevance score and the component
// sub-scores that produced it.
type ScoredSection struct {
	Section

	Score          float64
	KeywordScore   float64
	PrimaryScore   float64
	SecondaryScore float64
	QualityScore   float64
}

// RankedSection is a ScoredSection with its assigned importance rank
// (1 = most relevant, dense, no gaps).
type RankedSection struct {
	ScoredSection

	ImportanceRank int
}

// SubsectionAnalysis is the distilled sentence-level excerpt for one ranked
// section.
type SubsectionAnalysis struct {
	DocumentID  string
	Page        int
	RefinedText string
}
