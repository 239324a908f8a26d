package config

import (
	"fmt"
	"os"
	"strconv"
)

// Weights are the relative contributions of the four relevance sub-scores.
// Each sub-score is normalized to [0,1] before weighting.
type Weights struct {
	Keyword   float64 // Combined keyword overlap.
	Primary   float64 // Primary-focus alignment.
	Secondary float64 // Secondary-focus relevance.
	Quality   float64 // Content-quality (length saturation).
}

// Refine controls sentence-level distillation of selected sections.
type Refine struct {
	MaxSentences int // Sentences kept per section.
	MinChars     int // Floor below which the leading-sentence fallback kicks in.
	LeadFallback int // Leading sentences used by the fallback.
}

type Config struct {
	// Relevance scoring
	Weights           Weights
	TopK              int
	QualitySaturation int // Word count at which the quality sub-score reaches 1.0.
	MinSectionWords   int // Sections shorter than this are quality-penalized.
	MaxHeaderLen      int // Lines longer than this are never headers.
	SynthTitleWidth   int // Max width of titles synthesized for headerless pages.

	Refine Refine

	// Extraction
	WorkerCount          int
	PDFFallbackPdftotext bool

	// Optional JSON file overriding the built-in role keyword table.
	RoleTablePath string
}

func Load() Config {
	cfg := Config{
		Weights: Weights{
			Keyword:   envFloat("DOCINTEL_WEIGHT_KEYWORD", 0.40),
			Primary:   envFloat("DOCINTEL_WEIGHT_PRIMARY", 0.30),
			Secondary: envFloat("DOCINTEL_WEIGHT_SECONDARY", 0.20),
			Quality:   envFloat("DOCINTEL_WEIGHT_QUALITY", 0.10),
		},
		TopK:              envInt("DOCINTEL_TOP_K", 5),
		QualitySaturation: envInt("DOCINTEL_QUALITY_SATURATION", 50),
		MinSectionWords:   envInt("DOCINTEL_MIN_SECTION_WORDS", 10),
		MaxHeaderLen:      envInt("DOCINTEL_MAX_HEADER_LEN", 100),
		SynthTitleWidth:   envInt("DOCINTEL_SYNTH_TITLE_WIDTH", 60),

		Refine: Refine{
			MaxSentences: envInt("DOCINTEL_REFINE_SENTENCES", 5),
			MinChars:     envInt("DOCINTEL_REFINE_MIN_CHARS", 100),
			LeadFallback: envInt("DOCINTEL_REFINE_LEAD_FALLBACK", 3),
		},

		WorkerCount:          envInt("DOCINTEL_WORKER_COUNT", 4),
		PDFFallbackPdftotext: envBool("DOCINTEL_PDF_FALLBACK_PDFTOTEXT", true),

		RoleTablePath: os.Getenv("DOCINTEL_ROLE_TABLE"),
	}

	if cfg.TopK <= 0 {
		cfg.TopK = 5
	}
	if cfg.QualitySaturation <= 0 {
		cfg.QualitySaturation = 50
	}
	if cfg.MinSectionWords < 0 {
		cfg.MinSectionWords = 10
	}
	if cfg.MaxHeaderLen <= 0 {
		cfg.MaxHeaderLen = 100
	}
	if cfg.SynthTitleWidth <= 0 {
		cfg.SynthTitleWidth = 60
	}
	if cfg.Refine.MaxSentences <= 0 {
		cfg.Refine.MaxSentences = 5
	}
	if cfg.Refine.MinChars < 0 {
		cfg.Refine.MinChars = 100
	}
	if cfg.Refine.LeadFallback <= 0 {
		cfg.Refine.LeadFallback = 3
	}
	if cfg.WorkerCount <= 0 {
		cfg.WorkerCount = 4
	}

	return cfg
}

func (c Config) Validate() error {
	w := c.Weights
	if w.Keyword < 0 || w.Primary < 0 || w.Secondary < 0 || w.Quality < 0 {
		return fmt.Errorf("scoring weights must be non-negative")
	}
	if w.Keyword+w.Primary+w.Secondary+w.Quality == 0 {
		return fmt.Errorf("at least one scoring weight must be positive")
	}
	return nil
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}
