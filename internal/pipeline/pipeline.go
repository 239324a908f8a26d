// Package pipeline runs one batch request end to end: extract and segment
// every document, build the persona profile, score all sections globally,
// select the top ranks and refine each selection into an excerpt.
package pipeline

import (
	"context"
	"errors"
	"log/slog"
	"path/filepath"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/akashsiripuram/document-intelligence-challenge/internal/config"
	"github.com/akashsiripuram/document-intelligence-challenge/internal/document"
	"github.com/akashsiripuram/document-intelligence-challenge/internal/extractor"
	"github.com/akashsiripuram/document-intelligence-challenge/internal/profile"
	"github.com/akashsiripuram/document-intelligence-challenge/internal/ranker"
	"github.com/akashsiripuram/document-intelligence-challenge/internal/refiner"
	"github.com/akashsiripuram/document-intelligence-challenge/internal/report"
	"github.com/akashsiripuram/document-intelligence-challenge/internal/scorer"
	"github.com/akashsiripuram/document-intelligence-challenge/internal/segmenter"
)

// Runner wires the pipeline stages together for a single invocation.
type Runner struct {
	cfg    config.Config
	roles  profile.RoleTable
	scorer scorer.Scorer
	ref    *refiner.Refiner
	log    *slog.Logger
}

// NewRunner builds a runner from configuration. The role table is loaded once
// here and never mutated afterwards.
func NewRunner(cfg config.Config, log *slog.Logger) (*Runner, error) {
	roles, err := profile.LoadRoleTable(cfg.RoleTablePath)
	if err != nil {
		return nil, err
	}
	return &Runner{
		cfg:    cfg,
		roles:  roles,
		scorer: scorer.New(cfg),
		ref:    refiner.New(cfg),
		log:    log,
	}, nil
}

// Run executes the batch. Per-document extraction failures are isolated: the
// document is skipped with a warning and the rest of the batch proceeds. The
// returned output is well-formed even when no sections were produced.
func (r *Runner) Run(ctx context.Context, in report.Input, corpusDir string) (report.Output, error) {
	start := time.Now()
	log := r.log.With("run_id", NewRunID())

	prof := profile.Build(in.Persona.Role, in.JobToBeDone.Task, r.roles)
	log.Info("profile built",
		"role", prof.Role,
		"keywords", len(prof.Combined),
		"primary", prof.Primary,
		"secondary", prof.Secondary)

	docs := r.extractAll(ctx, log, in.Documents, corpusDir)

	// Global scoring across all documents, in document/page order so the
	// ranker's stable sort breaks ties deterministically.
	var scored []document.ScoredSection
	segCfg := segmenter.Config{
		MaxHeaderLen:    r.cfg.MaxHeaderLen,
		SynthTitleWidth: r.cfg.SynthTitleWidth,
	}
	for _, doc := range docs {
		if doc == nil {
			continue
		}
		for _, page := range doc.Pages {
			for _, sec := range segmenter.Segment(page.Text, page.Number, doc.Filename, segCfg) {
				scored = append(scored, r.scorer.Score(sec, prof))
			}
		}
	}
	log.Info("sections scored", "sections", len(scored))

	ranked := ranker.Select(scored, r.cfg.TopK)

	refined := make([]document.SubsectionAnalysis, 0, len(ranked))
	for _, rs := range ranked {
		refined = append(refined, r.ref.Refine(rs, prof))
	}

	out := report.Assemble(in, ranked, refined, time.Now())
	log.Info("run complete",
		"documents", len(in.Documents),
		"sections", len(scored),
		"selected", len(ranked),
		"elapsed", time.Since(start))
	return out, nil
}

// extractAll extracts every document's pages in parallel. Results land in a
// slice indexed by input position, so document order is independent of
// goroutine scheduling. Failed documents leave a nil slot.
func (r *Runner) extractAll(ctx context.Context, log *slog.Logger, inputs []report.InputDocument, corpusDir string) []*document.Document {
	docs := make([]*document.Document, len(inputs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.cfg.WorkerCount)

	for i, input := range inputs {
		i, input := i, input
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			path := filepath.Join(corpusDir, input.Filename)
			ext, err := extractor.ForFile(input.Filename, r.cfg.PDFFallbackPdftotext)
			if err != nil {
				log.Warn("skipping document", "document", input.Filename, "error", err)
				return nil
			}

			pages, err := ext.Extract(path)
			if err != nil {
				var exErr *extractor.ExtractionError
				if errors.As(err, &exErr) {
					log.Warn("skipping unreadable document", "document", input.Filename, "error", err)
					return nil
				}
				log.Warn("skipping document", "document", input.Filename, "error", err)
				return nil
			}

			docs[i] = &document.Document{
				Filename: input.Filename,
				Title:    input.Title,
				Pages:    pages,
			}
			return nil
		})
	}

	// Workers only propagate context cancellation; everything else is
	// logged and skipped.
	if err := g.Wait(); err != nil {
		log.Warn("extraction interrupted", "error", err)
	}
	return docs
}
