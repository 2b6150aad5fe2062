package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"

	"docnum/internal/compile"
	"docnum/internal/config"
	"docnum/internal/parser"
	"docnum/internal/render"
)

// Worker processes a single compilation job.
type Worker struct {
	log *slog.Logger
	cfg config.Config
}

func NewWorker(cfg config.Config, log *slog.Logger) *Worker {
	return &Worker{log: log, cfg: cfg}
}

// Process runs the full compile pipeline for a job: parse, two-phase
// compile, render. Element-level show errors leave the job partial rather
// than failed.
func (w *Worker) Process(ctx context.Context, job *Job) {
	log := w.log.With("job_id", job.ID, "filename", job.Filename)

	if err := ctx.Err(); err != nil {
		job.AddError(err.Error())
		job.SetStatus(StatusFailed, "canceled")
		return
	}

	// Phase 1: Parse
	job.SetStatus(StatusParsing, "parsing")
	p, err := parser.ForFile(job.Filename)
	if err != nil {
		log.Error("unsupported format", "error", err)
		job.AddError(err.Error())
		job.SetStatus(StatusFailed, "parsing")
		return
	}
	if pdfp, ok := p.(*parser.PDFParser); ok {
		pdfp.FallbackPdftotext = w.cfg.PDFFallbackPdftotext
	}

	doc, err := p.Parse(bytes.NewReader(job.FileData()), job.Filename)
	if err != nil {
		log.Error("parse failed", "error", err)
		job.AddError(fmt.Sprintf("parse: %s", err))
		job.SetStatus(StatusFailed, "parsing")
		return
	}
	if job.Options.Title != "" {
		doc.Title = job.Options.Title
	}
	job.SetTitle(doc.Title)
	job.SetCounts(len(doc.Elements), doc.FigureCount())
	log.Info("parsed document", "elements", len(doc.Elements), "figures", doc.FigureCount())

	// Phase 2: Compile (synthesize then show, in document order).
	job.SetStatus(StatusCompiling, "compiling")
	sc, err := ScopeFor(w.cfg, job.Options)
	if err != nil {
		log.Error("invalid compile options", "error", err)
		job.AddError(err.Error())
		job.SetStatus(StatusFailed, "compiling")
		return
	}
	applyScopeSupplement(doc, sc)
	res := compile.Compile(doc, sc)
	for _, e := range res.Errors {
		log.Warn("element failed", "location", int(e.Location), "kind", e.Kind, "error", e.Err)
		job.AddError(e.Error())
	}

	// Phase 3: Render
	job.SetStatus(StatusRendering, "rendering")
	outcome := &Outcome{
		Title:   doc.Title,
		Text:    render.Plain(res.Content),
		HTML:    render.HTML(res.Content),
		Figures: doc.FigureCount(),
		Errors:  []string{},
	}
	for _, e := range res.Errors {
		outcome.Errors = append(outcome.Errors, e.Error())
	}
	job.SetOutcome(outcome)

	if len(res.Errors) > 0 {
		job.SetStatus(StatusPartial, "done")
	} else {
		job.SetStatus(StatusCompleted, "done")
	}
	log.Info("compilation complete", "figures", outcome.Figures, "errors", len(outcome.Errors))
}
