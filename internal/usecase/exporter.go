package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"resume-builder/internal/render"
	"resume-builder/pkg/apperror"
)

// Renderer rasterizes HTML into a paginated PDF byte stream.
type Renderer interface {
	RenderHTMLToPDF(ctx context.Context, html string) ([]byte, error)
}

// Exporter drives the PDF export pipeline: authorize, render, rasterize.
// It is a pure read path; the document is never mutated.
type Exporter struct {
	docs     DocumentsRepo
	renderer Renderer
	log      *zap.Logger
}

func NewExporter(docs DocumentsRepo, renderer Renderer, log *zap.Logger) *Exporter {
	return &Exporter{docs: docs, renderer: renderer, log: log}
}

// Export produces the PDF bytes and download filename for a document owned
// by ownerID. An absent document and a document owned by someone else yield
// the same not-found error, so existence is never leaked to non-owners.
// Failures in the rendering engine surface as a render error; no retry is
// attempted and no partial PDF is ever returned.
func (e *Exporter) Export(ctx context.Context, ownerID, id uuid.UUID) ([]byte, string, error) {
	doc, err := e.docs.FindOne(ctx, ownerID, id)
	if err != nil {
		return nil, "", err
	}

	html, err := render.HTML(*doc)
	if err != nil {
		e.log.Error("resume render failed", zap.String("resume_id", id.String()), zap.Error(err))
		return nil, "", apperror.Render(err)
	}

	pdf, err := e.renderer.RenderHTMLToPDF(ctx, html)
	if err != nil {
		e.log.Error("pdf rasterization failed", zap.String("resume_id", id.String()), zap.Error(err))
		return nil, "", apperror.Render(err)
	}

	return pdf, ExportFilename(doc.Title), nil
}

// ExportFilename derives the download filename from the document title:
// lowercase, every character outside [a-z0-9] replaced by an underscore,
// with a .pdf suffix.
func ExportFilename(title string) string {
	sanitized := strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			return r
		}
		if r >= 'A' && r <= 'Z' {
			return r + ('a' - 'A')
		}
		return '_'
	}, title)
	if sanitized == "" {
		sanitized = "resume"
	}
	return sanitized + ".pdf"
}
