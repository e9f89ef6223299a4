package certificate

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// deviceScale is the raster pixel density relative to CSS pixels.
const deviceScale = 2

// Document is a rendered certificate ready for download.
type Document struct {
	Filename string
	PDF      []byte
}

// Renderer produces certificate previews and PDFs.
type Renderer struct {
	log      *slog.Logger
	raster   Rasterizer
	branding Branding
	timeout  time.Duration
	now      func() time.Time
}

// NewRenderer creates a renderer. A non-positive timeout disables the bound.
func NewRenderer(logger *slog.Logger, raster Rasterizer, branding Branding, timeout time.Duration) *Renderer {
	return &Renderer{
		log:      logger.With("component", "certificate"),
		raster:   raster,
		branding: branding,
		timeout:  timeout,
		now:      time.Now,
	}
}

// Preview returns the certificate HTML with short dates.
func (r *Renderer) Preview(d Data) (string, error) {
	return executeTemplate(r.branding, d, ShortDateLayout, r.now())
}

// Render rasterizes the certificate and wraps it in a PDF. Any failure
// yields no document.
func (r *Renderer) Render(ctx context.Context, d Data) (*Document, error) {
	html, err := executeTemplate(r.branding, d, LongDateLayout, r.now())
	if err != nil {
		return nil, err
	}

	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	start := r.now()
	png, err := r.raster.Rasterize(ctx, html, Viewport{Width: Width, Height: Height, Scale: deviceScale})
	if err != nil {
		return nil, fmt.Errorf("rasterize certificate %s: %w", d.CertificateID, err)
	}

	pdf, err := EncodePDF(png, Width, Height)
	if err != nil {
		return nil, fmt.Errorf("certificate %s: %w", d.CertificateID, err)
	}

	r.log.InfoContext(ctx, "certificate rendered",
		slog.String("certificate_id", d.CertificateID),
		slog.Duration("duration", time.Since(start)),
		slog.Int("bytes", len(pdf)),
	)

	return &Document{Filename: Filename(d.FullName), PDF: pdf}, nil
}
