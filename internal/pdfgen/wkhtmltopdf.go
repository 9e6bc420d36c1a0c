package pdfgen

import (
	"bytes"
	"context"
	"os/exec"
	"strings"

	"github.com/orderdocs/orderdocs/internal/config"
	ierr "github.com/orderdocs/orderdocs/internal/errors"
	"github.com/orderdocs/orderdocs/internal/logger"
)

// RenderOpts contains page options for a single rasterization.
type RenderOpts struct {
	// Page size, e.g. A4 or Letter
	PageSize string
	// Page orientation, Portrait or Landscape
	Orientation string
}

type RenderOptsBuilder func(o *RenderOpts)

func WithPageSize(pageSize string) RenderOptsBuilder {
	return func(o *RenderOpts) {
		o.PageSize = pageSize
	}
}

func WithOrientation(orientation string) RenderOptsBuilder {
	return func(o *RenderOpts) {
		o.Orientation = orientation
	}
}

// wkhtmltopdfRasterizer shells out to the wkhtmltopdf binary, streaming the
// HTML document on stdin and reading the PDF from stdout.
type wkhtmltopdfRasterizer struct {
	logger *logger.Logger
	// Path to the wkhtmltopdf binary
	binaryPath string
	// Default page settings, overridable per call
	pageSize    string
	orientation string
}

// NewRasterizer creates a rasterizer backed by the configured wkhtmltopdf
// binary.
func NewRasterizer(cfg *config.Configuration, logger *logger.Logger) Rasterizer {
	return &wkhtmltopdfRasterizer{
		logger:      logger,
		binaryPath:  cfg.Pdf.BinaryPath,
		pageSize:    cfg.Pdf.PageSize,
		orientation: cfg.Pdf.Orientation,
	}
}

func (r *wkhtmltopdfRasterizer) Rasterize(ctx context.Context, html string, opts ...RenderOptsBuilder) ([]byte, error) {
	options := RenderOpts{
		PageSize:    r.pageSize,
		Orientation: r.orientation,
	}
	for _, opt := range opts {
		opt(&options)
	}

	binaryPath, err := exec.LookPath(r.binaryPath)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("failed to find pdf rasterizer binary").
			Mark(ierr.ErrSystem)
	}

	args := []string{
		"--quiet",
		"--encoding", "utf-8",
		"--page-size", options.PageSize,
		"--orientation", options.Orientation,
		"-", "-",
	}

	cmd := exec.CommandContext(ctx, binaryPath, args...)
	cmd.Stdin = strings.NewReader(html)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	r.logger.Debugf("rasterizer command: %s", cmd.String())

	if err := cmd.Run(); err != nil {
		return nil, ierr.WithError(err).
			WithMessage(stderr.String()).
			WithHint("failed to rasterize document").
			Mark(ierr.ErrSystem)
	}

	pdf := stdout.Bytes()
	if len(pdf) == 0 {
		return nil, ierr.NewError("rasterizer produced no output").
			WithHint("failed to rasterize document").
			Mark(ierr.ErrSystem)
	}

	return pdf, nil
}
