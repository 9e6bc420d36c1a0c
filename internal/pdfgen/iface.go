package pdfgen

import "context"

// Rasterizer converts a styled HTML document into binary PDF bytes. It is
// an external collaborator: a blocking, non-cancelable call into a
// rendering binary.
type Rasterizer interface {
	Rasterize(ctx context.Context, html string, opts ...RenderOptsBuilder) ([]byte, error)
}
