package testutil

import (
	"context"
	"fmt"
	"sync"

	ierr "github.com/orderdocs/orderdocs/internal/errors"
	"github.com/orderdocs/orderdocs/internal/pdfgen"
)

// StubRasterizer stands in for the external HTML-to-PDF binary. It records
// calls and can be told to fail.
type StubRasterizer struct {
	mu    sync.Mutex
	calls int
	// Fail makes every Rasterize call return a system error, simulating a
	// missing or broken rasterizer binary.
	Fail bool
}

func NewStubRasterizer() *StubRasterizer {
	return &StubRasterizer{}
}

func (r *StubRasterizer) Rasterize(ctx context.Context, html string, opts ...pdfgen.RenderOptsBuilder) ([]byte, error) {
	r.mu.Lock()
	r.calls++
	r.mu.Unlock()

	if r.Fail {
		return nil, ierr.NewError("rasterizer unavailable").
			WithHint("failed to rasterize document").
			Mark(ierr.ErrSystem)
	}

	return []byte(fmt.Sprintf("%%PDF-1.4 stub (%d bytes of html)", len(html))), nil
}

func (r *StubRasterizer) Calls() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.calls
}
