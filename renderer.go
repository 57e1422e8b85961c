// renderer.go - Opaque rendering backend contract (spec §4.B)

package gm8run

import "fmt"

// RenderError provides structured context for a renderer operation
// failure, mirroring the teacher's VideoError shape (Operation/Details/
// wrapped Err). In practice the renderer backends here never return
// errors from the hot path (draw calls are fire-and-forget per spec
// §4.E), but backend construction and backend-specific setup can fail.
type RenderError struct {
	Operation string
	Details   string
	Err       error
}

func (e *RenderError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("renderer %s failed: %s: %v", e.Operation, e.Details, e.Err)
	}
	return fmt.Sprintf("renderer %s failed: %s", e.Operation, e.Details)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}

// Renderer is the commit-ordered draw backend consumed by the core (spec
// §4.B). Calls within a frame are rendered in submission order; any
// conforming rasterizer may be substituted. The core never retains an
// AtlasRef past the call that used it (spec §5).
type Renderer interface {
	// SetView establishes the projection for subsequent draw calls.
	// angleRadians is the view's rotation already converted from degrees
	// at the view-loop boundary (spec §4.D).
	SetView(windowW, windowH, unscaledW, unscaledH int, srcX, srcY, srcW, srcH Real, angleRadians Real, portX, portY, portW, portH int32)

	// DrawSprite draws an entire atlas region at (x, y) with the given
	// transform, blend colour (packed RGB) and alpha.
	DrawSprite(atlas AtlasRef, x, y, xscale, yscale, angle Real, blend int32, alpha Real)

	// DrawSpritePartial draws a sub-rectangle of the atlas region, used
	// both for tiles (spec §4.E) and for glyph blits (spec §4.G).
	DrawSpritePartial(atlas AtlasRef, srcX, srcY, srcW, srcH int32, dstX, dstY, xscale, yscale, angle Real, blend int32, alpha Real)

	// Finish ends the frame. Called exactly once per DrawFrame invocation
	// regardless of view count (spec §4.D).
	Finish(windowW, windowH int)
}

// WindowSizer is the window-size query boundary (spec §6). A concrete
// windowing layer is out of scope for this core; GameState only needs
// the current physical pixel size.
type WindowSizer interface {
	Size() (width, height int)
}
