// render_backend_ebiten.go - Ebiten-backed Renderer
//
// Grounded on the teacher's EbitenOutput (video_backend_ebiten.go): same
// constructor shape and mutex-guarded mutable frame state, narrowed here
// to the four-method sprite-blit contract instead of a raw framebuffer
// output.

package gm8run

import (
	"image"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
)

// EbitenAtlasSource resolves an AtlasRef to the *ebiten.Image backing it.
// The asset repository owns the decoded images; the renderer only needs
// to know how to find them.
type EbitenAtlasSource interface {
	EbitenImage(atlasID int) *ebiten.Image
}

// EbitenRenderer draws sprites onto a target *ebiten.Image using
// ebiten.GeoM for the view projection and per-instance transform, and
// ColorScale for blend/alpha.
type EbitenRenderer struct {
	mu     sync.Mutex
	target *ebiten.Image
	atlas  EbitenAtlasSource

	view ebiten.GeoM // current view projection, applied after the per-sprite transform
}

// NewEbitenRenderer returns a renderer that draws into target, resolving
// atlas references through atlas.
func NewEbitenRenderer(target *ebiten.Image, atlas EbitenAtlasSource) *EbitenRenderer {
	return &EbitenRenderer{target: target, atlas: atlas}
}

// SetTarget replaces the destination image, e.g. when the window is
// resized between frames.
func (r *EbitenRenderer) SetTarget(target *ebiten.Image) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.target = target
}

func (r *EbitenRenderer) SetView(windowW, windowH, unscaledW, unscaledH int, srcX, srcY, srcW, srcH Real, angleRadians Real, portX, portY, portW, portH int32) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var g ebiten.GeoM
	// Map world-space source rectangle to the destination viewport,
	// rotating about the source rectangle's centre, matching the legacy
	// set_view(src_rect, angle, port_rect) contract.
	g.Translate(-srcX.Float64(), -srcY.Float64())
	g.Translate(-srcW.Float64()/2-0, -srcH.Float64()/2-0)
	g.Rotate(angleRadians.Float64())
	g.Translate(srcW.Float64()/2, srcH.Float64()/2)

	sx := float64(portW) / srcW.Float64()
	sy := float64(portH) / srcH.Float64()
	g.Scale(sx, sy)
	g.Translate(float64(portX), float64(portY))

	r.view = g
}

func (r *EbitenRenderer) DrawSprite(atlas AtlasRef, x, y, xscale, yscale, angle Real, blend int32, alpha Real) {
	r.DrawSpritePartial(atlas, int32(atlas.X), int32(atlas.Y), int32(atlas.W), int32(atlas.H), x, y, xscale, yscale, angle, blend, alpha)
}

func (r *EbitenRenderer) DrawSpritePartial(atlas AtlasRef, srcX, srcY, srcW, srcH int32, dstX, dstY, xscale, yscale, angle Real, blend int32, alpha Real) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.target == nil || r.atlas == nil {
		return
	}
	img := r.atlas.EbitenImage(atlas.AtlasID)
	if img == nil {
		return
	}
	sub, ok := img.SubImage(image.Rect(int(srcX), int(srcY), int(srcX+srcW), int(srcY+srcH))).(*ebiten.Image)
	if !ok {
		return
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(xscale.Float64(), yscale.Float64())
	op.GeoM.Rotate(angle.Float64())
	op.GeoM.Translate(dstX.Float64(), dstY.Float64())
	op.GeoM.Concat(r.view)

	rf, gf, bf := unpackBlend(blend)
	op.ColorScale.Scale(rf, gf, bf, float32(alpha.Float64()))

	r.target.DrawImage(sub, op)
}

func (r *EbitenRenderer) Finish(windowW, windowH int) {
	// Presentation is driven by ebiten's own game loop (Draw/Layout);
	// nothing to flush here beyond what DrawImage already committed to
	// the target image.
}

// unpackBlend splits a packed 24-bit RGB blend colour into normalized
// channel scales.
func unpackBlend(blend int32) (r, g, b float32) {
	u := uint32(blend)
	r = float32(u&0xFF) / 255
	g = float32((u>>8)&0xFF) / 255
	b = float32((u>>16)&0xFF) / 255
	return
}

// EbitenWindowSizer reports the running game window's size, as returned
// by ebiten.WindowSize, through the WindowSizer boundary.
type EbitenWindowSizer struct{}

func (EbitenWindowSizer) Size() (int, int) {
	return ebiten.WindowSize()
}
