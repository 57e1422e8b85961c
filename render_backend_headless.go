// render_backend_headless.go - Recording Renderer used by the test suite
//
// Grounded on the teacher's headless backend pattern (audio_backend_headless.go,
// video_backend_headless.go): a backend with no real output device that
// still satisfies the full interface, so the surrounding pipeline can run
// unmodified under `go test`.

package gm8run

// RecordedCall is one submitted renderer call, in submission order.
type RecordedCall struct {
	Kind string // "set_view", "draw_sprite", "draw_sprite_partial", "finish"

	WindowW, WindowH     int
	UnscaledW, UnscaledH int
	SrcX, SrcY, SrcW, SrcH Real
	Angle                  Real
	PortX, PortY, PortW, PortH int32

	Atlas          AtlasRef
	X, Y           Real
	XScale, YScale Real
	Blend          int32
	Alpha          Real

	PartialSrcX, PartialSrcY, PartialSrcW, PartialSrcH int32
}

// HeadlessRenderer records every call for assertion in tests. It performs
// no actual rasterization.
type HeadlessRenderer struct {
	Calls []RecordedCall
}

// NewHeadlessRenderer returns an empty recording renderer.
func NewHeadlessRenderer() *HeadlessRenderer {
	return &HeadlessRenderer{}
}

func (r *HeadlessRenderer) SetView(windowW, windowH, unscaledW, unscaledH int, srcX, srcY, srcW, srcH Real, angleRadians Real, portX, portY, portW, portH int32) {
	r.Calls = append(r.Calls, RecordedCall{
		Kind: "set_view",
		WindowW: windowW, WindowH: windowH,
		UnscaledW: unscaledW, UnscaledH: unscaledH,
		SrcX: srcX, SrcY: srcY, SrcW: srcW, SrcH: srcH,
		Angle: angleRadians,
		PortX: portX, PortY: portY, PortW: portW, PortH: portH,
	})
}

func (r *HeadlessRenderer) DrawSprite(atlas AtlasRef, x, y, xscale, yscale, angle Real, blend int32, alpha Real) {
	r.Calls = append(r.Calls, RecordedCall{
		Kind: "draw_sprite", Atlas: atlas,
		X: x, Y: y, XScale: xscale, YScale: yscale, Angle: angle,
		Blend: blend, Alpha: alpha,
	})
}

func (r *HeadlessRenderer) DrawSpritePartial(atlas AtlasRef, srcX, srcY, srcW, srcH int32, dstX, dstY, xscale, yscale, angle Real, blend int32, alpha Real) {
	r.Calls = append(r.Calls, RecordedCall{
		Kind: "draw_sprite_partial", Atlas: atlas,
		PartialSrcX: srcX, PartialSrcY: srcY, PartialSrcW: srcW, PartialSrcH: srcH,
		X: dstX, Y: dstY, XScale: xscale, YScale: yscale, Angle: angle,
		Blend: blend, Alpha: alpha,
	})
}

func (r *HeadlessRenderer) Finish(windowW, windowH int) {
	r.Calls = append(r.Calls, RecordedCall{Kind: "finish", WindowW: windowW, WindowH: windowH})
}

// FixedWindowSizer is a constant-size WindowSizer, useful for tests and
// for hosts that don't support live resize queries.
type FixedWindowSizer struct {
	Width, Height int
}

func (f FixedWindowSizer) Size() (int, int) {
	return f.Width, f.Height
}
