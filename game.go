// game.go - Per-frame orchestration: the view loop (spec §4.D)
//
// Grounded on original_source/src/game/draw.rs's Game::draw: iterate
// views when enabled (tracking view_current, reset to 0 afterward) or
// run a single pass over the whole room when they're not, call Finish
// exactly once regardless of view count, then clear input edge state.

package gm8run

// GameState owns everything a single DrawFrame call touches: the scene
// contents, the asset and scripting collaborators, and the current text
// draw state.
type GameState struct {
	Renderer    Renderer
	WindowSizer WindowSizer
	Assets      AssetRepository
	GML         GMLExecutor
	Input       InputManager

	Instances  *InstanceList
	Tiles      *TileList
	Backgrounds []BackgroundLayer
	Views       []View
	CustomDraw  CustomDrawObjects

	ViewsEnabled bool
	ViewCurrent  int

	RoomWidth, RoomHeight         int32
	UnscaledWidth, UnscaledHeight int

	DrawFont   *Font
	DrawColour int32
	DrawAlpha  Real
	DrawHalign Halign
	DrawValign Valign
}

// NewGameState returns a GameState with empty scene contents and no-op
// collaborators, ready for a caller to populate.
func NewGameState(r Renderer, sizer WindowSizer, assets AssetRepository) *GameState {
	return &GameState{
		Renderer:    r,
		WindowSizer: sizer,
		Assets:      assets,
		GML:         NoOpGMLExecutor{},
		Input:       NoOpInputManager{},
		Instances:   NewInstanceList(),
		Tiles:       NewTileList(),
		CustomDraw:  CustomDrawObjects{},
		DrawAlpha:   RealFromInt(1),
	}
}

// DrawFrame runs the view loop once: one draw pass per visible view if
// views are enabled, or a single full-room pass otherwise; Finish is
// called exactly once, and input edge state is cleared last (spec §4.D).
func (g *GameState) DrawFrame() error {
	if g.ViewsEnabled {
		for i, view := range g.Views {
			if !view.Visible {
				continue
			}
			g.ViewCurrent = i
			if err := g.drawView(view.SourceX, view.SourceY, view.SourceW, view.SourceH, view.PortX, view.PortY, view.PortW, view.PortH, view.AngleDegrees); err != nil {
				return err
			}
		}
		g.ViewCurrent = 0
	} else {
		full := View{
			SourceW: RealFromInt(int(g.RoomWidth)), SourceH: RealFromInt(int(g.RoomHeight)),
			PortW: g.RoomWidth, PortH: g.RoomHeight,
		}
		if err := g.drawView(full.SourceX, full.SourceY, full.SourceW, full.SourceH, full.PortX, full.PortY, full.PortW, full.PortH, full.AngleDegrees); err != nil {
			return err
		}
	}

	windowW, windowH := g.WindowSizer.Size()
	g.Renderer.Finish(windowW, windowH)

	g.Input.ClearPresses()
	return nil
}

// degreesToRadians converts a Real angle in degrees to radians, matching
// the view-loop boundary conversion in the original (angle.to_radians()).
func degreesToRadians(deg Real) Real {
	const piOver180 = 3.14159265358979323846 / 180
	return Real(deg.Float64() * piOver180)
}

// drawView sets the view projection and runs one full scene composite
// (backgrounds, interleaved instances/tiles, foregrounds) for a single
// source/port rectangle (spec §4.D, §4.E, §4.F).
func (g *GameState) drawView(srcX, srcY, srcW, srcH Real, portX, portY, portW, portH int32, angleDegrees Real) error {
	windowW, windowH := g.WindowSizer.Size()
	g.Renderer.SetView(windowW, windowH, g.UnscaledWidth, g.UnscaledHeight, srcX, srcY, srcW, srcH, degreesToRadians(angleDegrees), portX, portY, portW, portH)

	drawBackgroundLayers(g.Renderer, g.Assets, g.Backgrounds, false)

	if err := drawScene(g.Renderer, g.Assets, g.GML, g.CustomDraw, g.Instances, g.Tiles); err != nil {
		return err
	}

	drawBackgroundLayers(g.Renderer, g.Assets, g.Backgrounds, true)
	return nil
}
