// tile.go - Background-sourced sprite placed directly in the scene

package gm8run

// Tile renders a sub-rectangle of a background asset at a position with
// its own transform. Immutable after creation except for coordinates and
// transform (spec §3).
type Tile struct {
	BackgroundIndex int

	TileX, TileY        int32 // source rectangle, top-left
	Width, Height       int32 // source rectangle size

	X, Y           Real // destination
	XScale, YScale Real
	Blend          int32
	Alpha          Real
	Depth          Real
}
