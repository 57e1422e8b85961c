// view.go - Viewport descriptor (spec §3, §4.D)

package gm8run

// View maps a rectangle of world space to a rectangle of window space,
// optionally rotated.
type View struct {
	SourceX, SourceY, SourceW, SourceH Real
	PortX, PortY, PortW, PortH         int32
	AngleDegrees                       Real
	Visible                            bool
}
