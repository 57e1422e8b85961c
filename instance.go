// instance.go - Scene entity driven by a sprite or a custom draw event

package gm8run

// InstanceID identifies an Instance independent of its position in the
// instance list; position is never identity (spec §3).
type InstanceID uint32

// Instance is a scene entity with the fields the draw pass consults.
// Fields beyond these (scripted locals, GML-visible variables) belong to
// the GML executor's own state and are out of scope here.
type Instance struct {
	ID InstanceID

	ObjectIndex int
	SpriteIndex int // negative or out-of-range means "no sprite assigned"

	ImageIndex  Real // fractional frame selector
	ImageXScale Real
	ImageYScale Real
	ImageAngle  Real
	ImageBlend  int32 // packed 24-bit RGB
	ImageAlpha  Real

	X, Y  Real
	Depth Real
}
