// background_layer.go - Scene-wide background/foreground layer and compositor (spec §3, §4.F)

package gm8run

// BackgroundLayer is a scene layer (distinct from a Tile): a full-room
// backdrop or overlay with its own offset/scale/blend/alpha, optionally
// flagged as a foreground layer drawn after the scene body.
type BackgroundLayer struct {
	BackgroundID int
	XOffset, YOffset Real
	XScale, YScale   Real
	Blend            int32
	Alpha            Real
	Visible          bool
	IsForeground     bool
}

// drawBackgroundLayers emits one draw_sprite call per visible layer
// matching wantForeground, in layer order (spec §4.F). A layer whose
// background asset is missing, or has no atlas, is a silent no-op.
func drawBackgroundLayers(r Renderer, assets AssetRepository, layers []BackgroundLayer, wantForeground bool) {
	for _, layer := range layers {
		if !layer.Visible || layer.IsForeground != wantForeground {
			continue
		}
		bg := assets.Background(layer.BackgroundID)
		if bg == nil || bg.Atlas == nil {
			continue
		}
		r.DrawSprite(*bg.Atlas, layer.XOffset, layer.YOffset, layer.XScale, layer.YScale, 0, layer.Blend, layer.Alpha)
	}
}
