// draw_pass.go - Depth-sorted interleaved instance/tile drawing (spec §4.E)
//
// Grounded on original_source/src/game/draw.rs's draw_view: two cached
// draw-order permutations are walked with two cursors, comparing depths;
// on a tie or an instance-ahead comparison the instance draws first
// (Ordering::Greater | Equal in the original), and once either stream is
// exhausted the other drains unconditionally.

package gm8run

// CustomDrawObjects is the set of object indices whose draw event is
// scripted rather than a default sprite blit (spec §4.E, §6).
type CustomDrawObjects map[int]bool

// drawScene runs the interleaved merge loop over insts and tiles, emitting
// draw calls through r. A non-nil error from the GML executor aborts the
// pass immediately (spec §4.H).
func drawScene(r Renderer, assets AssetRepository, gml GMLExecutor, customDraw CustomDrawObjects, insts *InstanceList, tiles *TileList) error {
	insts.DrawSort()
	tiles.DrawSort()

	instIter := insts.IterByDrawing()
	tileIter := tiles.IterByDrawing()

	instIdx, instOK := instIter.Next(insts)
	tileIdx, tileOK := tileIter.Next(tiles)

	for instOK && tileOK {
		inst, ok := insts.Get(instIdx)
		if !ok {
			instIdx, instOK = instIter.Next(insts)
			continue
		}
		tile, ok := tiles.Get(tileIdx)
		if !ok {
			tileIdx, tileOK = tileIter.Next(tiles)
			continue
		}

		if inst.Depth.GreaterOrEqual(tile.Depth) {
			if err := drawInstance(r, assets, gml, customDraw, inst); err != nil {
				return err
			}
			instIdx, instOK = instIter.Next(insts)
		} else {
			drawTile(r, assets, tile)
			tileIdx, tileOK = tileIter.Next(tiles)
		}
	}

	for instOK {
		inst, ok := insts.Get(instIdx)
		if ok {
			if err := drawInstance(r, assets, gml, customDraw, inst); err != nil {
				return err
			}
		}
		instIdx, instOK = instIter.Next(insts)
	}

	for tileOK {
		if tile, ok := tiles.Get(tileIdx); ok {
			drawTile(r, assets, tile)
		}
		tileIdx, tileOK = tileIter.Next(tiles)
	}

	return nil
}

// drawInstance dispatches a custom-draw event or emits the default sprite
// blit for inst's current frame (spec §4.E).
func drawInstance(r Renderer, assets AssetRepository, gml GMLExecutor, customDraw CustomDrawObjects, inst *Instance) error {
	if customDraw[inst.ObjectIndex] {
		return gml.RunEvent(DrawEvent, 0, inst.ID, inst.ID, nil)
	}

	sprite := assets.Sprite(inst.SpriteIndex)
	if sprite == nil || len(sprite.Frames) == 0 {
		return nil
	}
	if inst.ImageIndex.Floor().Float64() < 0 {
		return nil
	}
	frameIdx := int(inst.ImageIndex.Floor().Float64()) % len(sprite.Frames)
	if frameIdx < 0 || frameIdx >= len(sprite.Frames) {
		return nil
	}
	frame := sprite.Frames[frameIdx]

	r.DrawSprite(frame.Atlas, inst.X, inst.Y, inst.ImageXScale, inst.ImageYScale, inst.ImageAngle, inst.ImageBlend, inst.ImageAlpha)
	return nil
}

// drawTile emits a single sub-rectangle blit for tile, or nothing if its
// background asset or atlas is unresolvable (spec §4.E, §7).
func drawTile(r Renderer, assets AssetRepository, tile *Tile) {
	bg := assets.Background(tile.BackgroundIndex)
	if bg == nil || bg.Atlas == nil {
		return
	}
	r.DrawSpritePartial(*bg.Atlas, tile.TileX, tile.TileY, tile.Width, tile.Height, tile.X, tile.Y, tile.XScale, tile.YScale, RealFromInt(0), tile.Blend, tile.Alpha)
}
