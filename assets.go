// assets.go - Sprite, background and font asset shapes consumed by the draw pass

package gm8run

// AtlasRef is an opaque handle identifying a rectangle within a texture
// atlas. The draw pass never inspects its contents; it is threaded
// straight through to the Renderer. Concrete asset repositories build
// these from decoded images (see asset_repo.go); concrete renderers
// convert them to their own native texture representation lazily.
type AtlasRef struct {
	// AtlasID identifies which backing atlas this rectangle lives in.
	AtlasID int
	// X, Y, W, H is the rectangle within that atlas, in pixels.
	X, Y, W, H int
}

// SpriteFrame is one frame of an animated sprite.
type SpriteFrame struct {
	Atlas AtlasRef
}

// Sprite is an ordered sequence of frames. A sprite with zero frames is
// legal and draws nothing (spec §3, §4.E).
type Sprite struct {
	Frames []SpriteFrame
}

// Background holds an optional atlas reference; a Background with no
// atlas silently draws nothing when referenced by a tile or layer.
type Background struct {
	Atlas *AtlasRef
}

// Character is one glyph's metrics and source rectangle within the font
// atlas. Distance is the advance used when laying out the next glyph;
// Offset is the left-side bearing applied only at draw time.
type Character struct {
	X, Y, Width, Height int32
	Offset              int32
	Distance            int32
}

// Font is a glyph atlas with per-codepoint metrics. Lookup of an absent
// codepoint returns ok=false; callers must skip it silently (spec §4.G).
type Font struct {
	Atlas      AtlasRef
	Characters map[rune]Character
}

// Char looks up a codepoint's glyph metrics.
func (f *Font) Char(c rune) (Character, bool) {
	if f == nil {
		return Character{}, false
	}
	ch, ok := f.Characters[c]
	return ch, ok
}
