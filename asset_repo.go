// asset_repo.go - Index-keyed asset lookup boundary (spec §4.H) and a
// concrete in-memory implementation built from decoded images.
//
// Grounded on the teacher's splash-image decode path in video_chip.go
// (image.Decode into an RGBA buffer) for how atlases are built from PNG
// sources; golang.org/x/image/draw is used for any sub-rectangle scaling
// a caller needs when assembling an atlas from multiple source images.

package gm8run

import (
	"image"
	"image/draw"

	xdraw "golang.org/x/image/draw"
)

// AssetRepository resolves indices to optional assets. Absent lookups
// return nil and must be treated as silent no-ops by callers (spec §7).
type AssetRepository interface {
	Sprite(index int) *Sprite
	Background(index int) *Background
	Font(index int) *Font
}

// MapAssetRepository is a simple slice-backed AssetRepository, along with
// the decoded atlas images backing each AtlasRef.AtlasID.
type MapAssetRepository struct {
	sprites     []*Sprite
	backgrounds []*Background
	fonts       []*Font
	atlasImages map[int]image.Image
}

// NewMapAssetRepository returns an empty repository.
func NewMapAssetRepository() *MapAssetRepository {
	return &MapAssetRepository{atlasImages: make(map[int]image.Image)}
}

func (m *MapAssetRepository) Sprite(index int) *Sprite {
	if index < 0 || index >= len(m.sprites) {
		return nil
	}
	return m.sprites[index]
}

func (m *MapAssetRepository) Background(index int) *Background {
	if index < 0 || index >= len(m.backgrounds) {
		return nil
	}
	return m.backgrounds[index]
}

func (m *MapAssetRepository) Font(index int) *Font {
	if index < 0 || index >= len(m.fonts) {
		return nil
	}
	return m.fonts[index]
}

// SetSprite installs (or replaces) the sprite at index, growing the
// backing slice as needed.
func (m *MapAssetRepository) SetSprite(index int, s *Sprite) {
	m.growSprites(index + 1)
	m.sprites[index] = s
}

// SetBackground installs (or replaces) the background at index.
func (m *MapAssetRepository) SetBackground(index int, b *Background) {
	m.growBackgrounds(index + 1)
	m.backgrounds[index] = b
}

// SetFont installs (or replaces) the font at index.
func (m *MapAssetRepository) SetFont(index int, f *Font) {
	m.growFonts(index + 1)
	m.fonts[index] = f
}

// RegisterAtlasImage associates a decoded image with an atlas ID so that
// renderer backends can resolve AtlasRef.AtlasID to pixel data.
func (m *MapAssetRepository) RegisterAtlasImage(atlasID int, img image.Image) {
	m.atlasImages[atlasID] = img
}

// AtlasImage returns the decoded image registered for atlasID, or nil.
func (m *MapAssetRepository) AtlasImage(atlasID int) image.Image {
	return m.atlasImages[atlasID]
}

// ExtractSubImage copies the rectangle described by ref out of its
// registered atlas image into a standalone RGBA image. Renderer backends
// that need a standalone texture (rather than a live sub-image view) use
// this; backends like Ebiten that support live sub-images should prefer
// SubImage-style views instead for efficiency.
func (m *MapAssetRepository) ExtractSubImage(ref AtlasRef) *image.RGBA {
	src := m.atlasImages[ref.AtlasID]
	if src == nil {
		return nil
	}
	dst := image.NewRGBA(image.Rect(0, 0, ref.W, ref.H))
	draw.Draw(dst, dst.Bounds(), src, image.Pt(ref.X, ref.Y), draw.Src)
	return dst
}

// ExtractScaledSubImage is ExtractSubImage followed by a resize to
// dstW x dstH, for atlas sources authored at a different resolution than
// the target display (e.g. a hi-res font atlas rendered at a lower
// unscaled room resolution). Uses golang.org/x/image/draw's quality
// scaler rather than stdlib image/draw, which only supports Draw's
// nearest-style copy.
func (m *MapAssetRepository) ExtractScaledSubImage(ref AtlasRef, dstW, dstH int) *image.RGBA {
	src := m.ExtractSubImage(ref)
	if src == nil {
		return nil
	}
	if dstW == ref.W && dstH == ref.H {
		return src
	}
	dst := image.NewRGBA(image.Rect(0, 0, dstW, dstH))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Over, nil)
	return dst
}

func (m *MapAssetRepository) growSprites(n int) {
	for len(m.sprites) < n {
		m.sprites = append(m.sprites, nil)
	}
}

func (m *MapAssetRepository) growBackgrounds(n int) {
	for len(m.backgrounds) < n {
		m.backgrounds = append(m.backgrounds, nil)
	}
}

func (m *MapAssetRepository) growFonts(n int) {
	for len(m.fonts) < n {
		m.fonts = append(m.fonts, nil)
	}
}
