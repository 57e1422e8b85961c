package gm8run

import (
	"image"
	"image/color"
	"testing"
)

func solidImage(w, h int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func TestExtractSubImageCopiesRectangle(t *testing.T) {
	repo := NewMapAssetRepository()
	repo.RegisterAtlasImage(1, solidImage(64, 64, color.RGBA{255, 0, 0, 255}))

	sub := repo.ExtractSubImage(AtlasRef{AtlasID: 1, X: 4, Y: 4, W: 8, H: 8})
	if sub == nil {
		t.Fatal("expected non-nil sub image")
	}
	if sub.Bounds().Dx() != 8 || sub.Bounds().Dy() != 8 {
		t.Fatalf("got %dx%d, want 8x8", sub.Bounds().Dx(), sub.Bounds().Dy())
	}
}

func TestExtractSubImageMissingAtlasIsNil(t *testing.T) {
	repo := NewMapAssetRepository()
	if sub := repo.ExtractSubImage(AtlasRef{AtlasID: 99, W: 8, H: 8}); sub != nil {
		t.Fatal("expected nil for unregistered atlas ID")
	}
}

func TestExtractScaledSubImageResizes(t *testing.T) {
	repo := NewMapAssetRepository()
	repo.RegisterAtlasImage(1, solidImage(64, 64, color.RGBA{0, 255, 0, 255}))

	scaled := repo.ExtractScaledSubImage(AtlasRef{AtlasID: 1, X: 0, Y: 0, W: 16, H: 16}, 32, 32)
	if scaled == nil {
		t.Fatal("expected non-nil scaled image")
	}
	if scaled.Bounds().Dx() != 32 || scaled.Bounds().Dy() != 32 {
		t.Fatalf("got %dx%d, want 32x32", scaled.Bounds().Dx(), scaled.Bounds().Dy())
	}
}

func TestExtractScaledSubImageSkipsResizeWhenSameSize(t *testing.T) {
	repo := NewMapAssetRepository()
	repo.RegisterAtlasImage(1, solidImage(16, 16, color.RGBA{0, 0, 255, 255}))

	same := repo.ExtractScaledSubImage(AtlasRef{AtlasID: 1, X: 0, Y: 0, W: 16, H: 16}, 16, 16)
	if same == nil {
		t.Fatal("expected non-nil image")
	}
	if same.Bounds().Dx() != 16 || same.Bounds().Dy() != 16 {
		t.Fatalf("got %dx%d, want 16x16", same.Bounds().Dx(), same.Bounds().Dy())
	}
}

func TestExtractScaledSubImageMissingAtlasIsNil(t *testing.T) {
	repo := NewMapAssetRepository()
	if scaled := repo.ExtractScaledSubImage(AtlasRef{AtlasID: 7, W: 8, H: 8}, 16, 16); scaled != nil {
		t.Fatal("expected nil for unregistered atlas ID")
	}
}
