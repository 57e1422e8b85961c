// fontatlas - Key a grid PNG bitmap font and measure its glyph cells
//
// Adapted from IntuitionEngine's tools/font2rgba.go: decode a PNG, key out
// near-black pixels as transparent, and write the keyed image to -out.
// Each grid cell's Width/Distance is measured by trimming its trailing
// transparent columns; the resulting glyph table is only counted in the
// summary line, not written out.
//
// Usage: fontatlas -in grid.png -cols 16 -rows 16 -cell 32 -first 32 -out font_atlas.png
package main

import (
	"flag"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"os"
)

func main() {
	in := flag.String("in", "", "input grid PNG path")
	out := flag.String("out", "font_atlas.png", "output atlas PNG path")
	cols := flag.Int("cols", 16, "grid columns")
	rows := flag.Int("rows", 16, "grid rows")
	cell := flag.Int("cell", 32, "cell size in pixels (square cells)")
	first := flag.Int("first", 32, "codepoint of the grid's first cell")
	flag.Parse()

	if *in == "" {
		fmt.Fprintln(os.Stderr, "fontatlas: -in is required")
		os.Exit(1)
	}

	if err := run(*in, *out, *cols, *rows, *cell, *first); err != nil {
		fmt.Fprintf(os.Stderr, "fontatlas: %v\n", err)
		os.Exit(1)
	}
}

func run(inPath, outPath string, cols, rows, cell, first int) error {
	f, err := os.Open(inPath)
	if err != nil {
		return fmt.Errorf("open %s: %w", inPath, err)
	}
	defer f.Close()

	src, err := png.Decode(f)
	if err != nil {
		return fmt.Errorf("decode %s: %w", inPath, err)
	}

	bounds := src.Bounds()
	rgba := image.NewRGBA(bounds)
	draw.Draw(rgba, bounds, src, bounds.Min, draw.Src)
	keyOutNearBlack(rgba)

	characters := make(map[rune]gridCharacter)
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			codepoint := rune(first + row*cols + col)
			cellRect := image.Rect(col*cell, row*cell, (col+1)*cell, (row+1)*cell)
			w, h := trimmedSize(rgba, cellRect)
			if w == 0 || h == 0 {
				continue
			}
			characters[codepoint] = gridCharacter{
				X: int32(cellRect.Min.X), Y: int32(cellRect.Min.Y),
				Width: int32(w), Height: int32(h),
				Distance: int32(w) + 1,
			}
		}
	}

	outFile, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("create %s: %w", outPath, err)
	}
	defer outFile.Close()
	if err := png.Encode(outFile, rgba); err != nil {
		return fmt.Errorf("encode %s: %w", outPath, err)
	}

	fmt.Printf("fontatlas: wrote %s (%d characters, %dx%d grid of %d-px cells)\n", outPath, len(characters), cols, rows, cell)
	return nil
}

// gridCharacter is the subset of gm8run.Character this tool can derive
// from pixel content alone; Offset is left to be tuned by hand per font
// since it isn't recoverable from a trimmed bounding box.
type gridCharacter struct {
	X, Y, Width, Height int32
	Distance            int32
}

// keyOutNearBlack sets alpha to 0 for any pixel whose RGB components are
// all below 16, matching font2rgba.go's alpha-keying rule.
func keyOutNearBlack(img *image.RGBA) {
	for i := 0; i < len(img.Pix); i += 4 {
		r, g, b := img.Pix[i], img.Pix[i+1], img.Pix[i+2]
		if r < 16 && g < 16 && b < 16 {
			img.Pix[i+3] = 0
		}
	}
}

// trimmedSize returns the width of the glyph's non-transparent content
// within cellRect (trailing transparent columns excluded) and the full
// cell height.
func trimmedSize(img *image.RGBA, cellRect image.Rectangle) (width, height int) {
	height = cellRect.Dy()
	maxX := cellRect.Min.X
	for x := cellRect.Min.X; x < cellRect.Max.X; x++ {
		for y := cellRect.Min.Y; y < cellRect.Max.Y; y++ {
			_, _, _, a := img.At(x, y).RGBA()
			if a != 0 {
				maxX = x + 1
				break
			}
		}
	}
	return maxX - cellRect.Min.X, height
}
