package gm8run

import "testing"

func charFont(chars map[rune]Character) *Font {
	return &Font{Atlas: AtlasRef{AtlasID: 1, W: 256, H: 256}, Characters: chars}
}

func TestGetStringSizeBasicNewline(t *testing.T) {
	font := charFont(map[rune]Character{
		'A': {Width: 10, Height: 16, Distance: 10},
		'B': {Width: 12, Height: 16, Distance: 12},
		'M': {Width: 0, Height: 16},
	})
	w, h := GetStringSize(font, "AB#C", 0, false, 0, false)
	if w != 22 || h != 32 {
		t.Fatalf("got (%d, %d), want (22, 32)", w, h)
	}
}

func TestGetStringSizeEscapedHash(t *testing.T) {
	font := charFont(map[rune]Character{
		'A': {Width: 10, Distance: 10},
		'B': {Width: 12, Distance: 12},
		'#': {Width: 4, Distance: 5},
		'M': {Height: 16},
	})
	w, h := GetStringSize(font, `A\#B`, 0, false, 0, false)
	if w != 27 || h != 16 {
		t.Fatalf("got (%d, %d), want (27, 16)", w, h)
	}
}

func TestGetStringSizeWraps(t *testing.T) {
	font := charFont(map[rune]Character{
		'A': {Width: 10, Distance: 10},
		'M': {Height: 16},
	})
	_, h := GetStringSize(font, "AAA", 16, true, 25, true)
	if h != 32 {
		t.Fatalf("height = %d, want 32 (two lines)", h)
	}
}

func TestGetStringSizeSkipsMissingGlyph(t *testing.T) {
	font := charFont(map[rune]Character{
		'A': {Width: 10, Distance: 10},
		'M': {Height: 16},
	})
	w, h := GetStringSize(font, "AZA", 0, false, 0, false)
	if w != 20 || h != 16 {
		t.Fatalf("got (%d, %d), want (20, 16); missing glyph must be skipped silently", w, h)
	}
}

func TestDrawStringEmitsGlyphsInOrder(t *testing.T) {
	font := charFont(map[rune]Character{
		'A': {X: 0, Y: 0, Width: 10, Height: 16, Distance: 10, Offset: 1},
		'B': {X: 10, Y: 0, Width: 12, Height: 16, Distance: 12, Offset: 0},
		'M': {Height: 16},
	})
	r := &HeadlessRenderer{}
	DrawString(r, font, 100, 50, "AB", 0, false, 0, false, HalignLeft, ValignTop, 0xFFFFFF, RealFromInt(1))

	if len(r.Calls) != 2 {
		t.Fatalf("got %d calls, want 2", len(r.Calls))
	}
	if r.Calls[0].X.Float64() != 101 {
		t.Errorf("first glyph dst x = %v, want 101 (100 + offset 1)", r.Calls[0].X.Float64())
	}
	if r.Calls[1].X.Float64() != 110 {
		t.Errorf("second glyph dst x = %v, want 110 (100 + distance 10 + offset 0)", r.Calls[1].X.Float64())
	}
}

func TestDrawStringRightBottomAlignment(t *testing.T) {
	font := charFont(map[rune]Character{
		'A': {Width: 10, Height: 16, Distance: 10, Offset: 2},
		'M': {Height: 16},
	})
	r := &HeadlessRenderer{}
	DrawString(r, font, 200, 100, "A", 0, false, 0, false, HalignRight, ValignBottom, 0, RealFromInt(1))

	w, h := GetStringSize(font, "A", 0, false, 0, false)
	wantX := float64(200 - w + 2)
	wantY := float64(100 - h)
	if len(r.Calls) != 1 {
		t.Fatalf("got %d calls, want 1", len(r.Calls))
	}
	if r.Calls[0].X.Float64() != wantX {
		t.Errorf("dst x = %v, want %v", r.Calls[0].X.Float64(), wantX)
	}
	if r.Calls[0].Y.Float64() != wantY {
		t.Errorf("dst y = %v, want %v", r.Calls[0].Y.Float64(), wantY)
	}
}

func TestDrawStringNilFontIsNoOp(t *testing.T) {
	r := &HeadlessRenderer{}
	DrawString(r, nil, 0, 0, "A", 0, false, 0, false, HalignLeft, ValignTop, 0, RealFromInt(1))
	if len(r.Calls) != 0 {
		t.Fatalf("expected no calls for nil font, got %d", len(r.Calls))
	}
}
