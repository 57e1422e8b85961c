// text_layout.go - Bitmap-font measurement and drawing (spec §4.G)
//
// Grounded on original_source/src/game/draw.rs's get_string_size/
// draw_string: both share a per-character state machine (newline on '#',
// escape via '\#', wrap-by-width vs advance-by-distance) and are kept
// here as two passes over the same rules rather than one parameterized
// function, matching the original's structure.

package gm8run

// Halign is the horizontal text anchor.
type Halign int

const (
	HalignLeft Halign = iota
	HalignMiddle
	HalignRight
)

// Valign is the vertical text anchor.
type Valign int

const (
	ValignTop Valign = iota
	ValignMiddle
	ValignBottom
)

// lineHeightFor resolves the line height to use: the caller's override, or
// the height of glyph 'M' (legacy quirk), or 0 if that glyph is absent.
func lineHeightFor(font *Font, override int32, hasOverride bool) int32 {
	if hasOverride {
		return override
	}
	if font == nil {
		return 0
	}
	if m, ok := font.Char('M'); ok {
		return m.Height
	}
	return 0
}

// GetStringSize measures s as it would be laid out by DrawString, without
// drawing anything. maxWidth is only applied when hasMaxWidth is true;
// otherwise lines are unbounded.
func GetStringSize(font *Font, s string, lineHeight int32, hasLineHeight bool, maxWidth int32, hasMaxWidth bool) (width, height int32) {
	if font == nil {
		return 0, 0
	}
	lh := lineHeightFor(font, lineHeight, hasLineHeight)

	var lineWidth int32
	runes := []rune(s)
	for i := 0; i < len(runes); i++ {
		c := runes[i]
		if c == '#' {
			height += lh
			if lineWidth > width {
				width = lineWidth
			}
			lineWidth = 0
			continue
		}
		if c == '\\' && i+1 < len(runes) && runes[i+1] == '#' {
			i++
			ch, ok := font.Char('#')
			if !ok {
				continue
			}
			lineWidth = advanceMeasure(ch, &width, &height, lh, lineWidth, maxWidth, hasMaxWidth)
			continue
		}
		ch, ok := font.Char(c)
		if !ok {
			continue
		}
		lineWidth = advanceMeasure(ch, &width, &height, lh, lineWidth, maxWidth, hasMaxWidth)
	}

	height += lh
	if lineWidth > width {
		width = lineWidth
	}
	return width, height
}

func advanceMeasure(ch Character, width, height *int32, lineHeight, lineWidth, maxWidth int32, hasMaxWidth bool) int32 {
	if hasMaxWidth && lineWidth+ch.Width > maxWidth && lineWidth != 0 {
		*height += lineHeight
		if lineWidth > *width {
			*width = lineWidth
		}
		lineWidth = 0
	}
	return lineWidth + ch.Distance
}

// DrawString lays out s starting at (x, y) using the given font, colour
// and alignment, and emits one DrawSpritePartial per glyph (spec §4.G).
func DrawString(r Renderer, font *Font, x, y int32, s string, lineHeight int32, hasLineHeight bool, maxWidth int32, hasMaxWidth bool, halign Halign, valign Valign, blend int32, alpha Real) {
	if font == nil {
		return
	}
	lh := lineHeightFor(font, lineHeight, hasLineHeight)

	cursorX, cursorY := x, y
	if halign != HalignLeft || valign != ValignTop {
		w, h := GetStringSize(font, s, 0, false, 0, false)
		switch halign {
		case HalignMiddle:
			cursorX = x - w/2
		case HalignRight:
			cursorX = x - w
		}
		switch valign {
		case ValignMiddle:
			cursorY = y - h/2
		case ValignBottom:
			cursorY = y - h
		}
	}
	startX := cursorX

	runes := []rune(s)
	for i := 0; i < len(runes); i++ {
		c := runes[i]
		if c == '#' {
			cursorX = startX
			cursorY += lh
			continue
		}
		var ch Character
		var ok bool
		if c == '\\' && i+1 < len(runes) && runes[i+1] == '#' {
			i++
			ch, ok = font.Char('#')
		} else {
			ch, ok = font.Char(c)
		}
		if !ok {
			continue
		}

		if hasMaxWidth {
			lineWidth := cursorX - startX
			if lineWidth+ch.Width > maxWidth && lineWidth != 0 {
				cursorX = startX
				cursorY += lh
			}
		}

		r.DrawSpritePartial(
			font.Atlas,
			ch.X, ch.Y, ch.Width, ch.Height,
			RealFromInt(int(ch.Offset+cursorX)), RealFromInt(int(cursorY)),
			RealFromInt(1), RealFromInt(1), RealFromInt(0),
			blend, alpha,
		)

		cursorX += ch.Distance
	}
}
