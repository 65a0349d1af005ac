package fit

import "golang.org/x/image/font"
import "golang.org/x/image/font/sfnt"

import "github.com/tinne26/etxt/fract"

const hintingNone = font.HintingNone

// Sizers provide the font metrics used while measuring: line height,
// line advance, glyph advances and kerning.
//
// The given font and size must always be consistent with the latest
// NotifyChange() call.
type Sizer interface {
	// Returns the height of a single line of text.
	LineHeight(*sfnt.Font, *sfnt.Buffer, fract.Unit) fract.Unit

	// Returns the vertical advance applied for each line break.
	LineAdvance(*sfnt.Font, *sfnt.Buffer, fract.Unit) fract.Unit

	// Returns the horizontal advance of the given glyph.
	GlyphAdvance(*sfnt.Font, *sfnt.Buffer, fract.Unit, sfnt.GlyphIndex) fract.Unit

	// Returns the kerning between two consecutive glyphs.
	Kern(*sfnt.Font, *sfnt.Buffer, fract.Unit, sfnt.GlyphIndex, sfnt.GlyphIndex) fract.Unit

	// Must be called whenever the active font or size change, so the
	// sizer can cache any values that only depend on them.
	NotifyChange(*sfnt.Font, *sfnt.Buffer, fract.Unit)
}
