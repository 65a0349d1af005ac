package fit

import "strconv"

import "golang.org/x/image/font/sfnt"
import "golang.org/x/image/math/fixed"

import "github.com/tinne26/etxt/fract"

var _ Sizer = (*DefaultSizer)(nil)

// The default [Sizer], based directly on the font metrics.
type DefaultSizer struct {
	cachedLineHeight fract.Unit
}

// Satisfies the [Sizer] interface.
func (self *DefaultSizer) LineHeight(*sfnt.Font, *sfnt.Buffer, fract.Unit) fract.Unit {
	return self.cachedLineHeight
}

// Satisfies the [Sizer] interface.
func (self *DefaultSizer) LineAdvance(*sfnt.Font, *sfnt.Buffer, fract.Unit) fract.Unit {
	return self.cachedLineHeight
}

// Satisfies the [Sizer] interface.
func (self *DefaultSizer) GlyphAdvance(font *sfnt.Font, buffer *sfnt.Buffer, size fract.Unit, g sfnt.GlyphIndex) fract.Unit {
	advance, err := font.GlyphAdvance(buffer, g, fixed.Int26_6(size), hintingNone)
	if err == nil { return fract.Unit(advance) }
	panic("font.GlyphAdvance(index = " + strconv.Itoa(int(g)) + ") error: " + err.Error())
}

// Satisfies the [Sizer] interface.
func (self *DefaultSizer) Kern(font *sfnt.Font, buffer *sfnt.Buffer, size fract.Unit, g1, g2 sfnt.GlyphIndex) fract.Unit {
	kern, err := font.Kern(buffer, g1, g2, fixed.Int26_6(size), hintingNone)
	if err == nil { return fract.Unit(kern) }
	if err == sfnt.ErrNotFound { return 0 }

	msg := "font.Kern failed for glyphs with indices "
	msg += strconv.Itoa(int(g1)) + " and "
	msg += strconv.Itoa(int(g2)) + ": " + err.Error()
	panic(msg)
}

// Satisfies the [Sizer] interface.
func (self *DefaultSizer) NotifyChange(font *sfnt.Font, buffer *sfnt.Buffer, size fract.Unit) {
	if font == nil || size == 0 {
		self.cachedLineHeight = 0
		return
	}

	metrics, err := font.Metrics(buffer, fixed.Int26_6(size), hintingNone)
	if err != nil { panic("font.Metrics error: " + err.Error()) }
	self.cachedLineHeight = fract.Unit(metrics.Height)
}
