package fit

import "golang.org/x/image/font/sfnt"

import "github.com/tinne26/etxt/fract"

var _ Sizer = (*PaddedKernSizer)(nil)

// A [Sizer] that behaves like the default one, but with a configurable
// horizontal padding that's added to the kern between glyphs. Useful
// for texts drawn with extra letter spacing.
type PaddedKernSizer struct {
	DefaultSizer
	padding fract.Unit
}

// Sets the horizontal kern padding.
func (self *PaddedKernSizer) SetPadding(value fract.Unit) {
	self.padding = value
}

// Returns the horizontal kern padding.
func (self *PaddedKernSizer) GetPadding() fract.Unit {
	return self.padding
}

// Satisfies the [Sizer] interface.
func (self *PaddedKernSizer) Kern(font *sfnt.Font, buffer *sfnt.Buffer, size fract.Unit, g1, g2 sfnt.GlyphIndex) fract.Unit {
	return self.DefaultSizer.Kern(font, buffer, size, g1, g2) + self.padding
}
