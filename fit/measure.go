package fit

import "math"
import "unicode/utf8"

import "golang.org/x/image/font/sfnt"

import "github.com/tinne26/etxt/fract"

const noWidthLimit = fract.Unit(math.MaxInt32 >> 1)

// Measures texts with the same rules used by etxt renderers when
// drawing them. Measurers keep some internal state (sizer caches and
// a font buffer), so they are not safe for concurrent use.
type Measurer struct {
	sizer Sizer
	buffer sfnt.Buffer
	font *sfnt.Font
	size fract.Unit
	horzQuant fract.Unit
	vertQuant fract.Unit
}

// Creates a measurer with a [DefaultSizer] and full pixel quantization.
func NewMeasurer() *Measurer {
	return &Measurer{
		sizer: &DefaultSizer{},
		horzQuant: 64,
		vertQuant: 64,
	}
}

// Sets the sizer used to obtain font metrics. Passing nil
// restores a [DefaultSizer].
func (self *Measurer) SetSizer(sizer Sizer) {
	if sizer == nil { sizer = &DefaultSizer{} }
	self.sizer = sizer
	self.font = nil // forces a NotifyChange() on next use
}

// Returns the current sizer.
func (self *Measurer) GetSizer() Sizer { return self.sizer }

// Sets the horizontal and vertical quantization steps, in 1/64ths
// of a pixel. 64 means full pixel quantization (the default), 1
// means no quantization. Values outside [1, 64] will panic.
func (self *Measurer) SetQuantization(horz, vert fract.Unit) {
	if horz < 1 || horz > 64 { panic("horizontal quantization must be in [1, 64]") }
	if vert < 1 || vert > 64 { panic("vertical quantization must be in [1, 64]") }
	self.horzQuant = horz
	self.vertQuant = vert
}

// Returns the horizontal and vertical quantization steps.
func (self *Measurer) GetQuantization() (horz, vert fract.Unit) {
	return self.horzQuant, self.vertQuant
}

// Returns the bounding rect of the given text drawn with the given
// font and size. The rect origin is always (0, 0).
//
// Line breaks are respected, but no wrapping is applied.
func (self *Measurer) Measure(font *sfnt.Font, text string, size int) fract.Rect {
	return self.measure(font, text, size, noWidthLimit)
}

// Like [Measurer.Measure](), but wrapping lines at spaces so they
// don't exceed the given width limit. If the first word of a line
// doesn't fit on its own, as much of it as possible is kept on that
// line (at least one glyph).
func (self *Measurer) MeasureWithWrap(font *sfnt.Font, text string, size int, widthLimit int) fract.Rect {
	return self.measure(font, text, size, fract.FromInt(widthLimit))
}

func (self *Measurer) measure(font *sfnt.Font, text string, size int, widthLimit fract.Unit) fract.Rect {
	self.notifyChange(font, size)
	if text == "" { return fract.Rect{} }

	var width, height fract.Unit
	var hasGlyphs bool
	var index int
	for {
		lineWidth, next, runes, explicitBreak := self.measureLine(text, index, widthLimit)
		if runes > 0 { hasGlyphs = true }
		if lineWidth > width { width = lineWidth }
		if next >= len(text) && !explicitBreak { break }

		advance := self.sizer.LineAdvance(self.font, &self.buffer, self.size)
		height = (height + advance).QuantizeUp(self.vertQuant)
		index = next
		if index >= len(text) { break }
	}

	// line breaks alone don't add a line height
	if hasGlyphs {
		lineHeight := self.sizer.LineHeight(self.font, &self.buffer, self.size)
		height = (height + lineHeight).QuantizeUp(self.vertQuant)
	}
	return fract.UnitsToRect(0, 0, width, height)
}

// Measures a single line starting at text[start:]. Returns the line width
// (quantized), the index of the next line start, the number of runes in
// the line (excluding line breaks) and whether the line ended due to an
// explicit '\n'.
func (self *Measurer) measureLine(text string, start int, widthLimit fract.Unit) (fract.Unit, int, int, bool) {
	var x, safeWidth fract.Unit
	var runeCount int
	var prevGlyphIndex sfnt.GlyphIndex
	safeNext := -1

	for offset, codePoint := range text[start : ] {
		index := start + offset
		if codePoint == '\n' {
			return x.QuantizeUp(self.horzQuant), index + 1, runeCount, true
		}

		currGlyphIndex := self.glyphIndex(codePoint)

		// apply kerning unless at line start
		memoX := x
		if runeCount > 0 {
			x += self.sizer.Kern(self.font, &self.buffer, self.size, prevGlyphIndex, currGlyphIndex)
			x  = x.QuantizeUp(self.horzQuant)
		}
		x += self.sizer.GlyphAdvance(self.font, &self.buffer, self.size, currGlyphIndex)
		runeCount += 1

		next := index + utf8.RuneLen(codePoint)
		if codePoint == ' ' {
			safeWidth = memoX
			safeNext  = next
		}

		if x.QuantizeUp(self.horzQuant) > widthLimit {
			if safeNext != -1 { // break at last space
				return safeWidth.QuantizeUp(self.horzQuant), safeNext, runeCount, false
			}
			if runeCount == 1 { // at least one glyph per line
				explicitBreak := (next < len(text) && text[next] == '\n')
				if explicitBreak { next += 1 }
				return x.QuantizeUp(self.horzQuant), next, 1, explicitBreak
			}
			return memoX.QuantizeUp(self.horzQuant), index, runeCount - 1, false
		}
		prevGlyphIndex = currGlyphIndex
	}
	return x.QuantizeUp(self.horzQuant), len(text), runeCount, false
}

func (self *Measurer) glyphIndex(codePoint rune) sfnt.GlyphIndex {
	index, err := self.font.GlyphIndex(&self.buffer, codePoint)
	if err != nil {
		panic("font.GlyphIndex(" + string(codePoint) + ") error: " + err.Error())
	}
	return index // missing glyphs map to index 0 (notdef)
}

func (self *Measurer) notifyChange(font *sfnt.Font, size int) {
	if font == nil { panic("can't measure with a nil font") }
	if size < 1 { panic("can't measure with size < 1") }
	unitSize := fract.FromInt(size)
	if font == self.font && unitSize == self.size { return }
	self.font = font
	self.size = unitSize
	self.sizer.NotifyChange(font, &self.buffer, unitSize)
}
