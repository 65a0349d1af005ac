package fit

import "testing"

import "golang.org/x/image/font/sfnt"
import "golang.org/x/image/font/gofont/goregular"

import "github.com/tinne26/etxt/fract"

func testFont(t *testing.T) *sfnt.Font {
	t.Helper()
	font, err := sfnt.Parse(goregular.TTF)
	if err != nil { t.Fatalf("failed to parse test font: %s", err) }
	return font
}

func TestMeasureBasics(t *testing.T) {
	font := testFont(t)
	measurer := NewMeasurer()

	rect := measurer.Measure(font, "", 16)
	if !rect.Empty() { t.Fatalf("expected empty rect, got %s", rect) }

	one := measurer.Measure(font, "Hello", 16)
	if one.Width() <= 0 || one.Height() <= 0 { t.Fatalf("expected non-empty rect, got %s", one) }
	if !one.Width().IsWhole() || !one.Height().IsWhole() {
		t.Fatalf("expected whole pixel values with default quantization, got %s", one)
	}

	bigger := measurer.Measure(font, "Hello", 32)
	if bigger.Width() <= one.Width() || bigger.Height() <= one.Height() {
		t.Fatalf("expected rect to grow with size (%s at 16, %s at 32)", one, bigger)
	}

	// line breaks add line advances
	two := measurer.Measure(font, "Hello\nHello", 16)
	sizer := measurer.GetSizer()
	advance := sizer.LineAdvance(font, &measurer.buffer, fract.FromInt(16)).QuantizeUp(64)
	if two.Width() != one.Width() { t.Fatalf("expected width %d, got %d", one.Width(), two.Width()) }
	if two.Height() != one.Height() + advance {
		t.Fatalf("expected height %d, got %d", one.Height() + advance, two.Height())
	}

	// line breaks alone don't add any line height
	breaks := measurer.Measure(font, "\n\n", 16)
	if breaks.Width() != 0 || breaks.Height() != advance*2 {
		t.Fatalf("expected rect (0, 0, 0, %d), got %s", advance*2, breaks)
	}
}

func TestMeasureWithWrap(t *testing.T) {
	font := testFont(t)
	measurer := NewMeasurer()

	const size = 16
	full := measurer.Measure(font, "hello world", size)
	split := measurer.Measure(font, "hello\nworld", size)
	limit := full.Width().ToIntCeil() - 1

	wrapped := measurer.MeasureWithWrap(font, "hello world", size, limit)
	if wrapped != split { t.Fatalf("expected %s, got %s", split, wrapped) }

	// enough room, no wrapping
	unwrapped := measurer.MeasureWithWrap(font, "hello world", size, full.Width().ToIntCeil())
	if unwrapped != full { t.Fatalf("expected %s, got %s", full, unwrapped) }

	// first glyph of each line is always kept
	forced := measurer.MeasureWithWrap(font, "abc", size, 1)
	expected := measurer.Measure(font, "a\nb\nc", size)
	if forced.Height() != expected.Height() {
		t.Fatalf("expected height %d, got %d", expected.Height(), forced.Height())
	}

	// partial words are kept on the line when no space is available
	word := measurer.Measure(font, "wwww", size)
	half := measurer.Measure(font, "ww", size)
	partial := measurer.MeasureWithWrap(font, "wwww", size, half.Width().ToIntCeil())
	if partial.Width() > half.Width() || partial.Height() <= word.Height() {
		t.Fatalf("expected a wrapped word no wider than %d, got %s", half.Width(), partial)
	}
}

func TestMeasureQuantization(t *testing.T) {
	font := testFont(t)
	measurer := NewMeasurer()
	measurer.SetQuantization(1, 1)
	horz, vert := measurer.GetQuantization()
	if horz != 1 || vert != 1 { t.Fatalf("expected quantization (1, 1), got (%d, %d)", horz, vert) }
	rect := measurer.Measure(font, "quantization", 13)
	if rect.Width() <= 0 { t.Fatalf("expected positive width, got %s", rect) }

	for _, values := range [][2]fract.Unit{{0, 64}, {64, 0}, {65, 1}} {
		if doesNotPanic(func() { measurer.SetQuantization(values[0], values[1]) }) {
			t.Fatalf("expected panic for quantization (%d, %d)", values[0], values[1])
		}
	}
}

func TestMeasurePaddedKern(t *testing.T) {
	font := testFont(t)
	measurer := NewMeasurer()
	plain := measurer.Measure(font, "spacing", 16)

	sizer := &PaddedKernSizer{}
	sizer.SetPadding(fract.FromInt(2))
	if sizer.GetPadding() != fract.FromInt(2) { t.Fatalf("unexpected padding %d", sizer.GetPadding()) }
	measurer.SetSizer(sizer)
	padded := measurer.Measure(font, "spacing", 16)

	// six gaps between seven glyphs
	if padded.Width() != plain.Width() + fract.FromInt(12) {
		t.Fatalf("expected width %d, got %d", plain.Width() + fract.FromInt(12), padded.Width())
	}
	if padded.Height() != plain.Height() {
		t.Fatalf("expected height %d, got %d", plain.Height(), padded.Height())
	}
}

func TestMeasureInvalidArgs(t *testing.T) {
	measurer := NewMeasurer()
	if doesNotPanic(func() { measurer.Measure(nil, "text", 12) }) {
		t.Fatal("expected panic for nil font")
	}
	font := testFont(t)
	if doesNotPanic(func() { measurer.Measure(font, "text", 0) }) {
		t.Fatal("expected panic for zero size")
	}
}

func doesNotPanic(function func()) (didNotPanic bool) {
	didNotPanic = true
	defer func() { didNotPanic = (recover() == nil) }()
	function()
	return
}
