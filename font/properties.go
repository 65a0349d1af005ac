package font

import "sync/atomic"
import "errors"

import "golang.org/x/image/font/sfnt"

var ErrNotFound = errors.New("font property not found or empty")

// Shared buffer for property lookups. When it's already in use,
// lookups fall back to a nil buffer, which sfnt handles by allocating.
var sharedBuffer sfnt.Buffer
var sharedBufferInUse atomic.Bool

func acquireBuffer() *sfnt.Buffer {
	if !sharedBufferInUse.CompareAndSwap(false, true) { return nil }
	return &sharedBuffer
}

func releaseBuffer(buffer *sfnt.Buffer) {
	if buffer != nil { sharedBufferInUse.Store(false) }
}

// Returns the requested name property of the given font. If the
// property is missing, [ErrNotFound] is returned.
func GetProperty(font *sfnt.Font, property sfnt.NameID) (string, error) {
	buffer := acquireBuffer()
	defer releaseBuffer(buffer)
	str, err := font.Name(buffer, property)
	if err == sfnt.ErrNotFound { return "", ErrNotFound }
	return str, err
}

// Returns the full name of the given font.
func GetName(font *sfnt.Font) (string, error) {
	return GetProperty(font, sfnt.NameIDFull)
}

// Returns the family name of the given font.
func GetFamily(font *sfnt.Font) (string, error) {
	return GetProperty(font, sfnt.NameIDFamily)
}

// Returns the runes in the given text that the font can't represent,
// in order of appearance and without duplicates. Line breaks are never
// reported.
//
// When fonts are configurable, checking this before fitting any text
// avoids silently measuring notdef boxes.
func GetMissingRunes(font *sfnt.Font, text string) ([]rune, error) {
	buffer := acquireBuffer()
	defer releaseBuffer(buffer)

	var missing []rune
	seen := make(map[rune]struct{})
	for _, codePoint := range text {
		if codePoint == '\n' { continue }
		if _, found := seen[codePoint]; found { continue }
		seen[codePoint] = struct{}{}

		index, err := font.GlyphIndex(buffer, codePoint)
		if err != nil { return missing, err }
		if index == 0 { missing = append(missing, codePoint) }
	}
	return missing, nil
}
