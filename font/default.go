package font

import "sync"

import "golang.org/x/image/font/sfnt"
import "golang.org/x/image/font/gofont/goregular"

var defaultFont *sfnt.Font
var defaultFontOnce sync.Once

// Returns the Go Regular font, parsed on first use and shared
// afterwards. Panics if the embedded font data can't be parsed.
func Default() *sfnt.Font {
	defaultFontOnce.Do(func() {
		font, err := sfnt.Parse(goregular.TTF)
		if err != nil { panic("failed to parse goregular: " + err.Error()) }
		defaultFont = font
	})
	return defaultFont
}

// Parses the font at the given path, or returns [Default]() if the
// path is empty.
func Load(path string) (*sfnt.Font, string, error) {
	if path == "" {
		font := Default()
		name, err := GetName(font)
		return font, name, err
	}
	return ParseFromPath(path)
}
