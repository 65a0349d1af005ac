// The font subpackage contains helpers to load fonts and obtain basic
// information from them (name, family, missing glyphs).
//
// Most programs only need one font. [Default]() returns Go Regular,
// which is always available and is used when no font is configured.
package font
