// The fit subpackage computes "natural" font sizes: the largest size
// at which a text fits inside a box, given a font and some size bounds.
//
// Sizes are searched in whole units, and text is measured with the same
// rules that etxt renderers use when drawing (kerning, line advances,
// quantization and word wrapping), so a text that fits here will also
// fit when drawn.
package fit
