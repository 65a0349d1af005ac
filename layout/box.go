package layout

import "golang.org/x/image/font/sfnt"
import "github.com/google/uuid"

import "github.com/tinne26/unitext"
import "github.com/tinne26/unitext/fit"
import "github.com/tinne26/unitext/font"

var _ unitext.Widget = (*Box)(nil)
var _ unitext.Named  = (*Box)(nil)

// Default size bounds for new boxes.
const (
	DefaultLowerBound = 1
	DefaultUpperBound = 256
)

// A text box that fits its text to its width and height, choosing the
// largest font size within its bounds. The fitted size is recomputed
// by the [Host] during layout passes, only when something changed.
//
// Boxes implement [unitext.Widget].
type Box struct {
	name string
	font *sfnt.Font
	text string
	width int
	height int
	wrap bool
	lower int
	upper int
	fitted int
	dirty bool
}

// Creates a new box. If the name is empty, a random one is assigned.
// A nil font means [font.Default]().
func NewBox(name string, face *sfnt.Font, text string, width, height int) *Box {
	if name == "" { name = uuid.NewString() }
	return &Box{
		name: name,
		font: face,
		text: text,
		width: width,
		height: height,
		lower: DefaultLowerBound,
		upper: DefaultUpperBound,
		dirty: true,
	}
}

// Returns the box name. Satisfies [unitext.Named].
func (self *Box) Name() string { return self.name }

func (self *Box) GetText() string { return self.text }
func (self *Box) SetText(text string) {
	if text == self.text { return }
	self.text = text
	self.dirty = true
}

func (self *Box) GetFont() *sfnt.Font { return self.font }
func (self *Box) SetFont(face *sfnt.Font) {
	if face == self.font { return }
	self.font = face
	self.dirty = true
}

// Returns the box width and height.
func (self *Box) GetSize() (int, int) { return self.width, self.height }

// Sets the box width and height.
func (self *Box) SetSize(width, height int) {
	if width == self.width && height == self.height { return }
	self.width, self.height = width, height
	self.dirty = true
}

func (self *Box) GetWrap() bool { return self.wrap }
func (self *Box) SetWrap(wrap bool) {
	if wrap == self.wrap { return }
	self.wrap = wrap
	self.dirty = true
}

// Satisfies [unitext.Widget].
func (self *Box) GetLowerBound() int { return self.lower }

// Satisfies [unitext.Widget].
func (self *Box) SetLowerBound(size int) {
	if size == self.lower { return }
	self.lower = size
	self.dirty = true
}

// Satisfies [unitext.Widget].
func (self *Box) GetUpperBound() int { return self.upper }

// Satisfies [unitext.Widget].
func (self *Box) SetUpperBound(size int) {
	if size == self.upper { return }
	self.upper = size
	self.dirty = true
}

// Returns the size computed during the last layout pass. After
// modifying the box, this is stale until the next layout pass.
// Before the first layout pass, it returns 0.
func (self *Box) GetFittedSize() int { return self.fitted }

// Returns whether the box was modified since its last layout pass.
func (self *Box) NeedsLayout() bool { return self.dirty }

// Returns the fitting request for the box's current state. Nil
// fonts are replaced by [font.Default]().
func (self *Box) FitRequest() fit.Request {
	face := self.font
	if face == nil { face = font.Default() }
	return fit.Request{
		Font: face,
		Text: self.text,
		Width: self.width,
		Height: self.height,
		Lower: self.lower,
		Upper: self.upper,
		Wrap: self.wrap,
	}
}

func (self *Box) layout(fitter *fit.Fitter) {
	self.fitted = fitter.NaturalSize(self.FitRequest())
	self.dirty = false
}
