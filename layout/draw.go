package layout

import "github.com/tinne26/etxt"

// Draws the box text at its fitted size, with (x, y) as the top-left
// corner of the box. Wrapped boxes wrap at the box width.
//
// The renderer's font, size and align are modified; its color and
// cache are used as they are. Boxes that have never been laid out
// are not drawn.
func (self *Box) Draw(renderer *etxt.Renderer, target etxt.Target, x, y int) {
	if self.fitted < 1 || self.text == "" { return }
	request := self.FitRequest()
	renderer.SetFont(request.Font)
	renderer.SetSize(float64(self.fitted))
	renderer.SetAlign(etxt.Top | etxt.Left)
	if self.wrap {
		renderer.DrawWithWrap(target, self.text, x, y, self.width)
	} else {
		renderer.Draw(target, self.text, x, y)
	}
}
