//go:build !gtxt

package layout

import "github.com/hajimehoshi/ebiten/v2"

var _ ebiten.Game = (*Game)(nil)

// An [ebiten.Game] that ticks a [Host] at the start of every update,
// so boxes are laid out and deferred recalculations run once per
// Ebitengine tick. Game logic goes in the callbacks.
type Game struct {
	Host *Host
	OnUpdate func() error
	OnDraw func(screen *ebiten.Image)
	OnLayout func(outsideWidth, outsideHeight int) (int, int)
}

// Satisfies [ebiten.Game].
func (self *Game) Update() error {
	self.Host.Tick()
	if self.OnUpdate == nil { return nil }
	return self.OnUpdate()
}

// Satisfies [ebiten.Game].
func (self *Game) Draw(screen *ebiten.Image) {
	if self.OnDraw != nil { self.OnDraw(screen) }
}

// Satisfies [ebiten.Game]. Without an OnLayout callback, the
// layout is scaled by the device scale factor.
func (self *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if self.OnLayout != nil { return self.OnLayout(outsideWidth, outsideHeight) }
	scale := ebiten.DeviceScaleFactor()
	return int(float64(outsideWidth)*scale), int(float64(outsideHeight)*scale)
}
