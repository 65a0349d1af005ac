package layout

import "go.uber.org/zap"

import "github.com/tinne26/unitext"
import "github.com/tinne26/unitext/fit"

var _ unitext.Host = (*Host)(nil)

// Cache capacity used by [NewHost]() when no fitter is given.
const DefaultCacheEntries = 256

// A headless [unitext.Host] for [Box] widgets.
//
// Each [Host.Tick]() is one host iteration: first a layout pass refits
// all the boxes that changed, then the tasks scheduled for this tick
// run. Tasks scheduled while ticking wait until the next tick.
//
// Not safe for concurrent use.
type Host struct {
	fitter *fit.Fitter
	boxes []*Box
	scheduler unitext.TickScheduler
	logger *zap.Logger
	layoutPasses int
}

// Creates a new host using the given fitter, or a fitter with
// [DefaultCacheEntries] if nil.
func NewHost(fitter *fit.Fitter) *Host {
	if fitter == nil {
		var err error
		fitter, err = fit.NewFitter(DefaultCacheEntries)
		if err != nil { panic(err) } // unreachable with a positive size
	}
	return &Host{ fitter: fitter, logger: zap.NewNop() }
}

// Sets the logger used for diagnostics. Passing nil disables logging.
func (self *Host) SetLogger(logger *zap.Logger) {
	if logger == nil { logger = zap.NewNop() }
	self.logger = logger
}

// Returns the host's fitter.
func (self *Host) Fitter() *fit.Fitter { return self.fitter }

// Adds the box to the host so it's laid out on future passes.
// Attaching an already attached box does nothing.
func (self *Host) Attach(box *Box) {
	if box == nil { panic("can't attach a nil box") }
	for _, attached := range self.boxes {
		if attached == box { return }
	}
	self.boxes = append(self.boxes, box)
	box.dirty = true
}

// Removes the box from the host. Returns false if it wasn't attached.
func (self *Host) Detach(box *Box) bool {
	for i, attached := range self.boxes {
		if attached != box { continue }
		copy(self.boxes[i : ], self.boxes[i + 1 : ])
		self.boxes[len(self.boxes) - 1] = nil
		self.boxes = self.boxes[ : len(self.boxes) - 1]
		return true
	}
	return false
}

// Returns the attached boxes, in attachment order. The slice
// must not be modified.
func (self *Host) Boxes() []*Box { return self.boxes }

// Runs a layout pass right away. Satisfies [unitext.Host].
func (self *Host) ForceLayout() {
	self.layoutPass()
}

// Schedules the function to run after the next tick's layout pass.
// Satisfies [unitext.Host].
func (self *Host) ScheduleAfterNextTick(fn func()) unitext.Task {
	return self.scheduler.Schedule(fn)
}

// Runs one host iteration: a layout pass followed by the tasks
// scheduled before this call. Returns the number of tasks that ran.
func (self *Host) Tick() int {
	self.layoutPass()
	return self.scheduler.Tick()
}

// Returns the number of deferred tasks waiting for a tick.
func (self *Host) NumPendingTasks() int { return self.scheduler.NumPending() }

// Returns the number of layout passes run so far, forced or not.
func (self *Host) NumLayoutPasses() int { return self.layoutPasses }

func (self *Host) layoutPass() {
	self.layoutPasses += 1
	var refitted int
	for _, box := range self.boxes {
		if !box.dirty { continue }
		box.layout(self.fitter)
		refitted += 1
	}
	if refitted > 0 {
		self.logger.Debug("layout pass",
			zap.Int("pass", self.layoutPasses),
			zap.Int("refitted", refitted),
			zap.Int("boxes", len(self.boxes)))
	}
}
