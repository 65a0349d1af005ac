package unitext

import "go.uber.org/zap"

// The Synchronizer is the type that keeps the font size of a group of
// widgets consistent. It tracks the managed widgets and a "unified size",
// which is the smallest fitted size among all widgets (clamped to the
// configured [min, max] range). Each widget then gets the unified size
// as its upper bound, so all widgets end up displaying text at the same
// size.
//
// The unified size is only recomputed when explicitly requested through
// [Synchronizer.RecalculateImmediately]() or [Synchronizer.RecalculateBestFit]()
// (or indirectly through [Synchronizer.AddWidget]()). Content changes are
// not detected automatically; after modifying a widget's text or box, you
// must request the recalculation yourself.
//
// Synchronizers are not safe for concurrent use. All methods must be
// called from the same goroutine that drives the [Host].
type Synchronizer struct {
	host Host
	widgets []Widget
	logger *zap.Logger

	pendingTask Task   // may be nil even while pendingID != 0
	pendingID uint64   // 0 when no deferred recalculation is pending
	lastTaskID uint64

	minSize int
	maxSize int
	unifiedSize int
}

// Creates a new [Synchronizer] for the given host and initial widgets.
// The config is validated first, and a [*ConfigError] is returned if
// it's not valid.
//
// Before returning, the synchronizer recalculates the unified size
// for the initial widgets, either immediately or deferred to the next
// tick depending on [Config].DeferInitialRecalculation.
func NewSynchronizer(host Host, config Config, widgets ...Widget) (*Synchronizer, error) {
	if host == nil {
		return nil, &ConfigError{ MinSize: config.MinSize, MaxSize: config.MaxSize, Err: ErrNilHost }
	}
	err := config.Validate()
	if err != nil { return nil, err }

	logger := config.Logger
	if logger == nil { logger = zap.NewNop() }
	sync := &Synchronizer{
		host: host,
		widgets: make([]Widget, 0, len(widgets)),
		logger: logger,
		minSize: config.MinSize,
		maxSize: config.MaxSize,
		unifiedSize: config.MaxSize,
	}
	for _, widget := range widgets {
		sync.appendWidget(widget)
	}

	if config.DeferInitialRecalculation {
		sync.RecalculateBestFit()
	} else {
		sync.RecalculateImmediately()
	}
	return sync, nil
}

// Sets the logger used for diagnostics. Passing nil disables logging.
func (self *Synchronizer) SetLogger(logger *zap.Logger) {
	if logger == nil { logger = zap.NewNop() }
	self.logger = logger
}

// Returns the current unified size. Before the first recalculation
// with widgets, this is the configured max size.
func (self *Synchronizer) GetUnifiedSize() int { return self.unifiedSize }

// Returns the configured minimum size.
func (self *Synchronizer) GetMinSize() int { return self.minSize }

// Returns the configured maximum size.
func (self *Synchronizer) GetMaxSize() int { return self.maxSize }

// Returns the number of managed widgets, duplicates included.
func (self *Synchronizer) NumWidgets() int { return len(self.widgets) }

// Returns whether the given widget is currently managed.
func (self *Synchronizer) HasWidget(widget Widget) bool {
	return containsWidget(self.widgets, widget)
}

// Calls the given function for each managed widget, in insertion
// order, until the function returns false. The managed set must not
// be modified during the iteration.
func (self *Synchronizer) EachWidget(fn func(Widget) bool) {
	for _, widget := range self.widgets {
		if !fn(widget) { return }
	}
}

// Returns whether a deferred recalculation requested through
// [Synchronizer.RecalculateBestFit]() is still waiting for its tick.
func (self *Synchronizer) HasPendingRecalculation() bool {
	return self.pendingID != 0
}

// Adds a widget to the managed set.
//
// The widget's upper bound is set to the current unified size right
// away, and the unified size is then updated to take the new widget
// into account. This happens immediately (a layout pass is forced), but
// it can only make the unified size smaller. If you expect the new widget
// to allow a bigger size, call [Synchronizer.RecalculateBestFit]() after
// this.
//
// Adding a widget that's already managed is a mistake. It's reported as
// a warning on the logger, but the widget is still added again.
func (self *Synchronizer) AddWidget(widget Widget) {
	if widget == nil { panic("can't add a nil widget") }
	self.warnIfDuplicate(widget)

	// pre-seed the widget with the current target size
	setBounds(widget, min(widget.GetLowerBound(), self.unifiedSize), self.unifiedSize)
	self.widgets = append(self.widgets, widget)

	// measure the new widget without waiting for a tick
	self.host.ForceLayout()
	self.updateSizes()
}

// Removes the first occurrence of the given widget from the managed set.
// Returns false if the widget wasn't found.
//
// The unified size is not recalculated; the removed widget keeps its
// current bounds.
func (self *Synchronizer) RemoveWidget(widget Widget) bool {
	index := indexOfWidget(self.widgets, widget)
	if index == -1 { return false }

	copy(self.widgets[index : ], self.widgets[index + 1 : ])
	self.widgets[len(self.widgets) - 1] = nil
	self.widgets = self.widgets[ : len(self.widgets) - 1]
	return true
}

// Removes all widgets from the managed set. The widgets keep their
// current bounds and the unified size is not recalculated. A pending
// deferred recalculation is not cancelled either.
func (self *Synchronizer) ClearManagedWidgets() {
	for i := range self.widgets {
		self.widgets[i] = nil
	}
	self.widgets = self.widgets[ : 0]
}

// Resets the bounds of all managed widgets to the configured [min, max]
// range, forces a layout pass on the host and recalculates the unified
// size from the resulting fitted sizes.
//
// Forcing a layout pass outside the host's normal cadence is expensive.
// Unless you need the new size within the current tick, prefer
// [Synchronizer.RecalculateBestFit]().
//
// With no managed widgets, this does nothing.
func (self *Synchronizer) RecalculateImmediately() {
	if len(self.widgets) == 0 {
		self.logger.Debug("immediate recalculation skipped, no widgets")
		return
	}

	self.resetBounds()
	self.host.ForceLayout()
	self.updateSizes()
}

// Resets the bounds of all managed widgets to the configured [min, max]
// range and schedules the unified size to be recalculated after the next
// host tick, once the host's own layout pass has refreshed the fitted
// sizes.
//
// If a previous deferred recalculation is still pending, it's cancelled
// and replaced by this one. Requests don't queue; only the most recent
// one runs.
func (self *Synchronizer) RecalculateBestFit() {
	if self.pendingID != 0 {
		if self.pendingTask != nil { self.pendingTask.Cancel() }
		self.pendingTask = nil
		self.pendingID = 0
		self.logger.Debug("pending recalculation superseded")
	}

	self.resetBounds()

	self.lastTaskID += 1
	taskID := self.lastTaskID
	self.pendingID = taskID
	task := self.host.ScheduleAfterNextTick(func() {
		// hosts that can't really cancel tasks may still
		// call superseded continuations, ignore them
		if self.pendingID != taskID { return }
		self.updateSizes()
		self.pendingTask = nil
		self.pendingID = 0
	})

	// the host could have run the task synchronously already
	if self.pendingID == taskID { self.pendingTask = task }
}

// Sets every widget's bounds to [min, max] and the unified size to max.
func (self *Synchronizer) resetBounds() {
	if len(self.widgets) == 0 { return }
	for _, widget := range self.widgets {
		setBounds(widget, self.minSize, self.maxSize)
	}
	self.unifiedSize = self.maxSize
}

// Computes the unified size from the widgets' fitted sizes and applies
// it as an upper bound for all of them. If the size didn't change, no
// widget is modified.
//
// Preconditions: fitted sizes must be valid (a layout pass must have
// happened after the last bound changes).
func (self *Synchronizer) updateSizes() {
	if len(self.widgets) == 0 {
		self.logger.Debug("size update skipped, no widgets")
		return
	}

	size := self.smallestFittedSize()
	if size == self.unifiedSize {
		self.logger.Debug("unified size unchanged", zap.Int("size", size))
		return
	}

	for _, widget := range self.widgets {
		setBounds(widget, min(widget.GetLowerBound(), size), size)
	}
	self.logger.Debug("unified size updated",
		zap.Int("from", self.unifiedSize),
		zap.Int("to", size),
		zap.Int("widgets", len(self.widgets)))
	self.unifiedSize = size
}

// Preconditions: len(self.widgets) > 0.
func (self *Synchronizer) smallestFittedSize() int {
	smallest := self.maxSize
	for _, widget := range self.widgets {
		size := clamp(widget.GetFittedSize(), self.minSize, self.maxSize)
		if size < smallest { smallest = size }
	}
	return smallest
}

func (self *Synchronizer) appendWidget(widget Widget) {
	if widget == nil { panic("can't add a nil widget") }
	self.warnIfDuplicate(widget)
	self.widgets = append(self.widgets, widget)
}

// TODO: decide whether duplicates should be rejected instead. Right now
//       they are kept, which only causes redundant (harmless) writes.
func (self *Synchronizer) warnIfDuplicate(widget Widget) {
	if !containsWidget(self.widgets, widget) { return }
	self.logger.Warn("adding duplicate widget to synchronizer, you should avoid this",
		zap.String("widget", WidgetName(widget)),
		zap.Int("managed", len(self.widgets)))
}
