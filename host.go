package unitext

// A Host is the UI layer that owns the widgets managed by a
// [Synchronizer]. It's in charge of running layout passes (which
// is when widgets compute their fitted sizes) and of its own
// update cadence, measured in ticks.
//
// For headless programs and tests, see [TickScheduler] and the
// layout subpackage.
type Host interface {
	// Runs a layout pass right now, so every widget's fitted
	// size becomes valid for its current bounds. Potentially
	// expensive.
	ForceLayout()

	// Schedules the given function to run after the next layout
	// pass that the host performs on its own cadence. The returned
	// task can be used to cancel the call before it happens.
	ScheduleAfterNextTick(func()) Task
}

// Handle for a deferred call scheduled through a [Host].
//
// Cancel must be safe to call multiple times, and also after the
// task has already run (in which case it does nothing).
type Task interface {
	Cancel()
}
