package unitext

var _ Task = (*TickTask)(nil)

// A minimal single-threaded scheduler for one-tick deferred calls.
// Hosts can embed it to implement [Host.ScheduleAfterNextTick]().
//
// Tasks scheduled before a [TickScheduler.Tick]() call run during
// that call, in scheduling order. Tasks scheduled while ticking
// (from within other tasks) wait until the next tick.
//
// The zero value is ready to use. Not safe for concurrent use.
type TickScheduler struct {
	queue []*TickTask
	compactAt int
	ticks uint64
}

// A task created by a [TickScheduler].
type TickTask struct {
	fn func()
	cancelled bool
	done bool
}

// Prevents the task from running. Calling it more than once, or
// after the task has already run, does nothing.
func (self *TickTask) Cancel() {
	if self.done || self.cancelled { return }
	self.cancelled = true
	self.fn = nil
}

// Returns whether the task was cancelled before running.
func (self *TickTask) IsCancelled() bool { return self.cancelled }

// Returns whether the task has already run.
func (self *TickTask) IsDone() bool { return self.done }

// Queues the given function to run on the next tick.
func (self *TickScheduler) Schedule(fn func()) *TickTask {
	if fn == nil { panic("can't schedule a nil function") }
	self.compactIfNeeded()
	task := &TickTask{ fn: fn }
	self.queue = append(self.queue, task)
	return task
}

// Same as [TickScheduler.Schedule](), but returning a [Task] so
// the scheduler can be plugged directly into [Host] implementations.
func (self *TickScheduler) ScheduleAfterNextTick(fn func()) Task {
	return self.Schedule(fn)
}

// Runs all the tasks that were scheduled before this call started
// and returns how many of them ran (cancelled tasks don't count).
func (self *TickScheduler) Tick() int {
	self.ticks += 1
	if len(self.queue) == 0 { return 0 }

	// detach the current queue so tasks scheduled from
	// within tasks go to the next tick
	due := self.queue
	self.queue = nil
	self.compactAt = 0

	var ran int
	for _, task := range due {
		if task.cancelled { continue } // may be cancelled by previous tasks
		fn := task.fn
		task.fn = nil
		task.done = true
		fn()
		ran += 1
	}
	return ran
}

// Returns the number of tasks waiting for a tick, not counting
// cancelled ones.
func (self *TickScheduler) NumPending() int {
	var count int
	for _, task := range self.queue {
		if !task.cancelled { count += 1 }
	}
	return count
}

// Returns the number of ticks processed so far.
func (self *TickScheduler) GetTicks() uint64 {
	return self.ticks
}

// Cancelled tasks are only dropped from the queue lazily. Without
// this, a host that never ticks could accumulate them forever if
// requests keep superseding each other.
func (self *TickScheduler) compactIfNeeded() {
	if len(self.queue) < 32 || len(self.queue) < self.compactAt { return }
	kept := self.queue[ : 0]
	for _, task := range self.queue {
		if !task.cancelled { kept = append(kept, task) }
	}
	for i := len(kept); i < len(self.queue); i++ {
		self.queue[i] = nil
	}
	self.queue = kept
	self.compactAt = len(kept)*2
}
