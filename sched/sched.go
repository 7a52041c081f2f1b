// Package sched provides named, cancellable delayed tasks.
//
// Tasks run on the caller's control thread: the Manual scheduler runs them
// from Advance, the Tea scheduler from the Bubble Tea update loop. Neither
// needs locks because nothing else mutates the state a task touches.
package sched

import "time"

// Task is a delayed callback.
type Task func()

// Scheduler arms and cancels tasks by name.
type Scheduler interface {
	// After arms task to run once d has elapsed. A pending task with the same name is replaced.
	After(name string, d time.Duration, task Task)

	// Cancel drops the pending task of that name. Cancelling a fired or unknown task is a no-op.
	Cancel(name string)

	// Pending reports whether a task of that name is armed.
	Pending(name string) bool

	// CancelAll drops every pending task.
	CancelAll()
}
