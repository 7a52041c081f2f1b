package sched

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FiredMsg is delivered to the Bubble Tea program when a tick armed by Tea elapses.
// Hand it back to Tea.Fire.
type FiredMsg struct {
	name string
	gen  uint64
}

type teaEntry struct {
	gen  uint64
	task Task
}

// Tea schedules tasks as Bubble Tea ticks. Each After call yields a tea.Cmd
// that the host collects with Flush and returns from Update; the resulting
// FiredMsg comes back through Update, so tasks always run on the program's
// update goroutine. Cancellation forgets the generation, which turns the
// eventual tick into a no-op.
type Tea struct {
	gen     uint64
	tasks   map[string]teaEntry
	pending []tea.Cmd
}

func NewTea() *Tea {
	return &Tea{tasks: make(map[string]teaEntry)}
}

func (t *Tea) After(name string, d time.Duration, task Task) {
	t.gen++
	gen := t.gen
	t.tasks[name] = teaEntry{gen: gen, task: task}
	t.pending = append(t.pending, tea.Tick(d, func(time.Time) tea.Msg {
		return FiredMsg{name: name, gen: gen}
	}))
}

func (t *Tea) Cancel(name string) {
	delete(t.tasks, name)
}

func (t *Tea) Pending(name string) bool {
	_, ok := t.tasks[name]
	return ok
}

func (t *Tea) CancelAll() {
	clear(t.tasks)
	t.pending = nil
}

// Flush returns the ticks armed since the previous call, batched into one command.
func (t *Tea) Flush() tea.Cmd {
	if len(t.pending) == 0 {
		return nil
	}
	cmd := tea.Batch(t.pending...)
	t.pending = nil
	return cmd
}

// Fire runs the task a tick refers to, unless it was cancelled or re-armed
// since. It reports whether a task ran.
func (t *Tea) Fire(msg FiredMsg) bool {
	entry, ok := t.tasks[msg.name]
	if !ok || entry.gen != msg.gen {
		return false
	}

	delete(t.tasks, msg.name)
	entry.task()
	return true
}
