package sched

import (
	"sort"
	"time"
)

type manualEntry struct {
	name string
	at   time.Duration
	seq  uint64
	task Task
}

// Manual is a virtual clock. Time only moves when Advance is called, which
// makes gesture timelines reproducible in tests and replays.
type Manual struct {
	now   time.Duration
	seq   uint64
	tasks map[string]*manualEntry
}

func NewManual() *Manual {
	return &Manual{tasks: make(map[string]*manualEntry)}
}

// Now returns the virtual time elapsed since creation.
func (m *Manual) Now() time.Duration {
	return m.now
}

// Len returns the number of pending tasks.
func (m *Manual) Len() int {
	return len(m.tasks)
}

// Names returns the pending task names in deadline order.
func (m *Manual) Names() []string {
	entries := m.ordered()
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.name
	}
	return names
}

func (m *Manual) After(name string, d time.Duration, task Task) {
	if d < 0 {
		d = 0
	}
	m.seq++
	m.tasks[name] = &manualEntry{name: name, at: m.now + d, seq: m.seq, task: task}
}

func (m *Manual) Cancel(name string) {
	delete(m.tasks, name)
}

func (m *Manual) Pending(name string) bool {
	_, ok := m.tasks[name]
	return ok
}

func (m *Manual) CancelAll() {
	clear(m.tasks)
}

// Advance moves the clock forward by d, running every task that falls due in
// deadline order. Ties run in arming order. Tasks armed by a running task fire
// within the same call if their deadline is reached.
func (m *Manual) Advance(d time.Duration) {
	target := m.now + d

	for {
		next := m.earliest()
		if next == nil || next.at > target {
			break
		}

		delete(m.tasks, next.name)
		m.now = next.at
		next.task()
	}

	m.now = target
}

func (m *Manual) earliest() *manualEntry {
	var next *manualEntry
	for _, e := range m.tasks {
		if next == nil || e.at < next.at || (e.at == next.at && e.seq < next.seq) {
			next = e
		}
	}
	return next
}

func (m *Manual) ordered() []*manualEntry {
	entries := make([]*manualEntry, 0, len(m.tasks))
	for _, e := range m.tasks {
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].at != entries[j].at {
			return entries[i].at < entries[j].at
		}
		return entries[i].seq < entries[j].seq
	})
	return entries
}
