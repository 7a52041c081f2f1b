package player

import (
	"fmt"
	"sync"
	"time"

	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/touchmpv/touchmpv/util"
)

// Call is one command received by a Simulated engine.
type Call struct {
	Method string
	Arg    interface{}
}

func (c Call) String() string {
	if c.Arg == nil {
		return c.Method
	}
	return fmt.Sprintf("%s(%v)", c.Method, c.Arg)
}

const (
	MethodSetPaused         = "SetPaused"
	MethodSetSpeed          = "SetSpeed"
	MethodSeekAbsoluteExact = "SeekAbsoluteExact"
	MethodSeekRelativeExact = "SeekRelativeExact"
	MethodCycleAudio        = "CycleAudio"
	MethodCycleSubtitles    = "CycleSubtitles"
)

// Media describes what a Simulated engine pretends to play.
type Media struct {
	Title    string
	Path     string
	Duration float64
	Audio    int
	Subs     int
}

// Simulated is an in-memory engine. Position advances with its clock while unpaused.
type Simulated struct {
	mu    sync.Mutex
	clock func() time.Time
	media Media

	// position at since, advancing at speed unless paused
	base   float64
	since  time.Time
	paused bool
	speed  float64

	aid, sid int

	unavailable map[string]bool
	calls       []Call
}

// NewSimulated starts paused at position 0. clock defaults to time.Now.
func NewSimulated(clock func() time.Time, media Media) *Simulated {
	if clock == nil {
		clock = time.Now
	}

	return &Simulated{
		clock:       clock,
		media:       media,
		since:       clock(),
		paused:      true,
		speed:       1,
		unavailable: make(map[string]bool),
	}
}

// SetUnavailable makes a property read return None, as mpv does before media loads.
// Names are the mpv property names: time-pos, duration, pause, speed, media-title, path.
func (s *Simulated) SetUnavailable(property string, unavailable bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.unavailable[property] = unavailable
}

// Calls returns every command received so far, optionally only those of the given methods.
func (s *Simulated) Calls(methods ...string) []Call {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(methods) == 0 {
		return append([]Call(nil), s.calls...)
	}

	return lo.Filter(s.calls, func(c Call, _ int) bool {
		return lo.Contains(methods, c.Method)
	})
}

// ResetCalls forgets the recorded commands.
func (s *Simulated) ResetCalls() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = nil
}

// Tracks returns the selected audio and subtitle track numbers.
func (s *Simulated) Tracks() (aid, sid int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.aid, s.sid
}

func (s *Simulated) record(method string, arg interface{}) {
	s.calls = append(s.calls, Call{Method: method, Arg: arg})
}

// position must be called with mu held.
func (s *Simulated) position() float64 {
	pos := s.base
	if !s.paused {
		pos += s.clock().Sub(s.since).Seconds() * s.speed
	}
	return util.Clamp(pos, 0, s.media.Duration)
}

// rebase freezes the current position so the next change starts from it.
func (s *Simulated) rebase(pos float64) {
	s.base = util.Clamp(pos, 0, s.media.Duration)
	s.since = s.clock()
}

func read[T any](s *Simulated, property string, get func() T) mo.Option[T] {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.unavailable[property] {
		return mo.None[T]()
	}
	return mo.Some(get())
}

func (s *Simulated) Position() mo.Option[float64] {
	return read(s, "time-pos", s.position)
}

func (s *Simulated) Duration() mo.Option[float64] {
	return read(s, "duration", func() float64 { return s.media.Duration })
}

func (s *Simulated) Paused() mo.Option[bool] {
	return read(s, "pause", func() bool { return s.paused })
}

func (s *Simulated) Speed() mo.Option[float64] {
	return read(s, "speed", func() float64 { return s.speed })
}

func (s *Simulated) MediaTitle() mo.Option[string] {
	return read(s, "media-title", func() string { return s.media.Title })
}

func (s *Simulated) Path() mo.Option[string] {
	return read(s, "path", func() string { return s.media.Path })
}

func (s *Simulated) SetPaused(paused bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.record(MethodSetPaused, paused)
	s.rebase(s.position())
	s.paused = paused
}

func (s *Simulated) SetSpeed(speed float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.record(MethodSetSpeed, speed)
	s.rebase(s.position())
	s.speed = speed
}

func (s *Simulated) SeekAbsoluteExact(seconds float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.record(MethodSeekAbsoluteExact, seconds)
	s.rebase(seconds)
}

func (s *Simulated) SeekRelativeExact(delta float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.record(MethodSeekRelativeExact, delta)
	s.rebase(s.position() + delta)
}

func (s *Simulated) CycleAudio() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.record(MethodCycleAudio, nil)
	s.aid = cycle(s.aid, s.media.Audio)
}

func (s *Simulated) CycleSubtitles() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.record(MethodCycleSubtitles, nil)
	s.sid = cycle(s.sid, s.media.Subs)
}

// cycle walks 0 (off), 1..n and wraps, like mpv's cycle on aid/sid.
func cycle(current, n int) int {
	if n <= 0 {
		return 0
	}
	return (current + 1) % (n + 1)
}
