// Package overlay tracks the transient HUD elements and their auto-hide timers.
package overlay

import (
	"time"

	"github.com/touchmpv/touchmpv/log"
	"github.com/touchmpv/touchmpv/sched"
)

// Element names one independently timed piece of the HUD.
type Element int

const (
	// Controls is the progress bar with elapsed and total time.
	Controls Element = iota
	// Feedback is the short toast such as "2X" or "+5".
	Feedback
	// VideoInfo is the banner with the media title.
	VideoInfo
)

// Elements lists every element in render order.
var Elements = []Element{Controls, Feedback, VideoInfo}

func (e Element) String() string {
	switch e {
	case Controls:
		return "controls"
	case Feedback:
		return "feedback"
	case VideoInfo:
		return "video-info"
	default:
		return "unknown"
	}
}

// suppressible elements drop auto-hide requests while the user is interacting.
func (e Element) suppressible() bool {
	return e == Controls
}

func (e Element) task() string {
	return "overlay." + e.String()
}

const suppressTask = "overlay.suppress"

// Durations are the auto-hide delays per element and the interaction cool-down.
type Durations struct {
	Controls  time.Duration
	Feedback  time.Duration
	VideoInfo time.Duration
	Suppress  time.Duration
}

// DefaultDurations returns 4 s for controls and the banner, 1 s for feedback and a 100 ms cool-down.
func DefaultDurations() Durations {
	return Durations{
		Controls:  4 * time.Second,
		Feedback:  time.Second,
		VideoInfo: 4 * time.Second,
		Suppress:  100 * time.Millisecond,
	}
}

func (d Durations) of(e Element) time.Duration {
	switch e {
	case Controls:
		return d.Controls
	case Feedback:
		return d.Feedback
	default:
		return d.VideoInfo
	}
}

type state struct {
	visible bool
	text    string
}

// Scheduler owns the visibility of every element. All methods must be called
// from the control thread that drives the sched.Scheduler.
type Scheduler struct {
	sched     sched.Scheduler
	durations Durations
	elements  map[Element]*state
}

func New(s sched.Scheduler, durations Durations) *Scheduler {
	elements := make(map[Element]*state, len(Elements))
	for _, e := range Elements {
		elements[e] = &state{}
	}

	return &Scheduler{
		sched:     s,
		durations: durations,
		elements:  elements,
	}
}

// Show makes e visible and (re)arms its auto-hide.
func (o *Scheduler) Show(e Element) {
	o.elements[e].visible = true
	o.ScheduleHide(e)
}

// SetText changes the text of e without touching visibility or timers.
func (o *Scheduler) SetText(e Element, text string) {
	o.elements[e].text = text
}

// ShowText sets the text of e, then shows it.
func (o *Scheduler) ShowText(e Element, text string) {
	o.elements[e].text = text
	o.Show(e)
}

// Hide makes e invisible and drops its pending auto-hide.
func (o *Scheduler) Hide(e Element) {
	o.elements[e].visible = false
	o.sched.Cancel(e.task())
}

// Toggle flips the visibility of e and reports the new state.
func (o *Scheduler) Toggle(e Element) bool {
	if o.elements[e].visible {
		o.Hide(e)
		return false
	}

	o.Show(e)
	return true
}

// Cancel drops a pending auto-hide of e without changing its visibility.
func (o *Scheduler) Cancel(e Element) {
	o.sched.Cancel(e.task())
}

// ScheduleHide (re)arms the auto-hide of e. While the user is interacting
// the request is dropped for suppressible elements.
func (o *Scheduler) ScheduleHide(e Element) {
	if e.suppressible() && o.Interacting() {
		log.Tracef("overlay: auto-hide of %s dropped while interacting", e)
		return
	}

	o.sched.After(e.task(), o.durations.of(e), func() {
		o.elements[e].visible = false
	})
}

// Suppress marks the user as interacting for the cool-down and drops the
// pending auto-hides of suppressible elements. Calling it again extends the cool-down.
func (o *Scheduler) Suppress() {
	for _, e := range Elements {
		if e.suppressible() {
			o.sched.Cancel(e.task())
		}
	}

	o.sched.After(suppressTask, o.durations.Suppress, func() {})
}

// Release ends the interaction cool-down early.
func (o *Scheduler) Release() {
	o.sched.Cancel(suppressTask)
}

// Interacting reports whether the cool-down is running.
func (o *Scheduler) Interacting() bool {
	return o.sched.Pending(suppressTask)
}

// Visible reports whether e is shown.
func (o *Scheduler) Visible(e Element) bool {
	return o.elements[e].visible
}

// Text returns the last text set on e.
func (o *Scheduler) Text(e Element) string {
	return o.elements[e].text
}

// Pending reports whether e has an auto-hide armed.
func (o *Scheduler) Pending(e Element) bool {
	return o.sched.Pending(e.task())
}

// CancelAll drops every timer the scheduler owns. Visibility is left as is.
func (o *Scheduler) CancelAll() {
	for _, e := range Elements {
		o.sched.Cancel(e.task())
	}
	o.sched.Cancel(suppressTask)
}
