// Package surface is the interaction core: it owns the scheduler, the overlay,
// the seek pipeline and the gesture interpreter, and exposes pointer intake,
// keyboard actions and a HUD snapshot to its host.
package surface

import (
	"fmt"
	"path"
	"strings"

	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/touchmpv/touchmpv/gesture"
	"github.com/touchmpv/touchmpv/log"
	"github.com/touchmpv/touchmpv/overlay"
	"github.com/touchmpv/touchmpv/player"
	"github.com/touchmpv/touchmpv/sched"
	"github.com/touchmpv/touchmpv/seek"
	"github.com/touchmpv/touchmpv/timefmt"
	"github.com/touchmpv/touchmpv/util"
)

const (
	pollTask = "surface.poll"
	infoTask = "surface.info"
)

// ProgressMax is the value of Progress at the end of the media.
const ProgressMax = 1000

// HUD is what the host renders.
type HUD struct {
	Position float64
	Duration float64
	Time     string
	Total    string
	// Progress runs from 0 to ProgressMax.
	Progress int
	Paused   bool
	Speed    float64

	Controls  bool
	Feedback  mo.Option[string]
	Info      mo.Option[string]
	Scrubbing bool
}

// Surface wires the interaction components around one engine.
type Surface struct {
	options Options
	player  player.Facade
	sched   sched.Scheduler
	overlay *overlay.Scheduler
	seek    *seek.Pipeline
	gesture *gesture.Interpreter

	attached bool
	snapshot player.Snapshot

	barDrag   bool
	barTarget float64
}

// New builds a detached surface. Nothing is scheduled until Attach.
func New(options Options, p player.Facade, s sched.Scheduler) *Surface {
	o := overlay.New(s, options.Overlay)
	pipeline := seek.New(p, s, options.Settle)

	surface := &Surface{
		options:  options,
		player:   p,
		sched:    s,
		overlay:  o,
		seek:     pipeline,
		gesture:  gesture.New(options.Gesture, p, pipeline, o, s),
		snapshot: player.Snapshot{Speed: 1},
	}

	surface.gesture.OnDoubleTap(func() {
		o.SetText(overlay.VideoInfo, surface.Title())
	})

	return surface
}

// Attach starts polling, shows the controls and schedules the video-info banner.
func (s *Surface) Attach() {
	if s.attached {
		return
	}

	s.attached = true
	log.Info("surface attached")

	s.poll()
	s.overlay.Show(overlay.Controls)
	s.sched.After(infoTask, s.options.InfoDelay, func() {
		s.overlay.ShowText(overlay.VideoInfo, s.Title())
	})
}

// Detach cancels every outstanding timer. Call it before releasing the engine.
func (s *Surface) Detach() {
	if !s.attached {
		return
	}

	s.attached = false
	s.barDrag = false

	s.gesture.Reset()
	s.seek.Cancel()
	s.overlay.CancelAll()
	s.sched.Cancel(pollTask)
	s.sched.Cancel(infoTask)

	log.Info("surface detached")
}

// Attached reports whether the surface is between Attach and Detach.
func (s *Surface) Attached() bool {
	return s.attached
}

func (s *Surface) poll() {
	s.refresh()
	s.sched.After(pollTask, s.options.Poll, s.poll)
}

// refresh reads the engine. Position and duration are left alone while the
// user drags, the drag owns the displayed time.
func (s *Surface) refresh() {
	snap := player.Read(s.player)
	s.snapshot.Paused = snap.Paused
	s.snapshot.Speed = snap.Speed

	if s.dragging() {
		return
	}

	s.snapshot.Position = snap.Position
	s.snapshot.Duration = snap.Duration
}

func (s *Surface) dragging() bool {
	return s.barDrag || s.gesture.State() == gesture.HorizontalSeeking
}

// HUD returns the current display state.
func (s *Surface) HUD() HUD {
	position := s.snapshot.Position
	if target, ok := s.gesture.ScrubPosition().Get(); ok {
		position = target
	} else if s.barDrag {
		position = s.barTarget
	}

	duration := s.snapshot.Duration

	hud := HUD{
		Position:  position,
		Duration:  duration,
		Time:      timefmt.Format(position),
		Total:     timefmt.Format(duration),
		Progress:  progress(position, duration),
		Paused:    s.snapshot.Paused,
		Speed:     s.snapshot.Speed,
		Controls:  s.overlay.Visible(overlay.Controls),
		Scrubbing: s.dragging(),
	}

	if s.overlay.Visible(overlay.Feedback) {
		hud.Feedback = mo.Some(s.overlay.Text(overlay.Feedback))
	}

	if s.overlay.Visible(overlay.VideoInfo) {
		hud.Info = mo.Some(s.overlay.Text(overlay.VideoInfo))
	}

	return hud
}

func progress(position, duration float64) int {
	if duration <= 0 {
		return 0
	}
	return util.Clamp(int(position/duration*ProgressMax), 0, ProgressMax)
}

// State returns the gesture state.
func (s *Surface) State() gesture.State {
	return s.gesture.State()
}

func (s *Surface) Down(sample gesture.Sample) {
	if s.attached {
		s.gesture.Down(sample)
	}
}

func (s *Surface) Move(sample gesture.Sample) {
	if s.attached {
		s.gesture.Move(sample)
	}
}

func (s *Surface) Up(sample gesture.Sample) {
	if s.attached {
		s.gesture.Up(sample)
	}
}

func (s *Surface) Cancel(sample gesture.Sample) {
	if s.attached {
		s.gesture.Cancel(sample)
	}
}

// DoubleTap toggles the video-info banner with a fresh title.
func (s *Surface) DoubleTap() {
	if !s.attached {
		return
	}

	s.gesture.DoubleTap()
}

// ToggleInfo is the keyboard twin of DoubleTap.
func (s *Surface) ToggleInfo() {
	s.DoubleTap()
}

// TogglePause behaves like a tap. It is ignored while a touch or a bar
// drag owns the pause state.
func (s *Surface) TogglePause() {
	if s.attached && !s.barDrag && s.gesture.State() == gesture.Idle {
		s.gesture.Tap()
	}
}

// QuickSeek jumps by delta seconds.
func (s *Surface) QuickSeek(delta float64) {
	if !s.attached {
		return
	}

	s.seek.Relative(delta)
	s.overlay.ShowText(overlay.Feedback, fmt.Sprintf("%+g", delta))
	s.overlay.Show(overlay.Controls)
}

// KeySeek jumps by the configured key step, forward or backward.
func (s *Surface) KeySeek(forward bool) {
	if forward {
		s.QuickSeek(s.options.KeySeekSeconds)
	} else {
		s.QuickSeek(-s.options.KeySeekSeconds)
	}
}

// CycleSpeed moves to the next speed step, wrapping to the first.
func (s *Surface) CycleSpeed() {
	if !s.attached || len(s.options.SpeedSteps) == 0 {
		return
	}

	current := s.player.Speed().OrElse(1)
	next, ok := lo.Find(s.options.SpeedSteps, func(step float64) bool {
		return step > current+1e-9
	})
	if !ok {
		next = s.options.SpeedSteps[0]
	}

	s.player.SetSpeed(next)
	s.snapshot.Speed = next
	s.overlay.ShowText(overlay.Feedback, fmt.Sprintf("%gX", next))
}

func (s *Surface) CycleAudio() {
	if s.attached {
		s.player.CycleAudio()
		s.overlay.ShowText(overlay.Feedback, "Audio")
	}
}

func (s *Surface) CycleSubtitles() {
	if s.attached {
		s.player.CycleSubtitles()
		s.overlay.ShowText(overlay.Feedback, "Subtitles")
	}
}

// BeginBarDrag starts a progress bar drag. It shares the scrub bookkeeping,
// so playback resumes afterwards only if it was running.
func (s *Surface) BeginBarDrag() {
	if !s.attached || s.barDrag || s.gesture.State() != gesture.Idle {
		return
	}

	s.overlay.Suppress()
	s.barTarget = s.seek.Begin()
	s.barDrag = true
}

// BarDrag seeks to fraction of the duration.
func (s *Surface) BarDrag(fraction float64) {
	if !s.barDrag {
		return
	}

	fraction = util.Clamp(fraction, 0, 1)
	s.overlay.Suppress()
	s.barTarget = s.seek.Scrub(fraction * s.player.Duration().OrElse(0))
}

// EndBarDrag finishes the drag and re-arms the controls auto-hide.
func (s *Surface) EndBarDrag() {
	if !s.barDrag {
		return
	}

	s.barDrag = false
	s.snapshot.Position = s.barTarget
	s.seek.End()
	s.overlay.Release()
	s.overlay.ScheduleHide(overlay.Controls)
}

// BarDragging reports whether a progress bar drag is live.
func (s *Surface) BarDragging() bool {
	return s.barDrag
}

// OnProperty handles an engine event. It must run on the control thread.
func (s *Surface) OnProperty(event player.Event) {
	if !s.attached {
		return
	}

	switch event.Name {
	case "media-title", "path":
		s.overlay.SetText(overlay.VideoInfo, s.Title())
	case "eof-reached":
		if reached, _ := event.Data.(bool); reached {
			s.overlay.Show(overlay.Controls)
		}
	case "end-file":
		s.overlay.Show(overlay.Controls)
	}
}

// Title is the banner text for the attached engine.
func (s *Surface) Title() string {
	return VideoTitle(s.player)
}

// VideoTitle is the media title without extension, else the file name without extension, else "Video".
func VideoTitle(f player.Facade) string {
	if title := strings.TrimSpace(f.MediaTitle().OrElse("")); title != "" && title != "Video" {
		if stripped := beforeLastDot(title); stripped != "" {
			return stripped
		}
	}

	if p := strings.TrimSpace(f.Path().OrElse("")); p != "" {
		if name := beforeLastDot(path.Base(strings.ReplaceAll(p, "\\", "/"))); name != "" {
			return name
		}
	}

	return "Video"
}

func beforeLastDot(s string) string {
	if i := strings.LastIndex(s, "."); i >= 0 {
		return s[:i]
	}
	return s
}
