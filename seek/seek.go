// Package seek turns seek intents into exactly one engine call each and keeps
// the pause bookkeeping of scrub episodes.
package seek

import (
	"time"

	"github.com/samber/mo"
	"github.com/touchmpv/touchmpv/log"
	"github.com/touchmpv/touchmpv/player"
	"github.com/touchmpv/touchmpv/sched"
	"github.com/touchmpv/touchmpv/util"
)

// ResumeTask is the name of the settle-delayed resume.
const ResumeTask = "seek.resume"

// DefaultSettle is the delay between the last seek and resuming playback.
const DefaultSettle = 100 * time.Millisecond

type episode struct {
	anchor     float64
	wasPlaying bool
	target     mo.Option[float64]
}

// Pipeline issues seeks through a player.Facade. It must be used from the control thread.
type Pipeline struct {
	player  player.Facade
	sched   sched.Scheduler
	settle  time.Duration
	episode *episode
}

func New(p player.Facade, s sched.Scheduler, settle time.Duration) *Pipeline {
	return &Pipeline{
		player: p,
		sched:  s,
		settle: settle,
	}
}

// clamp bounds seconds to the media. Unknown duration collapses the range to 0.
func (p *Pipeline) clamp(seconds float64) float64 {
	return util.Clamp(seconds, 0, p.player.Duration().OrElse(0))
}

// Absolute issues one exact absolute seek and returns the clamped target.
func (p *Pipeline) Absolute(seconds float64) float64 {
	target := p.clamp(seconds)
	p.player.SeekAbsoluteExact(target)
	return target
}

// Relative issues one exact relative seek.
func (p *Pipeline) Relative(delta float64) {
	p.player.SeekRelativeExact(delta)
}

// Begin starts a scrub episode and returns the anchor position. Playback is
// paused when it was running. A resume still pending from the previous
// episode is cancelled and carried over, so the new episode resumes instead.
func (p *Pipeline) Begin() float64 {
	if p.episode != nil {
		return p.episode.anchor
	}

	carried := p.sched.Pending(ResumeTask)
	p.sched.Cancel(ResumeTask)

	snap := player.Read(p.player)
	p.episode = &episode{
		anchor:     snap.Position,
		wasPlaying: !snap.Paused || carried,
	}

	if !snap.Paused {
		p.player.SetPaused(true)
	}

	log.Debugf("seek: episode begins at %.3f (was playing: %t)", snap.Position, p.episode.wasPlaying)
	return snap.Position
}

// Scrub seeks to target within the running episode and returns the clamped target.
// Outside an episode it behaves like Absolute.
func (p *Pipeline) Scrub(target float64) float64 {
	clamped := p.Absolute(target)
	if p.episode != nil {
		p.episode.target = mo.Some(clamped)
	}
	return clamped
}

// End finishes the episode. Playback resumes after the settle delay when it
// was running at Begin. Ending without an episode does nothing.
func (p *Pipeline) End() {
	if p.episode == nil {
		return
	}

	wasPlaying := p.episode.wasPlaying
	p.episode = nil

	if wasPlaying {
		p.resumeLater()
	}
}

// ResumeExact re-seeks to the current position and resumes after the settle
// delay, so the decoder restarts from a clean frame.
func (p *Pipeline) ResumeExact() {
	p.player.SeekAbsoluteExact(p.player.Position().OrElse(0))
	p.resumeLater()
}

func (p *Pipeline) resumeLater() {
	p.sched.After(ResumeTask, p.settle, func() {
		p.player.SetPaused(false)
	})
}

// Cancel drops the episode and any pending resume.
func (p *Pipeline) Cancel() {
	p.episode = nil
	p.sched.Cancel(ResumeTask)
}

// Scrubbing reports whether an episode is running.
func (p *Pipeline) Scrubbing() bool {
	return p.episode != nil
}

// Target returns the last scrub target of the running episode.
func (p *Pipeline) Target() mo.Option[float64] {
	if p.episode == nil {
		return mo.None[float64]()
	}
	return p.episode.target
}

// ResumePending reports whether a settle-delayed resume is armed.
func (p *Pipeline) ResumePending() bool {
	return p.sched.Pending(ResumeTask)
}
