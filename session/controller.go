// Package session turns input, tracking and contact events into game state
// transitions and collaborator commands.
//
// A Controller is not safe for concurrent use. The host calls it from its
// update goroutine and advances the timers there too.
package session

import (
	"fmt"
	"log"

	"github.com/automoto/troveyball/components"
	cfg "github.com/automoto/troveyball/config"
	"github.com/automoto/troveyball/schedule"
	"github.com/automoto/troveyball/shared/gamemath"
	"github.com/automoto/troveyball/shared/roundstate"
)

// RoundSummary is reported to observers when a round with a hoop finishes.
type RoundSummary struct {
	Round       int
	BallsThrown int
	Scored      bool
	Reason      roundstate.EndReason
}

// Option configures a Controller.
type Option func(*Controller)

// WithRoundObserver registers fn to receive a summary of each finished round.
func WithRoundObserver(fn func(RoundSummary)) Option {
	return func(c *Controller) {
		c.observers = append(c.observers, fn)
	}
}

// Controller drives one play session: a sequence of rounds sharing the same
// surfaces and collaborators.
type Controller struct {
	tracker Tracker
	scene   Scene
	ui      UI
	timers  Timers

	state      *components.GameStateData
	round      int
	roundTasks *schedule.Group
	charge     *schedule.Handle
	finishTask *schedule.Handle
	hintTask   *schedule.Handle

	hoopPending bool
	detector    BodyID
	ring        gamemath.Vec3
	ended       bool
	thrown      int
	planes      int
	closed      bool

	observers []func(RoundSummary)
}

// New returns a controller at the start of its first round.
func New(tracker Tracker, scene Scene, ui UI, timers Timers, opts ...Option) *Controller {
	c := &Controller{
		tracker: tracker,
		scene:   scene,
		ui:      ui,
		timers:  timers,
		state:   components.NewGameState(),
		round:   1,
	}
	c.roundTasks = timers.NewGroup()
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// State returns where the session is in the placement/throw cycle.
func (c *Controller) State() roundstate.ID {
	switch {
	case c.ended:
		return roundstate.RoundEnded
	case c.state.BasketPlaced && c.charge.Active():
		return roundstate.Charging
	case c.state.BasketPlaced:
		return roundstate.Idle
	case c.planes > 0:
		return roundstate.PlaneDetected
	default:
		return roundstate.NoPlaneDetected
	}
}

// GameState returns a copy of the current round's counters.
func (c *Controller) GameState() components.GameStateData {
	return *c.state
}

// Round returns the 1-based number of the current round.
func (c *Controller) Round() int {
	return c.round
}

// Detector returns the current round's detector body, or zero.
func (c *Controller) Detector() BodyID {
	return c.detector
}

// PlaneDetected records a new surface, marks it in the scene and shows the
// detection hint for a while.
func (c *Controller) PlaneDetected(anchor PlaneAnchor) {
	if c.closed {
		return
	}
	c.planes++
	if err := c.scene.AddPlaneMarker(anchor); err != nil {
		log.Printf("Warning: Could not mark plane %d: %v", anchor.ID, err)
	}

	c.ui.ShowHint(cfg.Text.SurfaceDetected)
	c.hintTask.Stop()
	c.hintTask = c.timers.After(cfg.Timing.HintDuration, c.ui.HideHint)
	c.logf("plane %d detected", anchor.ID)
}

// Tap places the hoop where p hits a detected surface. The basket becomes
// active after a short delay so the placing touch is not taken as a throw.
func (c *Controller) Tap(p ScreenPoint) {
	if c.closed || c.ended || c.state.BasketPlaced || c.hoopPending {
		return
	}
	hit, ok := c.tracker.HitTest(p)
	if !ok {
		return
	}
	placement, err := c.scene.PlaceHoop(hit.Position)
	if err != nil {
		log.Printf("Warning: Could not place hoop: %v", err)
		return
	}

	c.hoopPending = true
	c.detector = placement.Detector
	c.ring = placement.Ring
	c.ui.SetBallsLabel(ballsText(c.state.RemainingBalls), true)

	round := c.round
	c.roundTasks.After(cfg.Timing.ActivationDelay, func() {
		if c.round != round || c.state.BasketPlaced {
			return
		}
		c.hoopPending = false
		c.state.AddBasket()
		c.logf("round %d: basket active", round)
	})
	c.logf("round %d: hoop placed on plane %d", round, hit.PlaneID)
}

// TouchDown starts charging while a basket is active.
func (c *Controller) TouchDown() {
	if c.closed || !c.state.BasketPlaced || c.charge.Active() {
		return
	}
	round := c.round
	c.charge = c.roundTasks.Every(cfg.Timing.ChargeInterval, func() {
		if c.round != round {
			return
		}
		c.state.BuildPower()
	})
}

// TouchUp stops charging and throws when a basket is active. Power always
// returns to its initial value.
func (c *Controller) TouchUp() {
	if c.closed {
		return
	}
	c.charge.Stop()
	c.charge = nil
	if c.state.BasketPlaced {
		c.throw()
	}
	c.state.Reset()
}

func (c *Controller) throw() {
	if !c.state.HasRemainingBalls() {
		return
	}
	viewer, ok := c.tracker.ViewerPose()
	if !ok {
		return
	}

	c.scene.Remove(KindBall)
	spec := BallSpec{
		Position:    gamemath.LaunchPosition(viewer),
		Impulse:     gamemath.ThrowImpulse(viewer, c.state.Power, cfg.Throw.CurveMultiplier),
		Radius:      cfg.Throw.BallRadius,
		Restitution: cfg.Throw.BallRestitution,
		Mass:        cfg.Throw.BallMass,
		Category:    CategoryBall,
		ContactMask: CategoryRing,
	}
	if _, err := c.scene.SpawnBall(spec); err != nil {
		log.Printf("Warning: Could not spawn ball: %v", err)
		return
	}

	c.state.RemoveAvailableBall()
	c.thrown++
	c.ui.SetBallsLabel(ballsText(c.state.RemainingBalls), true)
	c.logf("round %d: threw with power %.2f, %d left", c.round, c.state.Power, c.state.RemainingBalls)

	if c.state.HasRemainingBalls() || c.ended {
		return
	}
	c.ended = true
	round := c.round
	c.finishTask = c.roundTasks.After(cfg.Timing.FinishDelay, func() {
		if c.round != round {
			return
		}
		if !c.state.Scored {
			c.ui.PresentModal(modalFrom(cfg.Text.BuyMore))
		}
		c.finish(roundstate.EndDepleted)
	})
}

// Contact handles a contact-begin notification. Only a ball touching this
// round's detector scores, and only once per round.
func (c *Controller) Contact(ct Contact) {
	if c.closed || !c.isScoringContact(ct) {
		return
	}
	if !c.state.BasketPlaced || c.state.Scored {
		return
	}

	c.state.Score()
	c.ended = true
	c.scene.Celebrate(c.ring)
	c.ui.SetBallsLabel(ballsText(c.state.RemainingBalls), true)

	// Replaces a pending depletion finish.
	c.finishTask.Stop()

	round := c.round
	c.finishTask = c.roundTasks.After(cfg.Timing.FinishDelay, func() {
		if c.round != round {
			return
		}
		c.finish(roundstate.EndScored)
		c.ui.PresentModal(modalFrom(cfg.Text.Connected))
	})
	c.logf("round %d: scored", round)
}

func (c *Controller) isScoringContact(ct Contact) bool {
	if !ct.Involves(c.detector) {
		return false
	}
	return ct.categoryOf(c.detector)&CategoryRing != 0 && ct.other(c.detector)&CategoryBall != 0
}

// Close tears the session down: the current round is finished and no
// further events are accepted.
func (c *Controller) Close() {
	if c.closed {
		return
	}
	c.finish(roundstate.EndTeardown)
	c.hintTask.Stop()
	c.ui.HideHint()
	c.closed = true
}

// finish discards everything the round placed and starts a fresh one.
func (c *Controller) finish(reason roundstate.EndReason) {
	c.roundTasks.Stop()
	c.charge = nil
	c.finishTask = nil

	c.scene.Remove(KindBall, KindHoop, KindDetector, KindPlaneMarker)

	hadHoop := c.hoopPending || c.state.BasketPlaced
	summary := RoundSummary{
		Round:       c.round,
		BallsThrown: c.thrown,
		Scored:      c.state.Scored,
		Reason:      reason,
	}

	c.state = components.NewGameState()
	c.round++
	c.roundTasks = c.timers.NewGroup()
	c.hoopPending = false
	c.detector = 0
	c.ring = gamemath.Vec3{}
	c.ended = false
	c.thrown = 0

	c.ui.SetBallsLabel(cfg.Text.BallsLabelPrefix, false)
	c.logf("round %d finished (%s)", summary.Round, reason)

	if !hadHoop {
		return
	}
	for _, fn := range c.observers {
		fn(summary)
	}
}

func (c *Controller) logf(format string, args ...any) {
	if !cfg.Debug.LogEvents {
		return
	}
	log.Printf("session: "+format, args...)
}

func ballsText(remaining int) string {
	return fmt.Sprintf("%s%d", cfg.Text.BallsLabelPrefix, remaining)
}

func modalFrom(t cfg.ModalText) Modal {
	actions := make([]string, len(t.Actions))
	copy(actions, t.Actions)
	return Modal{Title: t.Title, Message: t.Message, Actions: actions}
}
