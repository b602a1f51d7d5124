package session

import (
	"errors"
	"reflect"
	"testing"
	"time"

	cfg "github.com/automoto/troveyball/config"
	"github.com/automoto/troveyball/schedule"
	"github.com/automoto/troveyball/shared/gamemath"
	"github.com/automoto/troveyball/shared/roundstate"
)

type fakeTracker struct {
	hit    Hit
	hitOK  bool
	pose   gamemath.Pose
	poseOK bool
}

func (f *fakeTracker) HitTest(p ScreenPoint) (Hit, bool) {
	return f.hit, f.hitOK
}

func (f *fakeTracker) ViewerPose() (gamemath.Pose, bool) {
	return f.pose, f.poseOK
}

type fakeScene struct {
	nextID       BodyID
	markers      []PlaneAnchor
	hoops        []HoopPlacement
	balls        []BallSpec
	removed      [][]ObjectKind
	celebrations []gamemath.Vec3
	calls        []string
	placeErr     error
	spawnErr     error
}

func (f *fakeScene) id() BodyID {
	f.nextID++
	return f.nextID
}

func (f *fakeScene) AddPlaneMarker(anchor PlaneAnchor) error {
	f.markers = append(f.markers, anchor)
	return nil
}

func (f *fakeScene) PlaceHoop(at gamemath.Vec3) (HoopPlacement, error) {
	if f.placeErr != nil {
		return HoopPlacement{}, f.placeErr
	}
	p := HoopPlacement{Hoop: f.id(), Detector: f.id(), Ring: at.Add(gamemath.Vec3{Z: 0.3})}
	f.hoops = append(f.hoops, p)
	return p, nil
}

func (f *fakeScene) SpawnBall(spec BallSpec) (BodyID, error) {
	if f.spawnErr != nil {
		return 0, f.spawnErr
	}
	f.calls = append(f.calls, "spawn")
	f.balls = append(f.balls, spec)
	return f.id(), nil
}

func (f *fakeScene) Celebrate(at gamemath.Vec3) {
	f.celebrations = append(f.celebrations, at)
}

func (f *fakeScene) Remove(kinds ...ObjectKind) {
	f.calls = append(f.calls, "remove")
	f.removed = append(f.removed, kinds)
}

type fakeUI struct {
	hintVisible  bool
	hintText     string
	label        string
	labelVisible bool
	modals       []Modal
}

func (f *fakeUI) ShowHint(text string) {
	f.hintVisible = true
	f.hintText = text
}

func (f *fakeUI) HideHint() {
	f.hintVisible = false
}

func (f *fakeUI) SetBallsLabel(text string, visible bool) {
	f.label = text
	f.labelVisible = visible
}

func (f *fakeUI) PresentModal(m Modal) {
	f.modals = append(f.modals, m)
}

type harness struct {
	c       *Controller
	tracker *fakeTracker
	scene   *fakeScene
	ui      *fakeUI
	clock   *schedule.Scheduler
	rounds  []RoundSummary
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	h := &harness{
		tracker: &fakeTracker{
			hit:    Hit{Position: gamemath.Vec3{Y: 1.5, Z: -3}, PlaneID: 7},
			hitOK:  true,
			pose:   gamemath.PitchedPose(gamemath.Vec3{Y: 1.4}, 0.3),
			poseOK: true,
		},
		scene: &fakeScene{},
		ui:    &fakeUI{},
		clock: schedule.New(),
	}
	h.c = New(h.tracker, h.scene, h.ui, h.clock, WithRoundObserver(func(s RoundSummary) {
		h.rounds = append(h.rounds, s)
	}))
	return h
}

// placeBasket detects a plane, taps it and waits for activation.
func (h *harness) placeBasket(t *testing.T) {
	t.Helper()
	h.c.PlaneDetected(PlaneAnchor{ID: 7})
	h.c.Tap(ScreenPoint{X: 100, Y: 100})
	h.clock.Advance(cfg.Timing.ActivationDelay)
	if !h.c.GameState().BasketPlaced {
		t.Fatalf("basket not active after activation delay")
	}
}

func (h *harness) throwWithTicks(ticks int) {
	h.c.TouchDown()
	h.clock.Advance(time.Duration(ticks) * cfg.Timing.ChargeInterval)
	h.c.TouchUp()
}

func (h *harness) scoringContact() Contact {
	return Contact{A: 999, B: h.c.Detector(), CategoryA: CategoryBall, CategoryB: CategoryRing}
}

func TestNewSessionStartsWithoutPlane(t *testing.T) {
	h := newHarness(t)
	if got := h.c.State(); got != roundstate.NoPlaneDetected {
		t.Fatalf("state = %v, want %v", got, roundstate.NoPlaneDetected)
	}
	if h.c.Round() != 1 {
		t.Fatalf("round = %d, want 1", h.c.Round())
	}
}

func TestPlaneDetectedShowsHintThenHides(t *testing.T) {
	h := newHarness(t)
	h.c.PlaneDetected(PlaneAnchor{ID: 1})

	if h.c.State() != roundstate.PlaneDetected {
		t.Fatalf("state = %v, want %v", h.c.State(), roundstate.PlaneDetected)
	}
	if !h.ui.hintVisible || h.ui.hintText != cfg.Text.SurfaceDetected {
		t.Fatalf("hint not shown: %+v", h.ui)
	}
	if len(h.scene.markers) != 1 {
		t.Fatalf("markers = %d, want 1", len(h.scene.markers))
	}

	h.clock.Advance(cfg.Timing.HintDuration - time.Millisecond)
	if !h.ui.hintVisible {
		t.Fatalf("hint hidden too early")
	}
	h.clock.Advance(time.Millisecond)
	if h.ui.hintVisible {
		t.Fatalf("hint still visible after %v", cfg.Timing.HintDuration)
	}
}

func TestNewerDetectionRestartsHintTimer(t *testing.T) {
	h := newHarness(t)
	h.c.PlaneDetected(PlaneAnchor{ID: 1})
	h.clock.Advance(2 * time.Second)
	h.c.PlaneDetected(PlaneAnchor{ID: 2})

	h.clock.Advance(2 * time.Second)
	if !h.ui.hintVisible {
		t.Fatalf("first detection's timer hid the second hint")
	}
	h.clock.Advance(time.Second)
	if h.ui.hintVisible {
		t.Fatalf("hint still visible after the second detection's timeout")
	}
}

func TestTapPlacesHoopAndActivatesAfterDelay(t *testing.T) {
	h := newHarness(t)
	h.c.PlaneDetected(PlaneAnchor{ID: 7})
	h.c.Tap(ScreenPoint{X: 10, Y: 20})

	if len(h.scene.hoops) != 1 {
		t.Fatalf("hoops placed = %d, want 1", len(h.scene.hoops))
	}
	if h.c.GameState().BasketPlaced {
		t.Fatalf("basket active before the activation delay")
	}
	if !h.ui.labelVisible || h.ui.label != "Balls left: 3" {
		t.Fatalf("label = %q visible=%v, want %q visible", h.ui.label, h.ui.labelVisible, "Balls left: 3")
	}

	h.clock.Advance(cfg.Timing.ActivationDelay - time.Millisecond)
	if h.c.GameState().BasketPlaced {
		t.Fatalf("basket active before the activation delay")
	}
	h.clock.Advance(time.Millisecond)
	if !h.c.GameState().BasketPlaced {
		t.Fatalf("basket not active after the activation delay")
	}
	if h.c.State() != roundstate.Idle {
		t.Fatalf("state = %v, want %v", h.c.State(), roundstate.Idle)
	}
}

func TestTapGuards(t *testing.T) {
	tests := []struct {
		name  string
		setup func(h *harness)
		want  int
	}{
		{
			name:  "miss",
			setup: func(h *harness) { h.tracker.hitOK = false },
			want:  0,
		},
		{
			name: "second tap while pending",
			setup: func(h *harness) {
				h.c.Tap(ScreenPoint{})
			},
			want: 1,
		},
		{
			name: "second tap after activation",
			setup: func(h *harness) {
				h.c.Tap(ScreenPoint{})
				h.clock.Advance(cfg.Timing.ActivationDelay)
			},
			want: 1,
		},
		{
			name:  "scene failure",
			setup: func(h *harness) { h.scene.placeErr = errors.New("no asset") },
			want:  0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			h.c.PlaneDetected(PlaneAnchor{ID: 7})
			tt.setup(h)
			h.c.Tap(ScreenPoint{})
			if len(h.scene.hoops) != tt.want {
				t.Fatalf("hoops = %d, want %d", len(h.scene.hoops), tt.want)
			}
		})
	}
}

func TestPlacementTouchDoesNotThrow(t *testing.T) {
	h := newHarness(t)
	h.c.PlaneDetected(PlaneAnchor{ID: 7})

	// The placing tap arrives together with its own touch-down/up.
	h.c.TouchDown()
	h.c.Tap(ScreenPoint{})
	h.c.TouchUp()
	h.clock.Advance(time.Second)

	if len(h.scene.balls) != 0 {
		t.Fatalf("placement touch threw %d balls", len(h.scene.balls))
	}
	if got := h.c.GameState().RemainingBalls; got != 3 {
		t.Fatalf("remaining = %d, want 3", got)
	}
}

func TestChargeThenThrow(t *testing.T) {
	h := newHarness(t)
	h.placeBasket(t)

	h.c.TouchDown()
	h.clock.Advance(5 * cfg.Timing.ChargeInterval)
	if h.c.State() != roundstate.Charging {
		t.Fatalf("state = %v, want %v", h.c.State(), roundstate.Charging)
	}
	if got := h.c.GameState().Power; got != 6.0 {
		t.Fatalf("power after 5 ticks = %f, want 6.0", got)
	}

	h.c.TouchUp()
	if len(h.scene.balls) != 1 {
		t.Fatalf("balls = %d, want 1", len(h.scene.balls))
	}
	ball := h.scene.balls[0]
	wantImpulse := gamemath.ThrowImpulse(h.tracker.pose, 6.0, cfg.Throw.CurveMultiplier)
	if ball.Impulse != wantImpulse {
		t.Fatalf("impulse = %+v, want %+v", ball.Impulse, wantImpulse)
	}
	if ball.Position != gamemath.LaunchPosition(h.tracker.pose) {
		t.Fatalf("launch position = %+v, want one unit forward of the viewer", ball.Position)
	}
	if ball.Category != CategoryBall || ball.ContactMask != CategoryRing {
		t.Fatalf("ball categories = %v/%v, want ball/ring", ball.Category, ball.ContactMask)
	}
	if ball.Radius != cfg.Throw.BallRadius || ball.Restitution != cfg.Throw.BallRestitution {
		t.Fatalf("ball body = %+v", ball)
	}

	gs := h.c.GameState()
	if gs.Power != cfg.Game.InitialPower {
		t.Fatalf("power after release = %f, want %f", gs.Power, cfg.Game.InitialPower)
	}
	if gs.RemainingBalls != 2 {
		t.Fatalf("remaining = %d, want 2", gs.RemainingBalls)
	}
	if h.ui.label != "Balls left: 2" {
		t.Fatalf("label = %q, want %q", h.ui.label, "Balls left: 2")
	}
	if h.c.State() != roundstate.Idle {
		t.Fatalf("state = %v, want %v", h.c.State(), roundstate.Idle)
	}
}

func TestReleaseStopsCharging(t *testing.T) {
	h := newHarness(t)
	h.placeBasket(t)
	h.throwWithTicks(3)
	h.clock.Advance(time.Second)
	if got := h.c.GameState().Power; got != cfg.Game.InitialPower {
		t.Fatalf("power kept building after release: %f", got)
	}
}

func TestTouchWithoutBasketDoesNotCharge(t *testing.T) {
	h := newHarness(t)
	h.c.TouchDown()
	h.clock.Advance(time.Second)
	if got := h.c.GameState().Power; got != cfg.Game.InitialPower {
		t.Fatalf("power = %f without basket, want %f", got, cfg.Game.InitialPower)
	}
	h.c.TouchUp()
	if len(h.scene.balls) != 0 {
		t.Fatalf("threw without a basket")
	}
}

func TestPreviousBallRemovedBeforeNextThrow(t *testing.T) {
	h := newHarness(t)
	h.placeBasket(t)
	h.scene.calls = nil

	h.throwWithTicks(1)
	h.throwWithTicks(1)

	want := []string{"remove", "spawn", "remove", "spawn"}
	if !reflect.DeepEqual(h.scene.calls, want) {
		t.Fatalf("scene calls = %v, want %v", h.scene.calls, want)
	}
	for _, kinds := range h.scene.removed[len(h.scene.removed)-2:] {
		if !reflect.DeepEqual(kinds, []ObjectKind{KindBall}) {
			t.Fatalf("throw removed %v, want only balls", kinds)
		}
	}
}

func TestThrowFailuresKeepTheBall(t *testing.T) {
	tests := []struct {
		name  string
		setup func(h *harness)
	}{
		{"no viewer pose", func(h *harness) { h.tracker.poseOK = false }},
		{"spawn failure", func(h *harness) { h.scene.spawnErr = errors.New("full") }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			h.placeBasket(t)
			tt.setup(h)
			h.throwWithTicks(2)
			if got := h.c.GameState().RemainingBalls; got != 3 {
				t.Fatalf("remaining = %d, want 3", got)
			}
			if got := h.c.GameState().Power; got != cfg.Game.InitialPower {
				t.Fatalf("power = %f, want reset to %f", got, cfg.Game.InitialPower)
			}
		})
	}
}

func TestDepletionShowsBuyMoreThenFinishes(t *testing.T) {
	h := newHarness(t)
	h.placeBasket(t)
	for i := 0; i < 3; i++ {
		h.throwWithTicks(2)
	}

	if h.c.State() != roundstate.RoundEnded {
		t.Fatalf("state = %v, want %v", h.c.State(), roundstate.RoundEnded)
	}
	h.c.TouchDown()
	h.c.TouchUp()
	if len(h.scene.balls) != 3 {
		t.Fatalf("balls = %d, want 3 (no throw after depletion)", len(h.scene.balls))
	}

	h.clock.Advance(cfg.Timing.FinishDelay - time.Millisecond)
	if len(h.ui.modals) != 0 {
		t.Fatalf("modal shown before the finish delay")
	}
	h.clock.Advance(time.Millisecond)

	if len(h.ui.modals) != 1 || h.ui.modals[0].Title != cfg.Text.BuyMore.Title {
		t.Fatalf("modals = %+v, want the buy-more modal", h.ui.modals)
	}
	if got := h.ui.modals[0].Actions; !reflect.DeepEqual(got, []string{"Dismiss", "Buy Balls", "Buy Intro"}) {
		t.Fatalf("actions = %v", got)
	}
	assertRoundReset(t, h, 2)

	if len(h.rounds) != 1 {
		t.Fatalf("observed rounds = %d, want 1", len(h.rounds))
	}
	want := RoundSummary{Round: 1, BallsThrown: 3, Scored: false, Reason: roundstate.EndDepleted}
	if h.rounds[0] != want {
		t.Fatalf("summary = %+v, want %+v", h.rounds[0], want)
	}
}

func TestScoreShowsConnectedAfterDelay(t *testing.T) {
	h := newHarness(t)
	h.placeBasket(t)
	h.throwWithTicks(4)

	ring := h.scene.hoops[0].Ring
	h.c.Contact(h.scoringContact())

	gs := h.c.GameState()
	if !gs.Scored || gs.RemainingBalls != 0 {
		t.Fatalf("state after score = %+v", gs)
	}
	if h.c.State() != roundstate.RoundEnded {
		t.Fatalf("state = %v, want %v", h.c.State(), roundstate.RoundEnded)
	}
	if len(h.scene.celebrations) != 1 || h.scene.celebrations[0] != ring {
		t.Fatalf("celebrations = %+v, want one at %+v", h.scene.celebrations, ring)
	}

	h.throwWithTicks(1)
	if len(h.scene.balls) != 1 {
		t.Fatalf("threw after scoring")
	}

	h.clock.Advance(cfg.Timing.FinishDelay)
	if len(h.ui.modals) != 1 || h.ui.modals[0].Title != cfg.Text.Connected.Title {
		t.Fatalf("modals = %+v, want the connected modal", h.ui.modals)
	}
	assertRoundReset(t, h, 2)

	want := RoundSummary{Round: 1, BallsThrown: 1, Scored: true, Reason: roundstate.EndScored}
	if len(h.rounds) != 1 || h.rounds[0] != want {
		t.Fatalf("summaries = %+v, want [%+v]", h.rounds, want)
	}
}

func TestScoreWithLastBallSuppressesBuyMore(t *testing.T) {
	h := newHarness(t)
	h.placeBasket(t)
	for i := 0; i < 3; i++ {
		h.throwWithTicks(1)
	}

	h.clock.Advance(time.Second)
	h.c.Contact(h.scoringContact())

	// The depletion finish would have fired here.
	h.clock.Advance(2 * time.Second)
	if len(h.ui.modals) != 0 {
		t.Fatalf("modals = %+v before the score finish", h.ui.modals)
	}
	if h.c.Round() != 1 {
		t.Fatalf("round finished early by the depletion timer")
	}

	h.clock.Advance(time.Second)
	if len(h.ui.modals) != 1 || h.ui.modals[0].Title != cfg.Text.Connected.Title {
		t.Fatalf("modals = %+v, want only the connected modal", h.ui.modals)
	}
	h.clock.Advance(10 * time.Second)
	if len(h.ui.modals) != 1 || len(h.rounds) != 1 {
		t.Fatalf("round finished twice: modals=%d rounds=%d", len(h.ui.modals), len(h.rounds))
	}
}

func TestScoreHappensOncePerRound(t *testing.T) {
	h := newHarness(t)
	h.placeBasket(t)
	h.throwWithTicks(1)
	h.c.Contact(h.scoringContact())
	h.c.Contact(h.scoringContact())
	if len(h.scene.celebrations) != 1 {
		t.Fatalf("celebrations = %d, want 1", len(h.scene.celebrations))
	}
}

func TestContactFiltering(t *testing.T) {
	tests := []struct {
		name    string
		contact func(h *harness) Contact
	}{
		{"unrelated bodies", func(h *harness) Contact {
			return Contact{A: 500, B: 501, CategoryA: CategoryBall, CategoryB: CategoryRing}
		}},
		{"detector touched by non-ball", func(h *harness) Contact {
			return Contact{A: 500, B: h.c.Detector(), CategoryA: CategoryRing, CategoryB: CategoryRing}
		}},
		{"detector reported with wrong category", func(h *harness) Contact {
			return Contact{A: h.c.Detector(), B: 500, CategoryA: CategoryBall, CategoryB: CategoryBall}
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			h.placeBasket(t)
			h.c.Contact(tt.contact(h))
			if h.c.GameState().Scored {
				t.Fatalf("contact %+v scored", tt.contact(h))
			}
		})
	}
}

func TestContactBeforeActivationDoesNotScore(t *testing.T) {
	h := newHarness(t)
	h.c.PlaneDetected(PlaneAnchor{ID: 7})
	h.c.Tap(ScreenPoint{})
	h.c.Contact(h.scoringContact())
	if h.c.GameState().Scored {
		t.Fatalf("scored before the basket was active")
	}
}

func TestStaleCallbacksDoNotTouchNextRound(t *testing.T) {
	h := newHarness(t)
	h.placeBasket(t)
	h.throwWithTicks(1)

	// Keep a charge running across the round boundary.
	h.c.TouchDown()
	h.c.Contact(h.scoringContact())
	h.clock.Advance(cfg.Timing.FinishDelay)
	if h.c.Round() != 2 {
		t.Fatalf("round = %d, want 2", h.c.Round())
	}

	h.c.Tap(ScreenPoint{})
	h.clock.Advance(cfg.Timing.ActivationDelay)
	h.clock.Advance(time.Second)

	gs := h.c.GameState()
	if gs.Power != cfg.Game.InitialPower {
		t.Fatalf("previous round's charge leaked: power = %f", gs.Power)
	}
	if gs.Scored || gs.RemainingBalls != cfg.Game.InitialBallCount {
		t.Fatalf("new round inherited counters: %+v", gs)
	}
	if h.c.State() != roundstate.Idle {
		t.Fatalf("state = %v, want %v", h.c.State(), roundstate.Idle)
	}
}

func TestCloseFinishesRoundAndIgnoresEvents(t *testing.T) {
	h := newHarness(t)
	h.c.PlaneDetected(PlaneAnchor{ID: 7})
	h.c.Tap(ScreenPoint{})

	h.c.Close()
	if h.ui.hintVisible {
		t.Fatalf("hint visible after close")
	}
	if len(h.rounds) != 1 || h.rounds[0].Reason != roundstate.EndTeardown {
		t.Fatalf("summaries = %+v, want one teardown", h.rounds)
	}

	h.clock.Advance(time.Second)
	if h.c.GameState().BasketPlaced {
		t.Fatalf("activation fired after close")
	}
	h.c.Tap(ScreenPoint{})
	h.c.PlaneDetected(PlaneAnchor{ID: 8})
	if len(h.scene.hoops) != 1 || len(h.scene.markers) != 1 {
		t.Fatalf("events accepted after close: hoops=%d markers=%d", len(h.scene.hoops), len(h.scene.markers))
	}
	h.c.Close()
	if len(h.rounds) != 1 {
		t.Fatalf("second close finished another round")
	}
}

func TestTeardownWithoutHoopIsNotReported(t *testing.T) {
	h := newHarness(t)
	h.c.PlaneDetected(PlaneAnchor{ID: 7})
	h.c.Close()
	if len(h.rounds) != 0 {
		t.Fatalf("summaries = %+v, want none", h.rounds)
	}
}

func assertRoundReset(t *testing.T, h *harness, round int) {
	t.Helper()
	if h.c.Round() != round {
		t.Fatalf("round = %d, want %d", h.c.Round(), round)
	}
	gs := h.c.GameState()
	if gs.BasketPlaced || gs.Scored || gs.Power != cfg.Game.InitialPower || gs.RemainingBalls != cfg.Game.InitialBallCount {
		t.Fatalf("state not fresh after finish: %+v", gs)
	}
	if h.ui.labelVisible || h.ui.label != cfg.Text.BallsLabelPrefix {
		t.Fatalf("label = %q visible=%v after finish", h.ui.label, h.ui.labelVisible)
	}
	last := h.scene.removed[len(h.scene.removed)-1]
	want := []ObjectKind{KindBall, KindHoop, KindDetector, KindPlaneMarker}
	if !reflect.DeepEqual(last, want) {
		t.Fatalf("finish removed %v, want %v", last, want)
	}
	if h.c.State() != roundstate.PlaneDetected {
		t.Fatalf("state after finish = %v, want %v", h.c.State(), roundstate.PlaneDetected)
	}
	if h.c.Detector() != 0 {
		t.Fatalf("detector survived the round")
	}
}
