package session

import (
	"time"

	"github.com/automoto/troveyball/schedule"
	"github.com/automoto/troveyball/shared/gamemath"
)

// ScreenPoint is a position on the display, in pixels.
type ScreenPoint struct {
	X, Y float64
}

// Hit is the result of a successful hit test against a detected surface.
type Hit struct {
	Position gamemath.Vec3
	PlaneID  int
}

// PlaneAnchor describes a detected surface.
type PlaneAnchor struct {
	ID     int
	Pose   gamemath.Pose
	Width  float64
	Height float64
}

// BodyID identifies an object the scene spawned. Zero is never a valid ID.
type BodyID uint64

// Category is a collision category bit. Contacts are only reported for
// pairs whose categories match one side's contact mask.
type Category uint32

const (
	CategoryBall Category = 1 << iota
	CategoryRing
)

// ObjectKind groups scene objects for bulk removal.
type ObjectKind int

const (
	KindBall ObjectKind = iota
	KindHoop
	KindDetector
	KindPlaneMarker
)

// HoopPlacement is what the scene reports after anchoring a hoop.
type HoopPlacement struct {
	Hoop     BodyID
	Detector BodyID
	Ring     gamemath.Vec3 // world position of the ring, for the celebration
}

// BallSpec describes a ball to spawn and launch.
type BallSpec struct {
	Position    gamemath.Vec3
	Impulse     gamemath.Vec3
	Radius      float64
	Restitution float64
	Mass        float64
	Category    Category
	ContactMask Category
}

// Contact is a contact-begin notification between two bodies.
type Contact struct {
	A, B                 BodyID
	CategoryA, CategoryB Category
}

// Involves reports whether id is one of the two bodies.
func (c Contact) Involves(id BodyID) bool {
	return id != 0 && (c.A == id || c.B == id)
}

// categoryOf returns the category of id in the contact.
func (c Contact) categoryOf(id BodyID) Category {
	if c.A == id {
		return c.CategoryA
	}
	return c.CategoryB
}

// other returns the category of the body that is not id.
func (c Contact) other(id BodyID) Category {
	if c.A == id {
		return c.CategoryB
	}
	return c.CategoryA
}

// Modal is an informational dialog.
type Modal struct {
	Title   string
	Message string
	Actions []string
}

// Tracker is the surface-tracking collaborator. Surface-detected events are
// pushed into Controller.PlaneDetected by whoever owns the tracker.
type Tracker interface {
	HitTest(p ScreenPoint) (Hit, bool)
	ViewerPose() (gamemath.Pose, bool)
}

// Scene is the scene/physics collaborator.
type Scene interface {
	AddPlaneMarker(anchor PlaneAnchor) error
	PlaceHoop(at gamemath.Vec3) (HoopPlacement, error)
	SpawnBall(spec BallSpec) (BodyID, error)
	Celebrate(at gamemath.Vec3)
	Remove(kinds ...ObjectKind)
}

// UI is the presentation collaborator.
type UI interface {
	ShowHint(text string)
	HideHint()
	SetBallsLabel(text string, visible bool)
	PresentModal(m Modal)
}

// Timers is the timer collaborator. *schedule.Scheduler implements it.
type Timers interface {
	After(delay time.Duration, fn func()) *schedule.Handle
	NewGroup() *schedule.Group
}
