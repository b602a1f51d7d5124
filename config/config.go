package config

import (
	"image/color"
	"time"
)

// GameConfig contains the per-round counters' starting values
type GameConfig struct {
	InitialPower     float64
	PowerStep        float64 // Added to power on every charge tick
	InitialBallCount int
}

// ThrowConfig contains ball launch configuration values
type ThrowConfig struct {
	CurveMultiplier float64 // Vertical impulse multiplier so shots arc
	BallRadius      float64 // metres
	BallRestitution float64
	BallMass        float64
	MaxBallSpeed    float64 // metres/second, per axis
}

// TimingConfig contains every delay and interval used by the session
type TimingConfig struct {
	ChargeInterval   time.Duration // Between two power build-ups while a touch is held
	ActivationDelay  time.Duration // Placement to basket activation
	HintDuration     time.Duration // Surface-detected hint visibility
	FinishDelay      time.Duration // Score/depletion to round finish
	ConfettiLifetime time.Duration
}

// HoopConfig contains hoop and detector geometry in metres. The backboard
// stands on the placement anchor (the hit position on the surface).
type HoopConfig struct {
	BackboardWidth  float64 // along depth, thin slab against the surface
	BackboardHeight float64
	RimDepth        float64 // how far the rim sticks out from the board
	RimThickness    float64
	RingOffsetY     float64 // ring height relative to the top of the board
	DetectorOffsetY float64 // detector height relative to the ring
	DetectorSize    float64 // detector height; it spans the ring opening
	BlockerOffset   float64 // blocking plane distance below the detector
	Restitution     float64
}

// RoomConfig contains the desktop room simulation values
type RoomConfig struct {
	Directory        string // inside the embedded assets FS
	DefaultRoom      string
	PixelsPerMeter   float64
	Gravity          float64 // metres/second^2
	CellSize         int     // resolv cell size, pixels
	HitTestTolerance float64 // pixels on either side of a surface
	PitchSpeed       float64 // radians per tick while a pitch key is held
	MinPitch         float64
	MaxPitch         float64
	StartPitch       float64
	BallLifetime     time.Duration
}

// ModalText contains the content of one modal dialog
type ModalText struct {
	Title   string
	Message string
	Actions []string
}

// TextConfig contains all user-visible strings
type TextConfig struct {
	SurfaceDetected  string
	BallsLabelPrefix string
	BuyMore          ModalText
	Connected        ModalText
	MenuTitle        string
	MenuHint         MenuHints
}

// MenuHints holds the title screen hint per input device
type MenuHints struct {
	Keyboard string
	Pointer  string // mouse and touch
	Gamepad  string
}

// HUDConfig contains HUD layout and colors
type HUDConfig struct {
	Margin          float64
	HintTopMargin   float64
	HintPadding     float64
	HintBoxColor    color.RGBA
	TextColor       color.RGBA
	PowerBarWidth   float64
	PowerBarHeight  float64
	PowerBarMax     float64 // power at which the bar is full
	PowerBarBgColor color.RGBA
	PowerBarFgColor color.RGBA
	HintFadeTime    float32 // seconds of fade at the end of the hint
}

// SceneColors contains the side-view render colors
type SceneColors struct {
	Background color.RGBA
	Floor      color.RGBA
	Surface    color.RGBA
	Marker     color.RGBA
	Backboard  color.RGBA
	Rim        color.RGBA
	Detector   color.RGBA
	Ball       color.RGBA
	Viewer     color.RGBA
	AimLine    color.RGBA
}

// ConfettiConfig contains celebration effect values
type ConfettiConfig struct {
	Count        int
	Spread       float64 // metres around the ring
	FallDistance float64 // metres
	PieceSize    float32 // pixels
	Colors       []color.RGBA
}

// PersistenceConfig contains save data values
type PersistenceConfig struct {
	AppName  string
	StatsKey string
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	TPS    int
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipMenu  bool // Skip menu and go directly to the court
	Overlay   bool // Draw collision boxes and session state
	LogEvents bool // Log every session transition
}

// Global configuration instances
var C *Config
var Game GameConfig
var Throw ThrowConfig
var Timing TimingConfig
var Hoop HoopConfig
var Room RoomConfig
var Text TextConfig
var HUD HUDConfig
var Colors SceneColors
var Confetti ConfettiConfig
var Persistence PersistenceConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	Blue         = color.RGBA{R: 0, G: 100, B: 255, A: 255}
	Purple       = color.RGBA{R: 128, G: 0, B: 255, A: 255}
	Magenta      = color.RGBA{R: 255, G: 0, B: 255, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	DarkBlue     = color.RGBA{R: 60, G: 100, B: 160, A: 255}
)

func init() {
	C = &Config{
		Width:  640,
		Height: 360,
		TPS:    60,
	}

	Game = GameConfig{
		InitialPower:     1.0,
		PowerStep:        1.0,
		InitialBallCount: 3,
	}

	Throw = ThrowConfig{
		CurveMultiplier: 3,
		BallRadius:      0.2,
		BallRestitution: 0.2,
		BallMass:        1.0,
		MaxBallSpeed:    40.0,
	}

	Timing = TimingConfig{
		ChargeInterval:   50 * time.Millisecond,
		ActivationDelay:  200 * time.Millisecond,
		HintDuration:     3 * time.Second,
		FinishDelay:      3 * time.Second,
		ConfettiLifetime: 4 * time.Second,
	}

	Hoop = HoopConfig{
		BackboardWidth:  0.1,
		BackboardHeight: 1.05,
		RimDepth:        0.6,
		RimThickness:    0.04,
		RingOffsetY:     -0.15,
		DetectorOffsetY: -0.2,
		DetectorSize:    0.05,
		BlockerOffset:   0.1,
		Restitution:     0.5,
	}

	Room = RoomConfig{
		Directory:        "rooms",
		DefaultRoom:      "living_room",
		PixelsPerMeter:   80,
		Gravity:          9.8,
		CellSize:         8,
		HitTestTolerance: 12,
		PitchSpeed:       0.02,
		MinPitch:         -0.6,
		MaxPitch:         1.2,
		StartPitch:       0.35,
		BallLifetime:     10 * time.Second,
	}

	Text = TextConfig{
		SurfaceDetected:  "Surface detected - tap it to place the hoop",
		BallsLabelPrefix: "Balls left: ",
		BuyMore: ModalText{
			Title:   "Tasty Microtransaction",
			Message: "Buy more balls for just $0.99, or buy an introduction for just $9.99",
			Actions: []string{"Dismiss", "Buy Balls", "Buy Intro"},
		},
		Connected: ModalText{
			Title:   "Congrats!",
			Message: "Ok I will introduce you!",
			Actions: []string{"Dismiss"},
		},
		MenuTitle: "TROVEY BALL",
		MenuHint: MenuHints{
			Keyboard: "Up/Down: Navigate   Enter: Select",
			Pointer:  "Click or tap to select",
			Gamepad:  "D-Pad: Navigate   A: Select",
		},
	}

	HUD = HUDConfig{
		Margin:          10,
		HintTopMargin:   12,
		HintPadding:     6,
		HintBoxColor:    color.RGBA{R: 0, G: 0, B: 0, A: 160},
		TextColor:       White,
		PowerBarWidth:   120,
		PowerBarHeight:  8,
		PowerBarMax:     40,
		PowerBarBgColor: color.RGBA{R: 40, G: 40, B: 40, A: 255},
		PowerBarFgColor: Orange,
		HintFadeTime:    0.5,
	}

	Colors = SceneColors{
		Background: color.RGBA{R: 24, G: 26, B: 36, A: 255},
		Floor:      color.RGBA{R: 70, G: 60, B: 50, A: 255},
		Surface:    color.RGBA{R: 90, G: 90, B: 110, A: 255},
		Marker:     color.RGBA{R: 80, G: 200, B: 255, A: 120},
		Backboard:  White,
		Rim:        Orange,
		Detector:   color.RGBA{R: 0, G: 255, B: 0, A: 90},
		Ball:       color.RGBA{R: 230, G: 120, B: 30, A: 255},
		Viewer:     LightBlue,
		AimLine:    color.RGBA{R: 100, G: 180, B: 255, A: 120},
	}

	Confetti = ConfettiConfig{
		Count:        24,
		Spread:       0.5,
		FallDistance: 1.2,
		PieceSize:    3,
		Colors:       []color.RGBA{Yellow, Magenta, Green, Blue, Red, Purple},
	}

	Persistence = PersistenceConfig{
		AppName:  "troveyball",
		StatsKey: "stats",
	}

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{
		SkipMenu:  false,
		Overlay:   false,
		LogEvents: false,
	}
}
