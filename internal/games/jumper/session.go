package jumper

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/lavajump/internal/config"
	"github.com/vovakirdan/lavajump/internal/core"
)

// Screen is the top-level state of the session controller.
type Screen string

const (
	ScreenMenu     Screen = "menu"
	ScreenSettings Screen = "settings"
	ScreenPlaying  Screen = "playing"
	ScreenGameOver Screen = "game_over"
)

// Cause records why a session ended.
type Cause string

const (
	CauseNone  Cause = ""
	CauseEnemy Cause = "enemy"
	CauseLava  Cause = "lava"
)

// ErrInvalidTransition is returned when a screen change is not allowed from
// the current screen. The session is left untouched.
var ErrInvalidTransition = errors.New("jumper: invalid screen transition")

// EventKind identifies something that happened during a tick.
type EventKind int

const (
	EventLanded EventKind = iota
	EventNewHeight
	EventEnemyHit
	EventEngulfed
	EventNewRecord
)

// String returns the event name.
func (k EventKind) String() string {
	switch k {
	case EventLanded:
		return "landed"
	case EventNewHeight:
		return "new_height"
	case EventEnemyHit:
		return "enemy_hit"
	case EventEngulfed:
		return "engulfed"
	case EventNewRecord:
		return "new_record"
	default:
		return "unknown"
	}
}

// Event is reported to the platform layer for sound and logging.
type Event struct {
	Kind   EventKind
	Tier   ColorTier // Landed: platform tier
	Height int       // NewHeight, NewRecord
}

// StepResult is returned by Tick.
type StepResult struct {
	Snapshot Snapshot
	Events   []Event
}

// Option configures a Session.
type Option func(*Session)

// WithRand replaces the seeded sources. world drives generation, fx drives
// particles.
func WithRand(world, fx Rand) Option {
	return func(s *Session) {
		s.worldRng = world
		s.fxRng = fx
	}
}

// WithDifficulty preselects a difficulty tier.
func WithDifficulty(name string) Option {
	return func(s *Session) {
		s.SetDifficulty(name)
	}
}

// Session owns every entity and drives the screen state machine.
type Session struct {
	cfg      config.Config
	worldRng Rand
	fxRng    Rand

	// Selected on the menu, applied at the next start
	difficulty config.DifficultyPreset
	// Captured at start for the running session
	runDifficulty config.DifficultyPreset
	runTier       config.DifficultyTier

	screen Screen
	paused bool
	over   bool
	cause  Cause

	integrator Integrator
	resolver   Resolver
	generator  *Generator
	emitter    *Emitter
	progress   *Progress
	hazard     *Hazard

	player    Player
	platforms []Platform
	particles []Particle
	tick      uint64

	highScore int
	newRecord bool
}

// NewSession creates a session on the menu screen. rc.Seed seeds both random
// sources unless WithRand is given.
func NewSession(cfg config.Config, rc core.RuntimeConfig, opts ...Option) *Session {
	s := &Session{
		cfg:      cfg,
		worldRng: NewRand(rc.Seed),
		fxRng:    NewRand(rc.Seed + 1),
		screen:   ScreenMenu,
		integrator: Integrator{
			Gravity:   cfg.Physics.Gravity,
			MoveSpeed: cfg.Physics.MoveSpeed,
			WorldW:    cfg.World.Width,
		},
		resolver: Resolver{
			LandingMargin: cfg.Collision.LandingMargin,
			JumpImpulse:   cfg.Physics.JumpImpulse,
		},
		progress: NewProgress(cfg),
		hazard:   NewHazard(cfg.World.Height, cfg.Hazard.StartOffset, cfg.Collision.HazardBuffer),
	}
	s.difficulty, _, _ = cfg.Tier(cfg.DefaultDifficulty)
	for _, opt := range opts {
		opt(s)
	}
	s.emitter = NewEmitter(cfg.Particles, s.fxRng)
	s.runDifficulty, s.runTier, _ = cfg.Tier(string(s.difficulty))
	return s
}

// SetDifficulty selects the tier for the next session. Unknown names fall
// back to the default tier and report false.
func (s *Session) SetDifficulty(name string) (config.DifficultyPreset, bool) {
	preset, _, ok := s.cfg.Tier(name)
	s.difficulty = preset
	return preset, ok
}

// Difficulty returns the selected tier name.
func (s *Session) Difficulty() config.DifficultyPreset { return s.difficulty }

// Screen returns the current screen.
func (s *Session) Screen() Screen { return s.screen }

// HighScore returns the best score of this process.
func (s *Session) HighScore() int { return s.highScore }

// Config returns the configuration the session runs with.
func (s *Session) Config() config.Config { return s.cfg }

// Start begins a session from the menu.
func (s *Session) Start() error {
	if err := s.transition(ScreenPlaying, ScreenMenu); err != nil {
		return err
	}
	s.reset()
	return nil
}

// Restart begins a fresh session from the game-over screen.
func (s *Session) Restart() error {
	if err := s.transition(ScreenPlaying, ScreenGameOver); err != nil {
		return err
	}
	s.reset()
	return nil
}

// OpenSettings shows the settings screen.
func (s *Session) OpenSettings() error {
	return s.transition(ScreenSettings, ScreenMenu)
}

// CloseSettings returns to the menu.
func (s *Session) CloseSettings() error {
	return s.transition(ScreenMenu, ScreenSettings)
}

// ToMenu leaves a running or finished session. An abandoned session records
// no score.
func (s *Session) ToMenu() error {
	if err := s.transition(ScreenMenu, ScreenPlaying, ScreenGameOver); err != nil {
		return err
	}
	s.paused = false
	return nil
}

// TogglePause flips the pause flag while playing.
func (s *Session) TogglePause() {
	if s.screen == ScreenPlaying {
		s.paused = !s.paused
	}
}

func (s *Session) transition(to Screen, from ...Screen) error {
	for _, f := range from {
		if s.screen == f {
			s.screen = to
			return nil
		}
	}
	return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, s.screen, to)
}

// reset rebuilds every entity for a new session.
func (s *Session) reset() {
	s.runDifficulty, s.runTier, _ = s.cfg.Tier(string(s.difficulty))

	s.player = Player{
		X: s.cfg.World.Width/2 - s.cfg.Player.Width/2,
		Y: s.cfg.World.Height / 2,
		W: s.cfg.Player.Width,
		H: s.cfg.Player.Height,
	}
	s.generator = NewGenerator(s.cfg, s.runTier, s.worldRng)
	s.platforms = s.generator.Seed()
	s.particles = s.particles[:0]
	s.progress.Reset()
	s.hazard.Reset()

	s.tick = 0
	s.paused = false
	s.over = false
	s.cause = CauseNone
	s.newRecord = false
}

// Tick advances the simulation by one step. It is a no-op outside the
// playing screen and while paused (except for the pause toggle itself).
func (s *Session) Tick(in core.InputFrame) StepResult {
	if s.screen != ScreenPlaying {
		return StepResult{Snapshot: s.Snapshot()}
	}
	if in.Has(core.ActionPause) {
		s.paused = !s.paused
	}
	if s.paused {
		return StepResult{Snapshot: s.Snapshot()}
	}

	var events []Event
	s.tick++

	s.integrator.Step(&s.player, in)

	if s.progress.Follow(s.player.Y) {
		events = append(events, Event{Kind: EventNewHeight, Height: s.progress.Height()})
	}

	cameraY := s.progress.CameraY()
	s.platforms = s.generator.Extend(s.platforms, cameraY)
	s.platforms = s.generator.Prune(s.platforms, cameraY)

	contact := s.resolver.Resolve(&s.player, s.platforms)
	for _, l := range contact.Landings {
		s.particles = s.emitter.Burst(s.particles, l)
		events = append(events, Event{Kind: EventLanded, Tier: l.Tier})
	}
	if contact.EnemyHit {
		events = append(events, s.endSession(CauseEnemy)...)
	}

	s.hazard.Advance(s.runTier.LavaSpeed * s.progress.Multiplier())
	if s.hazard.Engulfs(s.player) {
		events = append(events, s.endSession(CauseLava)...)
	}

	s.particles = s.emitter.Step(s.particles)

	return StepResult{Snapshot: s.Snapshot(), Events: events}
}

// endSession finishes the running session. Only the first call per session
// has any effect.
func (s *Session) endSession(cause Cause) []Event {
	if s.over {
		return nil
	}
	s.over = true
	s.cause = cause
	s.screen = ScreenGameOver

	kind := EventEngulfed
	if cause == CauseEnemy {
		kind = EventEnemyHit
	}
	events := []Event{{Kind: kind, Height: s.progress.Height()}}

	if score := s.progress.Score(); score > s.highScore {
		s.highScore = score
		s.newRecord = true
		events = append(events, Event{Kind: EventNewRecord, Height: score})
	}
	return events
}
