package jumper

import "github.com/vovakirdan/lavajump/internal/config"

// Snapshot is a read-only copy of the session state for rendering, logging
// and determinism checks. Mutating it never affects the session.
type Snapshot struct {
	Tick       uint64
	Screen     Screen
	Paused     bool
	Difficulty config.DifficultyPreset
	World      config.WorldConfig

	Player    Player
	Platforms []Platform
	Particles []Particle

	CameraY    float64
	HazardY    float64
	Score      int
	Height     int
	HighScore  int
	HighScoreY float64 // World y of the best-height line
	Multiplier float64

	Cause     Cause
	NewRecord bool
}

// GameOver reports whether the last session ended.
func (s Snapshot) GameOver() bool {
	return s.Screen == ScreenGameOver
}

// Snapshot returns a deep copy of the current state.
func (s *Session) Snapshot() Snapshot {
	platforms := make([]Platform, len(s.platforms))
	for i, p := range s.platforms {
		platforms[i] = p
		if p.Enemy != nil {
			e := *p.Enemy
			platforms[i].Enemy = &e
		}
	}
	particles := make([]Particle, len(s.particles))
	copy(particles, s.particles)

	difficulty := s.difficulty
	if s.screen == ScreenPlaying || s.screen == ScreenGameOver {
		difficulty = s.runDifficulty
	}

	return Snapshot{
		Tick:       s.tick,
		Screen:     s.screen,
		Paused:     s.paused,
		Difficulty: difficulty,
		World:      s.cfg.World,
		Player:     s.player,
		Platforms:  platforms,
		Particles:  particles,
		CameraY:    s.progress.CameraY(),
		HazardY:    s.hazard.Y(),
		Score:      s.progress.Score(),
		Height:     s.progress.Height(),
		HighScore:  s.highScore,
		HighScoreY: s.progress.LineY(s.highScore),
		Multiplier: s.progress.Multiplier(),
		Cause:      s.cause,
		NewRecord:  s.newRecord,
	}
}
