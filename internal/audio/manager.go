// Package audio synthesizes lavajump's sound effects and music loop with
// gopxl/beep. Audio is optional: when the speaker cannot be opened every
// method is a silent no-op.
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)

	// DefaultVolume is the initial master volume in percent.
	DefaultVolume = 70
	musicBPM      = 132
)

// Settings are the player-facing audio options.
type Settings struct {
	Volume int  // 0-100
	Music  bool // Background loop on/off
}

// DefaultSettings returns volume 70 with music on.
func DefaultSettings() Settings {
	return Settings{Volume: DefaultVolume, Music: true}
}

// Clamp restricts the volume to 0-100.
func (s Settings) Clamp() Settings {
	if s.Volume < 0 {
		s.Volume = 0
	}
	if s.Volume > 100 {
		s.Volume = 100
	}
	return s
}

// Manager owns the mixer and plays effects on demand.
type Manager struct {
	mu       sync.Mutex
	rate     beep.SampleRate
	mixer    *beep.Mixer
	master   *effects.Volume
	music    *beep.Ctrl
	settings Settings
	playing  bool // A session is running; music only plays then
	enabled  bool

	// speaker.Lock/Unlock once the speaker is running
	lock   func()
	unlock func()
}

// NewManager creates a manager. Nothing is audible until Init succeeds.
func NewManager(settings Settings) *Manager {
	m := &Manager{
		rate:   sampleRate,
		mixer:  &beep.Mixer{},
		lock:   func() {},
		unlock: func() {},
	}
	m.master = newVolume(m.mixer, 1)
	m.music = &beep.Ctrl{Streamer: NewMusic(musicBPM, m.rate), Paused: true}
	m.mixer.Add(m.music)
	m.applyLocked(settings.Clamp())
	return m
}

// Init opens the speaker. On failure the manager stays silent.
func (m *Manager) Init() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.enabled {
		return nil
	}
	if err := speaker.Init(m.rate, m.rate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: cannot open speaker: %w", err)
	}
	m.lock, m.unlock = speaker.Lock, speaker.Unlock
	speaker.Play(m.output())
	m.enabled = true
	return nil
}

// Close stops all sound.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.enabled {
		return
	}
	speaker.Clear()
	m.enabled = false
}

// Enabled reports whether the speaker is running.
func (m *Manager) Enabled() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.enabled
}

// Settings returns the current settings.
func (m *Manager) Settings() Settings {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.settings
}

// Apply changes volume and the music toggle.
func (m *Manager) Apply(s Settings) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.applyLocked(s.Clamp())
}

func (m *Manager) applyLocked(s Settings) {
	m.lock()
	defer m.unlock()

	m.settings = s
	m.master.Volume, m.master.Silent = volumeLevel(float64(s.Volume) / 100)
	m.music.Paused = !(s.Music && m.playing)
}

// SetPlaying tells the manager whether a session is running, which gates
// the music loop.
func (m *Manager) SetPlaying(playing bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.playing = playing
	m.applyLocked(m.settings)
}

// MusicPlaying reports whether the loop is currently audible.
func (m *Manager) MusicPlaying() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lock()
	defer m.unlock()
	return !m.music.Paused
}

// Play queues an effect. pitch scales its frequencies.
func (m *Manager) Play(s Sound, pitch float64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.enabled || m.settings.Volume == 0 {
		return
	}
	streamer := Effect(s, pitch, m.rate)
	if streamer == nil {
		return
	}
	m.lock()
	m.mixer.Add(streamer)
	m.unlock()
}

// Active returns the number of streamers in the mixer, music included.
func (m *Manager) Active() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lock()
	defer m.unlock()
	return m.mixer.Len()
}

// output is the final stream handed to the speaker.
func (m *Manager) output() beep.Streamer {
	return m.master
}
