package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/lavajump/internal/audio"
	"github.com/vovakirdan/lavajump/internal/config"
	"github.com/vovakirdan/lavajump/internal/core"
	"github.com/vovakirdan/lavajump/internal/storage"
)

// fakeSound records what the model asks the audio layer to do.
type fakeSound struct {
	played   []audio.Sound
	playing  bool
	settings audio.Settings
}

func (f *fakeSound) Play(s audio.Sound, _ float64) { f.played = append(f.played, s) }
func (f *fakeSound) SetPlaying(p bool)             { f.playing = p }
func (f *fakeSound) Apply(s audio.Settings)        { f.settings = s.Clamp() }
func (f *fakeSound) Settings() audio.Settings      { return f.settings }

func (f *fakeSound) count(s audio.Sound) int {
	n := 0
	for _, p := range f.played {
		if p == s {
			n++
		}
	}
	return n
}

// newTestModel builds a model on the menu with an in-memory store.
// lavaSpeed overrides the normal tier when positive.
func newTestModel(t *testing.T, lavaSpeed float64) (Model, *fakeSound, *storage.Store) {
	t.Helper()

	cfg := config.Default()
	if lavaSpeed > 0 {
		tier := cfg.Difficulty["normal"]
		tier.LavaSpeed = lavaSpeed
		cfg.Difficulty["normal"] = tier
	}

	store, err := storage.OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	sound := &fakeSound{settings: audio.DefaultSettings()}
	m := NewModel(Options{
		Config:     cfg,
		Runtime:    core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 42},
		Difficulty: "normal",
		Store:      store,
		Audio:      sound,
	})
	return m, sound, store
}

func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, expected Model", next)
	}
	return model, cmd
}

func press(t *testing.T, m Model, keys ...tea.KeyMsg) Model {
	t.Helper()
	for _, k := range keys {
		m, _ = send(t, m, k)
	}
	return m
}

func tick(t *testing.T, m Model, n int) Model {
	t.Helper()
	for range n {
		m, _ = send(t, m, TickMsg{})
	}
	return m
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

var (
	enterKey = tea.KeyMsg{Type: tea.KeyEnter}
	escKey   = tea.KeyMsg{Type: tea.KeyEsc}
	downKey  = tea.KeyMsg{Type: tea.KeyDown}
	rightKey = tea.KeyMsg{Type: tea.KeyRight}
	tabKey   = tea.KeyMsg{Type: tea.KeyTab}
)

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}
