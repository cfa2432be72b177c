package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/lavajump/internal/audio"
	"github.com/vovakirdan/lavajump/internal/games/jumper"
)

// playUntilOver ticks until the session ends.
func playUntilOver(t *testing.T, m Model) Model {
	t.Helper()
	for range 2000 {
		m = tick(t, m, 1)
		if m.Session().Screen() == jumper.ScreenGameOver {
			return m
		}
	}
	t.Fatal("session never ended")
	return m
}

func TestMenuStartsSession(t *testing.T) {
	m, sound, _ := newTestModel(t, 0)

	if got := m.Session().Screen(); got != jumper.ScreenMenu {
		t.Fatalf("expected menu, got %s", got)
	}
	m = press(t, m, enterKey)

	if got := m.Session().Screen(); got != jumper.ScreenPlaying {
		t.Fatalf("expected playing after Play, got %s", got)
	}
	if !sound.playing {
		t.Error("music should be enabled while playing")
	}
	if !strings.Contains(m.View(), "Score:") {
		t.Error("playing view should show the HUD")
	}
}

func TestSteeringPressIsHeld(t *testing.T) {
	m, _, _ := newTestModel(t, 0)
	m = press(t, m, enterKey)

	startX := m.Session().Snapshot().Player.X
	m = press(t, m, runeKey('a'))
	m = tick(t, m, 3)

	speed := m.Session().Config().Physics.MoveSpeed
	if got := m.Session().Snapshot().Player.X; got != startX-3*speed {
		t.Errorf("player x = %f after 3 held ticks, expected %f", got, startX-3*speed)
	}

	// Opposite press replaces the latch
	m = press(t, m, runeKey('d'))
	before := m.Session().Snapshot().Player.X
	m = tick(t, m, 1)
	if got := m.Session().Snapshot().Player.X; got != before+speed {
		t.Errorf("player x = %f, expected %f after steering right", got, before+speed)
	}
}

func TestSteeringReleasesAfterHold(t *testing.T) {
	m, _, _ := newTestModel(t, 0)
	m = press(t, m, enterKey, runeKey('d'))
	m = tick(t, m, DefaultHoldTicks)

	before := m.Session().Snapshot().Player.X
	m = tick(t, m, 1)
	if got := m.Session().Snapshot().Player.X; got != before {
		t.Errorf("player drifted to %f after the hold expired, expected %f", got, before)
	}
}

func TestPauseKey(t *testing.T) {
	m, _, _ := newTestModel(t, 0)
	m = press(t, m, enterKey)
	m = tick(t, m, 5)

	m = press(t, m, runeKey('p'))
	m = tick(t, m, 1)
	snap := m.Session().Snapshot()
	if !snap.Paused {
		t.Fatal("expected paused session")
	}

	m = tick(t, m, 10)
	if got := m.Session().Snapshot().Tick; got != snap.Tick {
		t.Errorf("paused session advanced from tick %d to %d", snap.Tick, got)
	}
	if !strings.Contains(m.View(), "PAUSED") {
		t.Error("paused view should say PAUSED")
	}

	m = press(t, m, runeKey('p'))
	m = tick(t, m, 1)
	if m.Session().Snapshot().Paused {
		t.Error("second press should resume")
	}
}

func TestGameOverRecordsRun(t *testing.T) {
	m, sound, store := newTestModel(t, 60)
	m = press(t, m, enterKey)
	m = playUntilOver(t, m)

	snap := m.Session().Snapshot()
	if snap.Cause == jumper.CauseNone {
		t.Error("finished session should have a cause")
	}
	if sound.playing {
		t.Error("music should stop on game over")
	}
	if sound.count(audio.SoundGameOver) != 1 {
		t.Errorf("game over sound played %d times, expected 1", sound.count(audio.SoundGameOver))
	}

	if m.LastRunID() == 0 {
		t.Fatal("run was not recorded")
	}
	runs, err := store.RecentRuns(10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected 1 run, got %d", len(runs))
	}
	if runs[0].Difficulty != "normal" || runs[0].Cause != string(snap.Cause) || runs[0].Ticks != snap.Tick {
		t.Errorf("recorded run does not match session: %+v", runs[0])
	}

	// Further ticks must not record the same run again
	m = tick(t, m, 120)
	if runs, _ := store.RecentRuns(10); len(runs) != 1 {
		t.Errorf("run recorded %d times", len(runs))
	}
	if !strings.Contains(m.View(), "GAME OVER") {
		t.Error("game over view should show the summary")
	}
}

func TestRestartAndBackFromGameOver(t *testing.T) {
	m, sound, _ := newTestModel(t, 60)
	m = press(t, m, enterKey)
	m = playUntilOver(t, m)

	m = press(t, m, runeKey('r'))
	if got := m.Session().Screen(); got != jumper.ScreenPlaying {
		t.Fatalf("expected playing after restart, got %s", got)
	}
	if m.Session().Snapshot().Tick != 0 || m.LastRunID() != 0 {
		t.Error("restart should begin a fresh session")
	}
	if !sound.playing {
		t.Error("music should resume on restart")
	}

	m = playUntilOver(t, m)
	m = press(t, m, escKey)
	if got := m.Session().Screen(); got != jumper.ScreenMenu {
		t.Errorf("expected menu after back, got %s", got)
	}
}

func TestAbandonedSessionIsNotRecorded(t *testing.T) {
	m, sound, store := newTestModel(t, 0)
	m = press(t, m, enterKey)
	m = tick(t, m, 30)
	m = press(t, m, escKey)

	if got := m.Session().Screen(); got != jumper.ScreenMenu {
		t.Fatalf("expected menu, got %s", got)
	}
	if sound.playing {
		t.Error("music should stop on the menu")
	}
	if runs, _ := store.RecentRuns(10); len(runs) != 0 {
		t.Errorf("abandoned session recorded %d runs", len(runs))
	}
}

func TestSettingsScreen(t *testing.T) {
	m, sound, _ := newTestModel(t, 0)

	m = press(t, m, downKey, enterKey)
	if got := m.Session().Screen(); got != jumper.ScreenSettings {
		t.Fatalf("expected settings, got %s", got)
	}
	if !strings.Contains(m.View(), "Volume") {
		t.Error("settings view should list volume")
	}

	// Difficulty row
	m = press(t, m, rightKey)
	if got := m.Session().Difficulty(); got != "hard" {
		t.Errorf("difficulty = %s, expected hard", got)
	}
	m = press(t, m, rightKey)
	if got := m.Session().Difficulty(); got != "easy" {
		t.Errorf("difficulty should wrap to easy, got %s", got)
	}

	// Volume row
	m = press(t, m, downKey, rightKey, rightKey, rightKey, rightKey)
	if sound.settings.Volume != 100 {
		t.Errorf("volume = %d, expected clamp at 100", sound.settings.Volume)
	}
	m = press(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	if sound.settings.Volume != 90 {
		t.Errorf("volume = %d, expected 90", sound.settings.Volume)
	}

	// Music row
	m = press(t, m, downKey, enterKey)
	if sound.settings.Music {
		t.Error("music should be toggled off")
	}

	m = press(t, m, escKey)
	if got := m.Session().Screen(); got != jumper.ScreenMenu {
		t.Fatalf("expected menu after back, got %s", got)
	}

	// The new difficulty applies to the next session
	m = press(t, m, tea.KeyMsg{Type: tea.KeyUp}, enterKey)
	if got := m.Session().Snapshot().Difficulty; got != "easy" {
		t.Errorf("session difficulty = %s, expected easy", got)
	}
}

func TestScoreboardOverlay(t *testing.T) {
	m, _, _ := newTestModel(t, 60)
	m = press(t, m, enterKey)
	m = playUntilOver(t, m)
	m = press(t, m, escKey, tabKey)

	view := m.View()
	if !strings.Contains(view, "RUNS") {
		t.Fatalf("scoreboard not shown:\n%s", view)
	}
	if !strings.Contains(view, "#1") {
		t.Error("scoreboard should list the finished run")
	}

	m = press(t, m, escKey)
	if strings.Contains(m.View(), "RUNS") {
		t.Error("back should close the scoreboard")
	}
	if got := m.Session().Screen(); got != jumper.ScreenMenu {
		t.Errorf("expected menu, got %s", got)
	}
}

func TestQuitKeys(t *testing.T) {
	tests := []struct {
		name  string
		setup []tea.KeyMsg
		key   tea.KeyMsg
	}{
		{"menu q", nil, runeKey('q')},
		{"playing q", []tea.KeyMsg{enterKey}, runeKey('q')},
		{"playing ctrl+c", []tea.KeyMsg{enterKey}, tea.KeyMsg{Type: tea.KeyCtrlC}},
		{"scoreboard q", []tea.KeyMsg{tabKey}, runeKey('q')},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m, _, _ := newTestModel(t, 0)
			m = press(t, m, tc.setup...)
			m, cmd := send(t, m, tc.key)
			if !isQuit(cmd) {
				t.Error("expected tea.Quit")
			}
			if m.View() != "" {
				t.Error("quitting model should render nothing")
			}
		})
	}
}

func TestResizeKeepsSession(t *testing.T) {
	m, _, _ := newTestModel(t, 0)
	m = press(t, m, enterKey)
	m = tick(t, m, 20)
	before := m.Session().Snapshot().Tick

	m, _ = send(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	if got := m.Session().Snapshot().Tick; got != before {
		t.Errorf("resize reset the session: tick %d -> %d", before, got)
	}
	lines := strings.Split(m.View(), "\n")
	if len(lines) != 40 {
		t.Errorf("expected 40 rows after resize, got %d", len(lines))
	}
}

func TestBouncePitchRisesWithAltitude(t *testing.T) {
	ground := bouncePitch(jumper.TierGround)
	snow := bouncePitch(jumper.TierSnow)
	dark := bouncePitch(jumper.TierDark)
	if !(ground < snow && snow < dark) {
		t.Errorf("pitches not increasing: %f, %f, %f", ground, snow, dark)
	}
}
