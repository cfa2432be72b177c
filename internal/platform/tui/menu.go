package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/lavajump/internal/core"
	"github.com/vovakirdan/lavajump/internal/games/jumper"
)

// MenuItem is an entry on the main menu.
type MenuItem int

const (
	MenuPlay MenuItem = iota
	MenuSettings
	MenuScores
	MenuQuit
)

var menuItems = []MenuItem{MenuPlay, MenuSettings, MenuScores, MenuQuit}

// String returns the menu label.
func (i MenuItem) String() string {
	switch i {
	case MenuPlay:
		return "Play"
	case MenuSettings:
		return "Settings"
	case MenuScores:
		return "Scores"
	case MenuQuit:
		return "Quit"
	default:
		return ""
	}
}

// SettingsItem is a row on the settings screen.
type SettingsItem int

const (
	SettingDifficulty SettingsItem = iota
	SettingVolume
	SettingMusic
	SettingBack
)

var settingsItems = []SettingsItem{SettingDifficulty, SettingVolume, SettingMusic, SettingBack}

const volumeStep = 10

// handleMenuKey processes keyboard input for menu navigation.
func (m Model) handleMenuKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		return m.quit()

	case MenuActionUp:
		if m.menuCursor > 0 {
			m.menuCursor--
		}

	case MenuActionDown:
		if m.menuCursor < len(menuItems)-1 {
			m.menuCursor++
		}

	case MenuActionLeft:
		m.cycleDifficulty(-1)

	case MenuActionRight:
		m.cycleDifficulty(1)

	case MenuActionScoreboard:
		m.openScores()

	case MenuActionSelect:
		return m.selectMenuItem(menuItems[m.menuCursor])
	}

	return m, nil
}

func (m Model) selectMenuItem(item MenuItem) (tea.Model, tea.Cmd) {
	switch item {
	case MenuPlay:
		if err := m.session.Start(); err != nil {
			m.logger.Error("cannot start session", "err", err)
			return m, nil
		}
		m.beginSession()
	case MenuSettings:
		if err := m.session.OpenSettings(); err != nil {
			m.logger.Error("cannot open settings", "err", err)
			return m, nil
		}
		m.settingsCursor = 0
	case MenuScores:
		m.openScores()
	case MenuQuit:
		return m.quit()
	}
	return m, nil
}

func (m *Model) openScores() {
	scores := NewScoreboardModel(m.store, m.tiers, m.config.ScreenW, m.config.ScreenH)
	m.scores = &scores
}

// handleSettingsKey adjusts difficulty and audio options.
func (m Model) handleSettingsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		return m.quit()

	case MenuActionUp:
		if m.settingsCursor > 0 {
			m.settingsCursor--
		}

	case MenuActionDown:
		if m.settingsCursor < len(settingsItems)-1 {
			m.settingsCursor++
		}

	case MenuActionLeft:
		m.adjustSetting(settingsItems[m.settingsCursor], -1)

	case MenuActionRight:
		m.adjustSetting(settingsItems[m.settingsCursor], 1)

	case MenuActionSelect:
		item := settingsItems[m.settingsCursor]
		if item != SettingBack {
			m.adjustSetting(item, 1)
			break
		}
		m.closeSettings()

	case MenuActionBack:
		m.closeSettings()
	}

	return m, nil
}

func (m *Model) closeSettings() {
	if err := m.session.CloseSettings(); err != nil {
		m.logger.Error("cannot close settings", "err", err)
	}
}

func (m *Model) adjustSetting(item SettingsItem, dir int) {
	switch item {
	case SettingDifficulty:
		m.cycleDifficulty(dir)
	case SettingVolume:
		s := m.sound.Settings()
		s.Volume += dir * volumeStep
		m.sound.Apply(s)
	case SettingMusic:
		s := m.sound.Settings()
		s.Music = !s.Music
		m.sound.Apply(s)
	}
}

// cycleDifficulty selects the next or previous configured tier. The change
// applies to the next session.
func (m *Model) cycleDifficulty(dir int) {
	if len(m.tiers) == 0 {
		return
	}
	current := string(m.session.Difficulty())
	idx := 0
	for i, name := range m.tiers {
		if name == current {
			idx = i
			break
		}
	}
	idx = (idx + dir + len(m.tiers)) % len(m.tiers)
	preset, _ := m.session.SetDifficulty(m.tiers[idx])
	m.logger.Debug("difficulty selected", "difficulty", preset)
}

// drawMenu draws the title screen.
func (m *Model) drawMenu() {
	s := m.screen
	s.Clear()

	y := core.Max(1, s.Height()/2-7)
	s.DrawTextCentered(y, "L A V A J U M P", core.ColorLava)
	s.DrawTextCentered(y+1, strings.Repeat(string(jumper.WaveAltChar), 17), core.ColorEmber)
	s.DrawTextCentered(y+3, "Bounce up. Outrun the lava.", core.ColorGray)

	y += 5
	for i, item := range menuItems {
		line := "  " + item.String() + "  "
		color := core.ColorWhite
		if i == m.menuCursor {
			line = "> " + item.String() + " <"
			color = core.ColorGold
		}
		s.DrawTextCentered(y+i, line, color)
	}

	y += len(menuItems) + 1
	s.DrawTextCentered(y, fmt.Sprintf("Difficulty: < %s >", m.session.Difficulty()), core.ColorPink)
	if best := m.session.HighScore(); best > 0 {
		s.DrawTextCentered(y+1, fmt.Sprintf("Best: %d", best), core.ColorGold)
	}

	s.DrawTextCentered(s.Height()-2,
		"Enter: Select  Left/Right: Difficulty  Tab: Scores  Q: Quit",
		core.ColorGray)
}

// drawSettings draws the settings screen.
func (m *Model) drawSettings() {
	s := m.screen
	s.Clear()

	y := core.Max(1, s.Height()/2-5)
	s.DrawTextCentered(y, "S E T T I N G S", core.ColorWhite)

	y += 2
	for i, item := range settingsItems {
		line := m.settingLine(item)
		color := core.ColorWhite
		if i == m.settingsCursor {
			line = "> " + line + " <"
			color = core.ColorGold
		}
		s.DrawTextCentered(y+i, line, color)
	}

	s.DrawTextCentered(s.Height()-2,
		"Up/Down: Navigate  Left/Right: Change  Esc: Back",
		core.ColorGray)
}

func (m *Model) settingLine(item SettingsItem) string {
	settings := m.sound.Settings()
	switch item {
	case SettingDifficulty:
		return fmt.Sprintf("Difficulty   %-8s", m.session.Difficulty())
	case SettingVolume:
		return fmt.Sprintf("Volume       %-8s", fmt.Sprintf("%d%%", settings.Volume))
	case SettingMusic:
		music := "off"
		if settings.Music {
			music = "on"
		}
		return fmt.Sprintf("Music        %-8s", music)
	default:
		return "Back"
	}
}

type summaryLine struct {
	text  string
	color core.Color
}

// drawSummary draws the game-over box over the last frame.
func (m *Model) drawSummary(snap jumper.Snapshot) {
	s := m.screen
	score := snap.Score
	if m.summary != nil {
		score = m.summary.Score()
	}

	cause := "The lava got you"
	if snap.Cause == jumper.CauseEnemy {
		cause = "Caught by a monster"
	}

	lines := []summaryLine{
		{"GAME OVER", core.ColorLava},
		{cause, core.ColorGray},
		{"", core.ColorDefault},
		{fmt.Sprintf("Score: %d", score), core.ColorWhite},
		{fmt.Sprintf("Best:  %d", snap.HighScore), core.ColorGold},
	}
	if snap.NewRecord {
		color := core.ColorEmber
		if m.summary != nil && m.summary.Bright() {
			color = core.ColorGold
		}
		lines = append(lines, summaryLine{"NEW RECORD!", color})
	}
	lines = append(lines, summaryLine{"R: Restart   Esc: Menu   Q: Quit", core.ColorGray})

	boxW := 38
	boxH := len(lines) + 4
	box := core.NewRect((s.Width()-boxW)/2, (s.Height()-boxH)/2, boxW, boxH)
	s.DrawRect(box, ' ', core.ColorDefault)
	s.DrawBox(box, core.ColorEmber)
	for i, l := range lines {
		s.DrawTextCentered(box.Y+2+i, l.text, l.color)
	}
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	if len(text) >= width {
		return text
	}
	padding := (width - len(text)) / 2
	return strings.Repeat(" ", padding) + text
}
