package tui

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/lavajump/internal/audio"
	"github.com/vovakirdan/lavajump/internal/config"
	"github.com/vovakirdan/lavajump/internal/core"
	"github.com/vovakirdan/lavajump/internal/games/jumper"
	"github.com/vovakirdan/lavajump/internal/storage"
)

// DefaultHoldTicks is how long a steering press stays active.
const DefaultHoldTicks = 8

// SoundPlayer is the audio surface the UI needs. *audio.Manager implements it.
type SoundPlayer interface {
	Play(s audio.Sound, pitch float64)
	SetPlaying(playing bool)
	Apply(s audio.Settings)
	Settings() audio.Settings
}

// Options configures a Model. Store, Audio and Logger are optional.
type Options struct {
	Config     config.Config
	Runtime    core.RuntimeConfig
	Difficulty string
	HoldTicks  int
	Store      *storage.Store
	Audio      SoundPlayer
	Logger     *log.Logger
}

// Model is the Bubble Tea model for the whole game. Menu, settings, play and
// game over follow the session's screen; the scoreboard is a UI-only overlay
// on top of the menu.
type Model struct {
	session    *jumper.Session
	screen     *core.Screen
	view       jumper.View
	keyMapper  *KeyMapper
	latch      *core.IntentLatch
	inputFrame core.InputFrame
	store      *storage.Store
	sound      SoundPlayer
	logger     *log.Logger
	config     core.RuntimeConfig
	tiers      []string

	menuCursor     int
	settingsCursor int
	scores         *ScoreboardModel
	summary        *summaryAnim
	shimmer        *shimmer
	lastRunID      int64
	quitting       bool
}

// NewModel creates the game model on the menu screen.
func NewModel(opts Options) Model {
	cfg := opts.Runtime
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}
	if opts.HoldTicks <= 0 {
		opts.HoldTicks = DefaultHoldTicks
	}
	if opts.Audio == nil {
		opts.Audio = audio.NewManager(audio.DefaultSettings()) // Silent until Init
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	var sessionOpts []jumper.Option
	if opts.Difficulty != "" {
		sessionOpts = append(sessionOpts, jumper.WithDifficulty(opts.Difficulty))
	}

	return Model{
		session:    jumper.NewSession(opts.Config, cfg, sessionOpts...),
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		keyMapper:  NewKeyMapper(),
		latch:      core.NewIntentLatch(opts.HoldTicks),
		inputFrame: core.NewInputFrame(),
		store:      opts.Store,
		sound:      opts.Audio,
		logger:     logger,
		config:     cfg,
		tiers:      opts.Config.TierNames(),
		shimmer:    newShimmer(),
	}
}

// Init starts the tick loop. Ticks run on every screen to drive animations.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m.quit()
	case "ctrl+s":
		m.saveScreenshot()
		return m, nil
	}

	if m.scores != nil {
		return m.handleScoreboardKey(msg)
	}

	switch m.session.Screen() {
	case jumper.ScreenMenu:
		return m.handleMenuKey(msg)
	case jumper.ScreenSettings:
		return m.handleSettingsKey(msg)
	case jumper.ScreenPlaying:
		return m.handlePlayKey(msg)
	case jumper.ScreenGameOver:
		return m.handleGameOverKey(msg)
	}
	return m, nil
}

func (m Model) handleScoreboardKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	scores, cmd := m.scores.Update(msg)
	switch {
	case scores.IsQuitting():
		return m.quit()
	case scores.IsGoingBack():
		m.scores = nil
	default:
		m.scores = &scores
	}
	return m, cmd
}

func (m Model) handlePlayKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		return m.quit()
	}

	switch action {
	case core.ActionLeft, core.ActionRight:
		m.latch.Press(action)
	case core.ActionPause:
		m.inputFrame.Set(core.ActionPause)
	case core.ActionBack:
		m.leaveSession()
	}
	return m, nil
}

func (m Model) handleGameOverKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		return m.quit()
	}

	switch action {
	case core.ActionRestart, core.ActionConfirm:
		if err := m.session.Restart(); err != nil {
			m.logger.Error("restart failed", "err", err)
			return m, nil
		}
		m.beginSession()
	case core.ActionBack:
		m.leaveSession()
	}
	return m, nil
}

// beginSession resets per-session UI state after Start or Restart.
func (m *Model) beginSession() {
	m.latch.Release()
	m.inputFrame.Clear()
	m.summary = nil
	m.lastRunID = 0
	m.sound.SetPlaying(true)
	m.logger.Info("session started",
		"difficulty", m.session.Snapshot().Difficulty,
		"seed", m.config.Seed,
		"best", m.session.HighScore())
}

// leaveSession returns to the menu from playing or game over.
func (m *Model) leaveSession() {
	snap := m.session.Snapshot()
	if err := m.session.ToMenu(); err != nil {
		m.logger.Error("cannot return to menu", "err", err)
		return
	}
	m.latch.Release()
	m.inputFrame.Clear()
	m.summary = nil
	m.sound.SetPlaying(false)
	if !snap.GameOver() {
		m.logger.Info("session abandoned", "score", snap.Score, "ticks", snap.Tick)
	}
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	m.sound.SetPlaying(false)
	return m, tea.Quit
}

// handleResize processes window resize events. The world is scaled onto the
// screen, so a resize never resets the session.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if m.scores != nil {
		scores, _ := m.scores.Update(msg)
		m.scores = &scores
	}
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	dt := 1 / float32(m.config.TickRate)
	m.view.Shimmer = m.shimmer.Update(dt)

	switch m.session.Screen() {
	case jumper.ScreenPlaying:
		m.latch.Apply(&m.inputFrame)
		result := m.session.Tick(m.inputFrame)
		m.handleEvents(result)
		m.inputFrame.Clear()

	case jumper.ScreenGameOver:
		if m.summary != nil {
			m.summary.Update(dt)
		}
	}

	return m, tickCmd(m.config.TickRate)
}

// handleEvents turns session events into sounds, logs and the run record.
func (m *Model) handleEvents(result jumper.StepResult) {
	for _, ev := range result.Events {
		switch ev.Kind {
		case jumper.EventLanded:
			m.sound.Play(audio.SoundBounce, bouncePitch(ev.Tier))
		case jumper.EventEnemyHit, jumper.EventEngulfed:
			m.sound.SetPlaying(false)
			m.sound.Play(audio.SoundGameOver, 1)
		case jumper.EventNewRecord:
			m.sound.Play(audio.SoundNewRecord, 1)
		}
	}

	snap := result.Snapshot
	if snap.GameOver() && m.summary == nil {
		m.summary = newSummaryAnim(snap.Score, snap.NewRecord)
		m.recordRun(snap)
	}
}

// bouncePitch raises the bounce sound with altitude.
func bouncePitch(t jumper.ColorTier) float64 {
	switch t {
	case jumper.TierSnow:
		return 1.25
	case jumper.TierDark:
		return 1.5
	default:
		return 1
	}
}

// recordRun stores a finished session. Storage failures are logged only.
func (m *Model) recordRun(snap jumper.Snapshot) {
	m.logger.Info("session ended",
		"cause", snap.Cause,
		"score", snap.Score,
		"height", snap.Height,
		"ticks", snap.Tick,
		"new_record", snap.NewRecord)

	if m.store == nil {
		return
	}
	id, err := m.store.SaveRun(storage.Run{
		Difficulty: string(snap.Difficulty),
		Score:      snap.Score,
		Height:     snap.Height,
		Cause:      string(snap.Cause),
		Ticks:      snap.Tick,
		NewRecord:  snap.NewRecord,
		Seed:       m.config.Seed,
	})
	if err != nil {
		if !errors.Is(err, storage.ErrClosed) {
			m.logger.Warn("could not record run", "err", err)
		}
		return
	}
	m.lastRunID = id
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.draw()

	dir := filepath.Join(os.Getenv("HOME"), ".lavajump", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("cannot create screenshot directory", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("lavajump_%s_%s.txt", m.session.Screen(), timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("cannot save screenshot", "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// draw renders the current screen into the buffer.
func (m *Model) draw() {
	switch {
	case m.scores != nil:
		m.screen.Clear()
	case m.session.Screen() == jumper.ScreenMenu:
		m.drawMenu()
	case m.session.Screen() == jumper.ScreenSettings:
		m.drawSettings()
	default:
		snap := m.session.Snapshot()
		m.view.Render(m.screen, snap)
		if snap.GameOver() {
			m.drawSummary(snap)
		}
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.scores != nil {
		return m.scores.View()
	}
	m.draw()
	return RenderScreen(m.screen)
}

// LastRunID returns the storage ID of the last recorded run, 0 if none.
func (m Model) LastRunID() int64 {
	return m.lastRunID
}

// Session exposes the underlying session.
func (m Model) Session() *jumper.Session {
	return m.session
}

// Run starts the Bubble Tea program with the given options.
func Run(opts Options) error {
	model := NewModel(opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
