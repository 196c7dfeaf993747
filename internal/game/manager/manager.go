// Package manager owns the road and the game's phase machine: it regenerates
// the road, enables and disables the player, relays progress to labels, and
// decides whether each landed jump continues, fails or wins the run.
package manager

import (
	"io"
	"math/rand"
	"strconv"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-jumper/internal/config"
	"github.com/vovakirdan/tui-jumper/internal/core"
	"github.com/vovakirdan/tui-jumper/internal/game/movement"
	"github.com/vovakirdan/tui-jumper/internal/game/road"
)

// Phase is the game's top-level state.
type Phase int

const (
	PhaseInit Phase = iota
	PhasePlaying
	PhaseEnd
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseInit:
		return "Init"
	case PhasePlaying:
		return "Playing"
	case PhaseEnd:
		return "End"
	default:
		return "Unknown"
	}
}

// Player is the movement side the manager drives.
// *movement.Controller implements it.
type Player interface {
	SetInputActive(active bool)
	SetPosition(p core.Vec2)
	Reset()
	OnJumpEnd(fn movement.JumpEndFunc)
}

// TileLayer holds the visual objects of the road.
type TileLayer interface {
	// Clear removes every tile object.
	Clear()
	// Place adds a tile object for road index i at pos.
	Place(i int, pos core.Vec2)
}

// Label displays a line of text.
type Label interface {
	SetText(text string)
}

// Toggle shows or hides a UI element.
type Toggle interface {
	SetVisible(visible bool)
}

// Scheduler runs a callback after a delay, on the game goroutine.
// *core.Scheduler implements it.
type Scheduler interface {
	After(delay time.Duration, fn func()) int64
	Cancel(id int64)
}

// Deps are the collaborators a Manager drives. Every field is optional:
// work that needs an absent collaborator is skipped.
type Deps struct {
	Player      Player
	Tiles       TileLayer
	StartMenu   Toggle
	StepsLabel  Label
	StatusLabel Label
	Scheduler   Scheduler
	Logger      *log.Logger
}

// RunEndFunc receives the summary of a finished run.
type RunEndFunc func(core.RunResult)

// Manager is the road and game-phase controller.
type Manager struct {
	cfg   config.JumperConfig
	rng   *rand.Rand
	deps  Deps
	log   *log.Logger
	road  *road.Road
	phase Phase

	steps     int
	last      *core.RunResult
	listeners []RunEndFunc

	// pendingEnable is the scheduled input enable of the current run, or 0.
	pendingEnable int64
}

var _ core.Component = (*Manager)(nil)

// New creates a manager. cfg is normalized; a nil rng is seeded from the clock.
func New(cfg config.JumperConfig, rng *rand.Rand, deps Deps) *Manager {
	cfg.Normalize()
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	logger := deps.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Manager{
		cfg:  cfg,
		rng:  rng,
		deps: deps,
		log:  logger,
		road: road.FromTiles([]road.TileKind{road.Solid, road.Solid}),
	}
}

// OnRunEnd registers fn to be called whenever a run ends.
func (m *Manager) OnRunEnd(fn RunEndFunc) {
	if fn != nil {
		m.listeners = append(m.listeners, fn)
	}
}

// Start enters Init and begins listening for the player's landed jumps.
func (m *Manager) Start() {
	m.SetPhase(PhaseInit, false)
	if m.deps.Player != nil {
		m.deps.Player.OnJumpEnd(m.onPlayerJumpEnd)
	}
}

// Update implements core.Component. The manager reacts to events only.
func (m *Manager) Update(time.Duration) {}

// StartRun is the start button: it moves Init to Playing and is ignored in
// any other phase.
func (m *Manager) StartRun() {
	if m.phase != PhaseInit {
		return
	}
	m.SetPhase(PhasePlaying, false)
}

// SetPhase enters phase p. failed only matters for PhaseEnd, which reports
// the run and immediately returns to Init.
func (m *Manager) SetPhase(p Phase, failed bool) {
	m.log.Debug("phase change", "from", m.phase, "to", p, "failed", failed)
	m.phase = p
	switch p {
	case PhaseInit:
		m.enterInit()
	case PhasePlaying:
		m.enterPlaying()
	case PhaseEnd:
		m.enterEnd(failed)
	}
}

func (m *Manager) enterInit() {
	m.cancelPendingEnable()

	if m.deps.StartMenu != nil {
		m.deps.StartMenu.SetVisible(true)
	}

	m.generateRoad()

	if p := m.deps.Player; p != nil {
		p.SetInputActive(false)
		p.SetPosition(core.Vec2{})
		p.Reset()
	}
}

func (m *Manager) enterPlaying() {
	m.steps = 0
	m.last = nil

	if m.deps.StartMenu != nil {
		m.deps.StartMenu.SetVisible(false)
	}
	if m.deps.StepsLabel != nil {
		m.deps.StepsLabel.SetText("0")
	}
	if m.deps.StatusLabel != nil {
		m.deps.StatusLabel.SetText("")
	}

	// Input comes on a little later so the key that started the run is not
	// also taken as a jump.
	enable := func() {
		m.pendingEnable = 0
		if m.phase == PhasePlaying && m.deps.Player != nil {
			m.deps.Player.SetInputActive(true)
		}
	}
	m.cancelPendingEnable()
	if m.deps.Scheduler != nil {
		m.pendingEnable = m.deps.Scheduler.After(m.cfg.Player.InputDelay, enable)
	} else {
		enable()
	}
}

// cancelPendingEnable drops a run's input enable that has not fired yet, so
// it cannot leak into the next run.
func (m *Manager) cancelPendingEnable() {
	if m.pendingEnable != 0 && m.deps.Scheduler != nil {
		m.deps.Scheduler.Cancel(m.pendingEnable)
	}
	m.pendingEnable = 0
}

func (m *Manager) enterEnd(failed bool) {
	msg := m.cfg.Messages.Success
	if failed {
		msg = m.cfg.Messages.Fail
	}
	if m.deps.StatusLabel != nil {
		m.deps.StatusLabel.SetText(msg)
	}

	result := core.RunResult{Steps: m.steps, Success: !failed}
	m.last = &result
	m.log.Info("run ended", "steps", result.Steps, "success", result.Success)
	for _, fn := range m.listeners {
		fn(result)
	}

	m.SetPhase(PhaseInit, false)
}

// generateRoad replaces the road and its tile objects.
func (m *Manager) generateRoad() {
	m.road = road.Generate(m.rng, m.cfg.Road.Length)
	m.log.Debug("road generated", "length", m.road.Length(), "layout", m.road.String())
	m.placeTiles()
}

// placeTiles clears the tile layer and spawns an object for every Solid tile.
// Empty tiles are gaps: nothing is spawned for them.
func (m *Manager) placeTiles() {
	if m.deps.Tiles == nil {
		return
	}
	m.deps.Tiles.Clear()
	for i, kind := range m.road.Tiles() {
		if kind != road.Solid {
			continue
		}
		m.deps.Tiles.Place(i, core.Vec2{X: float64(i) * m.cfg.Road.TileSize})
	}
}

// onPlayerJumpEnd updates the steps label and judges the landed tile.
func (m *Manager) onPlayerJumpEnd(moveIndex int) {
	if m.phase != PhasePlaying {
		return
	}

	length := m.road.Length()
	m.steps = core.Min(moveIndex, length)
	if m.deps.StepsLabel != nil {
		m.deps.StepsLabel.SetText(strconv.Itoa(m.steps))
	}
	m.checkResult(moveIndex)
}

func (m *Manager) checkResult(moveIndex int) {
	if moveIndex < m.road.Length() {
		if m.road.At(moveIndex) == road.Empty {
			m.SetPhase(PhaseEnd, true)
		}
		return
	}
	m.SetPhase(PhaseEnd, false)
}

// ReplaceRoad swaps in a known road layout, re-placing tile objects.
// Meant for replays and tests; the next Init generates a fresh road again.
func (m *Manager) ReplaceRoad(r *road.Road) {
	if r == nil {
		return
	}
	m.road = r
	m.placeTiles()
}

// Phase returns the current phase.
func (m *Manager) Phase() Phase { return m.phase }

// Road returns the current road.
func (m *Manager) Road() *road.Road { return m.road }

// Steps returns the steps shown for the current or last run.
func (m *Manager) Steps() int { return m.steps }

// LastResult returns the most recent finished run, or nil.
func (m *Manager) LastResult() *core.RunResult { return m.last }

// Config returns the normalized configuration.
func (m *Manager) Config() config.JumperConfig { return m.cfg }
