// Package jumper implements the step jumper: the player hops one or two
// tiles at a time along a generated road and must never land in a gap.
package jumper

import (
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-jumper/internal/config"
	"github.com/vovakirdan/tui-jumper/internal/core"
	"github.com/vovakirdan/tui-jumper/internal/game/manager"
	"github.com/vovakirdan/tui-jumper/internal/game/movement"
	"github.com/vovakirdan/tui-jumper/internal/metrics"
	"github.com/vovakirdan/tui-jumper/internal/registry"
)

// Game IDs registered by this package.
const (
	IDClassic = "jumper"
	IDSprint  = "jumper_sprint"
)

// sprintLength is the road length of the sprint mode.
const sprintLength = 20

// configPath stores the custom config path set via CLI
var configPath string

var (
	gameMetrics *metrics.Metrics
	gameLogger  *log.Logger
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetMetrics sets the collectors games report to. Nil disables reporting.
func SetMetrics(m *metrics.Metrics) {
	gameMetrics = m
}

// SetLogger sets the logger handed to new games. Nil discards.
func SetLogger(l *log.Logger) {
	gameLogger = l
}

// Game wires the road manager and the movement controller into a
// registry.Game driven by the platform tick.
type Game struct {
	id         string
	title      string
	roadLength int // overrides the configured length when > 0

	cfg  config.JumperConfig
	tick time.Duration

	bus    *core.InputBus
	sched  *core.Scheduler
	body   *movement.Point
	anim   *clipAnimator
	player *movement.Controller
	mgr    *manager.Manager

	tiles  *tileLayer
	steps  *label
	status *label
	menu   *panel

	// components are updated in order every tick
	components []core.Component

	finished *core.RunResult
	metrics  *metrics.Metrics
}

// New creates the classic game, using the configured road length.
func New() *Game {
	return &Game{id: IDClassic, title: "Step Jumper"}
}

// NewSprint creates the short-road mode.
func NewSprint() *Game {
	return &Game{id: IDSprint, title: "Step Jumper Sprint", roadLength: sprintLength}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return g.title
}

// Reset builds a fresh game and enters Init.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	cfg, err := config.LoadJumper(configPath)
	if err != nil && gameLogger != nil {
		gameLogger.Warn("using default config", "error", err)
	}
	g.ResetWithConfig(runtime, cfg)
}

// ResetWithConfig is Reset with an explicit configuration.
func (g *Game) ResetWithConfig(runtime core.RuntimeConfig, cfg config.JumperConfig) {
	if g.roadLength > 0 {
		cfg.Road.Length = g.roadLength
	}
	cfg.Normalize()

	if runtime.TickRate <= 0 {
		runtime.TickRate = core.DefaultConfig().TickRate
	}
	g.cfg = cfg
	g.tick = time.Second / time.Duration(runtime.TickRate)
	g.finished = nil
	g.metrics = gameMetrics

	g.bus = core.NewInputBus()
	g.sched = core.NewScheduler()
	g.body = &movement.Point{}
	g.anim = newClipAnimator(cfg.Player.Clips)
	g.tiles = newTileLayer()
	g.steps = &label{}
	g.status = &label{}
	g.menu = &panel{}

	g.player = movement.NewController(g.body, movement.Options{
		TileSize:        cfg.Road.TileSize,
		DefaultDuration: cfg.Player.DefaultJumpDuration,
		Animator:        g.anim,
		Input:           g.bus,
	})

	g.mgr = manager.New(cfg, rand.New(rand.NewSource(runtime.Seed)), manager.Deps{
		Player:      g.player,
		Tiles:       g.tiles,
		StartMenu:   g.menu,
		StepsLabel:  g.steps,
		StatusLabel: g.status,
		Scheduler:   g.sched,
		Logger:      gameLogger,
	})
	g.mgr.OnRunEnd(func(r core.RunResult) {
		g.finished = &r
		g.metrics.RunEnded(r)
	})

	g.components = []core.Component{g.player, g.mgr}
	for _, c := range g.components {
		c.Start()
	}
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.finished = nil

	if in.Has(core.ActionStart) && g.mgr.Phase() == manager.PhaseInit {
		g.mgr.StartRun()
		g.metrics.RunStarted()
	}

	wasJumping := g.player.Jumping()
	g.bus.DispatchFrame(in)
	if !wasJumping && g.player.Jumping() {
		g.metrics.Jumped(g.player.CurrentStep())
	}

	g.sched.Advance(g.tick)
	g.anim.Update(g.tick)
	for _, c := range g.components {
		c.Update(g.tick)
	}

	return core.StepResult{State: g.State(), Finished: g.finished}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.mgr == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:   g.mgr.Steps(),
		Playing: g.mgr.Phase() == manager.PhasePlaying,
	}
}

// Register the game modes with the registry
func init() {
	registry.Register(IDClassic, func() registry.Game {
		return New()
	})
	registry.Register(IDSprint, func() registry.Game {
		return NewSprint()
	})
}
