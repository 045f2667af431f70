package game

import (
	"math"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Phase gates which parts of the per-frame driver run.
type Phase int

const (
	PhaseMenu Phase = iota
	PhasePlaying
	PhasePaused
	PhaseGameOver
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "menu"
	case PhasePlaying:
		return "playing"
	case PhasePaused:
		return "paused"
	case PhaseGameOver:
		return "gameover"
	}
	return "unknown"
}

// Commentator is the external flavor-text collaborator. Requests are
// fire-and-forget; Text returns whatever line should currently show.
type Commentator interface {
	// Request asks for a line for the event tag and score. It must not
	// block and must never propagate a failure to the caller.
	Request(event string, score int)

	// Text returns the current display line, possibly empty.
	Text() string

	// Reset invalidates outstanding requests so a stale result from a
	// previous phase never overwrites the current one.
	Reset()
}

// menuIdleTicks is how long the menu sits untouched before requesting
// idle commentary (~20s at 60 TPS).
const menuIdleTicks = 1200

// Game owns all mutable state and implements ebiten.Game. Every field is
// mutated only from Update; there are no concurrent writers.
type Game struct {
	cfg     Config
	theme   Theme
	pointer PointerAdapter
	comment Commentator
	rng     *rand.Rand

	renderer *Renderer

	// Play-field dimensions track the window via Layout.
	width, height float64

	phase     Phase
	heading   float64
	chain     *Chain
	food      Point
	score     int
	highScore int
	eaten     int

	// Frame-local pointer target, fully recomputed each tick.
	target    Point
	hasTarget bool

	particles *ParticleSystem

	idleTicks     int
	idleRequested bool

	startedAt time.Time
}

// New creates a game in the menu phase.
func New(cfg Config, theme Theme, pointer PointerAdapter, comment Commentator) *Game {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	g := &Game{
		cfg:       cfg,
		theme:     theme,
		pointer:   pointer,
		comment:   comment,
		rng:       rng,
		width:     float64(cfg.ScreenWidth),
		height:    float64(cfg.ScreenHeight),
		phase:     PhaseMenu,
		particles: NewParticleSystem(cfg.ParticleDecay, rng),
		startedAt: time.Now(),
	}
	g.renderer = NewRenderer(theme)
	return g
}

// startRun reinitializes chain, food, score and heading. Runs exactly once
// per transition into playing from menu or game over, never from pause.
func (g *Game) startRun() {
	g.heading = -math.Pi / 2
	start := Point{X: g.width / 2, Y: g.height * 0.7}
	g.chain = NewChain(start, g.heading, g.cfg.Speed, g.cfg.HistoryBound(g.cfg.BaseSegments))
	g.food = SpawnFood(g.width, g.height, g.cfg, g.rng)
	g.score = 0
	g.eaten = 0
	g.particles.Clear()
	g.phase = PhasePlaying
	if g.comment != nil {
		g.comment.Reset()
		g.comment.Request(EventStart, 0)
	}
}

// restart begins a new run from game over. The frame source may have
// dropped mid-session, so the same readiness gate as the menu applies;
// without a source the player lands back on the menu to wait for one.
func (g *Game) restart() {
	if !g.pointer.Ready() {
		g.phase = PhaseMenu
		return
	}
	g.startRun()
}

// crash folds the score into the high score and moves to game over. The
// commentary request never blocks the transition.
func (g *Game) crash() {
	if g.score > g.highScore {
		g.highScore = g.score
	}
	g.phase = PhaseGameOver
	if g.comment != nil {
		g.comment.Request(EventGameOver, g.score)
	}
}

// stepPlaying advances one playing tick: steer, move, classify, commit.
func (g *Game) stepPlaying(target *Point) {
	g.heading = Steer(g.heading, g.chain.Head(), target, g.cfg, g.rng)
	head := g.chain.NextHead(g.heading, g.cfg.Speed)

	switch Classify(head, g.chain, g.food, g.width, g.height, g.cfg) {
	case OutcomeCrashed:
		g.crash()
	case OutcomeAte:
		g.chain.Commit(head, true, 0)
		g.score += g.cfg.FoodValue
		g.eaten++
		g.particles.Burst(head, g.cfg.BurstParticles)
		g.food = SpawnFood(g.width, g.height, g.cfg, g.rng)
		if g.comment != nil && g.cfg.CommentaryEveryNFoods > 0 && g.eaten%g.cfg.CommentaryEveryNFoods == 0 {
			g.comment.Request(EventEat, g.score)
		}
	case OutcomeNone:
		bound := g.cfg.HistoryBound(g.cfg.TargetSegments(g.score))
		g.chain.Commit(head, false, bound)
	}
}

// Update runs one tick. The driver itself runs in every phase; the
// gameplay step is gated strictly on the playing phase.
func (g *Game) Update() error {
	g.handleKeys()

	// Pointer tracking runs in every phase so resuming feels immediate.
	g.target, g.hasTarget = g.pointer.Target(g.width, g.height)

	if g.phase == PhasePlaying {
		var target *Point
		if g.hasTarget {
			target = &g.target
		}
		g.stepPlaying(target)
	}

	// Particles keep animating in all phases; they never affect logic.
	g.particles.Update()

	if g.phase == PhaseMenu {
		g.idleTicks++
		if !g.idleRequested && g.idleTicks > menuIdleTicks && g.comment != nil {
			g.idleRequested = true
			g.comment.Request(EventIdle, g.highScore)
		}
	} else {
		g.idleTicks = 0
		g.idleRequested = false
	}

	return nil
}

func (g *Game) handleKeys() {
	switch g.phase {
	case PhaseMenu:
		// Never start without a working frame source.
		if inpututil.IsKeyJustPressed(ebiten.KeySpace) && g.pointer.Ready() {
			g.startRun()
		}
	case PhasePlaying:
		if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			g.phase = PhasePaused
		}
	case PhasePaused:
		if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) ||
			inpututil.IsKeyJustPressed(ebiten.KeySpace) {
			g.phase = PhasePlaying
		}
	case PhaseGameOver:
		if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyR) {
			g.restart()
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyM) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			g.phase = PhaseMenu
		}
	}
}

// Draw renders the current state. It mutates nothing.
func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, g)
}

// Layout makes the play field track the window size. Existing positions
// are not rescaled; out-of-bounds positions resolve through the normal
// boundary rules.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth > 0 && outsideHeight > 0 {
		g.width = float64(outsideWidth)
		g.height = float64(outsideHeight)
	}
	return outsideWidth, outsideHeight
}

// Phase returns the current phase.
func (g *Game) Phase() Phase { return g.phase }

// Score returns the current run's score.
func (g *Game) Score() int { return g.score }

// HighScore returns the session-best score.
func (g *Game) HighScore() int { return g.highScore }

// Heading returns the current travel direction in radians.
func (g *Game) Heading() float64 { return g.heading }

// Chain returns the body chain, nil before the first run.
func (g *Game) Chain() *Chain { return g.chain }

// Food returns the current food position.
func (g *Game) Food() Point { return g.food }

func (g *Game) commentaryText() string {
	if g.comment == nil {
		return ""
	}
	return g.comment.Text()
}
