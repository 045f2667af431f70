package game

import (
	"math"
	"testing"
)

type stubSource struct {
	x, y  float64
	ok    bool
	ready bool
}

func (s *stubSource) Sample() (float64, float64, bool) { return s.x, s.y, s.ok }
func (s *stubSource) Ready() bool                      { return s.ready }

type stubCommentator struct {
	events []string
	scores []int
	resets int
	line   string
}

func (c *stubCommentator) Request(event string, score int) {
	c.events = append(c.events, event)
	c.scores = append(c.scores, score)
}
func (c *stubCommentator) Text() string { return c.line }
func (c *stubCommentator) Reset()       { c.resets++ }

func newTestGame() (*Game, *stubCommentator) {
	comment := &stubCommentator{}
	adapter := PointerAdapter{Source: &stubSource{ready: true}}
	g := New(DefaultConfig(), ClassicTheme(), adapter, comment)
	return g, comment
}

func TestNewGameStartsInMenu(t *testing.T) {
	g, _ := newTestGame()
	if g.Phase() != PhaseMenu {
		t.Errorf("initial phase = %v, want menu", g.Phase())
	}
	if g.Chain() != nil {
		t.Error("chain exists before the first run")
	}
}

func TestStartRunInitializesEverything(t *testing.T) {
	g, comment := newTestGame()
	g.startRun()

	if g.Phase() != PhasePlaying {
		t.Fatalf("phase = %v, want playing", g.Phase())
	}
	if g.Score() != 0 {
		t.Errorf("score = %d, want 0", g.Score())
	}
	if g.Chain() == nil || g.Chain().Len() == 0 {
		t.Fatal("chain not initialized")
	}
	f := g.Food()
	if f.X < g.cfg.FoodMargin || f.X > g.width-g.cfg.FoodMargin ||
		f.Y < g.cfg.FoodMargin || f.Y > g.height-g.cfg.FoodMargin {
		t.Errorf("food %v spawned outside margin", f)
	}
	if comment.resets != 1 {
		t.Errorf("commentary resets = %d, want 1", comment.resets)
	}
	if len(comment.events) != 1 || comment.events[0] != EventStart {
		t.Errorf("commentary events = %v, want [start]", comment.events)
	}
}

func TestCrashFoldsHighScoreAndRequestsCommentary(t *testing.T) {
	g, comment := newTestGame()
	g.startRun()
	g.score = 30

	g.crash()

	if g.Phase() != PhaseGameOver {
		t.Fatalf("phase = %v, want gameover", g.Phase())
	}
	if g.HighScore() != 30 {
		t.Errorf("high score = %d, want 30", g.HighScore())
	}

	last := len(comment.events) - 1
	if comment.events[last] != EventGameOver || comment.scores[last] != 30 {
		t.Errorf("last commentary = %s/%d, want gameover/30",
			comment.events[last], comment.scores[last])
	}
}

func TestRestartResetsScoreKeepsHighScore(t *testing.T) {
	g, _ := newTestGame()
	g.startRun()
	g.score = 30
	g.crash()

	g.startRun()

	if g.Score() != 0 {
		t.Errorf("score after restart = %d, want 0", g.Score())
	}
	if g.HighScore() != 30 {
		t.Errorf("high score after restart = %d, want 30", g.HighScore())
	}
	if got, want := g.Chain().Len(), g.cfg.HistoryBound(g.cfg.BaseSegments); got != want {
		t.Errorf("chain history after restart = %d, want %d", got, want)
	}
}

// A tracker that dropped mid-session must not let a restart slip past the
// readiness gate the menu enforces.
func TestRestartRequiresReadyPointer(t *testing.T) {
	src := &stubSource{ready: true}
	g := New(DefaultConfig(), ClassicTheme(), PointerAdapter{Source: src}, &stubCommentator{})
	g.startRun()
	g.crash()

	src.ready = false
	g.restart()
	if g.Phase() != PhaseMenu {
		t.Fatalf("restart without a frame source ended in %v, want menu", g.Phase())
	}

	src.ready = true
	g.restart()
	if g.Phase() != PhasePlaying {
		t.Errorf("restart with a frame source ended in %v, want playing", g.Phase())
	}
}

func TestHighScoreIsRunningMaximum(t *testing.T) {
	g, _ := newTestGame()
	for _, score := range []int{30, 10, 50, 20} {
		g.startRun()
		g.score = score
		g.crash()
	}
	if g.HighScore() != 50 {
		t.Errorf("high score = %d, want 50", g.HighScore())
	}
}

// Missing input never stalls motion: each unguided tick moves the head
// exactly one speed step along the current heading.
func TestStepPlayingMovesWithoutSignal(t *testing.T) {
	g, _ := newTestGame()
	g.startRun()
	g.cfg.WanderChance = 0

	for i := 0; i < 50; i++ {
		before := g.Chain().Head()
		heading := g.Heading()
		g.stepPlaying(nil)
		if g.Phase() != PhasePlaying {
			t.Fatalf("tick %d: unexpected phase %v", i, g.Phase())
		}
		moved := before.DistanceTo(g.Chain().Head())
		if math.Abs(moved-g.cfg.Speed) > 1e-9 {
			t.Fatalf("tick %d: moved %v, want %v", i, moved, g.cfg.Speed)
		}
		if g.Heading() != heading {
			t.Fatalf("tick %d: heading drifted without wander", i)
		}
	}
}

func TestStepPlayingEatsFood(t *testing.T) {
	g, comment := newTestGame()
	g.startRun()

	g.cfg.WanderChance = 0

	// Put the food right on the next head position.
	head := g.Chain().NextHead(g.Heading(), g.cfg.Speed)
	g.food = Point{X: head.X + 5, Y: head.Y}
	eatenAt := g.food
	lenBefore := g.Chain().Len()

	g.stepPlaying(nil)

	if g.Score() != g.cfg.FoodValue {
		t.Errorf("score = %d, want %d", g.Score(), g.cfg.FoodValue)
	}
	if g.Chain().Len() != lenBefore+1 {
		t.Errorf("chain history = %d, want net growth to %d", g.Chain().Len(), lenBefore+1)
	}
	if g.particles.Len() != g.cfg.BurstParticles {
		t.Errorf("burst spawned %d particles, want %d", g.particles.Len(), g.cfg.BurstParticles)
	}
	if g.Food() == eatenAt {
		t.Error("food did not relocate after being eaten")
	}
	f := g.Food()
	if f.X < g.cfg.FoodMargin || f.X > g.width-g.cfg.FoodMargin ||
		f.Y < g.cfg.FoodMargin || f.Y > g.height-g.cfg.FoodMargin {
		t.Errorf("respawned food %v outside margin", f)
	}

	// First food is not a commentary milestone with the default cadence.
	for _, e := range comment.events {
		if e == EventEat {
			t.Error("eat commentary fired before the milestone")
		}
	}
}

func TestEatCommentaryMilestone(t *testing.T) {
	g, comment := newTestGame()
	g.startRun()
	g.cfg.WanderChance = 0
	g.cfg.CommentaryEveryNFoods = 2

	for i := 0; i < 2; i++ {
		head := g.Chain().NextHead(g.Heading(), g.cfg.Speed)
		g.food = head
		g.stepPlaying(nil)
	}

	var eats int
	for _, e := range comment.events {
		if e == EventEat {
			eats++
		}
	}
	if eats != 1 {
		t.Errorf("eat commentary fired %d times over 2 foods with cadence 2, want 1", eats)
	}
}

// Exiting the play field transitions to game over on that exact tick.
func TestBoundaryCrashExactFrame(t *testing.T) {
	g, _ := newTestGame()
	g.startRun()
	g.cfg.WanderChance = 0
	g.heading = math.Pi // straight toward the left edge

	ticks := 0
	for g.Phase() == PhasePlaying {
		headBefore := g.Chain().Head()
		g.stepPlaying(nil)
		ticks++
		if ticks > 10000 {
			t.Fatal("never crashed into the boundary")
		}
		if g.Phase() == PhaseGameOver {
			// The crash happened on the tick the head would have left.
			if headBefore.X-g.cfg.Speed >= 0 {
				t.Errorf("crashed while next head %v was still in bounds",
					headBefore.X-g.cfg.Speed)
			}
			// The crashing head was not committed.
			if g.Chain().Head().X < 0 {
				t.Error("out-of-bounds head was committed to the chain")
			}
		}
	}
}

func TestStepGrowthMatchesScore(t *testing.T) {
	g, _ := newTestGame()
	g.startRun()
	g.cfg.WanderChance = 0

	// Eat three foods, then run long enough for trimming to settle.
	for i := 0; i < 3; i++ {
		g.food = g.Chain().NextHead(g.Heading(), g.cfg.Speed)
		g.stepPlaying(nil)
	}
	if g.Score() != 3*g.cfg.FoodValue {
		t.Fatalf("score = %d after 3 foods", g.Score())
	}

	target := g.cfg.TargetSegments(g.Score())
	if want := g.cfg.TargetSegments(0) + 3*g.cfg.GrowthPerFood; target != want {
		t.Fatalf("target segments = %d, want %d", target, want)
	}
}

func TestLayoutTracksWindow(t *testing.T) {
	g, _ := newTestGame()
	w, h := g.Layout(1600, 900)
	if w != 1600 || h != 900 {
		t.Errorf("Layout returned %dx%d", w, h)
	}
	if g.width != 1600 || g.height != 900 {
		t.Errorf("play field = %vx%v, want 1600x900", g.width, g.height)
	}

	// Degenerate sizes are ignored rather than zeroing the field.
	g.Layout(0, 0)
	if g.width != 1600 || g.height != 900 {
		t.Error("zero layout clobbered the play field")
	}
}

func TestPhaseNames(t *testing.T) {
	cases := map[Phase]string{
		PhaseMenu:     "menu",
		PhasePlaying:  "playing",
		PhasePaused:   "paused",
		PhaseGameOver: "gameover",
		Phase(99):     "unknown",
	}
	for p, want := range cases {
		if p.String() != want {
			t.Errorf("Phase(%d).String() = %q, want %q", p, p.String(), want)
		}
	}
}
