package game

import (
	"bytes"
	"fmt"
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"
)

// Renderer draws the game each frame. It owns only scratch buffers and
// fonts; all game state is read from the Game it is handed.
type Renderer struct {
	theme Theme

	titleFace *text.GoTextFace
	hudFace   *text.GoTextFace

	// Scratch buffer for resampled chain points, reused across frames.
	points []Point
}

// NewRenderer prepares fonts and buffers for the given theme.
func NewRenderer(theme Theme) *Renderer {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}
	return &Renderer{
		theme:     theme,
		titleFace: &text.GoTextFace{Source: src, Size: 42},
		hudFace:   &text.GoTextFace{Source: src, Size: 18},
		points:    make([]Point, 0, 256),
	}
}

// Draw renders one frame for the current phase. Gameplay elements show in
// playing and paused; menu and game over show only chrome, grid and
// leftover particles.
func (r *Renderer) Draw(screen *ebiten.Image, g *Game) {
	screen.Fill(r.theme.Background)
	r.drawGrid(screen, g)
	r.drawParticles(screen, g.particles)

	switch g.phase {
	case PhaseMenu:
		r.drawMenu(screen, g)
	case PhasePlaying, PhasePaused:
		r.drawPlayfield(screen, g)
		r.drawHUD(screen, g)
		if g.phase == PhasePaused {
			r.drawCenteredText(screen, "PAUSED", r.titleFace, g.height/2)
		}
	case PhaseGameOver:
		r.drawGameOver(screen, g)
	}
}

func (r *Renderer) drawGrid(screen *ebiten.Image, g *Game) {
	step := float32(g.cfg.GridStep)
	w := float32(g.width)
	h := float32(g.height)
	for x := step; x < w; x += step {
		vector.StrokeLine(screen, x, 0, x, h, 1, r.theme.Grid, false)
	}
	for y := step; y < h; y += step {
		vector.StrokeLine(screen, 0, y, w, y, 1, r.theme.Grid, false)
	}
}

func (r *Renderer) drawParticles(screen *ebiten.Image, ps *ParticleSystem) {
	for _, p := range ps.particles {
		clr := r.theme.Particle
		clr.A = uint8(float64(clr.A) * p.life)
		size := float32(1.5 + 3*p.life)
		vector.DrawFilledCircle(screen, float32(p.pos.X), float32(p.pos.Y), size, clr, true)
	}
}

func (r *Renderer) drawPlayfield(screen *ebiten.Image, g *Game) {
	// Food pulses with wall-clock time.
	t := time.Since(g.startedAt).Seconds()
	pulse := float32(g.cfg.FoodRadius + 2.5*math.Sin(t*4))
	vector.DrawFilledCircle(screen, float32(g.food.X), float32(g.food.Y), pulse, r.theme.Food, true)

	r.drawChain(screen, g)

	if g.hasTarget {
		r.drawCrosshair(screen, g.target)
	}
}

// drawChain renders the body as a simplified path resampled from the raw
// history, then the head on top. Tolerates an empty or short chain.
func (r *Renderer) drawChain(screen *ebiten.Image, g *Game) {
	if g.chain == nil {
		return
	}
	target := g.cfg.TargetSegments(g.score)
	r.points = g.chain.Resample(r.points, g.cfg.SegmentSpacing, target)
	if len(r.points) == 0 {
		return
	}

	for i := len(r.points) - 1; i >= 1; i-- {
		p := r.points[i]
		q := r.points[i-1]
		vector.StrokeLine(screen, float32(p.X), float32(p.Y), float32(q.X), float32(q.Y),
			float32(g.cfg.HeadRadius), r.theme.Body, true)
		// Taper the body toward the tail.
		radius := float32(g.cfg.HeadRadius) * (0.5 + 0.5*float32(len(r.points)-i)/float32(len(r.points)))
		vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), radius, r.theme.Body, true)
	}

	head := r.points[0]
	vector.DrawFilledCircle(screen, float32(head.X), float32(head.Y),
		float32(g.cfg.HeadRadius), r.theme.Head, true)

	// Eyes along the heading.
	ex := math.Cos(g.heading + 0.5)
	ey := math.Sin(g.heading + 0.5)
	fx := math.Cos(g.heading - 0.5)
	fy := math.Sin(g.heading - 0.5)
	eyeOff := g.cfg.HeadRadius * 0.55
	vector.DrawFilledCircle(screen, float32(head.X+ex*eyeOff), float32(head.Y+ey*eyeOff), 2.5, r.theme.Background, true)
	vector.DrawFilledCircle(screen, float32(head.X+fx*eyeOff), float32(head.Y+fy*eyeOff), 2.5, r.theme.Background, true)
}

func (r *Renderer) drawCrosshair(screen *ebiten.Image, at Point) {
	x := float32(at.X)
	y := float32(at.Y)
	const arm = 14
	vector.StrokeLine(screen, x-arm, y, x+arm, y, 1.5, r.theme.Crosshair, true)
	vector.StrokeLine(screen, x, y-arm, x, y+arm, 1.5, r.theme.Crosshair, true)
	vector.StrokeCircle(screen, x, y, arm*0.6, 1.5, r.theme.Crosshair, true)
}

func (r *Renderer) drawHUD(screen *ebiten.Image, g *Game) {
	r.drawText(screen, fmt.Sprintf("score %d", g.score), r.hudFace, 16, 12, r.theme.Text)
	r.drawText(screen, fmt.Sprintf("best %d", g.highScore), r.hudFace, 16, 36, r.theme.Text)
	if line := g.commentaryText(); line != "" {
		r.drawBottomText(screen, line, g)
	}
}

func (r *Renderer) drawMenu(screen *ebiten.Image, g *Game) {
	r.drawCenteredText(screen, r.theme.Title, r.titleFace, g.height*0.35)
	r.drawCenteredText(screen, r.theme.Tagline, r.hudFace, g.height*0.35+56)

	status := "press space to start"
	if !g.pointer.Ready() {
		status = "waiting for tracker..."
	}
	r.drawCenteredText(screen, status, r.hudFace, g.height*0.55)

	if g.highScore > 0 {
		r.drawCenteredText(screen, fmt.Sprintf("best %d", g.highScore), r.hudFace, g.height*0.55+28)
	}
	if line := g.commentaryText(); line != "" {
		r.drawBottomText(screen, line, g)
	}
}

func (r *Renderer) drawGameOver(screen *ebiten.Image, g *Game) {
	r.drawCenteredText(screen, "GAME OVER", r.titleFace, g.height*0.35)
	r.drawCenteredText(screen, fmt.Sprintf("score %d   best %d", g.score, g.highScore), r.hudFace, g.height*0.35+56)
	r.drawCenteredText(screen, "space to restart, m for menu", r.hudFace, g.height*0.55)
	if line := g.commentaryText(); line != "" {
		r.drawBottomText(screen, line, g)
	}
}

func (r *Renderer) drawText(screen *ebiten.Image, s string, face *text.GoTextFace, x, y float64, clr color.NRGBA) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, s, face, op)
}

func (r *Renderer) drawCenteredText(screen *ebiten.Image, s string, face *text.GoTextFace, y float64) {
	w, _ := text.Measure(s, face, 0)
	x := (float64(screen.Bounds().Dx()) - w) / 2
	r.drawText(screen, s, face, x, y, r.theme.Text)
}

func (r *Renderer) drawBottomText(screen *ebiten.Image, s string, g *Game) {
	w, h := text.Measure(s, r.hudFace, 0)
	x := (g.width - w) / 2
	r.drawText(screen, s, r.hudFace, x, g.height-h-18, r.theme.Accent)
}
