package game

import "image/color"

// Theme bundles the cosmetic and flavor choices so one core serves every
// skin of the game: palette, titles and commentary wording.
type Theme struct {
	Name    string
	Title   string
	Tagline string

	Background color.NRGBA
	Grid       color.NRGBA
	Head       color.NRGBA
	Body       color.NRGBA
	Food       color.NRGBA
	Particle   color.NRGBA
	Crosshair  color.NRGBA
	Text       color.NRGBA
	Accent     color.NRGBA

	// Prompts maps a commentary event tag to the prompt sent to the text
	// generator. "%d" is substituted with the current score.
	Prompts map[string]string

	// Fallbacks maps an event tag to the line shown when the generator
	// is unavailable.
	Fallbacks map[string]string
}

// Commentary event tags. The generator contract accepts exactly these.
const (
	EventStart    = "start"
	EventEat      = "eat"
	EventGameOver = "gameover"
	EventIdle     = "idle"
)

// ClassicTheme is the plain "Finger Snake" look.
func ClassicTheme() Theme {
	return Theme{
		Name:       "classic",
		Title:      "Finger Snake",
		Tagline:    "point to steer",
		Background: color.NRGBA{R: 16, G: 20, B: 28, A: 255},
		Grid:       color.NRGBA{R: 32, G: 38, B: 52, A: 255},
		Head:       color.NRGBA{R: 120, G: 230, B: 140, A: 255},
		Body:       color.NRGBA{R: 60, G: 170, B: 100, A: 255},
		Food:       color.NRGBA{R: 240, G: 90, B: 90, A: 255},
		Particle:   color.NRGBA{R: 250, G: 190, B: 80, A: 255},
		Crosshair:  color.NRGBA{R: 200, G: 210, B: 230, A: 255},
		Text:       color.NRGBA{R: 220, G: 225, B: 235, A: 255},
		Accent:     color.NRGBA{R: 120, G: 230, B: 140, A: 255},
		Prompts: map[string]string{
			EventStart:    "A snake game just started. Write one short cheerful line welcoming the player.",
			EventEat:      "The player's snake just reached %d points. Write one short encouraging line.",
			EventGameOver: "The player's snake crashed at %d points. Write one short consoling line.",
			EventIdle:     "Nobody is playing the snake game. Write one short line inviting someone to play.",
		},
		Fallbacks: map[string]string{
			EventStart:    "Go! Keep that fingertip steady.",
			EventEat:      "Nice catch. Keep it up!",
			EventGameOver: "Ouch. The grid is unforgiving.",
			EventIdle:     "Raise a finger to play.",
		},
	}
}

// SiyuTheme is the pink skin.
func SiyuTheme() Theme {
	t := ClassicTheme()
	t.Name = "siyu"
	t.Title = "Siyu Snake"
	t.Tagline = "a snake for Siyu"
	t.Background = color.NRGBA{R: 28, G: 16, B: 26, A: 255}
	t.Grid = color.NRGBA{R: 52, G: 32, B: 48, A: 255}
	t.Head = color.NRGBA{R: 255, G: 150, B: 200, A: 255}
	t.Body = color.NRGBA{R: 200, G: 90, B: 150, A: 255}
	t.Food = color.NRGBA{R: 255, G: 220, B: 110, A: 255}
	t.Particle = color.NRGBA{R: 255, G: 170, B: 220, A: 255}
	t.Accent = color.NRGBA{R: 255, G: 150, B: 200, A: 255}
	t.Prompts = map[string]string{
		EventStart:    "Siyu just started her snake game. Write one short playful line cheering her on.",
		EventEat:      "Siyu's snake reached %d points. Write one short playful compliment.",
		EventGameOver: "Siyu's snake crashed at %d points. Write one short playful consolation.",
		EventIdle:     "Siyu's snake game is waiting. Write one short line tempting her to play.",
	}
	t.Fallbacks = map[string]string{
		EventStart:    "Go Siyu go!",
		EventEat:      "Siyu is on fire!",
		EventGameOver: "Aww. One more try, Siyu?",
		EventIdle:     "The snake misses you, Siyu.",
	}
	return t
}

// ThemeByName returns the named theme, defaulting to classic.
func ThemeByName(name string) Theme {
	if name == "siyu" {
		return SiyuTheme()
	}
	return ClassicTheme()
}
