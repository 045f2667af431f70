package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"

	"fingersnake/commentary"
	"fingersnake/game"
	"fingersnake/track"
)

func main() {
	var (
		addr          = flag.String("addr", "127.0.0.1:9000", "listen address for the hand-tracker bridge")
		mouse         = flag.Bool("mouse", false, "steer with the mouse cursor instead of the hand tracker")
		commentaryURL = flag.String("commentary-url", os.Getenv("COMMENTARY_URL"), "base URL of the text-generation API (empty disables)")
		apiKey        = flag.String("api-key", os.Getenv("COMMENTARY_API_KEY"), "API key for the text-generation API")
		themeName     = flag.String("theme", "classic", "theme: classic or siyu")
		debug         = flag.Bool("debug", false, "enable debug logging")
	)
	flag.Parse()

	level := zerolog.InfoLevel
	if *debug {
		level = zerolog.DebugLevel
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		With().Timestamp().Logger().Level(level)

	cfg := game.DefaultConfig()
	theme := game.ThemeByName(*themeName)

	var pointer game.PointerAdapter
	var bridge *track.Server
	if *mouse {
		pointer = game.PointerAdapter{Source: game.MousePointer{}}
	} else {
		staleAfter := time.Duration(cfg.PointerStaleAfterTicks) * time.Second / 60
		bridge = track.NewServer(staleAfter, log)
		if err := bridge.Start(*addr); err != nil {
			log.Fatal().Err(err).Msg("tracker bridge failed to start")
		}
		// Camera feeds are mirrored so pointing feels like a mirror.
		pointer = game.PointerAdapter{Source: bridge, Mirror: true}
	}

	var client *commentary.Client
	if *commentaryURL != "" {
		client = commentary.NewClient(*commentaryURL, *apiKey)
	} else {
		log.Info().Msg("no commentary URL configured, using fallback lines")
	}
	gateway := commentary.NewGateway(client, theme.Prompts, theme.Fallbacks, log)

	g := game.New(cfg, theme, pointer, gateway)

	ebiten.SetWindowSize(cfg.ScreenWidth, cfg.ScreenHeight)
	ebiten.SetWindowTitle(theme.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	runErr := ebiten.RunGame(g)

	if bridge != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := bridge.Shutdown(ctx); err != nil {
			log.Warn().Err(err).Msg("tracker bridge shutdown failed")
		}
	}
	if runErr != nil {
		log.Fatal().Err(runErr).Msg("game exited")
	}
}
