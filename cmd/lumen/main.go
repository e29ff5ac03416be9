// Command lumen runs the gesture-driven tree scene with a terminal
// preview. Landmarks come from a websocket detector feed when
// -feed is set, otherwise from a built-in synthetic gesture source.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/veilstar/lumen/audio"
	"github.com/veilstar/lumen/config"
	"github.com/veilstar/lumen/engine"
	"github.com/veilstar/lumen/formation"
	"github.com/veilstar/lumen/gesture"
	"github.com/veilstar/lumen/parameter"
	"github.com/veilstar/lumen/render"
	"github.com/veilstar/lumen/scene"
)

func main() {
	configPath := flag.String("config", "", "path to TOML config")
	feedURL := flag.String("feed", "", "websocket landmark detector URL (overrides config)")
	flag.Parse()

	if err := run(*configPath, *feedURL); err != nil {
		fmt.Fprintf(os.Stderr, "lumen: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath, feedURL string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if feedURL != "" {
		cfg.FeedURL = feedURL
	}

	sc := scene.New(cfg.SceneOptions())
	eng := engine.New(sc, nil)

	view, err := render.NewView()
	if err != nil {
		return err
	}
	defer view.Fini()

	if cfg.Audio.Enabled {
		chime, err := audio.NewChime()
		if err != nil {
			// Scene runs fine without sound
			log.Printf("audio disabled: %v", err)
		}
		defer chime.Close()

		sc.Machine().Subscribe(func(_, to formation.State) {
			if to == formation.Scattered {
				chime.Scatter()
			} else {
				chime.Gather()
			}
		})
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if cfg.FeedURL != "" {
		feed, err := gesture.Dial(ctx, cfg.FeedURL, eng.SubmitFrame)
		if err != nil {
			return err
		}
		defer feed.Close()
	} else {
		go syntheticGestures(ctx, eng)
	}

	// Input on its own goroutine, frame loop on this one
	go func() {
		defer cancel()
		for {
			ev := view.Screen().PollEvent()
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
					(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
					return
				}
			case *tcell.EventResize:
				view.HandleResize()
			case nil:
				return
			}
		}
	}()

	eng.Run(ctx, parameter.EngineTickInterval, view.Draw)
	eng.Close()
	return nil
}

// syntheticGestures drives the engine without a detector: the hand
// circles slowly and flips open/closed every few seconds
func syntheticGestures(ctx context.Context, eng *engine.Engine) {
	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()

	start := time.Now()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			t := time.Since(start).Seconds()
			eng.SubmitSignal(gesture.Signal{
				Detected: true,
				Open:     math.Mod(t, 12) >= 6,
				PosX:     0.5 + 0.35*math.Sin(t*0.3),
				PosY:     0.5 + 0.2*math.Cos(t*0.2),
			})
		}
	}
}
