package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/bubbles/audio"
	"github.com/lixenwraith/bubbles/config"
	"github.com/lixenwraith/bubbles/engine"
	"github.com/lixenwraith/bubbles/gesture"
	"github.com/lixenwraith/bubbles/host"
	"github.com/lixenwraith/bubbles/physics"
	"github.com/lixenwraith/bubbles/render"
	"github.com/lixenwraith/bubbles/vmath"
)

var (
	configFlag = flag.String("config", "", "YAML config file")
	envFlag    = flag.String("env", ".env", "dotenv file, ignored if missing")
	debugFlag  = flag.Bool("debug", false, "write logs to "+logDir+"/"+logFileName)
	seedFlag   = flag.Uint64("seed", 0, "placement seed, 0 for clock-derived")
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*configFlag, *envFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if *debugFlag {
		cfg.Debug = true
	}
	if *seedFlag != 0 {
		cfg.Seed = *seedFlag
	}
	if cfg.Seed == 0 {
		cfg.Seed = uint64(time.Now().UnixNano())
	}

	if logFile := setupLogging(cfg.Debug); logFile != nil {
		defer logFile.Close()
	}
	log.Printf("bubbles: starting, seed=%d labels=%d", cfg.Seed, len(cfg.Labels))

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}

	// Panic Recovery: restore the terminal before printing the crash
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\n\x1b[31mBUBBLES CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()
	defer screen.Fini()

	screen.EnableMouse(tcell.MouseDragEvents)
	screen.EnableFocus()
	screen.HideCursor()

	// Non-fatal, runs silent without an audio device
	sounds := audio.NewSoundManager(&cfg.Audio)
	if err := sounds.Initialize(); err != nil {
		log.Printf("Audio initialization failed: %v (continuing without audio)", err)
	}
	defer sounds.Cleanup()

	clock := engine.NewMonotonicTimeProvider()
	layout := render.Layout{CellWidth: cfg.CellWidth, CellHeight: cfg.CellHeight}
	scene := render.NewScene(screen, layout, clock, sounds)

	registry := physics.NewRegistry(cfg.Tuning(), vmath.NewFastRand(cfg.Seed))
	classifier := gesture.NewClassifier(cfg.GestureTuning())
	driver := engine.NewDriver(registry, classifier, scene, clock)

	h := host.New(screen, scene, driver, cfg.FrameInterval())
	h.Start(cfg.Labels)
	h.Run()

	log.Printf("bubbles: exit after %d frames", driver.Frames())
}
