package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"

	"github.com/lixenwraith/pickin-sticks/audio"
	"github.com/lixenwraith/pickin-sticks/engine"
)

var (
	debugFlag = flag.Bool("debug", false, "Write logs to logs/pickin-sticks.log and show counters")
	seedFlag  = flag.Uint64("seed", 0, "Stick spawn seed (0 picks one from the clock)")
	muteFlag  = flag.Bool("mute", false, "Start without audio")
)

func main() {
	flag.Parse()

	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	cfg := config{
		debug: *debugFlag,
		seed:  *seedFlag,
		runID: uuid.NewString(),
	}
	if cfg.seed == 0 {
		cfg.seed = uint64(time.Now().UnixNano())
	}
	log.Printf("run %s: start seed=%d", cfg.runID, cfg.seed)

	if err := run(cfg, *muteFlag); err != nil {
		fmt.Fprintf(os.Stderr, "pickin-sticks: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg config, mute bool) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	// Normal exit terminal cleanup
	defer screen.Fini()

	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\n\x1b[31mPICKIN-STICKS CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	screen.SetStyle(tcell.StyleDefault)
	screen.HideCursor()

	var player audio.Player
	if !mute {
		sm := audio.NewSoundManager()
		if err := sm.Initialize(); err != nil {
			log.Printf("audio unavailable: %v (continuing without audio)", err)
		} else {
			defer sm.Cleanup()
			player = sm
		}
	}

	a := newApp(screen, cfg, engine.NewMonotonicTimeProvider(), player)
	defer a.Close()
	if mute {
		a.ctx.IsMuted.Store(true)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = a.Run(ctx)
	log.Printf("run %s: exit after %d frames", cfg.runID, a.ctx.GetFrameNumber())
	return err
}
