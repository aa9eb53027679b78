package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/pickin-sticks/action"
	"github.com/lixenwraith/pickin-sticks/audio"
	"github.com/lixenwraith/pickin-sticks/constants"
	"github.com/lixenwraith/pickin-sticks/engine"
	"github.com/lixenwraith/pickin-sticks/game"
	"github.com/lixenwraith/pickin-sticks/input"
	"github.com/lixenwraith/pickin-sticks/render"
	"github.com/lixenwraith/pickin-sticks/status"
	"github.com/lixenwraith/pickin-sticks/system"
)

// config holds the process flags
type config struct {
	debug bool
	seed  uint64
	runID string
}

// app owns one game session bound to a screen
type app struct {
	screen   tcell.Screen
	ctx      *engine.GameContext
	renderer *render.TerminalRenderer
	keys     *input.HeldKeys
	clock    *engine.FrameClock

	sync     *system.Synchronizer
	audioSys *system.AudioSystem
	sound    *audio.SoundManager // nil when muted or unavailable
}

// newApp wires store, mirror, systems and renderer; player may be nil for silence
func newApp(screen tcell.Screen, cfg config, provider engine.TimeProvider, player audio.Player) *app {
	registry := status.NewRegistry()
	st := game.NewStore(game.NewRules(cfg.seed), game.WithTracer(newTracer(registry, cfg.debug)))

	ctx := engine.NewGameContext(st, engine.NewWorld(), registry)
	ctx.RunID = cfg.runID
	ctx.SpawnEntities(st.GetState())

	a := &app{
		screen:   screen,
		ctx:      ctx,
		renderer: render.NewTerminalRenderer(screen),
		keys:     input.NewHeldKeys(provider),
		clock:    engine.NewFrameClock(provider),
		sync:     system.NewSynchronizer(ctx),
	}
	a.renderer.ShowDebug = cfg.debug

	if player == nil {
		player = audio.Nop{}
	}
	if sm, ok := player.(*audio.SoundManager); ok {
		a.sound = sm
	}
	a.audioSys = system.NewAudioSystem(ctx, player)

	ctx.World.AddSystem(system.NewInputSystem(ctx, a.keys))
	ctx.World.AddSystem(system.NewMovementSystem(ctx))
	ctx.World.AddSystem(system.NewCollectionSystem(ctx))

	a.sync.Start()
	a.audioSys.Start()
	return a
}

// newTracer counts every applied action and logs the non-frame ones
func newTracer(registry *status.Registry, debug bool) func(action.Action, int) {
	total := registry.Counter(status.MetricDispatch)
	perKind := make([]*atomic.Int64, 0, len(action.Kinds()))
	for _, k := range action.Kinds() {
		perKind = append(perKind, registry.DispatchCounter(k.String()))
	}

	return func(a action.Action, depth int) {
		total.Add(1)
		if k := int(a.Kind()); k >= 0 && k < len(perKind) {
			perKind[k].Add(1)
		} else {
			registry.DispatchCounter(a.Kind().String()).Add(1)
		}

		if !debug {
			return
		}
		switch a.(type) {
		case action.SetPlayerVelocity, action.MovePlayer, action.CollectSticks:
			// Every frame; too noisy to log
			return
		}
		log.Printf("dispatch %s depth=%d %+v", a.Kind(), depth, a)
	}
}

// Close detaches subscribers
func (a *app) Close() {
	a.audioSys.Stop()
	a.sync.Stop()
}

// Run drives the game until a quit key, a closed screen, or ctx cancellation
func (a *app) Run(parent context.Context) error {
	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	eg, ctx := errgroup.WithContext(ctx)
	events := make(chan tcell.Event, 64)

	// ChannelEvents closes events when it returns
	eg.Go(func() error {
		defer a.guard("event poller")
		a.screen.ChannelEvents(events, ctx.Done())
		return nil
	})
	eg.Go(func() error {
		defer a.guard("frame loop")
		defer cancel()
		return a.frameLoop(ctx, events)
	})

	return eg.Wait()
}

func (a *app) frameLoop(ctx context.Context, events <-chan tcell.Event) error {
	ticker := time.NewTicker(constants.FrameUpdateInterval)
	defer ticker.Stop()

	a.renderer.RenderFrame(a.ctx)

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if quit := a.handleEvent(ev); quit {
				log.Printf("run %s: quit at frame %d", a.ctx.RunID, a.ctx.GetFrameNumber())
				return nil
			}
		case <-ticker.C:
			a.Step()
		}
	}
}

// handleEvent applies one terminal event; returns true on quit
func (a *app) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch a.keys.HandleEvent(ev) {
		case input.IntentQuit:
			return true
		case input.IntentReset:
			a.ctx.Store.Dispatch(action.ResetGame{})
			a.ctx.ClearWin()
			log.Printf("run %s: reset", a.ctx.RunID)
		case input.IntentToggleMute:
			muted := !a.ctx.IsMuted.Load()
			a.ctx.IsMuted.Store(muted)
			if a.sound != nil {
				a.sound.SetMuted(muted)
			}
		}
	case *tcell.EventResize:
		w, h := ev.Size()
		a.renderer.Resize(w, h)
		a.screen.Sync()
	}
	return false
}

// Step runs one frame: systems in priority order, then a render of the mirror
func (a *app) Step() {
	a.ctx.IncrementFrameNumber()
	a.ctx.Status.Counter(status.MetricFrames).Add(1)

	a.ctx.World.Update(a.clock.Tick())
	a.renderer.RenderFrame(a.ctx)
}

// guard restores the terminal before reporting a panic from a loop goroutine
func (a *app) guard(name string) {
	if r := recover(); r != nil {
		a.screen.Fini()
		fmt.Fprintf(os.Stderr, "\r\n\x1b[31m%s CRASHED: %v\x1b[0m\r\n", name, r)
		fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
		os.Exit(1)
	}
}
