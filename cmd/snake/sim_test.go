package main

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

func TestParseMoves(t *testing.T) {
	moves, err := parseMoves("Ur.dL")
	if err != nil {
		t.Fatalf("parseMoves() failed: %v", err)
	}

	expected := []core.Action{core.ActionUp, core.ActionRight, core.ActionNone, core.ActionDown, core.ActionLeft}
	if !reflect.DeepEqual(moves, expected) {
		t.Errorf("parseMoves() = %v, expected %v", moves, expected)
	}

	if _, err := parseMoves("UX"); err == nil {
		t.Error("Expected error for unknown move")
	}
}

func TestScriptedRun(t *testing.T) {
	cfg := core.DefaultConfig().WithSeed(3)
	cfg.TickPeriod = 0

	game := snake.New(cfg, snake.DefaultRules())
	screen := core.NewScreen(cfg.Board)
	loop := core.NewLoop(game, screen, cfg.TickPeriod)

	moves, err := parseMoves("RRR")
	if err != nil {
		t.Fatalf("parseMoves() failed: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sched := newScriptScheduler(core.TimerScheduler{}, loop.Input(), moves, 3, cancel)
	err = loop.Run(ctx, sched)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Run() error = %v, expected context.Canceled at the tick limit", err)
	}

	if loop.Ticks() != 3 {
		t.Errorf("Ticks() = %d, expected 3", loop.Ticks())
	}
	if head := game.Head(); head != (core.Cell{X: 460, Y: 400}) {
		t.Errorf("Head = %+v, expected (460,400)", head)
	}
	if !game.Running() {
		t.Error("Game should still be running")
	}
}

func TestScriptedTurnsAreConsumedPerTick(t *testing.T) {
	cfg := core.DefaultConfig().WithSeed(3)
	cfg.TickPeriod = 0

	game := snake.New(cfg, snake.DefaultRules())
	loop := core.NewLoop(game, core.NewScreen(cfg.Board), cfg.TickPeriod)

	moves, err := parseMoves("U.L")
	if err != nil {
		t.Fatalf("parseMoves() failed: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sched := newScriptScheduler(core.TimerScheduler{}, loop.Input(), moves, 3, cancel)
	_ = loop.Run(ctx, sched)

	// Up twice then left once from (400,400)
	if head := game.Head(); head != (core.Cell{X: 380, Y: 360}) {
		t.Errorf("Head = %+v, expected (380,360)", head)
	}
	if game.Direction() != core.DirLeft {
		t.Errorf("Direction = %v, expected left", game.Direction())
	}
}

func TestScriptedRunUntilWall(t *testing.T) {
	cfg := core.DefaultConfig().WithSeed(9)
	cfg.TickPeriod = 0

	game := snake.New(cfg, snake.DefaultRules())
	loop := core.NewLoop(game, core.NewScreen(cfg.Board), cfg.TickPeriod)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sched := newScriptScheduler(core.TimerScheduler{}, loop.Input(), nil, 0, cancel)
	if err := loop.Run(ctx, sched); err != nil {
		t.Fatalf("Run() failed: %v", err)
	}

	if game.Running() {
		t.Fatal("Game should end at the wall")
	}
	if game.Cause() != snake.EndWall {
		t.Errorf("Cause = %q, expected %q", game.Cause(), snake.EndWall)
	}
	if loop.Ticks() != 20 {
		t.Errorf("Ticks() = %d, expected 20", loop.Ticks())
	}
}

func TestSetupMessage(t *testing.T) {
	if msg := setupMessage(errors.New("other")); msg != "display setup error" {
		t.Errorf("setupMessage() = %q", msg)
	}
}
