package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"

	"github.com/tomz197/spaceship/internal/audio"
	"github.com/tomz197/spaceship/internal/config"
	"github.com/tomz197/spaceship/internal/draw"
	"github.com/tomz197/spaceship/internal/input"
	"github.com/tomz197/spaceship/internal/logging"
	"github.com/tomz197/spaceship/internal/loop"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "game error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if err := config.LoadDotEnv(); err != nil {
		return logging.WrapError(err, "load .env")
	}
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger, logFile, err := logging.OpenFile(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logFile.Close()

	deps := loop.Deps{Logger: logger}
	sound := openSound(cfg, logger)
	deps.Sound = sound
	if sp, ok := sound.(*audio.Speaker); ok {
		defer sp.Close()
	}

	var closeBackend func()
	switch cfg.Backend {
	case config.BackendTcell:
		closeBackend, err = openTcell(cfg, &deps)
	default:
		closeBackend, err = openANSI(cfg, &deps)
	}
	if err != nil {
		return err
	}
	defer closeBackend()

	game, err := loop.New(cfg, deps)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return game.Run(ctx)
}

// openSound falls back to silence when no audio device is available.
func openSound(cfg config.Config, logger *log.Logger) audio.Player {
	if !cfg.Sound {
		return audio.Silent{}
	}
	sp, err := audio.NewSpeaker()
	if err != nil {
		logger.Warn("sound disabled", "err", err)
		return audio.Silent{}
	}
	return sp
}

func openANSI(cfg config.Config, deps *loop.Deps) (func(), error) {
	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return nil, logging.WrapError(err, "enable raw mode")
	}

	t := draw.NewTerminal(os.Stdout, nil, config.MaxTermWidth, config.MaxTermHeight, config.ViewWidth, config.ViewHeight)
	if err := t.Start(); err != nil {
		_ = term.Restore(fd, oldState)
		return nil, logging.WrapError(err, "start terminal")
	}

	deps.Renderer = t
	deps.Display = t
	deps.Input = input.StartStream(os.Stdin, cfg.KeyHold)
	return func() {
		_ = t.Close()
		_ = term.Restore(fd, oldState)
	}, nil
}

func openTcell(cfg config.Config, deps *loop.Deps) (func(), error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, logging.WrapError(err, "create screen")
	}
	if err := s.Init(); err != nil {
		return nil, logging.WrapError(err, "init screen")
	}
	s.HideCursor()

	ts := draw.NewTcellScreen(s, config.MaxTermWidth, config.MaxTermHeight, config.ViewWidth, config.ViewHeight)
	deps.Renderer = ts
	deps.Display = ts
	deps.Input = input.NewTcellSource(s, cfg.KeyHold)
	return s.Fini, nil
}
