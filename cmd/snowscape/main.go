package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"
	"golang.org/x/term"

	"github.com/lixenwraith/snowscape/app"
	"github.com/lixenwraith/snowscape/audio"
	"github.com/lixenwraith/snowscape/config"
	"github.com/lixenwraith/snowscape/core"
	"github.com/lixenwraith/snowscape/logger"
	"github.com/lixenwraith/snowscape/render"
)

func main() {
	// Panic Recovery: restore the terminal before printing the crash
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	if err := run(os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "snowscape: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer) error {
	cfg := config.Default()
	if err := config.FromEnv(&cfg); err != nil {
		return fmt.Errorf("environment: %w", err)
	}

	fs := flag.NewFlagSet("snowscape", flag.ContinueOnError)
	config.BindFlags(fs, &cfg)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, closer, err := logger.New(cfg.LogFile)
	if err != nil {
		return err
	}
	defer closer.Close()

	if cfg.Once || !isTerminal(stdout) {
		return dump(cfg, log, stdout)
	}
	return interactive(cfg, log)
}

// dump simulates cfg.Frames snow updates and prints the last frame as plain text
func dump(cfg config.Config, log *logrus.Logger, stdout io.Writer) error {
	a := app.New(cfg, log, audio.NoopPlayer{})
	for i := 0; i < cfg.Frames; i++ {
		a.Tick()
	}

	surface := render.NewTextSurface(stdout, cfg.Width, cfg.Height)
	a.Draw(surface)
	if err := surface.Err(); err != nil {
		return fmt.Errorf("write frame: %w", err)
	}
	return nil
}

func interactive(cfg config.Config, log *logrus.Logger) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	core.SetCrashTerminal(screen)
	defer func() {
		core.SetCrashTerminal(nil)
		screen.Fini()
	}()
	screen.HideCursor()
	screen.Clear()

	player := newPlayer(cfg, log)
	defer player.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg.Width, cfg.Height = screen.Size()
	a := app.New(cfg, log, player)
	if err := a.Run(ctx, screen); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// newPlayer starts audio when requested; failures fall back to silence
func newPlayer(cfg config.Config, log *logrus.Logger) audio.Player {
	if !cfg.Audio {
		return audio.NoopPlayer{}
	}
	audioCfg := audio.LoadConfig()
	audioCfg.Enabled = cfg.Audio

	player, err := audio.NewPlayer(audioCfg)
	if err != nil {
		log.WithError(err).Warn("audio unavailable, continuing without sound")
	}
	return player
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
