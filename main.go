package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"slidedeck/internal/config"
	"slidedeck/internal/deck"
	"slidedeck/internal/eventbus"
	"slidedeck/internal/logger"
	"slidedeck/internal/session"
	"slidedeck/internal/ui"
	"slidedeck/internal/ui/input/types"
)

func main() {
	// Parse command line arguments
	var (
		deckPath   string
		configPath string
		auto       bool
		initConfig bool
	)
	flag.StringVar(&deckPath, "deck", "", "TOML deck to present (default: built-in deck)")
	flag.StringVar(&configPath, "config", "", "Config file (default: $XDG_CONFIG_HOME/slidedeck/config.toml)")
	flag.BoolVar(&auto, "auto", false, "Start auto-advance immediately")
	flag.BoolVar(&initConfig, "init-config", false, "Write the default config file and exit")
	flag.Parse()

	// If no deck specified, check for remaining args
	if deckPath == "" && flag.NArg() > 0 {
		deckPath = flag.Arg(0)
	}

	configSvc := config.NewConfigService()
	if configPath != "" {
		configSvc = config.NewConfigServiceAt(configPath)
	}

	if initConfig {
		if err := configSvc.Save(config.DefaultConfig()); err != nil {
			fmt.Printf("Error writing config: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Wrote %s\n", configSvc.Path())
		return
	}

	cfg, err := loadConfig(configSvc, configPath != "")
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}
	if deckPath != "" {
		cfg.Deck = deckPath
	}

	// Set up logging; the TUI owns the terminal so logs go to a file
	if err := logger.Init(cfg.Log.Level, cfg.Log.File); err != nil {
		fmt.Printf("Could not open log file: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	log := logger.L()

	var d *deck.Deck
	if cfg.Deck != "" {
		d, err = deck.Load(cfg.Deck)
		if err != nil {
			log.Error("failed to load deck", zap.String("path", cfg.Deck), zap.Error(err))
			fmt.Printf("Error loading deck: %v\n", err)
			os.Exit(1)
		}
	}

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle interrupt signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	bus := eventbus.New(log)
	defer bus.Close()

	sess, err := session.New(session.Options{
		Config: cfg,
		Deck:   d,
		Bus:    bus,
		Logger: log,
	})
	if err != nil {
		fmt.Printf("Error starting presentation: %v\n", err)
		os.Exit(1)
	}
	defer sess.Close()

	model := ui.NewModel(sess, log)
	p := tea.NewProgram(model, tea.WithMouseCellMotion(), tea.WithContext(ctx))
	model.SetProgram(p)

	// Bus handlers run on their own goroutines; hand events to the UI loop
	bus.Subscribe(eventbus.EventError, func(e eventbus.DomainEvent) {
		p.Send(ui.EventMsg{Event: e})
	})

	sess.Start()
	if auto {
		sess.Execute(types.StartAutoAdvanceAction{})
	}

	log.Info("starting UI", zap.String("session", sess.ID))
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		log.Error("program failed", zap.Error(err))
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
	log.Info("UI exited normally")
}

// loadConfig loads the config file. An explicitly named file must exist.
func loadConfig(svc config.ConfigService, explicit bool) (*config.Config, error) {
	if explicit {
		return svc.LoadFromPath(svc.Path())
	}
	return svc.Load()
}
