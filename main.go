package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	flag "github.com/spf13/pflag"

	"wordlist/internal/config"
	"wordlist/internal/eventbus"
	"wordlist/internal/journal"
	"wordlist/internal/locale"
	"wordlist/internal/ui"
	"wordlist/internal/words"
)

func main() {
	var (
		configPath string
		localeCode string
		logPath    string
	)
	flag.StringVarP(&configPath, "config", "c", config.DefaultPath(), "Path to the TOML config file")
	flag.StringVarP(&localeCode, "locale", "l", "", "Display language, overrides the config ("+strings.Join(locale.Available(), ", ")+")")
	flag.StringVar(&logPath, "log", defaultLogPath(), "Path to the log file")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: wordlist [flags]\n\nKeep a small list of words in the terminal.\n\nFlags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	// Set up logging
	if err := os.MkdirAll(filepath.Dir(logPath), 0755); err == nil {
		logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			log.Printf("Could not open log file: %v", err)
		} else {
			defer logFile.Close()
			log.SetOutput(logFile)
		}
	}

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Create event bus
	bus := eventbus.New()
	defer bus.Close()

	configSvc := config.NewConfigServiceWithBus(configPath, bus)
	cfg, err := loadOrCreateConfig(configSvc)
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}
	if localeCode != "" {
		cfg.Locale = localeCode
	}

	catalog, err := cfg.Catalog()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	log.Printf("Using locale %s with %d seed words", catalog.Code, len(catalog.Seed))

	activity := journal.New(bus, journal.DefaultCapacity)
	defer activity.Close()

	store := words.NewMemoryStore(catalog.Seed)

	log.Printf("Creating UI model...")
	uiModel := ui.NewModel(bus, cfg, catalog, store, activity)

	opts := []tea.ProgramOption{tea.WithContext(ctx)}
	if cfg.UISettings.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	if cfg.UISettings.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	p := tea.NewProgram(uiModel, opts...)
	uiModel.SetProgram(p)

	// Handle termination signals; Bubble Tea handles SIGINT itself
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGHUP)
	go func() {
		select {
		case sig := <-sigChan:
			log.Printf("Received %v, shutting down", sig)
			p.Quit()
		case <-ctx.Done():
		}
	}()

	if os.Getenv("WORDLIST_E2E_TEST") == "1" {
		fmt.Println("__READY__")
	}

	log.Printf("Starting UI...")
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		log.Printf("Error running program: %v", err)
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
	log.Printf("UI exited normally with %d words", store.Len())
}

// loadOrCreateConfig loads the config file, writing the defaults first if
// there is none yet
func loadOrCreateConfig(configSvc config.ConfigService) (*config.Config, error) {
	path := configSvc.Path()

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		log.Printf("Creating new config at %s", path)
		if err := configSvc.Save(config.DefaultConfig()); err != nil {
			// Not fatal: run with the defaults and try again next time
			log.Printf("Failed to save config: %v", err)
		}
	}

	cfg, err := configSvc.Load()
	if err != nil {
		return nil, err
	}
	log.Printf("Loaded config from %s", path)
	return cfg, nil
}

func defaultLogPath() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return "wordlist.log"
	}
	return filepath.Join(dir, "wordlist", "wordlist.log")
}
