package main

import (
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"

	"searchbox/internal/clock"
	"searchbox/internal/config"
	"searchbox/internal/eventbus"
	"searchbox/internal/search"
	"searchbox/internal/ui"
	"searchbox/internal/ui/services/query"
)

func main() {
	var (
		configPath string
		searchURL  string
		debounceMs int
		maxResults int
	)
	pflag.StringVarP(&configPath, "config", "c", "", "Path to a config file (defaults to the user config dir)")
	pflag.StringVarP(&searchURL, "url", "u", "", "Search endpoint URL (overrides config)")
	pflag.IntVarP(&debounceMs, "wait", "w", 0, "Debounce wait in milliseconds (overrides config)")
	pflag.IntVarP(&maxResults, "limit", "l", 0, "Maximum results per query (overrides config)")
	pflag.Parse()

	// Set up logging
	logFile, err := os.OpenFile("searchbox.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Printf("Could not open log file: %v", err)
	} else {
		defer logFile.Close()
		log.SetOutput(logFile)
	}

	// Create event bus
	bus := eventbus.New()
	defer bus.Close()

	// Load configuration
	configSvc := config.NewConfigServiceWithBus(bus)
	cfg := loadConfig(configSvc, configPath)

	// Flag overrides
	if searchURL != "" {
		cfg.SearchURL = searchURL
	}
	if debounceMs > 0 {
		cfg.DebounceMs = debounceMs
	}
	if maxResults > 0 {
		cfg.MaxResults = maxResults
	}

	// Initialize services
	client := search.NewClient(cfg.SearchURL, cfg.MaxResults)
	querySvc := query.NewService(bus, client, clock.Real(), cfg.Debounce(), cfg.BlurGrace())

	// Create UI model and program
	uiModel := ui.NewModel(bus, cfg, querySvc)
	p := tea.NewProgram(uiModel, tea.WithAltScreen(), tea.WithReportFocus())
	uiModel.SetProgram(p)

	// Forward bus events to the UI
	eventChan := make(chan eventbus.DomainEvent, 100)
	forward := func(e eventbus.DomainEvent) {
		select {
		case eventChan <- e:
		default:
			log.Println("Event channel full, dropping event")
		}
	}
	bus.Subscribe(eventbus.EventStateChanged, forward)
	bus.Subscribe(eventbus.EventError, forward)

	go func() {
		for event := range eventChan {
			p.Send(ui.EventMsg{Event: event})
		}
	}()

	// Readiness marker for PTY-driven tests
	if os.Getenv("SEARCHBOX_E2E_TEST") == "1" {
		fmt.Println("__READY__")
	}

	log.Printf("Starting searchbox against %s (debounce %s)", cfg.SearchURL, cfg.Debounce())
	if _, err := p.Run(); err != nil {
		log.Printf("Error running program: %v", err)
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
	log.Printf("UI exited normally")

	close(eventChan)
}

// loadConfig loads config from the given path, or the default location,
// falling back to defaults on any failure.
func loadConfig(configSvc config.ConfigService, path string) *config.Config {
	if path != "" {
		cfg, err := configSvc.LoadFromPath(path)
		if err != nil {
			log.Printf("Error loading config from %s: %v", path, err)
			return config.DefaultConfig()
		}
		return cfg
	}

	cfg, err := configSvc.Load()
	if err != nil {
		log.Printf("Error loading config: %v", err)
		return config.DefaultConfig()
	}
	return cfg
}
