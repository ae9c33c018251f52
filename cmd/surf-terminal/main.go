package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ngmaloney/surf-terminal/internal/config"
	"github.com/ngmaloney/surf-terminal/internal/logger"
	"github.com/ngmaloney/surf-terminal/internal/surfapi"
	"github.com/ngmaloney/surf-terminal/internal/ui"
)

func main() {
	configPath := flag.String("config", "config.yaml", "Path to an optional YAML config file")
	serverURL := flag.String("server", "", "Surf API base URL (overrides SURF_SERVER_URL)")
	beachID := flag.String("beach", "", "Beach id to look up on start (e.g. pantin)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Printf("Error loading configuration: %v\n", err)
		os.Exit(1)
	}
	if *serverURL != "" {
		cfg.ServerURL = *serverURL
		if err := cfg.Validate(); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	}

	log, err := logger.NewFileLogger(cfg.AppName, cfg.Log.Level, cfg.Log.File)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	defer log.Stop()

	log.Info("starting", map[string]any{"server_url": cfg.ServerURL, "timeout": cfg.RequestTimeout.String()})

	client := surfapi.NewHTTPClient(cfg.ServerURL,
		surfapi.WithUserAgent(cfg.UserAgent),
		surfapi.WithLogger(log),
	)

	model := ui.NewModel(client,
		ui.WithLogger(log),
		ui.WithRequestTimeout(cfg.RequestTimeout),
		ui.WithInitialBeach(*beachID),
	)

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Error(err)
		fmt.Printf("Error running application: %v\n", err)
		os.Exit(1)
	}
}
