package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/mark3labs/mcp-go/server"
	"github.com/shashankd123/workout-frontend/internal/config"
	"github.com/shashankd123/workout-frontend/internal/generate"
	"github.com/shashankd123/workout-frontend/internal/mcp"
	"github.com/shashankd123/workout-frontend/internal/repo"
	"github.com/shashankd123/workout-frontend/internal/store"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file (local mode)")
	serverURL := flag.String("server", "", "workout daemon URL for remote mode (e.g. https://workout.tail1234.ts.net)")
	apiKey := flag.String("api-key", "", "API key for remote mode mutations")
	version := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *version {
		fmt.Println("workout-mcp", Version)
		return
	}

	// stdout is the MCP transport; all logging goes to stderr.
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	var ds mcp.DataSource
	if *serverURL != "" {
		if *apiKey == "" {
			fmt.Fprintf(os.Stderr, "Error: -api-key is required with -server\n")
			os.Exit(1)
		}
		ds = mcp.NewHTTPClient(*serverURL, *apiKey)
		log.Info("remote mode", "server", *serverURL)
	} else {
		cfg, err := config.Load(*configPath)
		if err != nil {
			log.Error("failed to load config", "error", err)
			os.Exit(1)
		}

		ctx := context.Background()
		var st store.Store
		switch cfg.Store.Backend {
		case "postgres":
			st, err = store.OpenPostgres(ctx, cfg.Store.DSN)
		default:
			st, err = store.OpenSQLite(cfg.Store.Dir)
		}
		if err != nil {
			log.Error("failed to open store", "backend", cfg.Store.Backend, "error", err)
			os.Exit(1)
		}
		defer func() { _ = st.Close() }()

		rep := repo.New(st, log)
		rep.Load(ctx)
		ds = mcp.NewLocal(rep, generate.New(cfg.Generation.URL, log))
		log.Info("local mode", "backend", cfg.Store.Backend)
	}

	s := mcp.New(ds, Version, log)
	if err := server.ServeStdio(s); err != nil {
		log.Error("mcp server error", "error", err)
		os.Exit(1)
	}
}
