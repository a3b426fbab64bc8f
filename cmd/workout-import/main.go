package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/shashankd123/workout-frontend/internal/config"
	"github.com/shashankd123/workout-frontend/internal/plan"
	"github.com/shashankd123/workout-frontend/internal/repo"
	"github.com/shashankd123/workout-frontend/internal/store"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	importPath := flag.String("import", "", "import a weekly plan from a JSON file")
	exportPath := flag.String("export", "", "export the current weekly plan to a JSON file (- for stdout)")
	reset := flag.Bool("reset", false, "replace the stored plan with the built-in default")
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	modes := 0
	for _, on := range []bool{*importPath != "", *exportPath != "", *reset} {
		if on {
			modes++
		}
	}
	if modes != 1 {
		fmt.Fprintf(os.Stderr, "Usage: workout-import -config config.yaml (-import plan.json | -export plan.json | -reset)\n")
		flag.PrintDefaults()
		os.Exit(1)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()
	var st store.Store
	switch cfg.Store.Backend {
	case "postgres":
		if err := store.RunMigrations(cfg.Store.DSN, "migrations"); err != nil {
			log.Error("migration failed", "error", err)
			os.Exit(1)
		}
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

	switch {
	case *importPath != "":
		if err := importPlan(ctx, rep, *importPath); err != nil {
			log.Error("import failed", "error", err)
			os.Exit(1)
		}
		log.Info("plan imported", "path", *importPath)

	case *exportPath != "":
		if err := exportPlan(ctx, rep, *exportPath); err != nil {
			log.Error("export failed", "error", err)
			os.Exit(1)
		}
		log.Info("plan exported", "path", *exportPath)

	case *reset:
		rep.Load(ctx)
		rep.Commit(ctx, plan.Default())
		log.Info("plan reset to built-in default")
	}
}

// importPlan reads a weekly plan JSON file, validates its day keys, and
// commits it. Accepts both daemon exports and plans exported by the mobile
// app (which carry no exercise IDs).
func importPlan(ctx context.Context, rep *repo.Repository, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var p plan.WeeklyPlan
	if err := json.Unmarshal(data, &p); err != nil {
		return fmt.Errorf("parsing plan: %w", err)
	}
	if len(p) == 0 {
		return fmt.Errorf("plan has no days")
	}
	for day := range p {
		if !plan.ValidDay(day) {
			return fmt.Errorf("unknown day %q", day)
		}
	}

	rep.Load(ctx)
	rep.Commit(ctx, p.Normalize())
	return nil
}

// exportPlan writes the current weekly plan as indented JSON.
func exportPlan(ctx context.Context, rep *repo.Repository, path string) error {
	p := rep.Load(ctx)
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')

	if path == "-" {
		_, err = os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
