package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/Gunvolt24/wb_basket/config"
	"github.com/Gunvolt24/wb_basket/internal/domain"
	"github.com/Gunvolt24/wb_basket/internal/repo/postgres"
	"github.com/joho/godotenv"
)

// CLI для миграций каталога и (опционально) загрузки зон из JSON.
func main() {
	_ = godotenv.Load(".env.local")

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	dsn := flag.String("dsn", cfg.Postgres.DSN, "postgres DSN")
	dir := flag.String("dir", string(postgres.MigrateUp), "direction: up|down|status")
	seed := flag.String("seed", "", "path to JSON array of food areas to upsert after migrating")
	timeout := flag.Duration("timeout", time.Minute, "overall timeout")
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	if err := run(ctx, *dsn, postgres.MigrateDirection(*dir), *seed); err != nil {
		fmt.Fprintf(os.Stderr, "migrate: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, dsn string, dir postgres.MigrateDirection, seedPath string) error {
	if err := postgres.Migrate(ctx, dsn, dir); err != nil {
		return err
	}
	if seedPath == "" {
		return nil
	}
	if dir != postgres.MigrateUp {
		return errors.New("-seed is only allowed with -dir=up")
	}

	areas, err := loadAreas(seedPath)
	if err != nil {
		return err
	}

	pool, err := postgres.NewPool(ctx, dsn, 2)
	if err != nil {
		return err
	}
	defer pool.Close()

	repo := postgres.NewCatalogRepository(pool)
	for i := range areas {
		if err := repo.SaveArea(ctx, &areas[i]); err != nil {
			return fmt.Errorf("seed area %s: %w", areas[i].ID, err)
		}
	}
	fmt.Fprintf(os.Stderr, "seeded %d food areas\n", len(areas))
	return nil
}

// loadAreas — читает массив зон; зона без id или с позицией без id — ошибка.
func loadAreas(path string) ([]domain.FoodArea, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed: %w", err)
	}

	var areas []domain.FoodArea
	if err := json.Unmarshal(raw, &areas); err != nil {
		return nil, fmt.Errorf("parse seed: %w", err)
	}
	for _, a := range areas {
		if a.ID == "" {
			return nil, errors.New("seed: area id is required")
		}
		for _, it := range a.Items {
			if it.ID == "" {
				return nil, fmt.Errorf("seed: item id is required (area=%s)", a.ID)
			}
		}
	}
	return areas, nil
}
