package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"library/internal/catalog"
	"library/internal/config"
	"library/internal/entity"
	"library/internal/logger"
	"library/internal/seed"
	"library/internal/store"
)

var logOutput io.Writer = os.Stderr

// settings merges flags over the environment configuration.
func settings() (config.Config, error) {
	cfg := config.Load()
	if rootFlags.backend != "" {
		cfg.Backend = rootFlags.backend
	}
	if rootFlags.seedFile != "" {
		cfg.SeedFile = rootFlags.seedFile
	}
	if rootFlags.logLevel != "" {
		cfg.LogLevel = rootFlags.logLevel
	}
	return cfg, cfg.Validate()
}

// openLibrary builds a catalog on the configured backend and seeds it.
func openLibrary(ctx context.Context, cfg config.Config) (*catalog.Library, error) {
	log := logger.InitWriter(cfg.Env, cfg.LogLevel, logOutput)

	repo, err := store.New(cfg.Backend)
	if err != nil {
		return nil, err
	}
	lib := catalog.NewLibrary(repo, catalog.NewValidator(), catalog.WithLogger(log))

	books := seed.Default()
	if cfg.SeedFile != "" {
		books, err = seed.LoadFile(cfg.SeedFile)
		if err != nil {
			return nil, err
		}
	}
	if err := seed.Apply(ctx, lib, books); err != nil {
		return nil, err
	}

	ev := log.Info().Str("backend", cfg.Backend).Int("seeded", len(books))
	if n, ok := store.Size(ctx, repo); ok {
		ev = ev.Int("stored", n)
	}
	ev.Msg("catalog ready")
	return lib, nil
}

func printListing(ctx context.Context, w io.Writer, lib *catalog.Library, names []string) error {
	fmt.Fprintln(w, "Library list:")
	for _, name := range names {
		authors, err := lib.GetBookAuthors(ctx, name)
		if err != nil {
			return err
		}
		collection, err := lib.GetBookCollection(ctx, name)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "Title: %s, Author(s): %s, Collection: %s\n", name, strings.Join(authors, ", "), collection)
	}
	return nil
}

func parseCollectionFlag(s string) (entity.Collection, error) {
	c, err := entity.ParseCollection(s)
	if err != nil {
		return 0, fmt.Errorf("--collection: %w", err)
	}
	return c, nil
}
