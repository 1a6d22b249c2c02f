package main

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/dwordly/internal/catalog"
	"github.com/robalobadob/dwordly/internal/config"
	"github.com/robalobadob/dwordly/internal/game"
	"github.com/robalobadob/dwordly/internal/httpserver"
	"github.com/robalobadob/dwordly/internal/store"
	"github.com/robalobadob/dwordly/internal/words"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to read config")
	}
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	ctx := context.Background()
	var src words.Source = words.FileSource{DictionaryFile: cfg.DictionaryFile, PuzzlesDir: cfg.PuzzlesDir}
	if cfg.CatalogDSN != "" {
		cat, err := openCatalog(ctx, cfg.CatalogDSN, src)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to open word catalog")
		}
		defer cat.Close()
		src = cat
	}

	lib := game.NewLibrary()
	if err := lib.Load(ctx, src); err != nil {
		log.Fatal().Err(err).Msg("failed to load word lists")
	}

	mem := store.NewMemoryStore()
	srv := httpserver.New(mem, lib, src, cfg)
	log.Info().Str("port", cfg.Port).Msg("starting dwordly server")
	if err := srv.Start(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}

// openCatalog opens the SQLite catalog, seeding it from seed on first use.
func openCatalog(ctx context.Context, dsn string, seed words.Source) (*catalog.Store, error) {
	cat, err := catalog.Open(dsn)
	if err != nil {
		return nil, err
	}
	empty, err := cat.Empty(ctx)
	if err != nil {
		cat.Close()
		return nil, err
	}
	if empty {
		log.Info().Str("dsn", dsn).Msg("seeding word catalog")
		if err := cat.Seed(ctx, seed); err != nil {
			cat.Close()
			return nil, err
		}
	}
	return cat, nil
}
