package app

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"talent-match/internal/config"
	"talent-match/internal/database"
	"talent-match/internal/database/migration"
	dbpostgres "talent-match/internal/database/postgres"
	"talent-match/internal/database/seeder"
	"talent-match/internal/domain/matching"
	"talent-match/internal/infrastructure/cache"
)

type Container struct {
	Config config.Config
	Logger *zap.Logger
	DB     database.DB
	Cache  *cache.Redis
	Engine *matching.Engine
}

func NewContainer(cfg config.Config, logger *zap.Logger) (*Container, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	if cfg.Database.RunMigrations {
		if err := (migration.Runner{}).Run(ctx, db.SQLDB()); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("run migrations: %w", err)
		}
		logger.Info("migrations applied")
	}

	if cfg.Database.RunSeeders {
		if err := (seeder.Runner{Seeders: seeder.Defaults()}).Run(ctx, db); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("run seeders: %w", err)
		}
		logger.Info("seed data applied")
	}

	engine, err := buildEngine(cfg.Matching)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Container{
		Config: cfg,
		Logger: logger,
		DB:     db,
		Cache:  cache.NewRedis(cfg.Redis, logger),
		Engine: engine,
	}, nil
}

// buildEngine swaps in external lookup tables when paths are
// configured, otherwise the embedded defaults are used.
func buildEngine(cfg config.MatchingConfig) (*matching.Engine, error) {
	thesaurus := matching.DefaultThesaurus()
	regions := matching.DefaultRegions()

	if cfg.ThesaurusPath != "" {
		t, err := matching.LoadThesaurusFile(cfg.ThesaurusPath)
		if err != nil {
			return nil, fmt.Errorf("load thesaurus: %w", err)
		}
		thesaurus = t
	}
	if cfg.RegionsPath != "" {
		r, err := matching.LoadRegionsFile(cfg.RegionsPath)
		if err != nil {
			return nil, fmt.Errorf("load regions: %w", err)
		}
		regions = r
	}

	return matching.NewEngineWithTables(thesaurus, regions), nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.Cache != nil {
		_ = c.Cache.Close()
	}
	if c.DB == nil {
		return nil
	}
	return c.DB.Close()
}
