package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rohitpatil07/flaskapp/internal/config"
	"github.com/rohitpatil07/flaskapp/internal/database"
	"github.com/rohitpatil07/flaskapp/internal/logger"
	"github.com/rohitpatil07/flaskapp/internal/router"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

func main() {
	// local overrides, e.g. FA_JWT_SECRET; missing .env is fine
	_ = godotenv.Load()

	// load configuration
	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}

	// ensure basic directories exist
	if err := ensureDir(filepath.Dir(cfg.Database.Path)); err != nil {
		log.Fatal().Err(err).Msg("create data dir")
	}
	if err := ensureDir(filepath.Dir(cfg.Log.File)); err != nil {
		log.Fatal().Err(err).Msg("create log dir")
	}

	logger.Init(cfg.Log.File, cfg.Log.Level)

	// init database
	db, err := database.Init(cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("init database")
	}

	// run migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatal().Err(err).Msg("migrate database")
	}

	// setup router
	r := router.SetupRouter(cfg, db)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Address, cfg.Server.Port)
	log.Info().Str("addr", addr).Msg("server listening")
	if err := r.Run(addr); err != nil {
		log.Fatal().Err(err).Msg("run server")
	}
}

func ensureDir(dir string) error {
	if dir == "" || dir == "." {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}
