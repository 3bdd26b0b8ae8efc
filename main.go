package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/multiwordle/assets"
	"github.com/robalobadob/multiwordle/internal/config"
	"github.com/robalobadob/multiwordle/internal/httpserver"
	"github.com/robalobadob/multiwordle/internal/store"
	"github.com/robalobadob/multiwordle/internal/words"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	dict, err := loadDictionary(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load word list")
	}
	log.Info().Int("words", dict.Len()).Int("length", dict.WordLength()).Msg("dictionary loaded")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	mem := store.NewMemoryStore(cfg.SessionTTL)
	go mem.RunSweeper(ctx, time.Minute, func(n int) {
		log.Debug().Int("removed", n).Msg("expired sessions swept")
	})

	srv := httpserver.New(httpserver.Options{
		Dict:         dict,
		Store:        mem,
		Rand:         words.CryptoRand{},
		GameCount:    cfg.GameCount,
		MaxGameCount: cfg.MaxGameCount,
		MaxAttempts:  cfg.MaxAttempts,
		Secret:       []byte(cfg.SessionSecret),
		TokenTTL:     cfg.SessionTTL,
		DailySalt:    cfg.DailySalt,
		ClientOrigin: cfg.ClientOrigin,
	})
	log.Info().Str("port", cfg.Port).Int("games", cfg.GameCount).Int("maxAttempts", cfg.MaxAttempts).Msg("starting server")
	if err := srv.Start(ctx, ":"+cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
	log.Info().Msg("server stopped")
}

// loadDictionary reads DICTIONARY_FILE when set, else the embedded list.
func loadDictionary(cfg config.Config) (*words.Dictionary, error) {
	if cfg.DictionaryFile != "" {
		return words.LoadFile(cfg.DictionaryFile, cfg.WordLength)
	}
	return words.Load(assets.DefaultWords(), cfg.WordLength)
}
