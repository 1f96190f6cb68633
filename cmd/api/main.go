package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/baharkarakas/exercise-tracker/internal/api"
	"github.com/baharkarakas/exercise-tracker/internal/config"
	"github.com/baharkarakas/exercise-tracker/internal/db"
	"github.com/baharkarakas/exercise-tracker/internal/logger"
	"github.com/baharkarakas/exercise-tracker/internal/metrics"
	"github.com/baharkarakas/exercise-tracker/internal/repository"
	"github.com/baharkarakas/exercise-tracker/internal/repository/memory"
	"github.com/baharkarakas/exercise-tracker/internal/repository/mongodb"
	"github.com/baharkarakas/exercise-tracker/internal/services"
)

func main() {
	cfg := config.Load()
	log := logger.New(cfg.Env)
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, closeStore := newStore(ctx, cfg, log)
	defer closeStore()
	userSvc := services.NewUserService(store)

	metrics.Init()
	r := api.NewRouter(cfg, userSvc)

	srv := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info("server starting", "port", cfg.HTTPPort, "store", cfg.StoreDriver)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server", "err", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	log.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
}

// newStore picks the record store per config. A failed Mongo connection
// is logged and the process falls back to the ephemeral store, so the
// listener still comes up.
func newStore(ctx context.Context, cfg config.Config, log *slog.Logger) (repository.Users, func()) {
	noop := func() {}
	if cfg.StoreDriver != "mongo" {
		return memory.NewUsers(), noop
	}

	mdb, err := db.NewMongo(ctx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		log.Error("mongo connect failed, using in-memory store", "err", err)
		return memory.NewUsers(), noop
	}
	if err := mongodb.EnsureIndexes(ctx, mdb); err != nil {
		log.Warn("mongo index setup", "err", err)
	}
	log.Info("connected to mongo", "db", cfg.MongoDB)
	return mongodb.NewUsers(mdb), func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = mdb.Client().Disconnect(disconnectCtx)
	}
}
