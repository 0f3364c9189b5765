package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	"github.com/BruksfildServices01/barber-booking/internal/config"
	dbpkg "github.com/BruksfildServices01/barber-booking/internal/db"
	infraRepo "github.com/BruksfildServices01/barber-booking/internal/infra/repository"
	"github.com/BruksfildServices01/barber-booking/internal/logger"
	"github.com/BruksfildServices01/barber-booking/internal/metrics"
	"github.com/BruksfildServices01/barber-booking/internal/routes"
	"github.com/BruksfildServices01/barber-booking/internal/session"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	zl, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer func() { _ = zl.Sync() }()

	db, err := dbpkg.NewDB(cfg)
	if err != nil {
		zl.Fatal("database", zap.Error(err))
	}

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	seeded, err := infraRepo.SeedBarbers(ctx, db, cfg.Booking.Barbers)
	if err != nil {
		zl.Fatal("seed barbers", zap.Error(err))
	}
	if seeded > 0 {
		zl.Info("barbers seeded", zap.Int("count", seeded))
	}

	// --------------------------------------------------
	// Session store: redis when configured, memory otherwise
	// --------------------------------------------------
	var store session.Store
	if cfg.Redis.Addr != "" {
		client, err := session.NewRedisClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			zl.Fatal("redis", zap.String("addr", cfg.Redis.Addr), zap.Error(err))
		}
		rs := session.NewRedisStore(client, "barber-booking:")
		defer func() { _ = rs.Close() }()
		store = rs
	} else {
		ms := session.NewMemoryStore()
		go sweepLoop(ctx, ms, time.Minute, zl)
		store = ms
		zl.Warn("REDIS_ADDR not set, using in-memory session store")
	}

	m := metrics.New()

	dispatcher := audit.NewDispatcher(audit.New(db), zl).OnDrop(m.AuditDropped)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())

	routes.RegisterRoutes(r, cfg, routes.Infra{
		DB:      db,
		Store:   store,
		Audit:   dispatcher,
		Metrics: m,
		Log:     zl,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		zl.Info("server running", zap.String("addr", cfg.Addr()), zap.String("env", cfg.Env))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zl.Fatal("listen", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zl.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		zl.Error("server shutdown", zap.Error(err))
	}

	stop()
	dispatcher.Close()

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

func sweepLoop(ctx context.Context, s *session.MemoryStore, every time.Duration, l *zap.Logger) {
	t := time.NewTicker(every)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			if n := s.Sweep(); n > 0 {
				l.Debug("expired sessions swept", zap.Int("count", n))
			}
		}
	}
}
