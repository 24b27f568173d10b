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

	"github.com/gin-gonic/gin"

	"newsmonitor/internal/app"
	"newsmonitor/internal/config"
	"newsmonitor/internal/handler/httpapi"
	"newsmonitor/internal/metrics"
	"newsmonitor/internal/usecase"
)

var version = "dev"

func main() {
	config.LoadEnv()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}
	gin.SetMode(cfg.GinMode)

	logger, err := app.NewLogger("newsmonitor", cfg)
	if err != nil {
		log.Fatalf("failed to open log file: %v", err)
	}

	metrics.Init(version, cfg.GinMode)

	env := app.NewEnv(cfg, logger)
	if err := env.Corpus.Configure(); err != nil {
		logger.Warning("NLP corpus not available at %s, summaries are disabled: %v", cfg.NLPCorpusPath, err)
	}

	router := httpapi.NewRouter(usecase.NewService(env), logger.With("http"))
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("news monitor listening on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server failed: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	logger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("graceful shutdown failed: %v", err)
	}
}
