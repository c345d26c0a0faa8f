package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/cors"
	"github.com/rs/zerolog/log"

	"github.com/clariohq/clario-backend/api/handler"
	"github.com/clariohq/clario-backend/api/router"
	"github.com/clariohq/clario-backend/config"
	"github.com/clariohq/clario-backend/job"
	"github.com/clariohq/clario-backend/logic/ai"
	"github.com/clariohq/clario-backend/pkg/logger"
	"github.com/clariohq/clario-backend/service"
	"github.com/clariohq/clario-backend/storage/es"
	"github.com/clariohq/clario-backend/storage/postgres"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}
	logger.Init(cfg.LogLevel, cfg.LogJSON)

	if err := run(cfg); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}

func run(cfg *config.Config) error {
	ctx := context.Background()

	db, err := postgres.InitDB(cfg.PostgresDSN)
	if err != nil {
		return fmt.Errorf("init database: %w", err)
	}

	deadlineRepo := postgres.NewDeadlineRepo(db)
	documentRepo := postgres.NewDocumentRepo(db)
	termRepo := postgres.NewTermRepo(db)

	// Elasticsearch is optional; the glossary degrades to SQL matching
	// without it.
	var searcher service.TermSearcher
	if cfg.ESEnabled() {
		termIndex, err := es.NewTermIndex([]string{cfg.ESAddr}, cfg.TermIndex)
		if err != nil {
			return fmt.Errorf("init term index: %w", err)
		}
		searcher = termIndex
		log.Info().Str("addr", cfg.ESAddr).Msg("glossary search backend enabled")
	}

	chatModel, err := ai.NewChatModel(ctx, cfg)
	if err != nil {
		return fmt.Errorf("init chat model: %w", err)
	}
	gateway := ai.NewGateway(chatModel, cfg.AITimeout)

	deadlineSvc := service.NewDeadlineService(deadlineRepo)
	documentSvc := service.NewDocumentService(documentRepo, gateway, cfg)
	glossarySvc := service.NewGlossaryService(termRepo, searcher)
	dashboardSvc := service.NewDashboardService(deadlineRepo, documentRepo)

	engine := router.New(cfg, router.Handlers{
		Auth:      handler.NewAuthHandler(cfg),
		Deadline:  handler.NewDeadlineHandler(deadlineSvc),
		Document:  handler.NewDocumentHandler(documentSvc),
		Glossary:  handler.NewGlossaryHandler(glossarySvc),
		Dashboard: handler.NewDashboardHandler(dashboardSvc),
		AI:        handler.NewAIHandler(gateway),
	})

	sweeper := job.StartOverdueSweep(deadlineRepo)
	defer sweeper.Stop()

	corsWrapper := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Authorization", "Content-Type", "X-Request-ID"},
		AllowCredentials: false,
	})

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler: corsWrapper.Handler(engine),
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Int("port", cfg.HTTPPort).Msg("listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-stop:
		log.Info().Str("signal", sig.String()).Msg("shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
