package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/quizdeck/backend/internal/api"
	"github.com/quizdeck/backend/internal/bank"
	"github.com/quizdeck/backend/internal/domain/quizsession"
	"github.com/quizdeck/backend/internal/infrastructure/config"
	"github.com/quizdeck/backend/internal/store"

	_ "github.com/quizdeck/backend/docs" // generated swagger docs
)

// @title           Quizdeck API
// @version         1.0
// @description     Section-scoped multiple-choice quiz runner: pick a section, answer question by question, review what you missed.

// @host      localhost:8080
// @BasePath  /

func main() {
	cfg := config.Load()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// ── Dependencies ────────────────────────────────────────────────
	db, err := store.NewSQLite(cfg.DBPath)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	// The bank is loaded exactly once; a broken bank blocks the whole
	// service rather than serving a partial quiz.
	loadCtx, loadCancel := context.WithTimeout(context.Background(), cfg.BankFetchTimeout)
	questions, err := bank.NewLoader(cfg.BankURL, cfg.BankFetchTimeout).Load(loadCtx)
	loadCancel()
	if err != nil {
		var verr *bank.ValidationError
		if errors.As(err, &verr) {
			logger.Error("question bank rejected", "error", err, "index", verr.Index,
				"hint", "every entry needs section, question, choices and answer")
		} else {
			logger.Error("failed to load question bank", "error", err,
				"hint", "check BANK_URL points at a JSON array of questions")
		}
		os.Exit(1)
	}
	logger.Info("question bank loaded", "questions", len(questions), "url", cfg.BankURL)

	sessions := quizsession.NewRegistry()
	handler := api.NewHandler(questions, db, sessions, logger)

	// ── Routes ──────────────────────────────────────────────────────
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "ok"}`))
	})

	api.RegisterRoutes(mux, handler)

	// Swagger UI served at /swagger/
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	// ── Middleware chain: Logging → CORS → mux ──────────────────────
	logged := api.Logging(logger)(api.CORS(mux))

	// ── Server ──────────────────────────────────────────────────────
	server := &http.Server{
		Addr:              cfg.ServerAddress,
		Handler:           logged,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		logger.Info("shutting down server")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error("server forced to shutdown", "error", err)
		}
	}()

	logger.Info("starting server", "address", cfg.ServerAddress)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("server failed to start", "error", err)
		os.Exit(1)
	}
}
