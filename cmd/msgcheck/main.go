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

	"go.uber.org/zap"

	"github.com/kailas-cloud/msgcheck/internal/config"
	"github.com/kailas-cloud/msgcheck/internal/domain"
	logpkg "github.com/kailas-cloud/msgcheck/internal/logger"
	"github.com/kailas-cloud/msgcheck/internal/metrics"
	"github.com/kailas-cloud/msgcheck/internal/repository/artifact"
	chiTransport "github.com/kailas-cloud/msgcheck/internal/transport/chi"
	healthuc "github.com/kailas-cloud/msgcheck/internal/usecase/health"
	predictuc "github.com/kailas-cloud/msgcheck/internal/usecase/predict"
	"github.com/kailas-cloud/msgcheck/internal/version"
)

func main() {
	// Load configuration based on ENV
	env := config.GetEnv()

	cfg, err := config.Load(env)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := logpkg.NewLogger(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting msgcheck API server",
		zap.String("build", version.Info()),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.String("vectorizer_path", cfg.Artifacts.VectorizerPath),
		zap.String("classifier_path", cfg.Artifacts.ClassifierPath),
	)

	// Artifacts are loaded once; the server never starts without them.
	start := time.Now()
	model, err := artifact.New().
		WithMaxSize(cfg.Artifacts.MaxSizeBytes).
		LoadModel(cfg.Artifacts.VectorizerPath, cfg.Artifacts.ClassifierPath)
	if err != nil {
		logger.Fatal("Failed to load artifacts", zap.Error(err))
	}

	predictSvc, err := predictuc.New(model.Vectorizer, model.Classifier)
	if err != nil {
		logger.Fatal("Artifacts are incompatible", zap.Error(err))
	}
	predictSvc.WithMaxMessageRunes(cfg.Predict.MaxMessageRunes)

	// Register metrics explicitly (no init())
	metrics.Register()
	metrics.SetModelInfo(
		kindOf(model.Vectorizer), kindOf(model.Classifier),
		model.Vectorizer.Features(), len(model.Classifier.Classes()),
	)

	logger.Info("Artifacts loaded",
		zap.String("vectorizer", kindOf(model.Vectorizer)),
		zap.String("classifier", kindOf(model.Classifier)),
		zap.Int("features", model.Vectorizer.Features()),
		zap.Stringers("classes", model.Classifier.Classes()),
		zap.Duration("took", time.Since(start)),
	)

	healthSvc := healthuc.New(
		healthuc.CheckFunc(predictSvc.CheckVectorizer),
		healthuc.CheckFunc(predictSvc.CheckClassifier),
	)

	server := chiTransport.NewServer(
		predictuc.NewInstrumentedPredictor(predictSvc, logger),
		healthSvc,
		logger,
		chiTransport.Options{
			MaxBodyBytes:         cfg.HTTP.MaxBodyBytes,
			RedactInternalErrors: cfg.Predict.RedactInternalErrors,
		},
	)
	router := chiTransport.NewRouter(server, logger, chiTransport.CORSOptions{
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		MaxAgeSec:      cfg.CORS.MaxAgeSec,
	})

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeoutSec) * time.Second,
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	<-quit
	logger.Info("Received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.HTTP.ShutdownSec)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error during shutdown", zap.Error(err))
	}

	logger.Info("Server stopped gracefully")
}

func kindOf(v any) string {
	if k, ok := v.(domain.Kinded); ok {
		return k.Kind()
	}
	return fmt.Sprintf("%T", v)
}
