package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	httpadapter "github.com/ag21o9/fire-risk-scoring-service/internal/adapter/http"
	kafkaadapter "github.com/ag21o9/fire-risk-scoring-service/internal/adapter/kafka"
	"github.com/ag21o9/fire-risk-scoring-service/internal/adapter/modelserver"
	"github.com/ag21o9/fire-risk-scoring-service/internal/config"
	"github.com/ag21o9/fire-risk-scoring-service/internal/domain"
	"github.com/ag21o9/fire-risk-scoring-service/internal/observability"
	"github.com/ag21o9/fire-risk-scoring-service/internal/scoring"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg.LogLevel, cfg.LogFormat)
	metrics := observability.NewMetrics()

	months, days, err := loadEncoders(cfg)
	if err != nil {
		logger.Error("failed to load encoder vocabularies", "error", err)
		os.Exit(1)
	}

	modelClient := modelserver.NewClient(cfg.ModelURL, cfg.ModelTimeout, logger)

	// Results sink (feature-flagged via KAFKA_ENABLED / KAFKA_BROKERS).
	var publisher scoring.ResultPublisher
	var kafkaWriter *kafkaadapter.Writer
	if cfg.KafkaEnabled {
		kafkaWriter = kafkaadapter.NewWriter(cfg, logger)
		publisher = kafkaWriter
		metrics.SinkEnabled.Set(1)
		logger.Info("kafka results sink enabled", "topic", cfg.KafkaResultsTopic, "brokers", cfg.KafkaBrokers)
	} else {
		logger.Info("kafka results sink disabled")
	}

	scorer := scoring.NewScorer(months, days, modelClient, publisher, logger, metrics)

	srv := httpadapter.NewServer(cfg.HTTPAddr, scorer, modelClient, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
		}
	}()

	logger.Info("scoring service started", "model_url", cfg.ModelURL)

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}
	if kafkaWriter != nil {
		if err := kafkaWriter.Close(); err != nil {
			logger.Error("kafka writer close error", "error", err)
		}
	}

	logger.Info("shutdown complete")
}

// loadEncoders builds the month/day encoders from vocabulary artifacts when
// configured, falling back to the built-in training-time vocabularies.
func loadEncoders(cfg *config.Config) (months, days *domain.LabelEncoder, err error) {
	if cfg.MonthLabelsPath != "" {
		months, err = domain.LoadLabelEncoder("month", cfg.MonthLabelsPath)
		if err != nil {
			return nil, nil, err
		}
	} else {
		months = domain.NewLabelEncoder("month", domain.DefaultMonthLabels)
	}

	if cfg.DayLabelsPath != "" {
		days, err = domain.LoadLabelEncoder("day", cfg.DayLabelsPath)
		if err != nil {
			return nil, nil, err
		}
	} else {
		days = domain.NewLabelEncoder("day", domain.DefaultDayLabels)
	}

	return months, days, nil
}
