package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/ag21o9/fire-risk-scoring-service/internal/config"
	"github.com/ag21o9/fire-risk-scoring-service/internal/scoring"
	kafkago "github.com/segmentio/kafka-go"
)

// Writer publishes scored results to the results topic.
// It implements scoring.ResultPublisher.
type Writer struct {
	writer *kafkago.Writer
	logger *slog.Logger
}

// NewWriter creates a Kafka producer for the configured results topic.
func NewWriter(cfg *config.Config, logger *slog.Logger) *Writer {
	w := &kafkago.Writer{
		Addr:         kafkago.TCP(cfg.KafkaBrokers...),
		Topic:        cfg.KafkaResultsTopic,
		Balancer:     &kafkago.LeastBytes{},
		RequiredAcks: kafkago.RequireAll,
	}
	return &Writer{writer: w, logger: logger}
}

// Publish serializes one scored result and writes it to the results topic.
func (w *Writer) Publish(ctx context.Context, res scoring.Result) error {
	msg, err := serializeToMessage(res)
	if err != nil {
		return err
	}
	return w.writer.WriteMessages(ctx, msg)
}

func (w *Writer) Close() error {
	return w.writer.Close()
}

// serializeToMessage marshals a result into a Kafka message. The key is the
// grid cell so consumers see a stable partition per location.
func serializeToMessage(res scoring.Result) (kafkago.Message, error) {
	data, err := json.Marshal(res)
	if err != nil {
		return kafkago.Message{}, fmt.Errorf("serialize scored result: %w", err)
	}
	return kafkago.Message{
		Key:   []byte(fmt.Sprintf("%d:%d", res.FeaturesUsed.X, res.FeaturesUsed.Y)),
		Value: data,
		Headers: []kafkago.Header{
			{Key: "bucket", Value: []byte(res.Bucket)},
			{Key: "scored_at", Value: []byte(res.ScoredAt.Format(time.RFC3339))},
		},
	}, nil
}
