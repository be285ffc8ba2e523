package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/couchcryptid/climate-wheel-map/internal/domain"
	kafkago "github.com/segmentio/kafka-go"
)

// Writer publishes readings to a Kafka topic.
// It implements pipeline.ReadingSink.
type Writer struct {
	writer *kafkago.Writer
	logger *slog.Logger
	now    func() time.Time
}

// NewWriter creates a Kafka producer for the readings topic. now stamps
// each message with the run time.
func NewWriter(brokers []string, topic string, now func() time.Time, logger *slog.Logger) *Writer {
	w := &kafkago.Writer{
		Addr:         kafkago.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafkago.Hash{},
		RequiredAcks: kafkago.RequireAll,
	}
	return &Writer{writer: w, logger: logger, now: now}
}

// WriteReadings publishes one month of readings in a single WriteMessages
// call. Messages are keyed by location so a location's months land on the
// same partition in order.
func (w *Writer) WriteReadings(ctx context.Context, readings []domain.Reading) error {
	if len(readings) == 0 {
		return nil
	}
	renderedAt := w.now()
	msgs := make([]kafkago.Message, len(readings))
	for i := range readings {
		msg, err := serializeToMessage(readings[i], renderedAt)
		if err != nil {
			return err
		}
		msgs[i] = msg
	}
	if err := w.writer.WriteMessages(ctx, msgs...); err != nil {
		return fmt.Errorf("publish readings: %w", err)
	}
	w.logger.Debug("readings published", "topic", w.writer.Topic, "count", len(msgs))
	return nil
}

func (w *Writer) Close() error {
	return w.writer.Close()
}

// serializeToMessage marshals a Reading into a Kafka message.
func serializeToMessage(r domain.Reading, renderedAt time.Time) (kafkago.Message, error) {
	data, err := json.Marshal(r)
	if err != nil {
		return kafkago.Message{}, fmt.Errorf("serialize reading: %w", err)
	}
	return kafkago.Message{
		Key:   []byte(r.Location),
		Value: data,
		Headers: []kafkago.Header{
			{Key: "month", Value: []byte(strconv.Itoa(r.Month))},
			{Key: "rendered_at", Value: []byte(renderedAt.Format(time.RFC3339))},
		},
	}, nil
}
