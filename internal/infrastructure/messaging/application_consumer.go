package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/amanafinance/amana/internal/application/dto"
	"github.com/amanafinance/amana/internal/application/usecase"
	pkgkafka "github.com/amanafinance/amana/pkg/kafka"
)

// ApplicationConsumer listens for submitted financing applications and runs
// the underwriting pipeline on each one. Messages carry the same JSON shape
// as the EvaluateApplication gRPC request.
type ApplicationConsumer struct {
	consumer *pkgkafka.Consumer
	logger   *slog.Logger
}

// NewApplicationConsumer subscribes to the given topic. The consumer does not
// start reading until Start is called.
func NewApplicationConsumer(
	cfg pkgkafka.Config,
	topic string,
	evaluate *usecase.EvaluateApplicationUseCase,
	logger *slog.Logger,
) *ApplicationConsumer {
	handler := func(ctx context.Context, msg pkgkafka.Message) error {
		var req dto.EvaluateApplicationRequest
		if err := json.Unmarshal(msg.Value, &req); err != nil {
			// Malformed payloads are logged and skipped, not retried.
			logger.ErrorContext(ctx, "discarding malformed application message",
				"key", string(msg.Key),
				"error", err,
			)
			return nil
		}

		resp, err := evaluate.Execute(ctx, req)
		if err != nil {
			return fmt.Errorf("evaluate application %s: %w", req.ApplicationID, err)
		}

		logger.InfoContext(ctx, "application evaluated from stream",
			"application_id", resp.ApplicationID,
			"tenant_id", resp.TenantID,
			"decision", resp.Recommendation.Decision,
		)
		return nil
	}

	return &ApplicationConsumer{
		consumer: pkgkafka.NewConsumer(cfg, topic, handler, logger),
		logger:   logger,
	}
}

// Start blocks consuming until the context is canceled.
func (c *ApplicationConsumer) Start(ctx context.Context) error {
	return c.consumer.Start(ctx)
}

// Close closes the underlying reader.
func (c *ApplicationConsumer) Close() error {
	return c.consumer.Close()
}
