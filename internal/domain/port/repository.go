package port

import (
	"context"

	"github.com/amanafinance/amana/internal/domain/event"
	"github.com/amanafinance/amana/internal/domain/model"
)

// ---------------------------------------------------------------------------
// Repository ports (driven/secondary adapters)
// ---------------------------------------------------------------------------

// EvaluationRepository persists and retrieves financing evaluations.
type EvaluationRepository interface {
	Save(ctx context.Context, ev model.Evaluation) error
	FindByID(ctx context.Context, tenantID, id string) (model.Evaluation, error)
	FindByApplicationID(ctx context.Context, tenantID, applicationID string) (model.Evaluation, error)
}

// ---------------------------------------------------------------------------
// Event publisher port
// ---------------------------------------------------------------------------

// EventPublisher publishes domain events to external consumers.
type EventPublisher interface {
	Publish(ctx context.Context, events ...event.DomainEvent) error
}
