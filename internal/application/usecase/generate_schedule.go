package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/amanafinance/amana/internal/application/dto"
	"github.com/amanafinance/amana/internal/domain/model"
	"github.com/amanafinance/amana/internal/domain/valueobject"
)

// scheduleGenerator produces the payment schedule for one archetype.
type scheduleGenerator func(terms model.ContractTerms, start time.Time) ([]model.PaymentScheduleEntry, error)

// scheduleGenerators is the dispatch table over schedule-bearing archetypes.
// Partnership and forward-sale contracts have no installment schedule; they
// are settled through distributions and delivery instead.
var scheduleGenerators = map[string]scheduleGenerator{
	valueobject.ContractTypeMurabaha.String(): func(terms model.ContractTerms, start time.Time) ([]model.PaymentScheduleEntry, error) {
		return model.GenerateCostPlusSchedule(*terms.CostPlus, start)
	},
	valueobject.ContractTypeIjarah.String(): func(terms model.ContractTerms, start time.Time) ([]model.PaymentScheduleEntry, error) {
		return model.GenerateLeaseSchedule(*terms.Lease, start)
	},
}

// GenerateScheduleUseCase produces the payment schedule for a contract. The
// computation is pure; the use case only adapts wire forms.
type GenerateScheduleUseCase struct{}

// NewGenerateScheduleUseCase wires dependencies.
func NewGenerateScheduleUseCase() *GenerateScheduleUseCase {
	return &GenerateScheduleUseCase{}
}

// Execute validates the terms, dispatches on contract type, and returns the
// schedule.
func (uc *GenerateScheduleUseCase) Execute(
	_ context.Context,
	req dto.GenerateScheduleRequest,
) (dto.ScheduleResponse, error) {
	terms, err := termsFromDTO(req.Terms)
	if err != nil {
		return dto.ScheduleResponse{}, fmt.Errorf("parse terms: %w", err)
	}

	generate, ok := scheduleGenerators[terms.Type.String()]
	if !ok {
		return dto.ScheduleResponse{}, fmt.Errorf("%w: %s contracts have no payment schedule",
			model.ErrInvalidInput, terms.Type)
	}

	start := req.StartDate
	if start.IsZero() {
		start = time.Now().UTC()
	}

	schedule, err := generate(terms, start)
	if err != nil {
		return dto.ScheduleResponse{}, fmt.Errorf("generate schedule: %w", err)
	}

	entries := make([]dto.ScheduleEntryResponse, 0, len(schedule))
	for _, e := range schedule {
		entries = append(entries, dto.ScheduleEntryResponse{
			Period:           e.Period,
			DueDate:          e.DueDate,
			Principal:        e.Principal,
			Profit:           e.Profit,
			Total:            e.Total,
			RemainingBalance: e.RemainingBalance,
			CumulativeAmount: e.CumulativeAmount,
		})
	}

	return dto.ScheduleResponse{
		ContractType: terms.Type.String(),
		Currency:     terms.CurrencyCode(),
		Entries:      entries,
		TotalAmount:  model.ScheduleTotal(schedule),
	}, nil
}
