package services

import (
	"context"
	"encoding/json"

	"flightops360/hangar/internal/apperr"
	"flightops360/hangar/internal/constants"
	"flightops360/hangar/internal/logging"
	"flightops360/hangar/internal/metrics"
	"flightops360/hangar/internal/models/entities"
	"flightops360/hangar/internal/providers"
)

// GenerationService assembles prompts from stored records and returns the
// language model's reply.
type GenerationService struct {
	llm         providers.TextGenerator
	fleet       *FleetService
	maintenance *MaintenanceService
	company     *CompanyService
	metrics     *metrics.MetricsRegistry
}

func NewGenerationService(llm providers.TextGenerator, fleet *FleetService, maintenance *MaintenanceService,
	company *CompanyService, m *metrics.MetricsRegistry) *GenerationService {
	return &GenerationService{llm: llm, fleet: fleet, maintenance: maintenance, company: company, metrics: m}
}

func (s *GenerationService) generate(ctx context.Context, kind string, req providers.GenerationRequest) (string, error) {
	if s.llm == nil {
		return "", &apperr.ConfigurationError{Component: "language model"}
	}
	text, err := s.llm.Generate(ctx, req)
	result := "ok"
	if err != nil {
		result = "error"
		logging.Error("generation failed", "kind", kind, "error", err)
	}
	if s.metrics != nil {
		s.metrics.GenerationRequestsTotal.WithLabelValues(kind, result).Inc()
	}
	return text, err
}

// WorkOrder drafts a work order for the given tasks of one aircraft.
func (s *GenerationService) WorkOrder(ctx context.Context, aircraftID string, taskIDs []string) (string, error) {
	if len(taskIDs) == 0 {
		return "", apperr.Invalid("taskIds", "at least one task is required")
	}
	aircraft, err := s.fleet.GetAircraft(ctx, aircraftID)
	if err != nil {
		return "", err
	}
	tasks, err := s.maintenance.TasksByID(ctx, taskIDs)
	if err != nil {
		return "", err
	}
	profile, err := s.company.GetProfile(ctx)
	if err != nil {
		return "", err
	}
	return s.generate(ctx, "work_order", providers.GenerationRequest{
		System:      "You write aviation maintenance paperwork.",
		Prompt:      WorkOrderPrompt(aircraft, tasks, profile.CompanyName),
		Temperature: 0.2,
	})
}

// QuoteEmail drafts the client email for a priced quote.
func (s *GenerationService) QuoteEmail(ctx context.Context, q *entities.Quote) (string, error) {
	profile, err := s.company.GetProfile(ctx)
	if err != nil {
		return "", err
	}
	return s.generate(ctx, "quote_email", providers.GenerationRequest{
		System:      "You write client correspondence for a charter operator.",
		Prompt:      QuoteEmailPrompt(q, profile),
		Temperature: 0.4,
	})
}

func (s *GenerationService) EstimateFlightTime(ctx context.Context, req FlightTimeRequest) (*FlightTimeEstimate, error) {
	if req.Origin == "" || req.Destination == "" {
		return nil, apperr.Invalid("origin", "origin and destination are required")
	}
	if req.AircraftModel == "" {
		return nil, apperr.Invalid("aircraftModel", "is required")
	}
	text, err := s.generate(ctx, "flight_time", providers.GenerationRequest{
		Prompt: FlightTimePrompt(req),
		JSON:   true,
	})
	if err != nil {
		return nil, err
	}
	var est FlightTimeEstimate
	if err := json.Unmarshal([]byte(jsonPayload(text)), &est); err != nil {
		return nil, &providers.ProviderError{
			Code:    constants.ErrCodeInvalidDataFormat,
			Message: "flight time estimate is not valid JSON",
			Details: text,
			Err:     err,
		}
	}
	return &est, nil
}

func (s *GenerationService) SuggestPerformance(ctx context.Context, aircraftModel string) (*entities.AircraftPerformanceData, error) {
	if aircraftModel == "" {
		return nil, apperr.Invalid("aircraftModel", "is required")
	}
	text, err := s.generate(ctx, "performance", providers.GenerationRequest{
		Prompt: PerformancePrompt(aircraftModel),
		JSON:   true,
	})
	if err != nil {
		return nil, err
	}
	var perf entities.AircraftPerformanceData
	if err := json.Unmarshal([]byte(jsonPayload(text)), &perf); err != nil {
		return nil, &providers.ProviderError{
			Code:    constants.ErrCodeInvalidDataFormat,
			Message: "performance suggestion is not valid JSON",
			Details: text,
			Err:     err,
		}
	}
	return &perf, nil
}
