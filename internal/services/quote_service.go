package services

import (
	"context"
	"strings"

	"flightops360/hangar/internal/apperr"
	"flightops360/hangar/internal/constants"
	"flightops360/hangar/internal/logging"
	"flightops360/hangar/internal/mailer"
	"flightops360/hangar/internal/metrics"
	"flightops360/hangar/internal/models/entities"
	"flightops360/hangar/internal/rules"
	"flightops360/hangar/internal/store"
)

// QuoteService prices, sends and books charter quotes.
type QuoteService struct {
	quotes     *Collection[entities.Quote, *entities.Quote]
	fleet      *FleetService
	company    *CompanyService
	trips      *TripService
	generation *GenerationService
	mail       mailer.Sender
	metrics    *metrics.MetricsRegistry
}

func NewQuoteService(s store.Store, fleet *FleetService, company *CompanyService, trips *TripService,
	generation *GenerationService, mail mailer.Sender, m *metrics.MetricsRegistry) *QuoteService {
	return &QuoteService{
		quotes:     NewCollection[entities.Quote](s, constants.CollectionQuotes, "quote"),
		fleet:      fleet,
		company:    company,
		trips:      trips,
		generation: generation,
		mail:       mail,
		metrics:    m,
	}
}

func (s *QuoteService) ListQuotes(ctx context.Context) ([]entities.Quote, error) {
	return s.quotes.List(ctx)
}

func (s *QuoteService) GetQuote(ctx context.Context, id string) (*entities.Quote, error) {
	return s.quotes.Get(ctx, id)
}

// SaveQuote recomputes every derived amount before writing, so stored totals
// always match the line items. The display code and the booked trip are kept
// when the input leaves them out.
func (s *QuoteService) SaveQuote(ctx context.Context, q *entities.Quote) (*entities.Quote, error) {
	if q.ID != "" && (q.QuoteID == "" || q.TripID == "") {
		prior, err := s.quotes.Find(ctx, q.ID)
		if err != nil {
			return nil, err
		}
		if prior != nil {
			q.QuoteID = firstNonEmpty(q.QuoteID, prior.QuoteID)
			q.TripID = firstNonEmpty(q.TripID, prior.TripID)
		}
	}
	if q.QuoteID == "" {
		q.QuoteID = displayCode("QT")
	}
	if q.AircraftLabel == "" {
		if a, err := s.fleet.aircraft.Find(ctx, q.AircraftID); err == nil && a != nil {
			q.AircraftLabel = AircraftLabel(a)
		}
	}
	if q.LineItems == nil {
		q.LineItems = []entities.LineItem{}
	}
	rules.PriceQuote(q)

	saved, err := s.quotes.Save(ctx, q)
	if err != nil {
		return nil, err
	}
	logging.Info("quote saved", "id", saved.ID, "quoteId", saved.QuoteID,
		"totalSellPrice", saved.TotalSellPrice, "marginPercentage", saved.MarginPercentage)
	return saved, nil
}

func (s *QuoteService) DeleteQuote(ctx context.Context, id string) (*DeleteResult, error) {
	return s.quotes.Delete(ctx, id)
}

// PriceDraft replaces the line items of q with those built from the
// aircraft rate and the company fee catalog, and prices it. Nothing is
// stored.
func (s *QuoteService) PriceDraft(ctx context.Context, q *entities.Quote) (*entities.Quote, error) {
	aircraft, err := s.fleet.GetAircraft(ctx, q.AircraftID)
	if err != nil {
		return nil, err
	}
	rate, err := s.fleet.GetRate(ctx, q.AircraftID)
	if err != nil {
		return nil, err
	}
	if rate == nil {
		return nil, apperr.Invalid("aircraftId", "aircraft %s has no rate", aircraft.TailNumber)
	}
	fees, err := s.company.ServiceFees(ctx)
	if err != nil {
		return nil, err
	}
	q.AircraftLabel = AircraftLabel(aircraft)
	q.LineItems = rules.BuildLineItems(q.AircraftLabel, rate, q.Legs, q.Options, fees)
	rules.PriceQuote(q)
	return q, nil
}

// SendQuoteRequest overrides the recipients and text of a quote email. Empty
// fields fall back to the client email and a generated body.
type SendQuoteRequest struct {
	To      []string `json:"to,omitempty"`
	Subject string   `json:"subject,omitempty"`
	Body    string   `json:"body,omitempty"`
}

// SendQuote emails the quote to the client and marks a draft as sent.
func (s *QuoteService) SendQuote(ctx context.Context, id string, req SendQuoteRequest) (*entities.Quote, error) {
	if s.mail == nil {
		return nil, &apperr.ConfigurationError{Component: "mail sender"}
	}
	q, err := s.quotes.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	to := req.To
	if len(to) == 0 && q.ClientEmail != "" {
		to = []string{q.ClientEmail}
	}
	if len(to) == 0 {
		return nil, apperr.Invalid("to", "quote %s has no client email", q.QuoteID)
	}

	body := strings.TrimSpace(req.Body)
	if body == "" {
		if body, err = s.generation.QuoteEmail(ctx, q); err != nil {
			return nil, err
		}
	}
	subject := req.Subject
	if subject == "" {
		subject = "Charter quote " + q.QuoteID
	}

	profile, err := s.company.GetProfile(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.mail.Send(ctx, mailer.Message{
		To:      to,
		ReplyTo: profile.CompanyEmail,
		Subject: subject,
		Body:    body,
	}); err != nil {
		return nil, &apperr.StoreError{Op: "send", Resource: "quote", ID: q.QuoteID, Err: err}
	}

	if q.Status == entities.QuoteDraft {
		q.Status = entities.QuoteSent
		return s.quotes.Save(ctx, q)
	}
	return q, nil
}

// BookingResult is returned by BookQuote.
type BookingResult struct {
	Quote *entities.Quote `json:"quote"`
	Trip  *entities.Trip  `json:"trip"`
}

// BookQuote creates a scheduled trip from the quote and marks the quote
// booked.
func (s *QuoteService) BookQuote(ctx context.Context, id string) (*BookingResult, error) {
	q, err := s.quotes.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	switch q.Status {
	case entities.QuoteBooked:
		return nil, apperr.Invalid("status", "quote %s is already booked as trip %s", q.QuoteID, q.TripID)
	case entities.QuoteCancelled, entities.QuoteRejected, entities.QuoteExpired:
		return nil, apperr.Invalid("status", "quote %s is %s", q.QuoteID, q.Status)
	}

	legs := make([]entities.Leg, len(q.Legs))
	copy(legs, q.Legs)
	trip, err := s.trips.SaveTrip(ctx, &entities.Trip{
		QuoteID:                    q.ID,
		CustomerID:                 q.SelectedCustomerID,
		ClientName:                 q.ClientName,
		AircraftID:                 q.AircraftID,
		AircraftLabel:              q.AircraftLabel,
		Legs:                       legs,
		Status:                     entities.TripScheduled,
		AssignedFlightAttendantIDs: []string{},
		Notes:                      q.Options.Notes,
	})
	if err != nil {
		return nil, err
	}

	q.Status = entities.QuoteBooked
	q.TripID = trip.ID
	booked, err := s.quotes.Save(ctx, q)
	if err != nil {
		return nil, err
	}
	if s.metrics != nil {
		s.metrics.QuotesBookedTotal.Inc()
	}
	logging.Info("quote booked", "quoteId", booked.QuoteID, "tripId", trip.TripID)
	return &BookingResult{Quote: booked, Trip: trip}, nil
}
