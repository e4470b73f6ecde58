package api

import (
	"time"

	"flightops360/hangar/internal/auth"
	"flightops360/hangar/internal/common"
	"flightops360/hangar/internal/mailer"
	"flightops360/hangar/internal/metrics"
	"flightops360/hangar/internal/providers"
	"flightops360/hangar/internal/services"
	"flightops360/hangar/internal/storage"
	"flightops360/hangar/internal/store"
)

type Services struct {
	Fleet         *services.FleetService
	Maintenance   *services.MaintenanceService
	Crew          *services.CrewService
	Customers     *services.CustomerService
	Company       *services.CompanyService
	Quotes        *services.QuoteService
	Trips         *services.TripService
	Notifications *services.NotificationService
	Bulletins     *services.BulletinService
	Admin         *services.AdminService
	Documents     *services.DocumentService
	Dashboard     *services.DashboardService
	Generation    *services.GenerationService
}

// Collaborators are the external clients wired by main. Any of them may be
// nil; the operations that need a missing one fail with a configuration
// error.
type Collaborators struct {
	Cache    common.CacheInterface
	CacheTTL time.Duration
	Blobs    storage.BlobStorage
	Mail     mailer.Sender
	LLM      providers.TextGenerator
	Metrics  *metrics.MetricsRegistry
}

type Dependencies struct {
	Store    store.Store
	Services *Services
	Tokens   *auth.TokenManager
	Metrics  *metrics.MetricsRegistry
	Features map[string]bool
	UpSince  time.Time
}

func InitDependencies(s store.Store, c Collaborators, tokens *auth.TokenManager) *Dependencies {
	fleet := services.NewFleetService(s, c.Cache, c.CacheTTL)
	maintenance := services.NewMaintenanceService(s)
	company := services.NewCompanyService(s, c.Cache, c.CacheTTL)
	trips := services.NewTripService(s)
	notifications := services.NewNotificationService(s, c.Metrics)
	generation := services.NewGenerationService(c.LLM, fleet, maintenance, company, c.Metrics)

	svc := &Services{
		Fleet:         fleet,
		Maintenance:   maintenance,
		Crew:          services.NewCrewService(s),
		Customers:     services.NewCustomerService(s),
		Company:       company,
		Quotes:        services.NewQuoteService(s, fleet, company, trips, generation, c.Mail, c.Metrics),
		Trips:         trips,
		Notifications: notifications,
		Bulletins:     services.NewBulletinService(s, notifications),
		Admin:         services.NewAdminService(s),
		Documents:     services.NewDocumentService(s, fleet, c.Blobs),
		Dashboard:     services.NewDashboardService(s, maintenance, trips),
		Generation:    generation,
	}

	return &Dependencies{
		Store:    s,
		Services: svc,
		Tokens:   tokens,
		Metrics:  c.Metrics,
		Features: map[string]bool{
			"blobStorage":   c.Blobs != nil,
			"mail":          c.Mail != nil,
			"languageModel": c.LLM != nil,
		},
		UpSince: time.Now(),
	}
}
