package routes

import (
	"github.com/go-chi/chi/v5"

	"flightops360/hangar/internal/api"
	"flightops360/hangar/internal/constants"
	"flightops360/hangar/internal/middleware"
)

var (
	fleetWriters       = []constants.Role{constants.RoleManager}
	maintenanceWriters = []constants.Role{constants.RoleManager, constants.RoleMaintenance}
	salesWriters       = []constants.Role{constants.RoleManager, constants.RoleDispatcher}
	flightLogWriters   = []constants.Role{constants.RoleManager, constants.RoleDispatcher, constants.RoleCrew}
	generators         = []constants.Role{constants.RoleManager, constants.RoleDispatcher, constants.RoleMaintenance}
)

// RegisterAPIRoutes mounts /api/v1. Every route needs a bearer token; reads
// are open to any role and writes are gated per area. Admin passes every
// gate.
func RegisterAPIRoutes(r chi.Router, deps *api.Dependencies, limiter *middleware.RateLimiter) {
	r.Route("/api/v1", func(v1 chi.Router) {
		if limiter != nil {
			v1.Use(limiter.Middleware)
		}
		v1.Use(middleware.AuthMiddleware(deps.Tokens))

		v1.Get("/me", api.MeHandler(deps))
		v1.Get("/dashboard", api.DashboardHandler(deps))

		v1.Route("/fleet", func(fleet chi.Router) {
			fleet.Get("/", api.ListAircraftHandler(deps))
			fleet.Get("/rates", api.ListRatesHandler(deps))
			fleet.Get("/{id}", api.GetAircraftHandler(deps))
			fleet.Get("/{id}/rate", api.GetRateHandler(deps))
			fleet.Get("/{id}/performance", api.GetPerformanceHandler(deps))
			fleet.Get("/{id}/components", api.GetComponentTimesHandler(deps))
			fleet.Get("/{id}/documents", api.ListAircraftDocumentsHandler(deps))

			fleet.Group(func(w chi.Router) {
				w.Use(middleware.RequireRole(fleetWriters...))
				w.Post("/", api.SaveAircraftHandler(deps))
				w.Put("/{id}", api.SaveAircraftHandler(deps))
				w.Delete("/{id}", api.DeleteAircraftHandler(deps))
				w.Put("/{id}/rate", api.SaveRateHandler(deps))
				w.Delete("/{id}/rate", api.DeleteRateHandler(deps))
				w.Put("/{id}/performance", api.SavePerformanceHandler(deps))
			})
			fleet.Group(func(w chi.Router) {
				w.Use(middleware.RequireRole(maintenanceWriters...))
				w.Put("/{id}/components", api.SaveComponentTimesHandler(deps))
				w.Post("/{id}/documents", api.UploadAircraftDocumentHandler(deps))
			})
		})

		v1.Route("/aircraft-documents", func(d chi.Router) {
			d.Get("/{id}", api.GetAircraftDocumentHandler(deps))
			d.Group(func(w chi.Router) {
				w.Use(middleware.RequireRole(maintenanceWriters...))
				w.Post("/", api.SaveAircraftDocumentHandler(deps))
				w.Put("/{id}", api.SaveAircraftDocumentHandler(deps))
				w.Delete("/{id}", api.DeleteAircraftDocumentHandler(deps))
			})
		})

		v1.Route("/maintenance", func(m chi.Router) {
			m.Get("/tasks", api.ListTasksHandler(deps))
			m.Get("/tasks/{id}", api.GetTaskHandler(deps))
			m.Get("/mel", api.ListMelItemsHandler(deps))
			m.Get("/mel/{id}", api.GetMelItemHandler(deps))
			m.Get("/discrepancies", api.ListDiscrepanciesHandler(deps))
			m.Get("/discrepancies/{id}", api.GetDiscrepancyHandler(deps))
			m.Get("/costs", api.ListCostsHandler(deps))
			m.Get("/costs/{id}", api.GetCostHandler(deps))

			m.Group(func(w chi.Router) {
				w.Use(middleware.RequireRole(maintenanceWriters...))
				w.Post("/tasks", api.SaveTaskHandler(deps))
				w.Put("/tasks/{id}", api.SaveTaskHandler(deps))
				w.Delete("/tasks/{id}", api.DeleteTaskHandler(deps))
				w.Post("/mel", api.SaveMelItemHandler(deps))
				w.Put("/mel/{id}", api.SaveMelItemHandler(deps))
				w.Delete("/mel/{id}", api.DeleteMelItemHandler(deps))
				w.Post("/discrepancies", api.SaveDiscrepancyHandler(deps))
				w.Put("/discrepancies/{id}", api.SaveDiscrepancyHandler(deps))
				w.Delete("/discrepancies/{id}", api.DeleteDiscrepancyHandler(deps))
				w.Post("/costs", api.SaveCostHandler(deps))
				w.Put("/costs/{id}", api.SaveCostHandler(deps))
				w.Delete("/costs/{id}", api.DeleteCostHandler(deps))
			})
		})

		v1.Route("/crew", func(c chi.Router) {
			c.Get("/", api.ListCrewHandler(deps))
			c.Get("/documents", api.ListCrewDocumentsHandler(deps))
			c.Get("/documents/{id}", api.GetCrewDocumentHandler(deps))
			c.Get("/{id}", api.GetCrewMemberHandler(deps))

			c.Group(func(w chi.Router) {
				w.Use(middleware.RequireRole(fleetWriters...))
				w.Post("/", api.SaveCrewMemberHandler(deps))
				w.Put("/{id}", api.SaveCrewMemberHandler(deps))
				w.Delete("/{id}", api.DeleteCrewMemberHandler(deps))
				w.Post("/documents", api.SaveCrewDocumentHandler(deps))
				w.Put("/documents/{id}", api.SaveCrewDocumentHandler(deps))
				w.Delete("/documents/{id}", api.DeleteCrewDocumentHandler(deps))
			})
		})

		v1.Route("/customers", func(c chi.Router) {
			c.Get("/", api.ListCustomersHandler(deps))
			c.Get("/{id}", api.GetCustomerHandler(deps))
			c.Group(func(w chi.Router) {
				w.Use(middleware.RequireRole(salesWriters...))
				w.Post("/", api.SaveCustomerHandler(deps))
				w.Put("/{id}", api.SaveCustomerHandler(deps))
				w.Delete("/{id}", api.DeleteCustomerHandler(deps))
			})
		})

		v1.Route("/company", func(c chi.Router) {
			c.Get("/profile", api.GetCompanyProfileHandler(deps))
			c.Get("/documents", api.ListCompanyDocumentsHandler(deps))
			c.Get("/documents/{id}", api.GetCompanyDocumentHandler(deps))
			c.Group(func(w chi.Router) {
				w.Use(middleware.RequireRole(fleetWriters...))
				w.Put("/profile", api.SaveCompanyProfileHandler(deps))
				w.Post("/documents", api.SaveCompanyDocumentHandler(deps))
				w.Put("/documents/{id}", api.SaveCompanyDocumentHandler(deps))
				w.Delete("/documents/{id}", api.DeleteCompanyDocumentHandler(deps))
			})
		})

		v1.Route("/quotes", func(q chi.Router) {
			q.Get("/", api.ListQuotesHandler(deps))
			q.Get("/{id}", api.GetQuoteHandler(deps))
			q.Group(func(w chi.Router) {
				w.Use(middleware.RequireRole(salesWriters...))
				w.Post("/", api.SaveQuoteHandler(deps))
				w.Post("/price", api.PriceQuoteHandler(deps))
				w.Put("/{id}", api.SaveQuoteHandler(deps))
				w.Delete("/{id}", api.DeleteQuoteHandler(deps))
				w.Post("/{id}/send", api.SendQuoteHandler(deps))
				w.Post("/{id}/book", api.BookQuoteHandler(deps))
			})
		})

		v1.Route("/trips", func(t chi.Router) {
			t.Get("/", api.ListTripsHandler(deps))
			t.Get("/current", api.ListCurrentTripsHandler(deps))
			t.Get("/upcoming", api.ListUpcomingTripsHandler(deps))
			t.Get("/{id}", api.GetTripHandler(deps))
			t.Get("/{id}/flight-logs", api.ListFlightLogsHandler(deps))
			t.Group(func(w chi.Router) {
				w.Use(middleware.RequireRole(salesWriters...))
				w.Post("/", api.SaveTripHandler(deps))
				w.Put("/{id}", api.SaveTripHandler(deps))
				w.Delete("/{id}", api.DeleteTripHandler(deps))
			})
			t.Group(func(w chi.Router) {
				w.Use(middleware.RequireRole(flightLogWriters...))
				w.Post("/{id}/flight-logs", api.SaveFlightLogHandler(deps))
				w.Delete("/{id}/flight-logs/{logId}", api.DeleteFlightLogHandler(deps))
			})
		})

		v1.Route("/bulletins", func(b chi.Router) {
			b.Get("/", api.ListBulletinsHandler(deps))
			b.Get("/{id}", api.GetBulletinHandler(deps))
			b.Group(func(w chi.Router) {
				w.Use(middleware.RequireRole(fleetWriters...))
				w.Post("/", api.SaveBulletinHandler(deps))
				w.Put("/{id}", api.SaveBulletinHandler(deps))
				w.Delete("/{id}", api.DeleteBulletinHandler(deps))
			})
		})

		v1.Route("/notifications", func(n chi.Router) {
			n.Get("/", api.ListNotificationsHandler(deps))
			n.Post("/", api.CreateNotificationHandler(deps))
			n.Post("/read-all", api.MarkAllNotificationsReadHandler(deps))
			n.Post("/generate", api.GenerateNotificationsHandler(deps))
			n.Patch("/{id}", api.MarkNotificationReadHandler(deps))
			n.Delete("/{id}", api.DeleteNotificationHandler(deps))
		})

		v1.Route("/generate", func(g chi.Router) {
			g.Use(middleware.RequireRole(generators...))
			g.Post("/work-order", api.GenerateWorkOrderHandler(deps))
			g.Post("/quote-email", api.GenerateQuoteEmailHandler(deps))
			g.Post("/flight-time", api.EstimateFlightTimeHandler(deps))
			g.Post("/performance", api.SuggestPerformanceHandler(deps))
		})

		v1.Route("/admin", func(a chi.Router) {
			a.Use(middleware.RequireRole(constants.RoleAdmin))
			a.Get("/roles", api.ListRolesHandler(deps))
			a.Post("/roles", api.SaveRoleHandler(deps))
			a.Get("/roles/{id}", api.GetRoleHandler(deps))
			a.Put("/roles/{id}", api.SaveRoleHandler(deps))
			a.Delete("/roles/{id}", api.DeleteRoleHandler(deps))
			a.Get("/users", api.ListUsersHandler(deps))
			a.Post("/users", api.SaveUserHandler(deps))
			a.Get("/users/{id}", api.GetUserHandler(deps))
			a.Put("/users/{id}", api.SaveUserHandler(deps))
			a.Put("/users/{id}/roles", api.SetUserRolesHandler(deps))
			a.Delete("/users/{id}", api.DeleteUserHandler(deps))
		})
	})
}
