package constants

// Document store collection names
const (
	CollectionFleet             = "fleet"
	CollectionAircraftRates     = "aircraftRates"
	CollectionPerformanceData   = "aircraftPerformanceData"
	CollectionComponentTimes    = "aircraftComponentTimes"
	CollectionMaintenanceTasks  = "maintenanceTasks"
	CollectionMelItems          = "melItems"
	CollectionDiscrepancies     = "aircraftDiscrepancies"
	CollectionMaintenanceCosts  = "maintenanceCosts"
	CollectionAircraftDocuments = "aircraftDocuments"
	CollectionCrew              = "crew"
	CollectionCrewDocuments     = "crewDocuments"
	CollectionCompanyDocuments  = "companyDocuments"
	CollectionCompanyProfile    = "companyProfile"
	CollectionCustomers         = "customers"
	CollectionQuotes            = "quotes"
	CollectionTrips             = "trips"
	CollectionFlightLogs        = "flightLogs"
	CollectionBulletins         = "bulletins"
	CollectionNotifications     = "notifications"
	CollectionRoles             = "roles"
	CollectionUsers             = "users"
)

// AllCollections lists every collection, in dashboard order.
var AllCollections = []string{
	CollectionFleet,
	CollectionAircraftRates,
	CollectionPerformanceData,
	CollectionComponentTimes,
	CollectionMaintenanceTasks,
	CollectionMelItems,
	CollectionDiscrepancies,
	CollectionMaintenanceCosts,
	CollectionAircraftDocuments,
	CollectionCrew,
	CollectionCrewDocuments,
	CollectionCompanyDocuments,
	CollectionCompanyProfile,
	CollectionCustomers,
	CollectionQuotes,
	CollectionTrips,
	CollectionFlightLogs,
	CollectionBulletins,
	CollectionNotifications,
	CollectionRoles,
	CollectionUsers,
}
