package constants

type (
	APIStatus   string
	CachePrefix string
)

const (
	APIStatusOk    APIStatus = "ok"
	APIStatusError APIStatus = "error"

	CachePrefixCompanyProfile CachePrefix = "COMPANY_PROFILE"
	CachePrefixAircraftRate   CachePrefix = "AIRCRAFT_RATE_"
)

// CompanyProfileID is the fixed document id of the company profile singleton.
const CompanyProfileID = "main"

// Notification windows
const (
	DueSoonDays       = 7
	ExpiringSoonDays  = 30
	MaxUploadBytes    = 25 << 20
	DefaultTaxiMinute = 10
)
