package entities

import "flightops360/hangar/internal/apperr"

type AircraftStatus string

const (
	AircraftActive      AircraftStatus = "Active"
	AircraftMaintenance AircraftStatus = "Maintenance"
	AircraftInactive    AircraftStatus = "Inactive"
)

// FleetAircraft is one aircraft of the operator's fleet.
type FleetAircraft struct {
	Base
	TailNumber            string         `json:"tailNumber" validate:"required"`
	Model                 string         `json:"model" validate:"required"`
	SerialNumber          string         `json:"serialNumber"`
	BaseLocation          string         `json:"baseLocation"`
	EngineCount           int            `json:"engineCount" validate:"gte=0"`
	IsMaxTimeTracked      bool           `json:"isMaxTimeTracked"`
	TrackedComponentNames []string       `json:"trackedComponentNames"`
	PrimaryContactName    string         `json:"primaryContactName"`
	PrimaryContactPhone   string         `json:"primaryContactPhone"`
	PrimaryContactEmail   string         `json:"primaryContactEmail" validate:"omitempty,email"`
	Status                AircraftStatus `json:"status" validate:"oneof=Active Maintenance Inactive"`
	ImageURL              string         `json:"imageUrl"`
}

func (a *FleetAircraft) applyDefaults() {
	if a.Status == "" {
		a.Status = AircraftActive
	}
}

// AircraftRate is the hourly buy/sell pair of one aircraft. Its id is the
// aircraft id.
type AircraftRate struct {
	Base
	Buy  float64 `json:"buy" validate:"gte=0"`
	Sell float64 `json:"sell" validate:"gte=0"`
}

func (r *AircraftRate) checkRules() error {
	if r.ID == "" {
		return apperr.Invalid("id", "is required")
	}
	return nil
}

// AircraftPerformanceData is keyed by aircraft id.
type AircraftPerformanceData struct {
	Base
	TakeoffSpeed              float64 `json:"takeoffSpeed" validate:"gte=0"`
	LandingSpeed              float64 `json:"landingSpeed" validate:"gte=0"`
	ClimbSpeed                float64 `json:"climbSpeed" validate:"gte=0"`
	ClimbRate                 float64 `json:"climbRate" validate:"gte=0"`
	CruiseSpeed               float64 `json:"cruiseSpeed" validate:"gte=0"`
	CruiseAltitude            float64 `json:"cruiseAltitude" validate:"gte=0"`
	DescentSpeed              float64 `json:"descentSpeed" validate:"gte=0"`
	DescentRate               float64 `json:"descentRate" validate:"gte=0"`
	FuelType                  string  `json:"fuelType"`
	FuelBurn                  float64 `json:"fuelBurn" validate:"gte=0"`
	MaxRange                  float64 `json:"maxRange" validate:"gte=0"`
	MaxAllowableTakeoffWeight float64 `json:"maxAllowableTakeoffWeight" validate:"gte=0"`
}

// ComponentTime is the accumulated time and cycles of one tracked component.
type ComponentTime struct {
	Time   float64 `json:"time" validate:"gte=0"`
	Cycles float64 `json:"cycles" validate:"gte=0"`
}

// ComponentTimes is keyed by aircraft id and maps component name to totals.
type ComponentTimes struct {
	Base
	Components map[string]ComponentTime `json:"components" validate:"dive,keys,required,endkeys"`
}

// AircraftDocument is aircraft paperwork whose file lives in blob storage.
type AircraftDocument struct {
	Base
	AircraftID   string `json:"aircraftId" validate:"required"`
	DocumentName string `json:"documentName" validate:"required"`
	DocumentType string `json:"documentType"`
	IssueDate    string `json:"issueDate"`
	ExpiryDate   string `json:"expiryDate"`
	FileURL      string `json:"fileUrl"`
	StoragePath  string `json:"storagePath"`
	Notes        string `json:"notes"`
}
