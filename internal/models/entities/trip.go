package entities

type TripStatus string

const (
	TripScheduled        TripStatus = "Scheduled"
	TripConfirmed        TripStatus = "Confirmed"
	TripReleased         TripStatus = "Released"
	TripEnRoute          TripStatus = "En Route"
	TripCompleted        TripStatus = "Completed"
	TripCancelled        TripStatus = "Cancelled"
	TripDiverted         TripStatus = "Diverted"
	TripAwaitingCloseout TripStatus = "Awaiting Closeout"
)

type Trip struct {
	Base
	TripID                     string     `json:"tripId"`
	QuoteID                    string     `json:"quoteId"`
	CustomerID                 string     `json:"customerId"`
	ClientName                 string     `json:"clientName" validate:"required"`
	AircraftID                 string     `json:"aircraftId" validate:"required"`
	AircraftLabel              string     `json:"aircraftLabel"`
	Legs                       []Leg      `json:"legs" validate:"dive"`
	Status                     TripStatus `json:"status" validate:"oneof=Scheduled Confirmed Released 'En Route' Completed Cancelled Diverted 'Awaiting Closeout'"`
	AssignedPilotID            string     `json:"assignedPilotId"`
	AssignedCoPilotID          string     `json:"assignedCoPilotId"`
	AssignedFlightAttendantIDs []string   `json:"assignedFlightAttendantIds"`
	Notes                      string     `json:"notes"`
}

func (t *Trip) applyDefaults() {
	if t.Status == "" {
		t.Status = TripScheduled
	}
	t.AssignedFlightAttendantIDs = dedupe(t.AssignedFlightAttendantIDs)
	defaultLegTypes(t.Legs)
}

func (t *Trip) checkRules() error {
	return legsRequired(t.Legs)
}

// dedupe keeps the first occurrence of each id, so the list behaves as a set.
func dedupe(ids []string) []string {
	out := make([]string, 0, len(ids))
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

type FuelUnit string

const (
	FuelLbs FuelUnit = "lbs"
	FuelGal FuelUnit = "gal"
	FuelKg  FuelUnit = "kg"
)

// FlightLog records actual times and fuel for one leg of a trip. Its id is
// derived from the trip id and leg index.
type FlightLog struct {
	Base
	TripID          string   `json:"tripId" validate:"required"`
	LegIndex        int      `json:"legIndex" validate:"gte=0"`
	BlockOutTimeUTC string   `json:"blockOutTimeUtc" validate:"required"`
	TakeOffTimeUTC  string   `json:"takeOffTimeUtc" validate:"required"`
	LandingTimeUTC  string   `json:"landingTimeUtc" validate:"required"`
	BlockInTimeUTC  string   `json:"blockInTimeUtc" validate:"required"`
	FuelUnit        FuelUnit `json:"fuelUnit" validate:"oneof=lbs gal kg"`
	StartingFuel    float64  `json:"startingFuel" validate:"gte=0"`
	FuelUplift      float64  `json:"fuelUplift" validate:"gte=0"`
	EndingFuel      float64  `json:"endingFuel" validate:"gte=0"`
	FlightTimeHours float64  `json:"flightTimeHours"`
	BlockTimeHours  float64  `json:"blockTimeHours"`
	FuelBurn        float64  `json:"fuelBurn"`
	FuelBurnLbs     float64  `json:"fuelBurnLbs"`
	Approaches      int      `json:"approaches" validate:"gte=0"`
	Landings        int      `json:"landings" validate:"gte=0"`
	PicID           string   `json:"picId"`
	SicID           string   `json:"sicId"`
	Notes           string   `json:"notes"`
}

func (f *FlightLog) applyDefaults() {
	if f.FuelUnit == "" {
		f.FuelUnit = FuelLbs
	}
}
