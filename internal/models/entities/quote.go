package entities

import "flightops360/hangar/internal/apperr"

type LegType string

const (
	LegCharter     LegType = "Charter"
	LegOwner       LegType = "Owner"
	LegPositioning LegType = "Positioning"
	LegAmbulance   LegType = "Ambulance"
	LegCargo       LegType = "Cargo"
	LegMaintenance LegType = "Maintenance"
	LegFerry       LegType = "Ferry"
)

// Leg is one origin-to-destination segment shared by quotes and trips.
type Leg struct {
	Origin                     string  `json:"origin" validate:"required"`
	Destination                string  `json:"destination" validate:"required"`
	DepartureDateTime          string  `json:"departureDateTime"`
	LegType                    LegType `json:"legType" validate:"oneof=Charter Owner Positioning Ambulance Cargo Maintenance Ferry"`
	PassengerCount             int     `json:"passengerCount" validate:"gte=0"`
	OriginFbo                  string  `json:"originFbo"`
	DestinationFbo             string  `json:"destinationFbo"`
	OriginTaxiTimeMinutes      float64 `json:"originTaxiTimeMinutes" validate:"gte=0"`
	DestinationTaxiTimeMinutes float64 `json:"destinationTaxiTimeMinutes" validate:"gte=0"`
	FlightTimeHours            float64 `json:"flightTimeHours" validate:"gte=0"`
	BlockTimeHours             float64 `json:"blockTimeHours" validate:"gte=0"`
}

func defaultLegTypes(legs []Leg) {
	for i := range legs {
		if legs[i].LegType == "" {
			legs[i].LegType = LegCharter
		}
	}
}

// legsRequired is shared by quotes and trips, which both need a route.
func legsRequired(legs []Leg) error {
	if len(legs) == 0 {
		return apperr.Invalid("legs", "at least one leg is required")
	}
	return nil
}

type QuoteOptions struct {
	MedicsRequested        bool    `json:"medicsRequested"`
	CateringRequested      bool    `json:"cateringRequested"`
	FuelSurchargeRequested bool    `json:"fuelSurchargeRequested"`
	IncludeLandingFees     bool    `json:"includeLandingFees"`
	EstimatedOvernights    int     `json:"estimatedOvernights" validate:"gte=0"`
	SellPriceMedics        float64 `json:"sellPriceMedics" validate:"gte=0"`
	SellPriceCatering      float64 `json:"sellPriceCatering" validate:"gte=0"`
	SellPriceFuelSurcharge float64 `json:"sellPriceFuelSurcharge" validate:"gte=0"`
	SellPriceLandingFees   float64 `json:"sellPriceLandingFees" validate:"gte=0"`
	SellPriceOvernight     float64 `json:"sellPriceOvernight" validate:"gte=0"`
	Notes                  string  `json:"notes"`
}

type LineItem struct {
	ID              string  `json:"id"`
	Description     string  `json:"description" validate:"required"`
	BuyRate         float64 `json:"buyRate" validate:"gte=0"`
	SellRate        float64 `json:"sellRate" validate:"gte=0"`
	UnitDescription string  `json:"unitDescription"`
	Quantity        float64 `json:"quantity" validate:"gte=0"`
	BuyTotal        float64 `json:"buyTotal"`
	SellTotal       float64 `json:"sellTotal"`
}

type QuoteStatus string

const (
	QuoteDraft     QuoteStatus = "Draft"
	QuoteSent      QuoteStatus = "Sent"
	QuoteAccepted  QuoteStatus = "Accepted"
	QuoteRejected  QuoteStatus = "Rejected"
	QuoteExpired   QuoteStatus = "Expired"
	QuoteBooked    QuoteStatus = "Booked"
	QuoteCancelled QuoteStatus = "Cancelled"
)

type Quote struct {
	Base
	QuoteID            string       `json:"quoteId"`
	SelectedCustomerID string       `json:"selectedCustomerId"`
	ClientName         string       `json:"clientName" validate:"required"`
	ClientEmail        string       `json:"clientEmail" validate:"omitempty,email"`
	ClientPhone        string       `json:"clientPhone"`
	AircraftID         string       `json:"aircraftId" validate:"required"`
	AircraftLabel      string       `json:"aircraftLabel"`
	Legs               []Leg        `json:"legs" validate:"dive"`
	Options            QuoteOptions `json:"options"`
	LineItems          []LineItem   `json:"lineItems" validate:"dive"`
	TotalBuyCost       float64      `json:"totalBuyCost"`
	TotalSellPrice     float64      `json:"totalSellPrice"`
	MarginAmount       float64      `json:"marginAmount"`
	MarginPercentage   float64      `json:"marginPercentage"`
	Status             QuoteStatus  `json:"status" validate:"oneof=Draft Sent Accepted Rejected Expired Booked Cancelled"`
	TripID             string       `json:"tripId"`
}

func (q *Quote) applyDefaults() {
	if q.Status == "" {
		q.Status = QuoteDraft
	}
	defaultLegTypes(q.Legs)
}

func (q *Quote) checkRules() error {
	return legsRequired(q.Legs)
}
