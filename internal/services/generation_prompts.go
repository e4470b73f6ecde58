package services

import (
	"fmt"
	"strings"

	"flightops360/hangar/internal/models/entities"
)

// WorkOrderPrompt asks for a maintenance work order covering tasks on one
// aircraft.
func WorkOrderPrompt(aircraft *entities.FleetAircraft, tasks []entities.MaintenanceTask, companyName string) string {
	var b strings.Builder
	b.WriteString("Draft a maintenance work order for the aircraft and tasks below.\n")
	b.WriteString("Include a header, one numbered section per task with the reference and a sign-off line, and a closing certification block.\n\n")
	if companyName != "" {
		fmt.Fprintf(&b, "Operator: %s\n", companyName)
	}
	fmt.Fprintf(&b, "Aircraft: %s\n", AircraftLabel(aircraft))
	if aircraft.SerialNumber != "" {
		fmt.Fprintf(&b, "Serial number: %s\n", aircraft.SerialNumber)
	}
	if aircraft.BaseLocation != "" {
		fmt.Fprintf(&b, "Base: %s\n", aircraft.BaseLocation)
	}
	b.WriteString("\nTasks:\n")
	for i, t := range tasks {
		fmt.Fprintf(&b, "%d. %s", i+1, t.ItemTitle)
		if t.ReferenceNumber != "" {
			fmt.Fprintf(&b, " (ref %s)", t.ReferenceNumber)
		}
		fmt.Fprintf(&b, " [%s]", t.ItemType)
		if t.ExactDueDate != "" {
			fmt.Fprintf(&b, ", due %s", t.ExactDueDate)
		}
		if t.Details != "" {
			fmt.Fprintf(&b, "\n   Details: %s", t.Details)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// QuoteEmailPrompt asks for the client email presenting a quote.
func QuoteEmailPrompt(q *entities.Quote, profile *entities.CompanyProfile) string {
	var b strings.Builder
	b.WriteString("Write a concise, professional email presenting this charter quote to the client.\n")
	b.WriteString("Summarise the itinerary, list the priced items and the total, and invite the client to confirm. Plain text only.\n\n")
	if profile != nil && profile.CompanyName != "" {
		fmt.Fprintf(&b, "From: %s", profile.CompanyName)
		if profile.CompanyPhone != "" {
			fmt.Fprintf(&b, " (%s)", profile.CompanyPhone)
		}
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "Client: %s\n", q.ClientName)
	fmt.Fprintf(&b, "Quote: %s\n", q.QuoteID)
	if q.AircraftLabel != "" {
		fmt.Fprintf(&b, "Aircraft: %s\n", q.AircraftLabel)
	}
	b.WriteString("\nItinerary:\n")
	for i, l := range q.Legs {
		fmt.Fprintf(&b, "%d. %s to %s", i+1, l.Origin, l.Destination)
		if l.DepartureDateTime != "" {
			fmt.Fprintf(&b, " departing %s", l.DepartureDateTime)
		}
		fmt.Fprintf(&b, ", %d pax\n", l.PassengerCount)
	}
	b.WriteString("\nPricing:\n")
	for _, li := range q.LineItems {
		fmt.Fprintf(&b, "- %s: %.2f x %.2f = %.2f\n", li.Description, li.Quantity, li.SellRate, li.SellTotal)
	}
	fmt.Fprintf(&b, "Total: %.2f\n", q.TotalSellPrice)
	if q.Options.Notes != "" {
		fmt.Fprintf(&b, "\nNotes: %s\n", q.Options.Notes)
	}
	return b.String()
}

// FlightTimeRequest is the input of a flight-time estimate.
type FlightTimeRequest struct {
	Origin        string  `json:"origin"`
	Destination   string  `json:"destination"`
	AircraftModel string  `json:"aircraftModel"`
	CruiseSpeed   float64 `json:"knownCruiseSpeedKts,omitempty"`
}

// FlightTimeEstimate is the model's answer.
type FlightTimeEstimate struct {
	EstimatedFlightTimeHours float64 `json:"estimatedFlightTimeHours"`
	EstimatedMileageNM       float64 `json:"estimatedMileageNM"`
	BriefExplanation         string  `json:"briefExplanation"`
}

func FlightTimePrompt(req FlightTimeRequest) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Estimate the flight time between %s and %s for a %s.\n",
		strings.ToUpper(req.Origin), strings.ToUpper(req.Destination), req.AircraftModel)
	if req.CruiseSpeed > 0 {
		fmt.Fprintf(&b, "Use a cruise speed of %.0f knots.\n", req.CruiseSpeed)
	}
	b.WriteString("Account for climb, descent and typical routing but not taxi.\n")
	b.WriteString(`Reply with one JSON object: {"estimatedFlightTimeHours": number, "estimatedMileageNM": number, "briefExplanation": string}.`)
	return b.String()
}

func PerformancePrompt(aircraftModel string) string {
	return fmt.Sprintf("Suggest typical performance figures for a %s.\n"+
		"Speeds in knots, rates in feet per minute, altitude in feet, fuel burn in gallons per hour, range in nautical miles, weight in pounds.\n"+
		`Reply with one JSON object with the numeric keys takeoffSpeed, landingSpeed, climbSpeed, climbRate, cruiseSpeed, cruiseAltitude, descentSpeed, descentRate, fuelBurn, maxRange, maxAllowableTakeoffWeight and the string key fuelType.`,
		aircraftModel)
}

// jsonPayload trims markdown fences some models wrap JSON replies in.
func jsonPayload(text string) string {
	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```json")
		text = strings.TrimPrefix(text, "```")
		text = strings.TrimSuffix(text, "```")
	}
	if i, j := strings.Index(text, "{"), strings.LastIndex(text, "}"); i >= 0 && j > i {
		text = text[i : j+1]
	}
	return strings.TrimSpace(text)
}
