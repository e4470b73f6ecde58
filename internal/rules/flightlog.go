package rules

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"flightops360/hangar/internal/apperr"
	"flightops360/hangar/internal/models/entities"
)

const (
	// JetALbsPerGallon is the nominal density of Jet-A.
	JetALbsPerGallon = 6.7
	LbsPerKg         = 2.20462
)

// clockMinutes parses an HH:MM wall-clock time into minutes after midnight.
func clockMinutes(field, hhmm string) (int, error) {
	parts := strings.Split(strings.TrimSpace(hhmm), ":")
	if len(parts) != 2 {
		return 0, apperr.Invalid(field, "must be HH:MM, got %q", hhmm)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, apperr.Invalid(field, "hour out of range in %q", hhmm)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, apperr.Invalid(field, "minute out of range in %q", hhmm)
	}
	return h*60 + m, nil
}

// ElapsedHours is the time from start to end in hours, rounded to
// hundredths. An end earlier than the start is taken to be the next day.
func ElapsedHours(field, start, end string) (float64, error) {
	s, err := clockMinutes(field, start)
	if err != nil {
		return 0, err
	}
	e, err := clockMinutes(field, end)
	if err != nil {
		return 0, err
	}
	diff := e - s
	if diff < 0 {
		diff += 24 * 60
	}
	return roundTo(float64(diff)/60, 2), nil
}

// ToLbs converts a fuel quantity to pounds.
func ToLbs(amount float64, unit entities.FuelUnit) (float64, error) {
	switch unit {
	case entities.FuelLbs, "":
		return amount, nil
	case entities.FuelGal:
		return amount * JetALbsPerGallon, nil
	case entities.FuelKg:
		return amount * LbsPerKg, nil
	default:
		return 0, fmt.Errorf("unknown fuel unit %q", unit)
	}
}

// ComputeFlightLog fills the derived times and fuel burn of a log.
func ComputeFlightLog(f *entities.FlightLog) error {
	flight, err := ElapsedHours("takeOffTimeUtc", f.TakeOffTimeUTC, f.LandingTimeUTC)
	if err != nil {
		return err
	}
	block, err := ElapsedHours("blockOutTimeUtc", f.BlockOutTimeUTC, f.BlockInTimeUTC)
	if err != nil {
		return err
	}
	burn := f.StartingFuel + f.FuelUplift - f.EndingFuel
	if burn < 0 {
		return apperr.Invalid("endingFuel", "exceeds starting fuel plus uplift")
	}
	lbs, err := ToLbs(burn, f.FuelUnit)
	if err != nil {
		return apperr.Invalid("fuelUnit", "%v", err)
	}
	f.FlightTimeHours = flight
	f.BlockTimeHours = block
	f.FuelBurn = roundTo(burn, 2)
	f.FuelBurnLbs = roundTo(lbs, 2)
	return nil
}

// FlightLogID is the document id of the log of one leg.
func FlightLogID(tripID string, legIndex int) string {
	return fmt.Sprintf("%s-leg%d", tripID, legIndex)
}

func roundTo(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
