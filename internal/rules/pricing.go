package rules

import (
	"fmt"

	"flightops360/hangar/internal/constants"
	"flightops360/hangar/internal/models/entities"
)

// Margin returns sell-buy and the margin as a percentage of buy. A zero buy
// cost yields a zero percentage.
func Margin(totalBuy, totalSell float64) (amount, percentage float64) {
	amount = totalSell - totalBuy
	if totalBuy > 0 {
		percentage = amount / totalBuy * 100
	}
	return amount, percentage
}

// PriceLineItems fills buyTotal and sellTotal of every item from its rates.
func PriceLineItems(items []entities.LineItem) {
	for i := range items {
		items[i].BuyTotal = items[i].BuyRate * items[i].Quantity
		items[i].SellTotal = items[i].SellRate * items[i].Quantity
	}
}

// PriceQuote recomputes line totals, quote totals and margin in place.
func PriceQuote(q *entities.Quote) {
	PriceLineItems(q.LineItems)
	var buy, sell float64
	for _, li := range q.LineItems {
		buy += li.BuyTotal
		sell += li.SellTotal
	}
	q.TotalBuyCost = buy
	q.TotalSellPrice = sell
	q.MarginAmount, q.MarginPercentage = Margin(buy, sell)
}

// LegBlockHours is the block time of a leg: the recorded block time when
// present, else flight time plus taxi at both ends.
func LegBlockHours(l entities.Leg) float64 {
	if l.BlockTimeHours > 0 {
		return l.BlockTimeHours
	}
	if l.FlightTimeHours <= 0 {
		return 0
	}
	origin, dest := l.OriginTaxiTimeMinutes, l.DestinationTaxiTimeMinutes
	if origin == 0 {
		origin = constants.DefaultTaxiMinute
	}
	if dest == 0 {
		dest = constants.DefaultTaxiMinute
	}
	return l.FlightTimeHours + (origin+dest)/60
}

// TotalBlockHours sums LegBlockHours over legs, rounded to hundredths.
func TotalBlockHours(legs []entities.Leg) float64 {
	var total float64
	for _, l := range legs {
		total += LegBlockHours(l)
	}
	return roundTo(total, 2)
}

// BuildLineItems assembles the priced line items of a quote: the aircraft
// hourly rate over the total block time, then every fee the options ask for
// that is active in the company catalog. A positive sell price in the
// options overrides the catalog sell price.
func BuildLineItems(aircraftLabel string, rate *entities.AircraftRate, legs []entities.Leg,
	opts entities.QuoteOptions, fees map[string]entities.ServiceFeeRate) []entities.LineItem {

	hours := TotalBlockHours(legs)
	items := make([]entities.LineItem, 0, 6)
	if rate != nil && hours > 0 {
		items = append(items, entities.LineItem{
			ID:              "aircraft",
			Description:     fmt.Sprintf("Aircraft charter - %s", aircraftLabel),
			BuyRate:         rate.Buy,
			SellRate:        rate.Sell,
			UnitDescription: "Hour",
			Quantity:        hours,
		})
	}

	add := func(key string, requested bool, sellOverride, qty float64) {
		if !requested || qty <= 0 {
			return
		}
		fee, ok := fees[key]
		if !ok || !fee.IsActive {
			return
		}
		sell := fee.Sell
		if sellOverride > 0 {
			sell = sellOverride
		}
		items = append(items, entities.LineItem{
			ID:              key,
			Description:     fee.DisplayDescription,
			BuyRate:         fee.Buy,
			SellRate:        sell,
			UnitDescription: fee.UnitDescription,
			Quantity:        qty,
		})
	}
	add(entities.FeeMedics, opts.MedicsRequested, opts.SellPriceMedics, 1)
	add(entities.FeeCatering, opts.CateringRequested, opts.SellPriceCatering, 1)
	add(entities.FeeFuelSurcharge, opts.FuelSurchargeRequested, opts.SellPriceFuelSurcharge, hours)
	add(entities.FeeLandingFees, opts.IncludeLandingFees, opts.SellPriceLandingFees, float64(len(legs)))
	add(entities.FeeOvernight, opts.EstimatedOvernights > 0, opts.SellPriceOvernight, float64(opts.EstimatedOvernights))

	PriceLineItems(items)
	return items
}
