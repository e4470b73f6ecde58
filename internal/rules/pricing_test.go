package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flightops360/hangar/internal/models/entities"
)

func TestMargin(t *testing.T) {
	tests := []struct {
		name       string
		buy, sell  float64
		wantAmount float64
		wantPct    float64
	}{
		{"zero buy", 0, 500, 500, 0},
		{"buy equals sell", 1200, 1200, 0, 0},
		{"sell below buy", 1000, 800, -200, -20},
		{"positive margin", 1000, 1250, 250, 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			amount, pct := Margin(tt.buy, tt.sell)
			assert.InDelta(t, tt.wantAmount, amount, 1e-9)
			assert.InDelta(t, tt.wantPct, pct, 1e-9)
		})
	}
}

func TestPriceQuote(t *testing.T) {
	q := &entities.Quote{
		LineItems: []entities.LineItem{
			{Description: "Aircraft", BuyRate: 2000, SellRate: 2600, Quantity: 2.5},
			{Description: "Catering", BuyRate: 100, SellRate: 150, Quantity: 1},
		},
		// stale values from the client are replaced
		TotalBuyCost:   1,
		TotalSellPrice: 1,
	}

	PriceQuote(q)

	assert.InDelta(t, 5000, q.LineItems[0].BuyTotal, 1e-9)
	assert.InDelta(t, 6500, q.LineItems[0].SellTotal, 1e-9)
	assert.InDelta(t, 5100, q.TotalBuyCost, 1e-9)
	assert.InDelta(t, 6650, q.TotalSellPrice, 1e-9)
	assert.InDelta(t, 1550, q.MarginAmount, 1e-9)
	assert.InDelta(t, 1550.0/5100*100, q.MarginPercentage, 1e-9)
}

func TestLegBlockHours(t *testing.T) {
	assert.Equal(t, 2.0, LegBlockHours(entities.Leg{BlockTimeHours: 2, FlightTimeHours: 1}))
	assert.Equal(t, 0.0, LegBlockHours(entities.Leg{}))
	assert.InDelta(t, 1.5, LegBlockHours(entities.Leg{FlightTimeHours: 1, OriginTaxiTimeMinutes: 15, DestinationTaxiTimeMinutes: 15}), 1e-9)
	// default taxi of ten minutes at each end
	assert.InDelta(t, 1+20.0/60, LegBlockHours(entities.Leg{FlightTimeHours: 1}), 1e-9)
}

func TestBuildLineItems(t *testing.T) {
	legs := []entities.Leg{
		{Origin: "KTEB", Destination: "KPBI", BlockTimeHours: 2.5},
		{Origin: "KPBI", Destination: "KTEB", BlockTimeHours: 2.5},
	}
	fees := map[string]entities.ServiceFeeRate{
		entities.FeeCatering:    {DisplayDescription: "Catering", Buy: 200, Sell: 300, IsActive: true},
		entities.FeeLandingFees: {DisplayDescription: "Landing fees", Buy: 50, Sell: 75, UnitDescription: "Landing", IsActive: true},
		entities.FeeMedics:      {DisplayDescription: "Medical crew", Buy: 900, Sell: 1200, IsActive: false},
		entities.FeeOvernight:   {DisplayDescription: "Crew overnight", Buy: 400, Sell: 500, IsActive: true},
	}
	opts := entities.QuoteOptions{
		CateringRequested:   true,
		MedicsRequested:     true,
		IncludeLandingFees:  true,
		EstimatedOvernights: 2,
		SellPriceOvernight:  650,
	}

	items := BuildLineItems("N123AB (CL-350)", &entities.AircraftRate{Buy: 3000, Sell: 3900}, legs, opts, fees)

	require.Len(t, items, 4)
	assert.Equal(t, "aircraft", items[0].ID)
	assert.Equal(t, "Aircraft charter - N123AB (CL-350)", items[0].Description)
	assert.InDelta(t, 5.0, items[0].Quantity, 1e-9)
	assert.InDelta(t, 15000, items[0].BuyTotal, 1e-9)
	assert.InDelta(t, 19500, items[0].SellTotal, 1e-9)

	assert.Equal(t, entities.FeeCatering, items[1].ID)
	assert.Equal(t, entities.FeeLandingFees, items[2].ID)
	assert.InDelta(t, 2, items[2].Quantity, 1e-9)

	overnight := items[3]
	assert.Equal(t, entities.FeeOvernight, overnight.ID)
	assert.InDelta(t, 650, overnight.SellRate, 1e-9, "option price overrides catalog")
	assert.InDelta(t, 1300, overnight.SellTotal, 1e-9)
}

func TestBuildLineItems_NoRate(t *testing.T) {
	items := BuildLineItems("N1", nil, []entities.Leg{{BlockTimeHours: 1}}, entities.QuoteOptions{}, nil)
	assert.Empty(t, items)
}
