package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"festa/internal/models"
)

func TestServicePriceTiers(t *testing.T) {
	assert.Equal(t, 0.0, ServicePrice(ServiceCatering, TierNone))
	assert.Equal(t, 100.0, ServicePrice(ServiceCatering, TierStandard))
	assert.Equal(t, 200.0, ServicePrice(ServiceCatering, TierPremium))

	assert.Equal(t, 50.0, ServicePrice(ServiceDecoration, TierStandard))
	assert.Equal(t, 150.0, ServicePrice(ServiceDecoration, TierPremium))

	assert.Equal(t, 75.0, ServicePrice(ServicePhotography, TierStandard))
	assert.Equal(t, 175.0, ServicePrice(ServicePhotography, TierPremium))

	assert.Equal(t, 60.0, ServicePrice(ServiceMusic, TierStandard))
	assert.Equal(t, 120.0, ServicePrice(ServiceMusic, TierPremium))
}

func TestServicePriceIsCaseInsensitive(t *testing.T) {
	assert.Equal(t, 200.0, ServicePrice("Catering", "PREMIUM"))
	assert.Equal(t, 75.0, ServicePrice("PHOTOGRAPHY", "Standard"))
}

func TestServicePriceUnknownTierCostsNothing(t *testing.T) {
	assert.Equal(t, 0.0, ServicePrice(ServiceCatering, "deluxe"))
	assert.Equal(t, 0.0, ServicePrice(ServiceMusic, ""))
	assert.Equal(t, 0.0, ServicePrice("valet", TierPremium))
}

func TestServicesCostBreakdown(t *testing.T) {
	sel := models.ServiceSelection{
		Catering:    TierPremium,
		Decoration:  TierStandard,
		Photography: TierPremium,
		Music:       TierNone,
	}

	costs := ServicesCost(sel)

	assert.Equal(t, 200.0, costs.Catering)
	assert.Equal(t, 50.0, costs.Decoration)
	assert.Equal(t, 175.0, costs.Photography)
	assert.Equal(t, 0.0, costs.Music)
	assert.Equal(t, 425.0, costs.Sum())
}

func TestBookingDaysIsBoundaryInclusive(t *testing.T) {
	day := func(d int) time.Time {
		return time.Date(2026, time.January, d, 0, 0, 0, 0, time.UTC)
	}

	// Same-day bookings still charge one day.
	assert.Equal(t, 1, BookingDays(day(5), day(5)))
	assert.Equal(t, 2, BookingDays(day(5), day(6)))
	assert.Equal(t, 3, BookingDays(day(1), day(3)))
}

func TestBookingDaysRoundsPartialDaysUp(t *testing.T) {
	start := time.Date(2026, time.March, 1, 9, 0, 0, 0, time.UTC)
	end := time.Date(2026, time.March, 2, 17, 0, 0, 0, time.UTC)

	// 32 hours spans two calendar boundaries once rounded up.
	assert.Equal(t, 3, BookingDays(start, end))
}

func TestBookingDaysInvertedRangeIsZero(t *testing.T) {
	start := time.Date(2026, time.January, 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, time.January, 5, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 0, BookingDays(start, end))
}
