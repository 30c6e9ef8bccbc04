package services

import (
	"math"
	"strings"
	"time"

	"festa/internal/models"
)

// Service names for the four bookable add-ons.
const (
	ServiceCatering    = "catering"
	ServiceDecoration  = "decoration"
	ServicePhotography = "photography"
	ServiceMusic       = "music"
)

// Tier labels. Anything else is priced as "none"; that silent fallback is
// deliberate policy, not an error.
const (
	TierNone     = "none"
	TierStandard = "standard"
	TierPremium  = "premium"
)

var serviceTierPrices = map[string]map[string]float64{
	ServiceCatering:    {TierNone: 0, TierStandard: 100, TierPremium: 200},
	ServiceDecoration:  {TierNone: 0, TierStandard: 50, TierPremium: 150},
	ServicePhotography: {TierNone: 0, TierStandard: 75, TierPremium: 175},
	ServiceMusic:       {TierNone: 0, TierStandard: 60, TierPremium: 120},
}

// ServicePrice returns the fixed price for a service at a tier. The tier
// label is case-insensitive; unknown services or tiers cost 0.
func ServicePrice(service, tier string) float64 {
	tiers, ok := serviceTierPrices[strings.ToLower(service)]
	if !ok {
		return 0
	}
	return tiers[strings.ToLower(tier)]
}

// ServicesCost prices a full selection and returns the breakdown.
func ServicesCost(sel models.ServiceSelection) models.ServiceCosts {
	return models.ServiceCosts{
		Catering:    ServicePrice(ServiceCatering, sel.Catering),
		Decoration:  ServicePrice(ServiceDecoration, sel.Decoration),
		Photography: ServicePrice(ServicePhotography, sel.Photography),
		Music:       ServicePrice(ServiceMusic, sel.Music),
	}
}

// BookingDays returns the chargeable day count for a closed date range,
// inclusive of both boundary days: ceil((end-start)/24h) + 1.
func BookingDays(start, end time.Time) int {
	if end.Before(start) {
		return 0
	}
	return int(math.Ceil(end.Sub(start).Hours()/24)) + 1
}
