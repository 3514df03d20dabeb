package service

import (
	"github.com/shopspring/decimal"

	"github.com/adverx/adverx-backend/internal/types"
)

// ============================================
// Price Estimator
// ============================================

// Pricing constants. These mirror the published calculator on the site, so
// a quote shown to a visitor and the price stored with their request never
// disagree.
var (
	basePrice         = decimal.NewFromInt(1500)
	perDayRate        = decimal.NewFromInt(800)
	soundSurcharge    = decimal.NewFromInt(300)
	stabilizerCharge  = decimal.NewFromInt(400)
	lightingSurcharge = decimal.NewFromInt(600)
	droneSurcharge    = decimal.NewFromInt(800)
	perCameraRate     = decimal.NewFromInt(500)
	perServiceRate    = decimal.NewFromInt(200)

	qualityMultipliers = map[string]decimal.Decimal{
		types.QualityStandard:  decimal.NewFromInt(1),
		types.QualityPremium:   decimal.NewFromFloat(1.5),
		types.QualityCinematic: decimal.NewFromFloat(2.2),
	}
)

// EstimateInput is the structured shape the calculator prices.
type EstimateInput struct {
	ProjectDuration   int
	QualityLevel      string
	SoundEquipment    bool
	Stabilizers       bool
	Lighting          bool
	Drones            bool
	AdditionalCameras int
	Services          []string
}

// Estimate deterministically prices a custom project request:
// base, plus a per-day rate, scaled by the quality tier, plus flat equipment
// surcharges, a per-camera rate and a per-service rate, rounded to the
// nearest whole currency unit. Same input, same output; no side effects.
func Estimate(in EstimateInput) (int64, error) {
	if in.ProjectDuration < 1 || in.AdditionalCameras < 0 {
		return 0, ErrInvalidInput
	}
	multiplier, ok := qualityMultipliers[in.QualityLevel]
	if !ok {
		return 0, ErrInvalidInput
	}

	total := basePrice.Add(perDayRate.Mul(decimal.NewFromInt(int64(in.ProjectDuration))))
	total = total.Mul(multiplier)

	if in.SoundEquipment {
		total = total.Add(soundSurcharge)
	}
	if in.Stabilizers {
		total = total.Add(stabilizerCharge)
	}
	if in.Lighting {
		total = total.Add(lightingSurcharge)
	}
	if in.Drones {
		total = total.Add(droneSurcharge)
	}
	total = total.Add(perCameraRate.Mul(decimal.NewFromInt(int64(in.AdditionalCameras))))
	total = total.Add(perServiceRate.Mul(decimal.NewFromInt(int64(distinctCount(in.Services)))))

	return total.Round(0).IntPart(), nil
}

func distinctCount(services []string) int {
	seen := make(map[string]struct{}, len(services))
	for _, s := range services {
		seen[s] = struct{}{}
	}
	return len(seen)
}
