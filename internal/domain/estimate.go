package domain

import "math"

// Plausible physical input ranges. Observations are clamped here before the
// heuristics run so pathological or adversarial inputs cannot push the
// derived indices wildly outside the trained distribution.
const (
	minTemperature = -10.0
	maxTemperature = 60.0
	minHumidity    = 0.0
	maxHumidity    = 100.0
	minWind        = 0.0
	maxWind        = 50.0
	minRain        = 0.0
	maxRain        = 500.0
)

// Valid ranges for each derived index, matching the historical training
// distribution. Indices are clamped a second time into these bounds whether
// estimated or supplied upstream.
const (
	MinFFMC = 18.7
	MaxFFMC = 96.2
	MinDMC  = 1.1
	MaxDMC  = 291.3
	MinDC   = 7.9
	MaxDC   = 860.6
	MinISI  = 0.0
	MaxISI  = 56.1
)

// EstimateIndices derives FFMC, DMC, DC, and ISI from basic weather using
// fixed linear heuristics. Each result is clamped to its valid index range
// and rounded to two decimal places.
//
// This is an approximation standing in for the canonical multi-day recursive
// fire-index formulas: it has no memory of prior days and is stateless per
// call. The coefficients are frozen alongside the model artifact and must not
// change independently of it.
func EstimateIndices(obs WeatherObservation) FireWeatherIndices {
	temp := clamp(obs.Temperature, minTemperature, maxTemperature)
	rh := clamp(obs.Humidity, minHumidity, maxHumidity)
	wind := clamp(obs.Wind, minWind, maxWind)
	rain := clamp(obs.Rain, minRain, maxRain)

	ffmc := clamp(20+(temp*1.6)-(rh*0.15)+(wind*0.6)-(rain*0.1), MinFFMC, MaxFFMC)
	dmc := clamp(1+(100-rh)*(temp/30)+wind*0.5-rain*0.2, MinDMC, MaxDMC)
	dc := clamp(10+(100-rh)*(temp/20)+wind*0.7-rain*0.05, MinDC, MaxDC)
	// ISI spread depends on the already-clamped FFMC, not the raw combination.
	isi := clamp((wind*0.8)+(ffmc/30.0), MinISI, MaxISI)

	return FireWeatherIndices{
		FFMC: round2(ffmc),
		DMC:  round2(dmc),
		DC:   round2(dc),
		ISI:  round2(isi),
	}
}

// ClampIndices forces each index into its valid range. Idempotent: clamping
// an already-clamped value is a no-op.
func ClampIndices(idx FireWeatherIndices) FireWeatherIndices {
	return FireWeatherIndices{
		FFMC: clamp(idx.FFMC, MinFFMC, MaxFFMC),
		DMC:  clamp(idx.DMC, MinDMC, MaxDMC),
		DC:   clamp(idx.DC, MinDC, MaxDC),
		ISI:  clamp(idx.ISI, MinISI, MaxISI),
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
