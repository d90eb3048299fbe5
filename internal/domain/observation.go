package domain

// Default values applied to optional request fields. They match the training
// pipeline's fill values, so a sparse request still produces a vector inside
// the trained distribution.
const (
	DefaultGridX = 5
	DefaultGridY = 5

	DefaultTemperature = 20.0
	DefaultHumidity    = 40.0
	DefaultWind        = 1.0
	DefaultRain        = 0.0
)

// WeatherObservation holds the raw meteorological inputs for one request.
// Temperature is °C, relative humidity is %, wind and rain use the same
// (unit-agnostic) conventions as the training data. Transient per request.
type WeatherObservation struct {
	Temperature float64
	Humidity    float64
	Wind        float64
	Rain        float64
}

// FireWeatherIndices holds the four fire-weather index components, either
// supplied by the caller or derived via EstimateIndices. Each value is
// expected to lie within its training-distribution clamp range before being
// used as a model feature.
type FireWeatherIndices struct {
	FFMC float64
	DMC  float64
	DC   float64
	ISI  float64
}

// SpatialCell identifies a coarse grid location on the training map.
type SpatialCell struct {
	X int
	Y int
}

// DefaultSpatialCell is the mid-range grid cell used when the caller omits
// coordinates.
func DefaultSpatialCell() SpatialCell {
	return SpatialCell{X: DefaultGridX, Y: DefaultGridY}
}
