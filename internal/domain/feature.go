package domain

// FeatureCount is the length of the model's input vector.
const FeatureCount = 12

// FeatureVector is the ordered numeric input to the trained model:
// X, Y, month_enc, day_enc, FFMC, DMC, DC, ISI, temp, RH, wind, rain.
// Built once per prediction and never mutated afterwards.
type FeatureVector [FeatureCount]float64

// Values returns the vector as a slice for serialization.
func (v FeatureVector) Values() []float64 {
	return v[:]
}

// BuildFeatureVector assembles the model input from validated and derived
// parts. Defaults for absent fields are the caller's responsibility; by this
// point every value is concrete.
func BuildFeatureVector(cell SpatialCell, monthEnc, dayEnc int, idx FireWeatherIndices, obs WeatherObservation) FeatureVector {
	return FeatureVector{
		float64(cell.X),
		float64(cell.Y),
		float64(monthEnc),
		float64(dayEnc),
		idx.FFMC,
		idx.DMC,
		idx.DC,
		idx.ISI,
		obs.Temperature,
		obs.Humidity,
		obs.Wind,
		obs.Rain,
	}
}

// FeaturesUsed is the named echo of a feature vector returned to callers so
// they can see exactly what reached the model, including any derived indices
// and applied defaults. Field names match the training columns.
type FeaturesUsed struct {
	X        int     `json:"X"`
	Y        int     `json:"Y"`
	MonthEnc int     `json:"month_enc"`
	DayEnc   int     `json:"day_enc"`
	FFMC     float64 `json:"FFMC"`
	DMC      float64 `json:"DMC"`
	DC       float64 `json:"DC"`
	ISI      float64 `json:"ISI"`
	Temp     float64 `json:"temp"`
	RH       float64 `json:"RH"`
	Wind     float64 `json:"wind"`
	Rain     float64 `json:"rain"`
}

// NewFeaturesUsed pairs the same inputs as BuildFeatureVector with their
// column names.
func NewFeaturesUsed(cell SpatialCell, monthEnc, dayEnc int, idx FireWeatherIndices, obs WeatherObservation) FeaturesUsed {
	return FeaturesUsed{
		X:        cell.X,
		Y:        cell.Y,
		MonthEnc: monthEnc,
		DayEnc:   dayEnc,
		FFMC:     idx.FFMC,
		DMC:      idx.DMC,
		DC:       idx.DC,
		ISI:      idx.ISI,
		Temp:     obs.Temperature,
		RH:       obs.Humidity,
		Wind:     obs.Wind,
		Rain:     obs.Rain,
	}
}
