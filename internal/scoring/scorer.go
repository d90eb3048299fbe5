package scoring

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/ag21o9/fire-risk-scoring-service/internal/domain"
	"github.com/ag21o9/fire-risk-scoring-service/internal/observability"
)

// Result is the structured outcome of one scoring request.
type Result struct {
	Score        int                 `json:"score"`
	Bucket       domain.RiskBucket   `json:"bucket"`
	Color        string              `json:"color"`
	FeaturesUsed domain.FeaturesUsed `json:"features_used"`
	ScoredAt     time.Time           `json:"scored_at"`
}

// ResultPublisher delivers scored results to a downstream sink.
type ResultPublisher interface {
	Publish(ctx context.Context, res Result) error
}

// Scorer orchestrates one prediction: calendar defaults, categorical
// encoding, index estimation or acceptance, feature assembly, the external
// model call, and bucket classification. Stateless per request; safe for
// concurrent use.
type Scorer struct {
	months    *domain.LabelEncoder
	days      *domain.LabelEncoder
	model     domain.Model
	publisher ResultPublisher
	logger    *slog.Logger
	metrics   *observability.Metrics
}

// NewScorer wires a Scorer from its collaborators. Pass a nil publisher to
// disable the results sink.
func NewScorer(months, days *domain.LabelEncoder, model domain.Model, publisher ResultPublisher, logger *slog.Logger, metrics *observability.Metrics) *Scorer {
	return &Scorer{
		months:    months,
		days:      days,
		model:     model,
		publisher: publisher,
		logger:    logger,
		metrics:   metrics,
	}
}

// Score runs the full pipeline for one request.
//
// Missing month/day fall back to the current UTC abbreviations. If any of the
// four fire-weather indices is absent, all four are re-estimated from
// temperature, humidity, and wind (rain defaults to 0.0 on its own); a
// partial index set is discarded rather than merged, which callers sometimes
// find surprising but is what the model was validated against.
func (s *Scorer) Score(ctx context.Context, req Request) (Result, error) {
	res, err := s.score(ctx, req)
	if err != nil {
		s.metrics.PredictionErrors.WithLabelValues(errorCategory(err)).Inc()
		return Result{}, err
	}

	s.metrics.PredictionsTotal.Inc()
	s.metrics.ScoresByBucket.WithLabelValues(string(res.Bucket)).Inc()

	s.publish(ctx, res)
	return res, nil
}

func (s *Scorer) score(ctx context.Context, req Request) (Result, error) {
	cell := domain.DefaultSpatialCell()
	if req.X != nil {
		cell.X = *req.X
	}
	if req.Y != nil {
		cell.Y = *req.Y
	}

	defaultMonth, defaultDay := domain.CurrentCalendar()
	month, day := req.Month, req.Day
	if !month.IsSet() {
		month = defaultMonth
	}
	if !day.IsSet() {
		day = defaultDay
	}

	monthEnc, err := s.months.Encode(month)
	if err != nil {
		return Result{}, err
	}
	dayEnc, err := s.days.Encode(day)
	if err != nil {
		return Result{}, err
	}

	indices, err := s.resolveIndices(req)
	if err != nil {
		return Result{}, err
	}

	obs := domain.WeatherObservation{
		Temperature: valueOr(req.Temp, domain.DefaultTemperature),
		Humidity:    valueOr(req.RH, domain.DefaultHumidity),
		Wind:        valueOr(req.Wind, domain.DefaultWind),
		Rain:        valueOr(req.Rain, domain.DefaultRain),
	}

	features := domain.BuildFeatureVector(cell, monthEnc, dayEnc, indices, obs)

	start := time.Now()
	score, err := s.model.Predict(ctx, features)
	s.metrics.ModelLatency.Observe(time.Since(start).Seconds())
	if err != nil {
		return Result{}, &domain.ModelInferenceError{Err: err}
	}

	bucket := domain.ScoreToBucket(score)
	s.logger.Debug("scored request",
		"score", score,
		"bucket", bucket,
		"x", cell.X, "y", cell.Y,
		"month_enc", monthEnc, "day_enc", dayEnc,
	)

	return Result{
		Score:        score,
		Bucket:       bucket,
		Color:        bucket.Color(),
		FeaturesUsed: domain.NewFeaturesUsed(cell, monthEnc, dayEnc, indices, obs),
		ScoredAt:     domain.Now().UTC(),
	}, nil
}

// resolveIndices applies the all-or-nothing gate: a complete caller-supplied
// set is clamped and used verbatim, anything less triggers full estimation
// from the observation fields.
func (s *Scorer) resolveIndices(req Request) (domain.FireWeatherIndices, error) {
	if req.HasAllIndices() {
		s.metrics.IndicesSupplied.Inc()
		return domain.ClampIndices(domain.FireWeatherIndices{
			FFMC: *req.FFMC,
			DMC:  *req.DMC,
			DC:   *req.DC,
			ISI:  *req.ISI,
		}), nil
	}

	var missing []string
	if req.Temp == nil {
		missing = append(missing, "temp")
	}
	if req.RH == nil {
		missing = append(missing, "RH")
	}
	if req.Wind == nil {
		missing = append(missing, "wind")
	}
	if len(missing) > 0 {
		return domain.FireWeatherIndices{}, &domain.MissingMeteorologyError{Missing: missing}
	}

	s.metrics.IndicesEstimated.Inc()
	return domain.EstimateIndices(domain.WeatherObservation{
		Temperature: *req.Temp,
		Humidity:    *req.RH,
		Wind:        *req.Wind,
		Rain:        valueOr(req.Rain, domain.DefaultRain),
	}), nil
}

// publish delivers the result to the sink, best-effort: failures are logged
// and counted but never fail the request.
func (s *Scorer) publish(ctx context.Context, res Result) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, res); err != nil {
		s.logger.Warn("publish scored result failed", "error", err, "score", res.Score)
		s.metrics.PublishErrors.Inc()
		return
	}
	s.metrics.ResultsPublished.Inc()
}

func errorCategory(err error) string {
	var (
		malformedErr *domain.MalformedInputError
		unknownErr   *domain.UnknownCategoryError
		missingErr   *domain.MissingMeteorologyError
		modelErr     *domain.ModelInferenceError
	)
	switch {
	case errors.As(err, &malformedErr):
		return "malformed_input"
	case errors.As(err, &unknownErr):
		return "unknown_category"
	case errors.As(err, &missingErr):
		return "missing_meteorology"
	case errors.As(err, &modelErr):
		return "model_inference"
	default:
		return "internal"
	}
}

func valueOr(v *float64, fallback float64) float64 {
	if v != nil {
		return *v
	}
	return fallback
}
