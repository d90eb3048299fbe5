package scoring

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/ag21o9/fire-risk-scoring-service/internal/domain"
)

// Request is the typed form of one scoring request. Pointer fields are nil
// when the caller omitted them; defaults are applied by the Scorer, not here.
type Request struct {
	X *int
	Y *int

	Month domain.CategoryValue
	Day   domain.CategoryValue

	FFMC *float64
	DMC  *float64
	DC   *float64
	ISI  *float64

	Temp *float64
	RH   *float64
	Wind *float64
	Rain *float64
}

// HasAllIndices reports whether the caller supplied every one of the four
// fire-weather indices. A partial set counts as none: the estimation gate is
// all-or-nothing.
func (r Request) HasAllIndices() bool {
	return r.FFMC != nil && r.DMC != nil && r.DC != nil && r.ISI != nil
}

// ParseRequest coerces raw request fields into a Request. Decode the JSON
// body with json.Decoder.UseNumber so numeric fields arrive as json.Number
// and integer precision is preserved.
//
// Coercion mirrors the behavior the model's callers rely on: numeric strings
// are accepted for numeric fields, fractional numbers for integer fields
// truncate toward zero, and strings for month/day are always treated as
// labels (never as stringified ordinals). Any value that cannot be coerced
// fails with MalformedInputError naming the offending field.
func ParseRequest(fields map[string]any) (Request, error) {
	var req Request
	var err error

	if req.X, err = optionalInt(fields, "X"); err != nil {
		return Request{}, err
	}
	if req.Y, err = optionalInt(fields, "Y"); err != nil {
		return Request{}, err
	}
	if req.Month, err = optionalCategory(fields, "month"); err != nil {
		return Request{}, err
	}
	if req.Day, err = optionalCategory(fields, "day"); err != nil {
		return Request{}, err
	}

	for _, f := range []struct {
		name string
		dst  **float64
	}{
		{"FFMC", &req.FFMC},
		{"DMC", &req.DMC},
		{"DC", &req.DC},
		{"ISI", &req.ISI},
		{"temp", &req.Temp},
		{"RH", &req.RH},
		{"wind", &req.Wind},
		{"rain", &req.Rain},
	} {
		if *f.dst, err = optionalFloat(fields, f.name); err != nil {
			return Request{}, err
		}
	}

	return req, nil
}

func optionalInt(fields map[string]any, name string) (*int, error) {
	raw, ok := fields[name]
	if !ok || raw == nil {
		return nil, nil
	}

	switch v := raw.(type) {
	case json.Number:
		if n, err := strconv.Atoi(v.String()); err == nil {
			return &n, nil
		}
		f, err := v.Float64()
		if err != nil {
			return nil, malformed(name, raw, "expected an integer")
		}
		n := int(f) // truncate toward zero, like the original runtime
		return &n, nil
	case float64:
		n := int(v)
		return &n, nil
	case int:
		return &v, nil
	case string:
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, malformed(name, raw, "expected an integer")
		}
		return &n, nil
	default:
		return nil, malformed(name, raw, "expected an integer")
	}
}

func optionalFloat(fields map[string]any, name string) (*float64, error) {
	raw, ok := fields[name]
	if !ok || raw == nil {
		return nil, nil
	}

	switch v := raw.(type) {
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return nil, malformed(name, raw, "expected a number")
		}
		return &f, nil
	case float64:
		return &v, nil
	case int:
		f := float64(v)
		return &f, nil
	case string:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, malformed(name, raw, "expected a number")
		}
		return &f, nil
	default:
		return nil, malformed(name, raw, "expected a number")
	}
}

func optionalCategory(fields map[string]any, name string) (domain.CategoryValue, error) {
	raw, ok := fields[name]
	if !ok || raw == nil {
		return domain.CategoryValue{}, nil
	}

	switch v := raw.(type) {
	case string:
		return domain.CategoryLabel(v), nil
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return domain.CategoryValue{}, malformed(name, raw, "expected a label or ordinal")
		}
		return domain.CategoryOrdinal(int(f)), nil
	case float64:
		return domain.CategoryOrdinal(int(v)), nil
	case int:
		return domain.CategoryOrdinal(v), nil
	default:
		return domain.CategoryValue{}, malformed(name, raw, "expected a label or ordinal")
	}
}

func malformed(field string, value any, expected string) error {
	return &domain.MalformedInputError{
		Field:  field,
		Reason: fmt.Sprintf("%s, got %v", expected, value),
	}
}
