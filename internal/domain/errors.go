package domain

import (
	"fmt"
	"strings"
)

// MalformedInputError reports a field that could not be coerced to its
// required numeric or categorical type.
type MalformedInputError struct {
	Field  string
	Reason string
}

func (e *MalformedInputError) Error() string {
	return fmt.Sprintf("malformed input field %q: %s", e.Field, e.Reason)
}

// UnknownCategoryError reports a month/day value outside the trained
// vocabulary: either a label the encoder has never seen or an ordinal beyond
// the vocabulary size.
type UnknownCategoryError struct {
	Field string
	Value string
	Known []string
}

func (e *UnknownCategoryError) Error() string {
	return fmt.Sprintf("unknown %s %q: use one of the training-time labels (%s) or a pre-encoded ordinal",
		e.Field, e.Value, strings.Join(e.Known, " "))
}

// MissingMeteorologyError reports that fire-weather indices were absent and
// the observation fields needed to estimate them were not all present.
// Rainfall is never listed: it defaults to 0.0 on its own.
type MissingMeteorologyError struct {
	Missing []string
}

func (e *MissingMeteorologyError) Error() string {
	return fmt.Sprintf("cannot estimate fire-weather indices: missing %s; provide FFMC, DMC, DC and ISI, or temp, RH and wind",
		strings.Join(e.Missing, ", "))
}

// ModelInferenceError reports a failure of the external model's predict call.
// Kept distinct from the input errors because it indicates an artifact or
// compatibility problem rather than a caller mistake.
type ModelInferenceError struct {
	Err error
}

func (e *ModelInferenceError) Error() string {
	return fmt.Sprintf("model prediction failed: %v", e.Err)
}

func (e *ModelInferenceError) Unwrap() error {
	return e.Err
}
