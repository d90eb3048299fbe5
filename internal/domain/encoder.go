package domain

import (
	"encoding/json"
	"fmt"
	"os"
)

// Training-time vocabularies in ordinal order. The label encoder used during
// training assigned ordinals alphabetically, so these slices are sorted.
var (
	DefaultMonthLabels = []string{
		"apr", "aug", "dec", "feb", "jan", "jul",
		"jun", "mar", "may", "nov", "oct", "sep",
	}
	DefaultDayLabels = []string{
		"fri", "mon", "sat", "sun", "thu", "tue", "wed",
	}
)

// LabelEncoder maps categorical labels to the ordinal codes the model was
// trained on. Pure lookup, safe for concurrent use.
type LabelEncoder struct {
	field    string
	labels   []string
	ordinals map[string]int
}

// NewLabelEncoder builds an encoder for the named field ("month", "day") from
// labels listed in ordinal order.
func NewLabelEncoder(field string, labels []string) *LabelEncoder {
	ordinals := make(map[string]int, len(labels))
	for i, l := range labels {
		ordinals[l] = i
	}
	return &LabelEncoder{field: field, labels: labels, ordinals: ordinals}
}

// LoadLabelEncoder reads a vocabulary artifact (a JSON array of labels in
// ordinal order) and builds an encoder from it.
func LoadLabelEncoder(field, path string) (*LabelEncoder, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s vocabulary: %w", field, err)
	}
	var labels []string
	if err := json.Unmarshal(data, &labels); err != nil {
		return nil, fmt.Errorf("parse %s vocabulary: %w", field, err)
	}
	if len(labels) == 0 {
		return nil, fmt.Errorf("%s vocabulary %s is empty", field, path)
	}
	return NewLabelEncoder(field, labels), nil
}

// Encode resolves a CategoryValue to its training-time ordinal. Labels are
// looked up in the vocabulary; pre-encoded ordinals pass through unchanged
// after a bounds check against the vocabulary size. Unknown labels and
// out-of-range ordinals both fail with UnknownCategoryError.
func (e *LabelEncoder) Encode(v CategoryValue) (int, error) {
	switch v.kind {
	case categoryLabel:
		ord, ok := e.ordinals[v.label]
		if !ok {
			return 0, &UnknownCategoryError{Field: e.field, Value: v.label, Known: e.labels}
		}
		return ord, nil
	case categoryOrdinal:
		if v.ordinal < 0 || v.ordinal >= len(e.labels) {
			return 0, &UnknownCategoryError{Field: e.field, Value: v.String(), Known: e.labels}
		}
		return v.ordinal, nil
	default:
		return 0, &MalformedInputError{Field: e.field, Reason: "no value to encode"}
	}
}

// Decode returns the label for an ordinal, the inverse of Encode for
// in-vocabulary values.
func (e *LabelEncoder) Decode(ord int) (string, error) {
	if ord < 0 || ord >= len(e.labels) {
		return "", fmt.Errorf("%s ordinal %d outside vocabulary of size %d", e.field, ord, len(e.labels))
	}
	return e.labels[ord], nil
}

// Size returns the vocabulary size.
func (e *LabelEncoder) Size() int {
	return len(e.labels)
}
