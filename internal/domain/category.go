package domain

import (
	"strconv"
	"strings"
)

// CategoryValue is a month or day field as received from a caller: either a
// textual label ("aug", "sun") or an already-encoded ordinal. The variant is
// fixed when the value is parsed and resolved exactly once, at the encoder
// boundary, instead of by runtime type inspection downstream.
type CategoryValue struct {
	kind    categoryKind
	label   string
	ordinal int
}

type categoryKind int

const (
	categoryUnset categoryKind = iota
	categoryLabel
	categoryOrdinal
)

// CategoryLabel wraps a textual label.
func CategoryLabel(label string) CategoryValue {
	return CategoryValue{kind: categoryLabel, label: label}
}

// CategoryOrdinal wraps a pre-encoded ordinal.
func CategoryOrdinal(ord int) CategoryValue {
	return CategoryValue{kind: categoryOrdinal, ordinal: ord}
}

// IsSet reports whether the caller supplied a value at all.
func (v CategoryValue) IsSet() bool {
	return v.kind != categoryUnset
}

// String renders the value for error messages and logs.
func (v CategoryValue) String() string {
	switch v.kind {
	case categoryLabel:
		return v.label
	case categoryOrdinal:
		return "#" + strconv.Itoa(v.ordinal)
	default:
		return "<unset>"
	}
}

// CurrentCalendar returns the current UTC month and weekday as lowercase
// label values ("aug", "sun"), matching the abbreviations the encoders were
// trained on. Used when a request omits month or day.
func CurrentCalendar() (month, day CategoryValue) {
	now := clock.Now().UTC()
	return CategoryLabel(strings.ToLower(now.Format("Jan"))),
		CategoryLabel(strings.ToLower(now.Format("Mon")))
}
