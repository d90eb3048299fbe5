package domain

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLabelEncoder_EncodeLabels(t *testing.T) {
	months := NewLabelEncoder("month", DefaultMonthLabels)

	tests := []struct {
		label string
		want  int
	}{
		{"apr", 0},
		{"aug", 1},
		{"jan", 4},
		{"sep", 11},
	}
	for _, tt := range tests {
		got, err := months.Encode(CategoryLabel(tt.label))
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "label %q", tt.label)
	}
}

func TestLabelEncoder_UnknownLabel(t *testing.T) {
	months := NewLabelEncoder("month", DefaultMonthLabels)

	_, err := months.Encode(CategoryLabel("xyz"))

	var unknown *UnknownCategoryError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "month", unknown.Field)
	assert.Equal(t, "xyz", unknown.Value)
	assert.Contains(t, err.Error(), "pre-encoded ordinal")
}

func TestLabelEncoder_OrdinalPassThrough(t *testing.T) {
	days := NewLabelEncoder("day", DefaultDayLabels)

	for ord := 0; ord < days.Size(); ord++ {
		got, err := days.Encode(CategoryOrdinal(ord))
		require.NoError(t, err)
		assert.Equal(t, ord, got)
	}
}

func TestLabelEncoder_OrdinalOutsideVocabulary(t *testing.T) {
	days := NewLabelEncoder("day", DefaultDayLabels)

	for _, ord := range []int{-1, 7, 42} {
		_, err := days.Encode(CategoryOrdinal(ord))
		var unknown *UnknownCategoryError
		assert.ErrorAs(t, err, &unknown, "ordinal %d", ord)
	}
}

func TestLabelEncoder_RoundTrip(t *testing.T) {
	months := NewLabelEncoder("month", DefaultMonthLabels)

	for _, label := range DefaultMonthLabels {
		ord, err := months.Encode(CategoryLabel(label))
		require.NoError(t, err)

		back, err := months.Decode(ord)
		require.NoError(t, err)
		assert.Equal(t, label, back)
	}

	_, err := months.Decode(12)
	assert.Error(t, err)
}

func TestLabelEncoder_UnsetValue(t *testing.T) {
	months := NewLabelEncoder("month", DefaultMonthLabels)

	_, err := months.Encode(CategoryValue{})

	var malformed *MalformedInputError
	assert.ErrorAs(t, err, &malformed)
}

func TestLoadLabelEncoder(t *testing.T) {
	t.Run("loads vocabulary artifact", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "months.json")
		require.NoError(t, os.WriteFile(path, []byte(`["apr","aug","dec"]`), 0o600))

		enc, err := LoadLabelEncoder("month", path)
		require.NoError(t, err)
		assert.Equal(t, 3, enc.Size())

		ord, err := enc.Encode(CategoryLabel("dec"))
		require.NoError(t, err)
		assert.Equal(t, 2, ord)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadLabelEncoder("month", filepath.Join(t.TempDir(), "absent.json"))
		assert.True(t, errors.Is(err, os.ErrNotExist))
	})

	t.Run("empty vocabulary", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "empty.json")
		require.NoError(t, os.WriteFile(path, []byte(`[]`), 0o600))

		_, err := LoadLabelEncoder("month", path)
		assert.Error(t, err)
	})
}
