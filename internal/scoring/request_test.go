package scoring_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/ag21o9/fire-risk-scoring-service/internal/domain"
	"github.com/ag21o9/fire-risk-scoring-service/internal/scoring"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// decodeFields mimics the transport layer: JSON body → raw field map with
// numbers preserved as json.Number.
func decodeFields(t *testing.T, body string) map[string]any {
	t.Helper()
	dec := json.NewDecoder(strings.NewReader(body))
	dec.UseNumber()
	var fields map[string]any
	require.NoError(t, dec.Decode(&fields))
	return fields
}

func TestParseRequest_FullPayload(t *testing.T) {
	fields := decodeFields(t, `{
		"X": 4, "Y": 5,
		"month": "aug", "day": "sun",
		"temp": 33.1, "RH": 20, "wind": 6.7, "rain": 0.0
	}`)

	req, err := scoring.ParseRequest(fields)
	require.NoError(t, err)

	require.NotNil(t, req.X)
	assert.Equal(t, 4, *req.X)
	require.NotNil(t, req.Y)
	assert.Equal(t, 5, *req.Y)
	assert.Equal(t, "aug", req.Month.String())
	assert.Equal(t, "sun", req.Day.String())
	require.NotNil(t, req.Temp)
	assert.Equal(t, 33.1, *req.Temp)
	require.NotNil(t, req.Rain)
	assert.Equal(t, 0.0, *req.Rain)
	assert.Nil(t, req.FFMC)
	assert.False(t, req.HasAllIndices())
}

func TestParseRequest_NumericStringCoercion(t *testing.T) {
	fields := decodeFields(t, `{"X": "4", "temp": "33.1"}`)

	req, err := scoring.ParseRequest(fields)
	require.NoError(t, err)

	require.NotNil(t, req.X)
	assert.Equal(t, 4, *req.X)
	require.NotNil(t, req.Temp)
	assert.Equal(t, 33.1, *req.Temp)
}

func TestParseRequest_FractionalIntTruncatesTowardZero(t *testing.T) {
	fields := decodeFields(t, `{"X": 4.7, "Y": -2.9}`)

	req, err := scoring.ParseRequest(fields)
	require.NoError(t, err)

	assert.Equal(t, 4, *req.X)
	assert.Equal(t, -2, *req.Y)
}

func TestParseRequest_CategoryVariants(t *testing.T) {
	t.Run("numbers become ordinals", func(t *testing.T) {
		fields := decodeFields(t, `{"month": 1, "day": 3}`)

		req, err := scoring.ParseRequest(fields)
		require.NoError(t, err)
		assert.Equal(t, "#1", req.Month.String())
		assert.Equal(t, "#3", req.Day.String())
	})

	t.Run("strings are always labels", func(t *testing.T) {
		// "5" is a label here, not ordinal 5; the encoder decides its fate.
		fields := decodeFields(t, `{"month": "5"}`)

		req, err := scoring.ParseRequest(fields)
		require.NoError(t, err)
		assert.Equal(t, "5", req.Month.String())
	})

	t.Run("unset fields stay unset", func(t *testing.T) {
		req, err := scoring.ParseRequest(decodeFields(t, `{}`))
		require.NoError(t, err)
		assert.False(t, req.Month.IsSet())
		assert.False(t, req.Day.IsSet())
	})
}

func TestParseRequest_MalformedFields(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		field string
	}{
		{"non-numeric X", `{"X": "four"}`, "X"},
		{"fractional string X", `{"X": "4.7"}`, "X"},
		{"boolean temp", `{"temp": true}`, "temp"},
		{"object wind", `{"wind": {"speed": 3}}`, "wind"},
		{"array month", `{"month": ["aug"]}`, "month"},
		{"non-numeric FFMC", `{"FFMC": "high"}`, "FFMC"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := scoring.ParseRequest(decodeFields(t, tt.body))

			var malformed *domain.MalformedInputError
			require.ErrorAs(t, err, &malformed)
			assert.Equal(t, tt.field, malformed.Field)
		})
	}
}

func TestRequest_HasAllIndices(t *testing.T) {
	all := decodeFields(t, `{"FFMC": 85.0, "DMC": 50.0, "DC": 300.0, "ISI": 10.0}`)
	req, err := scoring.ParseRequest(all)
	require.NoError(t, err)
	assert.True(t, req.HasAllIndices())

	partial := decodeFields(t, `{"FFMC": 85.0}`)
	req, err = scoring.ParseRequest(partial)
	require.NoError(t, err)
	assert.False(t, req.HasAllIndices())
}
