package temporal_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"ms-events/internal/temporal"
)

func TestEncodeDateSingle(t *testing.T) {
	// Equal start and end collapse to a single date
	encoded := temporal.EncodeDate(temporal.Range{Start: "2024-03-01", End: "2024-03-01"})
	assert.Equal(t, "2024-03-01", encoded)

	encoded = temporal.EncodeDate(temporal.Range{Start: "2024-03-01"})
	assert.Equal(t, "2024-03-01", encoded)
}

func TestEncodeDateRange(t *testing.T) {
	encoded := temporal.EncodeDate(temporal.Range{Start: "2024-03-01", End: "2024-03-05"})
	assert.Equal(t, "2024-03-01 - 2024-03-05", encoded)

	decoded := temporal.DecodeDate(encoded)
	assert.Equal(t, "2024-03-01", decoded.Start)
	assert.Equal(t, "2024-03-05", decoded.End)
	assert.True(t, decoded.IsRange())
}

func TestDecodeDateDoesNotSplitSingleDate(t *testing.T) {
	// The hyphens inside YYYY-MM-DD must not trigger range detection
	decoded := temporal.DecodeDate("2024-03-01")
	assert.Equal(t, "2024-03-01", decoded.Start)
	assert.Empty(t, decoded.End)
	assert.False(t, decoded.IsRange())
}

func TestDateRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		in   temporal.Range
	}{
		{"single", temporal.Range{Start: "2025-01-15"}},
		{"range", temporal.Range{Start: "2025-01-15", End: "2025-01-18"}},
		{"year boundary", temporal.Range{Start: "2024-12-31", End: "2025-01-01"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.in, temporal.DecodeDate(temporal.EncodeDate(tt.in)))
		})
	}
}

func TestDateEncodeIsFixedPoint(t *testing.T) {
	// Encoding an already-canonical value and decoding again is a no-op
	stored := "2024-03-01 - 2024-03-05"
	decoded := temporal.DecodeDate(stored)
	assert.Equal(t, stored, temporal.EncodeDate(decoded))

	again := temporal.DecodeDate(temporal.EncodeDate(decoded))
	assert.Equal(t, decoded, again)
}

func TestDecodeDateMalformedFallsBack(t *testing.T) {
	tests := []struct {
		name   string
		stored string
		want   temporal.Range
	}{
		{"garbage", "not a date", temporal.Range{Start: "not a date"}},
		{"too many components", "2024-03-01 - 2024-03-02 - 2024-03-03", temporal.Range{Start: "2024-03-01 - 2024-03-02 - 2024-03-03"}},
		{"empty", "", temporal.Range{}},
		{"garbage range sides pass through", "soon - later", temporal.Range{Start: "soon", End: "later"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, temporal.DecodeDate(tt.stored))
		})
	}
}

func TestTimeConversion(t *testing.T) {
	tests := []struct {
		t24 string
		t12 string
	}{
		{"00:00", "12:00 AM"},
		{"00:30", "12:30 AM"},
		{"09:05", "09:05 AM"},
		{"12:00", "12:00 PM"},
		{"13:45", "01:45 PM"},
		{"23:59", "11:59 PM"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.t12, temporal.To12Hour(tt.t24))
		assert.Equal(t, tt.t24, temporal.To24Hour(tt.t12))
	}
}

func TestTimeConversionFallsBackOnBadInput(t *testing.T) {
	assert.Equal(t, "25:99", temporal.To12Hour("25:99"))
	assert.Equal(t, "noonish", temporal.To24Hour("noonish"))
	assert.Equal(t, "", temporal.To12Hour(""))
}

func TestEncodeTime(t *testing.T) {
	encoded := temporal.EncodeTime(temporal.Range{Start: "10:00 AM", End: "05:30 PM"})
	assert.Equal(t, "10:00 - 17:30", encoded)

	// End equal to start collapses to a single time
	encoded = temporal.EncodeTime(temporal.Range{Start: "10:00 AM", End: "10:00 AM"})
	assert.Equal(t, "10:00", encoded)

	encoded = temporal.EncodeTime(temporal.Range{Start: "10:00 AM"})
	assert.Equal(t, "10:00", encoded)
}

func TestDecodeTime(t *testing.T) {
	decoded := temporal.DecodeTime("10:00 - 17:30")
	assert.Equal(t, temporal.Range{Start: "10:00 AM", End: "05:30 PM"}, decoded)

	decoded = temporal.DecodeTime("09:15")
	assert.Equal(t, temporal.Range{Start: "09:15 AM"}, decoded)
}

func TestTimeRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		in   temporal.Range
	}{
		{"single", temporal.Range{Start: "09:15 AM"}},
		{"range", temporal.Range{Start: "10:00 AM", End: "05:30 PM"}},
		{"midnight", temporal.Range{Start: "12:00 AM", End: "11:59 PM"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.in, temporal.DecodeTime(temporal.EncodeTime(tt.in)))
		})
	}
}

func TestAdjustOnStartChange(t *testing.T) {
	// Moving the start past the end drags the end forward
	start, end := temporal.AdjustOnStartChange("2024-03-10", "2024-03-05")
	assert.Equal(t, "2024-03-10", start)
	assert.Equal(t, "2024-03-10", end)

	// Otherwise the end is untouched
	start, end = temporal.AdjustOnStartChange("2024-03-01", "2024-03-05")
	assert.Equal(t, "2024-03-01", start)
	assert.Equal(t, "2024-03-05", end)

	// No end set, nothing to clamp
	start, end = temporal.AdjustOnStartChange("2024-03-01", "")
	assert.Equal(t, "2024-03-01", start)
	assert.Empty(t, end)
}

func TestAdjustOnEndChange(t *testing.T) {
	// Moving the end before the start pulls the start back
	start, end := temporal.AdjustOnEndChange("2024-03-10", "2024-03-05")
	assert.Equal(t, "2024-03-05", start)
	assert.Equal(t, "2024-03-05", end)

	start, end = temporal.AdjustOnEndChange("2024-03-01", "2024-03-05")
	assert.Equal(t, "2024-03-01", start)
	assert.Equal(t, "2024-03-05", end)
}

func TestAdjustWorksForTimes(t *testing.T) {
	start, end := temporal.AdjustOnStartChange("18:00", "09:00")
	assert.Equal(t, "18:00", start)
	assert.Equal(t, "18:00", end)
}
