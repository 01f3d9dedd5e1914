package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-datepicker/internal/engine"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    engine.Date
		wantErr bool
	}{
		{"Plain", "8/6/2001", engine.Date{Month: 8, Day: 6, Year: 2001}, false},
		{"Trailing space", "8/15/2001 ", engine.Date{Month: 8, Day: 15, Year: 2001}, false},
		{"Spaced month", "8 /15/2001  ", engine.Date{Month: 8, Day: 15, Year: 2001}, false},
		{"Extra tokens ignored", "1/2/3/4", engine.Date{Month: 1, Day: 2, Year: 3}, false},
		{"Two tokens", "8/6", engine.Date{}, true},
		{"Empty", "", engine.Date{}, true},
		{"Non-numeric day keeps month", "8/x/2001", engine.Date{Month: 8}, true},
		{"Non-numeric year", "8/6/abc", engine.Date{Month: 8, Day: 6}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := engine.Parse(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, engine.ErrMalformedDate)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "8/6/2001 ", engine.Format(8, 6, 2001))
	assert.Equal(t, "12/31/1999 ", engine.Format(12, 31, 1999))
	assert.Equal(t, "1/1/5 ", engine.Date{Month: 1, Day: 1, Year: 5}.String())
}

// TestFormatParse_RoundTrip verifies Format(Parse(s)) == s for well-formed values.
func TestFormatParse_RoundTrip(t *testing.T) {
	for _, s := range []string{"8/6/2001 ", "1/1/1970 ", "12/31/2099 ", "2/29/2000 ", "10/5/0 "} {
		d, err := engine.Parse(s)
		require.NoError(t, err, s)
		assert.Equal(t, s, engine.Format(d.Month, d.Day, d.Year))
	}
}

func TestDate_Valid(t *testing.T) {
	assert.True(t, engine.Date{Month: 2, Day: 29, Year: 2024}.Valid())
	assert.False(t, engine.Date{Month: 2, Day: 29, Year: 2025}.Valid(), "2025 is not a leap year")
	assert.False(t, engine.Date{Month: 13, Day: 1, Year: 2025}.Valid())
	assert.False(t, engine.Date{Month: 4, Day: 31, Year: 2025}.Valid())
	assert.False(t, engine.Date{Month: 4, Day: 0, Year: 2025}.Valid())
}

func TestMonthLabels(t *testing.T) {
	assert.Equal(t, "Oct", engine.MonthLabel(10))
	assert.Equal(t, "", engine.MonthLabel(0))
	assert.Equal(t, "", engine.MonthLabel(13))

	for m := 1; m <= 12; m++ {
		got, err := engine.MonthFromLabel(engine.MonthLabel(m))
		require.NoError(t, err)
		assert.Equal(t, m, got)
	}

	_, err := engine.MonthFromLabel("")
	assert.Error(t, err, "Blank label must not map to January")
	_, err = engine.MonthFromLabel("Foo")
	assert.Error(t, err)
}
