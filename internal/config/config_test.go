package config_test

import (
	"fmt"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tartampluch/go-datepicker/internal/config"
)

// TestConstants_Integrity ensures critical constants are not empty or malformed.
func TestConstants_Integrity(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{"AppName", config.AppName},
		{"AppID", config.AppID},
		{"Version", config.Version},
		{"DateSeparator", config.DateSeparator},
		{"FormatDateValue", config.FormatDateValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotEmpty(t, tt.value, "Critical constant %s should not be empty", tt.name)
		})
	}
}

// TestGridGeometry_Sanity checks that the grids can hold every layout.
func TestGridGeometry_Sanity(t *testing.T) {
	// A 31-day month starting on the last column needs 6 full weeks.
	assert.GreaterOrEqual(t, config.DayGridCells, 6+31)
	assert.Equal(t, 0, config.DayGridCells%config.WeekdayColumns, "Day grid must be made of whole weeks")
	assert.Equal(t, 0, len(config.MonthLabels)%config.MonthColumns, "Month grid must fill its rows")
	assert.Equal(t, 0, config.YearWindow%config.YearColumns, "Year grid must fill its rows")
	assert.Len(t, config.WeekdayKeys, config.WeekdayColumns)
}

func TestMonthLabels_Complete(t *testing.T) {
	assert.Equal(t, []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}, config.MonthLabels)
}

func TestFormatDateValue_Shape(t *testing.T) {
	assert.Equal(t, "8/6/2001 ", fmt.Sprintf(config.FormatDateValue, 8, 6, 2001))
}

func TestPaletteDefaults_AreHex(t *testing.T) {
	t.Parallel()

	hex := regexp.MustCompile(`^#([0-9A-Fa-f]{6}|[0-9A-Fa-f]{8})$`)
	for _, c := range []string{
		config.ColorPrimary,
		config.ColorSecondary,
		config.ColorSurface,
		config.ColorOnPrimary,
		config.ColorText,
		config.ColorBackdrop,
	} {
		assert.Regexp(t, hex, c)
	}
}
