package engine

import (
	"strconv"
	"time"

	"cloudeng.io/datetime"
	"github.com/tartampluch/go-datepicker/internal/config"
)

// Cell is one slot of a picker grid. An empty Label marks a blank slot.
type Cell struct {
	Label    string
	Value    int
	Selected bool
}

// Blank reports whether the cell is an unfilled slot.
func (c Cell) Blank() bool {
	return c.Label == ""
}

// Grid is the content of one picker view. The concrete types are DayGrid,
// MonthGrid and YearGrid; each carries only what its view needs.
type Grid interface {
	Mode() Mode
	Columns() int
	Cells() []Cell
}

// DayGrid lays out the days of Month/Year as whole weeks starting on Sunday.
type DayGrid struct {
	Month int
	Year  int
	cells []Cell
}

func (DayGrid) Mode() Mode { return ModeDays }
func (DayGrid) Columns() int { return config.WeekdayColumns }
func (g DayGrid) Cells() []Cell { return g.cells }

// MonthGrid lists the twelve month labels.
type MonthGrid struct {
	cells []Cell
}

func (MonthGrid) Mode() Mode { return ModeMonths }
func (MonthGrid) Columns() int { return config.MonthColumns }
func (g MonthGrid) Cells() []Cell { return g.cells }

// YearGrid is the rolling window of years ending at Current.
type YearGrid struct {
	Current int
	cells   []Cell
}

func (YearGrid) Mode() Mode { return ModeYears }
func (YearGrid) Columns() int { return config.YearColumns }
func (g YearGrid) Cells() []Cell { return g.cells }

// DaysInMonth returns the number of days of month in year, or 0 for an invalid month.
func DaysInMonth(month, year int) int {
	if !validMonth(month) {
		return 0
	}
	return int(datetime.DaysInMonth(year, datetime.Month(month)))
}

// StartWeekday returns the weekday of the first day of the month, Sunday being 0.
func StartWeekday(month, year int) int {
	return int(time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC).Weekday())
}

// BuildDayGrid returns the 42-slot grid for month/year. Slots before the
// month's first weekday and after its last day are blank. The cell whose
// day equals selectedDay is marked selected; pass 0 for no highlight.
func BuildDayGrid(month, year, selectedDay int) DayGrid {
	g := DayGrid{Month: month, Year: year, cells: make([]Cell, config.DayGridCells)}
	days := DaysInMonth(month, year)
	if days == 0 {
		return g
	}
	start := StartWeekday(month, year)
	for i := range g.cells {
		if i < start || i >= days+start {
			continue
		}
		day := i - start + 1
		g.cells[i] = Cell{
			Label:    strconv.Itoa(day),
			Value:    day,
			Selected: day == selectedDay,
		}
	}
	return g
}

// BuildMonthGrid returns Jan..Dec with selectedMonth highlighted.
func BuildMonthGrid(selectedMonth int) MonthGrid {
	g := MonthGrid{cells: make([]Cell, len(config.MonthLabels))}
	for i, label := range config.MonthLabels {
		g.cells[i] = Cell{Label: label, Value: i + 1, Selected: i+1 == selectedMonth}
	}
	return g
}

// BuildYearGrid returns the ascending years currentYear-24 .. currentYear.
func BuildYearGrid(currentYear int) YearGrid {
	g := YearGrid{Current: currentYear, cells: make([]Cell, config.YearWindow)}
	first := currentYear - (config.YearWindow - 1)
	for i := range g.cells {
		year := first + i
		g.cells[i] = Cell{
			Label:    strconv.Itoa(year),
			Value:    year,
			Selected: year == currentYear,
		}
	}
	return g
}
