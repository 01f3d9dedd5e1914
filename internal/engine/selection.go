package engine

import (
	"log/slog"
	"strconv"
	"strings"

	"github.com/tartampluch/go-datepicker/internal/config"
)

// Mode is the granularity of the picker's active grid.
type Mode int

const (
	ModeDays Mode = iota
	ModeMonths
	ModeYears
)

func (m Mode) String() string {
	switch m {
	case ModeDays:
		return "days"
	case ModeMonths:
		return "months"
	case ModeYears:
		return "years"
	default:
		return "unknown"
	}
}

// SelectCell applies a tapped cell label to the current DateValue.
// Days replace the day, years replace the year; both keep the other components.
// Months never write the value. Blank or non-numeric cells and unparsable
// current values are rejected and the current value is returned unchanged.
func SelectCell(mode Mode, cell, current string) (string, bool) {
	label := strings.TrimSpace(cell)
	if label == "" || mode == ModeMonths {
		return current, false
	}
	n, err := strconv.Atoi(label)
	if err != nil {
		return current, false
	}
	d, err := Parse(current)
	if err != nil {
		return current, false
	}

	switch mode {
	case ModeDays:
		d.Day = n
	case ModeYears:
		d.Year = n
	default:
		return current, false
	}
	return d.String(), true
}

// Controller is the picker state machine: the active mode, the displayed
// month and the DateValue it edits. It is independent of any toolkit; the
// presentation layer subscribes to mode changes and re-renders.
type Controller struct {
	clock Clock
	log   *slog.Logger

	value string
	mode  Mode

	// scopeMonth overrides the displayed month after a month selection.
	// Zero means the month of value is displayed.
	scopeMonth int

	warned    string
	listeners []func(Mode)
}

// NewController mounts a controller in ModeDays for value.
// A nil clock falls back to RealClock.
func NewController(value string, clock Clock) *Controller {
	if clock == nil {
		clock = RealClock{}
	}
	return &Controller{
		clock: clock,
		log:   slog.With(config.LogKeyComponent, config.CompEngine),
		value: value,
		mode:  ModeDays,
	}
}

// Mode returns the active view mode.
func (c *Controller) Mode() Mode {
	return c.mode
}

// Value returns the DateValue as last written or set.
func (c *Controller) Value() string {
	return c.value
}

// SetValue replaces the DateValue, typically after the host changed it.
// A different value drops any displayed-month override.
func (c *Controller) SetValue(v string) {
	if v == c.value {
		return
	}
	c.value = v
	c.scopeMonth = 0
}

// Subscribe registers fn to be called after every mode transition.
func (c *Controller) Subscribe(fn func(Mode)) {
	c.listeners = append(c.listeners, fn)
}

func (c *Controller) ShowDays() { c.setMode(ModeDays) }
func (c *Controller) ShowMonths() { c.setMode(ModeMonths) }
func (c *Controller) ShowYears() { c.setMode(ModeYears) }

// ToggleMonths switches to the month grid, or back to days if it is already shown.
func (c *Controller) ToggleMonths() {
	c.toggle(ModeMonths)
}

// ToggleYears switches to the year grid, or back to days if it is already shown.
func (c *Controller) ToggleYears() {
	c.toggle(ModeYears)
}

func (c *Controller) toggle(m Mode) {
	if c.mode == m {
		c.setMode(ModeDays)
		return
	}
	c.setMode(m)
}

func (c *Controller) setMode(m Mode) {
	if c.mode == m {
		return
	}
	c.log.Debug(config.MsgModeChange, config.LogKeyOld, c.mode.String(), config.LogKeyNew, m.String())
	c.mode = m
	for _, fn := range c.listeners {
		fn(m)
	}
}

// scope resolves the displayed month and year. ok is false when value could
// not be parsed and the scope fell back to the clock.
func (c *Controller) scope() (month, year int, d Date, ok bool) {
	d, err := Parse(c.value)
	if err == nil && validMonth(d.Month) {
		month = d.Month
		if c.scopeMonth != 0 {
			month = c.scopeMonth
		}
		return month, d.Year, d, true
	}

	if c.warned != c.value {
		c.warned = c.value
		c.log.Warn(config.MsgBadDateValue, config.LogKeyValue, c.value, config.LogKeyError, err)
	}
	now := c.clock.Now()
	month = int(now.Month())
	if c.scopeMonth != 0 {
		month = c.scopeMonth
	}
	return month, now.Year(), Date{}, false
}

// Grid builds the grid of the active mode for the displayed month and year.
func (c *Controller) Grid() Grid {
	month, year, d, ok := c.scope()
	switch c.mode {
	case ModeMonths:
		selected := 0
		if ok {
			selected = month
		}
		return BuildMonthGrid(selected)
	case ModeYears:
		g := BuildYearGrid(year)
		if !ok {
			g.cells[len(g.cells)-1].Selected = false
		}
		return g
	default:
		selected := 0
		if ok && month == d.Month {
			selected = d.Day
		}
		return BuildDayGrid(month, year, selected)
	}
}

// HeaderMonth is the label of the header's month button.
func (c *Controller) HeaderMonth() string {
	month, _, _, _ := c.scope()
	if label := MonthLabel(month); label != "" {
		return label
	}
	return config.PlaceholderHeader
}

// HeaderYear is the label of the header's year button.
func (c *Controller) HeaderYear() string {
	_, year, _, _ := c.scope()
	return strconv.Itoa(year)
}

// Select applies a tapped cell of the active grid. It returns the new
// DateValue and true when the value was written. Month cells only change
// the displayed month; month and year cells return to the day grid.
func (c *Controller) Select(cell Cell) (string, bool) {
	if cell.Blank() {
		c.log.Debug(config.MsgBlankCell, config.LogKeyMode, c.mode.String())
		return c.value, false
	}

	switch c.mode {
	case ModeMonths:
		m, err := MonthFromLabel(cell.Label)
		if err != nil {
			return c.value, false
		}
		c.scopeMonth = m
		c.log.Debug(config.MsgMonthScoped, config.LogKeyMonth, m)
		c.ShowDays()
		return c.value, false

	case ModeYears:
		v, ok := SelectCell(ModeYears, cell.Label, c.value)
		if !ok {
			return c.value, false
		}
		c.commit(v)
		c.ShowDays()
		return v, true

	default:
		month, _, d, ok := c.scope()
		if !ok {
			return c.value, false
		}
		v, ok := SelectCell(ModeDays, cell.Label, Format(month, d.Day, d.Year))
		if !ok {
			return c.value, false
		}
		c.scopeMonth = 0
		c.commit(v)
		return v, true
	}
}

func (c *Controller) commit(v string) {
	c.log.Info(config.MsgDateSelected, config.LogKeyOld, c.value, config.LogKeyNew, v)
	c.value = v
}
