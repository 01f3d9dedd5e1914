package ui

import (
	"image/color"
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/data/binding"
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/widget"
	"github.com/tartampluch/go-datepicker/internal/config"
	"github.com/tartampluch/go-datepicker/internal/engine"
)

// Option customizes a DatePicker.
type Option func(*DatePicker)

// WithPalette injects the picker colors.
func WithPalette(p Palette) Option {
	return func(dp *DatePicker) { dp.palette = p }
}

// WithClock injects the clock used when the value cannot be parsed.
func WithClock(c engine.Clock) Option {
	return func(dp *DatePicker) { dp.clock = c }
}

// WithTranslator injects the lookup used for the weekday headers.
func WithTranslator(tr func(key string) string) Option {
	return func(dp *DatePicker) { dp.tr = tr }
}

// DatePicker is the modal calendar shown over a canvas.
// The host owns both bindings: value holds the DateValue string and show
// the visibility flag. The picker only writes them, it never keeps a copy.
// A fresh engine.Controller is mounted each time the picker opens.
type DatePicker struct {
	value binding.String
	show  binding.Bool

	palette Palette
	clock   engine.Clock
	tr      func(string) string
	log     *slog.Logger

	canvas  fyne.Canvas
	prevKey func(*fyne.KeyEvent)

	// Mounted state, nil while closed.
	ctrl     *engine.Controller
	overlay  *backdrop
	card     *card
	body     *fyne.Container
	header   *fyne.Container
	monthBtn *widget.Button
	yearBtn  *widget.Button
}

// NewDatePicker creates a picker bound to the host's value and show flag.
func NewDatePicker(value binding.String, show binding.Bool, opts ...Option) *DatePicker {
	dp := &DatePicker{
		value:   value,
		show:    show,
		palette: DefaultPalette(),
		clock:   engine.RealClock{},
		tr:      func(key string) string { return key },
		log:     slog.With(config.LogKeyComponent, config.CompPicker),
	}
	for _, opt := range opts {
		opt(dp)
	}
	return dp
}

// Attach binds the picker to the canvas it overlays and starts following
// the show and value bindings.
func (dp *DatePicker) Attach(c fyne.Canvas) {
	dp.canvas = c
	dp.show.AddListener(binding.NewDataListener(dp.sync))
	dp.value.AddListener(binding.NewDataListener(dp.valueChanged))
}

// SetOpen writes the visibility flag and applies it immediately.
func (dp *DatePicker) SetOpen(open bool) {
	if err := dp.show.Set(open); err != nil {
		dp.log.Error(config.ErrBindingWrite, config.LogKeyError, err)
		return
	}
	dp.sync()
}

// Dismiss closes the picker. The value is left untouched.
func (dp *DatePicker) Dismiss() {
	dp.SetOpen(false)
}

// IsOpen reports whether the overlay is currently mounted.
func (dp *DatePicker) IsOpen() bool {
	return dp.overlay != nil
}

// sync mounts or unmounts the overlay to match the show binding.
// It is idempotent so both the listener and SetOpen may call it.
func (dp *DatePicker) sync() {
	open, err := dp.show.Get()
	if err != nil || dp.canvas == nil {
		return
	}
	switch {
	case open && dp.overlay == nil:
		dp.mount()
	case !open && dp.overlay != nil:
		dp.unmount()
	}
}

func (dp *DatePicker) valueChanged() {
	if dp.ctrl == nil {
		return
	}
	v, err := dp.value.Get()
	if err != nil {
		return
	}
	dp.ctrl.SetValue(v)
	dp.render()
}

func (dp *DatePicker) mount() {
	value, _ := dp.value.Get()
	dp.ctrl = engine.NewController(value, dp.clock)
	dp.ctrl.Subscribe(func(engine.Mode) { dp.render() })

	prev := widget.NewButton(config.NavPrevLabel, nil)
	prev.Disable()
	next := widget.NewButton(config.NavNextLabel, nil)
	next.Disable()
	dp.monthBtn = widget.NewButton("", func() { dp.ctrl.ToggleMonths() })
	dp.yearBtn = widget.NewButton("", func() { dp.ctrl.ToggleYears() })
	dp.header = container.NewBorder(nil, nil, prev, next,
		container.NewGridWithColumns(2, dp.monthBtn, dp.yearBtn))
	dp.body = container.NewVBox()
	dp.render()

	bg := canvas.NewRectangle(dp.palette.Secondary)
	bg.CornerRadius = config.PickerCornerSize
	width := canvas.NewRectangle(color.Transparent)
	width.SetMinSize(fyne.NewSize(dp.canvas.Size().Width*config.PickerWidthRatio, 0))
	dp.card = newCard(container.NewStack(bg, width, container.NewPadded(container.NewVBox(dp.header, dp.body))))

	dp.overlay = newBackdrop(dp.palette.Backdrop, container.NewThemeOverride(dp.card, newPickerTheme(dp.palette)), dp.Dismiss)
	dp.overlay.Resize(dp.canvas.Size())
	dp.canvas.Overlays().Add(dp.overlay)

	dp.prevKey = dp.canvas.OnTypedKey()
	dp.canvas.SetOnTypedKey(dp.typedKey)

	dp.log.Info(config.MsgPickerOpen, config.LogKeyValue, value)
}

func (dp *DatePicker) unmount() {
	dp.canvas.Overlays().Remove(dp.overlay)
	dp.canvas.SetOnTypedKey(dp.prevKey)
	dp.prevKey = nil
	dp.overlay, dp.card = nil, nil
	dp.ctrl = nil
	dp.body, dp.header, dp.monthBtn, dp.yearBtn = nil, nil, nil, nil

	dp.log.Info(config.MsgPickerClose)
}

// typedKey closes the picker on Escape and on the mobile back key.
func (dp *DatePicker) typedKey(ev *fyne.KeyEvent) {
	switch ev.Name {
	case fyne.KeyEscape, mobile.KeyBack:
		dp.Dismiss()
		return
	}
	if dp.prevKey != nil {
		dp.prevKey(ev)
	}
}

// render rebuilds the header labels and the active grid.
func (dp *DatePicker) render() {
	if dp.ctrl == nil || dp.body == nil {
		return
	}
	dp.monthBtn.SetText(dp.ctrl.HeaderMonth())
	dp.yearBtn.SetText(dp.ctrl.HeaderYear())

	g := dp.ctrl.Grid()
	var objects []fyne.CanvasObject
	if g.Mode() == engine.ModeDays {
		objects = append(objects, dp.weekdayRow())
	}
	objects = append(objects, dp.gridView(g))

	dp.body.Objects = objects
	dp.body.Refresh()
}

func (dp *DatePicker) weekdayRow() fyne.CanvasObject {
	labels := make([]fyne.CanvasObject, len(config.WeekdayKeys))
	for i, key := range config.WeekdayKeys {
		l := widget.NewLabel(dp.tr(key))
		l.Alignment = fyne.TextAlignCenter
		l.Importance = widget.LowImportance
		labels[i] = l
	}
	return container.NewGridWithColumns(config.WeekdayColumns, labels...)
}

func (dp *DatePicker) gridView(g engine.Grid) fyne.CanvasObject {
	cells := g.Cells()
	objects := make([]fyne.CanvasObject, len(cells))
	for i, cell := range cells {
		if cell.Blank() {
			objects[i] = canvas.NewRectangle(color.Transparent)
			continue
		}
		btn := widget.NewButton(cell.Label, func() { dp.selectCell(cell) })
		if cell.Selected {
			btn.Importance = widget.HighImportance
		}
		objects[i] = btn
	}
	return container.NewGridWithColumns(g.Columns(), objects...)
}

// selectCell applies a tap. The picker stays open; closing is up to the host.
func (dp *DatePicker) selectCell(cell engine.Cell) {
	if dp.ctrl == nil {
		return
	}
	before := dp.ctrl.Mode()
	v, ok := dp.ctrl.Select(cell)
	if ok {
		if err := dp.value.Set(v); err != nil {
			dp.log.Error(config.ErrBindingWrite, config.LogKeyError, err)
		}
	}
	if dp.ctrl != nil && dp.ctrl.Mode() == before {
		dp.render()
	}
}

// -----------------------------------------------------------------------------
// Overlay widgets
// -----------------------------------------------------------------------------

// backdrop dims the canvas behind the card and dismisses the picker when
// tapped outside of it.
type backdrop struct {
	widget.BaseWidget
	fill     *canvas.Rectangle
	content  fyne.CanvasObject
	onTapped func()
}

func newBackdrop(fill color.Color, content fyne.CanvasObject, onTapped func()) *backdrop {
	b := &backdrop{fill: canvas.NewRectangle(fill), content: content, onTapped: onTapped}
	b.ExtendBaseWidget(b)
	return b
}

func (b *backdrop) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(container.NewStack(b.fill, container.NewCenter(b.content)))
}

// Tapped is only reached for taps outside the card.
func (b *backdrop) Tapped(*fyne.PointEvent) {
	if b.onTapped != nil {
		b.onTapped()
	}
}

// card absorbs taps that land on the picker between its buttons.
type card struct {
	widget.BaseWidget
	content fyne.CanvasObject
}

func newCard(content fyne.CanvasObject) *card {
	c := &card{content: content}
	c.ExtendBaseWidget(c)
	return c
}

func (c *card) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(c.content)
}

func (c *card) Tapped(*fyne.PointEvent) {}
