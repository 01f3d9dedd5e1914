package ui

import (
	"context"
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/data/binding"
	"fyne.io/fyne/v2/widget"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/tartampluch/go-datepicker/internal/config"
	"github.com/tartampluch/go-datepicker/internal/engine"
)

// DatePickerApp is the host application. It owns the DateValue and the
// visibility flag and hands both to the picker as bindings.
type DatePickerApp struct {
	App        fyne.App
	Window     fyne.Window
	I18nBundle *i18n.Bundle
	Localizer  *i18n.Localizer
	Ctx        context.Context

	Clock   engine.Clock // Injected clock for testability
	Palette Palette

	Value  binding.String
	Show   binding.Bool
	Picker *DatePicker
}

// NewDatePickerApp constructs the host. An empty initial value is replaced
// by today's date when the window is built.
func NewDatePickerApp(a fyne.App, ctx context.Context, initial string) *DatePickerApp {
	value := binding.NewString()
	if err := value.Set(initial); err != nil {
		slog.Error(config.ErrBindingWrite,
			config.LogKeyComponent, config.CompUI,
			config.LogKeyValue, initial,
			config.LogKeyError, err,
		)
	}

	return &DatePickerApp{
		App:     a,
		Ctx:     ctx,
		Clock:   engine.RealClock{}, // Default to real clock in production
		Palette: DefaultPalette(),
		Value:   value,
		Show:    binding.NewBool(),
	}
}

// Run builds the main window and blocks in the UI loop.
func (app *DatePickerApp) Run() {
	app.SetupI18n()
	app.BuildWindow()
	app.Window.ShowAndRun()
}

// BuildWindow creates the main window with its trigger button and attaches
// the picker to the window canvas.
func (app *DatePickerApp) BuildWindow() {
	if v, _ := app.Value.Get(); v == "" {
		today := engine.Today(app.Clock)
		if err := app.Value.Set(today); err != nil {
			slog.Error(config.ErrBindingWrite,
				config.LogKeyComponent, config.CompUI,
				config.LogKeyValue, today,
				config.LogKeyError, err,
			)
		}
	}

	w := app.App.NewWindow(app.GetMsg(config.TKeyWinTitle))
	w.Resize(fyne.NewSize(config.MainWindowWidth, config.MainWindowHeight))
	app.Window = w

	selected := widget.NewLabelWithData(app.Value)
	selected.Alignment = fyne.TextAlignCenter
	caption := widget.NewLabel(app.GetMsg(config.TKeyLblSelected))
	caption.Alignment = fyne.TextAlignCenter
	trigger := widget.NewButton(app.GetMsg(config.TKeyBtnShowPicker), app.TogglePicker)

	w.SetContent(container.NewCenter(container.NewVBox(caption, selected, trigger)))

	app.Picker = NewDatePicker(app.Value, app.Show,
		WithPalette(app.Palette),
		WithClock(app.Clock),
		WithTranslator(app.GetMsg),
	)
	app.Picker.Attach(w.Canvas())

	slog.Debug(config.MsgWindowReady, config.LogKeyComponent, config.CompUI)
}

// TogglePicker flips the visibility flag, like the host's trigger button.
func (app *DatePickerApp) TogglePicker() {
	open, _ := app.Show.Get()
	app.Picker.SetOpen(!open)
}
