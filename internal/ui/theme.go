package ui

import (
	"fmt"
	"image/color"
	"log/slog"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
	"github.com/tartampluch/go-datepicker/internal/config"
)

// Palette holds the colors of the picker. It is passed to each picker
// instance rather than read from package state.
type Palette struct {
	Primary   color.Color // Selected cells
	Secondary color.Color // Card background
	Surface   color.Color // Cell buttons
	OnPrimary color.Color // Text on selected cells
	Text      color.Color
	Backdrop  color.Color // Dimmed area around the card
}

// DefaultPalette builds the palette from the config defaults.
func DefaultPalette() Palette {
	return Palette{
		Primary:   hexColorOrTransparent(config.ColorPrimary),
		Secondary: hexColorOrTransparent(config.ColorSecondary),
		Surface:   hexColorOrTransparent(config.ColorSurface),
		OnPrimary: hexColorOrTransparent(config.ColorOnPrimary),
		Text:      hexColorOrTransparent(config.ColorText),
		Backdrop:  hexColorOrTransparent(config.ColorBackdrop),
	}
}

// ParseHexColor parses "#RRGGBB" or "#RRGGBBAA".
func ParseHexColor(s string) (color.NRGBA, error) {
	if (len(s) != 7 && len(s) != 9) || s[0] != '#' {
		return color.NRGBA{}, fmt.Errorf("%s %q: expected #RRGGBB or #RRGGBBAA", config.ErrColorFormat, s)
	}
	channels := [4]uint8{3: 0xff}
	for i := 1; i < len(s); i += 2 {
		v, err := strconv.ParseUint(s[i:i+2], 16, 8)
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("%s %q: %w", config.ErrColorFormat, s, err)
		}
		channels[i/2] = uint8(v)
	}
	return color.NRGBA{R: channels[0], G: channels[1], B: channels[2], A: channels[3]}, nil
}

// hexColorOrTransparent falls back to transparent when a constant is malformed.
func hexColorOrTransparent(s string) color.Color {
	c, err := ParseHexColor(s)
	if err != nil {
		slog.Error(config.ErrColorFormat,
			config.LogKeyComponent, config.CompUI,
			config.LogKeyValue, s,
			config.LogKeyError, err,
		)
		return color.Transparent
	}
	return c
}

// pickerTheme overrides the palette colors of a base theme.
type pickerTheme struct {
	fyne.Theme
	palette Palette
}

func newPickerTheme(p Palette) fyne.Theme {
	return &pickerTheme{Theme: theme.DefaultTheme(), palette: p}
}

// Color maps Fyne color names onto the palette.
func (t *pickerTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	var c color.Color
	switch name {
	case theme.ColorNamePrimary:
		c = t.palette.Primary
	case theme.ColorNameBackground:
		c = t.palette.Secondary
	case theme.ColorNameButton:
		c = t.palette.Surface
	case theme.ColorNameForeground:
		c = t.palette.Text
	case theme.ColorNameForegroundOnPrimary:
		c = t.palette.OnPrimary
	}
	if c == nil {
		return t.Theme.Color(name, variant)
	}
	return c
}
