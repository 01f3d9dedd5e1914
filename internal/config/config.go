package config

import (
	"io/fs"
)

// -----------------------------------------------------------------------------
// Build Information
// -----------------------------------------------------------------------------

// Build variables are injected via -ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// -----------------------------------------------------------------------------
// Application Constants
// -----------------------------------------------------------------------------

const (
	AppName     = "Go Date Picker"
	AppID       = "com.github.tartampluch.go-datepicker"
	LogFileName = "app.log"
)

// -----------------------------------------------------------------------------
// Exit Codes
// -----------------------------------------------------------------------------

const (
	ExitCodeSuccess = 0
	ExitCodeError   = 1
)

// -----------------------------------------------------------------------------
// System & File Permissions
// -----------------------------------------------------------------------------

const (
	// FilePermUserRW represents -rw------- (Read/Write for owner only).
	FilePermUserRW fs.FileMode = 0600

	// DirPermUserRWX represents drwx------ (Read/Write/Exec for owner only).
	DirPermUserRWX fs.FileMode = 0700
)

// -----------------------------------------------------------------------------
// CLI Flags & Descriptions
// -----------------------------------------------------------------------------

const (
	FlagVersion      = "version"
	FlagDebug        = "debug"
	FlagDate         = "date"
	FlagDescVersion  = "Show application version and exit"
	FlagDescDebug    = "Enable debug logging to stdout"
	FlagDescDate     = "Initial date as M/D/Y (defaults to today)"
	MsgVersionOutput = "%s version %s (%s/%s)\n"
)

// -----------------------------------------------------------------------------
// Preferences
// -----------------------------------------------------------------------------

const (
	PrefLastRun = "last_run_version"
)

// -----------------------------------------------------------------------------
// Date Value & Grid Geometry
// -----------------------------------------------------------------------------

const (
	// DateSeparator splits the month, day and year tokens of a DateValue.
	DateSeparator = "/"

	// FormatDateValue renders month, day and year. The trailing space is part
	// of the wire format expected by hosts.
	FormatDateValue = "%d/%d/%d "

	// DateComponents is the number of tokens a DateValue must carry.
	DateComponents = 3

	WeekdayColumns = 7
	DayGridWeeks   = 6
	DayGridCells   = WeekdayColumns * DayGridWeeks
	MonthColumns   = 3
	YearColumns    = 5

	// YearWindow is the size of the rolling window ending at the current year.
	YearWindow = 25
)

// MonthLabels are the abbreviated month names shown in the month grid and the header.
var MonthLabels = []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

// -----------------------------------------------------------------------------
// UI Constants
// -----------------------------------------------------------------------------

const (
	MainWindowWidth  = 360
	MainWindowHeight = 520

	// PickerWidthRatio is the fraction of the canvas width used by the picker card.
	PickerWidthRatio  = 0.9
	PickerCornerSize  = 10
	NavPrevLabel      = "<"
	NavNextLabel      = ">"
	PlaceholderHeader = "-"
)

// Palette defaults as #RRGGBB or #RRGGBBAA.
const (
	ColorPrimary   = "#1B46F5"
	ColorSecondary = "#F5F5F5"
	ColorSurface   = "#FFFFFF"
	ColorOnPrimary = "#FFFFFF"
	ColorText      = "#000000"
	ColorBackdrop  = "#00000080"
)

// -----------------------------------------------------------------------------
// Translation Keys (I18n)
// -----------------------------------------------------------------------------

const (
	TKeyWinTitle      = "win_title"
	TKeyBtnShowPicker = "btn_show_picker"
	TKeyLblSelected   = "lbl_selected_date"
	TKeyWeekdaySun    = "weekday_sun"
	TKeyWeekdayMon    = "weekday_mon"
	TKeyWeekdayTue    = "weekday_tue"
	TKeyWeekdayWed    = "weekday_wed"
	TKeyWeekdayThu    = "weekday_thu"
	TKeyWeekdayFri    = "weekday_fri"
	TKeyWeekdaySat    = "weekday_sat"
)

// WeekdayKeys lists the weekday header keys starting on Sunday, matching time.Weekday.
var WeekdayKeys = []string{
	TKeyWeekdaySun,
	TKeyWeekdayMon,
	TKeyWeekdayTue,
	TKeyWeekdayWed,
	TKeyWeekdayThu,
	TKeyWeekdayFri,
	TKeyWeekdaySat,
}

const (
	DefaultLanguage = "en"
)

// -----------------------------------------------------------------------------
// Error Messages (Technical/Logs)
// -----------------------------------------------------------------------------

const (
	ErrDateMalformed = "malformed date value"
	ErrDateTokens    = "expected month/day/year"
	ErrDateMonth     = "month is not a number"
	ErrDateDay       = "day is not a number"
	ErrDateYear      = "year is not a number"
	ErrColorFormat   = "invalid color"
	ErrLogFile       = "failed to open log file"
	ErrCacheDir      = "could not determine user cache dir"
	ErrCreateDir     = "could not create app cache dir"
	ErrAppFailed     = "application failed unexpectedly"
	ErrBindingWrite  = "failed to write binding"
	ErrLocalesAccess = "failed to access embedded locales"
	ErrLocaleLoad    = "failed to load locale file"
)

// -----------------------------------------------------------------------------
// Log Messages
// -----------------------------------------------------------------------------

const (
	MsgAppStarting   = "Starting application"
	MsgAppStop       = "Application stopped gracefully"
	MsgCtxCancel     = "Context cancelled, shutting down UI"
	MsgWindowReady   = "Main window ready"
	MsgLogWarning    = "Warning: %s at %s: %v\n"
	MsgPickerOpen    = "Date picker opened"
	MsgPickerClose   = "Date picker closed"
	MsgModeChange    = "Picker mode changed"
	MsgDateSelected  = "Date selected"
	MsgMonthScoped   = "Displayed month changed"
	MsgBlankCell     = "Ignoring blank grid cell"
	MsgBadDateValue  = "Malformed date value, falling back to today"
	MsgLocaleSkip    = "Skipping non-locale file"
	MsgLocaleBadName = "Skipping malformed locale filename"
	MsgLocaleLoaded  = "Locale loaded successfully"
	MsgTransMissing  = "Missing translation key"
)

// -----------------------------------------------------------------------------
// Structured Logging Keys (slog)
// -----------------------------------------------------------------------------

const (
	LogKeyComponent = "component"
	LogKeyError     = "error"
	LogKeyFile      = "file"
	LogKeyLang      = "lang"
	LogKeyKey       = "key"
	LogKeyMode      = "mode"
	LogKeyOld       = "old"
	LogKeyNew       = "new"
	LogKeyValue     = "value"
	LogKeyMonth     = "month"

	// Startup Info Keys
	LogKeyBuild   = "build"
	LogKeyApp     = "app"
	LogKeyVersion = "version"
	LogKeyGoVer   = "go_version"
	LogKeyEnv     = "env"
	LogKeyOS      = "os"
	LogKeyArch    = "arch"
	LogKeyPID     = "pid"
)

// -----------------------------------------------------------------------------
// Log Components
// -----------------------------------------------------------------------------

const (
	CompUI     = "ui"
	CompPicker = "picker"
	CompEngine = "engine"
	CompMain   = "main"
	CompI18n   = "i18n"
)
