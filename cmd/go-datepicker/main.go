package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"syscall"

	"fyne.io/fyne/v2/app"
	"github.com/tartampluch/go-datepicker/internal/config"
	"github.com/tartampluch/go-datepicker/internal/engine"
	"github.com/tartampluch/go-datepicker/internal/ui"
)

// options holds the parsed command line.
type options struct {
	version bool
	debug   bool
	date    string
}

func main() {
	// os.Exit skips defers, so the log file is closed inside runMain.
	os.Exit(runMain(os.Args[1:]))
}

func runMain(args []string) int {
	opts, err := parseFlags(args)
	if err != nil {
		return config.ExitCodeError
	}
	if opts.version {
		printVersion(os.Stdout)
		return config.ExitCodeSuccess
	}

	if closer := setupLogging(opts.debug); closer != nil {
		defer func() { _ = closer.Close() }()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logStartupInfo()
	checkInitialDate(opts.date)

	if err := run(ctx, opts.date); err != nil {
		slog.Error(config.ErrAppFailed,
			config.LogKeyComponent, config.CompMain,
			config.LogKeyError, err,
		)
		return config.ExitCodeError
	}

	slog.Info(config.MsgAppStop, config.LogKeyComponent, config.CompMain)
	return config.ExitCodeSuccess
}

func parseFlags(args []string) (options, error) {
	var opts options
	fs := flag.NewFlagSet(config.AppName, flag.ContinueOnError)
	fs.BoolVar(&opts.version, config.FlagVersion, false, config.FlagDescVersion)
	fs.BoolVar(&opts.debug, config.FlagDebug, false, config.FlagDescDebug)
	fs.StringVar(&opts.date, config.FlagDate, "", config.FlagDescDate)
	err := fs.Parse(args)
	return opts, err
}

// checkInitialDate warns about a -date value the picker cannot parse.
// The value is still used: the picker then opens on today's month.
func checkInitialDate(value string) bool {
	if value == "" {
		return true
	}
	if _, err := engine.Parse(value); err != nil {
		slog.Warn(config.MsgBadDateValue,
			config.LogKeyComponent, config.CompMain,
			config.LogKeyValue, value,
			config.LogKeyError, err,
		)
		return false
	}
	return true
}

// run blocks until the main window closes or ctx is cancelled.
func run(ctx context.Context, initial string) error {
	a := app.NewWithID(config.AppID)
	a.Preferences().SetString(config.PrefLastRun, config.Version)

	gui := ui.NewDatePickerApp(a, ctx, initial)

	go func() {
		<-ctx.Done()
		slog.Info(config.MsgCtxCancel, config.LogKeyComponent, config.CompMain)
		a.Quit()
	}()

	gui.Run()
	return nil
}

func printVersion(w io.Writer) {
	fmt.Fprintf(w, config.MsgVersionOutput, config.AppName, config.Version, runtime.GOOS, runtime.GOARCH)
}

func logStartupInfo() {
	slog.Info(config.MsgAppStarting,
		config.LogKeyComponent, config.CompMain,
		slog.Group(config.LogKeyBuild,
			slog.String(config.LogKeyApp, config.AppName),
			slog.String(config.LogKeyVersion, config.Version),
			slog.String(config.LogKeyGoVer, runtime.Version()),
		),
		slog.Group(config.LogKeyEnv,
			slog.String(config.LogKeyOS, runtime.GOOS),
			slog.String(config.LogKeyArch, runtime.GOARCH),
			slog.Int(config.LogKeyPID, os.Getpid()),
		),
	)
}

// setupLogging installs a JSON slog handler writing to stdout and, when the
// cache directory is usable, to a log file truncated on each start.
// The returned closer is nil when no file was opened.
func setupLogging(debug bool) io.Closer {
	out := []io.Writer{os.Stdout}
	var logFile *os.File

	if path, err := logFilePath(); err == nil {
		f, err := os.OpenFile(path, os.O_TRUNC|os.O_CREATE|os.O_WRONLY, config.FilePermUserRW)
		if err != nil {
			fmt.Fprintf(os.Stderr, config.MsgLogWarning, config.ErrLogFile, path, err)
		} else {
			out = append(out, f)
			logFile = f
		}
	}

	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	handler := slog.NewJSONHandler(io.MultiWriter(out...), &slog.HandlerOptions{
		Level:     level,
		AddSource: debug,
	})
	slog.SetDefault(slog.New(handler))

	if logFile == nil {
		return nil
	}
	return logFile
}

// logFilePath creates <cache>/<AppID> owner-only and returns the log path in it.
func logFilePath() (string, error) {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("%s: %w", config.ErrCacheDir, err)
	}
	dir := filepath.Join(cacheDir, config.AppID)
	if err := os.MkdirAll(dir, config.DirPermUserRWX); err != nil {
		return "", fmt.Errorf("%s: %w", config.ErrCreateDir, err)
	}
	return filepath.Join(dir, config.LogFileName), nil
}
