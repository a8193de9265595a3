// Package app implements the application layer for transit.
package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.trai.ch/transit/internal/adapters/detector"
	"go.trai.ch/transit/internal/adapters/ephemeris"
	"go.trai.ch/transit/internal/adapters/telemetry"
	"go.trai.ch/transit/internal/adapters/tui"
	"go.trai.ch/transit/internal/core/domain"
	"go.trai.ch/transit/internal/core/ports"
	"go.trai.ch/transit/internal/engine/cache"
	"go.trai.ch/transit/internal/engine/scrub"
	"go.trai.ch/transit/internal/ui/render"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	logger       ports.Logger
	watcher      ports.ProfileWatcher

	stdout      io.Writer
	newClient   func(baseURL string) ports.Ephemeris
	now         func() time.Time
	teaOptions  []tea.ProgramOption
	disableTick bool
}

// New creates a new App instance.
func New(loader ports.ConfigLoader, log ports.Logger, watcher ports.ProfileWatcher) *App {
	return &App{
		configLoader: loader,
		logger:       log,
		watcher:      watcher,
		stdout:       os.Stdout,
		newClient: func(baseURL string) ports.Ephemeris {
			return ephemeris.NewClient(baseURL)
		},
		now: time.Now,
	}
}

// WithOutput redirects one-shot output.
// This is primarily used for testing.
func (a *App) WithOutput(w io.Writer) *App {
	a.stdout = w
	return a
}

// WithNow overrides the clock.
// This is primarily used for testing.
func (a *App) WithNow(now func() time.Time) *App {
	a.now = now
	return a
}

// WithTeaOptions adds bubbletea program options to the App.
// This is primarily used for testing to disable input/output.
func (a *App) WithTeaOptions(opts ...tea.ProgramOption) *App {
	a.teaOptions = append(a.teaOptions, opts...)
	return a
}

// WithDisableTick disables the TUI tick loop.
// This is primarily used for testing to avoid goroutine deadlocks.
func (a *App) WithDisableTick() *App {
	a.disableTick = true
	return a
}

// Show fetches and prints the snapshot for a single period. dateFlag is a
// YYYY-MM month or empty for the current one.
func (a *App) Show(ctx context.Context, dateFlag string) error {
	cfg, err := a.configLoader.Load(".")
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}
	if !cfg.Profile.Ready() {
		return zerr.Wrap(domain.ErrNotReady, "add a profile to "+domain.ConfigFileName)
	}
	keyer, err := domain.NewKeyer(cfg.Profile)
	if err != nil {
		return err
	}
	date, err := a.resolveDate(dateFlag)
	if err != nil {
		return err
	}

	shutdown := telemetry.Setup(a.logger)
	defer func() {
		_ = shutdown(ctx)
	}()

	client := a.newClient(cfg.ServiceURL)
	snap, err := client.FetchSnapshot(ctx, keyer.PeriodStart(date), cfg.Profile)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(a.stdout, render.Snapshot(snap))
	return err
}

// RunOptions configuration for the Scrub method.
type RunOptions struct {
	OutputMode string
}

// Scrub runs the interactive scrub session. In plain mode (pipes, CI, or
// an explicit override) it falls back to a one-shot snapshot of the
// current period.
func (a *App) Scrub(ctx context.Context, opts RunOptions) error {
	mode := detector.ResolveMode(detector.DetectEnvironment(), opts.OutputMode)
	if mode != detector.ModeTUI {
		return a.Show(ctx, "")
	}

	cfg, err := a.configLoader.Load(".")
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}
	if !cfg.Profile.Ready() {
		return zerr.Wrap(domain.ErrNotReady, "add a profile to "+domain.ConfigFileName)
	}

	shutdown := telemetry.Setup(a.logger)
	defer func() {
		_ = shutdown(ctx)
	}()

	client := a.newClient(cfg.ServiceURL)
	positions := cache.NewPositionStore(cfg.Settings.PositionCapacity)
	snapshots := cache.NewSnapshotStore(cfg.Settings.SnapshotCapacity)
	prefetcher := scrub.NewPrefetcher(client, positions, a.logger, cfg.Settings.PrefetchRadius)

	controller, err := scrub.NewController(
		client,
		a.logger,
		positions,
		snapshots,
		prefetcher,
		cfg.Profile,
		cfg.Settings.DebounceWindow,
	)
	if err != nil {
		return err
	}
	defer controller.Close()

	// Watch the profile on disk so edits reset the engine mid-session.
	if a.watcher != nil && cfg.Path != "" {
		if err := a.watcher.Start(ctx, cfg.Path, func() {
			a.reloadProfile(ctx, controller)
		}); err != nil {
			a.logger.Warn("profile watcher unavailable: " + err.Error())
		} else {
			defer func() {
				_ = a.watcher.Stop()
			}()
		}
	}

	// Bootstrap in the background; the view shows a waiting state until
	// the first snapshot lands.
	go func() {
		if err := controller.Bootstrap(ctx, a.now()); err != nil {
			a.logger.Warn("initial snapshot fetch failed: " + err.Error())
		}
	}()

	modelOpts := []tui.Option{
		tui.WithNow(a.now),
		tui.WithMarkerStaleness(cfg.Settings.MarkerStaleness),
	}
	if a.disableTick {
		modelOpts = append(modelOpts, tui.WithDisableTick())
	}
	model := tui.NewModel(controller, modelOpts...)

	teaOpts := append([]tea.ProgramOption{tea.WithContext(ctx)}, a.teaOptions...)
	_, err = tui.NewProgram(model, teaOpts...).Run()
	return err
}

// reloadProfile re-reads the configuration after a file change and resets
// the engine onto the new keyspace.
func (a *App) reloadProfile(ctx context.Context, controller *scrub.Controller) {
	cfg, err := a.configLoader.Load(".")
	if err != nil {
		a.logger.Warn("profile reload failed: " + err.Error())
		return
	}
	if err := controller.Reset(cfg.Profile); err != nil {
		a.logger.Warn("profile change left engine not ready: " + err.Error())
		return
	}
	a.logger.Info("profile changed, refreshing")
	go func() {
		if err := controller.Bootstrap(ctx, a.now()); err != nil {
			a.logger.Warn("snapshot refresh failed: " + err.Error())
		}
	}()
}

// resolveDate parses the optional YYYY-MM month flag, defaulting to now.
func (a *App) resolveDate(dateFlag string) (time.Time, error) {
	if dateFlag == "" {
		return a.now(), nil
	}
	date, err := time.Parse("2006-01", dateFlag)
	if err != nil {
		return time.Time{}, zerr.Wrap(domain.ErrInvalidDate, dateFlag)
	}
	return date, nil
}
