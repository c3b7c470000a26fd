package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"os"
	"time"

	"github.com/five82/devlog/internal/config"
	"github.com/five82/devlog/internal/console"
	"github.com/five82/devlog/internal/logging"
	"github.com/five82/devlog/internal/prefs"
	"github.com/five82/devlog/internal/state"
	"github.com/five82/devlog/internal/ui"
)

// Options configure the devlog application.
type Options struct {
	ConfigPath string
	PrefsPath  string        // empty uses ~/.config/devlog/prefs.toml
	DemoEvery  time.Duration // zero uses the configured demo interval
	NoDemo     bool
	Headless   bool      // echo records instead of running the view
	Stdout     io.Writer // headless echo target when the config selects none; os.Stdout when nil
}

// Run boots devlog until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}
	userPrefs := prefs.Load(prefsPath)

	store := &state.Store{}
	consoleOpts := []console.Option{
		console.WithEnabled(cfg.Enabled),
		console.WithPrefix(cfg.Prefix),
		console.WithSuffix(cfg.Suffix),
	}
	// The view owns the terminal, so records are echoed only when headless.
	if opts.Headless {
		consoleOpts = append(consoleOpts, console.WithOutput(headlessOutput(cfg, opts.Stdout)))
	}
	c := console.New(store, consoleOpts...)

	log, err := newLogger(cfg, c, opts.Headless)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	sl := slog.New(console.NewHandler(c, logging.SlogLevel(cfg.LogLevel)))
	slog.SetDefault(sl)

	if !opts.NoDemo {
		interval := opts.DemoEvery
		if interval <= 0 {
			interval = cfg.DemoInterval
		}
		seed := uint64(time.Now().UnixNano())
		demo := NewDemo(c, sl, log, rand.New(rand.NewPCG(seed, seed>>1)))
		StartDemo(ctx, demo, interval)
	}

	if opts.Headless {
		log.Info("running headless; interrupt to stop")
		<-ctx.Done()
		return nil
	}

	if err := ui.Run(ctx, ui.Options{
		Store:     store,
		Logger:    log,
		Refresh:   cfg.RefreshInterval,
		ThemeName: userPrefs.Theme,
		PrefsPath: prefsPath,
	}); err != nil {
		return fmt.Errorf("run console view: %w", err)
	}
	return nil
}

// newLogger builds devlog's own zap logger. Entries always reach the console
// store; headless runs also print them to stderr.
func newLogger(cfg config.Config, c *console.Logger, headless bool) (logging.Logger, error) {
	core := console.NewZapCore(c, logging.ParseLevel(cfg.LogLevel))
	if headless {
		return logging.NewLogger(cfg.Environment, cfg.LogLevel, core)
	}
	return logging.NewCoreLogger(core), nil
}

func headlessOutput(cfg config.Config, stdout io.Writer) io.Writer {
	if w := cfg.EchoWriter(); w != nil {
		return w
	}
	if stdout != nil {
		return stdout
	}
	return os.Stdout
}
