package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/five82/devlog/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "override config path (optional)")
	prefsPath := flag.String("prefs", "", "override preferences path (optional)")
	demoMillis := flag.Int("demo", 0, "demo interval in milliseconds (optional, defaults to the config value)")
	noDemo := flag.Bool("no-demo", false, "start with an empty console")
	headless := flag.Bool("headless", false, "echo records to stdout instead of opening the console view")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	opts := app.Options{
		ConfigPath: *configPath,
		PrefsPath:  *prefsPath,
		NoDemo:     *noDemo,
		Headless:   *headless,
	}
	if ms := *demoMillis; ms > 0 {
		opts.DemoEvery = time.Duration(ms) * time.Millisecond
	}

	if err := app.Run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "devlog: %v\n", err)
		return 1
	}
	return 0
}
