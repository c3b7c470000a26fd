package app

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/five82/devlog/internal/console"
	"github.com/five82/devlog/internal/logging"
)

const (
	defaultDemoInterval = 300 * time.Millisecond
	demoLetters         = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	demoSeedStrings     = 11
	demoMinLength       = 90
	demoMaxLength       = 100
	demoSlogEvery       = 10
)

// demoSite is a synthetic call site random lines are attributed to.
type demoSite struct {
	file      string
	typeLabel string
}

var demoSites = []demoSite{
	{"/demo/App/Scene.delegate.swift", ""},
	{"/demo/Features/Login/Login.viewModel.swift", "LoginState"},
	{"/demo/Services/UserSession.swift", ""},
	{"/demo/Services/CartManager.go", "Cart"},
	{"/demo/Data/ProfileRepository.swift", ""},
	{"/demo/Domain/Checkout.useCase.swift", ""},
	{"/demo/App/App.diContainer.swift", ""},
	{"/demo/Features/Feed/Feed.viewController.swift", ""},
	{"/demo/Support/ImageCache.swift", ""},
}

// Demo writes sample traffic into a console: the opening sequence of the
// sample app followed by random lines.
type Demo struct {
	console *console.Logger
	slog    *slog.Logger
	log     logging.Logger
	rand    *rand.Rand
	next    int
	ticks   int
}

// NewDemo returns a demo writing to c. sl receives the periodic slog lines
// and may be nil.
func NewDemo(c *console.Logger, sl *slog.Logger, log logging.Logger, r *rand.Rand) *Demo {
	if log == nil {
		log = logging.NewNoOpLogger()
	}
	return &Demo{console: c, slog: sl, log: log, rand: r}
}

// Seed writes the opening sequence: a construct, "Test", 1, 2, a spacer, a
// destruct and then eleven random lines.
func (d *Demo) Seed() {
	at := console.At(demoSites[0].file, 27)
	d.console.Construct(nil, at)
	d.console.Log("Test", at)
	d.console.Log(1, at)
	d.console.Log(2, at)
	d.console.Spacer(at)
	d.console.Destruct(nil, at)

	for range demoSeedStrings {
		d.logRandom()
	}
}

// Tick writes one random line from the next synthetic call site. Every
// demoSlogEvery-th tick writes a heartbeat through slog instead.
func (d *Demo) Tick() {
	d.ticks++
	if d.slog != nil && d.ticks%demoSlogEvery == 0 {
		d.slog.Info("heartbeat", "tick", d.ticks, "site", d.nextSite().file, "type", "Demo")
		return
	}
	d.logRandom()
}

func (d *Demo) logRandom() {
	site := d.nextSite()
	line := 10 + d.rand.IntN(200)
	d.console.Log(d.randomString(), console.WithType(site.typeLabel), console.At(site.file, line))
}

func (d *Demo) nextSite() demoSite {
	site := demoSites[d.next%len(demoSites)]
	d.next++
	return site
}

func (d *Demo) randomString() string {
	n := demoMinLength + d.rand.IntN(demoMaxLength-demoMinLength+1)
	var b strings.Builder
	b.Grow(n)
	for range n {
		b.WriteByte(demoLetters[d.rand.IntN(len(demoLetters))])
	}
	return b.String()
}

// StartDemo seeds the console and launches a goroutine that ticks the demo
// every interval until ctx is cancelled. It returns immediately.
func StartDemo(ctx context.Context, d *Demo, interval time.Duration) {
	if interval <= 0 {
		interval = defaultDemoInterval
	}
	d.Seed()
	d.log.Info("demo started", zap.Duration("interval", interval))

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				d.log.Debug("demo stopped", zap.Int("ticks", d.ticks))
				return
			case <-ticker.C:
				d.Tick()
			}
		}
	}()
}
