// Package app is devlog's composition root.
//
// # Overview
//
// Run loads configuration and preferences, builds the shared state.Store and
// the console.Logger writing into it, routes devlog's own zap and slog output
// into the same console, starts the demo workload and then hands the
// terminal to the console view.
//
// # Data Flow
//
//	┌──────────────┐
//	│   Run()      │
//	└──────┬───────┘
//	       ├─────> config.Load()        ~/.config/devlog/config.toml
//	       ├─────> prefs.Load()         theme
//	       ├─────> state.Store{}        append-only record log
//	       ├─────> console.New()        facade writing to the store
//	       ├─────> NewZapCore/Handler   zap + slog into the console
//	       ├─────> StartDemo()          sample traffic
//	       └─────> ui.Run()             console view (blocks)
//
//	Demo goroutine:
//	┌─────────────────────────────────────────┐
//	│ Seed(): construct, "Test", 1, 2, spacer │
//	│         destruct, 11 random lines       │
//	│ every interval: Tick()                  │
//	│   └─> console.Log / slog heartbeat      │
//	│       └─> store.Append  ─> observers    │
//	└─────────────────────────────────────────┘
//
// # Headless Mode
//
// With Options.Headless there is no view. Records are echoed to the
// configured echo stream (stdout when the config selects none) and devlog's
// diagnostics also go to stderr. Run blocks until the context is cancelled.
//
// # Error Handling
//
// Only configuration errors and a failing Bubble Tea program end Run with an
// error. Clipboard and preference failures are reported in the view and
// logged through zap.
package app
