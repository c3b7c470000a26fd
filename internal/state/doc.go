// Package state holds the console's append-only record buffer.
//
// # Overview
//
// Store is the single point where log calls meet the console view. Writers
// (the console logger, the slog and zap adapters, the demo workload) append
// records; readers either take a Snapshot or subscribe for notifications.
//
//	Writers:                        Readers:
//	┌──────────────────┐           ┌────────────────────┐
//	│ console.Log()    │           │ ui throttle        │
//	│ slog / zap       │──Append──→│  OnAppended(view)  │
//	│ demo workload    │  (mutex)  │ Snapshot()         │
//	└──────────────────┘           └────────────────────┘
//
// # Guarantees
//
//   - Append never removes or reorders existing entries; insertion order is
//     chronological order.
//   - Snapshot returns a defensive copy.
//   - Observers are called synchronously, in subscription order, after the
//     lock is released. They receive a clipped view of the buffer: entries
//     in it are never rewritten, so no copy is made per notification.
//   - Observers may append from inside OnAppended; they must not block,
//     because they run on the writer's goroutine.
//
// # Lifecycle
//
// The buffer is unbounded and lives as long as the process. There is no
// close or drain state. One Store is created by the composition root
// (internal/app) and passed to everything that needs it; tests construct
// their own.
//
// # Sequence counters
//
// NextConstruct and NextDestruct hand out independent, monotonic numbers
// starting at 1 for lifecycle records. They are atomic and do not take the
// buffer lock.
package state
