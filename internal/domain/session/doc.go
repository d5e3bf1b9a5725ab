// Package session manages live shell sessions over the archive tree.
//
// Every session owns a private tree built from the shared immutable
// entry snapshot, so moves inside one session are invisible to every
// other session.
//
// Components:
//   - Manager: Create/Get/List/Close over a sync.Map, with a cap on
//     concurrently open sessions
//   - Session: one engine plus activity bookkeeping
//   - Idle reaper: background loop closing sessions inactive past a
//     configurable timeout
//
// Lifecycle:
//  1. Create builds a tree, wraps an engine, assigns sess_<ULID>
//  2. Execute refreshes activity and runs the line
//  3. An exit result, an explicit Close, or the reaper removes it
//
// Example Usage:
//
//	manager := session.NewManager(entries, session.Options{
//	    Username:    "erik",
//	    IdleTimeout: 30 * time.Minute,
//	}, logger, metrics)
//	s, err := manager.Create("")
//	res, err := manager.Execute(s.ID, "ls dir1")
package session
