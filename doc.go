// Package lorekeep is the Composition Root for the lorekeep application.
//
// It connects the core business logic (Domain Layer) with the infrastructure
// adapters (Persistence Layer) using the Hexagonal Architecture pattern.
//
// Philosophy:
//
// lorekeep is a campaign notebook engine for tabletop games. It treats a
// single JSON blob as the database of record: every note lives in one of a
// fixed set of sections (sessions, quests, NPCs, locations...), carries
// wiki-style [[links]] to other notes, and survives process restarts through
// atomic whole-store saves. The core is storage-agnostic; the default
// adapter persists to a local file and watches it for external edits.
//
// Features:
//
//   - **Hexagonal Architecture**: Core domain is isolated from persistence details.
//   - **Wiki Links**: [[Title]] markers resolve to notes, with live backlinks
//     and unlinked-mention detection.
//   - **Atomic Persistence**: Whole-store writes via temp file and rename.
//   - **External Change Watching**: fsnotify-based watcher with debouncing,
//     supervised for automatic restart on failure.
//   - **Extensible**: Designed to support other backends via core.Gateway.
//
// Usage:
//
//	// Initialize service with functional options
//	svc, err := lorekeep.New("./campaign/lorekeep.json",
//		lorekeep.WithLogger(logger),
//	)
//
//	// Create a note and follow a link
//	id, err := svc.Create(ctx, core.SectionQuests)
package lorekeep
