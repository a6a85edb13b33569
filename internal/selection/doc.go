// Package selection holds the single source of truth for which assets are
// currently selected, mirrored across every rendered surface.
//
// The Store owns the membership set; grid cards, list rows, per-asset badges
// and the toolbar subscribe to it and recompute their visible state purely
// from Contains and Count on every notification. No surface keeps an
// independent selected flag, so the surfaces cannot drift apart.
//
// The Store is accessed only from the event-processing goroutine. Its
// concurrency contract is the notification discipline: every mutating call
// that changed the set triggers exactly one notification cycle, even when
// several identifiers changed atomically.
package selection
