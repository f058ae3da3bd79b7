// Package feature provides a feature toggle evaluation engine.
//
// A toggle set is built once from a fixed list of features. Each feature has
// a test that computes its boolean value, and may declare named dependencies
// (values bound later by the application), a health probe and a reset hook.
// Values are computed on first access and memoized until the feature's reset
// hook invalidates them.
//
// # Architecture
//
// Construction runs in a fixed order:
//
//  1. Shape validation of the features (ErrArgument).
//  2. Declared dependencies are checked against the expected dependencies.
//  3. Health probes run once and alerts go to the health handler.
//  4. Reset hooks receive their invalidation callbacks.
//
// After that the toggle set only grows: dependencies are bound once each,
// values are memoized lazily and dropped individually by resets.
//
// # Usage
//
//	import "github.com/dmitrymomot/togglekit/pkg/feature"
//
//	toggles, err := feature.New([]feature.Feature{
//		{
//			Name: "new-ui",
//			Test: feature.AlwaysOn(),
//		},
//		{
//			Name:         "localized-checkout",
//			Dependencies: []string{"lang"},
//			Test: func(deps ...any) any {
//				return deps[0] == "de"
//			},
//		},
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	_ = toggles.DefineDependency("lang", "de")
//
//	enabled, err := toggles.Get("localized-checkout")
//
// # Dependencies
//
// Dependencies and features are separate namespaces: a feature never reads
// another feature's value through its dependency list. Bind a value with
// DefineDependency before evaluating the features that need it; evaluating
// earlier fails with ErrDependencyNotDefined and caches nothing.
//
// SetExpectedDependencies restricts which names may be declared and bound
// process-wide; WithExpectedDependencies does the same for a single set.
//
// # Health and Resets
//
//	feature.OnHealthAlert(func(name string, alert any) {
//		slog.Warn("stale toggle", "feature", name, "alert", alert)
//	})
//
// Probes run only when a handler is registered. A reset hook receives a
// callback that drops the feature's memoized value; Toggles.Invalidate does
// the same for callers that hold the toggle set.
//
// # Serialization
//
// ToJSON and MarshalJSON produce {"values": {"<name>": <bool>}}. FromJSON and
// FromSnapshot replay such a document as a toggle set without dependencies.
//
// # Error Handling
//
// Every failure is an *Error wrapping one of the Err* sentinels:
//
//	_, err := toggles.Get("unknown")
//	if errors.Is(err, feature.ErrToggleNotDefined) {
//		// Toggle doesn't exist
//	}
//
// # Concurrency
//
// Toggle sets are safe for concurrent use. Concurrent reads of the same
// uncached feature share a single evaluation of its test, and concurrent
// bindings of the same dependency yield exactly one success. A test that
// reads its own feature, directly or through a cycle, blocks forever.
package feature
