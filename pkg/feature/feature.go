package feature

// TestFunc computes a feature's value from its resolved dependencies.
// Values arrive positionally, in the order of Feature.Dependencies.
// The result is coerced with Truthy.
type TestFunc func(deps ...any) any

// HealthFunc reports nil when the feature is healthy, or an alert value
// (typically a string) when its backing condition is stale.
type HealthFunc func() any

// ResetFunc receives the invalidation callback of a feature. The feature
// decides when to call it, e.g. from a timer or a file watcher.
type ResetFunc func(invalidate func())

// HealthHandler receives a feature name and the alert its health probe returned.
type HealthHandler func(name string, alert any)

// Feature is a named boolean capability. Features are immutable once
// passed to New.
type Feature struct {
	Name         string
	Test         TestFunc
	Dependencies []string
	Health       HealthFunc
	ResetOn      ResetFunc
}

// Snapshot is the serialized form of a toggle set.
type Snapshot struct {
	Values map[string]bool `json:"values"`
}

// RawSnapshot is a snapshot whose values have not been coerced yet.
// It is the input of FromSnapshot.
type RawSnapshot struct {
	Values map[string]any `json:"values"`
}

// FilterFunc selects feature names for ToJSON.
type FilterFunc func(name string) bool
