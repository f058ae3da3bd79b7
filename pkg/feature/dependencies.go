package feature

import (
	"slices"
	"sync"
)

// process-wide configuration shared by all toggle sets
var global struct {
	mu            sync.RWMutex
	expected      []string
	healthHandler HealthHandler
}

// SetExpectedDependencies restricts which dependency names features may
// declare and toggle sets may bind. A nil slice removes the restriction;
// an empty non-nil slice forbids every dependency.
// The list applies to toggle sets created afterwards.
func SetExpectedDependencies(names []string) {
	global.mu.Lock()
	defer global.mu.Unlock()

	global.expected = slices.Clone(names)
}

func expectedDependencies() []string {
	global.mu.RLock()
	defer global.mu.RUnlock()
	return global.expected
}

// assertDeclaredDependencies fails when any feature declares a dependency
// missing from a non-nil allow-list. Every offending name is reported.
func assertDeclaredDependencies(features []Feature, expected []string) error {
	if expected == nil {
		return nil
	}

	var unexpected []string
	for _, f := range features {
		for _, dep := range f.Dependencies {
			if !slices.Contains(expected, dep) {
				unexpected = append(unexpected, dep)
			}
		}
	}

	if len(unexpected) > 0 {
		return errUnexpectedDependenciesRequired(unexpected)
	}
	return nil
}

// registry holds the dependency values bound to one toggle set.
type registry struct {
	mu       sync.RWMutex
	values   map[string]any
	expected []string
}

func newRegistry(expected []string) *registry {
	return &registry{
		values:   make(map[string]any),
		expected: expected,
	}
}

// bind stores value under name. Names are write-once.
func (r *registry) bind(name string, value any) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.values[name]; exists {
		return errDependencyAlreadyDefined(name)
	}
	if r.expected != nil && !slices.Contains(r.expected, name) {
		return errUnexpectedDependencyDefined(name)
	}

	r.values[name] = value
	return nil
}

// resolve returns the bound values of names in the same order.
func (r *registry) resolve(feature string, names []string) ([]any, error) {
	if len(names) == 0 {
		return nil, nil
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	values := make([]any, 0, len(names))
	for _, name := range names {
		v, ok := r.values[name]
		if !ok {
			return nil, errDependencyNotDefined(feature, name)
		}
		values = append(values, v)
	}
	return values, nil
}
