package feature

import (
	"log/slog"
	"slices"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"github.com/dmitrymomot/togglekit/pkg/logger"
)

// Toggles is a read-only evaluation surface over a fixed feature set.
// Values are computed on first access and memoized until the feature's
// reset hook fires. All methods are safe for concurrent use.
type Toggles struct {
	id       string
	features map[string]Feature
	names    []string
	deps     *registry
	log      *slog.Logger

	mu     sync.RWMutex
	cache  map[string]bool
	flight singleflight.Group
}

// New validates the features and builds a toggle set over them.
//
// Construction fails without side effects when the input is malformed or a
// feature declares a dependency outside the expected dependencies. Health
// probes run once, before New returns, and reset hooks receive their
// invalidation callbacks.
func New(features []Feature, opts ...Option) (*Toggles, error) {
	if err := validateFeatures(features); err != nil {
		return nil, err
	}

	o := applyOptions(opts)

	if err := assertDeclaredDependencies(features, o.expected); err != nil {
		return nil, err
	}

	t := newToggles(features, o)
	runHealthChecks(features, o.healthHandler, t.log)
	wireResets(features, t)

	t.log.Debug("toggle set created", slog.Int("features", len(t.names)))
	return t, nil
}

func newToggles(features []Feature, o options) *Toggles {
	id := uuid.NewString()
	t := &Toggles{
		id:       id,
		features: make(map[string]Feature, len(features)),
		names:    make([]string, 0, len(features)),
		deps:     newRegistry(o.expected),
		log:      o.logger.With(logger.Component("feature"), logger.ToggleSetID(id)),
		cache:    make(map[string]bool, len(features)),
	}
	for _, f := range features {
		f.Dependencies = slices.Clone(f.Dependencies)
		t.features[f.Name] = f
		t.names = append(t.names, f.Name)
	}
	return t
}

// ID returns the identifier assigned to the toggle set at construction.
func (t *Toggles) ID() string {
	return t.id
}

// Names returns the feature names in construction order.
func (t *Toggles) Names() []string {
	return slices.Clone(t.names)
}

// Get returns the value of the named feature.
// The feature's test runs at most once per cache lifetime; concurrent
// callers for the same uncached feature share one evaluation.
//
// A test may read other features through Get, but never its own: the call
// waits on the evaluation it is part of and blocks forever. Cycles between
// features block the same way.
func (t *Toggles) Get(name string) (bool, error) {
	if v, ok := t.cached(name); ok {
		return v, nil
	}

	f, ok := t.features[name]
	if !ok {
		return false, errToggleNotDefined(name)
	}

	v, err, _ := t.flight.Do(name, func() (any, error) {
		// another flight may have finished between the cache miss and Do
		if v, ok := t.cached(name); ok {
			return v, nil
		}
		return t.evaluate(f)
	})
	if err != nil {
		return false, err
	}
	return v.(bool), nil
}

func (t *Toggles) evaluate(f Feature) (bool, error) {
	deps, err := t.deps.resolve(f.Name, f.Dependencies)
	if err != nil {
		return false, err
	}

	value := Truthy(f.Test(deps...))

	t.mu.Lock()
	t.cache[f.Name] = value
	t.mu.Unlock()

	t.log.Debug("feature evaluated", logger.Feature(f.Name), slog.Bool("value", value))
	return value, nil
}

func (t *Toggles) cached(name string) (bool, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	v, ok := t.cache[name]
	return v, ok
}

// Invalidate drops the memoized value of the named feature so the next
// Get re-runs its test. Unknown or uncached names are a no-op.
func (t *Toggles) Invalidate(name string) {
	t.mu.Lock()
	_, ok := t.cache[name]
	delete(t.cache, name)
	t.mu.Unlock()

	if ok {
		t.log.Debug("feature invalidated", logger.Feature(name))
	}
}

// DefineDependency binds a value that features declaring name receive
// when they are evaluated. Each name can be bound once.
func (t *Toggles) DefineDependency(name string, value any) error {
	if err := t.deps.bind(name, value); err != nil {
		return err
	}
	t.log.Debug("dependency defined", logger.Dependency(name))
	return nil
}

// Values returns the attribute-style read view of the toggle set.
func (t *Toggles) Values() View {
	return View{t: t}
}
