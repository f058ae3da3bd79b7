package feature

import (
	"encoding/json"
	"maps"
	"slices"

	"github.com/tidwall/gjson"
)

// ToJSON evaluates the selected features and returns their values.
//
// filter may be:
//   - nil: every feature
//   - []string: the listed features; an empty list selects every feature
//   - func(string) bool or FilterFunc: features whose name satisfies it
//
// Any other filter fails with ErrUnsupportedFilterType. Selected features
// are memoized as a side effect; the first evaluation error is returned.
func (t *Toggles) ToJSON(filter any) (Snapshot, error) {
	match, err := filterFor(filter)
	if err != nil {
		return Snapshot{}, err
	}

	values := make(map[string]bool)
	for _, name := range t.names {
		if !match(name) {
			continue
		}
		v, err := t.Get(name)
		if err != nil {
			return Snapshot{}, err
		}
		values[name] = v
	}
	return Snapshot{Values: values}, nil
}

func filterFor(filter any) (FilterFunc, error) {
	switch f := filter.(type) {
	case nil:
		return func(string) bool { return true }, nil
	case []string:
		if len(f) == 0 {
			return func(string) bool { return true }, nil
		}
		allowed := make(map[string]struct{}, len(f))
		for _, name := range f {
			allowed[name] = struct{}{}
		}
		return func(name string) bool {
			_, ok := allowed[name]
			return ok
		}, nil
	case FilterFunc:
		if f == nil {
			return nil, errUnsupportedFilterType(filter)
		}
		return f, nil
	case func(string) bool:
		if f == nil {
			return nil, errUnsupportedFilterType(filter)
		}
		return f, nil
	default:
		return nil, errUnsupportedFilterType(filter)
	}
}

// MarshalJSON encodes every feature value as {"values": {...}}.
func (t *Toggles) MarshalJSON() ([]byte, error) {
	snapshot, err := t.ToJSON(nil)
	if err != nil {
		return nil, err
	}
	return json.Marshal(snapshot)
}

// FromSnapshot builds a replay toggle set whose features return the stored
// values. Values are coerced with Truthy on read, not here. The replay set
// has no dependencies, health probes or reset hooks.
func FromSnapshot(s RawSnapshot, opts ...Option) (*Toggles, error) {
	features := make([]Feature, 0, len(s.Values))
	for _, name := range slices.Sorted(maps.Keys(s.Values)) {
		raw := s.Values[name]
		if name == "" {
			return nil, errInvalidSnapshot("feature name cannot be empty")
		}
		features = append(features, Feature{
			Name: name,
			Test: func(...any) any { return raw },
		})
	}

	o := applyOptions(opts)
	return newToggles(features, o), nil
}

// FromJSON parses a {"values": {...}} document and builds a replay toggle
// set from it, see FromSnapshot.
func FromJSON(data []byte, opts ...Option) (*Toggles, error) {
	if !gjson.ValidBytes(data) {
		return nil, errInvalidSnapshot("document is not valid JSON")
	}

	values := gjson.GetBytes(data, "values")
	if !values.IsObject() {
		return nil, errInvalidSnapshot(`"values" must be an object`)
	}

	raw := make(map[string]any)
	values.ForEach(func(key, value gjson.Result) bool {
		raw[key.String()] = value.Value()
		return true
	})

	return FromSnapshot(RawSnapshot{Values: raw}, opts...)
}
