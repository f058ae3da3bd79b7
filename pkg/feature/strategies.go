package feature

import (
	"hash/fnv"
	"slices"
)

// TargetCriteria defines targeting criteria for a Targeted test.
type TargetCriteria struct {
	UserIDs    []string `json:"user_ids,omitempty" yaml:"user_ids,omitempty"`
	Groups     []string `json:"groups,omitempty" yaml:"groups,omitempty"`
	Percentage *int     `json:"percentage,omitempty" yaml:"percentage,omitempty"`
	// AllowList always takes precedence over other criteria except DenyList
	AllowList []string `json:"allow_list,omitempty" yaml:"allow_list,omitempty"`
	// DenyList always takes precedence over all other criteria
	DenyList []string `json:"deny_list,omitempty" yaml:"deny_list,omitempty"`
}

// AlwaysOn returns a test that enables the feature unconditionally.
func AlwaysOn() TestFunc {
	return func(...any) any { return true }
}

// AlwaysOff returns a test that disables the feature unconditionally.
func AlwaysOff() TestFunc {
	return func(...any) any { return false }
}

// Targeted returns a test that enables the feature for specific users,
// groups or a percentage of users.
//
// The feature must declare the user ID as its first dependency (a string)
// and may declare the user's groups ([]string) as the second one.
func Targeted(criteria TargetCriteria) TestFunc {
	return func(deps ...any) any {
		userID := stringArg(deps, 0)

		// Check deny list first (always takes precedence)
		if isInDenyList(criteria, userID) {
			return false
		}

		if userID != "" && (slices.Contains(criteria.AllowList, userID) || slices.Contains(criteria.UserIDs, userID)) {
			return true
		}

		if isInTargetedGroup(criteria, stringsArg(deps, 1)) {
			return true
		}

		if criteria.Percentage != nil {
			return inPercentage(*criteria.Percentage, userID)
		}

		return false
	}
}

// isInDenyList checks if user is in the deny list
func isInDenyList(criteria TargetCriteria, userID string) bool {
	if len(criteria.DenyList) == 0 {
		return false
	}

	// If we can't determine the user ID and there's a deny list, fail safe
	if userID == "" {
		return true
	}

	return slices.Contains(criteria.DenyList, userID)
}

func isInTargetedGroup(criteria TargetCriteria, groups []string) bool {
	if len(criteria.Groups) == 0 {
		return false
	}
	for _, g := range groups {
		if slices.Contains(criteria.Groups, g) {
			return true
		}
	}
	return false
}

// inPercentage places the user in a stable bucket with FNV-1a so the same
// user always gets the same answer.
func inPercentage(percentage int, userID string) bool {
	switch {
	case percentage <= 0:
		return false
	case percentage >= 100:
		return true
	case userID == "":
		return false
	}

	hash := fnv.New32a()
	hash.Write([]byte(userID))
	return int(hash.Sum32()%100) < percentage
}

// Environment returns a test that enables the feature in the listed
// environments. The environment name is the feature's first dependency.
func Environment(environments ...string) TestFunc {
	return func(deps ...any) any {
		env := stringArg(deps, 0)
		return env != "" && slices.Contains(environments, env)
	}
}

// All returns a test that is true when every test is truthy.
// Each test receives the same dependency values.
func All(tests ...TestFunc) TestFunc {
	return func(deps ...any) any {
		if len(tests) == 0 {
			return false
		}
		for _, test := range tests {
			if !Truthy(test(deps...)) {
				return false
			}
		}
		return true
	}
}

// Any returns a test that is true when at least one test is truthy.
func Any(tests ...TestFunc) TestFunc {
	return func(deps ...any) any {
		for _, test := range tests {
			if Truthy(test(deps...)) {
				return true
			}
		}
		return false
	}
}

func stringArg(deps []any, i int) string {
	if i >= len(deps) {
		return ""
	}
	s, _ := deps[i].(string)
	return s
}

func stringsArg(deps []any, i int) []string {
	if i >= len(deps) {
		return nil
	}
	switch v := deps[i].(type) {
	case []string:
		return v
	case []any:
		// decoded JSON arrays
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}
