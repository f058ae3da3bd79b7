package featurefile

import (
	"time"

	"github.com/dmitrymomot/togglekit/pkg/feature"
)

// Document is the YAML form of a feature set.
type Document struct {
	Features []Definition `yaml:"features"`
}

// Definition declares one feature. Exactly one of Expr, Value, Targeting
// or Environments selects how the feature is computed.
type Definition struct {
	Name         string   `yaml:"name"`
	Description  string   `yaml:"description,omitempty"`
	Dependencies []string `yaml:"dependencies,omitempty"`

	// Expr is an expr-lang expression evaluated with every dependency
	// available as a variable of the same name.
	Expr         string                  `yaml:"expr,omitempty"`
	Value        *bool                   `yaml:"value,omitempty"`
	Targeting    *feature.TargetCriteria `yaml:"targeting,omitempty"`
	Environments []string                `yaml:"environments,omitempty"`

	// Expires turns the feature unhealthy once the date has passed.
	Expires *time.Time `yaml:"expires,omitempty"`
	// ResetEvery invalidates the memoized value periodically.
	ResetEvery time.Duration `yaml:"reset_every,omitempty"`
	// Watch invalidates the memoized value whenever the file changes.
	// Relative paths are resolved against the feature file's directory.
	Watch string `yaml:"watch,omitempty"`
}
