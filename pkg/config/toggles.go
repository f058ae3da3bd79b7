package config

import (
	"slices"
	"strings"
)

// Toggles is the environment configuration of the togglekit command.
type Toggles struct {
	AppEnv   string `env:"APP_ENV" envDefault:"development"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	// LogFormat overrides the environment default ("json" or "text").
	LogFormat string `env:"LOG_FORMAT"`

	FeaturesFile string `env:"TOGGLES_FEATURES_FILE"`
	SnapshotFile string `env:"TOGGLES_SNAPSHOT_FILE"`

	// ExpectedDependencies is the allow-list of dependency names. It only
	// applies when non-empty or when RestrictDependencies is set.
	ExpectedDependencies []string `env:"TOGGLES_EXPECTED_DEPENDENCIES" envSeparator:","`
	RestrictDependencies bool     `env:"TOGGLES_RESTRICT_DEPENDENCIES"`

	// RedisURL enables the Redis reset channel when set.
	RedisURL     string `env:"REDIS_URL"`
	ResetChannel string `env:"TOGGLES_RESET_CHANNEL" envDefault:"togglekit:reset"`
}

// AllowList returns the expected dependencies in the form accepted by
// feature.SetExpectedDependencies: nil when unrestricted.
func (c Toggles) AllowList() []string {
	if len(c.ExpectedDependencies) == 0 && !c.RestrictDependencies {
		return nil
	}
	list := make([]string, 0, len(c.ExpectedDependencies))
	for _, name := range c.ExpectedDependencies {
		name = strings.TrimSpace(name)
		if name != "" && !slices.Contains(list, name) {
			list = append(list, name)
		}
	}
	return list
}
