// Package featurefile loads feature definitions from YAML.
//
// A document lists features, each computed from exactly one source: a
// constant value, an expr-lang expression over the feature's dependencies,
// targeting criteria or a list of environments.
//
//	features:
//	  - name: new-checkout
//	    dependencies: [country, plan]
//	    expr: country == "DE" && plan in ["pro", "team"]
//	    expires: 2026-12-31
//	    reset_every: 5m
//	  - name: kill-switch
//	    value: false
//	    watch: overrides/kill-switch
//
// Usage:
//
//	set, err := featurefile.Load("features.yaml", featurefile.WithContext(ctx))
//	if err != nil {
//		return err
//	}
//	defer set.Close()
//
//	toggles, err := feature.New(set.Features)
//
// Expired features report "expired on <date>" through their health probe.
// reset_every and watch become reset hooks; WithBus additionally subscribes
// every feature to a reset.Bus under its own name.
package featurefile
