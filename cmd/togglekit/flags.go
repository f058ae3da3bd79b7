package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"slices"
	"strings"
	"time"
)

var errUsage = errors.New("invalid arguments")

// dependency is a name=value pair given with -dep.
type dependency struct {
	name  string
	value any
}

// dependencies collects repeated -dep flags. Values are decoded as JSON
// when possible and kept as plain strings otherwise, so -dep lang=de and
// -dep lang='"de"' bind the same value.
type dependencies []dependency

func (d *dependencies) String() string {
	parts := make([]string, 0, len(*d))
	for _, dep := range *d {
		parts = append(parts, fmt.Sprintf("%s=%v", dep.name, dep.value))
	}
	return strings.Join(parts, ",")
}

func (d *dependencies) Set(arg string) error {
	name, raw, ok := strings.Cut(arg, "=")
	name = strings.TrimSpace(name)
	if !ok || name == "" {
		return fmt.Errorf("dependency must be name=value, got %q", arg)
	}

	var value any
	if err := json.Unmarshal([]byte(raw), &value); err != nil {
		value = raw
	}
	*d = append(*d, dependency{name: name, value: value})
	return nil
}

// options are the parsed command line arguments.
type options struct {
	featuresFile string
	snapshotFile string
	deps         dependencies
	only         []string
	publish      []string
	watch        bool
	interval     time.Duration
	strict       bool
}

func parseFlags(args []string, featuresFile, snapshotFile string, stderr io.Writer) (options, error) {
	var (
		o       options
		only    string
		publish string
	)

	fs := flag.NewFlagSet("togglekit", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&o.featuresFile, "features", featuresFile, "YAML feature file")
	fs.StringVar(&o.snapshotFile, "snapshot", snapshotFile, "JSON snapshot to replay")
	fs.Var(&o.deps, "dep", "dependency binding name=json, may be repeated")
	fs.StringVar(&only, "only", "", "comma separated features to print")
	fs.StringVar(&publish, "publish", "", "publish a reset for comma separated features (* for all) and exit")
	fs.BoolVar(&o.watch, "watch", false, "keep running, apply Redis resets and print changed values")
	fs.DurationVar(&o.interval, "interval", 2*time.Second, "re-evaluation interval in watch mode")
	fs.BoolVar(&o.strict, "strict", false, "fail when a feature reports a health alert")

	if err := fs.Parse(args); err != nil {
		return options{}, errors.Join(errUsage, err)
	}
	if fs.NArg() > 0 {
		return options{}, errors.Join(errUsage, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " ")))
	}

	o.only = splitList(only)
	o.publish = splitList(publish)

	if publish == "" {
		switch {
		case o.featuresFile == "" && o.snapshotFile == "":
			return options{}, errors.Join(errUsage, errors.New("one of -features or -snapshot is required"))
		case o.featuresFile != "" && o.snapshotFile != "":
			return options{}, errors.Join(errUsage, errors.New("-features and -snapshot are mutually exclusive"))
		}
	}
	if o.watch && o.interval <= 0 {
		return options{}, errors.Join(errUsage, errors.New("-interval must be positive"))
	}
	return o, nil
}

// splitList splits a comma separated list, dropping blanks and duplicates.
func splitList(s string) []string {
	var out []string
	for item := range strings.SplitSeq(s, ",") {
		item = strings.TrimSpace(item)
		if item != "" && !slices.Contains(out, item) {
			out = append(out, item)
		}
	}
	return out
}
