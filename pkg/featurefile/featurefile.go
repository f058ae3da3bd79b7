package featurefile

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/togglekit/pkg/feature"
	"github.com/dmitrymomot/togglekit/pkg/logger"
	"github.com/dmitrymomot/togglekit/pkg/reset"
)

// Set is a feature list decoded from a feature file, together with the
// tickers and file watchers its reset hooks depend on.
type Set struct {
	Features []feature.Feature

	ctx      context.Context
	cancel   context.CancelFunc
	watchers []*reset.FileWatcher
}

// Close stops the tickers and file watchers started for the set.
func (s *Set) Close() error {
	s.cancel()
	var errs []error
	for _, w := range s.watchers {
		errs = append(errs, w.Close())
	}
	return errors.Join(errs...)
}

// Load reads and parses the feature file at path.
func Load(path string, opts ...Option) (*Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Join(ErrReadFile, err)
	}
	opts = append([]Option{WithBaseDir(filepath.Dir(path))}, opts...)
	return Parse(data, opts...)
}

// Parse decodes a YAML feature document into features ready for feature.New.
// Expressions are compiled once here. Tickers and watchers run until the
// context from WithContext is done or Set.Close is called.
func Parse(data []byte, opts ...Option) (*Set, error) {
	o := applyOptions(opts)

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, errors.Join(ErrInvalidDocument, err)
	}
	if len(doc.Features) == 0 {
		return nil, errors.Join(ErrInvalidDocument, errors.New("no features defined"))
	}

	ctx, cancel := context.WithCancel(o.ctx)
	set := &Set{
		Features: make([]feature.Feature, 0, len(doc.Features)),
		ctx:      ctx,
		cancel:   cancel,
	}
	for i, def := range doc.Features {
		f, err := set.build(def, o)
		if err != nil {
			_ = set.Close()
			return nil, fmt.Errorf("feature #%d %q: %w", i, def.Name, err)
		}
		set.Features = append(set.Features, f)
	}
	return set, nil
}

func (s *Set) build(def Definition, o options) (feature.Feature, error) {
	if def.Name == "" {
		return feature.Feature{}, errors.Join(ErrInvalidDocument, errors.New("name is required"))
	}

	test, err := buildTest(def, o.logger)
	if err != nil {
		return feature.Feature{}, err
	}

	f := feature.Feature{
		Name:         def.Name,
		Test:         test,
		Dependencies: def.Dependencies,
	}

	if def.Expires != nil {
		f.Health = expiryProbe(*def.Expires, o.clock)
	}

	var hooks []feature.ResetFunc
	if def.ResetEvery > 0 {
		hooks = append(hooks, reset.Every(s.ctx, def.ResetEvery))
	}
	if def.Watch != "" {
		path := def.Watch
		if !filepath.IsAbs(path) && o.dir != "" {
			path = filepath.Join(o.dir, path)
		}
		w, err := reset.WatchFile(s.ctx, path, reset.WithLogger(o.logger))
		if err != nil {
			return feature.Feature{}, err
		}
		s.watchers = append(s.watchers, w)
		hooks = append(hooks, w.Hook())
	}
	if o.bus != nil {
		hooks = append(hooks, o.bus.Subscribe(def.Name))
	}
	if len(hooks) > 0 {
		f.ResetOn = func(invalidate func()) {
			for _, hook := range hooks {
				hook(invalidate)
			}
		}
	}

	return f, nil
}

func buildTest(def Definition, log *slog.Logger) (feature.TestFunc, error) {
	sources := 0
	for _, given := range []bool{def.Expr != "", def.Value != nil, def.Targeting != nil, len(def.Environments) > 0} {
		if given {
			sources++
		}
	}
	if sources != 1 {
		return nil, errors.Join(ErrInvalidDocument, errors.New("exactly one of expr, value, targeting or environments is required"))
	}

	switch {
	case def.Value != nil:
		if *def.Value {
			return feature.AlwaysOn(), nil
		}
		return feature.AlwaysOff(), nil
	case def.Targeting != nil:
		return feature.Targeted(*def.Targeting), nil
	case len(def.Environments) > 0:
		return feature.Environment(def.Environments...), nil
	}

	program, err := expr.Compile(def.Expr, expr.AllowUndefinedVariables())
	if err != nil {
		return nil, errors.Join(ErrCompileExpression, err)
	}
	return exprTest(def.Name, def.Dependencies, program, log), nil
}

// exprTest binds dependency values by name and runs the program. Runtime
// failures evaluate to false.
func exprTest(name string, deps []string, program *vm.Program, log *slog.Logger) feature.TestFunc {
	return func(values ...any) any {
		env := make(map[string]any, len(deps))
		for i, dep := range deps {
			if i < len(values) {
				env[dep] = values[i]
			}
		}
		out, err := expr.Run(program, env)
		if err != nil {
			log.Warn("feature expression failed", logger.Feature(name), logger.Error(err))
			return false
		}
		return out
	}
}

func expiryProbe(expires time.Time, clock func() time.Time) feature.HealthFunc {
	return func() any {
		if clock().After(expires) {
			return fmt.Sprintf("expired on %s", expires.Format(time.DateOnly))
		}
		return nil
	}
}
