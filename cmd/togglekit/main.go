// Command togglekit evaluates a feature file or replays a snapshot and
// prints the feature values as JSON.
//
//	togglekit -features features.yaml -dep country=DE -dep beta=true
//	togglekit -snapshot values.json -only new-checkout,dark-mode
//	togglekit -features features.yaml -watch
//	togglekit -publish new-checkout
//
// Configuration is read from the environment, see config.Toggles. With
// REDIS_URL set, -watch applies reset messages from TOGGLES_RESET_CHANNEL
// and -publish sends them.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/dmitrymomot/togglekit/pkg/config"
	"github.com/dmitrymomot/togglekit/pkg/feature"
	"github.com/dmitrymomot/togglekit/pkg/featurefile"
	"github.com/dmitrymomot/togglekit/pkg/logger"
	"github.com/dmitrymomot/togglekit/pkg/redis"
	"github.com/dmitrymomot/togglekit/pkg/reset"
)

var (
	errUnhealthy     = errors.New("unhealthy features")
	errRedisRequired = errors.New("REDIS_URL is required")
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	switch {
	case err == nil, errors.Is(err, flag.ErrHelp):
		return
	case errors.Is(err, errUsage):
		fmt.Fprintf(os.Stderr, "togglekit: %v\n", err)
		os.Exit(2)
	default:
		fmt.Fprintf(os.Stderr, "togglekit: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	var cfg config.Toggles
	if err := config.Load(&cfg); err != nil {
		return err
	}

	logOpts := []logger.Option{
		logger.WithEnvironment(cfg.AppEnv, "togglekit"),
		logger.WithLevelName(cfg.LogLevel),
		logger.WithOutput(stderr),
	}
	if cfg.LogFormat != "" {
		logOpts = append(logOpts, logger.WithFormat(logger.Format(cfg.LogFormat)))
	}
	log := logger.New(logOpts...)

	o, err := parseFlags(args, cfg.FeaturesFile, cfg.SnapshotFile, stderr)
	if err != nil {
		return err
	}

	if len(o.publish) > 0 {
		return publish(ctx, cfg, o.publish, log)
	}

	feature.SetExpectedDependencies(cfg.AllowList())
	var unhealthy []string
	feature.OnHealthAlert(func(name string, _ any) {
		unhealthy = append(unhealthy, name)
	})
	defer feature.OnHealthAlert(nil)

	bus := reset.NewBus()
	toggles, closeSet, err := load(ctx, o, bus, log)
	if err != nil {
		return err
	}
	defer func() { _ = closeSet() }()

	if o.strict && len(unhealthy) > 0 {
		return fmt.Errorf("%w: %s", errUnhealthy, strings.Join(unhealthy, ", "))
	}

	for _, dep := range o.deps {
		if err := toggles.DefineDependency(dep.name, dep.value); err != nil {
			return err
		}
	}

	snapshot, err := toggles.ToJSON(o.only)
	if err != nil {
		return err
	}
	if err := json.NewEncoder(stdout).Encode(snapshot); err != nil {
		return err
	}
	if !o.watch {
		return nil
	}
	return watch(ctx, cfg, o, toggles, bus, snapshot, stdout, log)
}

// load builds the toggle set from the feature file or the snapshot. The
// returned close function releases the feature file's watchers.
func load(ctx context.Context, o options, bus *reset.Bus, log *slog.Logger) (*feature.Toggles, func() error, error) {
	if o.snapshotFile != "" {
		data, err := os.ReadFile(o.snapshotFile)
		if err != nil {
			return nil, nil, fmt.Errorf("read snapshot: %w", err)
		}
		toggles, err := feature.FromJSON(data, feature.WithLogger(log))
		if err != nil {
			return nil, nil, err
		}
		return toggles, func() error { return nil }, nil
	}

	set, err := featurefile.Load(o.featuresFile,
		featurefile.WithContext(ctx),
		featurefile.WithLogger(log),
		featurefile.WithBus(bus),
	)
	if err != nil {
		return nil, nil, err
	}
	toggles, err := feature.New(set.Features, feature.WithLogger(log))
	if err != nil {
		_ = set.Close()
		return nil, nil, err
	}
	return toggles, set.Close, nil
}

// watch re-evaluates the selected features every interval and prints the
// snapshot whenever it changed, until ctx is done.
func watch(ctx context.Context, cfg config.Toggles, o options, toggles *feature.Toggles, bus *reset.Bus, last feature.Snapshot, stdout io.Writer, log *slog.Logger) error {
	if cfg.RedisURL != "" {
		client, err := connect(ctx, log)
		if err != nil {
			return err
		}
		defer client.Close()

		pubsub, err := reset.SubscribeRedis(ctx, client, cfg.ResetChannel, bus, reset.WithLogger(log))
		if err != nil {
			return err
		}
		defer pubsub.Close()
		log.Info("listening for reset messages", logger.Channel(cfg.ResetChannel), slog.Int("features", bus.Len()))
	}

	ticker := time.NewTicker(o.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			snapshot, err := toggles.ToJSON(o.only)
			if err != nil {
				return err
			}
			if maps.Equal(snapshot.Values, last.Values) {
				continue
			}
			if err := json.NewEncoder(stdout).Encode(snapshot); err != nil {
				return err
			}
			last = snapshot
		}
	}
}

func publish(ctx context.Context, cfg config.Toggles, names []string, log *slog.Logger) error {
	if cfg.RedisURL == "" {
		return errors.Join(errUsage, errRedisRequired)
	}
	client, err := connect(ctx, log)
	if err != nil {
		return err
	}
	defer client.Close()

	if err := redis.PublishReset(ctx, client, cfg.ResetChannel, names...); err != nil {
		return err
	}
	log.Info("reset published", logger.Channel(cfg.ResetChannel), slog.Any("features", names))
	return nil
}

// connect opens the Redis connection described by the REDIS_* variables.
func connect(ctx context.Context, log *slog.Logger) (*goredis.Client, error) {
	var cfg redis.Config
	if err := config.Load(&cfg); err != nil {
		return nil, err
	}
	client, err := redis.Connect(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if err := redis.Healthcheck(client)(ctx); err != nil {
		_ = client.Close()
		return nil, err
	}
	log.Debug("redis connected", logger.Component("redis"))
	return client, nil
}
