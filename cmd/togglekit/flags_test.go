package main

import (
	"errors"
	"flag"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDependencies_Set(t *testing.T) {
	t.Parallel()

	tests := []struct {
		arg   string
		name  string
		value any
	}{
		{arg: "lang=de", name: "lang", value: "de"},
		{arg: `lang="de"`, name: "lang", value: "de"},
		{arg: "beta=true", name: "beta", value: true},
		{arg: "seats=12", name: "seats", value: float64(12)},
		{arg: `groups=["staff","beta"]`, name: "groups", value: []any{"staff", "beta"}},
		{arg: "empty=", name: "empty", value: ""},
		{arg: "expr=a=b", name: "expr", value: "a=b"},
		{arg: " user =null", name: "user", value: nil},
	}
	for _, tt := range tests {
		t.Run(tt.arg, func(t *testing.T) {
			t.Parallel()
			var deps dependencies
			require.NoError(t, deps.Set(tt.arg))
			require.Len(t, deps, 1)
			assert.Equal(t, tt.name, deps[0].name)
			assert.Equal(t, tt.value, deps[0].value)
		})
	}

	t.Run("invalid", func(t *testing.T) {
		t.Parallel()
		var deps dependencies
		assert.Error(t, deps.Set("lang"))
		assert.Error(t, deps.Set("=de"))
		assert.Empty(t, deps)
	})
}

func TestParseFlags(t *testing.T) {
	t.Parallel()

	t.Run("defaults from configuration", func(t *testing.T) {
		t.Parallel()
		o, err := parseFlags(nil, "features.yaml", "", io.Discard)
		require.NoError(t, err)
		assert.Equal(t, "features.yaml", o.featuresFile)
		assert.Equal(t, 2*time.Second, o.interval)
		assert.False(t, o.watch)
	})

	t.Run("repeated dependencies and lists", func(t *testing.T) {
		t.Parallel()
		o, err := parseFlags([]string{
			"-snapshot", "values.json",
			"-dep", "lang=de",
			"-dep", "beta=true",
			"-only", "a, b,,a",
		}, "", "", io.Discard)
		require.NoError(t, err)
		assert.Equal(t, "values.json", o.snapshotFile)
		assert.Len(t, o.deps, 2)
		assert.Equal(t, []string{"a", "b"}, o.only)
	})

	t.Run("publish needs no source", func(t *testing.T) {
		t.Parallel()
		o, err := parseFlags([]string{"-publish", "*"}, "", "", io.Discard)
		require.NoError(t, err)
		assert.Equal(t, []string{"*"}, o.publish)
	})

	t.Run("help", func(t *testing.T) {
		t.Parallel()
		_, err := parseFlags([]string{"-h"}, "", "", io.Discard)
		assert.True(t, errors.Is(err, flag.ErrHelp))
	})

	invalid := map[string][]string{
		"no source":      nil,
		"both sources":   {"-features", "f.yaml", "-snapshot", "s.json"},
		"positional":     {"-features", "f.yaml", "extra"},
		"bad dependency": {"-features", "f.yaml", "-dep", "lang"},
		"zero interval":  {"-features", "f.yaml", "-watch", "-interval", "0s"},
		"unknown flag":   {"-features", "f.yaml", "-verbose"},
	}
	for name, args := range invalid {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			_, err := parseFlags(args, "", "", io.Discard)
			assert.ErrorIs(t, err, errUsage)
		})
	}
}

func TestSplitList(t *testing.T) {
	t.Parallel()
	assert.Nil(t, splitList(""))
	assert.Nil(t, splitList(" , "))
	assert.Equal(t, []string{"a", "b"}, splitList("a,b,a"))
}
