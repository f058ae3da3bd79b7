package feature_test

import (
	"fmt"
	"testing"

	"github.com/dmitrymomot/togglekit/pkg/feature"
)

func BenchmarkToggles_Get(b *testing.B) {
	percentage := 50
	toggles, err := feature.New([]feature.Feature{
		{Name: "feature-1", Test: feature.AlwaysOn()},
		{Name: "feature-2", Dependencies: []string{"user"}, Test: feature.Targeted(feature.TargetCriteria{Percentage: &percentage})},
	}, feature.WithExpectedDependencies(nil))
	if err != nil {
		b.Fatal(err)
	}
	if err := toggles.DefineDependency("user", "user-123"); err != nil {
		b.Fatal(err)
	}

	b.Run("cached", func(b *testing.B) {
		for b.Loop() {
			_, _ = toggles.Get("feature-1")
		}
	})

	b.Run("invalidated", func(b *testing.B) {
		for b.Loop() {
			toggles.Invalidate("feature-2")
			_, _ = toggles.Get("feature-2")
		}
	})

	b.Run("parallel", func(b *testing.B) {
		b.RunParallel(func(pb *testing.PB) {
			for pb.Next() {
				_, _ = toggles.Get("feature-1")
			}
		})
	})
}

func BenchmarkToggles_ToJSON(b *testing.B) {
	for _, n := range []int{10, 100} {
		features := make([]feature.Feature, n)
		for i := range features {
			features[i] = feature.Feature{Name: fmt.Sprintf("feature-%d", i), Test: feature.AlwaysOn()}
		}
		toggles, err := feature.New(features)
		if err != nil {
			b.Fatal(err)
		}

		b.Run(fmt.Sprintf("features-%d", n), func(b *testing.B) {
			for b.Loop() {
				_, _ = toggles.ToJSON(nil)
			}
		})
	}
}
