package reset_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/togglekit/pkg/feature"
	"github.com/dmitrymomot/togglekit/pkg/reset"
)

func TestRoute(t *testing.T) {
	t.Parallel()

	bus := reset.NewBus()
	var a, b atomic.Int32
	toggles, err := feature.New([]feature.Feature{
		{Name: "a", Test: countingTest(&a), ResetOn: bus.Subscribe("a")},
		{Name: "b", Test: countingTest(&b), ResetOn: bus.Subscribe("b")},
	})
	require.NoError(t, err)
	_, err = toggles.ToJSON(nil)
	require.NoError(t, err)

	msgs := make(chan *goredis.Message, 4)
	done := make(chan struct{})
	go func() {
		defer close(done)
		reset.Route(context.Background(), msgs, bus)
	}()

	msgs <- &goredis.Message{Channel: "togglekit:reset", Payload: " a "}
	msgs <- nil
	msgs <- &goredis.Message{Channel: "togglekit:reset", Payload: ""}
	close(msgs)

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("route did not stop after the channel was closed")
	}

	_, err = toggles.ToJSON(nil)
	require.NoError(t, err)
	assert.EqualValues(t, 2, a.Load())
	assert.EqualValues(t, 1, b.Load())
}

func TestRoute_ResetAll(t *testing.T) {
	t.Parallel()

	bus := reset.NewBus()
	var invalidations atomic.Int32
	bus.Subscribe("a")(func() { invalidations.Add(1) })
	bus.Subscribe("b")(func() { invalidations.Add(1) })

	ctx, cancel := context.WithCancel(context.Background())
	msgs := make(chan *goredis.Message, 1)
	done := make(chan struct{})
	go func() {
		defer close(done)
		reset.Route(ctx, msgs, bus)
	}()

	msgs <- &goredis.Message{Payload: reset.All}
	assert.Eventually(t, func() bool { return invalidations.Load() == 2 }, time.Second, time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("route did not stop after cancel")
	}
}
