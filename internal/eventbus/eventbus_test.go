package eventbus

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Завершение сервера находит Close через утверждение типа,
// поэтому сигнатура закреплена здесь
var _ interface{ Close() error } = (*JetStreamBus)(nil)

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("условие не выполнилось за отведенное время")
}

func TestMemoryBusDelivery(t *testing.T) {
	bus := NewMemoryBus(16)
	ctx := context.Background()

	var received int64
	_, err := bus.Subscribe(ctx, Filter{Types: []string{EventBlockFall}}, func(ctx context.Context, ev *Envelope) {
		atomic.AddInt64(&received, 1)
	})
	require.NoError(t, err)

	require.NoError(t, bus.Publish(ctx, NewEnvelope("world", EventBlockFall, 3, map[string]interface{}{"x": 1})))
	require.NoError(t, bus.Publish(ctx, NewEnvelope("world", EventEntitySettle, 3, nil)))

	waitFor(t, func() bool { return atomic.LoadInt64(&received) == 1 })

	// Событие другого типа не должно дойти до подписчика
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, int64(1), atomic.LoadInt64(&received))
}

func TestMemoryBusFilterBySource(t *testing.T) {
	bus := NewMemoryBus(16)
	ctx := context.Background()

	var received int64
	_, err := bus.Subscribe(ctx, Filter{Sources: []string{"world"}}, func(ctx context.Context, ev *Envelope) {
		atomic.AddInt64(&received, 1)
	})
	require.NoError(t, err)

	require.NoError(t, bus.Publish(ctx, NewEnvelope("world", EventBlockFall, 3, nil)))
	require.NoError(t, bus.Publish(ctx, NewEnvelope("storage", EventWorldSaved, 3, nil)))

	waitFor(t, func() bool { return atomic.LoadInt64(&received) == 1 })
}

func TestMemoryBusUnsubscribe(t *testing.T) {
	bus := NewMemoryBus(16)
	ctx := context.Background()

	var received int64
	sub, err := bus.Subscribe(ctx, Filter{}, func(ctx context.Context, ev *Envelope) {
		atomic.AddInt64(&received, 1)
	})
	require.NoError(t, err)

	require.NoError(t, bus.Publish(ctx, NewEnvelope("world", EventBlockFall, 3, nil)))
	waitFor(t, func() bool { return atomic.LoadInt64(&received) == 1 })

	sub.Unsubscribe()

	require.NoError(t, bus.Publish(ctx, NewEnvelope("world", EventBlockFall, 3, nil)))
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, int64(1), atomic.LoadInt64(&received))
}

func TestMemoryBusDropsLowPriorityWhenFull(t *testing.T) {
	// Шина без подписчиков и с крошечным буфером: dispatchLoop успевает
	// вычитывать, поэтому заполняем его заведомо быстрее
	bus := NewMemoryBus(1)
	ctx := context.Background()

	for i := 0; i < 200; i++ {
		require.NoError(t, bus.Publish(ctx, NewEnvelope("world", EventBlockFall, 1, nil)))
	}

	stats := bus.Metrics()
	assert.Equal(t, uint64(200), stats.Published+stats.Dropped)
}

func TestEnvelopeFields(t *testing.T) {
	ev := NewEnvelope("world", EventBlockFall, 5, map[string]interface{}{"block": "core:sand"})

	assert.NotEmpty(t, ev.ID)
	assert.Equal(t, "world", ev.Source)
	assert.Equal(t, EventBlockFall, ev.EventType)
	assert.Equal(t, 5, ev.Priority)
	assert.Contains(t, string(ev.Payload), "core:sand")
	assert.WithinDuration(t, time.Now(), ev.Timestamp, time.Second)
}
