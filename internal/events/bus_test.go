package events

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLoadingBus_Name(t *testing.T) {
	assert.Equal(t, "authStateChange", NewLoadingBus().Name())
}

func TestPublish_DeliversInSubscriptionOrder(t *testing.T) {
	b := NewBus[int]("test")
	var got []string

	b.Subscribe(func(v int) { got = append(got, "first") })
	b.Subscribe(func(v int) { got = append(got, "second") })

	b.Publish(1)
	assert.Equal(t, []string{"first", "second"}, got)
}

func TestUnsubscribe_StopsDeliveryAndIsIdempotent(t *testing.T) {
	b := NewLoadingBus()
	var a, c []bool

	unsubA := b.Subscribe(func(l Loading) { a = append(a, l.Loading) })
	b.Subscribe(func(l Loading) { c = append(c, l.Loading) })

	b.Publish(Loading{Loading: true})
	unsubA()
	unsubA()
	b.Publish(Loading{Loading: false})

	assert.Equal(t, []bool{true}, a)
	assert.Equal(t, []bool{true, false}, c)
	assert.Equal(t, 1, b.Len())
}

func TestPublish_HandlerMayUnsubscribeItself(t *testing.T) {
	b := NewBus[string]("test")
	calls := 0

	var unsub func()
	unsub = b.Subscribe(func(string) {
		calls++
		unsub()
	})

	require.NotPanics(t, func() {
		b.Publish("x")
		b.Publish("y")
	})
	assert.Equal(t, 1, calls)
	assert.Equal(t, 0, b.Len())
}

func TestUnsubscribeDuringPublish_DoesNotCorruptSnapshot(t *testing.T) {
	b := NewBus[int]("test")
	var got []string
	var unsubSecond func()

	b.Subscribe(func(int) {
		got = append(got, "first")
		unsubSecond()
	})
	unsubSecond = b.Subscribe(func(int) { got = append(got, "second") })
	b.Subscribe(func(int) { got = append(got, "third") })

	b.Publish(1)
	assert.Equal(t, []string{"first", "second", "third"}, got)

	got = nil
	b.Publish(2)
	assert.Equal(t, []string{"first", "third"}, got)
}

func TestPublish_NoSubscribers(t *testing.T) {
	b := NewLoadingBus()
	assert.NotPanics(t, func() { b.Publish(Loading{}) })
}

func TestReset(t *testing.T) {
	b := NewBus[int]("test")
	b.Subscribe(func(int) {})
	b.Subscribe(func(int) {})
	b.Reset()
	assert.Equal(t, 0, b.Len())
}

func TestConcurrentSubscribePublish(t *testing.T) {
	b := NewBus[int]("test")
	var wg sync.WaitGroup

	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unsub := b.Subscribe(func(int) {})
			b.Publish(1)
			unsub()
		}()
	}
	wg.Wait()
	assert.Equal(t, 0, b.Len())
}
