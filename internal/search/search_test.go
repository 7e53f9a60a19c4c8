package search

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type person struct {
	FirstName string
	LastName  string
	Email     string
}

func personFields(p person) []string {
	return []string{p.FirstName + " " + p.LastName, p.Email}
}

var people = []person{
	{FirstName: "Anna", LastName: "Ivanova", Email: "a@x.com"},
	{FirstName: "Boris", LastName: "Petrov", Email: "b@x.com"},
}

func TestFilter_MatchesCaseInsensitive(t *testing.T) {
	got := Filter(people, "anna", personFields)
	require.Len(t, got, 1)
	assert.Equal(t, "Anna", got[0].FirstName)

	got = Filter(people, "  PETROV ", personFields)
	require.Len(t, got, 1)
	assert.Equal(t, "Boris", got[0].FirstName)

	got = Filter(people, "anna ivanova", personFields)
	assert.Len(t, got, 1)
}

func TestFilter_BlankQueryReturnsAllInOrder(t *testing.T) {
	for _, q := range []string{"", "   ", "\t"} {
		got := Filter(people, q, personFields)
		assert.Equal(t, people, got)
	}
}

func TestFilter_StableAndSideEffectFree(t *testing.T) {
	in := []person{
		{FirstName: "Zoe", Email: "zoe@x.com"},
		{FirstName: "Adam", Email: "adam@y.com"},
		{FirstName: "Mila", Email: "mila@x.com"},
	}
	snapshot := append([]person(nil), in...)

	first := Filter(in, "x.com", personFields)
	second := Filter(in, "x.com", personFields)

	assert.Equal(t, first, second)
	assert.Equal(t, []string{"Zoe", "Mila"}, []string{first[0].FirstName, first[1].FirstName})
	assert.Equal(t, snapshot, in)
}

func TestFilter_EmptyCollection(t *testing.T) {
	got := Filter([]person{}, "anna", personFields)
	assert.Empty(t, got)
}

func TestFilter_NoDiacriticFolding(t *testing.T) {
	in := []person{{FirstName: "Zoë"}}
	assert.Empty(t, Filter(in, "zoe", personFields))
	assert.Len(t, Filter(in, "ZOË", personFields), 1)
}

func TestLive_DebouncesToLastQuery(t *testing.T) {
	var calls atomic.Int32
	var mu sync.Mutex
	var queries []string
	results := make(chan Result[person], 4)

	live := NewLive(30*time.Millisecond, func(_ context.Context, q string) ([]person, error) {
		calls.Add(1)
		mu.Lock()
		queries = append(queries, q)
		mu.Unlock()
		return Filter(people, q, personFields), nil
	}, func(r Result[person]) { results <- r })
	defer live.Close()

	live.Type("a")
	live.Type("an")
	live.Type("ann")

	select {
	case r := <-results:
		assert.Equal(t, "ann", r.Query)
		require.Len(t, r.Items, 1)
	case <-time.After(time.Second):
		t.Fatal("expected a result")
	}

	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, int32(1), calls.Load())
	mu.Lock()
	assert.Equal(t, []string{"ann"}, queries)
	mu.Unlock()
}

func TestLive_DropsStaleResponse(t *testing.T) {
	release := make(chan struct{})
	results := make(chan Result[person], 4)

	live := NewLive(0, func(_ context.Context, q string) ([]person, error) {
		if q == "slow" {
			// backend que responde igual aunque el request fue cancelado
			<-release
			return people, nil
		}
		return people[:1], nil
	}, func(r Result[person]) { results <- r })
	defer live.Close()

	live.Type("slow")
	live.Type("fast")

	select {
	case r := <-results:
		assert.Equal(t, "fast", r.Query)
	case <-time.After(time.Second):
		t.Fatal("expected fast result")
	}

	close(release)
	select {
	case r := <-results:
		t.Fatalf("stale result delivered: %q", r.Query)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestLive_NoDeliveryAfterClose(t *testing.T) {
	results := make(chan Result[person], 4)
	var calls atomic.Int32

	live := NewLive(30*time.Millisecond, func(_ context.Context, q string) ([]person, error) {
		calls.Add(1)
		return people, nil
	}, func(r Result[person]) { results <- r })

	live.Type("anna")
	assert.True(t, live.Pending())
	live.Close()

	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, int32(0), calls.Load())
	assert.Empty(t, results)
}
