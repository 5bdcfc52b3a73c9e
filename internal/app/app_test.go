package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/skimtui/skim/internal/config"
	"github.com/skimtui/skim/internal/feed"
)

func TestBuildSource_PrefersEndpointThenFile(t *testing.T) {
	src, err := buildSource(config.Config{Endpoint: "127.0.0.1:8080", FeedFile: "/tmp/feed.ndjson"})
	if err != nil {
		t.Fatalf("buildSource: %v", err)
	}
	if _, ok := src.(*feed.Client); !ok {
		t.Fatalf("source = %T, want *feed.Client", src)
	}

	src, err = buildSource(config.Config{FeedFile: "/tmp/feed.ndjson"})
	if err != nil {
		t.Fatalf("buildSource: %v", err)
	}
	if _, ok := src.(*feed.File); !ok {
		t.Fatalf("source = %T, want *feed.File", src)
	}

	src, err = buildSource(config.Config{SyntheticItems: 100})
	if err != nil {
		t.Fatalf("buildSource: %v", err)
	}
	if _, ok := src.(*feed.Generator); !ok {
		t.Fatalf("source = %T, want *feed.Generator", src)
	}
}

func TestSeed_PopulatesStore(t *testing.T) {
	store := &feed.Store{}
	gen := feed.NewGenerator(30, 1)

	if err := seed(context.Background(), store, gen, 50); err != nil {
		t.Fatalf("seed: %v", err)
	}
	snap := store.Snapshot()
	if len(snap.Entries) != 30 {
		t.Fatalf("seeded %d entries, want 30", len(snap.Entries))
	}
	if !snap.Exhausted {
		t.Fatal("short first page should mark the store exhausted")
	}
}

type failingSource struct{}

func (failingSource) Page(context.Context, int, int) ([]feed.Entry, error) {
	return nil, errors.New("connection refused")
}

func TestSeed_RecordsFetchErrorWithoutFailing(t *testing.T) {
	store := &feed.Store{}

	if err := seed(context.Background(), store, failingSource{}, 50); err != nil {
		t.Fatalf("seed should tolerate source errors, got %v", err)
	}
	snap := store.Snapshot()
	if snap.LastError == nil || snap.ConsecutiveFailures != 1 {
		t.Fatalf("error state = (%v, %d), want recorded failure", snap.LastError, snap.ConsecutiveFailures)
	}
}

func TestAppendBatch_AdvancesUntilExhausted(t *testing.T) {
	store := &feed.Store{}
	gen := feed.NewGenerator(7, 1)

	var done bool
	for i := 0; i < 5 && !done; i++ {
		done = appendBatch(context.Background(), store, gen)
	}
	if !done {
		t.Fatal("appendBatch never reported exhaustion")
	}
	if got := store.Len(); got != 7 {
		t.Fatalf("store has %d entries, want 7", got)
	}
	if !store.Snapshot().Exhausted {
		t.Fatal("store not marked exhausted")
	}
}

func TestStartLive_StopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	store := &feed.Store{}
	gen := feed.NewGenerator(1000, 1)

	StartLive(ctx, store, gen, time.Millisecond)
	deadline := time.Now().Add(time.Second)
	for store.Len() == 0 && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}
	if store.Len() == 0 {
		t.Fatal("live ticker never appended")
	}
	cancel()

	settled := store.Len()
	time.Sleep(20 * time.Millisecond)
	// One in-flight tick may still land after cancel; the count must stop
	// moving after that.
	final := store.Len()
	time.Sleep(20 * time.Millisecond)
	if store.Len() != final {
		t.Fatalf("store kept growing after cancel: %d -> %d -> %d", settled, final, store.Len())
	}
}
