package feed

import (
	"errors"
	"reflect"
	"testing"
	"time"
)

func TestStore_AppendAndSnapshotClone(t *testing.T) {
	var s Store

	before := time.Now()
	s.Append([]Entry{{UID: "a"}, {UID: "b"}}, false)

	snap := s.Snapshot()
	if len(snap.Entries) != 2 || snap.Entries[0].UID != "a" {
		t.Fatalf("snapshot entries = %#v, want 2 entries starting at a", snap.Entries)
	}
	if snap.Exhausted {
		t.Fatal("Exhausted = true, want false")
	}
	if snap.LastUpdated.Before(before) {
		t.Fatalf("LastUpdated = %v, want >= %v", snap.LastUpdated, before)
	}

	// Returned snapshot should be independent of the stored one.
	snap.Entries[0].UID = "poisoned"
	if s.Snapshot().Entries[0].UID != "a" {
		t.Fatal("Snapshot should clone entries")
	}
}

func TestStore_AppendExtendsSequence(t *testing.T) {
	var s Store
	s.Append([]Entry{{UID: "a"}}, false)
	s.Append([]Entry{{UID: "b"}, {UID: "c"}}, true)

	snap := s.Snapshot()
	if len(snap.Entries) != 3 {
		t.Fatalf("entries = %d, want 3", len(snap.Entries))
	}
	if !snap.Exhausted {
		t.Fatal("short page should mark the store exhausted")
	}
	if s.Len() != 3 {
		t.Fatalf("Len = %d, want 3", s.Len())
	}
}

func TestStore_AppendPageDropsStaleOffsets(t *testing.T) {
	var s Store
	s.Append([]Entry{{UID: "a"}, {UID: "b"}}, false)

	if !s.AppendPage(2, []Entry{{UID: "c"}}, false) {
		t.Fatal("page at the current tail should apply")
	}
	// A second fetcher computed its page against the pre-append tail.
	if s.AppendPage(2, []Entry{{UID: "c"}}, false) {
		t.Fatal("stale page should be dropped")
	}
	snap := s.Snapshot()
	if len(snap.Entries) != 3 || snap.Entries[2].UID != "c" {
		t.Fatalf("entries = %#v, want a b c", snap.Entries)
	}
}

func TestStore_ReplaceSwapsSequence(t *testing.T) {
	var s Store
	s.Append([]Entry{{UID: "a"}, {UID: "b"}}, true)
	s.Replace([]Entry{{UID: "x"}}, false)

	snap := s.Snapshot()
	if len(snap.Entries) != 1 || snap.Entries[0].UID != "x" {
		t.Fatalf("entries after replace = %#v, want only x", snap.Entries)
	}
	if snap.Exhausted {
		t.Fatal("replace should reset Exhausted")
	}
}

func TestStore_FailKeepsPreviousData(t *testing.T) {
	var s Store
	s.Append([]Entry{{UID: "a"}}, false)

	origErr := errors.New("boom")
	s.Fail(origErr)
	s.Fail(errors.New("boom again"))

	snap := s.Snapshot()
	if len(snap.Entries) != 1 || snap.Entries[0].UID != "a" {
		t.Fatalf("entries changed on error: %#v", snap.Entries)
	}
	if snap.LastError == nil || snap.ConsecutiveFailures != 2 {
		t.Fatalf("error state = (%v, %d), want (non-nil, 2)", snap.LastError, snap.ConsecutiveFailures)
	}
	if !snap.IsStalled() {
		t.Fatal("IsStalled = false after two failures")
	}
	if reflect.ValueOf(snap.LastError).Pointer() == reflect.ValueOf(origErr).Pointer() {
		t.Fatal("Snapshot should clone the error instance")
	}

	// A successful append resets the failure streak.
	s.Append([]Entry{{UID: "b"}}, false)
	snap = s.Snapshot()
	if snap.LastError != nil || snap.ConsecutiveFailures != 0 || snap.IsStalled() {
		t.Fatalf("failure state not reset: %#v", snap)
	}
}
