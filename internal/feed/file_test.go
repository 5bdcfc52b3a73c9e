package feed

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestFile_PageParsesJSONAndFallsBack(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "feed.ndjson")
	content := `{"uid":"a","author":"ada","title":"hello","body":"line one\nline two"}
not json at all

{"uid":"b","title":"second"}
{"title":"missing uid"}
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	f := NewFile(path)
	entries, err := f.Page(context.Background(), 0, 10)
	if err != nil {
		t.Fatalf("Page returned error: %v", err)
	}
	if len(entries) != 4 {
		t.Fatalf("entries = %d, want 4 (blank line skipped)", len(entries))
	}
	if entries[0].UID != "a" || entries[0].Body != "line one\nline two" {
		t.Fatalf("first entry = %#v", entries[0])
	}
	if entries[1].UID != "line-000002" || entries[1].Body != "not json at all" {
		t.Fatalf("fallback entry = %#v", entries[1])
	}
	if entries[2].UID != "b" {
		t.Fatalf("third entry = %#v", entries[2])
	}
	// JSON without a uid degrades to a line-identity plain entry.
	if entries[3].UID != "line-000005" {
		t.Fatalf("uid-less entry = %#v", entries[3])
	}

	// Paging slices the loaded sequence.
	page, err := f.Page(context.Background(), 2, 10)
	if err != nil || len(page) != 2 {
		t.Fatalf("offset page = (%d, %v), want 2 entries", len(page), err)
	}
}

func TestFile_MissingFileIsEmpty(t *testing.T) {
	f := NewFile(filepath.Join(t.TempDir(), "absent.ndjson"))
	entries, err := f.Page(context.Background(), 0, 10)
	if err != nil {
		t.Fatalf("Page returned error: %v", err)
	}
	if entries != nil {
		t.Fatalf("entries = %#v, want nil", entries)
	}
}
