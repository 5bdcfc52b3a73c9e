package feed

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"
)

// File serves entries from a newline-delimited JSON file, one entry per
// line. Lines that do not parse as JSON become plain-text entries so a raw
// log file can be browsed too.
type File struct {
	path string

	mu      sync.Mutex
	entries []Entry
	loaded  bool
}

var _ Source = (*File)(nil)

// NewFile returns a source backed by the file at path.
func NewFile(path string) *File {
	return &File{path: path}
}

// Page implements Source.
func (f *File) Page(ctx context.Context, offset, limit int) ([]Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := f.load(); err != nil {
		return nil, err
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 || offset >= len(f.entries) {
		return nil, nil
	}
	end := min(len(f.entries), offset+limit)
	page := make([]Entry, end-offset)
	copy(page, f.entries[offset:end])
	return page, nil
}

func (f *File) load() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.loaded {
		return nil
	}

	file, err := os.Open(f.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			f.loaded = true
			return nil
		}
		return fmt.Errorf("open feed file: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		var entry Entry
		if err := json.Unmarshal([]byte(line), &entry); err != nil || entry.UID == "" {
			entry = Entry{
				UID:  fmt.Sprintf("line-%06d", lineNo),
				Body: scanner.Text(),
			}
		}
		f.entries = append(f.entries, entry)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read feed file: %w", err)
	}
	f.loaded = true
	return nil
}
