package feed

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"
)

// Generator is a deterministic synthetic source used for demos and tests.
// Entry i is always the same for a given seed, so pages can be fetched in
// any order and appends stay identity-stable.
type Generator struct {
	total int
	seed  int64
	base  time.Time
}

var genAuthors = []string{
	"ada", "brook", "casey", "devon", "ellis", "frankie", "gray", "harper",
}

var genWords = strings.Fields(
	"signal window ledger extent scroll frame buffer render measure anchor " +
		"page tail slice clamp estimate viewport materialize publish throttle")

// NewGenerator returns a source that serves total synthetic entries.
func NewGenerator(total int, seed int64) *Generator {
	if total < 0 {
		total = 0
	}
	return &Generator{
		total: total,
		seed:  seed,
		base:  time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC),
	}
}

// Total returns the number of entries the generator can serve.
func (g *Generator) Total() int { return g.total }

// Page implements Source.
func (g *Generator) Page(ctx context.Context, offset, limit int) ([]Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 || offset >= g.total {
		return nil, nil
	}
	end := min(g.total, offset+limit)
	entries := make([]Entry, 0, end-offset)
	for i := offset; i < end; i++ {
		entries = append(entries, g.entry(i))
	}
	return entries, nil
}

// entry derives entry i from a per-index rand stream so results do not
// depend on fetch order.
func (g *Generator) entry(i int) Entry {
	rng := rand.New(rand.NewSource(g.seed + int64(i)))

	lines := rng.Intn(7) // cards vary between 0 and 6 body lines
	var body strings.Builder
	for l := 0; l < lines; l++ {
		if l > 0 {
			body.WriteByte('\n')
		}
		words := 3 + rng.Intn(8)
		for w := 0; w < words; w++ {
			if w > 0 {
				body.WriteByte(' ')
			}
			body.WriteString(genWords[rng.Intn(len(genWords))])
		}
	}

	author := genAuthors[rng.Intn(len(genAuthors))]
	return Entry{
		UID:      fmt.Sprintf("entry-%08d", i),
		Author:   author,
		Title:    fmt.Sprintf("%s on %s #%d", author, genWords[rng.Intn(len(genWords))], i),
		Body:     body.String(),
		PostedAt: g.base.Add(-time.Duration(i) * time.Minute),
	}
}
