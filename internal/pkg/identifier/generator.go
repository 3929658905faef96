package identifier

import (
	"fmt"
	"strconv"
	"sync/atomic"

	"notes-backend/internal/entity"
	"notes-backend/internal/pkg/serverutils"

	"github.com/google/uuid"
)

type Mode string

const (
	ModeRandom     Mode = "random"
	ModeSequential Mode = "sequential"
)

// Generator resolves the configured id kind once at process start.
// Next issues a fresh unique id; Parse coerces caller-supplied text into the
// canonical form, failing with ErrMalformedId when it does not parse.
type Generator interface {
	Mode() Mode
	Next() entity.NoteID
	Parse(raw string) (entity.NoteID, error)
}

func New(useIntIds bool) Generator {
	if useIntIds {
		return &sequentialGenerator{}
	}
	return &randomGenerator{}
}

// sequentialGenerator issues positive integers in strict creation order,
// starting at 1. The counter never decreases and ids are never reused, even
// after deletion.
type sequentialGenerator struct {
	counter atomic.Int64
}

func (g *sequentialGenerator) Mode() Mode {
	return ModeSequential
}

func (g *sequentialGenerator) Next() entity.NoteID {
	return entity.NoteID(strconv.FormatInt(g.counter.Add(1), 10))
}

func (g *sequentialGenerator) Parse(raw string) (entity.NoteID, error) {
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || n < 1 {
		return "", fmt.Errorf("%w: expected a positive integer, got %q", serverutils.ErrMalformedId, raw)
	}
	return entity.NoteID(strconv.FormatInt(n, 10)), nil
}

// randomGenerator issues random 128-bit UUIDs. Collisions are treated as
// cryptographically negligible and are not checked.
type randomGenerator struct{}

func (g *randomGenerator) Mode() Mode {
	return ModeRandom
}

func (g *randomGenerator) Next() entity.NoteID {
	return entity.NoteID(uuid.NewString())
}

func (g *randomGenerator) Parse(raw string) (entity.NoteID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("%w: expected a UUID, got %q", serverutils.ErrMalformedId, raw)
	}
	return entity.NoteID(id.String()), nil
}
