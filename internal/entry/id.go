package entry

import (
	"crypto/sha1"
	"fmt"
	"time"

	"github.com/dailynotes/daily/pkg/clock"
)

// IDGenerator produces the stable identity assigned to new entries.
type IDGenerator interface {
	NewID(title string) string
}

var idGenerator IDGenerator = &timestampIDGenerator{}

// NewID generates the identity for a new entry.
func NewID(title string) string {
	return idGenerator.NewID(title)
}

/* Default Generator */

// timestampIDGenerator hashes the title with the current timestamp and
// appends a human-readable timestamp suffix.
//
// Ex: da39a3ee5e6b4b0d3255bfef95601890afd80709-2023-1-1_12-30-0-0
type timestampIDGenerator struct{}

func (g *timestampIDGenerator) NewID(title string) string {
	stamp := humanTimestamp(clock.Now())
	h := sha1.Sum([]byte(title + stamp))
	return fmt.Sprintf("%x-%s", h, stamp)
}

func humanTimestamp(t time.Time) string {
	return fmt.Sprintf("%d-%d-%d_%d-%d-%d-%d",
		t.Year(), int(t.Month()), t.Day(),
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond()/1000)
}

/* Test Generators */

type fixedIDGenerator struct {
	id string
}

func (g *fixedIDGenerator) NewID(title string) string {
	return g.id
}

type sequenceIDGenerator struct {
	count int
}

func (g *sequenceIDGenerator) NewID(title string) string {
	g.count++
	return fmt.Sprintf("%040d", g.count)
}

// UseFixedIDGenerator makes every generated id the same.
// Useful in tests with a defer on ResetIDGenerator.
func UseFixedIDGenerator(id string) {
	idGenerator = &fixedIDGenerator{id: id}
}

// UseSequenceIDGenerator makes generated ids predictable (1, 2, 3, ...).
func UseSequenceIDGenerator() {
	idGenerator = &sequenceIDGenerator{}
}

// ResetIDGenerator restores the original timestamp-based generator.
func ResetIDGenerator() {
	idGenerator = &timestampIDGenerator{}
}
