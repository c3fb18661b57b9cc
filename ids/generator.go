package ids

import (
	"strconv"
	"sync"

	"github.com/google/uuid"
)

// SeqGenerator mints deterministic, sequentially increasing identifiers.
// It is the generator of choice for tests that pin exact command output.
//
// The zero value is ready to use; the first call to Generate returns "1".
type SeqGenerator struct {
	mu     sync.Mutex
	nextID uint64
}

// NewSeqGenerator returns a SeqGenerator whose first Generate call
// returns prefix + strconv.Itoa(seed+1).
func NewSeqGenerator(seed uint64) *SeqGenerator {
	return &SeqGenerator{nextID: seed}
}

// Generate returns prefix concatenated with the next sequential number.
func (g *SeqGenerator) Generate(prefix string) string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.nextID++
	return prefix + strconv.FormatUint(g.nextID, 10)
}

// UUIDGenerator mints UUIDv4-backed identifiers, suitable for
// production use where reproducibility is not required.
type UUIDGenerator struct{}

// NewUUIDGenerator returns a ready-to-use UUIDGenerator.
func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns prefix concatenated with a freshly minted UUIDv4.
func (g *UUIDGenerator) Generate(prefix string) string {
	return prefix + uuid.NewString()
}
