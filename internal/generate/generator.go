package generate

import (
	"math/rand/v2"
	"sync"
	"time"

	"github.com/ytget/sort-visualizer/internal/model"
)

// Generator draws random sequences from its source
type Generator struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// New creates a generator over the given source
func New(src rand.Source) *Generator {
	return &Generator{rnd: rand.New(src)}
}

// NewSeeded creates a reproducible generator
func NewSeeded(seed uint64) *Generator {
	return New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// NewRandom creates a generator seeded from the clock
func NewRandom() *Generator {
	return NewSeeded(uint64(time.Now().UnixNano()))
}

// Generate returns count uniform values in [MinValue, MaxValue]. When none of
// them is low, one uniformly chosen position is overwritten with a value in
// [MinValue, LowThreshold]. The count must already be validated by the caller.
func (g *Generator) Generate(count int) model.Sequence {
	g.mu.Lock()
	defer g.mu.Unlock()

	seq := make(model.Sequence, count)
	hasLow := false
	for i := range seq {
		seq[i] = g.rnd.IntN(model.MaxValue) + model.MinValue
		if model.IsLow(seq[i]) {
			hasLow = true
		}
	}

	if !hasLow && count > 0 {
		seq[g.rnd.IntN(count)] = g.rnd.IntN(model.LowThreshold) + model.MinValue
	}

	return seq
}
