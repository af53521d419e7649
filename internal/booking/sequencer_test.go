package booking

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSequencer(t *testing.T) {
	var seq Sequencer
	first := seq.Next()
	second := seq.Next()

	assert.Greater(t, second, first)
	assert.False(t, seq.IsCurrent(first))
	assert.True(t, seq.IsCurrent(second))
}

func TestSequencer_Concurrent(t *testing.T) {
	var seq Sequencer
	var wg sync.WaitGroup
	tokens := make(chan uint64, 100)
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tokens <- seq.Next()
		}()
	}
	wg.Wait()
	close(tokens)

	current := 0
	seen := make(map[uint64]bool)
	for tok := range tokens {
		assert.False(t, seen[tok])
		seen[tok] = true
		if seq.IsCurrent(tok) {
			current++
		}
	}
	assert.Equal(t, 1, current)
}

func TestSequencers(t *testing.T) {
	seqs := NewSequencers()
	a := seqs.For("a")
	assert.Same(t, a, seqs.For("a"))
	assert.NotSame(t, a, seqs.For("b"))

	seqs.Forget("a")
	assert.Equal(t, 1, seqs.Len())
	assert.NotSame(t, a, seqs.For("a"))
}
