// Package rng is the single randomness source for turn and prompt
// selection. Components take the Rand interface so tests can pin a seed.
package rng

import (
	"math/rand"
	"sync"
	"time"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_rand.go github.com/exposedgame/exposed/internal/rng Rand

// Rand provides uniform randomness
type Rand interface {
	// Intn returns a uniform int in [0, n)
	Intn(n int) int

	// Shuffle permutes n elements via swap
	Shuffle(n int, swap func(i, j int))
}

// Config for the randomness source
type Config struct {
	// Optional seed for testing
	Seed int64
}

// Source implements Rand on math/rand. One Source is shared by every room,
// and rooms are only serialized against themselves, so the underlying
// generator needs its own lock.
type Source struct {
	mu     sync.Mutex
	random *rand.Rand
}

// New creates a new randomness source
func New(cfg *Config) *Source {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	return &Source{
		random: rand.New(rand.NewSource(seed)),
	}
}

// Intn returns a uniform int in [0, n)
func (s *Source) Intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.random.Intn(n)
}

// Shuffle permutes n elements via swap
func (s *Source) Shuffle(n int, swap func(i, j int)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.random.Shuffle(n, swap)
}
