// Package questions issues unseen prompts per participant and category.
// The pool itself is stateless per call: exhaustion is computed entirely
// from the consumed log the caller passes in.
package questions

import (
	"errors"

	"github.com/exposedgame/exposed/internal/models"
	"github.com/exposedgame/exposed/internal/rng"
)

var (
	// ErrExhausted indicates no unseen prompt remains for the
	// participant/category pair. A normal terminal outcome, not a fault.
	ErrExhausted = errors.New("no unseen prompts remain")

	// ErrUnknownCategory indicates the category is not a known pack
	ErrUnknownCategory = errors.New("unknown category")

	// ErrNilRand indicates the pool was constructed without a randomness source
	ErrNilRand = errors.New("randomness source cannot be nil")
)

// Config holds configuration for the question pool
type Config struct {
	// Rand is the randomness source used for prompt selection
	Rand rng.Rand
}

// Pool issues prompts from the fixed category universes
type Pool struct {
	random rng.Rand
}

// New creates a new question pool
func New(cfg *Config) (*Pool, error) {
	if cfg == nil || cfg.Rand == nil {
		return nil, ErrNilRand
	}

	return &Pool{random: cfg.Rand}, nil
}

// Universe returns the full prompt list for a category. CategoryAll is the
// union of every pack, in pack order.
func Universe(category models.Category) []string {
	if category == models.CategoryAll {
		var merged []string
		merged = append(merged, extremePrompts...)
		merged = append(merged, adultPrompts...)
		merged = append(merged, lifePrompts...)
		return merged
	}
	pack := packs[category]
	out := make([]string, len(pack))
	copy(out, pack)
	return out
}

// NextPrompt selects, uniformly at random, a prompt from category that does
// not yet appear in the participant's consumed log. Skipped prompts count as
// consumed. Returns ErrExhausted once the universe is used up.
func (p *Pool) NextPrompt(category models.Category, consumed []models.ConsumedPrompt) (string, error) {
	if !category.IsValid() {
		return "", ErrUnknownCategory
	}

	seen := make(map[string]struct{}, len(consumed))
	for _, entry := range consumed {
		seen[entry.Prompt] = struct{}{}
	}

	var candidates []string
	for _, prompt := range Universe(category) {
		if _, ok := seen[prompt]; !ok {
			candidates = append(candidates, prompt)
		}
	}

	if len(candidates) == 0 {
		return "", ErrExhausted
	}
	return candidates[p.random.Intn(len(candidates))], nil
}

// RandomDare returns a dare, uniformly at random. Dares carry no
// exhaustion tracking.
func (p *Pool) RandomDare() string {
	return darePrompts[p.random.Intn(len(darePrompts))]
}
