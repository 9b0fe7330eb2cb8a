// Package turns picks the next participant to act with full-cycle
// fairness: every current participant is visited exactly once before any
// repeat.
package turns

import (
	"errors"
	"sync"

	"github.com/exposedgame/exposed/internal/rng"
)

var (
	// ErrNoParticipants indicates NextTurn was called with an empty set
	ErrNoParticipants = errors.New("no participants to pick from")

	// ErrNilRand indicates the engine was constructed without a randomness source
	ErrNilRand = errors.New("randomness source cannot be nil")
)

// Config holds configuration for the turn engine
type Config struct {
	// Rand is the randomness source used to shuffle rotation cycles
	Rand rng.Rand
}

// rotation is one in-progress cycle: the multiset it was built from and
// the aliases still owed a turn.
type rotation struct {
	members map[string]int
	queue   []string
}

// Engine maintains a per-room rotation cycle. Calls for one room are
// serialized by the caller; the internal mutex only guards the room map
// against concurrent calls for different rooms.
type Engine struct {
	mu        sync.Mutex
	random    rng.Rand
	rotations map[string]*rotation
}

// New creates a new turn engine
func New(cfg *Config) (*Engine, error) {
	if cfg == nil || cfg.Rand == nil {
		return nil, ErrNilRand
	}

	return &Engine{
		random:    cfg.Rand,
		rotations: make(map[string]*rotation),
	}, nil
}

// NextTurn returns the alias whose turn it is in the given room. When the
// current cycle is exhausted, or the participant set changed since the
// cycle was built, a fresh uniformly shuffled cycle over aliases replaces
// it; any partial-cycle fairness is discarded on membership change.
func (e *Engine) NextTurn(roomID string, aliases []string) (string, error) {
	if len(aliases) == 0 {
		return "", ErrNoParticipants
	}
	if len(aliases) == 1 {
		return aliases[0], nil
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	rot := e.rotations[roomID]
	if rot == nil || len(rot.queue) == 0 || !sameMultiset(rot.members, aliases) {
		rot = e.rebuild(aliases)
		e.rotations[roomID] = rot
	}

	next := rot.queue[0]
	rot.queue = rot.queue[1:]
	return next, nil
}

// Reset discards the room's rotation state. The next NextTurn call
// rebuilds a fresh cycle. Also used to drop state when a session ends.
func (e *Engine) Reset(roomID string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	delete(e.rotations, roomID)
}

func (e *Engine) rebuild(aliases []string) *rotation {
	queue := make([]string, len(aliases))
	copy(queue, aliases)
	e.random.Shuffle(len(queue), func(i, j int) {
		queue[i], queue[j] = queue[j], queue[i]
	})

	members := make(map[string]int, len(aliases))
	for _, a := range aliases {
		members[a]++
	}

	return &rotation{members: members, queue: queue}
}

func sameMultiset(members map[string]int, aliases []string) bool {
	if len(aliases) != sum(members) {
		return false
	}
	remaining := make(map[string]int, len(members))
	for k, v := range members {
		remaining[k] = v
	}
	for _, a := range aliases {
		remaining[a]--
		if remaining[a] < 0 {
			return false
		}
	}
	return true
}

func sum(m map[string]int) int {
	total := 0
	for _, v := range m {
		total += v
	}
	return total
}
