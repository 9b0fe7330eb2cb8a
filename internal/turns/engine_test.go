package turns

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/exposedgame/exposed/internal/rng"
)

func newTestEngine(t *testing.T, seed int64) *Engine {
	t.Helper()
	engine, err := New(&Config{Rand: rng.New(&rng.Config{Seed: seed})})
	require.NoError(t, err)
	return engine
}

func TestNewRequiresRand(t *testing.T) {
	_, err := New(nil)
	assert.ErrorIs(t, err, ErrNilRand)

	_, err = New(&Config{})
	assert.ErrorIs(t, err, ErrNilRand)
}

func TestNextTurnEmptySet(t *testing.T) {
	engine := newTestEngine(t, 1)

	_, err := engine.NextTurn("room", nil)
	assert.ErrorIs(t, err, ErrNoParticipants)
}

func TestSingleParticipantAlwaysPicked(t *testing.T) {
	engine := newTestEngine(t, 1)

	for i := 0; i < 5; i++ {
		alias, err := engine.NextTurn("room", []string{"solo"})
		require.NoError(t, err)
		assert.Equal(t, "solo", alias)
	}
}

func TestFullCycleVisitsEveryoneOnce(t *testing.T) {
	for _, n := range []int{2, 3, 4, 7, 10} {
		t.Run(fmt.Sprintf("players_%d", n), func(t *testing.T) {
			engine := newTestEngine(t, int64(n)*31)

			var aliases []string
			for i := 0; i < n; i++ {
				aliases = append(aliases, fmt.Sprintf("player-%d", i))
			}

			// Three consecutive cycles, each a permutation of the set.
			for cycle := 0; cycle < 3; cycle++ {
				seen := make(map[string]int)
				for i := 0; i < n; i++ {
					alias, err := engine.NextTurn("room", aliases)
					require.NoError(t, err)
					seen[alias]++
				}
				for _, alias := range aliases {
					assert.Equal(t, 1, seen[alias], "cycle %d must visit %s exactly once", cycle, alias)
				}
			}
		})
	}
}

func TestMembershipChangeRebuildsCycle(t *testing.T) {
	engine := newTestEngine(t, 99)
	aliases := []string{"ana", "ben", "cho", "dia"}

	_, err := engine.NextTurn("room", aliases)
	require.NoError(t, err)

	// ben leaves mid-cycle; the engine must start a fresh cycle over the
	// new set instead of draining the stale queue.
	smaller := []string{"ana", "cho", "dia"}

	seen := make(map[string]int)
	for i := 0; i < len(smaller); i++ {
		alias, err := engine.NextTurn("room", smaller)
		require.NoError(t, err)
		assert.Contains(t, smaller, alias)
		seen[alias]++
	}
	for _, alias := range smaller {
		assert.Equal(t, 1, seen[alias], "fresh cycle must visit %s exactly once", alias)
	}
}

func TestResetDiscardsCycle(t *testing.T) {
	engine := newTestEngine(t, 7)
	aliases := []string{"ana", "ben", "cho"}

	_, err := engine.NextTurn("room", aliases)
	require.NoError(t, err)

	engine.Reset("room")

	// The rebuilt cycle is again a full permutation.
	seen := make(map[string]int)
	for i := 0; i < len(aliases); i++ {
		alias, err := engine.NextTurn("room", aliases)
		require.NoError(t, err)
		seen[alias]++
	}
	for _, alias := range aliases {
		assert.Equal(t, 1, seen[alias])
	}
}

func TestRoomsDoNotShareCycles(t *testing.T) {
	engine := newTestEngine(t, 13)
	aliases := []string{"ana", "ben"}

	a1, err := engine.NextTurn("room-a", aliases)
	require.NoError(t, err)
	b1, err := engine.NextTurn("room-b", aliases)
	require.NoError(t, err)
	a2, err := engine.NextTurn("room-a", aliases)
	require.NoError(t, err)
	b2, err := engine.NextTurn("room-b", aliases)
	require.NoError(t, err)

	assert.ElementsMatch(t, aliases, []string{a1, a2})
	assert.ElementsMatch(t, aliases, []string{b1, b2})
}
