package questions

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/exposedgame/exposed/internal/models"
	"github.com/exposedgame/exposed/internal/rng"
	rngMocks "github.com/exposedgame/exposed/internal/rng/mocks"
)

func newTestPool(t *testing.T, seed int64) *Pool {
	t.Helper()
	pool, err := New(&Config{Rand: rng.New(&rng.Config{Seed: seed})})
	require.NoError(t, err)
	return pool
}

func TestNewRequiresRand(t *testing.T) {
	_, err := New(nil)
	assert.ErrorIs(t, err, ErrNilRand)
}

func TestNextPromptUnknownCategory(t *testing.T) {
	pool := newTestPool(t, 1)

	_, err := pool.NextPrompt("nonsense", nil)
	assert.ErrorIs(t, err, ErrUnknownCategory)
}

func TestNextPromptPicksFromUniverse(t *testing.T) {
	pool := newTestPool(t, 2)

	prompt, err := pool.NextPrompt(models.CategoryLife, nil)
	require.NoError(t, err)
	assert.Contains(t, Universe(models.CategoryLife), prompt)
}

func TestNextPromptPicksTheDrawnIndex(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRand := rngMocks.NewMockRand(ctrl)

	pool, err := New(&Config{Rand: mockRand})
	require.NoError(t, err)

	// With an empty log the candidate set is the universe in pack order.
	universe := Universe(models.CategoryLife)
	mockRand.EXPECT().Intn(len(universe)).Return(3)

	prompt, err := pool.NextPrompt(models.CategoryLife, nil)
	require.NoError(t, err)
	assert.Equal(t, universe[3], prompt)
}

func TestNextPromptNeverRepeats(t *testing.T) {
	pool := newTestPool(t, 3)
	universe := Universe(models.CategoryLife)

	var consumed []models.ConsumedPrompt
	seen := make(map[string]bool)

	// Draw the entire universe, recording each prompt the way the state
	// machine does; no text may come back twice.
	for i := 0; i < len(universe); i++ {
		prompt, err := pool.NextPrompt(models.CategoryLife, consumed)
		require.NoError(t, err)
		assert.False(t, seen[prompt], "prompt %q issued twice", prompt)
		seen[prompt] = true
		consumed = append(consumed, models.ConsumedPrompt{
			Category: models.CategoryLife,
			Prompt:   prompt,
		})
	}
	assert.Len(t, seen, len(universe))
}

func TestSkippedPromptsCountAsConsumed(t *testing.T) {
	pool := newTestPool(t, 4)
	universe := Universe(models.CategoryAdult)

	consumed := []models.ConsumedPrompt{{
		Category: models.CategoryAdult,
		Prompt:   universe[0],
		Skipped:  true,
	}}

	for i := 0; i < 50; i++ {
		prompt, err := pool.NextPrompt(models.CategoryAdult, consumed)
		require.NoError(t, err)
		assert.NotEqual(t, universe[0], prompt, "a skipped prompt must never be re-offered")
	}
}

func TestExhaustionIsTerminal(t *testing.T) {
	pool := newTestPool(t, 5)

	var consumed []models.ConsumedPrompt
	for _, prompt := range Universe(models.CategoryExtreme) {
		consumed = append(consumed, models.ConsumedPrompt{
			Category: models.CategoryExtreme,
			Prompt:   prompt,
		})
	}

	for i := 0; i < 10; i++ {
		_, err := pool.NextPrompt(models.CategoryExtreme, consumed)
		assert.ErrorIs(t, err, ErrExhausted)
	}
}

func TestAllCategoryMergesEveryPack(t *testing.T) {
	merged := Universe(models.CategoryAll)

	expected := len(Universe(models.CategoryExtreme)) +
		len(Universe(models.CategoryAdult)) +
		len(Universe(models.CategoryLife))
	assert.Len(t, merged, expected)

	for _, prompt := range Universe(models.CategoryLife) {
		assert.Contains(t, merged, prompt)
	}
}

func TestUniverseHasNoDuplicates(t *testing.T) {
	for _, category := range models.Categories {
		seen := make(map[string]bool)
		for _, prompt := range Universe(category) {
			assert.False(t, seen[prompt], "category %s repeats %q", category, prompt)
			seen[prompt] = true
		}
	}
}

func TestRandomDare(t *testing.T) {
	pool := newTestPool(t, 6)

	for i := 0; i < 20; i++ {
		assert.Contains(t, darePrompts, pool.RandomDare())
	}
}
