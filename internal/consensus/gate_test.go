package consensus

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCastNotEligible(t *testing.T) {
	gate := New([]string{"a", "b"})

	err := gate.Cast("intruder", ChoiceAffirm)
	assert.ErrorIs(t, err, ErrNotEligible)
	assert.False(t, gate.Resolved())
}

func TestResolvesOnlyWhenEveryoneVoted(t *testing.T) {
	for _, size := range []int{1, 2, 3, 5, 8} {
		t.Run(fmt.Sprintf("group_of_%d", size), func(t *testing.T) {
			var ids []string
			for i := 0; i < size; i++ {
				ids = append(ids, fmt.Sprintf("voter-%d", i))
			}
			gate := New(ids)

			for i, id := range ids {
				assert.False(t, gate.Resolved(), "resolved before vote %d of %d", i, size)
				require.NoError(t, gate.Cast(id, ChoiceAffirm))
			}
			assert.True(t, gate.Resolved())
		})
	}
}

func TestVoteChangesNeverCountTwice(t *testing.T) {
	gate := New([]string{"a", "b", "c"})

	// a flip-flops repeatedly; only the final choice may count.
	require.NoError(t, gate.Cast("a", ChoiceAffirm))
	require.NoError(t, gate.Cast("a", ChoiceWithdraw))
	require.NoError(t, gate.Cast("a", ChoiceAffirm))
	require.NoError(t, gate.Cast("a", ChoiceWithdraw))

	assert.False(t, gate.Resolved(), "one voter flip-flopping must not resolve a group of three")

	require.NoError(t, gate.Cast("b", ChoiceAffirm))
	require.NoError(t, gate.Cast("c", ChoiceAffirm))
	require.True(t, gate.Resolved())

	outcome, err := gate.Resolve()
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "c"}, outcome.Remaining)
	assert.Equal(t, []string{"a"}, outcome.Departed)
}

func TestResolveBeforeComplete(t *testing.T) {
	gate := New([]string{"a", "b"})
	require.NoError(t, gate.Cast("a", ChoiceAffirm))

	_, err := gate.Resolve()
	assert.ErrorIs(t, err, ErrNotResolved)
}

func TestResolveIsOneShot(t *testing.T) {
	gate := New([]string{"a", "b"})
	require.NoError(t, gate.Cast("a", ChoiceAffirm))
	require.NoError(t, gate.Cast("b", ChoiceWithdraw))

	_, err := gate.Resolve()
	require.NoError(t, err)

	_, err = gate.Resolve()
	assert.ErrorIs(t, err, ErrAlreadyResolved)

	err = gate.Cast("a", ChoiceWithdraw)
	assert.ErrorIs(t, err, ErrAlreadyResolved)
}

func TestProgressSnapshot(t *testing.T) {
	gate := New([]string{"a", "b", "c", "d"})

	require.NoError(t, gate.Cast("b", ChoiceAffirm))
	require.NoError(t, gate.Cast("c", ChoiceWithdraw))

	progress := gate.Progress()
	assert.Equal(t, []string{"b"}, progress.Affirmed)
	assert.Equal(t, []string{"c"}, progress.Withdrawn)
	assert.Equal(t, []string{"a", "d"}, progress.Pending)

	// A changed mind moves the voter between lists, never duplicates them.
	require.NoError(t, gate.Cast("c", ChoiceAffirm))
	progress = gate.Progress()
	assert.Equal(t, []string{"b", "c"}, progress.Affirmed)
	assert.Empty(t, progress.Withdrawn)
	assert.Equal(t, []string{"a", "d"}, progress.Pending)
}

func TestDuplicateEligibleIDsCollapse(t *testing.T) {
	gate := New([]string{"a", "a", "b"})

	require.NoError(t, gate.Cast("a", ChoiceAffirm))
	require.NoError(t, gate.Cast("b", ChoiceAffirm))
	assert.True(t, gate.Resolved())
}
