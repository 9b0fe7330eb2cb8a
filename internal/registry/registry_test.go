package registry

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/exposedgame/exposed/internal/models"
)

func TestCreateAndFetch(t *testing.T) {
	reg := New()
	session := &models.Session{ID: "s1", RoomID: "room-1"}

	require.NoError(t, reg.Create(session))

	got, err := reg.Fetch("room-1")
	require.NoError(t, err)
	assert.Same(t, session, got)
}

func TestFetchUnknownRoom(t *testing.T) {
	reg := New()

	_, err := reg.Fetch("room-1")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestCreateDuplicate(t *testing.T) {
	reg := New()

	require.NoError(t, reg.Create(&models.Session{ID: "s1", RoomID: "room-1"}))

	err := reg.Create(&models.Session{ID: "s2", RoomID: "room-1"})
	assert.ErrorIs(t, err, ErrSessionExists)

	got, err := reg.Fetch("room-1")
	require.NoError(t, err)
	assert.Equal(t, "s1", got.ID, "the first session must survive a duplicate create")
}

func TestRoomsAreIndependent(t *testing.T) {
	reg := New()

	require.NoError(t, reg.Create(&models.Session{ID: "s1", RoomID: "room-1"}))
	require.NoError(t, reg.Create(&models.Session{ID: "s2", RoomID: "room-2"}))

	reg.Destroy("room-1")

	_, err := reg.Fetch("room-1")
	assert.ErrorIs(t, err, ErrSessionNotFound)

	got, err := reg.Fetch("room-2")
	require.NoError(t, err)
	assert.Equal(t, "s2", got.ID)
}

func TestDestroyEmptyRoom(t *testing.T) {
	reg := New()

	reg.Destroy("room-1")

	_, err := reg.Fetch("room-1")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestDestroyThenCreateReusesRoom(t *testing.T) {
	reg := New()

	require.NoError(t, reg.Create(&models.Session{ID: "s1", RoomID: "room-1"}))
	reg.Destroy("room-1")
	require.NoError(t, reg.Create(&models.Session{ID: "s2", RoomID: "room-1"}))

	got, err := reg.Fetch("room-1")
	require.NoError(t, err)
	assert.Equal(t, "s2", got.ID)
}

// TestConcurrentStartsResolveToOne drives many goroutines through the
// create-if-absent sequence under the room lock; exactly one create may win.
func TestConcurrentStartsResolveToOne(t *testing.T) {
	reg := New()

	const attempts = 32
	var wg sync.WaitGroup
	var mu sync.Mutex
	created := 0
	rejected := 0

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()

			unlock := reg.LockRoom("room-1")
			defer unlock()

			err := reg.Create(&models.Session{ID: "s", RoomID: "room-1"})

			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				created++
			} else {
				assert.ErrorIs(t, err, ErrSessionExists)
				rejected++
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 1, created)
	assert.Equal(t, attempts-1, rejected)
}
