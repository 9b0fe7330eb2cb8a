// Package registry owns the process-wide room-to-session map. Events for a
// room are serialized by the room lock; the map itself has its own mutex so
// rooms stay independent of each other.
package registry

import (
	"errors"
	"sync"

	"github.com/exposedgame/exposed/internal/models"
)

var (
	// ErrSessionExists indicates a session is already running in the room
	ErrSessionExists = errors.New("session already exists for this room")

	// ErrSessionNotFound indicates the room has no active session
	ErrSessionNotFound = errors.New("no active session for this room")
)

// room is the per-room slot. The slot outlives the sessions it holds so
// the lock stays valid across destroy/create cycles.
type room struct {
	mu      sync.Mutex
	session *models.Session
}

// Registry is the process-wide session store
type Registry struct {
	mu    sync.Mutex
	rooms map[string]*room
}

// New creates an empty registry
func New() *Registry {
	return &Registry{
		rooms: make(map[string]*room),
	}
}

func (r *Registry) slot(roomID string) *room {
	r.mu.Lock()
	defer r.mu.Unlock()

	slot, ok := r.rooms[roomID]
	if !ok {
		slot = &room{}
		r.rooms[roomID] = slot
	}
	return slot
}

// LockRoom acquires the room's event lock and returns the release func.
// Every event for a room, including session create and destroy, must run
// under this lock; two concurrent starts for the same empty room then
// resolve to one create and one ErrSessionExists.
func (r *Registry) LockRoom(roomID string) func() {
	slot := r.slot(roomID)
	slot.mu.Lock()
	return slot.mu.Unlock
}

// Create stores a new session for its room. Fails with ErrSessionExists if
// the room already has one.
func (r *Registry) Create(session *models.Session) error {
	slot := r.slot(session.RoomID)
	if slot.session != nil {
		return ErrSessionExists
	}
	slot.session = session
	return nil
}

// Fetch returns the room's session, or ErrSessionNotFound
func (r *Registry) Fetch(roomID string) (*models.Session, error) {
	slot := r.slot(roomID)
	if slot.session == nil {
		return nil, ErrSessionNotFound
	}
	return slot.session, nil
}

// Destroy removes the room's session. Destroying an empty room is a no-op.
func (r *Registry) Destroy(roomID string) {
	slot := r.slot(roomID)
	slot.session = nil
}
