package game

import (
	"github.com/exposedgame/exposed/internal/common/clock"
	"github.com/exposedgame/exposed/internal/common/uuid"
	"github.com/exposedgame/exposed/internal/consensus"
	"github.com/exposedgame/exposed/internal/models"
	"github.com/exposedgame/exposed/internal/questions"
	"github.com/exposedgame/exposed/internal/registry"
	"github.com/exposedgame/exposed/internal/turns"
)

// Config holds configuration for the game service
type Config struct {
	// Registry is the process-wide session store
	Registry *registry.Registry

	// Pool issues unseen prompts and dares
	Pool *questions.Pool

	// Turns picks the next acting participant
	Turns *turns.Engine

	// Service dependencies
	Clock         clock.Clock
	UUIDGenerator uuid.UUID
}

// Event is the tagged union of everything the transport layer can deliver.
// Implementations are the *Event structs below; nothing outside this
// package satisfies the interface.
type Event interface {
	isEvent()
}

// StartEvent requests a new session for the room
type StartEvent struct{}

// CountSubmittedEvent carries the declared player count
type CountSubmittedEvent struct {
	Count int
}

// NameEntry is one pre-validated (id, alias) pair
type NameEntry struct {
	ID    string
	Alias string
}

// NamesSubmittedEvent carries the full registration list
type NamesSubmittedEvent struct {
	Entries []NameEntry
}

// CategoryChosenEvent carries the picked question pack
type CategoryChosenEvent struct {
	Category models.Category
}

// VoteEvent carries one consensus choice from the acting user
type VoteEvent struct {
	Choice consensus.Choice
}

// AdvanceEvent asks for the next turn and question
type AdvanceEvent struct{}

// SkipEvent skips the current question in exchange for a dare
type SkipEvent struct{}

// ContinueEvent resumes play after a dare
type ContinueEvent struct{}

// ChangeCategoryEvent reopens category selection mid-game
type ChangeCategoryEvent struct{}

// EndEvent tears the session down from any stage
type EndEvent struct{}

func (*StartEvent) isEvent()          {}
func (*CountSubmittedEvent) isEvent() {}
func (*NamesSubmittedEvent) isEvent() {}
func (*CategoryChosenEvent) isEvent() {}
func (*VoteEvent) isEvent()           {}
func (*AdvanceEvent) isEvent()        {}
func (*SkipEvent) isEvent()           {}
func (*ContinueEvent) isEvent()       {}
func (*ChangeCategoryEvent) isEvent() {}
func (*EndEvent) isEvent()            {}

// HandleEventInput contains one discrete event for one room
type HandleEventInput struct {
	// RoomID identifies the chat room, treated as opaque
	RoomID string

	// ActorID identifies the acting user, treated as opaque
	ActorID string

	// Event is what happened
	Event Event
}

// HandleEventOutput contains the result of processing an event
type HandleEventOutput struct {
	// Render describes the next screen to present
	Render *models.RenderInstruction

	// SessionEnded is true when this event destroyed the session
	SessionEnded bool
}
