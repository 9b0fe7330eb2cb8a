package models

import (
	"time"

	"github.com/exposedgame/exposed/internal/consensus"
)

// Stage represents the current phase of a session's state machine
type Stage string

const (
	// StageCollectingCount indicates the session is waiting for the player count
	StageCollectingCount Stage = "collecting_count"

	// StageCollectingNames indicates the session is waiting for the player list
	StageCollectingNames Stage = "collecting_names"

	// StageChoosingCategory indicates the session is waiting for a category pick
	StageChoosingCategory Stage = "choosing_category"

	// StageConsensusReady indicates the readiness vote is open
	StageConsensusReady Stage = "consensus_ready"

	// StageConsensusRules indicates the rules-acceptance vote is open
	StageConsensusRules Stage = "consensus_rules"

	// StagePlaying indicates a round is in progress
	StagePlaying Stage = "playing"

	// StageAwaitingContinue indicates a dare is on screen and the session is
	// waiting for the continue click
	StageAwaitingContinue Stage = "awaiting_continue"
)

// IsConsensus reports whether the stage has a live vote attached
func (s Stage) IsConsensus() bool {
	return s == StageConsensusReady || s == StageConsensusRules
}

// MinPlayers is the smallest accepted player count
const MinPlayers = 2

// MaxPlayers is the largest accepted player count
const MaxPlayers = 10

// ConsumedPrompt is one entry in a participant's prompt history
type ConsumedPrompt struct {
	// Category is the pack the prompt was drawn from
	Category Category

	// Prompt is the exact prompt text that was issued
	Prompt string

	// Skipped is true once the participant skipped the prompt for a dare
	Skipped bool
}

// Round holds the prompt currently awaiting a response
type Round struct {
	// Alias is the display name of the participant on the spot
	Alias string

	// Prompt is the question they were asked
	Prompt string
}

// Session represents the full mutable state of one game in one room
type Session struct {
	// ID is the unique identifier for this session
	ID string

	// RoomID is the chat room this session belongs to
	RoomID string

	// HostID is the user who started the session
	HostID string

	// Stage is the current phase of the state machine
	Stage Stage

	// ExpectedPlayerCount is the declared player count, 2-10 once set
	ExpectedPlayerCount int

	// Participants is the ordered player list, unique by ID
	Participants []*Participant

	// Category is the active question pack, empty until chosen
	Category Category

	// Consumed maps a participant alias to their prompt history
	Consumed map[string][]ConsumedPrompt

	// CurrentRound is the prompt awaiting a response, nil outside
	// Playing/AwaitingContinue
	CurrentRound *Round

	// Gate is the live vote for the active consensus stage, nil otherwise
	Gate *consensus.Gate

	// CreatedAt is when the session was created
	CreatedAt time.Time

	// UpdatedAt is when the session was last mutated
	UpdatedAt time.Time
}

// HasParticipant reports whether userID is a current participant
func (s *Session) HasParticipant(userID string) bool {
	return s.ParticipantByID(userID) != nil
}

// ParticipantByID returns the participant with the given ID, or nil
func (s *Session) ParticipantByID(userID string) *Participant {
	for _, p := range s.Participants {
		if p.ID == userID {
			return p
		}
	}
	return nil
}

// Aliases returns the display names of all current participants, in order
func (s *Session) Aliases() []string {
	aliases := make([]string, 0, len(s.Participants))
	for _, p := range s.Participants {
		aliases = append(aliases, p.Alias)
	}
	return aliases
}

// ParticipantIDs returns the IDs of all current participants, in order
func (s *Session) ParticipantIDs() []string {
	ids := make([]string, 0, len(s.Participants))
	for _, p := range s.Participants {
		ids = append(ids, p.ID)
	}
	return ids
}

// AliasByID resolves a participant ID to its alias, or "" if unknown
func (s *Session) AliasByID(userID string) string {
	if p := s.ParticipantByID(userID); p != nil {
		return p.Alias
	}
	return ""
}

// RemoveParticipants drops every participant whose ID appears in ids.
// The relative order of the remaining participants is preserved.
func (s *Session) RemoveParticipants(ids []string) {
	departed := make(map[string]bool, len(ids))
	for _, id := range ids {
		departed[id] = true
	}

	kept := make([]*Participant, 0, len(s.Participants))
	for _, p := range s.Participants {
		if !departed[p.ID] {
			kept = append(kept, p)
		}
	}
	s.Participants = kept
}

// RecordPrompt appends an issued prompt to a participant's history
func (s *Session) RecordPrompt(alias string, category Category, prompt string) {
	if s.Consumed == nil {
		s.Consumed = make(map[string][]ConsumedPrompt)
	}
	s.Consumed[alias] = append(s.Consumed[alias], ConsumedPrompt{
		Category: category,
		Prompt:   prompt,
	})
}

// MarkSkipped flags the most recent history entry matching prompt as skipped.
// Entries are never removed, only the flag is set.
func (s *Session) MarkSkipped(alias string, prompt string) {
	log := s.Consumed[alias]
	for i := len(log) - 1; i >= 0; i-- {
		if log[i].Prompt == prompt {
			log[i].Skipped = true
			return
		}
	}
}
