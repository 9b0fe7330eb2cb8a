package game

import (
	"context"
	"errors"

	"github.com/exposedgame/exposed/internal/common/clock"
	"github.com/exposedgame/exposed/internal/common/uuid"
	"github.com/exposedgame/exposed/internal/consensus"
	"github.com/exposedgame/exposed/internal/models"
	"github.com/exposedgame/exposed/internal/questions"
	"github.com/exposedgame/exposed/internal/registry"
	"github.com/exposedgame/exposed/internal/turns"
)

// service implements the Service interface
type service struct {
	registry *registry.Registry
	pool     *questions.Pool
	turns    *turns.Engine
	clock    clock.Clock
	uuids    uuid.UUID
}

// New creates a new game service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.Registry == nil {
		return nil, ErrNilRegistry
	}
	if cfg.Pool == nil {
		return nil, ErrNilPool
	}
	if cfg.Turns == nil {
		return nil, ErrNilTurnEngine
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}
	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	return &service{
		registry: cfg.Registry,
		pool:     cfg.Pool,
		turns:    cfg.Turns,
		clock:    cfg.Clock,
		uuids:    cfg.UUIDGenerator,
	}, nil
}

// HandleEvent processes one event for one room. Events for a room run
// strictly one at a time: the room lock is held for the full duration.
func (s *service) HandleEvent(ctx context.Context, input *HandleEventInput) (*HandleEventOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}
	if input.Event == nil {
		return nil, ErrNilEvent
	}

	unlock := s.registry.LockRoom(input.RoomID)
	defer unlock()

	sess, err := s.registry.Fetch(input.RoomID)
	if err != nil && !errors.Is(err, registry.ErrSessionNotFound) {
		return nil, err
	}

	// Start and End apply whether or not a session exists.
	switch input.Event.(type) {
	case *StartEvent:
		return s.handleStart(input, sess)
	case *EndEvent:
		return s.handleEnd(input, sess)
	}

	if sess == nil {
		return errorOut(models.ReasonWrongStage,
			"There is no active game currently. Start a new game with /exposed."), nil
	}

	switch ev := input.Event.(type) {
	case *CountSubmittedEvent:
		return s.handleCount(sess, ev)
	case *NamesSubmittedEvent:
		return s.handleNames(sess, ev)
	case *CategoryChosenEvent:
		return s.handleCategory(sess, input.ActorID, ev)
	case *VoteEvent:
		return s.handleVote(sess, input.ActorID, ev)
	case *AdvanceEvent:
		return s.handleAdvance(sess, input.ActorID)
	case *SkipEvent:
		return s.handleSkip(sess, input.ActorID)
	case *ContinueEvent:
		return s.handleContinue(sess, input.ActorID)
	case *ChangeCategoryEvent:
		return s.handleChangeCategory(sess, input.ActorID)
	default:
		return nil, ErrNilEvent
	}
}

func (s *service) handleStart(input *HandleEventInput, sess *models.Session) (*HandleEventOutput, error) {
	if sess != nil {
		return errorOut(models.ReasonWrongStage,
			"A game is already running in this room. Type `end` to finish it first."), nil
	}

	now := s.clock.Now()
	sess = &models.Session{
		ID:        s.uuids.NewUUID(),
		RoomID:    input.RoomID,
		HostID:    input.ActorID,
		Stage:     models.StageCollectingCount,
		Consumed:  make(map[string][]models.ConsumedPrompt),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.registry.Create(sess); err != nil {
		return nil, err
	}

	return renderOut(renderCollectCount()), nil
}

func (s *service) handleEnd(input *HandleEventInput, sess *models.Session) (*HandleEventOutput, error) {
	if sess == nil {
		return errorOut(models.ReasonWrongStage,
			"No active game session to end in this room."), nil
	}

	s.destroy(sess)
	out := renderOut(renderTerminated("The game session has been ended. Thanks for playing!"))
	out.SessionEnded = true
	return out, nil
}

func (s *service) handleCount(sess *models.Session, ev *CountSubmittedEvent) (*HandleEventOutput, error) {
	if sess.Stage != models.StageCollectingCount {
		return wrongStageOut(sess.Stage), nil
	}

	if ev.Count < models.MinPlayers || ev.Count > models.MaxPlayers {
		return errorOut(models.ReasonInvalidInput,
			"Please enter a number between 2 and 10."), nil
	}

	sess.ExpectedPlayerCount = ev.Count
	sess.Stage = models.StageCollectingNames
	s.touch(sess)

	return renderOut(renderCollectNames(ev.Count)), nil
}

func (s *service) handleNames(sess *models.Session, ev *NamesSubmittedEvent) (*HandleEventOutput, error) {
	if sess.Stage != models.StageCollectingNames {
		return wrongStageOut(sess.Stage), nil
	}

	if render := validateNames(ev.Entries, sess.ExpectedPlayerCount); render != nil {
		return renderOut(render), nil
	}

	participants := make([]*models.Participant, 0, len(ev.Entries))
	for _, entry := range ev.Entries {
		participants = append(participants, &models.Participant{
			ID:    entry.ID,
			Alias: entry.Alias,
		})
	}

	sess.Participants = participants
	sess.Stage = models.StageChoosingCategory
	s.touch(sess)

	return renderOut(renderCategorySelect(sess.Aliases())), nil
}

func (s *service) handleCategory(sess *models.Session, actorID string, ev *CategoryChosenEvent) (*HandleEventOutput, error) {
	if sess.Stage != models.StageChoosingCategory {
		return wrongStageOut(sess.Stage), nil
	}
	if render := requireParticipant(sess, actorID); render != nil {
		return renderOut(render), nil
	}
	if !ev.Category.IsValid() {
		return errorOut(models.ReasonInvalidInput, "That is not a selectable category."), nil
	}

	sess.Category = ev.Category
	sess.Gate = consensus.New(sess.ParticipantIDs())
	sess.Stage = models.StageConsensusReady
	s.touch(sess)

	return renderOut(renderWarning(sess)), nil
}

func (s *service) handleVote(sess *models.Session, actorID string, ev *VoteEvent) (*HandleEventOutput, error) {
	if !sess.Stage.IsConsensus() || sess.Gate == nil {
		return wrongStageOut(sess.Stage), nil
	}

	if err := sess.Gate.Cast(actorID, ev.Choice); err != nil {
		if errors.Is(err, consensus.ErrNotEligible) {
			return errorOut(models.ReasonNotEligible,
				"You are not a listed player for this game."), nil
		}
		return nil, err
	}
	s.touch(sess)

	if !sess.Gate.Resolved() {
		return renderOut(s.renderConsensusProgress(sess)), nil
	}

	outcome, err := sess.Gate.Resolve()
	if err != nil {
		return nil, err
	}
	sess.Gate = nil
	sess.RemoveParticipants(outcome.Departed)

	if len(sess.Participants) < models.MinPlayers {
		s.destroy(sess)
		out := renderOut(renderTerminated("Not enough players remain. Game canceled."))
		out.SessionEnded = true
		return out, nil
	}

	if sess.Stage == models.StageConsensusReady {
		sess.Gate = consensus.New(sess.ParticipantIDs())
		sess.Stage = models.StageConsensusRules
		s.touch(sess)
		return renderOut(renderRules(sess)), nil
	}

	// Rules accepted by everyone left: the game begins.
	return s.nextRound(sess)
}

func (s *service) handleAdvance(sess *models.Session, actorID string) (*HandleEventOutput, error) {
	if sess.Stage != models.StagePlaying {
		return wrongStageOut(sess.Stage), nil
	}
	if render := requireParticipant(sess, actorID); render != nil {
		return renderOut(render), nil
	}

	return s.nextRound(sess)
}

func (s *service) handleSkip(sess *models.Session, actorID string) (*HandleEventOutput, error) {
	if sess.Stage != models.StagePlaying {
		return wrongStageOut(sess.Stage), nil
	}
	if sess.CurrentRound == nil {
		return errorOut(models.ReasonWrongStage,
			"There is no question on the table to skip."), nil
	}
	if render := requireParticipant(sess, actorID); render != nil {
		return renderOut(render), nil
	}

	round := sess.CurrentRound
	sess.MarkSkipped(round.Alias, round.Prompt)

	dare := s.pool.RandomDare()
	sess.CurrentRound = nil
	sess.Stage = models.StageAwaitingContinue
	s.touch(sess)

	return renderOut(renderDare(round.Alias, dare)), nil
}

func (s *service) handleContinue(sess *models.Session, actorID string) (*HandleEventOutput, error) {
	if sess.Stage != models.StageAwaitingContinue {
		return wrongStageOut(sess.Stage), nil
	}
	if render := requireParticipant(sess, actorID); render != nil {
		return renderOut(render), nil
	}

	return s.nextRound(sess)
}

func (s *service) handleChangeCategory(sess *models.Session, actorID string) (*HandleEventOutput, error) {
	if sess.Stage != models.StagePlaying {
		return wrongStageOut(sess.Stage), nil
	}
	if render := requireParticipant(sess, actorID); render != nil {
		return renderOut(render), nil
	}

	s.turns.Reset(sess.RoomID)
	sess.Category = ""
	sess.CurrentRound = nil
	sess.Stage = models.StageChoosingCategory
	s.touch(sess)

	return renderOut(renderCategorySelect(sess.Aliases())), nil
}

// nextRound draws the next turn and an unseen prompt for that participant.
// On exhaustion the session stays in Playing with no round on the table.
func (s *service) nextRound(sess *models.Session) (*HandleEventOutput, error) {
	sess.Stage = models.StagePlaying
	sess.CurrentRound = nil
	s.touch(sess)

	alias, err := s.turns.NextTurn(sess.RoomID, sess.Aliases())
	if err != nil {
		return nil, err
	}

	prompt, err := s.pool.NextPrompt(sess.Category, sess.Consumed[alias])
	if err != nil {
		if errors.Is(err, questions.ErrExhausted) {
			return renderOut(renderExhausted(sess.Category)), nil
		}
		return nil, err
	}

	sess.RecordPrompt(alias, sess.Category, prompt)
	sess.CurrentRound = &models.Round{Alias: alias, Prompt: prompt}

	return renderOut(renderQuestion(sess.CurrentRound)), nil
}

// destroy tears the session down and drops its rotation state
func (s *service) destroy(sess *models.Session) {
	s.registry.Destroy(sess.RoomID)
	s.turns.Reset(sess.RoomID)
}

func (s *service) touch(sess *models.Session) {
	sess.UpdatedAt = s.clock.Now()
}

func (s *service) renderConsensusProgress(sess *models.Session) *models.RenderInstruction {
	if sess.Stage == models.StageConsensusReady {
		return renderWarning(sess)
	}
	return renderRules(sess)
}

// requireParticipant returns an error render when the actor is not a
// current participant, nil otherwise
func requireParticipant(sess *models.Session, actorID string) *models.RenderInstruction {
	if sess.HasParticipant(actorID) {
		return nil
	}
	return errorRender(models.ReasonNotEligible,
		"You are not a listed player for this game.")
}

// validateNames checks the registration list: exact count, alias length
// bounds, no duplicate IDs or aliases. Returns an error render or nil.
func validateNames(entries []NameEntry, expected int) *models.RenderInstruction {
	if len(entries) != expected {
		return errorRender(models.ReasonInvalidInput,
			participantCountMismatch(expected, len(entries)))
	}

	seenIDs := make(map[string]struct{}, len(entries))
	seenAliases := make(map[string]struct{}, len(entries))
	for _, entry := range entries {
		if entry.ID == "" || !models.ValidAlias(entry.Alias) {
			return errorRender(models.ReasonInvalidInput,
				"Each player needs a mention and an alias of 1-20 characters.")
		}
		if _, dup := seenIDs[entry.ID]; dup {
			return errorRender(models.ReasonInvalidInput,
				"Each player can only be registered once.")
		}
		if _, dup := seenAliases[entry.Alias]; dup {
			return errorRender(models.ReasonInvalidInput,
				"Each alias can only be used once.")
		}
		seenIDs[entry.ID] = struct{}{}
		seenAliases[entry.Alias] = struct{}{}
	}
	return nil
}
