package game

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/exposedgame/exposed/internal/services/game Service

// Service defines the session state machine contract consumed by the
// transport layer. HandleEvent always completes: recoverable conditions
// come back inside the render instruction, and the session (if it still
// exists) is left in a well-defined stage.
type Service interface {
	HandleEvent(ctx context.Context, input *HandleEventInput) (*HandleEventOutput, error)
}
