package game

// GameError is a custom error type for game-related errors
type GameError string

// Error implements the error interface
func (e GameError) Error() string {
	return string(e)
}

// Define errors. These are programming errors surfaced to the caller;
// player-facing conditions (wrong stage, bad input, exhaustion) are
// reported inside the RenderInstruction instead.
const (
	ErrNilConfig        GameError = "config cannot be nil"
	ErrNilRegistry      GameError = "session registry cannot be nil"
	ErrNilPool          GameError = "question pool cannot be nil"
	ErrNilTurnEngine    GameError = "turn engine cannot be nil"
	ErrNilClock         GameError = "clock cannot be nil"
	ErrNilUUIDGenerator GameError = "UUID generator cannot be nil"
	ErrNilInput         GameError = "input cannot be nil"
	ErrNilEvent         GameError = "event cannot be nil"
)
