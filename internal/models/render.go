package models

// RenderKind identifies which screen the transport layer should present
type RenderKind string

const (
	// RenderCollectCount asks the room for the number of players
	RenderCollectCount RenderKind = "collect_count"

	// RenderCollectNames asks the room for the mention+alias list
	RenderCollectNames RenderKind = "collect_names"

	// RenderWarning shows the readiness warning with vote progress
	RenderWarning RenderKind = "warning"

	// RenderRules shows the rules screen with vote progress
	RenderRules RenderKind = "rules"

	// RenderCategorySelect shows the category picker
	RenderCategorySelect RenderKind = "category_select"

	// RenderQuestion shows the current round's question
	RenderQuestion RenderKind = "question"

	// RenderDare shows the dare issued for a skipped question
	RenderDare RenderKind = "dare"

	// RenderExhausted reports that a participant has no unseen prompts left
	RenderExhausted RenderKind = "exhausted"

	// RenderTerminated reports that the session has ended
	RenderTerminated RenderKind = "terminated"

	// RenderError reports a recoverable error to the acting user
	RenderError RenderKind = "error"
)

// Choice IDs offered on render instructions. The transport layer maps these
// to its own interactive components and echoes them back as events.
const (
	ChoiceReady        = "im_ready"
	ChoiceExitWarning  = "exit_warning"
	ChoiceStartGame    = "start_game"
	ChoiceExitRules    = "exit_rules"
	ChoiceNextQuestion = "next_question"
	ChoiceSkipQuestion = "skip_question"
	ChoiceContinue     = "continue_game"
)

// ErrorReason classifies a recoverable error carried by a render
type ErrorReason string

const (
	// ReasonInvalidInput covers bad counts, bad aliases, mismatched lists
	ReasonInvalidInput ErrorReason = "invalid_input"

	// ReasonNotEligible covers actors who are not current participants
	ReasonNotEligible ErrorReason = "not_eligible"

	// ReasonWrongStage covers events that do not apply to the current stage
	ReasonWrongStage ErrorReason = "wrong_stage"
)

// RenderInstruction describes the next screen to present. The core decides
// what to show and which choices are live; how it is drawn is the transport
// layer's business.
type RenderInstruction struct {
	// Kind is the screen to present
	Kind RenderKind

	// Title is the screen heading
	Title string

	// Body is the screen text
	Body string

	// Choices are the option IDs to offer, in order
	Choices []string

	// Ephemeral marks a reply meant only for the acting user
	Ephemeral bool

	// Reason classifies the error, set only for RenderError
	Reason ErrorReason

	// Err carries the recoverable error message, set only for RenderError
	Err string
}
