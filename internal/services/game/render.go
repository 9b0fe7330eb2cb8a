package game

import (
	"fmt"
	"strings"

	"github.com/exposedgame/exposed/internal/models"
)

// Screen construction. The service decides which screen comes next and
// what it says; the transport layer owns how it is drawn.

func renderOut(render *models.RenderInstruction) *HandleEventOutput {
	return &HandleEventOutput{Render: render}
}

func errorOut(reason models.ErrorReason, msg string) *HandleEventOutput {
	return renderOut(errorRender(reason, msg))
}

func errorRender(reason models.ErrorReason, msg string) *models.RenderInstruction {
	return &models.RenderInstruction{
		Kind:      models.RenderError,
		Title:     "Hold on",
		Body:      msg,
		Reason:    reason,
		Err:       msg,
		Ephemeral: true,
	}
}

// wrongStageOut builds the "wrong stage" error with a hint about what the
// session is actually waiting for
func wrongStageOut(stage models.Stage) *HandleEventOutput {
	var hint string
	switch stage {
	case models.StageCollectingCount:
		hint = "Please enter the number of players first."
	case models.StageCollectingNames:
		hint = "Please register the players first."
	case models.StageChoosingCategory:
		hint = "Please wait until category selection is open."
	case models.StageConsensusReady:
		hint = "Please wait until the warning stage is shown."
	case models.StageConsensusRules:
		hint = "Please wait until all players reach the rules stage."
	case models.StagePlaying:
		hint = "Please wait until the game is in progress."
	case models.StageAwaitingContinue:
		hint = "Please wait until the dare is done."
	default:
		hint = "That action does not apply right now."
	}
	return errorOut(models.ReasonWrongStage, hint)
}

func renderCollectCount() *models.RenderInstruction {
	return &models.RenderInstruction{
		Kind:  models.RenderCollectCount,
		Title: "Exposed: Battle of Minds",
		Body:  "Please enter the number of players (2-10).",
	}
}

func renderCollectNames(count int) *models.RenderInstruction {
	return &models.RenderInstruction{
		Kind:  models.RenderCollectNames,
		Title: "Player Count Set",
		Body: fmt.Sprintf(
			"You entered %d players.\n\n"+
				"Now mention each player and their alias, using `as`.\n"+
				"Example: `@david696 as Jeevan, @alice123 as Priya`",
			count),
	}
}

func participantCountMismatch(expected, got int) string {
	return fmt.Sprintf(
		"You said there would be %d players, but I see %d entries. "+
			"Please register exactly %d players with aliases.",
		expected, got, expected)
}

func renderCategorySelect(aliases []string) *models.RenderInstruction {
	choices := make([]string, 0, len(models.Categories))
	for _, c := range models.Categories {
		choices = append(choices, string(c))
	}

	return &models.RenderInstruction{
		Kind:    models.RenderCategorySelect,
		Title:   "Players Registered",
		Body:    fmt.Sprintf("Players: %s\n\nNow pick a category to begin:", strings.Join(aliases, ", ")),
		Choices: choices,
	}
}

func renderWarning(sess *models.Session) *models.RenderInstruction {
	var b strings.Builder
	b.WriteString("WARNING\n")
	b.WriteString("This game is not for the weak-hearted.\n")
	b.WriteString("It will test your courage, vulnerability, and honesty.\n")
	b.WriteString("If you're afraid to face your own truth, do not play.\n\n")
	writeVoteProgress(&b, sess, "Ready", "Exited")
	b.WriteString("\nClick I'M READY to stay, or EXIT to quit.")

	return &models.RenderInstruction{
		Kind:    models.RenderWarning,
		Title:   "Warning",
		Body:    b.String(),
		Choices: []string{models.ChoiceReady, models.ChoiceExitWarning},
	}
}

func renderRules(sess *models.Session) *models.RenderInstruction {
	var b strings.Builder
	b.WriteString("Rules of the Game:\n")
	b.WriteString("1. Answer honestly or skip and face the dare.\n")
	b.WriteString("2. No judgment. No filters. No pretending.\n")
	b.WriteString("3. If you lie, you lose.\n\n")
	writeVoteProgress(&b, sess, "Accepted", "Exited")
	b.WriteString("\nBy clicking START GAME you accept these rules and agree to play.")

	return &models.RenderInstruction{
		Kind:    models.RenderRules,
		Title:   "Rules of the Game",
		Body:    b.String(),
		Choices: []string{models.ChoiceStartGame, models.ChoiceExitRules},
	}
}

// writeVoteProgress appends the affirmed/withdrawn/pending alias lists of
// the live gate, resolving voter IDs through the session
func writeVoteProgress(b *strings.Builder, sess *models.Session, affirmLabel, withdrawLabel string) {
	if sess.Gate == nil {
		return
	}
	progress := sess.Gate.Progress()

	if aliases := aliasesFor(sess, progress.Affirmed); len(aliases) > 0 {
		fmt.Fprintf(b, "%s: %s\n", affirmLabel, strings.Join(aliases, ", "))
	}
	if aliases := aliasesFor(sess, progress.Withdrawn); len(aliases) > 0 {
		fmt.Fprintf(b, "%s: %s\n", withdrawLabel, strings.Join(aliases, ", "))
	}
	if aliases := aliasesFor(sess, progress.Pending); len(aliases) > 0 {
		fmt.Fprintf(b, "Waiting for: %s\n", strings.Join(aliases, ", "))
	}
}

func aliasesFor(sess *models.Session, ids []string) []string {
	aliases := make([]string, 0, len(ids))
	for _, id := range ids {
		if alias := sess.AliasByID(id); alias != "" {
			aliases = append(aliases, alias)
		}
	}
	return aliases
}

func renderQuestion(round *models.Round) *models.RenderInstruction {
	return &models.RenderInstruction{
		Kind:    models.RenderQuestion,
		Title:   fmt.Sprintf("%s'S TURN", strings.ToUpper(round.Alias)),
		Body:    round.Prompt,
		Choices: []string{models.ChoiceNextQuestion, models.ChoiceSkipQuestion},
	}
}

func renderDare(alias, dare string) *models.RenderInstruction {
	return &models.RenderInstruction{
		Kind:    models.RenderDare,
		Title:   "You Skipped!",
		Body:    fmt.Sprintf("Dare for %s:\n%s\n\nClick Continue when you're done.", strings.ToUpper(alias), dare),
		Choices: []string{models.ChoiceContinue},
	}
}

func renderExhausted(category models.Category) *models.RenderInstruction {
	return &models.RenderInstruction{
		Kind:  models.RenderExhausted,
		Title: "All Questions Finished",
		Body: fmt.Sprintf(
			"All questions in %s have been used. "+
				"Type `changecategory` to pick another pack, or `end` to finish.",
			category.DisplayName()),
	}
}

func renderTerminated(body string) *models.RenderInstruction {
	return &models.RenderInstruction{
		Kind:  models.RenderTerminated,
		Title: "Game Over",
		Body:  body,
	}
}
