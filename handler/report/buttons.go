package report

import (
	"log"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/devmaikelrm/BotModerno-sub000/db"
	"github.com/devmaikelrm/BotModerno-sub000/model"
)

// interactionUser returns the acting user for both DM and guild
// interactions.
func interactionUser(i *discordgo.InteractionCreate) *discordgo.User {
	if i.User != nil {
		return i.User
	}
	if i.Member != nil {
		return i.Member.User
	}
	return nil
}

// ackComponent acknowledges the button press so Discord stops the spinner.
// The transport expects this regardless of business outcome.
func ackComponent(s *discordgo.Session, i *discordgo.InteractionCreate) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredMessageUpdate,
	})
	if err != nil {
		log.Printf("Error acknowledging component interaction: %v", err)
	}
}

// clearComponents removes the buttons from the message the user pressed, so
// a consumed prompt cannot be pressed twice from the same message.
func clearComponents(s *discordgo.Session, i *discordgo.InteractionCreate) {
	_, err := s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
		Components: &[]discordgo.MessageComponent{},
	})
	if err != nil {
		log.Printf("Error clearing components: %v", err)
	}
}

// pressAction is what a wizard button press should do once the transport
// receipt has been sent. pressIgnore covers every malformed, stale or
// unauthorized press.
type pressAction int

const (
	pressIgnore pressAction = iota
	pressAnswer
	pressBack
	pressCancel
)

// resolveWizardPress re-derives authorization and freshness for one wizard
// button press. Custom IDs are "wizard:<verb>[:arg]:<ownerID>"; tokens can be
// replayed or forwarded, so the acting user must match the embedded owner,
// and a press that arrives after the draft was deleted resolves to
// pressIgnore rather than an error. For pressAnswer the returned input is the
// literal text ("si"/"no") that funnels through the same applyAnswer path as
// a typed reply.
func resolveWizardPress(customID, actorID string) (pressAction, string, *model.Draft) {
	parts := strings.Split(customID, ":")
	if len(parts) < 3 {
		return pressIgnore, "", nil
	}
	verb := parts[1]
	owner := parts[len(parts)-1]

	if actorID == "" || actorID != owner {
		return pressIgnore, "", nil
	}

	d, err := db.GetDraft(owner)
	if err != nil {
		log.Printf("Error loading draft for user %s from button: %v", owner, err)
		return pressIgnore, "", nil
	}
	if d == nil {
		// Stale callback: the wizard already finished or was cancelled.
		return pressIgnore, "", nil
	}

	switch verb {
	case "works":
		if len(parts) < 4 || d.Step != model.StepWorks {
			return pressIgnore, "", nil
		}
		answer := "no"
		if parts[2] == "yes" {
			answer = "si"
		}
		return pressAnswer, answer, d
	case "confirm":
		if d.Step != model.StepConfirm {
			return pressIgnore, "", nil
		}
		return pressAnswer, "si", d
	case "back":
		return pressBack, "", d
	case "cancel":
		return pressCancel, "", d
	}
	return pressIgnore, "", nil
}

// WizardComponentHandler dispatches the wizard's button presses.
func WizardComponentHandler(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ackComponent(s, i)

	actor := interactionUser(i)
	var actorID string
	if actor != nil {
		actorID = actor.ID
	}

	action, input, d := resolveWizardPress(i.MessageComponentData().CustomID, actorID)
	if action == pressIgnore {
		return
	}

	clearComponents(s, i)

	switch action {
	case pressAnswer:
		runAnswer(s, i.ChannelID, d, input, actor.Username)
	case pressBack:
		backWizard(s, i.ChannelID, d)
	case pressCancel:
		cancelWizard(s, d.UserID, i.ChannelID)
	}
}
