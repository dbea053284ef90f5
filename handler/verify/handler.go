// Package verify runs the human-verification challenge for new members of
// gated guilds.
package verify

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/devmaikelrm/BotModerno-sub000/gate"
)

var accessGate *gate.Gate

// GuildMemberAdd creates a challenge for every human member joining a guild
// and DMs them the verification prompt. The redis TTL is the authoritative
// timeout; the AfterFunc below only executes the removal side of an expiry,
// and Resolve's conditional delete makes it race-safe against a late button
// press.
func GuildMemberAdd(s *discordgo.Session, e *discordgo.GuildMemberAdd) {
	if e.User == nil || e.User.Bot {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	challenges := accessGate.Challenges()
	created, err := challenges.Create(ctx, e.GuildID, e.User.ID)
	if err != nil {
		log.Printf("Error creating challenge for user %s in guild %s: %v", e.User.ID, e.GuildID, err)
		return
	}
	if !created {
		// Duplicate join event; the existing challenge keeps its clock.
		return
	}

	sendChallengePrompt(s, e.GuildID, e.User.ID)

	guildID, userID := e.GuildID, e.User.ID
	time.AfterFunc(challenges.TTL(), func() {
		expireChallenge(s, guildID, userID)
	})
}

func sendChallengePrompt(s *discordgo.Session, guildID, userID string) {
	channel, err := s.UserChannelCreate(userID)
	if err != nil {
		log.Printf("Error opening DM channel for new member %s: %v", userID, err)
		return
	}

	token := guildID + ":" + userID
	_, err = s.ChannelMessageSendComplex(channel.ID, &discordgo.MessageSend{
		Content: "👋 ¡Bienvenido! Antes de participar en el grupo confirma que eres una persona. Tienes 2 minutos.",
		Components: []discordgo.MessageComponent{
			discordgo.ActionsRow{
				Components: []discordgo.MessageComponent{
					discordgo.Button{
						Label:    "Soy humano",
						Style:    discordgo.SuccessButton,
						CustomID: "verify:ok:" + token,
						Emoji:    &discordgo.ComponentEmoji{Name: "🙋"},
					},
					discordgo.Button{
						Label:    "No, gracias",
						Style:    discordgo.DangerButton,
						CustomID: "verify:no:" + token,
						Emoji:    &discordgo.ComponentEmoji{Name: "🚪"},
					},
				},
			},
		},
	})
	if err != nil {
		log.Printf("Error sending challenge prompt to user %s: %v", userID, err)
	}
}

// expireChallenge fires when the TTL elapses without a button press. The
// conditional Resolve guarantees the removal runs exactly once even if a
// verify press races the timer.
func expireChallenge(s *discordgo.Session, guildID, userID string) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	resolved, err := accessGate.Challenges().Resolve(ctx, guildID, userID)
	if err != nil {
		log.Printf("Error resolving expired challenge for user %s in guild %s: %v", userID, guildID, err)
		return
	}
	if !resolved {
		// Already verified or declined.
		return
	}

	removeMember(s, guildID, userID)
}

// removeMember kicks the user. A kick does not ban: the user can rejoin
// immediately and gets a fresh challenge, which is the intended "retry"
// semantics for both decline and timeout.
func removeMember(s *discordgo.Session, guildID, userID string) {
	err := s.GuildMemberDeleteWithReason(guildID, userID, "Verificación no completada")
	if err != nil {
		log.Printf("Error removing unverified member %s from guild %s: %v", userID, guildID, err)
	}
}

// ComponentHandler handles the verify/decline buttons. Custom IDs are
// "verify:<verb>:<guildID>:<userID>"; the acting user must match the
// embedded user, and a press after expiry finds no challenge and is a no-op.
func ComponentHandler(s *discordgo.Session, i *discordgo.InteractionCreate) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredMessageUpdate,
	})
	if err != nil {
		log.Printf("Error acknowledging verify interaction: %v", err)
	}

	parts := strings.Split(i.MessageComponentData().CustomID, ":")
	if len(parts) < 4 {
		return
	}
	verb, guildID, userID := parts[1], parts[2], parts[3]

	actor := interactionUser(i)
	if actor == nil || actor.ID != userID {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	resolved, err := accessGate.Challenges().Resolve(ctx, guildID, userID)
	if err != nil {
		log.Printf("Error resolving challenge for user %s in guild %s: %v", userID, guildID, err)
		return
	}
	if !resolved {
		// Expired or double press; the first resolution already won.
		return
	}

	var content string
	switch verb {
	case "ok":
		content = "✅ ¡Verificado! Ya puedes escribir en el grupo."
	case "no":
		removeMember(s, guildID, userID)
		content = "🚪 Fuiste retirado del grupo. Puedes volver a entrar cuando quieras verificarte."
	default:
		return
	}

	_, err = s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
		Content:    &content,
		Components: &[]discordgo.MessageComponent{},
	})
	if err != nil {
		log.Printf("Error updating verification message for user %s: %v", userID, err)
	}
}

func interactionUser(i *discordgo.InteractionCreate) *discordgo.User {
	if i.User != nil {
		return i.User
	}
	if i.Member != nil {
		return i.Member.User
	}
	return nil
}
