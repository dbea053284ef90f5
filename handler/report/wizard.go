package report

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/devmaikelrm/BotModerno-sub000/config"
	"github.com/devmaikelrm/BotModerno-sub000/db"
	"github.com/devmaikelrm/BotModerno-sub000/gate"
	"github.com/devmaikelrm/BotModerno-sub000/model"
	"github.com/devmaikelrm/BotModerno-sub000/textutil"
	"github.com/devmaikelrm/BotModerno-sub000/utils"
)

const genericRetryMessage = "😥 Ocurrió un error procesando tu mensaje. Intenta de nuevo o escribe /cancelar."

var accessGate *gate.Gate

// StartWizard creates (or restarts) the user's draft and sends the first
// prompt to the given channel, normally the user's DM.
func StartWizard(s *discordgo.Session, userID, channelID string) {
	d := &model.Draft{UserID: userID, Step: model.StepName}
	if err := db.SaveDraft(d); err != nil {
		log.Printf("Error creating draft for user %s: %v", userID, err)
		s.ChannelMessageSend(channelID, genericRetryMessage)
		return
	}
	if err := sendPrompt(s, channelID, d); err != nil {
		log.Printf("Error sending first prompt to user %s: %v", userID, err)
	}
}

// MessageCreate routes inbound messages. Guild messages only ever hit the
// access gate; the wizard itself lives in DMs.
func MessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	// Ignore our own messages and other bots.
	if m.Author == nil || m.Author.Bot || m.Author.ID == s.State.User.ID {
		return
	}

	defer func() {
		if r := recover(); r != nil {
			log.Printf("Panic handling message from user %s in channel %s: %v", m.Author.ID, m.ChannelID, r)
			if m.GuildID == "" {
				s.ChannelMessageSend(m.ChannelID, genericRetryMessage)
			}
		}
	}()

	if m.GuildID != "" {
		handleGuildMessage(s, m)
		return
	}

	handleDirectMessage(s, m)
}

// handleGuildMessage enforces the access gate on shared channels. Messages
// from members with an unresolved verification challenge are deleted and a
// throttled reminder DM points them at the verification buttons.
func handleGuildMessage(s *discordgo.Session, m *discordgo.MessageCreate) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	decision, err := accessGate.Check(ctx, m.GuildID, m.Author.ID)
	if err != nil {
		log.Printf("Error checking gate for user %s in guild %s: %v", m.Author.ID, m.GuildID, err)
		return
	}

	if decision == gate.DeniedChallenge {
		if err := s.ChannelMessageDelete(m.ChannelID, m.ID); err != nil {
			log.Printf("Error deleting message %s from unverified user %s: %v", m.ID, m.Author.ID, err)
		}
		reminderInterval := time.Duration(config.Cfg.ModerBot.Gate.ReminderSeconds) * time.Second
		if utils.MarkOnce("verify-reminder:"+m.Author.ID, reminderInterval) {
			if channel, err := s.UserChannelCreate(m.Author.ID); err == nil {
				s.ChannelMessageSend(channel.ID, "👋 Antes de escribir en el grupo debes verificarte. Revisa el mensaje de verificación que te envié.")
			}
		}
	}
}

// handleDirectMessage dispatches DM text: a few slash-style commands, and
// everything else as a wizard answer.
func handleDirectMessage(s *discordgo.Session, m *discordgo.MessageCreate) {
	text := strings.TrimSpace(m.Content)
	if text == "" {
		return
	}

	switch textutil.Normalize(text) {
	case "/report", "/reporte", "/start":
		StartWizard(s, m.Author.ID, m.ChannelID)
		return
	case "/cancel", "/cancelar":
		cancelWizard(s, m.Author.ID, m.ChannelID)
		return
	case "/subscribe", "/suscribir":
		subscribeUser(s, m.Author.ID, m.ChannelID)
		return
	case "/unsubscribe", "/desuscribir":
		unsubscribeUser(s, m.Author.ID, m.ChannelID)
		return
	}

	d, err := db.GetDraft(m.Author.ID)
	if err != nil {
		log.Printf("Error loading draft for user %s: %v", m.Author.ID, err)
		s.ChannelMessageSend(m.ChannelID, genericRetryMessage)
		return
	}
	if d == nil {
		s.ChannelMessageSend(m.ChannelID, "No tienes ningún reporte en curso. Usa /reporte para comenzar.")
		return
	}

	runAnswer(s, m.ChannelID, d, text, m.Author.Username)
}

// runAnswer applies one answer to the draft and executes the outcome. The
// draft is persisted before the next prompt is sent, so a crash in between
// only costs the user a repeated question, never an answer.
func runAnswer(s *discordgo.Session, channelID string, d *model.Draft, input, nickname string) {
	out := applyAnswer(d, input)

	switch {
	case out.submit:
		finalizeSubmission(s, channelID, d, nickname)

	case out.remove:
		if err := db.DeleteDraft(d.UserID); err != nil {
			log.Printf("Error deleting draft for user %s: %v", d.UserID, err)
			s.ChannelMessageSend(channelID, genericRetryMessage)
			return
		}
		s.ChannelMessageSend(channelID, out.reply)

	case out.save:
		if err := db.SaveDraft(d); err != nil {
			log.Printf("Error saving draft for user %s at step %s: %v", d.UserID, d.Step, err)
			s.ChannelMessageSend(channelID, genericRetryMessage)
			return
		}
		if err := sendPrompt(s, channelID, d); err != nil {
			log.Printf("Error sending prompt to user %s at step %s: %v", d.UserID, d.Step, err)
		}

	default:
		// Rejected answer: re-prompt without touching the draft.
		s.ChannelMessageSend(channelID, out.reply)
	}
}

// finalizeSubmission runs the moderation-layer insert and messages the user
// according to the tagged result.
func finalizeSubmission(s *discordgo.Session, channelID string, d *model.Draft, nickname string) {
	status, r := Submit(d, nickname)

	switch status {
	case SubmitCreated:
		s.ChannelMessageSend(channelID, "✅ ¡Gracias! Tu reporte fue enviado y está pendiente de revisión.")
		SendReportToReviewChannel(s, r)

	case SubmitDuplicate:
		s.ChannelMessageSend(channelID, "⚠️ Ese modelo ya fue reportado por otra persona. Usa Atrás para cambiar el modelo, o /cancelar para descartar el reporte.")
		// The draft stays at confirm but the pressed prompt lost its
		// buttons; re-send the summary so Atrás is actually available.
		if err := sendPrompt(s, channelID, d); err != nil {
			log.Printf("Error re-sending confirm prompt to user %s: %v", d.UserID, err)
		}

	case SubmitInvalid:
		s.ChannelMessageSend(channelID, "Tu reporte está incompleto y no puede enviarse. Usa /cancelar y empieza de nuevo con /reporte.")

	case SubmitFailed:
		s.ChannelMessageSend(channelID, "😥 No pude guardar tu reporte. Tus respuestas siguen ahí: responde sí para reintentar, o escribe /cancelar.")
	}
}

// backWizard rewinds the draft one step and re-prompts.
func backWizard(s *discordgo.Session, channelID string, d *model.Draft) {
	d.Step = previousStep(d)
	if err := db.SaveDraft(d); err != nil {
		log.Printf("Error saving draft for user %s going back: %v", d.UserID, err)
		s.ChannelMessageSend(channelID, genericRetryMessage)
		return
	}
	if err := sendPrompt(s, channelID, d); err != nil {
		log.Printf("Error sending prompt to user %s after back: %v", d.UserID, err)
	}
}

// cancelWizard deletes the user's draft unconditionally.
func cancelWizard(s *discordgo.Session, userID, channelID string) {
	if err := db.DeleteDraft(userID); err != nil {
		log.Printf("Error deleting draft for user %s: %v", userID, err)
		s.ChannelMessageSend(channelID, genericRetryMessage)
		return
	}
	s.ChannelMessageSend(channelID, "Reporte descartado. Puedes empezar de nuevo con /reporte.")
}

func subscribeUser(s *discordgo.Session, userID, channelID string) {
	if err := db.Subscribe(userID); err != nil {
		log.Printf("Error subscribing user %s: %v", userID, err)
		s.ChannelMessageSend(channelID, genericRetryMessage)
		return
	}
	s.ChannelMessageSend(channelID, "🔔 Te avisaré por DM cada vez que se apruebe un reporte nuevo.")
}

func unsubscribeUser(s *discordgo.Session, userID, channelID string) {
	if err := db.Unsubscribe(userID); err != nil {
		log.Printf("Error unsubscribing user %s: %v", userID, err)
		s.ChannelMessageSend(channelID, genericRetryMessage)
		return
	}
	s.ChannelMessageSend(channelID, "🔕 No recibirás más avisos de reportes aprobados.")
}
