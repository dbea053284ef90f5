package report

import (
	"fmt"
	"log"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/devmaikelrm/BotModerno-sub000/db"
	"github.com/devmaikelrm/BotModerno-sub000/model"
	"github.com/devmaikelrm/BotModerno-sub000/utils"
)

// ReportCommandHandler handles /reporte: the wizard itself runs over DM, so
// the command just opens the DM and starts it there.
func ReportCommandHandler(s *discordgo.Session, i *discordgo.InteractionCreate) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Flags: discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		log.Printf("Error sending deferred response: %v", err)
		return
	}

	go func() {
		user := interactionUser(i)
		if user == nil {
			return
		}

		channel, err := s.UserChannelCreate(user.ID)
		if err != nil {
			log.Printf("Error opening DM channel for user %s: %v", user.ID, err)
			s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
				Content: utils.StringPtr("❌ No puedo escribirte por privado. Habilita los mensajes directos e inténtalo de nuevo."),
			})
			return
		}

		StartWizard(s, user.ID, channel.ID)

		s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
			Content: utils.StringPtr("📬 Te escribí por privado para crear tu reporte."),
		})
	}()
}

// SubscribeCommandHandler handles /suscribir.
func SubscribeCommandHandler(s *discordgo.Session, i *discordgo.InteractionCreate) {
	user := interactionUser(i)
	if user == nil {
		return
	}

	content := "🔔 Te avisaré por DM cada vez que se apruebe un reporte nuevo."
	if err := db.Subscribe(user.ID); err != nil {
		log.Printf("Error subscribing user %s: %v", user.ID, err)
		content = genericRetryMessage
	}

	s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
}

// UnsubscribeCommandHandler handles /desuscribir.
func UnsubscribeCommandHandler(s *discordgo.Session, i *discordgo.InteractionCreate) {
	user := interactionUser(i)
	if user == nil {
		return
	}

	content := "🔕 No recibirás más avisos de reportes aprobados."
	if err := db.Unsubscribe(user.ID); err != nil {
		log.Printf("Error unsubscribing user %s: %v", user.ID, err)
		content = genericRetryMessage
	}

	s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
}

const lookupPageSize = 10

// LookupCommandHandler handles /misreportes: lists the caller's own reports
// with their moderation status.
func LookupCommandHandler(s *discordgo.Session, i *discordgo.InteractionCreate) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Flags: discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		log.Printf("Error sending deferred response: %v", err)
		return
	}

	go func() {
		user := interactionUser(i)
		if user == nil {
			return
		}

		reports, err := db.ListReportsByAuthor(user.ID)
		if err != nil {
			s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
				Content: utils.StringPtr(fmt.Sprintf("❌ Error consultando tus reportes: %v", err)),
			})
			return
		}

		if len(reports) == 0 {
			s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
				Content: utils.StringPtr("ℹ️ Todavía no has enviado ningún reporte. Usa /reporte para crear uno."),
			})
			return
		}

		embed := &discordgo.MessageEmbed{
			Title:       "📱 Tus reportes",
			Description: fmt.Sprintf("Has enviado %d reportes.", len(reports)),
			Color:       0x5865F2,
			Fields:      []*discordgo.MessageEmbedField{},
		}

		shown := reports
		if len(shown) > lookupPageSize {
			shown = shown[:lookupPageSize]
		}
		for _, r := range shown {
			timestamp := time.Unix(r.CreatedAt, 0).Format("2006-01-02")
			embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
				Name:  fmt.Sprintf("%s `%s`", statusEmoji(r.Status), r.Model),
				Value: fmt.Sprintf("%s • %s • %s", r.CommercialName, r.Status, timestamp),
			})
		}

		s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
			Embeds: &[]*discordgo.MessageEmbed{embed},
		})
	}()
}

func statusEmoji(status string) string {
	switch status {
	case model.StatusApproved:
		return "✅"
	case model.StatusRejected:
		return "❌"
	}
	return "⏳"
}
