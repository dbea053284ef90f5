package report

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/devmaikelrm/BotModerno-sub000/config"
	"github.com/devmaikelrm/BotModerno-sub000/db"
	"github.com/devmaikelrm/BotModerno-sub000/model"
	"github.com/devmaikelrm/BotModerno-sub000/utils"
)

// SendReportToReviewChannel posts a pending report to the moderation channel
// with approve/reject buttons.
func SendReportToReviewChannel(s *discordgo.Session, r *model.Report) {
	reviewChannelID := config.Cfg.ModerBot.Report.ReviewChannelID
	if reviewChannelID == "" {
		log.Printf("Review channel ID not configured")
		return
	}

	components := []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{
					Label:    "Aprobar",
					Style:    discordgo.SuccessButton,
					CustomID: "review:approve:" + r.ID,
					Emoji:    &discordgo.ComponentEmoji{Name: "✅"},
				},
				discordgo.Button{
					Label:    "Rechazar",
					Style:    discordgo.DangerButton,
					CustomID: "review:reject:" + r.ID,
					Emoji:    &discordgo.ComponentEmoji{Name: "❌"},
				},
			},
		},
	}

	_, err := s.ChannelMessageSendComplex(reviewChannelID, &discordgo.MessageSend{
		Embeds:     []*discordgo.MessageEmbed{reportEmbed(r, 0xFFFF00, "Nuevo reporte pendiente de revisión")},
		Components: components,
	})
	if err != nil {
		log.Printf("Error sending report %s to review channel: %v", r.ID, err)
	}
}

// reportEmbed renders a report for the review and publish channels.
func reportEmbed(r *model.Report, color int, title string) *discordgo.MessageEmbed {
	works := "No"
	if r.Works {
		works = "Sí"
	}
	return &discordgo.MessageEmbed{
		Title: title,
		Description: fmt.Sprintf(
			"**Teléfono:** %s\n**Modelo:** `%s`\n**VoLTE funciona:** %s\n**Bandas:** %s\n**Provincias:** %s\n**Observaciones:** %s\n**Reportado por:** <@%s>",
			r.CommercialName, r.Model, works,
			dashIfEmpty(strings.Join(r.Bands, ", ")),
			dashIfEmpty(strings.Join(r.Provinces, ", ")),
			dashIfEmpty(r.Observations),
			r.UserID,
		),
		Color: color,
		Footer: &discordgo.MessageEmbedFooter{
			Text: "ID: " + r.ID,
		},
	}
}

// Approve transitions a pending report to approved, publishes it and fans
// out the subscriber notifications. The session may be nil when the caller
// only wants the status transition (e.g. from tests).
func Approve(s *discordgo.Session, r *model.Report, reviewerID string) error {
	if err := db.UpdateReportStatus(r.ID, model.StatusApproved, reviewerID); err != nil {
		return err
	}
	r.Status = model.StatusApproved
	r.ReviewerID = reviewerID

	if s != nil {
		PublishApproved(s, r)
		utils.NotifyApproval(s, r)
		notifySubmitter(s, r, fmt.Sprintf("✅ Tu reporte de **%s** (`%s`) fue aprobado. ¡Gracias por contribuir!", r.CommercialName, r.Model))
	}
	return nil
}

// Reject transitions a pending report to rejected and tells the submitter.
func Reject(s *discordgo.Session, r *model.Report, reviewerID string) error {
	if err := db.UpdateReportStatus(r.ID, model.StatusRejected, reviewerID); err != nil {
		return err
	}
	r.Status = model.StatusRejected
	r.ReviewerID = reviewerID

	if s != nil {
		notifySubmitter(s, r, fmt.Sprintf("❌ Tu reporte de **%s** (`%s`) fue rechazado por los moderadores.", r.CommercialName, r.Model))
	}
	return nil
}

// PublishApproved posts an approved report to the public channel.
func PublishApproved(s *discordgo.Session, r *model.Report) {
	publishChannelID := config.Cfg.ModerBot.Report.PublishChannelID
	if publishChannelID == "" {
		return
	}
	_, err := s.ChannelMessageSendEmbed(publishChannelID, reportEmbed(r, 0x00FF00, "Reporte aprobado"))
	if err != nil {
		log.Printf("Error publishing approved report %s: %v", r.ID, err)
	}
}

// notifySubmitter DMs the report's author. Best effort.
func notifySubmitter(s *discordgo.Session, r *model.Report, text string) {
	channel, err := s.UserChannelCreate(r.UserID)
	if err != nil {
		log.Printf("Error opening DM channel for user %s: %v", r.UserID, err)
		return
	}
	if _, err := s.ChannelMessageSend(channel.ID, text); err != nil {
		log.Printf("Error notifying user %s about report %s: %v", r.UserID, r.ID, err)
	}
}

// ReviewComponentHandler handles the approve/reject buttons in the review
// channel. Only moderators may act; everyone else is silently ignored. A
// second press on an already moderated report is a no-op.
func ReviewComponentHandler(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ackComponent(s, i)

	if i.Member == nil || !utils.CheckAuth(i.Member.User.ID, i.Member.Roles) {
		return
	}

	parts := strings.Split(i.MessageComponentData().CustomID, ":")
	if len(parts) < 3 {
		return
	}
	verb := parts[1]
	reportID := parts[2]

	r, err := db.GetReport(reportID)
	if err != nil {
		log.Printf("Error loading report %s for review: %v", reportID, err)
		return
	}
	if r == nil || r.Status != model.StatusPending {
		return
	}

	reviewerID := i.Member.User.ID
	var outcome string
	switch verb {
	case "approve":
		if err := Approve(s, r, reviewerID); err != nil {
			// A racing verdict already won; stay silent like any other
			// double press.
			if !errors.Is(err, db.ErrAlreadyModerated) {
				log.Printf("Error approving report %s: %v", r.ID, err)
			}
			return
		}
		outcome = fmt.Sprintf("✅ Aprobado por <@%s>", reviewerID)
	case "reject":
		if err := Reject(s, r, reviewerID); err != nil {
			if !errors.Is(err, db.ErrAlreadyModerated) {
				log.Printf("Error rejecting report %s: %v", r.ID, err)
			}
			return
		}
		outcome = fmt.Sprintf("❌ Rechazado por <@%s>", reviewerID)
	default:
		return
	}

	_, err = s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
		Content:    utils.StringPtr(outcome),
		Components: &[]discordgo.MessageComponent{},
	})
	if err != nil {
		log.Printf("Error updating review message for report %s: %v", r.ID, err)
	}
}
