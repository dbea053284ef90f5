package report

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/devmaikelrm/BotModerno-sub000/model"
)

// prompt returns the question text for the draft's current step.
func prompt(d *model.Draft) string {
	switch d.Step {
	case model.StepName:
		return "📱 ¿Cuál es el nombre comercial del teléfono? (ej: Redmi Note 12)"
	case model.StepModel:
		return "🔢 ¿Cuál es el modelo exacto? (ej: 2209116AG)"
	case model.StepWorks:
		return "📶 ¿Funciona el VoLTE en este teléfono? Responde sí o no."
	case model.StepBands:
		return "📡 ¿Qué bandas soporta? Sepáralas con comas (ej: B3, B7). Escribe \"desconocido\" si no lo sabes."
	case model.StepProvinces:
		return "🗺️ ¿En qué provincias lo probaste? Sepáralas con comas. Escribe \"-\" si en ninguna."
	case model.StepObs:
		return "📝 ¿Alguna observación adicional? Escribe \"-\" para omitir."
	case model.StepConfirm:
		return renderSummary(d)
	}
	return "Usa /reporte para comenzar un nuevo reporte."
}

// renderSummary renders the confirmation summary of every collected field.
func renderSummary(d *model.Draft) string {
	works := "No"
	if d.Works != nil && *d.Works {
		works = "Sí"
	}
	return fmt.Sprintf(
		"📋 **Resumen de tu reporte**\nTeléfono: %s\nModelo: %s\nVoLTE funciona: %s\nBandas: %s\nProvincias: %s\nObservaciones: %s\n\n¿Confirmas el envío? Responde sí o no.",
		d.CommercialName, d.Model, works,
		dashIfEmpty(strings.Join(d.Bands, ", ")),
		dashIfEmpty(strings.Join(d.Provinces, ", ")),
		dashIfEmpty(d.Observations),
	)
}

func dashIfEmpty(s string) string {
	if s == "" {
		return "—"
	}
	return s
}

// promptComponents returns the button row for the draft's current step. The
// first step has nothing to go back to, so it carries no row; the works and
// confirm steps get their structured answers as buttons on top of the shared
// back/cancel pair.
func promptComponents(d *model.Draft) []discordgo.MessageComponent {
	if d.Step == model.StepName {
		return nil
	}

	var buttons []discordgo.MessageComponent
	switch d.Step {
	case model.StepWorks:
		buttons = append(buttons,
			discordgo.Button{
				Label:    "Sí",
				Style:    discordgo.SuccessButton,
				CustomID: "wizard:works:yes:" + d.UserID,
				Emoji:    &discordgo.ComponentEmoji{Name: "✅"},
			},
			discordgo.Button{
				Label:    "No",
				Style:    discordgo.DangerButton,
				CustomID: "wizard:works:no:" + d.UserID,
				Emoji:    &discordgo.ComponentEmoji{Name: "❌"},
			},
		)
	case model.StepConfirm:
		buttons = append(buttons,
			discordgo.Button{
				Label:    "Confirmar",
				Style:    discordgo.SuccessButton,
				CustomID: "wizard:confirm:" + d.UserID,
				Emoji:    &discordgo.ComponentEmoji{Name: "✅"},
			},
		)
	}

	buttons = append(buttons,
		discordgo.Button{
			Label:    "Atrás",
			Style:    discordgo.SecondaryButton,
			CustomID: "wizard:back:" + d.UserID,
			Emoji:    &discordgo.ComponentEmoji{Name: "↩️"},
		},
		discordgo.Button{
			Label:    "Cancelar",
			Style:    discordgo.DangerButton,
			CustomID: "wizard:cancel:" + d.UserID,
			Emoji:    &discordgo.ComponentEmoji{Name: "🗑️"},
		},
	)

	return []discordgo.MessageComponent{
		discordgo.ActionsRow{Components: buttons},
	}
}

// sendPrompt delivers the current step's question to a channel.
func sendPrompt(s *discordgo.Session, channelID string, d *model.Draft) error {
	components := promptComponents(d)
	if len(components) == 0 {
		_, err := s.ChannelMessageSend(channelID, prompt(d))
		return err
	}
	_, err := s.ChannelMessageSendComplex(channelID, &discordgo.MessageSend{
		Content:    prompt(d),
		Components: components,
	})
	return err
}
