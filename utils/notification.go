package utils

import (
	"fmt"
	"log"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/devmaikelrm/BotModerno-sub000/db"
	"github.com/devmaikelrm/BotModerno-sub000/model"
)

// NotifyApproval sends a DM to every subscriber about a newly approved
// report. Each delivery is independent: a blocked DM or an invalid user never
// aborts the rest of the fan-out. Best effort, no retry.
func NotifyApproval(s *discordgo.Session, report *model.Report) {
	subscribers, err := db.ListSubscribers()
	if err != nil {
		log.Printf("Error listing subscribers for report %s: %v", report.ID, err)
		return
	}

	works := "No"
	if report.Works {
		works = "Sí"
	}
	text := fmt.Sprintf(
		"📢 Nuevo reporte aprobado\n**%s** (`%s`)\nVoLTE: %s\nBandas: %s\nProvincias: %s",
		report.CommercialName, report.Model, works,
		listOrDash(report.Bands), listOrDash(report.Provinces),
	)

	for _, userID := range subscribers {
		channel, err := s.UserChannelCreate(userID)
		if err != nil {
			log.Printf("Error opening DM channel for subscriber %s: %v", userID, err)
			continue
		}
		if _, err := s.ChannelMessageSend(channel.ID, text); err != nil {
			log.Printf("Error notifying subscriber %s: %v", userID, err)
		}
	}
}

func listOrDash(items []string) string {
	if len(items) == 0 {
		return "—"
	}
	return strings.Join(items, ", ")
}
