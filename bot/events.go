package bot

import (
	"github.com/bwmarrin/discordgo"

	"github.com/devmaikelrm/BotModerno-sub000/gate"
	"github.com/devmaikelrm/BotModerno-sub000/handler"
	"github.com/devmaikelrm/BotModerno-sub000/handler/report"
	"github.com/devmaikelrm/BotModerno-sub000/handler/verify"
)

func registerEventHandlers(s *discordgo.Session, _ *gate.Gate) {
	s.AddHandler(handler.OnInteractionCreate)
	s.AddHandler(report.MessageCreate)
	s.AddHandler(verify.GuildMemberAdd)

	s.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages |
		discordgo.IntentsGuildMembers |
		discordgo.IntentsDirectMessages |
		discordgo.IntentsMessageContent
}
