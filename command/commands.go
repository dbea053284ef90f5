package command

import (
	"github.com/bwmarrin/discordgo"

	"github.com/devmaikelrm/BotModerno-sub000/command/def"
)

// AllCommands contains all of the commands
var AllCommands = []*discordgo.ApplicationCommand{
	def.ReportCommand,
	def.SubscribeCommand,
	def.UnsubscribeCommand,
	def.LookupCommand,
}
