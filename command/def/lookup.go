package def

import "github.com/bwmarrin/discordgo"

var LookupCommand = &discordgo.ApplicationCommand{
	Name:        "misreportes",
	Description: "Consultar el estado de tus reportes enviados",
}
