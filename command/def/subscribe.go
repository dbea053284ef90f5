package def

import "github.com/bwmarrin/discordgo"

var SubscribeCommand = &discordgo.ApplicationCommand{
	Name:        "suscribir",
	Description: "Recibir un DM cada vez que se apruebe un reporte",
}

var UnsubscribeCommand = &discordgo.ApplicationCommand{
	Name:        "desuscribir",
	Description: "Dejar de recibir avisos de reportes aprobados",
}
