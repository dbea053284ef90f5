package def

import "github.com/bwmarrin/discordgo"

var ReportCommand = &discordgo.ApplicationCommand{
	Name:        "reporte",
	Description: "Crear un reporte de compatibilidad VoLTE (por mensaje privado)",
}
