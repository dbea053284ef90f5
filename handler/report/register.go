package report

import (
	"github.com/devmaikelrm/BotModerno-sub000/command/def"
	"github.com/devmaikelrm/BotModerno-sub000/gate"
	"github.com/devmaikelrm/BotModerno-sub000/handler"
)

// RegisterHandlers registers all handlers for the report package. The gate
// is injected here so tests can run the wizard against arbitrary allow-lists.
func RegisterHandlers(g *gate.Gate) {
	accessGate = g

	handler.AddCommandHandler(def.ReportCommand.Name, ReportCommandHandler)
	handler.AddCommandHandler(def.SubscribeCommand.Name, SubscribeCommandHandler)
	handler.AddCommandHandler(def.UnsubscribeCommand.Name, UnsubscribeCommandHandler)
	handler.AddCommandHandler(def.LookupCommand.Name, LookupCommandHandler)

	// Wizard buttons (DM) and moderation buttons (review channel).
	handler.AddComponentHandler("wizard", WizardComponentHandler)
	handler.AddComponentHandler("review", ReviewComponentHandler)
}
