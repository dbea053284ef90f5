package verify

import (
	"github.com/devmaikelrm/BotModerno-sub000/gate"
	"github.com/devmaikelrm/BotModerno-sub000/handler"
)

// RegisterHandlers registers all handlers for the verify package.
func RegisterHandlers(g *gate.Gate) {
	accessGate = g
	handler.AddComponentHandler("verify", ComponentHandler)
}
