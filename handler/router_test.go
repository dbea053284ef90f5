package handler

import (
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
)

func componentInteraction(customID string) *discordgo.InteractionCreate {
	return &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			Type: discordgo.InteractionMessageComponent,
			Data: discordgo.MessageComponentInteractionData{CustomID: customID},
			User: &discordgo.User{ID: "u1"},
		},
	}
}

func commandInteraction(name string) *discordgo.InteractionCreate {
	return &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			Type: discordgo.InteractionApplicationCommand,
			Data: discordgo.ApplicationCommandInteractionData{Name: name},
			User: &discordgo.User{ID: "u1"},
		},
	}
}

func TestRouterContainsHandlerPanics(t *testing.T) {
	AddComponentHandler("crashing", func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		panic("handler blew up")
	})
	AddCommandHandler("crashing", func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		panic("handler blew up")
	})

	// The transport does not recover handler panics; the router must.
	assert.NotPanics(t, func() {
		OnInteractionCreate(nil, componentInteraction("crashing:verb:u1"))
	})
	assert.NotPanics(t, func() {
		OnInteractionCreate(nil, commandInteraction("crashing"))
	})
}

func TestRouterIgnoresUnknownNamespaces(t *testing.T) {
	assert.NotPanics(t, func() {
		OnInteractionCreate(nil, componentInteraction("someday:later:u1"))
		OnInteractionCreate(nil, commandInteraction("nonexistent"))
	})
}

func TestRouterDispatchesByNamespace(t *testing.T) {
	var got string
	AddComponentHandler("routed", func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		got = i.MessageComponentData().CustomID
	})

	OnInteractionCreate(nil, componentInteraction("routed:verb:arg:u1"))
	assert.Equal(t, "routed:verb:arg:u1", got)
}
