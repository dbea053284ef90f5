package handler

import (
	"log"
	"strings"

	"github.com/bwmarrin/discordgo"
)

var (
	commandHandlers   = make(map[string]func(s *discordgo.Session, i *discordgo.InteractionCreate))
	componentHandlers = make(map[string]func(s *discordgo.Session, i *discordgo.InteractionCreate))
)

// AddCommandHandler registers a handler for a slash command.
func AddCommandHandler(name string, handler func(s *discordgo.Session, i *discordgo.InteractionCreate)) {
	commandHandlers[name] = handler
}

// AddComponentHandler registers a handler for a message component namespace.
// Component custom IDs look like "namespace:verb:arg1:arg2"; the namespace
// selects the handler, which parses the rest itself.
func AddComponentHandler(namespace string, handler func(s *discordgo.Session, i *discordgo.InteractionCreate)) {
	componentHandlers[namespace] = handler
}

// OnInteractionCreate is the main interaction router.
// It should be registered as the primary interaction handler in bot.Start.
// Unrecognized namespaces are silently ignored so transport-level buttons can
// be added later without breaking the router.
func OnInteractionCreate(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		name := i.ApplicationCommandData().Name
		if handler, ok := commandHandlers[name]; ok {
			dispatch(s, i, "command "+name, handler)
		}
	case discordgo.InteractionMessageComponent:
		customID := i.MessageComponentData().CustomID
		parts := strings.SplitN(customID, ":", 2)

		if handler, ok := componentHandlers[parts[0]]; ok {
			dispatch(s, i, "component "+customID, handler)
		}
	}
}

// dispatch runs one handler behind a recover boundary. discordgo does not
// recover panics in event handlers, so a bad interaction must never take the
// process down with it.
func dispatch(s *discordgo.Session, i *discordgo.InteractionCreate, desc string, handler func(s *discordgo.Session, i *discordgo.InteractionCreate)) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Panic handling %s from user %s: %v", desc, interactionUserID(i), r)
		}
	}()
	handler(s, i)
}

func interactionUserID(i *discordgo.InteractionCreate) string {
	if i.User != nil {
		return i.User.ID
	}
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User.ID
	}
	return ""
}
