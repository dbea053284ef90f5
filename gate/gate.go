// Package gate decides whether an inbound event is allowed to reach the
// wizard, based on the guild allow-list and the pending verification
// challenges of newly joined members.
package gate

import (
	"context"
	"slices"
)

// Decision is the outcome of checking one inbound event.
type Decision int

const (
	// Allowed means the event may proceed to the wizard.
	Allowed Decision = iota
	// DeniedGuild means the event came from a guild outside the allow-list.
	DeniedGuild
	// DeniedChallenge means the sender has an unresolved verification
	// challenge; the caller should also suppress (delete) the message.
	DeniedChallenge
)

// Gate evaluates inbound events. The allow-list is fixed at construction so
// tests can supply arbitrary lists.
type Gate struct {
	allowGuilds []string
	challenges  *ChallengeStore
}

// New builds a gate. An empty allowGuilds list admits every guild.
func New(allowGuilds []string, challenges *ChallengeStore) *Gate {
	return &Gate{allowGuilds: allowGuilds, challenges: challenges}
}

// GuildAllowed reports whether a guild passes the allow-list.
func (g *Gate) GuildAllowed(guildID string) bool {
	return len(g.allowGuilds) == 0 || slices.Contains(g.allowGuilds, guildID)
}

// Challenges exposes the underlying challenge store.
func (g *Gate) Challenges() *ChallengeStore {
	return g.challenges
}

// Check classifies one inbound event. An empty guildID is a direct message
// and always allowed. For guild events the pending challenge wins over the
// allow-list result, because an unverified member must stay silenced even in
// an allow-listed guild.
func (g *Gate) Check(ctx context.Context, guildID, userID string) (Decision, error) {
	if guildID == "" {
		return Allowed, nil
	}

	pending, err := g.challenges.Pending(ctx, guildID, userID)
	if err != nil {
		return Allowed, err
	}
	if pending {
		return DeniedChallenge, nil
	}

	if !g.GuildAllowed(guildID) {
		return DeniedGuild, nil
	}
	return Allowed, nil
}
