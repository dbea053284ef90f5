package gate

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// DefaultChallengeTTL is how long a new member has to press the verification
// button before being removed.
const DefaultChallengeTTL = 120 * time.Second

// ChallengeStore keeps the pending human-verification challenges in redis,
// keyed by (guild, user). Redis expiry is the authoritative timeout: a key
// that disappeared is an already-resolved challenge.
type ChallengeStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewChallengeStore creates a store with the given TTL. A zero ttl falls back
// to DefaultChallengeTTL.
func NewChallengeStore(client *redis.Client, ttl time.Duration) *ChallengeStore {
	if ttl <= 0 {
		ttl = DefaultChallengeTTL
	}
	return &ChallengeStore{client: client, ttl: ttl}
}

// TTL returns the configured challenge lifetime.
func (cs *ChallengeStore) TTL() time.Duration {
	return cs.ttl
}

func challengeKey(guildID, userID string) string {
	return "challenge:" + guildID + ":" + userID
}

// Create registers a pending challenge. Returns false when a challenge for
// the same (guild, user) already exists, so a duplicate join event does not
// restart the clock.
func (cs *ChallengeStore) Create(ctx context.Context, guildID, userID string) (bool, error) {
	return cs.client.SetNX(ctx, challengeKey(guildID, userID), "pending", cs.ttl).Result()
}

// Pending reports whether the user still has an unresolved challenge in the
// guild.
func (cs *ChallengeStore) Pending(ctx context.Context, guildID, userID string) (bool, error) {
	n, err := cs.client.Exists(ctx, challengeKey(guildID, userID)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Resolve clears the challenge and reports whether this caller was the one
// that cleared it. The DEL reply count arbitrates races: when a verify press
// and the timeout fire together, exactly one of them sees true.
func (cs *ChallengeStore) Resolve(ctx context.Context, guildID, userID string) (bool, error) {
	n, err := cs.client.Del(ctx, challengeKey(guildID, userID)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
