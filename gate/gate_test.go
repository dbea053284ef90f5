package gate

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupStore(t *testing.T) (*miniredis.Miniredis, *ChallengeStore) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return mr, NewChallengeStore(client, 120*time.Second)
}

func TestChallengeLifecycle(t *testing.T) {
	_, store := setupStore(t)
	ctx := context.Background()

	created, err := store.Create(ctx, "guild1", "user1")
	require.NoError(t, err)
	assert.True(t, created)

	// A second join event must not restart the clock.
	created, err = store.Create(ctx, "guild1", "user1")
	require.NoError(t, err)
	assert.False(t, created)

	pending, err := store.Pending(ctx, "guild1", "user1")
	require.NoError(t, err)
	assert.True(t, pending)

	resolved, err := store.Resolve(ctx, "guild1", "user1")
	require.NoError(t, err)
	assert.True(t, resolved)

	// A racing second resolution observes a missing challenge and is a no-op.
	resolved, err = store.Resolve(ctx, "guild1", "user1")
	require.NoError(t, err)
	assert.False(t, resolved)

	pending, err = store.Pending(ctx, "guild1", "user1")
	require.NoError(t, err)
	assert.False(t, pending)
}

func TestChallengeExpiry(t *testing.T) {
	mr, store := setupStore(t)
	ctx := context.Background()

	created, err := store.Create(ctx, "guild1", "user1")
	require.NoError(t, err)
	assert.True(t, created)

	mr.FastForward(121 * time.Second)

	// A late verify press after expiry is a no-op.
	resolved, err := store.Resolve(ctx, "guild1", "user1")
	require.NoError(t, err)
	assert.False(t, resolved)
}

func TestGateCheck(t *testing.T) {
	_, store := setupStore(t)
	ctx := context.Background()

	g := New([]string{"guild1"}, store)

	tests := []struct {
		name     string
		guildID  string
		userID   string
		pending  bool
		expected Decision
	}{
		{"direct message always allowed", "", "user1", false, Allowed},
		{"allow-listed guild", "guild1", "user1", false, Allowed},
		{"guild outside allow-list", "guild2", "user1", false, DeniedGuild},
		{"pending challenge in allowed guild", "guild1", "user2", true, DeniedChallenge},
		{"pending challenge wins over allow-list", "guild2", "user2", true, DeniedChallenge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.pending {
				_, err := store.Create(ctx, tt.guildID, tt.userID)
				require.NoError(t, err)
			}
			decision, err := g.Check(ctx, tt.guildID, tt.userID)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, decision)
			if tt.pending {
				_, err = store.Resolve(ctx, tt.guildID, tt.userID)
				require.NoError(t, err)
			}
		})
	}
}

func TestGateEmptyAllowListAdmitsAll(t *testing.T) {
	_, store := setupStore(t)

	g := New(nil, store)
	assert.True(t, g.GuildAllowed("anything"))

	decision, err := g.Check(context.Background(), "anything", "user1")
	require.NoError(t, err)
	assert.Equal(t, Allowed, decision)
}
