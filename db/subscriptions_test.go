package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubscribeLifecycle(t *testing.T) {
	setupTestDB(t)

	subscribed, err := IsSubscribed("u1")
	require.NoError(t, err)
	assert.False(t, subscribed)

	require.NoError(t, Subscribe("u1"))
	// Subscribing twice is a no-op, not an error.
	require.NoError(t, Subscribe("u1"))

	subscribed, err = IsSubscribed("u1")
	require.NoError(t, err)
	assert.True(t, subscribed)

	require.NoError(t, Subscribe("u2"))

	subs, err := ListSubscribers()
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"u1", "u2"}, subs)

	require.NoError(t, Unsubscribe("u1"))
	subscribed, err = IsSubscribed("u1")
	require.NoError(t, err)
	assert.False(t, subscribed)

	// Unsubscribing when not subscribed is a no-op.
	require.NoError(t, Unsubscribe("u3"))
}
