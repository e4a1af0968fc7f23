package cache

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupCache(t *testing.T) (*miniredis.Miniredis, *Cache) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return mr, NewWithClient(client)
}

type payload struct {
	Content string `json:"content"`
	Model   string `json:"model"`
}

func TestSetGetRoundTrip(t *testing.T) {
	_, c := setupCache(t)
	ctx := context.Background()

	in := payload{Content: "hello", Model: "deepseek/deepseek-v3"}
	require.True(t, c.Set(ctx, "ai:abc", in, time.Hour))

	var out payload
	require.True(t, c.Get(ctx, "ai:abc", &out))
	assert.Equal(t, in, out)
}

func TestGetMiss(t *testing.T) {
	_, c := setupCache(t)

	var out payload
	assert.False(t, c.Get(context.Background(), "ai:missing", &out))
}

func TestTTLExpiry(t *testing.T) {
	mr, c := setupCache(t)
	ctx := context.Background()

	require.True(t, c.Set(ctx, "ai:short", payload{Content: "x"}, 5*time.Minute))
	require.True(t, c.Exists(ctx, "ai:short"))

	mr.FastForward(6 * time.Minute)

	var out payload
	assert.False(t, c.Get(ctx, "ai:short", &out))
	assert.False(t, c.Exists(ctx, "ai:short"))
}

func TestPermanentEntryHasNoExpiry(t *testing.T) {
	mr, c := setupCache(t)
	ctx := context.Background()

	require.True(t, c.Set(ctx, "profile:u1", payload{Content: "x"}, 0))
	mr.FastForward(48 * time.Hour)
	assert.True(t, c.Exists(ctx, "profile:u1"))
}

func TestDelete(t *testing.T) {
	_, c := setupCache(t)
	ctx := context.Background()

	require.True(t, c.Set(ctx, "goals:u1", payload{Content: "x"}, time.Hour))
	require.True(t, c.Delete(ctx, "goals:u1"))
	assert.False(t, c.Exists(ctx, "goals:u1"))

	// Deleting an absent key still succeeds.
	assert.True(t, c.Delete(ctx, "goals:u1"))
}

// A dead backend degrades to misses and no-ops, never errors.
func TestBackendOutageDegrades(t *testing.T) {
	mr, c := setupCache(t)
	ctx := context.Background()

	require.True(t, c.Set(ctx, "ai:k", payload{Content: "x"}, time.Hour))
	mr.Close()

	var out payload
	assert.False(t, c.Get(ctx, "ai:k", &out))
	assert.False(t, c.Set(ctx, "ai:k2", payload{Content: "y"}, time.Hour))
	assert.False(t, c.Exists(ctx, "ai:k"))
	assert.False(t, c.Delete(ctx, "ai:k"))
}

func TestPromptKey(t *testing.T) {
	k1 := PromptKey("How do I switch careers?", "career-advice")
	k2 := PromptKey("How do I switch careers?", "career-advice")
	k3 := PromptKey("How do I switch careers?", "goal-planning")
	k4 := PromptKey("Completely different question", "career-advice")

	assert.Equal(t, k1, k2)
	assert.NotEqual(t, k1, k3)
	assert.NotEqual(t, k1, k4)

	assert.True(t, strings.HasPrefix(k1, PrefixAI))
	// base-36 rendering of a folded 32-bit value
	assert.LessOrEqual(t, len(k1), len(PrefixAI)+7)
}

func TestUserKey(t *testing.T) {
	assert.Equal(t, "skills:u-42", UserKey(PrefixSkills, "u-42"))
}
