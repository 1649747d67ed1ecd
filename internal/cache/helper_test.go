package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func withTestRedis(t *testing.T) *miniredis.Miniredis {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	prev := GetClient()
	SetClient(rdb)
	t.Cleanup(func() {
		SetClient(prev)
		_ = rdb.Close()
	})
	return mr
}

func TestAsideCachesFetchResult(t *testing.T) {
	withTestRedis(t)
	ctx := context.Background()

	fetches := 0
	fetch := func(dest *payload) func() error {
		return func() error {
			fetches++
			*dest = payload{Name: "Go", Count: 3}
			return nil
		}
	}

	var first payload
	require.NoError(t, Aside(ctx, "test:key", &first, time.Minute, fetch(&first)))
	assert.Equal(t, 1, fetches)
	assert.Equal(t, payload{Name: "Go", Count: 3}, first)

	// Second read is served from Redis
	var second payload
	require.NoError(t, Aside(ctx, "test:key", &second, time.Minute, fetch(&second)))
	assert.Equal(t, 1, fetches)
	assert.Equal(t, first, second)
}

func TestAsideExpiry(t *testing.T) {
	mr := withTestRedis(t)
	ctx := context.Background()

	fetches := 0
	var dest payload
	fetch := func() error {
		fetches++
		dest = payload{Name: "Redis", Count: fetches}
		return nil
	}

	require.NoError(t, Aside(ctx, "test:expiry", &dest, time.Minute, fetch))
	mr.FastForward(2 * time.Minute)
	require.NoError(t, Aside(ctx, "test:expiry", &dest, time.Minute, fetch))
	assert.Equal(t, 2, fetches)
}

func TestAsideWithoutClientFallsBackToFetch(t *testing.T) {
	prev := GetClient()
	SetClient(nil)
	t.Cleanup(func() { SetClient(prev) })

	fetches := 0
	var dest payload
	fetch := func() error {
		fetches++
		dest = payload{Name: "NoRedis"}
		return nil
	}

	require.NoError(t, Aside(context.Background(), "test:nil", &dest, time.Minute, fetch))
	require.NoError(t, Aside(context.Background(), "test:nil", &dest, time.Minute, fetch))
	assert.Equal(t, 2, fetches)
	assert.Equal(t, "NoRedis", dest.Name)
}

func TestInvalidateProfile(t *testing.T) {
	mr := withTestRedis(t)
	ctx := context.Background()

	require.NoError(t, SetJSON(ctx, ProfileKey, payload{Name: "cached"}, time.Minute))
	require.True(t, mr.Exists(ProfileKey))

	InvalidateProfile(ctx)
	assert.False(t, mr.Exists(ProfileKey))
}

func TestInvalidateSkills(t *testing.T) {
	mr := withTestRedis(t)
	ctx := context.Background()

	require.NoError(t, SetJSON(ctx, TopSkillsKey(10), []payload{{Name: "Go", Count: 2}}, time.Minute))
	require.NoError(t, SetJSON(ctx, TopSkillsKey(25), []payload{{Name: "Go", Count: 2}}, time.Minute))

	InvalidateSkills(ctx)
	assert.False(t, mr.Exists(TopSkillsKey(10)))
	assert.False(t, mr.Exists(TopSkillsKey(25)))
}
