package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	// ProfileKey caches the portfolio profile singleton.
	ProfileKey = "profile"
	// TopSkillsKeyPrefix caches top-skill aggregations per limit.
	TopSkillsKeyPrefix = "skills:top:%d"
)

const (
	ProfileTTL   = 5 * time.Minute
	TopSkillsTTL = 1 * time.Minute
)

func TopSkillsKey(limit int) string {
	return fmt.Sprintf(TopSkillsKeyPrefix, limit)
}

func Invalidate(ctx context.Context, keys ...string) {
	if client != nil && len(keys) > 0 {
		client.Del(ctx, keys...)
	}
}

// InvalidateProfile drops the cached profile after an upsert.
func InvalidateProfile(ctx context.Context) {
	Invalidate(ctx, ProfileKey)
}

// InvalidateSkills drops all cached top-skill aggregations. Limits are
// bounded (1..50) so the key space is enumerable.
func InvalidateSkills(ctx context.Context) {
	keys := make([]string, 0, 50)
	for limit := 1; limit <= 50; limit++ {
		keys = append(keys, TopSkillsKey(limit))
	}
	Invalidate(ctx, keys...)
}
