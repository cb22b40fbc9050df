package cache

import (
	"context"
	"testing"

	"nextstep-career-api/models"
)

func TestRedisTopicsDisabled(t *testing.T) {
	// Zero TTL disables the cache entirely.
	c := NewRedisTopics(nil, 0)

	c.Set(context.Background(), models.PopularTopics{TrendingCareers: []string{"a"}})
	if _, ok := c.Get(context.Background()); ok {
		t.Error("a disabled cache must always miss")
	}
}
