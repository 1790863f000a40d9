package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/taskdeck/project-system/internal/api/metrics"
	"github.com/taskdeck/project-system/internal/core/authz"
)

const membershipTTL = 5 * time.Minute

// MembershipCache wraps a MembershipStore with a Redis read-through cache.
// Only positive answers are cached: a "not a member" may become true the
// moment an admin attaches the user, and a stale deny is worse than a
// Mongo round trip. Detaching a member must call Invalidate so the gate
// stops admitting the user immediately.
// Key format: member:<user_id>:<workspace_id>
type MembershipCache struct {
	client *redis.Client
	next   authz.MembershipStore
}

// NewMembershipCache creates a MembershipCache over the given backing store.
func NewMembershipCache(client *redis.Client, next authz.MembershipStore) *MembershipCache {
	return &MembershipCache{client: client, next: next}
}

// IsMember implements authz.MembershipStore. Cache failures fall through to
// the backing store; membership answers must not depend on Redis health.
func (m *MembershipCache) IsMember(ctx context.Context, userID, workspaceID string) (bool, error) {
	key := m.key(userID, workspaceID)

	n, err := m.client.Exists(ctx, key).Result()
	if err == nil && n > 0 {
		metrics.MembershipCacheTotal.WithLabelValues("hit").Inc()
		return true, nil
	}
	metrics.MembershipCacheTotal.WithLabelValues("miss").Inc()

	ok, err := m.next.IsMember(ctx, userID, workspaceID)
	if err != nil {
		return false, err
	}
	if ok {
		_ = m.client.Set(ctx, key, "1", membershipTTL).Err()
	}
	return ok, nil
}

// Invalidate drops the cached membership entry for (user, workspace).
func (m *MembershipCache) Invalidate(ctx context.Context, userID, workspaceID string) error {
	return m.client.Del(ctx, m.key(userID, workspaceID)).Err()
}

func (m *MembershipCache) key(userID, workspaceID string) string {
	return fmt.Sprintf("member:%s:%s", userID, workspaceID)
}
