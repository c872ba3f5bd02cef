package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/gomatri/matrimony-backend/internal/domain"
	goredis "github.com/redis/go-redis/v9"
)

// ErrCacheMiss is returned when no cached membership exists for a profile.
var ErrCacheMiss = errors.New("membership cache miss")

// MembershipCache is a read-through cache in front of the memberships table.
// The gating engine hits GetByProfileID on every view, so cached reads keep
// the hot path off Postgres. Writers must call Invalidate after any change
// that touches counters or tier.
type MembershipCache struct {
	client *goredis.Client
	ttl    time.Duration
}

func NewMembershipCache(client *goredis.Client, ttl time.Duration) *MembershipCache {
	return &MembershipCache{client: client, ttl: ttl}
}

func membershipKey(profileID int) string {
	return "membership:profile:" + strconv.Itoa(profileID)
}

func (c *MembershipCache) Get(ctx context.Context, profileID int) (*domain.Membership, error) {
	data, err := c.client.Get(ctx, membershipKey(profileID)).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, ErrCacheMiss
		}
		return nil, err
	}
	var membership domain.Membership
	if err := json.Unmarshal(data, &membership); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cached membership: %w", err)
	}
	return &membership, nil
}

func (c *MembershipCache) Set(ctx context.Context, membership *domain.Membership) error {
	data, err := json.Marshal(membership)
	if err != nil {
		return fmt.Errorf("failed to marshal membership: %w", err)
	}
	return c.client.Set(ctx, membershipKey(membership.ProfileID), data, c.ttl).Err()
}

func (c *MembershipCache) Invalidate(ctx context.Context, profileID int) error {
	return c.client.Del(ctx, membershipKey(profileID)).Err()
}
