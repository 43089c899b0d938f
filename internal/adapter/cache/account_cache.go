package cache

import (
	"context"
	"encoding/json"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/corebank/accounts-service/internal/domain"
	"github.com/corebank/accounts-service/internal/logger"
)

// AccountCache is a Redis-backed read cache for account projections. Only the
// query path reads it; every mutation invalidates the key, and mutating
// services always re-read the store, so no mutation can act on a cached
// balance. A nil *AccountCache is a no-op on all methods.
type AccountCache struct {
	client *goredis.Client
	ttl    time.Duration
}

func NewAccountCache(client *goredis.Client, ttl time.Duration) *AccountCache {
	return &AccountCache{client: client, ttl: ttl}
}

func key(accountID string) string {
	return "account:" + accountID
}

// Get returns (nil, false) on a miss, a deserialization error, or a nil cache.
func (c *AccountCache) Get(ctx context.Context, accountID string) (*domain.Account, bool) {
	if c == nil {
		return nil, false
	}

	data, err := c.client.Get(ctx, key(accountID)).Result()
	if err != nil {
		return nil, false
	}

	var account domain.Account
	if err := json.Unmarshal([]byte(data), &account); err != nil {
		return nil, false
	}

	return &account, true
}

// Set stores the account view. Failures are logged, not returned.
func (c *AccountCache) Set(ctx context.Context, account domain.Account) {
	if c == nil {
		return
	}

	data, err := json.Marshal(account)
	if err != nil {
		logger.Error("account cache marshal failed", err, logger.Fields{
			"accountId": account.ID,
		})
		return
	}

	if err := c.client.Set(ctx, key(account.ID), data, c.ttl).Err(); err != nil {
		logger.Error("account cache write failed", err, logger.Fields{
			"accountId": account.ID,
		})
	}
}

// Invalidate drops the cached view for an account.
func (c *AccountCache) Invalidate(ctx context.Context, accountID string) {
	if c == nil {
		return
	}

	if err := c.client.Del(ctx, key(accountID)).Err(); err != nil {
		logger.Error("account cache invalidate failed", err, logger.Fields{
			"accountId": accountID,
		})
	}
}
