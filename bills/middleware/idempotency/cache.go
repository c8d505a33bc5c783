package idempotency

import (
	"time"

	"encore.dev/storage/cache"

	"encore.app/bills/model"
)

var IdempotencyCluster = cache.NewCluster("bill-idempotency", cache.ClusterConfig{
	EvictionPolicy: cache.AllKeysLRU,
})

// IdempotencyCache keeps one entry per (endpoint, key) pair. A day is long
// enough to cover client retries of a single submission session.
var IdempotencyCache = cache.NewStructKeyspace[model.IdempotencyKey, model.IdempotencyCacheEntry](
	IdempotencyCluster,
	cache.KeyspaceConfig{
		KeyPattern:    "idempotency/:Resource/:Key",
		DefaultExpiry: cache.ExpireIn(24 * time.Hour),
	},
)
