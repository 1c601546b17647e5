package cache

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

const (
	// ItemCacheTTL is the time-to-live for cached catalog items.
	ItemCacheTTL = time.Hour

	itemCacheKeyPrefix = "item"
)

// CachedItem is the denormalized catalog read model stored in Redis.
// Stock held here is advisory only — the database guard on stock_available
// is the source of truth for sales.
type CachedItem struct {
	ID                   uuid.UUID       `json:"id"`
	Name                 string          `json:"name"`
	UnitPrice            decimal.Decimal `json:"unit_price"`
	StockAvailable       int             `json:"stock_available"`
	DiscountRate         decimal.Decimal `json:"discount_rate"`
	DiscountThresholdQty int             `json:"discount_threshold_qty"`
	CategoryID           uuid.UUID       `json:"category_id"`
	LastUpdatedAt        time.Time       `json:"last_updated_at"`
}

// ItemCache provides structured read/write operations for item cache entries.
// Key format: "item:{itemID}"
type ItemCache struct {
	client *RedisClient
}

// NewItemCache creates a new ItemCache backed by the given RedisClient.
func NewItemCache(r *RedisClient) *ItemCache {
	return &ItemCache{client: r}
}

// Get retrieves a cached item by ID.
// Returns redis.Nil error when the key does not exist or has expired.
func (c *ItemCache) Get(ctx context.Context, itemID uuid.UUID) (*CachedItem, error) {
	key := c.key(itemID)
	vals, err := c.client.Client().HGetAll(ctx, key).Result()
	if err != nil {
		return nil, fmt.Errorf("cache get: %w", err)
	}
	if len(vals) == 0 {
		return nil, redis.Nil // key not found
	}

	id, err := uuid.Parse(vals["id"])
	if err != nil {
		return nil, fmt.Errorf("cache parse id: %w", err)
	}
	categoryID, err := uuid.Parse(vals["category_id"])
	if err != nil {
		return nil, fmt.Errorf("cache parse category_id: %w", err)
	}
	unitPrice, err := decimal.NewFromString(vals["unit_price"])
	if err != nil {
		return nil, fmt.Errorf("cache parse unit_price: %w", err)
	}
	discountRate, err := decimal.NewFromString(vals["discount_rate"])
	if err != nil {
		return nil, fmt.Errorf("cache parse discount_rate: %w", err)
	}
	stock, err := strconv.Atoi(vals["stock_available"])
	if err != nil {
		return nil, fmt.Errorf("cache parse stock_available: %w", err)
	}
	thresholdQty, err := strconv.Atoi(vals["discount_threshold_qty"])
	if err != nil {
		return nil, fmt.Errorf("cache parse discount_threshold_qty: %w", err)
	}
	updatedAt, err := time.Parse(time.RFC3339Nano, vals["last_updated_at"])
	if err != nil {
		return nil, fmt.Errorf("cache parse last_updated_at: %w", err)
	}

	return &CachedItem{
		ID:                   id,
		Name:                 vals["name"],
		UnitPrice:            unitPrice,
		StockAvailable:       stock,
		DiscountRate:         discountRate,
		DiscountThresholdQty: thresholdQty,
		CategoryID:           categoryID,
		LastUpdatedAt:        updatedAt,
	}, nil
}

// Set writes a cached item as a Redis hash with a one-hour TTL.
// Uses a pipeline to set all fields and the TTL atomically.
func (c *ItemCache) Set(ctx context.Context, item *CachedItem) error {
	key := c.key(item.ID)
	pipe := c.client.Client().Pipeline()
	pipe.HSet(ctx, key,
		"id", item.ID.String(),
		"name", item.Name,
		"unit_price", item.UnitPrice.String(),
		"stock_available", strconv.Itoa(item.StockAvailable),
		"discount_rate", item.DiscountRate.String(),
		"discount_threshold_qty", strconv.Itoa(item.DiscountThresholdQty),
		"category_id", item.CategoryID.String(),
		"last_updated_at", item.LastUpdatedAt.UTC().Format(time.RFC3339Nano),
	)
	pipe.Expire(ctx, key, ItemCacheTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("cache set: %w", err)
	}
	return nil
}

// Delete removes a cached item. Call after any write that changes price,
// stock, or the discount rule.
func (c *ItemCache) Delete(ctx context.Context, itemID uuid.UUID) error {
	if err := c.client.Client().Del(ctx, c.key(itemID)).Err(); err != nil {
		return fmt.Errorf("cache delete: %w", err)
	}
	return nil
}

// key builds the Redis key: "item:{itemID}"
func (c *ItemCache) key(itemID uuid.UUID) string {
	return fmt.Sprintf("%s:%s", itemCacheKeyPrefix, itemID)
}
