package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	pkgcache "github.com/ghuser/posledger/pkg/cache"
	catalogdomain "github.com/ghuser/posledger/services/catalog/domain"
	"github.com/ghuser/posledger/services/catalog/domain/models"
	"github.com/ghuser/posledger/services/catalog/domain/repositories"
)

// ItemService orchestrates catalog item writes and reads.
// Reads are served from Redis cache when available; every write path
// invalidates the cached entry so stale prices or stock never serve a sale.
type ItemService struct {
	repo  repositories.ItemRepository
	cache *pkgcache.ItemCache
}

// NewItemService returns an ItemService wired with the given repository and cache.
func NewItemService(repo repositories.ItemRepository, itemCache *pkgcache.ItemCache) *ItemService {
	return &ItemService{repo: repo, cache: itemCache}
}

// Create validates and persists a new catalog item.
func (s *ItemService) Create(ctx context.Context, name string, unitPrice decimal.Decimal, stock int, discountRate decimal.Decimal, discountThresholdQty int, categoryID uuid.UUID) (*models.Item, error) {
	item, err := models.NewItem(name, unitPrice, stock, discountRate, discountThresholdQty, categoryID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", catalogdomain.ErrInvalidItem, err)
	}
	if err := s.repo.Save(ctx, item); err != nil {
		return nil, fmt.Errorf("save item: %w", err)
	}
	return item, nil
}

// GetByID retrieves an item using a read-through cache pattern:
//  1. Check Redis cache first.
//  2. On cache miss (or cache error), query Postgres.
//  3. Asynchronously warm the cache with the Postgres result.
func (s *ItemService) GetByID(ctx context.Context, id uuid.UUID) (*models.Item, error) {
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, id); err == nil {
			return &models.Item{
				ID:                   cached.ID,
				Name:                 cached.Name,
				UnitPrice:            cached.UnitPrice,
				StockAvailable:       cached.StockAvailable,
				DiscountRate:         cached.DiscountRate,
				DiscountThresholdQty: cached.DiscountThresholdQty,
				CategoryID:           cached.CategoryID,
				LastUpdatedAt:        cached.LastUpdatedAt,
			}, nil
		} else if !errors.Is(err, redis.Nil) {
			_ = err // cache error: fall through to Postgres
		}
	}

	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get item: %w", err)
	}

	if s.cache != nil {
		go func() {
			_ = s.cache.Set(context.Background(), cachedFromItem(item))
		}()
	}
	return item, nil
}

// List returns one page of items plus the total count for the filter.
func (s *ItemService) List(ctx context.Context, f repositories.ItemFilter) ([]*models.Item, int, error) {
	items, total, err := s.repo.List(ctx, f)
	if err != nil {
		return nil, 0, fmt.Errorf("list items: %w", err)
	}
	return items, total, nil
}

// ListLowStock returns items with stock strictly below threshold.
func (s *ItemService) ListLowStock(ctx context.Context, threshold int) ([]*models.Item, error) {
	items, err := s.repo.ListLowStock(ctx, threshold)
	if err != nil {
		return nil, fmt.Errorf("list low stock: %w", err)
	}
	return items, nil
}

// Update validates and persists item changes, then drops the cached entry.
func (s *ItemService) Update(ctx context.Context, item *models.Item) error {
	if err := s.repo.Update(ctx, item); err != nil {
		return fmt.Errorf("update item: %w", err)
	}
	s.invalidate(item.ID)
	return nil
}

// AdjustStock applies a signed stock delta as one conditional write and drops
// the cached entry. Decrements that would push stock negative are rejected
// with ErrInsufficientStock.
func (s *ItemService) AdjustStock(ctx context.Context, id uuid.UUID, delta int) (*models.Item, error) {
	item, err := s.repo.AdjustStock(ctx, id, delta)
	if err != nil {
		return nil, fmt.Errorf("adjust stock: %w", err)
	}
	s.invalidate(id)
	return item, nil
}

// UpdateDiscount changes an item's discount rule and drops the cached entry.
func (s *ItemService) UpdateDiscount(ctx context.Context, id uuid.UUID, rate decimal.Decimal, thresholdQty int) error {
	if rate.IsNegative() {
		return fmt.Errorf("%w: discount rate must not be negative", catalogdomain.ErrInvalidItem)
	}
	if thresholdQty < 0 {
		return fmt.Errorf("%w: discount threshold must not be negative", catalogdomain.ErrInvalidItem)
	}
	if err := s.repo.UpdateDiscount(ctx, id, rate, thresholdQty); err != nil {
		return fmt.Errorf("update discount: %w", err)
	}
	s.invalidate(id)
	return nil
}

// InvalidateCache drops the cached entry for an item. The worker calls this
// when a sale.created event reports sold stock.
func (s *ItemService) InvalidateCache(ctx context.Context, id uuid.UUID) {
	if s.cache != nil {
		_ = s.cache.Delete(ctx, id)
	}
}

func (s *ItemService) invalidate(id uuid.UUID) {
	if s.cache != nil {
		_ = s.cache.Delete(context.Background(), id)
	}
}

func cachedFromItem(item *models.Item) *pkgcache.CachedItem {
	return &pkgcache.CachedItem{
		ID:                   item.ID,
		Name:                 item.Name,
		UnitPrice:            item.UnitPrice,
		StockAvailable:       item.StockAvailable,
		DiscountRate:         item.DiscountRate,
		DiscountThresholdQty: item.DiscountThresholdQty,
		CategoryID:           item.CategoryID,
		LastUpdatedAt:        item.LastUpdatedAt,
	}
}
