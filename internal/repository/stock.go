package repository

import (
	"context"
	"fmt"
	"sync"

	"github.com/roguecreek/quartermaster/internal/domain"
	"github.com/roguecreek/quartermaster/internal/repository/dao"
)

var (
	ErrItemNotFound       = dao.ErrItemNotFound
	ErrStorageUnavailable = dao.ErrStorageUnavailable
)

type StockDAO interface {
	Seed(ctx context.Context, dom domain.Domain, items []string) error
	GetQuantity(ctx context.Context, dom domain.Domain, item string) (int, error)
	AdjustQuantity(ctx context.Context, dom domain.Domain, item string, delta int) (int, error)
	ListQuantities(ctx context.Context, dom domain.Domain) ([]dao.StockEntry, error)
}

// StockRepository is the ledger's storage gateway. It serializes
// read-modify-write cycles per (domain, item) key; this process is the
// store's sole writer, so in-process locking is sufficient to keep
// concurrent adjustments of the same item from losing updates.
type StockRepository struct {
	dao   StockDAO
	locks sync.Map // "<domain>/<item>" -> *sync.Mutex
}

func NewStockRepository(dao StockDAO) *StockRepository {
	return &StockRepository{
		dao: dao,
	}
}

func (r *StockRepository) Seed(ctx context.Context, dom domain.Domain, items []domain.CatalogItem) error {
	names := make([]string, len(items))
	for i, item := range items {
		names[i] = item.Name
	}

	if err := r.dao.Seed(ctx, dom, names); err != nil {
		return fmt.Errorf("r.dao.Seed -> %w", err)
	}

	return nil
}

func (r *StockRepository) GetQuantity(ctx context.Context, dom domain.Domain, item string) (int, error) {
	quantity, err := r.dao.GetQuantity(ctx, dom, item)
	if err != nil {
		return 0, fmt.Errorf("r.dao.GetQuantity -> %w", err)
	}

	return quantity, nil
}

// AdjustQuantity applies the delta under the item's lock. Different
// items never block each other.
func (r *StockRepository) AdjustQuantity(ctx context.Context, dom domain.Domain, item string, delta int) (int, error) {
	mu := r.itemLock(dom, item)
	mu.Lock()
	defer mu.Unlock()

	quantity, err := r.dao.AdjustQuantity(ctx, dom, item, delta)
	if err != nil {
		return 0, fmt.Errorf("r.dao.AdjustQuantity -> %w", err)
	}

	return quantity, nil
}

func (r *StockRepository) ListQuantities(ctx context.Context, dom domain.Domain) ([]domain.StockRow, error) {
	entries, err := r.dao.ListQuantities(ctx, dom)
	if err != nil {
		return nil, fmt.Errorf("r.dao.ListQuantities -> %w", err)
	}

	rows := make([]domain.StockRow, len(entries))
	for i, entry := range entries {
		rows[i] = domain.StockRow{
			ItemName: entry.Item,
			Quantity: entry.Quantity,
		}
	}

	return rows, nil
}

func (r *StockRepository) itemLock(dom domain.Domain, item string) *sync.Mutex {
	key := string(dom) + "/" + item
	mu, _ := r.locks.LoadOrStore(key, &sync.Mutex{})
	return mu.(*sync.Mutex)
}
