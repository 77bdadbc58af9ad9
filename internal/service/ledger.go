package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/roguecreek/quartermaster/internal/catalog"
	"github.com/roguecreek/quartermaster/internal/domain"
	"github.com/roguecreek/quartermaster/internal/repository"
)

var (
	ErrUnknownItem        = errors.New("unknown item")
	ErrInvalidDelta       = errors.New("invalid delta")
	ErrStorageUnavailable = repository.ErrStorageUnavailable
)

type StockRepository interface {
	Seed(ctx context.Context, dom domain.Domain, items []domain.CatalogItem) error
	GetQuantity(ctx context.Context, dom domain.Domain, item string) (int, error)
	AdjustQuantity(ctx context.Context, dom domain.Domain, item string, delta int) (int, error)
	ListQuantities(ctx context.Context, dom domain.Domain) ([]domain.StockRow, error)
}

// LedgerService is the single owner of stock quantities. All mutation
// goes through Adjust, which clamps at zero: a removal larger than the
// current stock empties the item rather than failing, so the table is
// always displayable and never shows a deficit.
type LedgerService struct {
	repo StockRepository
}

func NewLedgerService(repo StockRepository) *LedgerService {
	return &LedgerService{
		repo: repo,
	}
}

// Seed inserts a zero row for every catalog item missing from the
// domain's stock table. Idempotent; existing quantities are untouched.
func (s *LedgerService) Seed(ctx context.Context, dom domain.Domain) error {
	items := catalog.Items(dom)
	if len(items) == 0 {
		return nil
	}

	if err := s.repo.Seed(ctx, dom, items); err != nil {
		return fmt.Errorf("s.repo.Seed -> %w", err)
	}

	return nil
}

// Snapshot returns one row per catalog item, in catalog order.
func (s *LedgerService) Snapshot(ctx context.Context, dom domain.Domain) ([]domain.StockRow, error) {
	stored, err := s.repo.ListQuantities(ctx, dom)
	if err != nil {
		return nil, fmt.Errorf("s.repo.ListQuantities -> %w", err)
	}

	quantities := make(map[string]int, len(stored))
	for _, row := range stored {
		quantities[row.ItemName] = row.Quantity
	}

	var rows []domain.StockRow
	for _, item := range catalog.Items(dom) {
		quantity, ok := quantities[item.Name]
		if !ok {
			continue
		}

		rows = append(rows, domain.StockRow{
			ItemName: item.Name,
			Quantity: quantity,
		})
	}

	return rows, nil
}

// Adjust applies a signed delta to one item and returns the persisted
// quantity, which is max(0, current+delta). The read and write are
// indivisible with respect to other Adjust calls on the same item.
func (s *LedgerService) Adjust(ctx context.Context, dom domain.Domain, item string, delta int) (int, error) {
	if delta == 0 {
		return 0, ErrInvalidDelta
	}

	if !catalog.Contains(dom, item) {
		return 0, ErrUnknownItem
	}

	quantity, err := s.repo.AdjustQuantity(ctx, dom, item, delta)
	if err != nil {
		if errors.Is(err, repository.ErrItemNotFound) {
			return 0, ErrUnknownItem
		}

		return 0, fmt.Errorf("s.repo.AdjustQuantity -> %w", err)
	}

	return quantity, nil
}
