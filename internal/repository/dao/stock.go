package dao

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/roguecreek/quartermaster/internal/domain"
)

var (
	ErrItemNotFound       = errors.New("item not found")
	ErrStorageUnavailable = errors.New("storage unavailable")
)

// StockEntry mirrors the stock_<domain> table layout:
// item TEXT PRIMARY KEY, quantity INTEGER NOT NULL DEFAULT 0.
type StockEntry struct {
	Item     string `gorm:"primaryKey;column:item"`
	Quantity int    `gorm:"not null;default:0;column:quantity"`
}

type StockDAO struct {
	db *gorm.DB
}

func NewStockDAO(db *gorm.DB) *StockDAO {
	return &StockDAO{
		db: db,
	}
}

// Seed inserts a zero-quantity row for every given item that is not
// already present. Existing rows are never touched.
func (d *StockDAO) Seed(ctx context.Context, dom domain.Domain, items []string) error {
	for _, item := range items {
		result := d.db.WithContext(ctx).
			Table(dom.TableName()).
			Clauses(clause.OnConflict{DoNothing: true}).
			Create(&StockEntry{Item: item, Quantity: 0})
		if result.Error != nil {
			return mapStorageErr(result.Error)
		}
	}

	return nil
}

// GetQuantity returns the current quantity for one item.
func (d *StockDAO) GetQuantity(ctx context.Context, dom domain.Domain, item string) (int, error) {
	var entry StockEntry
	result := d.db.WithContext(ctx).
		Table(dom.TableName()).
		Where("item = ?", item).
		First(&entry)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return 0, ErrItemNotFound
		}

		return 0, mapStorageErr(result.Error)
	}

	return entry.Quantity, nil
}

// AdjustQuantity applies the delta to the item's quantity, clamping at
// zero, inside a single transaction. Returns the persisted quantity.
// Callers serialize concurrent adjustments of the same item.
func (d *StockDAO) AdjustQuantity(ctx context.Context, dom domain.Domain, item string, delta int) (int, error) {
	var newQuantity int
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var entry StockEntry
		result := tx.Table(dom.TableName()).
			Where("item = ?", item).
			First(&entry)
		if result.Error != nil {
			if errors.Is(result.Error, gorm.ErrRecordNotFound) {
				return ErrItemNotFound
			}

			return result.Error
		}

		newQuantity = entry.Quantity + delta
		if newQuantity < 0 {
			newQuantity = 0
		}

		result = tx.Table(dom.TableName()).
			Where("item = ?", item).
			Update("quantity", newQuantity)
		if result.Error != nil {
			return result.Error
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, ErrItemNotFound) {
			return 0, ErrItemNotFound
		}

		return 0, mapStorageErr(err)
	}

	return newQuantity, nil
}

// ListQuantities reads every row of the domain's stock table in one
// statement, so the snapshot is never torn across rows.
func (d *StockDAO) ListQuantities(ctx context.Context, dom domain.Domain) ([]StockEntry, error) {
	var entries []StockEntry
	result := d.db.WithContext(ctx).
		Table(dom.TableName()).
		Find(&entries)
	if result.Error != nil {
		return nil, mapStorageErr(result.Error)
	}

	return entries, nil
}

// mapStorageErr classifies driver failures. Postgres server-side errors
// with a non-connection code pass through untouched; everything else
// (dial failures, connection-class codes) is a retryable outage.
func mapStorageErr(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && !pgerrcode.IsConnectionException(pgErr.Code) {
		return err
	}

	return fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
}
