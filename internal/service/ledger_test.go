package service_test

import (
	"context"
	"path/filepath"
	"sync"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/roguecreek/quartermaster/internal/catalog"
	"github.com/roguecreek/quartermaster/internal/domain"
	"github.com/roguecreek/quartermaster/internal/repository"
	"github.com/roguecreek/quartermaster/internal/repository/dao"
	"github.com/roguecreek/quartermaster/internal/service"
)

func newTestLedger(t *testing.T) *service.LedgerService {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, dao.InitTables(db))

	return service.NewLedgerService(repository.NewStockRepository(dao.NewStockDAO(db)))
}

func TestSeedIsIdempotent(t *testing.T) {
	ledger := newTestLedger(t)
	ctx := context.Background()

	require.NoError(t, ledger.Seed(ctx, domain.DomainAmmunition))

	_, err := ledger.Adjust(ctx, domain.DomainAmmunition, "5.56", 20)
	require.NoError(t, err)

	// A second seed must not reset nonzero quantities or duplicate rows.
	require.NoError(t, ledger.Seed(ctx, domain.DomainAmmunition))

	rows, err := ledger.Snapshot(ctx, domain.DomainAmmunition)
	require.NoError(t, err)
	assert.Len(t, rows, len(catalog.Items(domain.DomainAmmunition)))
	assert.Equal(t, domain.StockRow{ItemName: "5.56", Quantity: 20}, rows[0])
}

func TestSnapshotCompleteness(t *testing.T) {
	ledger := newTestLedger(t)
	ctx := context.Background()

	require.NoError(t, ledger.Seed(ctx, domain.DomainMedical))

	rows, err := ledger.Snapshot(ctx, domain.DomainMedical)
	require.NoError(t, err)

	items := catalog.Items(domain.DomainMedical)
	require.Len(t, rows, len(items))
	for i, item := range items {
		assert.Equal(t, item.Name, rows[i].ItemName)
		assert.Zero(t, rows[i].Quantity)
	}
}

func TestAdjustClampsAtZero(t *testing.T) {
	ledger := newTestLedger(t)
	ctx := context.Background()

	require.NoError(t, ledger.Seed(ctx, domain.DomainAmmunition))

	tests := []struct {
		delta int
		want  int
	}{
		{delta: 20, want: 20},
		{delta: -5, want: 15},
		{delta: -100, want: 0}, // over-large removal empties, never goes negative
		{delta: 3, want: 3},
	}
	for _, tt := range tests {
		got, err := ledger.Adjust(ctx, domain.DomainAmmunition, "7.62x39", tt.delta)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
		assert.GreaterOrEqual(t, got, 0)
	}
}

func TestAdjustRejectsZeroDelta(t *testing.T) {
	ledger := newTestLedger(t)
	ctx := context.Background()

	require.NoError(t, ledger.Seed(ctx, domain.DomainAmmunition))

	_, err := ledger.Adjust(ctx, domain.DomainAmmunition, "5.56", 0)
	assert.ErrorIs(t, err, service.ErrInvalidDelta)
}

func TestAdjustRejectsUnknownItem(t *testing.T) {
	ledger := newTestLedger(t)
	ctx := context.Background()

	require.NoError(t, ledger.Seed(ctx, domain.DomainAmmunition))

	_, err := ledger.Adjust(ctx, domain.DomainAmmunition, "nonexistent", 1)
	assert.ErrorIs(t, err, service.ErrUnknownItem)

	// Medical items are not ammunition.
	_, err = ledger.Adjust(ctx, domain.DomainAmmunition, "Morphine", 1)
	assert.ErrorIs(t, err, service.ErrUnknownItem)

	// The table is untouched.
	rows, err := ledger.Snapshot(ctx, domain.DomainAmmunition)
	require.NoError(t, err)
	for _, row := range rows {
		assert.Zero(t, row.Quantity)
	}
}

func TestAdjustConcurrentSameItem(t *testing.T) {
	ledger := newTestLedger(t)
	ctx := context.Background()

	require.NoError(t, ledger.Seed(ctx, domain.DomainAmmunition))

	_, err := ledger.Adjust(ctx, domain.DomainAmmunition, "5.45", 10)
	require.NoError(t, err)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		_, adjErr := ledger.Adjust(ctx, domain.DomainAmmunition, "5.45", 5)
		assert.NoError(t, adjErr)
	}()
	go func() {
		defer wg.Done()
		_, adjErr := ledger.Adjust(ctx, domain.DomainAmmunition, "5.45", -3)
		assert.NoError(t, adjErr)
	}()
	wg.Wait()

	// Neither write may be lost: 10 + 5 - 3 = 12, never 7 or 15.
	quantity, err := ledger.Adjust(ctx, domain.DomainAmmunition, "5.45", -12)
	require.NoError(t, err)
	assert.Equal(t, 0, quantity)

	rows, err := ledger.Snapshot(ctx, domain.DomainAmmunition)
	require.NoError(t, err)
	for _, row := range rows {
		if row.ItemName == "5.45" {
			assert.Equal(t, 0, row.Quantity)
		}
	}
}

func TestAdjustConcurrentIncrements(t *testing.T) {
	ledger := newTestLedger(t)
	ctx := context.Background()

	require.NoError(t, ledger.Seed(ctx, domain.DomainMedical))

	const workers = 20
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			_, err := ledger.Adjust(ctx, domain.DomainMedical, "Morphine", 1)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	rows, err := ledger.Snapshot(ctx, domain.DomainMedical)
	require.NoError(t, err)
	assert.Equal(t, domain.StockRow{ItemName: "Morphine", Quantity: workers}, rows[0])
}

func TestRender(t *testing.T) {
	ledger := newTestLedger(t)
	ctx := context.Background()

	require.NoError(t, ledger.Seed(ctx, domain.DomainAmmunition))

	_, err := ledger.Adjust(ctx, domain.DomainAmmunition, "5.56", 20)
	require.NoError(t, err)

	out, err := ledger.Render(ctx, domain.DomainAmmunition)
	require.NoError(t, err)

	assert.Contains(t, out, "Current ammunition stocks")
	assert.Contains(t, out, "```")
	assert.Contains(t, out, "Item")
	assert.Contains(t, out, "Quantity")
	// Zero-quantity rows are still listed.
	assert.Regexp(t, `5\.56\s+20`, out)
	assert.Regexp(t, `7\.62x39\s+0`, out)
}

func TestRenderEmptyDomain(t *testing.T) {
	ledger := newTestLedger(t)
	ctx := context.Background()

	// Medical is never seeded here, so its snapshot has zero rows.
	out, err := ledger.Render(ctx, domain.DomainMedical)
	require.NoError(t, err)

	assert.Contains(t, out, "Nothing in stock")
	assert.NotContains(t, out, "```")
}

func TestEndToEnd(t *testing.T) {
	ledger := newTestLedger(t)
	ctx := context.Background()

	require.NoError(t, ledger.Seed(ctx, domain.DomainAmmunition))

	rows, err := ledger.Snapshot(ctx, domain.DomainAmmunition)
	require.NoError(t, err)
	for _, row := range rows {
		assert.Zero(t, row.Quantity)
	}

	quantity, err := ledger.Adjust(ctx, domain.DomainAmmunition, "5.56", 20)
	require.NoError(t, err)
	assert.Equal(t, 20, quantity)

	quantity, err = ledger.Adjust(ctx, domain.DomainAmmunition, "5.56", -25)
	require.NoError(t, err)
	assert.Equal(t, 0, quantity)

	out, err := ledger.Render(ctx, domain.DomainAmmunition)
	require.NoError(t, err)
	assert.Regexp(t, `5\.56\s+0`, out)
	assert.Regexp(t, `7\.62x39\s+0`, out)
}
