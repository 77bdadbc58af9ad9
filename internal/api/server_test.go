package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/roguecreek/quartermaster/internal/api"
	"github.com/roguecreek/quartermaster/internal/api/handler/v1/response"
	"github.com/roguecreek/quartermaster/internal/config"
	"github.com/roguecreek/quartermaster/internal/domain"
	"github.com/roguecreek/quartermaster/internal/repository"
	"github.com/roguecreek/quartermaster/internal/repository/dao"
	"github.com/roguecreek/quartermaster/internal/service"
)

func newTestServer(t *testing.T) *api.Server {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, dao.InitTables(db))

	ledger := service.NewLedgerService(repository.NewStockRepository(dao.NewStockDAO(db)))
	require.NoError(t, ledger.Seed(context.Background(), domain.DomainAmmunition))

	_, err = ledger.Adjust(context.Background(), domain.DomainAmmunition, "5.56", 20)
	require.NoError(t, err)

	conf := &config.AppConfig{
		API: &config.APIConfig{
			Environment:        "test",
			Port:               "0",
			AllowedCORSDomains: "*",
		},
		Gin: &config.GinConfig{Mode: "test"},
	}

	return api.NewServer(conf, db)
}

func TestHandleHealthz(t *testing.T) {
	s := newTestServer(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	s.Router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestHandleGetStocks(t *testing.T) {
	s := newTestServer(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/stocks/ammunition", nil)
	s.Router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp response.StockTable
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Equal(t, "ammunition", resp.Domain)
	require.Len(t, resp.Rows, 8)
	assert.Equal(t, response.StockRow{Item: "5.56", Quantity: 20}, resp.Rows[0])
	assert.Contains(t, resp.Rendered, "Current ammunition stocks")
}

func TestHandleGetStocksUnknownDomain(t *testing.T) {
	s := newTestServer(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/stocks/groceries", nil)
	s.Router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
