package analytics

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stock-api/internal/application/dto"
	"github.com/jhoicas/stock-api/internal/application/ports"
	"github.com/jhoicas/stock-api/internal/domain/repository"
)

// memCache cache en memoria con la misma semántica JSON que la de Redis.
type memCache struct {
	store map[string][]byte
	sets  int
}

func newMemCache() *memCache {
	return &memCache{store: make(map[string][]byte)}
}

func (c *memCache) Get(_ context.Context, key string, dest any) (bool, error) {
	data, ok := c.store[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(data, dest)
}

func (c *memCache) Set(_ context.Context, key string, value any, _ time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.store[key] = data
	c.sets++
	return nil
}

func (c *memCache) Delete(_ context.Context, keys ...string) error {
	for _, k := range keys {
		delete(c.store, k)
	}
	return nil
}

func TestGetDashboard_ArmaElDocumento(t *testing.T) {
	saleDate := time.Date(2026, 4, 2, 18, 30, 0, 0, time.UTC)
	repo := &fakeReportRepo{
		summary: repository.SalesSummaryResult{
			TotalTransactions:   12,
			TotalItemsSold:      37,
			TotalRevenue:        decimal.RequireFromString("842.10"),
			TotalProducts:       5,
			TotalAvailableStock: 90,
		},
		top: []repository.TopProductResult{
			{ProductID: "p1", Name: "Teclado", Category: "general", ItemsSold: 20, Revenue: decimal.RequireFromString("600.00")},
			{ProductID: "p2", Name: "Mouse", Category: "general", ItemsSold: 17, Revenue: decimal.RequireFromString("242.10")},
		},
		recent: []repository.RecentSaleResult{
			{SaleID: "s1", Name: "Mouse", Quantity: 2, TotalPrice: decimal.RequireFromString("19.98"), Date: saleDate},
		},
	}
	uc := NewDashboardUseCase(repo, newMemCache())

	out, err := uc.GetDashboard(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 12, out.Summary.TotalTransactions)
	assert.Equal(t, 37, out.Summary.TotalItemsSold)
	assert.Equal(t, 90, out.Summary.TotalAvailableStock)
	require.Len(t, out.TopProducts, 2)
	assert.Equal(t, "Teclado", out.TopProducts[0].Name)
	require.Len(t, out.RecentSales, 1)
	assert.Equal(t, "s1", out.RecentSales[0].SaleID)
	assert.Equal(t, saleDate, out.RecentSales[0].Date)

	assert.Equal(t, 5, repo.gotTopLimit, "el top usa límite 5")
	assert.Equal(t, 10, repo.gotRecLimit, "las recientes usan límite 10")
}

func TestGetDashboard_CatalogoVacio_DevuelveCeros(t *testing.T) {
	uc := NewDashboardUseCase(&fakeReportRepo{}, newMemCache())

	out, err := uc.GetDashboard(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 0, out.Summary.TotalTransactions)
	assert.True(t, out.Summary.TotalRevenue.IsZero())
	assert.NotNil(t, out.TopProducts, "listas vacías, nunca null")
	assert.NotNil(t, out.RecentSales)
	assert.Empty(t, out.TopProducts)
}

func TestGetDashboard_SegundoLlamadoSaleDelCache(t *testing.T) {
	repo := &fakeReportRepo{
		summary: repository.SalesSummaryResult{TotalTransactions: 3, TotalRevenue: decimal.Zero},
	}
	cache := newMemCache()
	uc := NewDashboardUseCase(repo, cache)

	first, err := uc.GetDashboard(context.Background())
	require.NoError(t, err)
	callsAfterFirst := repo.calls
	assert.Equal(t, 1, cache.sets, "el primer llamado puebla el cache")

	second, err := uc.GetDashboard(context.Background())
	require.NoError(t, err)
	assert.Equal(t, callsAfterFirst, repo.calls, "el hit de cache no consulta la DB")
	assert.Equal(t, first.Summary.TotalTransactions, second.Summary.TotalTransactions)
}

func TestGetDashboard_InvalidacionFuerzaRefresco(t *testing.T) {
	repo := &fakeReportRepo{
		summary: repository.SalesSummaryResult{TotalTransactions: 1, TotalRevenue: decimal.Zero},
	}
	cache := newMemCache()
	uc := NewDashboardUseCase(repo, cache)

	_, err := uc.GetDashboard(context.Background())
	require.NoError(t, err)

	// Simula la invalidación que hacen las rutas de escritura
	require.NoError(t, cache.Delete(context.Background(), ports.CacheKeyDashboard))
	repo.summary.TotalTransactions = 2

	out, err := uc.GetDashboard(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, out.Summary.TotalTransactions, "tras invalidar se observa el estado nuevo")
}

// Garantiza que el documento cacheado round-trippea por JSON sin perder forma.
func TestDashboardResponse_JSONRoundTrip(t *testing.T) {
	in := dto.DashboardResponse{
		Summary: dto.DashboardSummaryDTO{
			TotalTransactions: 2,
			TotalRevenue:      decimal.RequireFromString("10.50"),
		},
		TopProducts: []dto.TopProductDTO{},
		RecentSales: []dto.RecentSaleDTO{},
	}
	data, err := json.Marshal(in)
	require.NoError(t, err)

	var out dto.DashboardResponse
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, 2, out.Summary.TotalTransactions)
	assert.True(t, out.Summary.TotalRevenue.Equal(decimal.RequireFromString("10.50")))
}
