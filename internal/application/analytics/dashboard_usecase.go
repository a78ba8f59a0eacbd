package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/stock-api/internal/application/dto"
	"github.com/jhoicas/stock-api/internal/application/ports"
	"github.com/jhoicas/stock-api/internal/domain/repository"
)

const (
	dashboardTopProducts = 5  // productos en el widget top-sellers
	dashboardRecentSales = 10 // ventas en el widget de recientes
	dashboardCacheTTL    = 30 * time.Second
)

// DashboardUseCase arma el documento del dashboard: agregados globales,
// top-5 productos por unidades vendidas y las 10 ventas más recientes.
//
// Fuente de datos: ReportRepository (consultas read-only). El documento
// completo se cachea con TTL corto; las rutas de escritura lo invalidan.
type DashboardUseCase struct {
	reportRepo repository.ReportRepository
	cache      ports.Cache
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(reportRepo repository.ReportRepository, cache ports.Cache) *DashboardUseCase {
	return &DashboardUseCase{reportRepo: reportRepo, cache: cache}
}

// GetDashboard construye el DashboardResponse.
//
// Tres consultas en paralelo:
//  1. GetSalesSummary          → summary
//  2. GetTopProducts(top 5)    → top_products
//  3. GetRecentSales(10)       → recent_sales
func (uc *DashboardUseCase) GetDashboard(ctx context.Context) (*dto.DashboardResponse, error) {
	var cached dto.DashboardResponse
	if ok, err := uc.cache.Get(ctx, ports.CacheKeyDashboard, &cached); err == nil && ok {
		return &cached, nil
	}

	type summaryResult struct {
		summary repository.SalesSummaryResult
		err     error
	}
	type topResult struct {
		products []repository.TopProductResult
		err      error
	}
	type recentResult struct {
		sales []repository.RecentSaleResult
		err   error
	}

	summaryCh := make(chan summaryResult, 1)
	topCh := make(chan topResult, 1)
	recentCh := make(chan recentResult, 1)

	go func() {
		s, err := uc.reportRepo.GetSalesSummary(ctx)
		summaryCh <- summaryResult{s, err}
	}()
	go func() {
		p, err := uc.reportRepo.GetTopProducts(ctx, dashboardTopProducts)
		topCh <- topResult{p, err}
	}()
	go func() {
		s, err := uc.reportRepo.GetRecentSales(ctx, dashboardRecentSales)
		recentCh <- recentResult{s, err}
	}()

	summary := <-summaryCh
	top := <-topCh
	recent := <-recentCh

	if summary.err != nil {
		return nil, fmt.Errorf("dashboard: resumen de ventas: %w", summary.err)
	}
	if top.err != nil {
		return nil, fmt.Errorf("dashboard: top productos: %w", top.err)
	}
	if recent.err != nil {
		return nil, fmt.Errorf("dashboard: ventas recientes: %w", recent.err)
	}

	out := &dto.DashboardResponse{
		Summary: dto.DashboardSummaryDTO{
			TotalTransactions:   summary.summary.TotalTransactions,
			TotalItemsSold:      summary.summary.TotalItemsSold,
			TotalRevenue:        summary.summary.TotalRevenue,
			TotalProducts:       summary.summary.TotalProducts,
			TotalAvailableStock: summary.summary.TotalAvailableStock,
		},
		TopProducts: make([]dto.TopProductDTO, 0, len(top.products)),
		RecentSales: make([]dto.RecentSaleDTO, 0, len(recent.sales)),
	}
	for _, p := range top.products {
		out.TopProducts = append(out.TopProducts, dto.TopProductDTO{
			ProductID: p.ProductID,
			Name:      p.Name,
			Category:  p.Category,
			ItemsSold: p.ItemsSold,
			Revenue:   p.Revenue,
		})
	}
	for _, s := range recent.sales {
		out.RecentSales = append(out.RecentSales, dto.RecentSaleDTO{
			SaleID:     s.SaleID,
			Name:       s.Name,
			Quantity:   s.Quantity,
			TotalPrice: s.TotalPrice,
			Date:       s.Date,
		})
	}

	_ = uc.cache.Set(ctx, ports.CacheKeyDashboard, out, dashboardCacheTTL)

	return out, nil
}
