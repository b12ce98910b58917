// Package analytics contiene el caso de uso del resumen del Dashboard.
package analytics

import (
	"context"
	"fmt"

	"github.com/RaGnaRoK-thor/invsys/internal/application/dto"
	"github.com/RaGnaRoK-thor/invsys/internal/domain/repository"
)

// DashboardUseCase genera el resumen de conteos del dashboard.
//
// Fuente de datos: AnalyticsRepository (consultas read-only). Sin caché:
// cada llamada recalcula los cinco conteos completos.
type DashboardUseCase struct {
	analyticsRepo repository.AnalyticsRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(analyticsRepo repository.AnalyticsRepository) *DashboardUseCase {
	return &DashboardUseCase{analyticsRepo: analyticsRepo}
}

// GetSummary construye el DashboardSummaryDTO.
//
// Las cinco consultas COUNT se lanzan en paralelo; son lecturas independientes
// sobre el mismo *sql.DB, que es seguro para uso concurrente.
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	type countResult struct {
		label string
		n     int64
		err   error
	}

	counts := []struct {
		label string
		fn    func(context.Context) (int64, error)
	}{
		{"empleados", uc.analyticsRepo.CountUsers},
		{"categorías", uc.analyticsRepo.CountCategories},
		{"proveedores", uc.analyticsRepo.CountSuppliers},
		{"productos", uc.analyticsRepo.CountProducts},
		{"reposición", uc.analyticsRepo.CountProductsNeedingRestock},
	}

	ch := make(chan countResult, len(counts))
	for _, c := range counts {
		go func(label string, fn func(context.Context) (int64, error)) {
			n, err := fn(ctx)
			ch <- countResult{label, n, err}
		}(c.label, c.fn)
	}

	results := make(map[string]int64, len(counts))
	for range counts {
		res := <-ch
		if res.err != nil {
			return nil, fmt.Errorf("dashboard: conteo de %s: %w", res.label, res.err)
		}
		results[res.label] = res.n
	}

	return &dto.DashboardSummaryDTO{
		TotalEmployees:         results["empleados"],
		TotalCategories:        results["categorías"],
		TotalSuppliers:         results["proveedores"],
		TotalProducts:          results["productos"],
		ProductsNeedingRestock: results["reposición"],
	}, nil
}
