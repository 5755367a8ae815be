package usecase

import (
	"github.com/jhoicas/stockmaster-api/internal/application/dto"
	"github.com/jhoicas/stockmaster-api/internal/domain/repository"
)

// DashboardUseCase indicadores agregados para el tablero.
// Lecturas sin bloqueo: pueden estar ligeramente detrás de validaciones en curso.
type DashboardUseCase struct {
	dashboardRepo repository.DashboardRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(dashboardRepo repository.DashboardRepository) *DashboardUseCase {
	return &DashboardUseCase{dashboardRepo: dashboardRepo}
}

// GetKPIs devuelve los indicadores del tablero.
func (uc *DashboardUseCase) GetKPIs() (*dto.DashboardKPIResponse, error) {
	kpis, err := uc.dashboardRepo.GetKPIs()
	if err != nil {
		return nil, err
	}
	return &dto.DashboardKPIResponse{
		TotalProducts:     kpis.TotalProducts,
		LowStockProducts:  kpis.LowStockProducts,
		PendingReceipts:   kpis.PendingReceipts,
		PendingDeliveries: kpis.PendingDeliveries,
		MovementsToday:    kpis.MovementsToday,
		TotalStockUnits:   kpis.TotalStockUnits,
		Warehouses:        kpis.WarehousesCount,
	}, nil
}
