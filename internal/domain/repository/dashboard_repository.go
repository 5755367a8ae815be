package repository

// DashboardKPIs resultado crudo de la consulta de indicadores del tablero.
// Lo produce la DB; el use case lo convierte en DTO.
type DashboardKPIs struct {
	TotalProducts      int64
	LowStockProducts   int64
	PendingReceipts    int64 // recepciones en DRAFT/WAITING/READY
	PendingDeliveries  int64 // entregas en DRAFT/WAITING/READY
	MovementsToday     int64
	TotalStockUnits    int64 // suma de todos los saldos
	WarehousesCount    int64
}

// DashboardRepository define las consultas de lectura del tablero.
// Las implementaciones son read-only y sin bloqueo: los valores pueden estar
// ligeramente desactualizados respecto a validaciones en curso.
type DashboardRepository interface {
	GetKPIs() (*DashboardKPIs, error)
}
