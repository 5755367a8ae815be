package dto

// CreateWarehouseRequest alta de bodega.
type CreateWarehouseRequest struct {
	Code    string `json:"code"`
	Name    string `json:"name"`
	Address string `json:"address"`
}

// WarehouseResponse representación pública de la bodega.
type WarehouseResponse struct {
	ID        string             `json:"id"`
	Code      string             `json:"code"`
	Name      string             `json:"name"`
	Address   string             `json:"address,omitempty"`
	Locations []LocationResponse `json:"locations,omitempty"`
}

// CreateLocationRequest alta de ubicación dentro de una bodega.
type CreateLocationRequest struct {
	WarehouseID string `json:"warehouse_id"`
	Code        string `json:"code"`
	Name        string `json:"name"`
}

// LocationResponse representación pública de la ubicación.
type LocationResponse struct {
	ID          string `json:"id"`
	WarehouseID string `json:"warehouse_id"`
	Code        string `json:"code"`
	Name        string `json:"name"`
}
