package dto

// DashboardCountsDTO contadores de las tarjetas del dashboard.
type DashboardCountsDTO struct {
	CustomerCount  int `json:"customer_count"`
	FascicoliCount int `json:"fascicoli_count"`
}
