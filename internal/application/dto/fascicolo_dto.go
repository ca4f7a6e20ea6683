package dto

// FascicoloRequest entrada validada para crear o actualizar un fascicolo.
// Number llega como texto (formularios) y se convierte a entero al persistir.
type FascicoloRequest struct {
	CustomerID string `json:"customerId" validate:"required"`
	Type       string `json:"type" validate:"required"`
	Number     string `json:"number" validate:"required,numeric"`
}

// FascicoloRowResponse fila del listado de fascicoli.
type FascicoloRowResponse struct {
	ID            string `json:"id"`
	CustomerID    string `json:"customer_id"`
	Type          string `json:"type"`
	Number        int    `json:"number"`
	Date          string `json:"date"`       // YYYY-MM-DD
	DateLabel     string `json:"date_label"` // "14 ott 2026"
	CustomerName  string `json:"name"`
	CustomerEmail string `json:"email"`
	ImageURL      string `json:"image_url"`
}

// FascicoloListResponse página de fascicoli filtrada.
type FascicoloListResponse struct {
	Items []FascicoloRowResponse `json:"items"`
	Page  PageResponse           `json:"page"`
}

// FascicoloFormResponse datos para el formulario de edición.
type FascicoloFormResponse struct {
	ID         string `json:"id"`
	CustomerID string `json:"customer_id"`
	Type       string `json:"type"`
	Number     int    `json:"number"`
}
