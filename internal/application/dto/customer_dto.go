package dto

// CreateCustomerRequest entrada validada para crear un cliente.
type CreateCustomerRequest struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
}

// CustomerOption opción de selector de cliente.
type CustomerOption struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// CustomerSummaryResponse fila del listado de clientes.
type CustomerSummaryResponse struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	ImageURL       string `json:"image_url"`
	TotalFascicoli int    `json:"total_fascicoli"`
}

// CustomerListResponse página de clientes filtrada.
type CustomerListResponse struct {
	Items []CustomerSummaryResponse `json:"items"`
	Page  PageResponse              `json:"page"`
}
