package entity

// DefaultCustomerImage referencia de imagen asignada a los clientes nuevos.
const DefaultCustomerImage = "/customers/evil-rabbit.png"

// Customer representa un cliente titular de fascicoli.
type Customer struct {
	ID       string
	Name     string
	Email    string
	ImageURL string
}
