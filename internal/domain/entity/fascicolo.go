package entity

import "time"

// Fascicolo expediente de un cliente. Number es único entre todos los fascicoli;
// Date se fija en el servidor al crear y no cambia después.
type Fascicolo struct {
	ID         string
	CustomerID string
	Type       string
	Number     int
	Date       time.Time
}
