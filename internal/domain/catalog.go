package domain

// Ruta is a stored route in the routes and reservations backend.
type Ruta struct {
	ID          int64  `json:"id,omitempty"`
	Origen      string `json:"origen" validate:"required"`
	Destino     string `json:"destino" validate:"required"`
	Descripcion string `json:"descripcion" validate:"required"`
}

// RutaRef points a reservation at an existing Ruta.
type RutaRef struct {
	ID int64 `json:"id" validate:"gt=0"`
}

// Reserva is a passenger reservation on a Ruta.
type Reserva struct {
	ID     int64   `json:"id,omitempty"`
	Nombre string  `json:"nombre" validate:"required"`
	Ruta   RutaRef `json:"ruta"`
}
