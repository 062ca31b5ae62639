package ports

import (
	"context"
	"route-resolver-service/internal/domain"
)

// Port: the routes and reservations CRUD backend.
type Catalog interface {
	ListRutas(ctx context.Context) ([]domain.Ruta, error)
	CreateRuta(ctx context.Context, r domain.Ruta) (domain.Ruta, error)
	UpdateRuta(ctx context.Context, id int64, r domain.Ruta) (domain.Ruta, error)
	DeleteRuta(ctx context.Context, id int64) error

	CreateReserva(ctx context.Context, r domain.Reserva) (domain.Reserva, error)
	ListReservasByRuta(ctx context.Context, rutaID int64) ([]domain.Reserva, error)
}
