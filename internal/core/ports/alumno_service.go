package ports

import (
	"context"

	"github.com/alumnoextra/alumnos-api/internal/core/domain"
)

// AlumnoService exposes the five resource operations to the transport layer.
type AlumnoService interface {
	// List validates the (page, limit) pair, derives the offset, and returns
	// one page of records. domain.ErrInvalidPagination is returned before any
	// storage access when limit <= 0 or the derived offset is negative.
	List(ctx context.Context, page, limit int) ([]domain.Alumno, error)
	Get(ctx context.Context, id int64) (*domain.Alumno, error)
	Create(ctx context.Context, a *domain.Alumno) (int64, error)
	Update(ctx context.Context, id int64, a *domain.Alumno) error
	Delete(ctx context.Context, id int64) error
}
