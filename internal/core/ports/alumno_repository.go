package ports

import (
	"context"

	"github.com/alumnoextra/alumnos-api/internal/core/domain"
)

// AlumnoRepository defines persistence operations for alumno records.
// Implementations must use strictly bound statement parameters; limit and
// offset are never interpolated into query text.
type AlumnoRepository interface {
	// List returns up to limit records starting at offset, in storage order.
	// Callers must not assume a stable ordering across pages.
	List(ctx context.Context, limit, offset int) ([]domain.Alumno, error)
	FindByID(ctx context.Context, id int64) (*domain.Alumno, error)
	// Create inserts a new record and returns the generated identifier.
	Create(ctx context.Context, a *domain.Alumno) (int64, error)
	// Update replaces the full record. Returns domain.ErrAlumnoNotFound when
	// no row matches id.
	Update(ctx context.Context, id int64, a *domain.Alumno) error
	// Delete removes the record (hard delete). Returns
	// domain.ErrAlumnoNotFound when no row matches id.
	Delete(ctx context.Context, id int64) error
}
