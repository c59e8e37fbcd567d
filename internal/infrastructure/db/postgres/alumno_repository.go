package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/alumnoextra/alumnos-api/internal/core/domain"
)

const alumnoColumns = `id_alumno, nombre, apellido, email, password, sexo,
	fecha_nacimiento, peso, altura, descuento, comida_favorita`

// AlumnoRepository executes parameterized CRUD statements against the alumno
// table on a shared connection pool.
type AlumnoRepository struct {
	db *sql.DB
}

func NewAlumnoRepository(db *sql.DB) *AlumnoRepository {
	return &AlumnoRepository{db: db}
}

// List returns one page of records in storage order. Limit and offset are
// bound parameters, never interpolated into the query text.
func (r *AlumnoRepository) List(ctx context.Context, limit, offset int) ([]domain.Alumno, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	rows, err := r.db.QueryContext(ctx,
		`SELECT `+alumnoColumns+` FROM alumno LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	alumnos := []domain.Alumno{}
	for rows.Next() {
		var a domain.Alumno
		if err := scanAlumno(rows.Scan, &a); err != nil {
			return nil, err
		}
		alumnos = append(alumnos, a)
	}
	return alumnos, rows.Err()
}

func (r *AlumnoRepository) FindByID(ctx context.Context, id int64) (*domain.Alumno, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	row := r.db.QueryRowContext(ctx,
		`SELECT `+alumnoColumns+` FROM alumno WHERE id_alumno = $1`, id)

	var a domain.Alumno
	if err := scanAlumno(row.Scan, &a); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrAlumnoNotFound
		}
		return nil, err
	}
	return &a, nil
}

// Create inserts a new record and returns the generated identifier.
func (r *AlumnoRepository) Create(ctx context.Context, a *domain.Alumno) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var id int64
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO alumno (nombre, apellido, email, password, sexo,
			fecha_nacimiento, peso, altura, descuento, comida_favorita)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id_alumno`,
		a.Nombre, a.Apellido, a.Email, a.Password, a.Sexo,
		a.FechaNacimiento, a.Peso, a.Altura, a.Descuento, a.ComidaFavorita,
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

// Update replaces the full record in place.
func (r *AlumnoRepository) Update(ctx context.Context, id int64, a *domain.Alumno) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.db.ExecContext(ctx,
		`UPDATE alumno
		SET nombre = $1, apellido = $2, email = $3, password = $4, sexo = $5,
			fecha_nacimiento = $6, peso = $7, altura = $8, descuento = $9,
			comida_favorita = $10
		WHERE id_alumno = $11`,
		a.Nombre, a.Apellido, a.Email, a.Password, a.Sexo,
		a.FechaNacimiento, a.Peso, a.Altura, a.Descuento, a.ComidaFavorita, id)
	if err != nil {
		return err
	}
	return checkAffected(res)
}

func (r *AlumnoRepository) Delete(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.db.ExecContext(ctx, `DELETE FROM alumno WHERE id_alumno = $1`, id)
	if err != nil {
		return err
	}
	return checkAffected(res)
}

// scanAlumno maps one row onto a domain.Alumno. The pointer fields receive
// nil for NULL columns.
func scanAlumno(scan func(dest ...any) error, a *domain.Alumno) error {
	return scan(
		&a.ID, &a.Nombre, &a.Apellido, &a.Email, &a.Password, &a.Sexo,
		&a.FechaNacimiento, &a.Peso, &a.Altura, &a.Descuento, &a.ComidaFavorita,
	)
}

// checkAffected translates a zero-row mutation into ErrAlumnoNotFound.
func checkAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrAlumnoNotFound
	}
	return nil
}
