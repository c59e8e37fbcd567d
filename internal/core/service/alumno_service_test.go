package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/alumnoextra/alumnos-api/internal/core/domain"
)

// ---------------------------------------------------------------------------
// In-memory stub repository
// ---------------------------------------------------------------------------

type stubAlumnoRepo struct {
	records map[int64]*domain.Alumno
	nextID  int64

	listCalls  int
	lastLimit  int
	lastOffset int
	failWith   error // if set, every operation returns this error
}

func newStubAlumnoRepo() *stubAlumnoRepo {
	return &stubAlumnoRepo{records: make(map[int64]*domain.Alumno), nextID: 1}
}

func (r *stubAlumnoRepo) List(_ context.Context, limit, offset int) ([]domain.Alumno, error) {
	r.listCalls++
	r.lastLimit = limit
	r.lastOffset = offset
	if r.failWith != nil {
		return nil, r.failWith
	}
	out := []domain.Alumno{}
	for _, a := range r.records {
		if len(out) >= limit {
			break
		}
		out = append(out, *a)
	}
	return out, nil
}

func (r *stubAlumnoRepo) FindByID(_ context.Context, id int64) (*domain.Alumno, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	a, ok := r.records[id]
	if !ok {
		return nil, domain.ErrAlumnoNotFound
	}
	clone := *a
	return &clone, nil
}

func (r *stubAlumnoRepo) Create(_ context.Context, a *domain.Alumno) (int64, error) {
	if r.failWith != nil {
		return 0, r.failWith
	}
	id := r.nextID
	r.nextID++
	clone := *a
	clone.ID = id
	r.records[id] = &clone
	return id, nil
}

func (r *stubAlumnoRepo) Update(_ context.Context, id int64, a *domain.Alumno) error {
	if r.failWith != nil {
		return r.failWith
	}
	if _, ok := r.records[id]; !ok {
		return domain.ErrAlumnoNotFound
	}
	clone := *a
	clone.ID = id
	r.records[id] = &clone
	return nil
}

func (r *stubAlumnoRepo) Delete(_ context.Context, id int64) error {
	if r.failWith != nil {
		return r.failWith
	}
	if _, ok := r.records[id]; !ok {
		return domain.ErrAlumnoNotFound
	}
	delete(r.records, id)
	return nil
}

func seedAlumno(r *stubAlumnoRepo) int64 {
	id, _ := r.Create(context.Background(), &domain.Alumno{
		Nombre:         "Ana",
		Apellido:       "García",
		Email:          "ana@example.com",
		Password:       "secreta",
		Sexo:           domain.SexoFemenino,
		Descuento:      10,
		ComidaFavorita: "tacos",
	})
	return id
}

// ---------------------------------------------------------------------------
// Tests
// ---------------------------------------------------------------------------

func TestAlumnoService_List_OffsetMath(t *testing.T) {
	repo := newStubAlumnoRepo()
	svc := NewAlumnoService(repo, zerolog.Nop())

	if _, err := svc.List(context.Background(), 3, 20); err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if repo.lastLimit != 20 || repo.lastOffset != 40 {
		t.Fatalf("expected limit=20 offset=40, got limit=%d offset=%d", repo.lastLimit, repo.lastOffset)
	}
}

func TestAlumnoService_List_RejectsBadPagination(t *testing.T) {
	cases := []struct {
		name  string
		page  int
		limit int
	}{
		{"zero limit", 1, 0},
		{"negative limit", 1, -5},
		{"zero page", 0, 50},
		{"negative page", -2, 50},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := newStubAlumnoRepo()
			svc := NewAlumnoService(repo, zerolog.Nop())

			_, err := svc.List(context.Background(), tc.page, tc.limit)
			if !errors.Is(err, domain.ErrInvalidPagination) {
				t.Fatalf("expected ErrInvalidPagination, got %v", err)
			}
			if repo.listCalls != 0 {
				t.Fatalf("repository must not be called on invalid pagination")
			}
		})
	}
}

func TestAlumnoService_List_ReturnsAtMostLimit(t *testing.T) {
	repo := newStubAlumnoRepo()
	svc := NewAlumnoService(repo, zerolog.Nop())

	for i := 0; i < 5; i++ {
		seedAlumno(repo)
	}

	out, err := svc.List(context.Background(), 1, 2)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(out) > 2 {
		t.Fatalf("expected at most 2 records, got %d", len(out))
	}
}

func TestAlumnoService_CreateThenGet_RoundTrip(t *testing.T) {
	repo := newStubAlumnoRepo()
	svc := NewAlumnoService(repo, zerolog.Nop())

	peso := 63.5
	in := &domain.Alumno{
		Nombre:         "Ana",
		Apellido:       "García",
		Email:          "ana@example.com",
		Password:       "secreta",
		Sexo:           domain.SexoFemenino,
		Peso:           &peso,
		Descuento:      15,
		ComidaFavorita: "tacos",
	}

	id, err := svc.Create(context.Background(), in)
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if id == 0 {
		t.Fatalf("expected a generated identifier")
	}

	got, err := svc.Get(context.Background(), id)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if got.Nombre != in.Nombre || got.Email != in.Email || got.Descuento != in.Descuento {
		t.Fatalf("round-trip mismatch: %+v", got)
	}
	if got.Peso == nil || *got.Peso != peso {
		t.Fatalf("expected peso %v, got %v", peso, got.Peso)
	}
	if got.FechaNacimiento != nil {
		t.Fatalf("expected absent fechaNacimiento to stay nil")
	}
}

func TestAlumnoService_Update_NotFound(t *testing.T) {
	repo := newStubAlumnoRepo()
	svc := NewAlumnoService(repo, zerolog.Nop())

	err := svc.Update(context.Background(), 999, &domain.Alumno{Nombre: "X"})
	if !errors.Is(err, domain.ErrAlumnoNotFound) {
		t.Fatalf("expected ErrAlumnoNotFound, got %v", err)
	}
	if len(repo.records) != 0 {
		t.Fatalf("storage state must be unchanged")
	}
}

func TestAlumnoService_Delete_ThenGone(t *testing.T) {
	repo := newStubAlumnoRepo()
	svc := NewAlumnoService(repo, zerolog.Nop())

	id := seedAlumno(repo)

	if err := svc.Delete(context.Background(), id); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if _, err := svc.Get(context.Background(), id); !errors.Is(err, domain.ErrAlumnoNotFound) {
		t.Fatalf("expected ErrAlumnoNotFound after delete, got %v", err)
	}
}

func TestAlumnoService_List_PropagatesStorageError(t *testing.T) {
	repo := newStubAlumnoRepo()
	repo.failWith = errors.New("connection refused")
	svc := NewAlumnoService(repo, zerolog.Nop())

	if _, err := svc.List(context.Background(), 1, 50); err == nil || errors.Is(err, domain.ErrInvalidPagination) {
		t.Fatalf("expected the storage error to propagate, got %v", err)
	}
}
