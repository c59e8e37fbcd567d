package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/alumnoextra/alumnos-api/internal/core/domain"
	"github.com/alumnoextra/alumnos-api/internal/core/ports"
)

type AlumnoService struct {
	repo   ports.AlumnoRepository
	logger zerolog.Logger
}

func NewAlumnoService(repo ports.AlumnoRepository, logger zerolog.Logger) *AlumnoService {
	return &AlumnoService{repo: repo, logger: logger}
}

// List validates the already-defaulted (page, limit) pair and fetches one
// page. Validation runs after defaulting on purpose: an absent or garbage
// parameter silently becomes page=1/limit=50 at the handler, while an
// explicit limit=0 or a negative page is rejected here before any storage
// access.
func (s *AlumnoService) List(ctx context.Context, page, limit int) ([]domain.Alumno, error) {
	offset := (page - 1) * limit
	if limit <= 0 || offset < 0 {
		return nil, domain.ErrInvalidPagination
	}

	alumnos, err := s.repo.List(ctx, limit, offset)
	if err != nil {
		s.logger.Error().Err(err).Int("page", page).Int("limit", limit).Msg("failed to list alumnos")
		return nil, err
	}
	return alumnos, nil
}

func (s *AlumnoService) Get(ctx context.Context, id int64) (*domain.Alumno, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *AlumnoService) Create(ctx context.Context, a *domain.Alumno) (int64, error) {
	id, err := s.repo.Create(ctx, a)
	if err != nil {
		s.logger.Error().Err(err).Str("email", a.Email).Msg("failed to create alumno")
		return 0, err
	}
	s.logger.Info().Int64("id_alumno", id).Msg("alumno created")
	return id, nil
}

// Update performs a full-record replace. Field presence is intentionally not
// checked here (unlike Create): the inherited API contract lets a PUT blank
// out columns, and that asymmetry is preserved.
func (s *AlumnoService) Update(ctx context.Context, id int64, a *domain.Alumno) error {
	if err := s.repo.Update(ctx, id, a); err != nil {
		return err
	}
	s.logger.Info().Int64("id_alumno", id).Msg("alumno updated")
	return nil
}

func (s *AlumnoService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Int64("id_alumno", id).Msg("alumno deleted")
	return nil
}
