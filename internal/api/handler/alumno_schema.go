package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/alumnoextra/alumnos-api/internal/core/domain"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// detailedErrorResponse additionally carries the internal failure detail.
// Details is only populated outside production.
type detailedErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// messageResponse is returned by mutations that carry no entity body.
type messageResponse struct {
	Message string `json:"message"`
}

// createdResponse is returned on successful creation.
type createdResponse struct {
	Message string `json:"message"`
	ID      int64  `json:"id"`
}

// alumnoRequest is the payload for POST and PUT. The validate tags cover the
// seven mandatory fields; the remaining three are optional and nullable.
//
// `required` on the float64 Descuento rejects a literal 0 as missing. That
// matches the API this replaces, where a zero discount fails the mandatory
// field check, and is pinned by tests.
type alumnoRequest struct {
	Nombre          string   `json:"nombre"          validate:"required"`
	Apellido        string   `json:"apellido"        validate:"required"`
	Email           string   `json:"email"           validate:"required"`
	Password        string   `json:"password"        validate:"required"`
	Sexo            string   `json:"sexo"            validate:"required"`
	FechaNacimiento *string  `json:"fechaNacimiento"`
	Peso            *float64 `json:"peso"`
	Altura          *float64 `json:"altura"`
	Descuento       float64  `json:"descuento"       validate:"required"`
	ComidaFavorita  string   `json:"comidaFavorita"  validate:"required"`
}

// toDomain maps the HTTP payload onto the domain entity.
func (r alumnoRequest) toDomain() *domain.Alumno {
	return &domain.Alumno{
		Nombre:          r.Nombre,
		Apellido:        r.Apellido,
		Email:           r.Email,
		Password:        r.Password,
		Sexo:            r.Sexo,
		FechaNacimiento: r.FechaNacimiento,
		Peso:            r.Peso,
		Altura:          r.Altura,
		Descuento:       r.Descuento,
		ComidaFavorita:  r.ComidaFavorita,
	}
}

// intQueryParam parses a base-10 query parameter, falling back to def when
// the parameter is absent or unparseable. A parseable zero or negative value
// is kept as-is so the service can reject it; defaulting happens before
// validation on purpose.
func intQueryParam(c echo.Context, name string, def int) int {
	raw := c.QueryParam(name)
	n, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return n
}
