package domain

import "errors"

// Sexo values accepted for an Alumno record.
const (
	SexoMasculino = "masculino"
	SexoFemenino  = "femenino"
	SexoOtro      = "otro"
)

var ErrAlumnoNotFound = errors.New("alumno not found")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrTokenMissing = errors.New("token missing")
var ErrTokenInvalid = errors.New("token invalid")
var ErrInvalidPagination = errors.New("invalid pagination parameters")

// Alumno is the core entity: one enrolled student's profile data.
//
// JSON field names keep the public API contract (Spanish camelCase,
// id_alumno for the identifier). FechaNacimiento, Peso and Altura are
// optional and render as null when absent.
//
// Password is stored and returned as plaintext. That is the inherited
// contract of this API, flagged as a security defect; changing it would
// break existing clients that round-trip full records through PUT.
type Alumno struct {
	ID              int64    `json:"id_alumno"`
	Nombre          string   `json:"nombre"`
	Apellido        string   `json:"apellido"`
	Email           string   `json:"email"`
	Password        string   `json:"password"`
	Sexo            string   `json:"sexo"`
	FechaNacimiento *string  `json:"fechaNacimiento"`
	Peso            *float64 `json:"peso"`
	Altura          *float64 `json:"altura"`
	Descuento       float64  `json:"descuento"`
	ComidaFavorita  string   `json:"comidaFavorita"`
}
