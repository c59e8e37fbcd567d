package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/alumnoextra/alumnos-api/internal/api/metrics"
	"github.com/alumnoextra/alumnos-api/internal/core/domain"
	"github.com/alumnoextra/alumnos-api/internal/core/ports"
)

// AlumnoHandler handles HTTP requests for the alumno resource.
type AlumnoHandler struct {
	service    ports.AlumnoService
	production bool
}

// NewAlumnoHandler creates an AlumnoHandler. When production is true,
// internal storage error detail is withheld from 500 response bodies.
func NewAlumnoHandler(service ports.AlumnoService, production bool) *AlumnoHandler {
	return &AlumnoHandler{service: service, production: production}
}

// List handles GET /api/alumnos?page=&limit=.
//
// @Summary      List alumnos with pagination
// @Tags         alumnos
// @Produce      json
// @Security     BearerAuth
// @Param        page   query     int  false  "Page number (default 1)"
// @Param        limit  query     int  false  "Records per page (default 50)"
// @Success      200    {array}   domain.Alumno
// @Failure      400    {object}  errorResponse
// @Failure      401    {object}  errorResponse
// @Failure      500    {object}  detailedErrorResponse
// @Router       /api/alumnos [get]
func (h *AlumnoHandler) List(c echo.Context) error {
	page := intQueryParam(c, "page", 1)
	limit := intQueryParam(c, "limit", 50)

	alumnos, err := h.service.List(c.Request().Context(), page, limit)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidPagination) {
			return c.JSON(http.StatusBadRequest, errorResponse{Error: "Parámetros inválidos para paginación."})
		}
		metrics.StorageErrorsTotal.WithLabelValues("list").Inc()
		return h.storageError(c, err, "Error al obtener los datos de los alumnos.")
	}

	return c.JSON(http.StatusOK, alumnos)
}

// Get handles GET /api/alumnos/:id.
//
// @Summary      Get an alumno by id
// @Tags         alumnos
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Alumno id"
// @Success      200  {object}  domain.Alumno
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /api/alumnos/{id} [get]
func (h *AlumnoHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusNotFound, errorResponse{Error: "Alumno no encontrado."})
	}

	alumno, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrAlumnoNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "Alumno no encontrado."})
		}
		metrics.StorageErrorsTotal.WithLabelValues("get").Inc()
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "Error al obtener el alumno."})
	}

	return c.JSON(http.StatusOK, alumno)
}

// Create handles POST /api/alumnos.
//
// @Summary      Add a new alumno
// @Tags         alumnos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      alumnoRequest  true  "Alumno fields (minus id)"
// @Success      201   {object}  createdResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /api/alumnos [post]
func (h *AlumnoHandler) Create(c echo.Context) error {
	var req alumnoRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "Solicitud inválida."})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "Todos los campos obligatorios deben ser completados."})
	}

	id, err := h.service.Create(c.Request().Context(), req.toDomain())
	if err != nil {
		metrics.StorageErrorsTotal.WithLabelValues("create").Inc()
		return h.storageError(c, err, "Error al añadir el alumno.")
	}

	metrics.AlumnosCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, createdResponse{Message: "Alumno añadido exitosamente.", ID: id})
}

// Update handles PUT /api/alumnos/:id.
//
// Field presence is NOT validated here, unlike Create. The API this replaces
// accepts a partial or empty body on PUT and writes it as a full-record
// replace; that asymmetry is preserved.
//
// @Summary      Replace an existing alumno
// @Tags         alumnos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int            true  "Alumno id"
// @Param        body  body      alumnoRequest  true  "Full alumno fields"
// @Success      200   {object}  messageResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /api/alumnos/{id} [put]
func (h *AlumnoHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusNotFound, errorResponse{Error: "Alumno no encontrado."})
	}

	var req alumnoRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "Solicitud inválida."})
	}

	if err := h.service.Update(c.Request().Context(), id, req.toDomain()); err != nil {
		if errors.Is(err, domain.ErrAlumnoNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "Alumno no encontrado."})
		}
		metrics.StorageErrorsTotal.WithLabelValues("update").Inc()
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "Error al actualizar el alumno."})
	}

	return c.JSON(http.StatusOK, messageResponse{Message: "Alumno actualizado exitosamente."})
}

// Delete handles DELETE /api/alumnos/:id.
//
// @Summary      Delete an alumno
// @Tags         alumnos
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Alumno id"
// @Success      200  {object}  messageResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /api/alumnos/{id} [delete]
func (h *AlumnoHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusNotFound, errorResponse{Error: "Alumno no encontrado."})
	}

	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, domain.ErrAlumnoNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "Alumno no encontrado."})
		}
		metrics.StorageErrorsTotal.WithLabelValues("delete").Inc()
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "Error al eliminar el alumno."})
	}

	metrics.AlumnosDeletedTotal.Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "Alumno eliminado exitosamente."})
}

// storageError renders a 500. Outside production the real failure is echoed
// in the details field; in production it stays server-side only.
func (h *AlumnoHandler) storageError(c echo.Context, err error, msg string) error {
	if h.production {
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: msg})
	}
	return c.JSON(http.StatusInternalServerError, detailedErrorResponse{Error: msg, Details: err.Error()})
}

// pathID parses the :id path parameter. A non-numeric id matches no record
// and is treated as not found.
func pathID(c echo.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}
