package handler

import (
	"net/http"
	"time"

	"corresponsal/internal/apierror"
	"corresponsal/internal/dto"
	"corresponsal/internal/repository"
	"corresponsal/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type MovimientosHandler struct{ svc service.MovimientoService }

func NewMovimientosHandler(svc service.MovimientoService) *MovimientosHandler {
	return &MovimientosHandler{svc: svc}
}

// Registrar godoc
// @Summary Registrar movimiento de caja
// @Tags movimientos
// @Accept json
// @Produce json
// @Param body body dto.RegistrarMovimientoRequest true "Movimiento"
// @Success 201 {object} dto.MovimientoResponse
// @Failure 404 {object} apierror.APIError
// @Failure 409 {object} apierror.APIError
// @Router /v1/movimientos [post]
func (h *MovimientosHandler) Registrar(c *gin.Context) {
	op, ok := operadorID(c)
	if !ok {
		return
	}
	var req dto.RegistrarMovimientoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Registrar(c.Request.Context(), op, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *MovimientosHandler) Actualizar(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.ActualizarMovimientoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Actualizar(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *MovimientosHandler) Eliminar(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.svc.Eliminar(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *MovimientosHandler) Listar(c *gin.Context) {
	filter := repository.MovimientoFilter{}

	if v := c.Query("operador_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, apierror.New("operador_id invalido"))
			return
		}
		filter.OperadorID = &id
	}
	if v := c.Query("desde"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			c.JSON(http.StatusBadRequest, apierror.New("desde invalido (AAAA-MM-DD)"))
			return
		}
		filter.Desde = &t
	}
	if v := c.Query("hasta"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			c.JSON(http.StatusBadRequest, apierror.New("hasta invalido (AAAA-MM-DD)"))
			return
		}
		// hasta is inclusive for the caller, exclusive in the query
		fin := t.AddDate(0, 0, 1)
		filter.Hasta = &fin
	}
	page, limit := pagination(c)
	filter.Limit = limit
	filter.Offset = (page - 1) * limit

	resp, err := h.svc.Listar(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *MovimientosHandler) ListarTipos(c *gin.Context) {
	resp, err := h.svc.ListarTipos(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
