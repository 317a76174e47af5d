package handler

import (
	"net/http"

	"corresponsal/internal/dto"
	"corresponsal/internal/service"

	"github.com/gin-gonic/gin"
)

type TurnosHandler struct{ svc service.TurnoService }

func NewTurnosHandler(svc service.TurnoService) *TurnosHandler {
	return &TurnosHandler{svc: svc}
}

// Abrir godoc
// @Summary Abrir turno de caja
// @Tags turnos
// @Accept json
// @Produce json
// @Param body body dto.AbrirTurnoRequest true "Base inicial"
// @Success 201 {object} dto.TurnoResponse
// @Failure 409 {object} apierror.APIError
// @Router /v1/turnos/abrir [post]
func (h *TurnosHandler) Abrir(c *gin.Context) {
	op, ok := operadorID(c)
	if !ok {
		return
	}
	var req dto.AbrirTurnoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if req.BaseInicial == nil {
		campoRequerido(c, "BaseInicial")
		return
	}
	resp, err := h.svc.Abrir(c.Request.Context(), op, *req.BaseInicial)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Cerrar godoc
// @Summary Cerrar turno de caja
// @Tags turnos
// @Accept json
// @Produce json
// @Param body body dto.CerrarTurnoRequest true "Monto contado"
// @Success 200 {object} dto.TurnoResponse
// @Failure 409 {object} apierror.APIError
// @Router /v1/turnos/cerrar [post]
func (h *TurnosHandler) Cerrar(c *gin.Context) {
	op, ok := operadorID(c)
	if !ok {
		return
	}
	var req dto.CerrarTurnoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if req.MontoContado == nil {
		campoRequerido(c, "MontoContado")
		return
	}
	resp, err := h.svc.Cerrar(c.Request.Context(), op, *req.MontoContado)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *TurnosHandler) Reabrir(c *gin.Context) {
	op, ok := operadorID(c)
	if !ok {
		return
	}
	resp, err := h.svc.Reabrir(c.Request.Context(), op)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *TurnosHandler) Actual(c *gin.Context) {
	op, ok := operadorID(c)
	if !ok {
		return
	}
	resp, err := h.svc.Actual(c.Request.Context(), op)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *TurnosHandler) Historial(c *gin.Context) {
	page, limit := pagination(c)
	items, total, err := h.svc.Historial(c.Request.Context(), page, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.TurnoListResponse{Items: items, Total: total, Page: page, Limit: limit})
}
