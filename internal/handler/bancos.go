package handler

import (
	"errors"
	"net/http"
	"time"

	"corresponsal/internal/apierror"
	"corresponsal/internal/dto"
	"corresponsal/internal/service"

	"github.com/gin-gonic/gin"
)

type BancosHandler struct {
	svc    service.BancoService
	ajuste service.AjusteService
}

func NewBancosHandler(svc service.BancoService, ajuste service.AjusteService) *BancosHandler {
	return &BancosHandler{svc: svc, ajuste: ajuste}
}

func (h *BancosHandler) ListarCuentas(c *gin.Context) {
	resp, err := h.svc.ListarCuentas(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *BancosHandler) Saldo(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	resp, err := h.svc.Saldo(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *BancosHandler) RegistrarMovimiento(c *gin.Context) {
	op, ok := operadorID(c)
	if !ok {
		return
	}
	var req dto.RegistrarMovimientoBancoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.RegistrarMovimiento(c.Request.Context(), op, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *BancosHandler) ActualizarMovimiento(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.ActualizarMovimientoBancoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.ActualizarMovimiento(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *BancosHandler) EliminarMovimiento(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.svc.EliminarMovimiento(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *BancosHandler) ListarMovimientos(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var desde, hasta *time.Time
	if v := c.Query("desde"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			c.JSON(http.StatusBadRequest, apierror.New("desde invalido (AAAA-MM-DD)"))
			return
		}
		desde = &t
	}
	if v := c.Query("hasta"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			c.JSON(http.StatusBadRequest, apierror.New("hasta invalido (AAAA-MM-DD)"))
			return
		}
		fin := t.AddDate(0, 0, 1)
		hasta = &fin
	}
	resp, err := h.svc.ListarMovimientos(c.Request.Context(), id, desde, hasta)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GenerarAjuste godoc
// @Summary Ajustar saldo de cuenta al valor verificado
// @Tags cuentas
// @Accept json
// @Produce json
// @Param body body dto.AjusteRequest true "Saldo real verificado"
// @Success 200 {object} dto.AjusteResponse
// @Failure 404 {object} apierror.APIError
// @Router /v1/cuentas/ajuste [post]
func (h *BancosHandler) GenerarAjuste(c *gin.Context) {
	op, ok := operadorID(c)
	if !ok {
		return
	}
	var req dto.AjusteRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if req.SaldoReal == nil {
		campoRequerido(c, "SaldoReal")
		return
	}
	resp, err := h.ajuste.GenerarAjuste(c.Request.Context(), op, req)
	if errors.Is(err, service.ErrYaCuadrado) {
		// Nothing written: balances already match.
		c.JSON(http.StatusOK, gin.H{"ajustado": false, "detalle": err.Error()})
		return
	}
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
